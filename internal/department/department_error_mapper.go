package department

import (
	"errors"

	departmenterrors "hris-dashboard/internal/department/errors"
	"hris-dashboard/internal/memstore"
)

func mapRepositoryError(err error) error {
	if errors.Is(err, memstore.ErrNotFound) {
		return departmenterrors.ErrDepartmentNotFound
	}
	return err
}
