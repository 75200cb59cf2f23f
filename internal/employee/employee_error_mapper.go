package employee

import (
	"errors"

	employeeerrors "hris-dashboard/internal/employee/errors"
	"hris-dashboard/internal/memstore"
)

func mapRepositoryError(err error) error {
	if err == nil {
		return nil
	}

	if errors.Is(err, memstore.ErrNotFound) {
		return employeeerrors.ErrEmployeeNotFound
	}

	return err
}
