package leave

import (
	"errors"

	leaveerrors "hris-dashboard/internal/leave/errors"
	"hris-dashboard/internal/memstore"
)

func mapRepositoryError(err error) error {
	if err == nil {
		return nil
	}

	if errors.Is(err, memstore.ErrNotFound) {
		return leaveerrors.ErrLeaveNotFound
	}

	return err
}
