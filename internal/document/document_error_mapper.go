package document

import (
	"errors"

	documenterrors "hris-dashboard/internal/document/errors"
	"hris-dashboard/internal/memstore"
)

func mapRepositoryError(err error) error {
	if err == nil {
		return nil
	}

	if errors.Is(err, memstore.ErrNotFound) {
		return documenterrors.ErrDocumentNotFound
	}

	return err
}
