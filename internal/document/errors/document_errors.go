package documenterrors

import (
	"net/http"

	"hris-dashboard/internal/shared/apperror"
)

var (
	ErrDocumentNotFound = apperror.New(
		apperror.CodeNotFound,
		"Document not found",
		http.StatusNotFound,
	)
	ErrIDExhausted = apperror.New(
		apperror.CodeConflict,
		"Could not allocate a unique document id",
		http.StatusConflict,
	)
)
