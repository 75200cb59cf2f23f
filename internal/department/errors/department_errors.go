package departmenterrors

import (
	"net/http"

	"hris-dashboard/internal/shared/apperror"
)

var (
	ErrDepartmentNotFound = apperror.New(
		apperror.CodeNotFound,
		"Department not found",
		http.StatusNotFound,
	)
	ErrIDExhausted = apperror.New(
		apperror.CodeConflict,
		"Could not allocate a unique department id",
		http.StatusConflict,
	)
)
