package employeeerrors

import (
	"hris-dashboard/internal/shared/apperror"
	"net/http"
)

var (
	ErrEmployeeNotFound = apperror.New(
		apperror.CodeNotFound,
		"Employee not found",
		http.StatusNotFound,
	)
	ErrIDExhausted = apperror.New(
		apperror.CodeConflict,
		"Could not allocate a unique employee id",
		http.StatusConflict,
	)
)
