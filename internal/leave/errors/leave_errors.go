package leaveerrors

import (
	"net/http"

	"hris-dashboard/internal/shared/apperror"
)

var (
	ErrLeaveNotFound = apperror.New(
		apperror.CodeNotFound,
		"Leave request not found",
		http.StatusNotFound,
	)
	ErrIDExhausted = apperror.New(
		apperror.CodeConflict,
		"Could not allocate a unique leave request id",
		http.StatusConflict,
	)
)
