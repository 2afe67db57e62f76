package handler

import "net/http"

type AppError struct {
	Status  int
	Code    string
	Message string
}

func (e *AppError) Error() string { return e.Message }

var (
	ErrMissingToken     = &AppError{http.StatusUnauthorized, "MISSING_TOKEN", "Authorization header required"}
	ErrInvalidToken     = &AppError{http.StatusUnauthorized, "INVALID_TOKEN", "Token is invalid or expired"}
	ErrForbidden        = &AppError{http.StatusForbidden, "FORBIDDEN", "Token lacks the required scope"}
	ErrInvalidRequest   = &AppError{http.StatusBadRequest, "INVALID_REQUEST", "Invalid request body"}
	ErrValidationFailed = &AppError{http.StatusBadRequest, "VALIDATION_FAILED", "Validation failed"}
	ErrResourceNotFound = &AppError{http.StatusNotFound, "RESOURCE_NOT_FOUND", "Resource not found"}
	ErrInternalError    = &AppError{http.StatusInternalServerError, "INTERNAL_ERROR", "An unexpected error occurred"}

	ErrInvalidAmount = &AppError{http.StatusBadRequest, "INVALID_AMOUNT", "Amount must be greater than zero with at most 4 decimal places"}
	ErrUnknownScheme = &AppError{http.StatusBadRequest, "UNKNOWN_PAYMENT_SCHEME", "Payment scheme is not supported"}
)
