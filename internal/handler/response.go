package handler

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-playground/validator/v10"

	"github.com/josh-kwaku/scheme-payments/internal/domain"
)

type APIResponse struct {
	Success bool      `json:"success"`
	Data    any       `json:"data"`
	Error   *APIError `json:"error"`
}

type APIError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
	Details any    `json:"details,omitempty"`
}

type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

func RespondJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}

func RespondSuccess(w http.ResponseWriter, status int, data any) {
	RespondJSON(w, status, APIResponse{
		Success: true,
		Data:    data,
		Error:   nil,
	})
}

func RespondAppError(w http.ResponseWriter, appErr *AppError, details any) {
	RespondJSON(w, appErr.Status, APIResponse{
		Success: false,
		Data:    nil,
		Error: &APIError{
			Code:    appErr.Code,
			Message: appErr.Message,
			Details: details,
		},
	})
}

func RespondValidationError(w http.ResponseWriter, err error) {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		RespondAppError(w, ErrInvalidRequest, nil)
		return
	}

	fields := make([]FieldError, 0, len(verrs))
	for _, e := range verrs {
		fields = append(fields, FieldError{Field: e.Field(), Message: fieldMessage(e)})
	}
	RespondAppError(w, ErrValidationFailed, fields)
}

func RespondDomainError(w http.ResponseWriter, err error) {
	var appErr *AppError

	switch {
	case errors.Is(err, domain.ErrNotFound):
		appErr = ErrResourceNotFound
	case errors.Is(err, domain.ErrInvalidAmount):
		appErr = ErrInvalidAmount
	case errors.Is(err, domain.ErrUnknownScheme):
		appErr = ErrUnknownScheme
	case errors.Is(err, domain.ErrInvalidRequest):
		appErr = ErrInvalidRequest
	default:
		slog.Error("unhandled domain error", "error", err)
		appErr = ErrInternalError
	}

	RespondAppError(w, appErr, nil)
}

func fieldMessage(e validator.FieldError) string {
	switch e.Tag() {
	case "required":
		return "required"
	case "max":
		return "must be at most " + e.Param() + " characters"
	case "gt":
		return "must be greater than " + e.Param()
	case "decimal_scale":
		return "must have at most " + e.Param() + " decimal places"
	case "oneof":
		return "must be one of: " + e.Param()
	default:
		return "invalid value"
	}
}
