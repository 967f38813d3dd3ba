package handler

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"go-identity-service/internal/model"
	"go-identity-service/pkg/apierror"
)

func writeSuccess(w http.ResponseWriter, status int, data any, meta *model.Meta) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(model.APIResponse{
		Success: true,
		Data:    data,
		Meta:    meta,
	})
}

// writeError maps service errors onto the response taxonomy. Anything not
// recognized stays a generic 500; the raw error is logged here, never sent
// to the caller.
func writeError(w http.ResponseWriter, err error) {
	status := http.StatusInternalServerError
	body := &model.APIError{
		Code:    "INTERNAL_ERROR",
		Message: "Unexpected server error",
	}

	var apiErr *apierror.APIError
	switch {
	case errors.As(err, &apiErr):
		status = apiErr.HTTPStatus
		body.Code = apiErr.Code
		body.Message = apiErr.Message
		body.Details = apiErr.Details
	case errors.Is(err, model.ErrDuplicateEmail):
		status = http.StatusBadRequest
		body.Code = "DUPLICATE_EMAIL"
		body.Message = "Email already registered"
	case errors.Is(err, model.ErrInvalidCredentials):
		status = http.StatusUnauthorized
		body.Code = "UNAUTHORIZED"
		body.Message = "Invalid credentials"
	case errors.Is(err, model.ErrMissingUserID):
		status = http.StatusBadRequest
		body.Code = "BAD_REQUEST"
		body.Message = "Invalid user ID"
	case errors.Is(err, model.ErrNoUpdateFields):
		status = http.StatusBadRequest
		body.Code = "BAD_REQUEST"
		body.Message = "No update fields provided"
	case errors.Is(err, model.ErrProfileNotFound):
		status = http.StatusNotFound
		body.Code = "NOT_FOUND"
		body.Message = "No rows updated. User ID might not exist."
	case errors.Is(err, model.ErrUserNotFound):
		status = http.StatusNotFound
		body.Code = "NOT_FOUND"
		body.Message = "User not found"
	case errors.Is(err, model.ErrTokenSigning):
		body.Code = "TOKEN_ERROR"
		body.Message = "Token generation failed"
	default:
		slog.Error("unhandled error in writeError", "error", err.Error())
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(model.APIResponse{
		Success: false,
		Error:   body,
	})
}
