package http

import (
	"errors"
	"net/http"

	"github.com/aussiebroadwan/focusflow/internal/focusflow/domain"
	"github.com/aussiebroadwan/focusflow/internal/focusflow/service"
	"github.com/aussiebroadwan/focusflow/pkg/focussdk"
	"github.com/aussiebroadwan/focusflow/pkg/httpx"
	"github.com/aussiebroadwan/focusflow/pkg/slogx"
)

// writeError maps service and domain errors onto the API error taxonomy.
// Anything unrecognised is logged and reported as a generic 500.
func writeError(w http.ResponseWriter, r *http.Request, err error) {
	var verrs domain.ValidationErrors
	switch {
	case errors.As(err, &verrs):
		fields := make([]focussdk.FieldError, 0, len(verrs))
		for _, fe := range verrs {
			fields = append(fields, focussdk.FieldError{Field: fe.Field, Message: fe.Message})
		}
		focussdk.NewValidationError("Validation failed", fields).WriteError(w)
	case errors.Is(err, service.ErrConflict):
		focussdk.ErrConflict.WriteError(w)
	case errors.Is(err, service.ErrInvalidCredentials):
		focussdk.ErrInvalidCredentials.WriteError(w)
	case errors.Is(err, domain.ErrInvalidPreferenceUpdate):
		focussdk.NewAPIError(http.StatusBadRequest, focussdk.ErrorCodeInvalidRequest, "Invalid updates in preferences").WriteError(w)
	case errors.Is(err, domain.ErrInvalidSort):
		focussdk.NewAPIError(http.StatusBadRequest, focussdk.ErrorCodeInvalidRequest, err.Error()).WriteError(w)
	case errors.Is(err, service.ErrSessionNotFound):
		focussdk.NewAPIError(http.StatusNotFound, focussdk.ErrorCodeNotFound, "Session not found").WriteError(w)
	case errors.Is(err, service.ErrUserNotFound):
		focussdk.NewAPIError(http.StatusNotFound, focussdk.ErrorCodeNotFound, "User not found").WriteError(w)
	default:
		slogx.FromContext(r.Context()).Error("request failed",
			"method", r.Method,
			"path", r.URL.Path,
			"err", err,
		)
		focussdk.ErrServerError.WriteError(w)
	}
}

// decodeBody reads a JSON request body, writing a 400 on failure.
func decodeBody(w http.ResponseWriter, r *http.Request, v any) bool {
	if err := httpx.DecodeJSON(w, r, v); err != nil {
		desc := "Invalid JSON body"
		if errors.Is(err, httpx.ErrEmptyBody) {
			desc = "Request body is required"
		}
		focussdk.NewAPIError(http.StatusBadRequest, focussdk.ErrorCodeInvalidRequest, desc).WriteError(w)
		return false
	}
	return true
}

// userID returns the authenticated subject. Routes behind AuthnMiddleware
// always have one; a missing subject is answered with 401.
func userID(w http.ResponseWriter, r *http.Request) (string, bool) {
	id, ok := httpx.UserIDFromContext(r.Context())
	if !ok || id == "" {
		focussdk.ErrInvalidToken.WriteError(w)
		return "", false
	}
	return id, true
}
