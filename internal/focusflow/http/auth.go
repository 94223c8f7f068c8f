package http

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/aussiebroadwan/focusflow/internal/focusflow/service"
	"github.com/aussiebroadwan/focusflow/pkg/focussdk"
	"github.com/aussiebroadwan/focusflow/pkg/httpx"
	"github.com/aussiebroadwan/focusflow/pkg/slogx"
)

type AuthHandler struct {
	UserService *service.UserService
}

// HandleRegister godoc
//
//	@Summary		Register
//	@Description	Create an account with default timer preferences and return a signed token.
//	@Tags			Auth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		focussdk.RegisterRequest			true	"username, email, password"
//	@Success		201		{object}	focussdk.AuthResponse				"token, user"
//	@Failure		400		{object}	focussdk.ValidationErrorResponse	"Validation failed or identifier taken"
//	@Failure		429		{object}	focussdk.ErrorResponse				"Rate limit exceeded"
//	@Failure		500		{object}	focussdk.ErrorResponse				"Internal server error"
//	@Router			/api/auth/register [post].
func (h *AuthHandler) HandleRegister(w http.ResponseWriter, r *http.Request) {
	var req focussdk.RegisterRequest
	if !decodeBody(w, r, &req) {
		return
	}

	res, err := h.UserService.Register(r.Context(), req.Username, req.Email, req.Password)
	if err != nil {
		writeError(w, r, err)
		return
	}

	httpx.WriteJSON(w, http.StatusCreated, focussdk.AuthResponse{
		Token: res.Token,
		User:  toUserSummary(res.User),
	})
}

// HandleLogin godoc
//
//	@Summary		Login
//	@Description	Exchange email and password for a signed token.
//	@Tags			Auth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		focussdk.LoginRequest	true	"email, password"
//	@Success		200		{object}	focussdk.AuthResponse	"token, user"
//	@Failure		400		{object}	focussdk.ErrorResponse	"Invalid credentials"
//	@Failure		429		{object}	focussdk.ErrorResponse	"Rate limit exceeded"
//	@Failure		500		{object}	focussdk.ErrorResponse	"Internal server error"
//	@Router			/api/auth/login [post].
func (h *AuthHandler) HandleLogin(w http.ResponseWriter, r *http.Request) {
	var req focussdk.LoginRequest
	if !decodeBody(w, r, &req) {
		return
	}

	res, err := h.UserService.Login(r.Context(), req.Email, req.Password)
	if err != nil {
		writeError(w, r, err)
		return
	}

	httpx.WriteJSON(w, http.StatusOK, focussdk.AuthResponse{
		Token: res.Token,
		User:  toUserSummary(res.User),
	})
}

// HandleMe godoc
//
//	@Summary		Current user
//	@Description	Returns the authenticated user's profile and preferences. The password hash is never included.
//	@Tags			Auth
//	@Security		BearerAuth
//	@Produce		json
//	@Success		200	{object}	focussdk.UserResponse	"id, username, email, preferences, createdAt"
//	@Failure		401	{object}	focussdk.ErrorResponse	"Invalid or missing access token"
//	@Failure		500	{object}	focussdk.ErrorResponse	"Internal server error"
//	@Router			/api/auth/me [get].
func (h *AuthHandler) HandleMe(w http.ResponseWriter, r *http.Request) {
	uid, ok := userID(w, r)
	if !ok {
		return
	}

	u, err := h.UserService.Me(r.Context(), uid)
	if errors.Is(err, service.ErrUserNotFound) {
		// A valid token for a deleted account.
		slogx.FromContext(r.Context()).Warn("token subject has no account", "user_id", uid)
		focussdk.ErrInvalidToken.WriteError(w)
		return
	}
	if err != nil {
		writeError(w, r, err)
		return
	}

	httpx.WriteJSON(w, http.StatusOK, toUserResponse(u))
}

// HandlePreferences godoc
//
//	@Summary		Update preferences
//	@Description	Partially update timer preferences. Only pomodoroLength, shortBreakLength, longBreakLength and dailyGoal are accepted.
//	@Tags			Auth
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		focussdk.Preferences			true	"Fields to change"
//	@Success		200		{object}	focussdk.PreferencesResponse	"preferences"
//	@Failure		400		{object}	focussdk.ErrorResponse			"Invalid updates in preferences"
//	@Failure		401		{object}	focussdk.ErrorResponse			"Invalid or missing access token"
//	@Failure		404		{object}	focussdk.ErrorResponse			"User not found"
//	@Router			/api/auth/preferences [patch].
func (h *AuthHandler) HandlePreferences(w http.ResponseWriter, r *http.Request) {
	uid, ok := userID(w, r)
	if !ok {
		return
	}

	var fields map[string]json.RawMessage
	if !decodeBody(w, r, &fields) {
		return
	}

	prefs, err := h.UserService.UpdatePreferences(r.Context(), uid, fields)
	if err != nil {
		writeError(w, r, err)
		return
	}

	httpx.WriteJSON(w, http.StatusOK, focussdk.PreferencesResponse{Preferences: toPreferences(prefs)})
}
