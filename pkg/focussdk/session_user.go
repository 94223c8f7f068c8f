package focussdk

import (
	"context"
	"net/http"
)

// Me returns the authenticated user's profile.
func (s *Session) Me(ctx context.Context) (*UserResponse, error) {
	var out UserResponse
	if err := s.get(ctx, "/api/auth/me", &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// UpdatePreferences sends a partial preference update. The map is sent as
// is so callers control exactly which keys appear.
func (s *Session) UpdatePreferences(ctx context.Context, fields map[string]any) (*PreferencesResponse, error) {
	var out PreferencesResponse
	if err := s.send(ctx, http.MethodPatch, "/api/auth/preferences", fields, &out, http.StatusOK); err != nil {
		return nil, err
	}
	return &out, nil
}
