package focussdk

import (
	"context"
	"net/http"
)

// Session performs requests on behalf of one authenticated user.
type Session struct {
	client *SDKClient
	token  string
}

// Token returns the bearer token.
func (s *Session) Token() string { return s.token }

func (s *Session) get(ctx context.Context, path string, target any) error {
	resp, err := s.client.doRequest(ctx, http.MethodGet, path, s.token, nil)
	if err != nil {
		return err
	}
	return decodeJSON(resp, target, http.StatusOK)
}

func (s *Session) send(ctx context.Context, method, path string, body, target any, expectedStatus int) error {
	resp, err := s.client.doRequest(ctx, method, path, s.token, body)
	if err != nil {
		return err
	}
	return decodeJSON(resp, target, expectedStatus)
}
