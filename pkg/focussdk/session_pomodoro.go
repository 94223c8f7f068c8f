package focussdk

import (
	"context"
	"net/http"
	"net/url"
	"strconv"
)

func (s *Session) StartSession(ctx context.Context, req StartSessionRequest) (*SessionResponse, error) {
	var out SessionResponse
	if err := s.send(ctx, http.MethodPost, "/api/pomodoro/start", req, &out, http.StatusCreated); err != nil {
		return nil, err
	}
	return &out, nil
}

func (s *Session) GetSession(ctx context.Context, id string) (*SessionResponse, error) {
	var out SessionResponse
	if err := s.get(ctx, "/api/pomodoro/"+url.PathEscape(id), &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (s *Session) EndSession(ctx context.Context, id string, req EndSessionRequest) (*SessionResponse, error) {
	var out SessionResponse
	path := "/api/pomodoro/" + url.PathEscape(id) + "/end"
	if err := s.send(ctx, http.MethodPatch, path, req, &out, http.StatusOK); err != nil {
		return nil, err
	}
	return &out, nil
}

func (s *Session) RecordInterruption(ctx context.Context, id, reason string) (*SessionResponse, error) {
	var out SessionResponse
	path := "/api/pomodoro/" + url.PathEscape(id) + "/interruption"
	if err := s.send(ctx, http.MethodPost, path, InterruptionRequest{Reason: reason}, &out, http.StatusOK); err != nil {
		return nil, err
	}
	return &out, nil
}

// ListSessions returns one page of sessions.
func (s *Session) ListSessions(ctx context.Context, p ListSessionsParams) (*SessionListResponse, error) {
	q := url.Values{}
	if p.Completed != nil {
		q.Set("completed", strconv.FormatBool(*p.Completed))
	}
	if p.Type != "" {
		q.Set("type", p.Type)
	}
	if p.StartDate != "" {
		q.Set("startDate", p.StartDate)
	}
	if p.EndDate != "" {
		q.Set("endDate", p.EndDate)
	}
	if p.Limit != 0 {
		q.Set("limit", strconv.Itoa(p.Limit))
	}
	if p.Skip != 0 {
		q.Set("skip", strconv.Itoa(p.Skip))
	}
	if p.SortBy != "" {
		q.Set("sortBy", p.SortBy)
	}

	path := "/api/pomodoro"
	if len(q) > 0 {
		path += "?" + q.Encode()
	}

	var out SessionListResponse
	if err := s.get(ctx, path, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// GetStats summarises completed sessions between startDate and endDate.
// Empty bounds are omitted.
func (s *Session) GetStats(ctx context.Context, startDate, endDate string) (*StatsResponse, error) {
	q := url.Values{}
	if startDate != "" {
		q.Set("startDate", startDate)
	}
	if endDate != "" {
		q.Set("endDate", endDate)
	}

	path := "/api/pomodoro/stats"
	if len(q) > 0 {
		path += "?" + q.Encode()
	}

	var out StatsResponse
	if err := s.get(ctx, path, &out); err != nil {
		return nil, err
	}
	return &out, nil
}
