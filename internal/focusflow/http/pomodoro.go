package http

import (
	"net/http"

	"github.com/aussiebroadwan/focusflow/internal/focusflow/domain"
	"github.com/aussiebroadwan/focusflow/internal/focusflow/service"
	"github.com/aussiebroadwan/focusflow/pkg/focussdk"
	"github.com/aussiebroadwan/focusflow/pkg/httpx"
)

type PomodoroHandler struct {
	SessionService *service.SessionService
}

// HandleStart godoc
//
//	@Summary		Start a session
//	@Description	Begin a work or break interval. The start time is set by the server.
//	@Tags			Pomodoro
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		focussdk.StartSessionRequest		true	"duration, type, optional task"
//	@Success		201		{object}	focussdk.SessionResponse			"The new session"
//	@Failure		400		{object}	focussdk.ValidationErrorResponse	"Validation failed"
//	@Failure		401		{object}	focussdk.ErrorResponse				"Invalid or missing access token"
//	@Router			/api/pomodoro/start [post].
func (h *PomodoroHandler) HandleStart(w http.ResponseWriter, r *http.Request) {
	uid, ok := userID(w, r)
	if !ok {
		return
	}

	var req focussdk.StartSessionRequest
	if !decodeBody(w, r, &req) {
		return
	}

	sess, err := h.SessionService.Start(r.Context(), uid, service.StartInput{
		Duration: req.Duration,
		Type:     domain.SessionType(req.Type),
		Task:     toDomainTask(req.Task),
	})
	if err != nil {
		writeError(w, r, err)
		return
	}

	httpx.WriteJSON(w, http.StatusCreated, toSessionResponse(sess))
}

// HandleGet godoc
//
//	@Summary		Get a session
//	@Tags			Pomodoro
//	@Security		BearerAuth
//	@Produce		json
//	@Param			id	path		string						true	"Session ID"
//	@Success		200	{object}	focussdk.SessionResponse	"The session"
//	@Failure		401	{object}	focussdk.ErrorResponse		"Invalid or missing access token"
//	@Failure		404	{object}	focussdk.ErrorResponse		"Session not found"
//	@Router			/api/pomodoro/{id} [get].
func (h *PomodoroHandler) HandleGet(w http.ResponseWriter, r *http.Request) {
	uid, ok := userID(w, r)
	if !ok {
		return
	}

	sess, err := h.SessionService.Get(r.Context(), uid, r.PathValue("id"))
	if err != nil {
		writeError(w, r, err)
		return
	}

	httpx.WriteJSON(w, http.StatusOK, toSessionResponse(sess))
}

// HandleEnd godoc
//
//	@Summary		End a session
//	@Description	Mark a session completed with a productivity score from 1 to 10. Ending again overwrites the previous result.
//	@Tags			Pomodoro
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			id		path		string								true	"Session ID"
//	@Param			request	body		focussdk.EndSessionRequest			true	"productivity, notes"
//	@Success		200		{object}	focussdk.SessionResponse			"The completed session"
//	@Failure		400		{object}	focussdk.ValidationErrorResponse	"Validation failed"
//	@Failure		401		{object}	focussdk.ErrorResponse				"Invalid or missing access token"
//	@Failure		404		{object}	focussdk.ErrorResponse				"Session not found"
//	@Router			/api/pomodoro/{id}/end [patch].
func (h *PomodoroHandler) HandleEnd(w http.ResponseWriter, r *http.Request) {
	uid, ok := userID(w, r)
	if !ok {
		return
	}

	var req focussdk.EndSessionRequest
	if !decodeBody(w, r, &req) {
		return
	}

	sess, err := h.SessionService.End(r.Context(), uid, r.PathValue("id"), req.Productivity, req.Notes)
	if err != nil {
		writeError(w, r, err)
		return
	}

	httpx.WriteJSON(w, http.StatusOK, toSessionResponse(sess))
}

// HandleInterruption godoc
//
//	@Summary		Record an interruption
//	@Description	Append a timestamped interruption to the session.
//	@Tags			Pomodoro
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			id		path		string								true	"Session ID"
//	@Param			request	body		focussdk.InterruptionRequest		true	"reason"
//	@Success		200		{object}	focussdk.SessionResponse			"The updated session"
//	@Failure		400		{object}	focussdk.ValidationErrorResponse	"Validation failed"
//	@Failure		401		{object}	focussdk.ErrorResponse				"Invalid or missing access token"
//	@Failure		404		{object}	focussdk.ErrorResponse				"Session not found"
//	@Router			/api/pomodoro/{id}/interruption [post].
func (h *PomodoroHandler) HandleInterruption(w http.ResponseWriter, r *http.Request) {
	uid, ok := userID(w, r)
	if !ok {
		return
	}

	var req focussdk.InterruptionRequest
	if !decodeBody(w, r, &req) {
		return
	}

	sess, err := h.SessionService.RecordInterruption(r.Context(), uid, r.PathValue("id"), req.Reason)
	if err != nil {
		writeError(w, r, err)
		return
	}

	httpx.WriteJSON(w, http.StatusOK, toSessionResponse(sess))
}

// HandleList godoc
//
//	@Summary		List sessions
//	@Tags			Pomodoro
//	@Security		BearerAuth
//	@Produce		json
//	@Param			completed	query		bool							false	"Only completed (true) or in-progress (false) sessions"
//	@Param			type		query		string							false	"work, shortBreak or longBreak"
//	@Param			startDate	query		string							false	"Earliest start time (RFC 3339 or YYYY-MM-DD)"
//	@Param			endDate		query		string							false	"Latest start time (RFC 3339 or YYYY-MM-DD)"
//	@Param			limit		query		int								false	"Page size (default 10, max 100)"
//	@Param			skip		query		int								false	"Rows to skip"
//	@Param			sortBy		query		string							false	"field:asc or field:desc (default startTime:desc)"
//	@Success		200			{object}	focussdk.SessionListResponse	"sessions, total, hasMore"
//	@Failure		400			{object}	focussdk.ErrorResponse			"Invalid query"
//	@Failure		401			{object}	focussdk.ErrorResponse			"Invalid or missing access token"
//	@Failure		500			{object}	focussdk.ErrorResponse			"Internal server error"
//	@Router			/api/pomodoro [get].
func (h *PomodoroHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	uid, ok := userID(w, r)
	if !ok {
		return
	}

	q, err := parseListQuery(r.URL.Query())
	if err != nil {
		writeQueryError(w, err)
		return
	}

	page, err := h.SessionService.List(r.Context(), uid, q.filter, q.sort, q.page)
	if err != nil {
		writeError(w, r, err)
		return
	}

	httpx.WriteJSON(w, http.StatusOK, toSessionList(page))
}

// HandleStats godoc
//
//	@Summary		Session statistics
//	@Description	Totals over completed sessions started in [startDate, endDate]. Defaults to all time up to now.
//	@Tags			Pomodoro
//	@Security		BearerAuth
//	@Produce		json
//	@Param			startDate	query		string					false	"RFC 3339 or YYYY-MM-DD"
//	@Param			endDate		query		string					false	"RFC 3339 or YYYY-MM-DD"
//	@Success		200			{object}	focussdk.StatsResponse	"totalSessions, totalMinutes, avgProductivity, totalInterruptions"
//	@Failure		400			{object}	focussdk.ErrorResponse	"Invalid date"
//	@Failure		401			{object}	focussdk.ErrorResponse	"Invalid or missing access token"
//	@Failure		500			{object}	focussdk.ErrorResponse	"Internal server error"
//	@Router			/api/pomodoro/stats [get].
func (h *PomodoroHandler) HandleStats(w http.ResponseWriter, r *http.Request) {
	uid, ok := userID(w, r)
	if !ok {
		return
	}

	q := r.URL.Query()
	from, err := optionalTime(q, "startDate")
	if err != nil {
		writeQueryError(w, err)
		return
	}
	to, err := optionalTime(q, "endDate")
	if err != nil {
		writeQueryError(w, err)
		return
	}

	stats, err := h.SessionService.Stats(r.Context(), uid, from, to)
	if err != nil {
		writeError(w, r, err)
		return
	}

	httpx.WriteJSON(w, http.StatusOK, toStats(stats))
}

func writeQueryError(w http.ResponseWriter, err error) {
	focussdk.NewAPIError(http.StatusBadRequest, focussdk.ErrorCodeInvalidRequest, err.Error()).WriteError(w)
}
