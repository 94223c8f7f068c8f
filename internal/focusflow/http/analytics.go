package http

import (
	"net/http"

	"github.com/aussiebroadwan/focusflow/internal/focusflow/service"
	"github.com/aussiebroadwan/focusflow/pkg/httpx"
)

type AnalyticsHandler struct {
	AnalyticsService *service.AnalyticsService
}

// HandleDaily godoc
//
//	@Summary		Daily trends
//	@Description	Per-day totals over completed sessions in the trailing window, oldest day first.
//	@Tags			Analytics
//	@Security		BearerAuth
//	@Produce		json
//	@Param			days	query		int						false	"Window length in days (default 7)"
//	@Success		200		{array}		focussdk.DailyTrend		"date, totalSessions, totalMinutes, avgProductivity, interruptionCount"
//	@Failure		401		{object}	focussdk.ErrorResponse	"Invalid or missing access token"
//	@Failure		500		{object}	focussdk.ErrorResponse	"Internal server error"
//	@Router			/api/analytics/daily [get].
func (h *AnalyticsHandler) HandleDaily(w http.ResponseWriter, r *http.Request) {
	uid, ok := userID(w, r)
	if !ok {
		return
	}

	trends, err := h.AnalyticsService.Daily(r.Context(), uid, queryInt(r.URL.Query(), "days"))
	if err != nil {
		writeError(w, r, err)
		return
	}

	httpx.WriteJSON(w, http.StatusOK, toDailyTrends(trends))
}

// HandlePatterns godoc
//
//	@Summary		Hourly patterns
//	@Description	Completed sessions grouped by hour of day (UTC), ascending.
//	@Tags			Analytics
//	@Security		BearerAuth
//	@Produce		json
//	@Success		200	{array}		focussdk.HourlyPattern	"hour, avgProductivity, totalSessions, totalMinutes"
//	@Failure		401	{object}	focussdk.ErrorResponse	"Invalid or missing access token"
//	@Failure		500	{object}	focussdk.ErrorResponse	"Internal server error"
//	@Router			/api/analytics/patterns [get].
func (h *AnalyticsHandler) HandlePatterns(w http.ResponseWriter, r *http.Request) {
	uid, ok := userID(w, r)
	if !ok {
		return
	}

	patterns, err := h.AnalyticsService.Patterns(r.Context(), uid)
	if err != nil {
		writeError(w, r, err)
		return
	}

	httpx.WriteJSON(w, http.StatusOK, toHourlyPatterns(patterns))
}

// HandleCategories godoc
//
//	@Summary		Category breakdown
//	@Description	Completed sessions with a task category, grouped by category, most minutes first.
//	@Tags			Analytics
//	@Security		BearerAuth
//	@Produce		json
//	@Success		200	{array}		focussdk.CategoryStat	"category, totalSessions, totalMinutes, avgProductivity, interruptionCount"
//	@Failure		401	{object}	focussdk.ErrorResponse	"Invalid or missing access token"
//	@Failure		500	{object}	focussdk.ErrorResponse	"Internal server error"
//	@Router			/api/analytics/categories [get].
func (h *AnalyticsHandler) HandleCategories(w http.ResponseWriter, r *http.Request) {
	uid, ok := userID(w, r)
	if !ok {
		return
	}

	cats, err := h.AnalyticsService.Categories(r.Context(), uid)
	if err != nil {
		writeError(w, r, err)
		return
	}

	httpx.WriteJSON(w, http.StatusOK, toCategoryStats(cats))
}

// HandleInsights godoc
//
//	@Summary		Insights
//	@Description	Most productive hours, most frequent interruption reasons and recommendations derived from them.
//	@Tags			Analytics
//	@Security		BearerAuth
//	@Produce		json
//	@Success		200	{object}	focussdk.InsightsResponse	"productiveHours, interruptions, recommendations"
//	@Failure		401	{object}	focussdk.ErrorResponse		"Invalid or missing access token"
//	@Failure		500	{object}	focussdk.ErrorResponse		"Internal server error"
//	@Router			/api/analytics/insights [get].
func (h *AnalyticsHandler) HandleInsights(w http.ResponseWriter, r *http.Request) {
	uid, ok := userID(w, r)
	if !ok {
		return
	}

	insights, err := h.AnalyticsService.Insights(r.Context(), uid)
	if err != nil {
		writeError(w, r, err)
		return
	}

	httpx.WriteJSON(w, http.StatusOK, toInsights(insights))
}
