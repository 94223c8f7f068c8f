package http

import (
	"github.com/aussiebroadwan/focusflow/internal/focusflow/analytics"
	"github.com/aussiebroadwan/focusflow/internal/focusflow/domain"
	"github.com/aussiebroadwan/focusflow/pkg/focussdk"
)

func toPreferences(p domain.Preferences) focussdk.Preferences {
	return focussdk.Preferences{
		PomodoroLength:   p.PomodoroLength,
		ShortBreakLength: p.ShortBreakLength,
		LongBreakLength:  p.LongBreakLength,
		DailyGoal:        p.DailyGoal,
	}
}

func toUserSummary(u domain.User) focussdk.UserSummary {
	return focussdk.UserSummary{ID: u.ID, Username: u.Username, Email: u.Email}
}

func toUserResponse(u domain.User) focussdk.UserResponse {
	return focussdk.UserResponse{
		ID:          u.ID,
		Username:    u.Username,
		Email:       u.Email,
		Preferences: toPreferences(u.Preferences),
		CreatedAt:   u.CreatedAt,
	}
}

func toDomainTask(t *focussdk.Task) *domain.Task {
	if t == nil {
		return nil
	}
	return &domain.Task{Title: t.Title, Description: t.Description, Category: t.Category}
}

func toSessionResponse(s domain.Session) focussdk.SessionResponse {
	out := focussdk.SessionResponse{
		ID:            s.ID,
		User:          s.UserID,
		StartTime:     s.StartTime,
		EndTime:       s.EndTime,
		Duration:      s.Duration,
		Type:          string(s.Type),
		Completed:     s.Completed,
		Interruptions: make([]focussdk.Interruption, 0, len(s.Interruptions)),
		Productivity:  s.Productivity,
		Notes:         s.Notes,
	}
	if s.Task != nil {
		out.Task = &focussdk.Task{
			Title:       s.Task.Title,
			Description: s.Task.Description,
			Category:    s.Task.Category,
		}
	}
	for _, in := range s.Interruptions {
		out.Interruptions = append(out.Interruptions, focussdk.Interruption{Timestamp: in.Timestamp, Reason: in.Reason})
	}
	return out
}

func toSessionList(p domain.SessionPage) focussdk.SessionListResponse {
	out := focussdk.SessionListResponse{
		Sessions: make([]focussdk.SessionResponse, 0, len(p.Sessions)),
		Total:    p.Total,
		HasMore:  p.HasMore,
	}
	for _, s := range p.Sessions {
		out.Sessions = append(out.Sessions, toSessionResponse(s))
	}
	return out
}

func toStats(s analytics.Summary) focussdk.StatsResponse {
	return focussdk.StatsResponse{
		TotalSessions:      s.TotalSessions,
		TotalMinutes:       s.TotalMinutes,
		AvgProductivity:    s.AvgProductivity,
		TotalInterruptions: s.TotalInterruptions,
	}
}

func toDailyTrends(in []analytics.DailyTrend) []focussdk.DailyTrend {
	out := make([]focussdk.DailyTrend, 0, len(in))
	for _, d := range in {
		out = append(out, focussdk.DailyTrend{
			Date:              d.Date,
			TotalSessions:     d.TotalSessions,
			TotalMinutes:      d.TotalMinutes,
			AvgProductivity:   d.AvgProductivity,
			InterruptionCount: d.InterruptionCount,
		})
	}
	return out
}

func toHourlyPatterns(in []analytics.HourlyPattern) []focussdk.HourlyPattern {
	out := make([]focussdk.HourlyPattern, 0, len(in))
	for _, h := range in {
		out = append(out, focussdk.HourlyPattern{
			Hour:            h.Hour,
			AvgProductivity: h.AvgProductivity,
			TotalSessions:   h.TotalSessions,
			TotalMinutes:    h.TotalMinutes,
		})
	}
	return out
}

func toCategoryStats(in []analytics.CategoryBreakdown) []focussdk.CategoryStat {
	out := make([]focussdk.CategoryStat, 0, len(in))
	for _, c := range in {
		out = append(out, focussdk.CategoryStat{
			Category:          c.Category,
			TotalSessions:     c.TotalSessions,
			TotalMinutes:      c.TotalMinutes,
			AvgProductivity:   c.AvgProductivity,
			InterruptionCount: c.InterruptionCount,
		})
	}
	return out
}

func toInsights(in analytics.Insights) focussdk.InsightsResponse {
	out := focussdk.InsightsResponse{
		ProductiveHours: make([]focussdk.ProductiveHour, 0, len(in.ProductiveHours)),
		Interruptions:   make([]focussdk.InterruptionStat, 0, len(in.Interruptions)),
		Recommendations: make([]focussdk.Recommendation, 0, len(in.Recommendations)),
	}
	for _, h := range in.ProductiveHours {
		out.ProductiveHours = append(out.ProductiveHours, focussdk.ProductiveHour{Hour: h.Hour, AvgProductivity: h.AvgProductivity})
	}
	for _, i := range in.Interruptions {
		out.Interruptions = append(out.Interruptions, focussdk.InterruptionStat{Reason: i.Reason, Count: i.Count})
	}
	for _, rec := range in.Recommendations {
		out.Recommendations = append(out.Recommendations, focussdk.Recommendation{Type: string(rec.Type), Message: rec.Message})
	}
	return out
}
