package service

import (
	"context"
	"fmt"
	"time"

	"github.com/aussiebroadwan/focusflow/internal/focusflow/analytics"
	"github.com/aussiebroadwan/focusflow/internal/focusflow/domain"
	"github.com/aussiebroadwan/focusflow/internal/focusflow/store"
)

// AnalyticsService loads a user's sessions and hands them to the analytics
// folds.
type AnalyticsService struct {
	Store store.Store
	Now   func() time.Time
}

func (s *AnalyticsService) now() time.Time {
	if s.Now != nil {
		return s.Now().UTC()
	}
	return time.Now().UTC()
}

func (s *AnalyticsService) completed(ctx context.Context, userID string, from, to *time.Time) ([]domain.Session, error) {
	sessions, err := s.Store.Sessions().FindSessions(ctx, userID, store.CompletedBetween(from, to))
	if err != nil {
		return nil, fmt.Errorf("find sessions: %w", err)
	}
	return sessions, nil
}

// Daily returns per-day trends over the last days days.
func (s *AnalyticsService) Daily(ctx context.Context, userID string, days int) ([]analytics.DailyTrend, error) {
	from, to := analytics.Window(s.now(), analytics.NormalizeDays(days))

	sessions, err := s.completed(ctx, userID, &from, &to)
	if err != nil {
		return nil, err
	}
	return analytics.DailyTrends(sessions), nil
}

// Patterns returns hour-of-day patterns over all completed sessions.
func (s *AnalyticsService) Patterns(ctx context.Context, userID string) ([]analytics.HourlyPattern, error) {
	sessions, err := s.completed(ctx, userID, nil, nil)
	if err != nil {
		return nil, err
	}
	return analytics.HourlyPatterns(sessions), nil
}

func (s *AnalyticsService) Categories(ctx context.Context, userID string) ([]analytics.CategoryBreakdown, error) {
	sessions, err := s.completed(ctx, userID, nil, nil)
	if err != nil {
		return nil, err
	}
	return analytics.Categories(sessions), nil
}

// Insights ranks productive hours over completed sessions and
// interruptions over every session the user has.
func (s *AnalyticsService) Insights(ctx context.Context, userID string) (analytics.Insights, error) {
	completed, err := s.completed(ctx, userID, nil, nil)
	if err != nil {
		return analytics.Insights{}, err
	}

	all, err := s.Store.Sessions().FindSessions(ctx, userID, domain.SessionFilter{})
	if err != nil {
		return analytics.Insights{}, fmt.Errorf("find sessions: %w", err)
	}

	return analytics.BuildInsights(completed, all), nil
}
