package focussdk

import (
	"context"
	"strconv"
)

// GetDailyAnalytics returns per-day trends. days <= 0 uses the server
// default.
func (s *Session) GetDailyAnalytics(ctx context.Context, days int) ([]DailyTrend, error) {
	path := "/api/analytics/daily"
	if days > 0 {
		path += "?days=" + strconv.Itoa(days)
	}

	var out []DailyTrend
	if err := s.get(ctx, path, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (s *Session) GetPatterns(ctx context.Context) ([]HourlyPattern, error) {
	var out []HourlyPattern
	if err := s.get(ctx, "/api/analytics/patterns", &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (s *Session) GetCategories(ctx context.Context) ([]CategoryStat, error) {
	var out []CategoryStat
	if err := s.get(ctx, "/api/analytics/categories", &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (s *Session) GetInsights(ctx context.Context) (*InsightsResponse, error) {
	var out InsightsResponse
	if err := s.get(ctx, "/api/analytics/insights", &out); err != nil {
		return nil, err
	}
	return &out, nil
}
