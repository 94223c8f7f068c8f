// Package analytics folds a user's sessions into summaries, trends and
// recommendations. Every function is pure: callers fetch sessions from the
// store and pass them in, already scoped to one user.
package analytics

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/aussiebroadwan/focusflow/internal/focusflow/domain"
)

const dateLayout = "2006-01-02"

// Summary is the aggregate over a set of sessions.
type Summary struct {
	TotalSessions      int
	TotalMinutes       int
	AvgProductivity    float64
	TotalInterruptions int
}

type DailyTrend struct {
	Date              string // YYYY-MM-DD, UTC
	TotalSessions     int
	TotalMinutes      int
	AvgProductivity   float64
	InterruptionCount int
}

type HourlyPattern struct {
	Hour            int // 0-23, UTC
	AvgProductivity float64
	TotalSessions   int
	TotalMinutes    int
}

type CategoryBreakdown struct {
	Category          string
	TotalSessions     int
	TotalMinutes      int
	AvgProductivity   float64
	InterruptionCount int
}

type ProductiveHour struct {
	Hour            int
	AvgProductivity float64
}

type InterruptionReason struct {
	Reason string
	Count  int
}

type RecommendationType string

const (
	RecommendOptimalTime            RecommendationType = "optimal_time"
	RecommendInterruptionManagement RecommendationType = "interruption_management"
)

type Recommendation struct {
	Type    RecommendationType
	Message string
}

type Insights struct {
	ProductiveHours []ProductiveHour
	Interruptions   []InterruptionReason
	Recommendations []Recommendation
}

// bucket accumulates one group. Productivity is averaged only over the
// sessions that carry a score.
type bucket struct {
	sessions      int
	minutes       int
	interruptions int
	prodSum       int
	prodCount     int
}

func (b *bucket) add(s domain.Session) {
	b.sessions++
	b.minutes += s.Duration
	b.interruptions += len(s.Interruptions)
	if s.Productivity != nil {
		b.prodSum += *s.Productivity
		b.prodCount++
	}
}

func (b *bucket) avg() float64 {
	if b.prodCount == 0 {
		return 0
	}
	return float64(b.prodSum) / float64(b.prodCount)
}

// Summarize totals sessions. An empty input gives the zero Summary.
func Summarize(sessions []domain.Session) Summary {
	var b bucket
	for _, s := range sessions {
		b.add(s)
	}
	return Summary{
		TotalSessions:      b.sessions,
		TotalMinutes:       b.minutes,
		AvgProductivity:    b.avg(),
		TotalInterruptions: b.interruptions,
	}
}

// DailyTrends groups sessions by UTC calendar date of their start time,
// oldest first. Days without sessions are absent.
func DailyTrends(sessions []domain.Session) []DailyTrend {
	groups := map[string]*bucket{}
	for _, s := range sessions {
		key := s.StartTime.UTC().Format(dateLayout)
		if groups[key] == nil {
			groups[key] = &bucket{}
		}
		groups[key].add(s)
	}

	out := make([]DailyTrend, 0, len(groups))
	for date, b := range groups {
		out = append(out, DailyTrend{
			Date:              date,
			TotalSessions:     b.sessions,
			TotalMinutes:      b.minutes,
			AvgProductivity:   b.avg(),
			InterruptionCount: b.interruptions,
		})
	}
	// The layout is fixed width, so lexical order is chronological.
	sort.Slice(out, func(i, j int) bool { return out[i].Date < out[j].Date })
	return out
}

// HourlyPatterns groups sessions by UTC hour of their start time.
func HourlyPatterns(sessions []domain.Session) []HourlyPattern {
	var hours [24]*bucket
	for _, s := range sessions {
		h := s.StartTime.UTC().Hour()
		if hours[h] == nil {
			hours[h] = &bucket{}
		}
		hours[h].add(s)
	}

	out := []HourlyPattern{}
	for h, b := range hours {
		if b == nil {
			continue
		}
		out = append(out, HourlyPattern{
			Hour:            h,
			AvgProductivity: b.avg(),
			TotalSessions:   b.sessions,
			TotalMinutes:    b.minutes,
		})
	}
	return out
}

// Categories groups sessions that have a task category, largest total
// minutes first. Equal totals keep the order the categories first appeared.
func Categories(sessions []domain.Session) []CategoryBreakdown {
	var order []string
	groups := map[string]*bucket{}
	for _, s := range sessions {
		cat := s.Category()
		if cat == "" {
			continue
		}
		if groups[cat] == nil {
			groups[cat] = &bucket{}
			order = append(order, cat)
		}
		groups[cat].add(s)
	}

	out := make([]CategoryBreakdown, 0, len(order))
	for _, cat := range order {
		b := groups[cat]
		out = append(out, CategoryBreakdown{
			Category:          cat,
			TotalSessions:     b.sessions,
			TotalMinutes:      b.minutes,
			AvgProductivity:   b.avg(),
			InterruptionCount: b.interruptions,
		})
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].TotalMinutes > out[j].TotalMinutes })
	return out
}

// ProductiveHours returns up to n hours ranked by average productivity.
// Only scored sessions count. Ties keep ascending hour order.
func ProductiveHours(sessions []domain.Session, n int) []ProductiveHour {
	var scored []domain.Session
	for _, s := range sessions {
		if s.Productivity != nil {
			scored = append(scored, s)
		}
	}

	patterns := HourlyPatterns(scored)
	out := make([]ProductiveHour, 0, len(patterns))
	for _, p := range patterns {
		out = append(out, ProductiveHour{Hour: p.Hour, AvgProductivity: p.AvgProductivity})
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].AvgProductivity > out[j].AvgProductivity })

	if len(out) > n {
		out = out[:n]
	}
	return out
}

// TopInterruptions counts interruption reasons across sessions and returns
// the n most frequent. Ties keep first-seen order.
func TopInterruptions(sessions []domain.Session, n int) []InterruptionReason {
	var order []string
	counts := map[string]int{}
	for _, s := range sessions {
		for _, in := range s.Interruptions {
			if _, seen := counts[in.Reason]; !seen {
				order = append(order, in.Reason)
			}
			counts[in.Reason]++
		}
	}

	out := make([]InterruptionReason, 0, len(order))
	for _, reason := range order {
		out = append(out, InterruptionReason{Reason: reason, Count: counts[reason]})
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].Count > out[j].Count })

	if len(out) > n {
		out = out[:n]
	}
	return out
}

// Recommend renders the two recommendation sentences.
func Recommend(hours []ProductiveHour, interruptions []InterruptionReason) []Recommendation {
	optimal := "Not enough completed sessions yet to identify your most productive hours."
	if len(hours) > 0 {
		labels := make([]string, len(hours))
		for i, h := range hours {
			labels[i] = fmt.Sprintf("%d:00", h.Hour)
		}
		optimal = fmt.Sprintf("Your most productive hours are %s. Try scheduling important tasks during these times.",
			strings.Join(labels, ", "))
	}

	manage := "No significant interruption patterns detected."
	if len(interruptions) > 0 {
		reasons := make([]string, len(interruptions))
		for i, in := range interruptions {
			reasons[i] = in.Reason
		}
		manage = fmt.Sprintf("Common interruptions: %s. Consider addressing these distractions.",
			strings.Join(reasons, ", "))
	}

	return []Recommendation{
		{Type: RecommendOptimalTime, Message: optimal},
		{Type: RecommendInterruptionManagement, Message: manage},
	}
}

const (
	TopProductiveHours   = 3
	TopInterruptionCount = 5
)

// BuildInsights combines the ranking functions. completed feeds the
// productive hours, all feeds the interruption ranking.
func BuildInsights(completed, all []domain.Session) Insights {
	hours := ProductiveHours(completed, TopProductiveHours)
	interruptions := TopInterruptions(all, TopInterruptionCount)
	return Insights{
		ProductiveHours: hours,
		Interruptions:   interruptions,
		Recommendations: Recommend(hours, interruptions),
	}
}

const (
	DefaultWindowDays = 7
	MaxWindowDays     = 366
)

// NormalizeDays maps non-positive windows to the default and caps large
// ones.
func NormalizeDays(days int) int {
	if days <= 0 {
		return DefaultWindowDays
	}
	return min(days, MaxWindowDays)
}

// Window returns the inclusive start-time range covering the last days
// days up to now.
func Window(now time.Time, days int) (from, to time.Time) {
	return now.AddDate(0, 0, -days), now
}
