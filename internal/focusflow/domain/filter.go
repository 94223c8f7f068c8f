package domain

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

// SessionFilter narrows session queries. Zero values mean "any".
type SessionFilter struct {
	Completed *bool
	Type      SessionType
	StartFrom *time.Time // inclusive
	StartTo   *time.Time // inclusive
}

// SortField names a sortable session attribute using its API name.
type SortField string

const (
	SortStartTime    SortField = "startTime"
	SortEndTime      SortField = "endTime"
	SortDuration     SortField = "duration"
	SortType         SortField = "type"
	SortCompleted    SortField = "completed"
	SortProductivity SortField = "productivity"
)

// Valid reports whether f is sortable.
func (f SortField) Valid() bool {
	switch f {
	case SortStartTime, SortEndTime, SortDuration, SortType, SortCompleted, SortProductivity:
		return true
	}
	return false
}

type SessionSort struct {
	Field SortField
	Desc  bool
}

// DefaultSessionSort lists newest sessions first.
func DefaultSessionSort() SessionSort {
	return SessionSort{Field: SortStartTime, Desc: true}
}

var ErrInvalidSort = errors.New("invalid sort")

// ParseSessionSort reads "field:desc" or "field:asc". A missing direction
// sorts ascending; an empty string gives DefaultSessionSort.
func ParseSessionSort(s string) (SessionSort, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return DefaultSessionSort(), nil
	}

	field, dir, _ := strings.Cut(s, ":")
	out := SessionSort{Field: SortField(field), Desc: strings.EqualFold(dir, "desc")}
	if !out.Field.Valid() {
		return SessionSort{}, fmt.Errorf("%w: unknown field %q", ErrInvalidSort, field)
	}
	if dir != "" && !out.Desc && !strings.EqualFold(dir, "asc") {
		return SessionSort{}, fmt.Errorf("%w: unknown direction %q", ErrInvalidSort, dir)
	}
	return out, nil
}

const (
	DefaultPageLimit = 10
	MaxPageLimit     = 100
)

// Page is an offset window over a sorted result.
type Page struct {
	Limit int
	Skip  int
}

// Normalize applies defaults and bounds.
func (p Page) Normalize() Page {
	if p.Limit <= 0 {
		p.Limit = DefaultPageLimit
	}
	if p.Limit > MaxPageLimit {
		p.Limit = MaxPageLimit
	}
	if p.Skip < 0 {
		p.Skip = 0
	}
	return p
}

// HasMore reports whether rows exist past this page.
func (p Page) HasMore(total int) bool {
	return total > p.Skip+p.Limit
}

// SessionPage is one page of a session listing.
type SessionPage struct {
	Sessions []Session
	Total    int
	HasMore  bool
}
