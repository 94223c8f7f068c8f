package http

import (
	"fmt"
	"net/url"
	"strconv"
	"time"

	"github.com/aussiebroadwan/focusflow/internal/focusflow/domain"
)

const dateOnly = "2006-01-02"

// parseTime accepts RFC 3339 timestamps or plain dates (UTC midnight).
func parseTime(s string) (time.Time, error) {
	if t, err := time.Parse(time.RFC3339Nano, s); err == nil {
		return t.UTC(), nil
	}
	t, err := time.Parse(dateOnly, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date %q", s)
	}
	return t.UTC(), nil
}

// optionalTime reads key from q. Absent or empty gives nil.
func optionalTime(q url.Values, key string) (*time.Time, error) {
	raw := q.Get(key)
	if raw == "" {
		return nil, nil
	}
	t, err := parseTime(raw)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", key, err)
	}
	return &t, nil
}

// queryInt parses key as an integer. Missing or non-numeric values give 0
// so the caller's defaults apply.
func queryInt(q url.Values, key string) int {
	v, err := strconv.Atoi(q.Get(key))
	if err != nil {
		return 0
	}
	return v
}

// listQuery is the parsed query string of GET /api/pomodoro.
type listQuery struct {
	filter domain.SessionFilter
	sort   domain.SessionSort
	page   domain.Page
}

func parseListQuery(q url.Values) (listQuery, error) {
	var out listQuery

	if raw := q.Get("completed"); raw != "" {
		completed := raw == "true"
		out.filter.Completed = &completed
	}
	out.filter.Type = domain.SessionType(q.Get("type"))

	var err error
	if out.filter.StartFrom, err = optionalTime(q, "startDate"); err != nil {
		return listQuery{}, err
	}
	if out.filter.StartTo, err = optionalTime(q, "endDate"); err != nil {
		return listQuery{}, err
	}

	if out.sort, err = domain.ParseSessionSort(q.Get("sortBy")); err != nil {
		return listQuery{}, err
	}

	out.page = domain.Page{
		Limit: queryInt(q, "limit"),
		Skip:  queryInt(q, "skip"),
	}.Normalize()
	return out, nil
}
