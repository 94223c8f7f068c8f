package http

import (
	"net/url"
	"testing"
	"time"

	"github.com/aussiebroadwan/focusflow/internal/focusflow/domain"
	"github.com/stretchr/testify/require"
)

func TestParseTime(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in      string
		want    time.Time
		wantErr bool
	}{
		{in: "2024-03-10", want: time.Date(2024, 3, 10, 0, 0, 0, 0, time.UTC)},
		{in: "2024-03-10T08:30:00Z", want: time.Date(2024, 3, 10, 8, 30, 0, 0, time.UTC)},
		{in: "2024-03-10T10:30:00+02:00", want: time.Date(2024, 3, 10, 8, 30, 0, 0, time.UTC)},
		{in: "10/03/2024", wantErr: true},
		{in: "2024-02-30", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := parseTime(tt.in)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			require.True(t, tt.want.Equal(got), "got %s", got)
			require.Equal(t, time.UTC, got.Location())
		})
	}
}

func TestParseListQuery(t *testing.T) {
	t.Parallel()

	t.Run("defaults", func(t *testing.T) {
		q, err := parseListQuery(url.Values{})
		require.NoError(t, err)
		require.Nil(t, q.filter.Completed)
		require.Empty(t, q.filter.Type)
		require.Nil(t, q.filter.StartFrom)
		require.Equal(t, domain.DefaultSessionSort(), q.sort)
		require.Equal(t, domain.Page{Limit: domain.DefaultPageLimit}, q.page)
	})

	t.Run("completed is true only for the literal", func(t *testing.T) {
		for raw, want := range map[string]bool{"true": true, "false": false, "yes": false} {
			q, err := parseListQuery(url.Values{"completed": {raw}})
			require.NoError(t, err)
			require.NotNil(t, q.filter.Completed)
			require.Equal(t, want, *q.filter.Completed, raw)
		}
	})

	t.Run("empty completed does not filter", func(t *testing.T) {
		q, err := parseListQuery(url.Values{"completed": {""}})
		require.NoError(t, err)
		require.Nil(t, q.filter.Completed)
	})

	t.Run("paging", func(t *testing.T) {
		q, err := parseListQuery(url.Values{"limit": {"500"}, "skip": {"-3"}})
		require.NoError(t, err)
		require.Equal(t, domain.Page{Limit: domain.MaxPageLimit, Skip: 0}, q.page)

		q, err = parseListQuery(url.Values{"limit": {"abc"}, "skip": {"20"}})
		require.NoError(t, err)
		require.Equal(t, domain.Page{Limit: domain.DefaultPageLimit, Skip: 20}, q.page)
	})

	t.Run("filters and sort", func(t *testing.T) {
		q, err := parseListQuery(url.Values{
			"type":      {"work"},
			"startDate": {"2024-03-01"},
			"endDate":   {"2024-03-31T23:59:59Z"},
			"sortBy":    {"productivity:desc"},
		})
		require.NoError(t, err)
		require.Equal(t, domain.SessionTypeWork, q.filter.Type)
		require.Equal(t, time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC), *q.filter.StartFrom)
		require.Equal(t, time.Date(2024, 3, 31, 23, 59, 59, 0, time.UTC), *q.filter.StartTo)
		require.Equal(t, domain.SessionSort{Field: domain.SortProductivity, Desc: true}, q.sort)
	})

	t.Run("errors", func(t *testing.T) {
		_, err := parseListQuery(url.Values{"sortBy": {"hash:asc"}})
		require.ErrorIs(t, err, domain.ErrInvalidSort)

		_, err = parseListQuery(url.Values{"startDate": {"soon"}})
		require.ErrorContains(t, err, "startDate")
	})
}
