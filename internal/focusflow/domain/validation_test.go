package domain_test

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/aussiebroadwan/focusflow/internal/focusflow/domain"
	"github.com/stretchr/testify/require"
)

func fields(t *testing.T, js string) map[string]json.RawMessage {
	t.Helper()
	var m map[string]json.RawMessage
	require.NoError(t, json.Unmarshal([]byte(js), &m))
	return m
}

func TestValidateRegistration(t *testing.T) {
	tests := []struct {
		name       string
		username   string
		email      string
		password   string
		wantFields []string
	}{
		{"valid", "alice", "alice@example.com", "secret1", nil},
		{"short username", "al", "alice@example.com", "secret1", []string{"username"}},
		{"bad email", "alice", "alice-at-example", "secret1", []string{"email"}},
		{"display name email", "alice", "Alice <alice@example.com>", "secret1", []string{"email"}},
		{"short password", "alice", "alice@example.com", "12345", []string{"password"}},
		{"everything wrong", "", "", "", []string{"username", "email", "password"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			errs := domain.ValidateRegistration(tt.username, tt.email, tt.password)

			var got []string
			for _, fe := range errs {
				got = append(got, fe.Field)
			}
			require.Equal(t, tt.wantFields, got)
		})
	}
}

func TestNormalize(t *testing.T) {
	require.Equal(t, "alice", domain.NormalizeUsername("  alice "))
	require.Equal(t, "alice@example.com", domain.NormalizeEmail(" Alice@Example.COM "))
}

func TestValidateSession(t *testing.T) {
	now := time.Now().UTC()
	base := domain.Session{UserID: "u1", StartTime: now, Duration: 25, Type: domain.SessionTypeWork}

	require.Empty(t, domain.ValidateSession(base))

	bad := base
	bad.Type = "nap"
	require.Equal(t, "type", domain.ValidateSession(bad)[0].Field)

	bad = base
	bad.Duration = 0
	require.Equal(t, "duration", domain.ValidateSession(bad)[0].Field)

	bad = base
	bad.Completed = true
	require.Equal(t, "productivity", domain.ValidateSession(bad)[0].Field)

	for _, p := range []int{0, 11, -3} {
		bad = base
		bad.Completed = true
		bad.Productivity = &p
		errs := domain.ValidateSession(bad)
		require.Len(t, errs, 1, "productivity %d", p)
		require.Equal(t, "productivity", errs[0].Field)
	}

	for _, p := range []int{1, 5, 10} {
		ok := base
		ok.Completed = true
		ok.Productivity = &p
		end := now.Add(25 * time.Minute)
		ok.EndTime = &end
		require.Empty(t, domain.ValidateSession(ok), "productivity %d", p)
	}
}

func TestValidationErrorsErr(t *testing.T) {
	var errs domain.ValidationErrors
	require.NoError(t, errs.Err())

	errs.Add("reason", "Reason is required")
	err := errs.Err()
	require.Error(t, err)
	require.Contains(t, err.Error(), "reason: Reason is required")
}

func TestParsePreferencesPatch(t *testing.T) {
	t.Run("allowed fields", func(t *testing.T) {
		patch, err := domain.ParsePreferencesPatch(fields(t, `{"pomodoroLength": 50, "dailyGoal": 4}`))
		require.NoError(t, err)
		require.Equal(t, 50, *patch.PomodoroLength)
		require.Equal(t, 4, *patch.DailyGoal)
		require.Nil(t, patch.ShortBreakLength)
		require.Nil(t, patch.LongBreakLength)
	})

	t.Run("unknown field", func(t *testing.T) {
		_, err := domain.ParsePreferencesPatch(fields(t, `{"pomodoroLength": 50, "theme": "dark"}`))
		require.ErrorIs(t, err, domain.ErrInvalidPreferenceUpdate)
	})

	t.Run("bad values", func(t *testing.T) {
		_, err := domain.ParsePreferencesPatch(fields(t, `{"pomodoroLength": "long", "dailyGoal": 2.5, "longBreakLength": 0}`))

		var verr domain.ValidationErrors
		require.ErrorAs(t, err, &verr)
		require.Len(t, verr, 3)
	})

	t.Run("empty patch", func(t *testing.T) {
		patch, err := domain.ParsePreferencesPatch(fields(t, `{}`))
		require.NoError(t, err)
		require.True(t, patch.IsEmpty())
	})
}

func TestPreferencesMerge(t *testing.T) {
	goal := 12
	merged := domain.DefaultPreferences().Merge(domain.Preferences{DailyGoal: &goal})

	require.Equal(t, 25, *merged.PomodoroLength)
	require.Equal(t, 5, *merged.ShortBreakLength)
	require.Equal(t, 15, *merged.LongBreakLength)
	require.Equal(t, 12, *merged.DailyGoal)

	// Merge copies, the patch must not alias the result
	goal = 99
	require.Equal(t, 12, *merged.DailyGoal)
}

func TestParseSessionSort(t *testing.T) {
	tests := []struct {
		in      string
		want    domain.SessionSort
		wantErr bool
	}{
		{"", domain.SessionSort{Field: domain.SortStartTime, Desc: true}, false},
		{"duration:desc", domain.SessionSort{Field: domain.SortDuration, Desc: true}, false},
		{"duration:asc", domain.SessionSort{Field: domain.SortDuration}, false},
		{"productivity", domain.SessionSort{Field: domain.SortProductivity}, false},
		{"password:desc", domain.SessionSort{}, true},
		{"startTime:sideways", domain.SessionSort{}, true},
	}

	for _, tt := range tests {
		got, err := domain.ParseSessionSort(tt.in)
		if tt.wantErr {
			require.ErrorIs(t, err, domain.ErrInvalidSort, tt.in)
			continue
		}
		require.NoError(t, err, tt.in)
		require.Equal(t, tt.want, got, tt.in)
	}
}

func TestPage(t *testing.T) {
	require.Equal(t, domain.Page{Limit: 10}, domain.Page{}.Normalize())
	require.Equal(t, domain.Page{Limit: 100, Skip: 0}, domain.Page{Limit: 1000, Skip: -4}.Normalize())

	p := domain.Page{Limit: 10, Skip: 0}
	require.True(t, p.HasMore(15))
	p.Skip = 10
	require.False(t, p.HasMore(15))
}
