// Package storetest holds the behaviour every store driver must share. Each
// driver's tests call Run with a freshly migrated store.
package storetest

import (
	"fmt"
	"testing"
	"time"

	"github.com/aussiebroadwan/focusflow/internal/focusflow/domain"
	"github.com/aussiebroadwan/focusflow/internal/focusflow/store"
	"github.com/aussiebroadwan/focusflow/pkg/idx"
	"github.com/stretchr/testify/require"
)

// Run exercises s against the store contract.
func Run(t *testing.T, s store.Store) {
	t.Helper()

	t.Run("Users", func(t *testing.T) { testUsers(t, s) })
	t.Run("Preferences", func(t *testing.T) { testPreferences(t, s) })
	t.Run("SessionLifecycle", func(t *testing.T) { testSessionLifecycle(t, s) })
	t.Run("SessionOwnership", func(t *testing.T) { testSessionOwnership(t, s) })
	t.Run("Interruptions", func(t *testing.T) { testInterruptions(t, s) })
	t.Run("ListPagination", func(t *testing.T) { testListPagination(t, s) })
	t.Run("ListFiltersAndSort", func(t *testing.T) { testListFiltersAndSort(t, s) })
	t.Run("FindSessions", func(t *testing.T) { testFindSessions(t, s) })
}

// NewUser inserts a user with unique identifiers and returns it.
func NewUser(t *testing.T, s store.Store) domain.User {
	t.Helper()

	id := idx.New().String()
	u := domain.User{
		ID:           id,
		Username:     "user-" + id,
		Email:        "user-" + id + "@example.com",
		PasswordHash: "$argon2id$v=19$m=19456,t=2,p=1$c2FsdA$aGFzaA",
		Preferences:  domain.DefaultPreferences(),
		CreatedAt:    time.Now().UTC().Truncate(time.Millisecond),
	}
	require.NoError(t, s.Users().CreateUser(t.Context(), u))
	return u
}

// NewSession inserts an in-progress work session for userID.
func NewSession(t *testing.T, s store.Store, userID string, start time.Time, mutate ...func(*domain.Session)) domain.Session {
	t.Helper()

	start = start.UTC().Truncate(time.Millisecond)
	sess := domain.Session{
		ID:        idx.NewAt(start).String(),
		UserID:    userID,
		StartTime: start,
		Duration:  25,
		Type:      domain.SessionTypeWork,
	}
	for _, m := range mutate {
		m(&sess)
	}

	require.NoError(t, s.Sessions().CreateSession(t.Context(), sess))
	return sess
}

func testUsers(t *testing.T, s store.Store) {
	ctx := t.Context()
	u := NewUser(t, s)

	got, err := s.Users().GetUserByID(ctx, u.ID)
	require.NoError(t, err)
	require.Equal(t, u.Username, got.Username)
	require.Equal(t, u.Email, got.Email)
	require.Equal(t, u.PasswordHash, got.PasswordHash)
	require.True(t, u.CreatedAt.Equal(got.CreatedAt), "created_at %v != %v", u.CreatedAt, got.CreatedAt)

	got, err = s.Users().GetUserByEmail(ctx, u.Email)
	require.NoError(t, err)
	require.Equal(t, u.ID, got.ID)

	_, err = s.Users().GetUserByID(ctx, idx.New().String())
	require.ErrorIs(t, err, store.ErrNotFound)

	_, err = s.Users().GetUserByEmail(ctx, "nobody@example.com")
	require.ErrorIs(t, err, store.ErrNotFound)

	// Duplicate email, fresh username
	dup := u
	dup.ID = idx.New().String()
	dup.Username = "other-" + dup.ID
	require.ErrorIs(t, s.Users().CreateUser(ctx, dup), store.ErrAlreadyExists)

	// Duplicate username, fresh email
	dup.Username = u.Username
	dup.Email = "other-" + dup.ID + "@example.com"
	require.ErrorIs(t, s.Users().CreateUser(ctx, dup), store.ErrAlreadyExists)

	found, err := s.Users().FindUserByEmailOrUsername(ctx, "nobody@example.com", u.Username)
	require.NoError(t, err)
	require.Equal(t, u.ID, found.ID)

	found, err = s.Users().FindUserByEmailOrUsername(ctx, u.Email, "nobody")
	require.NoError(t, err)
	require.Equal(t, u.ID, found.ID)

	_, err = s.Users().FindUserByEmailOrUsername(ctx, "nobody@example.com", "nobody")
	require.ErrorIs(t, err, store.ErrNotFound)

	require.NoError(t, s.Users().UpdatePasswordHash(ctx, u.ID, "$2a$10$replaced"))
	got, err = s.Users().GetUserByID(ctx, u.ID)
	require.NoError(t, err)
	require.Equal(t, "$2a$10$replaced", got.PasswordHash)

	require.ErrorIs(t, s.Users().UpdatePasswordHash(ctx, idx.New().String(), "x"), store.ErrNotFound)
}

func testPreferences(t *testing.T, s store.Store) {
	ctx := t.Context()
	u := NewUser(t, s)

	goal, length := 3, 50
	prefs, err := s.Users().UpdatePreferences(ctx, u.ID, domain.Preferences{DailyGoal: &goal, PomodoroLength: &length})
	require.NoError(t, err)
	require.Equal(t, 50, *prefs.PomodoroLength)
	require.Equal(t, 5, *prefs.ShortBreakLength)
	require.Equal(t, 15, *prefs.LongBreakLength)
	require.Equal(t, 3, *prefs.DailyGoal)

	// Empty patch leaves everything alone
	prefs, err = s.Users().UpdatePreferences(ctx, u.ID, domain.Preferences{})
	require.NoError(t, err)
	require.Equal(t, 50, *prefs.PomodoroLength)

	got, err := s.Users().GetUserByID(ctx, u.ID)
	require.NoError(t, err)
	require.Equal(t, prefs, got.Preferences)

	_, err = s.Users().UpdatePreferences(ctx, idx.New().String(), domain.Preferences{DailyGoal: &goal})
	require.ErrorIs(t, err, store.ErrNotFound)
}

func testSessionLifecycle(t *testing.T, s store.Store) {
	ctx := t.Context()
	u := NewUser(t, s)

	start := time.Now().Add(-30 * time.Minute)
	created := NewSession(t, s, u.ID, start, func(sess *domain.Session) {
		sess.Task = &domain.Task{Title: "Write report", Description: "Q3", Category: "writing"}
	})

	got, err := s.Sessions().GetSession(ctx, u.ID, created.ID)
	require.NoError(t, err)
	require.Equal(t, created.ID, got.ID)
	require.Equal(t, u.ID, got.UserID)
	require.True(t, created.StartTime.Equal(got.StartTime))
	require.Equal(t, 25, got.Duration)
	require.Equal(t, domain.SessionTypeWork, got.Type)
	require.False(t, got.Completed)
	require.Nil(t, got.EndTime)
	require.Nil(t, got.Productivity)
	require.Empty(t, got.Interruptions)
	require.Equal(t, &domain.Task{Title: "Write report", Description: "Q3", Category: "writing"}, got.Task)

	end := time.Now().UTC().Truncate(time.Millisecond)
	require.NoError(t, s.Sessions().EndSession(ctx, u.ID, created.ID, domain.SessionEnd{
		EndTime:      end,
		Productivity: 8,
		Notes:        "good flow",
	}))

	got, err = s.Sessions().GetSession(ctx, u.ID, created.ID)
	require.NoError(t, err)
	require.True(t, got.Completed)
	require.NotNil(t, got.EndTime)
	require.True(t, end.Equal(*got.EndTime))
	require.Equal(t, 8, *got.Productivity)
	require.Equal(t, "good flow", got.Notes)

	// Ending again replaces the previous outcome, including notes
	again := end.Add(time.Minute)
	require.NoError(t, s.Sessions().EndSession(ctx, u.ID, created.ID, domain.SessionEnd{
		EndTime:      again,
		Productivity: 9,
	}))

	got, err = s.Sessions().GetSession(ctx, u.ID, created.ID)
	require.NoError(t, err)
	require.True(t, again.Equal(*got.EndTime))
	require.Equal(t, 9, *got.Productivity)
	require.Empty(t, got.Notes)

	// No task stays no task
	bare := NewSession(t, s, u.ID, start.Add(time.Minute))
	got, err = s.Sessions().GetSession(ctx, u.ID, bare.ID)
	require.NoError(t, err)
	require.Nil(t, got.Task)
}

func testSessionOwnership(t *testing.T, s store.Store) {
	ctx := t.Context()
	owner := NewUser(t, s)
	other := NewUser(t, s)

	sess := NewSession(t, s, owner.ID, time.Now())

	_, err := s.Sessions().GetSession(ctx, other.ID, sess.ID)
	require.ErrorIs(t, err, store.ErrNotFound)

	err = s.Sessions().EndSession(ctx, other.ID, sess.ID, domain.SessionEnd{EndTime: time.Now(), Productivity: 5})
	require.ErrorIs(t, err, store.ErrNotFound)

	err = s.Sessions().AppendInterruption(ctx, other.ID, sess.ID, domain.Interruption{Timestamp: time.Now(), Reason: "phone"})
	require.ErrorIs(t, err, store.ErrNotFound)

	_, err = s.Sessions().GetSession(ctx, owner.ID, idx.New().String())
	require.ErrorIs(t, err, store.ErrNotFound)

	// The owner's session must be untouched
	got, err := s.Sessions().GetSession(ctx, owner.ID, sess.ID)
	require.NoError(t, err)
	require.False(t, got.Completed)
	require.Empty(t, got.Interruptions)
}

func testInterruptions(t *testing.T, s store.Store) {
	ctx := t.Context()
	u := NewUser(t, s)
	sess := NewSession(t, s, u.ID, time.Now())

	base := time.Now().UTC().Truncate(time.Millisecond)
	const n = 5
	for i := range n {
		require.NoError(t, s.Sessions().AppendInterruption(ctx, u.ID, sess.ID, domain.Interruption{
			Timestamp: base.Add(time.Duration(i) * time.Second),
			Reason:    fmt.Sprintf("reason-%d", i),
		}))
	}

	got, err := s.Sessions().GetSession(ctx, u.ID, sess.ID)
	require.NoError(t, err)
	require.Len(t, got.Interruptions, n)
	for i, in := range got.Interruptions {
		require.Equal(t, fmt.Sprintf("reason-%d", i), in.Reason)
		require.True(t, base.Add(time.Duration(i)*time.Second).Equal(in.Timestamp))
	}

	// Appending after the session ended is allowed
	require.NoError(t, s.Sessions().EndSession(ctx, u.ID, sess.ID, domain.SessionEnd{EndTime: time.Now(), Productivity: 6}))
	require.NoError(t, s.Sessions().AppendInterruption(ctx, u.ID, sess.ID, domain.Interruption{Timestamp: time.Now(), Reason: "late"}))

	got, err = s.Sessions().GetSession(ctx, u.ID, sess.ID)
	require.NoError(t, err)
	require.Len(t, got.Interruptions, n+1)
	require.Equal(t, "late", got.Interruptions[n].Reason)
}

func testListPagination(t *testing.T, s store.Store) {
	ctx := t.Context()
	u := NewUser(t, s)
	noise := NewUser(t, s)

	base := time.Now().Add(-24 * time.Hour)
	for i := range 15 {
		NewSession(t, s, u.ID, base.Add(time.Duration(i)*time.Minute))
	}
	NewSession(t, s, noise.ID, base)

	sort := domain.DefaultSessionSort()

	first, total, err := s.Sessions().ListSessions(ctx, u.ID, domain.SessionFilter{}, sort, domain.Page{Limit: 10, Skip: 0})
	require.NoError(t, err)
	require.Equal(t, 15, total)
	require.Len(t, first, 10)

	// Newest first
	for i := 1; i < len(first); i++ {
		require.True(t, first[i-1].StartTime.After(first[i].StartTime))
	}

	rest, total, err := s.Sessions().ListSessions(ctx, u.ID, domain.SessionFilter{}, sort, domain.Page{Limit: 10, Skip: 10})
	require.NoError(t, err)
	require.Equal(t, 15, total)
	require.Len(t, rest, 5)
	require.True(t, first[9].StartTime.After(rest[0].StartTime))

	for _, sess := range append(first, rest...) {
		require.Equal(t, u.ID, sess.UserID)
	}
}

func testListFiltersAndSort(t *testing.T, s store.Store) {
	ctx := t.Context()
	u := NewUser(t, s)

	day := time.Date(2024, 3, 10, 9, 0, 0, 0, time.UTC)
	eight := 8

	NewSession(t, s, u.ID, day, func(sess *domain.Session) {
		sess.Duration = 50
		sess.Completed = true
		sess.Productivity = &eight
		end := sess.StartTime.Add(50 * time.Minute)
		sess.EndTime = &end
	})
	NewSession(t, s, u.ID, day.Add(time.Hour), func(sess *domain.Session) {
		sess.Type = domain.SessionTypeShortBreak
		sess.Duration = 5
	})
	NewSession(t, s, u.ID, day.Add(24*time.Hour), func(sess *domain.Session) {
		sess.Duration = 30
	})

	all := domain.Page{Limit: 100}
	sort := domain.DefaultSessionSort()

	completed := true
	got, total, err := s.Sessions().ListSessions(ctx, u.ID, domain.SessionFilter{Completed: &completed}, sort, all)
	require.NoError(t, err)
	require.Equal(t, 1, total)
	require.Equal(t, 50, got[0].Duration)

	notCompleted := false
	_, total, err = s.Sessions().ListSessions(ctx, u.ID, domain.SessionFilter{Completed: &notCompleted}, sort, all)
	require.NoError(t, err)
	require.Equal(t, 2, total)

	got, total, err = s.Sessions().ListSessions(ctx, u.ID, domain.SessionFilter{Type: domain.SessionTypeShortBreak}, sort, all)
	require.NoError(t, err)
	require.Equal(t, 1, total)
	require.Equal(t, domain.SessionTypeShortBreak, got[0].Type)

	// Inclusive on both ends
	from, to := day, day.Add(time.Hour)
	_, total, err = s.Sessions().ListSessions(ctx, u.ID, domain.SessionFilter{StartFrom: &from, StartTo: &to}, sort, all)
	require.NoError(t, err)
	require.Equal(t, 2, total)

	got, _, err = s.Sessions().ListSessions(ctx, u.ID, domain.SessionFilter{}, domain.SessionSort{Field: domain.SortDuration}, all)
	require.NoError(t, err)
	require.Equal(t, []int{5, 30, 50}, durations(got))

	got, _, err = s.Sessions().ListSessions(ctx, u.ID, domain.SessionFilter{}, domain.SessionSort{Field: domain.SortDuration, Desc: true}, all)
	require.NoError(t, err)
	require.Equal(t, []int{50, 30, 5}, durations(got))
}

func testFindSessions(t *testing.T, s store.Store) {
	ctx := t.Context()
	u := NewUser(t, s)

	base := time.Date(2024, 5, 1, 8, 0, 0, 0, time.UTC)
	seven := 7
	for i := range 4 {
		NewSession(t, s, u.ID, base.Add(time.Duration(3-i)*time.Hour), func(sess *domain.Session) {
			if i%2 == 0 {
				sess.Completed = true
				sess.Productivity = &seven
				end := sess.StartTime.Add(25 * time.Minute)
				sess.EndTime = &end
			}
		})
	}

	got, err := s.Sessions().FindSessions(ctx, u.ID, domain.SessionFilter{})
	require.NoError(t, err)
	require.Len(t, got, 4)
	for i := 1; i < len(got); i++ {
		require.True(t, got[i-1].StartTime.Before(got[i].StartTime))
	}

	got, err = s.Sessions().FindSessions(ctx, u.ID, store.CompletedBetween(nil, nil))
	require.NoError(t, err)
	require.Len(t, got, 2)

	empty, err := s.Sessions().FindSessions(ctx, idx.New().String(), domain.SessionFilter{})
	require.NoError(t, err)
	require.Empty(t, empty)
}

func durations(sessions []domain.Session) []int {
	out := make([]int, len(sessions))
	for i, s := range sessions {
		out[i] = s.Duration
	}
	return out
}
