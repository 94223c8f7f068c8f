package postgres

import (
	"context"
	"database/sql"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/aussiebroadwan/focusflow/internal/focusflow/domain"
	"github.com/aussiebroadwan/focusflow/internal/focusflow/store"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/require"
)

func newMockStore(t *testing.T) (*Store, sqlmock.Sqlmock) {
	t.Helper()

	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	require.NoError(t, err)
	t.Cleanup(func() {
		require.NoError(t, mock.ExpectationsWereMet())
		_ = db.Close()
	})

	return NewStoreFromDB(db), mock
}

var sessionRowColumns = []string{
	"id", "user_id", "start_time", "end_time", "duration", "type", "completed",
	"task_title", "task_description", "task_category", "interruptions", "productivity", "notes",
}

func TestCreateUserDuplicate(t *testing.T) {
	s, mock := newMockStore(t)

	mock.ExpectExec(`(?s)^INSERT\s+INTO\s+users`).
		WillReturnError(&pgconn.PgError{Code: uniqueViolation, ConstraintName: "users_email_key"})

	err := s.Users().CreateUser(context.Background(), domain.User{
		ID:           "u1",
		Username:     "alice",
		Email:        "alice@example.com",
		PasswordHash: "hash",
		Preferences:  domain.DefaultPreferences(),
	})
	require.ErrorIs(t, err, store.ErrAlreadyExists)
}

func TestGetUserByIDNotFound(t *testing.T) {
	s, mock := newMockStore(t)

	mock.ExpectQuery(`(?s)^SELECT\s+id,.*FROM\s+users\s+WHERE\s+id\s*=\s*\$1$`).
		WithArgs("ghost").
		WillReturnError(sql.ErrNoRows)

	_, err := s.Users().GetUserByID(context.Background(), "ghost")
	require.ErrorIs(t, err, store.ErrNotFound)
}

func TestUpdatePreferencesPassesNullsForUnsetFields(t *testing.T) {
	s, mock := newMockStore(t)

	rows := sqlmock.NewRows([]string{"pomodoro_length", "short_break_length", "long_break_length", "daily_goal"}).
		AddRow(int64(50), int64(5), int64(15), int64(8))
	mock.ExpectQuery(`(?s)^UPDATE\s+users\s+SET.*COALESCE\(\$1::integer.*RETURNING`).
		WithArgs(int64(50), nil, nil, nil, sqlmock.AnyArg(), "u1").
		WillReturnRows(rows)

	length := 50
	prefs, err := s.Users().UpdatePreferences(context.Background(), "u1", domain.Preferences{PomodoroLength: &length})
	require.NoError(t, err)
	require.Equal(t, 50, *prefs.PomodoroLength)
	require.Equal(t, 8, *prefs.DailyGoal)
}

func TestEndSessionNotOwned(t *testing.T) {
	s, mock := newMockStore(t)

	mock.ExpectExec(`(?s)^UPDATE\s+pomodoro_sessions\s+SET\s+end_time.*WHERE\s+id\s*=\s*\$4\s+AND\s+user_id\s*=\s*\$5$`).
		WithArgs(sqlmock.AnyArg(), 7, nil, "s1", "intruder").
		WillReturnResult(sqlmock.NewResult(0, 0))

	err := s.Sessions().EndSession(context.Background(), "intruder", "s1", domain.SessionEnd{
		EndTime:      time.Now(),
		Productivity: 7,
	})
	require.ErrorIs(t, err, store.ErrNotFound)
}

func TestAppendInterruptionUsesJSONBAppend(t *testing.T) {
	s, mock := newMockStore(t)

	ts := time.Date(2024, 3, 10, 9, 30, 0, 0, time.UTC)
	mock.ExpectExec(regexp.QuoteMeta(`interruptions = interruptions || jsonb_build_array(`)).
		WithArgs("2024-03-10T09:30:00Z", "phone", "s1", "u1").
		WillReturnResult(sqlmock.NewResult(0, 1))

	err := s.Sessions().AppendInterruption(context.Background(), "u1", "s1", domain.Interruption{Timestamp: ts, Reason: "phone"})
	require.NoError(t, err)
}

func TestListSessionsNumbersPlaceholders(t *testing.T) {
	s, mock := newMockStore(t)

	completed := true
	filter := domain.SessionFilter{Completed: &completed, Type: domain.SessionTypeWork}

	mock.ExpectQuery(`(?s)^SELECT\s+COUNT\(\*\)\s+FROM\s+pomodoro_sessions\s+WHERE\s+user_id = \$1 AND completed = \$2 AND type = \$3$`).
		WithArgs("u1", true, "work").
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(int64(12)))

	start := time.Date(2024, 3, 10, 9, 0, 0, 0, time.UTC)
	end := start.Add(25 * time.Minute)
	rows := sqlmock.NewRows(sessionRowColumns).
		AddRow("s1", "u1", start, end, int64(25), "work", true,
			"Write", nil, "writing", []byte(`[{"timestamp":"2024-03-10T09:10:00Z","reason":"slack"}]`), int64(9), "ok")

	mock.ExpectQuery(`(?s)ORDER BY duration DESC, id DESC LIMIT \$4 OFFSET \$5$`).
		WithArgs("u1", true, "work", 10, 10).
		WillReturnRows(rows)

	got, total, err := s.Sessions().ListSessions(context.Background(), "u1", filter,
		domain.SessionSort{Field: domain.SortDuration, Desc: true},
		domain.Page{Limit: 10, Skip: 10})
	require.NoError(t, err)
	require.Equal(t, 12, total)
	require.Len(t, got, 1)

	sess := got[0]
	require.Equal(t, "writing", sess.Category())
	require.Equal(t, "", sess.Task.Description)
	require.Equal(t, 9, *sess.Productivity)
	require.True(t, end.Equal(*sess.EndTime))
	require.Len(t, sess.Interruptions, 1)
	require.Equal(t, "slack", sess.Interruptions[0].Reason)
}

func TestListSessionsRejectsUnknownSort(t *testing.T) {
	s, _ := newMockStore(t)

	_, _, err := s.Sessions().ListSessions(context.Background(), "u1", domain.SessionFilter{},
		domain.SessionSort{Field: "password_hash"}, domain.Page{Limit: 10})
	require.ErrorIs(t, err, domain.ErrInvalidSort)
}

func TestApplyMigrationsRunsEmbeddedSet(t *testing.T) {
	s, _ := newMockStore(t)

	var gotDir string
	orig := gooseUp
	gooseUp = func(_ context.Context, _ *sql.DB, dir string) error {
		gotDir = dir
		return nil
	}
	t.Cleanup(func() { gooseUp = orig })

	require.NoError(t, s.ApplyMigrations())
	require.Equal(t, ".", gotDir)
}
