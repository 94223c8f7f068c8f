package postgres

import (
	"context"
	"database/sql"
	"time"

	"github.com/aussiebroadwan/focusflow/internal/focusflow/domain"
	"github.com/aussiebroadwan/focusflow/internal/focusflow/store"
)

const userColumns = `id, username, email, password_hash,
	pomodoro_length, short_break_length, long_break_length, daily_goal,
	created_at, updated_at`

const (
	createUser = `INSERT INTO users (` + userColumns + `)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`

	getUserByID = `SELECT ` + userColumns + ` FROM users WHERE id = $1`

	getUserByEmail = `SELECT ` + userColumns + ` FROM users WHERE email = $1`

	findUserByEmailOrUsername = `SELECT ` + userColumns + ` FROM users
WHERE email = $1 OR username = $2
LIMIT 1`

	updateUserPasswordHash = `UPDATE users SET password_hash = $1, updated_at = $2 WHERE id = $3`

	updateUserPreferences = `UPDATE users SET
	pomodoro_length    = COALESCE($1::integer, pomodoro_length),
	short_break_length = COALESCE($2::integer, short_break_length),
	long_break_length  = COALESCE($3::integer, long_break_length),
	daily_goal         = COALESCE($4::integer, daily_goal),
	updated_at         = $5
WHERE id = $6
RETURNING pomodoro_length, short_break_length, long_break_length, daily_goal`
)

type usersRepo struct {
	db *sql.DB
}

func (r *usersRepo) CreateUser(ctx context.Context, u domain.User) error {
	if u.CreatedAt.IsZero() {
		u.CreatedAt = time.Now()
	}
	if u.UpdatedAt.IsZero() {
		u.UpdatedAt = u.CreatedAt
	}

	_, err := r.db.ExecContext(ctx, createUser,
		u.ID,
		u.Username,
		u.Email,
		u.PasswordHash,
		mapOptionalInt(u.Preferences.PomodoroLength),
		mapOptionalInt(u.Preferences.ShortBreakLength),
		mapOptionalInt(u.Preferences.LongBreakLength),
		mapOptionalInt(u.Preferences.DailyGoal),
		u.CreatedAt.UTC(),
		u.UpdatedAt.UTC(),
	)
	return mapConstraint(err)
}

func (r *usersRepo) GetUserByID(ctx context.Context, id string) (domain.User, error) {
	return scanUser(r.db.QueryRowContext(ctx, getUserByID, id))
}

func (r *usersRepo) GetUserByEmail(ctx context.Context, email string) (domain.User, error) {
	return scanUser(r.db.QueryRowContext(ctx, getUserByEmail, email))
}

func (r *usersRepo) FindUserByEmailOrUsername(ctx context.Context, email, username string) (domain.User, error) {
	return scanUser(r.db.QueryRowContext(ctx, findUserByEmailOrUsername, email, username))
}

func (r *usersRepo) UpdatePasswordHash(ctx context.Context, userID, hash string) error {
	return requireRow(r.db.ExecContext(ctx, updateUserPasswordHash, hash, time.Now().UTC(), userID))
}

func (r *usersRepo) UpdatePreferences(ctx context.Context, userID string, patch domain.Preferences) (domain.Preferences, error) {
	var pomodoro, short, long, goal sql.NullInt64

	err := r.db.QueryRowContext(ctx, updateUserPreferences,
		mapOptionalInt(patch.PomodoroLength),
		mapOptionalInt(patch.ShortBreakLength),
		mapOptionalInt(patch.LongBreakLength),
		mapOptionalInt(patch.DailyGoal),
		time.Now().UTC(),
		userID,
	).Scan(&pomodoro, &short, &long, &goal)
	if err != nil {
		return domain.Preferences{}, mapNotFound(err)
	}

	return domain.Preferences{
		PomodoroLength:   mapNullIntPtr(pomodoro),
		ShortBreakLength: mapNullIntPtr(short),
		LongBreakLength:  mapNullIntPtr(long),
		DailyGoal:        mapNullIntPtr(goal),
	}, nil
}

func scanUser(row *sql.Row) (domain.User, error) {
	var (
		u               domain.User
		pomodoro, short sql.NullInt64
		long, goal      sql.NullInt64
	)

	err := row.Scan(
		&u.ID,
		&u.Username,
		&u.Email,
		&u.PasswordHash,
		&pomodoro,
		&short,
		&long,
		&goal,
		&u.CreatedAt,
		&u.UpdatedAt,
	)
	if err != nil {
		return domain.User{}, mapNotFound(err)
	}

	u.Preferences = domain.Preferences{
		PomodoroLength:   mapNullIntPtr(pomodoro),
		ShortBreakLength: mapNullIntPtr(short),
		LongBreakLength:  mapNullIntPtr(long),
		DailyGoal:        mapNullIntPtr(goal),
	}
	u.CreatedAt = u.CreatedAt.UTC()
	u.UpdatedAt = u.UpdatedAt.UTC()

	return u, nil
}

var _ store.Users = (*usersRepo)(nil)
