package sqlite

import (
	"context"
	"time"

	"github.com/aussiebroadwan/focusflow/internal/focusflow/domain"
	"github.com/aussiebroadwan/focusflow/internal/focusflow/store/drivers/sqlite/gen"
)

type usersRepo struct {
	q *gen.Queries
}

func (r *usersRepo) CreateUser(ctx context.Context, u domain.User) error {
	if u.CreatedAt.IsZero() {
		u.CreatedAt = time.Now()
	}
	if u.UpdatedAt.IsZero() {
		u.UpdatedAt = u.CreatedAt
	}

	return mapConstraint(r.q.CreateUser(ctx, gen.CreateUserParams{
		ID:               u.ID,
		Username:         u.Username,
		Email:            u.Email,
		PasswordHash:     u.PasswordHash,
		PomodoroLength:   mapOptionalInt(u.Preferences.PomodoroLength),
		ShortBreakLength: mapOptionalInt(u.Preferences.ShortBreakLength),
		LongBreakLength:  mapOptionalInt(u.Preferences.LongBreakLength),
		DailyGoal:        mapOptionalInt(u.Preferences.DailyGoal),
		CreatedAt:        formatTime(u.CreatedAt),
		UpdatedAt:        formatTime(u.UpdatedAt),
	}))
}

func (r *usersRepo) GetUserByID(ctx context.Context, id string) (domain.User, error) {
	row, err := r.q.GetUserByID(ctx, id)
	if err != nil {
		return domain.User{}, mapNotFound(err)
	}
	return mapUser(row)
}

func (r *usersRepo) GetUserByEmail(ctx context.Context, email string) (domain.User, error) {
	row, err := r.q.GetUserByEmail(ctx, email)
	if err != nil {
		return domain.User{}, mapNotFound(err)
	}
	return mapUser(row)
}

func (r *usersRepo) FindUserByEmailOrUsername(ctx context.Context, email, username string) (domain.User, error) {
	row, err := r.q.FindUserByEmailOrUsername(ctx, gen.FindUserByEmailOrUsernameParams{
		Email:    email,
		Username: username,
	})
	if err != nil {
		return domain.User{}, mapNotFound(err)
	}
	return mapUser(row)
}

func (r *usersRepo) UpdatePasswordHash(ctx context.Context, userID, hash string) error {
	return requireRow(r.q.UpdateUserPasswordHash(ctx, gen.UpdateUserPasswordHashParams{
		PasswordHash: hash,
		UpdatedAt:    formatTime(time.Now()),
		ID:           userID,
	}))
}

func (r *usersRepo) UpdatePreferences(ctx context.Context, userID string, patch domain.Preferences) (domain.Preferences, error) {
	row, err := r.q.UpdateUserPreferences(ctx, gen.UpdateUserPreferencesParams{
		PomodoroLength:   mapOptionalInt(patch.PomodoroLength),
		ShortBreakLength: mapOptionalInt(patch.ShortBreakLength),
		LongBreakLength:  mapOptionalInt(patch.LongBreakLength),
		DailyGoal:        mapOptionalInt(patch.DailyGoal),
		UpdatedAt:        formatTime(time.Now()),
		ID:               userID,
	})
	if err != nil {
		return domain.Preferences{}, mapNotFound(err)
	}

	return domain.Preferences{
		PomodoroLength:   mapNullIntPtr(row.PomodoroLength),
		ShortBreakLength: mapNullIntPtr(row.ShortBreakLength),
		LongBreakLength:  mapNullIntPtr(row.LongBreakLength),
		DailyGoal:        mapNullIntPtr(row.DailyGoal),
	}, nil
}

func mapUser(row gen.User) (domain.User, error) {
	u := domain.User{
		ID:           row.ID,
		Username:     row.Username,
		Email:        row.Email,
		PasswordHash: row.PasswordHash,
		Preferences: domain.Preferences{
			PomodoroLength:   mapNullIntPtr(row.PomodoroLength),
			ShortBreakLength: mapNullIntPtr(row.ShortBreakLength),
			LongBreakLength:  mapNullIntPtr(row.LongBreakLength),
			DailyGoal:        mapNullIntPtr(row.DailyGoal),
		},
	}

	var err error
	if u.CreatedAt, err = parseTime(row.CreatedAt); err != nil {
		return domain.User{}, err
	}
	if u.UpdatedAt, err = parseTime(row.UpdatedAt); err != nil {
		return domain.User{}, err
	}
	return u, nil
}
