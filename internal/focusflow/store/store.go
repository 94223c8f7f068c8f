package store

import (
	"context"
	"errors"
	"time"

	"github.com/aussiebroadwan/focusflow/internal/focusflow/domain"
)

var (
	ErrNotFound      = errors.New("store: not found")
	ErrAlreadyExists = errors.New("store: already exists")
)

// Store is the root data access interface implemented by the sqlite,
// postgres and mongo drivers. Every user and every session is an
// independent record; no operation spans records atomically.
type Store interface {
	Users() Users
	Sessions() Sessions

	// ApplyMigrations brings the schema (or, for document stores, the
	// indexes) up to date. Safe to call on every start.
	ApplyMigrations() error

	// Close releases the underlying connection pool.
	Close() error

	// Ping verifies the database connection is still alive.
	Ping(ctx context.Context) error
}

type Users interface {
	// CreateUser inserts a new user (id is provided by app via ULID).
	// Returns ErrAlreadyExists when the username or email is taken.
	CreateUser(ctx context.Context, u domain.User) error

	// GetUserByID returns a user by id.
	GetUserByID(ctx context.Context, id string) (domain.User, error)

	// GetUserByEmail is used by login. Email is compared as stored
	// (already normalised by the service).
	GetUserByEmail(ctx context.Context, email string) (domain.User, error)

	// FindUserByEmailOrUsername returns any user holding either identifier,
	// used for the duplicate check on register.
	FindUserByEmailOrUsername(ctx context.Context, email, username string) (domain.User, error)

	// UpdatePasswordHash replaces the stored hash and bumps updated_at.
	UpdatePasswordHash(ctx context.Context, userID, hash string) error

	// UpdatePreferences applies the non-nil fields of patch in a single
	// write and returns the resulting preferences.
	UpdatePreferences(ctx context.Context, userID string, patch domain.Preferences) (domain.Preferences, error)
}

type Sessions interface {
	// CreateSession inserts a new session.
	CreateSession(ctx context.Context, s domain.Session) error

	// GetSession returns the session only if it is owned by userID.
	// Sessions owned by someone else report ErrNotFound.
	GetSession(ctx context.Context, userID, id string) (domain.Session, error)

	// EndSession marks an owned session completed. ErrNotFound when the
	// session does not exist for userID.
	EndSession(ctx context.Context, userID, id string, end domain.SessionEnd) error

	// AppendInterruption atomically appends to the session's interruption
	// list. ErrNotFound when the session does not exist for userID.
	AppendInterruption(ctx context.Context, userID, id string, in domain.Interruption) error

	// ListSessions returns one sorted page of the user's sessions and the
	// total number matching filter.
	ListSessions(ctx context.Context, userID string, filter domain.SessionFilter, sort domain.SessionSort, page domain.Page) ([]domain.Session, int, error)

	// FindSessions returns every matching session ordered by start time
	// ascending. Used by the analytics folds.
	FindSessions(ctx context.Context, userID string, filter domain.SessionFilter) ([]domain.Session, error)
}

// CompletedBetween is the filter used by stats and analytics: completed
// sessions whose start time lies in [from, to]. Nil bounds are open.
func CompletedBetween(from, to *time.Time) domain.SessionFilter {
	completed := true
	return domain.SessionFilter{Completed: &completed, StartFrom: from, StartTo: to}
}
