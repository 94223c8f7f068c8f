package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/aussiebroadwan/focusflow/internal/focusflow/domain"
	"github.com/aussiebroadwan/focusflow/internal/focusflow/store"
	"github.com/aussiebroadwan/focusflow/pkg/cryptox"
	"github.com/aussiebroadwan/focusflow/pkg/idx"
	"github.com/aussiebroadwan/focusflow/pkg/slogx"
)

var (
	ErrConflict           = errors.New("user with this email or username already exists")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrUserNotFound       = errors.New("user not found")
)

type UserService struct {
	Store  store.Store
	Tokens *TokenService
}

// AuthResult is returned by Register and Login.
type AuthResult struct {
	Token string
	User  domain.User
}

// Register creates an account with default preferences and signs a token
// for it.
func (s *UserService) Register(ctx context.Context, username, email, password string) (AuthResult, error) {
	l := slogx.FromContext(ctx)

	username = domain.NormalizeUsername(username)
	email = domain.NormalizeEmail(email)

	if err := domain.ValidateRegistration(username, email, password).Err(); err != nil {
		return AuthResult{}, err
	}

	_, err := s.Store.Users().FindUserByEmailOrUsername(ctx, email, username)
	switch {
	case err == nil:
		l.Info("registration rejected, identifier taken", slog.String("username", username))
		return AuthResult{}, ErrConflict
	case !errors.Is(err, store.ErrNotFound):
		return AuthResult{}, fmt.Errorf("lookup existing user: %w", err)
	}

	hash, err := cryptox.HashPassword(password)
	if err != nil {
		return AuthResult{}, fmt.Errorf("hash password: %w", err)
	}

	now := time.Now().UTC()
	user := domain.User{
		ID:           idx.NewAt(now).String(),
		Username:     username,
		Email:        email,
		PasswordHash: hash,
		Preferences:  domain.DefaultPreferences(),
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	if err := s.Store.Users().CreateUser(ctx, user); err != nil {
		// Lost a race with a concurrent registration
		if errors.Is(err, store.ErrAlreadyExists) {
			return AuthResult{}, ErrConflict
		}
		return AuthResult{}, fmt.Errorf("create user: %w", err)
	}

	token, err := s.Tokens.Issue(user)
	if err != nil {
		return AuthResult{}, fmt.Errorf("sign token: %w", err)
	}

	l.Info("user registered", slog.String("user_id", user.ID))
	return AuthResult{Token: token, User: user}, nil
}

// Login checks an email and password pair. Unknown emails and wrong
// passwords both report ErrInvalidCredentials.
func (s *UserService) Login(ctx context.Context, email, password string) (AuthResult, error) {
	l := slogx.FromContext(ctx)

	email = domain.NormalizeEmail(email)
	if email == "" || password == "" {
		return AuthResult{}, ErrInvalidCredentials
	}

	user, err := s.Store.Users().GetUserByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			l.Info("login failed", slog.String("reason", "unknown email"))
			return AuthResult{}, ErrInvalidCredentials
		}
		return AuthResult{}, fmt.Errorf("lookup user: %w", err)
	}

	if cryptox.VerifyPassword(password, user.PasswordHash) != nil {
		l.Info("login failed", slog.String("user_id", user.ID), slog.String("reason", "password mismatch"))
		return AuthResult{}, ErrInvalidCredentials
	}

	if cryptox.NeedsRehash(user.PasswordHash) {
		s.upgradeHash(ctx, user.ID, password)
	}

	token, err := s.Tokens.Issue(user)
	if err != nil {
		return AuthResult{}, fmt.Errorf("sign token: %w", err)
	}

	return AuthResult{Token: token, User: user}, nil
}

// upgradeHash replaces a legacy bcrypt hash with argon2id. Failure only
// costs the upgrade, never the login.
func (s *UserService) upgradeHash(ctx context.Context, userID, password string) {
	l := slogx.FromContext(ctx)

	hash, err := cryptox.HashPassword(password)
	if err == nil {
		err = s.Store.Users().UpdatePasswordHash(ctx, userID, hash)
	}
	if err != nil {
		l.Warn("password rehash failed", slog.String("user_id", userID), slog.Any("error", err))
		return
	}
	l.Info("password hash upgraded", slog.String("user_id", userID))
}

// Me returns the profile of the authenticated user.
func (s *UserService) Me(ctx context.Context, userID string) (domain.User, error) {
	u, err := s.Store.Users().GetUserByID(ctx, userID)
	if errors.Is(err, store.ErrNotFound) {
		return domain.User{}, ErrUserNotFound
	}
	return u, err
}

// UpdatePreferences applies a partial preference update given as the raw
// JSON object fields of the request.
func (s *UserService) UpdatePreferences(ctx context.Context, userID string, fields map[string]json.RawMessage) (domain.Preferences, error) {
	patch, err := domain.ParsePreferencesPatch(fields)
	if err != nil {
		return domain.Preferences{}, err
	}

	prefs, err := s.Store.Users().UpdatePreferences(ctx, userID, patch)
	if errors.Is(err, store.ErrNotFound) {
		return domain.Preferences{}, ErrUserNotFound
	}
	return prefs, err
}
