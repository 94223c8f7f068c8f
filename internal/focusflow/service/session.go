package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/aussiebroadwan/focusflow/internal/focusflow/analytics"
	"github.com/aussiebroadwan/focusflow/internal/focusflow/domain"
	"github.com/aussiebroadwan/focusflow/internal/focusflow/store"
	"github.com/aussiebroadwan/focusflow/pkg/idx"
	"github.com/aussiebroadwan/focusflow/pkg/slogx"
)

// ErrSessionNotFound covers both missing sessions and sessions owned by
// someone else.
var ErrSessionNotFound = errors.New("session not found")

type SessionService struct {
	Store store.Store
	Now   func() time.Time
}

func (s *SessionService) now() time.Time {
	if s.Now != nil {
		return s.Now().UTC()
	}
	return time.Now().UTC()
}

// StartInput is what a client supplies to begin a session.
type StartInput struct {
	Duration int
	Type     domain.SessionType
	Task     *domain.Task
}

// Start creates an in-progress session starting now.
func (s *SessionService) Start(ctx context.Context, userID string, in StartInput) (domain.Session, error) {
	now := s.now()

	sess := domain.Session{
		ID:            idx.NewAt(now).String(),
		UserID:        userID,
		StartTime:     now,
		Duration:      in.Duration,
		Type:          in.Type,
		Task:          in.Task,
		Interruptions: []domain.Interruption{},
	}

	if err := domain.ValidateSession(sess).Err(); err != nil {
		return domain.Session{}, err
	}

	if err := s.Store.Sessions().CreateSession(ctx, sess); err != nil {
		return domain.Session{}, fmt.Errorf("create session: %w", err)
	}

	slogx.FromContext(ctx).Info("session started",
		slog.String("session_id", sess.ID),
		slog.String("type", string(sess.Type)),
		slog.Int("duration", sess.Duration),
	)
	return sess, nil
}

// Get returns one of the user's sessions.
func (s *SessionService) Get(ctx context.Context, userID, id string) (domain.Session, error) {
	if !idx.Valid(id) {
		return domain.Session{}, ErrSessionNotFound
	}

	sess, err := s.Store.Sessions().GetSession(ctx, userID, id)
	if errors.Is(err, store.ErrNotFound) {
		return domain.Session{}, ErrSessionNotFound
	}
	return sess, err
}

// End completes a session with a productivity score. Ending is allowed in
// any state; a second call overwrites the first.
func (s *SessionService) End(ctx context.Context, userID, id string, productivity int, notes string) (domain.Session, error) {
	if !idx.Valid(id) {
		return domain.Session{}, ErrSessionNotFound
	}
	if err := domain.ValidateProductivity(productivity).Err(); err != nil {
		return domain.Session{}, err
	}

	err := s.Store.Sessions().EndSession(ctx, userID, id, domain.SessionEnd{
		EndTime:      s.now(),
		Productivity: productivity,
		Notes:        notes,
	})
	if errors.Is(err, store.ErrNotFound) {
		return domain.Session{}, ErrSessionNotFound
	}
	if err != nil {
		return domain.Session{}, fmt.Errorf("end session: %w", err)
	}

	slogx.FromContext(ctx).Info("session ended", slog.String("session_id", id), slog.Int("productivity", productivity))
	return s.Get(ctx, userID, id)
}

// RecordInterruption appends an interruption stamped now.
func (s *SessionService) RecordInterruption(ctx context.Context, userID, id, reason string) (domain.Session, error) {
	if !idx.Valid(id) {
		return domain.Session{}, ErrSessionNotFound
	}
	if err := domain.ValidateInterruptionReason(reason).Err(); err != nil {
		return domain.Session{}, err
	}

	err := s.Store.Sessions().AppendInterruption(ctx, userID, id, domain.Interruption{
		Timestamp: s.now(),
		Reason:    reason,
	})
	if errors.Is(err, store.ErrNotFound) {
		return domain.Session{}, ErrSessionNotFound
	}
	if err != nil {
		return domain.Session{}, fmt.Errorf("append interruption: %w", err)
	}

	return s.Get(ctx, userID, id)
}

// List returns one page of the user's sessions.
func (s *SessionService) List(
	ctx context.Context,
	userID string,
	filter domain.SessionFilter,
	sort domain.SessionSort,
	page domain.Page,
) (domain.SessionPage, error) {
	page = page.Normalize()

	sessions, total, err := s.Store.Sessions().ListSessions(ctx, userID, filter, sort, page)
	if err != nil {
		return domain.SessionPage{}, fmt.Errorf("list sessions: %w", err)
	}

	return domain.SessionPage{
		Sessions: sessions,
		Total:    total,
		HasMore:  page.HasMore(total),
	}, nil
}

// Stats summarises completed sessions started within [from, to]. A nil
// from means the epoch, a nil to means now.
func (s *SessionService) Stats(ctx context.Context, userID string, from, to *time.Time) (analytics.Summary, error) {
	if from == nil {
		epoch := time.Unix(0, 0).UTC()
		from = &epoch
	}
	if to == nil {
		now := s.now()
		to = &now
	}

	sessions, err := s.Store.Sessions().FindSessions(ctx, userID, store.CompletedBetween(from, to))
	if err != nil {
		return analytics.Summary{}, fmt.Errorf("find sessions: %w", err)
	}
	return analytics.Summarize(sessions), nil
}
