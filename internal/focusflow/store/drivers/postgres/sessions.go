package postgres

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/aussiebroadwan/focusflow/internal/focusflow/domain"
	"github.com/aussiebroadwan/focusflow/internal/focusflow/store"
)

const sessionColumns = `id, user_id, start_time, end_time, duration, type, completed,
	task_title, task_description, task_category, interruptions, productivity, notes`

const (
	createSession = `INSERT INTO pomodoro_sessions (` + sessionColumns + `)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11::jsonb, $12, $13)`

	getSession = `SELECT ` + sessionColumns + ` FROM pomodoro_sessions
WHERE id = $1 AND user_id = $2`

	endSession = `UPDATE pomodoro_sessions
SET end_time = $1, completed = TRUE, productivity = $2, notes = $3
WHERE id = $4 AND user_id = $5`

	appendInterruption = `UPDATE pomodoro_sessions
SET interruptions = interruptions || jsonb_build_array(jsonb_build_object('timestamp', $1::text, 'reason', $2::text))
WHERE id = $3 AND user_id = $4`
)

var sortColumns = map[domain.SortField]string{
	domain.SortStartTime:    "start_time",
	domain.SortEndTime:      "end_time",
	domain.SortDuration:     "duration",
	domain.SortType:         "type",
	domain.SortCompleted:    "completed",
	domain.SortProductivity: "productivity",
}

type sessionsRepo struct {
	db *sql.DB
}

type interruptionJSON struct {
	Timestamp string `json:"timestamp"`
	Reason    string `json:"reason"`
}

func (r *sessionsRepo) CreateSession(ctx context.Context, s domain.Session) error {
	interruptions, err := encodeInterruptions(s.Interruptions)
	if err != nil {
		return err
	}

	var title, description, category sql.NullString
	if s.Task != nil {
		title = mapStringNull(s.Task.Title)
		description = mapStringNull(s.Task.Description)
		category = mapStringNull(s.Task.Category)
	}

	_, err = r.db.ExecContext(ctx, createSession,
		s.ID,
		s.UserID,
		s.StartTime.UTC(),
		mapOptionalTime(s.EndTime),
		s.Duration,
		string(s.Type),
		s.Completed,
		title,
		description,
		category,
		interruptions,
		mapOptionalInt(s.Productivity),
		mapStringNull(s.Notes),
	)
	return mapConstraint(err)
}

func (r *sessionsRepo) GetSession(ctx context.Context, userID, id string) (domain.Session, error) {
	s, err := scanSession(r.db.QueryRowContext(ctx, getSession, id, userID))
	if err != nil {
		return domain.Session{}, mapNotFound(err)
	}
	return s, nil
}

func (r *sessionsRepo) EndSession(ctx context.Context, userID, id string, end domain.SessionEnd) error {
	return requireRow(r.db.ExecContext(ctx, endSession,
		end.EndTime.UTC(),
		end.Productivity,
		mapStringNull(end.Notes),
		id,
		userID,
	))
}

func (r *sessionsRepo) AppendInterruption(ctx context.Context, userID, id string, in domain.Interruption) error {
	return requireRow(r.db.ExecContext(ctx, appendInterruption,
		in.Timestamp.UTC().Format(time.RFC3339Nano),
		in.Reason,
		id,
		userID,
	))
}

func (r *sessionsRepo) ListSessions(
	ctx context.Context,
	userID string,
	filter domain.SessionFilter,
	sort domain.SessionSort,
	page domain.Page,
) ([]domain.Session, int, error) {
	col, ok := sortColumns[sort.Field]
	if !ok {
		return nil, 0, fmt.Errorf("postgres: %w: %q", domain.ErrInvalidSort, sort.Field)
	}
	dir := "ASC"
	if sort.Desc {
		dir = "DESC"
	}

	var a args
	where := buildWhere(&a, userID, filter)

	var total int
	if err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM pomodoro_sessions WHERE `+where, a...).Scan(&total); err != nil {
		return nil, 0, err
	}

	q := fmt.Sprintf(`SELECT %s FROM pomodoro_sessions WHERE %s ORDER BY %s %s, id %s LIMIT %s OFFSET %s`,
		sessionColumns, where, col, dir, dir, a.add(page.Limit), a.add(page.Skip))

	sessions, err := r.query(ctx, q, a...)
	if err != nil {
		return nil, 0, err
	}
	return sessions, total, nil
}

func (r *sessionsRepo) FindSessions(ctx context.Context, userID string, filter domain.SessionFilter) ([]domain.Session, error) {
	var a args
	where := buildWhere(&a, userID, filter)
	q := `SELECT ` + sessionColumns + ` FROM pomodoro_sessions WHERE ` + where + ` ORDER BY start_time ASC, id ASC`
	return r.query(ctx, q, a...)
}

func (r *sessionsRepo) query(ctx context.Context, q string, a ...any) ([]domain.Session, error) {
	rows, err := r.db.QueryContext(ctx, q, a...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	sessions := []domain.Session{}
	for rows.Next() {
		s, err := scanSession(rows)
		if err != nil {
			return nil, err
		}
		sessions = append(sessions, s)
	}
	return sessions, rows.Err()
}

func buildWhere(a *args, userID string, f domain.SessionFilter) string {
	clauses := []string{"user_id = " + a.add(userID)}

	if f.Completed != nil {
		clauses = append(clauses, "completed = "+a.add(*f.Completed))
	}
	if f.Type != "" {
		clauses = append(clauses, "type = "+a.add(string(f.Type)))
	}
	if f.StartFrom != nil {
		clauses = append(clauses, "start_time >= "+a.add(f.StartFrom.UTC()))
	}
	if f.StartTo != nil {
		clauses = append(clauses, "start_time <= "+a.add(f.StartTo.UTC()))
	}

	return strings.Join(clauses, " AND ")
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanSession(row rowScanner) (domain.Session, error) {
	var (
		s                       domain.Session
		end                     sql.NullTime
		typ                     string
		title, description, cat sql.NullString
		interruptions           []byte
		productivity            sql.NullInt64
		notes                   sql.NullString
	)

	err := row.Scan(
		&s.ID,
		&s.UserID,
		&s.StartTime,
		&end,
		&s.Duration,
		&typ,
		&s.Completed,
		&title,
		&description,
		&cat,
		&interruptions,
		&productivity,
		&notes,
	)
	if err != nil {
		return domain.Session{}, err
	}

	if s.Interruptions, err = decodeInterruptions(interruptions); err != nil {
		return domain.Session{}, err
	}

	s.StartTime = s.StartTime.UTC()
	s.EndTime = mapNullTimePtr(end)
	s.Type = domain.SessionType(typ)
	s.Productivity = mapNullIntPtr(productivity)
	s.Notes = mapNullString(notes)

	if title.Valid || description.Valid || cat.Valid {
		s.Task = &domain.Task{
			Title:       mapNullString(title),
			Description: mapNullString(description),
			Category:    mapNullString(cat),
		}
	}

	return s, nil
}

func encodeInterruptions(in []domain.Interruption) (string, error) {
	out := make([]interruptionJSON, len(in))
	for i, it := range in {
		out[i] = interruptionJSON{Timestamp: it.Timestamp.UTC().Format(time.RFC3339Nano), Reason: it.Reason}
	}
	b, err := json.Marshal(out)
	if err != nil {
		return "", err
	}
	return string(b), nil
}

func decodeInterruptions(raw []byte) ([]domain.Interruption, error) {
	if len(raw) == 0 {
		return []domain.Interruption{}, nil
	}

	var items []interruptionJSON
	if err := json.Unmarshal(raw, &items); err != nil {
		return nil, fmt.Errorf("postgres: decode interruptions: %w", err)
	}

	out := make([]domain.Interruption, 0, len(items))
	for _, it := range items {
		ts, err := time.Parse(time.RFC3339Nano, it.Timestamp)
		if err != nil {
			return nil, fmt.Errorf("postgres: decode interruption timestamp: %w", err)
		}
		out = append(out, domain.Interruption{Timestamp: ts.UTC(), Reason: it.Reason})
	}
	return out, nil
}

var _ store.Sessions = (*sessionsRepo)(nil)
