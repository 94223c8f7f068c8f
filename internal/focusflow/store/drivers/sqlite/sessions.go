package sqlite

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/aussiebroadwan/focusflow/internal/focusflow/domain"
	"github.com/aussiebroadwan/focusflow/internal/focusflow/store"
	"github.com/aussiebroadwan/focusflow/internal/focusflow/store/drivers/sqlite/gen"
)

// sessionColumns matches the column order of gen.PomodoroSession. Used by
// the list queries, whose filters and ORDER BY are built at runtime.
const sessionColumns = `id, user_id, start_time, end_time, duration, type, completed,
	task_title, task_description, task_category, interruptions, productivity, notes`

// sortColumns maps API sort fields onto columns. Only these strings are
// ever interpolated into ORDER BY.
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
	q  *gen.Queries
}

// interruptionJSON is the element shape of the interruptions column.
type interruptionJSON struct {
	Timestamp string `json:"timestamp"`
	Reason    string `json:"reason"`
}

func (r *sessionsRepo) CreateSession(ctx context.Context, s domain.Session) error {
	interruptions, err := encodeInterruptions(s.Interruptions)
	if err != nil {
		return err
	}

	arg := gen.CreateSessionParams{
		ID:            s.ID,
		UserID:        s.UserID,
		StartTime:     formatTime(s.StartTime),
		EndTime:       mapOptionalTime(s.EndTime),
		Duration:      int64(s.Duration),
		Type:          string(s.Type),
		Completed:     mapBool(s.Completed),
		Interruptions: interruptions,
		Productivity:  mapOptionalInt(s.Productivity),
		Notes:         mapStringNull(s.Notes),
	}
	if s.Task != nil {
		arg.TaskTitle = mapStringNull(s.Task.Title)
		arg.TaskDescription = mapStringNull(s.Task.Description)
		arg.TaskCategory = mapStringNull(s.Task.Category)
	}

	return mapConstraint(r.q.CreateSession(ctx, arg))
}

func (r *sessionsRepo) GetSession(ctx context.Context, userID, id string) (domain.Session, error) {
	row, err := r.q.GetSession(ctx, gen.GetSessionParams{ID: id, UserID: userID})
	if err != nil {
		return domain.Session{}, mapNotFound(err)
	}
	return mapSession(row)
}

func (r *sessionsRepo) EndSession(ctx context.Context, userID, id string, end domain.SessionEnd) error {
	return requireRow(r.q.EndSession(ctx, gen.EndSessionParams{
		EndTime:      mapOptionalTime(&end.EndTime),
		Productivity: mapOptionalInt(&end.Productivity),
		Notes:        mapStringNull(end.Notes),
		ID:           id,
		UserID:       userID,
	}))
}

func (r *sessionsRepo) AppendInterruption(ctx context.Context, userID, id string, in domain.Interruption) error {
	return requireRow(r.q.AppendInterruption(ctx, gen.AppendInterruptionParams{
		Timestamp: formatTime(in.Timestamp),
		Reason:    in.Reason,
		ID:        id,
		UserID:    userID,
	}))
}

func (r *sessionsRepo) ListSessions(
	ctx context.Context,
	userID string,
	filter domain.SessionFilter,
	sort domain.SessionSort,
	page domain.Page,
) ([]domain.Session, int, error) {
	where, args := buildWhere(userID, filter)

	var total int
	if err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM pomodoro_sessions WHERE `+where, args...).Scan(&total); err != nil {
		return nil, 0, err
	}

	col, ok := sortColumns[sort.Field]
	if !ok {
		return nil, 0, fmt.Errorf("sqlite: %w: %q", domain.ErrInvalidSort, sort.Field)
	}
	dir := "ASC"
	if sort.Desc {
		dir = "DESC"
	}

	q := fmt.Sprintf(`SELECT %s FROM pomodoro_sessions WHERE %s ORDER BY %s %s, id %s LIMIT ? OFFSET ?`,
		sessionColumns, where, col, dir, dir)

	sessions, err := r.query(ctx, q, append(args, page.Limit, page.Skip)...)
	if err != nil {
		return nil, 0, err
	}
	return sessions, total, nil
}

func (r *sessionsRepo) FindSessions(ctx context.Context, userID string, filter domain.SessionFilter) ([]domain.Session, error) {
	where, args := buildWhere(userID, filter)
	q := `SELECT ` + sessionColumns + ` FROM pomodoro_sessions WHERE ` + where + ` ORDER BY start_time ASC, id ASC`
	return r.query(ctx, q, args...)
}

func (r *sessionsRepo) query(ctx context.Context, q string, args ...any) ([]domain.Session, error) {
	rows, err := r.db.QueryContext(ctx, q, args...)
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

func buildWhere(userID string, f domain.SessionFilter) (string, []any) {
	clauses := []string{"user_id = ?"}
	args := []any{userID}

	if f.Completed != nil {
		clauses = append(clauses, "completed = ?")
		args = append(args, *f.Completed)
	}
	if f.Type != "" {
		clauses = append(clauses, "type = ?")
		args = append(args, string(f.Type))
	}
	if f.StartFrom != nil {
		clauses = append(clauses, "start_time >= ?")
		args = append(args, formatTime(*f.StartFrom))
	}
	if f.StartTo != nil {
		clauses = append(clauses, "start_time <= ?")
		args = append(args, formatTime(*f.StartTo))
	}

	return strings.Join(clauses, " AND "), args
}

func scanSession(rows *sql.Rows) (domain.Session, error) {
	var i gen.PomodoroSession
	err := rows.Scan(
		&i.ID,
		&i.UserID,
		&i.StartTime,
		&i.EndTime,
		&i.Duration,
		&i.Type,
		&i.Completed,
		&i.TaskTitle,
		&i.TaskDescription,
		&i.TaskCategory,
		&i.Interruptions,
		&i.Productivity,
		&i.Notes,
	)
	if err != nil {
		return domain.Session{}, err
	}
	return mapSession(i)
}

func mapSession(row gen.PomodoroSession) (domain.Session, error) {
	s := domain.Session{
		ID:           row.ID,
		UserID:       row.UserID,
		Duration:     int(row.Duration),
		Type:         domain.SessionType(row.Type),
		Completed:    row.Completed != 0,
		Productivity: mapNullIntPtr(row.Productivity),
		Notes:        mapNullString(row.Notes),
	}

	var err error
	if s.StartTime, err = parseTime(row.StartTime); err != nil {
		return domain.Session{}, err
	}
	if s.EndTime, err = mapNullTimePtr(row.EndTime); err != nil {
		return domain.Session{}, err
	}
	if s.Interruptions, err = decodeInterruptions(row.Interruptions); err != nil {
		return domain.Session{}, err
	}

	if row.TaskTitle.Valid || row.TaskDescription.Valid || row.TaskCategory.Valid {
		s.Task = &domain.Task{
			Title:       mapNullString(row.TaskTitle),
			Description: mapNullString(row.TaskDescription),
			Category:    mapNullString(row.TaskCategory),
		}
	}

	return s, nil
}

func encodeInterruptions(in []domain.Interruption) (string, error) {
	out := make([]interruptionJSON, len(in))
	for i, it := range in {
		out[i] = interruptionJSON{Timestamp: formatTime(it.Timestamp), Reason: it.Reason}
	}
	b, err := json.Marshal(out)
	if err != nil {
		return "", err
	}
	return string(b), nil
}

func decodeInterruptions(raw string) ([]domain.Interruption, error) {
	var items []interruptionJSON
	if err := json.Unmarshal([]byte(raw), &items); err != nil {
		return nil, fmt.Errorf("sqlite: decode interruptions: %w", err)
	}

	out := make([]domain.Interruption, 0, len(items))
	for _, it := range items {
		ts, err := parseTime(it.Timestamp)
		if err != nil {
			return nil, fmt.Errorf("sqlite: decode interruption timestamp: %w", err)
		}
		out = append(out, domain.Interruption{Timestamp: ts, Reason: it.Reason})
	}
	return out, nil
}

var _ store.Sessions = (*sessionsRepo)(nil)
