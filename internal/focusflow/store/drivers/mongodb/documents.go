package mongodb

import (
	"time"

	"github.com/aussiebroadwan/focusflow/internal/focusflow/domain"
	"go.mongodb.org/mongo-driver/bson"
)

type userDoc struct {
	ID          string    `bson:"_id"`
	Username    string    `bson:"username"`
	Email       string    `bson:"email"`
	Password    string    `bson:"password"`
	Preferences prefsDoc  `bson:"preferences"`
	CreatedAt   time.Time `bson:"createdAt"`
	UpdatedAt   time.Time `bson:"updatedAt"`
}

type prefsDoc struct {
	PomodoroLength   *int `bson:"pomodoroLength,omitempty"`
	ShortBreakLength *int `bson:"shortBreakLength,omitempty"`
	LongBreakLength  *int `bson:"longBreakLength,omitempty"`
	DailyGoal        *int `bson:"dailyGoal,omitempty"`
}

type sessionDoc struct {
	ID            string            `bson:"_id"`
	User          string            `bson:"user"`
	StartTime     time.Time         `bson:"startTime"`
	EndTime       *time.Time        `bson:"endTime,omitempty"`
	Duration      int               `bson:"duration"`
	Type          string            `bson:"type"`
	Completed     bool              `bson:"completed"`
	Task          *taskDoc          `bson:"task,omitempty"`
	Interruptions []interruptionDoc `bson:"interruptions"`
	Productivity  *int              `bson:"productivity,omitempty"`
	Notes         string            `bson:"notes,omitempty"`
}

type taskDoc struct {
	Title       string `bson:"title,omitempty"`
	Description string `bson:"description,omitempty"`
	Category    string `bson:"category,omitempty"`
}

type interruptionDoc struct {
	Timestamp time.Time `bson:"timestamp"`
	Reason    string    `bson:"reason"`
}

func toUserDoc(u domain.User) userDoc {
	return userDoc{
		ID:       u.ID,
		Username: u.Username,
		Email:    u.Email,
		Password: u.PasswordHash,
		Preferences: prefsDoc{
			PomodoroLength:   u.Preferences.PomodoroLength,
			ShortBreakLength: u.Preferences.ShortBreakLength,
			LongBreakLength:  u.Preferences.LongBreakLength,
			DailyGoal:        u.Preferences.DailyGoal,
		},
		CreatedAt: u.CreatedAt.UTC(),
		UpdatedAt: u.UpdatedAt.UTC(),
	}
}

func (d userDoc) toDomain() domain.User {
	return domain.User{
		ID:           d.ID,
		Username:     d.Username,
		Email:        d.Email,
		PasswordHash: d.Password,
		Preferences:  d.Preferences.toDomain(),
		CreatedAt:    d.CreatedAt.UTC(),
		UpdatedAt:    d.UpdatedAt.UTC(),
	}
}

func (d prefsDoc) toDomain() domain.Preferences {
	return domain.Preferences{
		PomodoroLength:   d.PomodoroLength,
		ShortBreakLength: d.ShortBreakLength,
		LongBreakLength:  d.LongBreakLength,
		DailyGoal:        d.DailyGoal,
	}
}

// preferencesSet builds the $set document for a preferences patch. Only
// non-nil fields are written.
func preferencesSet(patch domain.Preferences, now time.Time) bson.M {
	set := bson.M{"updatedAt": now.UTC()}
	if patch.PomodoroLength != nil {
		set["preferences."+domain.PrefPomodoroLength] = *patch.PomodoroLength
	}
	if patch.ShortBreakLength != nil {
		set["preferences."+domain.PrefShortBreakLength] = *patch.ShortBreakLength
	}
	if patch.LongBreakLength != nil {
		set["preferences."+domain.PrefLongBreakLength] = *patch.LongBreakLength
	}
	if patch.DailyGoal != nil {
		set["preferences."+domain.PrefDailyGoal] = *patch.DailyGoal
	}
	return set
}

func toSessionDoc(s domain.Session) sessionDoc {
	d := sessionDoc{
		ID:           s.ID,
		User:         s.UserID,
		StartTime:    s.StartTime.UTC(),
		Duration:     s.Duration,
		Type:         string(s.Type),
		Completed:    s.Completed,
		Productivity: s.Productivity,
		Notes:        s.Notes,
		// Never nil, $push refuses to append to a null field
		Interruptions: make([]interruptionDoc, 0, len(s.Interruptions)),
	}
	if s.EndTime != nil {
		end := s.EndTime.UTC()
		d.EndTime = &end
	}
	if s.Task != nil {
		d.Task = &taskDoc{Title: s.Task.Title, Description: s.Task.Description, Category: s.Task.Category}
	}
	for _, in := range s.Interruptions {
		d.Interruptions = append(d.Interruptions, interruptionDoc{Timestamp: in.Timestamp.UTC(), Reason: in.Reason})
	}
	return d
}

func (d sessionDoc) toDomain() domain.Session {
	s := domain.Session{
		ID:            d.ID,
		UserID:        d.User,
		StartTime:     d.StartTime.UTC(),
		Duration:      d.Duration,
		Type:          domain.SessionType(d.Type),
		Completed:     d.Completed,
		Productivity:  d.Productivity,
		Notes:         d.Notes,
		Interruptions: make([]domain.Interruption, 0, len(d.Interruptions)),
	}
	if d.EndTime != nil {
		end := d.EndTime.UTC()
		s.EndTime = &end
	}
	if d.Task != nil {
		s.Task = &domain.Task{Title: d.Task.Title, Description: d.Task.Description, Category: d.Task.Category}
	}
	for _, in := range d.Interruptions {
		s.Interruptions = append(s.Interruptions, domain.Interruption{Timestamp: in.Timestamp.UTC(), Reason: in.Reason})
	}
	return s
}

// sessionFilter translates a domain filter into a query scoped to userID.
func sessionFilter(userID string, f domain.SessionFilter) bson.M {
	q := bson.M{"user": userID}
	if f.Completed != nil {
		q["completed"] = *f.Completed
	}
	if f.Type != "" {
		q["type"] = string(f.Type)
	}

	if f.StartFrom != nil || f.StartTo != nil {
		rng := bson.M{}
		if f.StartFrom != nil {
			rng["$gte"] = f.StartFrom.UTC()
		}
		if f.StartTo != nil {
			rng["$lte"] = f.StartTo.UTC()
		}
		q["startTime"] = rng
	}
	return q
}

// sortDoc orders by the requested field, breaking ties on _id in the same
// direction. Document field names match the API sort names.
func sortDoc(s domain.SessionSort) bson.D {
	dir := 1
	if s.Desc {
		dir = -1
	}
	return bson.D{{Key: string(s.Field), Value: dir}, {Key: "_id", Value: dir}}
}
