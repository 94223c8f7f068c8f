package domain

import "time"

type User struct {
	ID           string
	Username     string
	Email        string
	PasswordHash string // argon2id PHC string, or bcrypt for imported accounts
	Preferences  Preferences
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// Preferences holds the timer settings of a user. Nil fields are unset; in a
// patch they mean "leave as is".
type Preferences struct {
	PomodoroLength   *int // minutes
	ShortBreakLength *int // minutes
	LongBreakLength  *int // minutes
	DailyGoal        *int // completed work sessions per day
}

// Preference field names accepted by the partial update. Anything else is
// rejected.
const (
	PrefPomodoroLength   = "pomodoroLength"
	PrefShortBreakLength = "shortBreakLength"
	PrefLongBreakLength  = "longBreakLength"
	PrefDailyGoal        = "dailyGoal"
)

// PreferenceFields is the allow-list for preference updates.
var PreferenceFields = []string{
	PrefPomodoroLength,
	PrefShortBreakLength,
	PrefLongBreakLength,
	PrefDailyGoal,
}

// DefaultPreferences are seeded into every new account.
func DefaultPreferences() Preferences {
	return Preferences{
		PomodoroLength:   intPtr(25),
		ShortBreakLength: intPtr(5),
		LongBreakLength:  intPtr(15),
		DailyGoal:        intPtr(8),
	}
}

// Merge returns p with every non-nil field of patch applied.
func (p Preferences) Merge(patch Preferences) Preferences {
	if patch.PomodoroLength != nil {
		p.PomodoroLength = intPtr(*patch.PomodoroLength)
	}
	if patch.ShortBreakLength != nil {
		p.ShortBreakLength = intPtr(*patch.ShortBreakLength)
	}
	if patch.LongBreakLength != nil {
		p.LongBreakLength = intPtr(*patch.LongBreakLength)
	}
	if patch.DailyGoal != nil {
		p.DailyGoal = intPtr(*patch.DailyGoal)
	}
	return p
}

// IsEmpty reports whether no field is set.
func (p Preferences) IsEmpty() bool {
	return p.PomodoroLength == nil && p.ShortBreakLength == nil &&
		p.LongBreakLength == nil && p.DailyGoal == nil
}

func intPtr(v int) *int { return &v }
