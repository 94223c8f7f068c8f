package domain

import "time"

// SessionType is one of exactly three interval kinds.
type SessionType string

const (
	SessionTypeWork       SessionType = "work"
	SessionTypeShortBreak SessionType = "shortBreak"
	SessionTypeLongBreak  SessionType = "longBreak"
)

// Valid reports whether t is one of the known session types.
func (t SessionType) Valid() bool {
	switch t {
	case SessionTypeWork, SessionTypeShortBreak, SessionTypeLongBreak:
		return true
	}
	return false
}

const (
	MinProductivity = 1
	MaxProductivity = 10
)

// Task describes what a work session was spent on. Category is free text;
// an empty category means the session is uncategorised.
type Task struct {
	Title       string
	Description string
	Category    string
}

// Interruption is one recorded distraction. Interruptions are only ever
// appended, so slice order is chronological.
type Interruption struct {
	Timestamp time.Time
	Reason    string
}

// Session is one Pomodoro interval owned by a single user.
//
// A session starts in progress (Completed false, EndTime nil) and is ended
// once, which sets EndTime, Completed and Productivity together.
type Session struct {
	ID            string
	UserID        string
	StartTime     time.Time
	EndTime       *time.Time
	Duration      int // planned length in minutes
	Type          SessionType
	Completed     bool
	Task          *Task
	Interruptions []Interruption
	Productivity  *int
	Notes         string
}

// Category returns the task category or "" when there is none.
func (s Session) Category() string {
	if s.Task == nil {
		return ""
	}
	return s.Task.Category
}

// SessionEnd carries the fields written when a session is ended.
type SessionEnd struct {
	EndTime      time.Time
	Productivity int
	Notes        string
}
