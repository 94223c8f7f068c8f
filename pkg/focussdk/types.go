package focussdk

import "time"

// ============================================================================
// Error Types
// ============================================================================

// ErrorResponse is the body of every non-validation error.
type ErrorResponse struct {
	Error            string `json:"error"`
	ErrorDescription string `json:"error_description"`
}

// ValidationErrorResponse is the body of a 400 validation failure.
type ValidationErrorResponse struct {
	Code    string       `json:"code"`
	Message string       `json:"message"`
	Errors  []FieldError `json:"errors"`
}

type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// ============================================================================
// Health
// ============================================================================

type HealthResponse struct {
	Status  string `json:"status"`
	Uptime  string `json:"uptime,omitempty"`
	Version string `json:"version,omitempty"`
	Error   string `json:"error,omitempty"`
}

// ============================================================================
// Auth
// ============================================================================

type RegisterRequest struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// UserSummary is the public view returned with a fresh token.
type UserSummary struct {
	ID       string `json:"id"`
	Username string `json:"username"`
	Email    string `json:"email"`
}

type AuthResponse struct {
	Token string      `json:"token"`
	User  UserSummary `json:"user"`
}

type Preferences struct {
	PomodoroLength   *int `json:"pomodoroLength,omitempty"`
	ShortBreakLength *int `json:"shortBreakLength,omitempty"`
	LongBreakLength  *int `json:"longBreakLength,omitempty"`
	DailyGoal        *int `json:"dailyGoal,omitempty"`
}

// UserResponse is the profile returned by GET /api/auth/me.
type UserResponse struct {
	ID          string      `json:"id"`
	Username    string      `json:"username"`
	Email       string      `json:"email"`
	Preferences Preferences `json:"preferences"`
	CreatedAt   time.Time   `json:"createdAt"`
}

type PreferencesResponse struct {
	Preferences Preferences `json:"preferences"`
}

// ============================================================================
// Pomodoro Sessions
// ============================================================================

const (
	SessionTypeWork       = "work"
	SessionTypeShortBreak = "shortBreak"
	SessionTypeLongBreak  = "longBreak"
)

type Task struct {
	Title       string `json:"title,omitempty"`
	Description string `json:"description,omitempty"`
	Category    string `json:"category,omitempty"`
}

type Interruption struct {
	Timestamp time.Time `json:"timestamp"`
	Reason    string    `json:"reason"`
}

type StartSessionRequest struct {
	Duration int    `json:"duration"`
	Type     string `json:"type"`
	Task     *Task  `json:"task,omitempty"`
}

type EndSessionRequest struct {
	Productivity int    `json:"productivity"`
	Notes        string `json:"notes,omitempty"`
}

type InterruptionRequest struct {
	Reason string `json:"reason"`
}

type SessionResponse struct {
	ID            string         `json:"id"`
	User          string         `json:"user"`
	StartTime     time.Time      `json:"startTime"`
	EndTime       *time.Time     `json:"endTime,omitempty"`
	Duration      int            `json:"duration"`
	Type          string         `json:"type"`
	Completed     bool           `json:"completed"`
	Task          *Task          `json:"task,omitempty"`
	Interruptions []Interruption `json:"interruptions"`
	Productivity  *int           `json:"productivity,omitempty"`
	Notes         string         `json:"notes,omitempty"`
}

type SessionListResponse struct {
	Sessions []SessionResponse `json:"sessions"`
	Total    int               `json:"total"`
	HasMore  bool              `json:"hasMore"`
}

// ListSessionsParams are the query parameters of GET /api/pomodoro. Zero
// values are omitted.
type ListSessionsParams struct {
	Completed *bool
	Type      string
	StartDate string
	EndDate   string
	Limit     int
	Skip      int
	SortBy    string
}

type StatsResponse struct {
	TotalSessions      int     `json:"totalSessions"`
	TotalMinutes       int     `json:"totalMinutes"`
	AvgProductivity    float64 `json:"avgProductivity"`
	TotalInterruptions int     `json:"totalInterruptions"`
}

// ============================================================================
// Analytics
// ============================================================================

type DailyTrend struct {
	Date              string  `json:"date"`
	TotalSessions     int     `json:"totalSessions"`
	TotalMinutes      int     `json:"totalMinutes"`
	AvgProductivity   float64 `json:"avgProductivity"`
	InterruptionCount int     `json:"interruptionCount"`
}

type HourlyPattern struct {
	Hour            int     `json:"hour"`
	AvgProductivity float64 `json:"avgProductivity"`
	TotalSessions   int     `json:"totalSessions"`
	TotalMinutes    int     `json:"totalMinutes"`
}

type CategoryStat struct {
	Category          string  `json:"category"`
	TotalSessions     int     `json:"totalSessions"`
	TotalMinutes      int     `json:"totalMinutes"`
	AvgProductivity   float64 `json:"avgProductivity"`
	InterruptionCount int     `json:"interruptionCount"`
}

type ProductiveHour struct {
	Hour            int     `json:"hour"`
	AvgProductivity float64 `json:"avgProductivity"`
}

type InterruptionStat struct {
	Reason string `json:"reason"`
	Count  int    `json:"count"`
}

type Recommendation struct {
	Type    string `json:"type"`
	Message string `json:"message"`
}

type InsightsResponse struct {
	ProductiveHours []ProductiveHour   `json:"productiveHours"`
	Interruptions   []InterruptionStat `json:"interruptions"`
	Recommendations []Recommendation   `json:"recommendations"`
}
