package domain

import (
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"net/mail"
	"slices"
	"strings"
)

const (
	MinUsernameLen = 3
	MinPasswordLen = 6
)

// FieldError describes one invalid input field.
type FieldError struct {
	Field   string
	Message string
}

// ValidationErrors collects every problem found in one input. The zero value
// means the input is valid.
type ValidationErrors []FieldError

func (v ValidationErrors) Error() string {
	parts := make([]string, len(v))
	for i, fe := range v {
		parts[i] = fe.Field + ": " + fe.Message
	}
	return "validation failed: " + strings.Join(parts, "; ")
}

// Add appends a field error.
func (v *ValidationErrors) Add(field, msg string) {
	*v = append(*v, FieldError{Field: field, Message: msg})
}

// Err returns v as an error, or nil when there are no field errors.
func (v ValidationErrors) Err() error {
	if len(v) == 0 {
		return nil
	}
	return v
}

// ErrInvalidPreferenceUpdate is returned when a preference patch names a
// field outside PreferenceFields.
var ErrInvalidPreferenceUpdate = errors.New("invalid updates in preferences")

// NormalizeUsername trims surrounding whitespace.
func NormalizeUsername(s string) string { return strings.TrimSpace(s) }

// NormalizeEmail trims and lower-cases an address.
func NormalizeEmail(s string) string { return strings.ToLower(strings.TrimSpace(s)) }

// ValidateRegistration checks already normalised registration input.
func ValidateRegistration(username, email, password string) ValidationErrors {
	var errs ValidationErrors

	if len([]rune(username)) < MinUsernameLen {
		errs.Add("username", fmt.Sprintf("Username must be at least %d characters long", MinUsernameLen))
	}
	if !validEmail(email) {
		errs.Add("email", "Please enter a valid email")
	}
	if len(password) < MinPasswordLen {
		errs.Add("password", fmt.Sprintf("Password must be at least %d characters long", MinPasswordLen))
	}

	return errs
}

func validEmail(s string) bool {
	if s == "" {
		return false
	}
	addr, err := mail.ParseAddress(s)
	if err != nil || addr.Address != s {
		return false
	}
	_, domain, ok := strings.Cut(addr.Address, "@")
	return ok && strings.Contains(domain, ".")
}

// ValidateSession checks the invariants every stored session must hold.
func ValidateSession(s Session) ValidationErrors {
	var errs ValidationErrors

	if s.UserID == "" {
		errs.Add("user", "Session must have an owner")
	}
	if s.Duration <= 0 {
		errs.Add("duration", "Duration must be a positive number of minutes")
	}
	if !s.Type.Valid() {
		errs.Add("type", fmt.Sprintf("Type must be one of %s, %s, %s",
			SessionTypeWork, SessionTypeShortBreak, SessionTypeLongBreak))
	}
	if s.StartTime.IsZero() {
		errs.Add("startTime", "Start time is required")
	}
	if s.Completed && s.Productivity == nil {
		errs.Add("productivity", "Productivity is required when a session is completed")
	}
	if s.Productivity != nil {
		errs = append(errs, ValidateProductivity(*s.Productivity)...)
	}
	if s.EndTime != nil && s.EndTime.Before(s.StartTime) {
		errs.Add("endTime", "End time must not be before start time")
	}

	return errs
}

// ValidateProductivity checks a productivity score.
func ValidateProductivity(p int) ValidationErrors {
	if p < MinProductivity || p > MaxProductivity {
		return ValidationErrors{{
			Field:   "productivity",
			Message: fmt.Sprintf("Productivity must be between %d and %d", MinProductivity, MaxProductivity),
		}}
	}
	return nil
}

// ValidateInterruptionReason checks an interruption reason.
func ValidateInterruptionReason(reason string) ValidationErrors {
	if strings.TrimSpace(reason) == "" {
		return ValidationErrors{{Field: "reason", Message: "Reason is required"}}
	}
	return nil
}

// ParsePreferencesPatch converts a decoded JSON object into a Preferences
// patch. Unknown keys fail with ErrInvalidPreferenceUpdate; known keys with
// non-integer or non-positive values fail with ValidationErrors.
func ParsePreferencesPatch(fields map[string]json.RawMessage) (Preferences, error) {
	for key := range fields {
		if !slices.Contains(PreferenceFields, key) {
			return Preferences{}, ErrInvalidPreferenceUpdate
		}
	}

	var (
		patch Preferences
		errs  ValidationErrors
	)

	targets := map[string]**int{
		PrefPomodoroLength:   &patch.PomodoroLength,
		PrefShortBreakLength: &patch.ShortBreakLength,
		PrefLongBreakLength:  &patch.LongBreakLength,
		PrefDailyGoal:        &patch.DailyGoal,
	}

	for _, key := range PreferenceFields {
		raw, ok := fields[key]
		if !ok {
			continue
		}

		v, ok := positiveInt(raw)
		if !ok {
			errs.Add(key, "Must be a positive whole number")
			continue
		}
		*targets[key] = &v
	}

	if err := errs.Err(); err != nil {
		return Preferences{}, err
	}
	return patch, nil
}

func positiveInt(raw json.RawMessage) (int, bool) {
	var f float64
	if err := json.Unmarshal(raw, &f); err != nil {
		return 0, false
	}
	if f != math.Trunc(f) || f <= 0 || f > math.MaxInt32 {
		return 0, false
	}
	return int(f), true
}
