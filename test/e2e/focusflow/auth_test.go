//go:build e2e

package focusflow_test

import (
	"strings"
	"testing"

	"github.com/aussiebroadwan/focusflow/pkg/focussdk"
	"github.com/stretchr/testify/require"
)

func TestRegisterLoginAndProfile(t *testing.T) {
	baseURL := setupContainer(t, relaxedLimits)
	client := focussdk.NewSDKClient(baseURL)
	ctx := t.Context()

	session, user := registerUser(t, client)

	// Login is case-insensitive on email.
	loggedIn, err := client.AuthenticateWithPassword(ctx, strings.ToUpper(user.Email), testPassword)
	require.NoError(t, err)

	for _, s := range []*focussdk.Session{session, loggedIn} {
		me, err := s.Me(ctx)
		require.NoError(t, err)
		require.Equal(t, user.ID, me.ID)
		require.Equal(t, 25, *me.Preferences.PomodoroLength)
		require.Equal(t, 5, *me.Preferences.ShortBreakLength)
		require.Equal(t, 15, *me.Preferences.LongBreakLength)
		require.Equal(t, 8, *me.Preferences.DailyGoal)
	}

	_, err = client.Register(ctx, focussdk.RegisterRequest{
		Username: user.Username,
		Email:    "other-" + user.Email,
		Password: testPassword,
	})
	require.ErrorIs(t, err, focussdk.ErrConflict)

	_, err = client.Login(ctx, focussdk.LoginRequest{Email: user.Email, Password: "wrong-password"})
	require.ErrorIs(t, err, focussdk.ErrInvalidCredentials)
}

func TestPreferencesPersist(t *testing.T) {
	baseURL := setupContainer(t, relaxedLimits)
	client := focussdk.NewSDKClient(baseURL)
	ctx := t.Context()

	session, _ := registerUser(t, client)

	resp, err := session.UpdatePreferences(ctx, map[string]any{"pomodoroLength": 50, "shortBreakLength": 10})
	require.NoError(t, err)
	require.Equal(t, 50, *resp.Preferences.PomodoroLength)
	require.Equal(t, 15, *resp.Preferences.LongBreakLength)

	_, err = session.UpdatePreferences(ctx, map[string]any{"email": "x@example.com"})
	require.ErrorIs(t, err, focussdk.ErrInvalidRequest)

	me, err := session.Me(ctx)
	require.NoError(t, err)
	require.Equal(t, 50, *me.Preferences.PomodoroLength)
	require.Equal(t, 10, *me.Preferences.ShortBreakLength)
}

func TestTokenRequired(t *testing.T) {
	baseURL := setupContainer(t, relaxedLimits)
	client := focussdk.NewSDKClient(baseURL)

	_, err := client.NewSession("").Me(t.Context())
	require.ErrorIs(t, err, focussdk.ErrInvalidToken)

	_, err = client.NewSession("eyJhbGciOiJIUzI1NiJ9.e30.invalid").ListSessions(t.Context(), focussdk.ListSessionsParams{})
	require.ErrorIs(t, err, focussdk.ErrInvalidToken)
}
