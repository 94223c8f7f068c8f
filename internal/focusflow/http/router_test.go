package http_test

import (
	"context"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	focushttp "github.com/aussiebroadwan/focusflow/internal/focusflow/http"
	"github.com/aussiebroadwan/focusflow/internal/focusflow/service"
	"github.com/aussiebroadwan/focusflow/internal/focusflow/store/drivers/sqlite"
	"github.com/aussiebroadwan/focusflow/pkg/cryptox"
	"github.com/aussiebroadwan/focusflow/pkg/focussdk"
	"github.com/aussiebroadwan/focusflow/pkg/httpx"
	"github.com/aussiebroadwan/focusflow/pkg/jwtx"
	"github.com/aussiebroadwan/focusflow/pkg/slogx"
	"github.com/stretchr/testify/require"
)

const testIssuer = "focusflow-test"

var testSecret = []byte(strings.Repeat("k", jwtx.MinHS256SecretLen))

func TestMain(m *testing.M) {
	dir, err := os.MkdirTemp("", "http-test")
	if err != nil {
		panic(err)
	}
	cryptox.SetPepperPath(filepath.Join(dir, "pepper"))

	code := m.Run()
	_ = os.RemoveAll(dir)
	os.Exit(code)
}

type testServer struct {
	*httptest.Server
	client *focussdk.SDKClient
	store  *sqlite.Store
}

// newServer serves a fresh in-memory store. Rate limits are off unless
// configure turns them on.
func newServer(t *testing.T, configure ...func(*focushttp.Router)) *testServer {
	t.Helper()

	st, err := sqlite.NewStore(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { _ = st.Close() })
	require.NoError(t, st.ApplyMigrations())

	signer, err := jwtx.NewSignerHS256(testSecret)
	require.NoError(t, err)
	verifier := jwtx.NewVerifierHS256(testSecret, jwtx.VerifyOptions{Issuer: testIssuer})

	router := focushttp.NewRouter(verifier, "test", st, []string{"http://localhost:3000"}, slogx.Discard())
	router.UserService = &service.UserService{
		Store:  st,
		Tokens: &service.TokenService{Signer: signer, Issuer: testIssuer, TTL: time.Hour},
	}
	router.SessionService = &service.SessionService{Store: st}
	router.AnalyticsService = &service.AnalyticsService{Store: st}
	router.AuthLimit = httpx.RateLimitConfig{}
	router.APILimit = httpx.RateLimitConfig{}
	for _, fn := range configure {
		fn(router)
	}
	router.ApplyRoutes()

	srv := httptest.NewServer(router)
	t.Cleanup(srv.Close)

	return &testServer{Server: srv, client: focussdk.NewSDKClient(srv.URL), store: st}
}

func (s *testServer) register(t *testing.T, name string) *focussdk.Session {
	t.Helper()
	res, err := s.client.Register(context.Background(), focussdk.RegisterRequest{
		Username: name,
		Email:    name + "@example.com",
		Password: "secret123",
	})
	require.NoError(t, err)
	return s.client.NewSession(res.Token)
}

func requireAPIError(t *testing.T, err error, status int, code string) *focussdk.APIError {
	t.Helper()
	var apiErr *focussdk.APIError
	require.ErrorAs(t, err, &apiErr)
	require.Equal(t, status, apiErr.StatusCode)
	require.Equal(t, code, apiErr.Code)
	return apiErr
}

func TestRegisterAndLogin(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	srv := newServer(t)

	res, err := srv.client.Register(ctx, focussdk.RegisterRequest{
		Username: "alice",
		Email:    "Alice@Example.com",
		Password: "secret123",
	})
	require.NoError(t, err)
	require.NotEmpty(t, res.Token)
	require.Equal(t, "alice", res.User.Username)
	require.Equal(t, "alice@example.com", res.User.Email)

	t.Run("duplicate", func(t *testing.T) {
		_, err := srv.client.Register(ctx, focussdk.RegisterRequest{
			Username: "alice2",
			Email:    "alice@example.com",
			Password: "secret123",
		})
		require.ErrorIs(t, err, focussdk.ErrConflict)
	})

	t.Run("validation", func(t *testing.T) {
		_, err := srv.client.Register(ctx, focussdk.RegisterRequest{
			Username: "bo",
			Email:    "not-an-email",
			Password: "123",
		})
		apiErr := requireAPIError(t, err, http.StatusBadRequest, focussdk.ErrorCodeValidation)

		fields := make([]string, 0, len(apiErr.Fields))
		for _, f := range apiErr.Fields {
			fields = append(fields, f.Field)
		}
		require.ElementsMatch(t, []string{"username", "email", "password"}, fields)
	})

	t.Run("login", func(t *testing.T) {
		out, err := srv.client.Login(ctx, focussdk.LoginRequest{Email: "ALICE@example.com", Password: "secret123"})
		require.NoError(t, err)
		require.Equal(t, res.User.ID, out.User.ID)
	})

	t.Run("wrong password", func(t *testing.T) {
		_, err := srv.client.Login(ctx, focussdk.LoginRequest{Email: "alice@example.com", Password: "nope-nope"})
		require.ErrorIs(t, err, focussdk.ErrInvalidCredentials)
	})

	t.Run("unknown email", func(t *testing.T) {
		_, err := srv.client.Login(ctx, focussdk.LoginRequest{Email: "ghost@example.com", Password: "secret123"})
		require.ErrorIs(t, err, focussdk.ErrInvalidCredentials)
	})
}

func TestMalformedBody(t *testing.T) {
	t.Parallel()
	srv := newServer(t)

	resp, err := http.Post(srv.URL+"/api/auth/register", "application/json", strings.NewReader("{"))
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusBadRequest, resp.StatusCode)

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	require.Contains(t, string(body), `"error":"invalid_request"`)
}

func TestAuthenticationRequired(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	srv := newServer(t)

	resp, err := http.Get(srv.URL + "/api/auth/me")
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	require.Contains(t, resp.Header.Get("WWW-Authenticate"), "Bearer")

	_, err = srv.client.NewSession("not-a-token").Me(ctx)
	require.ErrorIs(t, err, focussdk.ErrInvalidToken)

	// Signed with another secret.
	other, err := jwtx.NewSignerHS256([]byte(strings.Repeat("x", jwtx.MinHS256SecretLen)))
	require.NoError(t, err)
	forged, err := other.Sign(jwtx.NewAccessClaims("someone", "someone", testIssuer, time.Hour, time.Now()))
	require.NoError(t, err)
	_, err = srv.client.NewSession(forged).ListSessions(ctx, focussdk.ListSessionsParams{})
	require.ErrorIs(t, err, focussdk.ErrInvalidToken)

	// Valid signature, expired.
	signer, err := jwtx.NewSignerHS256(testSecret)
	require.NoError(t, err)
	expired, err := signer.Sign(jwtx.NewAccessClaims("someone", "someone", testIssuer, time.Minute, time.Now().Add(-time.Hour)))
	require.NoError(t, err)
	_, err = srv.client.NewSession(expired).Me(ctx)
	require.ErrorIs(t, err, focussdk.ErrInvalidToken)
}

func TestMeAndPreferences(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	srv := newServer(t)
	sess := srv.register(t, "carol")

	me, err := sess.Me(ctx)
	require.NoError(t, err)
	require.Equal(t, "carol", me.Username)
	require.NotNil(t, me.Preferences.PomodoroLength)
	require.Equal(t, 25, *me.Preferences.PomodoroLength)
	require.False(t, me.CreatedAt.IsZero())

	prefs, err := sess.UpdatePreferences(ctx, map[string]any{"dailyGoal": 10})
	require.NoError(t, err)
	require.Equal(t, 10, *prefs.Preferences.DailyGoal)
	require.Equal(t, 25, *prefs.Preferences.PomodoroLength)

	_, err = sess.UpdatePreferences(ctx, map[string]any{"theme": "dark"})
	apiErr := requireAPIError(t, err, http.StatusBadRequest, focussdk.ErrorCodeInvalidRequest)
	require.Equal(t, "Invalid updates in preferences", apiErr.Description)

	_, err = sess.UpdatePreferences(ctx, map[string]any{"pomodoroLength": -5})
	requireAPIError(t, err, http.StatusBadRequest, focussdk.ErrorCodeValidation)

	me, err = sess.Me(ctx)
	require.NoError(t, err)
	require.Equal(t, 10, *me.Preferences.DailyGoal)
	require.Equal(t, 25, *me.Preferences.PomodoroLength)
}

func TestDeletedAccount(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	srv := newServer(t)

	// A correctly signed token whose subject has no account.
	signer, err := jwtx.NewSignerHS256(testSecret)
	require.NoError(t, err)
	token, err := signer.Sign(jwtx.NewAccessClaims("01HZZZZZZZZZZZZZZZZZZZZZZZ", "ghost", testIssuer, time.Hour, time.Now()))
	require.NoError(t, err)
	sess := srv.client.NewSession(token)

	_, err = sess.Me(ctx)
	require.ErrorIs(t, err, focussdk.ErrInvalidToken)

	_, err = sess.UpdatePreferences(ctx, map[string]any{"dailyGoal": 3})
	require.ErrorIs(t, err, focussdk.ErrNotFound)
}

func TestSessionLifecycle(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	srv := newServer(t)
	sess := srv.register(t, "dave")

	started, err := sess.StartSession(ctx, focussdk.StartSessionRequest{
		Duration: 25,
		Type:     focussdk.SessionTypeWork,
		Task:     &focussdk.Task{Title: "Draft", Category: "writing"},
	})
	require.NoError(t, err)
	require.NotEmpty(t, started.ID)
	require.False(t, started.Completed)
	require.Nil(t, started.EndTime)
	require.NotNil(t, started.Interruptions)
	require.Empty(t, started.Interruptions)
	require.Equal(t, "writing", started.Task.Category)

	got, err := sess.GetSession(ctx, started.ID)
	require.NoError(t, err)
	require.Equal(t, started.ID, got.ID)
	require.Equal(t, started.User, got.User)

	interrupted, err := sess.RecordInterruption(ctx, started.ID, "phone call")
	require.NoError(t, err)
	require.Len(t, interrupted.Interruptions, 1)
	require.Equal(t, "phone call", interrupted.Interruptions[0].Reason)

	_, err = sess.RecordInterruption(ctx, started.ID, "   ")
	requireAPIError(t, err, http.StatusBadRequest, focussdk.ErrorCodeValidation)

	_, err = sess.EndSession(ctx, started.ID, focussdk.EndSessionRequest{Productivity: 11})
	requireAPIError(t, err, http.StatusBadRequest, focussdk.ErrorCodeValidation)

	ended, err := sess.EndSession(ctx, started.ID, focussdk.EndSessionRequest{Productivity: 8, Notes: "good"})
	require.NoError(t, err)
	require.True(t, ended.Completed)
	require.NotNil(t, ended.EndTime)
	require.Equal(t, 8, *ended.Productivity)
	require.Equal(t, "good", ended.Notes)
	require.Len(t, ended.Interruptions, 1)

	stats, err := sess.GetStats(ctx, "", "")
	require.NoError(t, err)
	require.Equal(t, 1, stats.TotalSessions)
	require.Equal(t, 25, stats.TotalMinutes)
	require.InDelta(t, 8.0, stats.AvgProductivity, 1e-9)
	require.Equal(t, 1, stats.TotalInterruptions)
}

func TestStartValidation(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	srv := newServer(t)
	sess := srv.register(t, "erin")

	_, err := sess.StartSession(ctx, focussdk.StartSessionRequest{Duration: 0, Type: "nap"})
	apiErr := requireAPIError(t, err, http.StatusBadRequest, focussdk.ErrorCodeValidation)
	require.Len(t, apiErr.Fields, 2)
}

func TestSessionOwnership(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	srv := newServer(t)
	owner := srv.register(t, "frank")
	other := srv.register(t, "grace")

	started, err := owner.StartSession(ctx, focussdk.StartSessionRequest{Duration: 5, Type: focussdk.SessionTypeShortBreak})
	require.NoError(t, err)

	_, err = other.GetSession(ctx, started.ID)
	require.ErrorIs(t, err, focussdk.ErrNotFound)
	_, err = other.EndSession(ctx, started.ID, focussdk.EndSessionRequest{Productivity: 5})
	require.ErrorIs(t, err, focussdk.ErrNotFound)
	_, err = other.RecordInterruption(ctx, started.ID, "snooping")
	require.ErrorIs(t, err, focussdk.ErrNotFound)

	list, err := other.ListSessions(ctx, focussdk.ListSessionsParams{})
	require.NoError(t, err)
	require.Zero(t, list.Total)
	require.NotNil(t, list.Sessions)

	got, err := owner.GetSession(ctx, started.ID)
	require.NoError(t, err)
	require.False(t, got.Completed)
	require.Empty(t, got.Interruptions)

	_, err = owner.GetSession(ctx, "does-not-exist")
	require.ErrorIs(t, err, focussdk.ErrNotFound)
}

func TestListSessions(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	srv := newServer(t)
	sess := srv.register(t, "heidi")

	for i := range 3 {
		s, err := sess.StartSession(ctx, focussdk.StartSessionRequest{Duration: 10 + i, Type: focussdk.SessionTypeWork})
		require.NoError(t, err)
		if i == 0 {
			_, err = sess.EndSession(ctx, s.ID, focussdk.EndSessionRequest{Productivity: 6})
			require.NoError(t, err)
		}
	}

	page, err := sess.ListSessions(ctx, focussdk.ListSessionsParams{Limit: 2, SortBy: "duration:asc"})
	require.NoError(t, err)
	require.Equal(t, 3, page.Total)
	require.True(t, page.HasMore)
	require.Len(t, page.Sessions, 2)
	require.Equal(t, 10, page.Sessions[0].Duration)
	require.Equal(t, 11, page.Sessions[1].Duration)

	rest, err := sess.ListSessions(ctx, focussdk.ListSessionsParams{Limit: 2, Skip: 2, SortBy: "duration:asc"})
	require.NoError(t, err)
	require.False(t, rest.HasMore)
	require.Len(t, rest.Sessions, 1)
	require.Equal(t, 12, rest.Sessions[0].Duration)

	completed := true
	done, err := sess.ListSessions(ctx, focussdk.ListSessionsParams{Completed: &completed})
	require.NoError(t, err)
	require.Equal(t, 1, done.Total)
	require.Equal(t, 10, done.Sessions[0].Duration)

	future, err := sess.ListSessions(ctx, focussdk.ListSessionsParams{StartDate: time.Now().UTC().Add(24 * time.Hour).Format("2006-01-02")})
	require.NoError(t, err)
	require.Zero(t, future.Total)

	_, err = sess.ListSessions(ctx, focussdk.ListSessionsParams{SortBy: "password:asc"})
	requireAPIError(t, err, http.StatusBadRequest, focussdk.ErrorCodeInvalidRequest)

	_, err = sess.ListSessions(ctx, focussdk.ListSessionsParams{EndDate: "yesterday"})
	requireAPIError(t, err, http.StatusBadRequest, focussdk.ErrorCodeInvalidRequest)

	_, err = sess.GetStats(ctx, "2024-13-45", "")
	requireAPIError(t, err, http.StatusBadRequest, focussdk.ErrorCodeInvalidRequest)
}

func TestAnalyticsEndpoints(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	srv := newServer(t)
	sess := srv.register(t, "ivan")

	empty, err := sess.GetInsights(ctx)
	require.NoError(t, err)
	require.Empty(t, empty.ProductiveHours)
	require.Empty(t, empty.Interruptions)
	require.Len(t, empty.Recommendations, 2)

	started, err := sess.StartSession(ctx, focussdk.StartSessionRequest{
		Duration: 30,
		Type:     focussdk.SessionTypeWork,
		Task:     &focussdk.Task{Title: "Refactor", Category: "coding"},
	})
	require.NoError(t, err)
	_, err = sess.RecordInterruption(ctx, started.ID, "slack")
	require.NoError(t, err)
	_, err = sess.EndSession(ctx, started.ID, focussdk.EndSessionRequest{Productivity: 9})
	require.NoError(t, err)

	start := started.StartTime.UTC()

	daily, err := sess.GetDailyAnalytics(ctx, 0)
	require.NoError(t, err)
	require.Len(t, daily, 1)
	require.Equal(t, start.Format("2006-01-02"), daily[0].Date)
	require.Equal(t, 30, daily[0].TotalMinutes)
	require.Equal(t, 1, daily[0].InterruptionCount)

	patterns, err := sess.GetPatterns(ctx)
	require.NoError(t, err)
	require.Len(t, patterns, 1)
	require.Equal(t, start.Hour(), patterns[0].Hour)
	require.InDelta(t, 9.0, patterns[0].AvgProductivity, 1e-9)

	cats, err := sess.GetCategories(ctx)
	require.NoError(t, err)
	require.Len(t, cats, 1)
	require.Equal(t, "coding", cats[0].Category)
	require.Equal(t, 1, cats[0].TotalSessions)

	insights, err := sess.GetInsights(ctx)
	require.NoError(t, err)
	require.Len(t, insights.ProductiveHours, 1)
	require.Equal(t, []focussdk.InterruptionStat{{Reason: "slack", Count: 1}}, insights.Interruptions)
	require.Len(t, insights.Recommendations, 2)
	require.Equal(t, "optimal_time", insights.Recommendations[0].Type)
}

func TestHealth(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	srv := newServer(t)

	live, err := srv.client.GetLiveness(ctx)
	require.NoError(t, err)
	require.Equal(t, "ok", live.Status)
	require.Equal(t, "test", live.Version)

	ready, err := srv.client.GetReadiness(ctx)
	require.NoError(t, err)
	require.Equal(t, "ok", ready.Status)

	require.NoError(t, srv.store.Close())
	_, err = srv.client.GetReadiness(ctx)
	var apiErr *focussdk.APIError
	require.True(t, errors.As(err, &apiErr))
	require.Equal(t, http.StatusServiceUnavailable, apiErr.StatusCode)
}

func TestCredentialRateLimit(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	srv := newServer(t, func(r *focushttp.Router) {
		r.AuthLimit = httpx.RateLimitConfig{RequestsPerWindow: 2, Window: time.Minute, Burst: 2}
	})

	for range 2 {
		_, err := srv.client.Login(ctx, focussdk.LoginRequest{Email: "nobody@example.com", Password: "whatever"})
		require.ErrorIs(t, err, focussdk.ErrInvalidCredentials)
	}

	_, err := srv.client.Login(ctx, focussdk.LoginRequest{Email: "nobody@example.com", Password: "whatever"})
	requireAPIError(t, err, http.StatusTooManyRequests, focussdk.ErrorCodeRateLimitExceeded)
}

func TestCORSAndRequestID(t *testing.T) {
	t.Parallel()
	srv := newServer(t)

	req, err := http.NewRequest(http.MethodOptions, srv.URL+"/api/pomodoro/start", nil)
	require.NoError(t, err)
	req.Header.Set("Origin", "http://localhost:3000")
	req.Header.Set("Access-Control-Request-Method", http.MethodPost)
	req.Header.Set("Access-Control-Request-Headers", "authorization,content-type")

	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, "http://localhost:3000", resp.Header.Get("Access-Control-Allow-Origin"))

	live, err := http.Get(srv.URL + "/livez")
	require.NoError(t, err)
	defer live.Body.Close()
	require.NotEmpty(t, live.Header.Get(slogx.RequestIDHeader))
}

func TestSwaggerDocs(t *testing.T) {
	t.Parallel()
	srv := newServer(t)

	resp, err := http.Get(srv.URL + "/swagger/doc.json")
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	require.Contains(t, string(body), "/api/pomodoro/start")
}
