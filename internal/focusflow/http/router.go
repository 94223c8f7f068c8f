package http

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/aussiebroadwan/focusflow/internal/focusflow/service"
	"github.com/aussiebroadwan/focusflow/internal/focusflow/store"
	"github.com/aussiebroadwan/focusflow/pkg/httpx"
	"github.com/aussiebroadwan/focusflow/pkg/jwtx"
	"github.com/aussiebroadwan/focusflow/pkg/slogx"

	_ "github.com/aussiebroadwan/focusflow/api/focusflow" // Swagger docs
	httpSwagger "github.com/swaggo/http-swagger"
)

// Router holds shared dependencies for HTTP handlers.
type Router struct {
	Mux         *http.ServeMux
	middlewares []httpx.Middleware

	verifier     jwtx.Verifier
	buildVersion string
	startTime    time.Time
	logger       *slog.Logger

	store            store.Store
	UserService      *service.UserService
	SessionService   *service.SessionService
	AnalyticsService *service.AnalyticsService

	// AuthLimit guards register and login per client IP, APILimit every
	// authenticated route per user. Read by ApplyRoutes.
	AuthLimit httpx.RateLimitConfig
	APILimit  httpx.RateLimitConfig
}

func NewRouter(
	verifier jwtx.Verifier,
	buildVersion string,
	st store.Store,
	corsOrigins []string,
	logger *slog.Logger,
) *Router {
	r := &Router{
		Mux:          http.NewServeMux(),
		verifier:     verifier,
		buildVersion: buildVersion,
		startTime:    time.Now(),
		store:        st,
		logger:       logger,
		AuthLimit:    httpx.StrictLimit,
		APILimit:     httpx.LenientLimit,
	}

	// Outermost first: request logging, panic recovery, CORS.
	r.middlewares = []httpx.Middleware{
		slogx.HTTPMiddleware(r.logger),
		httpx.Recover(),
		httpx.CORS(corsOrigins),
	}

	return r
}

func (r *Router) ApplyRoutes() {
	r.registerAuth()
	r.registerPomodoro()
	r.registerAnalytics()
	r.registerSystem()

	r.Mux.Handle("/swagger/", httpSwagger.Handler())
}

// ServeHTTP implements http.Handler for Router and applies the global middleware chain.
//
//	@title			FocusFlow API
//	@version		0.1.0
//	@description	Pomodoro session tracking with productivity analytics.
//	@description
//	@description				Every route except register, login and the health probes requires an HS256 bearer token issued by register or login.
//
//	@contact.name				AussieBroadWAN Team
//	@contact.url				https://github.com/aussiebroadwan/focusflow
//
//	@license.name				MIT
//	@license.url				https://opensource.org/licenses/MIT
//
//	@host						localhost:5000
//	@BasePath					/
//
//	@schemes					http https
//
//	@securityDefinitions.apikey	BearerAuth
//	@in							header
//	@name						Authorization
//	@description				JWT access token. Format: "Bearer {token}".
func (r *Router) ServeHTTP(w http.ResponseWriter, req *http.Request) {
	httpx.Chain(r.Mux, r.middlewares...).ServeHTTP(w, req)
}

// secured wraps h with bearer authentication and the per-user limit.
func (r *Router) secured(h http.HandlerFunc) http.Handler {
	return httpx.Chain(h,
		httpx.AuthnMiddleware(r.verifier),
		httpx.RateLimitByUser(r.APILimit),
	)
}

func (r *Router) registerAuth() {
	h := &AuthHandler{UserService: r.UserService}

	// Credential endpoints - strict rate limit by IP (brute force)
	r.Mux.Handle("POST /api/auth/register",
		httpx.Chain(http.HandlerFunc(h.HandleRegister),
			httpx.RateLimitByIP(r.AuthLimit),
		),
	)
	r.Mux.Handle("POST /api/auth/login",
		httpx.Chain(http.HandlerFunc(h.HandleLogin),
			httpx.RateLimitByIP(r.AuthLimit),
		),
	)

	r.Mux.Handle("GET /api/auth/me", r.secured(h.HandleMe))
	r.Mux.Handle("PATCH /api/auth/preferences", r.secured(h.HandlePreferences))
}

func (r *Router) registerPomodoro() {
	h := &PomodoroHandler{SessionService: r.SessionService}

	r.Mux.Handle("POST /api/pomodoro/start", r.secured(h.HandleStart))
	r.Mux.Handle("GET /api/pomodoro", r.secured(h.HandleList))
	r.Mux.Handle("GET /api/pomodoro/stats", r.secured(h.HandleStats))
	r.Mux.Handle("GET /api/pomodoro/{id}", r.secured(h.HandleGet))
	r.Mux.Handle("PATCH /api/pomodoro/{id}/end", r.secured(h.HandleEnd))
	r.Mux.Handle("POST /api/pomodoro/{id}/interruption", r.secured(h.HandleInterruption))
}

func (r *Router) registerAnalytics() {
	h := &AnalyticsHandler{AnalyticsService: r.AnalyticsService}

	r.Mux.Handle("GET /api/analytics/daily", r.secured(h.HandleDaily))
	r.Mux.Handle("GET /api/analytics/patterns", r.secured(h.HandlePatterns))
	r.Mux.Handle("GET /api/analytics/categories", r.secured(h.HandleCategories))
	r.Mux.Handle("GET /api/analytics/insights", r.secured(h.HandleInsights))
}

func (r *Router) registerSystem() {
	// Health check endpoints - lenient rate limits (monitoring systems may poll frequently)
	r.Mux.Handle("GET /livez",
		httpx.Chain(LivezHandler(r.startTime, r.buildVersion),
			httpx.RateLimitByIP(httpx.LenientLimit),
		),
	)
	r.Mux.Handle("GET /readyz",
		httpx.Chain(ReadyzHandler(r.startTime, r.buildVersion, r.store),
			httpx.RateLimitByIP(httpx.LenientLimit),
		),
	)
}
