package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	httpapi "github.com/aussiebroadwan/focusflow/internal/focusflow/http"
	"github.com/aussiebroadwan/focusflow/internal/focusflow/service"
	"github.com/aussiebroadwan/focusflow/internal/focusflow/store"
	"github.com/aussiebroadwan/focusflow/internal/focusflow/store/drivers/mongodb"
	"github.com/aussiebroadwan/focusflow/internal/focusflow/store/drivers/postgres"
	"github.com/aussiebroadwan/focusflow/internal/focusflow/store/drivers/sqlite"
	"github.com/aussiebroadwan/focusflow/pkg/cryptox"
	"github.com/aussiebroadwan/focusflow/pkg/jwtx"
	"github.com/aussiebroadwan/focusflow/pkg/slogx"
)

const (
	// BuildVersion should be set at build time via ldflags. Later problem
	BuildVersion = "v0.1.0"

	connectTimeout = 30 * time.Second
)

// Application wires the store, services and HTTP server together.
type Application struct {
	cfg    Config
	logger *slog.Logger

	db       store.Store
	signer   jwtx.Signer
	verifier jwtx.Verifier

	userService      *service.UserService
	sessionService   *service.SessionService
	analyticsService *service.AnalyticsService

	server *http.Server
	router *httpapi.Router
}

// New creates a new Application instance with all dependencies initialized
func New(cfg Config) (*Application, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	app := &Application{
		cfg: cfg,
		logger: slogx.New(slogx.Config{
			Service: "focusflow",
			Version: BuildVersion,
			Env:     cfg.Env,
			Level:   cfg.LogLevel,
			Format:  cfg.LogFormat,
		}),
	}

	cryptox.SetPepperPath(app.cfg.PepperFile)

	if err := app.initDatabase(); err != nil {
		return nil, err
	}

	signer, verifier, err := InitSigning(app.cfg, app.logger)
	if err != nil {
		_ = app.db.Close()
		return nil, fmt.Errorf("failed to initialize token signing: %w", err)
	}
	app.signer = signer
	app.verifier = verifier

	app.initServices()
	app.initHTTP()

	return app, nil
}

// Handler returns the root HTTP handler.
func (app *Application) Handler() http.Handler {
	return app.router
}

// Run starts the application and blocks until shutdown is requested
func (app *Application) Run() error {
	app.logger.Info("focusflow starting",
		"port", app.cfg.Port,
		"version", BuildVersion,
		"driver", app.cfg.DatabaseDriver,
	)

	serverErrors := make(chan error, 1)
	go func() {
		serverErrors <- app.server.ListenAndServe()
	}()

	shutdown := make(chan os.Signal, 1)
	signal.Notify(shutdown, os.Interrupt, syscall.SIGTERM)

	select {
	case err := <-serverErrors:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			_ = app.db.Close()
			return fmt.Errorf("server failed: %w", err)
		}
	case sig := <-shutdown:
		app.logger.Info("shutdown signal received", "signal", sig)

		if err := app.Shutdown(); err != nil {
			return fmt.Errorf("graceful shutdown failed: %w", err)
		}
	}

	return nil
}

// Shutdown gracefully shuts down the application
func (app *Application) Shutdown() error {
	app.logger.Info("shutting down focusflow...")

	ctx, cancel := context.WithTimeout(context.Background(), app.cfg.ShutdownGracePeriod)
	defer cancel()

	if err := app.server.Shutdown(ctx); err != nil {
		app.logger.Error("graceful server shutdown failed", "error", err)
		if err := app.server.Close(); err != nil {
			app.logger.Error("error closing server", "error", err)
		}
	}

	if err := app.db.Close(); err != nil {
		app.logger.Error("error closing database", "error", err)
		return err
	}

	app.logger.Info("focusflow stopped")
	return nil
}

// initDatabase opens the configured store and applies migrations.
func (app *Application) initDatabase() error {
	ctx, cancel := context.WithTimeout(context.Background(), connectTimeout)
	defer cancel()

	var (
		db  store.Store
		err error
	)
	switch app.cfg.DatabaseDriver {
	case DriverPostgres:
		db, err = postgres.NewStore(ctx, app.cfg.DatabaseURL)
	case DriverMongo:
		db, err = mongodb.NewStore(ctx, app.cfg.MongoURI, app.cfg.MongoDatabase)
	default:
		db, err = sqlite.NewStore(sqliteDSN(app.cfg.DatabaseURL))
	}
	if err != nil {
		return fmt.Errorf("failed to initialize %s database: %w", app.cfg.DatabaseDriver, err)
	}
	app.db = db

	if err := db.ApplyMigrations(); err != nil {
		_ = db.Close()
		return fmt.Errorf("failed to apply database migrations: %w", err)
	}

	app.logger.Info("database migrations applied successfully", "driver", app.cfg.DatabaseDriver)
	return nil
}

func (app *Application) initServices() {
	app.userService = &service.UserService{
		Store: app.db,
		Tokens: &service.TokenService{
			Signer: app.signer,
			Issuer: app.cfg.Issuer,
			TTL:    app.cfg.JWTExpire,
		},
	}
	app.sessionService = &service.SessionService{Store: app.db}
	app.analyticsService = &service.AnalyticsService{Store: app.db}
}

// initHTTP initializes the HTTP router and server
func (app *Application) initHTTP() {
	router := httpapi.NewRouter(
		app.verifier,
		BuildVersion,
		app.db,
		app.cfg.CORSOrigins,
		app.logger,
	)

	router.UserService = app.userService
	router.SessionService = app.sessionService
	router.AnalyticsService = app.analyticsService
	router.AuthLimit = app.cfg.AuthLimit
	router.APILimit = app.cfg.APILimit
	router.ApplyRoutes()

	app.router = router

	app.server = &http.Server{
		Addr:              fmt.Sprintf(":%d", app.cfg.Port),
		Handler:           router,
		ReadHeaderTimeout: 3 * time.Second,
	}
}
