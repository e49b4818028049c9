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

	"github.com/aussiebroadwan/bistro/internal/bistro/guard"
	httpapi "github.com/aussiebroadwan/bistro/internal/bistro/http"
	"github.com/aussiebroadwan/bistro/internal/bistro/payment"
	"github.com/aussiebroadwan/bistro/internal/bistro/service"
	"github.com/aussiebroadwan/bistro/internal/bistro/store/drivers/sqlite"
	"github.com/aussiebroadwan/bistro/pkg/slogx"
)

// BuildVersion is overridden at build time via -ldflags.
var BuildVersion = "v0.1.0"

// Application encapsulates the bistro API with all its dependencies
type Application struct {
	cfg    Config
	logger *slog.Logger

	db        *sqlite.Store
	guard     *guard.Guard
	processor payment.Processor

	userService    *service.UserService
	menuService    *service.MenuService
	reviewService  *service.ReviewService
	cartService    *service.CartService
	paymentService *service.PaymentService
	statsService   *service.StatsService

	server *http.Server
	router *httpapi.Router
}

// Option customises an Application before its services are built.
type Option func(*Application)

// WithLogger replaces the logger built from Config.
func WithLogger(l *slog.Logger) Option {
	return func(app *Application) { app.logger = l }
}

// WithProcessor replaces the payment processor chosen from Config.
func WithProcessor(p payment.Processor) Option {
	return func(app *Application) { app.processor = p }
}

// New creates a new Application instance with all dependencies initialized
func New(cfg Config, opts ...Option) (*Application, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	app := &Application{cfg: cfg}
	for _, opt := range opts {
		opt(app)
	}

	if app.logger == nil {
		app.logger = NewLogger(cfg)
	}
	if app.processor == nil {
		app.processor = NewProcessor(cfg, app.logger)
	}

	if err := app.initDatabase(); err != nil {
		return nil, err
	}

	g, err := guard.New(guard.Config{
		Secret: cfg.AccessTokenSecret,
		Env:    cfg.Env,
	}, app.db.Users())
	if err != nil {
		_ = app.db.Close()
		return nil, fmt.Errorf("failed to initialize access guard: %w", err)
	}
	app.guard = g

	app.initServices()
	app.initHTTP()

	return app, nil
}

// NewLogger builds the process logger from cfg.
func NewLogger(cfg Config) *slog.Logger {
	return slogx.New(slogx.Config{
		Service: "bistro",
		Version: BuildVersion,
		Env:     cfg.Env,
		Level:   cfg.LogLevel,
		Format:  cfg.LogFormat,
	})
}

// NewProcessor returns the Stripe processor when a key is configured and a
// processor that rejects every intent otherwise.
func NewProcessor(cfg Config, logger *slog.Logger) payment.Processor {
	if cfg.StripeSecretKey == "" {
		logger.Warn("STRIPE_SECRET_KEY not set, payment intents are disabled")
		return payment.Disabled{}
	}
	return payment.NewStripe(cfg.StripeSecretKey)
}

// OpenStore opens the configured database and applies pending migrations.
func OpenStore(cfg Config) (*sqlite.Store, error) {
	db, err := sqlite.NewStore(cfg.DSN())
	if err != nil {
		return nil, fmt.Errorf("failed to initialize database: %w", err)
	}

	if err := db.ApplyMigrations(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to apply database migrations: %w", err)
	}
	return db, nil
}

// Handler returns the fully wired HTTP handler.
func (app *Application) Handler() http.Handler {
	return app.router
}

// Run starts the application and blocks until shutdown is requested
func (app *Application) Run() error {
	app.logger.Info("bistro server starting", "port", app.cfg.Port, "version", BuildVersion)

	serverErrors := make(chan error, 1)
	go func() {
		serverErrors <- app.server.ListenAndServe()
	}()

	shutdown := make(chan os.Signal, 1)
	signal.Notify(shutdown, os.Interrupt, syscall.SIGTERM)
	defer signal.Stop(shutdown)

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
	app.logger.Info("shutting down bistro server...")

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

	app.logger.Info("bistro server stopped")
	return nil
}

func (app *Application) initDatabase() error {
	db, err := OpenStore(app.cfg)
	if err != nil {
		return err
	}
	app.db = db

	app.logger.Info("database migrations applied successfully", "file", app.cfg.DatabaseFile)
	return nil
}

func (app *Application) initServices() {
	app.userService = &service.UserService{Store: app.db}
	app.menuService = &service.MenuService{Store: app.db}
	app.reviewService = &service.ReviewService{Store: app.db}
	app.cartService = &service.CartService{Store: app.db}
	app.paymentService = &service.PaymentService{Store: app.db, Processor: app.processor}
	app.statsService = &service.StatsService{Store: app.db}
}

func (app *Application) initHTTP() {
	router := httpapi.NewRouter(
		app.guard,
		BuildVersion,
		app.db,
		app.logger,
		app.cfg.CORSOrigins,
	)

	router.UserService = app.userService
	router.MenuService = app.menuService
	router.ReviewService = app.reviewService
	router.CartService = app.cartService
	router.PaymentService = app.paymentService
	router.StatsService = app.statsService
	router.ApplyRoutes()

	app.router = router

	app.server = &http.Server{
		Addr:              fmt.Sprintf(":%d", app.cfg.Port),
		Handler:           router,
		ReadHeaderTimeout: 3 * time.Second,
	}
}
