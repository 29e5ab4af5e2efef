// Package server wires the store, services and transports together and runs
// the HTTP server until it is told to stop.
package server

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/monocle-dev/rentals/db"
	"github.com/monocle-dev/rentals/internal/config"
	"github.com/monocle-dev/rentals/internal/graph"
	"github.com/monocle-dev/rentals/internal/handlers"
	"github.com/monocle-dev/rentals/internal/logging"
	"github.com/monocle-dev/rentals/internal/metrics"
	"github.com/monocle-dev/rentals/internal/middleware"
	"github.com/monocle-dev/rentals/internal/monitors"
	"github.com/monocle-dev/rentals/internal/router"
	"github.com/monocle-dev/rentals/internal/scheduler"
	"github.com/monocle-dev/rentals/internal/services"
	"github.com/monocle-dev/rentals/internal/store"
)

const (
	limiterCleanupInterval = 10 * time.Minute
	storeCheckInterval     = 30 * time.Second
	storeCheckTimeout      = 5 * time.Second
)

type App struct {
	config  *config.Config
	logger  logging.Logger
	store   store.Store
	limiter *middleware.RateLimiter
	jobs    *scheduler.Scheduler
	engine  *gin.Engine
}

func NewApp(cfg *config.Config, logger logging.Logger) (*App, error) {
	s, err := openStore(cfg, logger)
	if err != nil {
		return nil, err
	}

	users := services.NewUserService(s, logger)
	products := services.NewProductService(s, logger)

	schema, err := graph.NewSchema(graph.NewResolver(users, products, logger))
	if err != nil {
		closeStore(s)
		return nil, fmt.Errorf("graphql schema error: %w", err)
	}

	limiter := middleware.NewRateLimiter(cfg.RateLimitRPS, cfg.RateLimitBurst, logger)

	engine := router.NewRouter(
		handlers.New(users, products, s, logger),
		graph.Handler(schema),
		router.Options{
			Logger:         logger,
			AllowedOrigins: cfg.Origins(),
			RateLimiter:    limiter,
		},
	)

	return &App{
		config:  cfg,
		logger:  logger,
		store:   s,
		limiter: limiter,
		jobs:    scheduler.NewScheduler(logger),
		engine:  engine,
	}, nil
}

// storeCheck keeps the store-up gauge current between scrapes.
func (app *App) storeCheck() scheduler.Job {
	return scheduler.Job{
		Name:     "store-check",
		Interval: storeCheckInterval,
		Run: func(ctx context.Context) error {
			res := monitors.CheckStore(ctx, app.store, storeCheckTimeout)
			metrics.SetStoreUp(res.Up)
			return res.Err
		},
	}
}

func openStore(cfg *config.Config, logger logging.Logger) (store.Store, error) {
	if cfg.StoreDriver == config.StoreMemory {
		logger.Warn(context.Background(), "Using the in-memory store, data is lost on restart")
		return store.NewMemoryStore(), nil
	}

	conn, err := db.ConnectDatabase(cfg.DatabaseURL, db.Options{
		MaxOpenConns: cfg.DBMaxOpenConns,
		MaxIdleConns: cfg.DBMaxIdleConns,
		Logger:       logger,
	})
	if err != nil {
		return nil, fmt.Errorf("db init error: %w", err)
	}

	s := store.NewGormStore(conn)

	if err := db.MigrateDatabase(conn); err != nil {
		closeStore(s)
		return nil, fmt.Errorf("db migration error: %w", err)
	}

	return s, nil
}

func closeStore(s store.Store) error {
	if c, ok := s.(io.Closer); ok {
		return c.Close()
	}
	return nil
}

// Handler exposes the HTTP routes.
func (app *App) Handler() http.Handler {
	return app.engine
}

// Run serves until ctx is cancelled or SIGINT/SIGTERM arrives, then drains
// in-flight requests and closes the store.
func (app *App) Run(ctx context.Context) error {
	listener, err := net.Listen("tcp", app.config.Addr())
	if err != nil {
		return fmt.Errorf("failed to listen on %s: %w", app.config.Addr(), err)
	}

	return app.Serve(ctx, listener)
}

func (app *App) Serve(ctx context.Context, listener net.Listener) error {
	ctx, stop := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	app.limiter.StartCleanup(limiterCleanupInterval, ctx.Done())

	if err := app.jobs.Add(app.storeCheck()); err != nil {
		_ = listener.Close()
		return fmt.Errorf("failed to schedule store check: %w", err)
	}

	srv := &http.Server{
		Handler:           app.engine,
		ReadHeaderTimeout: 10 * time.Second,
	}

	serveErr := make(chan error, 1)
	go func() {
		app.logger.Info(ctx, "Server is running", "addr", listener.Addr().String())
		serveErr <- srv.Serve(listener)
	}()

	var runErr error

	select {
	case err := <-serveErr:
		if !errors.Is(err, http.ErrServerClosed) {
			runErr = fmt.Errorf("server error: %w", err)
		}
	case <-ctx.Done():
		app.logger.Info(context.Background(), "Shutting down server")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), app.config.ShutdownTimeout)
		defer cancel()

		if err := srv.Shutdown(shutdownCtx); err != nil {
			runErr = fmt.Errorf("graceful shutdown failed: %w", err)
		}
	}

	app.jobs.Stop()

	if err := closeStore(app.store); err != nil {
		app.logger.Error(context.Background(), "Failed to close store", "error", err)
	}

	return runErr
}
