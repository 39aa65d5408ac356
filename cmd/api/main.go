package main

import (
	"context"
	"database/sql"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/robfig/cron/v3"
	"golang.org/x/sync/errgroup"

	"qa-forum/internal/config"
	hhttp "qa-forum/internal/handler/http"
	"qa-forum/internal/handler/http/requestid"
	"qa-forum/internal/handler/http/routes"
	"qa-forum/internal/infra/adapter/persistence/memory"
	pgRepo "qa-forum/internal/infra/adapter/persistence/postgres"
	"qa-forum/internal/infra/db"
	"qa-forum/internal/observability/logging"
	"qa-forum/internal/observability/tracing"
	"qa-forum/internal/resilience/circuitbreaker"
	"qa-forum/internal/resilience/retry"
	"qa-forum/internal/usecase/forum"
	"qa-forum/internal/usecase/stats"
	envcfg "qa-forum/pkg/config"
)

const serviceName = "qa-forum"

func main() {
	cfg, err := config.LoadFromEnv()
	if err != nil {
		slog.Error("failed to load configuration", slog.Any("error", err))
		os.Exit(1)
	}

	logger := initLogger(cfg.Log)
	version := envcfg.GetEnvString("VERSION", "dev")

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	shutdownTracing := tracing.InitProvider(envcfg.GetEnvFloat("TRACE_SAMPLE_RATIO", 1))
	defer func() {
		if err := shutdownTracing(context.Background()); err != nil {
			logger.Error("failed to shut down tracer provider", slog.Any("error", err))
		}
	}()

	store, err := initStorage(ctx, logger, cfg.Database)
	if err != nil {
		logger.Error("failed to initialize storage", slog.Any("error", err))
		os.Exit(1)
	}
	defer store.close(logger)

	if err := run(ctx, logger, cfg, store, version); err != nil {
		logger.Error("server failed", slog.Any("error", err))
		os.Exit(1)
	}
	logger.Info("server stopped")
}

// initLogger initializes and returns a structured logger based on configuration.
func initLogger(cfg config.LogConfig) *slog.Logger {
	logger := logging.New(os.Stdout, cfg.Level, cfg.Format)
	slog.SetDefault(logger)
	return logger
}

// storage bundles the repositories with the optional database handles behind them.
type storage struct {
	forum   *forum.Service
	stats   *stats.Service
	db      *sql.DB
	breaker *circuitbreaker.DBCircuitBreaker
}

// initStorage selects Postgres or the in-memory store. Postgres is migrated on startup.
func initStorage(ctx context.Context, logger *slog.Logger, cfg config.DatabaseConfig) (*storage, error) {
	if cfg.Driver == config.DriverMemory {
		logger.Warn("using in-memory storage, data is lost on restart")
		mem := memory.NewStore()
		return &storage{
			forum: &forum.Service{
				Questions: mem.Questions(),
				Answers:   mem.Answers(),
				Comments:  mem.Comments(),
			},
			stats: &stats.Service{Repo: mem.Stats()},
		}, nil
	}

	database, err := db.OpenWithRetry(ctx, cfg.URL, cfg.Pool(), retry.DBConfig())
	if err != nil {
		return nil, err
	}
	if err := db.MigrateUp(ctx, database); err != nil {
		_ = database.Close()
		return nil, err
	}

	s := &storage{db: database}
	var conn pgRepo.DBTX = database
	if cfg.Breaker {
		s.breaker = circuitbreaker.NewDBCircuitBreaker(database)
		conn = s.breaker
		logger.Info("database circuit breaker enabled")
	}

	s.forum = &forum.Service{
		Questions: pgRepo.NewQuestionRepo(conn),
		Answers:   pgRepo.NewAnswerRepo(conn),
		Comments:  pgRepo.NewCommentRepo(conn),
	}
	s.stats = &stats.Service{Repo: pgRepo.NewStatsRepo(conn), PoolStats: database.Stats}
	return s, nil
}

func (s *storage) close(logger *slog.Logger) {
	if s.db == nil {
		return
	}
	if err := s.db.Close(); err != nil {
		logger.Error("failed to close database", slog.Any("error", err))
	}
}

// routeDeps leaves the health fields nil for the in-memory store; a typed nil
// inside the interfaces would be reported as a database.
func (s *storage) routeDeps(version string) routes.Deps {
	d := routes.Deps{Forum: s.forum, Name: serviceName, Version: version}
	if s.db != nil {
		d.DB = s.db
		d.PoolStats = s.db.Stats
	}
	if s.breaker != nil {
		d.DB = s.breaker
		d.Breaker = s.breaker
	}
	return d
}

// buildHandler wraps the route table with the middleware chain.
// Order: Request ID → Tracing → Recovery → Logging → Write Rate Limit → Body Limit → Timeout → Metrics
func buildHandler(logger *slog.Logger, cfg *config.ServerConfig, mux http.Handler, limiter *hhttp.WriteLimiter) http.Handler {
	middlewares := []func(http.Handler) http.Handler{
		requestid.Middleware,
		tracing.Middleware,
		hhttp.Recover(logger),
		hhttp.Logging(logger),
	}
	if limiter != nil {
		middlewares = append(middlewares, limiter.Limit)
	} else {
		logger.Warn("write rate limiting is DISABLED")
	}
	middlewares = append(middlewares, hhttp.LimitRequestBody(cfg.Server.MaxBodyBytes))
	if cfg.Server.RequestTimeout > 0 {
		middlewares = append(middlewares, hhttp.Timeout(cfg.Server.RequestTimeout))
	}
	middlewares = append(middlewares, hhttp.MetricsMiddleware)

	return hhttp.Chain(mux, middlewares...)
}

// run serves HTTP and the stats job until ctx is cancelled, then shuts both down.
func run(ctx context.Context, logger *slog.Logger, cfg *config.ServerConfig, store *storage, version string) error {
	var limiter *hhttp.WriteLimiter
	if cfg.RateLimit.Enabled {
		limiter = hhttp.NewWriteLimiter(cfg.RateLimit.RPS, cfg.RateLimit.Burst)
		logger.Info("write rate limiting initialized",
			slog.Float64("rps", cfg.RateLimit.RPS),
			slog.Int("burst", cfg.RateLimit.Burst))
	}

	mux := routes.NewMux(store.routeDeps(version))
	srv := &http.Server{
		Addr:              cfg.Server.Addr,
		Handler:           buildHandler(logger, cfg, mux, limiter),
		ReadHeaderTimeout: cfg.Server.ReadHeaderTimeout, // Prevent Slowloris attacks
	}

	scheduler := cron.New()
	if cfg.Stats.Schedule != "" {
		if _, err := store.stats.Schedule(scheduler, cfg.Stats.Schedule, cfg.Stats.Timeout, logger); err != nil {
			return err
		}
		scheduler.Start()
		logger.Info("stats refresh scheduled", slog.String("schedule", cfg.Stats.Schedule))
	}

	g, gctx := errgroup.WithContext(ctx)

	if limiter != nil {
		g.Go(func() error {
			limiter.StartCleanup(gctx, time.Minute)
			return nil
		})
	}

	g.Go(func() error {
		logger.Info("server starting",
			slog.String("addr", cfg.Server.Addr),
			slog.String("version", version),
			slog.String("storage", cfg.Database.Driver))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})

	g.Go(func() error {
		<-gctx.Done()
		logger.Info("shutting down server...")

		<-scheduler.Stop().Done()

		shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	})

	return g.Wait()
}
