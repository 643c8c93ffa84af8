// Command api runs the publishing catalog HTTP server.
package main

import (
	"context"
	"database/sql"
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "github.com/jackc/pgx/v5/stdlib"
	"golang.org/x/sync/errgroup"

	"pressdesk/internal/infra/adapter/persistence/postgres"
	"pressdesk/internal/infra/adapter/persistence/sqlite"
	"pressdesk/internal/infra/db"
	"pressdesk/internal/pkg/config"
	"pressdesk/internal/repository"
	"pressdesk/internal/resilience/circuitbreaker"
	"pressdesk/internal/resilience/retry"

	articleUC "pressdesk/internal/usecase/article"
	authorUC "pressdesk/internal/usecase/author"
	magazineUC "pressdesk/internal/usecase/magazine"

	hhttp "pressdesk/internal/handler/http"
	harticle "pressdesk/internal/handler/http/article"
	hauthor "pressdesk/internal/handler/http/author"
	hauth "pressdesk/internal/handler/http/auth"
	hmagazine "pressdesk/internal/handler/http/magazine"
	"pressdesk/internal/handler/http/requestid"
	"pressdesk/internal/observability/logging"
	"pressdesk/internal/observability/metrics"
	"pressdesk/internal/observability/tracing"
	authservice "pressdesk/internal/service/auth"
)

func main() {
	configPath := flag.String("config", "", "path to the YAML config file")
	flag.Parse()

	logger := logging.NewLogger()
	slog.SetDefault(logger)

	cfg, err := config.Load(*configPath)
	if err != nil {
		logger.Error("config load failed", slog.Any("error", err))
		os.Exit(1)
	}

	database, err := openDatabase(cfg)
	if err != nil {
		logger.Error("database open failed", slog.Any("error", err))
		os.Exit(1)
	}
	defer func() {
		if err := database.Close(); err != nil {
			logger.Error("database close failed", slog.Any("error", err))
		}
	}()

	handler, repos := buildHandler(cfg, database, logger)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	shutdownTracing, err := tracing.Setup(ctx, "pressdesk")
	if err != nil {
		logger.Error("tracing setup failed", slog.Any("error", err))
		os.Exit(1)
	}
	defer func() {
		if err := shutdownTracing(context.Background()); err != nil {
			logger.Warn("tracing shutdown failed", slog.Any("error", err))
		}
	}()
	go hhttp.SLOTracker().Run(ctx, 30*time.Second)
	go refreshCatalogGauges(ctx, repos, logger)

	run(cfg, handler, logger)
}

// repoSet bundles the three repositories for the background refresher.
type repoSet struct {
	authors   repository.AuthorRepository
	magazines repository.MagazineRepository
	articles  repository.ArticleRepository
}

// refreshCatalogGauges keeps the entity count gauges current. Failures are
// logged and retried on the next tick.
func refreshCatalogGauges(ctx context.Context, repos repoSet, logger *slog.Logger) {
	ticker := time.NewTicker(time.Minute)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if authors, err := repos.authors.List(ctx); err == nil {
				metrics.UpdateAuthorsTotal(int64(len(authors)))
			} else {
				logger.Warn("author count refresh failed", slog.Any("error", err))
			}
			if magazines, err := repos.magazines.List(ctx); err == nil {
				metrics.UpdateMagazinesTotal(int64(len(magazines)))
			} else {
				logger.Warn("magazine count refresh failed", slog.Any("error", err))
			}
			if count, err := repos.articles.CountArticles(ctx); err == nil {
				metrics.UpdateArticlesTotal(count)
			} else {
				logger.Warn("article count refresh failed", slog.Any("error", err))
			}
		}
	}
}

// openDatabase opens the configured backend. PostgreSQL connections retry
// with backoff so a restart race with the database container resolves itself.
func openDatabase(cfg *config.Config) (*sql.DB, error) {
	switch cfg.Database.Driver {
	case "postgres":
		database, err := sql.Open("pgx", cfg.Database.DSN)
		if err != nil {
			return nil, fmt.Errorf("open postgres: %w", err)
		}
		err = retry.WithBackoff(context.Background(), retry.DBConfig(), func() error {
			return database.Ping()
		})
		if err != nil {
			_ = database.Close()
			return nil, fmt.Errorf("ping postgres: %w", err)
		}
		if err := postgres.MigrateUp(database); err != nil {
			_ = database.Close()
			return nil, fmt.Errorf("migrate postgres: %w", err)
		}
		return database, nil
	default:
		return db.Open(cfg.Database.Path)
	}
}

// buildHandler wires repositories, services, routes, and the middleware
// chain. Database traffic from the repositories goes through a circuit
// breaker so a dead backend fails fast instead of piling up requests.
func buildHandler(cfg *config.Config, database *sql.DB, logger *slog.Logger) (http.Handler, repoSet) {
	breaker := circuitbreaker.NewDBCircuitBreaker(database)

	var (
		authors   repository.AuthorRepository
		magazines repository.MagazineRepository
		articles  repository.ArticleRepository
	)
	if cfg.Database.Driver == "postgres" {
		authors = postgres.NewAuthorRepo(breaker)
		magazines = postgres.NewMagazineRepo(breaker)
		articles = postgres.NewArticleRepo(breaker)
	} else {
		authors = sqlite.NewAuthorRepo(breaker)
		magazines = sqlite.NewMagazineRepo(breaker)
		articles = sqlite.NewArticleRepo(breaker)
	}

	authorSvc := &authorUC.Service{Repo: authors, Articles: articles, Magazines: magazines}
	magazineSvc := &magazineUC.Service{Repo: magazines, Articles: articles, Authors: authors}
	articleSvc := &articleUC.Service{Repo: articles, Authors: authors, Magazines: magazines}
	authSvc := authservice.NewService(cfg.Auth.Secret, cfg.Auth.TokenTTL, cfg.Auth.Username, cfg.Auth.Password)

	mux := http.NewServeMux()
	mux.Handle("GET /healthz", hhttp.HealthHandler{DB: database, Version: version()})
	mux.Handle("GET /readyz", hhttp.ReadyHandler{DB: database})
	mux.Handle("GET /livez", hhttp.LiveHandler{})
	mux.Handle("GET /metrics", hhttp.MetricsHandler())
	hauth.Register(mux, authSvc)
	hauthor.Register(mux, authorSvc)
	hmagazine.Register(mux, magazineSvc)
	harticle.Register(mux, articleSvc)

	// Innermost to outermost: the request timeout bounds handler execution,
	// authz runs closest to it, request ID first so every later layer can
	// tag its logs.
	var handler http.Handler = mux
	if cfg.Server.RequestTimeout > 0 {
		handler = hhttp.Timeout(cfg.Server.RequestTimeout)(handler)
	}
	handler = hauth.Authz(authSvc)(handler)
	handler = hhttp.MetricsMiddleware(handler)
	handler = hhttp.LimitRequestBody(1 << 20)(handler)
	handler = hhttp.Recover()(handler)
	handler = hhttp.Logging(logger)(handler)
	if cfg.RateLimit.Enabled {
		limiter := hhttp.NewRateLimiter(cfg.RateLimit.RequestsPerSecond, cfg.RateLimit.Burst)
		handler = limiter.Middleware(handler)
	}
	handler = tracing.Middleware(handler)
	handler = requestid.Middleware(handler)
	return handler, repoSet{authors: authors, magazines: magazines, articles: articles}
}

// run serves until SIGINT/SIGTERM, then drains within the shutdown timeout.
func run(cfg *config.Config, handler http.Handler, logger *slog.Logger) {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	srv := &http.Server{
		Addr:              cfg.Server.Addr,
		Handler:           handler,
		ReadTimeout:       cfg.Server.ReadTimeout,
		WriteTimeout:      cfg.Server.WriteTimeout,
		ReadHeaderTimeout: cfg.Server.ReadTimeout,
		BaseContext: func(net.Listener) context.Context {
			return ctx
		},
	}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		logger.Info("server starting",
			slog.String("addr", cfg.Server.Addr),
			slog.String("driver", cfg.Database.Driver),
			slog.String("version", version()))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		logger.Info("shutting down server")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	})

	if err := g.Wait(); err != nil {
		logger.Error("server failed", slog.Any("error", err))
		os.Exit(1)
	}
	logger.Info("server stopped")
}

func version() string {
	if v := os.Getenv("VERSION"); v != "" {
		return v
	}
	return "dev"
}
