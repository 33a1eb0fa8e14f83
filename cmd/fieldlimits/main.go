// Command fieldlimits serves the profile API backed by SQLite.
package main

import (
	"context"
	"database/sql"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/pmalmgren/constgeneric-field-limits/pkg/config"
	"github.com/pmalmgren/constgeneric-field-limits/pkg/httpserver"
	"github.com/pmalmgren/constgeneric-field-limits/pkg/logger"
	"github.com/pmalmgren/constgeneric-field-limits/pkg/requestid"
	"github.com/pmalmgren/constgeneric-field-limits/pkg/sqlite"
	"github.com/pmalmgren/constgeneric-field-limits/svc/profile"
)

type appConfig struct {
	HTTP   httpserver.Config
	SQLite sqlite.Config

	LogLevel  string        `env:"LOG_LEVEL" envDefault:"info"`
	LogFormat logger.Format `env:"LOG_FORMAT" envDefault:"json"`
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx); err != nil {
		slog.Error("fieldlimits stopped", logger.Error(err))
		os.Exit(1)
	}
}

func run(ctx context.Context) error {
	var cfg appConfig
	if err := config.Load(&cfg); err != nil {
		return err
	}

	level, err := logger.ParseLevel(cfg.LogLevel)
	if err != nil {
		return err
	}
	log := logger.New(
		logger.WithLevel(level),
		logger.WithFormat(cfg.LogFormat),
		logger.WithAttr(slog.String("service", "fieldlimits")),
		logger.WithContextExtractors(requestid.LoggerExtractor()),
	)
	logger.SetAsDefault(log)

	db, err := sqlite.Open(ctx, cfg.SQLite)
	if err != nil {
		return err
	}
	defer db.Close()

	if err := sqlite.Migrate(ctx, db, profile.Migrations(), cfg.SQLite, log); err != nil {
		return err
	}

	return httpserver.New(cfg.HTTP, log).Run(ctx, router(db, log))
}

func router(db *sql.DB, log *slog.Logger) http.Handler {
	r := chi.NewRouter()
	r.Use(requestid.Middleware)
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)

	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		if err := db.PingContext(r.Context()); err != nil {
			log.ErrorContext(r.Context(), "health check failed", logger.Error(err))
			w.WriteHeader(http.StatusServiceUnavailable)
			return
		}
		w.WriteHeader(http.StatusNoContent)
	})
	r.Mount("/profiles", profile.NewHandler(profile.NewStore(db), log).Router())
	return r
}
