// @title Hydration API
// @description API for tracking daily water intake against a weight-based goal
// @BasePath /api/v1
// @schemes http
package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/limbo/hydration/internal/api"
	"github.com/limbo/hydration/internal/repository"
	"github.com/limbo/hydration/internal/service"
	"github.com/limbo/hydration/pkg/cleanup"
	"github.com/limbo/hydration/pkg/config"
)

func init() {
	service.InitValidator()
}

func logLevel(s string) slog.Level {
	switch strings.ToLower(s) {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

func main() {
	cfg := config.New()
	slog.SetDefault(slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: logLevel(cfg.GetString("LOG_LEVEL")),
	})))

	dbCfg := repository.PGCfg{
		Address:  cfg.GetString("POSTGRES_DB_ADDRESS"),
		Username: cfg.GetString("POSTGRES_USER"),
		Password: cfg.GetString("POSTGRES_PASSWORD"),
		DB:       cfg.GetString("POSTGRES_DB"),
	}
	pool := repository.NewPool(&dbCfg)
	err := repository.Migrate(pool, cfg.GetStringOr("MIGRATIONS_DIR", "./migrations"))
	if err != nil {
		slog.Error("migrations error", slog.String("error", err.Error()))
		cleanup.CleanUp(context.Background())
		os.Exit(1)
	}

	usersRepo := repository.NewUsersRepoWithConn(pool)
	daysRepo := repository.NewDaysRepoWithConn(pool)
	intakesRepo := repository.NewIntakesRepoWithConn(pool)
	serv := api.New(&api.ServicesList{
		UserService:    service.NewUserService(usersRepo),
		IntakeService:  service.NewIntakeService(usersRepo, daysRepo, intakesRepo, repository.NewTxManager(pool)),
		RequestTimeout: cfg.GetDuration("REQUEST_TIMEOUT", 10*time.Second),
		PageLimit:      cfg.GetInt("PAGE_LIMIT", 10),
	})

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()
	go func() {
		if err := serv.Run(cfg.GetString("API_ADDRESS")); err != nil {
			slog.Error("server error", slog.String("error", err.Error()))
			stop()
		}
	}()
	<-ctx.Done()

	slog.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.GetDuration("SHUTDOWN_TIMEOUT", 15*time.Second))
	defer cancel()
	cleanup.CleanUp(shutdownCtx)
}
