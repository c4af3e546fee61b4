package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog"

	"taskhive/internal/auth"
	"taskhive/internal/config"
	"taskhive/internal/httpapi"
	"taskhive/internal/report"
	"taskhive/internal/repository"
	"taskhive/internal/service"
)

func main() {
	log := zerolog.New(os.Stderr).With().Timestamp().Logger()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("load config")
	}

	db, err := repository.NewDB(cfg.DatabaseURL)
	if err != nil {
		log.Fatal().Err(err).Msg("open db")
	}
	sqlDB, err := db.DB()
	if err == nil {
		defer sqlDB.Close()
	}

	userRepo := repository.NewUserRepository(db)
	taskRepo := repository.NewTaskRepository(db)

	tokens := auth.NewTokenService(cfg.JWTSecret, cfg.TokenTTL)
	authSvc := service.NewAuthService(userRepo, auth.NewPasswordHasher(), tokens)
	taskSvc := service.NewTaskService(taskRepo)

	router := httpapi.NewRouter(httpapi.RouterConfig{
		AuthHandler: httpapi.NewAuthHandler(authSvc, log),
		TaskHandler: httpapi.NewTaskHandler(taskSvc, log),
		Tokens:      tokens,
		Log:         log,
	})

	if cfg.ReportInterval > 0 {
		reporter := report.New(taskRepo, log)
		if err := reporter.Start(cfg.ReportInterval); err != nil {
			log.Fatal().Err(err).Msg("start reporter")
		}
		defer reporter.Stop()
	}

	srv := &http.Server{
		Addr:         cfg.Addr,
		Handler:      router,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
	}

	go func() {
		log.Info().Str("addr", cfg.Addr).Msg("server started")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("server stopped")
		}
	}()

	<-ctx.Done()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("shutdown")
	}
	log.Info().Msg("shutdown complete")
}
