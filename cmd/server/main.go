package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/common-nighthawk/go-figure"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"

	"github.com/hongminglow/escola-be/internal/config"
	"github.com/hongminglow/escola-be/internal/logging"
	"github.com/hongminglow/escola-be/internal/server"
	"github.com/hongminglow/escola-be/internal/session"
	postgres "github.com/hongminglow/escola-be/internal/storage/postgres"
)

const appName = "escola-be"

func main() {
	envErr := godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("load config")
	}
	logging.Setup(cfg.LogLevel, cfg.IsDevelopment())
	if envErr != nil {
		log.Info().Msg("no .env file found; relying on existing environment")
	}
	displayAppName()

	ctx := context.Background()
	store, err := postgres.NewStore(ctx, cfg.DatabaseURL)
	if err != nil {
		log.Fatal().Err(err).Msg("init database")
	}
	defer store.Close()

	srv := server.New(cfg, store, session.NewMemoryStore())

	go func() {
		log.Info().Str("addr", srv.Addr()).Msg("server listening")
		if err := srv.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("http server error")
		}
	}()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	<-sigCh

	ctxShutdown, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctxShutdown); err != nil {
		log.Error().Err(err).Msg("graceful shutdown error")
	}
	log.Info().Msg("server stopped")
}

func displayAppName() {
	figure.NewFigure(appName, "cybermedium", true).Print()
	fmt.Println()
}
