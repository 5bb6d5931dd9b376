package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"hockey-union/backend/internal/config"
	"hockey-union/backend/internal/domain/event"
	"hockey-union/backend/internal/domain/feed"
	"hockey-union/backend/internal/domain/player"
	"hockey-union/backend/internal/domain/team"
	"hockey-union/backend/internal/domain/user"
	apihttp "hockey-union/backend/internal/http"
	"hockey-union/backend/internal/seed"
	"hockey-union/backend/internal/storage/bolt"
)

func main() {
	ctx := context.Background()

	if err := godotenv.Load(); err != nil {
		log.Debug().Err(err).Msg("no .env file loaded")
	}

	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})

	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("config load failed")
	}

	level, err := zerolog.ParseLevel(cfg.LogLevel)
	if err != nil {
		level = zerolog.InfoLevel
	}
	zerolog.SetGlobalLevel(level)

	kv, err := bolt.Open(cfg.DataPath)
	if err != nil {
		log.Fatal().Err(err).Str("path", cfg.DataPath).Msg("storage init failed")
	}
	defer kv.Close()

	// Repositories
	teamRepo := team.NewRepo(kv, log.Logger)
	playerRepo := player.NewRepo(kv, log.Logger)
	eventRepo := event.NewRepo(kv, log.Logger)
	userRepo := user.NewRepo(kv, log.Logger)
	feedRepo := feed.NewRepo(kv, log.Logger)

	// First-run seeding; only absent collection keys are written.
	seedData := seed.Empty()
	if cfg.SeedDemoData {
		seedData = seed.Demo()
	}
	if err := seed.Apply(ctx, seedData, seed.Repos{
		Teams:   teamRepo,
		Players: playerRepo,
		Events:  eventRepo,
		Users:   userRepo,
		Feed:    feedRepo,
	}); err != nil {
		log.Fatal().Err(err).Msg("seeding failed")
	}

	// Services
	playerSvc := player.NewService(playerRepo)
	eventSvc := event.NewService(eventRepo)
	teamSvc := team.NewService(teamRepo, playerRepo, eventRepo)
	userSvc := user.NewService(userRepo)
	feedSvc := feed.NewService(feedRepo)

	router := apihttp.NewRouter(apihttp.RouterDeps{
		Cfg:       cfg,
		TeamSvc:   teamSvc,
		PlayerSvc: playerSvc,
		EventSvc:  eventSvc,
		UserSvc:   userSvc,
		FeedSvc:   feedSvc,
		Reset: func(ctx context.Context) error {
			return seed.Reset(ctx, kv)
		},
	})

	srv := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 20 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// graceful shutdown
	go func() {
		log.Info().Str("port", cfg.Port).Str("data", cfg.DataPath).Msg("API listening")
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("listen failed")
		}
	}()

	stop := make(chan os.Signal, 2)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)
	<-stop

	ctxShutdown, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	log.Info().Msg("shutting down...")
	_ = srv.Shutdown(ctxShutdown)
}
