package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/charmbracelet/log"

	"github.com/GoodPie/aihl-media-app/internal/auth"
	"github.com/GoodPie/aihl-media-app/internal/config"
	"github.com/GoodPie/aihl-media-app/internal/database"
	"github.com/GoodPie/aihl-media-app/internal/event"
	"github.com/GoodPie/aihl-media-app/internal/game"
	server "github.com/GoodPie/aihl-media-app/internal/http"
	"github.com/GoodPie/aihl-media-app/internal/league"
	"github.com/GoodPie/aihl-media-app/internal/metrics"
	"github.com/GoodPie/aihl-media-app/internal/notifier/slack"
	"github.com/GoodPie/aihl-media-app/internal/pubsub"
	"github.com/GoodPie/aihl-media-app/internal/template"
	"github.com/GoodPie/aihl-media-app/internal/textgen"
)

func main() {
	startTime := time.Now()
	log.SetFormatter(log.JSONFormatter)
	cfg := config.Load()

	db, dbTeardown, err := database.InitDB(cfg.DBName, cfg.Turso.PrimaryURL, cfg.Turso.AuthToken, cfg.MigrationsDir)
	dbInitDuration := time.Since(startTime)
	log.Info("Database initialization time recorded", "duration_ms", dbInitDuration.Milliseconds())
	if err != nil {
		log.Fatalf("Failed to initialize database: %s", err)
	}
	defer func() {
		log.Info("Closing database connection")
		dbTeardown()
	}()

	leagueStore := league.New(db)
	gameStore := game.NewStore(db)
	templateStore := template.New(db)
	eventStore := event.NewStore(db)

	metricsSvc := metrics.NewService()
	metricsHandler := metrics.NewMetricsHandler()
	notifier := slack.NewNotifier(cfg.Slack.Token, cfg.Slack.ChannelID, metricsSvc)
	pubsubClient := pubsub.New(cfg.ProjectID)
	authSvc := auth.NewService(cfg.Auth.JWTSecret, 24*time.Hour)

	games := game.NewService(gameStore, leagueStore)
	generator := textgen.New(templateStore, gameStore, cfg.Broadcast)
	events := event.NewService(eventStore, games, leagueStore, generator, pubsubClient, metricsSvc)

	s := server.NewServer(
		leagueStore,
		games,
		events,
		templateStore,
		metricsSvc,
		metricsHandler,
		cfg,
		notifier,
		authSvc,
		pubsubClient,
	)

	startupDuration := time.Since(startTime)
	metricsSvc.SetStartupTime(startupDuration.Seconds())
	log.Info("Startup time recorded", "duration_ms", startupDuration.Milliseconds())

	srv := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: s,
	}

	serverErrors := make(chan error, 1)
	go func() {
		log.Info("Server started", "port", cfg.Port)
		serverErrors <- srv.ListenAndServe()
	}()

	shutdown := make(chan os.Signal, 1)
	signal.Notify(shutdown, os.Interrupt, syscall.SIGTERM)

	select {
	case err := <-serverErrors:
		if err != nil && err != http.ErrServerClosed {
			log.Fatalf("Server error: %v", err)
		}
	case sig := <-shutdown:
		log.Info("Shutdown signal received", "signal", sig)

		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()

		if err := srv.Shutdown(ctx); err != nil {
			log.Error("Server shutdown failed", "error", err)
		} else {
			log.Info("Server gracefully stopped")
		}
	}

	log.Info("Server process shutting down")
}
