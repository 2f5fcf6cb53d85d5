package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/charmbracelet/log"
	"github.com/inngest/inngestgo"
	"github.com/mauv0809/pingponghub/internal/badge"
	"github.com/mauv0809/pingponghub/internal/challenge"
	"github.com/mauv0809/pingponghub/internal/config"
	"github.com/mauv0809/pingponghub/internal/database"
	server "github.com/mauv0809/pingponghub/internal/http"
	"github.com/mauv0809/pingponghub/internal/inngest"
	"github.com/mauv0809/pingponghub/internal/matchmaking"
	"github.com/mauv0809/pingponghub/internal/metrics"
	"github.com/mauv0809/pingponghub/internal/notifier"
	"github.com/mauv0809/pingponghub/internal/notifier/slack"
	"github.com/mauv0809/pingponghub/internal/processor"
	"github.com/mauv0809/pingponghub/internal/profile"
	"github.com/mauv0809/pingponghub/internal/pubsub"
	"github.com/mauv0809/pingponghub/internal/rating"
	"github.com/mauv0809/pingponghub/internal/scheduler"
)

func main() {
	// Start profiling timer
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

	playerStore := profile.New(db)
	challengeStore := challenge.New(db)
	ratingStore := rating.New(db)
	badgeStore := badge.New(db)
	metricsSvc := metrics.NewService()
	metricsHandler := metrics.NewMetricsHandler()

	var notif notifier.Notifier = notifier.NewLogNotifier()
	if cfg.Slack.Enabled() {
		notif = slack.NewNotifier(cfg.Slack.Token, cfg.Slack.ChannelID, metricsSvc)
		log.Info("Slack notifications enabled", "channel", cfg.Slack.ChannelID)
	}

	var pubsubClient pubsub.PubSubClient
	var localPubsub *pubsub.LocalClient
	if cfg.ProjectID != "" {
		pubsubClient, err = pubsub.New(context.Background(), cfg.ProjectID)
		if err != nil {
			log.Fatalf("Failed to initialize pubsub: %s", err)
		}
	} else {
		log.Info("No GCP project configured, delivering events in-process")
		localPubsub = pubsub.NewLocal()
		pubsubClient = localPubsub
	}
	defer pubsubClient.Close()

	badgeSvc := badge.NewService(badgeStore, playerStore, notif, metricsSvc)
	proc := processor.New(ratingStore, badgeSvc, playerStore, notif, metricsSvc, pubsubClient)
	if localPubsub != nil {
		localPubsub.Subscribe(pubsub.EventMatchCompleted, proc.HandleMatchCompletedMessage)
	}
	matchmakingSvc := matchmaking.NewService(playerStore, challengeStore, notif, metricsSvc)

	sweeper := scheduler.NewSweeper(challengeStore, metricsSvc)
	var sweepScheduler scheduler.Scheduler
	var inngestHandler http.Handler
	if cfg.Inngest.Enabled() {
		inngestProvider, err := inngestgo.NewClient(inngestgo.ClientOpts{
			AppID:      cfg.Inngest.AppID,
			SigningKey: &cfg.Inngest.SigningKey,
			EventKey:   &cfg.Inngest.EventKey,
			Dev:        &cfg.Inngest.Dev,
		})
		if err != nil {
			log.Fatalf("Failed to initialize inngest: %s", err)
		}
		inngestClient, err := inngest.New(inngestProvider, cfg.SweepCron, sweeper)
		if err != nil {
			log.Fatalf("Failed to register inngest functions: %s", err)
		}
		sweepScheduler = inngestClient
		inngestHandler = inngestClient.Serve()
	} else {
		sweepScheduler, err = scheduler.NewLocal(cfg.SweepCron, sweeper)
		if err != nil {
			log.Fatalf("Failed to initialize scheduler: %s", err)
		}
	}
	if err := sweepScheduler.Start(); err != nil {
		log.Fatalf("Failed to start scheduler: %s", err)
	}

	s := server.NewServer(
		playerStore,
		challengeStore,
		ratingStore,
		matchmakingSvc,
		badgeSvc,
		proc,
		metricsSvc,
		metricsHandler,
		inngestHandler,
	)

	// --- Record startup time ---
	startupDuration := time.Since(startTime)
	metricsSvc.SetStartupTime(startupDuration.Seconds())
	log.Info("Startup time recorded", "duration_ms", startupDuration.Milliseconds())

	// --- Graceful shutdown setup ---
	srv := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: s,
	}

	// Channel to listen for errors coming from the server
	serverErrors := make(chan error, 1)

	// Start the server in a goroutine
	go func() {
		log.Info("Server started", "port", cfg.Port)
		serverErrors <- srv.ListenAndServe()
	}()

	// Channel to listen for interrupt signals
	shutdown := make(chan os.Signal, 1)
	signal.Notify(shutdown, os.Interrupt, syscall.SIGTERM)

	// Block until we receive a signal or an error
	select {
	case err := <-serverErrors:
		if err != nil && err != http.ErrServerClosed {
			log.Fatalf("Server error: %v", err)
		}
	case sig := <-shutdown:
		log.Info("Shutdown signal received", "signal", sig)

		// Create a context with a timeout for the shutdown.
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()

		// Attempt to gracefully shut down the server.
		if err := srv.Shutdown(ctx); err != nil {
			log.Error("Server shutdown failed", "error", err)
		} else {
			log.Info("Server gracefully stopped")
		}
	}

	if err := sweepScheduler.Shutdown(); err != nil {
		log.Error("Scheduler shutdown failed", "error", err)
	}
	log.Info("Server process shutting down")
}
