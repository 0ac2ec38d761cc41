package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"shift_calendar_app/internal/app"
	"shift_calendar_app/internal/domain/calendar"
	"shift_calendar_app/internal/infra/config"
	idb "shift_calendar_app/internal/infra/database"
	applogger "shift_calendar_app/internal/infra/logger"
	"shift_calendar_app/internal/infra/scheduler"
	"shift_calendar_app/internal/infra/telegram"
	"shift_calendar_app/internal/infra/web"
)

func main() {
	fmt.Println("Shift calendar app starting...")

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "FATAL: Could not load application configuration: %v\n", err)
		os.Exit(1)
	}

	applogger.Init(cfg)
	log := applogger.Log
	log.Infof("Configuration loaded. LogLevel: %s, Environment: %s, ListenAddr: %s", cfg.LogLevel, cfg.Environment, cfg.ListenAddr)

	// Initialize Database Connection
	db, err := idb.NewPostgresConnection(cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("FATAL: Could not connect to database: %v", err)
	}
	defer db.Close()
	log.Info("Database connection established successfully.")

	bootstrapCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	err = idb.Bootstrap(bootstrapCtx, db)
	cancel()
	if err != nil {
		log.Fatalf("FATAL: Could not bootstrap database schema: %v", err)
	}
	log.Info("Database schema is in place.")

	// Initialize Repositories
	userRepo := idb.NewPostgresUserRepository(db)
	messageRepo := idb.NewPostgresMessageRepository(db)
	sessionRepo := idb.NewPostgresSessionRepository(db)
	log.Info("Repositories initialized.")

	// Optional Telegram push notifier
	var notifier app.MurNotifier
	if cfg.TelegramToken != "" {
		tgNotifier, err := telegram.NewMurNotifier(cfg.TelegramToken)
		if err != nil {
			log.WithError(err).Warn("Could not create Telegram notifier; mur push notifications disabled")
		} else {
			notifier = tgNotifier
			log.Info("Telegram mur notifier initialized.")
		}
	} else {
		log.Info("TELEGRAM_TOKEN not set; mur push notifications disabled.")
	}

	// Initialize Services
	cycle := calendar.NewCycle(cfg.ShiftAnchorDate)
	calendarService := app.NewCalendarService(cycle, nil)
	messageService := app.NewMessageService(userRepo, messageRepo, notifier, log.WithField("component", "message_service"))
	authService := app.NewAuthService(userRepo, sessionRepo, cfg.SessionLifetime, log.WithField("component", "auth_service"), nil)
	log.Infof("Services initialized. Shift cycle anchored at %s.", cycle.Anchor().Format("2006-01-02"))

	// Initialize session purge scheduler
	purgeScheduler := scheduler.NewSessionPurgeScheduler(
		authService,
		log.WithField("component", "scheduler"),
		cfg.CronSpecSessionPurge,
	)
	if err := purgeScheduler.Start(); err != nil {
		log.Fatalf("FATAL: Could not start session purge scheduler: %v", err)
	}

	// Initialize HTTP server
	server, err := web.NewServer(
		calendarService,
		messageService,
		authService,
		userRepo,
		log.WithField("component", "web"),
	)
	if err != nil {
		log.Fatalf("FATAL: Could not create web server: %v", err)
	}

	httpServer := &http.Server{
		Addr:         cfg.ListenAddr,
		Handler:      server.Handler(),
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
	}

	go func() {
		log.Infof("HTTP server listening on %s", cfg.ListenAddr)
		if err := httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("FATAL: HTTP server failed: %v", err)
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit // Block until a signal is received

	log.Info("Shutting down application...")
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()
	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		log.WithError(err).Error("HTTP server shutdown was not clean")
	}
	purgeScheduler.Stop()
	// db.Close() is handled by defer
	log.Info("Application shut down gracefully.")
}
