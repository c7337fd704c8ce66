package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/edventure-park/community-api/internal/api"
	"github.com/edventure-park/community-api/internal/api/handler"
	"github.com/edventure-park/community-api/internal/auth"
	"github.com/edventure-park/community-api/internal/campuslead"
	"github.com/edventure-park/community-api/internal/chat"
	"github.com/edventure-park/community-api/internal/cohort"
	"github.com/edventure-park/community-api/internal/config"
	"github.com/edventure-park/community-api/internal/event"
	"github.com/edventure-park/community-api/internal/stats"
	"github.com/edventure-park/community-api/internal/store"
	"github.com/edventure-park/community-api/internal/user"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load configuration", "error", err)
		os.Exit(1)
	}

	setupLogger(cfg.LogLevel)

	db := connectDatabase(cfg)
	if db != nil {
		defer db.Close()
	}

	issuer, err := auth.NewTokenIssuer(cfg.JWTSecret, cfg.JWTAlgorithm, cfg.TokenLifetime())
	if err != nil {
		slog.Error("failed to initialize token issuer", "error", err)
		os.Exit(1)
	}

	repos := buildRepositories(cfg, db)
	authService := auth.NewService(repos.users, issuer, cfg.BcryptCost)
	chatService := chat.NewService(repos.chat)

	var pinger handler.Pinger
	if db != nil {
		pinger = db
	}

	router := api.NewRouter(api.RouterDeps{
		DBPinger:       pinger,
		Version:        cfg.Version,
		AllowedOrigins: strings.Split(cfg.AllowedOrigins, ","),
		AuthService:    authService,
		Users:          repos.users,
		Cohorts:        repos.cohorts,
		CampusLeads:    repos.campusLeads,
		Chat:           chatService,
		Events:         repos.events,
		Stats:          repos.stats,
	})

	srv := &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.Port),
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	serverErr := make(chan error, 1)
	go func() {
		slog.Info("starting community API server", "port", cfg.Port, "version", cfg.Version)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			serverErr <- err
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case sig := <-quit:
		slog.Info("shutting down server", "signal", sig.String())
	case err := <-serverErr:
		slog.Error("server error", "error", err)
		os.Exit(1)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		slog.Error("server forced to shutdown", "error", err)
		os.Exit(1)
	}

	slog.Info("server stopped gracefully")
}

// connectDatabase opens the primary store. Any failure is survivable:
// the service falls back to memory-only mode and keeps running.
func connectDatabase(cfg *config.Config) *store.DB {
	if cfg.DatabaseURL == "" {
		slog.Info("no DATABASE_URL configured; running in memory-only mode")
		return nil
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	db, err := store.New(ctx, cfg.DatabaseURL)
	if err != nil {
		slog.Warn("primary store unavailable; running in memory-only mode", "error", err)
		return nil
	}

	if err := store.EnsureSchema(ctx, db.Pool()); err != nil {
		slog.Warn("schema setup failed; running in memory-only mode", "error", err)
		db.Close()
		return nil
	}

	slog.Info("connected to primary store")
	return db
}

type repositories struct {
	users       user.Repository
	cohorts     cohort.Repository
	campusLeads campuslead.Repository
	chat        chat.Repository
	events      event.Repository
	stats       stats.Repository
}

// buildRepositories wires each resource the same way: a memory fallback
// (seeded with fixtures when enabled) and, when a primary store is
// connected, a resilient adapter in front of the Postgres repository.
func buildRepositories(cfg *config.Config, db *store.DB) repositories {
	var (
		seedCohorts  []cohort.Cohort
		seedLeads    []campuslead.CampusLead
		seedChannels []chat.Channel
		seedMessages []chat.Message
		seedStats    []stats.Stat
	)
	if cfg.SeedFixtures {
		seedCohorts = cohort.Fixtures()
		seedLeads = campuslead.Fixtures()
		seedChannels = chat.ChannelFixtures()
		seedMessages = chat.MessageFixtures()
		seedStats = stats.Fixtures()
	}

	repos := repositories{
		users:       user.NewMemoryRepository(),
		cohorts:     cohort.NewMemoryRepository(seedCohorts),
		campusLeads: campuslead.NewMemoryRepository(seedLeads),
		chat:        chat.NewMemoryRepository(seedChannels, seedMessages),
		events:      event.NewMemoryRepository(),
		stats:       stats.NewMemoryRepository(seedStats),
	}
	if db == nil {
		return repos
	}

	pool := db.Pool()
	timeout := cfg.QueryTimeout()
	log := slog.Default()

	repos.users = user.NewResilientRepository(user.NewPostgresRepository(pool), repos.users, store.NewDegrader("users", timeout, log))
	repos.cohorts = cohort.NewResilientRepository(cohort.NewPostgresRepository(pool), repos.cohorts, store.NewDegrader("cohorts", timeout, log))
	repos.campusLeads = campuslead.NewResilientRepository(campuslead.NewPostgresRepository(pool), repos.campusLeads, store.NewDegrader("campus_leads", timeout, log))
	repos.chat = chat.NewResilientRepository(chat.NewPostgresRepository(pool), repos.chat, store.NewDegrader("chat", timeout, log))
	repos.events = event.NewResilientRepository(event.NewPostgresRepository(pool), repos.events, store.NewDegrader("events", timeout, log))
	repos.stats = stats.NewResilientRepository(stats.NewPostgresRepository(pool), repos.stats, store.NewDegrader("stats", timeout, log))
	return repos
}

func setupLogger(level string) {
	var logLevel slog.Level
	switch level {
	case "debug":
		logLevel = slog.LevelDebug
	case "warn":
		logLevel = slog.LevelWarn
	case "error":
		logLevel = slog.LevelError
	default:
		logLevel = slog.LevelInfo
	}

	handler := slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: logLevel,
	})
	slog.SetDefault(slog.New(handler))
}
