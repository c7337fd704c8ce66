package api

import (
	chimiddleware "github.com/go-chi/chi/v5/middleware"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"

	"github.com/edventure-park/community-api/internal/api/handler"
	"github.com/edventure-park/community-api/internal/api/middleware"
	"github.com/edventure-park/community-api/internal/auth"
	"github.com/edventure-park/community-api/internal/authz"
	"github.com/edventure-park/community-api/internal/campuslead"
	"github.com/edventure-park/community-api/internal/chat"
	"github.com/edventure-park/community-api/internal/cohort"
	"github.com/edventure-park/community-api/internal/event"
	"github.com/edventure-park/community-api/internal/stats"
	"github.com/edventure-park/community-api/internal/user"
)

// RouterDeps holds all dependencies needed by the router.
type RouterDeps struct {
	DBPinger       handler.Pinger
	Version        string
	AllowedOrigins []string
	AuthService    *auth.Service
	Users          user.Repository
	Cohorts        cohort.Repository
	CampusLeads    campuslead.Repository
	Chat           *chat.Service
	Events         event.Repository
	Stats          stats.Repository
}

// NewRouter creates and configures a Chi router with all middleware and routes.
func NewRouter(deps RouterDeps) *chi.Mux {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.Recovery)
	r.Use(chimiddleware.Logger)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   deps.AllowedOrigins,
		AllowedMethods:   []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		AllowCredentials: true,
	}))

	healthHandler := handler.NewHealthHandler(deps.DBPinger, deps.Version)
	r.Get("/", healthHandler.Root)
	r.Get("/api/health", healthHandler.Health)

	authHandler := handler.NewAuthHandler(deps.AuthService, deps.Users)
	r.Post("/api/auth/register", authHandler.Register)
	r.Post("/api/auth/login", authHandler.Login)

	profileHandler := handler.NewProfileHandler(deps.Users)
	cohortHandler := handler.NewCohortHandler(deps.Cohorts)
	leadHandler := handler.NewCampusLeadHandler(deps.CampusLeads)
	chatHandler := handler.NewChatHandler(deps.Chat)
	eventHandler := handler.NewEventHandler(deps.Events)
	statsHandler := handler.NewStatsHandler(deps.Stats)

	r.Group(func(r chi.Router) {
		r.Use(middleware.Auth(deps.AuthService))

		r.Get("/api/auth/me", authHandler.Me)

		r.Get("/api/profile", profileHandler.Get)
		r.Put("/api/profile", profileHandler.Update)

		r.Route("/api/cohorts", func(r chi.Router) {
			r.Get("/", cohortHandler.List)
			r.Get("/{id}", cohortHandler.GetByID)
			r.With(middleware.Require(authz.ActionCohortCreate)).Post("/", cohortHandler.Create)
			r.With(middleware.Require(authz.ActionCohortUpdate)).Put("/{id}", cohortHandler.Update)
			r.With(middleware.Require(authz.ActionCohortDelete)).Delete("/{id}", cohortHandler.Delete)
		})

		r.Route("/api/campus-leads", func(r chi.Router) {
			r.Get("/", leadHandler.List)
			r.Get("/{id}", leadHandler.GetByID)
			r.Put("/{id}", leadHandler.Update)
			r.With(middleware.Require(authz.ActionCampusLeadCreate)).Post("/", leadHandler.Create)
			r.With(middleware.Require(authz.ActionCampusLeadDelete)).Delete("/{id}", leadHandler.Delete)
		})

		r.Route("/api/messages", func(r chi.Router) {
			r.Get("/channels", chatHandler.ListChannels)
			r.With(middleware.Require(authz.ActionChannelCreate)).Post("/channels", chatHandler.CreateChannel)
			r.Get("/{channelId}", chatHandler.ListMessages)
			r.Post("/{channelId}", chatHandler.SendMessage)
			r.Put("/{channelId}/{messageId}/star", chatHandler.ToggleStar)
			r.Delete("/{channelId}/{messageId}", chatHandler.DeleteMessage)
		})

		r.Route("/api/events", func(r chi.Router) {
			r.Get("/", eventHandler.List)
			r.Get("/{id}", eventHandler.GetByID)
			r.Post("/", eventHandler.Create)
			r.Put("/{id}", eventHandler.Update)
			r.Delete("/{id}", eventHandler.Delete)
			r.Post("/{id}/attend", eventHandler.Attend)
		})

		r.Route("/api/stats", func(r chi.Router) {
			r.Get("/{category}", statsHandler.List)
			r.With(middleware.Require(authz.ActionStatsUpdate)).Put("/{category}", statsHandler.Replace)
		})
	})

	return r
}
