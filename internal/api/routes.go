package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Bigyayos/appgolf/internal/auth"
	"github.com/Bigyayos/appgolf/internal/services"
	"github.com/Bigyayos/appgolf/pkg/config"
)

// SetupRoutes configures all API routes
func SetupRoutes(r *gin.Engine, svc *services.Services, db HealthChecker, metricsHandler http.Handler, cfg *config.Config) {
	authHandler := NewAuthHandler(svc.Auth)
	healthHandler := NewHealthHandler(db, svc.Course)
	playerHandler := NewPlayerHandler(svc.Player)
	tournamentHandler := NewTournamentHandler(svc)
	seasonHandler := NewSeasonHandler(svc.Season)
	leagueHandler := NewLeagueHandler(svc)

	// Public routes
	public := r.Group("/api/v1")
	{
		public.POST("/auth/login", authHandler.Login)
		public.POST("/auth/register", authHandler.Register)
		public.POST("/auth/refresh", authHandler.RefreshToken)
		public.POST("/auth/logout", authHandler.Logout)
		public.GET("/health", healthHandler.GetHealth)
		if metricsHandler != nil {
			public.GET("/metrics", gin.WrapH(metricsHandler))
		}
	}

	// Protected routes
	protected := r.Group("/api/v1")
	protected.Use(auth.JWTMiddleware(cfg.JWTSecret))
	{
		protected.GET("/players", playerHandler.ListPlayers)
		protected.GET("/players/:id", playerHandler.GetPlayer)
		protected.GET("/players/by-name/:name", playerHandler.GetPlayerByName)

		protected.POST("/scores", leagueHandler.RecordScore)
		protected.GET("/rankings", leagueHandler.GetRankings)

		protected.GET("/tournaments", tournamentHandler.ListTournaments)
		protected.GET("/tournaments/:id", tournamentHandler.GetTournament)
		protected.POST("/tournaments/:id/register", tournamentHandler.RegisterPlayer)
		protected.POST("/tournaments/:id/results", tournamentHandler.SubmitResult)
		protected.GET("/tournaments/:id/leaderboard", tournamentHandler.GetLeaderboard)
		protected.GET("/tournaments/:id/leaderboard/export", tournamentHandler.ExportLeaderboard)
		protected.POST("/tournaments/:id/finalize", tournamentHandler.FinalizeTournament)

		protected.GET("/seasons", seasonHandler.ListSeasons)
		protected.GET("/seasons/:id", seasonHandler.GetSeason)
	}

	// Super admin routes
	admin := protected.Group("")
	admin.Use(auth.RequireSuperAdmin())
	{
		admin.POST("/players", playerHandler.CreatePlayer)
		admin.PUT("/players/:id", playerHandler.UpdatePlayer)
		admin.DELETE("/players/:id", playerHandler.DeletePlayer)

		admin.POST("/tournaments", tournamentHandler.CreateTournament)
		admin.PUT("/tournaments/:id", tournamentHandler.UpdateTournament)
		admin.DELETE("/tournaments/:id", tournamentHandler.DeleteTournament)

		admin.POST("/seasons", seasonHandler.CreateSeason)
		admin.PUT("/seasons/:id", seasonHandler.UpdateSeason)

		admin.POST("/courses/import", leagueHandler.ImportCourse)
	}
}
