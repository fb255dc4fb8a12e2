package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"github.com/Bigyayos/appgolf/internal/api"
	"github.com/Bigyayos/appgolf/internal/database"
	"github.com/Bigyayos/appgolf/internal/logger"
	"github.com/Bigyayos/appgolf/internal/metrics"
	"github.com/Bigyayos/appgolf/internal/middleware"
	"github.com/Bigyayos/appgolf/internal/services"
	"github.com/Bigyayos/appgolf/pkg/config"
)

func main() {
	// Load environment variables
	envErr := godotenv.Load()

	// Initialize configuration
	cfg := config.New()
	log := logger.NewSimpleLogger(logger.ParseLevel(cfg.LogLevel))
	if envErr != nil {
		log.Debug("No .env file found")
	}

	if cfg.JWTSecret == "" {
		if cfg.IsProduction() {
			log.Fatal("JWT_SECRET is required in production", nil)
		}
		cfg.JWTSecret = "dev-secret-change-me"
		log.Warn("JWT_SECRET not set, using development secret")
	}

	// Initialize database
	db, err := database.New(cfg.DatabaseURL)
	if err != nil {
		log.Fatal("Failed to connect to database", err)
	}
	defer db.Close()

	// Run migrations
	if err := database.RunMigrations(cfg.DatabaseURL); err != nil {
		log.Fatal("Failed to run migrations", err)
	}

	m := metrics.New()
	svc := services.NewServices(db.DB, cfg, log, m)

	// Set Gin mode based on environment
	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()
	if err := r.SetTrustedProxies(cfg.GetTrustedProxies()); err != nil {
		log.Fatal("Invalid trusted proxies", err)
	}

	r.Use(gin.Recovery())
	r.Use(middleware.LoggingMiddleware(log))
	r.Use(middleware.MetricsMiddleware(m))
	r.Use(middleware.SecurityHeadersMiddleware())
	r.Use(middleware.CORSMiddleware(cfg))
	r.Use(middleware.InputValidationMiddleware(cfg.MaxRequestSize))

	if cfg.EnableRateLimit {
		r.Use(middleware.RateLimitingMiddleware(middleware.NewIPRateLimiter(cfg.RateLimitPerMinute)))
	}

	api.SetupRoutes(r, svc, db, m.Handler(), cfg)

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		log.Info("Server starting", "port", cfg.Port, "env", cfg.Environment)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal("Failed to start server", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("Shutting down server")
	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Error("Server forced to shutdown", err)
	}
}
