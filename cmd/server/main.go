package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/sirupsen/logrus"

	config "github.com/govargas/bada/configs"
	"github.com/govargas/bada/internal/application/services"
	"github.com/govargas/bada/internal/core/ports"
	"github.com/govargas/bada/internal/infrastructure/cache"
	"github.com/govargas/bada/internal/infrastructure/db"
	"github.com/govargas/bada/internal/infrastructure/havapi"
	"github.com/govargas/bada/internal/infrastructure/health"
	"github.com/govargas/bada/internal/infrastructure/httpserver"
	"github.com/govargas/bada/internal/infrastructure/redis"
	"github.com/govargas/bada/internal/infrastructure/repositories"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatal("Failed to load configuration:", err)
	}

	// Setup logger
	logger := logrus.New()
	if cfg.Log.Format == "json" {
		logger.SetFormatter(&logrus.JSONFormatter{})
	}
	level, err := logrus.ParseLevel(cfg.Log.Level)
	if err != nil {
		logger.SetLevel(logrus.InfoLevel)
	} else {
		logger.SetLevel(level)
	}

	logger.Info("Starting bada backend...")

	// Initialize database (apply pool settings from config)
	database, err := db.NewDatabase(&cfg.Database)
	if err != nil {
		logger.Fatal("Failed to connect to database:", err)
	}
	defer database.Close()

	logger.Info("Connected to database successfully")

	// Run migrations
	if err := database.Migrate("./migrations"); err != nil {
		logger.Warn("Failed to run migrations:", err)
	}

	// Pick the upstream cache backend: process-local by default, Redis when
	// running multiple instances behind one cache.
	var upstreamCache ports.Cache
	healthCheckers := []ports.HealthChecker{health.NewDBHealthChecker(database)}

	switch cfg.Cache.Backend {
	case "redis":
		redisClient, err := redis.NewRedisClient(&cfg.Redis)
		if err != nil {
			logger.Fatal("Failed to connect to Redis:", err)
		}
		defer redisClient.Close()
		// Service cache keys already carry the hav: namespace; no extra
		// store-level prefix on top.
		upstreamCache = redis.NewRedisCache(redisClient, "", cfg.Cache.DefaultTTL)
		healthCheckers = append(healthCheckers, health.NewRedisHealthChecker(redisClient))
		logger.Info("Using Redis cache backend")
	default:
		upstreamCache = cache.NewMemoryCache(cfg.Cache.DefaultTTL)
		logger.Info("Using in-memory cache backend")
	}

	// Repositories
	userRepo := repositories.NewUserRepository(database, logger)
	favoriteRepo := repositories.NewFavoriteRepository(database, logger)

	// Upstream client and services
	havClient := havapi.NewClient(&cfg.Hav, logger)

	authService := services.NewAuthService(userRepo, &cfg.JWT, logger)
	beachService := services.NewBeachService(havClient, upstreamCache, cfg.Hav.ListTTL, cfg.Hav.DetailTTL, logger)
	favoriteService := services.NewFavoriteService(favoriteRepo, logger)

	// Create server configuration
	serverConfig := &httpserver.ServerConfig{
		Host:           cfg.Server.Host,
		Port:           cfg.Server.Port,
		ReadTimeout:    cfg.Server.ReadTimeout,
		WriteTimeout:   cfg.Server.WriteTimeout,
		IdleTimeout:    cfg.Server.IdleTimeout,
		TLSCertFile:    cfg.Server.TLSCertFile,
		TLSKeyFile:     cfg.Server.TLSKeyFile,
		AllowedOrigins: cfg.Server.AllowedOrigins,
		Environment:    cfg.Server.Environment,
	}

	deps := httpserver.ServerDeps{
		AuthService:     authService,
		BeachService:    beachService,
		FavoriteService: favoriteService,
		HealthCheckers:  healthCheckers,
	}

	server := httpserver.NewServer(serverConfig, logger, deps)

	// Start server in a goroutine
	go func() {
		if err := server.Start(); err != nil {
			logger.Fatal("Failed to start server:", err)
		}
	}()

	logger.Infof("Server started on %s:%s", cfg.Server.Host, cfg.Server.Port)

	// Wait for interrupt signal to gracefully shutdown the server
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("Shutting down server...")

	// Graceful shutdown with timeout
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		logger.Fatal("Server forced to shutdown:", err)
	}

	logger.Info("Server exited")
}
