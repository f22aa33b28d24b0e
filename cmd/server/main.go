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

	"lfg-backend/internal/api/routes"
	"lfg-backend/internal/auth"
	"lfg-backend/internal/config"
	"lfg-backend/internal/database"
	"lfg-backend/internal/jobs"
	"lfg-backend/internal/logger"
	"lfg-backend/internal/repository"
	"lfg-backend/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"

	_ "lfg-backend/docs" // This is needed for swag
)

//	@title			LFG Backend API
//	@version		1.0
//	@description	Group finder backend: players register, link characters, and form capacity-bounded groups for dungeon runs.

//	@host		localhost:7008
//	@BasePath	/api/v1

//	@securityDefinitions.apikey	BearerAuth
//	@in							header
//	@name						Authorization
//	@description				Type "Bearer" followed by a space and JWT token.

const shutdownTimeout = 15 * time.Second

// stores bundles the repositories selected by STORE_DRIVER
type stores struct {
	groups     repository.GroupStore
	players    repository.PlayerRepositoryInterface
	characters repository.CharacterRepositoryInterface
	db         *gorm.DB
}

func main() {
	// Load environment variables from .env file in development
	if err := godotenv.Load(); err != nil {
		logrus.Info("No .env file found, using system environment variables")
	}

	// Initialize configuration
	cfg, err := config.Load()
	if err != nil {
		logrus.Fatal("Failed to load configuration: ", err)
	}

	// Set up logging
	logger.Setup(cfg.LogLevel)

	activities, err := config.LoadActivities(cfg.ActivitiesFile)
	if err != nil {
		logrus.Fatal("Failed to load activities: ", err)
	}

	st, err := openStores(cfg)
	if err != nil {
		logrus.Fatal("Failed to initialize storage: ", err)
	}

	redisClient, err := openRedis(cfg)
	if err != nil {
		logrus.Fatal("Failed to initialize redis: ", err)
	}

	// Initialize services
	v := validator.New()
	var reputation service.ReputationClient = service.NewRaiderIOClient(cfg)
	if redisClient != nil {
		reputation = service.NewCachedReputationClient(reputation, service.NewRedisScoreCache(redisClient), cfg.ReputationCacheTTL())
	}
	groups, err := service.NewGroupService(st.groups, service.NewEngineConfig(cfg, activities), v)
	if err != nil {
		logrus.Fatal("Failed to initialize group service: ", err)
	}
	directory := service.NewDirectoryService(st.players, st.characters, reputation, v)
	notices := service.NewNoticeService(st.groups, st.players, st.characters, groups.Capacity())
	signals := service.NewSignalService(groups, directory, v)

	sweeper := jobs.NewExpirySweeper(groups, cfg.GroupExpiryHours, cfg.SweepInterval())
	sweeper.Start()

	// Set Gin mode
	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	router := routes.SetupRoutes(routes.Dependencies{
		Config:     cfg,
		Activities: activities,
		Groups:     groups,
		Directory:  directory,
		Notices:    notices,
		Signals:    signals,
		Tokens:     auth.NewTokenService(cfg.JWTSecret, cfg.TokenTTL()),
		DB:         st.db,
		Redis:      redisClient,
	})

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		logrus.Infof("Starting server on port %s (store: %s)", cfg.Port, cfg.StoreDriver)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logrus.Fatal("Failed to start server: ", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logrus.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logrus.Error("Server forced to shutdown: ", err)
	}
	sweeper.Stop()

	if redisClient != nil {
		_ = redisClient.Close()
	}
	if st.db != nil {
		if sqlDB, err := st.db.DB(); err == nil {
			_ = sqlDB.Close()
		}
	}
	logrus.Info("Server exited")
}

func openStores(cfg *config.Config) (*stores, error) {
	switch cfg.StoreDriver {
	case config.StoreDriverMemory:
		logrus.Warn("Using in-memory store; data is lost on restart")
		return &stores{
			groups:     repository.NewMemoryGroupStore(),
			players:    repository.NewMemoryPlayerRepository(),
			characters: repository.NewMemoryCharacterRepository(),
		}, nil
	case config.StoreDriverPostgres:
		db, err := database.Initialize(cfg.DatabaseURL, nil)
		if err != nil {
			return nil, err
		}
		return &stores{
			groups:     repository.NewGroupRepository(db),
			players:    repository.NewPlayerRepository(db),
			characters: repository.NewCharacterRepository(db),
			db:         db,
		}, nil
	default:
		return nil, fmt.Errorf("unknown store driver %q", cfg.StoreDriver)
	}
}

// openRedis returns nil when no REDIS_URL is configured
func openRedis(cfg *config.Config) (*redis.Client, error) {
	if cfg.RedisURL == "" {
		return nil, nil
	}
	opts, err := redis.ParseURL(cfg.RedisURL)
	if err != nil {
		return nil, fmt.Errorf("invalid REDIS_URL: %w", err)
	}
	client := redis.NewClient(opts)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("redis ping failed: %w", err)
	}
	return client, nil
}
