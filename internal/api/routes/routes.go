package routes

import (
	"net/http"

	"lfg-backend/internal/api/handlers"
	"lfg-backend/internal/api/middleware"
	"lfg-backend/internal/auth"
	"lfg-backend/internal/config"
	"lfg-backend/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"gorm.io/gorm"
)

// Dependencies are the wired services the router exposes. DB and Redis are
// only used for health checks and may be nil.
type Dependencies struct {
	Config     *config.Config
	Activities *config.ActivityCatalog
	Groups     service.GroupServiceInterface
	Directory  service.DirectoryServiceInterface
	Notices    service.NoticeServiceInterface
	Signals    service.SignalServiceInterface
	Tokens     *auth.TokenService
	DB         *gorm.DB
	Redis      *redis.Client
}

// SetupRoutes configures all the routes for the application
func SetupRoutes(deps Dependencies) *gin.Engine {
	// Create router
	router := gin.New()

	// Add middleware
	router.Use(middleware.RequestID())
	router.Use(middleware.Logger())
	router.Use(middleware.Recovery())
	router.Use(middleware.CORS(deps.Config))

	authMiddleware := auth.NewAuthMiddleware(deps.Tokens)

	// Initialize handlers
	healthHandler := handlers.NewHealthHandler(deps.DB, deps.Redis)
	activityHandler := handlers.NewActivityHandler(deps.Activities)
	playerHandler := handlers.NewPlayerHandler(deps.Directory, deps.Groups)
	groupHandler := handlers.NewGroupHandler(deps.Groups, deps.Directory, deps.Notices)
	signalHandler := handlers.NewSignalHandler(deps.Signals)

	// Health check routes
	router.GET("/health", healthHandler.Health)
	router.GET("/health/ready", healthHandler.Ready)
	router.GET("/health/live", healthHandler.Live)

	// Swagger documentation route
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// API v1 routes - All endpoints require authentication
	v1 := router.Group("/api/v1")
	v1.Use(authMiddleware.RequireAuth())
	{
		v1.GET("/activities", activityHandler.ListActivities)

		me := v1.Group("/players/me")
		{
			me.POST("", playerHandler.Register)
			me.GET("/characters", playerHandler.ListCharacters)
			me.POST("/characters", playerHandler.LinkCharacter)
			me.PUT("/characters", playerHandler.UpdateCharacter)
			me.GET("/groups", playerHandler.ListGroups)
			me.POST("/leave", playerHandler.LeaveCurrent)
		}

		groups := v1.Group("/groups")
		{
			groups.POST("", groupHandler.CreateGroup)
			groups.GET("", groupHandler.ListActiveGroups)
			groups.GET("/:id", groupHandler.GetGroup)
			groups.GET("/:id/notice", groupHandler.GetNotice)
			groups.POST("/:id/join", groupHandler.JoinGroup)
			groups.POST("/:id/leave", groupHandler.LeaveGroup)
		}

		v1.POST("/signals", signalHandler.HandleSignal)
	}

	// Catch-all route for undefined endpoints
	router.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, gin.H{
			"error":      "Endpoint not found",
			"path":       c.Request.URL.Path,
			"method":     c.Request.Method,
			"request_id": middleware.GetRequestID(c),
		})
	})

	return router
}
