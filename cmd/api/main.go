package main

import (
	"fmt"
	"net/http"
	"os"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"stridelog/internal/config"
	"stridelog/internal/database"
	"stridelog/internal/handlers"
	"stridelog/internal/journal"
	"stridelog/internal/logger"
	"stridelog/internal/middleware"
	"stridelog/internal/services"
	"stridelog/internal/storage"
	"stridelog/internal/validator"

	_ "stridelog/internal/docs" // Import swagger docs
)

// @title           Stridelog API
// @version         1.0
// @description     Stridelog is a single-user daily activity journal: record one entry per day (steps, distance walked, money spent, learnings and goals) and review a filterable history.

// @host      localhost:8080
// @BasePath  /api/v1

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.

func main() {
	// Initialize logger (use ENV var if available, default to development)
	logger.Init(os.Getenv("ENV"))
	defer logger.Sync()

	if err := run(); err != nil {
		logger.Get().Fatalf("Fatal error: %v", err)
	}
}

func run() error {
	log := logger.Get()

	// Load configuration
	appConfig, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	// Register custom validators
	validator.Register()

	// Open the configured storage backend
	store, err := openStore(appConfig)
	if err != nil {
		return err
	}

	// Load the journal; a corrupt store blocks startup rather than
	// silently presenting an empty history.
	journalStore, err := journal.Open(store)
	if err != nil {
		return fmt.Errorf("failed to load journal: %w", err)
	}

	// Initialize services
	authService := services.NewAuthService(store)

	// Initialize handlers
	authHandler := handlers.NewAuthHandler(authService)
	activityHandler := handlers.NewActivityHandler(journalStore)

	// Initialize Gin router
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.RequestLogging())
	router.Use(middleware.ErrorHandler())

	// CORS middleware
	router.Use(func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization")

		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}

		c.Next()
	})

	// Swagger documentation
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Health check endpoint
	router.GET("/api/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	// API v1 group
	v1 := router.Group("/api/v1")

	// Public routes
	auth := v1.Group("/auth")
	auth.POST("/login", authHandler.Login)

	// Protected routes
	protected := v1.Group("/")
	protected.Use(middleware.AuthMiddleware())

	protected.GET("/dashboard", activityHandler.GetDashboard)

	activities := protected.Group("/activities")
	activities.GET("", activityHandler.GetHistory)
	activities.PUT("/today", activityHandler.UpsertToday)
	activities.GET("/:date", activityHandler.GetByDay)

	log.Infof("Starting Stridelog backend server on port %s", appConfig.Port)
	log.Infof("Swagger documentation available at http://localhost:%s/swagger/index.html", appConfig.Port)
	return router.Run(":" + appConfig.Port)
}

// openStore builds the storage backend selected by STORE_DRIVER.
func openStore(cfg *config.Config) (storage.Store, error) {
	if cfg.StoreDriver == config.StoreDriverJSON {
		store, err := storage.NewJSONStore(cfg.DataDir)
		if err != nil {
			return nil, fmt.Errorf("failed to open json store: %w", err)
		}
		return store, nil
	}

	dbManager, err := database.NewManager(cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to create database manager: %w", err)
	}
	if err := dbManager.Migrate(); err != nil {
		return nil, fmt.Errorf("failed to run database migrations: %w", err)
	}
	return storage.NewGormStore(dbManager.DB()), nil
}
