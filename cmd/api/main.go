package main

import (
	"fmt"
	"net/http"
	"os"

	"jobboard/internal/config"
	"jobboard/internal/database"
	"jobboard/internal/handlers"
	"jobboard/internal/logger"
	"jobboard/internal/middleware"
	"jobboard/internal/services"
	"jobboard/internal/validator"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	_ "jobboard/internal/docs" // Import swagger docs
)

// @title           Job Board API
// @version         1.0
// @description     REST API for a job board: companies, advertisements, applications, and the application audit trail.
// @termsOfService  http://swagger.io/terms/

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

	// Initialize database configuration
	dbConfig, err := database.NewConfig()
	if err != nil {
		return fmt.Errorf("failed to load database configuration: %w", err)
	}

	// Create database manager
	dbManager, err := database.NewManager(dbConfig)
	if err != nil {
		return fmt.Errorf("failed to create database manager: %w", err)
	}

	// Run migrations
	if err := dbManager.RunMigrations(); err != nil {
		return fmt.Errorf("failed to run database migrations: %w", err)
	}

	// Register custom validators
	validator.Register()

	// Initialize services
	db := dbManager.DB()
	userService := services.NewUserService(db)
	companyService := services.NewCompanyService(db)
	advertisementService := services.NewAdvertisementService(db)
	applicationService := services.NewApplicationService(db)
	applicationLogService := services.NewApplicationLogService(db)
	statsService := services.NewStatsService(db)

	// Initialize handlers
	authHandler := handlers.NewAuthHandler(userService)
	userHandler := handlers.NewUserHandler(userService)
	companyHandler := handlers.NewCompanyHandler(companyService)
	advertisementHandler := handlers.NewAdvertisementHandler(advertisementService)
	applicationHandler := handlers.NewApplicationHandler(applicationService, applicationLogService)
	applicationLogHandler := handlers.NewApplicationLogHandler(applicationLogService)
	uploadHandler := handlers.NewUploadHandler(userService)
	statsHandler := handlers.NewStatsHandler(statsService)

	// Initialize Gin router
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.RequestLogging())
	router.Use(middleware.ErrorHandler())

	// CORS middleware
	router.Use(func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", appConfig.FrontendOrigin)
		c.Writer.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization")
		c.Writer.Header().Set("Access-Control-Expose-Headers", "Location")

		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}

		c.Next()
	})

	// Swagger documentation
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Uploaded CVs
	router.Static("/uploads", appConfig.UploadsDir)

	// Health check endpoint
	router.GET("/api/health", func(c *gin.Context) {
		if err := dbManager.Ping(); err != nil {
			c.JSON(http.StatusServiceUnavailable, gin.H{"status": "degraded", "database": "down"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	// API v1 group
	v1 := router.Group("/api/v1")

	// Public routes
	auth := v1.Group("/auth")
	auth.POST("/register", authHandler.Register)
	auth.POST("/login", authHandler.Login)

	v1.GET("/profile", middleware.AuthMiddleware(), authHandler.GetProfile)

	v1.GET("/stats", statsHandler.GetStats)

	// User routes
	users := v1.Group("/users")
	users.GET("", userHandler.GetUsers)
	users.GET("/:id", userHandler.GetUserByID)
	users.DELETE("/:id", userHandler.DeleteUser)
	users.PUT("/:id/cv", middleware.AuthMiddleware(), uploadHandler.UploadCV)

	// Company routes
	companies := v1.Group("/companies")
	companies.GET("", companyHandler.GetCompanies)
	companies.GET("/:id", companyHandler.GetCompanyByID)
	companies.POST("", middleware.AuthMiddleware(), companyHandler.CreateCompany)
	companies.PUT("/:id", middleware.AuthMiddleware(), companyHandler.UpdateCompany)
	companies.DELETE("/:id", middleware.AuthMiddleware(), companyHandler.DeleteCompany)

	// Advertisement routes
	advertisements := v1.Group("/advertisements")
	advertisements.GET("", advertisementHandler.GetAdvertisements)
	advertisements.GET("/:id", advertisementHandler.GetAdvertisementByID)
	advertisements.POST("", middleware.AuthMiddleware(), advertisementHandler.CreateAdvertisement)
	advertisements.PUT("/:id", middleware.AuthMiddleware(), advertisementHandler.UpdateAdvertisement)
	advertisements.DELETE("/:id", middleware.AuthMiddleware(), advertisementHandler.DeleteAdvertisement)

	// Application routes
	applications := v1.Group("/applications")
	applications.POST("", middleware.AuthMiddleware(), applicationHandler.SubmitApplication)
	applications.GET("", applicationHandler.GetApplications)
	applications.GET("/:id", applicationHandler.GetApplicationByID)
	applications.GET("/:id/logs", applicationHandler.GetApplicationTrail)
	applications.GET("/user/:user_id", applicationHandler.GetApplicationsByUser)
	applications.PUT("/:id", applicationHandler.UpdateApplication)
	applications.DELETE("/:id", applicationHandler.DeleteApplication)

	// Application log routes
	applicationLogs := v1.Group("/application_logs")
	applicationLogs.POST("", applicationLogHandler.CreateApplicationLog)
	applicationLogs.GET("", applicationLogHandler.GetApplicationLogs)
	applicationLogs.GET("/:id", applicationLogHandler.GetApplicationLogByID)
	applicationLogs.DELETE("/:id", applicationLogHandler.DeleteApplicationLog)

	// Upload route
	v1.POST("/upload", middleware.AuthMiddleware(), uploadHandler.UploadFile)

	log.Infof("Starting job board backend server on port %s", appConfig.Port)
	log.Infof("Swagger documentation available at http://localhost:%s/swagger/index.html", appConfig.Port)
	return router.Run(":" + appConfig.Port)
}
