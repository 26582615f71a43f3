package main

import (
	"log"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"github.com/hirebase/job-board-api/internal/config"
	"github.com/hirebase/job-board-api/internal/database"
	"github.com/hirebase/job-board-api/internal/handlers"
	"github.com/hirebase/job-board-api/internal/middleware"
	"github.com/hirebase/job-board-api/internal/repository"
	"github.com/hirebase/job-board-api/internal/services"
)

func main() {
	// Load environment variables
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using process environment")
	}

	// Load configuration
	cfg := config.Load()

	// Set Gin mode
	gin.SetMode(cfg.GinMode)

	// The signing secret must be configured; refusing to start beats issuing
	// tokens signed with a known default.
	tokenService, err := services.NewTokenService(cfg.JWTSecret)
	if err != nil {
		log.Fatalf("Configuration error: %v (set JWT_SECRET)", err)
	}

	// Connect to database
	db, err := database.Connect(cfg)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	// Run migrations
	if err := database.Migrate(db); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}

	// Initialize repositories
	userRepo := repository.NewUserRepository(db)
	employerRepo := repository.NewEmployerRepository(db)
	jobRepo := repository.NewJobRepository(db)
	tagRepo := repository.NewTagRepository(db)

	// Initialize services
	authService := services.NewAuthService(userRepo)
	jobService := services.NewJobService(jobRepo, tagRepo, employerRepo)

	// Initialize handlers
	authHandler := handlers.NewAuthHandler(authService, tokenService, cfg.UploadDir)
	jobHandler := handlers.NewJobHandler(jobService)
	tagHandler := handlers.NewTagHandler(jobService)
	searchHandler := handlers.NewSearchHandler(jobService)

	// Initialize Gin router
	r := gin.Default()

	// CORS for the SPA frontend
	corsConfig := cors.DefaultConfig()
	corsConfig.AllowAllOrigins = true
	corsConfig.AllowHeaders = []string{"Origin", "Content-Length", "Content-Type", "Authorization"}
	r.Use(cors.New(corsConfig))

	// Uploaded employer logos
	r.Static("/uploads", cfg.UploadDir)

	// Health check endpoint
	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"status":  "ok",
			"message": "Job Board API is running",
		})
	})

	// API routes
	api := r.Group("/api")
	{
		// Auth routes
		auth := api.Group("/auth")
		{
			auth.POST("/register", authHandler.Register)
			auth.POST("/login", authHandler.Login)
			auth.POST("/logout", middleware.RequireAuth(tokenService), authHandler.Logout)
			auth.GET("/me", middleware.RequireAuth(tokenService), authHandler.GetCurrentUser)
		}

		// Job routes (listing is public, posting requires auth)
		jobs := api.Group("/jobs")
		{
			jobs.GET("", jobHandler.ListJobs)
			jobs.POST("", middleware.RequireAuth(tokenService), jobHandler.CreateJob)
		}

		// Tag browsing (public)
		api.GET("/tags/:name", tagHandler.GetJobsByTag)

		// Title search (public)
		api.GET("/search", searchHandler.SearchJobs)
	}

	// Start server
	log.Printf("Server starting on :%s", cfg.Port)
	if err := r.Run(":" + cfg.Port); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
