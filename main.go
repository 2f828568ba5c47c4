package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"blog-api/config"
	"blog-api/handlers"
	"blog-api/helper"
	"blog-api/logger"
	"blog-api/middleware"
	"blog-api/repositories"
	"blog-api/services"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
)

func main() {
	// .env is optional outside development
	_ = godotenv.Load()

	log := logger.New()
	log.Info().Msg("Starting blog API server...")

	// Initialize database
	db, err := config.InitDB(config.LoadDatabaseConfig(), log)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to connect to database")
	}

	migrationsPath := os.Getenv("MIGRATIONS_PATH")
	if migrationsPath == "" {
		migrationsPath = "./migrations"
	}
	if err := config.RunMigrations(db, migrationsPath, log); err != nil {
		log.Fatal().Err(err).Msg("Failed to run database migrations")
	}

	// Initialize repositories
	userRepo := repositories.NewUserRepository(db)
	articleRepo := repositories.NewArticleRepository(db)

	// Initialize services
	authService := services.NewAuthService(userRepo)
	articleService := services.NewArticleService(articleRepo)

	// Initialize handlers
	httpHelper := helper.NewHTTPHelper()
	authHandler := handlers.NewAuthHandler(authService, httpHelper)
	articleHandler := handlers.NewArticleHandler(articleService, httpHelper)

	// Setup router
	if os.Getenv("ENV") != "development" {
		gin.SetMode(gin.ReleaseMode)
	}
	router := gin.New()
	router.Use(middleware.Recovery(log))
	router.Use(middleware.RequestLogger(log))

	// CORS middleware
	router.Use(func(c *gin.Context) {
		c.Header("Access-Control-Allow-Origin", "*")
		c.Header("Access-Control-Allow-Methods", "GET, POST, PUT, OPTIONS")
		c.Header("Access-Control-Allow-Headers", "Origin, Content-Type, access-token, client, uid")
		c.Header("Access-Control-Expose-Headers", "access-token, client, uid, expiry")

		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(204)
			return
		}

		c.Next()
	})

	// API routes
	v1 := router.Group("/api/v1")
	{
		v1.GET("/health_check", func(c *gin.Context) {
			c.JSON(http.StatusOK, gin.H{"message": "Success Health Check!"})
		})

		// Public feed of published articles
		v1.GET("/articles", articleHandler.GetPublicArticles)

		// Auth routes (public)
		auth := v1.Group("/auth")
		{
			auth.POST("", authHandler.SignUp)
			auth.POST("/sign_in", authHandler.SignIn)
		}

		// Routes scoped to the authenticated user
		current := v1.Group("/current")
		current.Use(middleware.AuthMiddleware())
		{
			current.GET("/user", authHandler.GetProfile)

			articles := current.Group("/articles")
			{
				articles.GET("", articleHandler.GetMyArticles)
				articles.GET("/:id", articleHandler.GetMyArticle)
				articles.POST("", articleHandler.StartDraft)
				articles.PUT("/:id", articleHandler.UpdateMyArticle)
			}
		}
	}

	// Start server
	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	srv := &http.Server{
		Addr:    ":" + port,
		Handler: router,
	}

	go func() {
		log.Info().Str("port", port).Msg("Server listening")
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("Server failed")
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info().Msg("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Fatal().Err(err).Msg("Server forced to shutdown")
	}

	log.Info().Msg("Server exited gracefully")
}
