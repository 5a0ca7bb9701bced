package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"praisy_backend/internal/config"
	"praisy_backend/internal/handler"
	"praisy_backend/internal/middleware"
	"praisy_backend/internal/repository"
	"praisy_backend/internal/service"
	"praisy_backend/internal/utils"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

func main() {
	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix

	// Load .env file
	if err := godotenv.Load(); err != nil {
		log.Info().Msg("No .env file found or error loading, relying on environment variables")
	}

	// --- Configuration ---
	appCfg := config.LoadAppConfig()
	if appCfg.Production {
		gin.SetMode(gin.ReleaseMode)
	}

	dbCfg, err := config.LoadDBConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to load DB config")
	}

	// --- Database Connection ---
	dbPool, err := config.ConnectDB(dbCfg)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to connect to database")
	}
	defer dbPool.Close()

	// --- Auto Migration ---
	if err := config.AutoMigrate(dbPool); err != nil {
		log.Fatal().Err(err).Msg("Failed to auto-migrate database")
	}

	// --- Initialize Utilities ---
	jwtUtil := utils.NewJWTUtil(appCfg.JWTSecret, appCfg.JWTExpirationHours)

	// --- Initialize Repositories ---
	userRepo := repository.NewUserRepository(dbPool)

	// --- Initialize Services ---
	authService := service.NewAuthService(userRepo, jwtUtil)
	userService := service.NewUserService(userRepo)

	// --- Initialize Handlers ---
	cookieCfg := handler.CookieConfig{MaxAge: appCfg.CookieMaxAge, Secure: appCfg.Production}
	authHandler := handler.NewAuthHandler(authService, cookieCfg)
	userHandler := handler.NewUserHandler(userService)

	// --- Setup Gin Router ---
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.RequestLogger())

	// CORS for the single configured frontend origin. Credentials are allowed
	// because the session cookie must cross origins, which rules out "*".
	router.Use(func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", appCfg.FrontendURL)
		c.Writer.Header().Set("Access-Control-Allow-Credentials", "true")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, Content-Length, Accept-Encoding, Authorization, accept, origin, Cache-Control, X-Requested-With")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "POST, OPTIONS, GET, PUT, DELETE")
		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}
		c.Next()
	})

	// --- Initialize Middlewares ---
	authMW := middleware.AuthMiddleware(jwtUtil, userRepo)
	adminMW := middleware.AdminMiddleware()

	// --- Register Routes ---
	apiGroup := router.Group("/api")
	authHandler.RegisterAuthRoutes(apiGroup, authMW)
	userHandler.RegisterUserRoutes(apiGroup, authMW, adminMW)

	router.GET("/", func(c *gin.Context) {
		c.String(http.StatusOK, "API is running...")
	})

	router.GET("/health", func(c *gin.Context) {
		if err := dbPool.Ping(c.Request.Context()); err != nil {
			c.JSON(http.StatusServiceUnavailable, gin.H{"status": "error", "db": "unhealthy"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"status": "ok", "db": "healthy"})
	})

	// --- Start Server ---
	srv := &http.Server{
		Addr:    ":" + appCfg.ServerPort,
		Handler: router,
	}

	go func() {
		log.Info().Str("port", appCfg.ServerPort).Msg("Server starting")
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("listen")
		}
	}()

	// --- Graceful Shutdown ---
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info().Msg("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Fatal().Err(err).Msg("Server forced to shutdown")
	}

	log.Info().Msg("Server exiting")
}
