package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/platefeed/backend/config"
	"github.com/platefeed/backend/internal/api"
	"github.com/platefeed/backend/internal/database"
	"github.com/platefeed/backend/internal/middleware"
	"github.com/platefeed/backend/internal/router"
	"github.com/platefeed/backend/internal/server"
	"github.com/platefeed/backend/internal/service"
)

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	db, err := database.New(cfg)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	redisClient, err := database.NewRedisClient(cfg)
	if err != nil {
		log.Fatalf("Failed to connect to Redis: %v", err)
	}

	s3Config, err := config.NewS3Config(context.Background(), cfg)
	if err != nil {
		log.Fatalf("Failed to configure S3: %v", err)
	}

	authService := service.NewAuthService(db, cfg.JWTSecret)
	recipeService := service.NewRecipeService(db)
	uploadService := service.NewUploadService(s3Config)

	var rateLimiter *middleware.RateLimiter
	if redisClient != nil {
		rateLimiter = middleware.NewRecipeCreationRateLimiter(redisClient)
	}

	r := router.SetupRouter(
		api.NewAuthHandler(authService),
		api.NewRecipeHandler(recipeService, authService, rateLimiter),
		api.NewUploadHandler(uploadService, authService),
		cfg.AllowedOrigins,
	)

	srv := server.New(r, cfg.ServerHost, cfg.ServerPort)

	// Channel to listen for errors coming from the server
	errChan := make(chan error, 1)

	go func() {
		log.Println("Starting server...")
		errChan <- srv.Start()
	}()

	// Channel to listen for an interrupt or terminate signal from the OS
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-errChan:
		if err != nil {
			log.Fatalf("Server error: %v", err)
		}
	case sig := <-quit:
		log.Printf("Received signal: %v", sig)
	}

	log.Println("Shutting down server...")
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Fatalf("Server shutdown error: %v", err)
	}
	log.Println("Server stopped")
}
