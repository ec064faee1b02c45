package main

import (
	"context"
	"log"
	"net/http"
	"os"

	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"tailor-storefront/app"
	"tailor-storefront/config"
)

func main() {
	// Load .env file in development (ignores error if file doesn't exist)
	// In production, variables should be set directly
	if os.Getenv("ENV") != "production" {
		// Use Overload to ensure .env values override system environment variables
		if err := godotenv.Overload(".env"); err != nil {
			log.Printf("Warning: .env file not found, using system environment variables")
		}
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	var logger *zap.Logger
	if cfg.IsProduction() {
		logger, err = zap.NewProduction()
	} else {
		logger, err = zap.NewDevelopment()
	}
	if err != nil {
		log.Fatalf("Failed to create logger: %v", err)
	}
	defer logger.Sync()
	zap.ReplaceGlobals(logger)

	// Initialize application
	handler, cleanup, err := app.Initialize(context.Background(), cfg)
	if err != nil {
		zap.S().Fatalf("❌ Failed to initialize application: %v", err)
	}
	defer cleanup()

	// Start server
	zap.S().Infof("🚀 Server starting on %s (store=%s)", cfg.Addr(), cfg.StoreBackend)
	zap.S().Infof("Quote endpoint: POST http://localhost:%s/quote", cfg.Port)

	if err := http.ListenAndServe(cfg.Addr(), handler); err != nil {
		zap.S().Fatalf("Server failed to start: %v", err)
	}
}
