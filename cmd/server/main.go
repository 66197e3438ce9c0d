package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"humint-backend/internal/config"
	"humint-backend/internal/database"
	"humint-backend/internal/handlers"
	"humint-backend/internal/router"
	"humint-backend/internal/services"
	"humint-backend/pkg/logger"
)

func main() {
	// ──── Step 1: Load Environment Variables ────
	cfg := config.Load()
	logger.Init(cfg.LogLevel, cfg.LogFormat)
	logger.Infof("🚀 Starting Humint relay...")
	logger.Infof("✓ Environment variables loaded")
	if cfg.MongoURIDefault {
		logger.Warnf("⚠️  MONGODB_URI not found, using local MongoDB")
	}

	// ──── Step 2: Connect to MongoDB ────
	mongo, err := database.NewMongo(cfg.MongoURI)
	if err != nil {
		logger.Fatalf("✗ MongoDB connection failed: %v", err)
	}
	defer mongo.Close(context.Background())
	logger.Infof("✓ Connected to MongoDB")

	// ──── Step 3: Initialize Gemini Client ────
	geminiService, err := services.NewGeminiService(cfg.GeminiAPIKey, cfg.GeminiModel)
	if err != nil {
		logger.Fatalf("✗ Gemini client initialization failed: %v", err)
	}
	defer geminiService.Close()
	logger.Infof("✓ Gemini client initialized (%s)", cfg.GeminiModel)

	// ──── Step 4: Start HTTP Server ────
	chatHandler := handlers.NewChatHandler(geminiService, cfg.IsDevelopment())
	healthHandler := handlers.NewHealthHandler(mongo)
	r := router.New(chatHandler, healthHandler, cfg.CORSOrigin)

	// No write timeout: a provider call may take as long as it takes.
	server := &http.Server{
		Addr:              fmt.Sprintf(":%s", cfg.Port),
		Handler:           r,
		ReadHeaderTimeout: 15 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	// Graceful shutdown
	go func() {
		sigChan := make(chan os.Signal, 1)
		signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
		<-sigChan

		logger.Infof("Shutting down...")

		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()
		server.Shutdown(ctx)
	}()

	logger.Infof("🚀 Server is running on port %s", cfg.Port)

	if err := server.ListenAndServe(); err != http.ErrServerClosed {
		logger.Fatalf("Server error: %v", err)
	}
}
