package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"campusbuddy-backend/internal/config"
	"campusbuddy-backend/internal/handlers"
	"campusbuddy-backend/internal/router"
	"campusbuddy-backend/internal/services"
)

func main() {
	log.Println("🚀 Starting CampusBuddy Backend...")

	// ──── Step 1: Load Environment Variables ────
	cfg := config.Load()
	log.Println("✓ Environment variables loaded")

	// ──── Step 2: Initialize Gemini Client ────
	geminiService, err := services.NewGeminiService(context.Background(), cfg.GeminiAPIKey, cfg.GeminiModel)
	if err != nil {
		log.Fatalf("✗ Gemini client initialization failed: %v", err)
	}
	defer geminiService.Close()
	log.Printf("✓ Gemini client initialized (%s)", cfg.GeminiModel)

	// ──── Step 3: Initialize Handlers ────
	chatHandler := handlers.NewChatHandler(geminiService)
	staticHandler := handlers.NewStaticHandler(cfg.StaticDir)

	// ──── Step 4: Start HTTP Server ────
	r := router.New(chatHandler, staticHandler, cfg.AllowedOrigin)

	server := &http.Server{
		Addr:         fmt.Sprintf(":%s", cfg.Port),
		Handler:      r,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 2 * time.Minute,
		IdleTimeout:  60 * time.Second,
	}

	// Graceful shutdown
	go func() {
		sigChan := make(chan os.Signal, 1)
		signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
		<-sigChan

		log.Println("Shutting down...")
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()
		server.Shutdown(ctx)
	}()

	log.Printf("✓ CampusBuddy Backend ready on http://localhost:%s", cfg.Port)
	log.Printf("  API:    http://localhost:%s/api/chat", cfg.Port)
	log.Printf("  Web UI: http://localhost:%s/", cfg.Port)

	if err := server.ListenAndServe(); err != http.ErrServerClosed {
		log.Fatalf("Server error: %v", err)
	}
}
