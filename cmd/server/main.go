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

	"cognireal-backend/internal/config"
	"cognireal-backend/internal/database"
	"cognireal-backend/internal/gemini"
	"cognireal-backend/internal/handlers"
	"cognireal-backend/internal/ratelimit"
	"cognireal-backend/internal/router"
)

func main() {
	log.Println("🚀 Starting Cognireal Assistant Backend...")

	// ──── Step 1: Load Environment Variables ────
	cfg := config.Load()
	log.Println("✓ Environment variables loaded")

	// ──── Step 2: Pick Rate Limiter Backend ────
	var limiter ratelimit.Limiter
	if cfg.RedisURL != "" {
		redisClient, err := database.NewRedisClient(cfg.RedisURL)
		if err != nil {
			log.Fatalf("✗ Redis connection failed: %v", err)
		}
		defer redisClient.Close()
		limiter = ratelimit.NewRedisLimiter(redisClient, cfg.RateLimitMax, cfg.RateLimitWindow)
		log.Println("✓ Redis rate limiter connected")
	} else {
		limiter = ratelimit.NewMemoryLimiter(cfg.RateLimitMax, cfg.RateLimitWindow)
		log.Println("✓ In-memory rate limiter initialized")
	}

	// ──── Step 3: Initialize Gemini Client ────
	var geminiClient *gemini.Client
	if cfg.GeminiAPIKey != "" {
		geminiClient = gemini.NewClient(gemini.Config{
			APIKey:  cfg.GeminiAPIKey,
			Model:   cfg.GeminiModel,
			Timeout: cfg.GeminiTimeout,
		})
		log.Printf("✓ Gemini client initialized (model: %s)", cfg.GeminiModel)
	} else {
		// Chat requests will return 503 until a key is configured.
		log.Println("⚠ GEMINI_API_KEY not set, chat endpoint is unavailable")
	}

	// ──── Step 4: Initialize Handlers ────
	chatHandler := handlers.NewChatHandler(limiter, geminiClient, cfg.GeminiStreaming)
	wizardHandler := handlers.NewWizardHandler()

	// ──── Step 5: Start HTTP Server ────
	r := router.New(chatHandler, wizardHandler, cfg.FrontendURL)

	server := &http.Server{
		Addr:        fmt.Sprintf(":%s", cfg.Port),
		Handler:     r,
		ReadTimeout: 15 * time.Second,
		// WriteTimeout must cover the longest SSE relay; bound it by the
		// upstream timeout plus slack rather than the usual 15s.
		WriteTimeout: cfg.GeminiTimeout + 30*time.Second,
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

	log.Printf("✓ Cognireal Assistant Backend ready on http://localhost:%s", cfg.Port)
	log.Printf("  API: http://localhost:%s/api/v1", cfg.Port)

	if err := server.ListenAndServe(); err != http.ErrServerClosed {
		log.Fatalf("Server error: %v", err)
	}
}
