package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/cors"

	"darpan_backend/config"
	"darpan_backend/handlers"
	"darpan_backend/middleware"
	"darpan_backend/store"
)

func main() {
	startTime := time.Now()
	log.Printf("Starting server initialization at %s", startTime.Format(time.RFC3339))

	// Load environment variables first
	if err := config.LoadEnv(); err != nil {
		log.Printf("Warning: Error loading .env file: %v", err)
	}

	port := config.ServerPort()

	artifactStore := store.New(config.SnapshotPath(), config.ForecastPath(), config.ArtifactCacheTTL())
	h := handlers.New(artifactStore)

	r := mux.NewRouter()

	// CORS configuration
	corsHandler := cors.New(cors.Options{
		AllowedOrigins: config.AllowedOrigins(),
		AllowedMethods: []string{
			"GET", "POST", "OPTIONS",
		},
		AllowedHeaders: []string{
			"Accept",
			"Authorization",
			"Content-Type",
			"X-Request-ID",
			"X-Requested-With",
			"Origin",
		},
		ExposedHeaders: []string{
			"Content-Length",
			"Content-Type",
			"X-Request-ID",
		},
		AllowCredentials: false,
		MaxAge:           86400,
		Debug:            config.CORSDebugEnabled(),
	})

	// Apply middlewares in correct order
	if config.CORSDebugEnabled() {
		r.Use(middleware.CORSDebugMiddleware)
	}
	r.Use(corsHandler.Handler)
	r.Use(middleware.RecoveryMiddleware)
	r.Use(middleware.LoggingMiddleware)
	r.Use(middleware.MetricsMiddleware)

	// API routes
	api := r.PathPrefix("/api/v1").Subrouter()
	registerRoutes(api, h)
	log.Println("Routes registered successfully")

	// Prometheus scrape endpoint, outside the API prefix
	r.Handle("/metrics", promhttp.Handler()).Methods("GET")

	// Create server with optimized timeouts
	srv := &http.Server{
		Handler:           r,
		Addr:              ":" + port,
		WriteTimeout:      15 * time.Second,
		ReadTimeout:       15 * time.Second,
		IdleTimeout:       60 * time.Second,
		ReadHeaderTimeout: 5 * time.Second,
		MaxHeaderBytes:    1 << 20,
	}

	// Create error channel for server errors
	serverErrors := make(chan error, 1)

	// Start server in a goroutine
	go func() {
		log.Printf("Starting server on port %s...", port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Printf("Server error: %v", err)
			serverErrors <- err
		}
	}()

	// Wait for server to start
	time.Sleep(1 * time.Second)
	log.Printf("Server is running at http://localhost:%s", port)
	log.Printf("Audit endpoint: http://localhost:%s/api/v1/audit", port)
	log.Printf("Health check endpoint: http://localhost:%s/api/v1/health", port)

	// Handle graceful shutdown
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)

	// Wait for shutdown signal or server error
	select {
	case <-stop:
		log.Println("Shutdown signal received")
	case err := <-serverErrors:
		log.Printf("Server error received: %v", err)
	}

	log.Println("Shutting down server...")
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Printf("Error during server shutdown: %v", err)
	} else {
		log.Println("Server shutdown completed successfully")
	}
}

func registerRoutes(api *mux.Router, h *handlers.Handler) {
	// Dashboard routes
	api.HandleFunc("/metadata", h.GetMetadata).Methods("GET", "OPTIONS")
	api.HandleFunc("/audit", h.GetAuditReport).Methods("GET", "OPTIONS")

	// Admin routes
	api.HandleFunc("/refresh", h.RefreshArtifacts).Methods("POST", "OPTIONS")

	// Health check
	api.HandleFunc("/health", h.GetHealth).Methods("GET")
	api.HandleFunc("/health/detailed", h.GetDetailedHealth).Methods("GET")
}
