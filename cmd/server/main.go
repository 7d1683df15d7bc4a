package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/sundsvall-io/party-assets/internal/api"
	"github.com/sundsvall-io/party-assets/internal/config"
	"github.com/sundsvall-io/party-assets/internal/db"
	"github.com/sundsvall-io/party-assets/internal/middleware"
	"github.com/sundsvall-io/party-assets/internal/party"
	"github.com/sundsvall-io/party-assets/internal/pr3import"
	"github.com/sundsvall-io/party-assets/internal/repository"
	"github.com/sundsvall-io/party-assets/internal/service"
	"github.com/sundsvall-io/party-assets/internal/validation"

	"github.com/rs/cors"
)

func main() {
	// Create context
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	cfg, err := config.Load(".")
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Setup database connection
	conn, err := db.NewConnection(ctx, cfg.Database)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer conn.Close()

	// Run migrations
	if err := db.RunMigrations(ctx, conn.Pool, "./migrations"); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}

	// Create repositories and services
	assetRepo := repository.NewAssetRepository(conn.Pool)
	assetService := service.NewAssetService(assetRepo)
	validator := validation.New()
	partyClient := party.NewClient(cfg.Party.BaseURL, cfg.Party.Timeout)

	// Setup CORS
	corsHandler := cors.New(cors.Options{
		AllowedOrigins:   []string{"http://localhost:3000"},
		AllowCredentials: true,
		AllowedMethods:   []string{"GET", "POST", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"*"},
	})

	mux := http.NewServeMux()
	assetHandler := middleware.LoggingMiddleware(api.NewAssetHandler(assetService, validator))
	mux.Handle("/assets", corsHandler.Handler(assetHandler))
	mux.Handle("/assets/", corsHandler.Handler(assetHandler))

	if cfg.PR3Import.Enabled {
		importer := pr3import.New(cfg.PR3Import.StaticAssetInfo, assetService, partyClient, validator)
		importHandler := middleware.LoggingMiddleware(pr3import.NewHTTPHandler(importer))
		mux.Handle("/import/pr3", corsHandler.Handler(importHandler))
		log.Println("PR3 import endpoint enabled at /import/pr3")
	} else {
		log.Println("PR3 import endpoint disabled by configuration")
	}

	// Create HTTP server
	server := &http.Server{
		Addr:         cfg.Server.Addr,
		Handler:      mux,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Start server in a goroutine
	go func() {
		log.Printf("Starting party-assets server on %s", cfg.Server.Addr)

		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Failed to start server: %v", err)
		}
	}()

	// Wait for interrupt signal to gracefully shutdown the server
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Println("Shutting down server...")

	// Graceful shutdown with timeout
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer shutdownCancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Fatalf("Server forced to shutdown: %v", err)
	}

	log.Println("Server exited")
}
