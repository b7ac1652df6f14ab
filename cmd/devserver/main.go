package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/newrelic/go-agent/v3/newrelic"

	"parceldash/internal/config"
	"parceldash/internal/devserver"
)

func main() {
	// Load configuration.
	cfg := config.Load()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Initialize New Relic first so Redis can be instrumented.
	var nrApp *newrelic.Application
	var err error
	if cfg.NewRelic.Enabled && cfg.NewRelic.LicenseKey != "" {
		nrApp, err = newrelic.NewApplication(
			newrelic.ConfigAppName(cfg.NewRelic.AppName),
			newrelic.ConfigLicense(cfg.NewRelic.LicenseKey),
			newrelic.ConfigDistributedTracerEnabled(true),
		)
		if err != nil {
			log.Printf("failed to initialize New Relic: %v", err)
		} else {
			log.Printf("New Relic enabled: app=%s", cfg.NewRelic.AppName)
		}
	}

	// Location and idempotency stores: Redis when configured, memory otherwise.
	var locations devserver.LocationStore = devserver.NewMemoryLocationStore()
	var idemCache devserver.IdempotencyCache = devserver.NewMemoryIdempotencyCache()
	if cfg.Redis.Enabled {
		connectCtx, connectCancel := context.WithTimeout(ctx, 10*time.Second)
		redisClient, err := devserver.NewRedisClient(connectCtx, cfg.Redis, nrApp)
		connectCancel()
		if err != nil {
			log.Fatalf("failed to connect to redis: %v", err)
		}
		defer redisClient.Close()
		log.Println("Connected to Redis")
		locations = devserver.NewRedisLocationStore(redisClient)
		idemCache = devserver.NewRedisIdempotencyCache(redisClient)
	}

	// Seed fixtures and start the rider movement simulator.
	repo := devserver.NewRepo()
	if err := devserver.Seed(ctx, repo, locations); err != nil {
		log.Fatalf("failed to seed fixtures: %v", err)
	}
	devserver.StartSimulator(ctx, repo, locations, 10*time.Second)

	jwts := devserver.NewJWTService(cfg.Auth)
	fixture := devserver.NewServer(repo, jwts, locations)

	router := devserver.NewRouter(devserver.RouterDeps{
		Server:           fixture,
		JWTService:       jwts,
		IdempotencyCache: idemCache,
		NewRelicApp:      nrApp,
	})

	server := &http.Server{
		Addr:         ":" + cfg.Server.Port,
		Handler:      router,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}

	// Start server in goroutine.
	go func() {
		log.Printf("Starting dev fixture server on port %s", cfg.Server.Port)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("server error: %v", err)
		}
	}()

	// Graceful shutdown.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Println("Shutting down server...")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer shutdownCancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Fatalf("server forced to shutdown: %v", err)
	}

	log.Println("Server exited")
}
