package main

import (
	"log"
	netHttp "net/http"
	"os"
	"os/signal"
	"syscall"

	"registration-module/config"
	"registration-module/db"
	"registration-module/http"
	"registration-module/http/handlers"
	"registration-module/logger"
	"registration-module/services"
	"registration-module/store"
)

func main() {
	// Load configuration
	config.LoadConfig()

	// Initialize Kafka producer (non-fatal)
	services.InitProducer()

	// Initialize database; an unreachable store is fatal at boot
	database, err := db.InitDB()
	if err != nil {
		logger.Fatal("Error initializing database: %v", err)
	}

	// Wire handlers over the Postgres store
	h := handlers.New(store.NewPostgres(database))

	mux := netHttp.NewServeMux()
	http.SetupRoutes(mux, h)

	// Set up graceful shutdown
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)

	// Start server in a goroutine
	go func() {
		logger.Info("Server starting on :8080")
		log.Fatal(netHttp.ListenAndServe(":8080", mux))
	}()

	// Wait for shutdown signal
	<-sigChan
	logger.Info("Shutdown signal received, closing Kafka producer...")

	if err := services.CloseProducer(); err != nil {
		logger.Error("Error closing Kafka producer: %v", err)
	}

	logger.Info("Server shutdown complete")
}
