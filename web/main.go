package main

import (
	"context"
	"flag"
	"log"
	"os"
	"os/signal"
	"time"

	"github.com/df07/go-sphere-tracer/pkg/config"
	"github.com/df07/go-sphere-tracer/web/server"
)

func main() {
	// Parse command line flags
	port := flag.Int("port", 8080, "Port to serve on")
	configPath := flag.String("config", "", "YAML config file with default render settings")
	flag.Parse()

	logger := log.New(os.Stderr, "", log.LstdFlags)

	defaults := config.DefaultConfig()
	if *configPath != "" {
		loaded, err := config.LoadConfig(*configPath)
		if err != nil {
			logger.Printf("Error loading config: %v", err)
			os.Exit(1)
		}
		defaults = loaded
	}

	// Create and start web server
	webServer := server.NewServer(*port, defaults, logger)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()
	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := webServer.Shutdown(shutdownCtx); err != nil {
			logger.Printf("Error shutting down: %v", err)
		}
	}()

	logger.Printf("Sphere Tracer Web Server")
	logger.Printf("Try http://localhost:%d/api/render?scene=simple&width=320&height=180", *port)

	if err := webServer.Start(); err != nil {
		logger.Printf("Error starting server: %v", err)
		os.Exit(1)
	}
}
