package main

import (
	"context"
	"flag"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/GriffinCanCode/lumen/internal/infrastructure/config"
	"github.com/GriffinCanCode/lumen/internal/server"
)

// clipboardPollInterval matches the frontend's idle refresh cadence.
const clipboardPollInterval = 2 * time.Second

func main() {
	port := flag.String("port", "", "HTTP port (overrides PORT)")
	host := flag.String("host", "", "bind address (overrides HOST)")
	configFile := flag.String("config", "", "TOML config file (overrides CONFIG_FILE)")
	pollClipboard := flag.Bool("poll-clipboard", true, "poll the system clipboard into history")
	flag.Parse()

	if *configFile != "" {
		os.Setenv("CONFIG_FILE", *configFile)
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}
	if *port != "" {
		cfg.Server.Port = *port
	}
	if *host != "" {
		cfg.Server.Host = *host
	}

	srv, err := server.NewServer(cfg)
	if err != nil {
		log.Fatalf("failed to create server: %v", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	if *pollClipboard {
		go pollLoop(ctx, srv)
	}

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)

	errChan := make(chan error, 1)
	go func() {
		if err := srv.Run(); err != nil {
			errChan <- err
		}
	}()

	select {
	case <-sigChan:
		cancel()
		if err := srv.Close(); err != nil {
			log.Printf("error during shutdown: %v", err)
		}
	case err := <-errChan:
		log.Fatalf("server error: %v", err)
	}
}

func pollLoop(ctx context.Context, srv *server.Server) {
	ticker := time.NewTicker(clipboardPollInterval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			srv.PollClipboard(ctx)
		}
	}
}
