package main

import (
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"

	"github.com/joho/godotenv"

	"github.com/danielhkuo/pollbooth/catalog"
	"github.com/danielhkuo/pollbooth/cliparse"
	"github.com/danielhkuo/pollbooth/router"
)

func main() {
	var err error

	// Optional .env file for local development
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		slog.Warn("could not load .env file", "error", err)
	}

	// Parse configuration
	cfg, err := cliparse.ParseFlags(os.Args[1:])
	if err != nil {
		slog.Error("Error parsing flags", "error", err)
		os.Exit(1)
	}

	// Verify the poll configuration parses before serving traffic
	loader := catalog.NewLoader(cfg.ConfigPath)
	pollCfg, err := loader.Load()
	if err != nil {
		slog.Error("poll configuration check failed", "path", cfg.ConfigPath, "error", err)
		os.Exit(1)
	}
	slog.Info("Poll configuration loaded", "polls", len(pollCfg.Polls), "active", pollCfg.Active)

	// Make sure the vote data directory is usable
	if err := os.MkdirAll(cfg.DataDir, 0o755); err != nil {
		slog.Error("data directory creation failed", "dir", cfg.DataDir, "error", err)
		os.Exit(1)
	}

	// Create router
	mux := router.NewRouter(cfg)

	// Create server
	server := http.Server{
		Handler: mux,
		Addr:    ":" + strconv.Itoa(cfg.Port),
	}

	// signal.Notify requires the channel to be buffered
	ctrlc := make(chan os.Signal, 1)
	signal.Notify(ctrlc, os.Interrupt, syscall.SIGTERM)
	go func() {
		// Wait for Ctrl-C signal
		<-ctrlc
		server.Close()
	}()

	// Start server
	slog.Info("Listening", "port", cfg.Port)
	err = server.ListenAndServe()
	if err != nil && err != http.ErrServerClosed {
		slog.Error("Server closed", "error", err)
	} else {
		slog.Info("Server closed", "error", err)
	}
}
