package main

import (
	"log/slog"
	"os"

	"cardbank/internal/cli"
	"cardbank/internal/config"
	"cardbank/internal/repository"
	"cardbank/internal/service"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		slog.Error("Failed to load configuration", "error", err)
		os.Exit(1)
	}

	// Initialize logger. Stdout is the user interface, so logs go to stderr.
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: cfg.SlogLevel(),
	}))
	slog.SetDefault(logger)

	db, err := repository.Open(cfg.DBPath)
	if err != nil {
		logger.Error("Failed to open card store", "path", cfg.DBPath, "error", err)
		os.Exit(1)
	}
	defer db.Close()

	if err := repository.InitSchema(db); err != nil {
		logger.Error("Failed to initialize card store schema", "error", err)
		os.Exit(1)
	}

	store := repository.NewStore(db, logger)

	issuer := service.NewIssuer(store.Cards(), logger)
	auth := service.NewAuthService(store.Cards(), logger)
	session := service.NewSessionService(store.Cards(), store.Transfers(), logger)

	app := cli.New(issuer, auth, session, os.Stdin, os.Stdout, logger)
	if err := app.Run(); err != nil {
		logger.Error("Storage failure, terminating", "error", err)
		os.Exit(1)
	}
}
