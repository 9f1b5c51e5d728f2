package main

import (
	"context"
	"errors"
	"io/fs"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"
	"github.com/labstack/gommon/log"

	"driverapp/cmd"
)

func main() {
	loadDotEnv()
	config := cmd.ConfigFromEnv(os.LookupEnv)

	level, err := cmd.ParseLogLevel(config.LogLevel)
	if err != nil {
		log.Fatalf("invalid configuration: %v", err)
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	app, err := cmd.NewCompositionRoot(ctx, config, logger)
	if err != nil {
		log.Fatalf("starting driver app: %v", err)
	}
	defer app.Close()

	shell, err := app.CreateShell(os.Stdout)
	if err != nil {
		log.Fatalf("starting driver app: %v", err)
	}
	if err := shell.Run(ctx, os.Stdin); err != nil && !errors.Is(err, context.Canceled) {
		logger.Error("shell stopped", "error", err)
	}
}

// loadDotEnv loads .env from the working directory. A missing file is fine.
func loadDotEnv() {
	if err := godotenv.Load(".env"); err != nil && !errors.Is(err, fs.ErrNotExist) {
		log.Fatalf("Error loading .env file: %v", err)
	}
}
