package main

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/labstack/gommon/log"

	"driverapp/internal/adapters/out/postgres"
	"driverapp/internal/devbackend"
)

func main() {
	loadDotEnv()
	config := devbackend.ConfigFromEnv(os.LookupEnv)
	if err := config.Validate(); err != nil {
		log.Fatalf("invalid configuration: %v", err)
	}

	logger := slog.New(slog.NewJSONHandler(os.Stderr, nil)).With("service", "devbackend")

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	gormDB, err := postgres.Open(ctx, config.DSN(), config.LogLevel == "debug")
	if err != nil {
		log.Fatalf("%v", err)
	}
	if err = postgres.Migrate(gormDB); err != nil {
		log.Fatalf("%v", err)
	}

	app, err := devbackend.NewCompositionRoot(config, gormDB, logger)
	if err != nil {
		log.Fatalf("starting backend: %v", err)
	}
	defer func() { _ = app.Close() }()

	if err = app.EnsureDemoAccount(ctx); err != nil {
		log.Fatalf("creating demo account: %v", err)
	}

	jobManager := app.CreateJobManager()
	if err = jobManager.StartAll(); err != nil {
		log.Fatalf("Failed to start jobs: %v", err)
	}
	defer jobManager.StopAll()

	startWebServer(ctx, app, config.HTTPPort)
}

// loadDotEnv loads .env from the working directory. A missing file is fine.
func loadDotEnv() {
	if err := godotenv.Load(".env"); err != nil && !errors.Is(err, fs.ErrNotExist) {
		log.Fatalf("Error loading .env file: %v", err)
	}
}

func startWebServer(ctx context.Context, app *devbackend.CompositionRoot, port string) {
	e, err := app.CreateEcho()
	if err != nil {
		log.Fatalf("building http server: %v", err)
	}

	go func() {
		if err := e.Start(fmt.Sprintf("0.0.0.0:%s", port)); err != nil && !errors.Is(err, http.ErrServerClosed) {
			e.Logger.Fatal(err)
		}
	}()

	<-ctx.Done()
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		e.Logger.Error(err)
	}
}
