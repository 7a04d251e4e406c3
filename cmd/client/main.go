package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"

	"github.com/joho/godotenv"
	"github.com/jonboulle/clockwork"

	"github.com/dchistyakov/tipoff/internal/client/api"
	"github.com/dchistyakov/tipoff/internal/client/cli"
	"github.com/dchistyakov/tipoff/internal/client/iocli"
	"github.com/dchistyakov/tipoff/internal/client/session"
	"github.com/dchistyakov/tipoff/internal/client/storage/boltdb"
)

var (
	// Version information set via ldflags during build
	Version   = "dev"
	BuildDate = "unknown"
	GitCommit = "unknown"
)

func main() {
	// .env необязателен: флаги и переменные окружения его перекрывают
	_ = godotenv.Load()

	showVersion := flag.Bool("version", false, "Show version information")
	serverURL := flag.String("server", envOr("TIPOFF_SERVER_URL", "http://localhost:8000"), "Server URL")
	dbPath := flag.String("db", envOr("TIPOFF_DB_PATH", "tipoff-client.db"), "Path to local database")

	flag.Parse()

	if *showVersion {
		printVersion()
		os.Exit(0)
	}

	stdio := iocli.NewStdio()

	args := flag.Args()
	if len(args) == 0 {
		usageOnly(stdio)
		os.Exit(1)
	}
	command := args[0]

	ctx := context.Background()

	boltStorage, err := boltdb.New(ctx, *dbPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to open database: %v\n", err)
		os.Exit(1)
	}
	defer func() {
		if err := boltStorage.Close(); err != nil {
			slog.Error("failed to close database", "error", err)
		}
	}()

	apiClient := api.NewClient(*serverURL)

	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.LevelWarn,
	}))
	sessionService := session.NewService(apiClient, clockwork.NewRealClock(), logger)
	defer sessionService.StopPolling()

	app := cli.New(apiClient, sessionService, boltStorage, stdio)
	if err := app.Run(ctx, command, args[1:]); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func envOr(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

func usageOnly(io iocli.IO) {
	cli.New(nil, nil, nil, io).PrintUsage()
}

func printVersion() {
	fmt.Printf("Tipoff Client\n")
	fmt.Printf("Version:    %s\n", Version)
	fmt.Printf("Build Date: %s\n", BuildDate)
	fmt.Printf("Git Commit: %s\n", GitCommit)
}
