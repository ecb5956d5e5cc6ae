package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/akeren/vannie-landing/config"
	"github.com/akeren/vannie-landing/internal/log"
	"github.com/akeren/vannie-landing/pkg/migrations"
	"github.com/akeren/vannie-landing/pkg/utils"
)

func main() {
	logger := log.NewLoggerWithJSONOutput()

	config.InitializeEnvFile(logger) // Load envs early for CLI consistency

	args := os.Args[1:]
	if len(args) == 0 {
		printUsage()
		os.Exit(1)
	}

	switch args[0] {
	case "migrate":
		if err := runMigrations(logger); err != nil {
			logger.Error("Database migration failed", "error", err.Error())
			os.Exit(1)
		}

		logger.Info("Database migrations completed")
		return

	case "help", "-h", "--help":
		printUsage()
		return

	default:
		fmt.Fprintf(os.Stderr, "unknown command: %s\n", args[0])
		printUsage()
		os.Exit(1)
	}
}

func runMigrations(logger *log.Logger) error {
	if !config.IsDatabaseConfigured() {
		return fmt.Errorf("set APP_DATABASE_URL or POSTGRES_HOST to run migrations")
	}

	db, err := config.NewDatabase(logger, nil)
	if err != nil {
		return fmt.Errorf("connect: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return fmt.Errorf("get SQL DB instance: %w", err)
	}
	defer func() {
		if err := sqlDB.Close(); err != nil {
			logger.Warn("Failed to close SQL DB after migration", "error", err.Error())
		}
	}()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
	defer cancel()

	return migrations.Up(ctx, sqlDB, migrations.Config{
		Dir:             utils.GetEnvTrimmed("MIGRATIONS_DIR"),
		MigrationsTable: utils.GetEnvTrimmed("MIGRATIONS_TABLE"),
		Logger:          logger,
	})
}

func printUsage() {
	fmt.Println("Usage: cli <command>")
	fmt.Println()
	fmt.Println("Commands:")
	fmt.Println("  migrate  Apply the waitlist schema migrations and exit")
	fmt.Println("           (embedded by default; set MIGRATIONS_DIR to read from disk)")
	fmt.Println("  help     Show this message")
}
