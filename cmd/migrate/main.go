package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"time"

	"github.com/healthmoney/healthmoney/internal/config"
	"github.com/healthmoney/healthmoney/internal/logger"
	"github.com/healthmoney/healthmoney/internal/postgres"
	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"
)

func main() {
	// Parse command line flags
	dryRun := flag.Bool("dry-run", false, "Print migration SQL without executing it")
	dir := flag.String("dir", "migrations", "Directory containing migration SQL files")
	flag.Parse()

	// Load configuration
	cfg, err := config.NewConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// Initialize logger
	logger, err := logger.NewLogger(cfg)
	if err != nil {
		log.Fatalf("Failed to create logger: %v", err)
	}

	// Check if we're in dry-run mode
	if *dryRun {
		logger.Info("Dry run mode - printing migration SQL without executing")
		files, err := postgres.MigrationFiles(*dir)
		if err != nil {
			logger.Fatalw("Failed to read migrations directory", "dir", *dir, "error", err)
		}
		for _, f := range files {
			sqlBytes, err := os.ReadFile(f)
			if err != nil {
				logger.Fatalw("Failed to read migration file", "file", f, "error", err)
			}
			fmt.Printf("-- %s\n%s\n", filepath.Base(f), sqlBytes)
		}
		return
	}

	dsn := cfg.Postgres.GetDSN()
	logger.Infow("Connecting to database", "host", cfg.Postgres.Host)

	db, err := sqlx.Connect("postgres", dsn)
	if err != nil {
		logger.Fatalw("Failed to connect to postgres", "error", err)
	}
	defer db.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	// Run the actual migration
	logger.Info("Running database migrations...")
	if err := postgres.ApplyMigrations(ctx, db, *dir); err != nil {
		logger.Fatalw("Failed to create schema resources", "error", err)
	}
	logger.Info("Migration completed successfully")

	fmt.Println("Migration process completed")
}
