package main

import (
	"context"
	"flag"
	"os"

	"go-sweldo/internal/migrate"
	"go-sweldo/internal/store"

	"github.com/joho/godotenv"
	"go.uber.org/zap"
)

func main() {
	_ = godotenv.Load()
	logger, err := zap.NewDevelopment()
	if err != nil {
		panic(err)
	}
	defer logger.Sync()
	zap.ReplaceGlobals(logger)

	employeeID := flag.String("employee", "", "migrate a single employee directory")
	cleanup := flag.Bool("cleanup", false, "remove legacy CSVs whose JSON target exists (requires -employee)")
	flag.Parse()

	dataDir := os.Getenv("DATA_DIR")
	if dataDir == "" {
		dataDir = "data"
	}

	migrator := migrate.NewMigrator(store.NewFileStore(dataDir))
	ctx := context.Background()

	var stats migrate.Stats
	if *employeeID != "" {
		stats, err = migrator.MigrateEmployee(ctx, *employeeID)
	} else {
		stats, err = migrator.MigrateAll(ctx)
	}
	if err != nil {
		logger.Fatal("migration failed", zap.Error(err))
	}

	logger.Info("migration finished",
		zap.Int("migrated", stats.Migrated),
		zap.Int("skipped", stats.Skipped),
		zap.Int("failed", stats.Failed),
	)

	if *cleanup {
		if *employeeID == "" {
			logger.Fatal("cleanup requires -employee")
		}
		removed, err := migrator.CleanupCSV(ctx, *employeeID)
		if err != nil {
			logger.Fatal("cleanup failed", zap.Error(err))
		}
		logger.Info("cleanup finished", zap.Int("removed", removed))
	}
}
