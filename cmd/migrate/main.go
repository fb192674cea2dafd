package main

import (
	"go.uber.org/zap"

	"github.com/streamvault/catalog/internal/config"
	gormpersistence "github.com/streamvault/catalog/internal/infrastructure/persistence/gorm"
	"github.com/streamvault/catalog/pkg/logger"
)

// Applies the catalog schema and exits. NewDB migrates on startup too,
// so this only matters when the schema must be rolled out ahead of a
// deploy.
func main() {
	cfg := config.Load()

	log := logger.New()
	defer log.Sync()

	db, cleanup, err := gormpersistence.NewDB(cfg)
	if err != nil {
		log.Fatal("failed to connect to database", zap.Error(err))
	}
	defer cleanup()

	if err := gormpersistence.AutoMigrate(db); err != nil {
		log.Fatal("failed to run migrations", zap.Error(err))
	}

	log.Info("migrations completed", zap.String("database", cfg.Database.Database))
}
