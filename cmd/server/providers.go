// File: cmd/server/providers.go
package main

import (
	"log"

	"sabuconnect_backend/internal/config"
	"sabuconnect_backend/internal/filestorage"
	"sabuconnect_backend/internal/platform/database"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// provideDB opens the database connection and keeps the schema current.
func provideDB(cfg *config.Config) (*gorm.DB, error) {
	db, err := database.NewGORM(cfg)
	if err != nil {
		return nil, err
	}
	if err := database.AutoMigrateAll(db); err != nil {
		return nil, err
	}
	return db, nil
}

func provideFileStorage(cfg *config.Config, logger *zap.Logger) (*filestorage.Service, error) {
	return filestorage.NewService(cfg.UploadStoragePath, cfg.UploadBaseURL, logger.Named("FileStorage"))
}

func provideCleanup(logger *zap.Logger, db *gorm.DB) func() {
	return func() {
		logger.Info("Executing cleanup tasks...")
		database.CloseGORMDB(db)
		if err := logger.Sync(); err != nil {
			log.Printf("ERROR: Failed to sync logger during cleanup: %v", err)
		}
	}
}
