package config

import (
	"context"
	"log"
	"os"
	"path/filepath"
	"time"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/alcinadadosti-worspace/AtivosEMultimarcas/models"
)

// CatalogDB is the read-only product catalog (products + IAF tables).
// It is populated by cmd/seed and only queried at import time to build
// the in-memory SKU index.
var CatalogDB *gorm.DB

// DatabasePath resolves the SQLite file location.
func DatabasePath() string {
	return getEnv("DATABASE_PATH", filepath.Join("data", "products.db"))
}

func InitDB() {
	dbPath := DatabasePath()
	_ = os.MkdirAll(filepath.Dir(dbPath), 0o755)

	gormLogger := logger.Default.LogMode(logger.Warn)
	if os.Getenv("APP_ENV") == "production" {
		gormLogger = logger.Default.LogMode(logger.Silent)
	}

	var err error
	CatalogDB, err = gorm.Open(sqlite.Open(dbPath), &gorm.Config{
		Logger:  gormLogger,
		NowFunc: func() time.Time { return time.Now().UTC() },
	})
	if err != nil {
		log.Fatalf("[config.db] failed to open catalog database at %s: %v", dbPath, err)
	}

	if err := CatalogDB.AutoMigrate(
		&models.Product{},
		&models.IAFHairProduct{},
		&models.IAFMakeupProduct{},
	); err != nil {
		log.Fatalf("[config.db] migration failed: %v", err)
	}

	var count int64
	if err := CatalogDB.Model(&models.Product{}).Count(&count).Error; err == nil {
		if count == 0 {
			log.Printf("[config.db] catalog is empty, run cmd/seed to import the product spreadsheets")
		} else {
			log.Printf("[config.db] catalog loaded: %d products (%s)", count, dbPath)
		}
	}
}

func CloseDB() {
	if CatalogDB == nil {
		return
	}
	if sqlDB, err := CatalogDB.DB(); err == nil {
		sqlDB.Close()
		log.Printf("[config.db] catalog database closed")
	}
}

// WithTimeout returns a context bounded to 10s for catalog queries.
func WithTimeout() (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), 10*time.Second)
}

func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}
