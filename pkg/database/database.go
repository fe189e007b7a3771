package database

import (
	"log"

	"github.com/autorental/car-rental-api/config"
	"github.com/autorental/car-rental-api/internal/models"
	"github.com/glebarez/sqlite"
	"gorm.io/driver/mysql"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// New opens the configured relational backend and migrates the four tables.
// All drivers share one schema; DB_DRIVER is the only switch.
func New(cfg *config.Config) *gorm.DB {
	db, err := gorm.Open(open(cfg), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Warn),
	})
	if err != nil {
		log.Fatalf("failed to connect to database (%s): %v", cfg.DBDriver, err)
	}

	if err := Migrate(db); err != nil {
		log.Fatalf("failed to auto-migrate: %v", err)
	}

	return db
}

func open(cfg *config.Config) gorm.Dialector {
	switch cfg.DBDriver {
	case "mysql":
		return mysql.Open(cfg.DSN())
	case "sqlite":
		return sqlite.Open(cfg.DSN())
	default:
		return postgres.Open(cfg.DSN())
	}
}

func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&models.AdminUser{},
		&models.Car{},
		&models.Booking{},
		&models.ContactMessage{},
	)
}
