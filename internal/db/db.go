package db

import (
	"fmt"
	"log"

	"lapor-jalan/internal/config"
	"lapor-jalan/internal/report"
	"lapor-jalan/internal/user"

	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

var DB *gorm.DB

// Init opens the configured backend (sqlite or postgres) and migrates the
// users and reports tables.
func Init(cfg *config.Config) error {
	var dial gorm.Dialector
	switch cfg.Database.Driver {
	case "postgres":
		dial = postgres.Open(cfg.Database.DSN)
	case "sqlite", "":
		dial = sqlite.Open(cfg.Database.DSN)
	default:
		return fmt.Errorf("unsupported database driver %q", cfg.Database.Driver)
	}
	gdb, err := gorm.Open(dial, &gorm.Config{})
	if err != nil {
		return err
	}

	if err := gdb.AutoMigrate(&user.User{}, &report.Report{}); err != nil {
		return err
	}

	DB = gdb
	log.Printf("[DB] connected and migrated (%s)", cfg.Database.Driver)
	return nil
}
