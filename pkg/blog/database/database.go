package database

import (
	"fmt"

	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/folksdev/blogapi/pkg/blog/config"
)

var DB *gorm.DB

// Connect initializes the database connection. SQLite is the default for
// local development and tests; set DB_DRIVER=postgres for production.
func Connect(cfg *config.Config) error {
	var dialector gorm.Dialector
	switch cfg.DBDriver {
	case "postgres":
		dialector = postgres.Open(cfg.DatabaseURL())
	case "sqlite":
		dialector = sqlite.Open(cfg.SQLitePath)
	default:
		return fmt.Errorf("unsupported database driver: %q", cfg.DBDriver)
	}

	// TranslateError turns driver-specific unique violations into
	// gorm.ErrDuplicatedKey so the services can map races to 409.
	var err error
	DB, err = gorm.Open(dialector, &gorm.Config{TranslateError: true})
	if err != nil {
		return err
	}
	return nil
}

// GetDB returns the database instance.
func GetDB() *gorm.DB {
	return DB
}
