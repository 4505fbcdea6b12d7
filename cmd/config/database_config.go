package config

import (
	"foodshare/internal/utils"
	"fmt"
	"log"
	"os"
	"path/filepath"

	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

const defaultSQLitePath = "data/foodshare.db"

// ConnectDB opens the configured store: postgres when DB_HOST is set,
// otherwise the embedded sqlite file.
func ConnectDB() (*gorm.DB, error) {
	if utils.GetConfig("DB_HOST") != "" {
		dsn := fmt.Sprintf(
			"host=%s user=%s password=%s dbname=%s port=%s sslmode=disable",
			utils.GetConfig("DB_HOST"),
			utils.GetConfig("DB_USER"),
			utils.GetConfig("DB_PASSWORD"),
			utils.GetConfig("DB_NAME"),
			utils.GetConfig("DB_PORT"),
		)
		db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
		if err != nil {
			log.Printf("Database connection failed: %v", err)
			return nil, err
		}
		return db, nil
	}

	dbPath := utils.GetConfig("SQLITE_PATH")
	if dbPath == "" {
		dbPath = defaultSQLitePath
	}
	if err := os.MkdirAll(filepath.Dir(dbPath), 0755); err != nil {
		return nil, err
	}

	db, err := gorm.Open(sqlite.Open(dbPath), &gorm.Config{})
	if err != nil {
		log.Printf("Database connection failed: %v", err)
		return nil, err
	}
	return db, nil
}
