package config

import (
	"os"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

var DB *gorm.DB

func ConnectDB() {
	dsn := os.Getenv("DB_URL")

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		panic("Failed to connect database")
	}

	DB = db
}

// SetDB swaps the active database handle. Tests use this to point the
// controllers at an in-memory sqlite instance.
func SetDB(db *gorm.DB) {
	DB = db
}
