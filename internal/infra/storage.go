package infra

import (
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"log"
	"os"
)

// InitStorage opens the snapshot database: Postgres when DATABASE_URL is set,
// otherwise a local sqlite file. The device-local file is the normal case;
// Postgres serves shared test environments.
func InitStorage() *gorm.DB {

	dsn := os.Getenv("DATABASE_URL")

	var db *gorm.DB
	var err error

	if dsn != "" {
		db, err = gorm.Open(postgres.Open(dsn), &gorm.Config{})
	} else {
		file := os.Getenv("CARELINK_DB_FILE")
		if file == "" {
			file = "carelink.db"
		}
		db, err = gorm.Open(sqlite.Open(file), &gorm.Config{})
	}

	if err != nil {
		log.Printf("Error connecting to storage: %v", err)
		log.Fatal("Error connecting to storage")
	}

	return db
}

func CloseStorage(db *gorm.DB) {
	sqlDB, err := db.DB()
	if err != nil {
		log.Printf("Error getting database instance: %v", err)
		return
	}

	if err := sqlDB.Close(); err != nil {
		log.Printf("Error closing storage connection: %v", err)
	} else {
		log.Println("Storage connection closed successfully")
	}
}
