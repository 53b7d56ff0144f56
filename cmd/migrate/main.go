// Command migrate applies the schema to the configured database.
package main

import (
	"log"

	"alcove/internal/config"
	"alcove/internal/database"
)

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	db, err := database.Connect(cfg)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	// Connect only automigrates outside production; running the
	// migrator is the explicit opt-in for production schemas.
	if err := db.AutoMigrate(database.PersistentModels()...); err != nil {
		log.Fatalf("Migration failed: %v", err)
	}

	log.Println("Schema migration complete")
}
