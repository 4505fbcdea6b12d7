package main

import (
	"log"

	"foodshare/cmd/config"
	migration "foodshare/cmd/database/migrate"
	"foodshare/internal/utils"
)

func main() {
	utils.LoadConfig()

	db, err := config.ConnectDB()
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	if err := migration.Migrate(db); err != nil {
		log.Fatalf("Failed to migrate database: %v", err)
	}

	app, err := config.NewApp(db)
	if err != nil {
		log.Fatalf("Failed to set up application: %v", err)
	}

	port := utils.GetConfig("SERVER_PORT")
	if port == "" {
		port = "3000"
	}
	if err := app.Listen(":" + port); err != nil {
		log.Fatalf("Failed to run server: %v", err)
	}
}
