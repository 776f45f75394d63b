package main

import (
	"fmt"
	"log"

	"prison-visitor-backend/config"
	"prison-visitor-backend/internal/database"

	"github.com/joho/godotenv"
)

func main() {
	fmt.Println("Starting database seeding...")

	// Standalone script, so load .env here too
	if err := godotenv.Load(); err != nil {
		log.Println("Warning: no .env file found, using system environment variables.")
	}

	config.ConnectDB()

	fmt.Println("Running SeedAll...")
	database.SeedAll(config.DB)

	fmt.Println("Seeding finished!")
}
