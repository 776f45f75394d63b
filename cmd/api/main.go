package main

import (
	"fmt"
	"log"
	"time"

	"prison-visitor-backend/config"
	"prison-visitor-backend/internal/repository"
	"prison-visitor-backend/internal/routes"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/joho/godotenv"
)

func main() {
	fmt.Println("1. Starting up... loading .env...")
	if err := godotenv.Load(); err != nil {
		fmt.Println("Warning: no .env file found, using system environment variables.")
	}

	fmt.Println("2. Connecting to database...")
	config.ConnectDB()
	fmt.Println("3. Database connected! Setting up routes...")

	app := fiber.New()

	// Global middleware
	app.Use(cors.New())   // The dashboard runs on a different origin
	app.Use(logger.New()) // Request logs in the terminal

	routes.SetupAuthRoutes(app, config.DB)
	routes.SetupVisitorRoutes(app, config.DB)
	routes.SetupGuestRoutes(app, config.DB)
	routes.SetupInmateRoutes(app, config.DB)
	routes.SetupVisitRoutes(app, config.DB)
	routes.SetupBanRoutes(app, config.DB)
	routes.SetupDashboardRoutes(app, config.DB)

	// Optional expiry sweep: persists expired status for overdue timers.
	// Reads never depend on it, so 0 (disabled) is a valid setting.
	if interval := config.GetEnvAsInt("SWEEP_INTERVAL_MINUTES", 5); interval > 0 {
		visitLogs := repository.NewVisitLogRepository(config.DB)
		go func() {
			ticker := time.NewTicker(time.Duration(interval) * time.Minute)
			defer ticker.Stop()
			for range ticker.C {
				if swept, err := visitLogs.ExpireOverdue(time.Now()); err != nil {
					log.Printf("expiry sweep failed: %v", err)
				} else if swept > 0 {
					log.Printf("expiry sweep: %d visit log(s) marked expired", swept)
				}
			}
		}()
	}

	port := config.GetEnv("PORT", "3000")
	fmt.Println("4. Server ready! Listening on port :" + port)
	app.Listen(":" + port)
}
