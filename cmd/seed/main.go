package main

import (
	"context"
	"os"

	"mindfulme-be/internal/pkg/logger"
	"mindfulme-be/internal/repository/unitofwork"
	"mindfulme-be/internal/service"
	"mindfulme-be/pkg/database"

	"github.com/fatih/color"
	"github.com/joho/godotenv"
)

// Loads the demo fixtures into Postgres. The in-memory driver seeds itself on start.
func main() {
	if err := godotenv.Load(); err != nil {
		color.Yellow("Info: No .env file found, using system env")
	}

	dsn := os.Getenv("DB_CONNECTION_STRING")
	if dsn == "" {
		color.Red("Error: DB_CONNECTION_STRING is not set")
		os.Exit(1)
	}

	db, err := database.NewGormDBFromDSN(dsn, false)
	if err != nil {
		color.Red("Error: Failed to connect to database: %v", err)
		os.Exit(1)
	}

	color.Cyan("Seeding MindfulMe fixtures...")

	seeder := service.NewSeedService(unitofwork.NewRepositoryFactory(db), logger.NewNopLogger(), nil)
	seeded, err := seeder.Seed(context.Background())
	if err != nil {
		color.Red("Seeding failed: %v", err)
		os.Exit(1)
	}

	if !seeded {
		color.Yellow("Users already exist, skipping fixtures")
		return
	}
	color.Green("Fixtures loaded: user alex / password123, 3 meditations, 4 sounds, 2 posts, 7 days of mood and sleep")
}
