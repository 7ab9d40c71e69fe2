package main

import (
	"database/sql"
	"fmt"
	"os"

	"github.com/joho/godotenv"
	_ "github.com/lib/pq"

	"fyyur/migrations"
	"fyyur/shared/go/logging"
)

func main() {
	if len(os.Args) != 2 || (os.Args[1] != "up" && os.Args[1] != "down") {
		fmt.Fprintln(os.Stderr, "Usage: migrate [up|down]")
		os.Exit(2)
	}

	_ = godotenv.Load("config/local.env")
	logger := logging.New(logging.Config{
		Level:  os.Getenv("LOG_LEVEL"),
		Format: os.Getenv("LOG_FORMAT"),
	})
	logging.SetGlobalLogger(logger)

	db, err := sql.Open("postgres", connectionString())
	if err != nil {
		logger.Fatal(err, "Failed to open database")
	}

	switch os.Args[1] {
	case "up":
		if err := migrations.Up(db); err != nil {
			logger.Fatal(err, "Failed to run migrations")
		}
		logger.Info("Migrations applied successfully")
	case "down":
		if err := migrations.Down(db); err != nil {
			logger.Fatal(err, "Failed to revert migrations")
		}
		logger.Info("Migrations rolled back successfully")
	}
}

// connectionString prefers DATABASE_URL and falls back to the DB_* parts.
func connectionString() string {
	if dsn := os.Getenv("DATABASE_URL"); dsn != "" {
		return dsn
	}

	port := os.Getenv("DB_PORT")
	if port == "" {
		port = "5432"
	}
	sslMode := os.Getenv("DB_SSLMODE")
	if sslMode == "" {
		sslMode = "disable"
	}

	return fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		os.Getenv("DB_HOST"), port, os.Getenv("DB_USER"), os.Getenv("DB_PASSWORD"), os.Getenv("DB_NAME"), sslMode)
}
