//go:build ignore

package main

import (
	"fmt"
	"log"
	"os"

	"github.com/joho/godotenv"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// Wipes all board data (tasks, activities, the project row) while keeping
// the user roster. Run with: go run scripts/clear_board_data.go
func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("Warning: .env file not found, using environment variables")
	}

	dsn := fmt.Sprintf("host=%s user=%s password=%s dbname=%s port=%s sslmode=%s TimeZone=UTC",
		getEnv("DB_HOST", "localhost"),
		getEnv("DB_USER", "postgres"),
		getEnv("DB_PASSWORD", ""),
		getEnv("DB_NAME", "kanban"),
		getEnv("DB_PORT", "5432"),
		getEnv("DB_SSL_MODE", "disable"),
	)

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	fmt.Println("Connected to database")

	for _, table := range []string{"activities", "tasks", "projects"} {
		result := db.Exec("DELETE FROM " + table)
		if result.Error != nil {
			log.Fatalf("Failed to clear %s: %v", table, result.Error)
		}
		fmt.Printf("Cleared %s (%d rows)\n", table, result.RowsAffected)
	}

	fmt.Println("Done! Board data cleared, users kept.")
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}
