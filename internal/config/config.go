package config

import (
	"log"
	"os"

	"github.com/joho/godotenv"
)

// LoadEnv loads variables from a .env file when one is present
func LoadEnv() {
	if err := godotenv.Load(); err != nil {
		log.Println(".env file not found, using environment defaults")
	}
}

// GetEnv returns the value of the named variable, or fallback when unset
func GetEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}
