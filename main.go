package main

import (
	"fmt"
	"log"
	"net/http"
	"os"
	"strconv"
	"strings"

	"github.com/dev-toolbox/color-api/api"
	"github.com/dev-toolbox/color-api/models"
	"github.com/dev-toolbox/color-api/scheduler"
	"github.com/joho/godotenv"
)

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	// Get configuration from environment
	config := api.Config{
		HTTPPort:        getEnv("HTTP_PORT", ":8080"),
		HistorySecret:   getEnv("HISTORY_SECRET", "change-this-history-secret"),
		HistoryDuration: getEnvInt("HISTORY_DURATION", 2592000), // 30 days
		HistorySize:     getEnvInt("HISTORY_SIZE", models.DefaultHistorySize),
		CookieDomain:    getEnv("COOKIE_DOMAIN", ""),
		AllowedOrigins:  getEnvSlice("ALLOWED_ORIGINS", "http://localhost:3000,http://localhost:5173"),
		DevMode:         getEnvBool("DEV_MODE", true),
	}

	// Start scheduler for the featured daily color
	colorScheduler := scheduler.NewScheduler()
	colorScheduler.Start()
	defer colorScheduler.Stop()

	app, err := api.NewApplication(config, colorScheduler)
	if err != nil {
		log.Fatalf("Failed to create application: %v", err)
	}

	// Create and start server
	mux := http.NewServeMux()

	fmt.Println("Color Toolbox API Starting...")
	if err := app.Serve(mux); err != nil {
		log.Fatalf("Server error: %v", err)
	}
}

func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}

func getEnvInt(key string, defaultValue int) int {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	intVal, err := strconv.Atoi(value)
	if err != nil {
		return defaultValue
	}
	return intVal
}

func getEnvBool(key string, defaultValue bool) bool {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	boolVal, err := strconv.ParseBool(value)
	if err != nil {
		return defaultValue
	}
	return boolVal
}

func getEnvSlice(key, defaultValue string) []string {
	value := os.Getenv(key)
	if value == "" {
		value = defaultValue
	}
	return strings.Split(value, ",")
}
