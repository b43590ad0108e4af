package config

import (
	"os"
	"path/filepath"
)

// Redis Config
const REDIS_DB_ADDRESS = "redis:6379"
const REDIS_DB_PASSWORD = ""
const REDIS_DB = 0

// Booking endpoint config
const BOOKING_BASE_URL = "https://www.booking.com"
const BOOKING_USER_AGENT = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/92.0.4515.131 Safari/537.36"

// Price refresher config
const PRICE_REFRESHER_SCHEDULE_MINUTES = 60
const PRICE_REFRESHER_RANGE_DAYS = 7

// HTTP server config
const SERVER_ADDRESS = ":8080"

// Resources file paths
const RESOURCES_PATH_PREFIX = "resources"
const HOSTELS_CATALOG_RESOURCE = "hostels_predefined.json"
const HOTEL_PAGE_RESOURCE = "hotel_page.html"
const AVAILABILITY_CALENDAR_RESPONSE_RESOURCE = "availability_calendar_response.json"

// Env reads an environment variable with a default, so a .env file loaded via
// godotenv can override any of the constants above.
func Env(name, fallback string) string {
	if v := os.Getenv(name); v != "" {
		return v
	}
	return fallback
}

func RedisAddress() string {
	return Env("REDIS_ADDR", REDIS_DB_ADDRESS)
}

func RedisPassword() string {
	return Env("REDIS_PASSWORD", REDIS_DB_PASSWORD)
}

func ServerAddress() string {
	return Env("SERVER_ADDR", SERVER_ADDRESS)
}

func AppEnv() string {
	return Env("APP_ENV", "prod")
}

// BaseDir returns the absolute path of the project root directory
func BaseDir() string {
	// Check if PROJECT_ROOT is set
	if root := os.Getenv("PROJECT_ROOT"); root != "" {
		return root
	}

	// Default to the current working directory
	wd, err := os.Getwd()
	if err != nil {
		panic("Unable to determine working directory: " + err.Error())
	}

	return wd
}

func GetResourcePath(resource_file string) string {
	return filepath.Join(BaseDir(), RESOURCES_PATH_PREFIX, resource_file)
}
