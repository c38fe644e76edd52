package config

import (
	"os"

	"github.com/motix/motix/internal/utils"
)

const AppName = "motix-backend"

// Driver names accepted for DB_DRIVER.
const (
	DriverPostgres = "postgres"
	DriverMemory   = "memory"
)

type Config struct {
	AppName string
	AppPort string
	AppURL  string

	// Shared secret required on write requests (X-API-KEY header). Read
	// through the injected Config on every request so an external
	// config-reload mechanism can rotate it between restarts.
	APIKey string

	DBDriver string
	DBURL    string
}

// LoadConfig reads runtime environment vars, failing fast on anything the
// service cannot run without.
func LoadConfig() *Config {
	appPort := os.Getenv("APP_PORT")
	if appPort == "" {
		utils.Logger.Fatal("APP_PORT env var is missing")
	}
	apiKey := os.Getenv("API_KEY")
	if apiKey == "" {
		utils.Logger.Fatal("API_KEY env var is missing")
	}

	appURL := os.Getenv("APP_URL")
	if appURL == "" {
		appURL = "http://localhost:" + appPort
	}

	driver := os.Getenv("DB_DRIVER")
	if driver == "" {
		driver = DriverPostgres
	}
	if driver != DriverPostgres && driver != DriverMemory {
		utils.Logger.Fatalf("Unknown DB_DRIVER %q (want %q or %q)", driver, DriverPostgres, DriverMemory)
	}

	dbURL := os.Getenv("DB_URL")
	if driver == DriverPostgres && dbURL == "" {
		utils.Logger.Fatal("DB_URL env var is missing")
	}

	utils.Logger.Infof("Loaded config for %s (driver=%s)", AppName, driver)

	return &Config{
		AppName:  AppName,
		AppPort:  appPort,
		AppURL:   appURL,
		APIKey:   apiKey,
		DBDriver: driver,
		DBURL:    dbURL,
	}
}
