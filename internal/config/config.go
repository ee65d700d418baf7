package config

import (
	"fmt"
	"log"
	"os"
	"time"

	"github.com/joho/godotenv"
)

type AppConfig struct {
	// WeatherAPIKey authenticates against WeatherAPI.com.
	WeatherAPIKey string

	// DefaultLocation is the query loaded at startup.
	DefaultLocation string

	// HTTPTimeout bounds every outbound weather call.
	HTTPTimeout time.Duration

	// GeoTimeout bounds a single position resolution.
	GeoTimeout time.Duration

	// Geocoder settings for the address-based position source. Without
	// an API key the "use my location" action reports permission denied.
	GeocoderAPIKey string
	GeoCity        string
	GeoCountry     string

	// Saved-location persistence: sqlite path wins over the JSON file
	// path; with neither the list lives in memory only.
	SavedLocationsDB   string
	SavedLocationsPath string

	// RefreshInterval controls the periodic re-fetch of the displayed
	// location. Zero disables it.
	RefreshInterval time.Duration

	Port string
}

// Load reads configuration from environment with sensible defaults.
func Load() (*AppConfig, error) {
	if err := godotenv.Load(); err != nil {
		log.Printf("INFO: No .env file found or error loading it: %v", err)
	}
	cfg := &AppConfig{}

	cfg.WeatherAPIKey = os.Getenv("WEATHERAPI_API_KEY")
	cfg.DefaultLocation = getenvDefault("DEFAULT_LOCATION", "Colombo")

	httpTimeout, err := parseDuration("HTTP_TIMEOUT", "10s")
	if err != nil {
		return nil, err
	}
	cfg.HTTPTimeout = httpTimeout

	geoTimeout, err := parseDuration("GEO_TIMEOUT", "10s")
	if err != nil {
		return nil, err
	}
	cfg.GeoTimeout = geoTimeout

	cfg.GeocoderAPIKey = os.Getenv("GEOCODER_API_KEY")
	cfg.GeoCity = os.Getenv("GEO_CITY")
	cfg.GeoCountry = os.Getenv("GEO_COUNTRY")

	cfg.SavedLocationsDB = os.Getenv("SAVED_LOCATIONS_DB")
	cfg.SavedLocationsPath = getenvDefault("SAVED_LOCATIONS_PATH", "saved_locations.json")

	refreshInterval, err := parseDuration("REFRESH_INTERVAL", "15m")
	if err != nil {
		return nil, err
	}
	cfg.RefreshInterval = refreshInterval

	cfg.Port = getenvDefault("PORT", "8080")

	return cfg, nil
}

func parseDuration(key, def string) (time.Duration, error) {
	v := getenvDefault(key, def)
	d, err := time.ParseDuration(v)
	if err != nil {
		return 0, fmt.Errorf("invalid %s: %w", key, err)
	}
	return d, nil
}

func getenvDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
