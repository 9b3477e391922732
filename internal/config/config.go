package config

import (
	"errors"
	"time"

	"github.com/spf13/viper"
)

// Config holds all service settings, populated from environment variables.
type Config struct {
	HTTPAddr        string
	LogLevel        string
	LogFormat       string
	ShutdownTimeout time.Duration

	CoordinatesPath  string
	DistrictsPath    string
	DatasetTTL       time.Duration
	CatalogCacheSize int

	// Government credential pair. Carried through from the environment
	// but not verified at login; see the session package for the stated
	// weak-authentication contract.
	GovtUsername string
	GovtPassword string

	// Sidebar capacity defaults. Pass-through configuration: no core
	// computation consumes them.
	TotalFoodUnits    int
	TotalMedicalKits  int
	TotalShelterUnits int
}

// Load reads configuration from environment variables, applying defaults
// where unset.
func Load() (*Config, error) {
	v := viper.New()
	v.AutomaticEnv()
	v.AllowEmptyEnv(true)

	v.SetDefault("HTTP_ADDR", ":8080")
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("LOG_FORMAT", "json")
	v.SetDefault("SHUTDOWN_TIMEOUT", "10s")
	v.SetDefault("COORDINATES_PATH", "data/district_coordinates.csv")
	v.SetDefault("DISTRICTS_PATH", "data/districts.csv")
	v.SetDefault("DATASET_TTL", "30m")
	v.SetDefault("CATALOG_CACHE_SIZE", 64)
	v.SetDefault("GOVT_USERNAME", "govt_user")
	v.SetDefault("GOVT_PASSWORD", "secure123")
	v.SetDefault("TOTAL_FOOD_UNITS", 5000)
	v.SetDefault("TOTAL_MEDICAL_KITS", 1000)
	v.SetDefault("TOTAL_SHELTER_UNITS", 500)

	cfg := &Config{
		HTTPAddr:        v.GetString("HTTP_ADDR"),
		LogLevel:        v.GetString("LOG_LEVEL"),
		LogFormat:       v.GetString("LOG_FORMAT"),
		ShutdownTimeout: v.GetDuration("SHUTDOWN_TIMEOUT"),

		CoordinatesPath:  v.GetString("COORDINATES_PATH"),
		DistrictsPath:    v.GetString("DISTRICTS_PATH"),
		DatasetTTL:       v.GetDuration("DATASET_TTL"),
		CatalogCacheSize: v.GetInt("CATALOG_CACHE_SIZE"),

		GovtUsername: v.GetString("GOVT_USERNAME"),
		GovtPassword: v.GetString("GOVT_PASSWORD"),

		TotalFoodUnits:    v.GetInt("TOTAL_FOOD_UNITS"),
		TotalMedicalKits:  v.GetInt("TOTAL_MEDICAL_KITS"),
		TotalShelterUnits: v.GetInt("TOTAL_SHELTER_UNITS"),
	}

	if cfg.HTTPAddr == "" {
		return nil, errors.New("HTTP_ADDR is required")
	}
	if cfg.CoordinatesPath == "" {
		return nil, errors.New("COORDINATES_PATH is required")
	}
	if cfg.DistrictsPath == "" {
		return nil, errors.New("DISTRICTS_PATH is required")
	}
	if cfg.ShutdownTimeout <= 0 {
		return nil, errors.New("invalid SHUTDOWN_TIMEOUT")
	}
	if cfg.DatasetTTL < 0 {
		return nil, errors.New("invalid DATASET_TTL")
	}
	if cfg.CatalogCacheSize <= 0 {
		return nil, errors.New("invalid CATALOG_CACHE_SIZE")
	}

	return cfg, nil
}
