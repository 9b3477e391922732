package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, ":8080", cfg.HTTPAddr)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, "json", cfg.LogFormat)
	assert.Equal(t, 10*time.Second, cfg.ShutdownTimeout)
	assert.Equal(t, "data/district_coordinates.csv", cfg.CoordinatesPath)
	assert.Equal(t, "data/districts.csv", cfg.DistrictsPath)
	assert.Equal(t, 30*time.Minute, cfg.DatasetTTL)
	assert.Equal(t, 64, cfg.CatalogCacheSize)
	assert.Equal(t, "govt_user", cfg.GovtUsername)
	assert.Equal(t, "secure123", cfg.GovtPassword)
	assert.Equal(t, 5000, cfg.TotalFoodUnits)
	assert.Equal(t, 1000, cfg.TotalMedicalKits)
	assert.Equal(t, 500, cfg.TotalShelterUnits)
}

func TestLoad_CustomEnv(t *testing.T) {
	t.Setenv("HTTP_ADDR", ":9090")
	t.Setenv("LOG_LEVEL", "debug")
	t.Setenv("LOG_FORMAT", "text")
	t.Setenv("SHUTDOWN_TIMEOUT", "30s")
	t.Setenv("COORDINATES_PATH", "/data/coords.csv")
	t.Setenv("DISTRICTS_PATH", "/data/districts.csv")
	t.Setenv("DATASET_TTL", "5m")
	t.Setenv("CATALOG_CACHE_SIZE", "16")
	t.Setenv("TOTAL_FOOD_UNITS", "12000")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, ":9090", cfg.HTTPAddr)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, "text", cfg.LogFormat)
	assert.Equal(t, 30*time.Second, cfg.ShutdownTimeout)
	assert.Equal(t, "/data/coords.csv", cfg.CoordinatesPath)
	assert.Equal(t, "/data/districts.csv", cfg.DistrictsPath)
	assert.Equal(t, 5*time.Minute, cfg.DatasetTTL)
	assert.Equal(t, 16, cfg.CatalogCacheSize)
	assert.Equal(t, 12000, cfg.TotalFoodUnits)
}

func TestLoad_ZeroTTLDisablesExpiry(t *testing.T) {
	t.Setenv("DATASET_TTL", "0")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, time.Duration(0), cfg.DatasetTTL)
}

func TestLoad_Invalid(t *testing.T) {
	tests := []struct {
		name  string
		key   string
		value string
	}{
		{"empty coordinates path", "COORDINATES_PATH", ""},
		{"empty districts path", "DISTRICTS_PATH", ""},
		{"zero shutdown timeout", "SHUTDOWN_TIMEOUT", "0s"},
		{"zero cache size", "CATALOG_CACHE_SIZE", "0"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv(tt.key, tt.value)
			_, err := Load()
			require.Error(t, err)
		})
	}
}
