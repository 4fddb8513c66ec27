package config

import (
	"os"
	"strconv"
	"strings"
	"time"
)

// All runtime settings come from environment variables so the same binaries
// run unchanged on a laptop and on the deployment host.

// ServerPort is the port the API server listens on.
func ServerPort() string {
	return getEnvWithDefault("PORT", "8080")
}

// SnapshotPath locates the processed metrics artifact written by the
// ingestion pipeline and read by the trainer and the API server.
func SnapshotPath() string {
	return getEnvWithDefault("SNAPSHOT_PATH", "data/processed_metrics.json")
}

// ForecastPath locates the per-state forecast artifact written by the
// trainer and read by the API server.
func ForecastPath() string {
	return getEnvWithDefault("FORECAST_PATH", "data/load_forecast.json")
}

// RawDataDir is the directory holding one sub-directory of CSV files per
// source category (enrolment, biometric, demographic).
func RawDataDir() string {
	return getEnvWithDefault("RAW_DATA_DIR", "data/raw_csvs")
}

// ArtifactCacheTTL is the staleness window of the serving cache: artifacts
// reload from disk once a cached copy is older than this. Zero keeps loaded
// artifacts until an explicit refresh.
func ArtifactCacheTTL() time.Duration {
	return time.Duration(getEnvAsInt("ARTIFACT_CACHE_TTL_SECONDS", 300)) * time.Second
}

// CORSDebugEnabled turns on verbose CORS request logging.
func CORSDebugEnabled() bool {
	return getEnvAsBool("CORS_DEBUG", false)
}

// AllowedOrigins returns the CORS origin allowlist, either from the
// comma-separated ALLOWED_ORIGINS variable or the development defaults.
func AllowedOrigins() []string {
	raw := os.Getenv("ALLOWED_ORIGINS")
	if raw == "" {
		return []string{
			"http://localhost:3000",
			"http://localhost:5173",
			"http://localhost:8080",
			"http://127.0.0.1:3000",
		}
	}
	var origins []string
	for _, origin := range strings.Split(raw, ",") {
		if origin = strings.TrimSpace(origin); origin != "" {
			origins = append(origins, origin)
		}
	}
	return origins
}

// Helper functions
func getEnvWithDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

func getEnvAsBool(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if boolValue, err := strconv.ParseBool(value); err == nil {
			return boolValue
		}
	}
	return defaultValue
}
