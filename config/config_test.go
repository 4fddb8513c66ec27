package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaults(t *testing.T) {
	t.Setenv("PORT", "")
	t.Setenv("SNAPSHOT_PATH", "")
	t.Setenv("FORECAST_PATH", "")
	t.Setenv("RAW_DATA_DIR", "")

	assert.Equal(t, "8080", ServerPort())
	assert.Equal(t, "data/processed_metrics.json", SnapshotPath())
	assert.Equal(t, "data/load_forecast.json", ForecastPath())
	assert.Equal(t, "data/raw_csvs", RawDataDir())
}

func TestArtifactCacheTTL(t *testing.T) {
	t.Setenv("ARTIFACT_CACHE_TTL_SECONDS", "")
	assert.Equal(t, 5*time.Minute, ArtifactCacheTTL())

	t.Setenv("ARTIFACT_CACHE_TTL_SECONDS", "60")
	assert.Equal(t, time.Minute, ArtifactCacheTTL())

	t.Setenv("ARTIFACT_CACHE_TTL_SECONDS", "not-a-number")
	assert.Equal(t, 5*time.Minute, ArtifactCacheTTL())

	t.Setenv("ARTIFACT_CACHE_TTL_SECONDS", "0")
	assert.Equal(t, time.Duration(0), ArtifactCacheTTL())
}

func TestAllowedOrigins(t *testing.T) {
	t.Setenv("ALLOWED_ORIGINS", "")
	assert.Contains(t, AllowedOrigins(), "http://localhost:3000")

	t.Setenv("ALLOWED_ORIGINS", " https://darpan.example.org , https://dash.example.org ,")
	assert.Equal(t, []string{"https://darpan.example.org", "https://dash.example.org"}, AllowedOrigins())
}

func TestLoadEnvFromSpecifiedPath(t *testing.T) {
	envPath := filepath.Join(t.TempDir(), "darpan.env")
	content := "# comment\n" +
		"DARPAN_TEST_PORT=9090\n" +
		"DARPAN_TEST_QUOTED=\"hello\"\n" +
		"\n" +
		"line without assignment\n"
	require.NoError(t, os.WriteFile(envPath, []byte(content), 0o644))

	t.Setenv("DARPAN_TEST_PORT", "")
	t.Setenv("DARPAN_TEST_QUOTED", "")
	t.Setenv("DARPAN_ENV", envPath)

	require.NoError(t, LoadEnv())
	assert.Equal(t, "9090", os.Getenv("DARPAN_TEST_PORT"))
	assert.Equal(t, "hello", os.Getenv("DARPAN_TEST_QUOTED"))
}

func TestLoadEnvMissingFileIsFine(t *testing.T) {
	t.Setenv("DARPAN_ENV", filepath.Join(t.TempDir(), "absent.env"))
	assert.NoError(t, LoadEnv())
}
