package store

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"darpan_backend/artifacts"
	"darpan_backend/models"
)

type fixture struct {
	store        *Store
	snapshotPath string
	forecastPath string
}

func newFixture(t *testing.T, ttl time.Duration) fixture {
	t.Helper()
	dir := t.TempDir()
	snapshotPath := filepath.Join(dir, "processed_metrics.json")
	forecastPath := filepath.Join(dir, "load_forecast.json")
	return fixture{
		store:        New(snapshotPath, forecastPath, ttl),
		snapshotPath: snapshotPath,
		forecastPath: forecastPath,
	}
}

func (f fixture) publish(t *testing.T, records []models.MetricRecord, forecasts map[string]models.StateForecast) {
	t.Helper()
	require.NoError(t, artifacts.WriteSnapshot(f.snapshotPath, records))
	require.NoError(t, artifacts.WriteForecasts(f.forecastPath, forecasts))
}

func someForecasts() map[string]models.StateForecast {
	return map[string]models.StateForecast{
		"gujarat": {Values: []int64{10, 11, 12}, Accuracy: 93.1, Trend: models.TrendIncreasing},
	}
}

func TestSnapshotNormalizesOnLoad(t *testing.T) {
	f := newFixture(t, 0)
	f.publish(t, []models.MetricRecord{
		{State: "  GUJARAT", District: "gandhi nagar", MobileUpdateVolume: 5, TotalEnrolment: 9},
	}, someForecasts())

	records, err := f.store.Snapshot()
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, "Gujarat", records[0].State)
	assert.Equal(t, "Gandhi Nagar", records[0].District)

	forecasts, err := f.store.Forecasts()
	require.NoError(t, err)
	_, ok := forecasts["Gujarat"]
	assert.True(t, ok, "forecast keys must be normalized")
}

func TestSnapshotIsCachedUntilRefresh(t *testing.T) {
	f := newFixture(t, 0)
	f.publish(t, []models.MetricRecord{
		{State: "Gujarat", District: "Surat", MobileUpdateVolume: 1, TotalEnrolment: 2},
	}, someForecasts())

	records, err := f.store.Snapshot()
	require.NoError(t, err)
	require.Len(t, records, 1)

	// Publish a second batch behind the store's back; the cached copy keeps
	// serving until an explicit refresh.
	f.publish(t, []models.MetricRecord{
		{State: "Gujarat", District: "Surat", MobileUpdateVolume: 1, TotalEnrolment: 2},
		{State: "Gujarat", District: "Rajkot", MobileUpdateVolume: 3, TotalEnrolment: 4},
	}, someForecasts())

	records, err = f.store.Snapshot()
	require.NoError(t, err)
	assert.Len(t, records, 1)

	snapshot, forecasts := f.store.Refresh()
	assert.True(t, snapshot.Loaded)
	assert.Equal(t, 2, snapshot.Count)
	assert.True(t, forecasts.Loaded)

	records, err = f.store.Snapshot()
	require.NoError(t, err)
	assert.Len(t, records, 2)
}

func TestSnapshotReloadsAfterTTL(t *testing.T) {
	f := newFixture(t, 20*time.Millisecond)
	f.publish(t, []models.MetricRecord{
		{State: "Gujarat", District: "Surat", MobileUpdateVolume: 1, TotalEnrolment: 2},
	}, someForecasts())

	_, err := f.store.Snapshot()
	require.NoError(t, err)

	f.publish(t, []models.MetricRecord{
		{State: "Gujarat", District: "Surat", MobileUpdateVolume: 1, TotalEnrolment: 2},
		{State: "Gujarat", District: "Rajkot", MobileUpdateVolume: 3, TotalEnrolment: 4},
	}, someForecasts())

	time.Sleep(100 * time.Millisecond)

	records, err := f.store.Snapshot()
	require.NoError(t, err)
	assert.Len(t, records, 2)
}

func TestMissingArtifactsSurfaceTypedErrors(t *testing.T) {
	f := newFixture(t, 0)

	_, err := f.store.Snapshot()
	assert.ErrorIs(t, err, artifacts.ErrNotFound)

	_, err = f.store.Forecasts()
	assert.ErrorIs(t, err, artifacts.ErrNotFound)
}

func TestHealthReportsBothArtifacts(t *testing.T) {
	f := newFixture(t, 0)

	snapshot, forecasts := f.store.Health()
	assert.False(t, snapshot.Loaded)
	assert.NotEmpty(t, snapshot.Error)
	assert.False(t, forecasts.Loaded)
	assert.NotEmpty(t, forecasts.Error)
	assert.Equal(t, f.snapshotPath, snapshot.Path)
	assert.Equal(t, f.forecastPath, forecasts.Path)

	f.publish(t, []models.MetricRecord{
		{State: "Gujarat", District: "Surat", MobileUpdateVolume: 1, TotalEnrolment: 2},
	}, someForecasts())

	snapshot, forecasts = f.store.Health()
	assert.True(t, snapshot.Loaded)
	assert.Equal(t, 1, snapshot.Count)
	assert.Empty(t, snapshot.Error)
	assert.True(t, forecasts.Loaded)
	assert.Equal(t, 1, forecasts.Count)
}

func TestRefreshReportsFailures(t *testing.T) {
	f := newFixture(t, 0)
	require.NoError(t, artifacts.WriteSnapshot(f.snapshotPath, []models.MetricRecord{
		{State: "Gujarat", District: "Surat", MobileUpdateVolume: 1, TotalEnrolment: 2},
	}))

	snapshot, forecasts := f.store.Refresh()
	assert.True(t, snapshot.Loaded)
	assert.False(t, forecasts.Loaded)
	assert.NotEmpty(t, forecasts.Error)
}
