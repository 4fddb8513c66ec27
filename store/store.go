// Package store serves the pipeline artifacts to the API through an
// expiring in-memory cache, keeping request handlers off the disk on the
// hot path while still picking up fresh batch output within the staleness
// window.
package store

import (
	"log"
	"sync"
	"time"

	gocache "github.com/patrickmn/go-cache"

	"darpan_backend/artifacts"
	"darpan_backend/models"
	"darpan_backend/utils"
)

const (
	snapshotKey = "snapshot"
	forecastKey = "forecasts"
)

// Store caches the metrics snapshot and the forecast bundles.
type Store struct {
	snapshotPath string
	forecastPath string
	cache        *gocache.Cache

	// mu serializes cache misses so a cold start reads each artifact once
	// instead of once per in-flight request.
	mu sync.Mutex
}

// New wires a store over the two artifact paths. ttl bounds how stale a
// cached artifact may get before the next request reloads it from disk;
// zero caches forever until an explicit Refresh.
func New(snapshotPath, forecastPath string, ttl time.Duration) *Store {
	return &Store{
		snapshotPath: snapshotPath,
		forecastPath: forecastPath,
		cache:        gocache.New(ttl, 2*ttl),
	}
}

// Snapshot returns the cached metrics table, reloading from disk when the
// cached copy has expired.
func (s *Store) Snapshot() ([]models.MetricRecord, error) {
	if cached, ok := s.cache.Get(snapshotKey); ok {
		return cached.([]models.MetricRecord), nil
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if cached, ok := s.cache.Get(snapshotKey); ok {
		return cached.([]models.MetricRecord), nil
	}

	records, err := s.loadSnapshot()
	if err != nil {
		return nil, err
	}
	s.cache.Set(snapshotKey, records, gocache.DefaultExpiration)
	return records, nil
}

// Forecasts returns the cached forecast bundles keyed by normalized state
// name, reloading from disk when the cached copy has expired.
func (s *Store) Forecasts() (map[string]models.StateForecast, error) {
	if cached, ok := s.cache.Get(forecastKey); ok {
		return cached.(map[string]models.StateForecast), nil
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if cached, ok := s.cache.Get(forecastKey); ok {
		return cached.(map[string]models.StateForecast), nil
	}

	forecasts, err := s.loadForecasts()
	if err != nil {
		return nil, err
	}
	s.cache.Set(forecastKey, forecasts, gocache.DefaultExpiration)
	return forecasts, nil
}

// Names are normalized once at load time so handlers can compare exact
// strings against normalized query input.

func (s *Store) loadSnapshot() ([]models.MetricRecord, error) {
	records, err := artifacts.ReadSnapshot(s.snapshotPath)
	if err != nil {
		return nil, err
	}
	for i := range records {
		records[i].State = utils.NormalizeLocation(records[i].State)
		records[i].District = utils.NormalizeLocation(records[i].District)
	}
	log.Printf("Loaded %d metric records from %s", len(records), s.snapshotPath)
	return records, nil
}

func (s *Store) loadForecasts() (map[string]models.StateForecast, error) {
	raw, err := artifacts.ReadForecasts(s.forecastPath)
	if err != nil {
		return nil, err
	}
	forecasts := make(map[string]models.StateForecast, len(raw))
	for state, forecast := range raw {
		forecasts[utils.NormalizeLocation(state)] = forecast
	}
	log.Printf("Loaded forecasts for %d states from %s", len(forecasts), s.forecastPath)
	return forecasts, nil
}
