package store

// Status describes one artifact's availability for health reporting.
type Status struct {
	Path   string `json:"path"`
	Loaded bool   `json:"loaded"`
	Count  int    `json:"count"`
	Error  string `json:"error,omitempty"`
}

// Refresh drops both cached artifacts and reloads them immediately. The
// admin endpoint calls it after a batch run so operators see new data
// without waiting out the staleness window.
func (s *Store) Refresh() (snapshot, forecasts Status) {
	s.cache.Flush()
	return s.snapshotStatus(), s.forecastStatus()
}

// Health reports both artifacts' current state, loading them if needed.
func (s *Store) Health() (snapshot, forecasts Status) {
	return s.snapshotStatus(), s.forecastStatus()
}

func (s *Store) snapshotStatus() Status {
	status := Status{Path: s.snapshotPath}
	records, err := s.Snapshot()
	if err != nil {
		status.Error = err.Error()
		return status
	}
	status.Loaded = true
	status.Count = len(records)
	return status
}

func (s *Store) forecastStatus() Status {
	status := Status{Path: s.forecastPath}
	forecasts, err := s.Forecasts()
	if err != nil {
		status.Error = err.Error()
		return status
	}
	status.Loaded = true
	status.Count = len(forecasts)
	return status
}
