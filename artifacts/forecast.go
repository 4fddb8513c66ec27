package artifacts

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"

	"darpan_backend/models"
)

// WriteForecasts publishes the trained bundles keyed by normalized state
// name.
func WriteForecasts(path string, forecasts map[string]models.StateForecast) error {
	data, err := json.MarshalIndent(forecasts, "", "  ")
	if err != nil {
		return fmt.Errorf("encoding forecasts: %v", err)
	}
	return writeAtomic(path, data)
}

// ReadForecasts loads the forecast bundle map and rejects any bundle whose
// projection does not cover exactly the contracted number of periods.
func ReadForecasts(path string) (map[string]models.StateForecast, error) {
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("%w: %s", ErrNotFound, path)
	}
	if err != nil {
		return nil, fmt.Errorf("reading %s: %v", path, err)
	}

	var forecasts map[string]models.StateForecast
	if err := json.Unmarshal(data, &forecasts); err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrCorrupt, path, err)
	}
	if len(forecasts) == 0 {
		return nil, fmt.Errorf("%w: %s holds no states", ErrSchema, path)
	}
	for state, forecast := range forecasts {
		if len(forecast.Values) != models.ForecastPeriods {
			return nil, fmt.Errorf("%w: %s: %s has %d forecast values, want %d",
				ErrSchema, path, state, len(forecast.Values), models.ForecastPeriods)
		}
	}
	return forecasts, nil
}
