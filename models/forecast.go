package models

// Forecast trend labels shown on the efficiency card.
const (
	TrendIncreasing = "INCREASING"
	TrendStable     = "STABLE"
)

// ForecastPeriods is how many future months every state bundle projects.
// Readers reject bundles with any other length.
const ForecastPeriods = 3

// StateForecast is the trained three-period load projection for one state.
type StateForecast struct {
	Values   []int64 `json:"values"`
	Accuracy float64 `json:"accuracy"`
	Trend    string  `json:"trend"`
}

// TrendOf labels a projection by comparing its ends. Every projection this
// system produces is monotone, so first versus last is a faithful summary.
func TrendOf(values []int64) string {
	if len(values) > 1 && values[len(values)-1] > values[0] {
		return TrendIncreasing
	}
	return TrendStable
}
