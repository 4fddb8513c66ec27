package forecast

import "math"

// Cross-validation windows. Each origin trains on the prefix and scores the
// following horizon months, mirroring how the model is used for real: fit
// on everything available, project the next quarter.
var cvOrigins = [...]int{12, 15, 18, 21}

const cvHorizon = 3

// crossValidate scores a capacity-bounded fit over rolling origins and
// converts the mean absolute percentage error into a bounded accuracy
// score. Zero-valued actuals are skipped because they have no defined
// percentage error; a series with no scoreable points at all (a dormant
// region) gets the fallback score.
func crossValidate(series []float64, capacity float64) float64 {
	var sum float64
	points := 0
	for _, origin := range cvOrigins {
		if origin+cvHorizon > len(series) {
			continue
		}
		model := fitLogistic(series[:origin], capacity)
		for t := origin; t < origin+cvHorizon; t++ {
			actual := series[t]
			if actual == 0 {
				continue
			}
			sum += math.Abs(model.predict(t)-actual) / actual
			points++
		}
	}
	if points == 0 {
		return fallbackAccuracy
	}
	mape := sum / float64(points)
	return clampAccuracy(100 - mape*100)
}

// clampAccuracy bounds the reported score and rounds it to one decimal so
// the dashboard never shows an implausible precision claim.
func clampAccuracy(accuracy float64) float64 {
	accuracy = math.Min(math.Max(accuracy, minAccuracy), maxAccuracy)
	return math.Round(accuracy*10) / 10
}
