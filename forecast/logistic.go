package forecast

import "math"

// logisticModel is a saturating growth curve fitted in log-odds space:
// predict(t) = capacity / (1 + exp(-(intercept + slope*t))).
type logisticModel struct {
	capacity  float64
	intercept float64
	slope     float64
}

// fitLogistic linearizes the series against a fixed capacity and solves
// ordinary least squares on z = ln(y / (capacity - y)). Observations are
// clamped a hair inside (0, capacity) so the transform stays finite.
func fitLogistic(series []float64, capacity float64) logisticModel {
	if capacity <= 0 {
		// A dormant region saturates at zero; the curve is flat.
		return logisticModel{}
	}

	const epsilon = 1e-6
	n := float64(len(series))
	var sumT, sumZ, sumTT, sumTZ float64
	for t, y := range series {
		y = math.Min(math.Max(y, epsilon), capacity-epsilon)
		z := math.Log(y / (capacity - y))
		ft := float64(t)
		sumT += ft
		sumZ += z
		sumTT += ft * ft
		sumTZ += ft * z
	}

	denom := n*sumTT - sumT*sumT
	if denom == 0 {
		return logisticModel{capacity: capacity, intercept: sumZ / n}
	}
	slope := (n*sumTZ - sumT*sumZ) / denom
	intercept := (sumZ - slope*sumT) / n
	return logisticModel{capacity: capacity, intercept: intercept, slope: slope}
}

func (m logisticModel) predict(t int) float64 {
	if m.capacity <= 0 {
		return 0
	}
	return m.capacity / (1 + math.Exp(-(m.intercept + m.slope*float64(t))))
}
