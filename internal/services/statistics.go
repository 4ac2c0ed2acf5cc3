package services

import "math"

// Mean returns 0 for empty input. Every caller treats missing data as a
// neutral steady state, so the toolkit degrades silently instead of failing.
func Mean(values []float64) float64 {
	if len(values) == 0 {
		return 0
	}
	var total float64
	for _, value := range values {
		total += value
	}
	return total / float64(len(values))
}

// StandardDeviation is the population deviation (divide by n).
func StandardDeviation(values []float64) float64 {
	if len(values) == 0 {
		return 0
	}
	mean := Mean(values)
	var sumSquares float64
	for _, value := range values {
		delta := value - mean
		sumSquares += delta * delta
	}
	return math.Sqrt(sumSquares / float64(len(values)))
}

// PearsonCorrelation returns 0 for mismatched lengths, fewer than two
// samples, or degenerate (constant) series.
func PearsonCorrelation(xs []float64, ys []float64) float64 {
	if len(xs) != len(ys) || len(xs) < 2 {
		return 0
	}

	meanX := Mean(xs)
	meanY := Mean(ys)

	var covariance, varianceX, varianceY float64
	for i := range xs {
		deltaX := xs[i] - meanX
		deltaY := ys[i] - meanY
		covariance += deltaX * deltaY
		varianceX += deltaX * deltaX
		varianceY += deltaY * deltaY
	}

	denominator := math.Sqrt(varianceX * varianceY)
	if denominator == 0 {
		return 0
	}
	return covariance / denominator
}

// LinearTrend is the average of the second half minus the average of the
// first half, with an integer-floor split point.
func LinearTrend(values []float64) float64 {
	if len(values) < 2 {
		return 0
	}
	split := len(values) / 2
	return Mean(values[split:]) - Mean(values[:split])
}

// ConsistencyScore is max(0, 1 - stddev/mean); 0 when the mean is 0.
func ConsistencyScore(values []float64) float64 {
	mean := Mean(values)
	if mean == 0 {
		return 0
	}
	return math.Max(0, 1-StandardDeviation(values)/mean)
}
