package services

import (
	"math"
	"testing"
)

func almostEqual(a float64, b float64) bool {
	return math.Abs(a-b) < 1e-9
}

func TestMean(t *testing.T) {
	if got := Mean(nil); got != 0 {
		t.Fatalf("expected mean 0 for empty input, got %f", got)
	}
	if got := Mean([]float64{2, 4, 6}); !almostEqual(got, 4) {
		t.Fatalf("expected mean 4, got %f", got)
	}
}

func TestStandardDeviationIsPopulation(t *testing.T) {
	// Population stddev of [2,4,4,4,5,5,7,9] is exactly 2.
	values := []float64{2, 4, 4, 4, 5, 5, 7, 9}
	if got := StandardDeviation(values); !almostEqual(got, 2) {
		t.Fatalf("expected population stddev 2, got %f", got)
	}
	if got := StandardDeviation(nil); got != 0 {
		t.Fatalf("expected stddev 0 for empty input, got %f", got)
	}
}

func TestPearsonCorrelationSymmetry(t *testing.T) {
	xs := []float64{1, 2, 3, 4, 5}
	ys := []float64{2, 1, 4, 3, 5}

	forward := PearsonCorrelation(xs, ys)
	backward := PearsonCorrelation(ys, xs)
	if !almostEqual(forward, backward) {
		t.Fatalf("expected symmetric correlation, got %f and %f", forward, backward)
	}
}

func TestPearsonCorrelationOfSeriesWithItself(t *testing.T) {
	xs := []float64{3, 1, 4, 1, 5, 9}
	if got := PearsonCorrelation(xs, xs); !almostEqual(got, 1) {
		t.Fatalf("expected self correlation 1, got %f", got)
	}
}

func TestPearsonCorrelationDegenerateInputs(t *testing.T) {
	constant := []float64{5, 5, 5, 5}
	varying := []float64{1, 2, 3, 4}
	if got := PearsonCorrelation(constant, varying); got != 0 {
		t.Fatalf("expected 0 for constant series, got %f", got)
	}
	if got := PearsonCorrelation([]float64{1, 2}, []float64{1}); got != 0 {
		t.Fatalf("expected 0 for mismatched lengths, got %f", got)
	}
	if got := PearsonCorrelation([]float64{1}, []float64{1}); got != 0 {
		t.Fatalf("expected 0 for single sample, got %f", got)
	}
}

func TestLinearTrend(t *testing.T) {
	if got := LinearTrend([]float64{5}); got != 0 {
		t.Fatalf("expected 0 trend below two samples, got %f", got)
	}

	// Floor split of 5 values: first half [1 2], second half [3 4 5].
	if got := LinearTrend([]float64{1, 2, 3, 4, 5}); !almostEqual(got, 2.5) {
		t.Fatalf("expected trend 2.5, got %f", got)
	}

	if got := LinearTrend([]float64{8, 8, 4, 4}); !almostEqual(got, -4) {
		t.Fatalf("expected trend -4, got %f", got)
	}
}

func TestConsistencyScore(t *testing.T) {
	if got := ConsistencyScore([]float64{70, 70, 70}); !almostEqual(got, 1) {
		t.Fatalf("expected consistency 1 for constant series, got %f", got)
	}
	if got := ConsistencyScore([]float64{0, 0, 0}); got != 0 {
		t.Fatalf("expected consistency 0 for zero mean, got %f", got)
	}
	if got := ConsistencyScore([]float64{-10, 10}); got != 0 {
		t.Fatalf("expected consistency 0 for zero mean around origin, got %f", got)
	}

	// stddev (~4.33) exceeds the mean (2.5), so the score clamps at 0.
	spread := ConsistencyScore([]float64{0, 0, 0, 10})
	if spread != 0 {
		t.Fatalf("expected clamped consistency 0 for wildly spread series, got %f", spread)
	}
}
