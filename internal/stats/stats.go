// Package stats provides the NaN-aware statistics helpers shared by the
// fitting code: replicate means with standard errors, observation range,
// and the coefficient of determination used to score candidate fits.
package stats

import (
	"math"

	"gonum.org/v1/gonum/stat"
)

// Valid reports whether v is a usable observation (not NaN).
func Valid(v float64) bool {
	return !math.IsNaN(v)
}

// Filtered returns the valid (non-NaN) values of vs in order.
func Filtered(vs []float64) []float64 {
	out := make([]float64, 0, len(vs))
	for _, v := range vs {
		if Valid(v) {
			out = append(out, v)
		}
	}

	return out
}

// MeanSEM returns the mean and the standard error of the mean over the
// valid values of vs.
//
// The SEM uses the sample standard deviation over sqrt(n). With zero valid
// values the mean is NaN and the SEM is 0; with one valid value the SEM is
// 0 as well.
func MeanSEM(vs []float64) (mean, sem float64) {
	valid := Filtered(vs)
	n := len(valid)
	if n == 0 {
		return math.NaN(), 0
	}

	mean = stat.Mean(valid, nil)
	if n <= 1 {
		return mean, 0
	}

	sem = stat.StdDev(valid, nil) / math.Sqrt(float64(n))

	return mean, sem
}

// MinMax returns the smallest and largest valid value of vs.
// Both results are NaN when vs has no valid values.
func MinMax(vs []float64) (minv, maxv float64) {
	minv, maxv = math.NaN(), math.NaN()
	for _, v := range vs {
		if !Valid(v) {
			continue
		}
		if math.IsNaN(minv) || v < minv {
			minv = v
		}
		if math.IsNaN(maxv) || v > maxv {
			maxv = v
		}
	}

	return minv, maxv
}

// RSquared returns the coefficient of determination 1 - SSres/SStot of
// predicted against observed.
//
// The result is NaN when the observations have zero variance (SStot == 0),
// which callers treat as a degenerate-fit signal. It can be negative when
// the predictions are worse than the observation mean. Inputs must have
// equal length; callers filter invalid observations beforehand.
func RSquared(observed, predicted []float64) float64 {
	if len(observed) == 0 {
		return math.NaN()
	}

	mean := stat.Mean(observed, nil)

	var ssRes, ssTot float64
	for i, obs := range observed {
		resid := obs - predicted[i]
		ssRes += resid * resid

		dev := obs - mean
		ssTot += dev * dev
	}

	if ssTot == 0 {
		return math.NaN()
	}

	return 1.0 - ssRes/ssTot
}

// SSTot returns the total sum of squares of the observations around their
// mean. A zero result means the grid search cannot discriminate candidates
// (every R² is NaN).
func SSTot(observed []float64) float64 {
	if len(observed) == 0 {
		return 0
	}

	mean := stat.Mean(observed, nil)

	var ssTot float64
	for _, obs := range observed {
		dev := obs - mean
		ssTot += dev * dev
	}

	return ssTot
}
