package analysis

import (
	"github.com/montanaflynn/stats"
)

// meanOf returns the arithmetic mean, or 0 for an empty sample. Every ratio
// in this engine guards its denominator; "no providers selected" is a normal
// state, not an error.
func meanOf(values []float64) float64 {
	if len(values) == 0 {
		return 0
	}
	m, err := stats.Mean(values)
	if err != nil {
		return 0
	}
	return m
}

// medianOf returns the median, or 0 for an empty sample.
func medianOf(values []float64) float64 {
	if len(values) == 0 {
		return 0
	}
	m, err := stats.Median(values)
	if err != nil {
		return 0
	}
	return m
}

// clampScore bounds a normalized score to [0, 100].
func clampScore(score float64) float64 {
	if score < 0 {
		return 0
	}
	if score > 100 {
		return 100
	}
	return score
}
