package quadrant

import (
	"fmt"

	"provnet/domain/core"
)

// Label is one of the four quality/cost quadrants. It is always derived from
// the underlying scores, never stored as a source of truth.
type Label string

const (
	PreferredPartners      Label = "Preferred Partners"
	StrategicOpportunities Label = "Strategic Opportunities"
	PerformanceFocus       Label = "Performance Focus"
	OptimizationCandidates Label = "Optimization Candidates"
)

// Labels lists all four quadrants in display order.
var Labels = []Label{
	PreferredPartners,
	StrategicOpportunities,
	PerformanceFocus,
	OptimizationCandidates,
}

// Thresholds is the quality/cost threshold pair that positions the quadrant
// boundaries. Passed explicitly per call; the engine holds no global state.
type Thresholds struct {
	Quality float64 `json:"quality_threshold"`
	Cost    float64 `json:"cost_threshold"`
}

// DefaultThresholds returns the standard (4.0, 600) pair.
func DefaultThresholds() Thresholds {
	return Thresholds{Quality: 4.0, Cost: 600}
}

// Validate fails fast on misconfigured thresholds. A negative quality
// threshold or non-positive cost threshold is a programming-contract
// violation, not runtime data variance.
func (t Thresholds) Validate() error {
	if t.Quality < 0 {
		return fmt.Errorf("%w: quality threshold %.2f is negative", core.ErrInvalidThresholds, t.Quality)
	}
	if t.Cost <= 0 {
		return fmt.Errorf("%w: cost threshold %.2f must be positive", core.ErrInvalidThresholds, t.Cost)
	}
	return nil
}

// Classify maps a (quality, cost) pair onto exactly one quadrant. The four
// rules partition the plane; boundaries are inclusive on the good side.
func Classify(quality, cost float64, t Thresholds) Label {
	switch {
	case quality >= t.Quality && cost <= t.Cost:
		return PreferredPartners
	case quality >= t.Quality && cost > t.Cost:
		return StrategicOpportunities
	case quality < t.Quality && cost <= t.Cost:
		return PerformanceFocus
	default:
		return OptimizationCandidates
	}
}
