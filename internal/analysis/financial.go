package analysis

import (
	"provnet/domain/quadrant"
)

// FinancialImpact aggregates the monetary and quality effects of candidate
// sets in the simple model: only removal savings count toward the net figure;
// addition economics belong to the scenario comparator.
type FinancialImpact struct {
	TotalRemovalSavings       float64 `json:"total_removal_savings"`
	AvgQualityImprovement     float64 `json:"avg_quality_improvement"`
	PotentialAdditionalVolume int     `json:"potential_additional_volume"`
	NetFinancialImpact        float64 `json:"net_financial_impact"`
}

// CalculateFinancialImpact sums termination savings over removal candidates
// and utilizer volume over addition candidates. Quality improvement is the
// gap between the quality threshold and the removal set's mean quality; an
// empty removal set yields 0 by policy, not by division accident.
func CalculateFinancialImpact(removals, additions []Classified, t quadrant.Thresholds) FinancialImpact {
	var impact FinancialImpact

	if len(removals) > 0 {
		qualities := make([]float64, len(removals))
		for i, r := range removals {
			impact.TotalRemovalSavings += r.TerminationValue
			qualities[i] = r.QualityScore
		}
		impact.AvgQualityImprovement = t.Quality - meanOf(qualities)
	}

	for _, a := range additions {
		impact.PotentialAdditionalVolume += a.Utilizers
	}

	impact.NetFinancialImpact = impact.TotalRemovalSavings
	return impact
}
