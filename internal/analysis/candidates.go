package analysis

import (
	"sort"

	"provnet/domain/provider"
	"provnet/domain/quadrant"
)

// SelectRemovalCandidates filters the classified collection down to providers
// whose contract ending is both attractive (Optimization Candidates quadrant)
// and safe (adequacy risk below High), ordered by termination value
// descending. The sort is stable so that equal-value candidates keep their
// input order and repeated runs produce identical output.
func SelectRemovalCandidates(classified []Classified) []Classified {
	candidates := make([]Classified, 0)
	for _, c := range classified {
		if c.Quadrant == quadrant.OptimizationCandidates && c.AdequacyRisk != provider.RiskHigh {
			candidates = append(candidates, c)
		}
	}
	sort.SliceStable(candidates, func(i, j int) bool {
		return candidates[i].TerminationValue > candidates[j].TerminationValue
	})
	return candidates
}

// SelectAdditionCandidates filters to out-of-network providers that clear the
// quality floor and cost ceiling, ordered by quality descending then cost
// ascending, stable on input order for ties.
func SelectAdditionCandidates(classified []Classified, t quadrant.Thresholds) []Classified {
	candidates := make([]Classified, 0)
	for _, c := range classified {
		if c.NetworkStatus == provider.OutOfNetwork &&
			c.QualityScore >= t.Quality &&
			c.CostPerUtilizer <= t.Cost {
			candidates = append(candidates, c)
		}
	}
	sort.SliceStable(candidates, func(i, j int) bool {
		if candidates[i].QualityScore != candidates[j].QualityScore {
			return candidates[i].QualityScore > candidates[j].QualityScore
		}
		return candidates[i].CostPerUtilizer < candidates[j].CostPerUtilizer
	})
	return candidates
}
