package analysis

import (
	"fmt"
	"math"
	"sort"

	"provnet/domain/adequacy"
	"provnet/domain/core"
	"provnet/domain/provider"
	"provnet/domain/scenario"
)

// ScenarioConfig bundles the knobs the comparator needs: the adequacy scorer
// configuration plus the fixed cost model.
type ScenarioConfig struct {
	Adequacy  AdequacyConfig     `json:"adequacy"`
	CostModel scenario.CostModel `json:"cost_model"`
}

// DefaultScenarioConfig returns the standard comparator configuration.
func DefaultScenarioConfig() ScenarioConfig {
	return ScenarioConfig{
		Adequacy:  DefaultAdequacyConfig(),
		CostModel: scenario.DefaultCostModel(),
	}
}

// SubsetMetrics computes the basic aggregates of a provider subset. An empty
// subset yields all zeroes.
func SubsetMetrics(subset []provider.Record) scenario.SubsetMetrics {
	if len(subset) == 0 {
		return scenario.SubsetMetrics{}
	}

	var (
		qualities = make([]float64, len(subset))
		costs     = make([]float64, len(subset))
		utilizers int
		savings   float64
	)
	groups := make(map[string]struct{})
	states := make(map[string]struct{})
	cbsas := make(map[string]struct{})

	for i, r := range subset {
		qualities[i] = r.QualityScore
		costs[i] = r.CostPerUtilizer
		utilizers += r.Utilizers
		savings += r.TerminationValue
		groups[r.ClinicalGroup] = struct{}{}
		if r.PrimaryCBSA != "" {
			cbsas[r.PrimaryCBSA] = struct{}{}
		}
		for _, st := range r.OperatingStates {
			states[st] = struct{}{}
		}
	}

	return scenario.SubsetMetrics{
		ProviderCount:      len(subset),
		AvgQuality:         meanOf(qualities),
		AvgCost:            meanOf(costs),
		TotalUtilizers:     utilizers,
		SavingsOpportunity: savings,
		ClinicalGroups:     len(groups),
		StatesCovered:      len(states),
		CBSAsCovered:       len(cbsas),
	}
}

// CompareScenario diffs a proposed provider subset against the current one.
// Both subsets are selected by identifier out of the full validated
// collection; identifiers that match nothing are simply absent from the
// materialized subsets. Every division is guarded: comparing against an
// empty current network yields zero scores rather than an error, because "no
// providers selected" is a normal scenario state in this domain.
func CompareScenario(all []provider.Record, currentIDs, proposedIDs []core.ProviderID, name string, cfg ScenarioConfig) scenario.Result {
	current := materialize(all, currentIDs)
	proposed := materialize(all, proposedIDs)

	currentMetrics := SubsetMetrics(current)
	proposedMetrics := SubsetMetrics(proposed)

	deltas := computeDeltas(currentMetrics, proposedMetrics)
	assessment := AssessAdequacy(proposed, cfg.Adequacy)
	changes := providerChanges(current, proposed)
	financial := scenarioFinancials(current, proposed, currentMetrics, proposedMetrics, changes, cfg.CostModel)

	return scenario.Result{
		ScenarioID:      core.ScenarioID(core.NewID()),
		ScenarioName:    name,
		Current:         currentMetrics,
		Proposed:        proposedMetrics,
		Deltas:          deltas,
		Adequacy:        assessment,
		Financial:       financial,
		Changes:         changes,
		Recommendations: buildRecommendations(deltas, financial, assessment.Level),
	}
}

// materialize filters the full collection to the given identifiers,
// preserving collection order.
func materialize(all []provider.Record, ids []core.ProviderID) []provider.Record {
	want := make(map[core.ProviderID]struct{}, len(ids))
	for _, id := range ids {
		want[id] = struct{}{}
	}
	subset := make([]provider.Record, 0, len(ids))
	for _, r := range all {
		if _, ok := want[r.ProviderID]; ok {
			subset = append(subset, r)
		}
	}
	return subset
}

func computeDeltas(current, proposed scenario.SubsetMetrics) scenario.Deltas {
	d := scenario.Deltas{
		QualityChange:  proposed.AvgQuality - current.AvgQuality,
		CostChange:     proposed.AvgCost - current.AvgCost,
		ProviderChange: proposed.ProviderCount - current.ProviderCount,
		UtilizerChange: proposed.TotalUtilizers - current.TotalUtilizers,
	}

	// Scores need a defined baseline on both sides; without one they stay 0.
	if current.ProviderCount > 0 && proposed.ProviderCount > 0 {
		d.QualityImprovementScore = clampScore(50 + (d.QualityChange/5.0)*100)
		d.CostEfficiencyScore = clampScore(50 + ((current.AvgCost-proposed.AvgCost)/current.AvgCost)*100)
	}
	d.NetworkPerformanceScore = (d.QualityImprovementScore + d.CostEfficiencyScore) / 2
	return d
}

// providerChanges computes the identifier-level membership diff, with each
// list sorted for deterministic output.
func providerChanges(current, proposed []provider.Record) scenario.ProviderChanges {
	currentIDs := make(map[core.ProviderID]struct{}, len(current))
	for _, r := range current {
		currentIDs[r.ProviderID] = struct{}{}
	}
	proposedIDs := make(map[core.ProviderID]struct{}, len(proposed))
	for _, r := range proposed {
		proposedIDs[r.ProviderID] = struct{}{}
	}

	changes := scenario.ProviderChanges{
		Additions: make([]core.ProviderID, 0),
		Removals:  make([]core.ProviderID, 0),
		Retained:  make([]core.ProviderID, 0),
	}
	for id := range proposedIDs {
		if _, ok := currentIDs[id]; !ok {
			changes.Additions = append(changes.Additions, id)
		}
	}
	for id := range currentIDs {
		if _, ok := proposedIDs[id]; ok {
			changes.Retained = append(changes.Retained, id)
		} else {
			changes.Removals = append(changes.Removals, id)
		}
	}

	sortIDs(changes.Additions)
	sortIDs(changes.Removals)
	sortIDs(changes.Retained)
	changes.AdditionsCount = len(changes.Additions)
	changes.RemovalsCount = len(changes.Removals)
	changes.RetainedCount = len(changes.Retained)
	return changes
}

func sortIDs(ids []core.ProviderID) {
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
}

func scenarioFinancials(current, proposed []provider.Record, currentMetrics, proposedMetrics scenario.SubsetMetrics, changes scenario.ProviderChanges, model scenario.CostModel) scenario.FinancialImpact {
	impact := scenario.FinancialImpact{
		ProvidersAdded:   changes.AdditionsCount,
		ProvidersRemoved: changes.RemovalsCount,
	}

	removed := make(map[core.ProviderID]struct{}, len(changes.Removals))
	for _, id := range changes.Removals {
		removed[id] = struct{}{}
	}
	for _, r := range current {
		if _, ok := removed[r.ProviderID]; ok {
			impact.RemovalSavings += r.TerminationValue
		}
	}

	impact.AdditionCosts = float64(changes.AdditionsCount) * model.PerProviderAdditionCost
	impact.NetSavings = impact.RemovalSavings - impact.AdditionCosts

	// Quality value only has meaning when both subsets have a mean quality.
	if len(current) > 0 && len(proposed) > 0 {
		impact.QualityImprovement = proposedMetrics.AvgQuality - currentMetrics.AvgQuality
		impact.QualityValue = impact.QualityImprovement * float64(len(proposed)) * model.PerQualityPointValue
	}

	impact.TotalValue = impact.NetSavings + impact.QualityValue
	impact.ROIPercentage = 100 * impact.TotalValue / math.Max(impact.AdditionCosts, 1)
	return impact
}

// buildRecommendations emits scenario guidance in a fixed order: quality,
// cost, financial, adequacy, network size. The ordering is part of the
// output contract so downstream renderings stay stable.
func buildRecommendations(d scenario.Deltas, f scenario.FinancialImpact, level adequacy.Level) []string {
	recs := make([]string, 0, 5)

	if d.QualityChange > 0.2 {
		recs = append(recs, fmt.Sprintf("Excellent quality improvement: +%.2f points", d.QualityChange))
	} else if d.QualityChange < -0.2 {
		recs = append(recs, fmt.Sprintf("Warning: Quality decrease of %.2f points", math.Abs(d.QualityChange)))
	}

	if d.CostChange < -50 {
		recs = append(recs, fmt.Sprintf("Significant cost savings: $%.0f per utilizer", math.Abs(d.CostChange)))
	} else if d.CostChange > 50 {
		recs = append(recs, fmt.Sprintf("Cost increase: +$%.0f per utilizer", d.CostChange))
	}

	if f.TotalValue > 1000000 {
		recs = append(recs, fmt.Sprintf("Strong financial case: $%.1fM total value", f.TotalValue/1000000))
	} else if f.TotalValue < 0 {
		recs = append(recs, fmt.Sprintf("Financial concern: -$%.1fM total cost", math.Abs(f.TotalValue)/1000000))
	}

	switch level {
	case adequacy.LevelCritical:
		recs = append(recs, "Critical: Address network adequacy issues before implementation")
	case adequacy.LevelWarning:
		recs = append(recs, "Warning: Monitor network adequacy during implementation")
	default:
		recs = append(recs, "Network adequacy maintained")
	}

	if d.ProviderChange < -10 {
		recs = append(recs, "Significant network reduction - ensure adequate coverage")
	} else if d.ProviderChange > 10 {
		recs = append(recs, "Network expansion - monitor integration costs")
	}

	return recs
}
