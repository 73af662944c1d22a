package analysis

import (
	"testing"

	"provnet/domain/core"
	"provnet/domain/provider"
	"provnet/internal/testkit"
)

func ids(records []provider.Record) []core.ProviderID {
	out := make([]core.ProviderID, len(records))
	for i, r := range records {
		out[i] = r.ProviderID
	}
	return out
}

func TestCompareScenario_IdenticalSubsets(t *testing.T) {
	records := testkit.NewGenerator(3).Roster(30)
	subset := ids(records)

	result := CompareScenario(records, subset, subset, "no-op", DefaultScenarioConfig())

	if result.Deltas.QualityChange != 0 || result.Deltas.CostChange != 0 {
		t.Errorf("identical subsets must have zero deltas, got %+v", result.Deltas)
	}
	if result.Deltas.ProviderChange != 0 || result.Deltas.UtilizerChange != 0 {
		t.Errorf("identical subsets must have zero membership deltas, got %+v", result.Deltas)
	}
	if result.Changes.AdditionsCount != 0 || result.Changes.RemovalsCount != 0 {
		t.Errorf("identical subsets must have no additions or removals, got %+v", result.Changes)
	}
	if result.Changes.RetainedCount != len(records) {
		t.Errorf("retained count = %d, want %d", result.Changes.RetainedCount, len(records))
	}
	// No movement either way: both scores sit at the 50-point baseline.
	if result.Deltas.QualityImprovementScore != 50 || result.Deltas.CostEfficiencyScore != 50 {
		t.Errorf("no-op scenario should score 50/50, got %+v", result.Deltas)
	}
	if result.Financial.RemovalSavings != 0 || result.Financial.AdditionCosts != 0 {
		t.Errorf("no-op scenario should have no financial movement, got %+v", result.Financial)
	}
	if result.ScenarioID == "" {
		t.Error("scenario result must carry an identifier")
	}
}

func TestCompareScenario_EmptyCurrentYieldsZeroScores(t *testing.T) {
	records := testkit.NewGenerator(4).Roster(10)

	result := CompareScenario(records, nil, ids(records), "from scratch", DefaultScenarioConfig())

	if result.Deltas.QualityImprovementScore != 0 {
		t.Errorf("empty current subset must zero the quality score, got %v", result.Deltas.QualityImprovementScore)
	}
	if result.Deltas.CostEfficiencyScore != 0 {
		t.Errorf("empty current subset must zero the cost score, got %v", result.Deltas.CostEfficiencyScore)
	}
	if result.Changes.AdditionsCount != len(records) {
		t.Errorf("additions = %d, want %d", result.Changes.AdditionsCount, len(records))
	}
}

func TestCompareScenario_FinancialModel(t *testing.T) {
	all := []provider.Record{
		withTermValue(rec("PROV_001", 3.0, 900), 500000),
		rec("PROV_002", 4.0, 500),
		outOfNetwork(rec("PROV_003", 4.8, 450)),
	}
	cfg := DefaultScenarioConfig()

	current := []core.ProviderID{"PROV_001", "PROV_002"}
	proposed := []core.ProviderID{"PROV_002", "PROV_003"}
	result := CompareScenario(all, current, proposed, "swap", cfg)

	if result.Financial.ProvidersAdded != 1 || result.Financial.ProvidersRemoved != 1 {
		t.Fatalf("expected one addition and one removal, got %+v", result.Financial)
	}
	if result.Financial.RemovalSavings != 500000 {
		t.Errorf("removal savings = %v, want 500000 from PROV_001", result.Financial.RemovalSavings)
	}
	if result.Financial.AdditionCosts != 50000 {
		t.Errorf("addition costs = %v, want 50000 per added provider", result.Financial.AdditionCosts)
	}
	if result.Financial.NetSavings != 450000 {
		t.Errorf("net savings = %v, want 450000", result.Financial.NetSavings)
	}

	// Quality moves from mean(3.0, 4.0)=3.5 to mean(4.0, 4.8)=4.4; value is
	// 0.9 points * 2 proposed providers * $25k.
	if diff := result.Financial.QualityImprovement - 0.9; diff > 1e-9 || diff < -1e-9 {
		t.Errorf("quality improvement = %v, want 0.9", result.Financial.QualityImprovement)
	}
	wantQualityValue := 0.9 * 2 * 25000
	if diff := result.Financial.QualityValue - wantQualityValue; diff > 1e-6 || diff < -1e-6 {
		t.Errorf("quality value = %v, want %v", result.Financial.QualityValue, wantQualityValue)
	}

	wantTotal := 450000 + wantQualityValue
	if diff := result.Financial.TotalValue - wantTotal; diff > 1e-6 || diff < -1e-6 {
		t.Errorf("total value = %v, want %v", result.Financial.TotalValue, wantTotal)
	}
	wantROI := 100 * wantTotal / 50000
	if diff := result.Financial.ROIPercentage - wantROI; diff > 1e-6 || diff < -1e-6 {
		t.Errorf("ROI = %v, want %v", result.Financial.ROIPercentage, wantROI)
	}
}

func TestCompareScenario_UnknownIDsIgnored(t *testing.T) {
	records := testkit.NewGenerator(5).Roster(5)

	result := CompareScenario(records, ids(records), []core.ProviderID{"PROV_404", records[0].ProviderID}, "partial", DefaultScenarioConfig())
	if result.Proposed.ProviderCount != 1 {
		t.Errorf("unknown identifiers must be silently absent, proposed count = %d", result.Proposed.ProviderCount)
	}
}

func TestCompareScenario_RecommendationOrder(t *testing.T) {
	// Large quality gain, large cost saving, big financial value, shrinking
	// network: every recommendation class fires, in the contract order.
	all := []provider.Record{}
	current := []core.ProviderID{}
	for i := 1; i <= 15; i++ {
		r := withTermValue(rec(idFor(i), 3.0, 900), 200000)
		all = append(all, r)
		current = append(current, r.ProviderID)
	}
	keeper := rec("PROV_KEEP", 4.9, 300)
	all = append(all, keeper)

	result := CompareScenario(all, current, []core.ProviderID{keeper.ProviderID}, "aggressive trim", DefaultScenarioConfig())

	recs := result.Recommendations
	if len(recs) != 5 {
		t.Fatalf("expected all five recommendation classes, got %d: %v", len(recs), recs)
	}
	checks := []string{
		"Excellent quality improvement",
		"Significant cost savings",
		"Strong financial case",
		"Critical: Address network adequacy",
		"Significant network reduction",
	}
	for i, prefix := range checks {
		if len(recs[i]) < len(prefix) || recs[i][:len(prefix)] != prefix {
			t.Errorf("recommendation %d = %q, want prefix %q", i, recs[i], prefix)
		}
	}
}

func TestSubsetMetrics_Empty(t *testing.T) {
	m := SubsetMetrics(nil)
	if m.ProviderCount != 0 || m.AvgQuality != 0 || m.AvgCost != 0 || m.SavingsOpportunity != 0 {
		t.Errorf("empty subset must be all zeroes, got %+v", m)
	}
}
