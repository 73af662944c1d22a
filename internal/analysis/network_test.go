package analysis

import (
	"math"
	"testing"

	"provnet/domain/provider"
)

func TestCalculateNetworkMetrics(t *testing.T) {
	records := []provider.Record{
		withUtilizers(withTermValue(rec("PROV_001", 4.0, 500), 200000), 1500),
		withRisk(withUtilizers(withTermValue(rec("PROV_002", 3.0, 900), 800000), 2500), provider.RiskHigh),
		outOfNetwork(withTermValue(rec("PROV_003", 4.8, 450), 300000)),
	}

	m := CalculateNetworkMetrics(records)
	if m.TotalProviders != 3 || m.InNetworkProviders != 2 || m.OutNetworkProviders != 1 {
		t.Fatalf("headcounts = %d/%d/%d", m.TotalProviders, m.InNetworkProviders, m.OutNetworkProviders)
	}

	// Utilizer, cost, quality and savings figures cover the contracted
	// network only.
	if m.TotalUtilizers != 4000 {
		t.Errorf("total utilizers = %d, want 4000", m.TotalUtilizers)
	}
	if math.Abs(m.AvgQualityScore-3.5) > 1e-9 {
		t.Errorf("avg quality = %v, want 3.5", m.AvgQualityScore)
	}
	if math.Abs(m.AvgCostPerUtilizer-700) > 1e-9 {
		t.Errorf("avg cost = %v, want 700", m.AvgCostPerUtilizer)
	}
	if m.NetworkSavings != 1000000 {
		t.Errorf("network savings = %v, want 1000000", m.NetworkSavings)
	}
	if m.HighRiskRemovals != 1 {
		t.Errorf("high risk removals = %d, want 1", m.HighRiskRemovals)
	}

	// Opportunity spans the whole roster, out-of-network included.
	if m.TotalOpportunity != 1300000 {
		t.Errorf("total opportunity = %v, want 1300000", m.TotalOpportunity)
	}
}

func TestCalculateNetworkMetrics_Empty(t *testing.T) {
	m := CalculateNetworkMetrics(nil)
	if m.TotalProviders != 0 || m.AvgQualityScore != 0 || m.AvgCostPerUtilizer != 0 {
		t.Errorf("empty roster must produce zero metrics, got %+v", m)
	}
}
