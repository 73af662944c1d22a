package analysis

import (
	"fmt"
	"math"
	"strings"
	"testing"

	"provnet/domain/core"
	"provnet/domain/provider"
)

func withPosition(r provider.Record, pct float64) provider.Record {
	r.MarketPositionPercentile = pct
	return r
}

func TestAnalyzeMarket_Statistics(t *testing.T) {
	records := []provider.Record{
		withPosition(rec("PROV_001", 3.0, 400), 10),
		withPosition(rec("PROV_002", 4.0, 600), 50),
		withPosition(rec("PROV_003", 5.0, 800), 90),
	}

	market := AnalyzeMarket(records)
	stats := market.Statistics

	if stats.TotalProviders != 3 {
		t.Errorf("total providers = %d, want 3", stats.TotalProviders)
	}
	if stats.MedianQuality != 4.0 {
		t.Errorf("median quality = %v, want 4.0", stats.MedianQuality)
	}
	if stats.MedianCost != 600 {
		t.Errorf("median cost = %v, want 600", stats.MedianCost)
	}
	if stats.AvgMarketPosition != 50 {
		t.Errorf("avg market position = %v, want 50", stats.AvgMarketPosition)
	}
	if stats.TopQuartileCount != 1 || stats.BottomQuartileCount != 1 {
		t.Errorf("quartile counts = %d/%d, want 1/1", stats.TopQuartileCount, stats.BottomQuartileCount)
	}
	// Quality and cost move in lockstep here.
	if math.Abs(stats.QualityCostCorrelation-1.0) > 1e-9 {
		t.Errorf("correlation = %v, want 1.0", stats.QualityCostCorrelation)
	}
	if len(market.Leaders) != 1 || market.Leaders[0].ProviderID != "PROV_003" {
		t.Errorf("leaders = %v", market.Leaders)
	}
	if len(market.Laggards) != 1 || market.Laggards[0].ProviderID != "PROV_001" {
		t.Errorf("laggards = %v", market.Laggards)
	}
}

func TestAnalyzeMarket_NetworkComparison(t *testing.T) {
	records := []provider.Record{
		rec("PROV_001", 3.0, 800),
		rec("PROV_002", 4.0, 600),
		outOfNetwork(rec("PROV_003", 4.5, 500)),
		outOfNetwork(rec("PROV_004", 3.5, 900)),
	}

	cmp := AnalyzeMarket(records).Comparison
	if cmp.InNetwork.Count != 2 || cmp.OutNetwork.Count != 2 {
		t.Fatalf("counts = %d/%d, want 2/2", cmp.InNetwork.Count, cmp.OutNetwork.Count)
	}
	if math.Abs(cmp.QualityGap-0.5) > 1e-9 {
		t.Errorf("quality gap = %v, want 0.5", cmp.QualityGap)
	}
	if math.Abs(cmp.CostGap) > 1e-9 {
		t.Errorf("cost gap = %v, want 0", cmp.CostGap)
	}
	if cmp.HighQualityOutNetwork != 1 {
		t.Errorf("high-quality out-of-network = %d, want 1", cmp.HighQualityOutNetwork)
	}
}

func TestIdentifyThreats_RuleAndCap(t *testing.T) {
	records := []provider.Record{
		outOfNetwork(rec("PROV_001", 4.2, 550)), // qualifies
		outOfNetwork(rec("PROV_002", 3.9, 550)), // quality too low
		outOfNetwork(rec("PROV_003", 4.2, 650)), // cost too high
		rec("PROV_004", 4.8, 400),               // in-network
	}
	for i := 5; i <= 12; i++ {
		records = append(records, outOfNetwork(rec(fmt.Sprintf("PROV_%03d", i), 4.5, 500)))
	}

	threats := AnalyzeMarket(records).Threats
	if len(threats) != 5 {
		t.Fatalf("threat list capped at 5, got %d", len(threats))
	}
	if threats[0].ProviderName != "Provider PROV_001" {
		t.Errorf("first threat = %s, want Provider PROV_001", threats[0].ProviderName)
	}
	if threats[0].ThreatLevel != "High" {
		t.Errorf("threat level = %s, want High", threats[0].ThreatLevel)
	}
	if !strings.Contains(threats[0].Description, "Excellent quality (4.2)") {
		t.Errorf("unexpected description: %s", threats[0].Description)
	}
}

func TestIdentifyOpportunities_RuleAndCap(t *testing.T) {
	records := []provider.Record{
		withTermValue(rec("PROV_001", 3.0, 900), 400000), // qualifies
		rec("PROV_002", 3.8, 900),                        // quality not low enough
		rec("PROV_003", 3.0, 650),                        // cost not high enough
		outOfNetwork(rec("PROV_004", 3.0, 900)),          // out-of-network
	}
	for i := 5; i <= 12; i++ {
		records = append(records, rec(fmt.Sprintf("PROV_%03d", i), 3.1, 800))
	}

	opportunities := AnalyzeMarket(records).Opportunities
	if len(opportunities) != 5 {
		t.Fatalf("opportunity list capped at 5, got %d", len(opportunities))
	}
	first := opportunities[0]
	if first.OpportunityType != "Provider Optimization" {
		t.Errorf("opportunity type = %s", first.OpportunityType)
	}
	if first.FinancialImpact != 400000 {
		t.Errorf("financial impact = %v, want 400000", first.FinancialImpact)
	}
	if !strings.Contains(first.Description, "Provider PROV_001") {
		t.Errorf("unexpected description: %s", first.Description)
	}
}

func TestAnalyzeProvider_RanksAndShares(t *testing.T) {
	records := []provider.Record{
		withPosition(rec("PROV_001", 4.0, 600), 60),
		withPosition(rec("PROV_002", 4.5, 500), 80), // beats target on all axes
		withPosition(rec("PROV_003", 3.5, 700), 40),
		withGroup(withPosition(rec("PROV_004", 5.0, 300), 99), "Behavioral Health"),
	}

	profile, err := AnalyzeProvider(records, core.ProviderID("PROV_001"))
	if err != nil {
		t.Fatalf("AnalyzeProvider: %v", err)
	}
	if profile.TotalCompetitors != 2 {
		t.Fatalf("competitors = %d, want 2 (same clinical group only)", profile.TotalCompetitors)
	}
	if profile.QualityRank != 2 || profile.CostRank != 2 || profile.MarketPositionRank != 2 {
		t.Errorf("ranks = %d/%d/%d, want 2/2/2", profile.QualityRank, profile.CostRank, profile.MarketPositionRank)
	}
	if profile.QualityPercentile != 50 || profile.CostPercentile != 50 {
		t.Errorf("percentiles = %v/%v, want 50/50", profile.QualityPercentile, profile.CostPercentile)
	}
	// Equal utilizers: one of three group members.
	if math.Abs(profile.GroupMarketShare-100.0/3.0) > 1e-9 {
		t.Errorf("group share = %v, want %v", profile.GroupMarketShare, 100.0/3.0)
	}
	if len(profile.Threats) == 0 || !strings.Contains(profile.Threats[0], "1 competitors") {
		t.Errorf("expected dominating-competitor threat, got %v", profile.Threats)
	}
}

func TestAnalyzeProvider_NotFound(t *testing.T) {
	records := []provider.Record{rec("PROV_001", 4.0, 500)}
	_, err := AnalyzeProvider(records, core.ProviderID("PROV_999"))
	if err == nil {
		t.Fatal("expected error for unknown provider")
	}
	if !core.IsNotFoundError(err) {
		t.Errorf("expected a not-found error, got %v", err)
	}
}
