package analysis

import (
	"fmt"
	"sort"

	"gonum.org/v1/gonum/stat"

	"provnet/domain/core"
	"provnet/domain/provider"
)

// MarketStatistics summarizes the overall competitive landscape.
type MarketStatistics struct {
	TotalProviders         int     `json:"total_providers"`
	TopQuartileCount       int     `json:"top_quartile_count"`
	BottomQuartileCount    int     `json:"bottom_quartile_count"`
	MedianQuality          float64 `json:"median_quality"`
	MedianCost             float64 `json:"median_cost"`
	AvgMarketPosition      float64 `json:"avg_market_position"`
	QualityCostCorrelation float64 `json:"quality_cost_correlation"`
}

// StatusStats aggregates one side of the in/out-of-network comparison.
type StatusStats struct {
	Count             int     `json:"count"`
	AvgQuality        float64 `json:"avg_quality"`
	AvgCost           float64 `json:"avg_cost"`
	AvgMarketPosition float64 `json:"avg_market_position"`
}

// NetworkComparison contrasts contracted and non-contracted providers.
type NetworkComparison struct {
	InNetwork             StatusStats `json:"in_network_stats"`
	OutNetwork            StatusStats `json:"out_network_stats"`
	QualityGap            float64     `json:"quality_gap"`
	CostGap               float64     `json:"cost_gap"`
	HighQualityOutNetwork int         `json:"high_quality_out_network"`
}

// GroupStats aggregates competition within one clinical group.
type GroupStats struct {
	ProviderCount     int     `json:"provider_count"`
	AvgQuality        float64 `json:"avg_quality"`
	AvgCost           float64 `json:"avg_cost"`
	AvgMarketPosition float64 `json:"avg_market_position"`
	InNetworkCount    int     `json:"in_network_count"`
	OutNetworkCount   int     `json:"out_network_count"`
	TopPerformer      string  `json:"top_performer"`
	HighRiskCount     int     `json:"network_adequacy_risk"`
}

// Threat flags a competitive threat in the market.
type Threat struct {
	ProviderName   string  `json:"provider_name"`
	ThreatType     string  `json:"threat_type"`
	ThreatLevel    string  `json:"threat_level"`
	Description    string  `json:"description"`
	ClinicalGroup  string  `json:"clinical_group"`
	MarketPosition float64 `json:"market_position"`
}

// Opportunity flags a market opportunity.
type Opportunity struct {
	OpportunityType    string  `json:"opportunity_type"`
	Description        string  `json:"description"`
	FinancialImpact    float64 `json:"financial_impact"`
	ClinicalGroup      string  `json:"clinical_group"`
	CurrentPerformance string  `json:"current_performance"`
}

// MarketAnalysis is the full market-level competitive picture.
type MarketAnalysis struct {
	Statistics    MarketStatistics      `json:"market_statistics"`
	Leaders       []provider.Record     `json:"market_leaders"`
	Laggards      []provider.Record     `json:"improvement_targets"`
	ByGroup       map[string]GroupStats `json:"clinical_group_analysis"`
	Comparison    NetworkComparison     `json:"network_comparison"`
	Threats       []Threat              `json:"competitive_threats"`
	Opportunities []Opportunity         `json:"market_opportunities"`
}

// AnalyzeMarket computes competitive positioning across the whole roster.
// market_position_percentile is an opaque upstream attribute here; the engine
// aggregates it but never derives it.
func AnalyzeMarket(records []provider.Record) MarketAnalysis {
	var qualities, costs, positions []float64
	for _, r := range records {
		qualities = append(qualities, r.QualityScore)
		costs = append(costs, r.CostPerUtilizer)
		positions = append(positions, r.MarketPositionPercentile)
	}

	statistics := MarketStatistics{
		TotalProviders:    len(records),
		MedianQuality:     medianOf(qualities),
		MedianCost:        medianOf(costs),
		AvgMarketPosition: meanOf(positions),
	}
	if len(records) >= 2 {
		statistics.QualityCostCorrelation = stat.Correlation(qualities, costs, nil)
	}

	var leaders, laggards []provider.Record
	for _, r := range records {
		if r.MarketPositionPercentile >= 75 {
			statistics.TopQuartileCount++
			leaders = append(leaders, r)
		}
		if r.MarketPositionPercentile <= 25 {
			statistics.BottomQuartileCount++
			laggards = append(laggards, r)
		}
	}
	sort.SliceStable(leaders, func(i, j int) bool {
		return leaders[i].MarketPositionPercentile > leaders[j].MarketPositionPercentile
	})
	sort.SliceStable(laggards, func(i, j int) bool {
		return laggards[i].MarketPositionPercentile < laggards[j].MarketPositionPercentile
	})

	return MarketAnalysis{
		Statistics:    statistics,
		Leaders:       truncate(leaders, 10),
		Laggards:      truncate(laggards, 10),
		ByGroup:       analyzeByClinicalGroup(records),
		Comparison:    compareNetworkStatus(records),
		Threats:       identifyThreats(records),
		Opportunities: identifyOpportunities(records),
	}
}

func truncate(records []provider.Record, n int) []provider.Record {
	if len(records) > n {
		return records[:n]
	}
	return records
}

func analyzeByClinicalGroup(records []provider.Record) map[string]GroupStats {
	byGroup := make(map[string][]provider.Record)
	for _, r := range records {
		byGroup[r.ClinicalGroup] = append(byGroup[r.ClinicalGroup], r)
	}

	out := make(map[string]GroupStats, len(byGroup))
	for group, members := range byGroup {
		var qualities, costs, positions []float64
		gs := GroupStats{ProviderCount: len(members)}
		best := members[0]
		for _, m := range members {
			qualities = append(qualities, m.QualityScore)
			costs = append(costs, m.CostPerUtilizer)
			positions = append(positions, m.MarketPositionPercentile)
			if m.NetworkStatus == provider.InNetwork {
				gs.InNetworkCount++
			} else {
				gs.OutNetworkCount++
			}
			if m.AdequacyRisk == provider.RiskHigh {
				gs.HighRiskCount++
			}
			if m.MarketPositionPercentile > best.MarketPositionPercentile {
				best = m
			}
		}
		gs.AvgQuality = meanOf(qualities)
		gs.AvgCost = meanOf(costs)
		gs.AvgMarketPosition = meanOf(positions)
		gs.TopPerformer = best.Name
		out[group] = gs
	}
	return out
}

func compareNetworkStatus(records []provider.Record) NetworkComparison {
	var inQ, inC, inP, outQ, outC, outP []float64
	cmp := NetworkComparison{}
	for _, r := range records {
		if r.NetworkStatus == provider.InNetwork {
			inQ = append(inQ, r.QualityScore)
			inC = append(inC, r.CostPerUtilizer)
			inP = append(inP, r.MarketPositionPercentile)
		} else {
			outQ = append(outQ, r.QualityScore)
			outC = append(outC, r.CostPerUtilizer)
			outP = append(outP, r.MarketPositionPercentile)
			if r.QualityScore >= 4.0 {
				cmp.HighQualityOutNetwork++
			}
		}
	}
	cmp.InNetwork = StatusStats{Count: len(inQ), AvgQuality: meanOf(inQ), AvgCost: meanOf(inC), AvgMarketPosition: meanOf(inP)}
	cmp.OutNetwork = StatusStats{Count: len(outQ), AvgQuality: meanOf(outQ), AvgCost: meanOf(outC), AvgMarketPosition: meanOf(outP)}
	cmp.QualityGap = cmp.OutNetwork.AvgQuality - cmp.InNetwork.AvgQuality
	cmp.CostGap = cmp.InNetwork.AvgCost - cmp.OutNetwork.AvgCost
	return cmp
}

// identifyThreats flags high-performing out-of-network providers: excellent
// quality at competitive cost that members may leak to.
func identifyThreats(records []provider.Record) []Threat {
	threats := make([]Threat, 0)
	for _, r := range records {
		if r.NetworkStatus != provider.OutOfNetwork || r.QualityScore < 4.0 || r.CostPerUtilizer > 600 {
			continue
		}
		threats = append(threats, Threat{
			ProviderName:   r.Name,
			ThreatType:     "High-Quality Out-of-Network",
			ThreatLevel:    "High",
			Description:    fmt.Sprintf("Excellent quality (%.1f) and competitive cost ($%.0f)", r.QualityScore, r.CostPerUtilizer),
			ClinicalGroup:  r.ClinicalGroup,
			MarketPosition: r.MarketPositionPercentile,
		})
		if len(threats) == 5 {
			break
		}
	}
	return threats
}

// identifyOpportunities flags weak in-network providers replaceable by
// higher-performing alternatives.
func identifyOpportunities(records []provider.Record) []Opportunity {
	opportunities := make([]Opportunity, 0)
	for _, r := range records {
		if r.NetworkStatus != provider.InNetwork || r.QualityScore >= 3.5 || r.CostPerUtilizer <= 700 {
			continue
		}
		opportunities = append(opportunities, Opportunity{
			OpportunityType:    "Provider Optimization",
			Description:        fmt.Sprintf("Replace %s with higher-performing alternative", r.Name),
			FinancialImpact:    r.TerminationValue,
			ClinicalGroup:      r.ClinicalGroup,
			CurrentPerformance: fmt.Sprintf("Quality: %.1f, Cost: $%.0f", r.QualityScore, r.CostPerUtilizer),
		})
		if len(opportunities) == 5 {
			break
		}
	}
	return opportunities
}

// ProviderProfile is the single-provider competitive deep dive.
type ProviderProfile struct {
	Target             provider.Record   `json:"target_provider"`
	GroupCompetitors   []provider.Record `json:"clinical_group_competitors"`
	QualityRank        int               `json:"quality_rank"`
	CostRank           int               `json:"cost_rank"`
	MarketPositionRank int               `json:"market_position_rank"`
	TotalCompetitors   int               `json:"total_competitors"`
	QualityPercentile  float64           `json:"quality_percentile"`
	CostPercentile     float64           `json:"cost_percentile"`
	CBSAMarketShare    float64           `json:"cbsa_market_share"`
	GroupMarketShare   float64           `json:"clinical_group_share"`
	Advantages         []string          `json:"competitive_advantages"`
	Threats            []string          `json:"competitive_threats"`
	Recommendations    []string          `json:"strategic_recommendations"`
}

// AnalyzeProvider compares one provider against its clinical-group peers.
func AnalyzeProvider(records []provider.Record, id core.ProviderID) (ProviderProfile, error) {
	var target provider.Record
	found := false
	for _, r := range records {
		if r.ProviderID == id {
			target = r
			found = true
			break
		}
	}
	if !found {
		return ProviderProfile{}, core.NewNotFoundError("provider", id.String())
	}

	profile := ProviderProfile{Target: target}

	var competitors []provider.Record
	for _, r := range records {
		if r.ClinicalGroup == target.ClinicalGroup && r.ProviderID != target.ProviderID {
			competitors = append(competitors, r)
		}
	}
	profile.GroupCompetitors = truncate(competitors, 10)
	profile.TotalCompetitors = len(competitors)

	betterQuality, lowerCost := 0, 0
	qualityRank, costRank, positionRank := 1, 1, 1
	for _, c := range competitors {
		if c.QualityScore > target.QualityScore {
			betterQuality++
			qualityRank++
		}
		if c.CostPerUtilizer < target.CostPerUtilizer {
			lowerCost++
			costRank++
		}
		if c.MarketPositionPercentile > target.MarketPositionPercentile {
			positionRank++
		}
	}
	profile.QualityRank = qualityRank
	profile.CostRank = costRank
	profile.MarketPositionRank = positionRank
	if len(competitors) > 0 {
		profile.QualityPercentile = 100 * float64(len(competitors)-betterQuality) / float64(len(competitors))
		profile.CostPercentile = 100 * float64(len(competitors)-lowerCost) / float64(len(competitors))
	}

	profile.CBSAMarketShare = marketShare(records, target, func(r provider.Record) bool {
		return r.PrimaryCBSA == target.PrimaryCBSA
	})
	profile.GroupMarketShare = marketShare(records, target, func(r provider.Record) bool {
		return r.ClinicalGroup == target.ClinicalGroup
	})

	profile.Advantages = providerAdvantages(target, competitors)
	profile.Threats = providerThreats(target, competitors)
	profile.Recommendations = providerRecommendations(target)
	return profile, nil
}

func marketShare(records []provider.Record, target provider.Record, in func(provider.Record) bool) float64 {
	total := 0
	for _, r := range records {
		if in(r) {
			total += r.Utilizers
		}
	}
	if total == 0 {
		return 0
	}
	return 100 * float64(target.Utilizers) / float64(total)
}

func providerAdvantages(target provider.Record, competitors []provider.Record) []string {
	var qualities, costs []float64
	for _, c := range competitors {
		qualities = append(qualities, c.QualityScore)
		costs = append(costs, c.CostPerUtilizer)
	}
	avgQuality := meanOf(qualities)
	avgCost := meanOf(costs)

	advantages := make([]string, 0)
	if len(competitors) > 0 && target.QualityScore > avgQuality {
		advantages = append(advantages, fmt.Sprintf("Above-average quality score (%.1f vs %.1f average)", target.QualityScore, avgQuality))
	}
	if len(competitors) > 0 && target.CostPerUtilizer < avgCost {
		advantages = append(advantages, fmt.Sprintf("Below-average cost per utilizer ($%.0f vs $%.0f average)", target.CostPerUtilizer, avgCost))
	}
	if target.MarketPositionPercentile > 75 {
		advantages = append(advantages, fmt.Sprintf("Strong market position (%.0fth percentile)", target.MarketPositionPercentile))
	}
	if target.AdequacyRisk == provider.RiskLow {
		advantages = append(advantages, "Low network adequacy risk")
	}
	return advantages
}

func providerThreats(target provider.Record, competitors []provider.Record) []string {
	dominating := 0
	for _, c := range competitors {
		if c.QualityScore > target.QualityScore && c.CostPerUtilizer < target.CostPerUtilizer {
			dominating++
		}
	}

	threats := make([]string, 0)
	if dominating > 0 {
		threats = append(threats, fmt.Sprintf("%d competitors with better quality and lower cost", dominating))
	}
	if target.MarketPositionPercentile < 25 {
		threats = append(threats, "Poor market position (bottom quartile)")
	}
	if target.AdequacyRisk == provider.RiskHigh {
		threats = append(threats, "High network adequacy risk")
	}
	return threats
}

func providerRecommendations(target provider.Record) []string {
	recs := make([]string, 0)
	if target.QualityScore < 4.0 {
		recs = append(recs, "Implement quality improvement initiatives")
	}
	if target.CostPerUtilizer > 700 {
		recs = append(recs, "Negotiate cost reduction strategies")
	}
	if target.MarketPositionPercentile < 50 {
		recs = append(recs, "Develop competitive positioning strategy")
	}
	if target.NetworkStatus == provider.OutOfNetwork && target.QualityScore >= 4.0 {
		recs = append(recs, "Consider for network inclusion")
	}
	if target.NetworkStatus == provider.InNetwork && target.QualityScore < 3.5 {
		recs = append(recs, "Evaluate for potential network removal")
	}
	return recs
}
