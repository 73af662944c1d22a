package analysis

import (
	"sort"

	"provnet/domain/provider"
)

// StateRollup aggregates every provider touching one state. A provider
// operating in three states contributes to all three rollups.
type StateRollup struct {
	ProviderCount    int      `json:"provider_count"`
	TotalOpportunity float64  `json:"total_opportunity"`
	TotalUtilizers   int      `json:"total_utilizers"`
	AvgQuality       float64  `json:"avg_quality"`
	AvgCost          float64  `json:"avg_cost"`
	ClinicalGroups   []string `json:"clinical_groups"`
	InNetworkCount   int      `json:"in_network_count"`
	OutNetworkCount  int      `json:"out_network_count"`
	HighRiskCount    int      `json:"high_risk_count"`
	Penetration      float64  `json:"network_penetration"`
	RiskRatio        float64  `json:"adequacy_risk_ratio"`
	Recommendations  []string `json:"recommendations"`
}

// StateRanking pairs a state with its savings opportunity.
type StateRanking struct {
	State       string  `json:"state"`
	Opportunity float64 `json:"opportunity"`
}

// StateAnalysis is the per-state view of the network.
type StateAnalysis struct {
	Details     map[string]StateRollup `json:"state_details"`
	Rankings    []StateRanking         `json:"state_rankings"`
	TotalStates int                    `json:"total_states"`
}

// AnalyzeByState rolls the roster up per operating state, ranked by savings
// opportunity descending (ties broken by state code for determinism).
func AnalyzeByState(records []provider.Record) StateAnalysis {
	type acc struct {
		qualities, costs []float64
		rollup           StateRollup
		groups           map[string]struct{}
	}
	byState := make(map[string]*acc)

	for _, r := range records {
		for _, st := range r.OperatingStates {
			a := byState[st]
			if a == nil {
				a = &acc{groups: make(map[string]struct{})}
				byState[st] = a
			}
			a.rollup.ProviderCount++
			a.rollup.TotalOpportunity += r.TerminationValue
			a.rollup.TotalUtilizers += r.Utilizers
			a.qualities = append(a.qualities, r.QualityScore)
			a.costs = append(a.costs, r.CostPerUtilizer)
			a.groups[r.ClinicalGroup] = struct{}{}
			if r.NetworkStatus == provider.InNetwork {
				a.rollup.InNetworkCount++
			} else {
				a.rollup.OutNetworkCount++
			}
			if r.AdequacyRisk == provider.RiskHigh {
				a.rollup.HighRiskCount++
			}
		}
	}

	details := make(map[string]StateRollup, len(byState))
	rankings := make([]StateRanking, 0, len(byState))
	for st, a := range byState {
		a.rollup.AvgQuality = meanOf(a.qualities)
		a.rollup.AvgCost = meanOf(a.costs)
		a.rollup.ClinicalGroups = sortedKeys(a.groups)
		if a.rollup.ProviderCount > 0 {
			a.rollup.Penetration = float64(a.rollup.InNetworkCount) / float64(a.rollup.ProviderCount)
			a.rollup.RiskRatio = float64(a.rollup.HighRiskCount) / float64(a.rollup.ProviderCount)
		}
		a.rollup.Recommendations = stateRecommendations(a.rollup)
		details[st] = a.rollup
		rankings = append(rankings, StateRanking{State: st, Opportunity: a.rollup.TotalOpportunity})
	}

	sort.Slice(rankings, func(i, j int) bool {
		if rankings[i].Opportunity != rankings[j].Opportunity {
			return rankings[i].Opportunity > rankings[j].Opportunity
		}
		return rankings[i].State < rankings[j].State
	})

	return StateAnalysis{Details: details, Rankings: rankings, TotalStates: len(details)}
}

func stateRecommendations(r StateRollup) []string {
	recs := make([]string, 0)
	if r.TotalOpportunity > 1000000 {
		recs = append(recs, "High-priority state for network optimization")
	}
	if r.Penetration < 0.6 {
		recs = append(recs, "Improve network penetration through provider recruitment")
	}
	if r.RiskRatio > 0.3 {
		recs = append(recs, "Address network adequacy risks before provider removals")
	}
	if r.AvgQuality < 3.5 {
		recs = append(recs, "Focus on quality improvement initiatives")
	}
	if len(r.ClinicalGroups) < 8 {
		recs = append(recs, "Expand clinical group coverage")
	}
	return recs
}

// CBSARollup aggregates providers whose primary market is one CBSA.
type CBSARollup struct {
	ProviderCount        int      `json:"provider_count"`
	TotalOpportunity     float64  `json:"total_opportunity"`
	TotalUtilizers       int      `json:"total_utilizers"`
	AvgQuality           float64  `json:"avg_quality"`
	AvgCost              float64  `json:"avg_cost"`
	AvgMarketPosition    float64  `json:"avg_market_position"`
	ClinicalGroups       []string `json:"clinical_groups"`
	InNetworkCount       int      `json:"in_network_count"`
	OutNetworkCount      int      `json:"out_network_count"`
	Penetration          float64  `json:"network_penetration"`
	CompetitionIntensity float64  `json:"competition_intensity"`
	Recommendations      []string `json:"recommendations"`
}

// CBSAAnalysis is the per-metro view of the network.
type CBSAAnalysis struct {
	Details            map[string]CBSARollup `json:"cbsa_details"`
	TotalCBSAs         int                   `json:"total_cbsas"`
	MostCompetitive    string                `json:"most_competitive"`
	HighestOpportunity string                `json:"highest_opportunity"`
}

// AnalyzeByCBSA rolls the roster up per primary market. Competition
// intensity is headcount relative to the most crowded CBSA.
func AnalyzeByCBSA(records []provider.Record) CBSAAnalysis {
	type acc struct {
		qualities, costs, positions []float64
		rollup                      CBSARollup
		groups                      map[string]struct{}
	}
	byCBSA := make(map[string]*acc)
	maxCount := 0

	for _, r := range records {
		if r.PrimaryCBSA == "" {
			continue
		}
		a := byCBSA[r.PrimaryCBSA]
		if a == nil {
			a = &acc{groups: make(map[string]struct{})}
			byCBSA[r.PrimaryCBSA] = a
		}
		a.rollup.ProviderCount++
		a.rollup.TotalOpportunity += r.TerminationValue
		a.rollup.TotalUtilizers += r.Utilizers
		a.qualities = append(a.qualities, r.QualityScore)
		a.costs = append(a.costs, r.CostPerUtilizer)
		a.positions = append(a.positions, r.MarketPositionPercentile)
		a.groups[r.ClinicalGroup] = struct{}{}
		if r.NetworkStatus == provider.InNetwork {
			a.rollup.InNetworkCount++
		} else {
			a.rollup.OutNetworkCount++
		}
		if a.rollup.ProviderCount > maxCount {
			maxCount = a.rollup.ProviderCount
		}
	}

	names := make([]string, 0, len(byCBSA))
	for cbsa := range byCBSA {
		names = append(names, cbsa)
	}
	sort.Strings(names)

	details := make(map[string]CBSARollup, len(byCBSA))
	mostCompetitive, highestOpportunity := "", ""
	bestIntensity, bestOpportunity := -1.0, -1.0
	for _, cbsa := range names {
		a := byCBSA[cbsa]
		a.rollup.AvgQuality = meanOf(a.qualities)
		a.rollup.AvgCost = meanOf(a.costs)
		a.rollup.AvgMarketPosition = meanOf(a.positions)
		a.rollup.ClinicalGroups = sortedKeys(a.groups)
		if a.rollup.ProviderCount > 0 {
			a.rollup.Penetration = float64(a.rollup.InNetworkCount) / float64(a.rollup.ProviderCount)
		}
		if maxCount > 0 {
			a.rollup.CompetitionIntensity = float64(a.rollup.ProviderCount) / float64(maxCount)
		}
		a.rollup.Recommendations = cbsaRecommendations(a.rollup)
		details[cbsa] = a.rollup

		if a.rollup.CompetitionIntensity > bestIntensity {
			bestIntensity = a.rollup.CompetitionIntensity
			mostCompetitive = cbsa
		}
		if a.rollup.TotalOpportunity > bestOpportunity {
			bestOpportunity = a.rollup.TotalOpportunity
			highestOpportunity = cbsa
		}
	}

	return CBSAAnalysis{
		Details:            details,
		TotalCBSAs:         len(details),
		MostCompetitive:    mostCompetitive,
		HighestOpportunity: highestOpportunity,
	}
}

func cbsaRecommendations(r CBSARollup) []string {
	recs := make([]string, 0)
	if r.CompetitionIntensity > 0.8 {
		recs = append(recs, "Highly competitive market - focus on differentiation")
	}
	if r.Penetration < 0.5 {
		recs = append(recs, "Significant out-of-network opportunity")
	}
	if r.AvgMarketPosition < 50 {
		recs = append(recs, "Below-average market positioning - strategic review needed")
	}
	if r.TotalOpportunity > 500000 {
		recs = append(recs, "Significant financial optimization opportunity")
	}
	return recs
}

// CoverageGap is a state missing one or more clinical groups.
type CoverageGap struct {
	State              string   `json:"state"`
	MissingGroups      []string `json:"missing_clinical_groups"`
	CoveragePercentage float64  `json:"coverage_percentage"`
	Severity           string   `json:"gap_severity"`
}

// IdentifyCoverageGaps finds, for every state touched by the roster, the
// clinical groups present elsewhere in the roster but absent in that state.
// Gaps are ordered most-severe first.
func IdentifyCoverageGaps(records []provider.Record) []CoverageGap {
	coverage := make(map[string]map[string]struct{})
	allGroups := make(map[string]struct{})

	for _, r := range records {
		allGroups[r.ClinicalGroup] = struct{}{}
		for _, st := range r.OperatingStates {
			if coverage[st] == nil {
				coverage[st] = make(map[string]struct{})
			}
			coverage[st][r.ClinicalGroup] = struct{}{}
		}
	}

	gaps := make([]CoverageGap, 0)
	for st, covered := range coverage {
		var missing []string
		for g := range allGroups {
			if _, ok := covered[g]; !ok {
				missing = append(missing, g)
			}
		}
		if len(missing) == 0 {
			continue
		}
		sort.Strings(missing)
		severity := "Low"
		if len(missing) > 3 {
			severity = "High"
		} else if len(missing) > 1 {
			severity = "Medium"
		}
		gaps = append(gaps, CoverageGap{
			State:              st,
			MissingGroups:      missing,
			CoveragePercentage: 100 * float64(len(covered)) / float64(len(allGroups)),
			Severity:           severity,
		})
	}

	sort.Slice(gaps, func(i, j int) bool {
		if len(gaps[i].MissingGroups) != len(gaps[j].MissingGroups) {
			return len(gaps[i].MissingGroups) > len(gaps[j].MissingGroups)
		}
		return gaps[i].State < gaps[j].State
	})
	return gaps
}

// ExpansionOpportunity flags a CBSA with recruitable high-quality
// out-of-network providers.
type ExpansionOpportunity struct {
	CBSA               string  `json:"cbsa"`
	ExpansionType      string  `json:"expansion_type"`
	OpportunityCount   int     `json:"opportunity_count"`
	AvgQuality         float64 `json:"avg_quality"`
	PotentialUtilizers int     `json:"potential_utilizers"`
	Priority           string  `json:"priority"`
}

// IdentifyExpansionOpportunities finds CBSAs holding high-quality
// out-of-network providers, ordered by opportunity count.
func IdentifyExpansionOpportunities(records []provider.Record) []ExpansionOpportunity {
	type acc struct {
		qualities []float64
		utilizers int
	}
	byCBSA := make(map[string]*acc)
	for _, r := range records {
		if r.PrimaryCBSA == "" || r.NetworkStatus != provider.OutOfNetwork || r.QualityScore < 4.0 {
			continue
		}
		a := byCBSA[r.PrimaryCBSA]
		if a == nil {
			a = &acc{}
			byCBSA[r.PrimaryCBSA] = a
		}
		a.qualities = append(a.qualities, r.QualityScore)
		a.utilizers += r.Utilizers
	}

	opportunities := make([]ExpansionOpportunity, 0, len(byCBSA))
	for cbsa, a := range byCBSA {
		priority := "Medium"
		if len(a.qualities) >= 3 {
			priority = "High"
		}
		opportunities = append(opportunities, ExpansionOpportunity{
			CBSA:               cbsa,
			ExpansionType:      "High-Quality Provider Recruitment",
			OpportunityCount:   len(a.qualities),
			AvgQuality:         meanOf(a.qualities),
			PotentialUtilizers: a.utilizers,
			Priority:           priority,
		})
	}
	sort.Slice(opportunities, func(i, j int) bool {
		if opportunities[i].OpportunityCount != opportunities[j].OpportunityCount {
			return opportunities[i].OpportunityCount > opportunities[j].OpportunityCount
		}
		return opportunities[i].CBSA < opportunities[j].CBSA
	})
	return opportunities
}

// ConsolidationOpportunity flags a CBSA with clustered underperformers.
type ConsolidationOpportunity struct {
	CBSA              string  `json:"cbsa"`
	ConsolidationType string  `json:"consolidation_type"`
	ProviderCount     int     `json:"provider_count"`
	TotalSavings      float64 `json:"total_savings"`
	AffectedUtilizers int     `json:"affected_utilizers"`
	Priority          string  `json:"priority"`
}

// IdentifyConsolidationOpportunities finds CBSAs with at least two
// underperforming in-network providers, ordered by savings.
func IdentifyConsolidationOpportunities(records []provider.Record) []ConsolidationOpportunity {
	type acc struct {
		count     int
		savings   float64
		utilizers int
	}
	byCBSA := make(map[string]*acc)
	for _, r := range records {
		if r.PrimaryCBSA == "" || r.NetworkStatus != provider.InNetwork {
			continue
		}
		if r.QualityScore >= 3.5 || r.CostPerUtilizer <= 700 {
			continue
		}
		a := byCBSA[r.PrimaryCBSA]
		if a == nil {
			a = &acc{}
			byCBSA[r.PrimaryCBSA] = a
		}
		a.count++
		a.savings += r.TerminationValue
		a.utilizers += r.Utilizers
	}

	opportunities := make([]ConsolidationOpportunity, 0)
	for cbsa, a := range byCBSA {
		if a.count < 2 {
			continue
		}
		priority := "Medium"
		if a.count >= 3 {
			priority = "High"
		}
		opportunities = append(opportunities, ConsolidationOpportunity{
			CBSA:              cbsa,
			ConsolidationType: "Underperformer Removal",
			ProviderCount:     a.count,
			TotalSavings:      a.savings,
			AffectedUtilizers: a.utilizers,
			Priority:          priority,
		})
	}
	sort.Slice(opportunities, func(i, j int) bool {
		if opportunities[i].TotalSavings != opportunities[j].TotalSavings {
			return opportunities[i].TotalSavings > opportunities[j].TotalSavings
		}
		return opportunities[i].CBSA < opportunities[j].CBSA
	})
	return opportunities
}

func sortedKeys(set map[string]struct{}) []string {
	keys := make([]string, 0, len(set))
	for k := range set {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
