package analysis

import (
	"provnet/domain/provider"
)

// NetworkMetrics is the whole-roster summary shown on the dashboard header.
type NetworkMetrics struct {
	TotalProviders      int     `json:"total_providers"`
	InNetworkProviders  int     `json:"in_network_providers"`
	OutNetworkProviders int     `json:"out_network_providers"`
	TotalUtilizers      int     `json:"total_utilizers"`
	AvgCostPerUtilizer  float64 `json:"avg_cost_per_utilizer"`
	AvgQualityScore     float64 `json:"avg_quality_score"`
	NetworkSavings      float64 `json:"network_savings"`
	HighRiskRemovals    int     `json:"high_risk_removals"`
	TotalOpportunity    float64 `json:"total_opportunity"`
}

// CalculateNetworkMetrics summarizes the roster. Utilizer, cost, quality and
// savings figures cover the in-network population only; the opportunity total
// spans the whole roster.
func CalculateNetworkMetrics(records []provider.Record) NetworkMetrics {
	m := NetworkMetrics{TotalProviders: len(records)}

	var costs, qualities []float64
	for _, r := range records {
		m.TotalOpportunity += r.TerminationValue
		if r.NetworkStatus != provider.InNetwork {
			continue
		}
		m.InNetworkProviders++
		m.TotalUtilizers += r.Utilizers
		m.NetworkSavings += r.TerminationValue
		costs = append(costs, r.CostPerUtilizer)
		qualities = append(qualities, r.QualityScore)
		if r.AdequacyRisk == provider.RiskHigh {
			m.HighRiskRemovals++
		}
	}

	m.OutNetworkProviders = m.TotalProviders - m.InNetworkProviders
	m.AvgCostPerUtilizer = meanOf(costs)
	m.AvgQualityScore = meanOf(qualities)
	return m
}
