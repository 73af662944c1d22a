package scenario

import (
	"provnet/domain/adequacy"
	"provnet/domain/core"
)

// SubsetMetrics are the basic aggregates of one provider subset.
type SubsetMetrics struct {
	ProviderCount      int     `json:"provider_count"`
	AvgQuality         float64 `json:"avg_quality"`
	AvgCost            float64 `json:"avg_cost"`
	TotalUtilizers     int     `json:"total_utilizers"`
	SavingsOpportunity float64 `json:"total_savings_opportunity"`
	ClinicalGroups     int     `json:"clinical_groups"`
	StatesCovered      int     `json:"states_covered"`
	CBSAsCovered       int     `json:"cbsas_covered"`
}

// Deltas are the proposed-minus-current differences plus the two normalized
// 0-100 scores.
type Deltas struct {
	QualityChange           float64 `json:"quality_change"`
	CostChange              float64 `json:"cost_change"`
	ProviderChange          int     `json:"provider_change"`
	UtilizerChange          int     `json:"utilizer_change"`
	QualityImprovementScore float64 `json:"quality_improvement_score"`
	CostEfficiencyScore     float64 `json:"cost_efficiency_score"`
	NetworkPerformanceScore float64 `json:"network_performance_score"`
}

// FinancialImpact monetizes the provider set differences between the current
// and proposed subsets.
type FinancialImpact struct {
	RemovalSavings     float64 `json:"removal_savings"`
	AdditionCosts      float64 `json:"addition_costs"`
	NetSavings         float64 `json:"net_savings"`
	QualityImprovement float64 `json:"quality_improvement"`
	QualityValue       float64 `json:"quality_value"`
	TotalValue         float64 `json:"total_value"`
	ProvidersAdded     int     `json:"providers_added"`
	ProvidersRemoved   int     `json:"providers_removed"`
	ROIPercentage      float64 `json:"roi_percentage"`
}

// ProviderChanges lists the identifier-level membership diff.
type ProviderChanges struct {
	Additions      []core.ProviderID `json:"additions"`
	Removals       []core.ProviderID `json:"removals"`
	Retained       []core.ProviderID `json:"retained"`
	AdditionsCount int               `json:"additions_count"`
	RemovalsCount  int               `json:"removals_count"`
	RetainedCount  int               `json:"retained_count"`
}

// Result compares a baseline network against a proposed subset.
type Result struct {
	ScenarioID      core.ScenarioID     `json:"scenario_id"`
	ScenarioName    string              `json:"scenario_name"`
	Current         SubsetMetrics       `json:"current_network_metrics"`
	Proposed        SubsetMetrics       `json:"proposed_network_metrics"`
	Deltas          Deltas              `json:"scenario_metrics"`
	Adequacy        adequacy.Assessment `json:"adequacy_assessment"`
	Financial       FinancialImpact     `json:"financial_impact"`
	Changes         ProviderChanges     `json:"provider_changes"`
	Recommendations []string            `json:"recommendations"`
}

// CostModel holds the fixed monetary constants used by the comparator.
type CostModel struct {
	PerProviderAdditionCost float64 `json:"per_provider_addition_cost"`
	PerQualityPointValue    float64 `json:"per_quality_point_value"`
}

// DefaultCostModel returns the standard $50k-per-addition /
// $25k-per-quality-point model.
func DefaultCostModel() CostModel {
	return CostModel{
		PerProviderAdditionCost: 50000,
		PerQualityPointValue:    25000,
	}
}
