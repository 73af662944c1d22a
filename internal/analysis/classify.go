package analysis

import (
	"provnet/domain/provider"
	"provnet/domain/quadrant"
)

// Classified is a provider record augmented with its derived quadrant label.
// The label is recomputed on every classification pass so it can never go
// stale relative to the underlying scores.
type Classified struct {
	provider.Record
	Quadrant quadrant.Label `json:"quadrant"`
}

// ClassifyAll labels every record in the collection. The input slice is left
// untouched; callers receive a new derived collection in the same order.
func ClassifyAll(records []provider.Record, t quadrant.Thresholds) []Classified {
	out := make([]Classified, len(records))
	for i, r := range records {
		out[i] = Classified{
			Record:   r,
			Quadrant: quadrant.Classify(r.QualityScore, r.CostPerUtilizer, t),
		}
	}
	return out
}

// QuadrantSummary counts providers per quadrant.
func QuadrantSummary(classified []Classified) map[quadrant.Label]int {
	summary := make(map[quadrant.Label]int, len(quadrant.Labels))
	for _, c := range classified {
		summary[c.Quadrant]++
	}
	return summary
}

// QuadrantInsight aggregates one quadrant's population.
type QuadrantInsight struct {
	Count             int      `json:"count"`
	AvgQuality        float64  `json:"avg_quality"`
	AvgCost           float64  `json:"avg_cost"`
	TotalUtilizers    int      `json:"total_utilizers"`
	AvgMarketPosition float64  `json:"avg_market_position"`
	HighRiskCount     int      `json:"high_risk_count"`
	Recommendations   []string `json:"recommendations"`
}

// QuadrantInsights aggregates every populated quadrant: headcount, average
// quality/cost/market position, utilizer volume, high-risk exposure, and the
// quadrant's static playbook.
func QuadrantInsights(classified []Classified) map[quadrant.Label]QuadrantInsight {
	insights := make(map[quadrant.Label]QuadrantInsight)

	for _, label := range quadrant.Labels {
		var (
			qualities []float64
			costs     []float64
			positions []float64
			utilizers int
			highRisk  int
		)
		for _, c := range classified {
			if c.Quadrant != label {
				continue
			}
			qualities = append(qualities, c.QualityScore)
			costs = append(costs, c.CostPerUtilizer)
			positions = append(positions, c.MarketPositionPercentile)
			utilizers += c.Utilizers
			if c.AdequacyRisk == provider.RiskHigh {
				highRisk++
			}
		}
		if len(qualities) == 0 {
			continue
		}
		insights[label] = QuadrantInsight{
			Count:             len(qualities),
			AvgQuality:        meanOf(qualities),
			AvgCost:           meanOf(costs),
			TotalUtilizers:    utilizers,
			AvgMarketPosition: meanOf(positions),
			HighRiskCount:     highRisk,
			Recommendations:   quadrant.Playbook(label),
		}
	}
	return insights
}
