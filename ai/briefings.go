// Package ai assembles the analyst briefings shown on the dashboard. Each
// briefing is deterministic markdown built from engine output; no model is
// called, so the same run always produces the same text.
package ai

import (
	"fmt"
	"sort"
	"strings"

	"provnet/app"
	"provnet/domain/quadrant"
)

// Briefing is one persona's markdown narrative for a run
type Briefing struct {
	Persona  string `json:"persona"`
	Role     string `json:"role"`
	Markdown string `json:"markdown"`
}

// BriefingBuilder turns run results into persona briefings
type BriefingBuilder struct{}

// NewBriefingBuilder creates a briefing builder
func NewBriefingBuilder() *BriefingBuilder {
	return &BriefingBuilder{}
}

// BuildAll produces the four persona briefings for a completed run, in
// pipeline order.
func (b *BriefingBuilder) BuildAll(run *app.RunResult) []Briefing {
	return []Briefing{
		b.dataSpecialist(run),
		b.quadrantAnalyst(run),
		b.competitiveIntel(run),
		b.executiveStrategist(run),
	}
}

func (b *BriefingBuilder) dataSpecialist(run *app.RunResult) Briefing {
	var sb strings.Builder
	sb.WriteString("## Data Specialist Briefing\n\n")
	fmt.Fprintf(&sb, "The roster contains **%d providers**, %d in-network and %d out-of-network.\n\n",
		run.Metrics.TotalProviders, run.Metrics.InNetworkProviders, run.Metrics.OutNetworkProviders)
	fmt.Fprintf(&sb, "- Average in-network quality: %.2f\n", run.Metrics.AvgQualityScore)
	fmt.Fprintf(&sb, "- Average in-network cost per utilizer: $%.0f\n", run.Metrics.AvgCostPerUtilizer)
	fmt.Fprintf(&sb, "- Total utilizers served: %s\n", formatInt(run.Metrics.TotalUtilizers))
	fmt.Fprintf(&sb, "- Total savings opportunity: %s\n", formatDollars(run.Metrics.TotalOpportunity))
	fmt.Fprintf(&sb, "- Providers whose removal carries high adequacy risk: %d\n", run.Metrics.HighRiskRemovals)
	return Briefing{Persona: app.StageDataSpecialist, Role: "Healthcare Data Integration Specialist", Markdown: sb.String()}
}

func (b *BriefingBuilder) quadrantAnalyst(run *app.RunResult) Briefing {
	var sb strings.Builder
	sb.WriteString("## Quadrant Analyst Briefing\n\n")
	fmt.Fprintf(&sb, "Classification used a quality threshold of %.1f and a cost threshold of $%.0f.\n\n",
		run.Thresholds.Quality, run.Thresholds.Cost)

	sb.WriteString("### Quadrant Distribution\n\n")
	for _, label := range quadrant.Labels {
		count := run.QuadrantCounts[label]
		fmt.Fprintf(&sb, "- **%s**: %d providers\n", label, count)
	}

	sb.WriteString("\n### Optimization Candidates\n\n")
	fmt.Fprintf(&sb, "%d providers qualify for removal and %d out-of-network providers qualify for addition.\n\n",
		len(run.Removals), len(run.Additions))
	for i, c := range run.Removals {
		if i >= 5 {
			break
		}
		fmt.Fprintf(&sb, "- Remove %s (quality %.1f, cost $%.0f, value %s)\n",
			c.Name, c.QualityScore, c.CostPerUtilizer, formatDollars(c.TerminationValue))
	}
	for i, c := range run.Additions {
		if i >= 5 {
			break
		}
		fmt.Fprintf(&sb, "- Add %s (quality %.1f, cost $%.0f)\n", c.Name, c.QualityScore, c.CostPerUtilizer)
	}

	sb.WriteString("\n### Financial Impact\n\n")
	fmt.Fprintf(&sb, "- Removal savings: %s\n", formatDollars(run.Financial.TotalRemovalSavings))
	fmt.Fprintf(&sb, "- Average quality improvement from additions: %.2f points\n", run.Financial.AvgQualityImprovement)
	fmt.Fprintf(&sb, "- Additional volume capacity: %s utilizers\n", formatInt(run.Financial.PotentialAdditionalVolume))
	fmt.Fprintf(&sb, "- Net financial impact: %s\n", formatDollars(run.Financial.NetFinancialImpact))
	return Briefing{Persona: app.StageQuadrantAnalyst, Role: "Network Quadrant Analysis Strategist", Markdown: sb.String()}
}

func (b *BriefingBuilder) competitiveIntel(run *app.RunResult) Briefing {
	var sb strings.Builder
	sb.WriteString("## Competitive Intelligence Briefing\n\n")
	fmt.Fprintf(&sb, "Market of %d providers with median quality %.2f and median cost $%.0f.\n\n",
		run.Market.Statistics.TotalProviders, run.Market.Statistics.MedianQuality, run.Market.Statistics.MedianCost)

	if len(run.Market.Threats) > 0 {
		sb.WriteString("### Competitive Threats\n\n")
		for _, t := range run.Market.Threats {
			fmt.Fprintf(&sb, "- %s (%s): %s\n", t.ProviderName, t.ThreatLevel, t.Description)
		}
		sb.WriteString("\n")
	}
	if len(run.Market.Opportunities) > 0 {
		sb.WriteString("### Market Opportunities\n\n")
		for _, o := range run.Market.Opportunities {
			fmt.Fprintf(&sb, "- %s: %s\n", o.OpportunityType, o.Description)
		}
		sb.WriteString("\n")
	}

	sb.WriteString("### Geographic Footprint\n\n")
	fmt.Fprintf(&sb, "The network touches %d states and %d primary markets.\n",
		run.States.TotalStates, run.CBSAs.TotalCBSAs)
	if run.CBSAs.HighestOpportunity != "" {
		fmt.Fprintf(&sb, "The largest savings opportunity sits in %s.\n", run.CBSAs.HighestOpportunity)
	}
	if len(run.CoverageGaps) > 0 {
		fmt.Fprintf(&sb, "%d states have clinical group coverage gaps; the widest is %s (%d missing groups).\n",
			len(run.CoverageGaps), run.CoverageGaps[0].State, len(run.CoverageGaps[0].MissingGroups))
	}
	return Briefing{Persona: app.StageCompetitiveIntel, Role: "Market Intelligence Analyst", Markdown: sb.String()}
}

func (b *BriefingBuilder) executiveStrategist(run *app.RunResult) Briefing {
	var sb strings.Builder
	sb.WriteString("## Executive Strategist Briefing\n\n")
	fmt.Fprintf(&sb, "Network adequacy stands at **%.1f (%s)**: clinical %.1f, geographic %.1f, risk %.1f.\n\n",
		run.Adequacy.Overall, run.Adequacy.Level,
		run.Adequacy.Clinical.Score, run.Adequacy.Geographic.Score, run.Adequacy.Risk.Score)

	sb.WriteString("### Strategic Actions\n\n")
	for _, label := range quadrant.Labels {
		insight, ok := run.Insights[label]
		if !ok || insight.Count == 0 {
			continue
		}
		fmt.Fprintf(&sb, "**%s** (%d providers, avg quality %.1f, avg cost $%.0f):\n", label, insight.Count, insight.AvgQuality, insight.AvgCost)
		for _, action := range quadrant.Playbook(label) {
			fmt.Fprintf(&sb, "- %s\n", action)
		}
		sb.WriteString("\n")
	}

	sb.WriteString("### Priority Markets\n\n")
	ranked := append([]string(nil), topStates(run, 3)...)
	for _, st := range ranked {
		fmt.Fprintf(&sb, "- %s: %s opportunity\n", st, formatDollars(run.States.Details[st].TotalOpportunity))
	}
	return Briefing{Persona: app.StageExecutiveStrategist, Role: "Healthcare Network Strategy Executive", Markdown: sb.String()}
}

func topStates(run *app.RunResult, n int) []string {
	states := make([]string, 0, n)
	for i, r := range run.States.Rankings {
		if i >= n {
			break
		}
		states = append(states, r.State)
	}
	sort.Strings(states)
	return states
}

func formatDollars(v float64) string {
	if v >= 1000000 {
		return fmt.Sprintf("$%.1fM", v/1000000)
	}
	if v >= 1000 {
		return fmt.Sprintf("$%.0fK", v/1000)
	}
	return fmt.Sprintf("$%.0f", v)
}

func formatInt(v int) string {
	if v >= 1000000 {
		return fmt.Sprintf("%.1fM", float64(v)/1000000)
	}
	if v >= 1000 {
		return fmt.Sprintf("%.1fK", float64(v)/1000)
	}
	return fmt.Sprintf("%d", v)
}
