package quadrant

// playbooks maps each quadrant to its static contracting guidance. This is
// configuration data, not engine logic: the strings are fixed and carry no
// invariant beyond being non-empty for every quadrant.
var playbooks = map[Label][]string{
	PreferredPartners: {
		"Retain and expand partnerships",
		"Negotiate favorable contract renewals",
		"Use as benchmark for other providers",
		"Consider volume bonuses and incentives",
	},
	StrategicOpportunities: {
		"Negotiate cost reductions while maintaining quality",
		"Explore value-based payment models",
		"Consider selective contracting strategies",
		"Monitor for potential quality improvements",
	},
	PerformanceFocus: {
		"Implement quality improvement programs",
		"Provide additional training and support",
		"Set quality benchmarks and monitoring",
		"Consider performance-based incentives",
	},
	OptimizationCandidates: {
		"Initiate performance improvement plans",
		"Consider contract termination if no improvement",
		"Identify alternative providers in market",
		"Ensure network adequacy before removal",
	},
}

// Playbook returns the contracting guidance for a quadrant. Unknown labels
// fall back to a generic monitoring note rather than an empty list.
func Playbook(label Label) []string {
	if p, ok := playbooks[label]; ok {
		out := make([]string, len(p))
		copy(out, p)
		return out
	}
	return []string{"Monitor performance"}
}
