package adequacy

// Level is the discrete adequacy verdict derived from the overall score.
type Level string

const (
	LevelSafe     Level = "Safe"
	LevelWarning  Level = "Warning"
	LevelCritical Level = "Critical"
)

// GroupStatus describes how well a single required clinical group is staffed
// inside a candidate subset.
type GroupStatus string

const (
	StatusAdequate GroupStatus = "Adequate" // >= 2 providers
	StatusLimited  GroupStatus = "Limited"  // exactly 1 provider
	StatusMissing  GroupStatus = "Missing"  // 0 providers
)

// GroupCoverage is the per-clinical-group breakdown inside an assessment.
type GroupCoverage struct {
	ProviderCount int         `json:"provider_count"`
	StatesCovered int         `json:"states_covered"`
	Status        GroupStatus `json:"adequacy_status"`
}

// ClinicalCoverage scores presence of the required clinical groups. The
// aggregate score counts presence only; per-group headcount shows up in the
// GroupStatus ladder, not in the score.
type ClinicalCoverage struct {
	Score          float64                  `json:"coverage_score"`
	CoveredGroups  []string                 `json:"covered_groups"`
	MissingGroups  []string                 `json:"missing_groups"`
	ByGroup        map[string]GroupCoverage `json:"coverage_by_group"`
	RequiredGroups []string                 `json:"required_groups"`
}

// StateCoverage is the per-state breakdown inside a geographic assessment.
type StateCoverage struct {
	ProviderCount  int         `json:"provider_count"`
	ClinicalGroups int         `json:"clinical_groups_covered"`
	Status         GroupStatus `json:"adequacy_status"`
}

// GeographicCoverage scores the >=2-providers-per-touched-state rule.
type GeographicCoverage struct {
	Score         float64                  `json:"coverage_score"`
	StatesCovered int                      `json:"states_covered"`
	CBSAsCovered  int                      `json:"cbsas_covered"`
	ByState       map[string]StateCoverage `json:"state_coverage"`
}

// RiskConcentration scores exposure to providers whose removal is high risk.
type RiskConcentration struct {
	Score         float64  `json:"risk_score"`
	HighRiskCount int      `json:"high_risk_count"`
	TotalCount    int      `json:"total_providers"`
	RiskRatio     float64  `json:"risk_ratio"`
	HighRiskNames []string `json:"high_risk_names,omitempty"`
}

// Assessment is the full adequacy evaluation of a provider subset. Computed
// on demand, never cached: candidate subsets change every invocation.
type Assessment struct {
	Clinical   ClinicalCoverage   `json:"clinical_coverage"`
	Geographic GeographicCoverage `json:"geographic_coverage"`
	Risk       RiskConcentration  `json:"high_risk_assessment"`
	Overall    float64            `json:"adequacy_score"`
	Level      Level              `json:"adequacy_level"`
}

// Weights is the fixed blend of the three sub-scores.
type Weights struct {
	Clinical   float64 `json:"clinical"`
	Geographic float64 `json:"geographic"`
	Risk       float64 `json:"risk"`
}

// DefaultWeights returns the 0.4/0.4/0.2 blend.
func DefaultWeights() Weights {
	return Weights{Clinical: 0.4, Geographic: 0.4, Risk: 0.2}
}

// Cutoffs is the score ladder mapping overall score to a Level. The defaults
// are policy constants; overriding them breaks compatibility with the
// dashboard's verdict colors, so callers outside tests never should.
type Cutoffs struct {
	Safe    float64 `json:"safe"`
	Warning float64 `json:"warning"`
}

// DefaultCutoffs returns the 80/60 ladder.
func DefaultCutoffs() Cutoffs {
	return Cutoffs{Safe: 80, Warning: 60}
}

// LevelFor maps an overall score onto the ladder.
func (c Cutoffs) LevelFor(score float64) Level {
	switch {
	case score >= c.Safe:
		return LevelSafe
	case score >= c.Warning:
		return LevelWarning
	default:
		return LevelCritical
	}
}
