package analysis

import (
	"fmt"
	"testing"

	"provnet/domain/adequacy"
	"provnet/domain/core"
	"provnet/domain/provider"
)

func TestAssessAdequacy_EmptySubset(t *testing.T) {
	assessment := AssessAdequacy(nil, DefaultAdequacyConfig())

	// Clinical 0, geographic 0, risk 100 under the 0.4/0.4/0.2 blend.
	if assessment.Overall != 20.0 {
		t.Errorf("empty subset must score exactly 20.0, got %v", assessment.Overall)
	}
	if assessment.Level != adequacy.LevelCritical {
		t.Errorf("empty subset must be Critical, got %s", assessment.Level)
	}
	if assessment.Risk.Score != 100 {
		t.Errorf("empty subset is vacuously risk-free, got %v", assessment.Risk.Score)
	}
}

func TestAssessAdequacy_FullCoverage(t *testing.T) {
	cfg := DefaultAdequacyConfig()

	// Two providers per required group, two per state, no high risk.
	var subset []provider.Record
	i := 0
	for _, group := range cfg.RequiredGroups {
		for j := 0; j < 2; j++ {
			i++
			r := withGroup(rec(idFor(i), 4.0, 500), group)
			subset = append(subset, withStates(r, "NY", "CA"))
		}
	}

	assessment := AssessAdequacy(subset, cfg)
	if assessment.Clinical.Score != 100 {
		t.Errorf("clinical score = %v, want 100", assessment.Clinical.Score)
	}
	if assessment.Geographic.Score != 100 {
		t.Errorf("geographic score = %v, want 100", assessment.Geographic.Score)
	}
	if assessment.Risk.Score != 100 {
		t.Errorf("risk score = %v, want 100", assessment.Risk.Score)
	}
	if assessment.Overall != 100.0 {
		t.Errorf("overall = %v, want 100.0", assessment.Overall)
	}
	if assessment.Level != adequacy.LevelSafe {
		t.Errorf("level = %s, want Safe", assessment.Level)
	}
	for group, cov := range assessment.Clinical.ByGroup {
		if cov.Status != adequacy.StatusAdequate {
			t.Errorf("group %s should be Adequate with 2 providers, got %s", group, cov.Status)
		}
	}
}

func TestAssessAdequacy_LimitedVersusAdequate(t *testing.T) {
	cfg := DefaultAdequacyConfig()

	// One provider in Wounds, two in Behavioral Health, others missing.
	subset := []provider.Record{
		withGroup(rec("PROV_001", 4.0, 500), "Wounds"),
		withGroup(rec("PROV_002", 4.0, 500), "Behavioral Health"),
		withGroup(rec("PROV_003", 4.0, 500), "Behavioral Health"),
	}

	assessment := AssessAdequacy(subset, cfg)

	if got := assessment.Clinical.ByGroup["Wounds"].Status; got != adequacy.StatusLimited {
		t.Errorf("single-provider group should be Limited, got %s", got)
	}
	if got := assessment.Clinical.ByGroup["Behavioral Health"].Status; got != adequacy.StatusAdequate {
		t.Errorf("two-provider group should be Adequate, got %s", got)
	}
	if got := assessment.Clinical.ByGroup["MMTA_Endocrine"].Status; got != adequacy.StatusMissing {
		t.Errorf("uncovered group should be Missing, got %s", got)
	}

	// Presence-based aggregate: 2 of 6 required groups covered.
	want := 100 * 2.0 / 6.0
	if diff := assessment.Clinical.Score - want; diff > 1e-9 || diff < -1e-9 {
		t.Errorf("clinical score = %v, want %v", assessment.Clinical.Score, want)
	}
}

func TestAssessAdequacy_RiskConcentration(t *testing.T) {
	subset := []provider.Record{
		withRisk(rec("PROV_001", 4.0, 500), provider.RiskHigh),
		rec("PROV_002", 4.0, 500),
		rec("PROV_003", 4.0, 500),
		rec("PROV_004", 4.0, 500),
	}

	assessment := AssessAdequacy(subset, DefaultAdequacyConfig())
	if assessment.Risk.HighRiskCount != 1 {
		t.Errorf("high risk count = %d, want 1", assessment.Risk.HighRiskCount)
	}
	if assessment.Risk.Score != 75 {
		t.Errorf("risk score = %v, want 75", assessment.Risk.Score)
	}
	if assessment.Risk.RiskRatio != 0.25 {
		t.Errorf("risk ratio = %v, want 0.25", assessment.Risk.RiskRatio)
	}
	if len(assessment.Risk.HighRiskNames) != 1 || assessment.Risk.HighRiskNames[0] != "Provider PROV_001" {
		t.Errorf("high risk names = %v", assessment.Risk.HighRiskNames)
	}
}

func TestAdequacyConfig_Validate(t *testing.T) {
	if err := DefaultAdequacyConfig().Validate(); err != nil {
		t.Errorf("default config should validate: %v", err)
	}

	cfg := DefaultAdequacyConfig()
	cfg.RequiredGroups = nil
	if err := cfg.Validate(); !core.IsConfigError(err) {
		t.Errorf("empty required groups should be a config error, got %v", err)
	}

	cfg = DefaultAdequacyConfig()
	cfg.Weights.Clinical = 0.5
	if err := cfg.Validate(); !core.IsConfigError(err) {
		t.Errorf("weights not summing to 1 should be a config error, got %v", err)
	}

	cfg = DefaultAdequacyConfig()
	cfg.Cutoffs.Safe = 50
	if err := cfg.Validate(); !core.IsConfigError(err) {
		t.Errorf("safe cutoff below warning should be a config error, got %v", err)
	}
}

func idFor(i int) string {
	return fmt.Sprintf("PROV_%03d", i)
}
