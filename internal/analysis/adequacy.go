package analysis

import (
	"fmt"
	"math"
	"sort"

	"provnet/domain/adequacy"
	"provnet/domain/core"
	"provnet/domain/provider"
)

// AdequacyConfig parameterizes the scorer. Defaults must match the policy
// constants the dashboard expects; the struct exists so tests and callers can
// see every knob explicitly rather than reaching into globals.
type AdequacyConfig struct {
	RequiredGroups []string         `json:"required_clinical_groups"`
	Weights        adequacy.Weights `json:"weights"`
	Cutoffs        adequacy.Cutoffs `json:"cutoffs"`
}

// DefaultAdequacyConfig returns the standard required-group catalog with the
// 0.4/0.4/0.2 blend and 80/60 ladder.
func DefaultAdequacyConfig() AdequacyConfig {
	return AdequacyConfig{
		RequiredGroups: append([]string(nil), provider.RequiredClinicalGroups...),
		Weights:        adequacy.DefaultWeights(),
		Cutoffs:        adequacy.DefaultCutoffs(),
	}
}

// Validate fails fast on unusable configuration.
func (c AdequacyConfig) Validate() error {
	if len(c.RequiredGroups) == 0 {
		return fmt.Errorf("%w: required clinical groups must be non-empty", core.ErrInvalidConfig)
	}
	sum := c.Weights.Clinical + c.Weights.Geographic + c.Weights.Risk
	if math.Abs(sum-1.0) > 1e-9 {
		return fmt.Errorf("%w: adequacy weights sum to %.4f, want 1.0", core.ErrInvalidConfig, sum)
	}
	if c.Cutoffs.Safe <= c.Cutoffs.Warning {
		return fmt.Errorf("%w: safe cutoff must exceed warning cutoff", core.ErrInvalidConfig)
	}
	return nil
}

// AssessAdequacy evaluates whether an arbitrary provider subset preserves
// clinical and geographic coverage and keeps high-risk concentration
// acceptable. An empty subset scores exactly 20.0 / Critical: no risky
// providers, but also no network.
func AssessAdequacy(subset []provider.Record, cfg AdequacyConfig) adequacy.Assessment {
	clinical := assessClinicalCoverage(subset, cfg.RequiredGroups)
	geographic := assessGeographicCoverage(subset)
	risk := assessRiskConcentration(subset)

	overall := cfg.Weights.Clinical*clinical.Score +
		cfg.Weights.Geographic*geographic.Score +
		cfg.Weights.Risk*risk.Score
	overall = math.Round(overall*10) / 10

	return adequacy.Assessment{
		Clinical:   clinical,
		Geographic: geographic,
		Risk:       risk,
		Overall:    overall,
		Level:      cfg.Cutoffs.LevelFor(overall),
	}
}

// assessClinicalCoverage scores presence of required clinical groups. The
// aggregate score counts presence only (one provider covers a group); the
// per-group ladder separately flags single-provider groups as Limited.
func assessClinicalCoverage(subset []provider.Record, required []string) adequacy.ClinicalCoverage {
	byGroup := make(map[string]adequacy.GroupCoverage, len(required))
	groupStates := make(map[string]map[string]struct{})
	groupCounts := make(map[string]int)

	for _, r := range subset {
		groupCounts[r.ClinicalGroup]++
		if groupStates[r.ClinicalGroup] == nil {
			groupStates[r.ClinicalGroup] = make(map[string]struct{})
		}
		for _, st := range r.OperatingStates {
			groupStates[r.ClinicalGroup][st] = struct{}{}
		}
	}

	var covered, missing []string
	for _, group := range required {
		count := groupCounts[group]
		status := adequacy.StatusMissing
		switch {
		case count >= 2:
			status = adequacy.StatusAdequate
		case count == 1:
			status = adequacy.StatusLimited
		}
		byGroup[group] = adequacy.GroupCoverage{
			ProviderCount: count,
			StatesCovered: len(groupStates[group]),
			Status:        status,
		}
		if count > 0 {
			covered = append(covered, group)
		} else {
			missing = append(missing, group)
		}
	}

	score := 0.0
	if len(required) > 0 {
		score = 100 * float64(len(covered)) / float64(len(required))
	}

	return adequacy.ClinicalCoverage{
		Score:          score,
		CoveredGroups:  covered,
		MissingGroups:  missing,
		ByGroup:        byGroup,
		RequiredGroups: append([]string(nil), required...),
	}
}

// assessGeographicCoverage applies the >=2-providers rule to every state any
// subset member touches. A touched state always has at least one provider, so
// the per-state ladder never reaches Missing here.
func assessGeographicCoverage(subset []provider.Record) adequacy.GeographicCoverage {
	stateProviders := make(map[string]int)
	stateGroups := make(map[string]map[string]struct{})
	cbsas := make(map[string]struct{})

	for _, r := range subset {
		if r.PrimaryCBSA != "" {
			cbsas[r.PrimaryCBSA] = struct{}{}
		}
		for _, st := range r.OperatingStates {
			stateProviders[st]++
			if stateGroups[st] == nil {
				stateGroups[st] = make(map[string]struct{})
			}
			stateGroups[st][r.ClinicalGroup] = struct{}{}
		}
	}

	byState := make(map[string]adequacy.StateCoverage, len(stateProviders))
	adequate := 0
	for st, count := range stateProviders {
		status := adequacy.StatusLimited
		if count >= 2 {
			status = adequacy.StatusAdequate
			adequate++
		}
		byState[st] = adequacy.StateCoverage{
			ProviderCount:  count,
			ClinicalGroups: len(stateGroups[st]),
			Status:         status,
		}
	}

	score := 0.0
	if len(stateProviders) > 0 {
		score = 100 * float64(adequate) / float64(len(stateProviders))
	}

	return adequacy.GeographicCoverage{
		Score:         score,
		StatesCovered: len(stateProviders),
		CBSAsCovered:  len(cbsas),
		ByState:       byState,
	}
}

// assessRiskConcentration penalizes the share of providers whose removal is
// labeled high risk. An empty subset is vacuously safe (score 100).
func assessRiskConcentration(subset []provider.Record) adequacy.RiskConcentration {
	if len(subset) == 0 {
		return adequacy.RiskConcentration{Score: 100}
	}

	var names []string
	highRisk := 0
	for _, r := range subset {
		if r.AdequacyRisk == provider.RiskHigh {
			highRisk++
			names = append(names, r.Name)
		}
	}
	sort.Strings(names)

	ratio := float64(highRisk) / float64(len(subset))
	return adequacy.RiskConcentration{
		Score:         math.Max(0, 100-ratio*100),
		HighRiskCount: highRisk,
		TotalCount:    len(subset),
		RiskRatio:     ratio,
		HighRiskNames: names,
	}
}
