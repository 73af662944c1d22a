package app

import (
	"context"
	"errors"
	"testing"

	"provnet/domain/core"
	"provnet/domain/provider"
	"provnet/domain/quadrant"
	"provnet/internal/analysis"
	"provnet/internal/testkit"
)

type stubSource struct {
	roster []provider.Record
	err    error
}

func (s stubSource) LoadRoster(_ context.Context) ([]provider.Record, error) {
	return s.roster, s.err
}

func newTestService(t *testing.T, source stubSource) *AnalysisService {
	t.Helper()
	svc, err := NewAnalysisService(source, quadrant.DefaultThresholds(), analysis.DefaultAdequacyConfig(), analysis.DefaultScenarioConfig(), nil)
	if err != nil {
		t.Fatalf("NewAnalysisService: %v", err)
	}
	return svc
}

func TestAnalysisService_Run(t *testing.T) {
	roster := testkit.NewGenerator(42).Roster(50)
	svc := newTestService(t, stubSource{roster: roster})

	result, err := svc.Run(context.Background())
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if result.RunID == "" {
		t.Error("run id must be set")
	}
	if len(result.Roster) != 50 || len(result.Classified) != 50 {
		t.Errorf("roster/classified sizes = %d/%d, want 50/50", len(result.Roster), len(result.Classified))
	}

	total := 0
	for _, n := range result.QuadrantCounts {
		total += n
	}
	if total != 50 {
		t.Errorf("quadrant counts sum to %d, want 50", total)
	}

	if result.Metrics.TotalProviders != 50 {
		t.Errorf("metrics total = %d, want 50", result.Metrics.TotalProviders)
	}
	if result.Adequacy.Overall == 0 {
		t.Error("adequacy should be assessed over the contracted network")
	}

	for _, st := range result.Stages {
		if st.Status != StageComplete {
			t.Errorf("stage %s = %s, want Complete", st.Name, st.Status)
		}
	}

	if svc.LatestRun() != result {
		t.Error("LatestRun must return the run just produced")
	}
}

func TestAnalysisService_RunSourceFailure(t *testing.T) {
	wantErr := errors.New("connection refused")
	svc := newTestService(t, stubSource{err: wantErr})

	if _, err := svc.Run(context.Background()); !errors.Is(err, wantErr) {
		t.Fatalf("expected wrapped source error, got %v", err)
	}

	for _, st := range svc.Stages() {
		if st.Name == StageDataSpecialist && st.Status != StageFailed {
			t.Errorf("data stage = %s, want Failed", st.Status)
		}
	}
	if svc.LatestRun() != nil {
		t.Error("failed run must not be retained")
	}
}

func TestAnalysisService_QueriesBeforeFirstRun(t *testing.T) {
	svc := newTestService(t, stubSource{})

	if _, err := svc.CompareScenario(nil, nil, "baseline"); !errors.Is(err, core.ErrRunNotFound) {
		t.Errorf("CompareScenario without a run: got %v", err)
	}
	if _, err := svc.ProviderProfile(core.ProviderID("PROV_001")); !errors.Is(err, core.ErrRunNotFound) {
		t.Errorf("ProviderProfile without a run: got %v", err)
	}
}

func TestAnalysisService_ScenarioAfterRun(t *testing.T) {
	roster := testkit.NewGenerator(7).Roster(30)
	svc := newTestService(t, stubSource{roster: roster})
	if _, err := svc.Run(context.Background()); err != nil {
		t.Fatalf("Run: %v", err)
	}

	var current []core.ProviderID
	for _, r := range roster {
		if r.NetworkStatus == provider.InNetwork {
			current = append(current, r.ProviderID)
		}
	}

	result, err := svc.CompareScenario(current, current, "status quo")
	if err != nil {
		t.Fatalf("CompareScenario: %v", err)
	}
	if result.ScenarioName != "status quo" {
		t.Errorf("scenario name = %s", result.ScenarioName)
	}
	if result.Deltas.QualityChange != 0 {
		t.Errorf("identical subsets should show no quality movement, got %v", result.Deltas.QualityChange)
	}

	profile, err := svc.ProviderProfile(roster[0].ProviderID)
	if err != nil {
		t.Fatalf("ProviderProfile: %v", err)
	}
	if profile.Target.ProviderID != roster[0].ProviderID {
		t.Errorf("profile target = %s", profile.Target.ProviderID)
	}
}

func TestNewAnalysisService_RejectsBadConfig(t *testing.T) {
	bad := quadrant.Thresholds{Quality: -1, Cost: 600}
	if _, err := NewAnalysisService(stubSource{}, bad, analysis.DefaultAdequacyConfig(), analysis.DefaultScenarioConfig(), nil); err == nil {
		t.Fatal("expected config validation error")
	}
}
