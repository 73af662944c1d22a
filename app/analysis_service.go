// Package app orchestrates full network analysis runs over a provider
// roster. It wires the engine stages together and tracks run progress; it
// holds results in memory only.
package app

import (
	"context"
	"fmt"
	"sync"
	"time"

	"golang.org/x/sync/errgroup"

	"provnet/domain/adequacy"
	"provnet/domain/core"
	"provnet/domain/provider"
	"provnet/domain/quadrant"
	"provnet/domain/scenario"
	"provnet/internal"
	"provnet/internal/analysis"
	"provnet/ports"
)

// StageStatus tracks a pipeline stage through its lifecycle
type StageStatus string

const (
	StagePending  StageStatus = "Pending"
	StageRunning  StageStatus = "Running"
	StageComplete StageStatus = "Complete"
	StageFailed   StageStatus = "Failed"
)

// Stage names mirror the analyst roles the pipeline automates.
const (
	StageDataSpecialist      = "Data Specialist"
	StageQuadrantAnalyst     = "Quadrant Analyst"
	StageCompetitiveIntel    = "Competitive Intelligence"
	StageExecutiveStrategist = "Executive Strategist"
)

// StageProgress is a snapshot of one stage's state within a run
type StageProgress struct {
	Name   string      `json:"name"`
	Status StageStatus `json:"status"`
}

// RunResult holds the complete output of one analysis run
type RunResult struct {
	RunID       core.RunID          `json:"run_id"`
	GeneratedAt time.Time           `json:"generated_at"`
	Thresholds  quadrant.Thresholds `json:"thresholds"`

	Roster     []provider.Record     `json:"roster"`
	Classified []analysis.Classified `json:"classified"`

	QuadrantCounts map[quadrant.Label]int                      `json:"quadrant_counts"`
	Insights       map[quadrant.Label]analysis.QuadrantInsight `json:"insights"`
	Metrics        analysis.NetworkMetrics                     `json:"metrics"`

	Removals  []analysis.Classified    `json:"removal_candidates"`
	Additions []analysis.Classified    `json:"addition_candidates"`
	Financial analysis.FinancialImpact `json:"financial_impact"`
	Adequacy  adequacy.Assessment      `json:"adequacy"`

	Market        analysis.MarketAnalysis             `json:"market"`
	States        analysis.StateAnalysis              `json:"states"`
	CBSAs         analysis.CBSAAnalysis               `json:"cbsas"`
	CoverageGaps  []analysis.CoverageGap              `json:"coverage_gaps"`
	Expansion     []analysis.ExpansionOpportunity     `json:"expansion_opportunities"`
	Consolidation []analysis.ConsolidationOpportunity `json:"consolidation_opportunities"`

	Stages []StageProgress `json:"stages"`
}

// AnalysisService runs the analysis pipeline and retains the latest result
type AnalysisService struct {
	source      ports.ProviderSource
	thresholds  quadrant.Thresholds
	adequacyCfg analysis.AdequacyConfig
	scenarioCfg analysis.ScenarioConfig
	logger      *internal.Logger

	mu      sync.RWMutex
	lastRun *RunResult
	stages  []StageProgress
}

// NewAnalysisService creates the orchestrator. Configs are validated once
// here so every run can assume them sound.
func NewAnalysisService(source ports.ProviderSource, thresholds quadrant.Thresholds, adequacyCfg analysis.AdequacyConfig, scenarioCfg analysis.ScenarioConfig, logger *internal.Logger) (*AnalysisService, error) {
	if err := thresholds.Validate(); err != nil {
		return nil, fmt.Errorf("invalid quadrant thresholds: %w", err)
	}
	if err := adequacyCfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid adequacy config: %w", err)
	}
	if logger == nil {
		logger = internal.DefaultLogger
	}
	return &AnalysisService{
		source:      source,
		thresholds:  thresholds,
		adequacyCfg: adequacyCfg,
		scenarioCfg: scenarioCfg,
		logger:      logger,
		stages:      newStages(),
	}, nil
}

func newStages() []StageProgress {
	return []StageProgress{
		{Name: StageDataSpecialist, Status: StagePending},
		{Name: StageQuadrantAnalyst, Status: StagePending},
		{Name: StageCompetitiveIntel, Status: StagePending},
		{Name: StageExecutiveStrategist, Status: StagePending},
	}
}

func (s *AnalysisService) setStage(name string, status StageStatus) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.stages {
		if s.stages[i].Name == name {
			s.stages[i].Status = status
		}
	}
}

// Stages returns the progress snapshot of the current or last run.
func (s *AnalysisService) Stages() []StageProgress {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]StageProgress, len(s.stages))
	copy(out, s.stages)
	return out
}

// LatestRun returns the most recent completed run, or nil when none has
// finished yet.
func (s *AnalysisService) LatestRun() *RunResult {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.lastRun
}

// Run executes the full pipeline: roster load, quadrant classification and
// candidate selection, then the competitive and geographic stages in
// parallel, and finally assembly of the run result.
func (s *AnalysisService) Run(ctx context.Context) (*RunResult, error) {
	runID := core.RunID(core.NewID())
	s.logger.Info("[Pipeline] Starting analysis run %s", runID)

	s.mu.Lock()
	s.stages = newStages()
	s.mu.Unlock()

	result := &RunResult{
		RunID:       runID,
		GeneratedAt: time.Now().UTC(),
		Thresholds:  s.thresholds,
	}

	// Stage 1: roster load and network-level metrics.
	s.setStage(StageDataSpecialist, StageRunning)
	roster, err := s.source.LoadRoster(ctx)
	if err != nil {
		s.setStage(StageDataSpecialist, StageFailed)
		return nil, fmt.Errorf("roster load failed: %w", err)
	}
	result.Roster = roster
	result.Metrics = analysis.CalculateNetworkMetrics(roster)
	s.setStage(StageDataSpecialist, StageComplete)
	s.logger.Debug("[Pipeline] Loaded %d providers", len(roster))

	// Stage 2: classification, candidates, financial impact, adequacy.
	s.setStage(StageQuadrantAnalyst, StageRunning)
	result.Classified = analysis.ClassifyAll(roster, s.thresholds)
	result.QuadrantCounts = analysis.QuadrantSummary(result.Classified)
	result.Insights = analysis.QuadrantInsights(result.Classified)
	result.Removals = analysis.SelectRemovalCandidates(result.Classified)
	result.Additions = analysis.SelectAdditionCandidates(result.Classified, s.thresholds)
	result.Financial = analysis.CalculateFinancialImpact(result.Removals, result.Additions, s.thresholds)

	inNetwork := make([]provider.Record, 0, len(roster))
	for _, r := range roster {
		if r.NetworkStatus == provider.InNetwork {
			inNetwork = append(inNetwork, r)
		}
	}
	result.Adequacy = analysis.AssessAdequacy(inNetwork, s.adequacyCfg)
	s.setStage(StageQuadrantAnalyst, StageComplete)

	// Stage 3: market and geographic views are independent of each other.
	s.setStage(StageCompetitiveIntel, StageRunning)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		result.Market = analysis.AnalyzeMarket(roster)
		return gctx.Err()
	})
	g.Go(func() error {
		result.States = analysis.AnalyzeByState(roster)
		result.CBSAs = analysis.AnalyzeByCBSA(roster)
		return gctx.Err()
	})
	g.Go(func() error {
		result.CoverageGaps = analysis.IdentifyCoverageGaps(roster)
		result.Expansion = analysis.IdentifyExpansionOpportunities(roster)
		result.Consolidation = analysis.IdentifyConsolidationOpportunities(roster)
		return gctx.Err()
	})
	if err := g.Wait(); err != nil {
		s.setStage(StageCompetitiveIntel, StageFailed)
		return nil, fmt.Errorf("analysis run cancelled: %w", err)
	}
	s.setStage(StageCompetitiveIntel, StageComplete)

	// Stage 4: retain the assembled run.
	s.setStage(StageExecutiveStrategist, StageRunning)
	result.Stages = s.Stages()
	s.mu.Lock()
	s.lastRun = result
	s.mu.Unlock()
	s.setStage(StageExecutiveStrategist, StageComplete)
	result.Stages = s.Stages()

	s.logger.Info("[Pipeline] Run %s complete: %d providers, %d removal candidates, %d addition candidates",
		runID, len(roster), len(result.Removals), len(result.Additions))
	return result, nil
}

// CompareScenario diffs a proposed network against the current one using the
// latest run's roster.
func (s *AnalysisService) CompareScenario(currentIDs, proposedIDs []core.ProviderID, name string) (scenario.Result, error) {
	run := s.LatestRun()
	if run == nil {
		return scenario.Result{}, core.ErrRunNotFound
	}
	return analysis.CompareScenario(run.Roster, currentIDs, proposedIDs, name, s.scenarioCfg), nil
}

// ProviderProfile returns the competitive profile for one provider from the
// latest run's roster.
func (s *AnalysisService) ProviderProfile(id core.ProviderID) (analysis.ProviderProfile, error) {
	run := s.LatestRun()
	if run == nil {
		return analysis.ProviderProfile{}, core.ErrRunNotFound
	}
	return analysis.AnalyzeProvider(run.Roster, id)
}
