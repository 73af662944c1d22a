package ui

import (
	"fmt"
	"log"
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"github.com/gin-gonic/gin"

	"provnet/ai"
	"provnet/app"
	"provnet/domain/core"
	"provnet/domain/provider"
	"provnet/internal/analysis"
)

// handleRunAnalysis executes the full pipeline and returns the run result
func (s *Server) handleRunAnalysis(c *gin.Context) {
	result, err := s.service.Run(c.Request.Context())
	if err != nil {
		log.Printf("[Handler] Analysis run failed: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, result)
}

// handleAnalysisStatus returns pipeline stage progress
func (s *Server) handleAnalysisStatus(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"stages": s.service.Stages()})
}

// latestRun fetches the last completed run or writes a 409 when none exists.
func (s *Server) latestRun(c *gin.Context) (*app.RunResult, bool) {
	run := s.service.LatestRun()
	if run == nil {
		c.JSON(http.StatusConflict, gin.H{"error": "no analysis run available; POST /api/analysis/run first"})
		return nil, false
	}
	return run, true
}

func (s *Server) handleNetworkMetrics(c *gin.Context) {
	run, ok := s.latestRun(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, run.Metrics)
}

// handleProviders lists the classified roster, optionally narrowed by
// repeatable query parameters (status, state, cbsa, group, risk,
// volume_band, quality_band, cost_band).
func (s *Server) handleProviders(c *gin.Context) {
	run, ok := s.latestRun(c)
	if !ok {
		return
	}

	filter := filterFromQuery(c)
	filtered := make([]analysis.Classified, 0, len(run.Classified))
	for _, cl := range run.Classified {
		if filter.Matches(cl.Record) {
			filtered = append(filtered, cl)
		}
	}

	c.JSON(http.StatusOK, gin.H{
		"providers": filtered,
		"count":     len(filtered),
		"total":     len(run.Classified),
	})
}

func filterFromQuery(c *gin.Context) provider.Filter {
	f := provider.Filter{
		States:         c.QueryArray("state"),
		CBSAs:          c.QueryArray("cbsa"),
		ClinicalGroups: c.QueryArray("group"),
	}
	for _, v := range c.QueryArray("status") {
		f.NetworkStatuses = append(f.NetworkStatuses, provider.NetworkStatus(v))
	}
	for _, v := range c.QueryArray("risk") {
		f.AdequacyRisks = append(f.AdequacyRisks, provider.AdequacyRisk(v))
	}
	for _, v := range c.QueryArray("volume_band") {
		f.VolumeBands = append(f.VolumeBands, provider.VolumeCategory(v))
	}
	for _, v := range c.QueryArray("quality_band") {
		f.QualityBands = append(f.QualityBands, provider.QualityCategory(v))
	}
	for _, v := range c.QueryArray("cost_band") {
		f.CostBands = append(f.CostBands, provider.CostCategory(v))
	}
	return f
}

func (s *Server) handleProviderProfile(c *gin.Context) {
	id := core.ProviderID(c.Param("id"))
	profile, err := s.service.ProviderProfile(id)
	if err != nil {
		if core.IsNotFoundError(err) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, profile)
}

func (s *Server) handleQuadrants(c *gin.Context) {
	run, ok := s.latestRun(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"thresholds": run.Thresholds,
		"counts":     run.QuadrantCounts,
		"insights":   run.Insights,
	})
}

func (s *Server) handleCandidates(c *gin.Context) {
	run, ok := s.latestRun(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"removal_candidates":  run.Removals,
		"addition_candidates": run.Additions,
	})
}

func (s *Server) handleFinancial(c *gin.Context) {
	run, ok := s.latestRun(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, run.Financial)
}

func (s *Server) handleAdequacy(c *gin.Context) {
	run, ok := s.latestRun(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, run.Adequacy)
}

func (s *Server) handleMarket(c *gin.Context) {
	run, ok := s.latestRun(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, run.Market)
}

func (s *Server) handleGeography(c *gin.Context) {
	run, ok := s.latestRun(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"states":                      run.States,
		"cbsas":                       run.CBSAs,
		"coverage_gaps":               run.CoverageGaps,
		"expansion_opportunities":     run.Expansion,
		"consolidation_opportunities": run.Consolidation,
	})
}

// scenarioRequest is the compare-scenario request body
type scenarioRequest struct {
	Name        string   `json:"name"`
	CurrentIDs  []string `json:"current_ids" binding:"required"`
	ProposedIDs []string `json:"proposed_ids" binding:"required"`
}

func (s *Server) handleCompareScenario(c *gin.Context) {
	var req scenarioRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": fmt.Sprintf("invalid scenario request: %v", err)})
		return
	}
	if req.Name == "" {
		req.Name = "Unnamed Scenario"
	}

	result, err := s.service.CompareScenario(toProviderIDs(req.CurrentIDs), toProviderIDs(req.ProposedIDs), req.Name)
	if err != nil {
		if core.IsNotFoundError(err) {
			c.JSON(http.StatusConflict, gin.H{"error": "no analysis run available; POST /api/analysis/run first"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, result)
}

func toProviderIDs(raw []string) []core.ProviderID {
	ids := make([]core.ProviderID, 0, len(raw))
	for _, r := range raw {
		ids = append(ids, core.ProviderID(r))
	}
	return ids
}

func (s *Server) handleExport(c *gin.Context) {
	run, ok := s.latestRun(c)
	if !ok {
		return
	}

	if err := os.MkdirAll(s.exportDir, 0o755); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": fmt.Sprintf("failed to prepare export directory: %v", err)})
		return
	}
	path := filepath.Join(s.exportDir, fmt.Sprintf("network_analysis_%s.xlsx", run.RunID))

	err := s.exporter.ExportWorkbook(c.Request.Context(), path, run.Roster, run.Classified, run.Removals, run.Additions)
	if err != nil {
		log.Printf("[Handler] Workbook export failed: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"path": path, "run_id": run.RunID})
}

func (s *Server) handleBriefings(c *gin.Context) {
	run, ok := s.latestRun(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, gin.H{"briefings": s.briefings.BuildAll(run)})
}

// handleBriefingsHTML renders the persona briefings as an HTML page.
func (s *Server) handleBriefingsHTML(c *gin.Context) {
	run, ok := s.latestRun(c)
	if !ok {
		return
	}

	var sb strings.Builder
	sb.WriteString("<!DOCTYPE html><html><head><title>Network Analysis Briefings</title></head><body>")
	for _, briefing := range s.briefings.BuildAll(run) {
		sb.WriteString(ai.RenderHTML(briefing.Markdown))
		sb.WriteString("<hr/>")
	}
	sb.WriteString("</body></html>")

	c.Header("Content-Type", "text/html")
	c.String(http.StatusOK, sb.String())
}
