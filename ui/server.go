// Package ui exposes the analysis engine as a JSON dashboard API.
package ui

import (
	"log"

	"github.com/gin-gonic/gin"

	"provnet/ai"
	"provnet/app"
	"provnet/ports"
)

// Server represents the dashboard API server
type Server struct {
	router    *gin.Engine
	service   *app.AnalysisService
	exporter  ports.RosterExporter
	briefings *ai.BriefingBuilder
	exportDir string
}

// NewServer creates a new dashboard server instance
func NewServer(service *app.AnalysisService, exporter ports.RosterExporter, exportDir string) *Server {
	s := &Server{
		router:    gin.Default(),
		service:   service,
		exporter:  exporter,
		briefings: ai.NewBriefingBuilder(),
		exportDir: exportDir,
	}
	s.setupRoutes()
	return s
}

// setupRoutes configures the application routes
func (s *Server) setupRoutes() {
	api := s.router.Group("/api")

	api.POST("/analysis/run", s.handleRunAnalysis)
	api.GET("/analysis/status", s.handleAnalysisStatus)

	api.GET("/network/metrics", s.handleNetworkMetrics)
	api.GET("/providers", s.handleProviders)
	api.GET("/providers/:id", s.handleProviderProfile)

	api.GET("/quadrants", s.handleQuadrants)
	api.GET("/candidates", s.handleCandidates)
	api.GET("/financial", s.handleFinancial)
	api.GET("/adequacy", s.handleAdequacy)

	api.GET("/market", s.handleMarket)
	api.GET("/geography", s.handleGeography)

	api.POST("/scenarios/compare", s.handleCompareScenario)
	api.POST("/export", s.handleExport)

	api.GET("/briefings", s.handleBriefings)
	s.router.GET("/briefings", s.handleBriefingsHTML)
}

// Start starts the web server
func (s *Server) Start(addr string) error {
	log.Printf("[Server] Starting provider network dashboard on http://%s", addr)
	return s.router.Run(addr)
}
