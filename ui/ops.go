package ui

import (
	"log"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"provnet/app"
)

// OpsServer is the operations sidecar: health and readiness probes plus a
// lightweight pipeline status view, kept off the dashboard port.
type OpsServer struct {
	router  *chi.Mux
	service *app.AnalysisService
}

// NewOpsServer creates the sidecar
func NewOpsServer(service *app.AnalysisService) *OpsServer {
	s := &OpsServer{
		router:  chi.NewRouter(),
		service: service,
	}
	s.router.Use(middleware.Recoverer)

	s.router.Get("/healthz", s.handleHealth)
	s.router.Get("/readyz", s.handleReady)
	s.router.Mount("/debug", middleware.Profiler())
	return s
}

// Start serves the sidecar on addr. Intended to run in its own goroutine.
func (s *OpsServer) Start(addr string) error {
	log.Printf("[Ops] Starting operations sidecar on http://%s", addr)
	return http.ListenAndServe(addr, s.router)
}

func (s *OpsServer) handleHealth(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("ok"))
}

// handleReady reports ready once at least one analysis run has completed.
func (s *OpsServer) handleReady(w http.ResponseWriter, r *http.Request) {
	if s.service.LatestRun() == nil {
		w.WriteHeader(http.StatusServiceUnavailable)
		_, _ = w.Write([]byte("no completed analysis run"))
		return
	}
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("ready"))
}
