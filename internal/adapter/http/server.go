// Package http exposes the dashboard over a JSON REST API, alongside the
// operational health, readiness, and metrics endpoints.
package http

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/couchcryptid/crisis-coordination-service/internal/dashboard"
	"github.com/couchcryptid/crisis-coordination-service/internal/session"
)

// sessionHeader carries the session key issued by POST /api/v1/sessions.
const sessionHeader = "X-Session-ID"

// ReadinessChecker reports whether the service is ready to serve traffic.
type ReadinessChecker interface {
	CheckReadiness(ctx context.Context) error
}

// Server exposes the dashboard actions and projections plus health,
// readiness, and metrics endpoints.
type Server struct {
	httpServer  *http.Server
	svc         *dashboard.Service
	defaultCaps dashboard.Capacities
	logger      *slog.Logger
}

// NewServer creates an HTTP server routing the dashboard API.
// defaultCaps supplies the capacity totals used when a resources request
// does not override them.
func NewServer(addr string, svc *dashboard.Service, defaultCaps dashboard.Capacities, logger *slog.Logger) *Server {
	s := &Server{
		svc:         svc,
		defaultCaps: defaultCaps,
		logger:      logger,
	}

	r := mux.NewRouter()
	r.HandleFunc("/healthz", s.handleHealth).Methods(http.MethodGet)
	r.HandleFunc("/readyz", handleReady(svc)).Methods(http.MethodGet)
	r.Handle("/metrics", promhttp.Handler()).Methods(http.MethodGet)

	api := r.PathPrefix("/api/v1").Subrouter()
	api.HandleFunc("/sessions", s.handleCreateSession).Methods(http.MethodPost)
	api.HandleFunc("/regions", s.handleRegions).Methods(http.MethodGet)

	api.Handle("/region", s.withSession(s.handleSelectRegion)).Methods(http.MethodPost)
	api.Handle("/region/refresh", s.withSession(s.handleRefresh)).Methods(http.MethodPost)
	api.Handle("/districts", s.withSession(s.handleTable)).Methods(http.MethodGet)
	api.Handle("/resources", s.withSession(s.handleResources)).Methods(http.MethodGet)
	api.Handle("/chart", s.withSession(s.handleChart)).Methods(http.MethodGet)
	api.Handle("/map", s.withSession(s.handleMap)).Methods(http.MethodGet)
	api.Handle("/heatmap", s.withSession(s.handleHeatmap)).Methods(http.MethodGet)
	api.Handle("/requests", s.withSession(s.handleSubmit)).Methods(http.MethodPost)
	api.Handle("/requests", s.withSession(s.handleListRequests)).Methods(http.MethodGet)
	api.Handle("/requests/{index:[0-9]+}/approve", s.withSession(s.handleApprove)).Methods(http.MethodPost)
	api.Handle("/login", s.withSession(s.handleLogin)).Methods(http.MethodPost)

	s.httpServer = &http.Server{
		Addr:         addr,
		Handler:      r,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	return s
}

// Start begins listening. Returns http.ErrServerClosed on graceful shutdown.
func (s *Server) Start() error {
	s.logger.Info("http server starting", "addr", s.httpServer.Addr)
	return s.httpServer.ListenAndServe()
}

// Shutdown gracefully drains connections within the given context deadline.
func (s *Server) Shutdown(ctx context.Context) error {
	return s.httpServer.Shutdown(ctx)
}

// ServeHTTP delegates to the underlying handler, useful for testing.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.httpServer.Handler.ServeHTTP(w, r)
}

// withSession resolves the session header before invoking the handler.
// Requests with a missing or unknown session key get a 401.
func (s *Server) withSession(h func(w http.ResponseWriter, r *http.Request, st *session.State)) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := r.Header.Get(sessionHeader)
		if id == "" {
			writeError(w, http.StatusUnauthorized, "missing "+sessionHeader+" header")
			return
		}
		st, ok := s.svc.Session(id)
		if !ok {
			writeError(w, http.StatusUnauthorized, "unknown session")
			return
		}
		h(w, r, st)
	})
}

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "healthy"})
}

func handleReady(checker ReadinessChecker) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
		defer cancel()

		if err := checker.CheckReadiness(ctx); err != nil {
			writeJSON(w, http.StatusServiceUnavailable, map[string]string{
				"status": "not ready",
				"error":  err.Error(),
			})
			return
		}
		writeJSON(w, http.StatusOK, map[string]string{"status": "ready"})
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v) //nolint:errcheck // best-effort response
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"error": msg})
}
