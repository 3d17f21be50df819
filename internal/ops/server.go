// Package ops provides the operational HTTP endpoints for long-running
// modes: Prometheus metrics, liveness, and readiness.
package ops

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"sync"
	"time"

	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/sirupsen/logrus"
)

// Pinger checks connectivity to a backing store, typically the quote
// database pool.
type Pinger interface {
	Ping(ctx context.Context) error
}

// Config holds the ops server settings.
type Config struct {
	ServiceName string
	Port        int
	MetricsPath string
	Logger      *logrus.Logger
	Pinger      Pinger
}

type statusResponse struct {
	Status  string            `json:"status"`
	Service string            `json:"service"`
	Checks  map[string]string `json:"checks,omitempty"`
}

// Server serves the metrics and health endpoints on a dedicated port.
type Server struct {
	cfg    Config
	server *http.Server

	mu    sync.RWMutex
	ready bool
}

// NewServer creates an ops server; it does not listen until Start.
func NewServer(cfg Config) *Server {
	if cfg.MetricsPath == "" {
		cfg.MetricsPath = "/metrics"
	}
	if cfg.Port == 0 {
		cfg.Port = 9090
	}
	return &Server{cfg: cfg}
}

// SetReady flips the readiness flag reported by /ready.
func (s *Server) SetReady(ready bool) {
	s.mu.Lock()
	s.ready = ready
	s.mu.Unlock()
}

func (s *Server) isReady() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.ready
}

// Handler builds the route table. Exposed separately from Start so tests
// can drive it without a listener.
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.Handle(s.cfg.MetricsPath, promhttp.Handler())
	mux.HandleFunc("/health", s.handleHealth)
	mux.HandleFunc("/ready", s.handleReady)
	return mux
}

// Start listens in the background and shuts down when ctx is cancelled.
func (s *Server) Start(ctx context.Context) {
	s.server = &http.Server{
		Addr:         fmt.Sprintf(":%d", s.cfg.Port),
		Handler:      s.Handler(),
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		if s.cfg.Logger != nil {
			s.cfg.Logger.WithFields(logrus.Fields{
				"port":    s.cfg.Port,
				"service": s.cfg.ServiceName,
			}).Info("Ops server starting")
		}
		if err := s.server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			if s.cfg.Logger != nil {
				s.cfg.Logger.WithError(err).Error("Ops server error")
			}
		}
	}()

	go func() {
		<-ctx.Done()
		s.Shutdown()
	}()
}

// Shutdown drains in-flight requests with a short deadline.
func (s *Server) Shutdown() error {
	if s.server == nil {
		return nil
	}
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	return s.server.Shutdown(ctx)
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, statusResponse{
		Status:  "ok",
		Service: s.cfg.ServiceName,
	})
}

func (s *Server) handleReady(w http.ResponseWriter, r *http.Request) {
	checks := map[string]string{}
	healthy := s.isReady()
	if healthy {
		checks["service"] = "ok"
	} else {
		checks["service"] = "not_ready"
	}

	if s.cfg.Pinger != nil {
		ctx, cancel := context.WithTimeout(r.Context(), 3*time.Second)
		defer cancel()
		if err := s.cfg.Pinger.Ping(ctx); err != nil {
			healthy = false
			checks["quote_db"] = fmt.Sprintf("error: %v", err)
		} else {
			checks["quote_db"] = "ok"
		}
	}

	status := http.StatusOK
	response := statusResponse{Status: "ok", Service: s.cfg.ServiceName, Checks: checks}
	if !healthy {
		status = http.StatusServiceUnavailable
		response.Status = "not_ready"
	}
	writeJSON(w, status, response)
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(body)
}
