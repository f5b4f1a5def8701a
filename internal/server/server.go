// Package server exposes the pick engine over HTTP together with health, readiness and metrics endpoints.
package server

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net"
	"net/http"
	"strconv"
	"sync"
	"time"

	"github.com/sirupsen/logrus"
	"golang.org/x/time/rate"

	"github.com/yourusername/siggys-picks/internal/config"
	"github.com/yourusername/siggys-picks/internal/logger"
	"github.com/yourusername/siggys-picks/internal/metrics"
	"github.com/yourusername/siggys-picks/internal/picks"
)

// HealthResponse represents the JSON response for health check endpoints.
type HealthResponse struct {
	Status    string `json:"status"`
	Service   string `json:"service"`
	Timestamp string `json:"timestamp,omitempty"`
	Version   string `json:"version,omitempty"`
	Commit    string `json:"commit,omitempty"`
}

// ReadyResponse represents the JSON response for readiness check endpoints.
type ReadyResponse struct {
	Status   string            `json:"status"`
	Service  string            `json:"service"`
	Checks   map[string]string `json:"checks,omitempty"`
	Duration string            `json:"duration,omitempty"`
}

// ErrorResponse is returned for rejected requests.
type ErrorResponse struct {
	Error string `json:"error"`
}

// Server serves pick requests and operational endpoints.
type Server struct {
	serviceName string
	version     string
	commit      string
	settings    config.ServerConfig
	metricsCfg  config.MetricsConfig
	server      *http.Server
	logger      *logrus.Logger
	audit       *logger.AuditLogger
	engine      *picks.Engine
	recorder    picks.Recorder
	overrides   *OverrideCache
	limiter     *rate.Limiter
	mu          sync.RWMutex
	ready       bool
}

// Config holds the configuration for the server.
type Config struct {
	ServiceName string
	Version     string
	Commit      string
	Server      config.ServerConfig
	Metrics     config.MetricsConfig
	Logger      *logrus.Logger
	// Engine answers requests that carry no overrides.
	Engine *picks.Engine
	// Recorder is handed to engines built for per-request overrides.
	Recorder picks.Recorder
}

// NewServer creates a new pick server. Missing settings fall back to the loader defaults.
func NewServer(cfg Config) *Server {
	log := cfg.Logger
	if log == nil {
		log = logger.Discard()
	}
	settings := cfg.Server
	if settings.Port == 0 {
		settings.Port = 8080
	}
	if settings.ReadTimeoutSeconds == 0 {
		settings.ReadTimeoutSeconds = 5
	}
	if settings.WriteTimeoutSeconds == 0 {
		settings.WriteTimeoutSeconds = 10
	}
	engine := cfg.Engine
	if engine == nil {
		engine = picks.NewEngine(config.DefaultPicksConfig(), cfg.Recorder, log)
	}

	var limiter *rate.Limiter
	if settings.RateLimitPerSecond > 0 {
		burst := settings.RateLimitBurst
		if burst <= 0 {
			burst = 1
		}
		limiter = rate.NewLimiter(rate.Limit(settings.RateLimitPerSecond), burst)
	}

	return &Server{
		serviceName: cfg.ServiceName,
		version:     cfg.Version,
		commit:      cfg.Commit,
		settings:    settings,
		metricsCfg:  cfg.Metrics,
		logger:      log,
		audit:       logger.NewAuditLogger(log),
		engine:      engine,
		recorder:    cfg.Recorder,
		overrides:   NewOverrideCache(time.Duration(settings.OverrideCacheTTLSeconds)*time.Second, settings.OverrideCacheSize),
		limiter:     limiter,
	}
}

// SetReady marks the server as ready to accept traffic.
func (s *Server) SetReady(ready bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.ready = ready
}

// IsReady returns whether the server is ready.
func (s *Server) IsReady() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.ready
}

// Handler builds the request router.
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/health", s.handleHealth)
	mux.HandleFunc("/ready", s.handleReady)
	mux.HandleFunc("/live", s.handleLive)
	mux.HandleFunc("/v1/picks", s.handlePicks)
	if s.metricsCfg.Enabled {
		mux.Handle(s.metricsPath(), metrics.Handler())
	}
	return instrument(mux, s.metricsPath())
}

// Start binds the listen address and serves in the background. A bind failure is
// returned and leaves the server not ready. The caller owns Shutdown.
func (s *Server) Start(ctx context.Context) error {
	s.server = &http.Server{
		Addr:         ":" + strconv.Itoa(s.settings.Port),
		Handler:      s.Handler(),
		ReadTimeout:  time.Duration(s.settings.ReadTimeoutSeconds) * time.Second,
		WriteTimeout: time.Duration(s.settings.WriteTimeoutSeconds) * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	var lc net.ListenConfig
	ln, err := lc.Listen(ctx, "tcp", s.server.Addr)
	if err != nil {
		return fmt.Errorf("failed to listen on %s: %w", s.server.Addr, err)
	}

	s.logger.WithFields(logrus.Fields{
		"port":    s.settings.Port,
		"service": s.serviceName,
	}).Info("Pick server starting")
	s.SetReady(true)

	go func() {
		if err := s.server.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
			s.SetReady(false)
			s.logger.WithError(err).Error("Pick server error")
		}
	}()

	return nil
}

// Shutdown gracefully shuts down the server.
func (s *Server) Shutdown() error {
	if s.server == nil {
		return nil
	}
	s.SetReady(false)
	s.logger.Info("Pick server shutting down")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	return s.server.Shutdown(ctx)
}

// handleHealth handles the /health endpoint - basic liveness check.
func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, HealthResponse{
		Status:    "ok",
		Service:   s.serviceName,
		Timestamp: time.Now().UTC().Format(time.RFC3339),
		Version:   s.version,
		Commit:    s.commit,
	})
}

// handleLive handles the /live endpoint - kubernetes liveness probe.
func (s *Server) handleLive(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, HealthResponse{
		Status:  "ok",
		Service: s.serviceName,
	})
}

// handleReady handles the /ready endpoint.
func (s *Server) handleReady(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	checks := make(map[string]string)
	allHealthy := true

	if !s.IsReady() {
		allHealthy = false
		checks["service"] = "not_ready"
	} else {
		checks["service"] = "ok"
	}

	engineCfg := s.engine.Config()
	if err := config.ValidatePicks(&engineCfg); err != nil {
		allHealthy = false
		checks["picks_config"] = err.Error()
	} else {
		checks["picks_config"] = "ok"
	}

	response := ReadyResponse{
		Service:  s.serviceName,
		Checks:   checks,
		Duration: time.Since(start).String(),
	}
	status := http.StatusOK
	response.Status = "ok"
	if !allHealthy {
		response.Status = "not_ready"
		status = http.StatusServiceUnavailable
	}
	writeJSON(w, status, response)
}

func (s *Server) metricsPath() string {
	if s.metricsCfg.Path == "" {
		return "/metrics"
	}
	return s.metricsCfg.Path
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}

func writeError(w http.ResponseWriter, status int, err error) {
	writeJSON(w, status, ErrorResponse{Error: err.Error()})
}
