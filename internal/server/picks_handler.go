package server

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/yourusername/siggys-picks/internal/metrics"
	"github.com/yourusername/siggys-picks/internal/models"
	"github.com/yourusername/siggys-picks/internal/picks"
)

// PickRequest is the body of POST /v1/picks
type PickRequest struct {
	Match models.MatchInput `json:"match"`
	// Overrides is resolved leniently: a malformed payload yields the defaults.
	Overrides any `json:"overrides,omitempty"`
}

func (s *Server) handlePicks(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		w.Header().Set("Allow", http.MethodPost)
		writeError(w, http.StatusMethodNotAllowed, errors.New("method not allowed"))
		return
	}
	if s.limiter != nil && !s.limiter.Allow() {
		metrics.RecordRateLimited()
		writeError(w, http.StatusTooManyRequests, errors.New("rate limit exceeded"))
		return
	}

	body := r.Body
	if s.settings.MaxBodyBytes > 0 {
		body = http.MaxBytesReader(w, r.Body, int64(s.settings.MaxBodyBytes))
	}

	var req PickRequest
	if err := json.NewDecoder(body).Decode(&req); err != nil {
		status := http.StatusBadRequest
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			status = http.StatusRequestEntityTooLarge
		}
		writeError(w, status, fmt.Errorf("%w: %v", models.ErrMatchDecode, err))
		return
	}
	if err := models.ValidateMatch(req.Match); err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}

	engine := s.engineFor(req.Overrides)
	writeJSON(w, http.StatusOK, engine.Record(req.Match))
}

// engineFor returns the shared engine, or a request-scoped one when overrides are supplied.
func (s *Server) engineFor(overrides any) *picks.Engine {
	if overrides == nil {
		return s.engine
	}

	cfg, cached, err := s.overrides.Resolve(overrides)
	switch {
	case err != nil:
		s.audit.LogConfigFallback("request", err)
		metrics.RecordConfigFallback()
	case !cached:
		s.audit.LogConfigResolved("request", cfg.MarketWeight, true)
	}
	return picks.NewEngine(cfg, s.recorder, s.logger)
}
