package picks

import (
	"time"

	"github.com/sirupsen/logrus"

	"github.com/yourusername/siggys-picks/internal/config"
	"github.com/yourusername/siggys-picks/internal/logger"
	"github.com/yourusername/siggys-picks/internal/models"
)

// Recorder receives every evaluation and batch the Engine performs
type Recorder interface {
	RecordEvaluation(ev Evaluation, duration time.Duration)
	RecordBatch(matches int, duration time.Duration)
}

type noopRecorder struct{}

func (noopRecorder) RecordEvaluation(Evaluation, time.Duration) {}

func (noopRecorder) RecordBatch(int, time.Duration) {}

// Engine wraps the pure pick functions with a fixed configuration, logging and metrics.
// It holds no mutable state and is safe for concurrent use.
type Engine struct {
	cfg      config.PicksConfig
	logger   *logger.PickLogger
	recorder Recorder
	now      func() time.Time
}

// NewEngine creates an engine. A nil recorder disables metrics.
func NewEngine(cfg config.PicksConfig, recorder Recorder, log *logrus.Logger) *Engine {
	if recorder == nil {
		recorder = noopRecorder{}
	}
	if log == nil {
		log = logger.Discard()
	}
	return &Engine{
		cfg:      cfg,
		logger:   logger.NewPickLogger(log),
		recorder: recorder,
		now:      time.Now,
	}
}

// Config returns the constants the engine was built with
func (e *Engine) Config() config.PicksConfig {
	return e.cfg
}

// Suggest evaluates a single match
func (e *Engine) Suggest(match models.MatchInput) models.PickResult {
	start := e.now()
	ev := Evaluate(match, e.cfg)
	elapsed := e.now().Sub(start)

	if !ev.MarketAvailable {
		e.logger.LogMarketFallback(match.ID, match.Home.Moneyline, match.Away.Moneyline)
	}
	e.logger.LogPickDecision(match.ID, ev.Result, ev.PHome, ev.PAway, ev.StrengthHome, ev.StrengthAway,
		ev.BumpApplied, float64(elapsed.Microseconds())/1000)
	e.recorder.RecordEvaluation(ev, elapsed)

	return ev.Result
}

// Record evaluates a match and wraps the result with an ID, timestamp and summary line
func (e *Engine) Record(match models.MatchInput) models.PickRecord {
	result := e.Suggest(match)
	rec := models.NewPickRecord(match.ID, result, e.now().UTC())
	rec.Summary = Summary(result, match)
	return rec
}
