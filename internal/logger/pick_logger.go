// Package logger provides pick-specific logging.
package logger

import (
	"github.com/sirupsen/logrus"

	"github.com/yourusername/siggys-picks/internal/models"
)

// PickLogger provides dedicated logging for pick engine decisions.
type PickLogger struct {
	*logrus.Entry
}

// NewPickLogger creates a new pick logger.
func NewPickLogger(baseLogger *logrus.Logger) *PickLogger {
	return &PickLogger{
		Entry: baseLogger.WithField("component", "picks"),
	}
}

// LogPickDecision logs the outcome of a single pick evaluation.
func (pl *PickLogger) LogPickDecision(matchID string, pick models.PickResult, pHome, pAway, strengthHome, strengthAway float64, bumpApplied bool, durationMs float64) {
	fields := logrus.Fields{
		"match_id":             matchID,
		"moneyline_pick":       string(pick.MoneylinePick),
		"moneyline_confidence": pick.MoneylineConfidence,
		"p_home":               pHome,
		"p_away":               pAway,
		"strength_home":        strengthHome,
		"strength_away":        strengthAway,
		"bump_applied":         bumpApplied,
		"duration_ms":          durationMs,
	}
	if puck := pick.UnderdogPuckline; puck != nil {
		fields["puckline_side"] = string(puck.Side)
		fields["puckline_line"] = puck.Line
		fields["puckline_confidence"] = puck.Confidence
	}
	pl.WithFields(fields).Debug("Pick decision made")
}

// LogMarketFallback logs a match evaluated without a usable market.
func (pl *PickLogger) LogMarketFallback(matchID string, homeMoneyline, awayMoneyline *int) {
	pl.WithFields(logrus.Fields{
		"match_id":           matchID,
		"home_moneyline_set": homeMoneyline != nil,
		"away_moneyline_set": awayMoneyline != nil,
	}).Info("Moneylines missing, using stats only")
}

// LogBatchCompleted logs a finished batch evaluation.
func (pl *PickLogger) LogBatchCompleted(matches, pucklines, workers int, durationMs float64) {
	pl.WithFields(logrus.Fields{
		"matches":     matches,
		"pucklines":   pucklines,
		"workers":     workers,
		"duration_ms": durationMs,
	}).Info("Pick batch completed")
}
