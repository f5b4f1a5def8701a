// Package logger provides audit logging.
package logger

import (
	"github.com/sirupsen/logrus"
)

// AuditLogger provides dedicated audit trail logging for configuration changes.
type AuditLogger struct {
	*logrus.Entry
}

// NewAuditLogger creates a new audit logger.
func NewAuditLogger(baseLogger *logrus.Logger) *AuditLogger {
	return &AuditLogger{
		Entry: baseLogger.WithField("component", "audit"),
	}
}

// LogConfigResolved logs the effective engine constants after overrides were applied.
func (al *AuditLogger) LogConfigResolved(source string, marketWeight float64, overridden bool) {
	al.WithFields(logrus.Fields{
		"event_type":    "config_resolved",
		"source":        source,
		"market_weight": marketWeight,
		"overridden":    overridden,
	}).Info("Pick configuration resolved")
}

// LogConfigFallback logs overrides that were discarded in favour of the defaults.
func (al *AuditLogger) LogConfigFallback(source string, err error) {
	al.WithFields(logrus.Fields{
		"event_type": "config_fallback",
		"source":     source,
		"reason":     err.Error(),
	}).Warn("Pick overrides rejected, using defaults")
}
