package observability

import (
	"go.uber.org/zap"

	"github.com/cory-johannsen/gvd/internal/game/combat"
)

// LogObserver writes every combat event to a logger at debug level.
type LogObserver struct {
	logger *zap.Logger
}

// NewLogObserver creates a LogObserver.
//
// Precondition: logger must be non-nil.
func NewLogObserver(logger *zap.Logger) *LogObserver {
	return &LogObserver{logger: logger}
}

// Observe implements combat.Observer. Diagnostics are logged at warn.
func (o *LogObserver) Observe(ev combat.Event) {
	fields := []zap.Field{
		zap.Int("round", ev.Round),
		zap.Stringer("kind", ev.Kind),
		zap.String("actor", ev.Actor),
		zap.Int("amount", ev.Amount),
		zap.Int("hp", ev.HP),
		zap.Int("max_hp", ev.MaxHP),
	}
	if ev.Source != "" {
		fields = append(fields, zap.String("source", ev.Source))
	}
	if ev.Kind == combat.KindDiagnostic {
		o.logger.Warn("combat diagnostic", append(fields, zap.Error(ev.Err))...)
		return
	}
	o.logger.Debug("combat event", fields...)
}
