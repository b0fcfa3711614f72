// Package observers provides observers for monitoring traffic lights
package observers

import (
	"context"
	"log/slog"

	"github.com/anggasct/trafficlight"
	"github.com/google/uuid"
)

// LoggingObserver writes light events to a structured logger
type LoggingObserver struct {
	logger *slog.Logger
	level  slog.Level
}

// NewLoggingObserver creates a logging observer that reports transitions at
// the given level. Errors are always logged at slog.LevelError.
func NewLoggingObserver(logger *slog.Logger, level slog.Level) *LoggingObserver {
	if logger == nil {
		logger = slog.Default()
	}
	return &LoggingObserver{
		logger: logger,
		level:  level,
	}
}

// NewDefaultLoggingObserver creates a logging observer on slog.Default at info level
func NewDefaultLoggingObserver() *LoggingObserver {
	return NewLoggingObserver(slog.Default(), slog.LevelInfo)
}

// OnTransition logs transitions
func (o *LoggingObserver) OnTransition(light uuid.UUID, transition *trafficlight.Transition) {
	o.logger.Log(context.Background(), o.level, "transition",
		"light_id", light.String(),
		"transition_id", transition.ID.String(),
		"from", transition.From,
		"to", transition.To,
		"cycle", transition.Cycle,
		"elapsed", transition.Elapsed)
}

// OnPhaseEnter logs phase entry
func (o *LoggingObserver) OnPhaseEnter(light uuid.UUID, phase trafficlight.Phase) {
	o.logger.Debug("entering phase", "light_id", light.String(), "phase", phase)
}

// OnError logs errors
func (o *LoggingObserver) OnError(light uuid.UUID, err error) {
	o.logger.Error("light error", "light_id", light.String(), "error", err)
}

// OnStarted logs the start of a simulation
func (o *LoggingObserver) OnStarted(light uuid.UUID) {
	o.logger.Log(context.Background(), o.level, "light started", "light_id", light.String())
}

// OnStopped logs the end of a simulation
func (o *LoggingObserver) OnStopped(light uuid.UUID) {
	o.logger.Log(context.Background(), o.level, "light stopped", "light_id", light.String())
}
