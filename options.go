package trafficlight

import (
	"fmt"
	"log/slog"
	"math/rand"
	"time"

	"github.com/google/uuid"
)

// Option configures a TrafficLight
type Option func(*TrafficLight) error

// WithID sets the light identifier instead of a random one
func WithID(id uuid.UUID) Option {
	return func(l *TrafficLight) error {
		if id == uuid.Nil {
			return NewConfigurationError("TrafficLight", "light id cannot be nil")
		}
		l.id = id
		return nil
	}
}

// WithCycleRange sets the inclusive range each phase duration is drawn from.
// Both bounds are truncated to whole milliseconds.
func WithCycleRange(min, max time.Duration) Option {
	return func(l *TrafficLight) error {
		min, max = min.Truncate(time.Millisecond), max.Truncate(time.Millisecond)
		if min <= 0 {
			return NewConfigurationError("TrafficLight", fmt.Sprintf("minimum cycle must be at least 1ms, got %s", min))
		}
		if max < min {
			return NewConfigurationError("TrafficLight", fmt.Sprintf("maximum cycle %s is shorter than minimum cycle %s", max, min))
		}
		l.minCycle, l.maxCycle = min, max
		return nil
	}
}

// WithTick sets the sleep quantum of the cycling loop
func WithTick(tick time.Duration) Option {
	return func(l *TrafficLight) error {
		if tick <= 0 {
			return NewConfigurationError("TrafficLight", fmt.Sprintf("tick must be positive, got %s", tick))
		}
		l.tick = tick
		return nil
	}
}

// WithRandSource sets the random source used to draw cycle durations
func WithRandSource(src rand.Source) Option {
	return func(l *TrafficLight) error {
		if src == nil {
			return NewConfigurationError("TrafficLight", "random source cannot be nil")
		}
		l.rand = rand.New(src)
		return nil
	}
}

// WithLogger sets the structured logger of the light
func WithLogger(logger *slog.Logger) Option {
	return func(l *TrafficLight) error {
		if logger == nil {
			return NewConfigurationError("TrafficLight", "logger cannot be nil")
		}
		l.logger = logger
		return nil
	}
}

// WithObserver registers an observer before the light starts
func WithObserver(observer Observer) Option {
	return func(l *TrafficLight) error {
		if observer == nil {
			return NewConfigurationError("TrafficLight", "observer cannot be nil")
		}
		l.observers.AddObserver(observer)
		return nil
	}
}
