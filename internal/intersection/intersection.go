// Package intersection drives a set of traffic lights and the vehicles
// waiting on them.
package intersection

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"sync/atomic"

	"github.com/google/uuid"

	"github.com/anggasct/trafficlight"
	"github.com/anggasct/trafficlight/internal/config"
)

// Intersection owns the lights it was built with. Vehicles are assigned to
// lights round-robin.
type Intersection struct {
	config *config.Config
	logger *slog.Logger
	lights []*trafficlight.TrafficLight

	crossings atomic.Int64
	perLight  map[uuid.UUID]*atomic.Int64

	mutex   sync.Mutex
	running bool
	stopped bool
}

// New creates the lights described by cfg and registers observers on each
func New(cfg *config.Config, logger *slog.Logger, observers ...trafficlight.Observer) (*Intersection, error) {
	if cfg == nil {
		return nil, trafficlight.NewConfigurationError("intersection", "config cannot be nil")
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if logger == nil {
		logger = slog.Default()
	}

	in := &Intersection{
		config:   cfg,
		logger:   logger,
		perLight: make(map[uuid.UUID]*atomic.Int64, cfg.Intersection.Lights),
	}
	for i := 0; i < cfg.Intersection.Lights; i++ {
		lightCfg := *cfg.Light
		if lightCfg.Seed != 0 {
			// distinct but reproducible sequences per light
			lightCfg.Seed += int64(i)
		}
		opts := lightCfg.LightOptions()
		opts = append(opts, trafficlight.WithLogger(logger.With("light_index", i)))
		for _, o := range observers {
			opts = append(opts, trafficlight.WithObserver(o))
		}
		light, err := trafficlight.NewTrafficLight(opts...)
		if err != nil {
			return nil, fmt.Errorf("failed to create light %d: %w", i, err)
		}
		in.lights = append(in.lights, light)
		in.perLight[light.ID()] = new(atomic.Int64)
	}
	return in, nil
}

// Lights returns the lights of the intersection
func (in *Intersection) Lights() []*trafficlight.TrafficLight {
	return in.lights
}

// Crossings returns the number of vehicles that crossed on green so far
func (in *Intersection) Crossings() int64 {
	return in.crossings.Load()
}

// CrossingsFor returns the crossings counted for one light
func (in *Intersection) CrossingsFor(light uuid.UUID) int64 {
	if c, ok := in.perLight[light]; ok {
		return c.Load()
	}
	return 0
}

// Run starts every light and every vehicle and blocks until ctx is done or
// the configured duration has passed. A zero duration runs until ctx is done.
// The lights are stopped before Run returns.
func (in *Intersection) Run(ctx context.Context) error {
	in.mutex.Lock()
	if in.running || in.stopped {
		in.mutex.Unlock()
		return trafficlight.NewLightError(trafficlight.ErrCodeAlreadyStarted, "Run", "intersection already ran")
	}
	in.running = true
	in.mutex.Unlock()

	if d := in.config.Intersection.Duration; d > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, d)
		defer cancel()
	}

	for _, light := range in.lights {
		if err := light.Simulate(); err != nil {
			in.Stop()
			return fmt.Errorf("failed to start light %s: %w", light.ID(), err)
		}
	}
	in.logger.Info("intersection running",
		"lights", len(in.lights),
		"vehicles", in.config.Intersection.Vehicles,
		"duration", in.config.Intersection.Duration)

	var wg sync.WaitGroup
	for v := 0; v < in.config.Intersection.Vehicles; v++ {
		light := in.lights[v%len(in.lights)]
		wg.Add(1)
		go func(vehicle int) {
			defer wg.Done()
			in.drive(ctx, vehicle, light)
		}(v)
	}

	<-ctx.Done()
	wg.Wait()
	in.Stop()

	in.logger.Info("intersection finished", "crossings", in.Crossings())
	if err := ctx.Err(); err != nil && !errors.Is(err, context.Canceled) && !errors.Is(err, context.DeadlineExceeded) {
		return err
	}
	return nil
}

// Stop stops every light. It is safe to call more than once and from an
// exit hook while Run is still unwinding.
func (in *Intersection) Stop() {
	in.mutex.Lock()
	if in.stopped {
		in.mutex.Unlock()
		return
	}
	in.stopped = true
	in.mutex.Unlock()

	for _, light := range in.lights {
		if err := light.Stop(); err != nil && !errors.Is(err, trafficlight.ErrNotStarted) {
			in.logger.Warn("failed to stop light", "light_id", light.ID().String(), "error", err)
		}
	}
}

func (in *Intersection) drive(ctx context.Context, vehicle int, light *trafficlight.TrafficLight) {
	logger := in.logger.With("vehicle", vehicle, "light_id", light.ID().String())
	for {
		if err := light.WaitForGreenContext(ctx); err != nil {
			logger.Debug("vehicle leaving", "reason", err)
			return
		}
		in.crossings.Add(1)
		in.perLight[light.ID()].Add(1)
		logger.Info("vehicle crossed", "phase", light.CurrentPhase())
	}
}
