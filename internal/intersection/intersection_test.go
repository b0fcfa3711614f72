package intersection

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/anggasct/trafficlight"
	"github.com/anggasct/trafficlight/internal/config"
)

func fastConfig(lights, vehicles int, duration time.Duration) *config.Config {
	cfg := config.Default()
	cfg.Light.MinCycle = 5 * time.Millisecond
	cfg.Light.MaxCycle = 15 * time.Millisecond
	cfg.Light.Seed = 7
	cfg.Intersection.Lights = lights
	cfg.Intersection.Vehicles = vehicles
	cfg.Intersection.Duration = duration
	return cfg
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestNew_InvalidConfig(t *testing.T) {
	_, err := New(nil, discardLogger())
	assert.True(t, trafficlight.IsConfigurationError(err))

	cfg := fastConfig(0, 1, time.Second)
	_, err = New(cfg, discardLogger())
	assert.True(t, trafficlight.IsConfigurationError(err))
}

func TestNew_CreatesDistinctLights(t *testing.T) {
	in, err := New(fastConfig(3, 0, time.Second), discardLogger())
	require.NoError(t, err)

	ids := make(map[uuid.UUID]bool)
	for _, light := range in.Lights() {
		trafficlight.AssertPhase(t, light, trafficlight.Red)
		min, max := light.CycleRange()
		assert.Equal(t, 5*time.Millisecond, min)
		assert.Equal(t, 15*time.Millisecond, max)
		ids[light.ID()] = true
	}
	assert.Len(t, ids, 3)
}

func TestRun_VehiclesCross(t *testing.T) {
	observer := trafficlight.NewTestObserver()
	in, err := New(fastConfig(2, 4, 300*time.Millisecond), discardLogger(), observer)
	require.NoError(t, err)

	start := time.Now()
	require.NoError(t, in.Run(context.Background()))
	assert.GreaterOrEqual(t, time.Since(start), 300*time.Millisecond)

	assert.Greater(t, in.Crossings(), int64(0))
	var sum int64
	for _, light := range in.Lights() {
		sum += in.CrossingsFor(light.ID())
	}
	assert.Equal(t, in.Crossings(), sum)
	assert.Equal(t, int64(0), in.CrossingsFor(uuid.New()))

	assert.Len(t, observer.Started, 2)
	assert.Len(t, observer.Stopped, 2)
	assert.Greater(t, observer.TransitionCount(), 0)
	assert.Equal(t, 0, observer.ErrorCount())
}

func TestRun_StopsOnCancel(t *testing.T) {
	in, err := New(fastConfig(1, 2, 0), discardLogger())
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() {
		done <- in.Run(ctx)
	}()

	time.Sleep(50 * time.Millisecond)
	cancel()

	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(2 * time.Second):
		t.Fatal("Run did not return after cancel")
	}

	light := in.Lights()[0]
	assert.ErrorIs(t, light.Simulate(), trafficlight.ErrAlreadyStarted)
}

func TestRun_OnlyOnce(t *testing.T) {
	in, err := New(fastConfig(1, 1, 20*time.Millisecond), discardLogger())
	require.NoError(t, err)

	require.NoError(t, in.Run(context.Background()))
	err = in.Run(context.Background())
	assert.ErrorIs(t, err, trafficlight.ErrAlreadyStarted)
}

func TestStop_Idempotent(t *testing.T) {
	in, err := New(fastConfig(2, 0, time.Second), discardLogger())
	require.NoError(t, err)

	in.Stop()
	in.Stop()

	err = in.Run(context.Background())
	assert.ErrorIs(t, err, trafficlight.ErrAlreadyStarted)
}
