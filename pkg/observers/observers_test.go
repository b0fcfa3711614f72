package observers_test

import (
	"bytes"
	"encoding/json"
	"errors"
	"log/slog"
	"strings"
	"testing"
	"time"

	"github.com/anggasct/trafficlight"
	"github.com/anggasct/trafficlight/pkg/observers"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoggingObserver(t *testing.T) {
	t.Run("Transitions are logged as JSON", func(t *testing.T) {
		var buf bytes.Buffer
		logger := slog.New(slog.NewJSONHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
		observer := observers.NewLoggingObserver(logger, slog.LevelInfo)

		id := uuid.New()
		observer.OnTransition(id, trafficlight.NewTransition(trafficlight.Red, trafficlight.Green, time.Now(), 4*time.Second, 4*time.Second+time.Millisecond))

		var record map[string]any
		require.NoError(t, json.Unmarshal(buf.Bytes(), &record))
		assert.Equal(t, "transition", record["msg"])
		assert.Equal(t, "INFO", record["level"])
		assert.Equal(t, id.String(), record["light_id"])
		assert.Equal(t, "red", record["from"])
		assert.Equal(t, "green", record["to"])
	})

	t.Run("Errors are logged at error level", func(t *testing.T) {
		var buf bytes.Buffer
		logger := slog.New(slog.NewJSONHandler(&buf, &slog.HandlerOptions{Level: slog.LevelError}))
		observer := observers.NewLoggingObserver(logger, slog.LevelInfo)

		observer.OnStarted(uuid.New())
		observer.OnError(uuid.New(), errors.New("broken"))

		lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
		require.Len(t, lines, 1)
		assert.Contains(t, lines[0], "broken")
	})
}

func TestMetricsObserver(t *testing.T) {
	observer := observers.NewMetricsObserver()
	id := uuid.New()
	now := time.Now()

	first := trafficlight.NewTransition(trafficlight.Red, trafficlight.Green, now, 10*time.Millisecond, 11*time.Millisecond)
	second := trafficlight.NewTransition(trafficlight.Green, trafficlight.Red, now, 20*time.Millisecond, 21*time.Millisecond)
	third := trafficlight.NewTransition(trafficlight.Red, trafficlight.Green, now, 10*time.Millisecond, 12*time.Millisecond)

	for _, tr := range []*trafficlight.Transition{first, second, third} {
		observer.OnTransition(id, tr)
		observer.OnPhaseEnter(id, tr.To)
	}
	observer.OnError(id, errors.New("x"))

	assert.Equal(t, 2, observer.TransitionCount(trafficlight.Red, trafficlight.Green))
	assert.Equal(t, 1, observer.TransitionCount(trafficlight.Green, trafficlight.Red))
	assert.Equal(t, 2, observer.GetTransitionCounts()["red->green"])
	assert.Equal(t, 2, observer.GetPhaseVisitCounts()[trafficlight.Green])
	assert.Equal(t, 23*time.Millisecond, observer.GetPhaseTimeSpent()[trafficlight.Red])
	assert.Equal(t, 21*time.Millisecond, observer.GetPhaseTimeSpent()[trafficlight.Green])
	assert.Same(t, third, observer.GetLastTransition(id))
	assert.Nil(t, observer.GetLastTransition(uuid.New()))
	assert.Equal(t, 1, observer.GetErrorCount())

	observer.Reset()
	assert.Empty(t, observer.GetTransitionCounts())
	assert.Equal(t, 0, observer.GetErrorCount())
}

func TestMetricsObserver_WithRunningLight(t *testing.T) {
	metrics := observers.NewMetricsObserver()
	recorder := trafficlight.NewTestObserver()
	light := trafficlight.CreateFastLight(t, trafficlight.WithObserver(metrics), trafficlight.WithObserver(recorder))

	require.NoError(t, light.Simulate())
	require.True(t, recorder.WaitForTransitions(4, 2*time.Second))
	require.NoError(t, light.Stop())

	total := metrics.TransitionCount(trafficlight.Red, trafficlight.Green) +
		metrics.TransitionCount(trafficlight.Green, trafficlight.Red)
	assert.Equal(t, recorder.TransitionCount(), total)
	assert.Equal(t, 0, metrics.GetErrorCount())
}

func TestValidationObserver(t *testing.T) {
	t.Run("Running light has no violations", func(t *testing.T) {
		recorder := trafficlight.NewTestObserver()
		light := trafficlight.CreateFastLight(t, trafficlight.WithObserver(recorder))
		validator := observers.NewValidationObserverFor(light)
		light.AddObserver(validator)

		require.NoError(t, light.Simulate())
		require.True(t, recorder.WaitForTransitions(6, 2*time.Second))
		require.NoError(t, light.Stop())

		assert.False(t, validator.HasViolations(), "violations: %v", validator.GetViolations())
	})

	t.Run("Repeated phase is a violation", func(t *testing.T) {
		validator := observers.NewValidationObserver(time.Millisecond, 10*time.Millisecond)
		id := uuid.New()
		now := time.Now()

		validator.OnTransition(id, trafficlight.NewTransition(trafficlight.Red, trafficlight.Green, now, 5*time.Millisecond, 6*time.Millisecond))
		validator.OnTransition(id, trafficlight.NewTransition(trafficlight.Green, trafficlight.Green, now, 5*time.Millisecond, 6*time.Millisecond))

		assert.True(t, validator.HasViolations())
		assert.Len(t, validator.GetViolations(), 2)

		validator.Reset()
		assert.False(t, validator.HasViolations())
	})

	t.Run("Early toggle and out-of-range cycle are violations", func(t *testing.T) {
		validator := observers.NewValidationObserver(10*time.Millisecond, 20*time.Millisecond)
		validator.OnTransition(uuid.New(), trafficlight.NewTransition(trafficlight.Red, trafficlight.Green, time.Now(), 30*time.Millisecond, 5*time.Millisecond))

		assert.Len(t, validator.GetViolations(), 2)
	})
}
