package trafficlight

import (
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
)

// TestObserver is a mock observer for testing that captures all observer events
type TestObserver struct {
	mutex       sync.RWMutex
	Transitions []*Transition
	PhaseEnters []Phase
	Errors      []error
	Started     []uuid.UUID
	Stopped     []uuid.UUID
}

// NewTestObserver creates a new test observer
func NewTestObserver() *TestObserver {
	return &TestObserver{
		Transitions: make([]*Transition, 0),
		PhaseEnters: make([]Phase, 0),
		Errors:      make([]error, 0),
		Started:     make([]uuid.UUID, 0),
		Stopped:     make([]uuid.UUID, 0),
	}
}

// Observer interface implementations
func (o *TestObserver) OnTransition(light uuid.UUID, transition *Transition) {
	o.mutex.Lock()
	defer o.mutex.Unlock()
	o.Transitions = append(o.Transitions, transition)
}

func (o *TestObserver) OnPhaseEnter(light uuid.UUID, phase Phase) {
	o.mutex.Lock()
	defer o.mutex.Unlock()
	o.PhaseEnters = append(o.PhaseEnters, phase)
}

// ExtendedObserver interface implementations
func (o *TestObserver) OnError(light uuid.UUID, err error) {
	o.mutex.Lock()
	defer o.mutex.Unlock()
	o.Errors = append(o.Errors, err)
}

func (o *TestObserver) OnStarted(light uuid.UUID) {
	o.mutex.Lock()
	defer o.mutex.Unlock()
	o.Started = append(o.Started, light)
}

func (o *TestObserver) OnStopped(light uuid.UUID) {
	o.mutex.Lock()
	defer o.mutex.Unlock()
	o.Stopped = append(o.Stopped, light)
}

// Helper methods for test assertions
func (o *TestObserver) Reset() {
	o.mutex.Lock()
	defer o.mutex.Unlock()
	o.Transitions = nil
	o.PhaseEnters = nil
	o.Errors = nil
	o.Started = nil
	o.Stopped = nil
}

func (o *TestObserver) TransitionCount() int {
	o.mutex.RLock()
	defer o.mutex.RUnlock()
	return len(o.Transitions)
}

func (o *TestObserver) ErrorCount() int {
	o.mutex.RLock()
	defer o.mutex.RUnlock()
	return len(o.Errors)
}

// TransitionsSnapshot returns a copy of the recorded transitions
func (o *TestObserver) TransitionsSnapshot() []*Transition {
	o.mutex.RLock()
	defer o.mutex.RUnlock()
	result := make([]*Transition, len(o.Transitions))
	copy(result, o.Transitions)
	return result
}

func (o *TestObserver) LastTransition() *Transition {
	o.mutex.RLock()
	defer o.mutex.RUnlock()
	if len(o.Transitions) == 0 {
		return nil
	}
	return o.Transitions[len(o.Transitions)-1]
}

// WaitForTransitions polls until at least n transitions were recorded or
// the timeout expires, and reports whether the count was reached.
func (o *TestObserver) WaitForTransitions(n int, timeout time.Duration) bool {
	deadline := time.Now().Add(timeout)
	for time.Now().Before(deadline) {
		if o.TransitionCount() >= n {
			return true
		}
		time.Sleep(time.Millisecond)
	}
	return o.TransitionCount() >= n
}

// WaitForErrors polls until at least n errors were recorded or the timeout expires
func (o *TestObserver) WaitForErrors(n int, timeout time.Duration) bool {
	deadline := time.Now().Add(timeout)
	for time.Now().Before(deadline) {
		if o.ErrorCount() >= n {
			return true
		}
		time.Sleep(time.Millisecond)
	}
	return o.ErrorCount() >= n
}

// Test light builders

// CreateFastLight creates a light cycling every 5 to 15 milliseconds for testing
func CreateFastLight(t testing.TB, opts ...Option) *TrafficLight {
	t.Helper()
	options := append([]Option{WithCycleRange(5*time.Millisecond, 15*time.Millisecond)}, opts...)
	light, err := NewTrafficLight(options...)
	if err != nil {
		t.Fatalf("Failed to create light: %v", err)
	}
	return light
}

// Test assertions and utilities

// AssertPhase checks if the light shows the expected phase
func AssertPhase(t testing.TB, light *TrafficLight, expected Phase) {
	t.Helper()
	current := light.CurrentPhase()
	if current != expected {
		t.Errorf("Expected phase %s, got %s", expected, current)
	}
}

// AssertAlternating checks that every transition follows the previous one
// and flips the phase.
func AssertAlternating(t testing.TB, transitions []*Transition) {
	t.Helper()
	for i, tr := range transitions {
		if tr.From == tr.To {
			t.Errorf("Transition %d does not change phase: %s", i, tr)
		}
		if i > 0 && transitions[i-1].To != tr.From {
			t.Errorf("Transition %d starts at %s but previous ended at %s", i, tr.From, transitions[i-1].To)
		}
	}
}
