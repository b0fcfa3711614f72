package observers

import (
	"fmt"
	"sync"
	"time"

	"github.com/anggasct/trafficlight"
	"github.com/google/uuid"
)

// ValidationObserver checks that lights alternate strictly and hold each
// phase for at least the drawn cycle duration within the configured range.
type ValidationObserver struct {
	minCycle   time.Duration
	maxCycle   time.Duration
	lastPhase  map[uuid.UUID]trafficlight.Phase
	violations []string
	mutex      sync.RWMutex
}

// NewValidationObserver creates a validation observer for the given cycle range
func NewValidationObserver(minCycle, maxCycle time.Duration) *ValidationObserver {
	return &ValidationObserver{
		minCycle:   minCycle,
		maxCycle:   maxCycle,
		lastPhase:  make(map[uuid.UUID]trafficlight.Phase),
		violations: make([]string, 0),
	}
}

// NewValidationObserverFor creates a validation observer using the cycle range of light
func NewValidationObserverFor(light *trafficlight.TrafficLight) *ValidationObserver {
	min, max := light.CycleRange()
	return NewValidationObserver(min, max)
}

// addViolation must be called with the mutex held
func (o *ValidationObserver) addViolation(format string, args ...any) {
	o.violations = append(o.violations, fmt.Sprintf(format, args...))
}

// OnTransition validates transitions
func (o *ValidationObserver) OnTransition(light uuid.UUID, transition *trafficlight.Transition) {
	o.mutex.Lock()
	defer o.mutex.Unlock()

	if transition.From == transition.To {
		o.addViolation("light %s repeated phase %s", light, transition.From)
	}
	if next, err := transition.From.Next(); err != nil || next != transition.To {
		o.addViolation("light %s moved from %s to %s", light, transition.From, transition.To)
	}
	if last, seen := o.lastPhase[light]; seen && last != transition.From {
		o.addViolation("light %s left %s but was last seen entering %s", light, transition.From, last)
	}
	if transition.Cycle < o.minCycle || transition.Cycle > o.maxCycle {
		o.addViolation("light %s drew cycle %s outside [%s, %s]", light, transition.Cycle, o.minCycle, o.maxCycle)
	}
	if transition.Elapsed < transition.Cycle {
		o.addViolation("light %s toggled after %s, before its %s cycle", light, transition.Elapsed, transition.Cycle)
	}
	o.lastPhase[light] = transition.To
}

// OnPhaseEnter implements trafficlight.Observer
func (o *ValidationObserver) OnPhaseEnter(light uuid.UUID, phase trafficlight.Phase) {
	if !phase.Valid() {
		o.mutex.Lock()
		defer o.mutex.Unlock()
		o.addViolation("light %s entered undefined phase %s", light, phase)
	}
}

// OnError validates error handling
func (o *ValidationObserver) OnError(light uuid.UUID, err error) {
	o.mutex.Lock()
	defer o.mutex.Unlock()
	o.addViolation("light %s reported error: %v", light, err)
}

// OnStarted implements trafficlight.ExtendedObserver
func (o *ValidationObserver) OnStarted(light uuid.UUID) {}

// OnStopped implements trafficlight.ExtendedObserver
func (o *ValidationObserver) OnStopped(light uuid.UUID) {}

// GetViolations returns all validation violations
func (o *ValidationObserver) GetViolations() []string {
	o.mutex.RLock()
	defer o.mutex.RUnlock()

	result := make([]string, len(o.violations))
	copy(result, o.violations)
	return result
}

// HasViolations returns whether any violations occurred
func (o *ValidationObserver) HasViolations() bool {
	o.mutex.RLock()
	defer o.mutex.RUnlock()
	return len(o.violations) > 0
}

// Reset resets the validation state
func (o *ValidationObserver) Reset() {
	o.mutex.Lock()
	defer o.mutex.Unlock()

	o.lastPhase = make(map[uuid.UUID]trafficlight.Phase)
	o.violations = make([]string, 0)
}
