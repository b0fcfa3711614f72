package observers

import (
	"sync"
	"time"

	"github.com/anggasct/trafficlight"
	"github.com/google/uuid"
)

// MetricsObserver collects metrics about light execution. One observer may
// watch several lights; counters are aggregated across them.
type MetricsObserver struct {
	phaseVisits      map[trafficlight.Phase]int
	phaseTimeSpent   map[trafficlight.Phase]time.Duration
	transitionCounts map[string]int
	errorCount       int
	lastTransition   map[uuid.UUID]*trafficlight.Transition
	mutex            sync.RWMutex
}

// NewMetricsObserver creates a new metrics observer
func NewMetricsObserver() *MetricsObserver {
	return &MetricsObserver{
		phaseVisits:      make(map[trafficlight.Phase]int),
		phaseTimeSpent:   make(map[trafficlight.Phase]time.Duration),
		transitionCounts: make(map[string]int),
		lastTransition:   make(map[uuid.UUID]*trafficlight.Transition),
	}
}

// TransitionKey returns the key used by GetTransitionCounts
func TransitionKey(from, to trafficlight.Phase) string {
	return from.String() + "->" + to.String()
}

// OnTransition records transition metrics
func (o *MetricsObserver) OnTransition(light uuid.UUID, transition *trafficlight.Transition) {
	o.mutex.Lock()
	defer o.mutex.Unlock()

	o.transitionCounts[TransitionKey(transition.From, transition.To)]++
	o.phaseTimeSpent[transition.From] += transition.Elapsed
	o.lastTransition[light] = transition
}

// OnPhaseEnter records phase entry metrics
func (o *MetricsObserver) OnPhaseEnter(light uuid.UUID, phase trafficlight.Phase) {
	o.mutex.Lock()
	defer o.mutex.Unlock()
	o.phaseVisits[phase]++
}

// OnError records error metrics
func (o *MetricsObserver) OnError(light uuid.UUID, err error) {
	o.mutex.Lock()
	defer o.mutex.Unlock()
	o.errorCount++
}

// OnStarted implements trafficlight.ExtendedObserver
func (o *MetricsObserver) OnStarted(light uuid.UUID) {}

// OnStopped implements trafficlight.ExtendedObserver
func (o *MetricsObserver) OnStopped(light uuid.UUID) {}

// GetPhaseVisitCounts returns the number of times each phase was entered
func (o *MetricsObserver) GetPhaseVisitCounts() map[trafficlight.Phase]int {
	o.mutex.RLock()
	defer o.mutex.RUnlock()

	result := make(map[trafficlight.Phase]int)
	for phase, count := range o.phaseVisits {
		result[phase] = count
	}
	return result
}

// GetPhaseTimeSpent returns the completed time spent in each phase
func (o *MetricsObserver) GetPhaseTimeSpent() map[trafficlight.Phase]time.Duration {
	o.mutex.RLock()
	defer o.mutex.RUnlock()

	result := make(map[trafficlight.Phase]time.Duration)
	for phase, duration := range o.phaseTimeSpent {
		result[phase] = duration
	}
	return result
}

// GetTransitionCounts returns the number of times each transition occurred
func (o *MetricsObserver) GetTransitionCounts() map[string]int {
	o.mutex.RLock()
	defer o.mutex.RUnlock()

	result := make(map[string]int)
	for transition, count := range o.transitionCounts {
		result[transition] = count
	}
	return result
}

// TransitionCount returns how often from -> to occurred
func (o *MetricsObserver) TransitionCount(from, to trafficlight.Phase) int {
	o.mutex.RLock()
	defer o.mutex.RUnlock()
	return o.transitionCounts[TransitionKey(from, to)]
}

// GetLastTransition returns the most recent transition of a light, or nil
func (o *MetricsObserver) GetLastTransition(light uuid.UUID) *trafficlight.Transition {
	o.mutex.RLock()
	defer o.mutex.RUnlock()
	return o.lastTransition[light]
}

// GetErrorCount returns the number of errors
func (o *MetricsObserver) GetErrorCount() int {
	o.mutex.RLock()
	defer o.mutex.RUnlock()

	return o.errorCount
}

// Reset resets all metrics
func (o *MetricsObserver) Reset() {
	o.mutex.Lock()
	defer o.mutex.Unlock()

	o.phaseVisits = make(map[trafficlight.Phase]int)
	o.phaseTimeSpent = make(map[trafficlight.Phase]time.Duration)
	o.transitionCounts = make(map[string]int)
	o.errorCount = 0
	o.lastTransition = make(map[uuid.UUID]*trafficlight.Transition)
}
