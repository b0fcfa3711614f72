package trafficlight

import (
	"fmt"
	"sync"

	"github.com/google/uuid"
)

//go:generate mockgen -destination=internal/mocks/mock_observer.go -package=mocks github.com/anggasct/trafficlight Observer,ExtendedObserver

// Observer represents an entity that observes phase changes of a light.
// Callbacks run on the light's cycling goroutine and should return quickly.
type Observer interface {
	// Required methods

	// OnTransition is called after the phase changed and was published
	OnTransition(light uuid.UUID, transition *Transition)

	// OnPhaseEnter is called when the light enters a phase
	OnPhaseEnter(light uuid.UUID, phase Phase)
}

// ExtendedObserver provides additional optional observation methods
type ExtendedObserver interface {
	Observer

	// OnError is called when the cycling loop detects an invariant violation
	OnError(light uuid.UUID, err error)

	// OnStarted is called when the light starts simulating
	OnStarted(light uuid.UUID)

	// OnStopped is called after the cycling loop has terminated
	OnStopped(light uuid.UUID)
}

// BaseObserver provides a default implementation with no-op methods
type BaseObserver struct{}

// OnTransition implements the required Observer method
func (o *BaseObserver) OnTransition(light uuid.UUID, transition *Transition) {
	// Default implementation - no operation
}

// OnPhaseEnter implements the required Observer method
func (o *BaseObserver) OnPhaseEnter(light uuid.UUID, phase Phase) {
	// Default implementation - no operation
}

// OnError implements the optional ExtendedObserver method
func (o *BaseObserver) OnError(light uuid.UUID, err error) {
	// Default implementation - no operation
}

// OnStarted implements the optional ExtendedObserver method
func (o *BaseObserver) OnStarted(light uuid.UUID) {
	// Default implementation - no operation
}

// OnStopped implements the optional ExtendedObserver method
func (o *BaseObserver) OnStopped(light uuid.UUID) {
	// Default implementation - no operation
}

// ObserverManager manages a collection of observers
type ObserverManager struct {
	observers []Observer
	mutex     sync.RWMutex
}

// NewObserverManager creates a new observer manager
func NewObserverManager() *ObserverManager {
	return &ObserverManager{
		observers: make([]Observer, 0),
	}
}

// AddObserver adds an observer to the manager
func (om *ObserverManager) AddObserver(observer Observer) {
	om.mutex.Lock()
	defer om.mutex.Unlock()
	om.observers = append(om.observers, observer)
}

// RemoveObserver removes an observer from the manager
func (om *ObserverManager) RemoveObserver(observer Observer) {
	om.mutex.Lock()
	defer om.mutex.Unlock()
	for i, obs := range om.observers {
		if obs == observer {
			om.observers = append(om.observers[:i], om.observers[i+1:]...)
			break
		}
	}
}

// Len returns the number of registered observers
func (om *ObserverManager) Len() int {
	om.mutex.RLock()
	defer om.mutex.RUnlock()
	return len(om.observers)
}

func (om *ObserverManager) snapshot() []Observer {
	om.mutex.RLock()
	defer om.mutex.RUnlock()
	observers := make([]Observer, len(om.observers))
	copy(observers, om.observers)
	return observers
}

// safeNotify runs fn and turns a panic into an OnError notification on the
// same observer. A panic inside OnError itself is swallowed.
func safeNotify(observer Observer, light uuid.UUID, callback string, fn func()) {
	defer func() {
		if r := recover(); r != nil {
			if extObs, ok := observer.(ExtendedObserver); ok {
				func() {
					defer func() { recover() }()
					extObs.OnError(light, fmt.Errorf("observer panic in %s: %v", callback, r))
				}()
			}
		}
	}()
	fn()
}

// NotifyTransition notifies all observers of a phase transition
func (om *ObserverManager) NotifyTransition(light uuid.UUID, transition *Transition) {
	for _, observer := range om.snapshot() {
		observer := observer
		safeNotify(observer, light, "OnTransition", func() {
			observer.OnTransition(light, transition)
		})
	}
}

// NotifyPhaseEnter notifies all observers of phase entry
func (om *ObserverManager) NotifyPhaseEnter(light uuid.UUID, phase Phase) {
	for _, observer := range om.snapshot() {
		observer := observer
		safeNotify(observer, light, "OnPhaseEnter", func() {
			observer.OnPhaseEnter(light, phase)
		})
	}
}

// NotifyError notifies all observers of errors
func (om *ObserverManager) NotifyError(light uuid.UUID, err error) {
	for _, observer := range om.snapshot() {
		if extObs, ok := observer.(ExtendedObserver); ok {
			func() {
				defer func() { recover() }()
				extObs.OnError(light, err)
			}()
		}
	}
}

// NotifyStarted notifies all observers that the light started simulating
func (om *ObserverManager) NotifyStarted(light uuid.UUID) {
	for _, observer := range om.snapshot() {
		if extObs, ok := observer.(ExtendedObserver); ok {
			safeNotify(observer, light, "OnStarted", func() {
				extObs.OnStarted(light)
			})
		}
	}
}

// NotifyStopped notifies all observers that the light stopped
func (om *ObserverManager) NotifyStopped(light uuid.UUID) {
	for _, observer := range om.snapshot() {
		if extObs, ok := observer.(ExtendedObserver); ok {
			safeNotify(observer, light, "OnStopped", func() {
				extObs.OnStopped(light)
			})
		}
	}
}
