package trafficlight

import (
	"context"
	"log/slog"
	"math/rand"
	"sync"
	"sync/atomic"
	"time"

	"github.com/google/uuid"
)

// TrafficLight toggles between Red and Green on a randomized interval and
// publishes each new phase to a Channel. The cycling goroutine is the only
// writer of the phase and the only producer on the channel.
type TrafficLight struct {
	id        uuid.UUID
	phase     atomic.Int32
	queue     *Channel[Phase]
	observers *ObserverManager
	logger    *slog.Logger

	minCycle time.Duration
	maxCycle time.Duration
	tick     time.Duration
	rand     *rand.Rand // owned by the cycling goroutine once started

	mutex   sync.Mutex
	started bool
	stopped bool
	done    chan struct{}
	wg      sync.WaitGroup
}

// NewTrafficLight creates a red light. With no options the light holds each
// phase for 4 to 6 seconds, checked every millisecond.
func NewTrafficLight(opts ...Option) (*TrafficLight, error) {
	l := &TrafficLight{
		id:        uuid.New(),
		queue:     NewChannel[Phase](),
		observers: NewObserverManager(),
		minCycle:  DefaultMinCycle,
		maxCycle:  DefaultMaxCycle,
		tick:      DefaultTick,
		rand:      rand.New(rand.NewSource(time.Now().UnixNano())),
		done:      make(chan struct{}),
	}
	l.phase.Store(int32(Red))

	for _, opt := range opts {
		if err := opt(l); err != nil {
			return nil, err
		}
	}
	if l.logger == nil {
		l.logger = slog.Default()
	}
	l.logger = l.logger.With("light_id", l.id.String())

	return l, nil
}

// ID returns the light identifier
func (l *TrafficLight) ID() uuid.UUID {
	return l.id
}

// CycleRange returns the inclusive range phase durations are drawn from
func (l *TrafficLight) CycleRange() (min, max time.Duration) {
	return l.minCycle, l.maxCycle
}

// CurrentPhase returns a snapshot of the current phase without blocking. It
// may lag behind a transition that is in progress.
func (l *TrafficLight) CurrentPhase() Phase {
	return Phase(l.phase.Load())
}

// Pending returns the number of published phases no waiter has consumed yet
func (l *TrafficLight) Pending() int {
	return l.queue.Len()
}

// AddObserver registers an observer
func (l *TrafficLight) AddObserver(observer Observer) {
	l.observers.AddObserver(observer)
}

// RemoveObserver unregisters an observer
func (l *TrafficLight) RemoveObserver(observer Observer) {
	l.observers.RemoveObserver(observer)
}

// WaitForGreen blocks until a Green phase is received from the channel.
// Published Red phases are consumed and discarded. A Green that another
// waiter already consumed is not seen, so a late caller may wait through a
// full red period.
func (l *TrafficLight) WaitForGreen() {
	for {
		if l.queue.Receive() == Green {
			return
		}
	}
}

// WaitForGreenContext is like WaitForGreen but returns ctx.Err() when ctx
// is done before a Green phase arrives.
func (l *TrafficLight) WaitForGreenContext(ctx context.Context) error {
	for {
		phase, err := l.queue.ReceiveContext(ctx)
		if err != nil {
			return err
		}
		if phase == Green {
			return nil
		}
	}
}

// Simulate starts the cycling goroutine and returns immediately. A light
// simulates at most once; later calls return ErrAlreadyStarted.
func (l *TrafficLight) Simulate() error {
	l.mutex.Lock()
	defer l.mutex.Unlock()

	if l.started {
		return NewLightError(ErrCodeAlreadyStarted, "Simulate", "light is already simulating")
	}
	l.started = true

	l.logger.Info("simulation started",
		"phase", l.CurrentPhase(),
		"min_cycle", l.minCycle,
		"max_cycle", l.maxCycle)
	l.observers.NotifyStarted(l.id)

	l.wg.Add(1)
	go l.cycleThroughPhases()
	return nil
}

// Stop terminates the cycling goroutine and waits for it to exit. Values
// already published stay in the channel. Stopping twice is a no-op.
func (l *TrafficLight) Stop() error {
	l.mutex.Lock()
	if !l.started {
		l.mutex.Unlock()
		return NewLightError(ErrCodeNotStarted, "Stop", "light is not simulating")
	}
	if l.stopped {
		l.mutex.Unlock()
		return nil
	}
	l.stopped = true
	close(l.done)
	l.mutex.Unlock()

	l.wg.Wait()

	l.logger.Info("simulation stopped", "phase", l.CurrentPhase(), "pending", l.queue.Len())
	l.observers.NotifyStopped(l.id)
	return nil
}

// drawCycle picks a whole number of milliseconds uniformly from the
// inclusive cycle range.
func (l *TrafficLight) drawCycle() time.Duration {
	span := int64((l.maxCycle - l.minCycle) / time.Millisecond)
	return l.minCycle + time.Duration(l.rand.Int63n(span+1))*time.Millisecond
}

func (l *TrafficLight) cycleThroughPhases() {
	defer l.wg.Done()

	last := time.Now()
	cycle := l.drawCycle()

	for {
		select {
		case <-l.done:
			return
		default:
		}

		now := time.Now()
		elapsed := now.Sub(last)
		if elapsed > cycle {
			l.toggle(now, cycle, elapsed)
			last = now
			cycle = l.drawCycle()
		}

		time.Sleep(l.tick)
	}
}

func (l *TrafficLight) toggle(now time.Time, cycle, elapsed time.Duration) {
	from := l.CurrentPhase()
	to, err := from.Next()
	if err != nil {
		l.logger.Error("undefined phase in cycle", "phase", from.String(), "error", err)
		l.observers.NotifyError(l.id, err)
		return
	}

	// Store before publishing so a woken waiter sees the new phase.
	l.phase.Store(int32(to))
	l.queue.Send(to)

	transition := NewTransition(from, to, now, cycle, elapsed)
	l.logger.Debug("phase changed",
		"transition_id", transition.ID.String(),
		"from", from,
		"to", to,
		"cycle", cycle,
		"elapsed", elapsed)

	l.observers.NotifyTransition(l.id, transition)
	l.observers.NotifyPhaseEnter(l.id, to)
}
