package trafficlight

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

// phaseTransitions maps every phase to the phase that follows it
var phaseTransitions = map[Phase]Phase{
	Red:   Green,
	Green: Red,
}

// Next returns the phase that follows p in the cycle
func (p Phase) Next() (Phase, error) {
	next, ok := phaseTransitions[p]
	if !ok {
		return p, NewInvalidPhaseError(p, fmt.Sprintf("no transition defined from %s", p))
	}
	return next, nil
}

// Transition records a single phase change of a light
type Transition struct {
	ID   uuid.UUID
	From Phase
	To   Phase
	At   time.Time

	// Cycle is the randomly drawn duration the From phase was meant to last
	Cycle time.Duration
	// Elapsed is how long the From phase actually lasted
	Elapsed time.Duration
}

// NewTransition creates a new transition record
func NewTransition(from, to Phase, at time.Time, cycle, elapsed time.Duration) *Transition {
	return &Transition{
		ID:      uuid.New(),
		From:    from,
		To:      to,
		At:      at,
		Cycle:   cycle,
		Elapsed: elapsed,
	}
}

func (t *Transition) String() string {
	return fmt.Sprintf("%s -> %s after %s (cycle %s)", t.From, t.To, t.Elapsed, t.Cycle)
}
