// Package trafficlight models a single traffic light whose phase toggles
// between red and green on a randomized interval. Phase changes are
// published through a generic blocking Channel so that any number of
// goroutines can wait for the light to turn green.
package trafficlight

import (
	"time"
)

const (
	// DefaultMinCycle is the shortest time a phase is held
	DefaultMinCycle = 4000 * time.Millisecond

	// DefaultMaxCycle is the longest time a phase is held
	DefaultMaxCycle = 6000 * time.Millisecond

	// DefaultTick is the polling quantum of the cycling loop
	DefaultTick = time.Millisecond
)

