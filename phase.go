package trafficlight

import (
	"fmt"
	"strings"
)

// Phase is the signal shown by a traffic light
type Phase int32

const (
	// Red means traffic must stop
	Red Phase = iota
	// Green means traffic may proceed
	Green
)

// Phases returns every valid phase in cycle order, starting with the initial one
func Phases() []Phase {
	return []Phase{Red, Green}
}

// String returns the lower-case phase name
func (p Phase) String() string {
	switch p {
	case Red:
		return "red"
	case Green:
		return "green"
	default:
		return fmt.Sprintf("Phase(%d)", int32(p))
	}
}

// Valid reports whether p is one of the defined phases
func (p Phase) Valid() bool {
	return p == Red || p == Green
}

// MarshalText implements encoding.TextMarshaler
func (p Phase) MarshalText() ([]byte, error) {
	if !p.Valid() {
		return nil, NewInvalidPhaseError(p, "cannot marshal undefined phase")
	}
	return []byte(p.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler
func (p *Phase) UnmarshalText(text []byte) error {
	parsed, err := ParsePhase(string(text))
	if err != nil {
		return err
	}
	*p = parsed
	return nil
}

// ParsePhase converts a phase name into a Phase, ignoring case and surrounding space
func ParsePhase(s string) (Phase, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "red":
		return Red, nil
	case "green":
		return Green, nil
	default:
		return Red, NewConfigurationError("Phase", fmt.Sprintf("unknown phase '%s'", s))
	}
}
