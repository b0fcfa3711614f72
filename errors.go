package trafficlight

import (
	"errors"
	"fmt"
)

// ErrorCode represents specific error conditions of a traffic light
type ErrorCode int

const (
	// No error occurred
	ErrCodeNone ErrorCode = iota
	// Stored phase is outside the defined set
	ErrCodeInvalidPhase
	// Simulation was already started for this light
	ErrCodeAlreadyStarted
	// Simulation has not been started for this light
	ErrCodeNotStarted
	// Light configuration is invalid
	ErrCodeInvalidConfiguration
)

var (
	// ErrAlreadyStarted is returned when Simulate is called more than once
	ErrAlreadyStarted = NewLightError(ErrCodeAlreadyStarted, "Simulate", "light is already simulating")

	// ErrNotStarted is returned when stopping a light that never simulated
	ErrNotStarted = NewLightError(ErrCodeNotStarted, "Stop", "light is not simulating")
)

// PhaseError reports a phase value that violates the red/green invariant
type PhaseError struct {
	Code    ErrorCode
	Phase   Phase
	Message string
}

func (e *PhaseError) Error() string {
	return fmt.Sprintf("phase error [%s]: %s", e.Phase, e.Message)
}

// NewInvalidPhaseError creates a new invalid phase error
func NewInvalidPhaseError(phase Phase, message string) *PhaseError {
	return &PhaseError{
		Code:    ErrCodeInvalidPhase,
		Phase:   phase,
		Message: message,
	}
}

// LightError represents misuse of the light lifecycle
type LightError struct {
	Code      ErrorCode
	Operation string
	Message   string
}

func (e *LightError) Error() string {
	return fmt.Sprintf("light error during %s: %s", e.Operation, e.Message)
}

// Is matches any LightError carrying the same code, so errors.Is works
// against ErrAlreadyStarted and ErrNotStarted.
func (e *LightError) Is(target error) bool {
	t, ok := target.(*LightError)
	return ok && t.Code == e.Code
}

// NewLightError creates a new light error
func NewLightError(code ErrorCode, operation string, message string) *LightError {
	return &LightError{
		Code:      code,
		Operation: operation,
		Message:   message,
	}
}

// ConfigurationError represents invalid light or driver configuration
type ConfigurationError struct {
	Component string
	Issue     string
}

func (e *ConfigurationError) Error() string {
	return fmt.Sprintf("configuration error in %s: %s", e.Component, e.Issue)
}

// NewConfigurationError creates a new configuration error
func NewConfigurationError(component, issue string) *ConfigurationError {
	return &ConfigurationError{
		Component: component,
		Issue:     issue,
	}
}

// IsPhaseError checks if an error is a PhaseError
func IsPhaseError(err error) bool {
	var e *PhaseError
	return errors.As(err, &e)
}

// IsLightError checks if an error is a LightError
func IsLightError(err error) bool {
	var e *LightError
	return errors.As(err, &e)
}

// IsConfigurationError checks if an error is a ConfigurationError
func IsConfigurationError(err error) bool {
	var e *ConfigurationError
	return errors.As(err, &e)
}

// GetErrorCode returns the error code for known error types
func GetErrorCode(err error) ErrorCode {
	var (
		phaseErr  *PhaseError
		lightErr  *LightError
		configErr *ConfigurationError
	)
	switch {
	case errors.As(err, &phaseErr):
		return phaseErr.Code
	case errors.As(err, &lightErr):
		return lightErr.Code
	case errors.As(err, &configErr):
		return ErrCodeInvalidConfiguration
	default:
		return ErrCodeNone
	}
}
