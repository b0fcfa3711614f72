package trafficlight

import (
	"errors"
	"fmt"
	"testing"
)

func TestErrors_ErrorStrings(t *testing.T) {
	tests := []struct {
		err      error
		expected string
	}{
		{NewInvalidPhaseError(Phase(7), "boom"), "phase error [Phase(7)]: boom"},
		{NewLightError(ErrCodeNotStarted, "Stop", "not running"), "light error during Stop: not running"},
		{NewConfigurationError("TrafficLight", "bad range"), "configuration error in TrafficLight: bad range"},
	}

	for _, tt := range tests {
		if tt.err.Error() != tt.expected {
			t.Errorf("Expected %q, got %q", tt.expected, tt.err.Error())
		}
	}
}

func TestErrors_SentinelMatching(t *testing.T) {
	err := NewLightError(ErrCodeAlreadyStarted, "Simulate", "again")
	if !errors.Is(err, ErrAlreadyStarted) {
		t.Error("Expected error to match ErrAlreadyStarted")
	}
	if errors.Is(err, ErrNotStarted) {
		t.Error("Expected error not to match ErrNotStarted")
	}

	wrapped := fmt.Errorf("starting light: %w", err)
	if !errors.Is(wrapped, ErrAlreadyStarted) {
		t.Error("Expected wrapped error to match ErrAlreadyStarted")
	}
	if !IsLightError(wrapped) {
		t.Error("Expected wrapped error to be a light error")
	}
}

func TestErrors_GetErrorCode(t *testing.T) {
	tests := []struct {
		err      error
		expected ErrorCode
	}{
		{NewInvalidPhaseError(Phase(4), ""), ErrCodeInvalidPhase},
		{ErrNotStarted, ErrCodeNotStarted},
		{NewConfigurationError("x", "y"), ErrCodeInvalidConfiguration},
		{fmt.Errorf("wrapped: %w", NewConfigurationError("x", "y")), ErrCodeInvalidConfiguration},
		{errors.New("plain"), ErrCodeNone},
	}

	for _, tt := range tests {
		if code := GetErrorCode(tt.err); code != tt.expected {
			t.Errorf("GetErrorCode(%v) = %v, expected %v", tt.err, code, tt.expected)
		}
	}
}

func TestErrors_TypeChecks(t *testing.T) {
	phaseErr := NewInvalidPhaseError(Phase(2), "x")
	if !IsPhaseError(phaseErr) || IsLightError(phaseErr) || IsConfigurationError(phaseErr) {
		t.Error("Type checks disagree for phase error")
	}

	configErr := NewConfigurationError("c", "i")
	if !IsConfigurationError(configErr) || IsPhaseError(configErr) {
		t.Error("Type checks disagree for configuration error")
	}
}
