package trafficlight

import (
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
)

func TestPhase_Next(t *testing.T) {
	next, err := Red.Next()
	if err != nil || next != Green {
		t.Errorf("Expected red -> green, got %s (%v)", next, err)
	}

	next, err = Green.Next()
	if err != nil || next != Red {
		t.Errorf("Expected green -> red, got %s (%v)", next, err)
	}
}

func TestPhase_NextUndefined(t *testing.T) {
	p := Phase(3)
	next, err := p.Next()
	if err == nil {
		t.Fatal("Expected error for undefined phase")
	}
	if next != p {
		t.Errorf("Expected phase to stay %s, got %s", p, next)
	}
	if GetErrorCode(err) != ErrCodeInvalidPhase {
		t.Errorf("Expected ErrCodeInvalidPhase, got %v", GetErrorCode(err))
	}
}

func TestPhase_NextCycleReturnsToStart(t *testing.T) {
	p := Red
	for i := 0; i < len(Phases()); i++ {
		var err error
		p, err = p.Next()
		if err != nil {
			t.Fatalf("Unexpected error: %v", err)
		}
	}
	if p != Red {
		t.Errorf("Expected a full cycle to end on red, got %s", p)
	}
}

func TestNewTransition(t *testing.T) {
	at := time.Now()
	tr := NewTransition(Red, Green, at, 4500*time.Millisecond, 4501*time.Millisecond)

	if tr.ID == uuid.Nil {
		t.Error("Expected transition to get an id")
	}
	if tr.From != Red || tr.To != Green {
		t.Errorf("Expected red -> green, got %s -> %s", tr.From, tr.To)
	}
	if !tr.At.Equal(at) {
		t.Errorf("Expected timestamp %v, got %v", at, tr.At)
	}
	if !strings.Contains(tr.String(), "red -> green") {
		t.Errorf("Unexpected string form %q", tr.String())
	}

	other := NewTransition(Green, Red, at, 0, 0)
	if other.ID == tr.ID {
		t.Error("Expected distinct transition ids")
	}
}
