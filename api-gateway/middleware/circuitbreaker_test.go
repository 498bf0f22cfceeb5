package middleware

import (
	"errors"
	"testing"
	"time"
)

func TestCircuitBreaker_OpensAfterMaxFailures(t *testing.T) {
	cb := NewCircuitBreaker("inventory", 3, time.Minute)
	failing := func() error { return errors.New("backend down") }

	for i := 0; i < 3; i++ {
		cb.Call(failing)
	}

	if state := cb.GetState(); state != StateOpen {
		t.Errorf("state after %d failures = %s, want %s", 3, state, StateOpen)
	}

	if err := cb.Call(func() error { return nil }); err == nil {
		t.Error("expected open circuit to reject calls")
	}
}

func TestCircuitBreaker_SuccessResetsFailures(t *testing.T) {
	cb := NewCircuitBreaker("inventory", 3, time.Minute)
	failing := func() error { return errors.New("backend down") }

	cb.Call(failing)
	cb.Call(failing)
	cb.Call(func() error { return nil })
	cb.Call(failing)
	cb.Call(failing)

	if state := cb.GetState(); state != StateClosed {
		t.Errorf("state = %s, want %s", state, StateClosed)
	}
}

func TestCircuitBreaker_HalfOpenRecovery(t *testing.T) {
	cb := NewCircuitBreaker("inventory", 1, 10*time.Millisecond)

	cb.Call(func() error { return errors.New("backend down") })
	if state := cb.GetState(); state != StateOpen {
		t.Fatalf("state = %s, want %s", state, StateOpen)
	}

	time.Sleep(20 * time.Millisecond)

	// Three successes in half-open close the circuit
	for i := 0; i < 3; i++ {
		if err := cb.Call(func() error { return nil }); err != nil {
			t.Fatalf("half-open call %d rejected: %v", i, err)
		}
	}

	if state := cb.GetState(); state != StateClosed {
		t.Errorf("state after recovery = %s, want %s", state, StateClosed)
	}
}

func TestCircuitBreaker_HalfOpenFailureReopens(t *testing.T) {
	cb := NewCircuitBreaker("inventory", 1, 10*time.Millisecond)

	cb.Call(func() error { return errors.New("backend down") })
	time.Sleep(20 * time.Millisecond)

	cb.Call(func() error { return errors.New("still down") })

	if state := cb.GetState(); state != StateOpen {
		t.Errorf("state after half-open failure = %s, want %s", state, StateOpen)
	}
}

func TestDetermineServiceFromPath(t *testing.T) {
	tests := []struct {
		path string
		want string
	}{
		{"/auth/login", "user"},
		{"/api/users/me", "user"},
		{"/admin/users", "user"},
		{"/api/items/42", "inventory"},
		{"/api/categories", "inventory"},
		{"/api/suppliers/3", "inventory"},
		{"/api/sales", "inventory"},
		{"/api/dashboard", "inventory"},
		{"/api/notifications/7/read", "notification"},
		{"/api/activity", "notification"},
		{"/metrics", ""},
		{"/", ""},
	}

	for _, tt := range tests {
		if got := determineServiceFromPath(tt.path); got != tt.want {
			t.Errorf("determineServiceFromPath(%q) = %q, want %q", tt.path, got, tt.want)
		}
	}
}
