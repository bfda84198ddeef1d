package scope_test

import (
	"testing"

	"github.com/Rudra-Tiwari-codes/Calendar-test/pkg/scope"
)

func TestNewManager(t *testing.T) {
	if _, err := scope.NewManager(""); err == nil {
		t.Fatal("expected error for empty secret")
	}
	if _, err := scope.NewManager("s3cret"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestSignVerifyState(t *testing.T) {
	m, _ := scope.NewManager("s3cret")

	state, err := m.SignState("telegram_42")
	if err != nil {
		t.Fatalf("SignState: %v", err)
	}

	got, err := m.VerifyState(state)
	if err != nil {
		t.Fatalf("VerifyState: %v", err)
	}
	if got != "telegram_42" {
		t.Errorf("VerifyState = %q, want %q", got, "telegram_42")
	}

	// Each state carries a fresh nonce.
	second, _ := m.SignState("telegram_42")
	if second == state {
		t.Error("expected distinct states for repeated sign calls")
	}
}

func TestVerifyStateRejects(t *testing.T) {
	m, _ := scope.NewManager("s3cret")
	other, _ := scope.NewManager("different")

	state, _ := other.SignState("telegram_42")

	tests := []struct {
		name  string
		state string
	}{
		{name: "Wrong secret", state: state},
		{name: "Garbage", state: "not.a.jwt"},
		{name: "Empty", state: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := m.VerifyState(tt.state); err == nil {
				t.Error("expected verification failure")
			}
		})
	}
}
