package domain_test

import (
	"errors"
	"testing"

	"github.com/jsamuelsen11/go-actuator/internal/domain"
)

func TestStatusOf(t *testing.T) {
	t.Parallel()

	if got := domain.StatusOf(true); got != domain.StatusUp {
		t.Errorf("StatusOf(true) = %q, want %q", got, domain.StatusUp)
	}
	if got := domain.StatusOf(false); got != domain.StatusDown {
		t.Errorf("StatusOf(false) = %q, want %q", got, domain.StatusDown)
	}
}

func TestVerdict_Serving(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		v    domain.Verdict
		want bool
	}{
		{"optimistic", domain.OptimisticVerdict(), true},
		{"not ready", domain.Verdict{Ready: false, Alive: true, Healthy: false}, false},
		{"stale ready flag", domain.Verdict{Ready: true, Alive: false, Healthy: false}, false},
		{"healthy but not ready", domain.Verdict{Ready: false, Alive: true, Healthy: true}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := tt.v.Serving(); got != tt.want {
				t.Errorf("Serving() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestValidationError(t *testing.T) {
	t.Parallel()

	err := &domain.ValidationError{Fields: map[string]string{
		"wait":  "must be a boolean",
		"probe": "unknown",
	}}

	if !errors.Is(err, domain.ErrValidation) {
		t.Error("errors.Is(err, ErrValidation) = false, want true")
	}
	want := "validation error: probe: unknown; wait: must be a boolean"
	if err.Error() != want {
		t.Errorf("Error() = %q, want %q", err.Error(), want)
	}
}
