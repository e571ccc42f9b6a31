package health_test

import (
	"testing"

	"github.com/jsamuelsen11/go-actuator/internal/domain"
	"github.com/jsamuelsen11/go-actuator/internal/platform/health"
	"github.com/jsamuelsen11/go-actuator/internal/ports"
	"github.com/jsamuelsen11/go-actuator/mocks"
)

func entries(probes ...any) []ports.NamedProbe {
	out := make([]ports.NamedProbe, 0, len(probes)/2)
	for i := 0; i < len(probes); i += 2 {
		out = append(out, ports.NamedProbe{
			Name:  probes[i].(string),
			Probe: probes[i+1].(ports.Probe),
		})
	}
	return out
}

func TestEvaluate_NoProbes(t *testing.T) {
	t.Parallel()

	got, failure := health.Evaluate(domain.OptimisticVerdict(), nil)

	if got != domain.OptimisticVerdict() {
		t.Errorf("Evaluate() = %+v, want all true", got)
	}
	if failure != (health.Failure{}) {
		t.Errorf("failure = %+v, want zero", failure)
	}
}

func TestEvaluate_AllHealthyReaffirmsFlags(t *testing.T) {
	t.Parallel()

	stale := domain.Verdict{Ready: false, Alive: false, Healthy: false}
	got, _ := health.Evaluate(stale, entries(
		"database", newStub(true, true),
		"cache", newStub(true, true),
	))

	if got != domain.OptimisticVerdict() {
		t.Errorf("Evaluate() = %+v, want all true", got)
	}
}

func TestEvaluate_DeadProbeStopsEvaluation(t *testing.T) {
	t.Parallel()

	// No expectations: any call on the trailing probe fails the test.
	trailing := mocks.NewMockProbe(t)

	dead := newStub(true, false)
	got, failure := health.Evaluate(domain.OptimisticVerdict(), entries(
		"database", dead,
		"cache", trailing,
	))

	if got.Alive || got.Healthy {
		t.Errorf("Evaluate() = %+v, want alive=false healthy=false", got)
	}
	if !got.Ready {
		t.Error("Ready = false, want previous value true (readiness not evaluated)")
	}
	if dead.readyCalls.Load() != 0 {
		t.Error("IsReady queried on a dead probe, want liveness veto first")
	}
	want := health.Failure{Probe: "database", Flag: health.FlagAlive}
	if failure != want {
		t.Errorf("failure = %+v, want %+v", failure, want)
	}
}

func TestEvaluate_NotReadyProbeStopsEvaluation(t *testing.T) {
	t.Parallel()

	trailing := mocks.NewMockProbe(t)

	got, failure := health.Evaluate(domain.OptimisticVerdict(), entries(
		"database", newStub(true, true),
		"cache", newStub(false, true),
		"inventory-api", trailing,
	))

	want := domain.Verdict{Ready: false, Alive: true, Healthy: false}
	if got != want {
		t.Errorf("Evaluate() = %+v, want %+v", got, want)
	}
	if failure.Probe != "cache" || failure.Flag != health.FlagReady {
		t.Errorf("failure = %+v, want cache/ready", failure)
	}
}

func TestEvaluate_QueriesLivenessBeforeReadiness(t *testing.T) {
	t.Parallel()

	var order []string
	probe := mocks.NewMockProbe(t)
	probe.EXPECT().IsAlive().Run(func() { order = append(order, "alive") }).Return(true).Once()
	probe.EXPECT().IsReady().Run(func() { order = append(order, "ready") }).Return(true).Once()

	health.Evaluate(domain.OptimisticVerdict(), entries("database", probe))

	if len(order) != 2 || order[0] != "alive" || order[1] != "ready" {
		t.Errorf("query order = %v, want [alive ready]", order)
	}
}

// The fail-fast policy lets an earlier not-ready probe hide a later dead
// one: liveness stays at its previous value even though a probe is dead.
// The direct pass (AND over every probe) reports alive=false for the same
// probe set; the two read paths disagree here on purpose.
func TestEvaluate_NotReadyProbeMasksLaterDeadProbe(t *testing.T) {
	t.Parallel()

	dead := newStub(true, false)
	got, _ := health.Evaluate(domain.OptimisticVerdict(), entries(
		"cache", newStub(false, true),
		"database", dead,
	))

	if !got.Alive {
		t.Error("Alive = false, want previous value true (dead probe never reached)")
	}
	if got.Healthy {
		t.Error("Healthy = true, want false")
	}
	if dead.calls() != 0 {
		t.Errorf("dead probe queried %d times, want 0", dead.calls())
	}
}

func TestEvaluate_StaleFlagKeptUntilFullPass(t *testing.T) {
	t.Parallel()

	cache := newStub(false, true)
	probes := entries("cache", cache)

	v1, _ := health.Evaluate(domain.OptimisticVerdict(), probes)
	if v1.Ready {
		t.Fatalf("first pass Ready = true, want false")
	}

	// Readiness recovers but liveness now fails: the stale ready=false is kept.
	cache.ready.Store(true)
	cache.alive.Store(false)
	v2, _ := health.Evaluate(v1, probes)
	want := domain.Verdict{Ready: false, Alive: false, Healthy: false}
	if v2 != want {
		t.Errorf("second pass = %+v, want %+v", v2, want)
	}

	cache.alive.Store(true)
	v3, _ := health.Evaluate(v2, probes)
	if v3 != domain.OptimisticVerdict() {
		t.Errorf("third pass = %+v, want all true", v3)
	}
}
