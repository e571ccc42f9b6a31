package health

import (
	"github.com/jsamuelsen11/go-actuator/internal/domain"
	"github.com/jsamuelsen11/go-actuator/internal/ports"
)

// Failure identifies the probe that stopped an evaluation and the flag it
// vetoed. The zero value means every probe passed.
type Failure struct {
	Probe string
	Flag  string
}

// Flags blamed by a Failure. FlagPanic marks a probe that panicked while
// being queried.
const (
	FlagReady = "ready"
	FlagAlive = "alive"
	FlagPanic = "panic"
)

// Evaluate computes the next verdict from prev and the probes in entries.
//
// Probes are visited in order. For each probe liveness is queried first, then
// readiness. The first failing query sets the matching flag and Healthy to
// false and ends the evaluation: later probes are never queried, and the flag
// that was not blamed keeps its value from prev. When every probe passes,
// Ready, Alive and Healthy are all set to true.
//
// This fail-fast policy is order-sensitive. It differs from the direct pass
// that ANDs every probe's flags independently; callers choosing a read path
// must not assume the two agree.
func Evaluate(prev domain.Verdict, entries []ports.NamedProbe) (domain.Verdict, Failure) {
	next := prev
	next.Healthy = true

	for _, e := range entries {
		if !e.Probe.IsAlive() {
			next.Alive = false
			next.Healthy = false
			return next, Failure{Probe: e.Name, Flag: FlagAlive}
		}
		if !e.Probe.IsReady() {
			next.Ready = false
			next.Healthy = false
			return next, Failure{Probe: e.Name, Flag: FlagReady}
		}
	}

	next.Ready = true
	next.Alive = true
	return next, Failure{}
}
