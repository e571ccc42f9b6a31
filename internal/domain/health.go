package domain

// Status is the coarse health state reported on actuator endpoints.
type Status string

const (
	StatusUp   Status = "UP"
	StatusDown Status = "DOWN"
)

// StatusOf maps a boolean health flag to its Status.
func StatusOf(ok bool) Status {
	if ok {
		return StatusUp
	}
	return StatusDown
}

// Verdict is the aggregate judgment derived from all registered probes.
//
// Healthy is false whenever the last evaluation stopped on a failing probe.
// Ready and Alive only change when a probe vetoes them or when every probe
// passes, so a flag that the failing probe did not blame keeps its previous
// value.
type Verdict struct {
	Ready   bool `json:"ready"`
	Alive   bool `json:"alive"`
	Healthy bool `json:"healthy"`
}

// OptimisticVerdict is the verdict before any probe has been evaluated.
func OptimisticVerdict() Verdict {
	return Verdict{Ready: true, Alive: true, Healthy: true}
}

// Serving reports whether the verdict allows receiving traffic. A verdict
// whose evaluation was cut short by a failing probe never serves, even when
// its Ready flag is stale from an earlier pass.
func (v Verdict) Serving() bool {
	return v.Ready && v.Healthy
}
