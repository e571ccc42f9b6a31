package probes

import "sync/atomic"

// Static is a probe whose flags are set explicitly.
type Static struct {
	ready atomic.Bool
	alive atomic.Bool
}

// NewStatic returns a Static probe with the given initial flags.
func NewStatic(ready, alive bool) *Static {
	s := &Static{}
	s.ready.Store(ready)
	s.alive.Store(alive)
	return s
}

// IsReady reports the ready flag.
func (s *Static) IsReady() bool { return s.ready.Load() }

// IsAlive reports the alive flag.
func (s *Static) IsAlive() bool { return s.alive.Load() }

// SetReady sets the ready flag.
func (s *Static) SetReady(ready bool) { s.ready.Store(ready) }

// SetAlive sets the alive flag.
func (s *Static) SetAlive(alive bool) { s.alive.Store(alive) }
