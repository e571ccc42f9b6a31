package health_test

import (
	"sync"
	"sync/atomic"
)

// stubProbe is a switchable probe that counts how often it was queried.
type stubProbe struct {
	ready      atomic.Bool
	alive      atomic.Bool
	readyCalls atomic.Int64
	aliveCalls atomic.Int64
}

func newStub(ready, alive bool) *stubProbe {
	p := &stubProbe{}
	p.ready.Store(ready)
	p.alive.Store(alive)
	return p
}

func (p *stubProbe) IsReady() bool {
	p.readyCalls.Add(1)
	return p.ready.Load()
}

func (p *stubProbe) IsAlive() bool {
	p.aliveCalls.Add(1)
	return p.alive.Load()
}

func (p *stubProbe) calls() int64 {
	return p.readyCalls.Load() + p.aliveCalls.Load()
}

// gateProbe blocks in IsAlive until released, holding the refresh that
// queries it mid-evaluation.
type gateProbe struct {
	entered     chan struct{}
	release     chan struct{}
	enterOnce   sync.Once
	releaseOnce sync.Once
}

func newGate() *gateProbe {
	return &gateProbe{
		entered: make(chan struct{}),
		release: make(chan struct{}),
	}
}

func (p *gateProbe) IsReady() bool { return true }

func (p *gateProbe) IsAlive() bool {
	p.enterOnce.Do(func() { close(p.entered) })
	<-p.release
	return true
}

func (p *gateProbe) open() {
	p.releaseOnce.Do(func() { close(p.release) })
}
