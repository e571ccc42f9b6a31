package health

import (
	"context"
	"sync"
	"time"

	"github.com/jsamuelsen11/go-actuator/internal/domain"
)

// Source identifies what started a refresh.
type Source string

const (
	SourceStartup Source = "startup"
	SourceTimer   Source = "timer"
	SourceTrigger Source = "trigger"
)

// Notification is published to subscribers when a refresh completes.
type Notification struct {
	// Seq counts completed refreshes, starting at 1.
	Seq uint64
	// Trigger is the highest TriggerRefresh ticket issued before the refresh
	// read the registry. A refresh covers every trigger with a ticket <= Trigger.
	Trigger uint64
	Source  Source
	Verdict domain.Verdict
	Failure Failure
	At      time.Time
}

// Subscription receives refresh-completion notifications. Its mailbox holds
// a single notification: when a new one arrives before the previous one was
// consumed, the stale one is discarded.
type Subscription struct {
	ch     chan Notification
	topic  *topic
	closed chan struct{}
	once   sync.Once
}

// C returns the channel notifications are delivered on. The channel is never
// closed; use Next to also observe engine shutdown.
func (s *Subscription) C() <-chan Notification {
	return s.ch
}

// Next waits for the next notification. It returns ErrStopped once the
// engine has stopped or the subscription was closed, and ctx.Err() when ctx
// is done first.
func (s *Subscription) Next(ctx context.Context) (Notification, error) {
	select {
	case n := <-s.ch:
		return n, nil
	case <-s.closed:
		return Notification{}, ErrStopped
	case <-s.topic.done:
		return Notification{}, ErrStopped
	case <-ctx.Done():
		return Notification{}, ctx.Err()
	}
}

// NextAfter waits for the first notification covering ticket, skipping
// refreshes that read the registry before ticket was issued. Tickets come
// from Engine.TriggerRefresh.
func (s *Subscription) NextAfter(ctx context.Context, ticket uint64) (Notification, error) {
	for {
		n, err := s.Next(ctx)
		if err != nil {
			return Notification{}, err
		}
		if n.Trigger >= ticket {
			return n, nil
		}
	}
}

// Close unsubscribes. Safe to call more than once.
func (s *Subscription) Close() {
	s.once.Do(func() {
		s.topic.remove(s)
		close(s.closed)
	})
}

// topic fans notifications out to subscriptions. There is a single
// publisher, the refresh loop.
type topic struct {
	mu   sync.Mutex
	subs map[*Subscription]struct{}
	done chan struct{}
}

func newTopic() *topic {
	return &topic{
		subs: make(map[*Subscription]struct{}),
		done: make(chan struct{}),
	}
}

func (t *topic) subscribe() *Subscription {
	s := &Subscription{
		ch:     make(chan Notification, 1),
		topic:  t,
		closed: make(chan struct{}),
	}

	t.mu.Lock()
	defer t.mu.Unlock()
	t.subs[s] = struct{}{}
	return s
}

func (t *topic) remove(s *Subscription) {
	t.mu.Lock()
	defer t.mu.Unlock()
	delete(t.subs, s)
}

// publish delivers n to every subscription without blocking, replacing an
// unconsumed notification.
func (t *topic) publish(n Notification) {
	t.mu.Lock()
	defer t.mu.Unlock()

	for s := range t.subs {
		select {
		case s.ch <- n:
			continue
		default:
		}
		// Mailbox full: drop the stale notification. The subscriber may
		// have consumed it concurrently, in which case the drain is a no-op.
		select {
		case <-s.ch:
		default:
		}
		select {
		case s.ch <- n:
		default:
		}
	}
}

// close wakes every waiter with ErrStopped.
func (t *topic) close() {
	t.mu.Lock()
	defer t.mu.Unlock()

	select {
	case <-t.done:
	default:
		close(t.done)
	}
	clear(t.subs)
}
