package shell

import (
	"sync"

	"github.com/mchmarny/jot/pkg/dispatch"
	"github.com/mchmarny/jot/pkg/metric"
)

// Broadcaster fans notifications out to every current subscriber.
// Delivery is fire-and-forget: a subscriber whose buffer is full misses the
// notification, and the sender never waits.
type Broadcaster struct {
	mu      sync.RWMutex
	subs    map[uint64]chan dispatch.Notification
	next    uint64
	buffer  int
	dropped metric.IncrementalCounter
}

// NewBroadcaster creates a Broadcaster giving each subscriber a buffer of the given size.
func NewBroadcaster(buffer int, dropped metric.IncrementalCounter) *Broadcaster {
	if buffer < 1 {
		buffer = 1
	}
	if dropped == nil {
		dropped = metric.Discard
	}
	return &Broadcaster{
		subs:    make(map[uint64]chan dispatch.Notification),
		buffer:  buffer,
		dropped: dropped,
	}
}

// Notify implements dispatch.Notifier.
func (b *Broadcaster) Notify(n dispatch.Notification) {
	b.mu.RLock()
	defer b.mu.RUnlock()

	for _, ch := range b.subs {
		select {
		case ch <- n:
		default:
			b.dropped.Increment()
		}
	}
}

// Subscribe registers a new subscriber. The returned cancel func unregisters
// it and closes the channel; it is safe to call more than once.
func (b *Broadcaster) Subscribe() (<-chan dispatch.Notification, func()) {
	ch := make(chan dispatch.Notification, b.buffer)

	b.mu.Lock()
	id := b.next
	b.next++
	b.subs[id] = ch
	b.mu.Unlock()

	var once sync.Once
	return ch, func() {
		once.Do(func() {
			b.mu.Lock()
			delete(b.subs, id)
			b.mu.Unlock()
			close(ch)
		})
	}
}

// Subscribers returns the current subscriber count.
func (b *Broadcaster) Subscribers() int {
	b.mu.RLock()
	defer b.mu.RUnlock()

	return len(b.subs)
}
