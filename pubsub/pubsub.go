package pubsub

import (
	"sync"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

var plog zerolog.Logger

func init() {
	plog = log.With().Str("component", "pubsub").Logger()
}

// DefaultBuffer is how many undelivered messages a subscriber may queue
// before new ones are dropped
const DefaultBuffer = 16

type SubscriptionID int64

type Pubsub[T any] struct {
	nextID      SubscriptionID
	buffer      int
	subscribers map[SubscriptionID]chan T
	mu          sync.RWMutex
}

func New[T any]() *Pubsub[T] {
	return NewBuffered[T](DefaultBuffer)
}

func NewBuffered[T any](buffer int) *Pubsub[T] {
	if buffer < 0 {
		buffer = 0
	}
	return &Pubsub[T]{
		buffer:      buffer,
		subscribers: make(map[SubscriptionID]chan T),
	}
}

func (ps *Pubsub[T]) Subscribe() (SubscriptionID, <-chan T) {
	ps.mu.Lock()
	defer ps.mu.Unlock()

	ch := make(chan T, ps.buffer)
	id := ps.nextID
	ps.subscribers[id] = ch
	ps.nextID++

	plog.Debug().Int64("subscription_id", int64(id)).Msg("Subscribed")

	return id, ch
}

// Unsubscribe closes the subscriber's channel. Unknown ids are ignored.
func (ps *Pubsub[T]) Unsubscribe(id SubscriptionID) {
	ps.mu.Lock()
	defer ps.mu.Unlock()

	ch, ok := ps.subscribers[id]
	if !ok {
		return
	}

	delete(ps.subscribers, id)
	close(ch)

	plog.Debug().Int64("subscription_id", int64(id)).Msg("Unsubscribed")
}

// Publish never blocks; subscribers with a full buffer miss the message.
func (ps *Pubsub[T]) Publish(msg T) {
	ps.mu.RLock()
	defer ps.mu.RUnlock()

	for id, ch := range ps.subscribers {
		select {
		case ch <- msg:
		default:
			plog.Warn().
				Int64("subscription_id", int64(id)).
				Interface("message", msg).
				Msg("Message dropped, channel full")
		}
	}
}

func (ps *Pubsub[T]) Len() int {
	ps.mu.RLock()
	defer ps.mu.RUnlock()

	return len(ps.subscribers)
}
