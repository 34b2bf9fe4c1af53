// Package event provides the pub/sub seam between gameplay code and the
// simulation core. Producers push typed events onto a fixed ring buffer; the
// game loop is the single consumer and drains it once per frame. Delivery is
// best-effort: when the buffer wraps, the oldest unread events are dropped.
package event

import (
	"sync/atomic"
)

// queueCap is the ring buffer capacity; must be a power of two
const queueCap = 256

// Type discriminates game events
type Type int

const (
	// TypeBurstRequest asks the core to emit a particle burst.
	// Payload: *BurstPayload (pooled, consumer must release)
	TypeBurstRequest Type = iota

	// TypeOrbDrop asks the core to spawn a collectible orb.
	// Payload: *OrbDropPayload (pooled, consumer must release)
	TypeOrbDrop

	// TypeOrbCollected reports a collected orb.
	// Payload: int reward value
	TypeOrbCollected

	// TypeTimerFired reports a named timer expiry routed through the queue.
	// Payload: string timer name
	TypeTimerFired
)

// Event is one queued occurrence. Frame tags the simulation frame it was
// pushed on so consumers can drop stale entries after a reset.
type Event struct {
	Type    Type
	Payload any
	Frame   int64
}

// Queue is a lock-free single-consumer ring buffer. Pushes are safe from any
// goroutine; Consume belongs to the game loop alone.
type Queue struct {
	events [queueCap]Event
	head   atomic.Uint64 // Next read index
	tail   atomic.Uint64 // Next write index
}

// NewQueue returns an empty queue
func NewQueue() *Queue {
	return &Queue{}
}

// Push appends an event, overwriting the oldest unread entry when full
func (q *Queue) Push(ev Event) {
	for {
		currentTail := q.tail.Load()
		nextTail := currentTail + 1

		if q.tail.CompareAndSwap(currentTail, nextTail) {
			q.events[currentTail%queueCap] = ev

			// Overwrote unread data; drag head forward best-effort
			currentHead := q.head.Load()
			if nextTail-currentHead > queueCap {
				q.head.CompareAndSwap(currentHead, nextTail-queueCap)
			}
			return
		}
	}
}

// Consume returns all pending events oldest-first and marks them read.
// Returns nil when empty. Single consumer only.
func (q *Queue) Consume() []Event {
	currentHead := q.head.Load()
	currentTail := q.tail.Load()

	available := currentTail - currentHead
	if available == 0 {
		return nil
	}
	if available > queueCap {
		available = queueCap
		currentHead = currentTail - queueCap
	}

	result := make([]Event, available)
	for i := uint64(0); i < available; i++ {
		result[i] = q.events[(currentHead+i)%queueCap]
	}

	for !q.head.CompareAndSwap(currentHead, currentTail) {
		currentHead = q.head.Load()
		currentTail = q.tail.Load()
		if currentTail == currentHead {
			return result
		}
	}
	return result
}

// Len returns the number of unread events
func (q *Queue) Len() int {
	head := q.head.Load()
	tail := q.tail.Load()
	n := tail - head
	if n > queueCap {
		n = queueCap
	}
	return int(n)
}
