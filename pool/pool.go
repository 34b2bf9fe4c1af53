// Package pool provides a generic object pool for short-lived gameplay
// entities. Reuse is LIFO: the most recently released instance is handed out
// first, which keeps hot instances cache-warm during burst spawn/despawn.
package pool

// Pool recycles instances of T between an available stack and an active set.
// Every instance the pool has ever created is in exactly one of the two
// partitions. Not safe for concurrent use; the game loop owns it.
type Pool[T comparable] struct {
	factory func() T
	reset   func(T)

	available []T
	active    map[T]struct{}
}

// New builds a pool pre-populated with initialSize factory instances.
// reset runs on every release before the instance returns to the stack.
func New[T comparable](factory func() T, reset func(T), initialSize int) *Pool[T] {
	p := &Pool[T]{
		factory:   factory,
		reset:     reset,
		available: make([]T, 0, initialSize),
		active:    make(map[T]struct{}, initialSize),
	}
	for i := 0; i < initialSize; i++ {
		p.available = append(p.available, factory())
	}
	return p
}

// Acquire returns a pooled instance, growing via the factory when the stack
// is empty. It never fails; unbounded growth is the accepted trade for never
// stalling a gameplay-critical spawn.
func (p *Pool[T]) Acquire() T {
	var obj T
	if n := len(p.available); n > 0 {
		obj = p.available[n-1]
		p.available = p.available[:n-1]
	} else {
		obj = p.factory()
	}
	p.active[obj] = struct{}{}
	return obj
}

// Release resets obj and returns it to the available stack. Releasing an
// instance that is not active (double release, foreign object) is a no-op.
func (p *Pool[T]) Release(obj T) {
	if _, ok := p.active[obj]; !ok {
		return
	}
	delete(p.active, obj)
	p.reset(obj)
	p.available = append(p.available, obj)
}

// ActiveCount returns the number of checked-out instances
func (p *Pool[T]) ActiveCount() int {
	return len(p.active)
}

// AvailableCount returns the number of instances ready for reuse
func (p *Pool[T]) AvailableCount() int {
	return len(p.available)
}

// Clear tears the pool down. When dispose is non-nil it runs once per
// instance across both partitions. Both partitions end empty; the pool can
// technically be reused afterward but callers treat this as final teardown.
func (p *Pool[T]) Clear(dispose func(T)) {
	if dispose != nil {
		for _, obj := range p.available {
			dispose(obj)
		}
		for obj := range p.active {
			dispose(obj)
		}
	}
	p.available = p.available[:0]
	clear(p.active)
}
