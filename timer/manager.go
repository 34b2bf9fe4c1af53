// Package timer tracks named countdown and repeating timers on simulation
// time. Timers are independent of entity pooling; gameplay code keys them by
// name and re-adding a name replaces the previous timer.
package timer

import (
	"slices"
)

type entry struct {
	elapsed  float64
	duration float64
	repeat   bool
	callback func()
}

// Manager owns all named timers of a run. Single-threaded; the game loop
// drives Update once per frame.
type Manager struct {
	timers map[string]*entry
	names  []string // Reusable iteration buffer
}

// NewManager returns an empty timer manager
func NewManager() *Manager {
	return &Manager{
		timers: make(map[string]*entry),
	}
}

// Add inserts or replaces the named timer with elapsed reset to zero.
// duration is in seconds of simulation time.
func (m *Manager) Add(name string, duration float64, callback func(), repeat bool) {
	m.timers[name] = &entry{
		duration: duration,
		repeat:   repeat,
		callback: callback,
	}
}

// Update advances every timer by dt seconds and fires due callbacks
// synchronously. A fired one-shot timer is removed; a fired repeating timer
// restarts from zero, so a duration shorter than dt still fires at most once
// per call (no catch-up ticking). Callback panics are not caught: the first
// fault aborts the remainder of the pass so gameplay bugs surface
// immediately.
func (m *Manager) Update(dt float64) {
	// Snapshot names so callbacks may Add/Remove without corrupting the
	// pass; timers added during the pass first tick next frame. Sorted so
	// same-frame fire order is deterministic across runs
	m.names = m.names[:0]
	for name := range m.timers {
		m.names = append(m.names, name)
	}
	slices.Sort(m.names)

	for _, name := range m.names {
		e, ok := m.timers[name]
		if !ok {
			continue // Removed by an earlier callback
		}

		e.elapsed += dt
		if e.elapsed < e.duration {
			continue
		}

		if e.repeat {
			e.elapsed = 0
		} else {
			delete(m.timers, name)
		}
		e.callback()
	}
}

// Remove deletes the named timer; unknown names are a no-op
func (m *Manager) Remove(name string) {
	delete(m.timers, name)
}

// Has reports whether the named timer exists
func (m *Manager) Has(name string) bool {
	_, ok := m.timers[name]
	return ok
}

// Count returns the number of live timers
func (m *Manager) Count() int {
	return len(m.timers)
}

// Clear removes all timers
func (m *Manager) Clear() {
	clear(m.timers)
}
