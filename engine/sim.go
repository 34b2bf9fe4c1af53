// Package engine ties the transient-entity subsystems into one frame-stepped
// simulation. Gameplay code communicates with it through the event queue
// (spawn requests in, collection reports out) and the injected store.
package engine

import (
	"github.com/lixenwraith/ember/constant"
	"github.com/lixenwraith/ember/event"
	"github.com/lixenwraith/ember/orb"
	"github.com/lixenwraith/ember/particle"
	"github.com/lixenwraith/ember/render"
	"github.com/lixenwraith/ember/store"
	"github.com/lixenwraith/ember/timer"
	"github.com/lixenwraith/ember/vmath"
)

// ProgressKey is the store key holding the accumulated reward total
const ProgressKey = "progress.xp"

// Config assembles a Sim. Zero values fall back to tuning defaults; the
// queues and store are optional collaborators. Requests carries spawn asks
// from gameplay code into the sim; Reports carries collection and timer
// notifications back out. They must be distinct queues: each side is the
// single consumer of its own inbox.
type Config struct {
	Renderer     render.Renderer
	Seed         int64
	ParticlePool int
	OrbPool      int
	PickupRange  float64

	Requests *event.Queue
	Reports  *event.Queue
	Store    store.Store
}

// Sim owns the particle system, orb field and timer manager of one run and
// steps them once per frame. Single-threaded by contract.
type Sim struct {
	Particles *particle.System
	Orbs      *orb.Field
	Timers    *timer.Manager
	Rand      *vmath.Rand

	requests *event.Queue
	reports  *event.Queue
	store    store.Store

	frame     int64
	collected int
}

// NewSim builds the simulation aggregate on the given renderer
func NewSim(cfg Config) *Sim {
	rng := vmath.NewRand(cfg.Seed)

	orbPool := cfg.OrbPool
	if orbPool <= 0 {
		orbPool = 32
	}

	s := &Sim{
		Particles: particle.NewSystem(cfg.Renderer, cfg.ParticlePool, rng),
		Orbs:      orb.NewField(cfg.Renderer, orbPool),
		Timers:    timer.NewManager(),
		Rand:      rng,
		requests:  cfg.Requests,
		reports:   cfg.Reports,
		store:     cfg.Store,
	}
	s.Orbs.PickupRange = cfg.PickupRange
	s.Orbs.OnCollect = s.onCollect

	// Best-effort resume: a missing or unreadable stored total starts the
	// run from zero rather than failing construction
	if s.store != nil {
		if ok, err := s.store.Get(ProgressKey, &s.collected); !ok || err != nil {
			s.collected = 0
		}
	}
	return s
}

// Update advances the whole simulation by dt seconds: queued spawn requests
// first, then particles, orbs and timers. Call once per frame.
func (s *Sim) Update(dt float64, target vmath.Vec3F) {
	s.frame++
	s.drainRequests()

	s.Particles.Update(dt)
	s.Orbs.Update(dt, target)
	s.Timers.Update(dt)
}

// Frame returns the number of completed Update calls
func (s *Sim) Frame() int64 {
	return s.frame
}

// Collected returns the reward total accumulated this process, including any
// persisted total loaded at construction
func (s *Sim) Collected() int {
	return s.collected
}

// AddTimerEvent schedules a named timer whose expiry is reported through the
// event queue instead of a direct callback
func (s *Sim) AddTimerEvent(name string, duration float64, repeat bool) {
	s.Timers.Add(name, duration, func() {
		if s.reports != nil {
			s.reports.Push(event.Event{
				Type:    event.TypeTimerFired,
				Payload: name,
				Frame:   s.frame,
			})
		}
	}, repeat)
}

// SaveProgress persists the reward total to the injected store; a nil store
// makes it a no-op
func (s *Sim) SaveProgress() error {
	if s.store == nil {
		return nil
	}
	return s.store.Set(ProgressKey, s.collected)
}

// Clear force-ends the run: live particles, orbs and timers are dropped.
// Pools stay warm and the sim remains usable.
func (s *Sim) Clear() {
	s.Particles.Clear()
	s.Orbs.Clear()
	s.Timers.Clear()
}

// Dispose clears the run and releases every pooled visual handle.
// Must be the last call on the instance.
func (s *Sim) Dispose() {
	s.Timers.Clear()
	s.Particles.Dispose()
	s.Orbs.Dispose()
}

func (s *Sim) onCollect(value int) {
	s.collected += value
	if s.reports != nil {
		s.reports.Push(event.Event{
			Type:    event.TypeOrbCollected,
			Payload: value,
			Frame:   s.frame,
		})
	}
}

// drainRequests consumes queued spawn requests
func (s *Sim) drainRequests() {
	if s.requests == nil {
		return
	}
	for _, ev := range s.requests.Consume() {
		switch ev.Type {
		case event.TypeBurstRequest:
			p := ev.Payload.(*event.BurstPayload)
			s.Particles.Emit(p.Position, p.Color, p.Count, particle.EmitOptions{
				Speed:      p.Speed,
				UpwardBias: p.UpwardBias,
				Lifetime:   p.Lifetime,
			})
			event.ReleaseBurst(p)
		case event.TypeOrbDrop:
			p := ev.Payload.(*event.OrbDropPayload)
			value := p.Value
			if value <= 0 {
				value = constant.OrbDefaultValue
			}
			s.Orbs.Spawn(p.Position, value)
			event.ReleaseOrbDrop(p)
		default:
			// Unknown request types are dropped, delivery is best-effort
		}
	}
}
