// Package particle simulates short-lived visual burst particles over a fixed
// pool of pre-created render handles. Capacity is a hard bound: emission past
// it truncates silently, it never allocates new handles mid-run.
package particle

import (
	"github.com/lixenwraith/ember/constant"
	"github.com/lixenwraith/ember/core"
	"github.com/lixenwraith/ember/render"
	"github.com/lixenwraith/ember/vmath"
)

// EmitOptions tunes one emission burst. Zero values fall back to the
// constant-package defaults.
type EmitOptions struct {
	Speed      float64 // Horizontal spread, velocity in ±Speed/2 per axis
	UpwardBias float64 // Minimum vertical launch speed
	Lifetime   float64 // Seconds of life (consumed at double rate)
}

// record is one live particle bound to a pool slot. Position is mirrored
// here because the renderer contract is write-only.
type record struct {
	slot     int
	position vmath.Vec3F
	velocity vmath.Vec3F
	color    core.RGB
	life     float64
}

// System owns a fixed array of hidden render handles and cycles them through
// emission bursts. Single-threaded; the owning loop calls Emit/Update/Clear.
type System struct {
	renderer render.Renderer
	rng      *vmath.Rand

	slots    []render.Handle
	freeList []int // Idle slot indices, stack discipline
	active   []record

	disposed bool
}

// NewSystem pre-creates size hidden handles on the renderer. A nil rng gets
// a fixed-seed generator; pass a shared seeded generator for reproducible
// runs. Size <= 0 falls back to the default pool size.
func NewSystem(renderer render.Renderer, size int, rng *vmath.Rand) *System {
	if size <= 0 {
		size = constant.ParticlePoolSize
	}
	if rng == nil {
		rng = vmath.NewRand(1)
	}

	s := &System{
		renderer: renderer,
		rng:      rng,
		slots:    make([]render.Handle, size),
		freeList: make([]int, size),
		active:   make([]record, 0, size),
	}
	for i := range s.slots {
		h := renderer.CreateHandle()
		renderer.SetVisible(h, false)
		s.slots[i] = h
		// Reverse order so slot 0 pops first
		s.freeList[i] = size - 1 - i
	}
	return s
}

// Emit starts up to count particles at position. When idle slots run out the
// burst truncates; particles already started stay, no error is raised.
func (s *System) Emit(position vmath.Vec3F, color core.RGB, count int, opts EmitOptions) {
	if opts.Speed == 0 {
		opts.Speed = constant.ParticleDefaultSpeed
	}
	if opts.UpwardBias == 0 {
		opts.UpwardBias = constant.ParticleDefaultUpwardBias
	}
	if opts.Lifetime == 0 {
		opts.Lifetime = constant.ParticleDefaultLifetime
	}

	for i := 0; i < count; i++ {
		n := len(s.freeList)
		if n == 0 {
			return
		}
		slot := s.freeList[n-1]
		s.freeList = s.freeList[:n-1]

		h := s.slots[slot]
		s.renderer.SetVisible(h, true)
		s.renderer.SetPosition(h, position)
		s.renderer.SetColor(h, color)
		s.renderer.SetScale(h, 1)

		s.active = append(s.active, record{
			slot:     slot,
			position: position,
			color:    color,
			velocity: vmath.Vec3F{
				X: s.rng.Range(-opts.Speed/2, opts.Speed/2),
				Y: s.rng.Range(opts.UpwardBias, opts.UpwardBias+constant.ParticleUpwardSpread),
				Z: s.rng.Range(-opts.Speed/2, opts.Speed/2),
			},
			life: opts.Lifetime,
		})
	}
}

// Update advances every live particle by dt seconds. Expired particles
// release their slot back to the free list; swap-removal may reorder the
// active set but visits every survivor exactly once.
func (s *System) Update(dt float64) {
	for i := 0; i < len(s.active); i++ {
		r := &s.active[i]

		r.life -= dt * constant.ParticleLifeDecayRate
		if r.life <= 0 {
			s.retire(i)
			i--
			continue
		}

		r.velocity.Y -= constant.ParticleGravity * dt
		r.position = vmath.V3FAddScaled(r.position, r.velocity, dt)

		h := s.slots[r.slot]
		s.renderer.SetPosition(h, r.position)
		s.renderer.Rotate(h, render.AxisY, r.velocity.X*constant.ParticleSpinFactor*dt)
		s.renderer.Rotate(h, render.AxisX, r.velocity.Z*constant.ParticleSpinFactor*dt)
		s.renderer.SetScale(h, r.life*constant.ParticleScalePerLife)
		// Tint fades to black through the final second of life
		s.renderer.SetColor(h, r.color.Scale(r.life))
	}
}

// ActiveCount returns the number of live particles
func (s *System) ActiveCount() int {
	return len(s.active)
}

// Clear hides every live particle and empties the active set. Idle slots are
// untouched; the system is immediately reusable.
func (s *System) Clear() {
	for i := range s.active {
		slot := s.active[i].slot
		s.renderer.SetVisible(s.slots[slot], false)
		s.freeList = append(s.freeList, slot)
	}
	s.active = s.active[:0]
}

// Dispose clears the system and destroys every pooled handle. Must be the
// last call on the instance.
func (s *System) Dispose() {
	if s.disposed {
		return
	}
	s.Clear()
	for _, h := range s.slots {
		s.renderer.DestroyHandle(h)
	}
	s.slots = nil
	s.freeList = nil
	s.disposed = true
}

// retire hides the slot at active index i and swap-removes the record
func (s *System) retire(i int) {
	slot := s.active[i].slot
	s.renderer.SetVisible(s.slots[slot], false)
	s.freeList = append(s.freeList, slot)

	last := len(s.active) - 1
	s.active[i] = s.active[last]
	s.active = s.active[:last]
}
