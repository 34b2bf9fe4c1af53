// Package orb implements homing collectible orbs. An orb idles where it
// spawned until its target comes within pickup range, then accelerates toward
// it until collected. The homing trigger is sticky: once engaged it never
// disengages, even if the target leaves range again.
package orb

import (
	"github.com/lixenwraith/ember/constant"
	"github.com/lixenwraith/ember/core"
	"github.com/lixenwraith/ember/render"
	"github.com/lixenwraith/ember/vmath"
)

// Base tint; per-orb value blends it toward white
var orbTint = core.RGB{R: 80, G: 220, B: 120}

// Orb is a single collectible. Idle -> Homing is distance-triggered and
// irreversible; Homing -> Collected is terminal.
type Orb struct {
	renderer render.Renderer
	handle   render.Handle

	Position vmath.Vec3F
	Velocity vmath.Vec3F
	Value    int

	targetPlayer bool
	collected    bool
	destroyed    bool
}

// New creates an orb and its visual handle at position. A value <= 0 falls
// back to the default reward.
func New(renderer render.Renderer, position vmath.Vec3F, value int) *Orb {
	if value <= 0 {
		value = constant.OrbDefaultValue
	}
	o := &Orb{
		renderer: renderer,
		handle:   renderer.CreateHandle(),
	}
	o.init(position, value)
	return o
}

// init arms a fresh or recycled orb at position
func (o *Orb) init(position vmath.Vec3F, value int) {
	o.Position = position
	o.Velocity = vmath.Vec3F{}
	o.Value = value
	o.targetPlayer = false
	o.collected = false

	o.renderer.SetPosition(o.handle, position)
	o.renderer.SetColor(o.handle, orbTint.Blend(core.RGBWhite, float64(value-1)*constant.OrbValueTintStep))
	o.renderer.SetScale(o.handle, 1)
	o.renderer.SetVisible(o.handle, true)
}

// Homing reports whether the orb has locked onto its target
func (o *Orb) Homing() bool {
	return o.targetPlayer
}

// Collected reports whether the orb has reached its target
func (o *Orb) Collected() bool {
	return o.collected
}

// Update advances the orb by dt seconds toward target. pickupRange <= 0
// falls back to the default. Returns true on the frame the orb is collected;
// the caller must then Destroy it and stop updating.
func (o *Orb) Update(dt float64, target vmath.Vec3F, pickupRange float64) bool {
	if o.collected {
		return false
	}
	if pickupRange <= 0 {
		pickupRange = constant.OrbPickupRange
	}

	dist := vmath.V3FDist(o.Position, target)

	if dist < pickupRange || o.targetPlayer {
		o.targetPlayer = true

		dir := vmath.V3FNormalize(vmath.V3FSub(target, o.Position))
		o.Velocity = vmath.V3FAddScaled(o.Velocity, dir, constant.OrbHomingAccel*dt)
		// Damping keeps the orb from overshooting into a stable orbit
		o.Velocity = vmath.V3FScale(o.Velocity, constant.OrbHomingDamping)
	}

	o.Position = vmath.V3FAddScaled(o.Position, o.Velocity, dt)
	o.renderer.SetPosition(o.handle, o.Position)
	o.renderer.Rotate(o.handle, render.AxisY, constant.OrbSpinRate*dt)

	if dist < constant.OrbCollectRadius {
		o.collected = true
		return true
	}
	return false
}

// Destroy releases the visual handle. Call exactly once, after collection or
// when force-clearing a run; Update must not be called afterward.
func (o *Orb) Destroy() {
	if o.destroyed {
		return
	}
	o.renderer.DestroyHandle(o.handle)
	o.destroyed = true
}
