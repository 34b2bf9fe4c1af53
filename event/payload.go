package event

import (
	"sync"

	"github.com/lixenwraith/ember/core"
	"github.com/lixenwraith/ember/vmath"
)

// BurstPayload carries one particle burst request. Zero option fields use
// the core's tuning defaults.
type BurstPayload struct {
	Position   vmath.Vec3F
	Color      core.RGB
	Count      int
	Speed      float64
	UpwardBias float64
	Lifetime   float64
}

// OrbDropPayload carries one orb spawn request
type OrbDropPayload struct {
	Position vmath.Vec3F
	Value    int
}

var burstPool = sync.Pool{
	New: func() any { return &BurstPayload{} },
}

var orbDropPool = sync.Pool{
	New: func() any { return &OrbDropPayload{} },
}

// AcquireBurst returns a pooled, zeroed burst payload
func AcquireBurst() *BurstPayload {
	p := burstPool.Get().(*BurstPayload)
	*p = BurstPayload{}
	return p
}

// ReleaseBurst returns a payload to the pool; nil is ignored
func ReleaseBurst(p *BurstPayload) {
	if p == nil {
		return
	}
	burstPool.Put(p)
}

// AcquireOrbDrop returns a pooled, zeroed orb drop payload
func AcquireOrbDrop() *OrbDropPayload {
	p := orbDropPool.Get().(*OrbDropPayload)
	*p = OrbDropPayload{}
	return p
}

// ReleaseOrbDrop returns a payload to the pool; nil is ignored
func ReleaseOrbDrop(p *OrbDropPayload) {
	if p == nil {
		return
	}
	orbDropPool.Put(p)
}

// EmitBurst pushes a pooled burst request onto the queue
func EmitBurst(q *Queue, position vmath.Vec3F, color core.RGB, count int, frame int64) {
	p := AcquireBurst()
	p.Position = position
	p.Color = color
	p.Count = count
	q.Push(Event{Type: TypeBurstRequest, Payload: p, Frame: frame})
}

// EmitOrbDrop pushes a pooled orb spawn request onto the queue
func EmitOrbDrop(q *Queue, position vmath.Vec3F, value int, frame int64) {
	p := AcquireOrbDrop()
	p.Position = position
	p.Value = value
	q.Push(Event{Type: TypeOrbDrop, Payload: p, Frame: frame})
}
