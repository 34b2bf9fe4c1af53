package orb

import (
	"github.com/lixenwraith/ember/constant"
	"github.com/lixenwraith/ember/pool"
	"github.com/lixenwraith/ember/render"
	"github.com/lixenwraith/ember/vmath"
)

// Field manages the live orbs of a run on top of an object pool. Released
// orbs keep their hidden visual handle and are re-armed on the next spawn,
// so steady-state play allocates nothing.
type Field struct {
	pool *pool.Pool[*Orb]
	live []*Orb

	// PickupRange overrides the default homing trigger distance when > 0
	PickupRange float64

	// OnCollect, when set, runs once per collected orb with its reward value
	OnCollect func(value int)
}

// NewField builds a field whose pool pre-creates initialSize hidden orbs
func NewField(renderer render.Renderer, initialSize int) *Field {
	return &Field{
		pool: pool.New(
			func() *Orb {
				return &Orb{
					renderer: renderer,
					handle:   renderer.CreateHandle(),
				}
			},
			func(o *Orb) {
				o.renderer.SetVisible(o.handle, false)
				o.Velocity = vmath.Vec3F{}
			},
			initialSize,
		),
		live: make([]*Orb, 0, initialSize),
	}
}

// Spawn arms a pooled orb at position and adds it to the live set
func (f *Field) Spawn(position vmath.Vec3F, value int) *Orb {
	if value <= 0 {
		value = constant.OrbDefaultValue
	}
	o := f.pool.Acquire()
	o.init(position, value)
	f.live = append(f.live, o)
	return o
}

// Update advances every live orb. Collected orbs are reported through
// OnCollect and returned to the pool; swap-removal may reorder the live set
// but every survivor is visited exactly once.
func (f *Field) Update(dt float64, target vmath.Vec3F) {
	for i := 0; i < len(f.live); i++ {
		o := f.live[i]
		if o.Update(dt, target, f.PickupRange) {
			if f.OnCollect != nil {
				f.OnCollect(o.Value)
			}
			f.remove(i)
			i--
		}
	}
}

// LiveCount returns the number of uncollected orbs
func (f *Field) LiveCount() int {
	return len(f.live)
}

// Clear returns every live orb to the pool without collection, hiding them.
// Used when force-ending a run; the field stays usable.
func (f *Field) Clear() {
	for _, o := range f.live {
		f.pool.Release(o)
	}
	f.live = f.live[:0]
}

// Dispose clears the field and destroys every pooled orb's visual handle.
// Irreversible.
func (f *Field) Dispose() {
	f.Clear()
	f.pool.Clear(func(o *Orb) { o.Destroy() })
}

func (f *Field) remove(i int) {
	f.pool.Release(f.live[i])
	last := len(f.live) - 1
	f.live[i] = f.live[last]
	f.live = f.live[:last]
}
