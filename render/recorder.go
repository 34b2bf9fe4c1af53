package render

import (
	"github.com/lixenwraith/ember/core"
	"github.com/lixenwraith/ember/vmath"
)

// HandleState is the recorder's view of one handle
type HandleState struct {
	Visible   bool
	Position  vmath.Vec3F
	Color     core.RGB
	Scale     float64
	Spin      float64 // Accumulated rotation, all axes summed
	Destroyed bool
}

// Recorder is an in-memory Renderer that records every call. It backs tests
// and headless simulation runs.
type Recorder struct {
	handles []HandleState

	CreateCalls  int
	DestroyCalls int
}

// NewRecorder returns an empty recording backend
func NewRecorder() *Recorder {
	return &Recorder{}
}

func (r *Recorder) CreateHandle() Handle {
	r.CreateCalls++
	r.handles = append(r.handles, HandleState{Scale: 1})
	return Handle(len(r.handles) - 1)
}

func (r *Recorder) SetVisible(h Handle, visible bool) {
	r.handles[h].Visible = visible
}

func (r *Recorder) SetPosition(h Handle, pos vmath.Vec3F) {
	r.handles[h].Position = pos
}

func (r *Recorder) SetColor(h Handle, color core.RGB) {
	r.handles[h].Color = color
}

func (r *Recorder) SetScale(h Handle, scale float64) {
	r.handles[h].Scale = scale
}

func (r *Recorder) Rotate(h Handle, _ Axis, radians float64) {
	r.handles[h].Spin += radians
}

func (r *Recorder) DestroyHandle(h Handle) {
	r.handles[h].Destroyed = true
	r.DestroyCalls++
}

// State returns the recorded state for a handle
func (r *Recorder) State(h Handle) HandleState {
	return r.handles[h]
}

// VisibleCount counts handles currently flagged visible
func (r *Recorder) VisibleCount() int {
	n := 0
	for _, hs := range r.handles {
		if hs.Visible && !hs.Destroyed {
			n++
		}
	}
	return n
}

// LiveCount counts handles created and not yet destroyed
func (r *Recorder) LiveCount() int {
	return r.CreateCalls - r.DestroyCalls
}
