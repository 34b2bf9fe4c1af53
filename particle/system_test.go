package particle

import (
	"math"
	"testing"

	"github.com/lixenwraith/ember/core"
	"github.com/lixenwraith/ember/render"
	"github.com/lixenwraith/ember/vmath"
)

var red = core.RGB{R: 255}

func newTestSystem(size int) (*System, *render.Recorder) {
	rec := render.NewRecorder()
	return NewSystem(rec, size, vmath.NewRand(42)), rec
}

func TestSystemPreCreatesHiddenSlots(t *testing.T) {
	_, rec := newTestSystem(10)

	if rec.CreateCalls != 10 {
		t.Errorf("Expected 10 handles created, got %d", rec.CreateCalls)
	}
	if rec.VisibleCount() != 0 {
		t.Errorf("Expected all slots hidden, got %d visible", rec.VisibleCount())
	}
}

func TestEmitActivatesSlots(t *testing.T) {
	s, rec := newTestSystem(10)

	s.Emit(vmath.Vec3F{X: 1, Y: 2}, red, 4, EmitOptions{})

	if s.ActiveCount() != 4 {
		t.Errorf("Expected ActiveCount to be 4, got %d", s.ActiveCount())
	}
	if rec.VisibleCount() != 4 {
		t.Errorf("Expected 4 visible slots, got %d", rec.VisibleCount())
	}
}

func TestEmitTruncatesOnExhaustion(t *testing.T) {
	// Pool of 5, request 10: exactly 5 start, no error
	s, rec := newTestSystem(5)

	s.Emit(vmath.Vec3F{}, red, 10, EmitOptions{})

	if s.ActiveCount() != 5 {
		t.Errorf("Expected ActiveCount to be 5 after truncation, got %d", s.ActiveCount())
	}
	if rec.VisibleCount() != 5 {
		t.Errorf("Expected 5 visible slots, got %d", rec.VisibleCount())
	}

	// Further emission is a silent no-op
	s.Emit(vmath.Vec3F{}, red, 3, EmitOptions{})
	if s.ActiveCount() != 5 {
		t.Errorf("Expected ActiveCount to stay 5, got %d", s.ActiveCount())
	}
}

func TestEmitZeroCountNoOp(t *testing.T) {
	s, rec := newTestSystem(5)
	s.Emit(vmath.Vec3F{}, red, 0, EmitOptions{})

	if s.ActiveCount() != 0 || rec.VisibleCount() != 0 {
		t.Errorf("Expected no activity for zero-count emit, got %d active", s.ActiveCount())
	}
}

func TestUpdateExpiresAndRecyclesSlots(t *testing.T) {
	s, rec := newTestSystem(3)
	s.Emit(vmath.Vec3F{}, red, 3, EmitOptions{Lifetime: 1})

	// Life drains at dt*2: 0.3s steps consume 0.6 each, dead after two
	s.Update(0.3)
	if s.ActiveCount() != 3 {
		t.Errorf("Expected 3 alive after first step, got %d", s.ActiveCount())
	}

	s.Update(0.3)
	if s.ActiveCount() != 0 {
		t.Errorf("Expected all expired after 1.2 consumed, got %d", s.ActiveCount())
	}
	if rec.VisibleCount() != 0 {
		t.Errorf("Expected all slots hidden, got %d visible", rec.VisibleCount())
	}

	// Freed slots are reusable by a subsequent emit
	s.Emit(vmath.Vec3F{}, red, 3, EmitOptions{})
	if s.ActiveCount() != 3 {
		t.Errorf("Expected freed slots reusable, got %d active", s.ActiveCount())
	}
}

func TestUpdateAppliesGravityAndShrink(t *testing.T) {
	s, rec := newTestSystem(1)
	s.Emit(vmath.Vec3F{}, red, 1, EmitOptions{Lifetime: 1})

	before := s.active[0].velocity.Y
	s.Update(0.1)

	after := s.active[0].velocity.Y
	if after >= before {
		t.Errorf("Expected gravity to reduce vertical velocity, %v -> %v", before, after)
	}

	// life = 1 - 0.2 = 0.8, scale = life * 0.5
	st := rec.State(0)
	if math.Abs(st.Scale-0.4) > 1e-9 {
		t.Errorf("Expected scale 0.4, got %v", st.Scale)
	}
	if st.Spin == 0 {
		t.Error("Expected cosmetic spin to be applied")
	}
}

func TestUpdateFadesTintWithLife(t *testing.T) {
	s, rec := newTestSystem(2)
	tint := core.RGB{R: 200, G: 100, B: 50}

	// Life above 1 keeps the full tint
	s.Emit(vmath.Vec3F{}, tint, 1, EmitOptions{Lifetime: 2})
	s.Update(0.1)
	if got := rec.State(0).Color; got != tint {
		t.Errorf("Expected full tint while life > 1, got %v", got)
	}

	// life = 1 - 0.2 = 0.8, each channel scales by it
	s.Emit(vmath.Vec3F{}, tint, 1, EmitOptions{Lifetime: 1})
	s.Update(0.1)
	if got := rec.State(1).Color; got != (core.RGB{R: 160, G: 80, B: 40}) {
		t.Errorf("Expected tint scaled to {160 80 40}, got %v", got)
	}
}

func TestUpdateVisitsSurvivorsOnceUnderRemoval(t *testing.T) {
	s, _ := newTestSystem(4)

	// Interleave lifetimes so removal happens mid-iteration
	s.Emit(vmath.Vec3F{}, red, 1, EmitOptions{Lifetime: 0.1})
	s.Emit(vmath.Vec3F{}, red, 1, EmitOptions{Lifetime: 10})
	s.Emit(vmath.Vec3F{}, red, 1, EmitOptions{Lifetime: 0.1})
	s.Emit(vmath.Vec3F{}, red, 1, EmitOptions{Lifetime: 10})

	s.Update(0.5)

	if s.ActiveCount() != 2 {
		t.Fatalf("Expected 2 survivors, got %d", s.ActiveCount())
	}
	for _, r := range s.active {
		// One decay step exactly: 10 - 0.5*2 = 9
		if r.life != 9 {
			t.Errorf("Expected survivor life 9 (single visit), got %v", r.life)
		}
	}
}

func TestClearIsReusable(t *testing.T) {
	s, rec := newTestSystem(5)
	s.Emit(vmath.Vec3F{}, red, 5, EmitOptions{})

	s.Clear()

	if s.ActiveCount() != 0 {
		t.Errorf("Expected ActiveCount 0 after Clear, got %d", s.ActiveCount())
	}
	if rec.VisibleCount() != 0 {
		t.Errorf("Expected all slots hidden after Clear, got %d", rec.VisibleCount())
	}
	if rec.DestroyCalls != 0 {
		t.Errorf("Expected no handles destroyed by Clear, got %d", rec.DestroyCalls)
	}

	s.Emit(vmath.Vec3F{}, red, 5, EmitOptions{})
	if s.ActiveCount() != 5 {
		t.Errorf("Expected full reuse after Clear, got %d", s.ActiveCount())
	}
}

func TestDisposeReleasesHandles(t *testing.T) {
	s, rec := newTestSystem(5)
	s.Emit(vmath.Vec3F{}, red, 2, EmitOptions{})

	s.Dispose()

	if rec.DestroyCalls != 5 {
		t.Errorf("Expected 5 handles destroyed, got %d", rec.DestroyCalls)
	}

	// Idempotent: a second Dispose must not double-destroy
	s.Dispose()
	if rec.DestroyCalls != 5 {
		t.Errorf("Expected destroy count to stay 5, got %d", rec.DestroyCalls)
	}
}

func TestEmitVelocityEnvelope(t *testing.T) {
	s, _ := newTestSystem(50)
	s.Emit(vmath.Vec3F{}, red, 50, EmitOptions{Speed: 6, UpwardBias: 1, Lifetime: 1})

	for i, r := range s.active {
		v := r.velocity
		if v.X < -3 || v.X >= 3 || v.Z < -3 || v.Z >= 3 {
			t.Errorf("Particle %d horizontal velocity out of ±3: %v", i, v)
		}
		if v.Y < 1 || v.Y >= 3 {
			t.Errorf("Particle %d vertical velocity out of [1,3): %v", i, v)
		}
	}
}

func TestEmitDeterministicAcrossSeeds(t *testing.T) {
	s1, _ := newTestSystem(10)
	s2, _ := newTestSystem(10)

	s1.Emit(vmath.Vec3F{}, red, 10, EmitOptions{})
	s2.Emit(vmath.Vec3F{}, red, 10, EmitOptions{})

	for i := range s1.active {
		if s1.active[i].velocity != s2.active[i].velocity {
			t.Errorf("Particle %d velocities diverged with identical seeds", i)
		}
	}
}
