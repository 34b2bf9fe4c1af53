// Profiling harness for the simulation core on a headless recorder backend.
//
// go build ./cmd/ember-bench
// go tool pprof -http=":8000" -nodefraction=0.001 ./ember-bench mem.pprof
package main

import (
	"fmt"

	"github.com/pkg/profile"

	"github.com/lixenwraith/ember/core"
	"github.com/lixenwraith/ember/engine"
	"github.com/lixenwraith/ember/event"
	"github.com/lixenwraith/ember/render"
	"github.com/lixenwraith/ember/vmath"
)

func main() {
	const frames = 100_000

	p := profile.Start(profile.MemProfileAllocs, profile.ProfilePath("."), profile.NoShutdownHook)
	collected := run(frames)
	p.Stop()

	fmt.Printf("frames: %d, collected: %d\n", frames, collected)
}

func run(frames int) int {
	requests := event.NewQueue()
	sim := engine.NewSim(engine.Config{
		Renderer:     render.NewRecorder(),
		Seed:         1,
		ParticlePool: 600,
		OrbPool:      64,
		Requests:     requests,
	})
	defer sim.Dispose()

	rng := vmath.NewRand(2)
	target := vmath.Vec3F{}
	const dt = 1.0 / 60

	for i := 0; i < frames; i++ {
		// Steady-state churn: a burst every 10 frames, an orb every 30
		if i%10 == 0 {
			at := vmath.Vec3F{X: rng.Range(-20, 20), Y: rng.Range(-10, 10)}
			event.EmitBurst(requests, at, core.RGB{R: 255, G: 128}, 30, 0)
		}
		// Drops stay close enough to the wandering target that every orb
		// eventually homes and recycles
		if i%30 == 0 {
			at := vmath.Vec3F{X: rng.Range(-2, 2), Y: rng.Range(-2, 2)}
			event.EmitOrbDrop(requests, at, 1, 0)
		}

		target.X = 10 * rng.Next()
		target.Y = 10 * rng.Next()
		sim.Update(dt, target)
	}
	return sim.Collected()
}
