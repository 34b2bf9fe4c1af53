// Interactive sandbox for the ember simulation core. Move the target with
// hjkl or arrows, space for a particle burst, o to drop an orb, c to clear
// the run, q or Esc to quit. Tuning comes from EMBER_* environment variables.
package main

import (
	"fmt"
	"log"
	"math"
	"os"
	"sync/atomic"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/ember/audio"
	"github.com/lixenwraith/ember/core"
	"github.com/lixenwraith/ember/engine"
	"github.com/lixenwraith/ember/event"
	"github.com/lixenwraith/ember/render"
	"github.com/lixenwraith/ember/store"
	"github.com/lixenwraith/ember/vmath"
)

type config struct {
	Seed         int64  `env:"EMBER_SEED" envDefault:"1"`
	ParticlePool int    `env:"EMBER_PARTICLES" envDefault:"600"`
	OrbPool      int    `env:"EMBER_ORBS" envDefault:"32"`
	SavePath     string `env:"EMBER_SAVE" envDefault:"ember-save.json"`
	Mute         bool   `env:"EMBER_MUTE"`
}

// atomicVec publishes the input-driven target position to the sim goroutine
type atomicVec struct {
	x, y atomic.Uint64
}

func (v *atomicVec) set(p vmath.Vec3F) {
	v.x.Store(math.Float64bits(p.X))
	v.y.Store(math.Float64bits(p.Y))
}

func (v *atomicVec) get() vmath.Vec3F {
	return vmath.Vec3F{
		X: math.Float64frombits(v.x.Load()),
		Y: math.Float64frombits(v.y.Load()),
	}
}

func main() {
	var cfg config
	if err := env.Parse(&cfg); err != nil {
		log.Fatalf("Config parse failed: %v", err)
	}

	save, err := store.OpenFile(cfg.SavePath)
	if err != nil {
		log.Fatalf("Save file unusable: %v", err)
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		log.Fatalf("Screen creation failed: %v", err)
	}
	if err := screen.Init(); err != nil {
		log.Fatalf("Screen init failed: %v", err)
	}

	var player *audio.Player
	if !cfg.Mute {
		if player, err = audio.NewPlayer(); err != nil {
			// Non-fatal, the demo can run without sound
			log.Printf("Audio initialization failed: %v", err)
		}
	}

	term := render.NewTerminal(screen)
	requests := event.NewQueue()
	reports := event.NewQueue()

	sim := engine.NewSim(engine.Config{
		Renderer:     term,
		Seed:         cfg.Seed,
		ParticlePool: cfg.ParticlePool,
		OrbPool:      cfg.OrbPool,
		Requests:     requests,
		Reports:      reports,
		Store:        save,
	})

	// The target is itself a handle so the renderer composes it with the
	// simulation's particles and orbs
	var target atomicVec
	marker := term.CreateHandle()
	term.SetColor(marker, core.RGBWhite)
	term.SetScale(marker, 1)
	term.SetVisible(marker, true)

	// Input arrives on this goroutine while the loop steps the sim on its
	// own; mutations beyond queue pushes are deferred to the frame callback
	var clearRequested atomic.Bool
	done := make(chan struct{})

	loop := engine.NewLoop(sim, time.Second/60)
	go func() {
		defer close(done)
		loop.Run(target.get, func() {
			if clearRequested.Swap(false) {
				sim.Clear()
			}
			for _, ev := range reports.Consume() {
				if ev.Type == event.TypeOrbCollected {
					player.Play(audio.CueCollect)
				}
			}
			term.SetPosition(marker, target.get())
			term.Draw()
		})
	}()

	rng := vmath.NewRand(cfg.Seed + 1)
	pos := vmath.Vec3F{}
	target.set(pos)

	for {
		ev := screen.PollEvent()
		key, ok := ev.(*tcell.EventKey)
		if !ok {
			continue
		}

		var step vmath.Vec3F
		switch {
		case key.Key() == tcell.KeyEscape || key.Rune() == 'q':
			loop.Stop()
			<-done
			sim.SaveProgress()
			total := sim.Collected()
			sim.Dispose()
			screen.Fini()
			fmt.Fprintf(os.Stdout, "collected total: %d\n", total)
			return
		case key.Rune() == ' ':
			at := vmath.Vec3F{X: rng.Range(-15, 15), Y: rng.Range(-5, 8)}
			hue := core.RGBFromHex(uint32(vmath.Pick(rng, burstColors)))
			event.EmitBurst(requests, at, hue, rng.RangeInt(20, 60), 0)
			player.Play(audio.CueBurst)
		case key.Rune() == 'o':
			at := vmath.Vec3F{X: rng.Range(-18, 18), Y: rng.Range(-8, 8)}
			event.EmitOrbDrop(requests, at, rng.RangeInt(1, 5), 0)
		case key.Rune() == 'c':
			clearRequested.Store(true)
		case key.Rune() == 'h' || key.Key() == tcell.KeyLeft:
			step.X = -1
		case key.Rune() == 'l' || key.Key() == tcell.KeyRight:
			step.X = 1
		case key.Rune() == 'k' || key.Key() == tcell.KeyUp:
			step.Y = 1
		case key.Rune() == 'j' || key.Key() == tcell.KeyDown:
			step.Y = -1
		}
		pos = vmath.V3FAdd(pos, step)
		target.set(pos)
	}
}

var burstColors = []int{0xff4040, 0xffb020, 0x40c0ff, 0x80ff80, 0xe060ff}
