// Package audio renders short procedural cues for gameplay moments. Tones
// are synthesized once at startup and replayed through the speaker; there is
// no sample loading and no allocation per play.
package audio

import (
	"math"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"

	"github.com/lixenwraith/ember/constant"
)

// Waveform types
const (
	waveSine = iota
	waveSquare
)

// Cue identifies a pre-rendered sound
type Cue int

const (
	CueCollect Cue = iota
	CueBurst
	cueCount
)

// Player owns the speaker and the rendered cue buffers. A nil Player is
// safe: every method is a no-op, so hosts without audio pass nil through.
type Player struct {
	cues [cueCount][]float64
}

// NewPlayer initializes the speaker and renders all cues. Failure to open
// the audio device is returned so hosts can continue silently.
func NewPlayer() (*Player, error) {
	sr := beep.SampleRate(constant.AudioSampleRate)
	if err := speaker.Init(sr, sr.N(time.Second/constant.AudioBufferDivisor)); err != nil {
		return nil, err
	}

	p := &Player{}
	p.cues[CueCollect] = renderTone(waveSine, 880, 90*time.Millisecond, 0.4)
	p.cues[CueBurst] = renderTone(waveSquare, 220, 60*time.Millisecond, 0.25)
	return p, nil
}

// Play queues the cue on the speaker mixer; concurrent plays overlap
func (p *Player) Play(c Cue) {
	if p == nil {
		return
	}
	speaker.Play(&cueStreamer{samples: p.cues[c]})
}

// renderTone synthesizes an enveloped mono tone at unity-relative volume
func renderTone(waveType int, freq float64, dur time.Duration, volume float64) []float64 {
	n := int(dur.Seconds() * constant.AudioSampleRate)
	buf := make([]float64, n)

	phase := 0.0
	phaseInc := freq / constant.AudioSampleRate
	for i := range buf {
		switch waveType {
		case waveSine:
			buf[i] = math.Sin(2 * math.Pi * phase)
		case waveSquare:
			if phase < 0.5 {
				buf[i] = 1.0
			} else {
				buf[i] = -1.0
			}
		}
		phase += phaseInc
		if phase >= 1.0 {
			phase -= 1.0
		}
	}

	applyEnvelope(buf, 0.005, 0.03)
	for i := range buf {
		buf[i] *= volume
	}
	return buf
}

// applyEnvelope shapes attack/release in place to avoid clicks
func applyEnvelope(buf []float64, attackSec, releaseSec float64) {
	total := len(buf)
	attackSamples := int(attackSec * constant.AudioSampleRate)
	releaseSamples := int(releaseSec * constant.AudioSampleRate)

	releaseStart := total - releaseSamples
	if releaseStart < attackSamples {
		releaseStart = attackSamples
	}

	for i := 0; i < total; i++ {
		vol := 1.0
		if i < attackSamples && attackSamples > 0 {
			vol = float64(i) / float64(attackSamples)
		} else if i >= releaseStart && releaseSamples > 0 {
			vol = float64(total-i) / float64(releaseSamples)
		}
		buf[i] *= vol
	}
}

// cueStreamer plays one rendered buffer to both channels then ends
type cueStreamer struct {
	samples []float64
	pos     int
}

func (c *cueStreamer) Stream(samples [][2]float64) (int, bool) {
	if c.pos >= len(c.samples) {
		return 0, false
	}
	n := 0
	for i := range samples {
		if c.pos >= len(c.samples) {
			break
		}
		v := c.samples[c.pos]
		samples[i][0] = v
		samples[i][1] = v
		c.pos++
		n++
	}
	return n, true
}

func (c *cueStreamer) Err() error {
	return nil
}
