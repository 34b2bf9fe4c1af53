package render

import (
	"math"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/ember/core"
	"github.com/lixenwraith/ember/vmath"
)

// Glyph ramp from large to vanishing, indexed by on-screen scale
var scaleGlyphs = []rune{'·', '•', 'o', 'O', '@'}

type terminalHandle struct {
	visible   bool
	destroyed bool
	pos       vmath.Vec3F
	color     core.RGB
	scale     float64
	spin      float64
}

// Terminal renders handles onto a tcell screen. World X maps to columns,
// world Y to rows (inverted, Y-up world), world Z is flattened. One world
// unit spans CellsPerUnit columns; terminal cells are roughly twice as tall
// as wide, so rows advance at half that rate.
type Terminal struct {
	screen tcell.Screen

	// CellsPerUnit controls zoom; OriginX/OriginY place world origin in cells
	CellsPerUnit     float64
	OriginX, OriginY int

	handles []terminalHandle
	free    []int
}

// NewTerminal wraps an initialized screen with world origin at screen center
func NewTerminal(screen tcell.Screen) *Terminal {
	w, h := screen.Size()
	return &Terminal{
		screen:       screen,
		CellsPerUnit: 2,
		OriginX:      w / 2,
		OriginY:      h / 2,
	}
}

func (t *Terminal) CreateHandle() Handle {
	if n := len(t.free); n > 0 {
		idx := t.free[n-1]
		t.free = t.free[:n-1]
		t.handles[idx] = terminalHandle{scale: 1}
		return Handle(idx)
	}
	t.handles = append(t.handles, terminalHandle{scale: 1})
	return Handle(len(t.handles) - 1)
}

func (t *Terminal) SetVisible(h Handle, visible bool) {
	t.handles[h].visible = visible
}

func (t *Terminal) SetPosition(h Handle, pos vmath.Vec3F) {
	t.handles[h].pos = pos
}

func (t *Terminal) SetColor(h Handle, color core.RGB) {
	t.handles[h].color = color
}

func (t *Terminal) SetScale(h Handle, scale float64) {
	t.handles[h].scale = scale
}

func (t *Terminal) Rotate(h Handle, _ Axis, radians float64) {
	t.handles[h].spin += radians
}

func (t *Terminal) DestroyHandle(h Handle) {
	t.handles[h].destroyed = true
	t.handles[h].visible = false
	t.free = append(t.free, int(h))
}

// Draw composes every visible handle onto the screen buffer and shows it
func (t *Terminal) Draw() {
	t.screen.Clear()
	w, h := t.screen.Size()

	for i := range t.handles {
		hs := &t.handles[i]
		if !hs.visible || hs.destroyed {
			continue
		}

		col := t.OriginX + int(math.Round(hs.pos.X*t.CellsPerUnit))
		row := t.OriginY - int(math.Round(hs.pos.Y*t.CellsPerUnit/2))
		if col < 0 || col >= w || row < 0 || row >= h {
			continue
		}

		style := tcell.StyleDefault.Foreground(tcell.NewRGBColor(
			int32(hs.color.R), int32(hs.color.G), int32(hs.color.B)))
		t.screen.SetContent(col, row, glyphFor(hs.scale), nil, style)
	}

	t.screen.Show()
}

func glyphFor(scale float64) rune {
	idx := int(scale * float64(len(scaleGlyphs)))
	if idx >= len(scaleGlyphs) {
		idx = len(scaleGlyphs) - 1
	}
	if idx < 0 {
		idx = 0
	}
	return scaleGlyphs[idx]
}
