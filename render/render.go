// Package render defines the visual-handle collaborator boundary. The
// simulation core only moves, tints, scales and hides handles; what a handle
// looks like on screen belongs to the backend.
package render

import (
	"github.com/lixenwraith/ember/core"
	"github.com/lixenwraith/ember/vmath"
)

// Handle is an opaque reference to one visual primitive owned by a Renderer
type Handle int

// Axis selects a rotation axis for cosmetic spin
type Axis uint8

const (
	AxisX Axis = iota
	AxisY
	AxisZ
)

// Renderer is the six-operation contract the simulation drives. Backends own
// allocation and teardown of the underlying primitives; the core never
// reaches past this interface.
type Renderer interface {
	CreateHandle() Handle
	SetVisible(h Handle, visible bool)
	SetPosition(h Handle, pos vmath.Vec3F)
	SetColor(h Handle, color core.RGB)
	SetScale(h Handle, scale float64)
	Rotate(h Handle, axis Axis, radians float64)
	DestroyHandle(h Handle)
}
