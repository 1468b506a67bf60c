// Package interact resolves the pointer against world objects: hover highlighting, grabbing,
// and dragging a grabbed object across a plane at constant distance from the camera.
package interact

import (
	rl "github.com/gen2brain/raylib-go/raylib"
)

// State is the pointer state.
type State int

const (
	Idle State = iota
	Hovering
	Grabbing
)

func (s State) String() string {
	switch s {
	case Hovering:
		return "hovering"
	case Grabbing:
		return "grabbing"
	}
	return "idle"
}

// Cursor is the pointer shape requested from the viewport.
type Cursor int

const (
	CursorDefault Cursor = iota
	CursorPointer
	CursorGrab
)

// Object is a world object the controller can hover, grab and move.
// The controller never creates or destroys objects.
type Object interface {
	Position() rl.Vector3
	SetPosition(p rl.Vector3)
	SetHovered(hovered bool)
	SetGrabbed(grabbed bool)
}

// Hit is one object intersected by a pointer ray.
type Hit struct {
	Object   Object
	Distance float32    // along the ray
	Point    rl.Vector3 // world-space intersection
}

// Viewport is the render side the controller talks to.
type Viewport interface {
	// Objects returns every live object.
	Objects() []Object
	// CastRay returns the objects under ndc, nearest first. Ties keep the viewport's order.
	CastRay(ndc rl.Vector2) []Hit
	// Unproject maps ndc at the given NDC depth to a world point.
	Unproject(ndc rl.Vector2, depth float32) rl.Vector3
	CameraPosition() rl.Vector3
	// SetOrbitEnabled toggles camera orbit input. It is disabled for the whole drag.
	SetOrbitEnabled(enabled bool)
	SetCursor(c Cursor)
}

// NDC converts a pixel position to normalized device coordinates (y up).
func NDC(px, py, width, height float32) rl.Vector2 {
	return rl.NewVector2(px/width*2-1, -(py/height*2 - 1))
}
