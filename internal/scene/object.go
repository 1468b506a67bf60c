package scene

import (
	"fmt"

	rl "github.com/gen2brain/raylib-go/raylib"

	"scene-lab/internal/engineconfig"
	"scene-lab/internal/ui"
)

// Object is a sphere in the world. It satisfies interact.Object.
type Object struct {
	Name   string
	Radius float32
	Color  rl.Color

	id      int
	pos     rl.Vector3
	home    rl.Vector3
	hovered bool
	grabbed bool
}

// NewObject returns a sphere at pos. Reset moves it back to pos.
func NewObject(name string, pos rl.Vector3, radius float32, color rl.Color) *Object {
	return &Object{Name: name, Radius: radius, Color: color, pos: pos, home: pos}
}

// objectFromDef builds an Object from config; an unparsable color falls back to light gray.
func objectFromDef(d engineconfig.ObjectDef) *Object {
	c, ok := ui.ParseHexColor(d.Color)
	if !ok {
		c = rl.LightGray
	}
	return NewObject(d.Name, rl.NewVector3(d.Position[0], d.Position[1], d.Position[2]), d.Radius, c)
}

func (o *Object) Position() rl.Vector3     { return o.pos }
func (o *Object) SetPosition(p rl.Vector3) { o.pos = p }
func (o *Object) SetHovered(hovered bool)  { o.hovered = hovered }
func (o *Object) SetGrabbed(grabbed bool)  { o.grabbed = grabbed }
func (o *Object) Hovered() bool            { return o.hovered }
func (o *Object) Grabbed() bool            { return o.grabbed }

// RadiusTarget is the parameter target that sets this sphere's radius. Targets stay stable
// while other spheres are added or removed.
func (o *Object) RadiusTarget() string { return fmt.Sprintf("sphere%d.radius", o.id) }

// RemoveTarget is the button target that removes this sphere.
func (o *Object) RemoveTarget() string { return fmt.Sprintf("sphere%d.remove", o.id) }

// Reset restores the starting position and clears the interaction flags.
func (o *Object) Reset() {
	o.pos = o.home
	o.hovered = false
	o.grabbed = false
}

// highlight is the glow strength passed to the sphere shader.
func (o *Object) highlight() float32 {
	switch {
	case o.grabbed:
		return 1
	case o.hovered:
		return 0.5
	}
	return 0
}

// Selection returns the inspector view of the object.
func (o *Object) Selection() ui.Selection {
	return ui.Selection{
		Name:     o.Name,
		Position: [3]float32{o.pos.X, o.pos.Y, o.pos.Z},
		Radius:   o.Radius,
		Grabbed:  o.grabbed,
	}
}
