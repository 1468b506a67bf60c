package scene

import (
	"fmt"
	"math/rand/v2"
	"slices"
	"sort"

	rl "github.com/gen2brain/raylib-go/raylib"

	"scene-lab/internal/engineconfig"
	"scene-lab/internal/interact"
	"scene-lab/internal/params"
	"scene-lab/internal/primitives"
)

// Parameter targets the scene consumes. Each sphere also has its own radius and remove
// targets (see Object.RadiusTarget and Object.RemoveTarget).
const (
	TargetScale = "scale"
	TargetGrid  = "grid"
	TargetTint  = "tint"
	TargetReset = "reset"
	TargetAdd   = "add_sphere"
)

// MaxObjects caps the number of spheres. Per-sphere panel categories use the keys 2..9, below
// the "10#Spheres" group.
const MaxObjects = 8

const (
	spawnRadius  = 0.75
	spawnSpacing = 2
)

// Clip planes match raylib's RL_CULL_DISTANCE_NEAR/FAR so picking agrees with rendering.
const (
	clipNear = 0.01
	clipFar  = 1000
)

// Scene holds the 3D camera and the world spheres. It implements interact.Viewport for picking
// and the params sink methods for the targets above.
type Scene struct {
	Camera      rl.Camera3D
	GridVisible bool

	objects  []*Object
	nextID   int
	onChange []func()
	scale    float32
	tint     rl.Color
	orbit    orbit
	orbitOn  bool
	width    float32
	height   float32
	cursor   interact.Cursor
}

// New returns a scene with a perspective camera at (0,2,8) looking at the origin and one sphere
// per def, up to MaxObjects. Grid is visible by default.
func New(defs []engineconfig.ObjectDef) *Scene {
	s := &Scene{GridVisible: true, orbitOn: true, width: 16, height: 9, scale: 1, tint: rl.White}
	s.Camera.Position = rl.NewVector3(0, 2, 8)
	s.Camera.Target = rl.NewVector3(0, 0, 0)
	s.Camera.Up = rl.NewVector3(0, 1, 0)
	s.Camera.Fovy = 45
	s.Camera.Projection = rl.CameraPerspective
	s.orbit = orbitFrom(s.Camera.Position, s.Camera.Target)
	for _, d := range defs {
		if len(s.objects) == MaxObjects {
			break
		}
		s.adopt(objectFromDef(d))
	}
	return s
}

func (s *Scene) adopt(o *Object) {
	s.nextID++
	o.id = s.nextID
	s.objects = append(s.objects, o)
}

// OnChange registers fn to run after a sphere is added or removed.
func (s *Scene) OnChange(fn func()) {
	s.onChange = append(s.onChange, fn)
}

func (s *Scene) changed() {
	for _, fn := range s.onChange {
		fn()
	}
}

// Add places a new sphere with a random color one spacing step along x from the last sphere's
// home. It returns nil once MaxObjects spheres exist.
func (s *Scene) Add() *Object {
	if len(s.objects) >= MaxObjects {
		return nil
	}
	var pos rl.Vector3
	if n := len(s.objects); n > 0 {
		pos = rl.Vector3Add(s.objects[n-1].home, rl.NewVector3(spawnSpacing, 0, 0))
	}
	o := NewObject(fmt.Sprintf("sphere-%d", s.nextID+1), pos, spawnRadius, randomColor())
	s.adopt(o)
	s.changed()
	return o
}

// Remove takes o out of the world. It reports false when o is not in the scene.
func (s *Scene) Remove(o *Object) bool {
	i := slices.Index(s.objects, o)
	if i < 0 {
		return false
	}
	s.objects = slices.Delete(s.objects, i, i+1)
	s.changed()
	return true
}

func randomColor() rl.Color {
	return rl.NewColor(uint8(rand.IntN(256)), uint8(rand.IntN(256)), uint8(rand.IntN(256)), 255)
}

// Descriptors returns the per-sphere panel parameters: a radius slider and a remove button
// for sphere i under the category "<i+2>#Sphere <i+1>".
func (s *Scene) Descriptors() []params.Descriptor {
	out := make([]params.Descriptor, 0, 2*len(s.objects))
	for i, o := range s.objects {
		cat := fmt.Sprintf("%d#Sphere %d", i+2, i+1)
		out = append(out,
			params.Descriptor{
				Target:   o.RadiusTarget(),
				Label:    fmt.Sprintf("Sphere %d Radius", i+1),
				Type:     "slider",
				Default:  o.Radius,
				Category: cat,
				Range:    &params.Bounds{Min: 0, Max: 5},
			},
			params.Descriptor{
				Target:   o.RemoveTarget(),
				Label:    fmt.Sprintf("Remove sphere %d", i+1),
				Type:     "button",
				Category: cat,
			},
		)
	}
	return out
}

// World returns the spheres in creation order.
func (s *Scene) World() []*Object {
	return s.objects
}

// Objects returns every sphere as an interact.Object.
func (s *Scene) Objects() []interact.Object {
	out := make([]interact.Object, len(s.objects))
	for i, o := range s.objects {
		out[i] = o
	}
	return out
}

// SetViewportSize sets the pixel size used for the projection aspect ratio.
func (s *Scene) SetViewportSize(width, height float32) {
	if width > 0 && height > 0 {
		s.width, s.height = width, height
	}
}

func (s *Scene) matrices() (proj, view rl.Matrix) {
	aspect := s.width / s.height
	proj = rl.MatrixPerspective(s.Camera.Fovy*rl.Deg2rad, aspect, clipNear, clipFar)
	view = rl.MatrixLookAt(s.Camera.Position, s.Camera.Target, s.Camera.Up)
	return proj, view
}

// Unproject maps ndc at NDC depth (0 near plane, 1 far plane) to a world point.
func (s *Scene) Unproject(ndc rl.Vector2, depth float32) rl.Vector3 {
	proj, view := s.matrices()
	return rl.Vector3Unproject(rl.NewVector3(ndc.X, ndc.Y, depth), proj, view)
}

// Ray returns the pick ray through ndc, starting at the camera.
func (s *Scene) Ray(ndc rl.Vector2) rl.Ray {
	near := s.Unproject(ndc, 0)
	far := s.Unproject(ndc, 1)
	return rl.NewRay(s.Camera.Position, rl.Vector3Normalize(rl.Vector3Subtract(far, near)))
}

// CastRay returns every sphere the pick ray through ndc intersects, nearest first.
// Equal distances keep creation order.
func (s *Scene) CastRay(ndc rl.Vector2) []interact.Hit {
	ray := s.Ray(ndc)
	var hits []interact.Hit
	for _, o := range s.objects {
		c := rl.GetRayCollisionSphere(ray, o.pos, s.radius(o))
		if !c.Hit {
			continue
		}
		hits = append(hits, interact.Hit{Object: o, Distance: c.Distance, Point: c.Point})
	}
	sort.SliceStable(hits, func(i, j int) bool { return hits[i].Distance < hits[j].Distance })
	return hits
}

func (s *Scene) CameraPosition() rl.Vector3 { return s.Camera.Position }

// SetOrbitEnabled toggles mouse orbit and wheel zoom.
func (s *Scene) SetOrbitEnabled(enabled bool) { s.orbitOn = enabled }

// OrbitEnabled reports whether camera input is applied.
func (s *Scene) OrbitEnabled() bool { return s.orbitOn }

// SetCursor records the requested cursor; ApplyCursor applies it to the window.
func (s *Scene) SetCursor(c interact.Cursor) { s.cursor = c }

// Cursor returns the last requested cursor.
func (s *Scene) Cursor() interact.Cursor { return s.cursor }

// Orbit rotates the camera by a mouse delta in pixels and zooms by wheel steps.
// It does nothing while orbit is disabled.
func (s *Scene) Orbit(delta rl.Vector2, wheel float32) {
	if !s.orbitOn {
		return
	}
	s.orbit.rotate(delta)
	s.orbit.zoom(wheel)
	s.Camera.Position = s.orbit.position(s.Camera.Target)
}

// ApplyCursor sets the window's mouse cursor to the last requested one.
func (s *Scene) ApplyCursor() {
	rl.SetMouseCursor(mouseCursor(s.cursor))
}

func mouseCursor(c interact.Cursor) int32 {
	switch c {
	case interact.CursorPointer:
		return rl.MouseCursorPointingHand
	case interact.CursorGrab:
		return rl.MouseCursorResizeAll
	}
	return rl.MouseCursorDefault
}

// radius is o's base radius times the global scale.
func (s *Scene) radius(o *Object) float32 {
	return o.Radius * s.scale
}

// Scale returns the global size multiplier.
func (s *Scene) Scale() float32 { return s.scale }

// Tint returns the color multiplied into every sphere.
func (s *Scene) Tint() rl.Color { return s.tint }

// SetFloat applies the scale target and the per-sphere radius targets.
func (s *Scene) SetFloat(target string, v float32) {
	if target == TargetScale {
		if v > 0 {
			s.scale = v
		}
		return
	}
	for _, o := range s.objects {
		if target == o.RadiusTarget() && v >= 0 {
			o.Radius = v
			return
		}
	}
}

// SetBool applies the grid target.
func (s *Scene) SetBool(target string, v bool) {
	if target == TargetGrid {
		s.GridVisible = v
	}
}

// SetColor applies the tint target.
func (s *Scene) SetColor(target string, c rl.Color) {
	if target == TargetTint {
		s.tint = c
	}
}

func (s *Scene) SetVec3(string, rl.Vector3) {}

// Trigger handles the button targets. Reset returns every sphere home and the camera to its
// start pose; add and the per-sphere remove targets change the sphere set.
func (s *Scene) Trigger(target string) {
	switch target {
	case TargetReset:
		s.reset()
		return
	case TargetAdd:
		s.Add()
		return
	}
	for _, o := range s.objects {
		if target == o.RemoveTarget() {
			s.Remove(o)
			return
		}
	}
}

func (s *Scene) reset() {
	for _, o := range s.objects {
		o.Reset()
	}
	s.Camera.Position = rl.NewVector3(0, 2, 8)
	s.orbit = orbitFrom(s.Camera.Position, s.Camera.Target)
}

// Focus returns the grabbed sphere, else the hovered one, else nil.
func (s *Scene) Focus() *Object {
	var hovered *Object
	for _, o := range s.objects {
		if o.grabbed {
			return o
		}
		if o.hovered && hovered == nil {
			hovered = o
		}
	}
	return hovered
}

// Draw renders the grid (when visible) and the spheres. Call after ClearBackground and before the
// 2D panel. u is this frame's uniform block.
func (s *Scene) Draw(r *primitives.Renderer, u primitives.Uniforms) {
	rl.BeginMode3D(s.Camera)
	if s.GridVisible {
		drawEditorGrid()
	}
	r.SetUniforms(u)
	for _, o := range s.objects {
		r.DrawSphere(o.pos, s.radius(o), rl.ColorTint(o.Color, s.tint), o.highlight())
	}
	rl.EndMode3D()
}
