package interact

import (
	"testing"

	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeObject struct {
	name    string
	pos     rl.Vector3
	hovered bool
	grabbed bool
}

func (o *fakeObject) Position() rl.Vector3     { return o.pos }
func (o *fakeObject) SetPosition(p rl.Vector3) { o.pos = p }
func (o *fakeObject) SetHovered(hovered bool)  { o.hovered = hovered }
func (o *fakeObject) SetGrabbed(grabbed bool)  { o.grabbed = grabbed }

// fakeViewport returns whatever hits and unprojected point the test sets up.
type fakeViewport struct {
	objs      []*fakeObject
	hits      []Hit
	unproject rl.Vector3
	cam       rl.Vector3
	orbit     bool
	cursor    Cursor
}

func newFakeViewport(objs ...*fakeObject) *fakeViewport {
	return &fakeViewport{objs: objs, cam: rl.NewVector3(0, 0, 5), orbit: true}
}

func (v *fakeViewport) Objects() []Object {
	out := make([]Object, len(v.objs))
	for i, o := range v.objs {
		out[i] = o
	}
	return out
}

func (v *fakeViewport) CastRay(rl.Vector2) []Hit                 { return v.hits }
func (v *fakeViewport) Unproject(rl.Vector2, float32) rl.Vector3 { return v.unproject }
func (v *fakeViewport) CameraPosition() rl.Vector3               { return v.cam }
func (v *fakeViewport) SetOrbitEnabled(enabled bool)             { v.orbit = enabled }
func (v *fakeViewport) SetCursor(c Cursor)                       { v.cursor = c }

func (v *fakeViewport) pointAt(objs ...*fakeObject) {
	v.hits = nil
	for _, o := range objs {
		v.hits = append(v.hits, Hit{Object: o, Point: o.pos, Distance: rl.Vector3Distance(o.pos, v.cam)})
	}
}

const (
	width  = 800
	height = 600
)

func assertVec(t *testing.T, want, got rl.Vector3) {
	t.Helper()
	assert.InDelta(t, want.X, got.X, 1e-4, "x")
	assert.InDelta(t, want.Y, got.Y, 1e-4, "y")
	assert.InDelta(t, want.Z, got.Z, 1e-4, "z")
}

func TestNDC(t *testing.T) {
	assert.Equal(t, rl.NewVector2(0, 0), NDC(400, 300, width, height))
	assert.Equal(t, rl.NewVector2(-1, 1), NDC(0, 0, width, height))
	assert.Equal(t, rl.NewVector2(1, -1), NDC(800, 600, width, height))
}

func TestDragSessionFirstMoveIsBaseline(t *testing.T) {
	obj := &fakeObject{}
	d := newDragSession(obj, 5)
	assert.Equal(t, BaselineNotStarted, d.Baseline())

	_, moved := d.Advance(rl.NewVector3(1, 0, 0))
	assert.False(t, moved)
	assert.Equal(t, BaselineActive, d.Baseline())
	assertVec(t, rl.NewVector3(0, 0, 0), obj.pos)

	delta, moved := d.Advance(rl.NewVector3(1.5, 0, 0))
	assert.True(t, moved)
	assertVec(t, rl.NewVector3(0.5, 0, 0), delta)
	assertVec(t, rl.NewVector3(0.5, 0, 0), obj.pos)

	d.Advance(rl.NewVector3(1.5, 0, 0))
	assertVec(t, rl.NewVector3(0.5, 0, 0), obj.pos)
}

func TestGrabAndDrag(t *testing.T) {
	obj := &fakeObject{name: "a"}
	vp := newFakeViewport(obj)
	c := New(vp, nil)

	vp.pointAt(obj)
	require.True(t, c.PointerDown(400, 300, width, height))
	assert.Equal(t, Grabbing, c.State())
	assert.True(t, obj.grabbed)
	assert.False(t, vp.orbit)
	assert.Equal(t, CursorGrab, vp.cursor)
	require.NotNil(t, c.Session())
	assert.InDelta(t, 5, c.Session().Anchor, 1e-6)
	assert.Equal(t, BaselineNotStarted, c.Session().Baseline())

	// First move only records where the pointer is.
	vp.unproject = rl.NewVector3(1, 0, 4)
	c.PointerMove(420, 300, width, height)
	assertVec(t, rl.NewVector3(0, 0, 0), obj.pos)

	// Second move: the object follows the change of the drag point on the anchor sphere.
	first := rl.Vector3Add(vp.cam, rl.Vector3Scale(rl.Vector3Normalize(rl.NewVector3(1, 0, -1)), 5))
	vp.unproject = rl.NewVector3(0, 0, 4)
	c.PointerMove(400, 300, width, height)
	second := rl.NewVector3(0, 0, 0)
	assertVec(t, rl.Vector3Subtract(second, first), obj.pos)

	// No pointer motion, no object motion.
	before := obj.pos
	c.PointerMove(400, 300, width, height)
	assertVec(t, before, obj.pos)

	c.PointerUp()
	assert.False(t, obj.grabbed)
	assert.True(t, vp.orbit)
	assert.Nil(t, c.Grabbed())
	assert.Equal(t, Hovering, c.State())
	assert.Equal(t, CursorPointer, vp.cursor)
}

func TestPointerDownWithoutHit(t *testing.T) {
	obj := &fakeObject{}
	vp := newFakeViewport(obj)
	c := New(vp, nil)

	assert.False(t, c.PointerDown(10, 10, width, height))
	assert.Equal(t, Idle, c.State())
	assert.True(t, vp.orbit)
	assert.Nil(t, c.Session())
}

func TestOnlyOneGrab(t *testing.T) {
	a := &fakeObject{name: "a"}
	b := &fakeObject{name: "b", pos: rl.NewVector3(2, 0, 0)}
	vp := newFakeViewport(a, b)
	c := New(vp, nil)

	vp.pointAt(a)
	require.True(t, c.PointerDown(400, 300, width, height))

	vp.pointAt(b)
	assert.False(t, c.PointerDown(500, 300, width, height))
	assert.Same(t, a, c.Grabbed())
	assert.True(t, a.grabbed)
	assert.False(t, b.grabbed)
}

func TestHoverIsExclusive(t *testing.T) {
	a := &fakeObject{name: "a"}
	b := &fakeObject{name: "b", pos: rl.NewVector3(2, 0, 0)}
	vp := newFakeViewport(a, b)
	c := New(vp, nil)

	vp.pointAt(a)
	c.PointerMove(400, 300, width, height)
	assert.True(t, a.hovered)
	assert.False(t, b.hovered)
	assert.Equal(t, Hovering, c.State())

	vp.pointAt(b)
	c.PointerMove(500, 300, width, height)
	assert.False(t, a.hovered)
	assert.True(t, b.hovered)
	assert.Same(t, b, c.Hovered())

	vp.pointAt()
	c.PointerMove(0, 0, width, height)
	assert.False(t, a.hovered)
	assert.False(t, b.hovered)
	assert.Equal(t, Idle, c.State())
	assert.Equal(t, CursorDefault, vp.cursor)
}

func TestHoverPicksFirstHit(t *testing.T) {
	a := &fakeObject{name: "a"}
	b := &fakeObject{name: "b"}
	vp := newFakeViewport(a, b)
	c := New(vp, nil)

	vp.pointAt(b, a)
	c.PointerMove(400, 300, width, height)
	assert.True(t, b.hovered)
	assert.False(t, a.hovered)
}

func TestHoverDuringDragKeepsGrab(t *testing.T) {
	a := &fakeObject{name: "a"}
	b := &fakeObject{name: "b", pos: rl.NewVector3(2, 0, 0)}
	vp := newFakeViewport(a, b)
	c := New(vp, nil)

	vp.pointAt(a)
	require.True(t, c.PointerDown(400, 300, width, height))

	vp.pointAt(b)
	vp.unproject = rl.NewVector3(0, 0, 4)
	c.PointerMove(500, 300, width, height)
	assert.True(t, b.hovered)
	assert.False(t, a.hovered)
	assert.Equal(t, Grabbing, c.State())
	assert.Same(t, a, c.Grabbed())
	assert.Equal(t, CursorGrab, vp.cursor)

	vp.pointAt()
	c.PointerMove(0, 0, width, height)
	c.PointerUp()
	assert.Equal(t, Idle, c.State())
	assert.Equal(t, CursorDefault, vp.cursor)
}

func TestPointerLeaveClearsHover(t *testing.T) {
	a := &fakeObject{name: "a"}
	vp := newFakeViewport(a)
	c := New(vp, nil)

	vp.pointAt(a)
	c.PointerMove(400, 300, width, height)
	require.Equal(t, Hovering, c.State())

	c.PointerLeave()
	assert.False(t, a.hovered)
	assert.Nil(t, c.Hovered())
	assert.Equal(t, Idle, c.State())
	assert.Equal(t, CursorDefault, vp.cursor)
}

func TestPointerLeaveDuringDragKeepsGrab(t *testing.T) {
	a := &fakeObject{name: "a"}
	vp := newFakeViewport(a)
	c := New(vp, nil)

	vp.pointAt(a)
	c.PointerMove(400, 300, width, height)
	require.True(t, c.PointerDown(400, 300, width, height))

	c.PointerLeave()
	assert.Equal(t, Grabbing, c.State())
	assert.True(t, a.grabbed)
	assert.Equal(t, CursorGrab, vp.cursor)

	c.PointerUp()
	assert.Equal(t, Idle, c.State())
}
