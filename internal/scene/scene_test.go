package scene

import (
	"testing"

	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"scene-lab/internal/engineconfig"
	"scene-lab/internal/interact"
)

// alongAxis returns a point t units from the default camera toward the origin.
func alongAxis(t float32) [3]float32 {
	cam := rl.NewVector3(0, 2, 8)
	dir := rl.Vector3Normalize(rl.Vector3Negate(cam))
	p := rl.Vector3Add(cam, rl.Vector3Scale(dir, t))
	return [3]float32{p.X, p.Y, p.Z}
}

func newTestScene() *Scene {
	s := New([]engineconfig.ObjectDef{
		{Name: "far", Position: alongAxis(13), Radius: 1, Color: "#ff0000"},
		{Name: "near", Position: [3]float32{0, 0, 0}, Radius: 1, Color: "#00ff00"},
		{Name: "aside", Position: [3]float32{30, 0, 0}, Radius: 1, Color: "#0000ff"},
	})
	s.SetViewportSize(800, 600)
	return s
}

func TestNewBuildsObjectsFromDefs(t *testing.T) {
	s := newTestScene()

	require.Len(t, s.World(), 3)
	assert.Len(t, s.Objects(), 3)
	assert.Equal(t, "near", s.World()[1].Name)
	assert.Equal(t, rl.NewColor(0, 255, 0, 255), s.World()[1].Color)
	assert.Equal(t, rl.NewVector3(0, 2, 8), s.CameraPosition())
	assert.True(t, s.GridVisible)
	assert.True(t, s.OrbitEnabled())
}

func TestBadColorFallsBack(t *testing.T) {
	s := New([]engineconfig.ObjectDef{{Name: "x", Radius: 1, Color: "teal"}})
	assert.Equal(t, rl.LightGray, s.World()[0].Color)
}

func TestUnprojectNearPlaneOnAxis(t *testing.T) {
	s := newTestScene()
	p := s.Unproject(rl.NewVector2(0, 0), 0)

	assert.InDelta(t, clipNear, rl.Vector3Distance(p, s.CameraPosition()), 1e-3)
	assert.InDelta(t, 0, p.X, 1e-4)
}

func TestCastRayNearestFirst(t *testing.T) {
	s := newTestScene()
	hits := s.CastRay(rl.NewVector2(0, 0))

	require.Len(t, hits, 2)
	assert.Same(t, s.World()[1], hits[0].Object)
	assert.Same(t, s.World()[0], hits[1].Object)
	assert.InDelta(t, rl.Vector3Length(rl.NewVector3(0, 2, 8))-1, hits[0].Distance, 1e-3)
	assert.Less(t, hits[0].Distance, hits[1].Distance)
}

func TestCastRayMiss(t *testing.T) {
	s := newTestScene()
	assert.Empty(t, s.CastRay(rl.NewVector2(-0.9, 0.9)))
}

func TestSinkTargets(t *testing.T) {
	s := newTestScene()

	s.SetFloat(TargetScale, 0.25)
	s.SetFloat("unrelated", 9)
	s.SetFloat(TargetScale, -1)
	s.SetBool(TargetGrid, false)
	s.SetColor(TargetTint, rl.Orange)

	assert.Equal(t, float32(0.25), s.Scale())
	assert.Equal(t, rl.Orange, s.Tint())
	assert.Equal(t, rl.NewColor(0, 255, 0, 255), s.World()[1].Color)
	assert.False(t, s.GridVisible)
}

func TestScaleAffectsPicking(t *testing.T) {
	s := newTestScene()
	ndc := rl.NewVector2(0.33, 0)
	require.Empty(t, s.CastRay(ndc))

	s.SetFloat(TargetScale, 2)
	hits := s.CastRay(ndc)
	require.NotEmpty(t, hits)
	assert.Same(t, s.World()[1], hits[0].Object)
}

func TestResetRestoresLayout(t *testing.T) {
	s := newTestScene()
	o := s.World()[1]
	o.SetPosition(rl.NewVector3(4, 4, 4))
	o.SetGrabbed(true)
	s.SetOrbitEnabled(true)
	s.Orbit(rl.NewVector2(100, 0), 0)

	s.Trigger(TargetReset)

	assert.Equal(t, rl.NewVector3(0, 0, 0), o.Position())
	assert.False(t, o.Grabbed())
	assert.Equal(t, rl.NewVector3(0, 2, 8), s.CameraPosition())
}

func TestOrbitDisabledIgnoresInput(t *testing.T) {
	s := newTestScene()
	s.SetOrbitEnabled(false)
	s.Orbit(rl.NewVector2(50, 20), 2)
	assert.Equal(t, rl.NewVector3(0, 2, 8), s.CameraPosition())

	s.SetOrbitEnabled(true)
	s.Orbit(rl.NewVector2(50, 0), 0)
	assert.NotEqual(t, rl.NewVector3(0, 2, 8), s.CameraPosition())
	assert.InDelta(t, rl.Vector3Length(rl.NewVector3(0, 2, 8)), rl.Vector3Length(s.CameraPosition()), 1e-4)
}

func TestOrbitRoundTrip(t *testing.T) {
	pos := rl.NewVector3(3, 4, -5)
	o := orbitFrom(pos, rl.Vector3{})
	got := o.position(rl.Vector3{})

	assert.InDelta(t, pos.X, got.X, 1e-4)
	assert.InDelta(t, pos.Y, got.Y, 1e-4)
	assert.InDelta(t, pos.Z, got.Z, 1e-4)
}

func TestZoomClamped(t *testing.T) {
	o := orbit{distance: 10}
	o.zoom(100)
	assert.Equal(t, float32(minDistance), o.distance)
	o.zoom(-1000)
	assert.Equal(t, float32(maxDistance), o.distance)
}

func TestFocusPrefersGrabbed(t *testing.T) {
	s := newTestScene()
	assert.Nil(t, s.Focus())

	s.World()[0].SetHovered(true)
	assert.Same(t, s.World()[0], s.Focus())

	s.World()[2].SetGrabbed(true)
	assert.Same(t, s.World()[2], s.Focus())
	assert.True(t, s.World()[2].Selection().Grabbed)
}

func TestControllerDragsSphere(t *testing.T) {
	s := newTestScene()
	c := interact.New(s, nil)
	near := s.World()[1]

	require.True(t, c.PointerDown(400, 300, 800, 600))
	assert.Same(t, near, c.Grabbed())
	assert.False(t, s.OrbitEnabled())
	assert.Equal(t, interact.CursorGrab, s.Cursor())

	c.PointerMove(400, 300, 800, 600)
	assert.Equal(t, rl.NewVector3(0, 0, 0), near.Position())

	c.PointerMove(500, 300, 800, 600)
	assert.Greater(t, near.Position().X, float32(0))
	assert.InDelta(t, 0, near.Position().Y, 0.05)

	c.PointerUp()
	assert.Nil(t, c.Grabbed())
	assert.False(t, near.Grabbed())
	assert.True(t, s.OrbitEnabled())
}

// offRay is the distance from p to the pick ray through the pixel (px, py).
func offRay(s *Scene, p rl.Vector3, px, py float32) float32 {
	ray := s.Ray(interact.NDC(px, py, 800, 600))
	return rl.Vector3Length(rl.Vector3CrossProduct(rl.Vector3Subtract(p, ray.Position), ray.Direction))
}

func TestDragKeepsSphereUnderCursor(t *testing.T) {
	s := New([]engineconfig.ObjectDef{{Name: "ball", Radius: 0.75, Color: "#ffffff"}})
	s.SetViewportSize(800, 600)
	s.Camera.Position = rl.NewVector3(0, 0, 5)
	ball := s.World()[0]
	c := interact.New(s, nil)

	require.True(t, c.PointerDown(400, 300, 800, 600))
	assert.InDelta(t, 5, c.Session().Anchor, 1e-4)

	c.PointerMove(400, 300, 800, 600)
	c.PointerMove(520, 300, 800, 600)
	assert.InDelta(t, 0, offRay(s, ball.Position(), 520, 300), 1e-3)
	assert.InDelta(t, 5, rl.Vector3Distance(ball.Position(), s.CameraPosition()), 1e-3)

	c.PointerMove(470, 380, 800, 600)
	assert.InDelta(t, 0, offRay(s, ball.Position(), 470, 380), 1e-3)
	assert.InDelta(t, 5, rl.Vector3Distance(ball.Position(), s.CameraPosition()), 1e-3)
}

func TestRadiusTargetPerSphere(t *testing.T) {
	s := newTestScene()
	near := s.World()[1]

	s.SetFloat(near.RadiusTarget(), 3)
	s.SetFloat(near.RadiusTarget(), -1)
	assert.Equal(t, float32(3), near.Radius)
	assert.Equal(t, float32(1), s.World()[0].Radius)
	assert.NotEqual(t, near.RadiusTarget(), s.World()[0].RadiusTarget())
}

func TestAddAndRemoveSpheres(t *testing.T) {
	s := newTestScene()
	changes := 0
	s.OnChange(func() { changes++ })

	s.Trigger(TargetAdd)
	require.Len(t, s.World(), 4)
	added := s.World()[3]
	assert.Equal(t, rl.NewVector3(32, 0, 0), added.Position())
	assert.Equal(t, float32(spawnRadius), added.Radius)
	assert.Equal(t, uint8(255), added.Color.A)
	assert.Equal(t, 1, changes)

	near := s.World()[1]
	s.Trigger(near.RemoveTarget())
	require.Len(t, s.World(), 3)
	assert.NotContains(t, s.World(), near)
	assert.Equal(t, 2, changes)

	// Targets of the survivors still reach them after the removal.
	s.SetFloat(added.RadiusTarget(), 2)
	assert.Equal(t, float32(2), added.Radius)
	s.Trigger(near.RemoveTarget())
	assert.Len(t, s.World(), 3)
	assert.False(t, s.Remove(near))
	assert.Equal(t, 2, changes)
}

func TestAddStopsAtMaxObjects(t *testing.T) {
	s := New(nil)
	for range MaxObjects {
		require.NotNil(t, s.Add())
	}
	assert.Nil(t, s.Add())
	assert.Len(t, s.World(), MaxObjects)
	assert.Equal(t, rl.Vector3{}, s.World()[0].Position())
}

func TestDescriptorsPerSphere(t *testing.T) {
	s := newTestScene()
	descs := s.Descriptors()
	require.Len(t, descs, 6)

	assert.Equal(t, s.World()[0].RadiusTarget(), descs[0].Target)
	assert.Equal(t, "Sphere 1 Radius", descs[0].Label)
	assert.Equal(t, "2#Sphere 1", descs[0].Category)
	assert.Equal(t, float32(1), descs[0].Default)
	assert.Equal(t, float32(5), descs[0].Range.Max)
	assert.Equal(t, "Remove sphere 3", descs[5].Label)
	assert.Equal(t, "4#Sphere 3", descs[5].Category)
	assert.Equal(t, s.World()[2].RemoveTarget(), descs[5].Target)

	s.Remove(s.World()[0])
	descs = s.Descriptors()
	require.Len(t, descs, 4)
	assert.Equal(t, "2#Sphere 1", descs[0].Category)
	assert.Equal(t, s.World()[0].RadiusTarget(), descs[0].Target)
}
