package params

import (
	"testing"

	"github.com/chewxy/math32"
	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"scene-lab/internal/controls"
	"scene-lab/internal/ui"
)

func TestDefaultDescriptorsBind(t *testing.T) {
	descs, err := DefaultDescriptors()
	require.NoError(t, err)
	require.NotEmpty(t, descs)

	reg := controls.NewRegistry(controls.OrderNumeric)
	u := NewUniforms()
	bound, err := Bind(descs, reg, u, nil)
	require.NoError(t, err)
	assert.Equal(t, len(descs), reg.Len())
	assert.Len(t, bound, len(descs))

	snap := u.Snapshot()
	assert.InDelta(t, 1, snap.Float("scale", 0), 1e-5)
	assert.True(t, snap.Bool("grid", false))
	assert.Equal(t, rl.White, snap.Color("tint", rl.Black))

	el, ok := bound.Slider("light_elevation")
	require.True(t, ok)
	assert.Greater(t, el.Range().Min, el.Range().Max)
}

func TestDescriptorKindInference(t *testing.T) {
	tests := []struct {
		name string
		desc Descriptor
		want controls.Kind
	}{
		{"float default", Descriptor{Target: "a", Default: 0.5}, controls.KindSlider},
		{"int default", Descriptor{Target: "a", Default: 3}, controls.KindSlider},
		{"bool default", Descriptor{Target: "a", Default: true}, controls.KindCheckbox},
		{"hex default", Descriptor{Target: "a", Default: "#ff0000"}, controls.KindColorPicker},
		{"no default", Descriptor{Target: "a"}, controls.KindButton},
		{"explicit tag wins", Descriptor{Target: "a", Type: "Slider", Default: true}, controls.KindSlider},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := tt.desc.Kind()
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}

	_, err := Descriptor{Target: "a", Type: "knob"}.Kind()
	assert.ErrorIs(t, err, ErrUnknownType)
	_, err = Descriptor{Target: "a", Default: "plain"}.Kind()
	assert.ErrorIs(t, err, ErrUnknownType)
}

func TestParseDescriptors(t *testing.T) {
	descs, err := ParseDescriptors([]byte(`
- target: speed
  default: 2
  range: {min: 0, max: 10}
- target: on
  label: Enabled
  default: false
`))
	require.NoError(t, err)
	require.Len(t, descs, 2)
	assert.Equal(t, "speed", descs[0].Label)
	require.NotNil(t, descs[0].Range)
	assert.Equal(t, float32(10), descs[0].Range.Max)
	v, ok := descs[0].Float()
	assert.True(t, ok)
	assert.Equal(t, float32(2), v)

	_, err = ParseDescriptors([]byte(`- label: missing target`))
	assert.Error(t, err)
}

func TestBindRoutesCallbacksToSink(t *testing.T) {
	reg := controls.NewRegistry(controls.OrderNumeric)
	host := ui.NewPanel()
	u := NewUniforms()
	pressed := 0
	u.OnTrigger("reset", func() { pressed++ })

	bound, err := Bind([]Descriptor{
		{Target: "speed", Default: 2.0, Range: &Bounds{Min: 0, Max: 10}},
		{Target: "grid", Default: false},
		{Target: "tint", Default: "#000000"},
		{Target: "reset", Type: "button"},
	}, reg, u, nil)
	require.NoError(t, err)
	reg.Build(host)

	speed, _ := bound.Slider("speed")
	speed.Node().Emit(ui.Input{Value: 70})
	assert.InDelta(t, 7, u.Snapshot().Float("speed", 0), 1e-5)

	bound["grid"].(*controls.Checkbox).Node().Emit(ui.Input{Checked: true})
	assert.True(t, u.Snapshot().Bool("grid", false))

	bound["tint"].(*controls.ColorPicker).Node().Emit(ui.Input{Color: rl.NewColor(10, 20, 30, 255)})
	assert.Equal(t, rl.NewColor(10, 20, 30, 255), u.Snapshot().Color("tint", rl.Black))

	bound["reset"].(*controls.Button).Node().Emit(ui.Input{})
	assert.Equal(t, 1, pressed)
}

func TestBindRejectsDegenerateRange(t *testing.T) {
	reg := controls.NewRegistry(controls.OrderNumeric)
	_, err := Bind([]Descriptor{{Target: "x", Default: 1.0, Range: &Bounds{Min: 1, Max: 1}}}, reg, NewUniforms(), nil)
	assert.Error(t, err)
}

func TestBindRejectsMismatchedDefault(t *testing.T) {
	tests := []struct {
		name string
		desc Descriptor
	}{
		{"slider with text", Descriptor{Target: "x", Type: "slider", Default: "x"}},
		{"slider with bool", Descriptor{Target: "x", Type: "slider", Default: true}},
		{"checkbox with number", Descriptor{Target: "x", Type: "checkbox", Default: 1.0}},
		{"color with number", Descriptor{Target: "x", Type: "color", Default: 255}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			reg := controls.NewRegistry(controls.OrderNumeric)
			u := NewUniforms()
			_, err := Bind([]Descriptor{tt.desc}, reg, u, nil)
			assert.ErrorIs(t, err, ErrUnknownType)
			assert.Zero(t, reg.Len())
			assert.Empty(t, u.Snapshot().Floats)
		})
	}
}

func TestBindTaggedWithoutDefault(t *testing.T) {
	reg := controls.NewRegistry(controls.OrderNumeric)
	u := NewUniforms()
	_, err := Bind([]Descriptor{
		{Target: "level", Type: "slider"},
		{Target: "on", Type: "checkbox"},
		{Target: "paint", Type: "color"},
	}, reg, u, nil)
	require.NoError(t, err)

	snap := u.Snapshot()
	assert.Equal(t, float32(0), snap.Float("level", -1))
	assert.False(t, snap.Bool("on", true))
	assert.Equal(t, rl.White, snap.Color("paint", rl.Black))
}

func TestSnapshotIsIndependent(t *testing.T) {
	u := NewUniforms()
	u.SetLogger(nil)
	u.SetFloat("a", 1)
	u.SetVec3("dir", rl.NewVector3(1, 0, 0))
	snap := u.Snapshot()

	u.SetFloat("a", 2)
	u.SetVec3("dir", rl.NewVector3(0, 1, 0))
	assert.Equal(t, float32(1), snap.Float("a", 0))
	assert.Equal(t, rl.NewVector3(1, 0, 0), snap.Vec3("dir", rl.Vector3{}))
	assert.Equal(t, float32(9), snap.Float("missing", 9))
}

func TestRouter(t *testing.T) {
	u := NewUniforms()
	var routed []string
	r := NewRouter(u)
	r.Route(Funcs{
		Float: func(target string, v float32) { routed = append(routed, target) },
		Press: func(target string) { routed = append(routed, "press:"+target) },
	}.Sink(), "radius", "reset")

	r.SetFloat("radius", 1)
	r.SetFloat("speed", 3)
	r.Trigger("reset")
	r.SetBool("radius", true)

	assert.Equal(t, []string{"radius", "press:reset"}, routed)
	snap := u.Snapshot()
	assert.Equal(t, float32(3), snap.Float("speed", 0))
	_, ok := snap.Floats["radius"]
	assert.False(t, ok)
}

func TestLightRigRecomputesFromBothSliders(t *testing.T) {
	host := ui.NewPanel()
	u := NewUniforms()
	az, err := controls.NewSlider("Azimuth", controls.Uncategorized, 0, controls.WithRange(-math32.Pi, math32.Pi))
	require.NoError(t, err)
	el, err := controls.NewSlider("Elevation", controls.Uncategorized, 0, controls.WithRange(math32.Pi/2, -math32.Pi/2))
	require.NoError(t, err)
	az.Render(host)
	el.Render(host)

	rig := NewLightRig(u, "light_dir")
	rig.Attach(az, el)
	dir := u.Snapshot().Vec3("light_dir", rl.Vector3{})
	assert.InDelta(t, 1, dir.X, 1e-5)
	assert.InDelta(t, 0, dir.Y, 1e-5)

	// Elevation slider fully left is straight up because its range is inverted.
	el.Node().Emit(ui.Input{Value: 0})
	dir = u.Snapshot().Vec3("light_dir", rl.Vector3{})
	assert.InDelta(t, 1, dir.Y, 1e-5)

	el.Node().Emit(ui.Input{Value: 50})
	az.Node().Emit(ui.Input{Value: 75})
	dir = u.Snapshot().Vec3("light_dir", rl.Vector3{})
	assert.InDelta(t, 0, dir.X, 1e-5)
	assert.InDelta(t, 0, dir.Y, 1e-5)
	assert.InDelta(t, 1, dir.Z, 1e-5)
}
