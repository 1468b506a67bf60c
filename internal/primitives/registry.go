package primitives

import (
	rl "github.com/gen2brain/raylib-go/raylib"

	"scene-lab/internal/params"
)

// Uniform targets read from the parameter snapshot each frame.
const (
	UniformLightDir         = "light_dir"
	UniformLightIntensity   = "light_intensity"
	UniformLightColor       = "light_color"
	UniformAmbient          = "ambient"
	UniformSpecularPower    = "specular_power"
	UniformSpecularStrength = "specular_strength"
	UniformTime             = "time"
)

// defaultSphereRings and defaultSphereSlices control sphere mesh resolution.
const (
	defaultSphereRings  = 24
	defaultSphereSlices = 24
)

// Defaults used when a uniform has no bound parameter.
var (
	defaultLightDir         = rl.NewVector3(0.5, 1, 0.5)
	defaultAmbient          = rl.NewColor(51, 56, 66, 255)
	defaultLightColor       = rl.NewColor(255, 250, 242, 255)
	defaultLightIntensity   = float32(0.75)
	defaultSpecularPower    = float32(48)
	defaultSpecularStrength = float32(0.35)
)

// Renderer draws lit spheres. The mesh, material and shader are created on first Draw so
// GPU resources are allocated after the window/OpenGL context exists.
type Renderer struct {
	loaded bool
	mesh   rl.Mesh
	mtl    rl.Material
	locs   map[string]int32
}

// NewRenderer returns a renderer with nothing loaded yet.
func NewRenderer() *Renderer {
	return &Renderer{}
}

func (r *Renderer) ensureLoaded() {
	if r.loaded {
		return
	}
	r.loaded = true
	// Radius 0.5 so the scale passed to DrawSphere is the diameter.
	r.mesh = rl.GenMeshSphere(0.5, defaultSphereRings, defaultSphereSlices)
	r.mtl = rl.LoadMaterialDefault()
	r.locs = make(map[string]int32)
	shader := rl.LoadShaderFromMemory(litVS, litFS)
	if !rl.IsShaderValid(shader) {
		return
	}
	r.mtl.Shader = shader
	for _, name := range []string{"viewPos", "lightDir", "ambient", "lightColor", "lightIntensity", "specularPower", "specularStrength", "time", "highlight"} {
		r.locs[name] = rl.GetShaderLocation(shader, name)
	}
}

// Uniforms is the per-frame uniform block derived from a parameter snapshot.
type Uniforms struct {
	ViewPos          [3]float32
	LightDir         [3]float32
	Ambient          [4]float32
	LightColor       [3]float32
	LightIntensity   float32
	SpecularPower    float32
	SpecularStrength float32
	Time             float32
}

// UniformsFrom resolves the uniform block from values, falling back to defaults for any
// parameter that is not bound.
func UniformsFrom(values params.Values, viewPos rl.Vector3) Uniforms {
	dir := rl.Vector3Normalize(values.Vec3(UniformLightDir, defaultLightDir))
	amb := rl.ColorNormalize(values.Color(UniformAmbient, defaultAmbient))
	lc := rl.ColorNormalize(values.Color(UniformLightColor, defaultLightColor))
	return Uniforms{
		ViewPos:          [3]float32{viewPos.X, viewPos.Y, viewPos.Z},
		LightDir:         [3]float32{dir.X, dir.Y, dir.Z},
		Ambient:          [4]float32{amb.X, amb.Y, amb.Z, 1},
		LightColor:       [3]float32{lc.X, lc.Y, lc.Z},
		LightIntensity:   values.Float(UniformLightIntensity, defaultLightIntensity),
		SpecularPower:    values.Float(UniformSpecularPower, defaultSpecularPower),
		SpecularStrength: values.Float(UniformSpecularStrength, defaultSpecularStrength),
		Time:             values.Float(UniformTime, 0),
	}
}

// SetUniforms uploads u to the lit shader. Call once per frame before drawing.
func (r *Renderer) SetUniforms(u Uniforms) {
	r.ensureLoaded()
	shader := r.mtl.Shader
	if !rl.IsShaderValid(shader) {
		return
	}
	r.setVec(shader, "viewPos", u.ViewPos[:], rl.ShaderUniformVec3)
	r.setVec(shader, "lightDir", u.LightDir[:], rl.ShaderUniformVec3)
	r.setVec(shader, "ambient", u.Ambient[:], rl.ShaderUniformVec4)
	r.setVec(shader, "lightColor", u.LightColor[:], rl.ShaderUniformVec3)
	r.setFloat(shader, "lightIntensity", u.LightIntensity)
	r.setFloat(shader, "specularPower", u.SpecularPower)
	r.setFloat(shader, "specularStrength", u.SpecularStrength)
	r.setFloat(shader, "time", u.Time)
}

// setVec passes a local slice so cgo never sees a pointer into Uniforms.
func (r *Renderer) setVec(shader rl.Shader, name string, v []float32, typ rl.ShaderUniformDataType) {
	if loc, ok := r.locs[name]; ok && loc >= 0 {
		rl.SetShaderValueV(shader, loc, append([]float32(nil), v...), typ, 1)
	}
}

func (r *Renderer) setFloat(shader rl.Shader, name string, v float32) {
	if loc, ok := r.locs[name]; ok && loc >= 0 {
		rl.SetShaderValue(shader, loc, []float32{v}, rl.ShaderUniformFloat)
	}
}

// DrawSphere draws one sphere. highlight in [0,1] adds a pulsing glow (hover and grab feedback).
// Must be called between BeginMode3D and EndMode3D, after SetUniforms.
func (r *Renderer) DrawSphere(center rl.Vector3, radius float32, tint rl.Color, highlight float32) {
	r.ensureLoaded()
	if albedo := r.mtl.GetMap(rl.MapAlbedo); albedo != nil {
		albedo.Color = tint
	}
	r.setFloat(r.mtl.Shader, "highlight", highlight)
	d := radius * 2
	transform := rl.MatrixMultiply(rl.MatrixScale(d, d, d), rl.MatrixTranslate(center.X, center.Y, center.Z))
	rl.DrawMesh(r.mesh, r.mtl, transform)
}

const (
	litVS = `#version 330
in vec3 vertexPosition;
in vec2 vertexTexCoord;
in vec3 vertexNormal;
uniform mat4 matProjection;
uniform mat4 matView;
uniform mat4 matModel;
out vec3 fragPosition;
out vec3 fragNormal;
void main() {
  vec4 worldPos = matModel * vec4(vertexPosition, 1.0);
  fragPosition = worldPos.xyz;
  fragNormal = mat3(matModel) * vertexNormal;
  gl_Position = matProjection * matView * worldPos;
}
`
	litFS = `#version 330
in vec3 fragPosition;
in vec3 fragNormal;
uniform vec4 colDiffuse;
uniform vec3 viewPos;
uniform vec3 lightDir;
uniform vec4 ambient;
uniform vec3 lightColor;
uniform float lightIntensity;
uniform float specularPower;
uniform float specularStrength;
uniform float time;
uniform float highlight;
out vec4 finalColor;
void main() {
  vec4 tint = colDiffuse;
  vec3 N = normalize(fragNormal);
  vec3 L = normalize(lightDir);
  vec3 V = normalize(viewPos - fragPosition);
  float NdotL = max(dot(N, L), 0.0);
  vec3 diffuse = tint.rgb * NdotL * lightColor * lightIntensity;
  vec3 amb = ambient.rgb * tint.rgb;
  vec3 H = normalize(L + V);
  float NdotH = max(dot(N, H), 0.0);
  float spec = pow(NdotH, specularPower) * specularStrength;
  vec3 specular = lightColor * spec * (NdotL > 0.0 ? 1.0 : 0.0);
  float rim = pow(1.0 - max(dot(N, V), 0.0), 2.0);
  vec3 glow = vec3(1.0, 0.85, 0.4) * rim * highlight * (0.6 + 0.4 * sin(time * 4.0));
  finalColor = vec4(amb + diffuse + specular + glow, tint.a);
}
`
)
