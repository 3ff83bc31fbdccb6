package render

import (
	rl "github.com/gen2brain/raylib-go/raylib"

	"pool-scene/internal/scene"
)

// Diagnostics receives non-fatal GPU upload failures.
type Diagnostics interface {
	Errorf(format string, args ...any)
}

// Overlay is 2D content drawn after the 3D pass (loading screen, debug text).
type Overlay interface {
	Draw()
}

const (
	defaultSpecularPower    = 32
	defaultSpecularStrength = 0.04
)

type litLocations struct {
	viewPos, useMap, mapSRGB                        int32
	dirDir, dirColor, ambient                       int32
	pointPos, pointColor, pointDistance, pointDecay int32
	specPower, specStrength                         int32
}

type modelEntry struct {
	model rl.Model
	ok    bool
}

// Renderer draws a scene graph with raylib. All GPU resources are created lazily on
// the first Render, after the window and GL context exist.
type Renderer struct {
	log      Diagnostics
	overlays []Overlay

	ready    bool
	lit      rl.Shader
	mtl      rl.Material
	locs     litLocations
	meshes   *meshCache
	textures *textureCache
	models   map[*scene.Model]modelEntry
	sky      skybox
}

// New returns a renderer that reports upload failures to log and draws overlays in
// order after the scene.
func New(log Diagnostics, overlays ...Overlay) *Renderer {
	return &Renderer{
		log:      log,
		overlays: overlays,
		meshes:   newMeshCache(),
		textures: newTextureCache(),
		models:   make(map[*scene.Model]modelEntry),
	}
}

func (r *Renderer) init() {
	r.ready = true
	r.lit = rl.LoadShaderFromMemory(litVS, litFS)
	if !rl.IsShaderValid(r.lit) {
		r.log.Errorf("render: lit shader failed to compile, using raylib default")
	}
	loc := func(name string) int32 { return rl.GetShaderLocation(r.lit, name) }
	r.locs = litLocations{
		viewPos:       loc("viewPos"),
		useMap:        loc("useMap"),
		mapSRGB:       loc("mapSRGB"),
		dirDir:        loc("dirLightDir"),
		dirColor:      loc("dirLightColor"),
		ambient:       loc("ambientColor"),
		pointPos:      loc("pointLightPos"),
		pointColor:    loc("pointLightColor"),
		pointDistance: loc("pointLightDistance"),
		pointDecay:    loc("pointLightDecay"),
		specPower:     loc("specularPower"),
		specStrength:  loc("specularStrength"),
	}
	r.mtl = rl.LoadMaterialDefault()
	if rl.IsShaderValid(r.lit) {
		r.mtl.Shader = r.lit
	}
	r.setFloat(r.locs.specPower, defaultSpecularPower)
	r.setFloat(r.locs.specStrength, defaultSpecularStrength)
}

// Render draws one frame of g seen from cam. Call between BeginDrawing and EndDrawing.
func (r *Renderer) Render(g *scene.Graph, cam *scene.Camera) {
	if !r.ready {
		r.init()
	}
	r.sky.ensureLoaded(g.Background(), r.log)

	rl.BeginMode3D(toCamera(cam))
	r.sky.draw(cam.Position)
	r.applyLights(g.Lights(), cam.Position)
	for _, n := range g.Nodes() {
		if n.Model != nil {
			r.drawModel(n)
			continue
		}
		r.drawMesh(n)
	}
	rl.EndMode3D()

	for _, o := range r.overlays {
		o.Draw()
	}
}

// applyLights uploads the graph's lights. Ambient lights add up; the shader takes the
// first directional and first point light.
func (r *Renderer) applyLights(lights []scene.Light, viewPos scene.Vec3) {
	var ambient, dirColor, pointColor scene.Vec3
	dirDir := scene.Vec3{0, 1, 0}
	var pointPos scene.Vec3
	var pointDistance, pointDecay float32
	haveDir, havePoint := false, false
	for _, l := range lights {
		c := radiance(l)
		switch l.Type {
		case scene.LightAmbient:
			ambient = scene.Vec3{ambient[0] + c[0], ambient[1] + c[1], ambient[2] + c[2]}
		case scene.LightDirectional:
			if !haveDir {
				haveDir = true
				dirColor = c
				dirDir = l.Position
			}
		case scene.LightPoint:
			if !havePoint {
				havePoint = true
				pointColor = c
				pointPos = l.Position
				pointDistance = l.Distance
				pointDecay = l.Decay
			}
		}
	}
	r.setVec3(r.locs.viewPos, viewPos)
	r.setVec3(r.locs.ambient, ambient)
	r.setVec3(r.locs.dirDir, dirDir)
	r.setVec3(r.locs.dirColor, dirColor)
	r.setVec3(r.locs.pointPos, pointPos)
	r.setVec3(r.locs.pointColor, pointColor)
	r.setFloat(r.locs.pointDistance, pointDistance)
	r.setFloat(r.locs.pointDecay, pointDecay)
}

// radiance is a light's linear colour scaled by its intensity.
func radiance(l scene.Light) scene.Vec3 {
	c := l.Color.Linear()
	return scene.Vec3{c[0] * l.Intensity, c[1] * l.Intensity, c[2] * l.Intensity}
}

func (r *Renderer) drawMesh(n *scene.Node) {
	mesh, ok := r.meshes.get(n.Geometry)
	if !ok {
		return
	}
	albedo := r.mtl.GetMap(rl.MapAlbedo)
	albedo.Color = toColor(n.Material.Color)
	albedo.Texture = rl.Texture2D{}
	useMap, srgb := float32(0), float32(0)
	if e, ok := r.textures.get(n.Material.Map, r.log); ok {
		albedo.Texture = e.tex
		useMap = 1
		if e.srgb {
			srgb = 1
		}
	}
	r.setFloat(r.locs.useMap, useMap)
	r.setFloat(r.locs.mapSRGB, srgb)
	rl.DrawMesh(mesh, r.mtl, nodeMatrix(n))
}

func (r *Renderer) drawModel(n *scene.Node) {
	e, seen := r.models[n.Model]
	if !seen {
		e.model = rl.LoadModel(n.Model.File)
		e.ok = rl.IsModelValid(e.model)
		if !e.ok {
			r.log.Errorf("render: model %s could not be uploaded", n.Model.Path)
		}
		r.models[n.Model] = e
	}
	if !e.ok {
		return
	}
	e.model.Transform = toMatrix(n.Transform.Matrix())
	rl.DrawModel(e.model, rl.Vector3{}, 1, rl.White)
}

func (r *Renderer) setFloat(loc int32, v float32) {
	if loc >= 0 {
		rl.SetShaderValue(r.lit, loc, []float32{v}, rl.ShaderUniformFloat)
	}
}

func (r *Renderer) setVec3(loc int32, v scene.Vec3) {
	if loc >= 0 {
		rl.SetShaderValue(r.lit, loc, v[:], rl.ShaderUniformVec3)
	}
}

// Close releases every GPU resource the renderer created.
func (r *Renderer) Close() {
	if !r.ready {
		return
	}
	r.meshes.unload()
	r.textures.unload()
	for m, e := range r.models {
		if e.ok {
			rl.UnloadModel(e.model)
		}
		delete(r.models, m)
	}
	r.sky.release()
	if rl.IsShaderValid(r.lit) {
		rl.UnloadShader(r.lit)
	}
	r.ready = false
}
