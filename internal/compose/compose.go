// Package compose builds the pool-table scene graph: background, lights, the table and
// its props, the ball rack and the external model.
package compose

import (
	"path"

	"pool-scene/internal/rack"
	"pool-scene/internal/scene"
)

// Asset paths, relative to the asset root.
const (
	TextureDir   = "textures"
	FeltTexture  = "textures/pool_table_felt.jpg"
	ChalkTexture = "textures/chalk.jpg"
	FlyModel     = "models/Fly.glb"
)

// Loader is what composition needs from the asset loader.
type Loader interface {
	LoadTexture(path string, cs scene.ColorSpace) *scene.Texture
	LoadCube(paths [scene.FaceCount]string) *scene.CubeTexture
	LoadModel(path string, onLoad func(*scene.Model), onError func(error))
}

// SkyboxFaces returns the six face paths in cube order.
func SkyboxFaces() [scene.FaceCount]string {
	return [scene.FaceCount]string{
		TextureDir + "/pos-x.jpg",
		TextureDir + "/neg-x.jpg",
		TextureDir + "/pos-y.jpg",
		TextureDir + "/neg-y.jpg",
		TextureDir + "/pos-z.jpg",
		TextureDir + "/neg-z.jpg",
	}
}

// Build requests every asset and appends the scene's nodes and lights to g in startup
// order. Nothing here waits on a load: textures bind when they resolve and the model
// node is appended by its completion callback, or never if it fails.
// It returns the chalk node, which the render loop rotates.
func Build(g *scene.Graph, ld Loader) *scene.Node {
	g.SetBackground(ld.LoadCube(SkyboxFaces()))

	for _, l := range Lights() {
		g.AddLight(l)
	}

	g.Add(Table(ld.LoadTexture(FeltTexture, scene.ColorSpaceSRGB)))
	g.Add(Legs()...)
	g.Add(Borders()...)
	g.Add(Pockets()...)
	g.Add(Cue())
	chalk := Chalk(ld.LoadTexture(ChalkTexture, scene.ColorSpaceSRGB))
	g.Add(chalk)
	g.Add(CueBall())

	p := rack.Standard()
	names := rack.BallTextures(p.Count)
	textures := make([]*scene.Texture, len(names))
	for i, name := range names {
		textures[i] = ld.LoadTexture(path.Join(TextureDir, name), scene.ColorSpaceSRGB)
	}
	g.Add(Balls(p, textures)...)

	ld.LoadModel(FlyModel, func(m *scene.Model) {
		g.Add(&scene.Node{Name: FlyName, Model: m, Transform: FlyTransform()})
	}, nil)

	return chalk
}
