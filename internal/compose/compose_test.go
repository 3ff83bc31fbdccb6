package compose

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"pool-scene/internal/scene"
)

// fakeLoader records requests and lets the test decide when and how the model resolves.
type fakeLoader struct {
	textures []*scene.Texture
	cubes    int
	onLoad   func(*scene.Model)
	onError  func(error)
	models   []string
}

func (f *fakeLoader) LoadTexture(path string, cs scene.ColorSpace) *scene.Texture {
	tex := scene.NewTexture(path, cs)
	f.textures = append(f.textures, tex)
	return tex
}

func (f *fakeLoader) LoadCube(paths [scene.FaceCount]string) *scene.CubeTexture {
	f.cubes++
	return scene.NewCubeTexture(paths)
}

func (f *fakeLoader) LoadModel(path string, onLoad func(*scene.Model), onError func(error)) {
	f.models = append(f.models, path)
	f.onLoad = onLoad
	f.onError = onError
}

func positions(g *scene.Graph) map[string][]scene.Vec3 {
	out := map[string][]scene.Vec3{}
	for _, n := range g.Nodes() {
		out[n.Name] = append(out[n.Name], n.Transform.Position)
	}
	return out
}

func TestBuildComposesScene(t *testing.T) {
	g := scene.NewGraph()
	ld := &fakeLoader{}
	chalk := Build(g, ld)

	require.NotNil(t, chalk)
	assert.Equal(t, ChalkName, chalk.Name)
	assert.Equal(t, 1, ld.cubes)
	require.NotNil(t, g.Background())
	assert.Equal(t, "textures/neg-z.jpg", g.Background().Paths[scene.FaceNegZ])

	// felt + chalk + 15 balls
	require.Len(t, ld.textures, 17)
	for _, tex := range ld.textures {
		assert.Equal(t, scene.ColorSpaceSRGB, tex.ColorSpace)
	}
	assert.Equal(t, FeltTexture, ld.textures[0].Path)
	assert.Equal(t, "textures/ball-15.jpg", ld.textures[16].Path)
	assert.Equal(t, []string{FlyModel}, ld.models)

	// table + 4 legs + 4 borders + 6 pockets + cue + chalk + cue ball + 15 balls
	assert.Equal(t, 33, g.Len())
	assert.Len(t, g.Lights(), 3)

	_, ok := g.Find(FlyName)
	assert.False(t, ok, "model node is only added once it loads")
}

func TestModelLoadAppendsNode(t *testing.T) {
	g := scene.NewGraph()
	ld := &fakeLoader{}
	Build(g, ld)
	before := positions(g)

	ld.onLoad(&scene.Model{Path: FlyModel, Kind: "glb"})
	fly, ok := g.Find(FlyName)
	require.True(t, ok)
	assert.Equal(t, scene.Vec3{8.5, 0, 0}, fly.Transform.Position)
	assert.Equal(t, scene.Vec3{0.5, 0.5, 0.5}, fly.Transform.Scale)
	assert.Equal(t, 34, g.Len())

	after := positions(g)
	delete(after, FlyName)
	assert.Equal(t, before, after)
}

func TestModelFailureLeavesSceneUntouched(t *testing.T) {
	withFailure := scene.NewGraph()
	ld := &fakeLoader{}
	Build(withFailure, ld)
	assert.Nil(t, ld.onError, "failures are logged by the loader")

	untouched := scene.NewGraph()
	Build(untouched, &fakeLoader{})
	assert.Equal(t, positions(untouched), positions(withFailure))
	_, ok := withFailure.Find(FlyName)
	assert.False(t, ok)
}

func TestBorderDimensions(t *testing.T) {
	borders := Borders()
	require.Len(t, borders, 4)
	for _, b := range borders[:2] {
		assert.InDelta(t, TableDepth+2*BorderThickness, b.Geometry.Depth, 1e-6, b.Name)
		assert.InDelta(t, BorderThickness, b.Geometry.Width, 1e-6, b.Name)
	}
	for _, b := range borders[2:] {
		assert.InDelta(t, TableWidth, b.Geometry.Width, 1e-6, b.Name)
		assert.InDelta(t, BorderThickness, b.Geometry.Depth, 1e-6, b.Name)
	}
	assert.InDelta(t, -5.15, borders[0].Transform.Position[0], 1e-6)
	assert.InDelta(t, 5.15, borders[1].Transform.Position[0], 1e-6)
	assert.InDelta(t, -2.65, borders[2].Transform.Position[2], 1e-6)
	assert.InDelta(t, 2.65, borders[3].Transform.Position[2], 1e-6)
}

func TestSharedGeometry(t *testing.T) {
	legs := Legs()
	require.Len(t, legs, 4)
	for _, l := range legs[1:] {
		assert.Equal(t, legs[0].Geometry, l.Geometry)
		assert.Equal(t, legs[0].Material, l.Material)
	}
	pockets := Pockets()
	require.Len(t, pockets, 6)
	for _, p := range pockets {
		assert.InDelta(t, -0.66, p.Transform.Position[1], 1e-6)
	}
	assert.Equal(t, scene.Vec3{0, PocketY, 2.5}, pockets[5].Transform.Position)
}

func TestBallsFollowRack(t *testing.T) {
	g := scene.NewGraph()
	Build(g, &fakeLoader{})
	first, ok := g.Find("ball-1")
	require.True(t, ok)
	assert.InDelta(t, -1.8, first.Transform.Position[0], 1e-6)
	assert.InDelta(t, BallY, first.Transform.Position[1], 1e-6)
	assert.InDelta(t, 0, first.Transform.Position[2], 1e-6)
	require.NotNil(t, first.Material.Map)
	assert.Equal(t, "textures/ball-1.jpg", first.Material.Map.Path)

	last, ok := g.Find("ball-15")
	require.True(t, ok)
	assert.Equal(t, "textures/ball-15.jpg", last.Material.Map.Path)
}

func TestLights(t *testing.T) {
	lights := Lights()
	require.Len(t, lights, 3)
	assert.Equal(t, scene.LightDirectional, lights[0].Type)
	assert.Equal(t, scene.LightAmbient, lights[1].Type)
	assert.Equal(t, scene.LightPoint, lights[2].Type)
	assert.Equal(t, float32(20), lights[2].Distance)
}
