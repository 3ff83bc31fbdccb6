package compose

import "pool-scene/internal/scene"

// Table dimensions.
const (
	TableWidth      = 10.0
	TableDepth      = 5.0
	TableThickness  = 0.5
	TableY          = -1
	BorderThickness = 0.3
	BorderHeight    = 0.3
	BorderY         = -0.7
	PocketRadius    = 0.25
	PocketY         = -0.55 - 0.11
)

const (
	legColor    scene.Color = 0x654321
	borderColor scene.Color = 0x5C4033
)

// Table returns the felt slab.
func Table(felt *scene.Texture) *scene.Node {
	return scene.NewMesh("table",
		scene.Box(TableWidth, TableThickness, TableDepth),
		scene.Material{Color: scene.White, Map: felt},
		scene.At(0, TableY, 0))
}

var legOffsets = [4]scene.Vec3{
	{-4.5, -2, -2.2},
	{4.5, -2, -2.2},
	{-4.5, -2, 2.2},
	{4.5, -2, 2.2},
}

// Legs returns the four legs. They share one geometry and material.
func Legs() []*scene.Node {
	geo := scene.Box(0.3, 2, 0.3)
	mat := scene.Material{Color: legColor}
	out := make([]*scene.Node, 0, len(legOffsets))
	for i, p := range legOffsets {
		out = append(out, scene.NewMesh(legName(i), geo, mat, scene.At(p[0], p[1], p[2])))
	}
	return out
}

func legName(i int) string {
	return [...]string{"leg-front-left", "leg-front-right", "leg-back-left", "leg-back-right"}[i]
}

// Borders returns the four rails. Left and right run the table's depth plus both
// corners; front and back span the table's width.
func Borders() []*scene.Node {
	mat := scene.Material{Color: borderColor}
	side := scene.Box(BorderThickness, BorderHeight, TableDepth+BorderThickness*2)
	end := scene.Box(TableWidth, BorderHeight, BorderThickness)
	const (
		sideX = TableWidth/2 + BorderThickness/2
		endZ  = TableDepth/2 + BorderThickness/2
	)
	return []*scene.Node{
		scene.NewMesh("border-left", side, mat, scene.At(-sideX, BorderY, 0)),
		scene.NewMesh("border-right", side, mat, scene.At(sideX, BorderY, 0)),
		scene.NewMesh("border-front", end, mat, scene.At(0, BorderY, -endZ)),
		scene.NewMesh("border-back", end, mat, scene.At(0, BorderY, endZ)),
	}
}

// pocketSpots are the four corners followed by the two mid-rail pockets.
var pocketSpots = [6][2]float32{
	{-TableWidth / 2, -TableDepth / 2},
	{TableWidth / 2, -TableDepth / 2},
	{-TableWidth / 2, TableDepth / 2},
	{TableWidth / 2, TableDepth / 2},
	{0, -TableDepth / 2},
	{0, TableDepth / 2},
}

// Pockets returns the six pocket markers.
func Pockets() []*scene.Node {
	geo := scene.Sphere(PocketRadius, 16, 16)
	mat := scene.Material{Color: scene.Black}
	out := make([]*scene.Node, 0, len(pocketSpots))
	for i, p := range pocketSpots {
		name := "pocket-corner"
		if i >= 4 {
			name = "pocket-middle"
		}
		out = append(out, scene.NewMesh(name, geo, mat, scene.At(p[0], PocketY, p[1])))
	}
	return out
}
