package compose

import (
	"strconv"

	"github.com/chewxy/math32"

	"pool-scene/internal/rack"
	"pool-scene/internal/scene"
)

// Node names referenced outside this package.
const (
	ChalkName = "chalk"
	FlyName   = "fly"
)

// BallRadius is shared by the cue ball and the racked balls.
const (
	BallRadius = 0.3
	BallY      = -0.35
)

func ballGeometry() scene.Geometry {
	return scene.Sphere(BallRadius, 32, 16)
}

// Cue returns the tapered cue stick, tipped just past horizontal.
func Cue() *scene.Node {
	tr := scene.At(5, -0.5, 0)
	tr.Rotation[2] = math32.Pi / 1.99
	return scene.NewMesh("cue", scene.Cylinder(0.05, 0.1, 6, 32), scene.Material{Color: 0x8B4513}, tr)
}

// Chalk returns the chalk cube, the one node that moves each frame.
func Chalk(tex *scene.Texture) *scene.Node {
	return scene.NewMesh(ChalkName, scene.Box(0.5, 0.5, 0.5),
		scene.Material{Color: scene.White, Map: tex},
		scene.At(4, -0.5, -1.5))
}

// CueBall returns the plain white cue ball.
func CueBall() *scene.Node {
	return scene.NewMesh("cue-ball", ballGeometry(), scene.Material{Color: scene.White}, scene.At(1.5, BallY, 0))
}

// Balls returns the racked balls, textured in rack order from textures.
func Balls(p rack.Params, textures []*scene.Texture) []*scene.Node {
	slots := rack.Layout(p)
	out := make([]*scene.Node, 0, len(slots))
	for _, s := range slots {
		mat := scene.Material{Color: scene.White}
		if s.Index < len(textures) {
			mat.Map = textures[s.Index]
		}
		out = append(out, scene.NewMesh(ballName(s.Index), ballGeometry(), mat, scene.At(s.X, BallY, s.Z)))
	}
	return out
}

func ballName(index int) string {
	return "ball-" + strconv.Itoa(index+1)
}

// FlyTransform places the loaded model beside the table.
func FlyTransform() scene.Transform {
	tr := scene.At(8.5, 0, 0)
	tr.Rotation[1] = math32.Pi / 9
	tr.Scale = scene.Vec3{0.5, 0.5, 0.5}
	return tr
}
