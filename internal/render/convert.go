package render

import (
	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/go-gl/mathgl/mgl32"

	"pool-scene/internal/scene"
)

// toMatrix converts a column-major mgl32 matrix to raylib's layout. Both index elements
// column-major, so Mk maps to m[k].
func toMatrix(m mgl32.Mat4) rl.Matrix {
	return rl.Matrix{
		M0: m[0], M1: m[1], M2: m[2], M3: m[3],
		M4: m[4], M5: m[5], M6: m[6], M7: m[7],
		M8: m[8], M9: m[9], M10: m[10], M11: m[11],
		M12: m[12], M13: m[13], M14: m[14], M15: m[15],
	}
}

func toVector3(v scene.Vec3) rl.Vector3 {
	return rl.NewVector3(v[0], v[1], v[2])
}

func toColor(c scene.Color) rl.Color {
	return rl.NewColor(uint8(c>>16), uint8(c>>8), uint8(c), 255)
}

func toCamera(cam *scene.Camera) rl.Camera3D {
	return rl.Camera3D{
		Position:   toVector3(cam.Position),
		Target:     toVector3(cam.Target),
		Up:         toVector3(cam.Up),
		Fovy:       cam.Fov,
		Projection: rl.CameraPerspective,
	}
}

// nodeMatrix is the node's model matrix with the mesh's centring offset applied first.
func nodeMatrix(n *scene.Node) rl.Matrix {
	m := n.Transform.Matrix()
	if off := centerOffset(n.Geometry); off != (scene.Vec3{}) {
		m = m.Mul4(mgl32.Translate3D(off[0], off[1], off[2]))
	}
	return toMatrix(m)
}
