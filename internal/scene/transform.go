package scene

import "github.com/go-gl/mathgl/mgl32"

// Transform places a node: translation, Euler rotation (radians, applied X then Y then Z
// in the intrinsic XYZ order) and scale.
type Transform struct {
	Position Vec3
	Rotation Vec3
	Scale    Vec3
}

// Identity returns a transform at the origin with unit scale.
func Identity() Transform {
	return Transform{Scale: Vec3{1, 1, 1}}
}

// At returns a unit-scale transform positioned at (x, y, z).
func At(x, y, z float32) Transform {
	t := Identity()
	t.Position = Vec3{x, y, z}
	return t
}

// Matrix returns the column-major model matrix T * Rx * Ry * Rz * S.
// A zero scale component is treated as 1.
func (t Transform) Matrix() mgl32.Mat4 {
	sx, sy, sz := t.Scale[0], t.Scale[1], t.Scale[2]
	if sx == 0 {
		sx = 1
	}
	if sy == 0 {
		sy = 1
	}
	if sz == 0 {
		sz = 1
	}
	rot := mgl32.HomogRotate3DX(t.Rotation[0]).
		Mul4(mgl32.HomogRotate3DY(t.Rotation[1])).
		Mul4(mgl32.HomogRotate3DZ(t.Rotation[2]))
	return mgl32.Translate3D(t.Position[0], t.Position[1], t.Position[2]).
		Mul4(rot).
		Mul4(mgl32.Scale3D(sx, sy, sz))
}
