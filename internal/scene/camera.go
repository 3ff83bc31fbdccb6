package scene

// Camera is a perspective camera. Fov is the vertical field of view in degrees.
type Camera struct {
	Position Vec3
	Target   Vec3
	Up       Vec3
	Fov      float32
	Aspect   float32
	Near     float32
	Far      float32
}

// NewPerspective returns a camera at position looking at target with +Y up.
func NewPerspective(fov, aspect, near, far float32, position, target Vec3) *Camera {
	return &Camera{
		Position: position,
		Target:   target,
		Up:       Vec3{0, 1, 0},
		Fov:      fov,
		Aspect:   aspect,
		Near:     near,
		Far:      far,
	}
}

// LookAt points the camera at target.
func (c *Camera) LookAt(target Vec3) {
	c.Target = target
}
