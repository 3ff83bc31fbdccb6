// Package orbit implements orbit camera controls: rotate around a target, dolly in and
// out, pan the target, with optional damping so motion eases out after input stops.
package orbit

import (
	"github.com/chewxy/math32"

	"pool-scene/internal/scene"
)

const polarEpsilon = 1e-6

// Controls moves a camera on a sphere around its target. Input methods queue deltas;
// Update applies them and writes the camera position.
type Controls struct {
	camera *scene.Camera

	EnableDamping bool
	DampingFactor float32
	RotateSpeed   float32
	ZoomSpeed     float32
	PanSpeed      float32
	MinDistance   float32
	MaxDistance   float32 // 0 means unbounded

	deltaTheta float32
	deltaPhi   float32
	scale      float32
	panOffset  scene.Vec3
}

// New returns controls bound to cam with damping off and unit speeds.
func New(cam *scene.Camera) *Controls {
	return &Controls{
		camera:        cam,
		DampingFactor: 0.05,
		RotateSpeed:   1,
		ZoomSpeed:     1,
		PanSpeed:      1,
		scale:         1,
	}
}

// Camera returns the controlled camera.
func (c *Controls) Camera() *scene.Camera {
	return c.camera
}

// Rotate queues a drag of (dx, dy) pixels on a viewport of the given height.
// A drag across the full height is one full turn.
func (c *Controls) Rotate(dx, dy, viewportHeight float32) {
	if viewportHeight <= 0 {
		return
	}
	c.deltaTheta -= 2 * math32.Pi * dx / viewportHeight * c.RotateSpeed
	c.deltaPhi -= 2 * math32.Pi * dy / viewportHeight * c.RotateSpeed
}

// Dolly queues a wheel step. Positive steps move toward the target.
func (c *Controls) Dolly(steps float32) {
	if steps == 0 {
		return
	}
	zoom := math32.Pow(0.95, c.ZoomSpeed*math32.Abs(steps))
	if steps > 0 {
		c.scale *= zoom
	} else {
		c.scale /= zoom
	}
}

// Pan queues a drag of (dx, dy) pixels that slides the target in the view plane.
func (c *Controls) Pan(dx, dy, viewportHeight float32) {
	if viewportHeight <= 0 {
		return
	}
	cam := c.camera
	offset := sub(cam.Position, cam.Target)
	dist := length(offset) * math32.Tan(cam.Fov/2*math32.Pi/180)
	forward := normalize(sub(cam.Target, cam.Position))
	right := normalize(cross(forward, cam.Up))
	up := cross(right, forward)
	sx := -2 * dx * dist / viewportHeight * c.PanSpeed
	sy := 2 * dy * dist / viewportHeight * c.PanSpeed
	for i := range c.panOffset {
		c.panOffset[i] += right[i]*sx + up[i]*sy
	}
}

// Update applies queued input and repositions the camera. With damping, only a fraction
// of the pending rotation and pan is applied and the rest decays, so the camera keeps
// drifting briefly after input stops. It reports whether the camera moved.
func (c *Controls) Update() bool {
	cam := c.camera
	offset := sub(cam.Position, cam.Target)
	radius, theta, phi := toSpherical(offset)

	if c.EnableDamping {
		theta += c.deltaTheta * c.DampingFactor
		phi += c.deltaPhi * c.DampingFactor
	} else {
		theta += c.deltaTheta
		phi += c.deltaPhi
	}
	phi = clamp(phi, polarEpsilon, math32.Pi-polarEpsilon)

	radius *= c.scale
	radius = max(radius, c.MinDistance)
	if c.MaxDistance > 0 {
		radius = min(radius, c.MaxDistance)
	}

	var pan scene.Vec3
	if c.EnableDamping {
		for i := range pan {
			pan[i] = c.panOffset[i] * c.DampingFactor
		}
	} else {
		pan = c.panOffset
	}
	target := add(cam.Target, pan)
	pos := add(target, fromSpherical(radius, theta, phi))

	moved := distSq(pos, cam.Position) > 1e-8 || distSq(target, cam.Target) > 1e-8
	cam.Position = pos
	cam.LookAt(target)

	if c.EnableDamping {
		decay := 1 - c.DampingFactor
		c.deltaTheta *= decay
		c.deltaPhi *= decay
		for i := range c.panOffset {
			c.panOffset[i] *= decay
		}
	} else {
		c.deltaTheta, c.deltaPhi = 0, 0
		c.panOffset = scene.Vec3{}
	}
	c.scale = 1
	return moved
}

// toSpherical converts a Y-up offset into radius, azimuth theta (around Y from +Z)
// and polar angle phi (from +Y).
func toSpherical(v scene.Vec3) (radius, theta, phi float32) {
	radius = length(v)
	if radius == 0 {
		return 0, 0, 0
	}
	theta = math32.Atan2(v[0], v[2])
	phi = math32.Acos(clamp(v[1]/radius, -1, 1))
	return radius, theta, phi
}

func fromSpherical(radius, theta, phi float32) scene.Vec3 {
	s := math32.Sin(phi) * radius
	return scene.Vec3{s * math32.Sin(theta), math32.Cos(phi) * radius, s * math32.Cos(theta)}
}

func clamp(v, lo, hi float32) float32 {
	return max(lo, min(hi, v))
}

func add(a, b scene.Vec3) scene.Vec3 { return scene.Vec3{a[0] + b[0], a[1] + b[1], a[2] + b[2]} }
func sub(a, b scene.Vec3) scene.Vec3 { return scene.Vec3{a[0] - b[0], a[1] - b[1], a[2] - b[2]} }

func cross(a, b scene.Vec3) scene.Vec3 {
	return scene.Vec3{a[1]*b[2] - a[2]*b[1], a[2]*b[0] - a[0]*b[2], a[0]*b[1] - a[1]*b[0]}
}

func length(v scene.Vec3) float32 {
	return math32.Sqrt(v[0]*v[0] + v[1]*v[1] + v[2]*v[2])
}

func normalize(v scene.Vec3) scene.Vec3 {
	l := length(v)
	if l == 0 {
		return v
	}
	return scene.Vec3{v[0] / l, v[1] / l, v[2] / l}
}

func distSq(a, b scene.Vec3) float32 {
	d := sub(a, b)
	return d[0]*d[0] + d[1]*d[1] + d[2]*d[2]
}
