package graphics

import (
	rl "github.com/gen2brain/raylib-go/raylib"

	"pool-scene/internal/orbit"
)

// MouseInput maps the mouse onto orbit controls: left drag rotates, right drag pans,
// the wheel dollies.
type MouseInput struct{}

// Apply feeds this frame's mouse state into c.
func (MouseInput) Apply(c *orbit.Controls) {
	h := float32(rl.GetScreenHeight())
	d := rl.GetMouseDelta()
	if rl.IsMouseButtonDown(rl.MouseButtonLeft) {
		c.Rotate(d.X, d.Y, h)
	}
	if rl.IsMouseButtonDown(rl.MouseButtonRight) {
		c.Pan(d.X, d.Y, h)
	}
	if w := rl.GetMouseWheelMove(); w != 0 {
		c.Dolly(w)
	}
}
