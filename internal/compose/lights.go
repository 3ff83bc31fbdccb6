package compose

import "pool-scene/internal/scene"

// Lights returns the scene's three fixed lights: a key directional light, ambient fill
// and a warm point light above the table.
func Lights() []scene.Light {
	return []scene.Light{
		{Type: scene.LightDirectional, Color: 0xffffff, Intensity: 3, Position: scene.Vec3{-1, 2, 4}},
		{Type: scene.LightAmbient, Color: 0x404040, Intensity: 1.5},
		{Type: scene.LightPoint, Color: 0xffddaa, Intensity: 1.2, Distance: 20, Decay: 2, Position: scene.Vec3{0, 5, 0}},
	}
}
