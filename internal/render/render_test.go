package render

import (
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"

	"pool-scene/internal/scene"
)

func TestToMatrixKeepsTranslationColumn(t *testing.T) {
	m := toMatrix(mgl32.Translate3D(1, 2, 3))
	assert.Equal(t, float32(1), m.M12)
	assert.Equal(t, float32(2), m.M13)
	assert.Equal(t, float32(3), m.M14)
	assert.Equal(t, float32(1), m.M15)
	assert.Equal(t, float32(1), m.M0)
}

func TestNodeMatrixCentresCylinder(t *testing.T) {
	n := scene.NewMesh("cue", scene.Cylinder(0.05, 0.1, 6, 32), scene.Material{}, scene.At(5, -0.5, 0))
	m := nodeMatrix(n)
	assert.InDelta(t, 5, m.M12, 1e-6)
	assert.InDelta(t, -3.5, m.M13, 1e-6)

	box := scene.NewMesh("chalk", scene.Box(0.5, 0.5, 0.5), scene.Material{}, scene.At(4, -0.5, -1.5))
	m = nodeMatrix(box)
	assert.InDelta(t, -0.5, m.M13, 1e-6)
}

func TestRadianceScalesLinearColour(t *testing.T) {
	r := radiance(scene.Light{Type: scene.LightAmbient, Color: 0xffffff, Intensity: 1.5})
	assert.InDelta(t, 1.5, r[0], 1e-5)
	assert.InDelta(t, 1.5, r[2], 1e-5)

	r = radiance(scene.Light{Type: scene.LightPoint, Color: 0x000000, Intensity: 5})
	assert.Equal(t, scene.Vec3{}, r)
}

func TestToColor(t *testing.T) {
	c := toColor(0x5C4033)
	assert.Equal(t, uint8(0x5c), c.R)
	assert.Equal(t, uint8(0x40), c.G)
	assert.Equal(t, uint8(0x33), c.B)
	assert.Equal(t, uint8(255), c.A)
}
