// Package scene is the retained scene graph: nodes with geometry, material and transform,
// plus lights, a camera and a skybox background. It holds no GPU state; the renderer
// turns descriptors into meshes and textures on the main thread.
package scene

import "github.com/chewxy/math32"

// Vec3 is a position, rotation or scale triple.
type Vec3 = [3]float32

// Color is a 24-bit sRGB colour written as hex, e.g. 0x654321.
type Color uint32

// Common colours.
const (
	White Color = 0xffffff
	Black Color = 0x000000
)

// RGB returns the sRGB channels in 0..1.
func (c Color) RGB() [3]float32 {
	return [3]float32{
		float32((c>>16)&0xff) / 255,
		float32((c>>8)&0xff) / 255,
		float32(c&0xff) / 255,
	}
}

// Linear returns the colour converted from sRGB to linear RGB.
func (c Color) Linear() [3]float32 {
	rgb := c.RGB()
	for i, v := range rgb {
		rgb[i] = srgbToLinear(v)
	}
	return rgb
}

func srgbToLinear(v float32) float32 {
	if v <= 0.04045 {
		return v / 12.92
	}
	return math32.Pow((v+0.055)/1.055, 2.4)
}

// ColorSpace tags how texture texels are encoded.
type ColorSpace int

const (
	ColorSpaceLinear ColorSpace = iota
	ColorSpaceSRGB
)

func (cs ColorSpace) String() string {
	if cs == ColorSpaceSRGB {
		return "srgb"
	}
	return "linear"
}
