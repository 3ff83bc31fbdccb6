package scene

import (
	"image"

	"pool-scene/internal/loading"
)

// Material is the surface of a node: a base colour, optionally multiplied by a texture.
// A texture that has not resolved yet leaves the node drawn with Color alone.
type Material struct {
	Color Color
	Map   *Texture
}

// Texture is a handle to an image that loads asynchronously.
type Texture struct {
	Path       string
	ColorSpace ColorSpace
	cell       *loading.Cell[image.Image]
}

// NewTexture returns an unresolved texture handle for path.
func NewTexture(path string, cs ColorSpace) *Texture {
	return &Texture{Path: path, ColorSpace: cs, cell: loading.NewCell[image.Image]()}
}

// Resolve binds the decoded image. Only the first call has an effect.
func (t *Texture) Resolve(img image.Image) bool {
	return t.cell.Set(img)
}

// Image returns the decoded image once it is available.
func (t *Texture) Image() (image.Image, bool) {
	return t.cell.Get()
}

// Ready reports whether the image has resolved.
func (t *Texture) Ready() bool {
	_, ok := t.cell.Get()
	return ok
}

// Cube face order: +X, -X, +Y, -Y, +Z, -Z.
const (
	FacePosX = iota
	FaceNegX
	FacePosY
	FaceNegY
	FacePosZ
	FaceNegZ
	FaceCount
)

// CubeTexture is a six-face environment map. Once resolved, its image holds the faces
// stacked vertically in face order.
type CubeTexture struct {
	Paths [FaceCount]string
	cell  *loading.Cell[image.Image]
}

// NewCubeTexture returns an unresolved cube texture for the six face paths.
func NewCubeTexture(paths [FaceCount]string) *CubeTexture {
	return &CubeTexture{Paths: paths, cell: loading.NewCell[image.Image]()}
}

// Resolve binds the composed strip image.
func (c *CubeTexture) Resolve(strip image.Image) bool {
	return c.cell.Set(strip)
}

// Image returns the composed strip once available.
func (c *CubeTexture) Image() (image.Image, bool) {
	return c.cell.Get()
}

// Model is an external model file that was read and recognised. File is the resolved
// path the renderer uploads from.
type Model struct {
	Path string
	File string
	Kind string // sniffed type, e.g. "glb"
	Size int64
}
