package render

import (
	rl "github.com/gen2brain/raylib-go/raylib"

	"pool-scene/internal/scene"
)

// meshCache maps geometry descriptors to GPU meshes. Meshes are created on first use so
// that GPU resources are allocated after the window/OpenGL context exists, and equal
// descriptors (the four legs, the six pockets) share one mesh.
type meshCache struct {
	meshes map[scene.Geometry]rl.Mesh
}

func newMeshCache() *meshCache {
	return &meshCache{meshes: make(map[scene.Geometry]rl.Mesh)}
}

func (c *meshCache) get(g scene.Geometry) (rl.Mesh, bool) {
	if m, ok := c.meshes[g]; ok {
		return m, true
	}
	var m rl.Mesh
	switch g.Kind {
	case scene.KindBox:
		m = rl.GenMeshCube(g.Width, g.Height, g.Depth)
	case scene.KindSphere:
		m = rl.GenMeshSphere(g.Radius, max(g.Rings, 3), max(g.Segments, 3))
	case scene.KindCylinder:
		// raylib only generates straight cylinders; a taper is drawn at its mean radius.
		m = rl.GenMeshCylinder((g.RadiusTop+g.RadiusBottom)/2, g.Height, max(g.Segments, 3))
	default:
		return rl.Mesh{}, false
	}
	c.meshes[g] = m
	return m, true
}

// centerOffset shifts a mesh in model space so the node's position is its centre.
// raylib cylinders have their base at Y=0 and top at Y=height.
func centerOffset(g scene.Geometry) scene.Vec3 {
	if g.Kind == scene.KindCylinder {
		return scene.Vec3{0, -g.Size()[1] / 2, 0}
	}
	return scene.Vec3{}
}

func (c *meshCache) unload() {
	for g, m := range c.meshes {
		rl.UnloadMesh(&m)
		delete(c.meshes, g)
	}
}
