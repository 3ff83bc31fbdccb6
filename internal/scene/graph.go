package scene

// Node is one visual object. A node with a Model draws the model instead of Geometry.
type Node struct {
	Name      string
	Geometry  Geometry
	Material  Material
	Transform Transform
	Model     *Model
}

// NewMesh returns a node of the given shape and material at transform.
func NewMesh(name string, geo Geometry, mat Material, tr Transform) *Node {
	return &Node{Name: name, Geometry: geo, Material: mat, Transform: tr}
}

// Graph is the ordered set of nodes and lights composed into one frame, plus the
// background. Nodes and lights are only ever appended.
type Graph struct {
	nodes      []*Node
	lights     []Light
	background *CubeTexture
}

// NewGraph returns an empty graph.
func NewGraph() *Graph {
	return &Graph{}
}

// Add appends nodes in draw order.
func (g *Graph) Add(nodes ...*Node) {
	g.nodes = append(g.nodes, nodes...)
}

// AddLight appends a light.
func (g *Graph) AddLight(l Light) {
	g.lights = append(g.lights, l)
}

// SetBackground sets the skybox.
func (g *Graph) SetBackground(bg *CubeTexture) {
	g.background = bg
}

// Background returns the skybox, or nil.
func (g *Graph) Background() *CubeTexture {
	return g.background
}

// Nodes returns the nodes in insertion order. The slice must not be modified.
func (g *Graph) Nodes() []*Node {
	return g.nodes
}

// Lights returns a copy of the lights.
func (g *Graph) Lights() []Light {
	out := make([]Light, len(g.lights))
	copy(out, g.lights)
	return out
}

// Len returns the number of nodes.
func (g *Graph) Len() int {
	return len(g.nodes)
}

// Find returns the first node with the given name.
func (g *Graph) Find(name string) (*Node, bool) {
	for _, n := range g.nodes {
		if n.Name == name {
			return n, true
		}
	}
	return nil, false
}
