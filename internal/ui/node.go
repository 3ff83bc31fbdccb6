package ui

// Rect is a node's resolved position and size in pixels.
type Rect struct {
	X, Y, Width, Height float32
}

// Node is a single UI element: panel, label, etc. It has optional class and id for CSS matching,
// bounds resolved from its style, and optional text for labels.
type Node struct {
	Type   string // "panel", "label", etc.
	Class  string // e.g. "progressbar" for .progressbar
	ID     string // e.g. "loading" for #loading
	Bounds Rect
	Text   string
	// ScaleX shrinks the drawn width from the left edge, like transform: scaleX().
	ScaleX float32
	Hidden bool
	// Parent hides this node whenever it is hidden.
	Parent *Node
}

// NewNode creates a node with type and optional class, id, and text.
func NewNode(typ, class, id, text string) *Node {
	return &Node{Type: typ, Class: class, ID: id, Text: text, ScaleX: 1}
}

// Visible reports whether neither n nor any ancestor is hidden.
func (n *Node) Visible() bool {
	for p := n; p != nil; p = p.Parent {
		if p.Hidden {
			return false
		}
	}
	return true
}
