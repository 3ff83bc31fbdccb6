package ui

import (
	"image/color"

	rl "github.com/gen2brain/raylib-go/raylib"
)

const defaultFontSize = 20

// Engine holds the current stylesheet and nodes, and draws them with raylib.
// Draw order is node order (first node drawn first, then on top the next).
// Resolved styles are cached and only recomputed when sheet or nodes change to avoid per-frame allocations.
type Engine struct {
	sheet        *Stylesheet
	nodes        []*Node
	cachedStyles []ComputedStyle
	cacheValid   bool
}

// New creates an empty UI engine (no stylesheet, no nodes).
func New() *Engine {
	return &Engine{}
}

// SetStylesheet replaces the stylesheet.
func (e *Engine) SetStylesheet(sheet *Stylesheet) {
	e.sheet = sheet
	e.cacheValid = false
}

// AddNode appends a node. Nodes are drawn in order.
func (e *Engine) AddNode(nodes ...*Node) {
	e.nodes = append(e.nodes, nodes...)
	e.cacheValid = false
}

// Style returns the merged style for n (class and id matched; last rule wins).
func (e *Engine) Style(n *Node) ComputedStyle {
	return ResolveProps(e.resolveProps(n))
}

func (e *Engine) resolveProps(n *Node) map[string]string {
	merged := make(map[string]string)
	if e.sheet == nil {
		return merged
	}
	for _, rule := range e.sheet.Rules {
		sel := rule.Selector
		matches := (sel[0] == '.' && n.Class == sel[1:]) || (sel[0] == '#' && n.ID == sel[1:])
		if matches {
			for k, v := range rule.Props {
				merged[k] = v
			}
		}
	}
	return merged
}

// Draw draws every visible node: background, border, then text.
func (e *Engine) Draw() {
	screenW := int32(rl.GetScreenWidth())
	screenH := int32(rl.GetScreenHeight())
	if !e.cacheValid {
		e.cachedStyles = make([]ComputedStyle, len(e.nodes))
		for i, n := range e.nodes {
			e.cachedStyles[i] = e.Style(n)
		}
		e.cacheValid = true
	}
	for i, n := range e.nodes {
		if !n.Visible() {
			continue
		}
		style := e.cachedStyles[i]
		n.Bounds = Place(style, screenW, screenH)
		x, y := int32(n.Bounds.X), int32(n.Bounds.Y)
		w, h := int32(n.Bounds.Width*n.ScaleX), int32(n.Bounds.Height)

		if style.Background.A > 0 && w > 0 {
			rl.DrawRectangle(x, y, w, h, toColor(style.Background))
		}
		// Border (1px) around the unscaled box.
		if style.HasBorder && n.Bounds.Width > 0 && h > 0 {
			rl.DrawRectangleLines(x, y, int32(n.Bounds.Width), h, toColor(style.Border))
		}
		if n.Text != "" {
			rl.DrawText(n.Text, x+style.Padding, y+style.Padding, style.FontSize, toColor(style.Color))
		}
	}
}

func toColor(c color.RGBA) rl.Color {
	return rl.NewColor(c.R, c.G, c.B, c.A)
}
