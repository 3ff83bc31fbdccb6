package ui

import (
	_ "embed"
	"fmt"

	"pool-scene/internal/loading"
)

//go:embed loading.css
var loadingCSS string

// DefaultStylesheet parses the embedded loading-screen styles.
func DefaultStylesheet() (*Stylesheet, error) {
	return ParseCSS(loadingCSS)
}

// LoadingScreen is the full-screen overlay shown while assets load. It owns its nodes;
// SetProgress scales the bar and Hide removes the whole overlay. Like the engine that
// draws it, a LoadingScreen belongs to the main thread.
type LoadingScreen struct {
	panel  *Node
	track  *Node
	bar    *Node
	label  *Node
	failed int
}

// NewLoadingScreen returns a visible overlay with an empty bar.
func NewLoadingScreen() *LoadingScreen {
	panel := NewNode("panel", "", "loading", "")
	track := NewNode("panel", "progress", "", "")
	bar := NewNode("panel", "progressbar", "", "")
	label := NewNode("label", "loading-label", "", "Loading...")
	track.Parent, bar.Parent, label.Parent = panel, panel, panel
	bar.ScaleX = 0
	return &LoadingScreen{panel: panel, track: track, bar: bar, label: label}
}

// Nodes returns the overlay's nodes in draw order.
func (s *LoadingScreen) Nodes() []*Node {
	return []*Node{s.panel, s.track, s.bar, s.label}
}

// SetProgress sets the bar to loaded/total and names the item that just settled.
func (s *LoadingScreen) SetProgress(url string, loaded, total int) {
	if total <= 0 {
		return
	}
	s.bar.ScaleX = min(float32(loaded)/float32(total), 1)
	s.label.Text = fmt.Sprintf("Loading %d/%d  %s", loaded, total, url)
	if s.failed > 0 {
		s.label.Text += fmt.Sprintf("  (%d failed)", s.failed)
	}
}

// Progress returns the bar's current scale.
func (s *LoadingScreen) Progress() float32 {
	return s.bar.ScaleX
}

// Hide removes the overlay. Calling it again has no effect.
func (s *LoadingScreen) Hide() {
	s.panel.Hidden = true
}

// Visible reports whether the overlay is still shown.
func (s *LoadingScreen) Visible() bool {
	return !s.panel.Hidden
}

// Infof is the logging Track reports the final tally through.
type Infof interface {
	Infof(format string, args ...any)
}

// Track drives the screen from m: each settled item advances the bar, failures are
// counted on the label, and the screen hides once everything has settled. log may be nil.
func (s *LoadingScreen) Track(m *loading.Manager, log Infof) {
	m.OnError(func(string) { s.failed++ })
	m.OnProgress(s.SetProgress)
	m.OnLoad(func() {
		s.Hide()
		if log != nil {
			loaded, total := m.Progress()
			log.Infof("assets settled: %d/%d, %d failed", loaded, total, m.Failed())
		}
	})
}
