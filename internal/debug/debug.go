package debug

import (
	"fmt"
	"runtime"

	rl "github.com/gen2brain/raylib-go/raylib"
)

const (
	fontSize   = 20
	padding    = 12
	lineHeight = fontSize + 4
	// updateInterval: only refresh text every N frames to reduce allocations.
	updateInterval = 30
)

// AssetStatus reports loading progress for the assets line.
type AssetStatus interface {
	Progress() (loaded, total int)
	Failed() int
	Outstanding() bool
}

// LastLine returns the most recent diagnostic, or "" when there is none.
type LastLine interface {
	Last() string
}

// Debug holds runtime debugging overlays. All overlays are off by default.
type Debug struct {
	ShowFPS      bool
	ShowMemAlloc bool
	assets       AssetStatus
	log          LastLine
	frameCount   uint32
	lines        []string
	computed     bool
	memStats     runtime.MemStats
}

// New returns a Debug system with all overlays hidden.
func New() *Debug {
	return &Debug{}
}

// SetShowFPS sets whether the FPS counter is drawn (top-right, green).
func (d *Debug) SetShowFPS(show bool) {
	d.ShowFPS = show
}

// SetShowMemAlloc sets whether the heap allocation counter is drawn under FPS.
func (d *Debug) SetShowMemAlloc(show bool) {
	d.ShowMemAlloc = show
}

// SetAssets adds an "Assets: loaded/total" line, shown while FPS is shown.
func (d *Debug) SetAssets(s AssetStatus) {
	d.assets = s
}

// SetLog adds the most recent log line under the FPS line.
func (d *Debug) SetLog(l LastLine) {
	d.log = l
}

// Text returns the overlay lines for this frame. Text is only recomputed every
// updateInterval frames.
func (d *Debug) Text(fps int32) []string {
	d.frameCount++
	if d.frameCount%updateInterval != 1 && d.computed {
		return d.lines
	}
	d.computed = true
	d.lines = d.lines[:0]
	if d.ShowFPS {
		d.lines = append(d.lines, fmt.Sprintf("FPS: %d", fps))
		if d.assets != nil {
			loaded, total := d.assets.Progress()
			line := fmt.Sprintf("Assets: %d/%d", loaded, total)
			if n := d.assets.Failed(); n > 0 {
				line += fmt.Sprintf(" (%d failed)", n)
			}
			if d.assets.Outstanding() {
				line += " loading"
			}
			d.lines = append(d.lines, line)
		}
		if d.log != nil {
			if last := d.log.Last(); last != "" {
				d.lines = append(d.lines, last)
			}
		}
	}
	if d.ShowMemAlloc {
		runtime.ReadMemStats(&d.memStats)
		mb := float64(d.memStats.Alloc) / (1024 * 1024)
		d.lines = append(d.lines, fmt.Sprintf("Mem: %.2f MiB", mb))
	}
	return d.lines
}

// Draw renders the enabled overlays right-aligned at the top of the screen.
func (d *Debug) Draw() {
	if !d.ShowFPS && !d.ShowMemAlloc {
		return
	}
	screenW := int32(rl.GetScreenWidth())
	y := int32(padding)
	for _, text := range d.Text(rl.GetFPS()) {
		w := rl.MeasureText(text, fontSize)
		rl.DrawText(text, screenW-w-padding, y, fontSize, rl.Green)
		y += lineHeight
	}
}
