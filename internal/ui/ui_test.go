package ui

import (
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseCSSRules(t *testing.T) {
	sheet, err := ParseCSS(`
/* comment */
.bar { background: #fff; width: 400px }
#main { left: 50%; top: 10; }
div > p { color: #000; }
@media screen { .x { color: #123456; } }
.bar { width: 300; }
`)
	require.NoError(t, err)
	var sels []string
	for _, r := range sheet.Rules {
		sels = append(sels, r.Selector)
	}
	assert.Equal(t, []string{".bar", "#main", ".bar"}, sels)
	assert.Equal(t, "#fff", sheet.Rules[0].Props["background"])
	assert.Equal(t, "400px", sheet.Rules[0].Props["width"])
	assert.Equal(t, "50%", sheet.Rules[1].Props["left"])
}

func TestDefaultStylesheetParses(t *testing.T) {
	sheet, err := DefaultStylesheet()
	require.NoError(t, err)

	e := New()
	e.SetStylesheet(sheet)
	s := NewLoadingScreen()
	e.AddNode(s.Nodes()...)

	panel := e.Style(s.Nodes()[0])
	assert.Equal(t, int32(100), panel.WidthPct)
	assert.Equal(t, color.RGBA{0, 0, 0, 255}, panel.Background)

	bar := e.Style(s.Nodes()[2])
	assert.Equal(t, int32(400), bar.Width)
	assert.Equal(t, int32(50), bar.LeftPct)
	assert.Equal(t, color.RGBA{255, 255, 255, 255}, bar.Background)
}

func TestParseHexColor(t *testing.T) {
	c, ok := ParseHexColor("#abc")
	require.True(t, ok)
	assert.Equal(t, color.RGBA{0xaa, 0xbb, 0xcc, 255}, c)

	c, ok = ParseHexColor("#5C4033")
	require.True(t, ok)
	assert.Equal(t, color.RGBA{0x5c, 0x40, 0x33, 255}, c)

	_, ok = ParseHexColor("red")
	assert.False(t, ok)
	_, ok = ParseHexColor("#12345")
	assert.False(t, ok)
}

func TestPlace(t *testing.T) {
	full := DefaultComputedStyle()
	full.WidthPct, full.HeightPct = 100, 100
	assert.Equal(t, Rect{Width: 800, Height: 600}, Place(full, 800, 600))

	centred := DefaultComputedStyle()
	centred.Width, centred.Height = 400, 20
	centred.LeftPct, centred.TopPct = 50, 50
	assert.Equal(t, Rect{X: 200, Y: 290, Width: 400, Height: 20}, Place(centred, 800, 600))
}

func TestLoadingScreenProgressAndHide(t *testing.T) {
	s := NewLoadingScreen()
	assert.True(t, s.Visible())
	assert.Zero(t, s.Progress())

	s.SetProgress("textures/ball-1.jpg", 3, 12)
	assert.InDelta(t, 0.25, s.Progress(), 1e-6)
	s.SetProgress("x", 1, 0)
	assert.InDelta(t, 0.25, s.Progress(), 1e-6)

	s.Hide()
	s.Hide()
	assert.False(t, s.Visible())
	for _, n := range s.Nodes() {
		assert.False(t, n.Visible())
	}
}
