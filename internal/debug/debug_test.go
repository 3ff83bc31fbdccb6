package debug

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

type status struct{ loaded, total, failed int }

func (s *status) Progress() (int, int) { return s.loaded, s.total }
func (s *status) Failed() int          { return s.failed }
func (s *status) Outstanding() bool    { return s.loaded < s.total }

func TestTextHiddenByDefault(t *testing.T) {
	d := New()
	assert.Empty(t, d.Text(60))
}

func TestTextShowsFPSAndAssets(t *testing.T) {
	d := New()
	d.SetShowFPS(true)
	st := &status{loaded: 16, total: 18, failed: 2}
	d.SetAssets(st)

	assert.Equal(t, []string{"FPS: 60", "Assets: 16/18 (2 failed) loading"}, d.Text(60))

	// Cached until the next refresh interval.
	st.loaded = 18
	assert.Equal(t, "FPS: 60", d.Text(30)[0])
	for i := 0; i < updateInterval-2; i++ {
		d.Text(30)
	}
	assert.Equal(t, []string{"FPS: 30", "Assets: 18/18 (2 failed)"}, d.Text(30))
}

type lastLine string

func (l lastLine) Last() string { return string(l) }

func TestTextShowsLastLogLine(t *testing.T) {
	d := New()
	d.SetShowFPS(true)
	d.SetLog(lastLine("[2026-10-19 10:00:00] ERROR assets: textures/chalk.jpg: missing"))
	assert.Equal(t, []string{"FPS: 60", "[2026-10-19 10:00:00] ERROR assets: textures/chalk.jpg: missing"}, d.Text(60))

	d = New()
	d.SetShowFPS(true)
	d.SetLog(lastLine(""))
	assert.Equal(t, []string{"FPS: 60"}, d.Text(60))
}

func TestEmptyTextIsCachedUntilRefresh(t *testing.T) {
	d := New()
	assert.Empty(t, d.Text(60))

	d.SetShowFPS(true)
	assert.Empty(t, d.Text(60), "refreshes only every updateInterval frames")
	for i := 0; i < updateInterval-2; i++ {
		d.Text(60)
	}
	assert.Equal(t, []string{"FPS: 60"}, d.Text(60))
}

func TestTextShowsMem(t *testing.T) {
	d := New()
	d.SetShowMemAlloc(true)
	lines := d.Text(0)
	assert.Len(t, lines, 1)
	assert.Contains(t, lines[0], "Mem: ")
}
