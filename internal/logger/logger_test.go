package logger

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLogWritesFileAndConsole(t *testing.T) {
	path := filepath.Join(t.TempDir(), "logs", "pool.txt")
	var console bytes.Buffer
	l := NewWithConsole(path, &console)
	l.now = func() time.Time { return time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC) }

	l.Infof("loaded %d textures", 17)
	l.Errorf("model %s: %v", "models/Fly.glb", os.ErrNotExist)

	lines := l.Lines()
	require.Len(t, lines, 2)
	assert.Equal(t, "[2026-01-02 03:04:05] INFO loaded 17 textures", lines[0])
	assert.True(t, strings.HasPrefix(lines[1], "[2026-01-02 03:04:05] ERROR model models/Fly.glb"))
	assert.Equal(t, lines[1], l.Last())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, lines[0]+"\n"+lines[1]+"\n", string(data))

	// A bytes.Buffer is not a terminal, so no colour codes are emitted.
	assert.Equal(t, lines[0]+"\n"+lines[1]+"\n", console.String())
}

func TestLinesIsACopy(t *testing.T) {
	l := NewWithConsole(filepath.Join(t.TempDir(), "x.txt"), nil)
	assert.Equal(t, "", l.Last())
	l.Infof("a")
	lines := l.Lines()
	lines[0] = "changed"
	assert.NotEqual(t, "changed", l.Lines()[0])
}
