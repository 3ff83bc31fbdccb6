package rack

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStandardEnumeration(t *testing.T) {
	slots := Layout(Standard())
	require.Len(t, slots, 15)

	rowSizes := map[int]int{}
	for i, s := range slots {
		assert.Equal(t, i, s.Index, "indices are a strict enumeration")
		rowSizes[s.Row]++
		if i > 0 {
			prev := slots[i-1]
			rowMajor := s.Row > prev.Row || (s.Row == prev.Row && s.Col == prev.Col+1)
			assert.True(t, rowMajor, "slot %d follows %d in row-major order", i, i-1)
		}
	}
	assert.Equal(t, map[int]int{0: 1, 1: 2, 2: 3, 3: 4, 4: 5}, rowSizes)
}

func TestFirstSlotCoordinates(t *testing.T) {
	s := Layout(Standard())[0]
	assert.InDelta(t, -1.5, s.RawX, 1e-6)
	assert.InDelta(t, 0.5, s.RawZ, 1e-6)
	assert.InDelta(t, -1.8, s.X, 1e-6)
	// z = -rawX - 1.5 = 1.5 - 1.5.
	assert.InDelta(t, 0, s.Z, 1e-6)
}

func TestLastSlotCoordinates(t *testing.T) {
	s := Layout(Standard())[14]
	assert.Equal(t, 4, s.Row)
	assert.Equal(t, 4, s.Col)
	// offsetX(4) = -1.5 - 4*0.3 = -2.7; rawX = -2.7 + 4*0.6 = -0.3; rawZ = 0.5 + 2.4 = 2.9.
	assert.InDelta(t, -0.3, s.RawX, 1e-5)
	assert.InDelta(t, 2.9, s.RawZ, 1e-5)
	assert.InDelta(t, -4.2, s.X, 1e-5)
	assert.InDelta(t, -1.2, s.Z, 1e-5)
}

func TestStopsAtCountWithExtraRows(t *testing.T) {
	p := Standard()
	p.Rows = 9
	slots := Layout(p)
	require.Len(t, slots, 15)
	assert.Equal(t, 4, slots[14].Row)

	p.Count = 12
	slots = Layout(p)
	require.Len(t, slots, 12)
	assert.Equal(t, 4, slots[11].Row)
	assert.Equal(t, 1, slots[11].Col)
}

func TestFewerRowsThanCount(t *testing.T) {
	p := Standard()
	p.Rows = 3
	assert.Len(t, Layout(p), 6)
	p.Rows = 0
	assert.Empty(t, Layout(p))
}

func TestBallTextures(t *testing.T) {
	names := BallTextures(15)
	require.Len(t, names, 15)
	assert.Equal(t, "ball-1.jpg", names[0])
	assert.Equal(t, "ball-15.jpg", names[14])
}
