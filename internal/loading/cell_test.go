package loading

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCellSingleAssignment(t *testing.T) {
	c := NewCell[string]()
	_, ok := c.Get()
	assert.False(t, ok)

	select {
	case <-c.Done():
		t.Fatal("Done closed before Set")
	default:
	}

	assert.True(t, c.Set("felt"))
	assert.False(t, c.Set("chalk"))

	v, ok := c.Get()
	assert.True(t, ok)
	assert.Equal(t, "felt", v)

	select {
	case <-c.Done():
	default:
		t.Fatal("Done not closed after Set")
	}
}
