package loading

import "sync"

// Cell is a single-assignment value. It starts empty, is resolved at most once by Set,
// and can be read at any time. Consumers hold the Cell before the value exists, so
// construction never waits on a load.
type Cell[T any] struct {
	mu   sync.Mutex
	val  T
	ok   bool
	done chan struct{}
}

// NewCell returns an empty cell.
func NewCell[T any]() *Cell[T] {
	return &Cell[T]{done: make(chan struct{})}
}

// Set resolves the cell with v. Only the first call wins; it returns false if the cell
// was already resolved.
func (c *Cell[T]) Set(v T) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.ok {
		return false
	}
	c.val = v
	c.ok = true
	close(c.done)
	return true
}

// Get returns the value and whether the cell has been resolved.
func (c *Cell[T]) Get() (T, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.val, c.ok
}

// Done is closed once the cell is resolved. A cell whose load failed is never closed.
func (c *Cell[T]) Done() <-chan struct{} {
	return c.done
}
