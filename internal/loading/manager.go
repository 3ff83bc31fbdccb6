package loading

import "sync"

// Manager tracks outstanding asset requests and reports aggregate progress.
// Every requested item calls ItemStart once and then exactly one of ItemEnd or ItemError.
// OnProgress runs after each completion with the running totals; OnLoad runs once, the
// first time every started item has completed. Callbacks run after the manager's lock
// is released, so they may query the manager.
type Manager struct {
	mu         sync.Mutex
	loaded     int
	total      int
	failed     int
	loadFired  bool
	onProgress func(url string, loaded, total int)
	onLoad     func()
	onError    func(url string)
}

// NewManager returns a manager with no items and no callbacks.
func NewManager() *Manager {
	return &Manager{}
}

// OnProgress sets the callback run after each item ends (successfully or not).
func (m *Manager) OnProgress(fn func(url string, loaded, total int)) {
	m.mu.Lock()
	m.onProgress = fn
	m.mu.Unlock()
}

// OnLoad sets the callback run once all started items have ended.
func (m *Manager) OnLoad(fn func()) {
	m.mu.Lock()
	m.onLoad = fn
	m.mu.Unlock()
}

// OnError sets the callback run when an item fails, before its progress is reported.
func (m *Manager) OnError(fn func(url string)) {
	m.mu.Lock()
	m.onError = fn
	m.mu.Unlock()
}

// ItemStart registers a new outstanding item.
func (m *Manager) ItemStart(url string) {
	m.mu.Lock()
	m.total++
	m.mu.Unlock()
}

// ItemEnd marks one outstanding item as completed. Calls with nothing outstanding are
// ignored.
func (m *Manager) ItemEnd(url string) {
	m.mu.Lock()
	n, ok := m.endLocked()
	m.mu.Unlock()
	if ok {
		n.run(url)
	}
}

// ItemError marks one outstanding item as failed. A failed item is no longer outstanding,
// so it advances progress like a successful one. Calls with nothing outstanding are
// ignored and not counted.
func (m *Manager) ItemError(url string) {
	m.mu.Lock()
	n, ok := m.endLocked()
	if ok {
		m.failed++
		n.onError = m.onError
	}
	m.mu.Unlock()
	if ok {
		n.run(url)
	}
}

// notice is a snapshot of one completion, taken under the lock and delivered after it.
type notice struct {
	loaded, total int
	onError       func(url string)
	onProgress    func(url string, loaded, total int)
	onLoad        func()
}

func (n notice) run(url string) {
	if n.onError != nil {
		n.onError(url)
	}
	if n.onProgress != nil {
		n.onProgress(url, n.loaded, n.total)
	}
	if n.onLoad != nil {
		n.onLoad()
	}
}

func (m *Manager) endLocked() (notice, bool) {
	if m.loaded >= m.total {
		return notice{}, false
	}
	m.loaded++
	n := notice{loaded: m.loaded, total: m.total, onProgress: m.onProgress}
	if m.loaded == m.total && !m.loadFired {
		m.loadFired = true
		n.onLoad = m.onLoad
	}
	return n, true
}

// Progress returns the number of completed and requested items.
func (m *Manager) Progress() (loaded, total int) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.loaded, m.total
}

// Fraction returns loaded/total, or 1 when nothing was requested.
func (m *Manager) Fraction() float64 {
	loaded, total := m.Progress()
	if total == 0 {
		return 1
	}
	return float64(loaded) / float64(total)
}

// Failed returns the number of items that ended with ItemError.
func (m *Manager) Failed() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.failed
}

// Outstanding reports whether any started item has not yet ended.
func (m *Manager) Outstanding() bool {
	loaded, total := m.Progress()
	return loaded < total
}
