package status

import (
	"sort"
	"sync"
)

// MetricMap is a named set of metric cells of type T
// The map itself is locked; the returned cells are not
type MetricMap[T any] struct {
	mu    sync.RWMutex
	cells map[string]*T
}

// NewMetricMap creates an empty MetricMap
func NewMetricMap[T any]() *MetricMap[T] {
	return &MetricMap[T]{cells: make(map[string]*T)}
}

// Get returns the cell for name, allocating it on first use
func (m *MetricMap[T]) Get(name string) *T {
	m.mu.RLock()
	c, ok := m.cells[name]
	m.mu.RUnlock()
	if ok {
		return c
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	if c, ok = m.cells[name]; !ok {
		c = new(T)
		m.cells[name] = c
	}
	return c
}

// Has reports whether name was ever requested
func (m *MetricMap[T]) Has(name string) bool {
	m.mu.RLock()
	defer m.mu.RUnlock()
	_, ok := m.cells[name]
	return ok
}

// Range visits cells in name order
func (m *MetricMap[T]) Range(fn func(name string, cell *T)) {
	m.mu.RLock()
	names := make([]string, 0, len(m.cells))
	for n := range m.cells {
		names = append(names, n)
	}
	cells := make([]*T, len(names))
	sort.Strings(names)
	for i, n := range names {
		cells[i] = m.cells[n]
	}
	m.mu.RUnlock()

	// Callback runs unlocked so it may call Get
	for i, n := range names {
		fn(n, cells[i])
	}
}

// Count returns the number of cells
func (m *MetricMap[T]) Count() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.cells)
}
