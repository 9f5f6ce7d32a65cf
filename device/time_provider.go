package device

import (
	"sync"
	"time"
)

// TimeProvider paces frames
type TimeProvider interface {
	Now() time.Time
	After(d time.Duration) <-chan time.Time
}

// RealTimeProvider reads the monotonic system clock
type RealTimeProvider struct{}

// NewRealTimeProvider creates a system clock provider
func NewRealTimeProvider() *RealTimeProvider {
	return &RealTimeProvider{}
}

func (RealTimeProvider) Now() time.Time { return time.Now() }

func (RealTimeProvider) After(d time.Duration) <-chan time.Time { return time.After(d) }

// MockTimeProvider is a manual clock for tests
// After advances the clock immediately and records the wait
type MockTimeProvider struct {
	mu          sync.Mutex
	currentTime time.Time
	waits       []time.Duration
}

// NewMockTimeProvider creates a mock clock starting at startTime
func NewMockTimeProvider(startTime time.Time) *MockTimeProvider {
	return &MockTimeProvider{currentTime: startTime}
}

func (m *MockTimeProvider) Now() time.Time {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.currentTime
}

func (m *MockTimeProvider) After(d time.Duration) <-chan time.Time {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.currentTime = m.currentTime.Add(d)
	m.waits = append(m.waits, d)
	ch := make(chan time.Time, 1)
	ch <- m.currentTime
	return ch
}

// Advance moves the clock without recording a wait
func (m *MockTimeProvider) Advance(d time.Duration) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.currentTime = m.currentTime.Add(d)
}

// Waits returns the recorded After durations
func (m *MockTimeProvider) Waits() []time.Duration {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]time.Duration(nil), m.waits...)
}
