// Package clock abstracts time so domain logic stays testable.
package clock

import "time"

// Clock provides the current time.
type Clock interface {
	Now() time.Time
}

// RealClock reads the system time.
type RealClock struct{}

// NewRealClock creates a RealClock.
func NewRealClock() Clock {
	return &RealClock{}
}

// Now returns the current system time.
func (c *RealClock) Now() time.Time {
	return time.Now()
}

// MockClock is a controllable clock for tests.
type MockClock struct {
	current time.Time
}

// NewMockClock creates a MockClock fixed at startTime.
func NewMockClock(startTime time.Time) *MockClock {
	return &MockClock{current: startTime}
}

// Now returns the mock time.
func (m *MockClock) Now() time.Time {
	return m.current
}

// Set moves the mock time to t.
func (m *MockClock) Set(t time.Time) {
	m.current = t
}

// Advance moves the mock time forward by d.
func (m *MockClock) Advance(d time.Duration) {
	m.current = m.current.Add(d)
}
