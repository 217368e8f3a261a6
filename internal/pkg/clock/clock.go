// Package clock abstracts time.Now so purchase windows and token expiry can
// be pinned in tests.
package clock

import "time"

type Clock interface {
	Now() time.Time
}

type RealClock struct{}

func NewRealClock() Clock {
	return &RealClock{}
}

func (RealClock) Now() time.Time {
	return time.Now()
}

// MockClock reports a fixed instant until moved with Set or Add. Not safe
// for concurrent use.
type MockClock struct {
	now time.Time
}

func NewMockClock(t time.Time) *MockClock {
	return &MockClock{now: t}
}

func (c *MockClock) Now() time.Time {
	return c.now
}

func (c *MockClock) Set(t time.Time) {
	c.now = t
}

func (c *MockClock) Add(d time.Duration) {
	c.now = c.now.Add(d)
}
