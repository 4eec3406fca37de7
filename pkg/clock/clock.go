package clock

import "time"

type Clock interface {
	Now() time.Time
}

// RealClock reads the wall clock in the configured location. A nil location
// means time.Local.
type RealClock struct {
	location *time.Location
}

func NewRealClock(location *time.Location) *RealClock {
	return &RealClock{location: location}
}

func (c *RealClock) Now() time.Time {
	if c.location == nil {
		return time.Now()
	}
	return time.Now().In(c.location)
}

type MockClock struct {
	currentTime time.Time
}

func NewMockClock(t time.Time) *MockClock {
	return &MockClock{currentTime: t}
}

func (c *MockClock) Now() time.Time {
	return c.currentTime
}

func (c *MockClock) Set(t time.Time) {
	c.currentTime = t
}

func (c *MockClock) Add(d time.Duration) {
	c.currentTime = c.currentTime.Add(d)
}
