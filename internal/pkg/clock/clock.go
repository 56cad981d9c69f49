// Package clock lets stores stamp records without reading the wall clock
// directly
package clock

import "time"

// Clock provides the current time
type Clock interface {
	Now() time.Time
}

// Func adapts a plain function to Clock
type Func func() time.Time

// Now calls f
func (f Func) Now() time.Time {
	return f()
}

// New returns the system clock in UTC
func New() Clock {
	return Func(func() time.Time { return time.Now().UTC() })
}

// Fixed returns a clock frozen at t
func Fixed(t time.Time) Clock {
	return Func(func() time.Time { return t })
}
