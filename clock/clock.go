// Package clock abstracts time so deferred callbacks can run on a virtual clock in tests.
package clock

import "time"

// Timer is a pending deferred callback
type Timer interface {
	// Stop cancels the callback; returns false if it already fired or was stopped
	Stop() bool
}

// Clock provides the current time and deferred callbacks
type Clock interface {
	Now() time.Time
	AfterFunc(d time.Duration, f func()) Timer
}

// Real is the wall clock; callbacks run on runtime timer goroutines
type Real struct{}

// NewReal creates a wall clock
func NewReal() *Real {
	return &Real{}
}

// Now returns the current time with monotonic clock reading
func (*Real) Now() time.Time {
	return time.Now()
}

// AfterFunc arms a runtime timer
func (*Real) AfterFunc(d time.Duration, f func()) Timer {
	return time.AfterFunc(d, f)
}

// Wrap returns a clock whose callbacks run through wrap
// Used to funnel timer callbacks onto a single execution context
func Wrap(c Clock, wrap func(func())) Clock {
	return &wrapped{Clock: c, wrap: wrap}
}

type wrapped struct {
	Clock
	wrap func(func())
}

func (w *wrapped) AfterFunc(d time.Duration, f func()) Timer {
	return w.Clock.AfterFunc(d, func() { w.wrap(f) })
}
