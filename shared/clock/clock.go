// Package clock supplies the current time to services so time dependent rules can be tested.
package clock

import (
	"time"

	"careerday/shared/timezone"
)

type Clock interface {
	Now() time.Time
}

// Func adapts a plain function to Clock.
type Func func() time.Time

func (f Func) Now() time.Time {
	return f()
}

// New returns the wall clock in the application timezone.
func New() Clock {
	return Func(timezone.Now)
}

// Fixed always returns t.
func Fixed(t time.Time) Clock {
	return Func(func() time.Time { return t })
}
