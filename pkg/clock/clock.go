// Package clock abstracts "now" so every time-dependent computation receives
// its evaluation instant instead of reading the environment. Services take a
// Clock; tests substitute Fixed.
package clock

import "time"

// Clock supplies the current instant.
type Clock interface {
	Now() time.Time
}

type systemClock struct{}

func (systemClock) Now() time.Time { return time.Now().UTC() }

// System returns the wall clock, reading in UTC.
func System() Clock { return systemClock{} }

type fixedClock struct{ t time.Time }

func (f fixedClock) Now() time.Time { return f.t }

// Fixed returns a clock frozen at t. Intended for tests.
func Fixed(t time.Time) Clock { return fixedClock{t: t} }
