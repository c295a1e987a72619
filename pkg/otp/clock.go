package otp

import "time"

// Clock is the source of the current time for TOTP counter derivation.
// It is abstracted so tests can pin a fixed or sequenced time instead of
// depending on real elapsed time.
type Clock interface {
	Now() time.Time
}

// ClockFunc adapts a function to the Clock interface.
type ClockFunc func() time.Time

// Now implements the Clock interface.
func (f ClockFunc) Now() time.Time {
	return f()
}

type systemClock struct{}

func (systemClock) Now() time.Time {
	return time.Now().UTC()
}

// SystemClock returns a Clock backed by the system wall clock.
func SystemClock() Clock {
	return systemClock{}
}
