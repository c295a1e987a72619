package otp

import (
	"fmt"
	"math"
	"time"
)

// TOTPOptions configures a TOTP generator.
type TOTPOptions struct {
	// Algorithm selects the HMAC hash function. The zero value is SHA1.
	Algorithm Algorithm
	// Digits is the code length. Required; 6 through 10 are supported.
	Digits Digits
	// Period is the time step in seconds. Required.
	Period uint
	// Skew is the number of adjacent time steps accepted during
	// verification, applied symmetrically before and after the current
	// step. Zero accepts only the current step.
	Skew uint
	// Epoch is the T0 reference from which time steps are counted.
	// The zero value means the Unix epoch.
	Epoch time.Time
	// Clock supplies the current time. Nil means the system clock.
	Clock Clock
}

// TOTP generates and verifies time-based one-time codes (RFC 6238).
// It derives a counter from the configured clock and delegates the code
// computation to the HOTP pipeline. The configuration is immutable after
// construction and a TOTP is safe for concurrent use.
type TOTP struct {
	hotp   *HOTP
	period uint64
	skew   uint64
	epoch  time.Time
	clock  Clock
}

// NewTOTP creates a TOTP generator. Options are validated strictly:
// zero Digits or Period are rejected, not defaulted.
func NewTOTP(opts TOTPOptions) (*TOTP, error) {
	if opts.Period == 0 {
		return nil, fmt.Errorf("%w: period must be positive", ErrInvalidPeriod)
	}
	hotp, err := NewHOTP(HOTPOptions{
		Algorithm: opts.Algorithm,
		Digits:    opts.Digits,
	})
	if err != nil {
		return nil, err
	}

	epoch := opts.Epoch
	if epoch.IsZero() {
		epoch = time.Unix(0, 0)
	}
	clock := opts.Clock
	if clock == nil {
		clock = SystemClock()
	}

	return &TOTP{
		hotp:   hotp,
		period: uint64(opts.Period),
		skew:   uint64(opts.Skew),
		epoch:  epoch,
		clock:  clock,
	}, nil
}

// Algorithm returns the configured hash algorithm.
func (t *TOTP) Algorithm() Algorithm {
	return t.hotp.algorithm
}

// Digits returns the configured code length.
func (t *TOTP) Digits() Digits {
	return t.hotp.digits
}

// Period returns the configured time step in seconds.
func (t *TOTP) Period() uint {
	return uint(t.period)
}

// counterAt derives the number of whole time steps between the epoch and at.
func (t *TOTP) counterAt(at time.Time) (uint64, error) {
	elapsed := at.Unix() - t.epoch.Unix()
	if elapsed < 0 {
		return 0, fmt.Errorf("%w: time %d precedes the epoch %d", ErrClock, at.Unix(), t.epoch.Unix())
	}
	return uint64(elapsed) / t.period, nil
}

// Generate computes the code for the current time step.
func (t *TOTP) Generate(secret []byte) (string, error) {
	return t.GenerateAt(secret, t.clock.Now())
}

// GenerateAt computes the code for the time step containing at.
func (t *TOTP) GenerateAt(secret []byte, at time.Time) (string, error) {
	counter, err := t.counterAt(at)
	if err != nil {
		return "", err
	}
	return t.hotp.Generate(secret, counter)
}

// Verify checks code against the current time step and Skew adjacent
// steps on either side, nearest step first.
func (t *TOTP) Verify(code string, secret []byte) (bool, error) {
	return t.VerifyAt(code, secret, t.clock.Now())
}

// VerifyAt checks code against the time step containing at and Skew
// adjacent steps on either side, nearest step first, returning true on
// the first match. A code outside the window is a false result, never an
// error.
func (t *TOTP) VerifyAt(code string, secret []byte, at time.Time) (bool, error) {
	counter, err := t.counterAt(at)
	if err != nil {
		return false, err
	}
	for _, c := range t.window(counter) {
		ok, err := t.hotp.Verify(code, secret, c)
		if err != nil {
			return false, err
		}
		if ok {
			return true, nil
		}
	}
	return false, nil
}

// window lists the counters to try, in increasing distance from c. Both
// bounds are tied to the single configured Skew value; forward and
// backward tolerance cannot be set independently.
func (t *TOTP) window(c uint64) []uint64 {
	counters := make([]uint64, 0, 2*t.skew+1)
	counters = append(counters, c)
	for d := uint64(1); d <= t.skew; d++ {
		if c >= d {
			counters = append(counters, c-d)
		}
		if c <= math.MaxUint64-d {
			counters = append(counters, c+d)
		}
	}
	return counters
}
