package otp

import (
	"crypto/subtle"
	"fmt"
	"math"
)

// HOTPOptions configures an HOTP generator.
type HOTPOptions struct {
	// Algorithm selects the HMAC hash function. The zero value is SHA1.
	Algorithm Algorithm
	// Digits is the code length. Required; 6 through 10 are supported.
	Digits Digits
}

// HOTP generates and verifies counter-based one-time codes (RFC 4226).
// The configuration is immutable after construction and an HOTP is safe
// for concurrent use. The secret is supplied on every call; HOTP holds no
// key material and no counter state.
type HOTP struct {
	algorithm Algorithm
	digits    Digits
}

// NewHOTP creates an HOTP generator. Options are validated strictly:
// a zero Digits is rejected, not defaulted.
func NewHOTP(opts HOTPOptions) (*HOTP, error) {
	if !opts.Algorithm.Valid() {
		return nil, fmt.Errorf("%w: unknown algorithm %d", ErrInvalidConfig, opts.Algorithm)
	}
	if !opts.Digits.Valid() {
		return nil, fmt.Errorf("%w: digits must be between 6 and 10, got %d", ErrInvalidDigits, opts.Digits)
	}
	return &HOTP{
		algorithm: opts.Algorithm,
		digits:    opts.Digits,
	}, nil
}

// Algorithm returns the configured hash algorithm.
func (h *HOTP) Algorithm() Algorithm {
	return h.algorithm
}

// Digits returns the configured code length.
func (h *HOTP) Digits() Digits {
	return h.digits
}

// Generate computes the code for counter. Generation is deterministic:
// the same secret and counter always yield the same code. The counter is
// never advanced by this package; incrementing after a successful
// authentication is the caller's responsibility (RFC 4226 section 7.2).
func (h *HOTP) Generate(secret []byte, counter uint64) (string, error) {
	sum, err := HMAC(secret, counter, h.algorithm)
	if err != nil {
		return "", err
	}
	return h.digits.Format(Truncate(sum)), nil
}

// Verify reports whether code is the code for counter. The comparison is
// constant time with respect to the expected code. A mismatch is a false
// result, never an error; errors are reserved for invalid inputs.
func (h *HOTP) Verify(code string, secret []byte, counter uint64) (bool, error) {
	expected, err := h.Generate(secret, counter)
	if err != nil {
		return false, err
	}
	if len(code) != len(expected) {
		return false, nil
	}
	return subtle.ConstantTimeCompare([]byte(code), []byte(expected)) == 1, nil
}

// VerifyWindow checks code against counters counter through counter+window
// inclusive and returns the first matching counter, implementing the
// RFC 4226 section 7.4 look-ahead resynchronization. On a match the caller
// should persist matched+1 as the next expected counter.
func (h *HOTP) VerifyWindow(code string, secret []byte, counter, window uint64) (uint64, bool, error) {
	for i := uint64(0); i <= window; i++ {
		c := counter + i
		ok, err := h.Verify(code, secret, c)
		if err != nil {
			return 0, false, err
		}
		if ok {
			return c, true, nil
		}
		if c == math.MaxUint64 {
			break
		}
	}
	return 0, false, nil
}
