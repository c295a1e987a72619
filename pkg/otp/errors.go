package otp

import "errors"

// Common errors returned by this package.
var (
	// ErrInvalidSecret indicates the shared secret is empty or not decodable.
	ErrInvalidSecret = errors.New("otp: invalid secret")
	// ErrInvalidDigits indicates the configured code length is unsupported.
	ErrInvalidDigits = errors.New("otp: invalid digits")
	// ErrInvalidPeriod indicates the TOTP time step is not positive.
	ErrInvalidPeriod = errors.New("otp: invalid period")
	// ErrHash indicates the underlying keyed-hash computation failed.
	ErrHash = errors.New("otp: hash computation failed")
	// ErrClock indicates the time source yielded a time before the epoch.
	ErrClock = errors.New("otp: clock error")
	// ErrInvalidCode indicates the provided OTP code is invalid.
	ErrInvalidCode = errors.New("otp: invalid code")
	// ErrInvalidConfig indicates the configuration is invalid.
	ErrInvalidConfig = errors.New("otp: invalid configuration")
	// ErrNilAuthenticator indicates a nil authenticator was used.
	ErrNilAuthenticator = errors.New("otp: authenticator is nil")
)
