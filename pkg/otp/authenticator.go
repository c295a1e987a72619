package otp

import (
	"context"
	"fmt"
	"strings"
)

// Type represents the OTP algorithm type.
type Type string

const (
	// TypeTOTP represents Time-based OTP (RFC 6238).
	TypeTOTP Type = "totp"
	// TypeHOTP represents Counter-based OTP (RFC 4226).
	TypeHOTP Type = "hotp"
)

// Config holds OTP authenticator configuration.
type Config struct {
	// Type specifies the OTP type (TOTP or HOTP).
	Type Type
	// Secret is the base32-encoded shared secret key (required).
	Secret string
	// Issuer is the name of the issuing organization (e.g., "MyApp").
	Issuer string
	// AccountName is the account identifier (e.g., "user@example.com").
	AccountName string
	// Digits specifies the number of digits in the OTP code (6, 7, or 8).
	// Default: 6
	Digits Digits
	// Period specifies the time step in seconds for TOTP.
	// Default: 30
	Period uint
	// Counter specifies the counter value for HOTP.
	// Default: 0
	Counter uint64
	// Algorithm specifies the hash algorithm to use.
	// Default: SHA1
	Algorithm Algorithm
	// Skew specifies the number of time periods to check before and after
	// the current time for TOTP validation (tolerance for clock skew).
	// Default: 1
	Skew uint
	// Clock supplies the current time for TOTP validation. Nil means the
	// system clock; tests supply a fixed clock here.
	Clock Clock
}

// validate checks that the configuration is valid.
func (c Config) validate() error {
	// Validate type
	if c.Type != TypeTOTP && c.Type != TypeHOTP {
		return fmt.Errorf("%w: type must be 'totp' or 'hotp'", ErrInvalidConfig)
	}

	// Validate secret
	if strings.TrimSpace(c.Secret) == "" {
		return fmt.Errorf("%w: secret must not be empty", ErrInvalidSecret)
	}
	if _, err := DecodeSecret(c.Secret); err != nil {
		return err
	}

	// Validate digits (if specified)
	if c.Digits != 0 && c.Digits != DigitsSix && c.Digits != DigitsSeven && c.Digits != DigitsEight {
		return fmt.Errorf("%w: digits must be 6, 7, or 8", ErrInvalidDigits)
	}

	// Validate algorithm
	if !c.Algorithm.Valid() {
		return fmt.Errorf("%w: algorithm must be SHA1, SHA256, or SHA512", ErrInvalidConfig)
	}

	return nil
}

// Authenticator validates OTP codes for a secret bound at construction.
// It is safe for concurrent use. For the stateless explicit-parameter
// surface use HOTP and TOTP directly.
type Authenticator struct {
	cfg    Config
	secret []byte
	hotp   *HOTP
	totp   *TOTP
}

// NewAuthenticator creates a new OTP authenticator.
// The configuration is validated and an error is returned if invalid.
func NewAuthenticator(cfg Config) (*Authenticator, error) {
	if err := cfg.validate(); err != nil {
		return nil, err
	}

	// Apply defaults
	if cfg.Digits == 0 {
		cfg.Digits = DigitsSix
	}
	if cfg.Period == 0 {
		cfg.Period = 30
	}
	if cfg.Skew == 0 {
		cfg.Skew = 1
	}

	secret, err := DecodeSecret(cfg.Secret)
	if err != nil {
		return nil, err
	}

	a := &Authenticator{cfg: cfg, secret: secret}

	if cfg.Type == TypeTOTP {
		a.totp, err = NewTOTP(TOTPOptions{
			Algorithm: cfg.Algorithm,
			Digits:    cfg.Digits,
			Period:    cfg.Period,
			Skew:      cfg.Skew,
			Clock:     cfg.Clock,
		})
	} else {
		a.hotp, err = NewHOTP(HOTPOptions{
			Algorithm: cfg.Algorithm,
			Digits:    cfg.Digits,
		})
	}
	if err != nil {
		return nil, err
	}

	return a, nil
}

// Authenticate validates an OTP code.
// For TOTP, it validates against the current time with skew tolerance.
// For HOTP, it validates against the configured counter value.
func (a *Authenticator) Authenticate(ctx context.Context, code string) error {
	if a == nil {
		return ErrNilAuthenticator
	}

	if ctx == nil {
		ctx = context.Background()
	}

	if err := ctx.Err(); err != nil {
		return err
	}

	if strings.TrimSpace(code) == "" {
		return fmt.Errorf("%w: code must not be empty", ErrInvalidCode)
	}

	if a.cfg.Type == TypeTOTP {
		valid, err := a.totp.Verify(code, a.secret)
		if err != nil {
			return fmt.Errorf("%w: validation failed: %v", ErrInvalidCode, err)
		}
		if !valid {
			return ErrInvalidCode
		}
		return nil
	}

	// HOTP validation using configured counter
	valid, err := a.hotp.Verify(code, a.secret, a.cfg.Counter)
	if err != nil {
		return fmt.Errorf("%w: validation failed: %v", ErrInvalidCode, err)
	}
	if !valid {
		return ErrInvalidCode
	}

	return nil
}

// ValidateCounter validates an HOTP code and returns the new counter value.
// This method is only valid for HOTP authenticators.
// The returned counter should be stored and used for the next validation.
func (a *Authenticator) ValidateCounter(ctx context.Context, code string, counter uint64) (uint64, error) {
	if a == nil {
		return 0, ErrNilAuthenticator
	}

	if ctx == nil {
		ctx = context.Background()
	}

	if err := ctx.Err(); err != nil {
		return 0, err
	}

	if a.cfg.Type != TypeHOTP {
		return 0, fmt.Errorf("%w: ValidateCounter is only valid for HOTP", ErrInvalidConfig)
	}

	if strings.TrimSpace(code) == "" {
		return 0, fmt.Errorf("%w: code must not be empty", ErrInvalidCode)
	}

	valid, err := a.hotp.Verify(code, a.secret, counter)
	if err != nil {
		return 0, fmt.Errorf("%w: validation failed: %v", ErrInvalidCode, err)
	}
	if !valid {
		return 0, ErrInvalidCode
	}

	// Return incremented counter
	return counter + 1, nil
}

// ResynchronizeCounter validates an HOTP code against a look-ahead window
// starting at counter, for clients whose counter has drifted ahead of the
// server (RFC 4226 section 7.4). On success it returns the counter to
// store for the next validation.
func (a *Authenticator) ResynchronizeCounter(ctx context.Context, code string, counter, window uint64) (uint64, error) {
	if a == nil {
		return 0, ErrNilAuthenticator
	}

	if ctx == nil {
		ctx = context.Background()
	}

	if err := ctx.Err(); err != nil {
		return 0, err
	}

	if a.cfg.Type != TypeHOTP {
		return 0, fmt.Errorf("%w: ResynchronizeCounter is only valid for HOTP", ErrInvalidConfig)
	}

	if strings.TrimSpace(code) == "" {
		return 0, fmt.Errorf("%w: code must not be empty", ErrInvalidCode)
	}

	matched, valid, err := a.hotp.VerifyWindow(code, a.secret, counter, window)
	if err != nil {
		return 0, fmt.Errorf("%w: validation failed: %v", ErrInvalidCode, err)
	}
	if !valid {
		return 0, ErrInvalidCode
	}

	return matched + 1, nil
}

// Generate generates an OTP code.
// For TOTP, it generates the code for the current time.
// For HOTP, a counter value must be provided.
func (a *Authenticator) Generate(counter ...uint64) (string, error) {
	if a == nil {
		return "", ErrNilAuthenticator
	}

	if a.cfg.Type == TypeTOTP {
		code, err := a.totp.Generate(a.secret)
		if err != nil {
			return "", fmt.Errorf("otp: failed to generate TOTP code: %w", err)
		}
		return code, nil
	}

	// HOTP requires counter
	if len(counter) == 0 {
		return "", fmt.Errorf("otp: counter required for HOTP generation")
	}

	code, err := a.hotp.Generate(a.secret, counter[0])
	if err != nil {
		return "", fmt.Errorf("otp: failed to generate HOTP code: %w", err)
	}

	return code, nil
}
