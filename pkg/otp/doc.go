// Package otp implements TOTP (RFC 6238) and HOTP (RFC 4226) one-time
// password generation and verification.
//
// TOTP (Time-based One-Time Password) generates codes that change every 30
// seconds, commonly used with authenticator apps like Google Authenticator,
// Authy, etc.
//
// HOTP (HMAC-based One-Time Password) generates codes based on a counter
// value, used in hardware tokens and some mobile apps.
//
// The package offers two surfaces. The HOTP and TOTP types are stateless:
// configuration (algorithm, digits, period, skew) is bound at construction
// and the secret is passed on every call, so a single instance can serve
// any number of secrets concurrently. The Authenticator type binds one
// secret at construction and adds context-aware validation, matching the
// shape of a per-user credential.
//
// # HOTP Example
//
// Counter-based codes with an explicit secret per call:
//
//	hotp, err := otp.NewHOTP(otp.HOTPOptions{
//	    Algorithm: otp.AlgorithmSHA1,
//	    Digits:    otp.DigitsSix,
//	})
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	code, err := hotp.Generate(secret, counter)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	ok, err := hotp.Verify(code, secret, counter)
//	// On success, store counter+1 as the next expected counter; the
//	// package never advances it for you.
//
// # TOTP Example
//
// Time-based codes for the current 30-second step, tolerating one step of
// clock skew in either direction:
//
//	totp, err := otp.NewTOTP(otp.TOTPOptions{
//	    Algorithm: otp.AlgorithmSHA1,
//	    Digits:    otp.DigitsSix,
//	    Period:    30,
//	    Skew:      1,
//	})
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	code, err := totp.Generate(secret)
//	ok, err := totp.Verify(code, secret)
//
// # Authenticator Example
//
// Secret bound once, validated with a context:
//
//	config := otp.Config{
//	    Type:        otp.TypeTOTP,
//	    Secret:      "JBSWY3DPEHPK3PXP",
//	    Issuer:      "MyApp",
//	    AccountName: "user@example.com",
//	    Digits:      otp.DigitsSix,
//	    Period:      30,
//	    Algorithm:   otp.AlgorithmSHA1,
//	    Skew:        1, // Allow 1 period of clock skew
//	}
//
//	auth, err := otp.NewAuthenticator(config)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	// Validate a code from the user's authenticator app
//	err = auth.Authenticate(ctx, "123456")
//	if err != nil {
//	    log.Printf("Authentication failed: %v", err)
//	}
//
// # Secret Generation
//
// Generate a cryptographically random secret:
//
//	secret, err := otp.GenerateSecret()
//	if err != nil {
//	    log.Fatal(err)
//	}
//	raw, err := otp.DecodeSecret(secret)
//	// Pass raw to HOTP/TOTP, or secret to Config.Secret
//
// # Hash Algorithms
//
// The package supports multiple hash algorithms:
//   - AlgorithmSHA1 (default, widely supported)
//   - AlgorithmSHA256 (more secure)
//   - AlgorithmSHA512 (most secure)
//
// Note that not all authenticator apps support SHA256 and SHA512.
//
// # Clocks
//
// TOTP reads the current time through the Clock interface. Production
// code uses the default system clock; tests pin a fixed time:
//
//	totp, _ := otp.NewTOTP(otp.TOTPOptions{
//	    Digits: otp.DigitsSix,
//	    Period: 30,
//	    Clock:  otp.ClockFunc(func() time.Time { return time.Unix(59, 0) }),
//	})
//
// # Thread Safety
//
// HOTP, TOTP, and Authenticator are immutable after construction and safe
// for concurrent use. Multiple goroutines can call their methods
// simultaneously.
//
// # Errors
//
// Misconfiguration (empty secret, unsupported digit count, zero period)
// fails at construction with ErrInvalidSecret, ErrInvalidDigits, or
// ErrInvalidPeriod. A code that simply does not match is reported as a
// false verification result, never as an error. The package never logs.
package otp
