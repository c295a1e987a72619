package otp

import (
	"crypto/rand"
	"encoding/base32"
	"fmt"
	"strings"
)

// GenerateSecret generates a cryptographically random secret key.
// The secret is returned as a base32-encoded string without padding,
// the form expected by authenticator apps.
func GenerateSecret() (string, error) {
	// 20 bytes (160 bits) of random data, the RFC 4226 recommended minimum
	secret := make([]byte, 20)
	if _, err := rand.Read(secret); err != nil {
		return "", fmt.Errorf("otp: failed to generate random secret: %w", err)
	}

	encoded := base32.StdEncoding.WithPadding(base32.NoPadding).EncodeToString(secret)
	return encoded, nil
}

// DecodeSecret decodes a base32-encoded secret as produced by
// GenerateSecret or issued during a provisioning flow. Surrounding
// whitespace, lowercase input, and missing padding are tolerated.
func DecodeSecret(secret string) ([]byte, error) {
	s := strings.ToUpper(strings.TrimSpace(secret))
	if n := len(s) % 8; n != 0 {
		s += strings.Repeat("=", 8-n)
	}

	raw, err := base32.StdEncoding.DecodeString(s)
	if err != nil {
		return nil, fmt.Errorf("%w: secret must be valid base32: %v", ErrInvalidSecret, err)
	}
	if len(raw) == 0 {
		return nil, fmt.Errorf("%w: secret must not be empty", ErrInvalidSecret)
	}
	return raw, nil
}
