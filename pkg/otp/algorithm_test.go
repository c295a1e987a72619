package otp

import (
	"encoding/hex"
	"errors"
	"testing"
)

// TestHMACDigestSize tests that each algorithm produces its fixed digest length
func TestHMACDigestSize(t *testing.T) {
	secret := []byte("12345678901234567890")

	tests := []struct {
		name      string
		algorithm Algorithm
		wantSize  int
	}{
		{"SHA1", AlgorithmSHA1, 20},
		{"SHA256", AlgorithmSHA256, 32},
		{"SHA512", AlgorithmSHA512, 64},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sum, err := HMAC(secret, 0, tt.algorithm)
			if err != nil {
				t.Fatalf("HMAC failed: %v", err)
			}
			if len(sum) != tt.wantSize {
				t.Errorf("expected %d byte digest, got %d", tt.wantSize, len(sum))
			}
			if tt.algorithm.Size() != tt.wantSize {
				t.Errorf("Size() = %d, want %d", tt.algorithm.Size(), tt.wantSize)
			}
		})
	}
}

// TestHMACKnownDigest tests the counter-0 digest from RFC 4226 Appendix D
func TestHMACKnownDigest(t *testing.T) {
	secret := []byte("12345678901234567890")

	sum, err := HMAC(secret, 0, AlgorithmSHA1)
	if err != nil {
		t.Fatalf("HMAC failed: %v", err)
	}

	want := "cc93cf18508d94934c64b65d8ba7667fb7cde4b0"
	if got := hex.EncodeToString(sum); got != want {
		t.Errorf("digest = %s, want %s", got, want)
	}
}

// TestHMACEmptySecret tests that an empty secret is rejected
func TestHMACEmptySecret(t *testing.T) {
	for _, secret := range [][]byte{nil, {}} {
		if _, err := HMAC(secret, 0, AlgorithmSHA1); !errors.Is(err, ErrInvalidSecret) {
			t.Errorf("expected ErrInvalidSecret for secret %v, got %v", secret, err)
		}
	}
}

// TestAlgorithmValid tests algorithm range checking
func TestAlgorithmValid(t *testing.T) {
	for _, a := range []Algorithm{AlgorithmSHA1, AlgorithmSHA256, AlgorithmSHA512} {
		if !a.Valid() {
			t.Errorf("%s should be valid", a)
		}
	}
	for _, a := range []Algorithm{-1, 3, 99} {
		if a.Valid() {
			t.Errorf("Algorithm(%d) should be invalid", a)
		}
	}
}

// TestAlgorithmString tests the canonical algorithm names
func TestAlgorithmString(t *testing.T) {
	tests := []struct {
		algorithm Algorithm
		want      string
	}{
		{AlgorithmSHA1, "SHA1"},
		{AlgorithmSHA256, "SHA256"},
		{AlgorithmSHA512, "SHA512"},
	}
	for _, tt := range tests {
		if got := tt.algorithm.String(); got != tt.want {
			t.Errorf("String() = %s, want %s", got, tt.want)
		}
	}
}
