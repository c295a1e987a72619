package otp

import (
	"encoding/binary"
	"fmt"
)

// Digits specifies the number of characters in a generated code.
type Digits int

const (
	// DigitsSix is the RFC 4226 recommended code length.
	DigitsSix Digits = 6
	// DigitsSeven generates 7-character codes.
	DigitsSeven Digits = 7
	// DigitsEight generates 8-character codes.
	DigitsEight Digits = 8
)

// Valid reports whether d is a supported code length. The truncated value
// carries 31 bits, at most 10 decimal digits, so anything longer would be
// permanent leading zeros; RFC 4226 sets 6 as the floor.
func (d Digits) Valid() bool {
	return d >= 6 && d <= 10
}

// Length returns the code length in characters.
func (d Digits) Length() int {
	return int(d)
}

// Format renders v modulo 10^d as a decimal string zero-padded to exactly
// d characters. The modulus is the final truncation step defined by
// RFC 4226, not a loss of information.
func (d Digits) Format(v int32) string {
	mod := int64(1)
	for i := 0; i < int(d); i++ {
		mod *= 10
	}
	return fmt.Sprintf("%0*d", int(d), int64(v)%mod)
}

func (d Digits) String() string {
	return fmt.Sprintf("%d", int(d))
}

// Truncate reduces a digest to a 31-bit integer per the RFC 4226 section
// 5.3 dynamic truncation rule: the low nibble of the last digest byte
// selects a 4-byte window, read big-endian with the most significant bit
// cleared to avoid signed interpretation.
func Truncate(sum []byte) int32 {
	offset := sum[len(sum)-1] & 0x0f
	return int32(binary.BigEndian.Uint32(sum[offset:offset+4]) & 0x7fffffff)
}
