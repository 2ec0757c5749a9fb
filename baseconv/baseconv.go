// Copyright (C) 2026 Michael J. Fromberger. All Rights Reserved.

// Package baseconv converts integers to and from their binary and hexadecimal
// representations by repeated division and multiplication.
//
// Negative values are represented by the digits of their magnitude prefixed
// with "-", so ToBinary(-10) == "-1010" and ToHex(-255) == "-FF".  Zero is
// written as "0" in both bases. Hexadecimal output uses upper-case digits.
package baseconv

import (
	"errors"
	"fmt"
)

var (
	// ErrSyntax is reported when a string contains a digit that is invalid
	// for its base, or contains no digits.
	ErrSyntax = errors.New("invalid syntax")

	// ErrRange is reported when a string denotes a value that does not fit
	// in an int64.
	ErrRange = errors.New("value out of range")
)

const hexDigits = "0123456789ABCDEF"

// A Conversion records the binary and hexadecimal representations of a value.
type Conversion struct {
	Value  int64
	Binary string
	Hex    string
}

// Convert returns the conversions of each of values, in the same order.
func Convert(values []int64) []Conversion {
	out := make([]Conversion, len(values))
	for i, v := range values {
		out[i] = Conversion{Value: v, Binary: ToBinary(v), Hex: ToHex(v)}
	}
	return out
}

// ToBinary returns the base-2 representation of n.
func ToBinary(n int64) string { return format(n, 2) }

// ToHex returns the base-16 representation of n, using upper-case letters.
func ToHex(n int64) string { return format(n, 16) }

// FromBinary reconstructs the value represented by s in base 2.
func FromBinary(s string) (int64, error) { return parse(s, 2) }

// FromHex reconstructs the value represented by s in base 16. Letter digits
// may be either upper- or lower-case.
func FromHex(s string) (int64, error) { return parse(s, 16) }

func format(n int64, base uint64) string {
	if n == 0 {
		return "0"
	}
	neg, mag := magnitude(n)

	// Collect digits from least to most significant, then reverse them.
	var buf [65]byte // 64 binary digits and a sign
	i := 0
	for mag > 0 {
		buf[i] = hexDigits[mag%base]
		mag /= base
		i++
	}
	if neg {
		buf[i] = '-'
		i++
	}
	digits := buf[:i]
	for lo, hi := 0, len(digits)-1; lo < hi; lo, hi = lo+1, hi-1 {
		digits[lo], digits[hi] = digits[hi], digits[lo]
	}
	return string(digits)
}

// magnitude returns the sign and absolute value of n. The magnitude is
// unsigned so that the most negative int64 has a representable magnitude.
func magnitude(n int64) (bool, uint64) {
	if n < 0 {
		return true, uint64(-(n + 1)) + 1
	}
	return false, uint64(n)
}

func parse(s string, base uint64) (int64, error) {
	text := s
	neg := len(s) != 0 && s[0] == '-'
	if neg {
		s = s[1:]
	}
	if s == "" {
		return 0, fmt.Errorf("parse %q: %w", text, ErrSyntax)
	}

	const maxMag = 1 << 63 // magnitude of the most negative int64
	var mag uint64
	for i := 0; i < len(s); i++ {
		d, ok := digitValue(s[i])
		if !ok || d >= base {
			return 0, fmt.Errorf("parse %q: invalid digit %q: %w", text, s[i], ErrSyntax)
		}
		if mag > (maxMag-d)/base {
			return 0, fmt.Errorf("parse %q: %w", text, ErrRange)
		}
		mag = mag*base + d
	}
	switch {
	case neg && mag != 0:
		return -int64(mag-1) - 1, nil
	case mag > maxMag-1:
		return 0, fmt.Errorf("parse %q: %w", text, ErrRange)
	}
	return int64(mag), nil
}

func digitValue(ch byte) (uint64, bool) {
	switch {
	case '0' <= ch && ch <= '9':
		return uint64(ch - '0'), true
	case 'A' <= ch && ch <= 'F':
		return uint64(ch-'A') + 10, true
	case 'a' <= ch && ch <= 'f':
		return uint64(ch-'a') + 10, true
	}
	return 0, false
}
