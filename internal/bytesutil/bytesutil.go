// Package bytesutil provides the small byte-slice primitives the mnemonic
// codec and the BLS threshold scheme build on: padding, combining and
// constant-time comparison.
package bytesutil

import "crypto/subtle"

// Combine concatenates a and b into a freshly allocated slice.
func Combine(a, b []byte) []byte {
	buf := make([]byte, 0, len(a)+len(b))
	buf = append(buf, a...)
	buf = append(buf, b...)
	return buf
}

// Pad left-pads p with zero bytes until it is length bytes long. If p is
// already at least that long, it is returned unchanged.
func Pad(p []byte, length int) []byte {
	if len(p) >= length {
		return p
	}
	padded := make([]byte, length)
	copy(padded[length-len(p):], p)
	return padded
}

// Compare reports whether a and b hold identical bytes, in constant time
// with respect to their content (the lengths themselves are not secret).
func Compare(a, b []byte) bool {
	if len(a) != len(b) {
		return false
	}
	return subtle.ConstantTimeCompare(a, b) == 1
}
