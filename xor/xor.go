// Package xor implements XOR combination primitives and key recovery for
// single-byte and repeating-key XOR ciphers.
package xor

import "fmt"

// Matching XORs two byte slices of the same length.
func Matching(a, b []byte) ([]byte, error) {
	if len(a) != len(b) {
		return nil, fmt.Errorf("xor: length mismatch: %d != %d", len(a), len(b))
	}
	out := make([]byte, len(a))
	for i := range a {
		out[i] = a[i] ^ b[i]
	}
	return out, nil
}

// Single XORs every byte of data with key.
func Single(data []byte, key byte) []byte {
	out := make([]byte, len(data))
	for i, b := range data {
		out[i] = b ^ key
	}
	return out
}

// Repeating XORs data with key repeated cyclically. It panics on an
// empty key.
func Repeating(data, key []byte) []byte {
	if len(key) == 0 {
		panic("xor: key must not be empty")
	}
	out := make([]byte, len(data))
	for i, b := range data {
		out[i] = b ^ key[i%len(key)]
	}
	return out
}
