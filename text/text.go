// Package text scores candidate plaintexts for English-ness and measures
// bit distances between byte strings.
package text

import (
	"math/bits"
	"strings"
)

// ScoreEnglish counts occurrences of the most frequent English letters
// (e t a o i n), either case.
func ScoreEnglish(s string) int {
	n := 0
	for _, r := range s {
		switch lowerASCII(r) {
		case 'e', 't', 'a', 'o', 'i', 'n':
			n++
		}
	}
	return n
}

// ScoreEnglishStrict is a harsher scorer: every letter counts, the most
// frequent ones twice, punctuation subtracts, and control characters
// carry a flat penalty on top. The result never drops below zero, so
// short or noisy inputs all flatten out at 0.
func ScoreEnglishStrict(s string) int {
	var frequent, letters, punct, controls int
	for _, r := range s {
		if isASCIILetter(r) {
			letters++
		}
		switch lowerASCII(r) {
		case 'e', 't', 'a', 'o', 'i', 'n':
			frequent++
		}
		if isASCIIPunct(r) {
			punct++
		}
		if isASCIIControl(r) {
			controls++
		}
	}

	score := frequent + letters - punct - (controls + 100)
	if score < 0 {
		return 0
	}
	return score
}

// HammingDistance counts the bits that differ between a and b. It panics
// when the lengths differ.
func HammingDistance(a, b []byte) int {
	if len(a) != len(b) {
		panic("text: hamming distance inputs must have the same length")
	}
	n := 0
	for i := range a {
		n += bits.OnesCount8(a[i] ^ b[i])
	}
	return n
}

// HammingDistanceStrings is HammingDistance over the raw bytes of two
// strings.
func HammingDistanceStrings(a, b string) int {
	return HammingDistance([]byte(a), []byte(b))
}

// PrintableString renders b as printable ASCII text. Control characters
// are dropped; a byte outside the ASCII range makes the whole input
// unusable and ok is false.
func PrintableString(b []byte) (s string, ok bool) {
	var sb strings.Builder
	sb.Grow(len(b))
	for _, c := range b {
		if c >= 0x80 {
			return "", false
		}
		if c < 0x20 || c == 0x7f {
			continue
		}
		sb.WriteByte(c)
	}
	return sb.String(), true
}

func lowerASCII(r rune) rune {
	if r >= 'A' && r <= 'Z' {
		return r + ('a' - 'A')
	}
	return r
}

func isASCIILetter(r rune) bool {
	return (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z')
}

func isASCIIPunct(r rune) bool {
	switch {
	case r >= '!' && r <= '/':
		return true
	case r >= ':' && r <= '@':
		return true
	case r >= '[' && r <= '`':
		return true
	case r >= '{' && r <= '~':
		return true
	}
	return false
}

func isASCIIControl(r rune) bool {
	return (r >= 0 && r < 0x20) || r == 0x7f
}
