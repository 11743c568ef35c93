// Package hex converts between raw bytes and their hex string encoding.
package hex

import (
	"errors"
	"fmt"
	"strings"
)

const digits = "0123456789abcdef"

// EncodeToString returns the lowercase hex encoding of data, two digits
// per byte.
func EncodeToString(data []byte) string {
	var sb strings.Builder
	sb.Grow(len(data) * 2)
	for _, b := range data {
		sb.WriteByte(digits[b>>4])
		sb.WriteByte(digits[b&0x0f])
	}
	return sb.String()
}

// DecodeString parses a hex string into bytes. Both cases are accepted.
// A character outside 0-9a-fA-F is reported before an odd input length.
func DecodeString(s string) ([]byte, error) {
	vals := make([]byte, 0, len(s))
	for _, r := range s {
		v, ok := digitValue(r)
		if !ok {
			return nil, fmt.Errorf("hex: invalid hex character found: %q", r)
		}
		vals = append(vals, v)
	}
	if len(vals)%2 != 0 {
		return nil, errors.New("hex: input length not divisible by 2")
	}

	out := make([]byte, 0, len(vals)/2)
	for i := 0; i < len(vals); i += 2 {
		out = append(out, vals[i]<<4|vals[i+1])
	}
	return out, nil
}

func digitValue(r rune) (byte, bool) {
	switch {
	case r >= '0' && r <= '9':
		return byte(r - '0'), true
	case r >= 'a' && r <= 'f':
		return byte(r-'a') + 10, true
	case r >= 'A' && r <= 'F':
		return byte(r-'A') + 10, true
	}
	return 0, false
}
