// Package base64 converts between raw bytes and the standard base64
// alphabet with '=' padding.
package base64

import (
	"errors"
	"fmt"
	"strings"
	"unicode"
)

const alphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789+/"

const placeholder = '='

// EncodeToString encodes data three bytes at a time into four base64
// characters, padding the final group with '=' when one or two bytes are
// left over.
func EncodeToString(data []byte) string {
	var sb strings.Builder
	sb.Grow((len(data) + 2) / 3 * 4)

	for i := 0; i < len(data); i += 3 {
		rest := data[i:]
		switch {
		case len(rest) >= 3:
			b := uint32(rest[0])<<16 | uint32(rest[1])<<8 | uint32(rest[2])
			sb.WriteByte(alphabet[b>>18&0x3f])
			sb.WriteByte(alphabet[b>>12&0x3f])
			sb.WriteByte(alphabet[b>>6&0x3f])
			sb.WriteByte(alphabet[b&0x3f])
		case len(rest) == 2:
			b := uint32(rest[0])<<8 | uint32(rest[1])
			sb.WriteByte(alphabet[b>>10&0x3f])
			sb.WriteByte(alphabet[b>>4&0x3f])
			sb.WriteByte(alphabet[(b&0x0f)<<2])
			sb.WriteByte(placeholder)
		default:
			b := rest[0]
			sb.WriteByte(alphabet[b>>2])
			sb.WriteByte(alphabet[(b&0x03)<<4])
			sb.WriteByte(placeholder)
			sb.WriteByte(placeholder)
		}
	}
	return sb.String()
}

// DecodeString decodes base64 input into bytes. Whitespace anywhere in
// the input is ignored; after stripping it the length must be a multiple
// of four. Padding may only appear in the last two positions of a
// four-character group, and a padded third position cannot be followed
// by a data character.
func DecodeString(s string) ([]byte, error) {
	var (
		out  []byte
		quad [4]rune
		n    int
	)

	for _, r := range s {
		if unicode.IsSpace(r) {
			continue
		}
		quad[n] = r
		n++
		if n < 4 {
			continue
		}
		n = 0

		var err error
		out, err = decodeQuad(out, quad)
		if err != nil {
			return nil, err
		}
	}
	if n != 0 {
		return nil, errors.New("base64: invalid input length")
	}
	return out, nil
}

func decodeQuad(out []byte, quad [4]rune) ([]byte, error) {
	s1, pad, err := sextetValue(quad[0])
	if err != nil {
		return nil, err
	}
	if pad {
		return nil, errors.New("base64: invalid format, too much padding")
	}
	s2, pad, err := sextetValue(quad[1])
	if err != nil {
		return nil, err
	}
	if pad {
		return nil, errors.New("base64: invalid format, too much padding")
	}
	s3, pad3, err := sextetValue(quad[2])
	if err != nil {
		return nil, err
	}
	s4, pad4, err := sextetValue(quad[3])
	if err != nil {
		return nil, err
	}
	if pad3 && !pad4 {
		return nil, errors.New("base64: invalid padding")
	}

	out = append(out, s1<<2|s2>>4)
	if pad3 {
		return out, nil
	}
	out = append(out, s2<<4|s3>>2)
	if pad4 {
		return out, nil
	}
	return append(out, s3<<6|s4), nil
}

func sextetValue(r rune) (value byte, pad bool, err error) {
	if r == placeholder {
		return 0, true, nil
	}
	if r < 128 {
		if i := strings.IndexByte(alphabet, byte(r)); i >= 0 {
			return byte(i), false, nil
		}
	}
	return 0, false, fmt.Errorf("base64: invalid base64 character: %q", r)
}
