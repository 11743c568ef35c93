package hex

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEncodeToString(t *testing.T) {
	tests := []struct {
		name  string
		input []byte
		want  string
	}{
		{name: "empty", input: nil, want: ""},
		{name: "single byte", input: []byte{0x0f}, want: "0f"},
		{name: "all nibbles", input: []byte{0x01, 0x23, 0x45, 0x67, 0x89, 0xab, 0xcd, 0xef}, want: "0123456789abcdef"},
		{name: "text", input: []byte("ICE"), want: "494345"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, EncodeToString(tt.input))
		})
	}
}

func TestDecodeString(t *testing.T) {
	got, err := DecodeString("49276d")
	require.NoError(t, err)
	assert.Equal(t, []byte{0x49, 0x27, 0x6d}, got)
}

func TestDecodeStringMixedCase(t *testing.T) {
	got, err := DecodeString("DeadBEEF")
	require.NoError(t, err)
	assert.Equal(t, []byte{0xde, 0xad, 0xbe, 0xef}, got)
}

func TestDecodeStringEmpty(t *testing.T) {
	got, err := DecodeString("")
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestDecodeStringErrors(t *testing.T) {
	_, err := DecodeString("0g")
	assert.ErrorContains(t, err, "invalid hex character")

	_, err = DecodeString("abc")
	assert.ErrorContains(t, err, "not divisible by 2")

	// a bad character is reported even when the length is odd too
	_, err = DecodeString("abz")
	assert.ErrorContains(t, err, "invalid hex character")
}

func TestEncodeDecodeRoundTrip(t *testing.T) {
	data := []byte("Burning 'em, if you ain't quick and nimble")
	got, err := DecodeString(EncodeToString(data))
	require.NoError(t, err)
	assert.Equal(t, data, got)
}
