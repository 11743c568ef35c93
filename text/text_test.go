package text

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestScoreEnglish(t *testing.T) {
	assert.Equal(t, 0, ScoreEnglish(""))
	assert.Equal(t, 0, ScoreEnglish("xyz"))
	assert.Equal(t, 2, ScoreEnglish("hello"))
	assert.Equal(t, 2, ScoreEnglish("HELLO"))
	assert.Equal(t, 6, ScoreEnglish("eEtTaA"))
	assert.Equal(t, 12, ScoreEnglish("The quick brown fox jumps over the lazy dog"))
}

func TestScoreEnglishStrict(t *testing.T) {
	// the flat penalty flattens short inputs to zero
	assert.Equal(t, 0, ScoreEnglishStrict(""))
	assert.Equal(t, 0, ScoreEnglishStrict("The quick brown fox jumps over the lazy dog"))

	assert.Equal(t, 200, ScoreEnglishStrict(strings.Repeat("e", 150)))
	assert.Equal(t, 97, ScoreEnglishStrict(strings.Repeat("e", 100)+"!!!"))
	assert.Equal(t, 99, ScoreEnglishStrict(strings.Repeat("e", 100)+"\n"))
}

func TestHammingDistance(t *testing.T) {
	assert.Equal(t, 0, HammingDistance([]byte("abc"), []byte("abc")))
	assert.Equal(t, 8, HammingDistance([]byte{0x00}, []byte{0xff}))
	assert.Equal(t, 37, HammingDistanceStrings("this is a test", "wokka wokka!!!"))
}

func TestHammingDistancePanicsOnLengthMismatch(t *testing.T) {
	assert.Panics(t, func() { HammingDistance([]byte("ab"), []byte("a")) })
}

func TestPrintableString(t *testing.T) {
	got, ok := PrintableString([]byte("hello world"))
	assert.True(t, ok)
	assert.Equal(t, "hello world", got)

	got, ok = PrintableString([]byte("It's\ta test\n"))
	assert.True(t, ok)
	assert.Equal(t, "It'sa test", got)

	got, ok = PrintableString([]byte{'a', 0x7f, 'b'})
	assert.True(t, ok)
	assert.Equal(t, "ab", got)
}

func TestPrintableStringRejectsNonASCII(t *testing.T) {
	_, ok := PrintableString([]byte{0x80})
	assert.False(t, ok)

	_, ok = PrintableString([]byte("héllo"))
	assert.False(t, ok)
}
