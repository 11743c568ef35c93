package xor

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/xmdhs/go-cryptopals/text"
)

func TestRankKeySizesFindsPeriod(t *testing.T) {
	// plaintext period 8 and key length 3 give the data period 24, so
	// chunks of size 24 are identical and score a distance of zero
	data := Repeating([]byte(strings.Repeat("abcdefgh", 50)), []byte("KEY"))

	got, err := RankKeySizes(data, 2, 40, 5)
	require.NoError(t, err)
	require.Len(t, got, 39)

	assert.Equal(t, 24, got[0].KeySize)
	assert.Equal(t, 0.0, got[0].Distance)

	for i := 1; i < len(got); i++ {
		assert.LessOrEqual(t, got[i-1].Distance, got[i].Distance)
	}
}

func TestRankKeySizesErrors(t *testing.T) {
	_, err := RankKeySizes(make([]byte, 100), 2, 50, 5)
	assert.ErrorContains(t, err, "too short")

	_, err = RankKeySizes(make([]byte, 100), 10, 2, 5)
	assert.ErrorContains(t, err, "invalid key size range")

	_, err = RankKeySizes(make([]byte, 100), 2, 10, 0)
	assert.ErrorContains(t, err, "chunk pair")
}

func TestTranspose(t *testing.T) {
	got := Transpose([]byte{1, 2, 3, 4, 5, 6, 7}, 3)
	assert.Equal(t, [][]byte{{1, 4, 7}, {2, 5}, {3, 6}}, got)
}

func TestRecoverKey(t *testing.T) {
	plain := strings.Repeat("now that the party is jumping with the bass kicked in and the vegas are pumped ", 6)
	data := Repeating([]byte(plain), []byte("ICE"))

	key, err := RecoverKey(data, 3, text.ScoreEnglish)
	require.NoError(t, err)
	assert.Equal(t, []byte("ICE"), key)

	assert.Equal(t, plain, string(Repeating(data, key)))
}

func TestRecoverKeyNoCandidates(t *testing.T) {
	_, err := RecoverKey([]byte{0x00, 0x00, 0x80, 0x80}, 2, text.ScoreEnglish)
	assert.ErrorContains(t, err, "no printable candidate")
}
