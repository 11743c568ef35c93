package xor

import (
	"cmp"
	"fmt"
	"slices"

	"github.com/xmdhs/go-cryptopals/text"
)

// KeySizeCandidate pairs a candidate repeating-key size with its
// normalized hamming distance. Lower distances mean more likely sizes.
type KeySizeCandidate struct {
	KeySize  int
	Distance float64
}

// RankKeySizes scores every key size in [minSize, maxSize] by summing
// the bit distance between pairs adjacent chunks of that size and
// dividing by the size, then returns all sizes sorted most promising
// first. data must hold at least (pairs+2)*maxSize bytes.
func RankKeySizes(data []byte, minSize, maxSize, pairs int) ([]KeySizeCandidate, error) {
	if minSize < 1 || maxSize < minSize {
		return nil, fmt.Errorf("xor: invalid key size range %d..%d", minSize, maxSize)
	}
	if pairs < 1 {
		return nil, fmt.Errorf("xor: need at least one chunk pair, got %d", pairs)
	}
	if need := (pairs + 2) * maxSize; len(data) < need {
		return nil, fmt.Errorf("xor: input too short for analysis: have %d bytes, need %d", len(data), need)
	}

	candidates := make([]KeySizeCandidate, 0, maxSize-minSize+1)
	for size := minSize; size <= maxSize; size++ {
		var distance float64
		for i := range pairs {
			a := data[i*size : (i+1)*size]
			b := data[(i+1)*size : (i+2)*size]
			distance += float64(text.HammingDistance(a, b))
		}
		distance /= float64(size)

		candidates = append(candidates, KeySizeCandidate{KeySize: size, Distance: distance})
	}

	slices.SortStableFunc(candidates, func(a, b KeySizeCandidate) int {
		return cmp.Compare(a.Distance, b.Distance)
	})
	return candidates, nil
}

// Transpose regroups data into keySize stripes, where stripe i holds
// every byte at position i modulo keySize.
func Transpose(data []byte, keySize int) [][]byte {
	stripes := make([][]byte, keySize)
	for i, b := range data {
		stripes[i%keySize] = append(stripes[i%keySize], b)
	}
	return stripes
}

// RecoverKey guesses a repeating key of the given size by solving each
// transposed stripe as a single-byte XOR. It errors when a stripe
// yields no printable candidate at all.
func RecoverKey(data []byte, keySize int, scorer func(string) int) ([]byte, error) {
	key := make([]byte, 0, keySize)
	for i, stripe := range Transpose(data, keySize) {
		best := GuessSingleKey(stripe, scorer, 1)
		if len(best) == 0 {
			return nil, fmt.Errorf("xor: no printable candidate for stripe %d of key size %d", i, keySize)
		}
		key = append(key, best[0].Key)
	}
	return key, nil
}
