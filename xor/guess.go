package xor

import (
	"cmp"
	"slices"

	"github.com/xmdhs/go-cryptopals/text"
)

// Candidate is one possible single-byte XOR key together with the
// plaintext it produces and that plaintext's score.
type Candidate struct {
	Key   byte
	Text  string
	Score int
}

// GuessSingleKey tries all 256 single-byte keys against input and
// returns up to n candidates, best score first. Keys whose output
// contains non-ASCII bytes are skipped, so fewer than n candidates (or
// none at all) may come back.
func GuessSingleKey(input []byte, scorer func(string) int, n int) []Candidate {
	candidates := make([]Candidate, 0, 256)
	for k := range 256 {
		key := byte(k)
		plain, ok := text.PrintableString(Single(input, key))
		if !ok {
			continue
		}
		candidates = append(candidates, Candidate{
			Key:   key,
			Text:  plain,
			Score: scorer(plain),
		})
	}

	slices.SortStableFunc(candidates, func(a, b Candidate) int {
		return cmp.Compare(b.Score, a.Score)
	})
	if len(candidates) > n {
		candidates = candidates[:n]
	}
	return candidates
}
