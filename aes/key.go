package aes

// roundKey is one 16-byte round key, laid out column-major like state.
type roundKey [16]byte

func (rk *roundKey) col(c int) [4]byte {
	return [4]byte{rk[4*c], rk[4*c+1], rk[4*c+2], rk[4*c+3]}
}

func (rk *roundKey) setCol(c int, w [4]byte) {
	copy(rk[4*c:4*c+4], w[:])
}

// rotWord rotates a word one byte to the left: [a,b,c,d] -> [b,c,d,a].
func rotWord(w [4]byte) [4]byte {
	return [4]byte{w[1], w[2], w[3], w[0]}
}

// subWord passes each byte of a word through the forward S-box.
func subWord(w [4]byte) [4]byte {
	return [4]byte{sbox[w[0]], sbox[w[1]], sbox[w[2]], sbox[w[3]]}
}

// expandKey128 derives the 11 round keys of AES-128. Round key 0 is the
// key itself. Each later key is built column by column from the previous
// key only: column 0 mixes in the rotated, substituted last column plus
// the round constant, and columns 1..3 chain off the column just written.
func expandKey128(key [16]byte) [11]roundKey {
	var rks [11]roundKey
	rks[0] = roundKey(key)

	for i := 1; i < len(rks); i++ {
		prev := &rks[i-1]
		t := galoisAddWord(subWord(rotWord(prev.col(3))), rcon[i-1])
		col := galoisAddWord(t, prev.col(0))
		rks[i].setCol(0, col)
		for j := 1; j < 4; j++ {
			col = galoisAddWord(col, prev.col(j))
			rks[i].setCol(j, col)
		}
	}
	return rks
}
