package aes

// state is the 4x4 AES block matrix in column-major order: linear index
// 4*c+r holds the cell at row r, column c, so a 16-byte block copies
// straight in and out with no reshuffling.
type state [16]byte

func (s *state) subBytes() {
	for i := range s {
		s[i] = sbox[s[i]]
	}
}

func (s *state) invSubBytes() {
	for i := range s {
		s[i] = invSbox[s[i]]
	}
}

// shiftRows rotates row r left by r positions. Row 0 stays put; row r
// occupies indices r, r+4, r+8, r+12.
func (s *state) shiftRows() {
	s[1], s[5], s[9], s[13] = s[5], s[9], s[13], s[1]
	s[2], s[6], s[10], s[14] = s[10], s[14], s[2], s[6]
	s[3], s[7], s[11], s[15] = s[15], s[3], s[7], s[11]
}

// invShiftRows rotates row r right by r positions.
func (s *state) invShiftRows() {
	s[1], s[5], s[9], s[13] = s[13], s[1], s[5], s[9]
	s[2], s[6], s[10], s[14] = s[10], s[14], s[2], s[6]
	s[3], s[7], s[11], s[15] = s[7], s[11], s[15], s[3]
}

// mixColumns multiplies each column by the MDS matrix
// (02 03 01 01 / 01 02 03 01 / 01 01 02 03 / 03 01 01 02).
func (s *state) mixColumns() {
	for c := 0; c < 16; c += 4 {
		a0, a1, a2, a3 := s[c], s[c+1], s[c+2], s[c+3]
		s[c] = galoisMult(0x02, a0) ^ galoisMult(0x03, a1) ^ a2 ^ a3
		s[c+1] = a0 ^ galoisMult(0x02, a1) ^ galoisMult(0x03, a2) ^ a3
		s[c+2] = a0 ^ a1 ^ galoisMult(0x02, a2) ^ galoisMult(0x03, a3)
		s[c+3] = galoisMult(0x03, a0) ^ a1 ^ a2 ^ galoisMult(0x02, a3)
	}
}

// invMixColumns multiplies each column by the inverse MDS matrix
// (0e 0b 0d 09 and its rotations).
func (s *state) invMixColumns() {
	for c := 0; c < 16; c += 4 {
		a0, a1, a2, a3 := s[c], s[c+1], s[c+2], s[c+3]
		s[c] = galoisMult(0x0e, a0) ^ galoisMult(0x0b, a1) ^ galoisMult(0x0d, a2) ^ galoisMult(0x09, a3)
		s[c+1] = galoisMult(0x09, a0) ^ galoisMult(0x0e, a1) ^ galoisMult(0x0b, a2) ^ galoisMult(0x0d, a3)
		s[c+2] = galoisMult(0x0d, a0) ^ galoisMult(0x09, a1) ^ galoisMult(0x0e, a2) ^ galoisMult(0x0b, a3)
		s[c+3] = galoisMult(0x0b, a0) ^ galoisMult(0x0d, a1) ^ galoisMult(0x09, a2) ^ galoisMult(0x0e, a3)
	}
}

// addRoundKey XORs the round key into the state. Applying the same key
// twice restores the state, so it is its own inverse.
func (s *state) addRoundKey(rk *roundKey) {
	for i := range s {
		s[i] = galoisAdd(s[i], rk[i])
	}
}
