package aes

// galoisAdd adds two elements of GF(2^8). Addition in a binary field is
// XOR, so every element is its own additive inverse.
func galoisAdd(a, b byte) byte {
	return a ^ b
}

// galoisAddWord adds two four-byte words component-wise.
func galoisAddWord(a, b [4]byte) [4]byte {
	return [4]byte{a[0] ^ b[0], a[1] ^ b[1], a[2] ^ b[2], a[3] ^ b[3]}
}

// galoisMult multiplies two elements of GF(2^8) by peasant multiplication,
// reducing modulo the AES polynomial x^8+x^4+x^3+x+1 (0x1b below the top bit).
func galoisMult(a, b byte) byte {
	var p byte
	for a != 0 && b != 0 {
		if b&1 != 0 {
			p ^= a
		}
		hiBit := a & 0x80
		a <<= 1
		if hiBit != 0 {
			a ^= 0x1b
		}
		b >>= 1
	}
	return p
}
