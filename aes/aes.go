// Package aes implements the AES-128 block cipher from first principles,
// with an ECB batch mode and no padding. It exists to make every stage of
// FIPS 197 visible, not to replace crypto/aes.
package aes

import (
	"crypto/cipher"
	"fmt"
	"strconv"
)

// BlockSize is the AES block size in bytes, common to all variants.
const BlockSize = 16

// Variant identifies an AES key length. The three variants share the block
// size and differ in key size and round count. Only AES128 has a working
// key schedule here; the longer variants exist so a 24 or 32 byte key is
// rejected by name.
type Variant int

const (
	AES128 Variant = iota
	AES192
	AES256
)

// KeySize returns the key length in bytes for the variant.
func (v Variant) KeySize() int {
	switch v {
	case AES192:
		return 24
	case AES256:
		return 32
	default:
		return 16
	}
}

// Rounds returns the number of cipher rounds for the variant.
func (v Variant) Rounds() int {
	switch v {
	case AES192:
		return 12
	case AES256:
		return 14
	default:
		return 10
	}
}

// NumRoundKeys returns how many round keys the schedule produces, one more
// than the round count.
func (v Variant) NumRoundKeys() int {
	return v.Rounds() + 1
}

func (v Variant) String() string {
	switch v {
	case AES192:
		return "AES-192"
	case AES256:
		return "AES-256"
	default:
		return "AES-128"
	}
}

// KeySizeError reports a key length that is not a valid AES key size.
type KeySizeError int

func (k KeySizeError) Error() string {
	return "aes: invalid key size " + strconv.Itoa(int(k))
}

// UnsupportedVariantError reports a key that names a real AES variant
// whose key schedule is not implemented.
type UnsupportedVariantError Variant

func (e UnsupportedVariantError) Error() string {
	return "aes: " + Variant(e).String() + " is not supported, use a 16 byte key"
}

// Cipher is an AES-128 block cipher. It holds only the expanded round
// keys, never changes after NewCipher, and is safe for concurrent use.
type Cipher struct {
	roundKeys [11]roundKey
}

var _ cipher.Block = (*Cipher)(nil)

// NewCipher creates a cipher from a 16-byte key. A 24 or 32 byte key is a
// valid AES key for a variant this package does not implement and returns
// UnsupportedVariantError; any other length returns KeySizeError.
func NewCipher(key []byte) (*Cipher, error) {
	switch len(key) {
	case AES128.KeySize():
		return &Cipher{roundKeys: expandKey128([16]byte(key))}, nil
	case AES192.KeySize():
		return nil, UnsupportedVariantError(AES192)
	case AES256.KeySize():
		return nil, UnsupportedVariantError(AES256)
	default:
		return nil, KeySizeError(len(key))
	}
}

// BlockSize returns the AES block size, 16 bytes.
func (c *Cipher) BlockSize() int {
	return BlockSize
}

// Encrypt encrypts the first 16 bytes of src into dst: the initial round
// key addition, nine full rounds, then a final round without mixColumns.
func (c *Cipher) Encrypt(dst, src []byte) {
	if len(src) < BlockSize {
		panic("aes: input not full block")
	}
	if len(dst) < BlockSize {
		panic("aes: output not full block")
	}
	s := state(src[:BlockSize])

	s.addRoundKey(&c.roundKeys[0])
	for i := 1; i < 10; i++ {
		s.subBytes()
		s.shiftRows()
		s.mixColumns()
		s.addRoundKey(&c.roundKeys[i])
	}
	s.subBytes()
	s.shiftRows()
	s.addRoundKey(&c.roundKeys[10])

	copy(dst, s[:])
}

// Decrypt decrypts the first 16 bytes of src into dst, running the
// encryption rounds mirrored with the inverse transforms.
func (c *Cipher) Decrypt(dst, src []byte) {
	if len(src) < BlockSize {
		panic("aes: input not full block")
	}
	if len(dst) < BlockSize {
		panic("aes: output not full block")
	}
	s := state(src[:BlockSize])

	s.addRoundKey(&c.roundKeys[10])
	for i := 9; i > 0; i-- {
		s.invShiftRows()
		s.invSubBytes()
		s.addRoundKey(&c.roundKeys[i])
		s.invMixColumns()
	}
	s.invShiftRows()
	s.invSubBytes()
	s.addRoundKey(&c.roundKeys[0])

	copy(dst, s[:])
}

// EncryptECB encrypts data block by block, each block independently, with
// no chaining and no padding. The input length must be a multiple of
// BlockSize; anything else is an error, never truncated or padded.
func (c *Cipher) EncryptECB(data []byte) ([]byte, error) {
	if len(data)%BlockSize != 0 {
		return nil, fmt.Errorf("aes: plaintext length %d is not a multiple of %d", len(data), BlockSize)
	}
	out := make([]byte, len(data))
	for i := 0; i < len(data); i += BlockSize {
		c.Encrypt(out[i:i+BlockSize], data[i:i+BlockSize])
	}
	return out, nil
}

// DecryptECB decrypts data block by block. The input length must be a
// multiple of BlockSize.
func (c *Cipher) DecryptECB(data []byte) ([]byte, error) {
	if len(data)%BlockSize != 0 {
		return nil, fmt.Errorf("aes: ciphertext length %d is not a multiple of %d", len(data), BlockSize)
	}
	out := make([]byte, len(data))
	for i := 0; i < len(data); i += BlockSize {
		c.Decrypt(out[i:i+BlockSize], data[i:i+BlockSize])
	}
	return out, nil
}
