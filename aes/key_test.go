package aes

import (
	"encoding/hex"
	"testing"
)

func TestRotWord(t *testing.T) {
	got := rotWord([4]byte{0x01, 0x02, 0x03, 0x04})
	if got != [4]byte{0x02, 0x03, 0x04, 0x01} {
		t.Fatalf("rotWord = %x, want 02030401", got)
	}
}

func TestSubWord(t *testing.T) {
	got := subWord([4]byte{0x01, 0x02, 0x03, 0x04})
	if got != [4]byte{0x7c, 0x77, 0x7b, 0xf2} {
		t.Fatalf("subWord = %x, want 7c777bf2", got)
	}
}

func TestRoundKeyColumns(t *testing.T) {
	var rk roundKey
	for i := range rk {
		rk[i] = byte(i)
	}

	if got := rk.col(1); got != [4]byte{4, 5, 6, 7} {
		t.Fatalf("col(1) = %v, want [4 5 6 7]", got)
	}
	rk.setCol(3, [4]byte{0xaa, 0xbb, 0xcc, 0xdd})
	if got := rk.col(3); got != [4]byte{0xaa, 0xbb, 0xcc, 0xdd} {
		t.Fatalf("col(3) after setCol = %x, want aabbccdd", got)
	}
}

// TestExpandKey128 walks the full appendix A.1 expansion of FIPS 197. The
// chained column construction means a wrong byte anywhere corrupts every
// later round key, so checking all eleven pins the schedule down completely.
func TestExpandKey128(t *testing.T) {
	key := mustHex(t, "2b7e151628aed2a6abf7158809cf4f3c")
	want := []string{
		"2b7e151628aed2a6abf7158809cf4f3c",
		"a0fafe1788542cb123a339392a6c7605",
		"f2c295f27a96b9435935807a7359f67f",
		"3d80477d4716fe3e1e237e446d7a883b",
		"ef44a541a8525b7fb671253bdb0bad00",
		"d4d1c6f87c839d87caf2b8bc11f915bc",
		"6d88a37a110b3efddbf98641ca0093fd",
		"4e54f70e5f5fc9f384a64fb24ea6dc4f",
		"ead27321b58dbad2312bf5607f8d292f",
		"ac7766f319fadc2128d12941575c006e",
		"d014f9a8c9ee2589e13f0cc8b6630ca6",
	}

	rks := expandKey128([16]byte(key))
	if len(rks) != AES128.NumRoundKeys() {
		t.Fatalf("len(round keys) = %d, want %d", len(rks), AES128.NumRoundKeys())
	}
	for i, w := range want {
		if got := hex.EncodeToString(rks[i][:]); got != w {
			t.Fatalf("round key %d = %s, want %s", i, got, w)
		}
	}
}
