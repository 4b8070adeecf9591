// Copyright (c) 2021 The Creativecoin developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package keyring

import (
	"bytes"
	"testing"

	"github.com/decred/dcrd/dcrec/secp256k1/v4"
)

var testPrivKeyBytes = [32]byte{
	0x0c, 0x28, 0xfc, 0xa3, 0x86, 0xc7, 0xa2, 0x27,
	0x60, 0x0b, 0x2f, 0xe5, 0x0b, 0x7c, 0xae, 0x11,
	0xec, 0x86, 0xd3, 0xbf, 0x1f, 0xbe, 0x47, 0x1b,
	0xe8, 0x98, 0x27, 0xe1, 0x9d, 0x72, 0xaa, 0x1d,
}

func TestWIFRoundTrip(t *testing.T) {
	for _, compress := range []bool{false, true} {
		priv := secp256k1.PrivKeyFromBytes(testPrivKeyBytes[:])
		wif := NewWIF(priv, 0x80, compress)

		s := wif.String()

		decoded, err := DecodeWIF(s, 0x80)
		if err != nil {
			t.Fatalf("DecodeWIF(%v): %v", compress, err)
		}
		if !EqualPrivateKey(decoded.PrivKey, priv) {
			t.Fatalf("decoded private key does not match original (compress=%v)", compress)
		}
		if decoded.CompressPubKey != compress {
			t.Fatalf("CompressPubKey = %v, want %v", decoded.CompressPubKey, compress)
		}
		if !decoded.IsForNet(0x80) {
			t.Fatal("IsForNet(0x80) = false, want true")
		}
	}
}

func TestWIFWrongNetwork(t *testing.T) {
	priv := secp256k1.PrivKeyFromBytes(testPrivKeyBytes[:])
	wif := NewWIF(priv, 0x80, true)
	s := wif.String()

	if _, err := DecodeWIF(s, 0xef); err != ErrWrongWIFNetwork {
		t.Fatalf("DecodeWIF with mismatched network = %v, want ErrWrongWIFNetwork", err)
	}
}

func TestWIFChecksumMismatch(t *testing.T) {
	priv := secp256k1.PrivKeyFromBytes(testPrivKeyBytes[:])
	wif := NewWIF(priv, 0x80, true)
	s := wif.String()

	corrupted := []byte(s)
	corrupted[len(corrupted)-1]++

	if _, err := DecodeWIF(string(corrupted), 0x80); err != ErrChecksumMismatch {
		t.Fatalf("DecodeWIF with corrupted checksum = %v, want ErrChecksumMismatch", err)
	}
}

func TestHash160PubKeyLength(t *testing.T) {
	priv := secp256k1.PrivKeyFromBytes(testPrivKeyBytes[:])
	wif := NewWIF(priv, 0x80, true)

	got := wif.Hash160PubKey()
	if len(got) != 20 {
		t.Fatalf("Hash160PubKey returned %d bytes, want 20", len(got))
	}
	if bytes.Equal(got, make([]byte, 20)) {
		t.Fatal("Hash160PubKey returned all-zero digest")
	}
}
