// Copyright (c) 2018 The ExchangeCoin team
// Copyright (c) 2013-2016 The btcsuite developers
// Copyright (c) 2015-2021 The Decred developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package keyring

import (
	"crypto/sha256"

	"golang.org/x/crypto/ripemd160"
)

// Hash160 calculates the 160-bit RIPEMD160(SHA256(b)) digest used to derive
// pay-to-pubkey-hash addresses from a serialized public key.
func Hash160(b []byte) []byte {
	sha := sha256.Sum256(b)

	r := ripemd160.New()
	r.Write(sha[:])
	return r.Sum(nil)
}

// Hash160PubKey is a convenience wrapper computing Hash160 over the WIF's
// associated serialized public key.
func (w *WIF) Hash160PubKey() []byte {
	return Hash160(w.SerializePubKey())
}
