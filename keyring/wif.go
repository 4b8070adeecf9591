// Copyright (c) 2018 The ExchangeCoin team
// Copyright (c) 2013-2016 The btcsuite developers
// Copyright (c) 2015-2021 The Decred developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package keyring implements Wallet Import Format (WIF) encoding and
// decoding of secp256k1 private keys, and the hash160 address digest used
// to derive pay-to-pubkey-hash addresses from them.
package keyring

import (
	"crypto/subtle"
	"errors"

	"github.com/EXCCoin/base58"
	"github.com/decred/dcrd/dcrec/secp256k1/v4"
)

const (
	// compressMagicLen is the number of bytes of the optional trailing
	// "this key corresponds to a compressed public key" marker.
	compressMagicLen = 1

	// privKeyBytesLen is the number of bytes in a serialized secp256k1
	// private key.
	privKeyBytesLen = 32

	// compressMagic is appended to the private key bytes of a WIF
	// encoding a compressed public key.
	compressMagic byte = 0x01
)

var (
	// ErrMalformedPrivateKey indicates a WIF string does not decode to a
	// value of the length a serialized private key (optionally plus the
	// compressed-public-key marker) should have.
	ErrMalformedPrivateKey = errors.New("keyring: malformed private key")

	// ErrChecksumMismatch indicates a WIF string's embedded checksum does
	// not match the checksum computed over its payload.
	ErrChecksumMismatch = errors.New("keyring: checksum mismatch")

	// ErrWrongWIFNetwork indicates a WIF string's network identifier byte
	// does not match the network it was decoded against.
	ErrWrongWIFNetwork = errors.New("keyring: WIF network ID does not match")
)

// WIF contains the individual components described by the Wallet Import
// Format (WIF) for encoding a secp256k1 private key.
type WIF struct {
	// PrivKey is the private key being encoded.
	PrivKey *secp256k1.PrivateKey

	// CompressPubKey specifies whether the encoded private key
	// corresponds to a compressed public key, per the convention
	// established by the reference client.
	CompressPubKey bool

	// netID is the network identifier byte prefix used for base58check
	// encoding.
	netID byte
}

// NewWIF creates a new WIF structure.
func NewWIF(privKey *secp256k1.PrivateKey, netID byte, compress bool) *WIF {
	return &WIF{
		PrivKey:        privKey,
		CompressPubKey: compress,
		netID:          netID,
	}
}

// String creates the base58check-encoded string representation of the WIF.
func (w *WIF) String() string {
	payload := make([]byte, 0, privKeyBytesLen+compressMagicLen)
	payload = append(payload, w.PrivKey.Serialize()...)
	if w.CompressPubKey {
		payload = append(payload, compressMagic)
	}
	return base58.CheckEncode(payload, w.netID)
}

// SerializePubKey serializes the associated public key, compressed or
// uncompressed depending on CompressPubKey.
func (w *WIF) SerializePubKey() []byte {
	pub := w.PrivKey.PubKey()
	if w.CompressPubKey {
		return pub.SerializeCompressed()
	}
	return pub.SerializeUncompressed()
}

// DecodeWIF creates a new WIF structure by decoding the string encoding of
// the import format, verifying the network ID against wantNetID.
func DecodeWIF(s string, wantNetID byte) (*WIF, error) {
	decoded, netID, err := base58.CheckDecode(s)
	if err != nil {
		if err == base58.ErrChecksum {
			return nil, ErrChecksumMismatch
		}
		return nil, err
	}

	var compress bool
	switch len(decoded) {
	case privKeyBytesLen + compressMagicLen:
		if decoded[len(decoded)-1] != compressMagic {
			return nil, ErrMalformedPrivateKey
		}
		compress = true
	case privKeyBytesLen:
		compress = false
	default:
		return nil, ErrMalformedPrivateKey
	}

	if netID != wantNetID {
		return nil, ErrWrongWIFNetwork
	}

	privKey := secp256k1.PrivKeyFromBytes(decoded[:privKeyBytesLen])

	return &WIF{
		PrivKey:        privKey,
		CompressPubKey: compress,
		netID:          netID,
	}, nil
}

// IsForNet reports whether the WIF structure was encoded with netID as
// its network identifier.
func (w *WIF) IsForNet(netID byte) bool {
	return w.netID == netID
}

// EqualPrivateKey reports whether two private keys encode the same
// scalar, in constant time.
func EqualPrivateKey(a, b *secp256k1.PrivateKey) bool {
	return subtle.ConstantTimeCompare(a.Serialize(), b.Serialize()) == 1
}
