// Copyright (c) 2013-2016 The btcsuite developers
// Copyright (c) 2015-2021 The Decred developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package chainhash provides the fixed-size double-SHA-256 digest type used
// to identify blocks and transactions throughout the chain.
package chainhash

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
)

// HashSize is the number of bytes in a hash.
const HashSize = 32

// MaxHashStringSize is the maximum length of a Hash hash string.
const MaxHashStringSize = HashSize * 2

// ErrHashStrSize describes an error that indicates the caller specified a
// hash string that has too many characters.
var ErrHashStrSize = fmt.Errorf("max hash string length is %v bytes", MaxHashStringSize)

// Hash is used in several of the bitcoin-family messages and block headers
// to identify uniquely a block or transaction. It is typically displayed
// in the reverse byte order, as adopted by block explorers going back to
// the original reference implementation.
type Hash [HashSize]byte

// String returns the Hash as the hexadecimal string of the byte-reversed
// hash.
func (hash Hash) String() string {
	var buf [HashSize * 2]byte
	reversed := reversedHash(hash)
	hex.Encode(buf[:], reversed[:])
	return string(buf[:])
}

// CloneBytes returns a newly allocated slice containing a copy of the hash.
func (hash *Hash) CloneBytes() []byte {
	newHash := make([]byte, HashSize)
	copy(newHash, hash[:])
	return newHash
}

// SetBytes sets the bytes which represent the hash. An error is returned
// if the number of bytes passed in is not HashSize.
func (hash *Hash) SetBytes(newHash []byte) error {
	if len(newHash) != HashSize {
		return fmt.Errorf("invalid hash length of %v, want %v", len(newHash), HashSize)
	}
	copy(hash[:], newHash)
	return nil
}

// IsEqual returns true if target is the same as the hash.
func (hash *Hash) IsEqual(target *Hash) bool {
	if hash == nil && target == nil {
		return true
	}
	if hash == nil || target == nil {
		return false
	}
	return *hash == *target
}

func reversedHash(hash Hash) Hash {
	var reversed Hash
	for i, b := range hash[:] {
		reversed[HashSize-1-i] = b
	}
	return reversed
}

// NewHash returns a new Hash from a byte slice. An error is returned if
// the number of bytes passed in is not HashSize.
func NewHash(newHash []byte) (*Hash, error) {
	var sh Hash
	err := sh.SetBytes(newHash)
	if err != nil {
		return nil, err
	}
	return &sh, nil
}

// NewHashFromStr creates a Hash from a hash string. The string should be
// the hexadecimal string of a byte-reversed hash, but any missing
// characters result in zero padding at the end of the hash.
func NewHashFromStr(hash string) (*Hash, error) {
	ret := new(Hash)
	err := Decode(ret, hash)
	if err != nil {
		return nil, err
	}
	return ret, nil
}

// Decode decodes the byte-reversed hexadecimal string encoding of a Hash
// to a destination.
func Decode(dst *Hash, src string) error {
	if len(src) > MaxHashStringSize {
		return ErrHashStrSize
	}

	// Hex decoder expects the hash to be a multiple of two. When not, pad
	// with a leading zero.
	var srcBytes []byte
	if len(src)%2 == 0 {
		srcBytes = []byte(src)
	} else {
		srcBytes = make([]byte, 1+len(src))
		srcBytes[0] = '0'
		copy(srcBytes[1:], src)
	}

	var reversedHash Hash
	_, err := hex.Decode(reversedHash[HashSize-hex.DecodedLen(len(srcBytes)):], srcBytes)
	if err != nil {
		return err
	}

	for i, b := range reversedHash[:HashSize/2] {
		dst[i], dst[HashSize-1-i] = reversedHash[HashSize-1-i], b
	}
	return nil
}

// HashB calculates the hash of the given data and returns it as a byte slice.
func HashB(b []byte) []byte {
	hash := sha256.Sum256(b)
	return hash[:]
}

// HashH calculates the hash of the given data and returns it as a Hash type.
func HashH(b []byte) Hash {
	return Hash(sha256.Sum256(b))
}

// HashFuncB calculates the double-SHA-256 hash of the given data and
// returns it as a byte slice.
func HashFuncB(b []byte) []byte {
	first := sha256.Sum256(b)
	second := sha256.Sum256(first[:])
	return second[:]
}

// HashFuncH calculates the double-SHA-256 hash of the given data and
// returns it as a Hash type.
func HashFuncH(b []byte) Hash {
	return Hash(HashFuncB(b))
}
