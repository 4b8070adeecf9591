// Copyright (c) 2013-2016 The btcsuite developers
// Copyright (c) 2015-2021 The Decred developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package consensus

import (
	"crypto/sha256"
	"math/big"

	"golang.org/x/crypto/sha3"
)

// HeaderHasher is the minimal surface VerifyPOW needs from a block header:
// the bytes to hash, the bits field committing to the target, and which of
// the two proof-of-work families to apply.
type HeaderHasher interface {
	// SerializeForPOW returns the header bytes that are hashed to produce
	// the proof-of-work digest.
	SerializeForPOW() []byte
	// TargetBits returns the compact-encoded difficulty target committed
	// to by the header.
	TargetBits() uint32
	// HasNewPowVersion reports whether the header uses the Keccak-256
	// proof-of-work family instead of the legacy double-SHA-256 one.
	HasNewPowVersion() bool
}

// Limits holds the two independent proof-of-work ceilings a network may
// define: one for the legacy double-SHA-256 algorithm and one for the newer
// Keccak-256 algorithm introduced alongside it.
type Limits struct {
	// PowLimit is the highest (easiest) target permitted for blocks that
	// hash with legacy double-SHA-256.
	PowLimit *big.Int
	// KeccakPowLimit is the highest target permitted for blocks that hash
	// with Keccak-256.
	//
	// NOTE: this value is computed and carried on every network's
	// parameters, but VerifyPOW never consults it. New-PoW-version headers
	// are checked only against their own Bits target, exactly like legacy
	// headers; neither ceiling is enforced. This is preserved here
	// unchanged rather than silently "fixed", since doing so would change
	// which blocks are consensus-valid. See DESIGN.md Open Question 1.
	KeccakPowLimit *big.Int
}

// HashSHA256D returns the legacy double-SHA-256 proof-of-work digest of b.
func HashSHA256D(b []byte) [32]byte {
	first := sha256.Sum256(b)
	return sha256.Sum256(first[:])
}

// HashKeccak256 returns the Keccak-256 proof-of-work digest of b.
func HashKeccak256(b []byte) [32]byte {
	var out [32]byte
	h := sha3.NewLegacyKeccak256()
	h.Write(b)
	h.Sum(out[:0])
	return out
}

// VerifyPOW reports whether the header's proof-of-work hash satisfies the
// target committed to by its Bits field. The hash family used is selected
// by header.HasNewPowVersion: legacy headers hash with double-SHA-256 and
// new headers hash with Keccak-256.
//
// limits.PowLimit is computed and carried on every network's parameters,
// but VerifyPOW does not enforce it: a header whose Bits field decodes to a
// target above the network's PowLimit is still checked against that target
// rather than rejected outright. This is preserved unchanged rather than
// silently "fixed", since doing so would change which blocks are
// consensus-valid. See DESIGN.md Open Question 1. limits.KeccakPowLimit is
// similarly unused -- see its doc comment.
func VerifyPOW(header HeaderHasher, limits Limits) (bool, error) {
	target := CompactToBig(header.TargetBits())
	if target.Sign() <= 0 {
		return false, errNonPositiveTarget
	}

	serialized := header.SerializeForPOW()
	var digest [32]byte
	if header.HasNewPowVersion() {
		digest = HashKeccak256(serialized)
	} else {
		digest = HashSHA256D(serialized)
	}

	hashNum := hashToBig(digest)
	return hashNum.Cmp(target) <= 0, nil
}

// hashToBig converts a proof-of-work hash, which is stored and displayed in
// little-endian byte order, into a big.Int so it can be compared against a
// target.
func hashToBig(digest [32]byte) *big.Int {
	var reversed [32]byte
	for i, b := range digest {
		reversed[len(digest)-1-i] = b
	}
	return new(big.Int).SetBytes(reversed[:])
}

// CalcWork calculates a work value from difficulty bits. Work is defined as
// the number of tries needed to solve a block in the average case, i.e. it
// is the inverse of the difficulty target: 2^256 / (target + 1).
func CalcWork(bits uint32) *big.Int {
	target := CompactToBig(bits)
	if target.Sign() <= 0 {
		return big.NewInt(0)
	}

	denominator := new(big.Int).Add(target, bigOne)
	return new(big.Int).Div(oneLsh256, denominator)
}

var (
	bigOne    = big.NewInt(1)
	oneLsh256 = new(big.Int).Lsh(bigOne, 256)
)
