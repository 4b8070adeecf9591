// Copyright (c) 2021 The Decred developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package consensus

import (
	"math/big"

	"github.com/creativecoin/crvd/chaincfg/chainhash"
)

// DiffBitsToUint256 converts the compact representation used to encode
// difficulty targets to an unsigned 256-bit integer. It is an alias of
// CompactToBig kept under this name for parity with the fast-path
// conversion helpers difficulty comparisons are built on.
func DiffBitsToUint256(bits uint32) *big.Int {
	return CompactToBig(bits)
}

// Uint256ToDiffBits converts an unsigned 256-bit integer to the compact
// representation used to encode difficulty targets. It is an alias of
// BigToCompact.
func Uint256ToDiffBits(n *big.Int) uint32 {
	return BigToCompact(n)
}

// HashToUint256 converts a hash to an unsigned 256-bit integer that can be
// used to perform math comparisons against a target.
func HashToUint256(hash *chainhash.Hash) *big.Int {
	return hashToBig([32]byte(*hash))
}
