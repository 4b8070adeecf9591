// Copyright (c) 2014-2016 The btcsuite developers
// Copyright (c) 2015-2021 The Decred developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package chaincfg

import (
	"encoding/hex"
	"math/big"
	"time"

	"github.com/creativecoin/crvd/chaincfg/chainhash"
	"github.com/creativecoin/crvd/consensus"
	"github.com/creativecoin/crvd/wire"
)

var bigOne = big.NewInt(1)

// DNSSeed identifies a DNS seed.
type DNSSeed struct {
	// Host is the host of the DNS seed.
	Host string

	// HasFiltering indicates whether the seed supports filtering by
	// service flags (wire.SF*).
	HasFiltering bool
}

// TokenPayout identifies an address and the amount of the chain's native
// unit to pay to it in the block-one premine coinbase.
type TokenPayout struct {
	Address string
	Amount  int64
}

// ConsensusDeployment defines details related to a specific consensus rule
// change that is voted in by block version-bits signaling (see
// consensus.HasBit).
type ConsensusDeployment struct {
	// BitNumber is the bit position, 0-31, in the block version used to
	// signal readiness for the deployment.
	BitNumber uint8

	// Description is a human-readable description of the deployment.
	Description string
}

// Params defines a network by its parameters such as the genesis block and
// denomination of units.
type Params struct {
	// Name defines a human-readable identifier for the network.
	Name string

	// Net defines the magic number used to identify the network.
	Net wire.CurrencyNet

	// DefaultPort defines the default peer-to-peer port for the network.
	DefaultPort string

	// DNSSeeds defines a list of DNS seeds for the network that are used
	// as one method to discover peers. regnet intentionally carries nil.
	DNSSeeds []DNSSeed

	// GenesisBlock defines the first block of the chain.
	GenesisBlock *wire.BlockHeader

	// GenesisHash is the starting block hash.
	GenesisHash chainhash.Hash

	// PowLimit defines the highest allowed proof of work value for a
	// block as a uint256.
	PowLimit *big.Int

	// PowLimitBits defines the highest allowed proof of work value for a
	// block in compact form.
	PowLimitBits uint32

	// KeccakPowLimit defines the highest allowed proof of work value for
	// a block using the Keccak-256 algorithm. See
	// consensus.Limits.KeccakPowLimit for why this is computed but never
	// enforced.
	KeccakPowLimit *big.Int

	// KeccakPowLimitBits is KeccakPowLimit in compact form.
	KeccakPowLimitBits uint32

	// Algorithms lists, ordered by ascending height, which proof-of-work
	// algorithm version is active starting at that height.
	Algorithms []wire.AlgorithmSpec

	// TargetTimePerBlock is the desired amount of time to generate each
	// block.
	TargetTimePerBlock time.Duration

	// MaximumBlockSize is the maximum permitted block size in bytes.
	MaximumBlockSize int

	// MaxTxSize is the maximum permitted size of a transaction in bytes.
	MaxTxSize int

	// CoinbaseMaturity is the number of blocks required before newly
	// generated coins (via the block subsidy) may be spent.
	CoinbaseMaturity uint16

	// Deployments maps a deployment version to the consensus deployments
	// defined for it.
	Deployments map[uint32][]ConsensusDeployment

	// Address encoding magics.
	PubKeyHashAddrID byte
	ScriptHashAddrID byte
	PrivateKeyID     byte

	// BIP32-style hierarchical deterministic extended key magics.
	HDPrivateKeyID [4]byte
	HDPublicKeyID  [4]byte

	// BlockOneLedger specifies the premine payouts made in the coinbase
	// of block one.
	BlockOneLedger []TokenPayout
}

// PowLimits returns the network's proof-of-work ceilings in the shape
// consensus.VerifyPOW expects.
func (p *Params) PowLimits() consensus.Limits {
	return consensus.Limits{
		PowLimit:       p.PowLimit,
		KeccakPowLimit: p.KeccakPowLimit,
	}
}

// hexDecode decodes a hex string, panicking on error. It is only ever used
// on hard-coded constants, so a panic indicates a programming error in
// this package rather than a condition callers need to recover from.
func hexDecode(s string) []byte {
	b, err := hex.DecodeString(s)
	if err != nil {
		panic("chaincfg: invalid hex constant: " + err.Error())
	}
	return b
}

// newHashFromStr converts the passed big-endian hex string into a
// chainhash.Hash, panicking on error since it is only used on hard-coded
// constants.
func newHashFromStr(hexStr string) *chainhash.Hash {
	hash, err := chainhash.NewHashFromStr(hexStr)
	if err != nil {
		panic("chaincfg: invalid hash constant: " + err.Error())
	}
	return hash
}

// bigToCompact is a thin forwarder to consensus.BigToCompact, kept local so
// the network parameter tables below read the same way they do in the
// teacher's own chaincfg package.
func bigToCompact(n *big.Int) uint32 {
	return consensus.BigToCompact(n)
}
