// Copyright (c) 2014-2016 The btcsuite developers
// Copyright (c) 2015-2021 The Decred developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package chaincfg

import (
	"math/big"
	"time"

	"github.com/creativecoin/crvd/wire"
)

// MainNetParams returns the network parameters for the main Creativecoin
// network.
func MainNetParams() *Params {
	// mainPowLimit is the highest proof of work value a main network
	// block using the legacy double-SHA-256 algorithm can have. It is
	// the value 2^224 - 1.
	mainPowLimit := new(big.Int).Sub(new(big.Int).Lsh(bigOne, 224), bigOne)

	// mainKeccakPowLimit is the highest proof of work value a main
	// network block using the newer Keccak-256 algorithm can have. It is
	// computed here and carried on the parameters, but -- matching
	// upstream -- is never actually consulted by consensus.VerifyPOW. See
	// DESIGN.md Open Question 1.
	mainKeccakPowLimit := new(big.Int).Sub(new(big.Int).Lsh(bigOne, 234), bigOne)

	genesisHeader := &wire.BlockHeader{
		Version:    1,
		PrevBlock:  [32]byte{},
		MerkleRoot: [32]byte{},
		Timestamp:  time.Unix(1531731600, 0), // Monday, 16-Jul-18 09:00:00 UTC
		Bits:       bigToCompact(mainPowLimit),
		Nonce:      0,
		PowVersion: 0,
	}

	return &Params{
		Name:        "mainnet",
		Net:         wire.MainNet,
		DefaultPort: "9666",
		DNSSeeds: []DNSSeed{
			{Host: "seed.creativecoin.org", HasFiltering: true},
			{Host: "seed2.creativecoin.org", HasFiltering: true},
		},

		GenesisBlock:       genesisHeader,
		GenesisHash:        genesisHeader.BlockHash(),
		PowLimit:           mainPowLimit,
		PowLimitBits:       bigToCompact(mainPowLimit),
		KeccakPowLimit:     mainKeccakPowLimit,
		KeccakPowLimitBits: bigToCompact(mainKeccakPowLimit),

		Algorithms: []wire.AlgorithmSpec{
			{Height: 0, Version: 0, Bits: bigToCompact(mainPowLimit)},
			{Height: 87550, Version: 1, Bits: bigToCompact(mainKeccakPowLimit)},
		},

		TargetTimePerBlock: 2 * time.Minute,
		MaximumBlockSize:   2 * 1024 * 1024,
		MaxTxSize:           1024 * 1024,
		CoinbaseMaturity:    100,

		Deployments: map[uint32][]ConsensusDeployment{
			4: {{
				BitNumber:   1,
				Description: "change maximum allowed block size",
			}},
		},

		PubKeyHashAddrID: 0x1c, // starts with C
		ScriptHashAddrID: 0x1e,
		PrivateKeyID:     0x9c,

		HDPrivateKeyID: [4]byte{0x04, 0x88, 0xAD, 0xE4}, // starts with xprv
		HDPublicKeyID:  [4]byte{0x04, 0x88, 0xB2, 0x1E},  // starts with xpub

		BlockOneLedger: tokenPayoutsMainNet(),
	}
}
