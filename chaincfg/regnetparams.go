// Copyright (c) 2018-2021 The Decred developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package chaincfg

import (
	"math/big"
	"time"

	"github.com/creativecoin/crvd/wire"
)

// RegNetParams returns the network parameters for the regression test
// network. This should not be confused with the public test network. The
// purpose of this network is exclusively unit and RPC server tests; since
// it is only intended for that, its values are subject to change even if
// it would cause a hard fork, and it carries no DNS seeds at all.
func RegNetParams() *Params {
	// regNetPowLimit is the highest proof of work value a regression
	// test network block can have. It is the value 2^255 - 1.
	regNetPowLimit := new(big.Int).Sub(new(big.Int).Lsh(bigOne, 255), bigOne)

	genesisHeader := &wire.BlockHeader{
		Version:    1,
		PrevBlock:  [32]byte{},
		MerkleRoot: [32]byte{},
		Timestamp:  time.Unix(1538524800, 0), // 2018-10-03 00:00:00 +0000 UTC
		Bits:       0x207fffff,
		Nonce:      0,
		PowVersion: 0,
	}

	return &Params{
		Name:        "regnet",
		Net:         wire.RegNet,
		DefaultPort: "19777",
		DNSSeeds:    nil, // NOTE: There must NOT be any seeds.

		GenesisBlock:       genesisHeader,
		GenesisHash:        genesisHeader.BlockHash(),
		PowLimit:           regNetPowLimit,
		PowLimitBits:       0x207fffff,
		KeccakPowLimit:     regNetPowLimit,
		KeccakPowLimitBits: 0x207fffff,

		Algorithms: []wire.AlgorithmSpec{
			{Height: 0, Version: 0, Bits: 0x207fffff},
		},

		TargetTimePerBlock: time.Second,
		MaximumBlockSize:   1000000,
		MaxTxSize:          1000000,
		CoinbaseMaturity:   16,

		Deployments: map[uint32][]ConsensusDeployment{},

		PubKeyHashAddrID: 0x0e, // starts with R
		ScriptHashAddrID: 0x0d,
		PrivateKeyID:     0xef,

		HDPrivateKeyID: [4]byte{0xea, 0xb4, 0x04, 0x48}, // starts with rprv
		HDPublicKeyID:  [4]byte{0xea, 0xb4, 0xf9, 0x87}, // starts with rpub

		BlockOneLedger: tokenPayoutsRegNet(),
	}
}
