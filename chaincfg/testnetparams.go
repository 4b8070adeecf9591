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

// TestNetParams returns the network parameters for the public test
// network.
func TestNetParams() *Params {
	testPowLimit := new(big.Int).Sub(new(big.Int).Lsh(bigOne, 232), bigOne)
	testKeccakPowLimit := new(big.Int).Sub(new(big.Int).Lsh(bigOne, 240), bigOne)

	genesisHeader := &wire.BlockHeader{
		Version:    1,
		PrevBlock:  [32]byte{},
		MerkleRoot: [32]byte{},
		Timestamp:  time.Unix(1538524800, 0), // 2018-10-03 00:00:00 +0000 UTC
		Bits:       bigToCompact(testPowLimit),
		Nonce:      0,
		PowVersion: 0,
	}

	return &Params{
		Name:        "testnet",
		Net:         wire.TestNet,
		DefaultPort: "19666",
		DNSSeeds: []DNSSeed{
			{Host: "testnet-seed.creativecoin.org", HasFiltering: true},
		},

		GenesisBlock:       genesisHeader,
		GenesisHash:        genesisHeader.BlockHash(),
		PowLimit:           testPowLimit,
		PowLimitBits:       bigToCompact(testPowLimit),
		KeccakPowLimit:     testKeccakPowLimit,
		KeccakPowLimitBits: bigToCompact(testKeccakPowLimit),

		Algorithms: []wire.AlgorithmSpec{
			{Height: 0, Version: 0, Bits: bigToCompact(testPowLimit)},
			{Height: 2016, Version: 1, Bits: bigToCompact(testKeccakPowLimit)},
		},

		TargetTimePerBlock: 2 * time.Minute,
		MaximumBlockSize:   2 * 1024 * 1024,
		MaxTxSize:          1024 * 1024,
		CoinbaseMaturity:   16,

		Deployments: map[uint32][]ConsensusDeployment{},

		PubKeyHashAddrID: 0x5c, // starts with T
		ScriptHashAddrID: 0x5e,
		PrivateKeyID:     0xdc,

		HDPrivateKeyID: [4]byte{0x04, 0x35, 0x83, 0x94}, // starts with tprv
		HDPublicKeyID:  [4]byte{0x04, 0x35, 0x87, 0xcf}, // starts with tpub

		BlockOneLedger: tokenPayoutsTestNet(),
	}
}
