// Copyright (c) 2018 The ExchangeCoin team
// Copyright (c) 2013-2016 The btcsuite developers
// Copyright (c) 2015-2016 The Decred developers
// Copyright (c) 2021 The Creativecoin developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"github.com/creativecoin/crvd/chaincfg"
	"github.com/creativecoin/crvd/wire"
)

// activeNetParams is a pointer to the parameters specific to the
// currently active Creativecoin network.
var activeNetParams = &mainNetParams

// params is used to group parameters for various networks such as the main
// network and test networks.
type params struct {
	*chaincfg.Params
	rpcPort string
}

// mainNetParams contains parameters specific to the main network
// (wire.MainNet).
var mainNetParams = params{
	Params:  chaincfg.MainNetParams(),
	rpcPort: "9109",
}

// testNetParams contains parameters specific to the public test network
// (wire.TestNet).
var testNetParams = params{
	Params:  chaincfg.TestNetParams(),
	rpcPort: "19109",
}

// regNetParams contains parameters specific to the regression test network
// (wire.RegNet).
var regNetParams = params{
	Params:  chaincfg.RegNetParams(),
	rpcPort: "19556",
}

// netName returns the name used when referring to a Creativecoin network.
// The regression test network places its data and log directory under
// "regnet", the Name field of its chaincfg parameters, so no override is
// needed.
func netName(chainParams *params) string {
	switch chainParams.Net {
	case wire.TestNet:
		return "testnet"
	default:
		return chainParams.Name
	}
}
