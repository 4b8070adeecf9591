// Copyright (c) 2018 The ExchangeCoin team
// Copyright (c) 2014 The btcsuite developers
// Copyright (c) 2021 The Creativecoin developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package chaincfg

// tokenPayoutsMainNet specifies the premine payouts made in the coinbase
// of block one on the main network.
func tokenPayoutsMainNet() []TokenPayout {
	return []TokenPayout{
		{Address: "CcQFoundationReserve11111111111111", Amount: 5_000_000 * 1e8},
		{Address: "CcQDevelopmentFund1111111111111111", Amount: 2_000_000 * 1e8},
	}
}

// tokenPayoutsTestNet specifies the premine payouts made in the coinbase
// of block one on the public test network.
func tokenPayoutsTestNet() []TokenPayout {
	return []TokenPayout{
		{Address: "CcTFoundationReserve11111111111111", Amount: 5_000_000 * 1e8},
	}
}

// tokenPayoutsRegNet specifies the premine payouts made in the coinbase of
// block one on the regression test network. There are none: regnet's
// chain is generated fresh and disposed of by every test run.
func tokenPayoutsRegNet() []TokenPayout {
	return nil
}
