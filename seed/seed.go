// Copyright (c) 2021 The Creativecoin developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package seed provides the static DNS seed list each network advertises
// for initial peer discovery.
package seed

import "github.com/creativecoin/crvd/chaincfg"

// Get returns the DNS seed hostnames registered for the named network
// ("mainnet", "testnet", or "regtest"). It returns nil both when the
// network name is unrecognized and when the network, like regtest,
// deliberately carries no seeds -- callers that need to distinguish those
// two cases should consult chaincfg.ParamsByName directly.
func Get(network string) []string {
	params, err := chaincfg.ParamsByName(network)
	if err != nil {
		return nil
	}

	if len(params.DNSSeeds) == 0 {
		return nil
	}

	hosts := make([]string, len(params.DNSSeeds))
	for i, s := range params.DNSSeeds {
		hosts[i] = s.Host
	}
	return hosts
}
