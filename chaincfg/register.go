// Copyright (c) 2014-2016 The btcsuite developers
// Copyright (c) 2015-2021 The Decred developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package chaincfg

import "fmt"

// ErrUnknownNetwork is returned by ParamsByName for a name that does not
// match any registered network.
type ErrUnknownNetwork string

func (e ErrUnknownNetwork) Error() string {
	return fmt.Sprintf("chaincfg: unknown network %q", string(e))
}

var registeredParams = map[string]func() *Params{
	"mainnet": MainNetParams,
	"testnet": TestNetParams,
	"regtest": RegNetParams,
}

// ParamsByName returns the network parameters registered under name, one
// of "mainnet", "testnet", or "regtest".
func ParamsByName(name string) (*Params, error) {
	ctor, ok := registeredParams[name]
	if !ok {
		return nil, ErrUnknownNetwork(name)
	}
	return ctor(), nil
}
