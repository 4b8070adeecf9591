// Copyright (c) 2021 The Creativecoin developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package chaincfg

import (
	"testing"

	"github.com/creativecoin/crvd/consensus"
	"github.com/davecgh/go-spew/spew"
)

func TestNetworkParamsDistinctGenesis(t *testing.T) {
	main := MainNetParams()
	test := TestNetParams()
	reg := RegNetParams()

	if main.GenesisHash == test.GenesisHash {
		t.Fatal("mainnet and testnet must not share a genesis hash")
	}
	if main.GenesisHash == reg.GenesisHash {
		t.Fatal("mainnet and regnet must not share a genesis hash")
	}
}

func TestRegNetHasNoSeeds(t *testing.T) {
	if seeds := RegNetParams().DNSSeeds; seeds != nil {
		t.Fatalf("regnet must carry no DNS seeds, got %v", seeds)
	}
}

func TestPowLimitBitsRoundTrip(t *testing.T) {
	for _, ctor := range []func() *Params{MainNetParams, TestNetParams, RegNetParams} {
		p := ctor()
		got := consensus.BigToCompact(p.PowLimit)
		if got != p.PowLimitBits {
			t.Errorf("%s: BigToCompact(PowLimit) = %#x, want PowLimitBits %#x",
				p.Name, got, p.PowLimitBits)
		}
	}
}

func TestParamsByName(t *testing.T) {
	for _, name := range []string{"mainnet", "testnet", "regtest"} {
		if _, err := ParamsByName(name); err != nil {
			t.Errorf("ParamsByName(%q): unexpected error: %v", name, err)
		}
	}

	if _, err := ParamsByName("simnet"); err == nil {
		t.Error("expected error for unregistered network name")
	}
}

func TestGenesisBlockHashesGenesisHash(t *testing.T) {
	for _, ctor := range []func() *Params{MainNetParams, TestNetParams, RegNetParams} {
		p := ctor()
		got := p.GenesisBlock.BlockHash()
		if got != p.GenesisHash {
			t.Errorf("%s: genesis block hash mismatch - got %v, want %v",
				p.Name, spew.Sdump(got), spew.Sdump(p.GenesisHash))
		}
	}
}

func TestAlgorithmsOrderedByHeight(t *testing.T) {
	for _, ctor := range []func() *Params{MainNetParams, TestNetParams, RegNetParams} {
		p := ctor()
		var prev uint32
		for i, spec := range p.Algorithms {
			if i > 0 && spec.Height < prev {
				t.Errorf("%s: Algorithms not ordered by ascending height at index %d", p.Name, i)
			}
			prev = spec.Height
		}
	}
}
