// Copyright (c) 2021 The Creativecoin developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package seed

import "testing"

func TestGetMainNetHasSeeds(t *testing.T) {
	if len(Get("mainnet")) == 0 {
		t.Fatal("expected mainnet to have at least one seed")
	}
}

func TestGetRegTestHasNoSeeds(t *testing.T) {
	if got := Get("regtest"); got != nil {
		t.Fatalf("expected regtest to have no seeds, got %v", got)
	}
}

func TestGetUnknownNetwork(t *testing.T) {
	if got := Get("not-a-real-network"); got != nil {
		t.Fatalf("expected nil for unknown network, got %v", got)
	}
}
