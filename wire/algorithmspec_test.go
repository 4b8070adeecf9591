// Copyright (c) 2021 The Creativecoin developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package wire

import "testing"

func TestAlgorithmSpecForHeight(t *testing.T) {
	specs := []AlgorithmSpec{
		{Height: 0, Version: 0, Bits: 0x1d00ffff},
		{Height: 100, Version: 1, Bits: 0x1e00ffff},
	}

	tests := []struct {
		height      uint32
		wantVersion uint8
	}{
		{0, 0},
		{50, 0},
		{100, 1},
		{1000, 1},
	}
	for _, tt := range tests {
		got, ok := AlgorithmSpecForHeight(specs, tt.height)
		if !ok {
			t.Fatalf("AlgorithmSpecForHeight(%d): ok=false", tt.height)
		}
		if got.Version != tt.wantVersion {
			t.Errorf("AlgorithmSpecForHeight(%d).Version = %d, want %d",
				tt.height, got.Version, tt.wantVersion)
		}
	}
}

func TestAlgorithmSpecForHeightEmpty(t *testing.T) {
	if _, ok := AlgorithmSpecForHeight(nil, 0); ok {
		t.Fatal("expected ok=false for empty spec list")
	}
}
