// Copyright (c) 2018 The ExchangeCoin team
// Copyright (c) 2021 The Creativecoin developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package wire

// AlgorithmSpec specifies the block height at which a proof-of-work
// algorithm version is activated. A network's parameters carry a sorted
// list of these so a header's effective proof-of-work family and minimum
// difficulty can be looked up by height rather than hard-coded.
type AlgorithmSpec struct {
	// Height is the block height at which the algorithm version is
	// activated.
	Height uint32

	// Version is the numeric identifier of the algorithm: 0 for legacy
	// double-SHA-256, non-zero for Keccak-256. Matches BlockHeader.PowVersion.
	Version uint8

	// Bits is the new difficulty compact representation in effect at the
	// point of algorithm change.
	Bits uint32
}

// AlgorithmSpecForHeight returns the AlgorithmSpec in effect at the given
// height from a sorted (ascending by Height) list of specs, or the zero
// value with ok == false if specs is empty.
func AlgorithmSpecForHeight(specs []AlgorithmSpec, height uint32) (AlgorithmSpec, bool) {
	if len(specs) == 0 {
		return AlgorithmSpec{}, false
	}

	best := specs[0]
	for _, spec := range specs {
		if spec.Height > height {
			break
		}
		best = spec
	}
	return best, true
}
