// Copyright (c) 2021 The Creativecoin developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package consensus

import "github.com/creativecoin/crvd/chaincfg/chainhash"

// RetargetParams holds the fields a dynamic difficulty retargeting
// algorithm would need: the genesis hash to anchor the chain and the
// averaging window and adjustment bounds for a future retarget pass.
//
// SPEC_FULL's proof-of-work verification uses a fixed per-network
// PowLimit (see chaincfg.Params) rather than dynamic retargeting, so
// nothing in this module currently reads RetargetParams. It is kept as the
// seam the teacher reserved for that work.
type RetargetParams struct {
	GenesisHash      chainhash.Hash
	PowAverageWindow int64
	PowMaxUpAdjust   int64
	PowMaxDownAdjust int64
}
