// Copyright (c) 2021 The Creativecoin developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"bytes"
	"encoding/hex"
	"fmt"

	"github.com/creativecoin/crvd/chaincfg"
	"github.com/creativecoin/crvd/consensus"
	"github.com/creativecoin/crvd/database"
	"github.com/creativecoin/crvd/wire"
)

// chainManager adapts the on-disk header store to the rpc.ChainInfoProvider
// interface, verifying that each submitted header's proof of work meets the
// target committed to by its own Bits field before it is stored. The
// network's PowLimit ceilings are not checked (see consensus.VerifyPOW).
type chainManager struct {
	db     *database.DB
	params *chaincfg.Params
}

func newChainManager(db *database.DB, params *chaincfg.Params) *chainManager {
	return &chainManager{db: db, params: params}
}

// BlockCount returns the height of the current chain tip, or zero if no
// headers have been stored yet.
func (m *chainManager) BlockCount() int64 {
	height, ok, err := m.db.Tip()
	if err != nil || !ok {
		return 0
	}
	return int64(height)
}

// SubmitBlock decodes a hex-encoded block header, verifies its proof of
// work, and appends it to the header store at one past the current tip.
func (m *chainManager) SubmitBlock(hexBlock string) error {
	raw, err := hex.DecodeString(hexBlock)
	if err != nil {
		return fmt.Errorf("chain: invalid hex header: %w", err)
	}

	var header wire.BlockHeader
	if err := header.Deserialize(bytes.NewReader(raw)); err != nil {
		return fmt.Errorf("chain: malformed header: %w", err)
	}

	ok, err := consensus.VerifyPOW(&header, m.params.PowLimits())
	if err != nil {
		return fmt.Errorf("chain: proof-of-work check failed: %w", err)
	}
	if !ok {
		return fmt.Errorf("chain: header does not meet its claimed target")
	}

	height, hasTip, err := m.db.Tip()
	if err != nil {
		return fmt.Errorf("chain: failed to read chain tip: %w", err)
	}
	next := uint32(0)
	if hasTip {
		next = height + 1
	}

	if err := m.db.PutHeader(next, &header); err != nil {
		return fmt.Errorf("chain: failed to store header: %w", err)
	}
	return nil
}
