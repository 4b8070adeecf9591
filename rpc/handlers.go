// Copyright (c) 2013-2017 The btcsuite developers
// Copyright (c) 2021 The Creativecoin developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package rpc

import (
	"encoding/json"
	"errors"
)

var (
	errMethodNotFound   = errors.New("rpc: method not found")
	errChainUnavailable = errors.New("rpc: chain provider not configured")
	errPeersUnavailable = errors.New("rpc: peer provider not configured")
)

// handleGetBlockCount implements the getblockcount command, returning the
// height of the locally stored chain tip.
func handleGetBlockCount(s *Server, _ json.RawMessage) (interface{}, error) {
	if s.cfg.Chain == nil {
		return nil, errChainUnavailable
	}
	return s.cfg.Chain.BlockCount(), nil
}

// handleGetPeerInfo implements the getpeerinfo command, returning a summary
// of every currently connected peer.
func handleGetPeerInfo(s *Server, _ json.RawMessage) (interface{}, error) {
	if s.cfg.Peers == nil {
		return nil, errPeersUnavailable
	}
	return s.cfg.Peers.PeerInfo(), nil
}

type submitBlockParams struct {
	HexBlock string `json:"hexblock"`
}

// handleSubmitBlock implements the submitblock command, accepting a raw,
// hex-encoded block for validation and acceptance into the local chain.
func handleSubmitBlock(s *Server, params json.RawMessage) (interface{}, error) {
	if s.cfg.Chain == nil {
		return nil, errChainUnavailable
	}

	var p submitBlockParams
	if len(params) > 0 {
		if err := json.Unmarshal(params, &p); err != nil {
			return nil, err
		}
	}

	if err := s.cfg.Chain.SubmitBlock(p.HexBlock); err != nil {
		return nil, err
	}
	return nil, nil
}

// handlePing implements the ping command, a no-op liveness check.
func handlePing(_ *Server, _ json.RawMessage) (interface{}, error) {
	return nil, nil
}
