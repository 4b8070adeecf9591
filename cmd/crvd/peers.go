// Copyright (c) 2021 The Creativecoin developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"github.com/creativecoin/crvd/connmgr"
	"github.com/creativecoin/crvd/rpc"
)

// peerManager adapts a *connmgr.ConnManager to the rpc.PeerInfoProvider
// interface.
type peerManager struct {
	cm *connmgr.ConnManager
}

func newPeerManager(cm *connmgr.ConnManager) *peerManager {
	return &peerManager{cm: cm}
}

// PeerInfo returns a summary of every currently connected outbound peer.
func (m *peerManager) PeerInfo() []rpc.PeerInfo {
	conns := m.cm.Connected()
	infos := make([]rpc.PeerInfo, len(conns))
	for i, req := range conns {
		infos[i] = rpc.PeerInfo{Addr: req.Addr.String()}
	}
	return infos
}
