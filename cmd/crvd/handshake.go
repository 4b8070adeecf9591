// Copyright (c) 2021 The Creativecoin developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"crypto/rand"
	"encoding/binary"
	"io"
	"net"

	"github.com/creativecoin/crvd/peer"
	"github.com/creativecoin/crvd/wire"
)

// peerSession drives a single connection through the version/verack
// handshake and then idles answering pings, logging whatever else arrives.
// It runs until the connection is closed or a protocol error occurs, and
// always runs on its own goroutine.
type peerSession struct {
	conn    net.Conn
	net     wire.CurrencyNet
	inbound bool
}

func runPeerSession(conn net.Conn, currencyNet wire.CurrencyNet, inbound bool) {
	s := &peerSession{conn: conn, net: currencyNet, inbound: inbound}
	s.run()
}

func (s *peerSession) run() {
	defer s.conn.Close()

	parser := peer.NewParser(s.net,
		func(msg wire.Message) { s.onPacket(msg) },
		func(err error) {
			srvrLog.Debugf("Peer %s protocol error: %v", s.conn.RemoteAddr(), err)
		},
	)

	if !s.inbound {
		if err := s.sendVersion(); err != nil {
			srvrLog.Debugf("Failed to send version to %s: %v", s.conn.RemoteAddr(), err)
			return
		}
	}

	buf := make([]byte, 4096)
	for {
		n, err := s.conn.Read(buf)
		if err != nil {
			if err != io.EOF {
				srvrLog.Debugf("Peer %s read error: %v", s.conn.RemoteAddr(), err)
			}
			return
		}
		parser.Feed(buf[:n])
	}
}

func (s *peerSession) onPacket(msg wire.Message) {
	switch m := msg.(type) {
	case *wire.MsgVersion:
		if s.inbound {
			if err := s.sendVersion(); err != nil {
				return
			}
		}
		s.send(wire.NewMsgVerAck())
	case *wire.MsgVerAck:
		srvrLog.Debugf("Peer %s completed handshake", s.conn.RemoteAddr())
	case *wire.MsgPing:
		s.send(wire.NewMsgPong(m.Nonce))
	case *wire.MsgPong:
		// Nothing to do; receipt alone confirms liveness.
	default:
		srvrLog.Debugf("Peer %s sent unhandled command %s", s.conn.RemoteAddr(), msg.Command())
	}
}

func (s *peerSession) sendVersion() error {
	return s.send(wire.NewMsgVersion(randomNonce(), wire.SFNodeNetwork, 0))
}

func (s *peerSession) send(msg wire.Message) error {
	raw, err := peer.EncodeMessage(s.net, msg)
	if err != nil {
		return err
	}
	_, err = s.conn.Write(raw)
	return err
}

// listenForPeers starts listening for inbound peer connections on the first
// of cfg's configured interfaces, defaulting to all interfaces on the active
// network's default port, and spawns a peerSession for each accepted
// connection.
func listenForPeers(cfg *config, currencyNet wire.CurrencyNet) (net.Listener, error) {
	addrs := cfg.Listeners
	if len(addrs) == 0 {
		addrs = []string{net.JoinHostPort("", activeNetParams.DefaultPort)}
	}

	// Only the first configured listener is bound; supporting several
	// concurrent listen addresses would require a listener per address
	// and is left for when multi-homed deployments actually need it.
	listener, err := net.Listen("tcp", addrs[0])
	if err != nil {
		return nil, err
	}

	go func() {
		for {
			conn, err := listener.Accept()
			if err != nil {
				return
			}
			srvrLog.Infof("Accepted inbound peer connection from %s", conn.RemoteAddr())
			go runPeerSession(conn, currencyNet, true)
		}
	}()

	return listener, nil
}

func randomNonce() uint64 {
	var b [8]byte
	if _, err := rand.Read(b[:]); err != nil {
		return 0
	}
	return binary.LittleEndian.Uint64(b[:])
}
