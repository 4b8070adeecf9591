// Copyright (c) 2013-2016 The btcsuite developers
// Copyright (c) 2015-2021 The Decred developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package wire

import (
	"io"
	"net"
	"time"

	"github.com/jrick/bitset"
)

// ServiceFlag identifies services supported by a peer. The flags are
// carried as a bitset so a peer can advertise several services at once.
type ServiceFlag uint64

const (
	// SFNodeNetwork indicates a peer stores and serves the full block
	// chain.
	SFNodeNetwork ServiceFlag = 1 << iota

	// SFNodeCF indicates a peer can serve committed (GCS) filters.
	SFNodeCF
)

// serviceBits returns a bitset.Bytes encoding the given service flags, used
// where a compact, length-prefixed bitset encoding is preferred over a
// plain fixed-width integer.
func serviceBits(services ServiceFlag) bitset.Bytes {
	bs := bitset.NewBytes(64)
	for i := 0; i < 64; i++ {
		if services&(1<<uint(i)) != 0 {
			bs.Set(i)
		}
	}
	return bs
}

// NetAddress defines information about a peer on the network, including
// the time it was last seen, its services, and its host/port.
type NetAddress struct {
	// Timestamp is the last time the address was seen active, with
	// second-level precision.
	Timestamp time.Time

	// Services are the services supported by the peer.
	Services ServiceFlag

	// IP is the peer's IPv4 or IPv6 address.
	IP net.IP

	// Port is the peer's listening port.
	Port uint16
}

func (msg *NetAddress) BtcDecode(r io.Reader, pver uint32) error {
	var ts uint32
	if err := readElement(r, &ts); err != nil {
		return err
	}
	msg.Timestamp = time.Unix(int64(ts), 0)

	var services uint64
	if err := readElement(r, &services); err != nil {
		return err
	}
	msg.Services = ServiceFlag(services)

	var ip [16]byte
	if _, err := io.ReadFull(r, ip[:]); err != nil {
		return err
	}
	msg.IP = net.IP(ip[:])

	var port uint16
	if err := readElement(r, &port); err != nil {
		return err
	}
	msg.Port = port

	return nil
}

func (msg *NetAddress) BtcEncode(w io.Writer, pver uint32) error {
	if err := writeElement(w, uint32(msg.Timestamp.Unix())); err != nil {
		return err
	}
	if err := writeElement(w, uint64(msg.Services)); err != nil {
		return err
	}

	var ip [16]byte
	if to4 := msg.IP.To4(); to4 != nil {
		copy(ip[12:], to4)
	} else if msg.IP != nil {
		copy(ip[:], msg.IP.To16())
	}
	if _, err := w.Write(ip[:]); err != nil {
		return err
	}

	return writeElement(w, msg.Port)
}

// NewNetAddressIPPort returns a new NetAddress using the provided IP,
// port, and supported services with now as the last-seen timestamp.
func NewNetAddressIPPort(ip net.IP, port uint16, services ServiceFlag) *NetAddress {
	return &NetAddress{
		Timestamp: time.Now(),
		Services:  services,
		IP:        ip,
		Port:      port,
	}
}
