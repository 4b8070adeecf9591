// Copyright (c) 2013-2016 The btcsuite developers
// Copyright (c) 2015-2021 The Decred developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package wire

import "fmt"

// CurrencyNet represents which network a message belongs to, carried in
// every message header as the magic number.
type CurrencyNet uint32

// Constants used to indicate the message currency network. Every message
// begins with these four bytes so peers can tell protocol messages apart
// from garbage sent by unrelated software speaking on the same port.
const (
	// MainNet represents the main network.
	MainNet CurrencyNet = 0xc4a2d3f1

	// TestNet represents the test network.
	TestNet CurrencyNet = 0x0b11a3d9

	// RegNet represents the regression test network.
	RegNet CurrencyNet = 0xdab5bffa
)

var netNames = map[CurrencyNet]string{
	MainNet: "MainNet",
	TestNet: "TestNet",
	RegNet:  "RegNet",
}

// String returns the CurrencyNet in human-readable form.
func (n CurrencyNet) String() string {
	if name, ok := netNames[n]; ok {
		return name
	}
	return fmt.Sprintf("Unknown CurrencyNet (%d)", uint32(n))
}
