// Copyright (c) 2021 The Creativecoin developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package addrmgr

import (
	"net"
	"os"
	"path/filepath"
	"testing"

	"github.com/creativecoin/crvd/wire"
)

func testNetAddress(ip string, port uint16) *wire.NetAddress {
	return wire.NewNetAddressIPPort(net.ParseIP(ip), port, wire.SFNodeNetwork)
}

func TestAddAddressAndCount(t *testing.T) {
	m := New("")
	src := testNetAddress("203.0.113.1", 8333)

	m.AddAddress(testNetAddress("192.0.2.1", 8333), src)
	m.AddAddress(testNetAddress("192.0.2.2", 8333), src)
	m.AddAddress(testNetAddress("192.0.2.1", 8333), src) // duplicate

	if got := m.NumAddresses(); got != 2 {
		t.Fatalf("NumAddresses() = %d, want 2", got)
	}
}

func TestGoodAndAttempt(t *testing.T) {
	m := New("")
	src := testNetAddress("203.0.113.1", 8333)
	addr := testNetAddress("192.0.2.1", 8333)
	m.AddAddress(addr, src)

	m.Attempt(addr)
	m.Good(addr)

	ka := m.addrs[addrKey(addr)]
	if !ka.tried {
		t.Fatal("expected address to be marked tried after Good")
	}
	if ka.attempts != 0 {
		t.Fatalf("attempts = %d, want 0 after Good resets it", ka.attempts)
	}
}

func TestGetAddressEmpty(t *testing.T) {
	m := New("")
	if got := m.GetAddress(); got != nil {
		t.Fatalf("GetAddress() on empty manager = %v, want nil", got)
	}
}

func TestGetAddressSkipsExhaustedAddresses(t *testing.T) {
	m := New("")
	src := testNetAddress("203.0.113.1", 8333)
	addr := testNetAddress("192.0.2.1", 8333)
	m.AddAddress(addr, src)

	ka := m.addrs[addrKey(addr)]
	ka.attempts = 100

	if got := m.GetAddress(); got != nil {
		t.Fatalf("GetAddress() = %v, want nil for exhausted-only manager", got)
	}
}

func TestSaveLoadRoundTrip(t *testing.T) {
	dir := t.TempDir()
	peersFile := filepath.Join(dir, "peers.json")

	m := New(peersFile)
	src := testNetAddress("203.0.113.1", 8333)
	m.AddAddress(testNetAddress("192.0.2.1", 8333), src)
	m.AddAddress(testNetAddress("192.0.2.2", 8333), src)

	if err := m.Save(); err != nil {
		t.Fatalf("Save: %v", err)
	}
	if _, err := os.Stat(peersFile); err != nil {
		t.Fatalf("expected peers file to exist: %v", err)
	}

	loaded := New(peersFile)
	if err := loaded.Load(); err != nil {
		t.Fatalf("Load: %v", err)
	}
	if got := loaded.NumAddresses(); got != 2 {
		t.Fatalf("NumAddresses() after load = %d, want 2", got)
	}
}

func TestLoadMissingFileIsNotAnError(t *testing.T) {
	m := New(filepath.Join(t.TempDir(), "does-not-exist.json"))
	if err := m.Load(); err != nil {
		t.Fatalf("Load of missing file: %v", err)
	}
	if got := m.NumAddresses(); got != 0 {
		t.Fatalf("NumAddresses() = %d, want 0", got)
	}
}
