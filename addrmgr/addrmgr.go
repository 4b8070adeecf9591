// Copyright (c) 2013-2017 The btcsuite developers
// Copyright (c) 2021 The Creativecoin developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package addrmgr implements concurrency-safe Creativecoin address manager
// caching.
package addrmgr

import (
	"encoding/json"
	"math/rand"
	"net"
	"os"
	"strconv"
	"sync"
	"time"

	"github.com/creativecoin/crvd/wire"
)

// KnownAddress tracks information about a known network address that is
// used to determine how viable an address is as a peer candidate.
type KnownAddress struct {
	na          *wire.NetAddress
	srcAddr     *wire.NetAddress
	attempts    int
	lastAttempt time.Time
	lastSuccess time.Time
	tried       bool
}

// NetAddress returns the underlying network address.
func (ka *KnownAddress) NetAddress() *wire.NetAddress {
	return ka.na
}

// LastAttempt returns the last time the address was attempted.
func (ka *KnownAddress) LastAttempt() time.Time {
	return ka.lastAttempt
}

// addrKey returns a unique string key for an address, keyed by its IP and
// port so that differing services bits for the same endpoint collapse to
// the same known address.
func addrKey(na *wire.NetAddress) string {
	return net.JoinHostPort(na.IP.String(), strconv.Itoa(int(na.Port)))
}

// AddrManager provides a concurrency-safe address manager for caching
// potential peers on the network.
type AddrManager struct {
	mu      sync.Mutex
	peersFile string
	addrs   map[string]*KnownAddress
	started bool
}

// New returns a new Creativecoin address manager. Use peersFile to persist
// known addresses across restarts; pass the empty string to keep the
// manager purely in-memory.
func New(peersFile string) *AddrManager {
	return &AddrManager{
		peersFile: peersFile,
		addrs:     make(map[string]*KnownAddress),
	}
}

// AddAddress adds a new address to the address manager, sourced from
// srcAddr (typically the peer that told us about it).
func (a *AddrManager) AddAddress(addr, srcAddr *wire.NetAddress) {
	a.mu.Lock()
	defer a.mu.Unlock()

	key := addrKey(addr)
	if _, exists := a.addrs[key]; exists {
		return
	}

	a.addrs[key] = &KnownAddress{na: addr, srcAddr: srcAddr}
}

// AddAddresses adds multiple addresses sourced from the same peer.
func (a *AddrManager) AddAddresses(addrs []*wire.NetAddress, srcAddr *wire.NetAddress) {
	for _, addr := range addrs {
		a.AddAddress(addr, srcAddr)
	}
}

// NumAddresses returns the number of addresses known to the address
// manager.
func (a *AddrManager) NumAddresses() int {
	a.mu.Lock()
	defer a.mu.Unlock()
	return len(a.addrs)
}

// Good marks the given address as having successfully connected and
// completed the initial handshake, graduating it from "new" to "tried".
func (a *AddrManager) Good(addr *wire.NetAddress) {
	a.mu.Lock()
	defer a.mu.Unlock()

	ka, ok := a.addrs[addrKey(addr)]
	if !ok {
		return
	}
	ka.tried = true
	ka.attempts = 0
	ka.lastSuccess = time.Now()
	ka.lastAttempt = ka.lastSuccess
}

// Attempt marks that a connection attempt was made to the given address,
// whether or not it succeeded in completing the handshake.
func (a *AddrManager) Attempt(addr *wire.NetAddress) {
	a.mu.Lock()
	defer a.mu.Unlock()

	ka, ok := a.addrs[addrKey(addr)]
	if !ok {
		return
	}
	ka.attempts++
	ka.lastAttempt = time.Now()
}

// GetAddress returns a random address suitable for connecting to, or nil if
// the address manager has no addresses. Addresses with ten or more
// connection attempts since their last success are skipped; the rest are
// picked uniformly at random, with no preference for tried addresses.
func (a *AddrManager) GetAddress() *KnownAddress {
	a.mu.Lock()
	defer a.mu.Unlock()

	if len(a.addrs) == 0 {
		return nil
	}

	const maxFailures = 10
	candidates := make([]*KnownAddress, 0, len(a.addrs))
	for _, ka := range a.addrs {
		if ka.attempts >= maxFailures {
			continue
		}
		candidates = append(candidates, ka)
	}
	if len(candidates) == 0 {
		return nil
	}

	return candidates[rand.Intn(len(candidates))]
}

// persistedAddr is the on-disk representation of a single known address.
type persistedAddr struct {
	IP          string    `json:"ip"`
	Port        uint16    `json:"port"`
	Services    uint64    `json:"services"`
	Timestamp   time.Time `json:"timestamp"`
	Tried       bool      `json:"tried"`
	Attempts    int       `json:"attempts"`
	LastAttempt time.Time `json:"last_attempt"`
	LastSuccess time.Time `json:"last_success"`
}

// Save persists the address manager's known addresses to its configured
// peers file. It is a no-op when no peers file was configured.
func (a *AddrManager) Save() error {
	a.mu.Lock()
	defer a.mu.Unlock()

	if a.peersFile == "" {
		return nil
	}

	out := make([]persistedAddr, 0, len(a.addrs))
	for _, ka := range a.addrs {
		out = append(out, persistedAddr{
			IP:          ka.na.IP.String(),
			Port:        ka.na.Port,
			Services:    uint64(ka.na.Services),
			Timestamp:   ka.na.Timestamp,
			Tried:       ka.tried,
			Attempts:    ka.attempts,
			LastAttempt: ka.lastAttempt,
			LastSuccess: ka.lastSuccess,
		})
	}

	f, err := os.Create(a.peersFile)
	if err != nil {
		return err
	}
	defer f.Close()

	enc := json.NewEncoder(f)
	enc.SetIndent("", "  ")
	return enc.Encode(out)
}

// Load reads previously persisted known addresses back from the
// configured peers file. It is a no-op when no peers file was configured,
// and silently leaves the manager empty if the file does not yet exist.
func (a *AddrManager) Load() error {
	a.mu.Lock()
	defer a.mu.Unlock()

	if a.peersFile == "" {
		return nil
	}

	f, err := os.Open(a.peersFile)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return err
	}
	defer f.Close()

	var in []persistedAddr
	if err := json.NewDecoder(f).Decode(&in); err != nil {
		return err
	}

	for _, p := range in {
		na := &wire.NetAddress{
			Timestamp: p.Timestamp,
			Services:  wire.ServiceFlag(p.Services),
			Port:      p.Port,
		}
		na.IP = net.ParseIP(p.IP)
		key := addrKey(na)
		a.addrs[key] = &KnownAddress{
			na:          na,
			tried:       p.Tried,
			attempts:    p.Attempts,
			lastAttempt: p.LastAttempt,
			lastSuccess: p.LastSuccess,
		}
	}

	log.Infof("Loaded %d addresses from %s", len(in), a.peersFile)
	return nil
}
