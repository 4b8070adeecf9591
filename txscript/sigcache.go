// Copyright (c) 2015-2016 The btcsuite developers
// Copyright (c) 2016-2020 The Decred developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package txscript

import (
	"sync"

	"github.com/creativecoin/crvd/chaincfg/chainhash"
	"github.com/decred/dcrd/dcrec/secp256k1/v4"
	"github.com/decred/dcrd/dcrec/secp256k1/v4/ecdsa"
)

// sigCacheEntry represents an entry in the SigCache. Entries within the
// SigCache are keyed according to the sigHash of the signature. In the
// scenario of a cache-hit (according to the sigHash), an additional
// comparison of the signature and public key is made to ensure a complete
// match. When two sigHashes collide, the newer entry simply overwrites the
// existing one.
type sigCacheEntry struct {
	sig    *ecdsa.Signature
	pubKey *secp256k1.PublicKey
}

// SigCache implements an ECDSA signature verification cache with a
// randomized entry eviction policy. Only valid signatures are added to the
// cache. Usage of SigCache mitigates a class of DoS attack wherein an
// attacker causes a victim's client to hang due to worst-case behavior
// triggered while processing attacker-crafted invalid transactions, and
// speeds up validation of transactions already seen and verified in the
// mempool.
type SigCache struct {
	sync.RWMutex
	validSigs  map[chainhash.Hash]sigCacheEntry
	maxEntries uint
}

// NewSigCache creates and initializes a new instance of SigCache. Its sole
// parameter, maxEntries, represents the maximum number of entries allowed
// to exist in the SigCache at any particular moment. Random entries are
// evicted to make room for new entries that would exceed the max.
func NewSigCache(maxEntries uint) *SigCache {
	return &SigCache{
		validSigs:  make(map[chainhash.Hash]sigCacheEntry, maxEntries),
		maxEntries: maxEntries,
	}
}

// Exists returns true if an existing entry of sig over sigHash for public
// key pubKey is found within the SigCache.
//
// NOTE: This function is safe for concurrent access. Readers won't be
// blocked unless a writer is adding an entry to the SigCache.
func (s *SigCache) Exists(sigHash chainhash.Hash, sig *ecdsa.Signature, pubKey *secp256k1.PublicKey) bool {
	s.RLock()
	entry, ok := s.validSigs[sigHash]
	s.RUnlock()

	return ok && entry.pubKey.IsEqual(pubKey) && entry.sig.IsEqual(sig)
}

// Add adds an entry for a signature over sigHash under public key pubKey to
// the signature cache. If the SigCache is full, an existing entry is
// randomly chosen to be evicted to make space for the new one.
//
// NOTE: This function is safe for concurrent access. Writers block
// simultaneous readers until the call has concluded.
func (s *SigCache) Add(sigHash chainhash.Hash, sig *ecdsa.Signature, pubKey *secp256k1.PublicKey) {
	s.Lock()
	defer s.Unlock()

	if s.maxEntries == 0 {
		return
	}

	if uint(len(s.validSigs)+1) > s.maxEntries {
		// Remove a random entry from the map, relying on the random
		// starting point of Go's map iteration. The iteration order
		// isn't important here: to manipulate which item is evicted
		// an adversary would need a preimage attack on the hashing
		// function used to build sigHash.
		for sigEntry := range s.validSigs {
			delete(s.validSigs, sigEntry)
			break
		}
	}
	s.validSigs[sigHash] = sigCacheEntry{sig, pubKey}
}

// Len returns the number of entries currently held in the cache.
func (s *SigCache) Len() int {
	s.RLock()
	defer s.RUnlock()
	return len(s.validSigs)
}
