// Copyright (c) 2013-2016 The btcsuite developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package wire

import (
	"bytes"
	"testing"
	"time"
)

func TestBlockHeaderSerializeRoundTrip(t *testing.T) {
	h := &BlockHeader{
		Version:    1,
		Timestamp:  time.Unix(1531731600, 0),
		Bits:       0x1d00ffff,
		Nonce:      12345,
		PowVersion: 0,
	}

	var buf bytes.Buffer
	if err := h.Serialize(&buf); err != nil {
		t.Fatalf("Serialize: %v", err)
	}

	var got BlockHeader
	if err := got.Deserialize(&buf); err != nil {
		t.Fatalf("Deserialize: %v", err)
	}

	if got.Version != h.Version || got.Bits != h.Bits || got.Nonce != h.Nonce {
		t.Fatalf("round trip mismatch: got %+v want %+v", got, h)
	}
	if !got.Timestamp.Equal(h.Timestamp) {
		t.Fatalf("timestamp mismatch: got %v want %v", got.Timestamp, h.Timestamp)
	}
}

func TestHasNewPowVersion(t *testing.T) {
	legacy := &BlockHeader{PowVersion: 0}
	if legacy.HasNewPowVersion() {
		t.Fatal("expected legacy header to report HasNewPowVersion() == false")
	}

	newer := &BlockHeader{PowVersion: 1}
	if !newer.HasNewPowVersion() {
		t.Fatal("expected PowVersion=1 header to report HasNewPowVersion() == true")
	}
}

func TestBlockHashDeterministic(t *testing.T) {
	h := &BlockHeader{Version: 1, Timestamp: time.Unix(0, 0), Bits: 0x1d00ffff}
	h1 := h.BlockHash()
	h2 := h.BlockHash()
	if h1 != h2 {
		t.Fatal("expected BlockHash to be deterministic")
	}
}
