// Copyright (c) 2021 The Creativecoin developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package consensus

import "testing"

func TestHasBit(t *testing.T) {
	const version uint32 = 0x20000005 // bits 0 and 2 set
	if !HasBit(version, 0) {
		t.Error("expected bit 0 set")
	}
	if HasBit(version, 1) {
		t.Error("expected bit 1 unset")
	}
	if !HasBit(version, 2) {
		t.Error("expected bit 2 set")
	}
	if HasBit(version, 31) {
		t.Error("expected bit 31 unset")
	}
}
