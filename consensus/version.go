// Copyright (c) 2021 The Creativecoin developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package consensus

// HasBit reports whether the bit at the given zero-based position is set
// in the block version field. It is used to test version-bits soft-fork
// signaling: a header signals readiness for deployment N by setting bit N
// of its version field. Versions whose top three bits are not 001
// (version&0xe0000000 != 0x20000000) never signal, so HasBit reports false
// for them.
func HasBit(version uint32, bit uint8) bool {
	return version&0xe0000000 == 0x20000000 && version&(1<<bit) != 0
}
