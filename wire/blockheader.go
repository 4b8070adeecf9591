// Copyright (c) 2013-2016 The btcsuite developers
// Copyright (c) 2015-2021 The Decred developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package wire

import (
	"bytes"
	"io"
	"time"

	"github.com/creativecoin/crvd/chaincfg/chainhash"
)

// MaxBlockHeaderPayload is the number of bytes in a serialized block header.
const MaxBlockHeaderPayload = 4 + (chainhash.HashSize * 2) + 4 + 4 + 4 + 1

// BlockHeader defines information about a block: the fields that are
// serialized, stored, and hashed for its identifier and proof of work.
type BlockHeader struct {
	// Version is the block version, also carrying version-bits soft-fork
	// signaling in its low-order bits (see consensus.HasBit).
	Version int32

	// PrevBlock is the hash of the previous block in the chain.
	PrevBlock chainhash.Hash

	// MerkleRoot is the merkle tree reference to hash of all transactions
	// for the block.
	MerkleRoot chainhash.Hash

	// Timestamp is the time the block was created, with second precision.
	Timestamp time.Time

	// Bits is the compact-encoded difficulty target required of the
	// block's proof-of-work hash.
	Bits uint32

	// Nonce is a value used to make the block's proof-of-work hash
	// satisfy Bits.
	Nonce uint32

	// PowVersion selects which proof-of-work hash family this header uses:
	// 0 for legacy double-SHA-256, any non-zero value for Keccak-256.
	PowVersion uint8
}

// HasNewPowVersion reports whether the header uses the Keccak-256
// proof-of-work family introduced alongside the legacy double-SHA-256 one.
// This is part of the consensus.HeaderHasher interface.
func (h *BlockHeader) HasNewPowVersion() bool {
	return h.PowVersion != 0
}

// TargetBits returns the compact-encoded difficulty target. This is part
// of the consensus.HeaderHasher interface.
func (h *BlockHeader) TargetBits() uint32 {
	return h.Bits
}

// SerializeForPOW returns the bytes that are hashed to produce the
// header's proof-of-work digest. This is part of the
// consensus.HeaderHasher interface.
func (h *BlockHeader) SerializeForPOW() []byte {
	var buf bytes.Buffer
	buf.Grow(MaxBlockHeaderPayload)
	_ = h.serialize(&buf)
	return buf.Bytes()
}

func (h *BlockHeader) serialize(w io.Writer) error {
	sec := uint32(h.Timestamp.Unix())
	if err := writeElement(w, h.Version); err != nil {
		return err
	}
	if err := writeElement(w, &h.PrevBlock); err != nil {
		return err
	}
	if err := writeElement(w, &h.MerkleRoot); err != nil {
		return err
	}
	if err := writeElement(w, sec); err != nil {
		return err
	}
	if err := writeElement(w, h.Bits); err != nil {
		return err
	}
	if err := writeElement(w, h.Nonce); err != nil {
		return err
	}
	return writeElement(w, h.PowVersion)
}

// Serialize encodes the header to w.
func (h *BlockHeader) Serialize(w io.Writer) error {
	return h.serialize(w)
}

// Deserialize decodes a header from r into the receiver.
func (h *BlockHeader) Deserialize(r io.Reader) error {
	var sec uint32
	if err := readElement(r, &h.Version); err != nil {
		return err
	}
	if err := readElement(r, &h.PrevBlock); err != nil {
		return err
	}
	if err := readElement(r, &h.MerkleRoot); err != nil {
		return err
	}
	if err := readElement(r, &sec); err != nil {
		return err
	}
	h.Timestamp = time.Unix(int64(sec), 0)
	if err := readElement(r, &h.Bits); err != nil {
		return err
	}
	if err := readElement(r, &h.Nonce); err != nil {
		return err
	}
	return readElement(r, &h.PowVersion)
}

// BlockHash computes the block identifier hash for the header.
func (h *BlockHeader) BlockHash() chainhash.Hash {
	buf := bytes.NewBuffer(make([]byte, 0, MaxBlockHeaderPayload))
	_ = h.serialize(buf)
	return chainhash.HashFuncH(buf.Bytes())
}
