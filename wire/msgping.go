// Copyright (c) 2013-2016 The btcsuite developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package wire

import "io"

// MsgPing implements the Message interface and represents a ping message.
// It is used to ensure the connection to a remote peer is still valid.
type MsgPing struct {
	Nonce uint64
}

func (msg *MsgPing) BtcDecode(r io.Reader, pver uint32) error {
	return readElement(r, &msg.Nonce)
}

func (msg *MsgPing) BtcEncode(w io.Writer, pver uint32) error {
	return writeElement(w, msg.Nonce)
}

func (msg *MsgPing) Command() string { return CmdPing }

func (msg *MsgPing) MaxPayloadLength(pver uint32) uint32 { return 8 }

// NewMsgPing returns a new ping message with the given nonce.
func NewMsgPing(nonce uint64) *MsgPing {
	return &MsgPing{Nonce: nonce}
}
