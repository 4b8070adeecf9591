// Copyright (c) 2013-2016 The btcsuite developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package wire

import "io"

// MsgPong implements the Message interface and represents a pong message,
// sent in reply to a ping carrying the same nonce.
type MsgPong struct {
	Nonce uint64
}

func (msg *MsgPong) BtcDecode(r io.Reader, pver uint32) error {
	return readElement(r, &msg.Nonce)
}

func (msg *MsgPong) BtcEncode(w io.Writer, pver uint32) error {
	return writeElement(w, msg.Nonce)
}

func (msg *MsgPong) Command() string { return CmdPong }

func (msg *MsgPong) MaxPayloadLength(pver uint32) uint32 { return 8 }

// NewMsgPong returns a new pong message echoing the given nonce.
func NewMsgPong(nonce uint64) *MsgPong {
	return &MsgPong{Nonce: nonce}
}
