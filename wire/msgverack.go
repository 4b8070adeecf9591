// Copyright (c) 2013-2016 The btcsuite developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package wire

import "io"

// MsgVerAck implements the Message interface and represents a verack
// message. It acknowledges receipt and acceptance of a version message
// and carries no payload of its own.
type MsgVerAck struct{}

func (msg *MsgVerAck) BtcDecode(r io.Reader, pver uint32) error { return nil }

func (msg *MsgVerAck) BtcEncode(w io.Writer, pver uint32) error { return nil }

func (msg *MsgVerAck) Command() string { return CmdVerAck }

func (msg *MsgVerAck) MaxPayloadLength(pver uint32) uint32 { return 0 }

// NewMsgVerAck returns a new verack message.
func NewMsgVerAck() *MsgVerAck {
	return &MsgVerAck{}
}
