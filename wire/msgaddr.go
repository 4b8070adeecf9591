// Copyright (c) 2013-2016 The btcsuite developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package wire

import (
	"fmt"
	"io"
)

// MaxAddrPerMsg is the maximum number of addresses that can be in a single
// addr message.
const MaxAddrPerMsg = 1000

// MsgAddr implements the Message interface and represents an addr message,
// used to advertise a set of known peer addresses.
type MsgAddr struct {
	AddrList []*NetAddress
}

func (msg *MsgAddr) BtcDecode(r io.Reader, pver uint32) error {
	count, err := ReadVarInt(r, pver)
	if err != nil {
		return err
	}
	if count > MaxAddrPerMsg {
		str := fmt.Sprintf("too many addresses for message "+
			"[count %v, max %v]", count, MaxAddrPerMsg)
		return messageError("MsgAddr.BtcDecode", str)
	}

	addrList := make([]*NetAddress, 0, count)
	for i := uint64(0); i < count; i++ {
		na := &NetAddress{}
		if err := na.BtcDecode(r, pver); err != nil {
			return err
		}
		addrList = append(addrList, na)
	}
	msg.AddrList = addrList
	return nil
}

func (msg *MsgAddr) BtcEncode(w io.Writer, pver uint32) error {
	count := len(msg.AddrList)
	if count > MaxAddrPerMsg {
		str := fmt.Sprintf("too many addresses for message "+
			"[count %v, max %v]", count, MaxAddrPerMsg)
		return messageError("MsgAddr.BtcEncode", str)
	}

	if err := WriteVarInt(w, pver, uint64(count)); err != nil {
		return err
	}
	for _, na := range msg.AddrList {
		if err := na.BtcEncode(w, pver); err != nil {
			return err
		}
	}
	return nil
}

func (msg *MsgAddr) Command() string { return CmdAddr }

func (msg *MsgAddr) MaxPayloadLength(pver uint32) uint32 {
	return uint32(VarIntSerializeSize(MaxAddrPerMsg)) + MaxAddrPerMsg*30
}

// AddAddress adds a known active peer to the message.
func (msg *MsgAddr) AddAddress(na *NetAddress) error {
	if len(msg.AddrList)+1 > MaxAddrPerMsg {
		return messageError("MsgAddr.AddAddress", "too many addresses in message")
	}
	msg.AddrList = append(msg.AddrList, na)
	return nil
}

// NewMsgAddr returns a new addr message that conforms to the Message
// interface.
func NewMsgAddr() *MsgAddr {
	return &MsgAddr{AddrList: make([]*NetAddress, 0, MaxAddrPerMsg)}
}
