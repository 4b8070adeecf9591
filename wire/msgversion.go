// Copyright (c) 2013-2016 The btcsuite developers
// Copyright (c) 2015-2021 The Decred developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package wire

import (
	"io"

	"github.com/jrick/bitset"
)

// MsgVersion implements the Message interface and represents the version
// message exchanged at the start of every peer connection to negotiate
// protocol parameters.
type MsgVersion struct {
	ProtocolVersion uint32
	Services        ServiceFlag
	Timestamp       int64
	Nonce           uint64
	UserAgent       string
	LastBlock       int32
}

func (msg *MsgVersion) BtcDecode(r io.Reader, pver uint32) error {
	if err := readElement(r, &msg.ProtocolVersion); err != nil {
		return err
	}

	var services uint64
	if err := readElement(r, &services); err != nil {
		return err
	}
	msg.Services = ServiceFlag(services)

	if err := readElement(r, &msg.Timestamp); err != nil {
		return err
	}
	if err := readElement(r, &msg.Nonce); err != nil {
		return err
	}

	userAgent, err := ReadVarBytes(r, pver, 256, "user agent")
	if err != nil {
		return err
	}
	msg.UserAgent = string(userAgent)

	return readElement(r, &msg.LastBlock)
}

func (msg *MsgVersion) BtcEncode(w io.Writer, pver uint32) error {
	if err := writeElement(w, msg.ProtocolVersion); err != nil {
		return err
	}
	if err := writeElement(w, uint64(msg.Services)); err != nil {
		return err
	}
	if err := writeElement(w, msg.Timestamp); err != nil {
		return err
	}
	if err := writeElement(w, msg.Nonce); err != nil {
		return err
	}
	if err := WriteVarBytes(w, pver, []byte(msg.UserAgent)); err != nil {
		return err
	}
	return writeElement(w, msg.LastBlock)
}

func (msg *MsgVersion) Command() string { return CmdVersion }

func (msg *MsgVersion) MaxPayloadLength(pver uint32) uint32 {
	return 4 + 8 + 8 + 8 + uint32(VarIntSerializeSize(256)) + 256 + 4
}

// ServicesBitset returns the message's advertised services encoded as a
// 64-bit bitset, one bit per service flag.
func (msg *MsgVersion) ServicesBitset() bitset.Bytes {
	return serviceBits(msg.Services)
}

// NewMsgVersion returns a new version message using the provided nonce and
// supported services.
func NewMsgVersion(nonce uint64, services ServiceFlag, lastBlock int32) *MsgVersion {
	return &MsgVersion{
		ProtocolVersion: ProtocolVersion,
		Services:        services,
		Nonce:           nonce,
		UserAgent:       "/crvd:0.1.0/",
		LastBlock:       lastBlock,
	}
}
