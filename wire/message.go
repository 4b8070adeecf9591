// Copyright (c) 2013-2016 The btcsuite developers
// Copyright (c) 2015-2021 The Decred developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package wire

import (
	"bytes"
	"fmt"
	"io"
)

const (
	// CommandSize is the fixed size of all message commands, as
	// encoded in a message header.
	CommandSize = 12

	// MessageHeaderSize is the number of bytes in a message header:
	// 4 byte magic number + 12 byte command + 4 byte payload length +
	// 4 byte checksum.
	MessageHeaderSize = 4 + CommandSize + 4 + 4

	// MaxMessagePayload is the maximum bytes a message payload can be.
	MaxMessagePayload = (1024 * 1024 * 32) // 32MB
)

// Protocol command strings used to identify the payload type carried by a
// message.
const (
	CmdVersion  = "version"
	CmdVerAck   = "verack"
	CmdPing     = "ping"
	CmdPong     = "pong"
	CmdGetAddr  = "getaddr"
	CmdAddr     = "addr"
	CmdGetCFilter = "getcfilter"
	CmdCFilter  = "cfilter"
)

// ProtocolVersion is the latest protocol version this implementation
// understands.
const ProtocolVersion uint32 = 3

// NodeCFVersion is the protocol version which introduced committed filter
// support.
const NodeCFVersion uint32 = 2

// FilterType identifies a variant of committed filter.
type FilterType uint8

// Filter types understood by this implementation.
const (
	GCSFilterRegular FilterType = iota
)

// Message is the interface every wire protocol message implements.
type Message interface {
	BtcDecode(io.Reader, uint32) error
	BtcEncode(io.Writer, uint32) error
	Command() string
	MaxPayloadLength(uint32) uint32
}

// messageHeader holds the parsed fields of a wire protocol message header.
type messageHeader struct {
	magic    CurrencyNet
	command  string
	length   uint32
	checksum [4]byte
}

// makeEmptyMessage returns an empty message matching the given command so
// that it may be decoded into.
func makeEmptyMessage(command string) (Message, error) {
	switch command {
	case CmdVersion:
		return &MsgVersion{}, nil
	case CmdVerAck:
		return &MsgVerAck{}, nil
	case CmdPing:
		return &MsgPing{}, nil
	case CmdPong:
		return &MsgPong{}, nil
	case CmdGetAddr:
		return &MsgGetAddr{}, nil
	case CmdAddr:
		return &MsgAddr{}, nil
	case CmdCFilter:
		return &MsgCFilter{}, nil
	default:
		return nil, messageError("makeEmptyMessage",
			fmt.Sprintf("unhandled command [%s]", command))
	}
}

// FromRaw reconstructs the Message value corresponding to a command string
// and a raw, already-framed payload (i.e. one that has already passed
// header-length and checksum validation upstream -- see peer.Parser). It is
// the single point where a dispatched packet becomes a typed, decoded
// message.
func FromRaw(cmd string, payload []byte) (Message, error) {
	msg, err := makeEmptyMessage(cmd)
	if err != nil {
		return nil, err
	}

	pver := ProtocolVersion
	r := bytes.NewReader(payload)
	if err := msg.BtcDecode(r, pver); err != nil {
		return nil, err
	}
	return msg, nil
}
