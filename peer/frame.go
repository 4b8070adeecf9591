// Copyright (c) 2021 The Creativecoin developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package peer

import (
	"bytes"
	"crypto/sha256"
	"encoding/binary"
	"fmt"

	"github.com/creativecoin/crvd/wire"
)

// EncodeMessage serializes msg into a complete wire frame (magic, command,
// length, checksum, payload) for the given network, ready to be written to
// a connection and fed, byte for byte, into a peer.Parser on the other
// end.
func EncodeMessage(net wire.CurrencyNet, msg wire.Message) ([]byte, error) {
	var payloadBuf bytes.Buffer
	if err := msg.BtcEncode(&payloadBuf, wire.ProtocolVersion); err != nil {
		return nil, err
	}
	payload := payloadBuf.Bytes()

	if len(payload) > wire.MaxMessagePayload {
		return nil, fmt.Errorf("peer: payload for %q exceeds maximum allowed size", msg.Command())
	}

	cmd := msg.Command()
	if len(cmd) > wire.CommandSize {
		return nil, fmt.Errorf("peer: command %q exceeds %d bytes", cmd, wire.CommandSize)
	}

	frame := make([]byte, wire.MessageHeaderSize+len(payload))
	binary.LittleEndian.PutUint32(frame[0:4], uint32(net))
	copy(frame[4:4+wire.CommandSize], cmd)
	binary.LittleEndian.PutUint32(frame[4+wire.CommandSize:4+wire.CommandSize+4], uint32(len(payload)))

	first := sha256.Sum256(payload)
	sum := sha256.Sum256(first[:])
	copy(frame[4+wire.CommandSize+4:wire.MessageHeaderSize], sum[:4])

	copy(frame[wire.MessageHeaderSize:], payload)
	return frame, nil
}
