// Copyright (c) 2021 The Creativecoin developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package peer implements the stream-oriented incremental message parser
// used to turn a raw byte stream from a network connection into discrete,
// dispatched protocol packets.
//
// The parser is a cooperative, single-threaded, non-blocking state
// machine: callers repeatedly hand it whatever bytes are currently
// available by calling Feed, and the parser emits zero or more packets (and
// zero or more errors) synchronously from within that call, performing no
// I/O of its own. This lets the same parser sit behind a blocking net.Conn
// read loop, a buffered reader, or a test harness that slices input
// byte-by-byte -- the parser never assumes anything about how its input is
// chunked. A framing error never kills the parser: it resets framing state
// back to awaiting a header and keeps consuming whatever bytes follow.
package peer

import (
	"bytes"
	"crypto/sha256"
	"encoding/binary"
	"errors"

	"github.com/creativecoin/crvd/wire"
)

// parserState identifies which part of a message the parser is currently
// accumulating bytes for.
type parserState int

const (
	// awaitHeader is the state in which the parser is accumulating bytes
	// of the fixed-size message header.
	awaitHeader parserState = iota

	// awaitPayload is the state in which the parser is accumulating
	// bytes of the variable-size message payload named by the header
	// currently in hand.
	awaitPayload
)

// ErrPayloadTooLarge is emitted via onError when a header declares a
// payload length larger than wire.MaxMessagePayload. The parser resets to
// awaitHeader and keeps operating, but it does not drain the declared
// payload length from the stream -- if the caller actually goes on to
// deliver those bytes, they will be mis-parsed as a new header. See
// DESIGN.md Open Question 3.
var ErrPayloadTooLarge = errors.New("peer: message payload exceeds maximum allowed size")

// ErrChecksumMismatch is emitted via onError when a payload's checksum
// does not match the one declared in its header.
var ErrChecksumMismatch = errors.New("peer: message checksum mismatch")

// ErrUnknownNetwork is emitted via onError when a header's magic number
// does not match the parser's configured network.
var ErrUnknownNetwork = errors.New("peer: message magic does not match configured network")

// ErrUnterminatedCommand is emitted via onError when a header's 12-byte
// command field has no NUL terminator.
var ErrUnterminatedCommand = errors.New("peer: message command is not NUL-terminated")

// Parser is a stream-oriented incremental message parser. A zero-value
// Parser is not usable; construct one with NewParser.
type Parser struct {
	net      wire.CurrencyNet
	onPacket func(msg wire.Message)
	onError  func(err error)

	buf   bytes.Buffer
	state parserState

	// header holds the currently-parsed header once the parser has
	// transitioned to awaitPayload.
	header parsedHeader
}

type parsedHeader struct {
	command string
	length  uint32
	sum     [4]byte
}

// NewParser returns a Parser configured for the given network. onPacket is
// invoked synchronously, once per fully-received and successfully decoded
// message. onError is invoked synchronously on any framing or decode
// error; the parser resets itself to await the next header and remains
// usable afterward -- errors are reported, not fatal.
func NewParser(net wire.CurrencyNet, onPacket func(msg wire.Message), onError func(err error)) *Parser {
	return &Parser{
		net:      net,
		onPacket: onPacket,
		onError:  onError,
	}
}

// Feed supplies the next chunk of bytes read from the connection. It may
// be called with any non-empty slice -- a single byte, an entire read
// buffer, or anything in between -- and will synchronously emit zero or
// more packets via onPacket and zero or more errors via onError before
// returning.
func (p *Parser) Feed(data []byte) {
	p.buf.Write(data)

	for {
		switch p.state {
		case awaitHeader:
			if p.buf.Len() < wire.MessageHeaderSize {
				return
			}
			p.consumeHeader()

		case awaitPayload:
			if uint32(p.buf.Len()) < p.header.length {
				return
			}
			p.consumePayload()
		}
	}
}

// consumeHeader parses a complete header from the front of the internal
// buffer. On any framing error it resets the parser back to awaitHeader
// and emits the error; Feed's loop keeps running either way.
func (p *Parser) consumeHeader() {
	raw := p.buf.Next(wire.MessageHeaderSize)

	magic := wire.CurrencyNet(binary.LittleEndian.Uint32(raw[0:4]))
	if magic != p.net {
		p.fail(ErrUnknownNetwork)
		return
	}

	cmdField := raw[4 : 4+wire.CommandSize]
	nul := bytes.IndexByte(cmdField, 0)
	if nul < 0 {
		p.fail(ErrUnterminatedCommand)
		return
	}
	command := string(cmdField[:nul])

	length := binary.LittleEndian.Uint32(raw[4+wire.CommandSize : 4+wire.CommandSize+4])
	if length > wire.MaxMessagePayload {
		p.fail(ErrPayloadTooLarge)
		return
	}

	var sum [4]byte
	copy(sum[:], raw[4+wire.CommandSize+4:])

	p.header = parsedHeader{command: command, length: length, sum: sum}
	p.state = awaitPayload
}

// consumePayload consumes a complete payload from the front of the
// internal buffer, verifies its checksum, decodes it via wire.FromRaw, and
// dispatches the result. The parser resets to awaitHeader before reporting
// either a packet or an error, so it is always ready for the next frame.
func (p *Parser) consumePayload() {
	payload := make([]byte, p.header.length)
	copy(payload, p.buf.Next(int(p.header.length)))

	if !checksumMatches(payload, p.header.sum) {
		p.fail(ErrChecksumMismatch)
		return
	}

	cmd := p.header.command
	p.state = awaitHeader
	p.header = parsedHeader{}

	msg, err := wire.FromRaw(cmd, payload)
	if err != nil {
		if p.onError != nil {
			p.onError(err)
		}
		return
	}

	if p.onPacket != nil {
		p.onPacket(msg)
	}
}

// fail resets the parser to awaitHeader and reports err. Framing errors are
// always recoverable: the parser's position in the stream is still known
// up to the bytes already consumed, so it can keep parsing whatever
// follows.
func (p *Parser) fail(err error) {
	p.state = awaitHeader
	p.header = parsedHeader{}
	if p.onError != nil {
		p.onError(err)
	}
}

func checksumMatches(payload []byte, want [4]byte) bool {
	first := sha256.Sum256(payload)
	second := sha256.Sum256(first[:])
	return second[0] == want[0] && second[1] == want[1] &&
		second[2] == want[2] && second[3] == want[3]
}
