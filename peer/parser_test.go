// Copyright (c) 2021 The Creativecoin developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package peer

import (
	"crypto/sha256"
	"encoding/binary"
	"testing"

	"github.com/creativecoin/crvd/wire"
)

func TestParserSingleMessageWholeBuffer(t *testing.T) {
	frame, err := EncodeMessage(wire.MainNet, wire.NewMsgPing(42))
	if err != nil {
		t.Fatalf("EncodeMessage: %v", err)
	}

	var got []wire.Message
	var gotErr error
	p := NewParser(wire.MainNet,
		func(msg wire.Message) { got = append(got, msg) },
		func(err error) { gotErr = err },
	)

	p.Feed(frame)

	if gotErr != nil {
		t.Fatalf("unexpected parser error: %v", gotErr)
	}
	if len(got) != 1 {
		t.Fatalf("got %d packets, want 1", len(got))
	}

	ping, ok := got[0].(*wire.MsgPing)
	if !ok {
		t.Fatalf("packet is %T, want *wire.MsgPing", got[0])
	}
	if ping.Nonce != 42 {
		t.Fatalf("Nonce = %d, want 42", ping.Nonce)
	}
}

// TestParserByteAtATime feeds the exact same frame one byte at a time to
// verify the parser tolerates arbitrary slicing of its input and still
// emits exactly one packet only once the full frame has arrived.
func TestParserByteAtATime(t *testing.T) {
	frame, err := EncodeMessage(wire.TestNet, wire.NewMsgPong(7))
	if err != nil {
		t.Fatalf("EncodeMessage: %v", err)
	}

	var got []wire.Message
	p := NewParser(wire.TestNet,
		func(msg wire.Message) { got = append(got, msg) },
		func(err error) { t.Fatalf("unexpected parser error: %v", err) },
	)

	for i, b := range frame {
		p.Feed([]byte{b})
		if i < len(frame)-1 && len(got) != 0 {
			t.Fatalf("packet emitted before full frame received (at byte %d)", i)
		}
	}

	if len(got) != 1 {
		t.Fatalf("got %d packets, want 1", len(got))
	}
	if got[0].Command() != wire.CmdPong {
		t.Fatalf("command = %q, want %q", got[0].Command(), wire.CmdPong)
	}
}

// TestParserMultipleMessagesOneFeed verifies two back-to-back frames
// delivered in a single Feed call both get dispatched.
func TestParserMultipleMessagesOneFeed(t *testing.T) {
	frame1, _ := EncodeMessage(wire.MainNet, wire.NewMsgPing(1))
	frame2, _ := EncodeMessage(wire.MainNet, wire.NewMsgPing(2))

	var got []wire.Message
	p := NewParser(wire.MainNet,
		func(msg wire.Message) { got = append(got, msg) },
		func(err error) { t.Fatalf("unexpected parser error: %v", err) },
	)

	p.Feed(append(frame1, frame2...))

	if len(got) != 2 {
		t.Fatalf("got %d packets, want 2", len(got))
	}
}

// TestParserSplitAcrossMessageBoundary verifies a feed boundary that falls
// in the middle of the second message's header is handled correctly.
func TestParserSplitAcrossMessageBoundary(t *testing.T) {
	frame1, _ := EncodeMessage(wire.MainNet, wire.NewMsgPing(1))
	frame2, _ := EncodeMessage(wire.MainNet, wire.NewMsgPing(2))
	combined := append(frame1, frame2...)

	split := len(frame1) + 3 // a few bytes into frame2's header
	var got []wire.Message
	p := NewParser(wire.MainNet,
		func(msg wire.Message) { got = append(got, msg) },
		func(err error) { t.Fatalf("unexpected parser error: %v", err) },
	)

	p.Feed(combined[:split])
	if len(got) != 1 {
		t.Fatalf("after first chunk: got %d packets, want 1", len(got))
	}

	p.Feed(combined[split:])
	if len(got) != 2 {
		t.Fatalf("after second chunk: got %d packets, want 2", len(got))
	}
}

func TestParserWrongNetwork(t *testing.T) {
	frame, _ := EncodeMessage(wire.TestNet, wire.NewMsgPing(1))

	var gotErr error
	p := NewParser(wire.MainNet,
		func(msg wire.Message) { t.Fatal("unexpected packet dispatched") },
		func(err error) { gotErr = err },
	)

	p.Feed(frame)
	if gotErr != ErrUnknownNetwork {
		t.Fatalf("got error %v, want %v", gotErr, ErrUnknownNetwork)
	}
}

func TestParserChecksumMismatch(t *testing.T) {
	frame, _ := EncodeMessage(wire.MainNet, wire.NewMsgPing(1))
	// Corrupt a payload byte without updating the checksum.
	frame[len(frame)-1] ^= 0xff

	var gotErr error
	p := NewParser(wire.MainNet,
		func(msg wire.Message) { t.Fatal("unexpected packet dispatched") },
		func(err error) { gotErr = err },
	)

	p.Feed(frame)
	if gotErr != ErrChecksumMismatch {
		t.Fatalf("got error %v, want %v", gotErr, ErrChecksumMismatch)
	}
}

// TestParserUnterminatedCommand verifies a header whose 12-byte command
// field has no NUL byte anywhere in it is rejected rather than silently
// accepted as an unexpectedly long command name.
func TestParserUnterminatedCommand(t *testing.T) {
	header := make([]byte, wire.MessageHeaderSize)
	binary.LittleEndian.PutUint32(header[0:4], uint32(wire.MainNet))
	for i := 0; i < wire.CommandSize; i++ {
		header[4+i] = 'a' + byte(i%26)
	}
	// length and checksum are never reached; leave them zeroed.

	var gotErr error
	p := NewParser(wire.MainNet,
		func(msg wire.Message) { t.Fatal("unexpected packet dispatched") },
		func(err error) { gotErr = err },
	)

	p.Feed(header)
	if gotErr != ErrUnterminatedCommand {
		t.Fatalf("got error %v, want %v", gotErr, ErrUnterminatedCommand)
	}
}

// TestParserDecodeErrorRecovers verifies a well-framed message (valid
// magic, NUL-terminated command, size, and checksum) whose command the
// codec does not recognize is surfaced as an error rather than dispatched,
// and that the parser remains operable afterward.
func TestParserDecodeErrorRecovers(t *testing.T) {
	frame := encodeRawFrame(t, wire.MainNet, "bogus", nil)

	var got []wire.Message
	var errCount int
	p := NewParser(wire.MainNet,
		func(msg wire.Message) { got = append(got, msg) },
		func(err error) { errCount++ },
	)

	p.Feed(frame)
	if errCount != 1 {
		t.Fatalf("onError called %d times, want 1", errCount)
	}
	if len(got) != 0 {
		t.Fatalf("got %d packets, want 0", len(got))
	}

	good, _ := EncodeMessage(wire.MainNet, wire.NewMsgPing(9))
	p.Feed(good)
	if len(got) != 1 {
		t.Fatalf("after recovery: got %d packets, want 1", len(got))
	}
}

// TestParserOversizeHeaderRecovers verifies a header declaring a payload
// larger than allowed is reported via OversizePacket-style error, and that
// the parser resets and keeps processing subsequent well-formed frames
// (provided the declared oversized payload bytes are never actually
// delivered -- see DESIGN.md Open Question 3).
func TestParserOversizeHeaderRecovers(t *testing.T) {
	header := make([]byte, wire.MessageHeaderSize)
	frame, _ := EncodeMessage(wire.MainNet, wire.NewMsgPing(1))
	copy(header, frame[:wire.MessageHeaderSize])
	// Overwrite the length field with a value beyond MaxMessagePayload.
	header[4+wire.CommandSize] = 0xff
	header[4+wire.CommandSize+1] = 0xff
	header[4+wire.CommandSize+2] = 0xff
	header[4+wire.CommandSize+3] = 0x7f

	var got []wire.Message
	var gotErr error
	calls := 0
	p := NewParser(wire.MainNet,
		func(msg wire.Message) { got = append(got, msg) },
		func(err error) { gotErr = err; calls++ },
	)

	p.Feed(header)
	if gotErr != ErrPayloadTooLarge {
		t.Fatalf("got error %v, want %v", gotErr, ErrPayloadTooLarge)
	}
	if calls != 1 {
		t.Fatalf("onError called %d times, want 1", calls)
	}

	// A subsequent well-formed frame (not the undelivered oversized
	// payload bytes) must still be parsed correctly.
	good, _ := EncodeMessage(wire.MainNet, wire.NewMsgPing(2))
	p.Feed(good)
	if len(got) != 1 {
		t.Fatalf("got %d packets after recovery, want 1", len(got))
	}
	ping, ok := got[0].(*wire.MsgPing)
	if !ok || ping.Nonce != 2 {
		t.Fatalf("unexpected packet after recovery: %+v", got[0])
	}
}

// encodeRawFrame builds a well-framed message by hand for a command string
// that EncodeMessage's caller (wire.Message) cannot represent, such as one
// FromRaw does not recognize.
func encodeRawFrame(t *testing.T, net wire.CurrencyNet, cmd string, payload []byte) []byte {
	t.Helper()

	frame := make([]byte, wire.MessageHeaderSize+len(payload))
	binary.LittleEndian.PutUint32(frame[0:4], uint32(net))
	copy(frame[4:4+wire.CommandSize], cmd)
	binary.LittleEndian.PutUint32(frame[4+wire.CommandSize:4+wire.CommandSize+4], uint32(len(payload)))

	first := sha256.Sum256(payload)
	second := sha256.Sum256(first[:])
	copy(frame[4+wire.CommandSize+4:wire.MessageHeaderSize], second[:4])

	frame = append(frame, payload...)
	return frame
}
