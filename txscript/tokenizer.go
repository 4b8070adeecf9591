// Copyright (c) 2013-2017 The btcsuite developers
// Copyright (c) 2015-2021 The Decred developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package txscript

import (
	"encoding/binary"
	"fmt"
)

// ScriptTokenizer provides a facility for easily and efficiently tokenizing
// transaction scripts without creating allocations. Each successive opcode is
// parsed with the Next function, which returns false when iteration is
// complete, either due to successfully tokenizing the entire script or
// encountering a parse error.
type ScriptTokenizer struct {
	script  []byte
	offset int32
	op      byte
	data    []byte
	err     error
}

// MakeScriptTokenizer returns a new instance of a script tokenizer for the
// passed script. Version is accepted for API parity with the upstream
// multi-version script engine but only version 0 scripts are parsed here.
func MakeScriptTokenizer(version uint16, script []byte) ScriptTokenizer {
	return ScriptTokenizer{script: script}
}

// Done returns true when either all opcodes have been exhausted or a parse
// failure was encountered and therefore the state has an associated error.
func (t *ScriptTokenizer) Done() bool {
	return t.err != nil || int(t.offset) >= len(t.script)
}

// Next attempts to parse the next opcode and returns whether or not it was
// successful. It will not be successful if invoked when already at the end
// of the script, a parse failure is encountered, or an associated error
// already exists due to a previous parse failure.
func (t *ScriptTokenizer) Next() bool {
	if t.Done() {
		return false
	}

	op := t.script[t.offset]
	switch {
	case op < OP_PUSHDATA1:
		// Direct data push of op bytes.
		dataLen := int32(op)
		if t.offset+1+dataLen > int32(len(t.script)) {
			t.err = fmt.Errorf("opcode at offset %d requires %d bytes, "+
				"script has %d remaining", t.offset, dataLen,
				int32(len(t.script))-t.offset-1)
			return false
		}
		t.op = op
		t.data = t.script[t.offset+1 : t.offset+1+dataLen]
		t.offset += 1 + dataLen
		return true

	case op == OP_PUSHDATA1, op == OP_PUSHDATA2, op == OP_PUSHDATA4:
		var lenBytes int32
		switch op {
		case OP_PUSHDATA1:
			lenBytes = 1
		case OP_PUSHDATA2:
			lenBytes = 2
		case OP_PUSHDATA4:
			lenBytes = 4
		}
		if t.offset+1+lenBytes > int32(len(t.script)) {
			t.err = fmt.Errorf("opcode at offset %d requires %d bytes of "+
				"length prefix", t.offset, lenBytes)
			return false
		}

		var dataLen int32
		lenStart := t.offset + 1
		switch lenBytes {
		case 1:
			dataLen = int32(t.script[lenStart])
		case 2:
			dataLen = int32(binary.LittleEndian.Uint16(t.script[lenStart : lenStart+2]))
		case 4:
			dataLen = int32(binary.LittleEndian.Uint32(t.script[lenStart : lenStart+4]))
		}

		dataStart := lenStart + lenBytes
		if dataStart+dataLen > int32(len(t.script)) {
			t.err = fmt.Errorf("opcode at offset %d pushes %d bytes, "+
				"script has %d remaining", t.offset, dataLen,
				int32(len(t.script))-dataStart)
			return false
		}

		t.op = op
		t.data = t.script[dataStart : dataStart+dataLen]
		t.offset = dataStart + dataLen
		return true

	default:
		t.op = op
		t.data = nil
		t.offset++
		return true
	}
}

// Opcode returns the current opcode associated with the tokenizer.
func (t *ScriptTokenizer) Opcode() byte {
	return t.op
}

// Data returns the data associated with the most recently successfully
// parsed opcode.
func (t *ScriptTokenizer) Data() []byte {
	return t.data
}

// ByteIndex returns the current offset into the full script that will be
// parsed next.
func (t *ScriptTokenizer) ByteIndex() int32 {
	return t.offset
}

// Script returns the full script associated with the tokenizer.
func (t *ScriptTokenizer) Script() []byte {
	return t.script
}

// Err returns any errors currently associated with the tokenizer, which
// will only be set when a parsing error occurred.
func (t *ScriptTokenizer) Err() error {
	return t.err
}
