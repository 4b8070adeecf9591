// Copyright (c) 2013-2017 The btcsuite developers
// Copyright (c) 2015-2021 The Decred developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package txscript

import "encoding/binary"

// ScriptBuilder provides a facility for building custom scripts. It allows
// you to push opcodes, ints, and data while respecting canonical encoding.
type ScriptBuilder struct {
	script []byte
	err    error
}

// NewScriptBuilder returns a new instance of a script builder.
func NewScriptBuilder() *ScriptBuilder {
	return &ScriptBuilder{script: make([]byte, 0, 64)}
}

// AddOp pushes the passed opcode to the end of the script.
func (b *ScriptBuilder) AddOp(op byte) *ScriptBuilder {
	if b.err != nil {
		return b
	}
	b.script = append(b.script, op)
	return b
}

// AddInt64 pushes the passed integer to the end of the script using the
// smallest canonical push.
func (b *ScriptBuilder) AddInt64(val int64) *ScriptBuilder {
	if b.err != nil {
		return b
	}

	if val == 0 {
		return b.AddOp(OP_0)
	}
	if val >= 1 && val <= 16 {
		return b.AddOp(byte(0x51 - 1 + val))
	}

	return b.AddData(serializeScriptNum(val))
}

// AddData pushes the passed data to the end of the script, choosing the
// smallest canonical encoding for the length prefix.
func (b *ScriptBuilder) AddData(data []byte) *ScriptBuilder {
	if b.err != nil {
		return b
	}

	n := len(data)
	switch {
	case n < OP_PUSHDATA1:
		b.script = append(b.script, byte(n))
	case n <= 0xff:
		b.script = append(b.script, OP_PUSHDATA1, byte(n))
	case n <= 0xffff:
		var buf [2]byte
		binary.LittleEndian.PutUint16(buf[:], uint16(n))
		b.script = append(b.script, OP_PUSHDATA2, buf[0], buf[1])
	default:
		var buf [4]byte
		binary.LittleEndian.PutUint32(buf[:], uint32(n))
		b.script = append(b.script, OP_PUSHDATA4, buf[0], buf[1], buf[2], buf[3])
	}

	b.script = append(b.script, data...)
	return b
}

// Script returns the currently built script, or any error encountered while
// constructing it.
func (b *ScriptBuilder) Script() ([]byte, error) {
	if b.err != nil {
		return nil, b.err
	}
	return b.script, nil
}

// serializeScriptNum encodes val using the minimally-encoded, little-endian,
// sign-and-magnitude representation scripts use for integers larger than
// what a small-int opcode can hold.
func serializeScriptNum(val int64) []byte {
	if val == 0 {
		return nil
	}

	negative := val < 0
	absVal := val
	if negative {
		absVal = -val
	}

	var result []byte
	for absVal > 0 {
		result = append(result, byte(absVal&0xff))
		absVal >>= 8
	}

	if result[len(result)-1]&0x80 != 0 {
		if negative {
			result = append(result, 0x80)
		} else {
			result = append(result, 0x00)
		}
	} else if negative {
		result[len(result)-1] |= 0x80
	}

	return result
}
