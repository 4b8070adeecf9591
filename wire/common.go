// Copyright (c) 2013-2016 The btcsuite developers
// Copyright (c) 2015-2021 The Decred developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package wire

import (
	"encoding/binary"
	"fmt"
	"io"
	"io/ioutil"

	"github.com/creativecoin/crvd/chaincfg/chainhash"
)

// MessageError describes an issue with a message.
type MessageError struct {
	Func        string
	Description string
}

func (e *MessageError) Error() string {
	if e.Func != "" {
		return fmt.Sprintf("%s: %s", e.Func, e.Description)
	}
	return e.Description
}

func messageError(f string, desc string) error {
	return &MessageError{Func: f, Description: desc}
}

var littleEndian = binary.LittleEndian

// readElement reads the next element encoded with the wire protocol's
// little-endian fixed-width encoding from r into element.
func readElement(r io.Reader, element interface{}) error {
	switch e := element.(type) {
	case *bool:
		var b [1]byte
		if _, err := io.ReadFull(r, b[:]); err != nil {
			return err
		}
		*e = b[0] != 0
		return nil

	case *uint8:
		var b [1]byte
		if _, err := io.ReadFull(r, b[:]); err != nil {
			return err
		}
		*e = b[0]
		return nil

	case *uint16:
		var b [2]byte
		if _, err := io.ReadFull(r, b[:]); err != nil {
			return err
		}
		*e = littleEndian.Uint16(b[:])
		return nil

	case *int32:
		var b [4]byte
		if _, err := io.ReadFull(r, b[:]); err != nil {
			return err
		}
		*e = int32(littleEndian.Uint32(b[:]))
		return nil

	case *uint32:
		var b [4]byte
		if _, err := io.ReadFull(r, b[:]); err != nil {
			return err
		}
		*e = littleEndian.Uint32(b[:])
		return nil

	case *int64:
		var b [8]byte
		if _, err := io.ReadFull(r, b[:]); err != nil {
			return err
		}
		*e = int64(littleEndian.Uint64(b[:]))
		return nil

	case *uint64:
		var b [8]byte
		if _, err := io.ReadFull(r, b[:]); err != nil {
			return err
		}
		*e = littleEndian.Uint64(b[:])
		return nil

	case *chainhash.Hash:
		_, err := io.ReadFull(r, e[:])
		return err

	case *[4]byte:
		_, err := io.ReadFull(r, e[:])
		return err
	}

	return fmt.Errorf("wire: readElement called with unsupported type %T", element)
}

// writeElement writes the little-endian fixed-width wire protocol encoding
// of element to w.
func writeElement(w io.Writer, element interface{}) error {
	switch e := element.(type) {
	case bool:
		var b [1]byte
		if e {
			b[0] = 1
		}
		_, err := w.Write(b[:])
		return err

	case uint8:
		_, err := w.Write([]byte{e})
		return err

	case uint16:
		var b [2]byte
		littleEndian.PutUint16(b[:], e)
		_, err := w.Write(b[:])
		return err

	case int32:
		var b [4]byte
		littleEndian.PutUint32(b[:], uint32(e))
		_, err := w.Write(b[:])
		return err

	case uint32:
		var b [4]byte
		littleEndian.PutUint32(b[:], e)
		_, err := w.Write(b[:])
		return err

	case int64:
		var b [8]byte
		littleEndian.PutUint64(b[:], uint64(e))
		_, err := w.Write(b[:])
		return err

	case uint64:
		var b [8]byte
		littleEndian.PutUint64(b[:], e)
		_, err := w.Write(b[:])
		return err

	case *chainhash.Hash:
		_, err := w.Write(e[:])
		return err

	case [4]byte:
		_, err := w.Write(e[:])
		return err
	}

	return fmt.Errorf("wire: writeElement called with unsupported type %T", element)
}

// binarySerializer exposes single-byte put/read helpers over an io.Writer
// or io.Reader, mirroring the allocation-light style used elsewhere in the
// bitcoin-protocol-family wire codecs.
var binarySerializer binarySerial

type binarySerial struct{}

func (binarySerial) PutUint8(w io.Writer, val uint8) error {
	_, err := w.Write([]byte{val})
	return err
}

func (binarySerial) Uint8(r io.Reader) (uint8, error) {
	var b [1]byte
	if _, err := io.ReadFull(r, b[:]); err != nil {
		return 0, err
	}
	return b[0], nil
}

// ReadVarInt reads a variable-length integer (Bitcoin's CompactSize
// encoding) from r and returns it as a uint64.
func ReadVarInt(r io.Reader, pver uint32) (uint64, error) {
	var prefix [1]byte
	if _, err := io.ReadFull(r, prefix[:]); err != nil {
		return 0, err
	}

	var rv uint64
	switch prefix[0] {
	case 0xff:
		var b [8]byte
		if _, err := io.ReadFull(r, b[:]); err != nil {
			return 0, err
		}
		rv = littleEndian.Uint64(b[:])

	case 0xfe:
		var b [4]byte
		if _, err := io.ReadFull(r, b[:]); err != nil {
			return 0, err
		}
		rv = uint64(littleEndian.Uint32(b[:]))

	case 0xfd:
		var b [2]byte
		if _, err := io.ReadFull(r, b[:]); err != nil {
			return 0, err
		}
		rv = uint64(littleEndian.Uint16(b[:]))

	default:
		rv = uint64(prefix[0])
	}

	return rv, nil
}

// WriteVarInt writes val to w using the variable-length integer encoding.
func WriteVarInt(w io.Writer, pver uint32, val uint64) error {
	if val < 0xfd {
		return binarySerializer.PutUint8(w, uint8(val))
	}

	if val <= 0xffff {
		if err := binarySerializer.PutUint8(w, 0xfd); err != nil {
			return err
		}
		return writeElement(w, uint16(val))
	}

	if val <= 0xffffffff {
		if err := binarySerializer.PutUint8(w, 0xfe); err != nil {
			return err
		}
		return writeElement(w, uint32(val))
	}

	if err := binarySerializer.PutUint8(w, 0xff); err != nil {
		return err
	}
	return writeElement(w, val)
}

// VarIntSerializeSize returns the number of bytes it would take to
// serialize val as a variable-length integer.
func VarIntSerializeSize(val uint64) int {
	switch {
	case val < 0xfd:
		return 1
	case val <= 0xffff:
		return 3
	case val <= 0xffffffff:
		return 5
	default:
		return 9
	}
}

// ReadVarBytes reads a variable-length byte array from r, failing if the
// encoded length exceeds maxAllowed.
func ReadVarBytes(r io.Reader, pver uint32, maxAllowed uint32, fieldName string) ([]byte, error) {
	count, err := ReadVarInt(r, pver)
	if err != nil {
		return nil, err
	}
	if count > uint64(maxAllowed) {
		str := fmt.Sprintf("%s is larger than the max allowed size "+
			"[count %d, max %d]", fieldName, count, maxAllowed)
		return nil, messageError("ReadVarBytes", str)
	}

	b := make([]byte, count)
	if _, err := io.ReadFull(r, b); err != nil {
		return nil, err
	}
	return b, nil
}

// WriteVarBytes writes a variable-length byte array b to w, prefixed with
// its length as a variable-length integer.
func WriteVarBytes(w io.Writer, pver uint32, b []byte) error {
	if err := WriteVarInt(w, pver, uint64(len(b))); err != nil {
		return err
	}
	_, err := w.Write(b)
	return err
}

// discard reads and discards exactly n bytes from r.
func discard(r io.Reader, n int64) error {
	_, err := io.CopyN(ioutil.Discard, r, n)
	return err
}
