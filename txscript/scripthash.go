// Copyright (c) 2013-2017 The btcsuite developers
// Copyright (c) 2015-2021 The Decred developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package txscript

// ExtractScriptHash extracts the script hash from the passed script if it is
// a standard pay-to-script-hash script. It returns nil otherwise.
func ExtractScriptHash(script []byte) []byte {
	// A pay-to-script-hash script is of the form:
	//  OP_HASH160 <20-byte hash> OP_EQUAL
	if len(script) == 23 &&
		script[0] == OP_HASH160 &&
		script[1] == OP_DATA_20 &&
		script[22] == OP_EQUAL {

		return script[2:22]
	}
	return nil
}

// IsStrictCompressedPubKeyEncoding returns whether or not the passed public
// key adheres to the strict compressed encoding: 33 bytes, prefixed with
// either 0x02 or 0x03.
func IsStrictCompressedPubKeyEncoding(pubKey []byte) bool {
	if len(pubKey) != 33 {
		return false
	}
	return pubKey[0] == 0x02 || pubKey[0] == 0x03
}

// MakeScriptNum interprets the passed raw bytes as a little-endian,
// sign-and-magnitude encoded integer and returns the resulting value,
// failing if the encoding uses more than maxBytes.
func MakeScriptNum(raw []byte, maxBytes int) (int64, error) {
	if len(raw) > maxBytes {
		return 0, errScriptNumTooLong
	}
	if len(raw) == 0 {
		return 0, nil
	}

	var result int64
	for i, b := range raw {
		result |= int64(b) << uint8(8*i)
	}

	if raw[len(raw)-1]&0x80 != 0 {
		result &^= int64(0x80) << uint8(8*(len(raw)-1))
		result = -result
	}

	return result, nil
}
