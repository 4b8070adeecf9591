// Copyright (c) 2013-2017 The btcsuite developers
// Copyright (c) 2015-2021 The Decred developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package txscript

import "errors"

// errScriptNumTooLong is returned by MakeScriptNum when the encoded value
// exceeds the caller-specified maximum byte length.
var errScriptNumTooLong = errors.New("txscript: script number too long")
