// Copyright (c) 2021 The Creativecoin developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package consensus

import "errors"

var (
	// errNonPositiveTarget is returned when a header's compact-encoded
	// target decodes to zero or a negative number.
	errNonPositiveTarget = errors.New("consensus: block target difficulty is non-positive")
)
