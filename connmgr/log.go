// Copyright (c) 2021 The Creativecoin developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package connmgr

import "github.com/decred/slog"

// log is the package-level logger used for all log messages in this
// package. It defaults to the disabled backend.
var log = slog.Disabled

// UseLogger sets the subsystem logger to use for package log messages.
func UseLogger(logger slog.Logger) {
	log = logger
}
