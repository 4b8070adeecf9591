// Copyright (c) 2021 The Creativecoin developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package addrmgr

import "github.com/decred/slog"

// log is the package-level logger used for all log messages in this
// package. It defaults to the disabled backend so tests and callers that
// never wire up a real backend don't pay allocation cost for log calls and
// don't print to stdout.
var log = slog.Disabled

// UseLogger sets the subsystem logger to use for package log messages.
func UseLogger(logger slog.Logger) {
	log = logger
}
