// Copyright (c) 2013-2017 The btcsuite developers
// Copyright (c) 2015-2021 The Decred developers
// Copyright (c) 2021 The Creativecoin developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/creativecoin/crvd/addrmgr"
	"github.com/creativecoin/crvd/connmgr"
	"github.com/creativecoin/crvd/database"
	"github.com/creativecoin/crvd/rpc"
	"github.com/decred/slog"
	"github.com/jrick/logrotate/rotator"
)

// logWriter implements an io.Writer that outputs to both standard output and
// the write-end pipe of the log rotator. When file logging is disabled the
// rotator is never initialized and output goes to standard output only.
type logWriter struct{}

func (logWriter) Write(p []byte) (int, error) {
	os.Stdout.Write(p)
	if logRotator != nil {
		logRotator.Write(p)
	}
	return len(p), nil
}

// backendLog is the logging backend used to create all subsystem loggers.
// Until initLogRotator has run, it writes to standard output only.
var backendLog = slog.NewBackend(logWriter{})

// logRotator is the writer the logging subsystem logs to in addition to
// standard output. It must be closed on application shutdown.
var logRotator *rotator.Rotator

var (
	srvrLog = backendLog.Logger("SRVR")
	amgrLog = backendLog.Logger("AMGR")
	cmgrLog = backendLog.Logger("CMGR")
	bcdbLog = backendLog.Logger("BCDB")
	rpcsLog = backendLog.Logger("RPCS")
)

// subsystemLoggers maps each subsystem identifier to its associated logger.
var subsystemLoggers = map[string]slog.Logger{
	"SRVR": srvrLog,
	"AMGR": amgrLog,
	"CMGR": cmgrLog,
	"BCDB": bcdbLog,
	"RPCS": rpcsLog,
}

func init() {
	addrmgr.UseLogger(amgrLog)
	connmgr.UseLogger(cmgrLog)
	database.UseLogger(bcdbLog)
	rpc.UseLogger(rpcsLog)
}

// initLogRotator initializes the logging rotator to write logs to logFile
// and create roll files in the same directory. It must be called before
// the package-global subsystem loggers are used.
func initLogRotator(logFile string) {
	logDir, _ := filepath.Split(logFile)
	if err := os.MkdirAll(logDir, 0700); err != nil {
		fmt.Fprintf(os.Stderr, "failed to create log directory: %v\n", err)
		os.Exit(1)
	}

	r, err := rotator.New(logFile, 10*1024, false, 3)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to create file rotator: %v\n", err)
		os.Exit(1)
	}
	logRotator = r
}

// setLogLevel sets the logging level for the provided subsystem. Invalid
// subsystems are ignored.
func setLogLevel(subsystemID, logLevel string) {
	logger, ok := subsystemLoggers[subsystemID]
	if !ok {
		return
	}
	level, _ := slog.LevelFromString(logLevel)
	logger.SetLevel(level)
}

// setLogLevels sets the log level for all subsystem loggers to the passed
// level.
func setLogLevels(logLevel string) {
	for subsystemID := range subsystemLoggers {
		setLogLevel(subsystemID, logLevel)
	}
}

// validLogLevel reports whether logLevel is a valid debug log level.
func validLogLevel(logLevel string) bool {
	switch logLevel {
	case "trace", "debug", "info", "warn", "error", "critical":
		return true
	}
	return false
}

// parseAndSetDebugLevels attempts to parse the specified debug level
// specification and set the levels accordingly. It supports both a single
// level applied to every subsystem ("debug") and a comma-separated list of
// subsystem=level pairs ("AMGR=debug,CMGR=info").
func parseAndSetDebugLevels(debugLevel string) error {
	if !strings.Contains(debugLevel, ",") && !strings.Contains(debugLevel, "=") {
		if !validLogLevel(debugLevel) {
			return fmt.Errorf("the specified debug level [%s] is invalid", debugLevel)
		}
		setLogLevels(debugLevel)
		return nil
	}

	for _, pair := range strings.Split(debugLevel, ",") {
		fields := strings.Split(pair, "=")
		if len(fields) != 2 {
			return fmt.Errorf("the specified debug level contains an invalid "+
				"subsystem/level pair [%s]", pair)
		}

		subsysID, logLevel := fields[0], fields[1]
		if _, ok := subsystemLoggers[subsysID]; !ok {
			return fmt.Errorf("the specified subsystem [%s] is invalid", subsysID)
		}
		if !validLogLevel(logLevel) {
			return fmt.Errorf("the specified debug level [%s] is invalid", logLevel)
		}
		setLogLevel(subsysID, logLevel)
	}

	return nil
}
