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

	flags "github.com/jessevdk/go-flags"
)

const (
	defaultConfigFilename = "crvd.conf"
	defaultDataDirname    = "data"
	defaultLogDirname     = "logs"
	defaultLogLevel       = "info"
	defaultMaxPeers       = 125
	defaultRPCUser        = ""
	defaultRPCPass        = ""
)

// config defines the configuration options for crvd.
//
// See loadConfig for details on the configuration load process.
type config struct {
	ConfigFile string `short:"C" long:"configfile" description:"Path to configuration file"`
	AppData    string `short:"A" long:"appdata" description:"Application data directory"`
	DataDir    string `short:"b" long:"datadir" description:"Directory to store the chain header database"`
	LogDir     string `long:"logdir" description:"Directory to log output"`

	TestNet bool `long:"testnet" description:"Use the test network"`
	RegNet  bool `long:"regnet" description:"Use the regression test network"`

	Listeners      []string `long:"listen" description:"Add an interface/port to listen for connections (default all interfaces port)"`
	AddPeers       []string `short:"a" long:"addpeer" description:"Add a peer to connect with at startup"`
	ConnectPeers   []string `long:"connect" description:"Connect only to the specified peers at startup"`
	MaxPeers       int      `long:"maxpeers" description:"Max number of inbound and outbound peers"`
	Proxy          string   `long:"proxy" description:"Connect via SOCKS5 proxy (eg. 127.0.0.1:9050)"`
	ProxyUser      string   `long:"proxyuser" description:"Username for proxy server"`
	ProxyPass      string   `long:"proxypass" description:"Password for proxy server"`
	DisableListen  bool     `long:"nolisten" description:"Disable listening for incoming connections"`

	RPCListen        string `long:"rpclisten" description:"Add an interface/port to listen for RPC connections"`
	RPCUser          string `short:"u" long:"rpcuser" description:"Username for RPC connections"`
	RPCPass          string `short:"P" long:"rpcpass" description:"Password for RPC connections"`
	RPCCert          string `long:"rpccert" description:"File containing the certificate file"`
	RPCKey           string `long:"rpckey" description:"File containing the certificate key"`
	DisableRPC       bool   `long:"norpc" description:"Disable built-in RPC server"`

	DebugLevel    string `short:"d" long:"debuglevel" description:"Logging level for all subsystems {trace, debug, info, warn, error, critical}"`
	NoFileLogging bool   `long:"nofilelogging" description:"Disable file logging"`
}

// cleanAndExpandPath expands environment variables and leading ~ in the
// passed path, cleans the result, and returns it.
func cleanAndExpandPath(path string) string {
	if path == "" {
		return path
	}

	if path[0] == '~' {
		if home, err := os.UserHomeDir(); err == nil {
			path = filepath.Join(home, path[1:])
		}
	}

	return filepath.Clean(os.ExpandEnv(path))
}

// defaultAppDataDir returns the default application data directory for the
// current operating system and user, under the name "crvd".
func defaultAppDataDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return "."
	}
	return filepath.Join(home, ".crvd")
}

// loadConfig reads and parses crvd's configuration from the command line and
// an optional configuration file, in that order of precedence for options
// specified in both. It returns the parsed config, any leftover command line
// arguments, and an error if one occurred.
func loadConfig() (*config, []string, error) {
	cfg := config{
		AppData:    defaultAppDataDir(),
		DebugLevel: defaultLogLevel,
		MaxPeers:   defaultMaxPeers,
		RPCUser:    defaultRPCUser,
		RPCPass:    defaultRPCPass,
	}

	// Pre-parse just to pick up -A/--appdata and -C/--configfile overrides
	// before loading the config file, mirroring the two-pass approach used
	// throughout the btcsuite/Decred family of daemons.
	preCfg := cfg
	preParser := flags.NewParser(&preCfg, flags.Default|flags.IgnoreUnknown)
	if _, err := preParser.Parse(); err != nil {
		return nil, nil, err
	}
	if preCfg.AppData != "" {
		cfg.AppData = cleanAndExpandPath(preCfg.AppData)
	}

	configFile := filepath.Join(cfg.AppData, defaultConfigFilename)
	if preCfg.ConfigFile != "" {
		configFile = cleanAndExpandPath(preCfg.ConfigFile)
	}

	parser := flags.NewParser(&cfg, flags.Default)
	if err := flags.NewIniParser(parser).ParseFile(configFile); err != nil {
		if _, ok := err.(*os.PathError); !ok {
			return nil, nil, fmt.Errorf("failed to parse config file: %w", err)
		}
	}

	remainingArgs, err := parser.Parse()
	if err != nil {
		return nil, nil, err
	}

	if cfg.TestNet && cfg.RegNet {
		return nil, nil, fmt.Errorf("the testnet and regnet flags cannot be used together")
	}

	switch {
	case cfg.RegNet:
		activeNetParams = &regNetParams
	case cfg.TestNet:
		activeNetParams = &testNetParams
	default:
		activeNetParams = &mainNetParams
	}

	if cfg.DataDir == "" {
		cfg.DataDir = filepath.Join(cfg.AppData, netName(activeNetParams), defaultDataDirname)
	} else {
		cfg.DataDir = cleanAndExpandPath(cfg.DataDir)
	}
	if cfg.LogDir == "" {
		cfg.LogDir = filepath.Join(cfg.AppData, netName(activeNetParams), defaultLogDirname)
	} else {
		cfg.LogDir = cleanAndExpandPath(cfg.LogDir)
	}

	if cfg.RPCCert == "" {
		cfg.RPCCert = filepath.Join(cfg.AppData, "rpc.cert")
	}
	if cfg.RPCKey == "" {
		cfg.RPCKey = filepath.Join(cfg.AppData, "rpc.key")
	}
	if cfg.RPCListen == "" {
		cfg.RPCListen = "127.0.0.1:" + activeNetParams.rpcPort
	}

	if err := os.MkdirAll(cfg.DataDir, 0700); err != nil {
		return nil, nil, fmt.Errorf("failed to create data directory: %w", err)
	}
	if !cfg.NoFileLogging {
		if err := os.MkdirAll(cfg.LogDir, 0700); err != nil {
			return nil, nil, fmt.Errorf("failed to create log directory: %w", err)
		}
		initLogRotator(filepath.Join(cfg.LogDir, "crvd.log"))
	}

	if err := parseAndSetDebugLevels(cfg.DebugLevel); err != nil {
		return nil, nil, err
	}

	return &cfg, remainingArgs, nil
}
