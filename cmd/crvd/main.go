// Copyright (c) 2013-2017 The btcsuite developers
// Copyright (c) 2015-2021 The Decred developers
// Copyright (c) 2021 The Creativecoin developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Command crvd is a headers-and-filters node for the Creativecoin network:
// it discovers and maintains outbound peer connections, persists the chain
// of block headers to disk, and exposes a narrow JSON-RPC surface for
// querying chain and peer state.
package main

import (
	"crypto/tls"
	"errors"
	"fmt"
	"net"
	"os"
	"os/signal"
	"path/filepath"
	"strconv"
	"syscall"
	"time"

	"github.com/creativecoin/crvd/addrmgr"
	"github.com/creativecoin/crvd/certgen"
	"github.com/creativecoin/crvd/connmgr"
	"github.com/creativecoin/crvd/database"
	"github.com/creativecoin/crvd/rpc"
	"github.com/creativecoin/crvd/seed"
	"github.com/creativecoin/crvd/wire"
)

const defaultTargetOutbound = 8

// netAddr is a minimal net.Addr used to hand discovered peer addresses to
// the connection manager.
type netAddr struct {
	network, addr string
}

func (a netAddr) Network() string { return a.network }
func (a netAddr) String() string  { return a.addr }

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run() error {
	cfg, _, err := loadConfig()
	if err != nil {
		return err
	}
	if logRotator != nil {
		defer logRotator.Close()
	}

	db, err := database.Open(filepath.Join(cfg.DataDir, "headers.ldb"))
	if err != nil {
		return fmt.Errorf("failed to open header database: %w", err)
	}
	defer db.Close()

	amgr := addrmgr.New(filepath.Join(cfg.AppData, "peers.json"))
	if err := amgr.Load(); err != nil {
		srvrLog.Warnf("Failed to load peers file: %v", err)
	}
	for _, addr := range cfg.AddPeers {
		addAddrString(amgr, addr, activeNetParams.DefaultPort)
	}
	if amgr.NumAddresses() == 0 {
		seedAddrManager(amgr, netName(activeNetParams), activeNetParams.DefaultPort)
	}

	targetOutbound := uint32(defaultTargetOutbound)
	if cfg.MaxPeers > 0 && uint32(cfg.MaxPeers) < targetOutbound {
		targetOutbound = uint32(cfg.MaxPeers)
	}

	getNewAddress := addrManagerSource(amgr)
	if len(cfg.ConnectPeers) > 0 {
		targetOutbound = uint32(len(cfg.ConnectPeers))
		getNewAddress = fixedPeerSource(cfg.ConnectPeers, activeNetParams.DefaultPort)
	}

	cmgrCfg := connmgr.Config{
		TargetOutbound: targetOutbound,
		GetNewAddress:  getNewAddress,
		OnConnection: func(req *connmgr.ConnReq, conn net.Conn) {
			srvrLog.Infof("Connected to peer %s", req)
			go runPeerSession(conn, activeNetParams.Net, false)
		},
		OnDisconnection: func(req *connmgr.ConnReq) {
			srvrLog.Infof("Disconnected from peer %s", req)
		},
	}
	if cfg.Proxy != "" {
		cmgrCfg.Dial = connmgr.NewProxyDialer(cfg.Proxy, cfg.ProxyUser, cfg.ProxyPass)
	} else {
		cmgrCfg.Dial = func(addr net.Addr) (net.Conn, error) {
			return net.Dial(addr.Network(), addr.String())
		}
	}

	cm, err := connmgr.New(cmgrCfg)
	if err != nil {
		return fmt.Errorf("failed to create connection manager: %w", err)
	}
	go cm.Run()

	var listener net.Listener
	if !cfg.DisableListen {
		listener, err = listenForPeers(cfg, activeNetParams.Net)
		if err != nil {
			return fmt.Errorf("failed to start peer listener: %w", err)
		}
		defer listener.Close()
	}

	var rpcServer *rpc.Server
	if !cfg.DisableRPC {
		cert, err := loadOrGenerateRPCCert(cfg.RPCCert, cfg.RPCKey)
		if err != nil {
			return fmt.Errorf("failed to prepare RPC certificate: %w", err)
		}

		rpcServer = rpc.NewServer(rpc.Config{
			Listen:   cfg.RPCListen,
			User:     cfg.RPCUser,
			Password: cfg.RPCPass,
			Cert:     cert,
			Chain:    newChainManager(db, activeNetParams.Params),
			Peers:    newPeerManager(cm),
		})
		if err := rpcServer.Start(); err != nil {
			return fmt.Errorf("failed to start RPC server: %w", err)
		}
	}

	interrupt := make(chan os.Signal, 1)
	signal.Notify(interrupt, os.Interrupt, syscall.SIGTERM)
	<-interrupt

	srvrLog.Infof("Shutting down")
	if rpcServer != nil {
		rpcServer.Stop()
	}
	cm.Stop()
	if err := amgr.Save(); err != nil {
		srvrLog.Warnf("Failed to save peers file: %v", err)
	}
	return nil
}

// normalizeAddr ensures addr carries a port, defaulting to defaultPort when
// none was specified.
func normalizeAddr(addr, defaultPort string) string {
	_, _, err := net.SplitHostPort(addr)
	if err != nil {
		return net.JoinHostPort(addr, defaultPort)
	}
	return addr
}

// addAddrString resolves a user-supplied host[:port] peer address and adds
// it to amgr. Resolution failures are logged and skipped.
func addAddrString(amgr *addrmgr.AddrManager, addr, defaultPort string) {
	host, portStr, err := net.SplitHostPort(addr)
	if err != nil {
		host, portStr = addr, defaultPort
	}
	port, err := strconv.ParseUint(portStr, 10, 16)
	if err != nil {
		srvrLog.Warnf("Invalid peer port in %q: %v", addr, err)
		return
	}

	ips, err := net.LookupHost(host)
	if err != nil {
		srvrLog.Warnf("Failed to resolve peer address %q: %v", addr, err)
		return
	}
	for _, ip := range ips {
		parsed := net.ParseIP(ip)
		if parsed == nil {
			continue
		}
		na := wire.NewNetAddressIPPort(parsed, uint16(port), wire.SFNodeNetwork)
		amgr.AddAddress(na, na)
	}
}

// addrManagerSource returns a connmgr.Config.GetNewAddress function that
// draws candidate addresses from amgr.
func addrManagerSource(amgr *addrmgr.AddrManager) func() (net.Addr, error) {
	return func() (net.Addr, error) {
		known := amgr.GetAddress()
		if known == nil {
			return nil, errors.New("no addresses available")
		}
		na := known.NetAddress()
		return netAddr{"tcp", net.JoinHostPort(na.IP.String(), strconv.Itoa(int(na.Port)))}, nil
	}
}

// fixedPeerSource returns a connmgr.Config.GetNewAddress function that
// cycles through peers in order, ignoring the address manager entirely.
// It backs the "connect only to the specified peers" mode.
func fixedPeerSource(peers []string, defaultPort string) func() (net.Addr, error) {
	var next int
	return func() (net.Addr, error) {
		if len(peers) == 0 {
			return nil, errors.New("no connect peers configured")
		}
		addr := normalizeAddr(peers[next%len(peers)], defaultPort)
		next++
		return netAddr{"tcp", addr}, nil
	}
}

// seedAddrManager resolves the network's DNS seed hosts and adds the
// discovered addresses to amgr. It is best-effort: resolution failures for
// individual seeds are logged and skipped.
func seedAddrManager(amgr *addrmgr.AddrManager, network, defaultPort string) {
	for _, host := range seed.Get(network) {
		addAddrString(amgr, host, defaultPort)
	}
}

// loadOrGenerateRPCCert loads an existing TLS certificate/key pair from
// disk, generating and persisting a new self-signed pair if neither file
// exists yet.
func loadOrGenerateRPCCert(certPath, keyPath string) (tls.Certificate, error) {
	if _, err := os.Stat(certPath); os.IsNotExist(err) {
		validUntil := time.Now().Add(10 * 365 * 24 * time.Hour)
		cert, key, err := certgen.NewTLSCertPair("crvd autogenerated cert", validUntil, nil)
		if err != nil {
			return tls.Certificate{}, err
		}
		if err := os.WriteFile(certPath, cert, 0600); err != nil {
			return tls.Certificate{}, err
		}
		if err := os.WriteFile(keyPath, key, 0600); err != nil {
			return tls.Certificate{}, err
		}
	}

	return tls.LoadX509KeyPair(certPath, keyPath)
}
