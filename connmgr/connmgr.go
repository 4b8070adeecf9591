// Copyright (c) 2016-2017 The btcsuite developers
// Copyright (c) 2021 The Creativecoin developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package connmgr implements a generic Creativecoin network connection
// manager.
package connmgr

import (
	"fmt"
	"net"
	"sync"
	"sync/atomic"
	"time"

	"github.com/decred/go-socks/socks"
)

// maxRetryDuration caps the linearly growing backoff applied between
// connection attempts to a given address.
const maxRetryDuration = time.Minute * 5

// defaultRetryDuration is the initial, and minimum, backoff applied after a
// failed connection attempt.
const defaultRetryDuration = time.Second

// ConnState represents the state of the requested connection.
type ConnState uint8

// ConnState constants.
const (
	ConnPending ConnState = iota
	ConnEstablished
	ConnDisconnected
	ConnFailing
)

// ConnReq is the connection request to a network address.
type ConnReq struct {
	id uint64

	Addr net.Addr

	conn      net.Conn
	state     atomic.Value // ConnState
	retryCount uint32
}

func (c *ConnReq) updateState(state ConnState) {
	c.state.Store(state)
}

// State returns the current state of the connection request.
func (c *ConnReq) State() ConnState {
	if s, ok := c.state.Load().(ConnState); ok {
		return s
	}
	return ConnPending
}

// ID returns a unique identifier for the connection request.
func (c *ConnReq) ID() uint64 {
	return c.id
}

// String returns a human-readable representation of the connection
// request.
func (c *ConnReq) String() string {
	if c.Addr == nil || c.Addr.String() == "" {
		return fmt.Sprintf("reqid %d", c.id)
	}
	return fmt.Sprintf("%s (reqid %d)", c.Addr, c.id)
}

// Config holds the configuration options related to the connection manager.
type Config struct {
	// TargetOutbound is the number of outbound network connections to
	// maintain.
	TargetOutbound uint32

	// RetryDuration is the initial duration to wait before retrying
	// connection to a persistent connection.
	RetryDuration time.Duration

	// Dial connects to the address on the named network. It is set to
	// net.Dial by default but can be overridden, e.g. to dial through a
	// SOCKS proxy.
	Dial func(net.Addr) (net.Conn, error)

	// GetNewAddress returns a new address to connect to, or an error if
	// none are available.
	GetNewAddress func() (net.Addr, error)

	// OnConnection is called when a new outbound connection is
	// established.
	OnConnection func(*ConnReq, net.Conn)

	// OnDisconnection is called when an outbound connection is lost.
	OnDisconnection func(*ConnReq)
}

// ConnManager provides a manager to handle network connections.
type ConnManager struct {
	connReqCount uint64

	mu       sync.Mutex
	cfg      Config
	conns    map[uint64]*ConnReq
	quit     chan struct{}
	quitOnce sync.Once
	wg       sync.WaitGroup
}

// New returns a new Creativecoin connection manager configured with the
// given Config.
func New(cfg Config) (*ConnManager, error) {
	if cfg.Dial == nil {
		cfg.Dial = func(addr net.Addr) (net.Conn, error) {
			return net.Dial(addr.Network(), addr.String())
		}
	}
	if cfg.RetryDuration <= 0 {
		cfg.RetryDuration = defaultRetryDuration
	}
	if cfg.GetNewAddress == nil {
		return nil, fmt.Errorf("connmgr: GetNewAddress must be set")
	}

	return &ConnManager{
		cfg:   cfg,
		conns: make(map[uint64]*ConnReq),
		quit:  make(chan struct{}),
	}, nil
}

// NewProxyDialer returns a Dial function that connects through the given
// SOCKS5 proxy address.
func NewProxyDialer(proxyAddr, username, password string) func(net.Addr) (net.Conn, error) {
	dialer := &socks.Proxy{
		Addr:     proxyAddr,
		Username: username,
		Password: password,
	}

	return func(addr net.Addr) (net.Conn, error) {
		return dialer.Dial(addr.Network(), addr.String())
	}
}

// connect dials addr and registers the resulting connection request,
// invoking OnConnection on success and scheduling a retry with a linearly
// growing backoff on failure.
func (cm *ConnManager) connect(addr net.Addr) {
	id := atomic.AddUint64(&cm.connReqCount, 1)
	req := &ConnReq{id: id, Addr: addr}
	req.updateState(ConnPending)

	cm.mu.Lock()
	cm.conns[id] = req
	cm.mu.Unlock()

	conn, err := cm.cfg.Dial(addr)
	if err != nil {
		req.updateState(ConnFailing)
		log.Debugf("Failed to connect to %s: %v", addr, err)
		cm.retry(req)
		return
	}

	req.conn = conn
	req.updateState(ConnEstablished)
	if cm.cfg.OnConnection != nil {
		cm.cfg.OnConnection(req, conn)
	}
}

// retry schedules another connection attempt to req's address after a
// backoff proportional to the number of prior failures, capped at
// maxRetryDuration.
func (cm *ConnManager) retry(req *ConnReq) {
	retryCount := atomic.AddUint32(&req.retryCount, 1)
	backoff := cm.cfg.RetryDuration * time.Duration(retryCount)
	if backoff > maxRetryDuration {
		backoff = maxRetryDuration
	}

	cm.wg.Add(1)
	go func() {
		defer cm.wg.Done()
		select {
		case <-time.After(backoff):
		case <-cm.quit:
			return
		}

		// Re-dial with the same request so its failure count keeps growing.
		conn, err := cm.cfg.Dial(req.Addr)
		if err != nil {
			log.Debugf("Failed to connect to %s: %v", req.Addr, err)
			cm.retry(req)
			return
		}
		req.conn = conn
		req.updateState(ConnEstablished)
		if cm.cfg.OnConnection != nil {
			cm.cfg.OnConnection(req, conn)
		}
	}()
}

// Disconnect marks the given connection request as disconnected, closes
// its underlying connection if any, and fires OnDisconnection.
func (cm *ConnManager) Disconnect(id uint64) {
	cm.mu.Lock()
	req, ok := cm.conns[id]
	cm.mu.Unlock()
	if !ok {
		return
	}

	req.updateState(ConnDisconnected)
	if req.conn != nil {
		req.conn.Close()
	}
	if cm.cfg.OnDisconnection != nil {
		cm.cfg.OnDisconnection(req)
	}
}

// ConnectedCount returns the number of connection requests currently in
// the established state.
func (cm *ConnManager) ConnectedCount() uint32 {
	cm.mu.Lock()
	defer cm.mu.Unlock()

	var count uint32
	for _, req := range cm.conns {
		if req.State() == ConnEstablished {
			count++
		}
	}
	return count
}

// Connected returns the connection requests currently in the established
// state.
func (cm *ConnManager) Connected() []*ConnReq {
	cm.mu.Lock()
	defer cm.mu.Unlock()

	conns := make([]*ConnReq, 0, len(cm.conns))
	for _, req := range cm.conns {
		if req.State() == ConnEstablished {
			conns = append(conns, req)
		}
	}
	return conns
}

// Run starts the connection manager's outbound connection loop, spawning
// new connections up to TargetOutbound and topping the pool back up as
// connections are lost. It blocks until Stop is called.
func (cm *ConnManager) Run() {
	ticker := time.NewTicker(time.Second * 10)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			for n := cm.ConnectedCount(); n < cm.cfg.TargetOutbound; n++ {
				addr, err := cm.cfg.GetNewAddress()
				if err != nil {
					log.Debugf("No new addresses available: %v", err)
					break
				}
				go cm.connect(addr)
			}
		case <-cm.quit:
			return
		}
	}
}

// Stop gracefully shuts down the connection manager, closing all active
// connections.
func (cm *ConnManager) Stop() {
	cm.quitOnce.Do(func() {
		close(cm.quit)
	})

	cm.mu.Lock()
	for _, req := range cm.conns {
		if req.conn != nil {
			req.conn.Close()
		}
	}
	cm.mu.Unlock()

	cm.wg.Wait()
}
