// Copyright (c) 2021 The Creativecoin developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package connmgr

import (
	"errors"
	"net"
	"sync"
	"testing"
	"time"
)

type stubAddr struct {
	network, addr string
}

func (s stubAddr) Network() string { return s.network }
func (s stubAddr) String() string  { return s.addr }

func TestNewRequiresGetNewAddress(t *testing.T) {
	if _, err := New(Config{}); err == nil {
		t.Fatal("expected error when GetNewAddress is nil")
	}
}

func TestNewDefaultsDialAndRetryDuration(t *testing.T) {
	cm, err := New(Config{
		GetNewAddress: func() (net.Addr, error) { return nil, errors.New("none") },
	})
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if cm.cfg.Dial == nil {
		t.Fatal("expected default Dial to be set")
	}
	if cm.cfg.RetryDuration != defaultRetryDuration {
		t.Fatalf("RetryDuration = %v, want %v", cm.cfg.RetryDuration, defaultRetryDuration)
	}
}

func TestConnectInvokesOnConnectionOnSuccess(t *testing.T) {
	var mu sync.Mutex
	var connected bool

	cm, err := New(Config{
		GetNewAddress: func() (net.Addr, error) { return stubAddr{"tcp", "203.0.113.1:8333"}, nil },
		Dial: func(addr net.Addr) (net.Conn, error) {
			c1, c2 := net.Pipe()
			go c2.Close()
			return c1, nil
		},
		OnConnection: func(req *ConnReq, conn net.Conn) {
			mu.Lock()
			connected = true
			mu.Unlock()
			conn.Close()
		},
	})
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	cm.connect(stubAddr{"tcp", "203.0.113.1:8333"})

	mu.Lock()
	defer mu.Unlock()
	if !connected {
		t.Fatal("expected OnConnection to have been called")
	}
}

func TestConnectRetriesOnDialFailure(t *testing.T) {
	var attempts int
	var mu sync.Mutex

	cm, err := New(Config{
		GetNewAddress: func() (net.Addr, error) { return nil, errors.New("none") },
		RetryDuration: time.Millisecond,
		Dial: func(addr net.Addr) (net.Conn, error) {
			mu.Lock()
			attempts++
			mu.Unlock()
			return nil, errors.New("dial failed")
		},
	})
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	defer cm.Stop()

	cm.connect(stubAddr{"tcp", "203.0.113.1:8333"})

	time.Sleep(20 * time.Millisecond)

	mu.Lock()
	defer mu.Unlock()
	if attempts < 2 {
		t.Fatalf("attempts = %d, want at least 2 (initial + retry)", attempts)
	}
}

func TestConnectedListsEstablishedConns(t *testing.T) {
	cm, err := New(Config{
		GetNewAddress: func() (net.Addr, error) { return nil, errors.New("none") },
		Dial: func(addr net.Addr) (net.Conn, error) {
			c1, c2 := net.Pipe()
			go c2.Close()
			return c1, nil
		},
	})
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	cm.connect(stubAddr{"tcp", "203.0.113.1:8333"})

	conns := cm.Connected()
	if len(conns) != 1 {
		t.Fatalf("Connected() returned %d conns, want 1", len(conns))
	}
	if conns[0].Addr.String() != "203.0.113.1:8333" {
		t.Fatalf("Connected()[0].Addr = %v, want 203.0.113.1:8333", conns[0].Addr)
	}
}

func TestConnReqString(t *testing.T) {
	req := &ConnReq{id: 7, Addr: stubAddr{"tcp", "203.0.113.1:8333"}}
	want := "203.0.113.1:8333 (reqid 7)"
	if got := req.String(); got != want {
		t.Fatalf("String() = %q, want %q", got, want)
	}
}
