// Copyright (c) 2013-2017 The btcsuite developers
// Copyright (c) 2015-2017 The Decred developers
// Copyright (c) 2021 The Creativecoin developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package rpc implements a narrow HTTP/websocket JSON-RPC command surface
// for querying and controlling a running node.
package rpc

import (
	"crypto/sha256"
	"crypto/subtle"
	"crypto/tls"
	"encoding/json"
	"io"
	"net"
	"net/http"
	"sync"
	"sync/atomic"

	"github.com/creativecoin/crvd/rpc/jsonrpc/types"
	"github.com/gorilla/websocket"
)

// commandHandler processes a single parsed JSON-RPC command and returns its
// result, or an error to be reported back to the caller.
type commandHandler func(s *Server, params json.RawMessage) (interface{}, error)

var rpcHandlers = map[string]commandHandler{
	"getblockcount": handleGetBlockCount,
	"getpeerinfo":   handleGetPeerInfo,
	"submitblock":   handleSubmitBlock,
	"ping":          handlePing,
}

// request is a JSON-RPC 1.0 style request object.
type request struct {
	ID     interface{}     `json:"id"`
	Method string          `json:"method"`
	Params json.RawMessage `json:"params,omitempty"`
}

// response is a JSON-RPC 1.0 style response object.
type response struct {
	ID     interface{} `json:"id"`
	Result interface{} `json:"result,omitempty"`
	Error  *rpcError   `json:"error,omitempty"`
}

type rpcError struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// PeerInfoProvider is implemented by whatever tracks the node's currently
// connected peers.
type PeerInfoProvider interface {
	PeerInfo() []PeerInfo
}

// PeerInfo summarizes a single connected peer for the getpeerinfo command.
type PeerInfo struct {
	Addr      string `json:"addr"`
	BytesSent uint64 `json:"bytessent"`
	BytesRecv uint64 `json:"bytesrecv"`
}

// ChainInfoProvider is implemented by whatever tracks the locally stored
// chain of headers.
type ChainInfoProvider interface {
	// BlockCount returns the height of the current chain tip.
	BlockCount() int64
	// SubmitBlock accepts a raw, hex-encoded block and reports whether it
	// was accepted.
	SubmitBlock(hexBlock string) error
}

// Config holds the Server's dependencies and listener configuration.
type Config struct {
	Listen   string
	User     string
	Password string
	Cert     tls.Certificate

	Chain ChainInfoProvider
	Peers PeerInfoProvider
}

// Server is a concurrent-safe HTTP+websocket JSON-RPC server.
type Server struct {
	cfg      Config
	authsha  [sha256.Size]byte
	upgrader websocket.Upgrader

	listener net.Listener
	server   *http.Server

	shutdown int32
	wg       sync.WaitGroup
}

// NewServer returns a Server configured with cfg. It does not begin
// listening until Start is called.
func NewServer(cfg Config) *Server {
	auth := cfg.User + ":" + cfg.Password
	s := &Server{
		cfg:     cfg,
		authsha: sha256.Sum256([]byte(auth)),
	}
	s.upgrader = websocket.Upgrader{
		ReadBufferSize:  1024,
		WriteBufferSize: 1024,
	}
	return s
}

// Start begins listening for and serving JSON-RPC requests over TLS. It
// returns once the listener is established; serving happens in background
// goroutines.
func (s *Server) Start() error {
	tlsCfg := &tls.Config{
		Certificates: []tls.Certificate{s.cfg.Cert},
		MinVersion:   tls.VersionTLS12,
	}

	listener, err := tls.Listen("tcp", s.cfg.Listen, tlsCfg)
	if err != nil {
		return err
	}
	s.listener = listener

	mux := http.NewServeMux()
	mux.HandleFunc("/", s.handleHTTP)
	mux.HandleFunc("/ws", s.handleWebsocket)
	s.server = &http.Server{Handler: mux}

	s.wg.Add(1)
	go func() {
		defer s.wg.Done()
		err := s.server.Serve(listener)
		if err != nil && atomic.LoadInt32(&s.shutdown) == 0 {
			log.Errorf("RPC server stopped serving: %v", err)
		}
	}()

	log.Infof("RPC server listening on %s", s.cfg.Listen)
	return nil
}

// Stop gracefully shuts the server down, closing its listener and waiting
// for in-flight handlers to return.
func (s *Server) Stop() error {
	if !atomic.CompareAndSwapInt32(&s.shutdown, 0, 1) {
		return nil
	}
	err := s.listener.Close()
	s.wg.Wait()
	return err
}

func (s *Server) checkAuth(r *http.Request) bool {
	user, pass, ok := r.BasicAuth()
	if !ok {
		return false
	}
	return s.checkCredentials(user, pass)
}

func (s *Server) handleHTTP(w http.ResponseWriter, r *http.Request) {
	if !s.checkAuth(r) {
		w.Header().Set("WWW-Authenticate", `Basic realm="RPC"`)
		http.Error(w, "401 Unauthorized", http.StatusUnauthorized)
		return
	}

	body, err := io.ReadAll(io.LimitReader(r.Body, 1<<20))
	r.Body.Close()
	if err != nil {
		http.Error(w, "400 Bad Request", http.StatusBadRequest)
		return
	}

	var req request
	if err := json.Unmarshal(body, &req); err != nil {
		writeJSON(w, response{Error: &rpcError{Code: -32700, Message: "parse error"}})
		return
	}

	if types.IsWebsocketOnlyMethod(types.Method(req.Method)) {
		writeJSON(w, response{ID: req.ID, Error: &rpcError{
			Code: -1, Message: req.Method + " is only available over the websocket listener",
		}})
		return
	}

	result, cmdErr := s.dispatch(req.Method, req.Params)
	resp := response{ID: req.ID, Result: result}
	if cmdErr != nil {
		resp.Error = &rpcError{Code: -1, Message: cmdErr.Error()}
	}
	writeJSON(w, resp)
}

func (s *Server) dispatch(method string, params json.RawMessage) (interface{}, error) {
	handler, ok := rpcHandlers[method]
	if !ok {
		return nil, errMethodNotFound
	}
	return handler(s, params)
}

// checkCredentials reports whether username/passphrase match the server's
// configured RPC credentials, compared in constant time.
func (s *Server) checkCredentials(username, passphrase string) bool {
	sum := sha256.Sum256([]byte(username + ":" + passphrase))
	return subtle.ConstantTimeCompare(sum[:], s.authsha[:]) == 1
}

func writeJSON(w http.ResponseWriter, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(v)
}

// handleWebsocket upgrades the connection and serves the same command set
// as the HTTP endpoint, one request per frame. Of the websocket-only
// commands in rpc/jsonrpc/types only authenticate is acted on; the others
// are answered with a method-not-found error. A client that did not authenticate
// via the Authorization header at upgrade time (browser-based WebSocket
// clients cannot set one) must issue an authenticate command as its first
// message before any other command is dispatched.
func (s *Server) handleWebsocket(w http.ResponseWriter, r *http.Request) {
	conn, err := s.upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Warnf("Failed to upgrade websocket connection: %v", err)
		return
	}
	defer conn.Close()

	authenticated := s.checkAuth(r)

	for {
		var req request
		if err := conn.ReadJSON(&req); err != nil {
			return
		}

		if !authenticated {
			if req.Method != "authenticate" {
				conn.WriteJSON(response{ID: req.ID, Error: &rpcError{
					Code: -1, Message: "authentication required",
				}})
				continue
			}

			var cmd types.AuthenticateCmd
			if err := json.Unmarshal(req.Params, &cmd); err != nil {
				conn.WriteJSON(response{ID: req.ID, Error: &rpcError{
					Code: -32602, Message: "invalid params",
				}})
				continue
			}
			if !s.checkCredentials(cmd.Username, cmd.Passphrase) {
				conn.WriteJSON(response{ID: req.ID, Error: &rpcError{
					Code: -1, Message: "authentication failed",
				}})
				return
			}

			authenticated = true
			conn.WriteJSON(response{ID: req.ID})
			continue
		}

		result, cmdErr := s.dispatch(req.Method, req.Params)
		resp := response{ID: req.ID, Result: result}
		if cmdErr != nil {
			resp.Error = &rpcError{Code: -1, Message: cmdErr.Error()}
		}
		if err := conn.WriteJSON(resp); err != nil {
			return
		}
	}
}
