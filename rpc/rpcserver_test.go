// Copyright (c) 2021 The Creativecoin developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package rpc

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
)

type stubChain struct {
	height    int64
	submitted string
	submitErr error
}

func (c *stubChain) BlockCount() int64 { return c.height }

func (c *stubChain) SubmitBlock(hexBlock string) error {
	c.submitted = hexBlock
	return c.submitErr
}

type stubPeers struct {
	infos []PeerInfo
}

func (p *stubPeers) PeerInfo() []PeerInfo { return p.infos }

func newTestServer() (*Server, *stubChain, *stubPeers) {
	chain := &stubChain{height: 100}
	peers := &stubPeers{infos: []PeerInfo{{Addr: "203.0.113.1:8333"}}}
	s := NewServer(Config{User: "user", Password: "pass", Chain: chain, Peers: peers})
	return s, chain, peers
}

func doRequest(t *testing.T, s *Server, method string, params interface{}, auth bool) response {
	t.Helper()

	var rawParams json.RawMessage
	if params != nil {
		b, err := json.Marshal(params)
		if err != nil {
			t.Fatalf("marshal params: %v", err)
		}
		rawParams = b
	}

	reqBody, err := json.Marshal(request{ID: 1, Method: method, Params: rawParams})
	if err != nil {
		t.Fatalf("marshal request: %v", err)
	}

	req := httptest.NewRequest(http.MethodPost, "/", bytes.NewReader(reqBody))
	if auth {
		req.SetBasicAuth("user", "pass")
	}

	rec := httptest.NewRecorder()
	s.handleHTTP(rec, req)

	var resp response
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("unmarshal response (status %d): %v", rec.Code, err)
	}
	return resp
}

func TestHandleHTTPRequiresAuth(t *testing.T) {
	s, _, _ := newTestServer()

	req := httptest.NewRequest(http.MethodPost, "/", bytes.NewReader(nil))
	rec := httptest.NewRecorder()
	s.handleHTTP(rec, req)

	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("status = %d, want %d", rec.Code, http.StatusUnauthorized)
	}
}

func TestGetBlockCount(t *testing.T) {
	s, _, _ := newTestServer()

	resp := doRequest(t, s, "getblockcount", nil, true)
	if resp.Error != nil {
		t.Fatalf("unexpected error: %v", resp.Error)
	}

	count, ok := resp.Result.(float64)
	if !ok || int64(count) != 100 {
		t.Fatalf("result = %v, want 100", resp.Result)
	}
}

func TestGetPeerInfo(t *testing.T) {
	s, _, _ := newTestServer()

	resp := doRequest(t, s, "getpeerinfo", nil, true)
	if resp.Error != nil {
		t.Fatalf("unexpected error: %v", resp.Error)
	}

	peers, ok := resp.Result.([]interface{})
	if !ok || len(peers) != 1 {
		t.Fatalf("result = %v, want one peer", resp.Result)
	}
}

func TestSubmitBlock(t *testing.T) {
	s, chain, _ := newTestServer()

	resp := doRequest(t, s, "submitblock", submitBlockParams{HexBlock: "deadbeef"}, true)
	if resp.Error != nil {
		t.Fatalf("unexpected error: %v", resp.Error)
	}
	if chain.submitted != "deadbeef" {
		t.Fatalf("submitted = %q, want %q", chain.submitted, "deadbeef")
	}
}

func TestPing(t *testing.T) {
	s, _, _ := newTestServer()

	resp := doRequest(t, s, "ping", nil, true)
	if resp.Error != nil {
		t.Fatalf("unexpected error: %v", resp.Error)
	}
}

func TestUnknownMethod(t *testing.T) {
	s, _, _ := newTestServer()

	resp := doRequest(t, s, "bogus", nil, true)
	if resp.Error == nil {
		t.Fatal("expected an error for an unknown method")
	}
}

func TestWebsocketOnlyMethodRejectedOverHTTP(t *testing.T) {
	s, _, _ := newTestServer()

	resp := doRequest(t, s, "authenticate", nil, true)
	if resp.Error == nil {
		t.Fatal("expected an error for a websocket-only method over HTTP")
	}
}

func TestCheckCredentials(t *testing.T) {
	s, _, _ := newTestServer()

	if !s.checkCredentials("user", "pass") {
		t.Error("checkCredentials(user, pass) = false, want true")
	}
	if s.checkCredentials("user", "wrong") {
		t.Error("checkCredentials(user, wrong) = true, want false")
	}
}
