// Copyright (c) 2021 The Creativecoin developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package database

import (
	"path/filepath"
	"testing"

	"github.com/creativecoin/crvd/chaincfg/chainhash"
	"github.com/creativecoin/crvd/wire"
)

func testHeader(bits uint32) *wire.BlockHeader {
	return &wire.BlockHeader{
		Version: 1,
		Bits:    bits,
	}
}

func openTestDB(t *testing.T) *DB {
	t.Helper()
	db, err := Open(filepath.Join(t.TempDir(), "headers.ldb"))
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	t.Cleanup(func() { db.Close() })
	return db
}

func TestPutAndGetHeaderByHash(t *testing.T) {
	db := openTestDB(t)
	header := testHeader(0x1d00ffff)

	if err := db.PutHeader(0, header); err != nil {
		t.Fatalf("PutHeader: %v", err)
	}

	hash := header.BlockHash()
	got, err := db.GetHeader(&hash)
	if err != nil {
		t.Fatalf("GetHeader: %v", err)
	}
	if got.Bits != header.Bits {
		t.Fatalf("Bits = %x, want %x", got.Bits, header.Bits)
	}
}

func TestGetHeaderByHeight(t *testing.T) {
	db := openTestDB(t)
	header := testHeader(0x1d00ffff)

	if err := db.PutHeader(42, header); err != nil {
		t.Fatalf("PutHeader: %v", err)
	}

	got, err := db.GetHeaderByHeight(42)
	if err != nil {
		t.Fatalf("GetHeaderByHeight: %v", err)
	}
	wantHash := header.BlockHash()
	gotHash := got.BlockHash()
	if gotHash != wantHash {
		t.Fatalf("GetHeaderByHeight returned wrong header")
	}
}

func TestGetHeaderNotFound(t *testing.T) {
	db := openTestDB(t)
	var hash chainhash.Hash
	_, err := db.GetHeader(&hash)
	if err != ErrHeaderNotFound {
		t.Fatalf("GetHeader error = %v, want ErrHeaderNotFound", err)
	}
}

func TestHasHeader(t *testing.T) {
	db := openTestDB(t)
	header := testHeader(0x1d00ffff)
	hash := header.BlockHash()

	has, err := db.HasHeader(&hash)
	if err != nil {
		t.Fatalf("HasHeader: %v", err)
	}
	if has {
		t.Fatal("HasHeader = true before the header was stored")
	}

	if err := db.PutHeader(0, header); err != nil {
		t.Fatalf("PutHeader: %v", err)
	}

	has, err = db.HasHeader(&hash)
	if err != nil {
		t.Fatalf("HasHeader: %v", err)
	}
	if !has {
		t.Fatal("HasHeader = false after the header was stored")
	}
}

func TestTip(t *testing.T) {
	db := openTestDB(t)

	if _, ok, err := db.Tip(); err != nil || ok {
		t.Fatalf("Tip on empty db = (_, %v, %v), want (_, false, nil)", ok, err)
	}

	if err := db.PutHeader(10, testHeader(0x1d00ffff)); err != nil {
		t.Fatalf("PutHeader: %v", err)
	}
	if err := db.PutHeader(11, testHeader(0x1d00fffe)); err != nil {
		t.Fatalf("PutHeader: %v", err)
	}

	height, ok, err := db.Tip()
	if err != nil {
		t.Fatalf("Tip: %v", err)
	}
	if !ok || height != 11 {
		t.Fatalf("Tip() = (%d, %v), want (11, true)", height, ok)
	}
}
