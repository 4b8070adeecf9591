// Copyright (c) 2021 The Creativecoin developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package database implements the on-disk block header store, backed by a
// LevelDB key/value database.
package database

import (
	"bytes"
	"encoding/binary"
	"errors"

	"github.com/creativecoin/crvd/chaincfg/chainhash"
	"github.com/creativecoin/crvd/wire"
	"github.com/syndtr/goleveldb/leveldb"
	"github.com/syndtr/goleveldb/leveldb/opt"
)

// ErrHeaderNotFound is returned when a requested header does not exist in
// the database.
var ErrHeaderNotFound = errors.New("database: header not found")

var (
	headerByHashPrefix = []byte("h")
	hashByHeightPrefix = []byte("i")
	chainTipKey        = []byte("tip")
)

// DB wraps a LevelDB instance storing block headers indexed both by hash
// and by height.
type DB struct {
	ldb *leveldb.DB
}

// Open opens (creating if necessary) the header database at path.
func Open(path string) (*DB, error) {
	ldb, err := leveldb.OpenFile(path, &opt.Options{})
	if err != nil {
		return nil, err
	}
	return &DB{ldb: ldb}, nil
}

// Close releases all resources associated with the database.
func (db *DB) Close() error {
	return db.ldb.Close()
}

func headerKey(hash *chainhash.Hash) []byte {
	key := make([]byte, len(headerByHashPrefix)+chainhash.HashSize)
	n := copy(key, headerByHashPrefix)
	copy(key[n:], hash[:])
	return key
}

func heightKey(height uint32) []byte {
	key := make([]byte, len(hashByHeightPrefix)+4)
	n := copy(key, hashByHeightPrefix)
	binary.BigEndian.PutUint32(key[n:], height)
	return key
}

// PutHeader stores header at the given height, indexed by both its hash
// and its height, and atomically advances the recorded chain tip.
func (db *DB) PutHeader(height uint32, header *wire.BlockHeader) error {
	var buf bytes.Buffer
	if err := header.Serialize(&buf); err != nil {
		return err
	}

	hash := header.BlockHash()
	batch := new(leveldb.Batch)
	batch.Put(headerKey(&hash), buf.Bytes())
	batch.Put(heightKey(height), hash[:])

	var tip [4]byte
	binary.BigEndian.PutUint32(tip[:], height)
	batch.Put(chainTipKey, tip[:])

	return db.ldb.Write(batch, nil)
}

// GetHeader returns the header previously stored for hash.
func (db *DB) GetHeader(hash *chainhash.Hash) (*wire.BlockHeader, error) {
	raw, err := db.ldb.Get(headerKey(hash), nil)
	if err != nil {
		if errors.Is(err, leveldb.ErrNotFound) {
			return nil, ErrHeaderNotFound
		}
		return nil, err
	}

	var header wire.BlockHeader
	if err := header.Deserialize(bytes.NewReader(raw)); err != nil {
		return nil, err
	}
	return &header, nil
}

// GetHeaderByHeight returns the header previously stored at height.
func (db *DB) GetHeaderByHeight(height uint32) (*wire.BlockHeader, error) {
	rawHash, err := db.ldb.Get(heightKey(height), nil)
	if err != nil {
		if errors.Is(err, leveldb.ErrNotFound) {
			return nil, ErrHeaderNotFound
		}
		return nil, err
	}

	var hash chainhash.Hash
	copy(hash[:], rawHash)
	return db.GetHeader(&hash)
}

// HasHeader reports whether a header is stored for hash.
func (db *DB) HasHeader(hash *chainhash.Hash) (bool, error) {
	return db.ldb.Has(headerKey(hash), nil)
}

// Tip returns the height of the most recently stored header, and false if
// the database is empty.
func (db *DB) Tip() (uint32, bool, error) {
	raw, err := db.ldb.Get(chainTipKey, nil)
	if err != nil {
		if errors.Is(err, leveldb.ErrNotFound) {
			return 0, false, nil
		}
		return 0, false, err
	}
	return binary.BigEndian.Uint32(raw), true, nil
}
