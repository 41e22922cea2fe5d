//
// Copyright (c) 2026 Markku Rossi
//
// All rights reserved.
//

// Package manifest implements a persistent database of file
// digests. The digests are stored in a bbolt database with one bucket
// per hash algorithm, keyed by the file path.
package manifest

import (
	"bytes"
	"encoding/binary"
	"errors"
	"fmt"
	"sort"
	"time"

	bolt "go.etcd.io/bbolt"
)

// ErrNotFound is returned when the manifest has no entry for a file.
var ErrNotFound = errors.New("entry not found")

// ErrMismatch is returned by Verify when a digest differs from the
// recorded one.
var ErrMismatch = errors.New("digest mismatch")

const headerSize = 16

// Entry is a manifest entry.
type Entry struct {
	Path      string
	Algorithm string
	Size      int64
	ModTime   time.Time
	Digest    []byte
}

func (e *Entry) String() string {
	return fmt.Sprintf("%x  %s", e.Digest, e.Path)
}

func (e *Entry) marshal() []byte {
	buf := make([]byte, headerSize+len(e.Digest))
	binary.BigEndian.PutUint64(buf[0:], uint64(e.Size))
	binary.BigEndian.PutUint64(buf[8:], uint64(e.ModTime.UnixNano()))
	copy(buf[headerSize:], e.Digest)
	return buf
}

func unmarshal(alg string, path, data []byte) (*Entry, error) {
	if len(data) < headerSize {
		return nil, fmt.Errorf("manifest: %s: truncated entry %s", alg, path)
	}
	return &Entry{
		Path:      string(path),
		Algorithm: alg,
		Size:      int64(binary.BigEndian.Uint64(data[0:])),
		ModTime:   time.Unix(0, int64(binary.BigEndian.Uint64(data[8:]))),
		Digest:    bytes.Clone(data[headerSize:]),
	}, nil
}

// DB is an open manifest database.
type DB struct {
	db *bolt.DB
}

// Open opens the manifest database file, creating it if it does not
// exist.
func Open(path string) (*DB, error) {
	db, err := bolt.Open(path, 0600, &bolt.Options{
		Timeout: time.Second,
	})
	if err != nil {
		return nil, fmt.Errorf("manifest: %w", err)
	}
	return &DB{
		db: db,
	}, nil
}

// Close closes the database.
func (db *DB) Close() error {
	return db.db.Close()
}

// Put stores the entry, replacing any existing entry of the same
// algorithm and path.
func (db *DB) Put(e *Entry) error {
	return db.db.Update(func(tx *bolt.Tx) error {
		b, err := tx.CreateBucketIfNotExists([]byte(e.Algorithm))
		if err != nil {
			return err
		}
		return b.Put([]byte(e.Path), e.marshal())
	})
}

// Get returns the entry of the file path digested with the algorithm
// alg.
func (db *DB) Get(alg, path string) (*Entry, error) {
	var result *Entry
	err := db.db.View(func(tx *bolt.Tx) error {
		b := tx.Bucket([]byte(alg))
		if b == nil {
			return ErrNotFound
		}
		data := b.Get([]byte(path))
		if data == nil {
			return ErrNotFound
		}
		var err error
		result, err = unmarshal(alg, []byte(path), data)
		return err
	})
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return result, nil
}

// Delete removes the entry of the file path and the algorithm alg.
func (db *DB) Delete(alg, path string) error {
	return db.db.Update(func(tx *bolt.Tx) error {
		b := tx.Bucket([]byte(alg))
		if b == nil {
			return nil
		}
		return b.Delete([]byte(path))
	})
}

// Entries returns all entries of the algorithm alg in path order.
func (db *DB) Entries(alg string) ([]*Entry, error) {
	var result []*Entry
	err := db.db.View(func(tx *bolt.Tx) error {
		b := tx.Bucket([]byte(alg))
		if b == nil {
			return nil
		}
		return b.ForEach(func(k, v []byte) error {
			e, err := unmarshal(alg, k, v)
			if err != nil {
				return err
			}
			result = append(result, e)
			return nil
		})
	})
	return result, err
}

// Algorithms returns the names of the algorithms that have entries
// in the manifest.
func (db *DB) Algorithms() ([]string, error) {
	var result []string
	err := db.db.View(func(tx *bolt.Tx) error {
		return tx.ForEach(func(name []byte, _ *bolt.Bucket) error {
			result = append(result, string(name))
			return nil
		})
	})
	sort.Strings(result)
	return result, err
}

// Verify checks the digest of the file path against the manifest. It
// returns ErrNotFound if the file has no entry and ErrMismatch if the
// digests differ.
func (db *DB) Verify(alg, path string, digest []byte) error {
	e, err := db.Get(alg, path)
	if err != nil {
		return err
	}
	if !bytes.Equal(e.Digest, digest) {
		return fmt.Errorf("%s: %w: %x, expected %x", path, ErrMismatch,
			digest, e.Digest)
	}
	return nil
}
