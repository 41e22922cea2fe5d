//
// Copyright (c) 2026 Markku Rossi
//
// All rights reserved.
//

// Package mdhash implements the MD4, MD5, SHA-0, SHA-1, and SHA-2
// families of Merkle-Damgård hash functions on top of one generic
// digest engine. The algorithm packages md4, md5, sha1, and sha2
// provide the typed constructors. This package provides a registry
// that resolves algorithms by name.
package mdhash

import (
	"encoding"
	"errors"
	"fmt"
	"hash"
	"io"
	"strconv"
	"strings"

	"github.com/markkurossi/mdhash/engine"
	"github.com/markkurossi/mdhash/md4"
	"github.com/markkurossi/mdhash/md5"
	"github.com/markkurossi/mdhash/sha1"
	"github.com/markkurossi/mdhash/sha2"
	"github.com/markkurossi/mdhash/words"
)

// ErrUnknownAlgorithm is returned when an algorithm name can't be
// resolved.
var ErrUnknownAlgorithm = errors.New("unknown algorithm")

// Digest is the word width independent interface of the digest
// states of all algorithms.
type Digest interface {
	hash.Hash
	io.StringWriter
	io.ReaderFrom
	encoding.BinaryMarshaler
	encoding.BinaryUnmarshaler

	// Len returns the number of bytes written.
	Len() uint64

	// Finalize pads the message into the state and returns the
	// digest.
	Finalize() []byte

	// Digest copies the digest into dst and returns the number of
	// bytes copied.
	Digest(dst []byte) int

	// Hex returns the digest as an uppercase hexadecimal string.
	Hex() string

	// Ruminate returns the digest re-hashed n more times.
	Ruminate(n int) []byte

	// Tangle mixes the state words n times with the compression
	// function.
	Tangle(n uint64)
}

// Algorithm describes a hash algorithm.
type Algorithm struct {
	// Name is the registry name of the algorithm.
	Name string
	// Title is the published name of the algorithm.
	Title     string
	Size      int
	Bits      int
	BlockSize int
	New       func() Digest
}

func (alg *Algorithm) String() string {
	return alg.Title
}

// Sum returns the digest of data.
func (alg *Algorithm) Sum(data []byte) []byte {
	d := alg.New()
	d.Write(data)
	return d.Finalize()
}

func algorithm[W words.Word](name string, params *engine.Params[W]) *Algorithm {
	return &Algorithm{
		Name:      name,
		Title:     params.Name,
		Size:      params.Size,
		Bits:      params.DigestBits(),
		BlockSize: params.BlockSize(),
		New: func() Digest {
			return engine.New(params)
		},
	}
}

var algorithms = []*Algorithm{
	algorithm("md4", md4.Params),
	algorithm("md5", md5.Params),
	algorithm("sha0", sha1.Params0),
	algorithm("sha1", sha1.Params),
	algorithm("sha224", sha2.Params224),
	algorithm("sha256", sha2.Params256),
	algorithm("sha384", sha2.Params384),
	algorithm("sha512", sha2.Params512),
	algorithm("sha512/224", sha2.Params512_224),
	algorithm("sha512/256", sha2.Params512_256),
}

// Algorithms returns the registered algorithms. The dynamic
// SHA-512/t algorithms are not listed.
func Algorithms() []*Algorithm {
	return append([]*Algorithm(nil), algorithms...)
}

func normalize(name string) string {
	return strings.ReplaceAll(strings.ToLower(name), "-", "")
}

// Lookup resolves the algorithm by its name. The names are case
// insensitive and dashes are ignored so both "sha512/256" and
// "SHA-512/256" resolve to SHA-512/256. The names "sha512/<t>"
// resolve to SHA-512/t for all valid output sizes t.
func Lookup(name string) (*Algorithm, error) {
	n := normalize(name)
	for _, alg := range algorithms {
		if alg.Name == n {
			return alg, nil
		}
	}
	if rest, ok := strings.CutPrefix(n, "sha512/"); ok {
		t, err := strconv.Atoi(rest)
		if err == nil && sha2.Valid512T(t) {
			return algorithm(n, sha2.Params512T(t)), nil
		}
		return nil, fmt.Errorf("%w: %s: invalid output size %q",
			ErrUnknownAlgorithm, name, rest)
	}
	return nil, fmt.Errorf("%w: %s", ErrUnknownAlgorithm, name)
}

// New returns a new digest of the named algorithm.
func New(name string) (hash.Hash, error) {
	alg, err := Lookup(name)
	if err != nil {
		return nil, err
	}
	return alg.New(), nil
}
