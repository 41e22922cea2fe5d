//
// Copyright (c) 2026 Markku Rossi
//
// All rights reserved.
//

// Package md4 implements the MD4 hash algorithm as defined in RFC
// 1320.
//
// MD4 is cryptographically broken and should only be used where
// compatibility with legacy systems, not security, is the goal.
package md4

import (
	"github.com/markkurossi/mdhash/engine"
	"github.com/markkurossi/mdhash/padding"
)

// Size is the size of an MD4 checksum in bytes.
const Size = 16

// BlockSize is the block size of MD4 in bytes.
const BlockSize = 64

// Params define the MD4 hash function.
var Params = &engine.Params[uint32]{
	Name:     "MD4",
	IV:       []uint32{0x67452301, 0xEFCDAB89, 0x98BADCFE, 0x10325476},
	Size:     Size,
	Layout:   padding.MD,
	Compress: block,
}

// Digest implements the MD4 digest state.
type Digest = engine.Digest[uint32]

// New returns a new MD4 digest.
func New() *Digest {
	return engine.New(Params)
}

// NewExpanded returns a new digest that runs the MD4 compression
// function from the initial state iv and produces size byte
// digests. It panics if size is not in the range 1...Size.
func NewExpanded(iv [4]uint32, size int) *Digest {
	return engine.New(Params.Expand(iv[:], size))
}

// Sum returns the MD4 checksum of the data.
func Sum(data []byte) [Size]byte {
	var sum [Size]byte
	copy(sum[:], engine.Sum(Params, data))
	return sum
}

// Ruminate returns the MD4 checksum of the data re-hashed n more
// times.
func Ruminate(n int, data []byte) [Size]byte {
	var sum [Size]byte
	copy(sum[:], engine.Ruminate(Params, n, data))
	return sum
}
