//
// Copyright (c) 2026 Markku Rossi
//
// All rights reserved.
//

// Package md5 implements the MD5 hash algorithm as defined in RFC
// 1321.
//
// MD5 is cryptographically broken and should not be used for secure
// applications.
package md5

import (
	"github.com/markkurossi/mdhash/engine"
	"github.com/markkurossi/mdhash/padding"
)

// Size is the size of an MD5 checksum in bytes.
const Size = 16

// BlockSize is the block size of MD5 in bytes.
const BlockSize = 64

// Params define the MD5 hash function.
var Params = &engine.Params[uint32]{
	Name:     "MD5",
	IV:       []uint32{0x67452301, 0xEFCDAB89, 0x98BADCFE, 0x10325476},
	Size:     Size,
	Layout:   padding.MD,
	Compress: block,
}

// Digest implements the MD5 digest state.
type Digest = engine.Digest[uint32]

// New returns a new MD5 digest.
func New() *Digest {
	return engine.New(Params)
}

// NewExpanded returns a new digest that runs the MD5 compression
// function from the initial state iv and produces size byte
// digests. It panics if size is not in the range 1...Size.
func NewExpanded(iv [4]uint32, size int) *Digest {
	return engine.New(Params.Expand(iv[:], size))
}

// Sum returns the MD5 checksum of the data.
func Sum(data []byte) [Size]byte {
	var sum [Size]byte
	copy(sum[:], engine.Sum(Params, data))
	return sum
}

// Ruminate returns the MD5 checksum of the data re-hashed n more
// times.
func Ruminate(n int, data []byte) [Size]byte {
	var sum [Size]byte
	copy(sum[:], engine.Ruminate(Params, n, data))
	return sum
}
