//
// Copyright (c) 2026 Markku Rossi
//
// All rights reserved.
//

// Package sha1 implements the SHA-1 hash algorithm as defined in RFC
// 3174 and its predecessor SHA-0 from the original FIPS 180. The two
// functions differ only in the message schedule: SHA-1 rotates each
// expanded schedule word left by one bit, SHA-0 does not.
//
// SHA-0 and SHA-1 are cryptographically broken and should not be
// used for secure applications.
package sha1

import (
	"github.com/markkurossi/mdhash/engine"
	"github.com/markkurossi/mdhash/padding"
)

// Size is the size of a SHA-0 and SHA-1 checksum in bytes.
const Size = 20

// BlockSize is the block size of SHA-0 and SHA-1 in bytes.
const BlockSize = 64

var iv = []uint32{0x67452301, 0xEFCDAB89, 0x98BADCFE, 0x10325476, 0xC3D2E1F0}

var (
	// Params define the SHA-1 hash function.
	Params = &engine.Params[uint32]{
		Name:     "SHA-1",
		IV:       iv,
		Size:     Size,
		Layout:   padding.SHA32,
		Compress: block1,
	}

	// Params0 define the SHA-0 hash function.
	Params0 = &engine.Params[uint32]{
		Name:     "SHA-0",
		IV:       iv,
		Size:     Size,
		Layout:   padding.SHA32,
		Compress: block0,
	}
)

// Digest implements the SHA-0 and SHA-1 digest states.
type Digest = engine.Digest[uint32]

// New returns a new SHA-1 digest.
func New() *Digest {
	return engine.New(Params)
}

// New0 returns a new SHA-0 digest.
func New0() *Digest {
	return engine.New(Params0)
}

// NewExpanded returns a new digest that runs the SHA-1 compression
// function from the initial state iv and produces size byte
// digests. It panics if size is not in the range 1...Size.
func NewExpanded(iv [5]uint32, size int) *Digest {
	return engine.New(Params.Expand(iv[:], size))
}

// NewExpanded0 is the SHA-0 version of NewExpanded.
func NewExpanded0(iv [5]uint32, size int) *Digest {
	return engine.New(Params0.Expand(iv[:], size))
}

// Sum returns the SHA-1 checksum of the data.
func Sum(data []byte) [Size]byte {
	return sum(Params, data)
}

// Sum0 returns the SHA-0 checksum of the data.
func Sum0(data []byte) [Size]byte {
	return sum(Params0, data)
}

// Ruminate returns the SHA-1 checksum of the data re-hashed n more
// times.
func Ruminate(n int, data []byte) [Size]byte {
	var result [Size]byte
	copy(result[:], engine.Ruminate(Params, n, data))
	return result
}

// Ruminate0 returns the SHA-0 checksum of the data re-hashed n more
// times.
func Ruminate0(n int, data []byte) [Size]byte {
	var result [Size]byte
	copy(result[:], engine.Ruminate(Params0, n, data))
	return result
}

func sum(params *engine.Params[uint32], data []byte) [Size]byte {
	var result [Size]byte
	copy(result[:], engine.Sum(params, data))
	return result
}
