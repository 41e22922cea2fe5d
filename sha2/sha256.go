//
// Copyright (c) 2026 Markku Rossi
//
// All rights reserved.
//

// Package sha2 implements the SHA-224, SHA-256, SHA-384, SHA-512,
// SHA-512/224, SHA-512/256, and SHA-512/t hash algorithms as defined
// in FIPS 180-4. The 32-bit and 64-bit variants share one generic
// compression function that is instantiated for uint32 and uint64
// state words.
package sha2

import (
	"github.com/markkurossi/mdhash/engine"
	"github.com/markkurossi/mdhash/padding"
)

const (
	// Size224 is the size of a SHA-224 checksum in bytes.
	Size224 = 28
	// Size256 is the size of a SHA-256 checksum in bytes.
	Size256 = 32
	// BlockSize256 is the block size of SHA-224 and SHA-256 in bytes.
	BlockSize256 = 64
)

var _K256 = [64]uint32{
	0x428a2f98, 0x71374491, 0xb5c0fbcf, 0xe9b5dba5,
	0x3956c25b, 0x59f111f1, 0x923f82a4, 0xab1c5ed5,
	0xd807aa98, 0x12835b01, 0x243185be, 0x550c7dc3,
	0x72be5d74, 0x80deb1fe, 0x9bdc06a7, 0xc19bf174,
	0xe49b69c1, 0xefbe4786, 0x0fc19dc6, 0x240ca1cc,
	0x2de92c6f, 0x4a7484aa, 0x5cb0a9dc, 0x76f988da,
	0x983e5152, 0xa831c66d, 0xb00327c8, 0xbf597fc7,
	0xc6e00bf3, 0xd5a79147, 0x06ca6351, 0x14292967,
	0x27b70a85, 0x2e1b2138, 0x4d2c6dfc, 0x53380d13,
	0x650a7354, 0x766a0abb, 0x81c2c92e, 0x92722c85,
	0xa2bfe8a1, 0xa81a664b, 0xc24b8b70, 0xc76c51a3,
	0xd192e819, 0xd6990624, 0xf40e3585, 0x106aa070,
	0x19a4c116, 0x1e376c08, 0x2748774c, 0x34b0bcb5,
	0x391c0cb3, 0x4ed8aa4a, 0x5b9cca4f, 0x682e6ff3,
	0x748f82ee, 0x78a5636f, 0x84c87814, 0x8cc70208,
	0x90befffa, 0xa4506ceb, 0xbef9a3f7, 0xc67178f2,
}

var (
	// Params224 define the SHA-224 hash function.
	Params224 = &engine.Params[uint32]{
		Name: "SHA-224",
		IV: []uint32{
			0xC1059ED8, 0x367CD507, 0x3070DD17, 0xF70E5939,
			0xFFC00B31, 0x68581511, 0x64F98FA7, 0xBEFA4FA4,
		},
		Size:     Size224,
		Layout:   padding.SHA32,
		Compress: block256,
	}

	// Params256 define the SHA-256 hash function.
	Params256 = &engine.Params[uint32]{
		Name: "SHA-256",
		IV: []uint32{
			0x6A09E667, 0xBB67AE85, 0x3C6EF372, 0xA54FF53A,
			0x510E527F, 0x9B05688C, 0x1F83D9AB, 0x5BE0CD19,
		},
		Size:     Size256,
		Layout:   padding.SHA32,
		Compress: block256,
	}
)

// Digest256 implements the SHA-224 and SHA-256 digest states.
type Digest256 = engine.Digest[uint32]

// New224 returns a new SHA-224 digest.
func New224() *Digest256 {
	return engine.New(Params224)
}

// New256 returns a new SHA-256 digest.
func New256() *Digest256 {
	return engine.New(Params256)
}

// NewExpanded256 returns a new digest that runs the SHA-256
// compression function from the initial state iv and produces size
// byte digests. It panics if size is not in the range 1...Size256.
func NewExpanded256(iv [8]uint32, size int) *Digest256 {
	return engine.New(Params256.Expand(iv[:], size))
}

// Sum224 returns the SHA-224 checksum of the data.
func Sum224(data []byte) [Size224]byte {
	var sum [Size224]byte
	copy(sum[:], engine.Sum(Params224, data))
	return sum
}

// Sum256 returns the SHA-256 checksum of the data.
func Sum256(data []byte) [Size256]byte {
	var sum [Size256]byte
	copy(sum[:], engine.Sum(Params256, data))
	return sum
}

// Ruminate224 returns the SHA-224 checksum of the data re-hashed n
// more times.
func Ruminate224(n int, data []byte) [Size224]byte {
	var sum [Size224]byte
	copy(sum[:], engine.Ruminate(Params224, n, data))
	return sum
}

// Ruminate256 returns the SHA-256 checksum of the data re-hashed n
// more times.
func Ruminate256(n int, data []byte) [Size256]byte {
	var sum [Size256]byte
	copy(sum[:], engine.Ruminate(Params256, n, data))
	return sum
}
