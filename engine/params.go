//
// Copyright (c) 2026 Markku Rossi
//
// All rights reserved.
//

// Package engine implements the generic Merkle-Damgård digest state
// shared by all hash functions of this module. A hash function is
// defined by its Params: the initial state words, the digest size,
// the padding layout, and the block compression function. The
// Expanded variants of the hash functions are Params with the same
// compression function but with different initial state and digest
// size.
package engine

import (
	"fmt"

	"github.com/markkurossi/mdhash/padding"
	"github.com/markkurossi/mdhash/words"
)

const (
	// MaxWords is the maximum number of state words.
	MaxWords = 8
	// MaxBlockSize is the maximum block size in bytes.
	MaxBlockSize = 128
)

// CompressFunc processes all full blocks of p into the state h.
type CompressFunc[W words.Word] func(h []W, p []byte)

// Params define a hash function. Params must not be modified after
// they have been passed to New. They are safe for concurrent use by
// multiple digests.
type Params[W words.Word] struct {
	Name string

	// IV is the initial state. Its length sets the number of state
	// words.
	IV []W

	// Size is the digest size in bytes. It can be smaller than the
	// state size in which case the serialized state is truncated.
	Size int

	// Bits is the digest length in bits when it is not a multiple of
	// 8. The unused low bits of the last digest byte are zero. Zero
	// means Size*8 bits.
	Bits int

	Layout   padding.Layout
	Compress CompressFunc[W]
}

// BlockSize returns the block size in bytes.
func (p *Params[W]) BlockSize() int {
	return p.Layout.BlockSize
}

// DigestBits returns the digest length in bits.
func (p *Params[W]) DigestBits() int {
	if p.Bits != 0 {
		return p.Bits
	}
	return p.Size * 8
}

// StateSize returns the size of the state in bytes.
func (p *Params[W]) StateSize() int {
	return len(p.IV) * words.Bytes[W]()
}

func (p *Params[W]) String() string {
	return fmt.Sprintf("%s[%dx%d,%v,%d]", p.Name, len(p.IV), words.Bits[W](),
		p.Layout, p.DigestBits())
}

func (p *Params[W]) validate() {
	if len(p.Name) > 255 {
		panic(fmt.Sprintf("engine: name too long: %d", len(p.Name)))
	}
	if len(p.IV) == 0 || len(p.IV) > MaxWords {
		panic(fmt.Sprintf("engine: %s: invalid state size: %d words",
			p.Name, len(p.IV)))
	}
	if p.Layout.BlockSize <= 0 || p.Layout.BlockSize > MaxBlockSize ||
		p.Layout.BlockSize%words.Bytes[W]() != 0 {
		panic(fmt.Sprintf("engine: %s: invalid block size: %d",
			p.Name, p.Layout.BlockSize))
	}
	if p.Layout.LengthSize < 8 || p.Layout.LengthSize > 16 {
		panic(fmt.Sprintf("engine: %s: invalid length field size: %d",
			p.Name, p.Layout.LengthSize))
	}
	if p.Size <= 0 || p.Size > p.StateSize() {
		panic(fmt.Sprintf("engine: %s: invalid digest size %d: state is %d bytes",
			p.Name, p.Size, p.StateSize()))
	}
	if p.Bits != 0 && (p.Bits <= (p.Size-1)*8 || p.Bits > p.Size*8) {
		panic(fmt.Sprintf("engine: %s: invalid digest bit length %d for %d bytes",
			p.Name, p.Bits, p.Size))
	}
	if p.Compress == nil {
		panic(fmt.Sprintf("engine: %s: no compression function", p.Name))
	}
}

// Expand creates an Expanded variant of the hash function p. The
// variant uses the initial state iv and produces size byte
// digests. The function panics if iv does not have the same number
// of words as p's initial state or if size is not in the range
// 1...p.StateSize().
func (p *Params[W]) Expand(iv []W, size int) *Params[W] {
	if len(iv) != len(p.IV) {
		panic(fmt.Sprintf("engine: %s: expanded IV has %d words, expected %d",
			p.Name, len(iv), len(p.IV)))
	}
	result := *p
	result.Name = fmt.Sprintf("%s-X%d", p.Name, size*8)
	result.IV = append([]W(nil), iv...)
	result.Size = size
	result.Bits = 0
	result.validate()

	return &result
}
