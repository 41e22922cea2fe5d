//
// Copyright (c) 2026 Markku Rossi
//
// All rights reserved.
//

package sha1

import (
	"encoding/binary"

	"github.com/markkurossi/mdhash/words"
)

const (
	_K0 = 0x5A827999
	_K1 = 0x6ED9EBA1
	_K2 = 0x8F1BBCDC
	_K3 = 0xCA62C1D6
)

func block0(h []uint32, p []byte) {
	blocks(h, p, 0)
}

func block1(h []uint32, p []byte) {
	blocks(h, p, 1)
}

// blocks runs the compression function for all full blocks of
// p. The schedule words are rotated left by rot bits.
func blocks(h []uint32, p []byte, rot int) {
	var w [16]uint32

	h0, h1, h2, h3, h4 := h[0], h[1], h[2], h[3], h[4]
	for len(p) >= BlockSize {
		for i := 0; i < 16; i++ {
			w[i] = words.Load[uint32](binary.BigEndian, p[i*4:])
		}

		a, b, c, d, e := h0, h1, h2, h3, h4

		// The four 20-step rounds differ in the computation of f
		// and the choice of K.
		i := 0
		for ; i < 16; i++ {
			f := b&c | (^b)&d
			t := words.RotateLeft(a, 5) + f + e + w[i&0xf] + _K0
			a, b, c, d, e = t, a, words.RotateLeft(b, 30), c, d
		}
		for ; i < 20; i++ {
			schedule(&w, i, rot)
			f := b&c | (^b)&d
			t := words.RotateLeft(a, 5) + f + e + w[i&0xf] + _K0
			a, b, c, d, e = t, a, words.RotateLeft(b, 30), c, d
		}
		for ; i < 40; i++ {
			schedule(&w, i, rot)
			f := b ^ c ^ d
			t := words.RotateLeft(a, 5) + f + e + w[i&0xf] + _K1
			a, b, c, d, e = t, a, words.RotateLeft(b, 30), c, d
		}
		for ; i < 60; i++ {
			schedule(&w, i, rot)
			f := ((b | c) & d) | (b & c)
			t := words.RotateLeft(a, 5) + f + e + w[i&0xf] + _K2
			a, b, c, d, e = t, a, words.RotateLeft(b, 30), c, d
		}
		for ; i < 80; i++ {
			schedule(&w, i, rot)
			f := b ^ c ^ d
			t := words.RotateLeft(a, 5) + f + e + w[i&0xf] + _K3
			a, b, c, d, e = t, a, words.RotateLeft(b, 30), c, d
		}

		h0 += a
		h1 += b
		h2 += c
		h3 += d
		h4 += e

		p = p[BlockSize:]
	}

	h[0], h[1], h[2], h[3], h[4] = h0, h1, h2, h3, h4
}

// schedule expands the schedule word i in the 16-word ring buffer w.
func schedule(w *[16]uint32, i, rot int) {
	tmp := w[(i-3)&0xf] ^ w[(i-8)&0xf] ^ w[(i-14)&0xf] ^ w[i&0xf]
	w[i&0xf] = words.RotateLeft(tmp, rot)
}
