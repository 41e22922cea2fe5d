//
// Copyright (c) 2026 Markku Rossi
//
// All rights reserved.
//

package sha2

import (
	"encoding/binary"

	"github.com/markkurossi/mdhash/words"
)

// schedule defines the word width specific parameters of the SHA-2
// compression function. The sigma functions rotate right by the
// first two amounts and shift right by the third. The Sigma
// functions rotate right by all three amounts.
type schedule[W words.Word] struct {
	rounds int
	k      []W
	sigma0 [3]int
	sigma1 [3]int
	Sigma0 [3]int
	Sigma1 [3]int
}

var schedule256 = &schedule[uint32]{
	rounds: 64,
	k:      _K256[:],
	sigma0: [3]int{7, 18, 3},
	sigma1: [3]int{17, 19, 10},
	Sigma0: [3]int{2, 13, 22},
	Sigma1: [3]int{6, 11, 25},
}

var schedule512 = &schedule[uint64]{
	rounds: 80,
	k:      _K512[:],
	sigma0: [3]int{1, 8, 7},
	sigma1: [3]int{19, 61, 6},
	Sigma0: [3]int{28, 34, 39},
	Sigma1: [3]int{14, 18, 41},
}

func block256(h []uint32, p []byte) {
	block(schedule256, h, p)
}

func block512(h []uint64, p []byte) {
	block(schedule512, h, p)
}

func rotr[W words.Word](x W, n int) W {
	return words.RotateRight(x, n)
}

// block runs the compression function for all full blocks of p.
func block[W words.Word](s *schedule[W], h []W, p []byte) {
	var w [80]W

	size := words.Bytes[W]()
	bs := 16 * size

	h0, h1, h2, h3 := h[0], h[1], h[2], h[3]
	h4, h5, h6, h7 := h[4], h[5], h[6], h[7]

	for len(p) >= bs {
		for i := 0; i < 16; i++ {
			w[i] = words.Load[W](binary.BigEndian, p[i*size:])
		}
		for i := 16; i < s.rounds; i++ {
			v1 := w[i-2]
			t1 := rotr(v1, s.sigma1[0]) ^ rotr(v1, s.sigma1[1]) ^
				(v1 >> s.sigma1[2])
			v2 := w[i-15]
			t2 := rotr(v2, s.sigma0[0]) ^ rotr(v2, s.sigma0[1]) ^
				(v2 >> s.sigma0[2])

			w[i] = t1 + w[i-7] + t2 + w[i-16]
		}

		a, b, c, d, e, f, g, hh := h0, h1, h2, h3, h4, h5, h6, h7

		for i := 0; i < s.rounds; i++ {
			t1 := hh +
				(rotr(e, s.Sigma1[0]) ^ rotr(e, s.Sigma1[1]) ^
					rotr(e, s.Sigma1[2])) +
				((e & f) ^ (^e & g)) + s.k[i] + w[i]

			t2 := (rotr(a, s.Sigma0[0]) ^ rotr(a, s.Sigma0[1]) ^
				rotr(a, s.Sigma0[2])) +
				((a & b) ^ (a & c) ^ (b & c))

			hh = g
			g = f
			f = e
			e = d + t1
			d = c
			c = b
			b = a
			a = t1 + t2
		}

		h0 += a
		h1 += b
		h2 += c
		h3 += d
		h4 += e
		h5 += f
		h6 += g
		h7 += hh

		p = p[bs:]
	}

	h[0], h[1], h[2], h[3] = h0, h1, h2, h3
	h[4], h[5], h[6], h[7] = h4, h5, h6, h7
}
