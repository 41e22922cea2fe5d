//
// Copyright (c) 2026 Markku Rossi
//
// All rights reserved.
//

package md4

import (
	"encoding/binary"

	"github.com/markkurossi/mdhash/words"
)

const (
	_K1 = 0x5A827999
	_K2 = 0x6ED9EBA1
)

var shift = [3][4]int{
	{3, 7, 11, 19},
	{3, 5, 9, 13},
	{3, 9, 11, 15},
}

var xIndex2 = [16]int{0, 4, 8, 12, 1, 5, 9, 13, 2, 6, 10, 14, 3, 7, 11, 15}
var xIndex3 = [16]int{0, 8, 4, 12, 2, 10, 6, 14, 1, 9, 5, 13, 3, 11, 7, 15}

func block(h []uint32, p []byte) {
	var x [16]uint32

	for len(p) >= BlockSize {
		for i := 0; i < 16; i++ {
			x[i] = words.Load[uint32](binary.LittleEndian, p[i*4:])
		}

		a, b, c, d := h[0], h[1], h[2], h[3]

		// Round 1.
		for i := 0; i < 16; i++ {
			f := (b & c) | (^b & d)
			a = words.RotateLeft(a+f+x[i], shift[0][i%4])
			a, b, c, d = d, a, b, c
		}

		// Round 2.
		for i := 0; i < 16; i++ {
			g := (b & c) | (b & d) | (c & d)
			a = words.RotateLeft(a+g+x[xIndex2[i]]+_K1, shift[1][i%4])
			a, b, c, d = d, a, b, c
		}

		// Round 3.
		for i := 0; i < 16; i++ {
			f := b ^ c ^ d
			a = words.RotateLeft(a+f+x[xIndex3[i]]+_K2, shift[2][i%4])
			a, b, c, d = d, a, b, c
		}

		h[0] += a
		h[1] += b
		h[2] += c
		h[3] += d

		p = p[BlockSize:]
	}
}
