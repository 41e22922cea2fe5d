//
// Copyright (c) 2026 Markku Rossi
//
// All rights reserved.
//

// Package padding implements the Merkle-Damgård message padding and
// length encoding. A message is padded by appending a single 1 bit,
// zero bits until the length is congruent to BlockSize-LengthSize
// modulo BlockSize, and finally the message length in bits as a
// LengthSize byte field.
package padding

import (
	"encoding/binary"
	"fmt"

	"github.com/markkurossi/mdhash/words"
)

// Marker is the first padding byte holding the 1 bit.
const Marker = 0x80

// Layout describes the padding of a hash function.
type Layout struct {
	BlockSize  int
	LengthSize int
	Order      binary.ByteOrder
}

var (
	// MD is the MD4 and MD5 padding.
	MD = Layout{
		BlockSize:  64,
		LengthSize: 8,
		Order:      binary.LittleEndian,
	}

	// SHA32 is the padding of SHA-0, SHA-1, SHA-224, and SHA-256.
	SHA32 = Layout{
		BlockSize:  64,
		LengthSize: 8,
		Order:      binary.BigEndian,
	}

	// SHA64 is the padding of the SHA-384, SHA-512, and SHA-512/t
	// functions.
	SHA64 = Layout{
		BlockSize:  128,
		LengthSize: 16,
		Order:      binary.BigEndian,
	}
)

func (l Layout) String() string {
	order := "LE"
	if words.IsBigEndian(l.Order) {
		order = "BE"
	}
	return fmt.Sprintf("%d/%d%s", l.BlockSize*8, l.LengthSize*8, order)
}

// Len returns the number of padding bytes, including the length
// field, for a message of n bytes. The marked argument tells if the
// 1 bit is already stored in the last message byte.
func (l Layout) Len(n uint64, marked bool) int {
	r := int(n % uint64(l.BlockSize))
	pad := l.BlockSize - l.LengthSize - r

	min := 1
	if marked {
		min = 0
	}
	if pad < min {
		pad += l.BlockSize
	}
	return pad + l.LengthSize
}

// Blocks returns the number of blocks an n byte message occupies
// after padding.
func (l Layout) Blocks(n uint64) uint64 {
	return (n + uint64(l.Len(n, false))) / uint64(l.BlockSize)
}

// Append appends the padding of a message of n bytes to dst and
// returns the extended slice. The length field encodes bitLen.
func (l Layout) Append(dst []byte, n uint64, bitLen words.Uint128,
	marked bool) []byte {

	plen := l.Len(n, marked)
	start := len(dst)
	for i := 0; i < plen; i++ {
		dst = append(dst, 0)
	}
	pad := dst[start:]
	if !marked {
		pad[0] = Marker
	}

	var field [16]byte
	bitLen.Put(l.Order, field[:])
	if words.IsBigEndian(l.Order) {
		copy(pad[plen-l.LengthSize:], field[16-l.LengthSize:])
	} else {
		copy(pad[plen-l.LengthSize:], field[:l.LengthSize])
	}

	return dst
}

// BitLength returns the bit length of an n byte message.
func BitLength(n uint64) words.Uint128 {
	return words.Uint128{
		Hi: n >> 61,
		Lo: n << 3,
	}
}
