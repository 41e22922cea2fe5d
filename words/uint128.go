//
// Copyright (c) 2026 Markku Rossi
//
// All rights reserved.
//

package words

import (
	"encoding/binary"
	"math/big"
	"math/bits"
)

// Uint128 implements a 128-bit unsigned word. The zero value is 0.
type Uint128 struct {
	Hi uint64
	Lo uint64
}

// From64 creates a Uint128 from the uint64 value v.
func From64(v uint64) Uint128 {
	return Uint128{
		Lo: v,
	}
}

// Load128 decodes a 128-bit word from the beginning of b in the byte
// order.
func Load128(order binary.ByteOrder, b []byte) Uint128 {
	if IsBigEndian(order) {
		return Uint128{
			Hi: order.Uint64(b),
			Lo: order.Uint64(b[8:]),
		}
	}
	return Uint128{
		Lo: order.Uint64(b),
		Hi: order.Uint64(b[8:]),
	}
}

// Put encodes x into the beginning of b in the byte order.
func (x Uint128) Put(order binary.ByteOrder, b []byte) {
	if IsBigEndian(order) {
		order.PutUint64(b, x.Hi)
		order.PutUint64(b[8:], x.Lo)
	} else {
		order.PutUint64(b, x.Lo)
		order.PutUint64(b[8:], x.Hi)
	}
}

// IsZero tests if x is zero.
func (x Uint128) IsZero() bool {
	return x.Hi == 0 && x.Lo == 0
}

// Cmp compares x and y and returns -1, 0, 1 if x is smaller, equal,
// or greater than y.
func (x Uint128) Cmp(y Uint128) int {
	switch {
	case x.Hi < y.Hi:
		return -1
	case x.Hi > y.Hi:
		return 1
	case x.Lo < y.Lo:
		return -1
	case x.Lo > y.Lo:
		return 1
	default:
		return 0
	}
}

// Add returns x+y modulo 2^128.
func (x Uint128) Add(y Uint128) Uint128 {
	lo, c := bits.Add64(x.Lo, y.Lo, 0)
	hi, _ := bits.Add64(x.Hi, y.Hi, c)
	return Uint128{
		Hi: hi,
		Lo: lo,
	}
}

// CarryingAdd returns x+y+carry and the carry out.
func (x Uint128) CarryingAdd(y Uint128, carry bool) (Uint128, bool) {
	var c uint64
	if carry {
		c = 1
	}
	lo, c := bits.Add64(x.Lo, y.Lo, c)
	hi, c := bits.Add64(x.Hi, y.Hi, c)
	return Uint128{Hi: hi, Lo: lo}, c != 0
}

// Sub returns x-y modulo 2^128.
func (x Uint128) Sub(y Uint128) Uint128 {
	lo, b := bits.Sub64(x.Lo, y.Lo, 0)
	hi, _ := bits.Sub64(x.Hi, y.Hi, b)
	return Uint128{
		Hi: hi,
		Lo: lo,
	}
}

// Mul returns x*y modulo 2^128.
func (x Uint128) Mul(y Uint128) Uint128 {
	hi, lo := bits.Mul64(x.Lo, y.Lo)
	hi += x.Hi*y.Lo + x.Lo*y.Hi
	return Uint128{
		Hi: hi,
		Lo: lo,
	}
}

// CarryingMul returns the 256-bit value x*y+carry split into its low
// and high 128-bit halves.
func (x Uint128) CarryingMul(y, carry Uint128) (lo, hi Uint128) {
	var r [4]uint64
	a := [2]uint64{x.Lo, x.Hi}
	b := [2]uint64{y.Lo, y.Hi}

	for i := 0; i < 2; i++ {
		var c uint64
		for j := 0; j < 2; j++ {
			h, l := bits.Mul64(a[i], b[j])
			var cc uint64
			l, cc = bits.Add64(l, r[i+j], 0)
			h += cc
			l, cc = bits.Add64(l, c, 0)
			h += cc
			r[i+j] = l
			c = h
		}
		r[i+2] = c
	}

	var c uint64
	r[0], c = bits.Add64(r[0], carry.Lo, 0)
	r[1], c = bits.Add64(r[1], carry.Hi, c)
	r[2], c = bits.Add64(r[2], 0, c)
	r[3], _ = bits.Add64(r[3], 0, c)

	return Uint128{Hi: r[1], Lo: r[0]}, Uint128{Hi: r[3], Lo: r[2]}
}

// QuoRem64 returns the quotient x/y and the remainder x%y. It panics
// if y is zero.
func (x Uint128) QuoRem64(y uint64) (Uint128, uint64) {
	var q Uint128
	var r uint64

	q.Hi, r = bits.Div64(0, x.Hi, y)
	q.Lo, r = bits.Div64(r, x.Lo, y)

	return q, r
}

// And returns x&y.
func (x Uint128) And(y Uint128) Uint128 {
	return Uint128{Hi: x.Hi & y.Hi, Lo: x.Lo & y.Lo}
}

// Or returns x|y.
func (x Uint128) Or(y Uint128) Uint128 {
	return Uint128{Hi: x.Hi | y.Hi, Lo: x.Lo | y.Lo}
}

// Xor returns x^y.
func (x Uint128) Xor(y Uint128) Uint128 {
	return Uint128{Hi: x.Hi ^ y.Hi, Lo: x.Lo ^ y.Lo}
}

// Lsh returns x<<n.
func (x Uint128) Lsh(n uint) Uint128 {
	switch {
	case n >= 128:
		return Uint128{}
	case n >= 64:
		return Uint128{Hi: x.Lo << (n - 64)}
	default:
		return Uint128{
			Hi: x.Hi<<n | x.Lo>>(64-n),
			Lo: x.Lo << n,
		}
	}
}

// Rsh returns x>>n.
func (x Uint128) Rsh(n uint) Uint128 {
	switch {
	case n >= 128:
		return Uint128{}
	case n >= 64:
		return Uint128{Lo: x.Hi >> (n - 64)}
	default:
		return Uint128{
			Hi: x.Hi >> n,
			Lo: x.Lo>>n | x.Hi<<(64-n),
		}
	}
}

// RotateLeft returns x rotated left by n bits modulo 128.
func (x Uint128) RotateLeft(n int) Uint128 {
	s := uint(((n % 128) + 128) % 128)
	return x.Lsh(s).Or(x.Rsh(128 - s))
}

// RotateRight returns x rotated right by n bits modulo 128.
func (x Uint128) RotateRight(n int) Uint128 {
	return x.RotateLeft(-n)
}

// SwapBytes returns x with its bytes in reversed order.
func (x Uint128) SwapBytes() Uint128 {
	return Uint128{
		Hi: bits.ReverseBytes64(x.Lo),
		Lo: bits.ReverseBytes64(x.Hi),
	}
}

// CountOnes returns the number of one bits in x.
func (x Uint128) CountOnes() int {
	return bits.OnesCount64(x.Hi) + bits.OnesCount64(x.Lo)
}

// LeadingZeros returns the number of leading zero bits in x.
func (x Uint128) LeadingZeros() int {
	if x.Hi != 0 {
		return bits.LeadingZeros64(x.Hi)
	}
	return 64 + bits.LeadingZeros64(x.Lo)
}

// TrailingZeros returns the number of trailing zero bits in x.
func (x Uint128) TrailingZeros() int {
	if x.Lo != 0 {
		return bits.TrailingZeros64(x.Lo)
	}
	return 64 + bits.TrailingZeros64(x.Hi)
}

// Big returns x as a big.Int.
func (x Uint128) Big() *big.Int {
	v := new(big.Int).SetUint64(x.Hi)
	v.Lsh(v, 64)
	return v.Or(v, new(big.Int).SetUint64(x.Lo))
}

func (x Uint128) String() string {
	return x.Big().String()
}
