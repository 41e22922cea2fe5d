//
// Copyright (c) 2026 Markku Rossi
//
// All rights reserved.
//

package words

import (
	"math/bits"
)

// Word defines the unsigned integer types supported by the generic
// word functions.
type Word interface {
	~uint8 | ~uint16 | ~uint32 | ~uint64
}

// Bits returns the width of W in bits.
func Bits[W Word]() int {
	var zero W
	return bits.Len64(uint64(^zero))
}

// Bytes returns the width of W in bytes.
func Bytes[W Word]() int {
	return Bits[W]() / 8
}

// Max returns the maximum value of W.
func Max[W Word]() W {
	var zero W
	return ^zero
}

// WrappingAdd returns a+b modulo 2^bits.
func WrappingAdd[W Word](a, b W) W {
	return a + b
}

// WrappingSub returns a-b modulo 2^bits.
func WrappingSub[W Word](a, b W) W {
	return a - b
}

// WrappingMul returns a*b modulo 2^bits.
func WrappingMul[W Word](a, b W) W {
	return a * b
}

// WrappingNeg returns -a modulo 2^bits.
func WrappingNeg[W Word](a W) W {
	return 0 - a
}

// OverflowingAdd returns a+b and a flag telling if the addition
// overflowed.
func OverflowingAdd[W Word](a, b W) (W, bool) {
	s := a + b
	return s, s < a
}

// OverflowingSub returns a-b and a flag telling if the subtraction
// underflowed.
func OverflowingSub[W Word](a, b W) (W, bool) {
	return a - b, b > a
}

// OverflowingMul returns the low word of a*b and a flag telling if
// the product did not fit into W.
func OverflowingMul[W Word](a, b W) (W, bool) {
	lo, hi := WideningMul(a, b)
	return lo, hi != 0
}

// CarryingAdd returns a+b+carry and the carry out.
func CarryingAdd[W Word](a, b W, carry bool) (W, bool) {
	s, c1 := OverflowingAdd(a, b)
	if !carry {
		return s, c1
	}
	s, c2 := OverflowingAdd(s, 1)
	return s, c1 || c2
}

// BorrowingSub returns a-b-borrow and the borrow out.
func BorrowingSub[W Word](a, b W, borrow bool) (W, bool) {
	d, b1 := OverflowingSub(a, b)
	if !borrow {
		return d, b1
	}
	d, b2 := OverflowingSub(d, 1)
	return d, b1 || b2
}

// WideningMul returns the double-width product a*b split into its
// low and high words.
func WideningMul[W Word](a, b W) (lo, hi W) {
	return CarryingMul(a, b, 0)
}

// CarryingMul returns the double-width value a*b+carry split into
// its low and high words. The result never overflows the double
// width.
func CarryingMul[W Word](a, b, carry W) (lo, hi W) {
	w := Bits[W]()
	if w == 64 {
		h, l := bits.Mul64(uint64(a), uint64(b))
		l, c := bits.Add64(l, uint64(carry), 0)
		return W(l), W(h + c)
	}
	p := uint64(a)*uint64(b) + uint64(carry)
	return W(p), W(p >> uint(w))
}

// DivRem returns the quotient and remainder of a/b. It panics if b
// is zero.
func DivRem[W Word](a, b W) (q, r W) {
	return a / b, a % b
}

// CheckedDiv returns a/b. The boolean result is false if b is zero.
func CheckedDiv[W Word](a, b W) (W, bool) {
	if b == 0 {
		return 0, false
	}
	return a / b, true
}

// CheckedRem returns a%b. The boolean result is false if b is zero.
func CheckedRem[W Word](a, b W) (W, bool) {
	if b == 0 {
		return 0, false
	}
	return a % b, true
}

// ModAdd returns (a+b) mod m. It panics if m is zero.
func ModAdd[W Word](a, b, m W) W {
	a %= m
	b %= m
	s, c := OverflowingAdd(a, b)
	if c || s >= m {
		s -= m
	}
	return s
}

// ModMul returns (a*b) mod m computed over the double-width
// product. It panics if m is zero.
func ModMul[W Word](a, b, m W) W {
	a %= m
	b %= m
	lo, hi := WideningMul(a, b)

	w := Bits[W]()
	if w == 64 {
		// a, b < m so the high word is below m.
		_, r := bits.Div64(uint64(hi), uint64(lo), uint64(m))
		return W(r)
	}
	return W((uint64(hi)<<uint(w) | uint64(lo)) % uint64(m))
}

// ModPow returns base^exp mod m. It panics if m is zero.
func ModPow[W Word](base, exp, m W) W {
	result := 1 % m
	base %= m
	for exp > 0 {
		if exp&1 == 1 {
			result = ModMul(result, base, m)
		}
		base = ModMul(base, base, m)
		exp >>= 1
	}
	return result
}

// RotateLeft returns a rotated left by n bits. The rotation count is
// taken modulo the word width; negative counts rotate right.
func RotateLeft[W Word](a W, n int) W {
	w := Bits[W]()
	s := uint(((n % w) + w) % w)
	return a<<s | a>>(uint(w)-s)
}

// RotateRight returns a rotated right by n bits.
func RotateRight[W Word](a W, n int) W {
	return RotateLeft(a, -n)
}

// CountOnes returns the number of one bits in a.
func CountOnes[W Word](a W) int {
	return bits.OnesCount64(uint64(a))
}

// CountZeros returns the number of zero bits in a.
func CountZeros[W Word](a W) int {
	return Bits[W]() - CountOnes(a)
}

// LeadingZeros returns the number of leading zero bits in a.
func LeadingZeros[W Word](a W) int {
	return bits.LeadingZeros64(uint64(a)) - (64 - Bits[W]())
}

// TrailingZeros returns the number of trailing zero bits in a. The
// result is the word width for zero.
func TrailingZeros[W Word](a W) int {
	if a == 0 {
		return Bits[W]()
	}
	return bits.TrailingZeros64(uint64(a))
}

// ReverseBits returns a with its bits in reversed order.
func ReverseBits[W Word](a W) W {
	return W(bits.Reverse64(uint64(a)) >> uint(64-Bits[W]()))
}
