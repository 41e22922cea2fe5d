//
// Copyright (c) 2026 Markku Rossi
//
// All rights reserved.
//

package words

import (
	"encoding/binary"
	"math/big"
	"math/rand"
	"testing"
)

var (
	two128  = new(big.Int).Lsh(big.NewInt(1), 128)
	mask128 = new(big.Int).Sub(two128, big.NewInt(1))
)

func rand128(rng *rand.Rand) Uint128 {
	return Uint128{
		Hi: rng.Uint64(),
		Lo: rng.Uint64(),
	}
}

func from128(v *big.Int) Uint128 {
	lo := new(big.Int).And(v, new(big.Int).SetUint64(^uint64(0)))
	hi := new(big.Int).Rsh(v, 64)
	return Uint128{
		Hi: hi.Uint64(),
		Lo: lo.Uint64(),
	}
}

func TestUint128Arith(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	for i := 0; i < 1000; i++ {
		x, y := rand128(rng), rand128(rng)
		bx, by := x.Big(), y.Big()

		exp := new(big.Int).Add(bx, by)
		exp.And(exp, mask128)
		if r := x.Add(y); r != from128(exp) {
			t.Fatalf("%v+%v=%v, expected %v", x, y, r, exp)
		}

		exp = new(big.Int).Sub(bx, by)
		exp.Mod(exp, two128)
		if r := x.Sub(y); r != from128(exp) {
			t.Fatalf("%v-%v=%v, expected %v", x, y, r, exp)
		}

		exp = new(big.Int).Mul(bx, by)
		exp.And(exp, mask128)
		if r := x.Mul(y); r != from128(exp) {
			t.Fatalf("%v*%v=%v, expected %v", x, y, r, exp)
		}
	}
}

func TestUint128CarryingMul(t *testing.T) {
	rng := rand.New(rand.NewSource(2))
	for i := 0; i < 1000; i++ {
		x, y, c := rand128(rng), rand128(rng), rand128(rng)

		exp := new(big.Int).Mul(x.Big(), y.Big())
		exp.Add(exp, c.Big())

		lo, hi := x.CarryingMul(y, c)
		if lo != from128(new(big.Int).And(exp, mask128)) ||
			hi != from128(new(big.Int).Rsh(exp, 128)) {
			t.Fatalf("%v*%v+%v: got %v:%v, expected %v", x, y, c, hi, lo, exp)
		}
	}

	max := Uint128{Hi: ^uint64(0), Lo: ^uint64(0)}
	lo, hi := max.CarryingMul(max, max)
	if !lo.IsZero() || hi != max {
		t.Errorf("max*max+max: lo=%v, hi=%v", lo, hi)
	}
}

func TestUint128CarryingAdd(t *testing.T) {
	max := Uint128{Hi: ^uint64(0), Lo: ^uint64(0)}
	r, c := max.CarryingAdd(Uint128{}, true)
	if !r.IsZero() || !c {
		t.Errorf("max+0+1=%v,%v", r, c)
	}
	r, c = From64(1).CarryingAdd(From64(2), false)
	if r != From64(3) || c {
		t.Errorf("1+2=%v,%v", r, c)
	}
}

func TestUint128QuoRem64(t *testing.T) {
	rng := rand.New(rand.NewSource(3))
	for i := 0; i < 1000; i++ {
		x := rand128(rng)
		y := rng.Uint64() | 1

		q, r := x.QuoRem64(y)
		eq, er := new(big.Int).QuoRem(x.Big(), new(big.Int).SetUint64(y),
			new(big.Int))
		if q != from128(eq) || r != er.Uint64() {
			t.Fatalf("%v/%v=%v,%v, expected %v,%v", x, y, q, r, eq, er)
		}
	}
}

func TestUint128Shift(t *testing.T) {
	one := From64(1)
	for n := uint(0); n < 130; n++ {
		exp := new(big.Int).Lsh(big.NewInt(1), n)
		exp.And(exp, mask128)
		if r := one.Lsh(n); r != from128(exp) {
			t.Fatalf("1<<%v=%v, expected %v", n, r, exp)
		}
		if n < 128 && one.Lsh(n).Rsh(n) != one {
			t.Fatalf("(1<<%v)>>%v != 1", n, n)
		}
		if n < 128 && one.Lsh(n).TrailingZeros() != int(n) {
			t.Fatalf("TrailingZeros(1<<%v)=%v", n, one.Lsh(n).TrailingZeros())
		}
		if n < 128 && one.Lsh(n).LeadingZeros() != int(127-n) {
			t.Fatalf("LeadingZeros(1<<%v)=%v", n, one.Lsh(n).LeadingZeros())
		}
	}

	x := Uint128{Hi: 0x8000000000000000, Lo: 1}
	if r := x.RotateLeft(1); r != (Uint128{Hi: 0, Lo: 3}) {
		t.Errorf("RotateLeft(1)=%x:%x", r.Hi, r.Lo)
	}
	if r := x.RotateRight(1); r != (Uint128{Hi: 0xc000000000000000, Lo: 0}) {
		t.Errorf("RotateRight(1)=%x:%x", r.Hi, r.Lo)
	}
	if r := x.RotateLeft(128); r != x {
		t.Errorf("RotateLeft(128)=%x:%x", r.Hi, r.Lo)
	}
	if x.CountOnes() != 2 {
		t.Errorf("CountOnes=%v", x.CountOnes())
	}
}

func TestUint128Bytes(t *testing.T) {
	x := Uint128{Hi: 0x0102030405060708, Lo: 0x090a0b0c0d0e0f10}

	var buf [16]byte
	x.Put(binary.BigEndian, buf[:])
	for i := 0; i < 16; i++ {
		if buf[i] != byte(i+1) {
			t.Fatalf("Put BE: %x", buf)
		}
	}
	if Load128(binary.BigEndian, buf[:]) != x {
		t.Errorf("Load128 BE round trip failed")
	}

	x.Put(binary.LittleEndian, buf[:])
	for i := 0; i < 16; i++ {
		if buf[i] != byte(16-i) {
			t.Fatalf("Put LE: %x", buf)
		}
	}
	if Load128(binary.LittleEndian, buf[:]) != x {
		t.Errorf("Load128 LE round trip failed")
	}
	if x.SwapBytes().SwapBytes() != x {
		t.Errorf("SwapBytes is not an involution")
	}
	if x.SwapBytes() != Load128(binary.BigEndian, buf[:]) {
		t.Errorf("SwapBytes does not match LE layout")
	}
}

func TestUint128Cmp(t *testing.T) {
	a := Uint128{Hi: 1, Lo: 0}
	b := Uint128{Hi: 0, Lo: ^uint64(0)}
	if a.Cmp(b) != 1 || b.Cmp(a) != -1 || a.Cmp(a) != 0 {
		t.Errorf("Cmp failed")
	}
	if a.And(b) != (Uint128{}) || a.Or(b) != (Uint128{Hi: 1, Lo: ^uint64(0)}) {
		t.Errorf("And/Or failed")
	}
	if a.Xor(a) != (Uint128{}) {
		t.Errorf("Xor failed")
	}
	if a.String() != "18446744073709551616" {
		t.Errorf("String=%v", a.String())
	}
}
