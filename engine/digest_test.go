//
// Copyright (c) 2026 Markku Rossi
//
// All rights reserved.
//

package engine

import (
	"bytes"
	"encoding/binary"
	"errors"
	"math/rand"
	"strings"
	"testing"

	"github.com/markkurossi/mdhash/padding"
	"github.com/markkurossi/mdhash/words"
)

// toyParams define a test hash function with a simple order
// dependent compression function. The blocks counter counts the
// compressed blocks.
func toyParams(blocks *int) *Params[uint32] {
	return &Params[uint32]{
		Name:   "toy",
		IV:     []uint32{0x01234567, 0x89abcdef, 0xfedcba98, 0x76543210},
		Size:   16,
		Layout: padding.SHA32,
		Compress: func(h []uint32, p []byte) {
			for len(p) >= 64 {
				if blocks != nil {
					*blocks++
				}
				for j := 0; j < 16; j++ {
					w := words.Load[uint32](binary.BigEndian, p[j*4:])
					i := j % len(h)
					h[i] = words.RotateLeft(h[i]^w, 5) + w + h[(i+1)%len(h)]
				}
				p = p[64:]
			}
		},
	}
}

func message(n int) []byte {
	rng := rand.New(rand.NewSource(int64(n)))
	data := make([]byte, n)
	rng.Read(data)
	return data
}

func TestPaddingBlocks(t *testing.T) {
	tests := []struct {
		n      int
		blocks int
	}{
		{0, 1},
		{1, 1},
		{55, 1},
		{56, 2},
		{63, 2},
		{64, 2},
		{119, 2},
		{120, 3},
		{128, 3},
	}
	for _, test := range tests {
		var blocks int
		Sum(toyParams(&blocks), message(test.n))
		if blocks != test.blocks {
			t.Errorf("message of %d bytes: %d blocks, expected %d",
				test.n, blocks, test.blocks)
		}
	}
}

func TestStreaming(t *testing.T) {
	params := toyParams(nil)
	for _, n := range []int{0, 1, 55, 56, 63, 64, 65, 127, 128, 129, 300} {
		data := message(n)
		expected := Sum(params, data)
		if len(expected) != params.Size {
			t.Fatalf("digest size %d", len(expected))
		}

		for split := 0; split <= n; split++ {
			d := New(params)
			d.Write(data[:split])
			d.Write(data[split:])
			if got := d.Sum(nil); !bytes.Equal(got, expected) {
				t.Fatalf("n=%d, split=%d: %x, expected %x",
					n, split, got, expected)
			}
		}

		d := New(params)
		for i := 0; i < n; i++ {
			d.Write(data[i : i+1])
		}
		if got := d.Sum(nil); !bytes.Equal(got, expected) {
			t.Fatalf("n=%d, bytewise: %x, expected %x", n, got, expected)
		}
	}
}

func TestSumKeepsState(t *testing.T) {
	params := toyParams(nil)
	data := message(200)

	d := New(params)
	d.Write(data[:100])
	first := d.Sum(nil)
	if !bytes.Equal(first, d.Sum(nil)) {
		t.Fatalf("Sum is not deterministic")
	}
	d.Write(data[100:])
	if got := d.Sum(nil); !bytes.Equal(got, Sum(params, data)) {
		t.Fatalf("Sum changed the digest state")
	}

	prefix := []byte("prefix")
	if got := d.Sum(prefix); !bytes.HasPrefix(got, prefix) ||
		len(got) != len(prefix)+params.Size {
		t.Fatalf("Sum(prefix)=%x", got)
	}
}

func TestFinalize(t *testing.T) {
	params := toyParams(nil)
	data := message(70)

	d := New(params)
	d.Write(data)
	sum := d.Finalize()
	if !bytes.Equal(sum, Sum(params, data)) {
		t.Fatalf("Finalize=%x, expected %x", sum, Sum(params, data))
	}
	// The state words hold the digest.
	state := d.State()
	for i, v := range state {
		if binary.BigEndian.Uint32(sum[i*4:]) != v {
			t.Fatalf("state word %d: %x", i, v)
		}
	}
	if d.Len() != 70 {
		t.Fatalf("Len=%d after Finalize", d.Len())
	}

	// Writing after finalize continues from the finalized state.
	d.Write(data[:10])
	again := d.Sum(nil)
	if bytes.Equal(again, sum) {
		t.Fatalf("digest did not change after write")
	}
	e := New(params)
	e.Write(data)
	e.Finalize()
	e.Write(data[:10])
	if !bytes.Equal(again, e.Finalize()) {
		t.Fatalf("finalized continuation is not deterministic")
	}
}

func TestDigestCopy(t *testing.T) {
	params := toyParams(nil)
	d := New(params)
	d.WriteString("hello")
	sum := d.Sum(nil)

	short := make([]byte, 4)
	if n := d.Digest(short); n != 4 || !bytes.Equal(short, sum[:4]) {
		t.Errorf("short copy: %d %x", n, short)
	}

	long := bytes.Repeat([]byte{0xee}, 20)
	if n := d.Digest(long); n != 16 || !bytes.Equal(long[:16], sum) {
		t.Errorf("long copy: %d %x", n, long)
	}
	for _, b := range long[16:] {
		if b != 0xee {
			t.Errorf("bytes after digest modified: %x", long)
		}
	}

	if d.Hex() != strings.ToUpper(d.Hex()) || len(d.Hex()) != 32 {
		t.Errorf("Hex=%v", d.Hex())
	}
	if d.String() != d.Hex() {
		t.Errorf("String=%v", d.String())
	}
}

func TestReadFrom(t *testing.T) {
	params := toyParams(nil)
	data := message(100000)

	d := New(params)
	n, err := d.ReadFrom(bytes.NewReader(data))
	if err != nil {
		t.Fatalf("ReadFrom: %v", err)
	}
	if n != int64(len(data)) {
		t.Fatalf("ReadFrom read %d bytes", n)
	}
	if !bytes.Equal(d.Sum(nil), Sum(params, data)) {
		t.Fatalf("ReadFrom digest mismatch")
	}
}

func TestReset(t *testing.T) {
	params := toyParams(nil)
	d := New(params)
	d.Write(message(99))
	d.Reset()
	if d.Len() != 0 || !bytes.Equal(d.Sum(nil), Sum(params, nil)) {
		t.Fatalf("Reset did not restore initial state")
	}
	if d.Size() != 16 || d.BlockSize() != 64 || d.Params() != params {
		t.Fatalf("invalid sizes")
	}
}

func TestSumBits(t *testing.T) {
	params := toyParams(nil)
	data := message(77)

	if !bytes.Equal(SumBits(params, data, 77*8), Sum(params, data)) {
		t.Fatalf("byte aligned SumBits differs from Sum")
	}

	// The unused low bits of the last byte do not affect the digest.
	a := append([]byte(nil), data...)
	b := append([]byte(nil), data...)
	a[76] |= 0x07
	b[76] &^= 0x07
	if !bytes.Equal(SumBits(params, a, 76*8+5), SumBits(params, b, 76*8+5)) {
		t.Fatalf("unused bits changed the digest")
	}
	if bytes.Equal(SumBits(params, a, 76*8+5), SumBits(params, a, 76*8+6)) {
		t.Fatalf("bit lengths 5 and 6 give the same digest")
	}

	defer func() {
		if recover() == nil {
			t.Fatalf("SumBits did not panic on too long bit length")
		}
	}()
	SumBits(params, data, 77*8+1)
}

func TestExpand(t *testing.T) {
	params := toyParams(nil)
	iv := []uint32{1, 2, 3, 4}
	x := params.Expand(iv, 10)
	if x.Size != 10 || x.Name != "toy-X80" {
		t.Fatalf("Expand: %v", x)
	}
	iv[0] = 0
	if x.IV[0] != 1 {
		t.Fatalf("Expand did not copy the IV")
	}
	sum := Sum(x, nil)
	if len(sum) != 10 {
		t.Fatalf("expanded digest size %d", len(sum))
	}
	if bytes.Equal(sum, Sum(params, nil)[:10]) {
		t.Fatalf("expanded IV was not used")
	}

	for _, test := range []struct {
		iv   []uint32
		size int
	}{
		{[]uint32{1, 2, 3}, 16},
		{[]uint32{1, 2, 3, 4}, 0},
		{[]uint32{1, 2, 3, 4}, 17},
	} {
		func() {
			defer func() {
				if recover() == nil {
					t.Errorf("Expand(%v, %v) did not panic", test.iv, test.size)
				}
			}()
			params.Expand(test.iv, test.size)
		}()
	}
}

func TestRuminate(t *testing.T) {
	params := toyParams(nil)
	data := message(33)

	d := New(params)
	d.Write(data)
	if !bytes.Equal(d.Ruminate(0), Sum(params, data)) {
		t.Fatalf("Ruminate(0) differs from Sum")
	}
	exp := Sum(params, data)
	for i := 0; i < 3; i++ {
		exp = Sum(params, exp)
	}
	if got := d.Ruminate(3); !bytes.Equal(got, exp) {
		t.Fatalf("Ruminate(3)=%x, expected %x", got, exp)
	}
	if !bytes.Equal(d.Ruminate(3), Ruminate(params, 3, data)) {
		t.Fatalf("Ruminate is not reproducible")
	}
	if !bytes.Equal(d.Sum(nil), Sum(params, data)) {
		t.Fatalf("Ruminate changed the digest state")
	}
}

func TestTangle(t *testing.T) {
	var blocks int
	params := toyParams(&blocks)

	d := New(params)
	d.Write(message(10))
	before := d.Sum(nil)

	d.Tangle(0)
	if !bytes.Equal(before, d.Sum(nil)) {
		t.Fatalf("Tangle(0) changed the state")
	}

	blocks = 0
	d.Tangle(3)
	if blocks != 3 {
		t.Fatalf("Tangle(3) compressed %d blocks", blocks)
	}
	if d.Len() != 10 {
		t.Fatalf("Tangle changed message length")
	}
	after := d.Sum(nil)
	if bytes.Equal(before, after) {
		t.Fatalf("Tangle(3) did not change the state")
	}

	e := New(params)
	e.Write(message(10))
	e.Tangle(3)
	if !bytes.Equal(e.Sum(nil), after) {
		t.Fatalf("Tangle is not deterministic")
	}
}

func TestMarshal(t *testing.T) {
	params := toyParams(nil)
	data := message(150)

	for _, split := range []int{0, 1, 63, 64, 65, 149} {
		d := New(params)
		d.Write(data[:split])
		state, err := d.MarshalBinary()
		if err != nil {
			t.Fatalf("MarshalBinary: %v", err)
		}

		e := New(params)
		if err := e.UnmarshalBinary(state); err != nil {
			t.Fatalf("UnmarshalBinary: %v", err)
		}
		e.Write(data[split:])
		if !bytes.Equal(e.Sum(nil), Sum(params, data)) {
			t.Fatalf("split %d: resumed digest mismatch", split)
		}
	}

	d := New(params)
	state, _ := d.MarshalBinary()

	bad := append([]byte(nil), state...)
	bad[0] = 'x'
	if err := d.UnmarshalBinary(bad); !errors.Is(err, ErrInvalidState) {
		t.Errorf("invalid magic: %v", err)
	}
	if err := d.UnmarshalBinary(state[:len(state)-1]); !errors.Is(err,
		ErrInvalidState) {
		t.Errorf("truncated state: %v", err)
	}

	other := params.Expand(params.IV, 16)
	if err := New(other).UnmarshalBinary(state); !errors.Is(err,
		ErrInvalidState) {
		t.Errorf("foreign state: %v", err)
	}
}

func TestUnmarshalRejectKeepsState(t *testing.T) {
	params := toyParams(nil)

	src := New(params)
	src.Write(message(100))
	state, err := src.MarshalBinary()
	if err != nil {
		t.Fatal(err)
	}
	// magic, name length, name, state words, buffer length
	nxOfs := len(magic) + 1 + len(params.Name) + params.StateSize()
	state[nxOfs] = 200

	d := New(params)
	d.Write(message(10))
	before := d.Sum(nil)

	if err := d.UnmarshalBinary(state); !errors.Is(err, ErrInvalidState) {
		t.Fatalf("invalid buffer length accepted: %v", err)
	}
	if got := d.Sum(nil); !bytes.Equal(got, before) {
		t.Errorf("rejected state changed digest: %x, expected %x", got, before)
	}
	if d.Len() != 10 {
		t.Errorf("rejected state changed length: %d", d.Len())
	}
}

func TestDigestBits(t *testing.T) {
	params := toyParams(nil)
	params.Size = 3
	params.Bits = 20

	if params.DigestBits() != 20 {
		t.Fatalf("DigestBits=%d", params.DigestBits())
	}
	sum := Sum(params, message(40))
	full := toyParams(nil)
	expected := Sum(full, message(40))[:3]
	expected[2] &= 0xf0
	if !bytes.Equal(sum, expected) {
		t.Errorf("truncated digest %x, expected %x", sum, expected)
	}

	if x := params.Expand(params.IV, 4); x.DigestBits() != 32 {
		t.Errorf("Expand kept bit length: %d", x.DigestBits())
	}

	for _, bits := range []int{16, 25} {
		func() {
			defer func() {
				if recover() == nil {
					t.Errorf("Bits=%d accepted for 3 bytes", bits)
				}
			}()
			p := toyParams(nil)
			p.Size = 3
			p.Bits = bits
			New(p)
		}()
	}
}
