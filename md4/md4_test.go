//
// Copyright (c) 2026 Markku Rossi
//
// All rights reserved.
//

package md4

import (
	"bytes"
	"fmt"
	"testing"

	"golang.org/x/crypto/chacha20"
	xmd4 "golang.org/x/crypto/md4"
)

var golden = []struct {
	in  string
	out string
}{
	{"", "31D6CFE0D16AE931B73C59D7E0C089C0"},
	{"A", "D5EF20EEB3F75679F86CF57F93ED0FFE"},
	{"a", "BDE52CB31DE33E46245E05FBDBD6FB24"},
	{"abc", "A448017AAF21D8525FC10AE87AA6729D"},
	{"message digest", "D9130A8164549FE818874806E1C7014B"},
	{"abcdefghijklmnopqrstuvwxyz", "D79E1C308AA5BBCDEEA8ED63DF412DA9"},
}

// prg returns n deterministic pseudo-random bytes.
func prg(seed byte, n int) []byte {
	key := make([]byte, chacha20.KeySize)
	key[0] = seed
	nonce := make([]byte, chacha20.NonceSize)
	c, err := chacha20.NewUnauthenticatedCipher(key, nonce)
	if err != nil {
		panic(err)
	}
	out := make([]byte, n)
	c.XORKeyStream(out, out)
	return out
}

func TestGolden(t *testing.T) {
	for _, g := range golden {
		if s := fmt.Sprintf("%X", Sum([]byte(g.in))); s != g.out {
			t.Errorf("Sum(%q)=%s, expected %s", g.in, s, g.out)
		}
		d := New()
		d.WriteString(g.in)
		if s := d.Hex(); s != g.out {
			t.Errorf("Hex(%q)=%s, expected %s", g.in, s, g.out)
		}
		if d.Size() != Size || d.BlockSize() != BlockSize {
			t.Errorf("invalid sizes: %v, %v", d.Size(), d.BlockSize())
		}
	}
}

func TestReference(t *testing.T) {
	for n := 0; n <= 300; n++ {
		data := prg(byte(n), n)
		ref := xmd4.New()
		ref.Write(data)
		sum := Sum(data)
		if !bytes.Equal(sum[:], ref.Sum(nil)) {
			t.Fatalf("n=%d: %x, expected %x", n, sum, ref.Sum(nil))
		}
	}
}

func TestSplit(t *testing.T) {
	data := prg(1, 200)
	expected := Sum(data)
	for _, split := range []int{0, 1, 55, 56, 57, 63, 64, 65, 127, 128, 129} {
		d := New()
		d.Write(data[:split])
		d.Write(data[split:])
		if !bytes.Equal(d.Sum(nil), expected[:]) {
			t.Errorf("split %d: %x, expected %x", split, d.Sum(nil), expected)
		}
	}
}

func TestExpanded(t *testing.T) {
	d := NewExpanded([4]uint32{0x67452301, 0xEFCDAB89, 0x98BADCFE,
		0x10325476}, Size)
	d.WriteString("abc")
	if d.Hex() != "A448017AAF21D8525FC10AE87AA6729D" {
		t.Errorf("expanded with standard IV: %s", d.Hex())
	}

	d = NewExpanded([4]uint32{0x67452301, 0xEFCDAB89, 0x98BADCFE,
		0x10325476}, 8)
	d.WriteString("abc")
	if d.Hex() != "A448017AAF21D852" {
		t.Errorf("truncated: %s", d.Hex())
	}

	d = NewExpanded([4]uint32{1, 2, 3, 4}, Size)
	d.WriteString("abc")
	if d.Hex() == "A448017AAF21D8525FC10AE87AA6729D" {
		t.Errorf("custom IV ignored")
	}
}

func TestRuminate(t *testing.T) {
	data := []byte("A")
	if Ruminate(0, data) != Sum(data) {
		t.Errorf("Ruminate(0) differs from Sum")
	}
	first := Sum(data)
	second := Sum(first[:])
	if Ruminate(1, data) != second {
		t.Errorf("Ruminate(1)=%X, expected %X", Ruminate(1, data), second)
	}
	if Ruminate(5, data) != Ruminate(5, data) {
		t.Errorf("Ruminate is not deterministic")
	}
}

func BenchmarkBlock(b *testing.B) {
	data := prg(0, 8192)
	b.SetBytes(int64(len(data)))
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		Sum(data)
	}
}
