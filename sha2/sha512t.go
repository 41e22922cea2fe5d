//
// Copyright (c) 2026 Markku Rossi
//
// All rights reserved.
//

package sha2

import (
	"encoding/binary"
	"fmt"

	"github.com/markkurossi/mdhash/engine"
	"github.com/markkurossi/mdhash/padding"
)

const ivMask512T = 0xa5a5a5a5a5a5a5a5

// Valid512T tests if t is a valid SHA-512/t output size in bits.
func Valid512T(t int) bool {
	return t > 0 && t < 512 && t != 384
}

func check512T(t int) {
	if !Valid512T(t) {
		panic(fmt.Sprintf("sha2: invalid SHA-512/t output size %d", t))
	}
}

// IV512T computes the initial state of SHA-512/t as defined in FIPS
// 180-4 section 5.3.6. The function panics if t is not positive,
// not below 512, or if t is 384.
func IV512T(t int) [8]uint64 {
	check512T(t)

	gen := make([]uint64, len(iv512))
	for i, v := range iv512 {
		gen[i] = v ^ ivMask512T
	}
	d := engine.New(&engine.Params[uint64]{
		Name:     "SHA-512/IV",
		IV:       gen,
		Size:     Size512,
		Layout:   padding.SHA64,
		Compress: block512,
	})
	fmt.Fprintf(d, "SHA-512/%d", t)
	sum := d.Finalize()

	var iv [8]uint64
	for i := range iv {
		iv[i] = binary.BigEndian.Uint64(sum[i*8:])
	}
	return iv
}

// Params512T returns the parameters of the SHA-512/t hash
// function. When t is not a multiple of 8, the digest has t/8+1
// bytes and the unused low bits of the last byte are zero. The
// function panics if t is not a valid output size.
func Params512T(t int) *engine.Params[uint64] {
	switch t {
	case 224:
		return Params512_224
	case 256:
		return Params512_256
	}
	iv := IV512T(t)
	params := &engine.Params[uint64]{
		Name:     fmt.Sprintf("SHA-512/%d", t),
		IV:       iv[:],
		Size:     (t + 7) / 8,
		Layout:   padding.SHA64,
		Compress: block512,
	}
	if t%8 != 0 {
		params.Bits = t
	}
	return params
}

// New512T returns a new SHA-512/t digest. The function panics if t
// is not a valid output size.
func New512T(t int) *Digest512 {
	return engine.New(Params512T(t))
}

// Sum512T returns the SHA-512/t checksum of the data.
func Sum512T(t int, data []byte) []byte {
	return engine.Sum(Params512T(t), data)
}
