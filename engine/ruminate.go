//
// Copyright (c) 2026 Markku Rossi
//
// All rights reserved.
//

package engine

import (
	"github.com/markkurossi/mdhash/words"
)

// The rumination and tangling operations are not part of the
// published hash function standards. They are deterministic
// re-mixing helpers and they do not strengthen the hash functions.

// Ruminate returns the current digest re-hashed n more times. Each
// round hashes the previous digest bytes as a new message with a
// fresh state of the same hash function. Ruminate(0) equals Sum(nil)
// and, like Sum, Ruminate does not change the digest state.
func (d *Digest[W]) Ruminate(n int) []byte {
	sum := d.Sum(nil)
	for i := 0; i < n; i++ {
		sum = Sum(d.params, sum)
	}
	return sum
}

// Ruminate returns the digest of data re-hashed n more times with
// the hash function params.
func Ruminate[W words.Word](params *Params[W], n int, data []byte) []byte {
	sum := Sum(params, data)
	for i := 0; i < n; i++ {
		sum = Sum(params, sum)
	}
	return sum
}

// Tangle mixes the state words n times with the compression
// function. Round i compresses a block that repeats the current
// state words, serialized in the hash function's byte order, and
// carries i in its last 8 bytes. Tangle does not inject message
// data and it does not change the buffered input or the message
// length.
func (d *Digest[W]) Tangle(n uint64) {
	var block [MaxBlockSize]byte

	bs := d.params.Layout.BlockSize
	order := d.params.Layout.Order
	size := words.Bytes[W]()

	for i := uint64(0); i < n; i++ {
		state := d.state()
		for j := 0; j+size <= bs; j += size {
			words.Put(order, block[j:], state[(j/size)%len(state)])
		}
		order.PutUint64(block[bs-8:], i)
		d.params.Compress(state, block[:bs])
	}
}
