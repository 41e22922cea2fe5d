//
// Copyright (c) 2026 Markku Rossi
//
// All rights reserved.
//

package main

import (
	"io"
	"time"

	"github.com/markkurossi/mdhash"
	"github.com/markkurossi/mdhash/timing"
	"golang.org/x/crypto/chacha20"
)

// benchData returns size bytes of ChaCha20 keystream.
func benchData(size int) []byte {
	var key [chacha20.KeySize]byte
	var nonce [chacha20.NonceSize]byte

	c, err := chacha20.NewUnauthenticatedCipher(key[:], nonce[:])
	if err != nil {
		panic(err)
	}
	data := make([]byte, size)
	c.XORKeyStream(data, data)
	return data
}

// benchmark digests size bytes with all algorithms and prints the
// timing report to out. Each algorithm row has sub-rows for the
// update and finalize phases and, when rumination is positive, for
// the rumination rounds.
func benchmark(out io.Writer, size, rumination int) {
	data := benchData(size)

	t := timing.NewTiming()
	for _, alg := range mdhash.Algorithms() {
		d := alg.New()
		d.Write(data)
		written := time.Now()
		d.Finalize()
		finalized := time.Now()

		var ruminated time.Duration
		if rumination > 0 {
			d.Ruminate(rumination)
			ruminated = time.Since(finalized)
		}

		sample := t.Sample(label(alg, rumination), timing.ByteSize(size))
		sample.SubSample("Update", written, timing.ByteSize(size))
		sample.SubSample("Finalize", finalized, 0)
		if rumination > 0 {
			sample.AbsSubSample("Ruminate", ruminated,
				timing.ByteSize(alg.Size*rumination))
		}
	}
	t.Print(out)
}
