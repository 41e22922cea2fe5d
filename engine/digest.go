//
// Copyright (c) 2026 Markku Rossi
//
// All rights reserved.
//

package engine

import (
	"fmt"
	"hash"
	"io"

	"github.com/markkurossi/mdhash/padding"
	"github.com/markkurossi/mdhash/words"
)

var (
	_ hash.Hash       = (*Digest[uint32])(nil)
	_ io.StringWriter = (*Digest[uint32])(nil)
	_ io.ReaderFrom   = (*Digest[uint64])(nil)
)

// Digest represents the partial evaluation of a checksum. Digest
// implements hash.Hash. It is not safe for concurrent use.
type Digest[W words.Word] struct {
	params *Params[W]
	h      [MaxWords]W
	x      [MaxBlockSize]byte
	nx     int
	len    uint64
}

// New creates a new digest for the hash function params. The
// function panics if params are inconsistent.
func New[W words.Word](params *Params[W]) *Digest[W] {
	params.validate()
	d := &Digest[W]{
		params: params,
	}
	d.Reset()
	return d
}

// Params returns the digest's hash function.
func (d *Digest[W]) Params() *Params[W] {
	return d.params
}

// Reset resets the digest to its initial state.
func (d *Digest[W]) Reset() {
	d.h = [MaxWords]W{}
	copy(d.h[:], d.params.IV)
	d.nx = 0
	d.len = 0
}

// Size returns the digest size in bytes.
func (d *Digest[W]) Size() int {
	return d.params.Size
}

// BlockSize returns the block size in bytes.
func (d *Digest[W]) BlockSize() int {
	return d.params.Layout.BlockSize
}

// Len returns the number of message bytes written to the digest.
func (d *Digest[W]) Len() uint64 {
	return d.len
}

// State returns a copy of the current state words.
func (d *Digest[W]) State() []W {
	return append([]W(nil), d.state()...)
}

func (d *Digest[W]) state() []W {
	return d.h[:len(d.params.IV)]
}

// Write adds p to the digest. It never returns an error.
func (d *Digest[W]) Write(p []byte) (int, error) {
	n := len(p)
	d.len += uint64(n)
	d.feed(p)
	return n, nil
}

// WriteString adds s to the digest. It never returns an error.
func (d *Digest[W]) WriteString(s string) (int, error) {
	return d.Write([]byte(s))
}

// ReadFrom adds all data from r to the digest. It returns the number
// of bytes read and any error except io.EOF encountered during read.
func (d *Digest[W]) ReadFrom(r io.Reader) (int64, error) {
	var n int64
	buf := make([]byte, 32*1024)
	for {
		got, err := r.Read(buf)
		if got > 0 {
			d.Write(buf[:got])
			n += int64(got)
		}
		if err == io.EOF {
			return n, nil
		}
		if err != nil {
			return n, err
		}
	}
}

// feed runs the compression function for all full blocks and
// buffers the remainder. It does not update the message length.
func (d *Digest[W]) feed(p []byte) {
	bs := d.params.Layout.BlockSize
	if d.nx > 0 {
		n := copy(d.x[d.nx:bs], p)
		d.nx += n
		if d.nx == bs {
			d.params.Compress(d.state(), d.x[:bs])
			d.nx = 0
		}
		p = p[n:]
	}
	if len(p) >= bs {
		n := len(p) - len(p)%bs
		d.params.Compress(d.state(), p[:n])
		p = p[n:]
	}
	if len(p) > 0 {
		d.nx = copy(d.x[:], p)
	}
}

// Sum appends the current digest to in and returns the resulting
// slice. It does not change the underlying digest state so the
// caller can keep writing and summing.
func (d *Digest[W]) Sum(in []byte) []byte {
	d0 := *d
	return append(in, d0.checkSum()...)
}

// Finalize pads the message and returns the digest. Unlike Sum, it
// processes the padding into the digest's own state so that the
// state words hold the final digest value. Data written after
// Finalize is hashed on top of the finalized state and the next
// padding is derived from the new total message length.
func (d *Digest[W]) Finalize() []byte {
	return d.checkSum()
}

// Digest copies the digest into dst and returns the number of bytes
// copied, which is the minimum of len(dst) and Size. Bytes of dst
// after the digest are not modified.
func (d *Digest[W]) Digest(dst []byte) int {
	return copy(dst, d.Sum(nil))
}

// Hex returns the digest as an uppercase hexadecimal string.
func (d *Digest[W]) Hex() string {
	return fmt.Sprintf("%X", d.Sum(nil))
}

func (d *Digest[W]) String() string {
	return d.Hex()
}

func (d *Digest[W]) checkSum() []byte {
	var tmp [2 * MaxBlockSize]byte

	pad := d.params.Layout.Append(tmp[:0], uint64(d.nx),
		padding.BitLength(d.len), false)
	d.feed(pad)

	if d.nx != 0 {
		panic("d.nx != 0")
	}
	return d.output()
}

func (d *Digest[W]) output() []byte {
	var buf [MaxWords * 8]byte

	size := words.Bytes[W]()
	for i, v := range d.state() {
		words.Put(d.params.Layout.Order, buf[i*size:], v)
	}
	sum := append([]byte(nil), buf[:d.params.Size]...)
	if rem := d.params.DigestBits() % 8; rem != 0 {
		sum[len(sum)-1] &= byte(0xff << (8 - rem))
	}
	return sum
}

// Sum returns the digest of data computed with the hash function
// params.
func Sum[W words.Word](params *Params[W], data []byte) []byte {
	d := New(params)
	d.Write(data)
	return d.checkSum()
}

// SumBits returns the digest of the first nbits bits of data. The
// bits of a partial last byte are taken from its most significant
// end. The function panics if nbits exceeds the bit length of data.
func SumBits[W words.Word](params *Params[W], data []byte,
	nbits uint64) []byte {

	if nbits > uint64(len(data))*8 {
		panic(fmt.Sprintf("engine: bit length %d exceeds data length %d",
			nbits, len(data)))
	}
	d := New(params)

	full := nbits / 8
	d.Write(data[:full])

	var marked bool
	if rem := nbits % 8; rem != 0 {
		last := data[full]&byte(0xff<<(8-rem)) | byte(padding.Marker>>rem)
		d.feed([]byte{last})
		marked = true
	}

	var tmp [2 * MaxBlockSize]byte
	pad := params.Layout.Append(tmp[:0], uint64(d.nx), words.From64(nbits),
		marked)
	d.feed(pad)

	if d.nx != 0 {
		panic("d.nx != 0")
	}
	return d.output()
}
