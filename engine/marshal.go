//
// Copyright (c) 2026 Markku Rossi
//
// All rights reserved.
//

package engine

import (
	"encoding/binary"
	"errors"
	"fmt"

	"github.com/markkurossi/mdhash/words"
)

const magic = "mdh\x01"

// ErrInvalidState is returned when an encoded digest state can't be
// decoded.
var ErrInvalidState = errors.New("invalid hash state")

func (d *Digest[W]) marshaledSize() int {
	return len(magic) + 1 + len(d.params.Name) + d.params.StateSize() + 1 +
		d.params.Layout.BlockSize + 8
}

// MarshalBinary encodes the digest state: the state words in
// big-endian byte order, the buffered input, and the message length.
func (d *Digest[W]) MarshalBinary() ([]byte, error) {
	var tmp [8]byte

	b := make([]byte, 0, d.marshaledSize())
	b = append(b, magic...)
	b = append(b, byte(len(d.params.Name)))
	b = append(b, d.params.Name...)

	size := words.Bytes[W]()
	for _, v := range d.state() {
		words.Put(binary.BigEndian, tmp[:], v)
		b = append(b, tmp[:size]...)
	}
	b = append(b, byte(d.nx))
	b = append(b, d.x[:d.nx]...)
	b = b[:len(b)+d.params.Layout.BlockSize-d.nx] // already zero
	b = binary.BigEndian.AppendUint64(b, d.len)

	return b, nil
}

// UnmarshalBinary restores the digest state from data encoded with
// MarshalBinary. The state must have been produced by the same hash
// function.
func (d *Digest[W]) UnmarshalBinary(b []byte) error {
	if len(b) < len(magic) || string(b[:len(magic)]) != magic {
		return fmt.Errorf("%w: invalid identifier", ErrInvalidState)
	}
	if len(b) != d.marshaledSize() {
		return fmt.Errorf("%w: invalid size %d, expected %d",
			ErrInvalidState, len(b), d.marshaledSize())
	}
	b = b[len(magic):]

	if 1+int(b[0]) > len(b) {
		return fmt.Errorf("%w: truncated name", ErrInvalidState)
	}
	name := string(b[1 : 1+int(b[0])])
	if name != d.params.Name {
		return fmt.Errorf("%w: state of %s, expected %s",
			ErrInvalidState, name, d.params.Name)
	}
	b = b[1+len(name):]

	var h [MaxWords]W
	size := words.Bytes[W]()
	for i := range d.state() {
		h[i] = words.Load[W](binary.BigEndian, b)
		b = b[size:]
	}

	nx := int(b[0])
	b = b[1:]
	if nx >= d.params.Layout.BlockSize {
		return fmt.Errorf("%w: invalid buffer length %d", ErrInvalidState, nx)
	}
	bs := d.params.Layout.BlockSize

	d.h = h
	d.nx = nx
	copy(d.x[:], b[:bs])
	d.len = binary.BigEndian.Uint64(b[bs:])

	return nil
}
