//
// Copyright (c) 2026 Markku Rossi
//
// All rights reserved.
//

package words

import (
	"encoding/binary"
	"math/bits"
)

var littleEndianHost = binary.NativeEndian.Uint16([]byte{1, 0}) == 1

// SwapBytes returns a with its bytes in reversed order.
func SwapBytes[W Word](a W) W {
	switch Bits[W]() {
	case 16:
		return W(bits.ReverseBytes16(uint16(a)))
	case 32:
		return W(bits.ReverseBytes32(uint32(a)))
	case 64:
		return W(bits.ReverseBytes64(uint64(a)))
	default:
		return a
	}
}

// ToBE converts a from the host byte order to big-endian.
func ToBE[W Word](a W) W {
	if littleEndianHost {
		return SwapBytes(a)
	}
	return a
}

// ToLE converts a from the host byte order to little-endian.
func ToLE[W Word](a W) W {
	if littleEndianHost {
		return a
	}
	return SwapBytes(a)
}

// FromBE converts a big-endian a to the host byte order.
func FromBE[W Word](a W) W {
	return ToBE(a)
}

// FromLE converts a little-endian a to the host byte order.
func FromLE[W Word](a W) W {
	return ToLE(a)
}

// IsBigEndian tests if the byte order stores the most significant
// byte first.
func IsBigEndian(order binary.ByteOrder) bool {
	return order.Uint16([]byte{0, 1}) == 1
}

// Load decodes a word from the beginning of b in the byte order.
func Load[W Word](order binary.ByteOrder, b []byte) W {
	switch Bits[W]() {
	case 16:
		return W(order.Uint16(b))
	case 32:
		return W(order.Uint32(b))
	case 64:
		return W(order.Uint64(b))
	default:
		return W(b[0])
	}
}

// Put encodes v into the beginning of b in the byte order.
func Put[W Word](order binary.ByteOrder, b []byte, v W) {
	switch Bits[W]() {
	case 16:
		order.PutUint16(b, uint16(v))
	case 32:
		order.PutUint32(b, uint32(v))
	case 64:
		order.PutUint64(b, uint64(v))
	default:
		b[0] = byte(v)
	}
}
