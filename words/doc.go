//
// Copyright (c) 2026 Markku Rossi
//
// All rights reserved.
//

// Package words implements exact fixed-width unsigned word
// arithmetic. The functions are generic over the 8, 16, 32, and
// 64-bit unsigned integer types and the Uint128 type covers the
// 128-bit width. All arithmetic wraps modulo 2^bits; none of the
// functions return errors. The digest compression functions are
// written on top of this package so that one algorithm body can be
// instantiated for different word widths.
package words
