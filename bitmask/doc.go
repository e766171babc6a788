// SPDX-License-Identifier: MIT

// Package bitmask builds the XOR mask tables used to enumerate the neighbors
// of a fixed-width binary code.
//
// For a code c and a mask m, c ^ m is the code that differs from c exactly in
// the bits set in m. OneBit(n) yields the n masks at Hamming distance 1 and
// TwoBit(n) the C(n,2) masks at distance 2.
//
// Ordering
//
//	OneBit(3) = [0b001, 0b010, 0b100]
//	TwoBit(3) = [0b011, 0b101, 0b110]
//
// Two-bit masks are ordered by their lower bit position first and their
// higher bit position second. The hamming package relies on this order, since
// the first qualifying neighbor decides which root wins a tie.
package bitmask
