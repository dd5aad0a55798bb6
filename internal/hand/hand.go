/*
 * Yomigo - Shogi engine core in Go
 *
 * MIT License
 *
 * Copyright (c) 2020-2026 Yomigo contributors
 *
 * Permission is hereby granted, free of charge, to any person obtaining a copy
 * of this software and associated documentation files (the "Software"), to deal
 * in the Software without restriction, including without limitation the rights
 * to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
 * copies of the Software, and to permit persons to whom the Software is
 * furnished to do so, subject to the following conditions:
 *
 * The above copyright notice and this permission notice shall be included in all
 * copies or substantial portions of the Software.
 *
 * THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
 * IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
 * FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
 * AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
 * LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
 * OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE
 * SOFTWARE.
 */

// Package hand implements the captured-pieces-in-hand counter as one
// packed uint32, the way a bitboard packs square membership: each piece
// type gets a fixed-width field, so comparisons and updates are a few
// integer ops instead of an array walk.
package hand

import (
	. "github.com/yomigo-shogi/yomigo/internal/types"
)

// Hand packs seven piece-type counts into one uint32:
//
//	xxxxxxxx xxxxxxxx xxxxxxxx xxx11111  Pawn   (5 bits, shift 0)
//	xxxxxxxx xxxxxxxx xxxxxxx1 11xxxxxx  Lance  (3 bits, shift 6)
//	xxxxxxxx xxxxxxxx xxx111xx xxxxxxxx  Knight (3 bits, shift 10)
//	xxxxxxxx xxxxxxx1 11xxxxxx xxxxxxxx  Silver (3 bits, shift 14)
//	xxxxxxxx xxxx11xx xxxxxxxx xxxxxxxx  Bishop (2 bits, shift 18)
//	xxxxxxxx x11xxxxx xxxxxxxx xxxxxxxx  Rook   (2 bits, shift 21)
//	xxxxx111 xxxxxxxx xxxxxxxx xxxxxxxx  Gold   (3 bits, shift 24)
//
// A single guard bit separates every field from its neighbor so that a
// borrow from one field's subtraction can never ripple into the next.
type Hand uint32

const (
	pawnShift   = 0
	pawnBits    = 5
	laceShift   = pawnShift + pawnBits + 1 // 6
	laceBits    = 3
	knightShift = laceShift + laceBits + 1 // 10
	knightBits  = 3
	silverShift = knightShift + knightBits + 1 // 14
	silverBits  = 3
	bishopShift = silverShift + silverBits + 1 // 18
	bishopBits  = 2
	rookShift   = bishopShift + bishopBits + 1 // 21
	rookBits    = 2
	goldShift   = rookShift + rookBits + 1 // 24
	goldBits    = 3
)

func fieldMask(shift, bits uint32) uint32 { return ((1 << bits) - 1) << shift }

var (
	pawnMask   = fieldMask(pawnShift, pawnBits)
	laceMask   = fieldMask(laceShift, laceBits)
	knightMask = fieldMask(knightShift, knightBits)
	silverMask = fieldMask(silverShift, silverBits)
	bishopMask = fieldMask(bishopShift, bishopBits)
	rookMask   = fieldMask(rookShift, rookBits)
	goldMask   = fieldMask(goldShift, goldBits)

	exceptPawnMask = laceMask | knightMask | silverMask | bishopMask | rookMask | goldMask

	// borrowMask has the guard bit of every field set; it is used by
	// IsEqualOrSuperior's single wrapping-subtract comparison.
	borrowMask = (pawnMask + 1<<pawnShift) |
		(laceMask + 1<<laceShift) |
		(knightMask + 1<<knightShift) |
		(silverMask + 1<<silverShift) |
		(bishopMask + 1<<bishopShift) |
		(rookMask + 1<<rookShift) |
		(goldMask + 1<<goldShift)

	pawnOne   = Hand(1 << pawnShift)
	laceOne   = Hand(1 << laceShift)
	knightOne = Hand(1 << knightShift)
	silverOne = Hand(1 << silverShift)
	bishopOne = Hand(1 << bishopShift)
	rookOne   = Hand(1 << rookShift)
	goldOne   = Hand(1 << goldShift)
)

// fieldOf maps a piece type to its (mask, shift) in the packed word.
// Promoted pieces fall back to the unpromoted hand bucket they demote
// to when captured (Horse/Dragon return to the bishop/rook count,
// ProPawn/ProLance/ProKnight/ProSilver to the gold count), mirroring
// how a capture always un-promotes the captured piece into hand.
func fieldOf(pt PieceType) (mask uint32, shift uint32) {
	switch pt {
	case Pawn:
		return pawnMask, pawnShift
	case Lance:
		return laceMask, laceShift
	case Knight:
		return knightMask, knightShift
	case Silver:
		return silverMask, silverShift
	case Bishop, Horse:
		return bishopMask, bishopShift
	case Rook, Dragon:
		return rookMask, rookShift
	case Gold, ProPawn, ProLance, ProKnight, ProSilver:
		return goldMask, goldShift
	default:
		panic("hand: piece type has no hand field")
	}
}

func oneOf(pt PieceType) Hand {
	switch pt {
	case Pawn:
		return pawnOne
	case Lance:
		return laceOne
	case Knight:
		return knightOne
	case Silver:
		return silverOne
	case Bishop, Horse:
		return bishopOne
	case Rook, Dragon:
		return rookOne
	case Gold, ProPawn, ProLance, ProKnight, ProSilver:
		return goldOne
	default:
		panic("hand: piece type has no hand field")
	}
}

// Count returns the number of pt held in hand.
func (h Hand) Count(pt PieceType) uint32 {
	mask, shift := fieldOf(pt)
	return (uint32(h) & mask) >> shift
}

// Exists reports whether hand holds at least one pt.
func (h Hand) Exists(pt PieceType) bool {
	mask, _ := fieldOf(pt)
	return uint32(h)&mask != 0
}

// ExceptPawnExists reports whether hand holds any non-pawn piece, the
// fast check drop generation uses to decide whether any non-pawn drop
// is even possible before walking piece types individually.
func (h Hand) ExceptPawnExists() bool {
	return uint32(h)&exceptPawnMask != 0
}

// Set writes num into pt's field. It is a one-shot OR-assign, not an
// overwrite: it only produces the intended value when pt's field is
// still zero (true for every caller - Hand is always built field by
// field from a zero value when parsing SFEN or constructing a test
// position). Calling Set twice on the same field before clearing it
// would corrupt both the old and new counts into one OR'd bit pattern.
func (h *Hand) Set(pt PieceType, num uint32) {
	_, shift := fieldOf(pt)
	*h |= Hand(num << shift)
}

// Add increments pt's count by one, as happens when a capture lands.
func (h *Hand) Add(pt PieceType) {
	*h += oneOf(pt)
}

// Sub decrements pt's count by one, as happens when a piece is dropped
// or a captured piece is given back on undo.
func (h *Hand) Sub(pt PieceType) {
	*h -= oneOf(pt)
}

// IsEqualOrSuperior reports whether h holds at least as many of every
// piece type as other - the componentwise hand comparison the
// repetition detector's SUPERIOR/INFERIOR outcomes rely on. Computed
// with one subtract: a field that underflows clears its guard bit in
// borrowMask, so testing the whole masked result against zero answers
// every field's comparison at once without looping.
func (h Hand) IsEqualOrSuperior(other Hand) bool {
	return (uint32(h)-uint32(other))&borrowMask == 0
}
