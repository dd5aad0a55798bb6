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

// Package bitboard implements the 81-square two-lane bitboard type and
// its attack tables (stepping, lance bit-strip, and two-level fancy
// magic for bishop/rook), generalizing the single-uint64 64-square
// bitboard and magic bitboard technique used for 8x8 chess boards.
package bitboard

import (
	"math/bits"
	"strings"

	. "github.com/yomigo-shogi/yomigo/internal/types"
)

// Bitboard is a set of Shogi squares packed into two 64-bit lanes.
// Square sq lives in lane part(sq) = 0 if sq <= 62, 1 otherwise, at bit
// sq % 63 within that lane. Squares 0..62 (files 1..7) fit lane 0;
// squares 63..80 (files 8..9) fit lane 1 - the split falls exactly on a
// file boundary, so file-wise (lance) sliding never crosses lanes.
type Bitboard struct {
	v [2]uint64
}

// part and bitOf implement the (lane, bit) split documented on Bitboard
// and in DESIGN.md's Open Question entry for this exact split.
func part(sq Square) int {
	if sq > 62 {
		return 1
	}
	return 0
}

func bitOf(sq Square) uint {
	return uint(sq) % 63
}

// Zero is the empty bitboard.
var Zero = Bitboard{}

// SquareBb returns the singleton bitboard containing just sq.
func SquareBb(sq Square) Bitboard {
	var b Bitboard
	b.v[part(sq)] = uint64(1) << bitOf(sq)
	return b
}

// Has reports whether sq is a member of b.
func (b Bitboard) Has(sq Square) bool {
	return b.v[part(sq)]&(uint64(1)<<bitOf(sq)) != 0
}

// PushSquare returns b with sq added.
func (b Bitboard) PushSquare(sq Square) Bitboard {
	b.v[part(sq)] |= uint64(1) << bitOf(sq)
	return b
}

// PopSquare returns b with sq removed.
func (b Bitboard) PopSquare(sq Square) Bitboard {
	b.v[part(sq)] &^= uint64(1) << bitOf(sq)
	return b
}

// And returns the intersection of b and o.
func (b Bitboard) And(o Bitboard) Bitboard {
	return Bitboard{[2]uint64{b.v[0] & o.v[0], b.v[1] & o.v[1]}}
}

// Or returns the union of b and o.
func (b Bitboard) Or(o Bitboard) Bitboard {
	return Bitboard{[2]uint64{b.v[0] | o.v[0], b.v[1] | o.v[1]}}
}

// Xor returns the symmetric difference of b and o.
func (b Bitboard) Xor(o Bitboard) Bitboard {
	return Bitboard{[2]uint64{b.v[0] ^ o.v[0], b.v[1] ^ o.v[1]}}
}

// Not returns the complement of b restricted to the 81 valid squares.
func (b Bitboard) Not() Bitboard {
	return Bitboard{[2]uint64{^b.v[0], ^b.v[1]}}.And(All)
}

// AndNot returns b with the squares of o removed.
func (b Bitboard) AndNot(o Bitboard) Bitboard {
	return Bitboard{[2]uint64{b.v[0] &^ o.v[0], b.v[1] &^ o.v[1]}}
}

// IsEmpty reports whether b has no squares set.
func (b Bitboard) IsEmpty() bool {
	return b.v[0] == 0 && b.v[1] == 0
}

// PopCount returns the number of squares in b.
func (b Bitboard) PopCount() int {
	return bits.OnesCount64(b.v[0]) + bits.OnesCount64(b.v[1])
}

// Lsb returns the lowest-indexed square in b, preferring lane 0 over
// lane 1, which keeps iteration in file-major order.
func (b Bitboard) Lsb() Square {
	if b.v[0] != 0 {
		return Square(bits.TrailingZeros64(b.v[0]))
	}
	if b.v[1] != 0 {
		return Square(bits.TrailingZeros64(b.v[1]) + 63)
	}
	return SqNone
}

// PopLsb returns the lowest-indexed square in b and b with that square
// removed.
func (b Bitboard) PopLsb() (Square, Bitboard) {
	sq := b.Lsb()
	if sq == SqNone {
		return SqNone, b
	}
	return sq, b.PopSquare(sq)
}

// String renders b as a 9x9 ascii grid, rank "a" at the top, file "9"
// on the left - matching the board's visual orientation in SFEN.
func (b Bitboard) String() string {
	var sb strings.Builder
	for r := RankA; r <= RankI; r++ {
		for f := File9; ; f-- {
			sq := SquareOf(f, r)
			if b.Has(sq) {
				sb.WriteString("X ")
			} else {
				sb.WriteString(". ")
			}
			if f == File1 {
				break
			}
		}
		sb.WriteString("\n")
	}
	return sb.String()
}
