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

package types

import "github.com/yomigo-shogi/yomigo/internal/assert"

// Square is one of the 81 squares of a Shogi board, encoded file-major:
// Square(file, rank) = file*9 + rank. This places squares 0..62 in the
// low bitboard lane and 63..80 in the high lane (see internal/bitboard),
// with the split falling on a file boundary (between file 6 and file 7)
// so that file-wise (lance) sliding never crosses lanes.
type Square uint8

const (
	SqLength = 81
	// SqNone is the sentinel for "no square".
	SqNone Square = SqLength
)

// SquareOf returns the square for the given file and rank, or SqNone if
// either is out of range.
func SquareOf(f File, r Rank) Square {
	if !f.IsValid() || !r.IsValid() {
		return SqNone
	}
	return Square(int(f)*int(RankLength) + int(r))
}

// IsValid reports whether sq is one of the 81 board squares.
func (sq Square) IsValid() bool {
	return sq < SqNone
}

// FileOf returns the file of sq.
func (sq Square) FileOf() File {
	return File(sq / Square(RankLength))
}

// RankOf returns the rank of sq.
func (sq Square) RankOf() Rank {
	return Rank(sq % Square(RankLength))
}

// Inverse rotates the square 180 degrees (used to mirror a position
// between the two sides' points of view).
func (sq Square) Inverse() Square {
	return Square(SqLength-1) - sq
}

// MakeSquare parses a two-character USI square (file digit + rank
// letter, e.g. "5e"), returning SqNone if the string is malformed.
func MakeSquare(s string) Square {
	if assert.DEBUG {
		assert.Assert(len(s) == 2, "square string is not 2 characters long")
	}
	if len(s) != 2 {
		return SqNone
	}
	f := FileOf(s[0])
	r := RankOf(s[1])
	return SquareOf(f, r)
}

// String returns the USI file digit followed by the rank letter
// (e.g. "5e"), or "-" if sq is not a valid square.
func (sq Square) String() string {
	if !sq.IsValid() {
		return "-"
	}
	return sq.FileOf().String() + sq.RankOf().String()
}

// Direction is a signed square delta used by stepping-attack tables.
type Direction int8

// Directions are expressed as file/rank deltas rather than raw square
// deltas because the 81-square file-major board has a rank stride of 9,
// not 8; To() below turns (file,rank) deltas into edge-checked moves.
const (
	North     Direction = -1 // rank decreases (towards White's camp)
	South     Direction = 1
	East      Direction = 9 // file increases
	West      Direction = -9
	Northeast Direction = East + North
	Southeast Direction = East + South
	Northwest Direction = West + North
	Southwest Direction = West + South
)

// fileRankDelta reports the (file, rank) step encoded by direction d,
// used only to validate against board edges.
func fileRankDelta(d Direction) (df, dr int) {
	switch d {
	case North:
		return 0, -1
	case South:
		return 0, 1
	case East:
		return 1, 0
	case West:
		return -1, 0
	case Northeast:
		return 1, -1
	case Southeast:
		return 1, 1
	case Northwest:
		return -1, -1
	case Southwest:
		return -1, 1
	default:
		panic("invalid direction")
	}
}

// To returns the square reached from sq by stepping in direction d, or
// SqNone if that step would leave the board.
func (sq Square) To(d Direction) Square {
	df, dr := fileRankDelta(d)
	f := int(sq.FileOf()) + df
	r := int(sq.RankOf()) + dr
	if f < 0 || f >= int(FileLength) || r < 0 || r >= int(RankLength) {
		return SqNone
	}
	return SquareOf(File(f), Rank(r))
}

// FileDistance returns the absolute file distance between two squares.
func FileDistance(a, b Square) int {
	af, bf := int(a.FileOf()), int(b.FileOf())
	if af > bf {
		return af - bf
	}
	return bf - af
}

// RankDistance returns the absolute rank distance between two squares.
func RankDistance(a, b Square) int {
	ar, br := int(a.RankOf()), int(b.RankOf())
	if ar > br {
		return ar - br
	}
	return br - ar
}
