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

// Piece packs a PieceType (low 4 bits) and a Color (bit 4) into a
// single 5-bit code, per the wire/board representation. PieceNone (0)
// means an empty square regardless of the color bit.
type Piece uint8

const (
	PieceNone Piece = 0
	// PieceLength bounds the array of all representable (color, type)
	// codes, including the unused upper half of each nibble.
	PieceLength = 32
)

var pieceColorShift = 4

// MakePiece packs a color and piece type into a Piece.
func MakePiece(c Color, pt PieceType) Piece {
	return Piece(int(c)<<pieceColorShift | int(pt))
}

// ColorOf returns the color of p. Undefined for PieceNone.
func (p Piece) ColorOf() Color {
	return Color(p >> 4)
}

// TypeOf returns the piece type of p, ignoring the color bit.
func (p Piece) TypeOf() PieceType {
	return PieceType(p & 0xF)
}

// Promote returns p with its type promoted.
func (p Piece) Promote() Piece {
	return MakePiece(p.ColorOf(), p.TypeOf().Promote())
}

// Demote returns p with its type demoted to unpromoted form.
func (p Piece) Demote() Piece {
	return MakePiece(p.ColorOf(), p.TypeOf().Demote())
}

// Value returns the material value of p.
func (p Piece) Value() int {
	return p.TypeOf().Value()
}

// String renders p as a USI piece letter, uppercase for Black and
// lowercase for White, "+" prefixed when promoted, "-" for PieceNone.
func (p Piece) String() string {
	if p == PieceNone {
		return "-"
	}
	pt := p.TypeOf()
	s := pt.Demote().String()
	if pt.IsPromoted() {
		s = "+" + s
	}
	if p.ColorOf() == White {
		return toLowerAscii(s)
	}
	return s
}

func toLowerAscii(s string) string {
	b := []byte(s)
	for i, c := range b {
		if c >= 'A' && c <= 'Z' {
			b[i] = c - 'A' + 'a'
		}
	}
	return string(b)
}
