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

import (
	"strings"
)

// Move is a 32-bit packed encoding of a Shogi move (board move or drop).
//  BITMAP 32-bit
//  |unused----------------|-moved pc-|-from/pc-|d|p|--to---|
//  3 2 2 2 2 2 2 2 2 2 2 2 2 2 1 1 1 1 1 1 1 1 1 1 0 0 0 0 0 0 0 0 0 0 0
//  1 9 9 8 7 6 5 4 3 2 1 0 9 8 7 6 5 4 3 2 1 0 9 8 7 6 5 4 3 2 1 0
//  bit  0..6  : destination square (7 bits, 0..80)
//  bit  7     : promotion flag
//  bit  8     : drop flag
//  bit  9..15 : origin square for board moves; dropped PieceType for drops
//               (only bits 9..13 used in that case)
//  bit 16..20 : moved piece, pre-promotion form (zero for drops)
//
// There is deliberately no embedded sort-value field (unlike a 64-square
// chess move encoding with bits to spare): MovePicker scoring lives
// alongside the move in a ScoredMove pair instead, see moveslice.
type Move uint32

const (
	// MoveNone is the zero value, meaning "no move".
	MoveNone Move = 0
	// MoveNull is a null move: a sentinel used by null-move pruning's
	// recursive search call in place of a real move.
	MoveNull Move = specialBit | (0 << specialShift)
	// MoveResign signals "no legal move, resign".
	MoveResign Move = specialBit | (1 << specialShift)
	// MoveWin signals a declared win (e.g. entering-king / nyugyoku).
	MoveWin Move = specialBit | (2 << specialShift)
)

// specialBit sits above every real field (to/promote/drop/from/piece all
// fit in bits 0..20) so the three sentinels can never collide with a
// legally encoded move.
const (
	specialBit   Move = 1 << 24
	specialShift      = 25
)

const (
	toShift       uint  = 0
	promoteBit    Move  = 1 << 7
	dropBit       Move  = 1 << 8
	fromShift     uint  = 9
	pieceShift    uint  = 16
	squareMask7   Move  = 0x7F
	toMask        Move  = squareMask7
	fromMask      Move  = squareMask7 << fromShift
	dropPieceMask Move  = 0x1F << fromShift
	pieceMask     Move  = 0x1F << pieceShift
)

// CreateMove encodes a normal board move (including promotions).
func CreateMove(from, to Square, moved PieceType, promote bool) Move {
	m := Move(to)<<toShift | Move(from)<<fromShift | Move(moved)<<pieceShift
	if promote {
		m |= promoteBit
	}
	return m
}

// CreateDrop encodes a drop move of piece type pt onto square to.
func CreateDrop(pt PieceType, to Square) Move {
	return Move(to)<<toShift | Move(pt)<<fromShift | dropBit
}

// IsDrop reports whether m places a piece from hand.
func (m Move) IsDrop() bool {
	return m&dropBit != 0
}

// IsPromotion reports whether m promotes the moving piece.
func (m Move) IsPromotion() bool {
	return m&promoteBit != 0
}

// To returns the destination square.
func (m Move) To() Square {
	return Square((m & toMask) >> toShift)
}

// From returns the origin square. Undefined (and meaningless) for drops;
// use DroppedPiece instead.
func (m Move) From() Square {
	return Square((m & fromMask) >> fromShift)
}

// DroppedPiece returns the piece type placed by a drop move. Undefined
// for board moves.
func (m Move) DroppedPiece() PieceType {
	return PieceType((m & dropPieceMask) >> fromShift)
}

// MovedPiece returns the moving piece's pre-promotion type. Zero for
// drops, where the dropped piece is never already promoted.
func (m Move) MovedPiece() PieceType {
	return PieceType((m & pieceMask) >> pieceShift)
}

// IsSpecial reports whether m is one of the null/resign/win sentinels.
func (m Move) IsSpecial() bool {
	return m == MoveNull || m == MoveResign || m == MoveWin
}

// IsValid reports whether m is a non-zero, non-sentinel move whose
// square and piece fields are all in range.
func (m Move) IsValid() bool {
	if m == MoveNone || m.IsSpecial() {
		return false
	}
	if !m.To().IsValid() {
		return false
	}
	if m.IsDrop() {
		return m.DroppedPiece().IsValid() && !m.DroppedPiece().IsPromoted()
	}
	return m.From().IsValid() && m.MovedPiece().IsValid() && !m.MovedPiece().IsPromoted()
}

// StringUsi renders m in USI wire format: "<file><rank><file><rank>[+]"
// for board moves, "<PieceLetter>*<file><rank>" for drops.
func (m Move) StringUsi() string {
	switch m {
	case MoveNone:
		return "none"
	case MoveNull:
		return "null"
	case MoveResign:
		return "resign"
	case MoveWin:
		return "win"
	}
	var b strings.Builder
	if m.IsDrop() {
		b.WriteString(m.DroppedPiece().String())
		b.WriteByte('*')
		b.WriteString(m.To().String())
		return b.String()
	}
	b.WriteString(m.From().String())
	b.WriteString(m.To().String())
	if m.IsPromotion() {
		b.WriteByte('+')
	}
	return b.String()
}

// String is an alias for StringUsi, matching Stringer.
func (m Move) String() string {
	return m.StringUsi()
}
