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

// PieceType is a set of constants for the 14 Shogi piece types plus the
// empty-square sentinel. Promoted variants are the unpromoted type plus
// 8 (Pawn=1 -> ProPawn=9, ..., Rook=6 -> Dragon=14); Gold and King never
// promote.
type PieceType uint8

//noinspection GoVarAndConstTypeMayBeOmitted
const (
	PtNone PieceType = iota // 0
	Pawn                    // 1
	Lance                   // 2
	Knight                  // 3
	Silver                  // 4
	Bishop                  // 5
	Rook                    // 6
	Gold                    // 7
	King                    // 8
	ProPawn                 // 9
	ProLance                // 10
	ProKnight               // 11
	ProSilver               // 12
	Horse                   // 13 (promoted bishop)
	Dragon                  // 14 (promoted rook)
	PtLength                // 15
)

const promoteOffset = 8

var pieceTypeToUsiChar = [PtLength]byte{
	'-', 'P', 'L', 'N', 'S', 'B', 'R', 'G', 'K', '-', '-', '-', '-', '-', '-',
}

// gamePhaseValue weighs each piece type's contribution to the material
// phase used to taper evaluation and scale search pruning margins.
var gamePhaseValue = [PtLength]int{0, 1, 1, 1, 1, 5, 5, 1, 0, 2, 2, 2, 2, 6, 6}

// pieceTypeValue is the material value used by SEE and move ordering.
// Indexed by PieceType so promoted types carry their own (higher) value.
var pieceTypeValue = [PtLength]int{
	0,    // PtNone
	90,   // Pawn
	315,  // Lance
	330,  // Knight
	450,  // Silver
	510,  // Bishop
	550,  // Rook
	540,  // Gold
	15000,// King
	540,  // ProPawn (tokin)
	540,  // ProLance
	540,  // ProKnight
	540,  // ProSilver
	945,  // Horse
	985,  // Dragon
}

// IsValid reports whether pt is one of the 14 real piece types (not the
// PtNone sentinel, and in range).
func (pt PieceType) IsValid() bool {
	return pt > PtNone && pt < PtLength
}

// CanPromote reports whether pt has a promoted form (everything except
// Gold, King and the already-promoted types).
func (pt PieceType) CanPromote() bool {
	return pt >= Pawn && pt <= Rook
}

// IsPromoted reports whether pt is already a promoted piece type.
func (pt PieceType) IsPromoted() bool {
	return pt >= ProPawn && pt <= Dragon
}

// Promote returns the promoted form of pt. It does not check CanPromote
// and returns a meaningless type for pieces that cannot promote, following the
// teacher's "trust internal invariants in the hot path" style.
func (pt PieceType) Promote() PieceType {
	return pt + promoteOffset
}

// Demote returns the unpromoted form of pt, or pt unchanged if it is
// not a promoted type.
func (pt PieceType) Demote() PieceType {
	if pt.IsPromoted() {
		return pt - promoteOffset
	}
	return pt
}

// Value returns the material value of pt.
func (pt PieceType) Value() int {
	return pieceTypeValue[pt]
}

// String returns the single-letter USI piece-type character.
func (pt PieceType) String() string {
	if pt >= PtLength {
		return "-"
	}
	return string(pieceTypeToUsiChar[pt])
}
