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

package bitboard

import . "github.com/yomigo-shogi/yomigo/internal/types"

// ProximityCheckMask[c][pt][kingSq] is the set of origin squares from
// which an enemy piece of type pt could deliver check against a king of
// color c standing on kingSq in one legal move, ignoring occupancy (a
// sliding piece's own blockers still have to be checked against the
// actual board; this mask only narrows the candidate squares, the same
// role PseudoAttacks plays for move generation before the board is
// consulted).
//
// For a stepping piece this is exactly the board's own stepping-attack
// table centered on kingSq: an enemy pawn/knight/silver/gold-like piece
// reaches kingSq from sq iff sq.To(forward[enemy]) == kingSq, which by
// direction symmetry is the same square set as kingSq's own attack table
// for color c (forward[enemy] is the reverse of forward[c]). For a
// slider the reachable-from set is the full ray through kingSq in every
// direction the piece moves, since a rook/bishop ray is identical in
// both directions; lance is the one slider whose direction is
// color-bound, so only the single ray behind the king (from the king's
// own side of the board) applies.
var ProximityCheckMask [ColorLength][PtLength][SqLength]Bitboard

func init() {
	for c := Black; c < ColorLength; c++ {
		for sq := Square(0); sq < SqLength; sq++ {
			ProximityCheckMask[c][Pawn][sq] = PawnAttacks[c][sq]
			ProximityCheckMask[c][Knight][sq] = KnightAttacks[c][sq]
			ProximityCheckMask[c][Silver][sq] = SilverAttacks[c][sq]
			ProximityCheckMask[c][Gold][sq] = GoldAttacks[c][sq]
			ProximityCheckMask[c][ProPawn][sq] = GoldAttacks[c][sq]
			ProximityCheckMask[c][ProLance][sq] = GoldAttacks[c][sq]
			ProximityCheckMask[c][ProKnight][sq] = GoldAttacks[c][sq]
			ProximityCheckMask[c][ProSilver][sq] = GoldAttacks[c][sq]
			ProximityCheckMask[c][King][sq] = KingAttacks[sq]

			ProximityCheckMask[c][Lance][sq] = fullRay(sq, forwardDir[c])

			bishopRay := fullRay(sq, Northeast).Or(fullRay(sq, Southwest)).
				Or(fullRay(sq, Northwest)).Or(fullRay(sq, Southeast))
			rookRay := fullRay(sq, North).Or(fullRay(sq, South)).
				Or(fullRay(sq, East)).Or(fullRay(sq, West))
			ProximityCheckMask[c][Bishop][sq] = bishopRay
			ProximityCheckMask[c][Rook][sq] = rookRay
			ProximityCheckMask[c][Horse][sq] = bishopRay.Or(KingAttacks[sq])
			ProximityCheckMask[c][Dragon][sq] = rookRay.Or(KingAttacks[sq])
		}
	}
}

var forwardDir = [ColorLength]Direction{North, South}

// fullRay walks every square from sq in direction d to the board edge,
// ignoring occupancy.
func fullRay(sq Square, d Direction) Bitboard {
	var b Bitboard
	cur := sq
	for {
		next := cur.To(d)
		if next == SqNone {
			break
		}
		b = b.PushSquare(next)
		cur = next
	}
	return b
}
