/*
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

package position

import (
	. "github.com/yomigo-shogi/yomigo/internal/bitboard"
	. "github.com/yomigo-shogi/yomigo/internal/types"
)

// enteringKingMinPieces is the number of non-king pieces (on the board,
// inside the promotion zone) a side must have before it may declare a
// win by entering king - the "27-point rule" used by USI engines and
// most Japanese Shogi federations.
const enteringKingMinPieces = 10

// bigPiecePoints/smallPiecePoints are the point values used to tally a
// side's material for the entering-king declaration: rook/bishop (and
// their promoted forms) count 5, every other non-king piece counts 1.
const (
	bigPiecePoints   = 5
	smallPiecePoints = 1
)

// pointsOf returns the declaration-rule point value of a piece type;
// King contributes zero (it is never counted).
func pointsOf(pt PieceType) int {
	switch pt {
	case Bishop, Horse, Rook, Dragon:
		return bigPiecePoints
	case King, PtNone:
		return 0
	default:
		return smallPiecePoints
	}
}

// CanDeclareWin reports whether side c may claim a win by the
// entering-king ("nyugyoku") rule in the current position:
//   - c's king sits in the opponent's promotion zone (the far three ranks),
//   - c's king is not currently in check,
//   - at least 10 of c's own pieces other than the king occupy that same
//     zone, and
//   - the point total of all of c's pieces - the zone pieces on the
//     board plus everything held in hand, valued at 5 for rook/bishop
//     (promoted or not) and 1 for everything else - reaches 28 for Black
//     or 27 for White.
//
// This mirrors the declaration most USI engines honor; spec GLOSSARY
// calls it out as "entering-king win" and search step 5 (spec §4.7)
// treats it as a tablebase-style terminal result once detected.
func (p *Position) CanDeclareWin(c Color) bool {
	kingSq := p.kingSquare[c]
	if !kingSq.RankOf().PromotionZone(c) {
		return false
	}
	if !p.computeCheckers(c).IsEmpty() {
		return false
	}

	zoneCount := 0
	points := 0
	for pt := Pawn; pt <= Dragon; pt++ {
		if pt == King {
			continue
		}
		bb := p.piecesBb[c][pt]
		for !bb.IsEmpty() {
			var sq Square
			sq, bb = bb.PopLsb()
			if sq.RankOf().PromotionZone(c) {
				zoneCount++
				points += pointsOf(pt)
			}
		}
	}

	for pt := Pawn; pt <= Gold; pt++ {
		count := int(p.hand[c].Count(pt))
		points += count * pointsOf(pt)
	}

	if zoneCount < enteringKingMinPieces {
		return false
	}

	required := 27
	if c == Black {
		required = 28
	}
	return points >= required
}
