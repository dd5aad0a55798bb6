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

package search

import (
	. "github.com/yomigo-shogi/yomigo/internal/bitboard"
	"github.com/yomigo-shogi/yomigo/internal/position"
	. "github.com/yomigo-shogi/yomigo/internal/types"
)

// lvaOrder is the least-valuable-attacker sequence SEE walks each ply,
// cheapest piece type first. Promoted pieces that demote back to the
// gold bucket on capture still swap in and out by their own (higher)
// board value, so they sit beside Gold rather than beside their
// unpromoted root.
var lvaOrder = [...]PieceType{
	Pawn, Lance, Knight, ProPawn, ProLance, ProKnight, ProSilver,
	Silver, Gold, Bishop, Horse, Rook, Dragon, King,
}

// see runs static-exchange evaluation on move, a capture or promotion
// onto move.To(), returning the net material gain for the side making
// the move once every profitable recapture on that square has run its
// course. Drops never capture, so calling see on a drop is meaningless
// and the caller is expected not to.
func see(p *position.Position, move Move) Value {
	gain := make([]Value, 0, 32)

	toSquare := move.To()
	fromSquare := move.From()
	movedPiece := move.MovedPiece()
	mover := p.NextPlayer()

	occ := p.OccupiedAll()

	attackers := attackersToOcc(p, toSquare, occ, Black).Or(attackersToOcc(p, toSquare, occ, White))

	capturedValue := Value(p.GetPiece(toSquare).TypeOf().Value())
	gain = append(gain, capturedValue)

	occ = occ.AndNot(SquareBb(fromSquare))
	attackers = attackers.AndNot(SquareBb(fromSquare))
	attackers = attackers.Or(xrayAttackersOcc(p, toSquare, occ, Black)).Or(xrayAttackersOcc(p, toSquare, occ, White))

	ply := 0
	for {
		ply++
		mover = mover.Flip()

		pieceValue := Value(movedPiece.Value())
		if move.IsPromotion() && ply == 1 {
			pieceValue = Value(movedPiece.Promote().Value())
		}
		gain = append(gain, pieceValue-gain[ply-1])

		if max(-gain[ply-1], gain[ply]) < 0 {
			break
		}

		fromSquare = leastValuableAttacker(p, attackers, mover)
		if fromSquare == SqNone {
			break
		}
		movedPiece = p.GetPiece(fromSquare).TypeOf()

		occ = occ.AndNot(SquareBb(fromSquare))
		attackers = attackers.AndNot(SquareBb(fromSquare))
		attackers = attackers.Or(xrayAttackersOcc(p, toSquare, occ, Black)).Or(xrayAttackersOcc(p, toSquare, occ, White))
	}

	// The last entry in gain is only ever needed for the pruning check
	// above; it must not feed back into the result when no further
	// attacker was found, so the fold stops one short of it.
	for d := ply; d > 1; d-- {
		gain[d-2] = -max(-gain[d-2], gain[d-1])
	}

	return gain[0]
}

// attackersToOcc returns every square occupied by a by-colored piece
// that attacks sq given occ, the occupancy-parameterized twin of
// Position.AttacksTo that SEE needs so it can shrink occ piece by piece
// to reveal x-ray attacks behind each capture.
func attackersToOcc(p *position.Position, sq Square, occ Bitboard, by Color) Bitboard {
	enemy := by.Flip()
	var att Bitboard
	att = att.Or(PawnAttacks[enemy][sq].And(p.PiecesBb(by, Pawn)))
	att = att.Or(KnightAttacks[enemy][sq].And(p.PiecesBb(by, Knight)))
	att = att.Or(SilverAttacks[enemy][sq].And(p.PiecesBb(by, Silver)))
	golds := p.PiecesBb(by, Gold).
		Or(p.PiecesBb(by, ProPawn)).
		Or(p.PiecesBb(by, ProLance)).
		Or(p.PiecesBb(by, ProKnight)).
		Or(p.PiecesBb(by, ProSilver))
	att = att.Or(GoldAttacks[enemy][sq].And(golds))
	att = att.Or(KingAttacks[sq].And(p.PiecesBb(by, King)))
	att = att.Or(LanceAttacks(enemy, sq, occ).And(p.PiecesBb(by, Lance)))
	att = att.Or(AttacksBb(Bishop, sq, occ).And(p.PiecesBb(by, Bishop)))
	att = att.Or(AttacksBb(Rook, sq, occ).And(p.PiecesBb(by, Rook)))
	att = att.Or(AttacksBb(Horse, sq, occ).And(p.PiecesBb(by, Horse)))
	att = att.Or(AttacksBb(Dragon, sq, occ).And(p.PiecesBb(by, Dragon)))
	return att
}

// xrayAttackersOcc is attackersToOcc restricted to the sliding piece
// types (lance/bishop/rook/horse/dragon) masked to occ - the only
// attacker kinds a captured piece's removal can newly reveal.
func xrayAttackersOcc(p *position.Position, sq Square, occ Bitboard, by Color) Bitboard {
	enemy := by.Flip()
	var att Bitboard
	att = att.Or(LanceAttacks(enemy, sq, occ).And(p.PiecesBb(by, Lance)))
	att = att.Or(AttacksBb(Bishop, sq, occ).And(p.PiecesBb(by, Bishop)))
	att = att.Or(AttacksBb(Rook, sq, occ).And(p.PiecesBb(by, Rook)))
	att = att.Or(AttacksBb(Horse, sq, occ).And(p.PiecesBb(by, Horse)))
	att = att.Or(AttacksBb(Dragon, sq, occ).And(p.PiecesBb(by, Dragon)))
	return att.And(occ)
}

// leastValuableAttacker returns the square of mover's cheapest piece
// within attackers, breaking ties (same piece type) by least
// significant bit, or SqNone if mover has no attacker left.
func leastValuableAttacker(p *position.Position, attackers Bitboard, mover Color) Square {
	for _, pt := range lvaOrder {
		bb := attackers.And(p.PiecesBb(mover, pt))
		if !bb.IsEmpty() {
			sq, _ := bb.PopLsb()
			return sq
		}
	}
	return SqNone
}

func max(x, y Value) Value {
	if x > y {
		return x
	}
	return y
}
