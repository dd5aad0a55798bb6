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

package movegen

import (
	"github.com/yomigo-shogi/yomigo/internal/moveslice"
	"github.com/yomigo-shogi/yomigo/internal/position"
	. "github.com/yomigo-shogi/yomigo/internal/types"
)

// mate1PriorityDrop fixes the drop-piece search order: a supported rook
// or lance drop next to the king is the cheapest mate to find (and the
// most forcing), so it is tried first; pawn drops never appear here -
// a mating pawn drop is illegal (drop-pawn-mate) and never legal.
var mate1PriorityDrop = [...]PieceType{Rook, Lance, Bishop, Gold, Silver, Knight}

// mate1PriorityBoard fixes the on-board moving-piece search order for
// the fallback scan once no drop mates: sliders first, each promoted
// form ahead of its base piece (a promoted slider combines a king step
// with a slide, covering the most squares per candidate), then the
// remaining pieces roughly by mobility.
var mate1PriorityBoard = [...]PieceType{
	Dragon, Rook, Horse, Bishop, Gold, ProPawn, ProLance, ProKnight, ProSilver,
	Silver, Knight, Lance, Pawn,
}

// MateMoveIn1Ply returns a move that checkmates the opponent in one ply,
// or MoveNone if no such move exists. It is a specialized alternative to
// a full one-ply search: rather than searching every legal move to
// depth 1 and checking for mate, it only ever considers moves that give
// check (a mate is always a check) and orders the scan so that the
// kind of move most likely to mate a random position is tried first -
// the scan returns on the first hit instead of exhausting every
// candidate.
//
// Where the original engine this is ported from short-circuits using a
// cached pinned/blocker bitboard recomputed once per candidate checking
// square, this implementation plays each checking candidate with
// p.DoMove and confirms mate by asking whether the opponent has any
// legal reply at all (p.HasCheck plus hasAnyLegalMove). This is
// slower per candidate but needs no blocker cache and is exactly
// correct, matching this package's do/undo-based legality idiom used
// throughout (see Position.IsLegalMove, Position.GivesCheck).
func MateMoveIn1Ply(p *position.Position) Move {
	legal := GenerateLegalMoves(p, GenAll)

	if m := scanMateIn1(p, legal, true); m != MoveNone {
		return m
	}
	return scanMateIn1(p, legal, false)
}

// scanMateIn1 walks legal in priority order (drops first when
// wantDrops, board moves otherwise), trying only moves that give
// check, and returns the first that leaves the opponent without a
// legal reply.
func scanMateIn1(p *position.Position, legal *moveslice.MoveSlice, wantDrops bool) Move {
	priority := mate1PriorityBoard[:]
	if wantDrops {
		priority = mate1PriorityDrop[:]
	}
	for _, pt := range priority {
		for i := 0; i < legal.Len(); i++ {
			m := legal.At(i)
			if m.IsDrop() != wantDrops {
				continue
			}
			movedType := m.MovedPiece()
			if wantDrops {
				movedType = m.DroppedPiece()
			}
			if movedType != pt {
				continue
			}
			if !p.GivesCheck(m) {
				continue
			}
			if isMateMove(p, m) {
				return m
			}
		}
	}
	return MoveNone
}

// isMateMove plays m and reports whether it leaves the opponent both
// legally in check and without any legal reply.
func isMateMove(p *position.Position, m Move) bool {
	p.DoMove(m)
	mate := p.HasCheck() && !hasAnyLegalMove(p)
	p.UndoMove()
	return mate
}

// hasAnyLegalMove is a thin rename of Movegen.HasLegalMove for use from
// a free function (MateMoveIn1Ply has no Movegen instance of its own;
// unlike search's staged picker it only ever needs a yes/no answer).
func hasAnyLegalMove(p *position.Position) bool {
	return GenerateLegalMoves(p, GenAll).Len() > 0
}
