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

// Package movegen generates Shogi moves (board moves, promotions and
// drops) for a position. Movegen is a per-search-ply object, reused
// node to node: it holds on-demand generation state (a PV move to try
// first, two killer slots) the way the teacher's chess move generator
// does, generalized to Shogi's extra move kind (drops) and generation
// modes (legal move generation always has to know about check, since
// "evasion" is a materially different move shape, not just a filter).
package movegen

import (
	"fmt"
	"strings"

	. "github.com/yomigo-shogi/yomigo/internal/bitboard"
	"github.com/yomigo-shogi/yomigo/internal/moveslice"
	"github.com/yomigo-shogi/yomigo/internal/position"
	. "github.com/yomigo-shogi/yomigo/internal/types"
)

// GenMode selects which subset of moves GeneratePseudoLegalMoves and
// GetNextMove produce.
type GenMode int

const (
	// GenAll produces every legal move (evasions if in check).
	GenAll GenMode = iota
	// GenNonQuiet produces captures and promoting moves only - used by
	// quiescence search.
	GenNonQuiet
	// GenCaptures produces captures only (no quiet promotions).
	GenCaptures
	// GenQuiets produces non-capturing, non-promoting moves only.
	GenQuiets
	// GenDrops produces drop moves only.
	GenDrops
)

// Movegen is a reusable, per-ply move generator with on-demand staged
// output: PV move first, then the two killer moves (if still
// pseudo-legal and present in the generated list), then the rest in
// generation order.
type Movegen struct {
	onDemandList moveslice.MoveSlice
	onDemandIdx  int
	filled       bool
	filledMode   GenMode

	pvMove  Move
	killers [2]Move

	history historyProvider
}

// NewMoveGen returns a Movegen ready for reuse across search nodes.
func NewMoveGen() *Movegen {
	return &Movegen{onDemandList: make(moveslice.MoveSlice, 0, 128)}
}

// ResetOnDemand clears staged-generation state for a fresh node,
// keeping the underlying slice's backing array.
func (mg *Movegen) ResetOnDemand() {
	mg.onDemandList.Clear()
	mg.onDemandIdx = 0
	mg.filled = false
	mg.pvMove = MoveNone
	mg.killers[0] = MoveNone
	mg.killers[1] = MoveNone
}

// SetPvMove sets the move GetNextMove will hand out first, provided it
// is present among the generated moves.
func (mg *Movegen) SetPvMove(m Move) { mg.pvMove = m }

// PvMove returns the move most recently set by SetPvMove.
func (mg *Movegen) PvMove() Move { return mg.pvMove }

// StoreKiller records m as a killer move for the current ply (two
// slots, most-recent first, no duplicate entries).
func (mg *Movegen) StoreKiller(m Move) {
	if m == mg.killers[0] {
		return
	}
	mg.killers[1] = mg.killers[0]
	mg.killers[0] = m
}

// KillerMoves returns the two killer-move slots for the current ply.
func (mg *Movegen) KillerMoves() *[2]Move { return &mg.killers }

// historyProvider is the subset of *history.History Movegen needs for
// move ordering. Declared locally to avoid an import cycle: history
// only depends on types, but keeping the dependency direction movegen
// -> history (not the reverse) means the interface is defined here.
type historyProvider interface {
	Count(us Color, move Move) int64
	CounterMove(lastMove Move) Move
}

// SetHistoryData attaches the search's shared history/countermove
// table so GetNextMove can order the remaining quiet moves by history
// score instead of pure generation order.
func (mg *Movegen) SetHistoryData(h historyProvider) { mg.history = h }

// GeneratePseudoLegalMoves returns every pseudo-legal move of the
// requested mode - not yet filtered for leaving the mover's own king
// in check.
func GeneratePseudoLegalMoves(p *position.Position, mode GenMode) *moveslice.MoveSlice {
	ml := moveslice.NewMoveSlice(128)
	generate(p, mode, ml)
	return ml
}

// GeneratePseudoLegalMoves is the Movegen method form, matching the
// teacher's per-instance generation entry point.
func (mg *Movegen) GeneratePseudoLegalMoves(p *position.Position, mode GenMode) *moveslice.MoveSlice {
	return GeneratePseudoLegalMoves(p, mode)
}

// GenerateLegalMoves returns every legal move of the requested mode,
// filtering out pseudo-legal moves that leave the mover's own king
// attacked.
func GenerateLegalMoves(p *position.Position, mode GenMode) *moveslice.MoveSlice {
	ml := GeneratePseudoLegalMoves(p, mode)
	us := p.NextPlayer()
	ml.Filter(func(i int) bool {
		m := ml.At(i)
		p.DoMove(m)
		legal := !p.IsAttacked(p.KingSquare(us), us.Flip())
		p.UndoMove()
		return legal
	})
	return ml
}

// GenerateLegalMoves is the Movegen method form.
func (mg *Movegen) GenerateLegalMoves(p *position.Position, mode GenMode) *moveslice.MoveSlice {
	return GenerateLegalMoves(p, mode)
}

// HasLegalMove reports whether the side to move has at least one legal
// move - used for checkmate/stalemate detection at the search root. It
// builds the full legal move list and checks that it is not empty.
func (mg *Movegen) HasLegalMove(p *position.Position) bool {
	ml := GenerateLegalMoves(p, GenAll)
	return ml.Len() > 0
}

func (mg *Movegen) fill(p *position.Position, mode GenMode) {
	if mg.filled && mg.filledMode == mode {
		return
	}
	mg.onDemandList = *GenerateLegalMoves(p, mode)
	mg.onDemandIdx = 0
	mg.filled = true
	mg.filledMode = mode
	if mg.history != nil && mode == GenAll {
		us := p.NextPlayer()
		scores := make([]Value, mg.onDemandList.Len())
		counter := mg.history.CounterMove(p.LastMove())
		for i := 0; i < mg.onDemandList.Len(); i++ {
			m := mg.onDemandList.At(i)
			if m == counter {
				scores[i] = Value(1 << 30)
			} else {
				scores[i] = Value(mg.history.Count(us, m))
			}
		}
		mg.onDemandList.SortByValue(scores)
	}
}

// GetNextMove returns the next move of the node's staged generation:
// the PV move first (if legal and not yet returned), then the two
// killer moves (for GenAll only, since killers are quiet-move
// heuristics and meaningless to quiescence's GenNonQuiet), then the
// remaining generated moves in order. Returns MoveNone once exhausted.
func (mg *Movegen) GetNextMove(p *position.Position, mode GenMode, hasCheck bool) Move {
	mg.fill(p, mode)

	if mg.pvMove != MoveNone {
		m := mg.pvMove
		mg.pvMove = MoveNone
		if mg.takeFromList(m) {
			return m
		}
	}

	if mode == GenAll && !hasCheck {
		for _, k := range mg.killers {
			if k == MoveNone {
				continue
			}
			if mg.takeFromList(k) {
				return k
			}
		}
	}

	for mg.onDemandIdx < mg.onDemandList.Len() {
		m := mg.onDemandList.At(mg.onDemandIdx)
		mg.onDemandIdx++
		if m == MoveNone {
			continue
		}
		return m
	}
	return MoveNone
}

// takeFromList marks m consumed in the on-demand list (so it is not
// handed out twice) if it is present, reporting whether it was found.
func (mg *Movegen) takeFromList(m Move) bool {
	for i := mg.onDemandIdx; i < mg.onDemandList.Len(); i++ {
		if mg.onDemandList.At(i) == m {
			mg.onDemandList.Set(i, MoveNone)
			return true
		}
	}
	return false
}

// GetMoveFromUsi generates all legal moves for p and returns the one
// whose USI notation matches usiMove, or MoveNone if none match.
//
// As this uses string creation and comparison this is not very
// efficient. Use only when performance is not critical (reading a USI
// "position ... moves ..." command, not inside search).
func (mg *Movegen) GetMoveFromUsi(p *position.Position, usiMove string) Move {
	legal := GenerateLegalMoves(p, GenAll)
	for i := 0; i < legal.Len(); i++ {
		m := legal.At(i)
		if m.StringUsi() == usiMove {
			return m
		}
	}
	return MoveNone
}

func (mg *Movegen) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "Movegen{pv=%s killers=[%s %s] remaining=%d}",
		mg.pvMove, mg.killers[0], mg.killers[1], mg.onDemandList.Len()-mg.onDemandIdx)
	return b.String()
}

// --- pseudo-legal generation ------------------------------------------

func generate(p *position.Position, mode GenMode, ml *moveslice.MoveSlice) {
	us := p.NextPlayer()
	if p.HasCheck() {
		generateEvasions(p, us, ml)
		return
	}
	switch mode {
	case GenCaptures:
		generateBoardMoves(p, us, ml, true, false)
	case GenQuiets:
		generateBoardMoves(p, us, ml, false, true)
		ml.Filter(func(i int) bool { return !ml.At(i).IsPromotion() })
		generateDrops(p, us, ml)
	case GenNonQuiet:
		generateBoardMoves(p, us, ml, true, true)
		ml.Filter(func(i int) bool {
			m := ml.At(i)
			return m.IsPromotion() || p.IsCapturingMove(m)
		})
	case GenDrops:
		generateDrops(p, us, ml)
	default: // GenAll
		generateBoardMoves(p, us, ml, true, true)
		generateDrops(p, us, ml)
	}
}

// nonSliding holds the piece types whose move set is a precomputed
// stepping table rather than a magic/lance lookup.
var nonSliding = [...]PieceType{Pawn, Knight, Silver, Gold, King, ProPawn, ProLance, ProKnight, ProSilver}

func attacksFrom(p *position.Position, us Color, pt PieceType, sq Square) Bitboard {
	switch pt {
	case Pawn:
		return PawnAttacks[us][sq]
	case Knight:
		return KnightAttacks[us][sq]
	case Silver:
		return SilverAttacks[us][sq]
	case Gold, ProPawn, ProLance, ProKnight, ProSilver:
		return GoldAttacks[us][sq]
	case King:
		return KingAttacks[sq]
	case Lance:
		return LanceAttacks(us, sq, p.OccupiedAll())
	case Bishop, Rook, Horse, Dragon:
		return AttacksBb(pt, sq, p.OccupiedAll())
	}
	return Bitboard{}
}

// generateBoardMoves walks every piece of us and emits its board moves
// (not drops), restricted to captures and/or non-capturing moves as
// requested, including both the promoting and non-promoting encoding
// of any move that crosses into the promotion zone.
func generateBoardMoves(p *position.Position, us Color, ml *moveslice.MoveSlice, captures, quiets bool) {
	them := us.Flip()
	ownBb := p.OccupiedBb(us)
	enemyBb := p.OccupiedBb(them)
	for pt := Pawn; pt < PtLength; pt++ {
		if pt == PtNone {
			continue
		}
		bb := p.PiecesBb(us, pt)
		for !bb.IsEmpty() {
			var from Square
			from, bb = bb.PopLsb()
			targets := attacksFrom(p, us, pt, from).AndNot(ownBb)
			t := targets
			for !t.IsEmpty() {
				var to Square
				to, t = t.PopLsb()
				isCapture := enemyBb.Has(to)
				if isCapture && !captures {
					continue
				}
				if !isCapture && !quiets {
					continue
				}
				emitBoardMove(ml, us, pt, from, to, captures, quiets)
			}
		}
	}
}

// emitBoardMove appends the legal promotion/non-promotion encodings of
// one board move. A move that starts or ends in the promotion zone may
// promote; pawns, lances and knights that would otherwise have no
// legal move from the destination square must promote.
func emitBoardMove(ml *moveslice.MoveSlice, us Color, pt PieceType, from, to Square, captures, quiets bool) {
	canPromote := pt.CanPromote()
	inZone := from.RankOf().PromotionZone(us) || to.RankOf().PromotionZone(us)
	mustPromote := mustPromoteOnto(pt, us, to)

	if canPromote && inZone {
		ml.PushBack(CreateMove(from, to, pt, true))
	}
	if !mustPromote {
		ml.PushBack(CreateMove(from, to, pt, false))
	}
}

// mustPromoteOnto reports whether pt would have zero further moves
// left parked on to without promoting - a pawn or lance on the far
// rank, or a knight on either of the two far ranks.
func mustPromoteOnto(pt PieceType, us Color, to Square) bool {
	r := to.RankOf()
	switch pt {
	case Pawn, Lance:
		if us == Black {
			return r == RankA
		}
		return r == RankI
	case Knight:
		if us == Black {
			return r == RankA || r == RankB
		}
		return r == RankI || r == RankH
	}
	return false
}

// generateDrops emits every legal drop of every piece type the side to
// move holds in hand, honoring the two-pawns-per-file rule, the
// last-rank restriction (no pawn/lance on the far rank, no knight on
// the far two ranks) and the drop-pawn-mate prohibition.
func generateDrops(p *position.Position, us Color, ml *moveslice.MoveSlice) {
	h := p.Hand(us)
	empty := p.OccupiedAll().Not()
	for pt := Pawn; pt <= Gold; pt++ {
		if pt == Bishop || pt == Rook {
			if !h.Exists(pt) {
				continue
			}
		} else if !h.Exists(pt) {
			continue
		}
		targets := empty
		for !targets.IsEmpty() {
			var to Square
			to, targets = targets.PopLsb()
			if mustPromoteOnto(pt, us, to) {
				continue
			}
			if pt == Pawn {
				if hasPawnOnFile(p, us, to.FileOf()) {
					continue
				}
				if dropsPawnMate(p, us, to) {
					continue
				}
			}
			ml.PushBack(CreateDrop(pt, to))
		}
	}
}

func hasPawnOnFile(p *position.Position, us Color, f File) bool {
	return !p.PiecesBb(us, Pawn).And(FileBb[f]).IsEmpty()
}

// dropsPawnMate reports whether dropping a pawn for us on to would
// checkmate the opponent - illegal under the uchifuzume rule. Checked
// by actually making the drop and asking whether the opponent has any
// legal reply; simple and always correct, mirroring GivesCheck's
// do/undo approach.
func dropsPawnMate(p *position.Position, us Color, to Square) bool {
	m := CreateDrop(Pawn, to)
	p.DoMove(m)
	defer p.UndoMove()
	if !p.HasCheck() {
		return false
	}
	ml := GenerateLegalMoves(p, GenAll)
	return ml.Len() == 0
}

// generateEvasions produces every legal move while the mover's king is
// in check: king steps to a safe square, captures of the (single)
// checker, and blocks of the check ray - or a drop onto that ray.
func generateEvasions(p *position.Position, us Color, ml *moveslice.MoveSlice) {
	checkers := p.Checkers()
	kingSq := p.KingSquare(us)
	ownBb := p.OccupiedBb(us)

	// King steps away from attacked squares, including squares the
	// checker itself would still cover once the king leaves its own
	// square (simulated by excluding the king from occupancy).
	occWithoutKing := p.OccupiedAll().AndNot(SquareBb(kingSq))
	kingTargets := KingAttacks[kingSq].AndNot(ownBb)
	for t := kingTargets; !t.IsEmpty(); {
		var to Square
		to, t = t.PopLsb()
		if stillAttacked(p, to, us.Flip(), occWithoutKing) {
			continue
		}
		ml.PushBack(CreateMove(kingSq, to, King, false))
	}

	if checkers.PopCount() != 1 {
		// double check: only king moves are legal.
		return
	}
	checkerSq, _ := checkers.PopLsb()
	captureAndBlock := BetweenBb[kingSq][checkerSq].Or(SquareBb(checkerSq))

	for pt := Pawn; pt < PtLength; pt++ {
		if pt == PtNone || pt == King {
			continue
		}
		bb := p.PiecesBb(us, pt)
		for !bb.IsEmpty() {
			var from Square
			from, bb = bb.PopLsb()
			targets := attacksFrom(p, us, pt, from).And(captureAndBlock)
			for t := targets; !t.IsEmpty(); {
				var to Square
				to, t = t.PopLsb()
				emitBoardMove(ml, us, pt, from, to, true, true)
			}
		}
	}

	// drops can only block, never capture the checker square itself
	// unless the checker is adjacent (in which case Between is empty
	// and only captures above apply).
	blockSquares := BetweenBb[kingSq][checkerSq]
	if blockSquares.IsEmpty() {
		return
	}
	h := p.Hand(us)
	for _, pt := range [...]PieceType{Rook, Bishop, Gold, Silver, Knight, Lance, Pawn} {
		if !h.Exists(pt) {
			continue
		}
		for t := blockSquares; !t.IsEmpty(); {
			var to Square
			to, t = t.PopLsb()
			if mustPromoteOnto(pt, us, to) {
				continue
			}
			if pt == Pawn {
				if hasPawnOnFile(p, us, to.FileOf()) || dropsPawnMate(p, us, to) {
					continue
				}
			}
			ml.PushBack(CreateDrop(pt, to))
		}
	}
}

func stillAttacked(p *position.Position, sq Square, by Color, occ Bitboard) bool {
	return !attackersToWithOcc(p, sq, occ, by).IsEmpty()
}

// attackersToWithOcc mirrors Position.AttacksTo but against a caller
// supplied occupancy, needed while evaluating king evasion squares with
// the king itself removed from the board (otherwise the king would
// appear to block its own escape from a slider's ray).
func attackersToWithOcc(p *position.Position, sq Square, occ Bitboard, by Color) Bitboard {
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
