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
	golog "log"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/op/go-logging"

	. "github.com/yomigo-shogi/yomigo/internal/config"
	"github.com/yomigo-shogi/yomigo/internal/movegen"
	"github.com/yomigo-shogi/yomigo/internal/moveslice"
	"github.com/yomigo-shogi/yomigo/internal/position"
	"github.com/yomigo-shogi/yomigo/internal/transpositiontable"
	. "github.com/yomigo-shogi/yomigo/internal/types"
	"github.com/yomigo-shogi/yomigo/internal/util"
)

var trace = false

// rootSearch starts the actual recursive alpha beta search with the root moves for the first ply.
// As root moves are treated a little different this separate function supports readability
// as mixing it with the normal search would require quite some "if ply==0" statements.
func (s *Search) rootSearch(position *position.Position, depth int, alpha Value, beta Value) Value {
	if trace {
		s.slog.Debugf("Ply %-2.d Depth %-2.d start: %s", 0, depth, s.statistics.CurrentVariation.StringUsi())
		defer s.slog.Debugf("Ply %-2.d Depth %-2.d end: %s", 0, depth, s.statistics.CurrentVariation.StringUsi())
	}

	// In root search we search all moves and store the value into
	// s.rootValues, parallel to s.rootMoves, so the moves can be sorted
	// by value for the next iteration.
	// best move is stored in pv[0][0]
	// best value is stored in bestNodeValue
	// The next iteration begins with the best move of the last
	// iteration so we can be sure pv[0][0] will be set with the
	// last best move from the previous iteration independent of
	// the value. Any better move found is really better and will
	// replace pv[0][0] and also will be sorted first in the
	// next iteration

	// prepare root node search
	bestNodeValue := -ValueInfinite
	if cap(s.rootValues) < s.rootMoves.Len() {
		s.rootValues = make([]Value, s.rootMoves.Len())
	}
	s.rootValues = s.rootValues[:s.rootMoves.Len()]
	var value Value

	// ///////////////////////////////////////////////////////
	// MOVE LOOP
	for i, m := range *s.rootMoves {

		position.DoMove(m)
		s.nodesVisited++
		s.statistics.CurrentVariation.PushBack(m)
		s.statistics.CurrentRootMoveIndex = i
		s.statistics.CurrentRootMove = m

		// check repetition (shogi has no 50-move rule - sennichite only)
		if s.checkDrawRep(position) {
			value = ValueDraw
		} else {
			// ///////////////////////////////////////////////////////////////////
			// PVS
			// First move in a node is an assumed PV and searched with full search window
			if !Settings.Search.UsePVS || i == 0 {
				value = -s.search(position, depth-1, 1, -beta, -alpha, true, true, MoveNone)
			} else {
				// Null window search after the initial PV search.
				value = -s.search(position, depth-1, 1, -alpha-1, -alpha, false, true, MoveNone)
				// If this move improved alpha without exceeding beta we do a proper full window
				// search to get an accurate score.
				if value > alpha && value < beta && !s.stopConditions() {
					s.statistics.RootPvsResearches++
					value = -s.search(position, depth-1, 1, -beta, -alpha, true, true, MoveNone)
				}
			}
			// ///////////////////////////////////////////////////////////////////
		}

		s.statistics.CurrentVariation.PopBack()
		position.UndoMove()

		// we want to do at least one complete search with depth 1
		// After that we can stop any time - any new best moves will
		// have been stored in pv[0]
		if s.stopConditions() && depth > 1 {
			return bestNodeValue
		}

		// record the value for this root move so it can be sorted to
		// the front of the next iteration's move list
		s.rootValues[i] = value

		// Did we find a better move for this node (not ply)?
		// For the first move this is always the case.
		if value > bestNodeValue {
			// new best value
			bestNodeValue = value
			// we have a new pv[0][0] - store pv+1 tp pv
			savePV(m, s.pv[1], s.pv[0])
		}
	}
	// MOVE LOOP
	// ///////////////////////////////////////////////////////

	s.rootMoves.SortByValue(s.rootValues)

	return bestNodeValue
}

// search is the normal alpha beta search after the root move ply (ply > 0)
// it will be called recursively until the remaining depth == 0 and we would
// enter quiescence search. Search consumes about 60% of the search time and
// all major prunings are done here. Quiescence search uses about 40% of the
// search time and has less options for pruning as not all moves are searched.
//
// excludedMove, when not MoveNone, is skipped in the move loop - this is the
// singular-extension mechanism: the node is re-searched at a reduced depth
// excluding the TT move to see whether any alternative also clears a lowered
// bar.
func (s *Search) search(p *position.Position, depth int, ply int, alpha Value, beta Value, isPV bool, doNull bool, excludedMove Move) Value {
	if trace {
		s.slog.Debugf("%0*s Ply %-2.d Depth %-2.d a:%-6.d b:%-6.d pv:%-6.v start:  %s", ply, "", ply, depth, alpha, beta, isPV, s.statistics.CurrentVariation.StringUsi())
		defer s.slog.Debugf("%0*s Ply %-2.d Depth %-2.d a:%-6.d b:%-6.d pv:%-6.v end  :  %s", ply, "", ply, depth, alpha, beta, isPV, s.statistics.CurrentVariation.StringUsi())
	}

	// Check if search should be stopped
	if s.stopConditions() {
		return ValueNone
	}

	// Enter quiescence search when depth == 0 or max ply has been reached
	if depth == 0 || ply >= MaxDepth {
		return s.qsearch(p, ply, alpha, beta, isPV)
	}

	// Mate Distance Pruning
	// Did we already find a shorter mate then ignore
	// this one.
	if Settings.Search.UseMDP {
		if alpha < MatedIn(ply) {
			alpha = MatedIn(ply)
		}
		if beta > MateIn(ply+1) {
			beta = MateIn(ply + 1)
		}
		if alpha >= beta {
			s.statistics.Mdp++
			return alpha
		}
	}

	// prepare node search
	us := p.NextPlayer()
	bestNodeValue := -ValueInfinite
	bestNodeMove := MoveNone // used to store in the TT
	ttMove := MoveNone
	ttBound := BoundUpper
	hasCheck := p.HasCheck()
	matethreat := false

	// Lazy-SMP breadcrumbs (spec §4.9): past a shallow cutoff, try to
	// claim this position for this worker. If a sibling already owns an
	// equal key we bias our own LMR reduction instead of duplicating its
	// work; the claim is released when this node returns.
	marked := false
	if s.breadcrumbs != nil && ply >= 8 {
		held, wasMarked := s.breadcrumbs.Hold(s.threadID, p.ZobristKey())
		marked = wasMarked
		if held {
			key := p.ZobristKey()
			defer s.breadcrumbs.Release(s.threadID, key)
		}
	}

	// TT Lookup
	// Results of searches are stored in the TT to be used to
	// avoid searching positions several times. If a position
	// is stored in the TT we retrieve a pointer to the entry.
	// We use the stored move as a best move from previous searches
	// and search it first (as the TT move in the MovePicker).
	// If we have a value from a similar or deeper search we check
	// if the value is usable. Exact values mean that the previously
	// stored result already was a precise result and we do not
	// need to search the position again. We can stop searching
	// this branch and return the value.
	// Alpha or Beta entries will only be used if they improve
	// the current values.
	var ttEntry *transpositiontable.TtEntry
	if Settings.Search.UseTT && excludedMove == MoveNone {
		ttEntry = s.tt.Probe(p.ZobristKey())
		if ttEntry != nil { // tt hit
			s.statistics.TTHit++
			ttMove = ttEntry.Move()
			if int(ttEntry.Depth()) >= depth {
				ttValue := valueFromTT(ttEntry.Value(), ply)
				bound := ttEntry.Bound()
				cut := false
				switch {
				case !ttValue.IsValid():
					cut = false
				case bound == BoundExact:
					cut = true
				case bound == BoundUpper && ttValue <= alpha:
					cut = true
				case bound == BoundLower && ttValue >= beta:
					cut = true
				}
				if cut && Settings.Search.UseTTValue {
					s.getPVLine(p, s.pv[ply], depth)
					s.statistics.TTCuts++
					return ttValue
				} else {
					s.statistics.TTNoCuts++
				}
			}
		} else {
			s.statistics.TTMiss++
		}
	}

	// Entering-king ("nyugyoku") win
	// Checked before the mate search since it is an even cheaper,
	// purely material/positional test with no move generation at all.
	if p.CanDeclareWin(us) {
		value := MateIn(ply)
		s.storeTT(p, depth, ply, MoveNone, value, BoundExact, value)
		return value
	}

	// Specialized 1-ply mate search
	// Cheaper than a full ply of search (no move-loop recursion) and
	// catches a mate the TT/static eval alone would need another
	// iteration to confirm. Tried once per node, before any pruning
	// that could otherwise discard the mating line.
	if Settings.Search.UseMate1 {
		if mateMove := movegen.MateMoveIn1Ply(p); mateMove != MoveNone {
			s.statistics.Mate1Hits++
			value := MateIn(ply + 1)
			s.storeTT(p, depth, ply, mateMove, value, BoundExact, value)
			return value
		}
	}

	// Static evaluation of the node, used by the node-level prunings
	// below and cached per-ply for improving detection and ProbCut. In
	// check there is no meaningful standing value, so we leave it at a
	// sentinel and treat the node as not improving.
	var staticEval Value
	if hasCheck {
		staticEval = -ValueInfinite
	} else {
		staticEval = s.evaluate(p, ply)
	}
	s.staticEval[ply] = staticEval
	improving := !hasCheck && (ply < 2 || staticEval > s.staticEval[ply-2])

	// Reverse Futility Pruning / Futility Pruning (collapsed)
	// https://www.chessprogramming.org/Reverse_Futility_Pruning
	// Anticipate likely alpha low in the next ply by a beta cut off
	// before making and evaluating any move: if the static eval already
	// clears beta by FutilityMargin(depth) at shallow depth, assume a
	// move would too.
	if doNull &&
		!isPV &&
		!hasCheck &&
		depth < 8 &&
		excludedMove == MoveNone {
		margin := FutilityMargin(depth)
		if staticEval-margin >= beta {
			s.statistics.RfpPrunings++
			return staticEval - margin // fail-soft
		}
	}

	// Razoring
	// At the shallowest depth, if the static eval plus a material
	// margin still can't reach alpha the position is hopeless enough to
	// drop straight into quiescence rather than spend a full ply on it.
	if Settings.Search.UseRazoring &&
		!isPV &&
		!hasCheck &&
		depth == 1 &&
		excludedMove == MoveNone &&
		staticEval+Settings.Search.RazorMargin <= alpha {
		s.statistics.RazorCuts++
		return s.qsearch(p, ply, alpha, beta, isPV)
	}

	// NULL MOVE PRUNING
	// https://www.chessprogramming.org/Null_Move_Pruning
	// Under the assumption the in most shogi positions it would be better
	// do make a move than to not make a move we can assume that if
	// our positional value after a null move is already above beta (>beta)
	// it would be above beta when doing a move in any case.
	// Certain situations need to be considered though:
	// - Zugzwang - it would be better not to move
	// - in check - this would lead to an illegal situation where the king is captured
	// - recursive null moves should be avoided
	if Settings.Search.UseNullMove {
		if doNull &&
			!isPV &&
			depth >= Settings.Search.NmpDepth &&
			p.MaterialNonPawn(us) > 0 &&
			!hasCheck {

			// determine depth reduction r = (737+77*depth)/246 +
			// min((eval-beta)/192, 3)
			r := NmpReduction(depth, staticEval, beta)
			newDepth := depth - r - 1
			// double check that depth does not get negative
			if newDepth < 0 {
				newDepth = 0
			}

			// do null move search
			p.DoNullMove()
			s.nodesVisited++
			nValue := -s.search(p, newDepth, ply+1, -beta, -beta+1, false, false, MoveNone)
			p.UndoNullMove()

			// check if we should stop the search
			if s.stopConditions() {
				return ValueNone
			}

			// flag for mate threats
			if nValue >= ValueMateInMaxPly {
				// although this player did not make a move the value still is
				// a mate - very good! Just adjust the value to not return an
				// unproven mate
				s.statistics.NMPMateBeta++
				nValue = ValueMateInMaxPly
			} else if nValue <= ValueMatedInMaxPly {
				// the player did not move a got mated ==> mate threat
				s.statistics.NMPMateAlpha++
				matethreat = true
			}

			// if the value is higher than beta even after not making
			// a move it is not worth searching as it will very likely
			// be above beta if we make a move
			if nValue >= beta {
				s.statistics.NullMoveCuts++
				// Store TT
				if Settings.Search.UseTT {
					s.storeTT(p, depth, ply, ttMove, nValue, BoundLower, staticEval)
				}
				return nValue
			}
		}
	}

	// ProbCut
	// https://www.chessprogramming.org/ProbCut
	// Looks for captures whose static-exchange gain alone would clear a
	// beta raised by probCutMargin; if a shallow, reduced-depth search
	// confirms the capture still holds at that raised beta we can trust
	// the full-depth result would too. Implemented here as a plain
	// filtered capture loop rather than a MovePicker stage - ProbCut only
	// ever looks at a handful of candidates, so the staged machinery
	// MovePicker buys for the main move loop isn't worth its setup cost.
	if Settings.Search.UseProbCut &&
		!isPV &&
		!hasCheck &&
		!matethreat &&
		depth >= minProbCutDepth &&
		excludedMove == MoveNone &&
		beta < ValueMateInMaxPly {

		probCutBeta := beta + probCutMargin
		threshold := probCutBeta - staticEval

		captures := movegen.GenerateLegalMoves(p, movegen.GenCaptures)
		for i := 0; i < captures.Len(); i++ {
			m := captures.At(i)
			if m == ttMove {
				continue
			}
			if see(p, m) < threshold {
				continue
			}

			p.DoMove(m)
			if !p.WasLegalMove() {
				p.UndoMove()
				continue
			}
			s.nodesVisited++

			value := -s.qsearch(p, ply+1, -probCutBeta, -probCutBeta+1, false)
			if value >= probCutBeta {
				value = -s.search(p, depth-probCutDepthReduction, ply+1, -probCutBeta, -probCutBeta+1, false, true, MoveNone)
			}
			p.UndoMove()

			if s.stopConditions() {
				return ValueNone
			}

			if value >= probCutBeta {
				s.statistics.ProbCutCuts++
				if Settings.Search.UseTT {
					s.storeTT(p, depth-probCutDepthReduction+1, ply, m, value, BoundLower, staticEval)
				}
				return value
			}
		}
	}

	// Internal Iterative Deepening (IID)
	// https://www.chessprogramming.org/Internal_Iterative_Deepening
	// Used when no best move from the tt is available from a previous
	// searches. IID is used to find a good move to search first by
	// searching the current position to a reduced depth, and using
	// the best move of that search as the first move at the real depth.
	// Does not make a big difference in search tree size when move
	// order already is good.
	if Settings.Search.UseIID {
		if depth >= Settings.Search.IIDDepth &&
			ttMove == MoveNone && // no move from TT
			doNull && // avoid in null move search
			isPV {

			// get the new depth and make sure it is >0
			newDepth := depth - Settings.Search.IIDReduction
			if newDepth < 0 {
				newDepth = 0
			}

			// do the actual reduced search
			s.search(p, newDepth, ply, alpha, beta, isPV, true, MoveNone)
			s.statistics.IIDsearches++

			// check if we should stop the search
			if s.stopConditions() {
				return ValueNone
			}

			// get the best move from the reduced search if available
			if s.pv[ply].Len() > 0 {
				s.statistics.IIDmoves++
				ttMove = (*s.pv[ply])[0]
			}
		}
	}

	// reset search
	// !important to do this after IID!
	myMg := s.mg[ply]
	myMg.ResetOnDemand()
	s.pv[ply].Clear()

	if Settings.Search.UseTTMove {
		if ttMove != MoveNone {
			s.statistics.TTMoveUsed++
		} else {
			s.statistics.NoTTMove++
		}
	}

	// prepare move loop
	var value Value
	movesSearched := 0
	killers := *myMg.KillerMoves()
	counter := s.history.CounterMove(p.LastMove())

	scoreCapture := func(m Move) Value {
		captured := p.GetPiece(m.To()).TypeOf()
		return Value(int64(captured.Value()) + s.history.CaptureCount(m, captured))
	}
	scoreQuiet := func(m Move) Value {
		score := s.history.Count(us, m)
		if ply < 4 {
			score += s.history.LowPlyCount(ply, m)
		}
		// butterfly + 2*cont[ply-1] + cont[ply-2] + cont[ply-4] + cont[ply-6]
		for _, k := range [...]int{1, 2, 4, 6} {
			if ply-k < 0 {
				continue
			}
			weight := int64(1)
			if k == 1 {
				weight = 2
			}
			score += weight * s.history.ContinuationCount(s.contPiece[ply-k], s.contTo[ply-k], m)
		}
		return Value(score)
	}

	mp := NewMovePicker(p, hasCheck, ttMove, killers, counter, scoreCapture, scoreQuiet)

	// ///////////////////////////////////////////////////////
	// MOVE LOOP
	for move := mp.Next(); move != MoveNone; move = mp.Next() {

		if move == excludedMove {
			continue
		}

		to := move.To()

		// prepare newDepth
		newDepth := depth - 1
		lmrDepth := newDepth
		extension := 0

		givesCheck := p.GivesCheck(move)

		// Here we try some search extensions. This has to be done
		// very carefully as it usually is more effective to prune
		// than to extend.
		if Settings.Search.UseExt {
			// The check extensions is a bit redundant as our QS search
			// searches all moves anyway when in check. But with this
			// extension we hope to profit from using the prunings
			// of the normal search which are not available in
			// qsearch.
			if Settings.Search.UseCheckExt && givesCheck {
				s.statistics.CheckExtension++
				extension = 1
			}

			// If we have found a mate threat during Null Move Search
			// we extend normal search by one ply to try to find
			// a way out.
			// Deactivated in config as this grows the search tree
			// too much.
			if Settings.Search.UseThreatExt && matethreat {
				s.statistics.ThreatExtension++
				extension = 1
			}
		}

		// Singular extension
		// https://www.chessprogramming.org/Singular_Extensions
		// When the TT move is the only move that clears a bar lowered
		// well below the TT value, it is "singular" - worth searching
		// one ply deeper. If, on the contrary, some other move also
		// clears that lowered bar, the whole node is a multi-cut and we
		// can trust it fails high without searching the rest.
		if Settings.Search.UseSingular &&
			move == ttMove &&
			excludedMove == MoveNone &&
			depth >= minSingularDepth &&
			ttEntry != nil &&
			int(ttEntry.Depth()) >= depth-singularDepthReduction &&
			ttEntry.Bound()&BoundLower != 0 {

			ttValue := valueFromTT(ttEntry.Value(), ply)
			if ttValue.IsValid() {
				singularBeta := ttValue - singularMarginPerDepth*Value(depth)
				singularDepth := (depth - 1) / 2
				probe := s.search(p, singularDepth, ply, singularBeta-1, singularBeta, false, false, move)
				if s.stopConditions() {
					return ValueNone
				}
				if probe < singularBeta {
					s.statistics.SingularExtensions++
					extension = 1
				} else if singularBeta >= beta {
					s.statistics.MultiCuts++
					return singularBeta
				}
			}
		}

		if Settings.Search.UseExtAddDepth {
			newDepth += extension
		}

		// ///////////////////////////////////////////////////////
		// Forward Pruning
		// Only done when the move is not interesting - no check,
		// no capture, no extension already granted.
		if !isPV &&
			extension == 0 &&
			move != ttMove &&
			move != killers[0] &&
			move != killers[1] &&
			!move.IsPromotion() &&
			!p.IsCapturingMove(move) &&
			!hasCheck && // pre move
			!givesCheck && // post move
			!matethreat { // from pre move null move check

			// Move-count (late-move) pruning: once this many quiet
			// moves have been tried without improving alpha, the rest
			// of this depth's quiets are assumed not worth searching.
			if Settings.Search.UseLmp {
				if movesSearched >= MoveCountPruningThreshold(depth, improving) {
					s.statistics.LmpCuts++
					continue
				}
			}

			// LMR
			// Late Move Reduction assumes that later moves are rarely
			// exceeding alpha and therefore the search is reduced in
			// depth. This is in effect a soft transition into
			// quiescence search as we usually try the pv move and
			// capturing moves first. In quiescence only capturing
			// moves are searched anyway.
			// newDepth is the "standard" new depth (depth - 1)
			// lmrDepth is set to newDepth and only reduced
			// if conditions apply.
			if Settings.Search.UseLmr {
				if depth >= Settings.Search.LmrDepth &&
					movesSearched >= Settings.Search.LmrMovesSearched {
					lmrDepth -= LmrReduction(depth, movesSearched, improving)
					if marked {
						// a sibling worker already owns this subtree;
						// reduce a little harder so we spend effort
						// elsewhere instead of duplicating its search.
						lmrDepth--
					}
					s.statistics.LmrReductions++
				}
				// make sure not to become negative
				if lmrDepth < 0 {
					lmrDepth = 0
				}
			}
		}
		// ///////////////////////////////////////////////////////

		// ///////////////////////////////////////////////////////
		// DO MOVE
		capturedType := p.GetPiece(to).TypeOf()
		isCapture := capturedType != PtNone
		p.DoMove(move)

		// check if legal move or skip
		if !p.WasLegalMove() {
			p.UndoMove()
			continue
		}

		// we only count legal moves
		s.nodesVisited++
		s.statistics.CurrentVariation.PushBack(move)
		s.sendSearchUpdateToUci()

		// remember which (piece, to) was played to reach ply+1, for
		// continuation history lookups at deeper plies
		s.contPiece[ply] = move.MovedPiece()
		s.contTo[ply] = to

		// check repetition (shogi has no 50-move rule - sennichite only)
		if s.checkDrawRep(p) {
			value = ValueDraw

		} else {

			// ///////////////////////////////////////////////////////
			// PVS
			// First move in Node will be search with the full window. Due to move
			// ordering we assume this is the PV. Every other move is searched with
			// a null window as we only try to prove that the move is bad (<alpha)
			// or that the move is too good (>beta). If this prove fails we need
			// to research the move again with a full window.
			// https://www.chessprogramming.org/Principal_Variation_Search
			if !Settings.Search.UsePVS || movesSearched == 0 {
				value = -s.search(p, newDepth, ply+1, -beta, -alpha, true, true, MoveNone)
			} else {
				// Null window search after the initial PV search.
				// As depth we use a potentially reduced depth if Late Move Reduction
				// conditions have been met above.
				value = -s.search(p, lmrDepth, ply+1, -alpha-1, -alpha, false, true, MoveNone)
				// If this move improved alpha without exceeding beta we do a proper full window
				// search to get an accurate score.
				// Without LMR we check for value > alpha && value < beta
				// With LMR we re-search when value > alpha
				if value > alpha && !s.stopConditions() {
					// did we actually have a LMR reduction?
					if lmrDepth < newDepth {
						s.statistics.LmrResearches++
						value = -s.search(p, newDepth, ply+1, -beta, -alpha, true, true, MoveNone)
					} else if value < beta {
						s.statistics.PvsResearches++
						value = -s.search(p, newDepth, ply+1, -beta, -alpha, true, true, MoveNone)
					}
				}
			}
			// ///////////////////////////////////////////////////////
		}

		movesSearched++
		s.statistics.CurrentVariation.PopBack()
		p.UndoMove()
		// UNDO MOVE
		// ///////////////////////////////////////////////////////

		// check if we should stop the search
		if s.stopConditions() {
			return ValueNone
		}

		// Did we find a better move for this node (not ply)?
		// For the first move this is always the case.
		if value > bestNodeValue {
			// These "best" values are only valid for this node
			// not for all of the ply (not yet clear if >alpha)
			bestNodeValue = value
			bestNodeMove = move
			// Did we find a better move than in previous nodes in ply
			// then this is our new PV and best move for this ply.
			// If we never find a better alpha this means all moves in
			// this node are worse then other moves in other nodes which
			// raised alpha - meaning we have a better move from another
			// node we would play. We will return alpha and store a alpha
			// node in TT with no best move for TT.
			if value > alpha {
				// we have a new best move for the ply
				savePV(move, s.pv[ply+1], s.pv[ply])
				// If we found a move that is better or equal than beta
				// this means that the opponent can/will avoid this
				// position altogether so we can stop search this node.
				// We will not know if our best move is really the
				// best move or how good it really is (value is a lower bound)
				// as we cut off the rest of the search of the node here.
				// We will safe the move as a killer to be able to search it
				// earlier in another node of the ply.
				if value >= beta {
					// Count beta cuts
					s.statistics.BetaCuts++
					// Count beta cuts on first move
					if movesSearched == 1 {
						s.statistics.BetaCuts1st++
					}
					if !isCapture {
						// store move which caused a beta cut off in this ply
						if Settings.Search.UseKiller {
							myMg.StoreKiller(move)
						}
						// butterfly/low-ply bump and countermove recording
						if Settings.Search.UseHistoryCounter || Settings.Search.UseCounterMoves {
							var replyTo Move
							if Settings.Search.UseCounterMoves {
								replyTo = p.LastMove()
							}
							s.history.Update(us, move, ply, int8(depth), replyTo)
						}
						// continuation history: credit the move as a good
						// follow-up to the context moves at offsets 1,2,4,6
						for _, k := range [...]int{1, 2, 4, 6} {
							if ply-k < 0 {
								continue
							}
							s.history.UpdateContinuation(s.contPiece[ply-k], s.contTo[ply-k], move, int8(depth))
						}
					} else if Settings.Search.UseHistoryCounter {
						s.history.UpdateCapture(move, capturedType, int8(depth))
					}
					ttBound = BoundLower
					break
				}
				// We found a move between alpha and beta which means we
				// really have found the best move so far in the ply which
				// can be forced (opponent can't avoid it).
				// We raise alpha so the successive searches in this ply
				// need to find even better moves or dismiss the moves.
				alpha = value
				ttBound = BoundExact
			}
		}
	}
	// MOVE LOOP
	// ///////////////////////////////////////////////////////

	// If we did not have at least one legal move
	// then we might have a mate or stalemate
	if movesSearched == 0 && !s.stopConditions() {
		if excludedMove != MoveNone {
			// singular-extension probe with only the move under test
			// excluded and no other legal move: this is not a real
			// mate/stalemate, just report as already below any realistic
			// alpha.
			return alpha
		}
		if p.HasCheck() { // mate
			s.statistics.Checkmates++
			bestNodeValue = MatedIn(ply)
		} else { // stalemate
			s.statistics.Stalemates++
			bestNodeValue = ValueDraw
		}
		// this is in any case an exact value
		ttBound = BoundExact
	}

	// Store TT
	// Store search result for this node into the transposition table
	if Settings.Search.UseTT && excludedMove == MoveNone {
		s.storeTT(p, depth, ply, bestNodeMove, bestNodeValue, ttBound, staticEval)
	}

	return bestNodeValue
}

// qsearch is a simplified search to counter the horizon effect in depth based
// searches. It continues the search into deeper branches as long as there are
// so called non quiet moves (usually capture, checks, promotions). Only if the
// position is relatively quiet we will compute an evaluation of the position
// to return to the previous depth.
// Look for non quiet moves is supported be the move generator which only
// generates captures or promotions in qsearch (when not in check) and also
// by SEE (Static Exchange Evaluation) to determine winning captured sequences.
func (s *Search) qsearch(p *position.Position, ply int, alpha Value, beta Value, isPV bool) Value {
	if trace {
		s.slog.Debugf("%0*s Ply %-2.d QSearch     a:%-6.d b:%-6.d pv:%-6.v start:  %s", ply, "", ply, alpha, beta, isPV, s.statistics.CurrentVariation.StringUsi())
		defer s.slog.Debugf("%0*s Ply %-2.d QSearch     a:%-6.d b:%-6.d pv:%-6.v end  :  %s", ply, "", ply, alpha, beta, isPV, s.statistics.CurrentVariation.StringUsi())
	}

	if s.statistics.CurrentExtraSearchDepth < ply {
		s.statistics.CurrentExtraSearchDepth = ply
	}

	// if we have deactivated qsearch or we have reached our maximum depth
	// we evaluate the position and return the value
	if !Settings.Search.UseQuiescence || ply >= MaxDepth {
		return s.evaluate(p, ply)
	}

	// Mate Distance Pruning
	// Did we already find a shorter mate then ignore
	// this one.
	if Settings.Search.UseMDP {
		if alpha < MatedIn(ply) {
			alpha = MatedIn(ply)
		}
		if beta > MateIn(ply+1) {
			beta = MateIn(ply + 1)
		}
		if alpha >= beta {
			s.statistics.Mdp++
			return alpha
		}
	}

	// prepare node search
	bestNodeValue := -ValueInfinite
	ttBound := BoundUpper
	ttMove := MoveNone
	hasCheck := p.HasCheck()

	// if in check we simply do a normal search (all moves) in qsearch
	if !hasCheck {
		// get an evaluation for the position
		staticEval := s.evaluate(p, ply)
		// Quiescence StandPat
		// Use evaluation as a standing pat (lower bound)
		// https://www.chessprogramming.org/Quiescence_Search#Standing_Pat
		// Assumption is that there is at least on move which would improve the
		// current position. So if we are already >beta we don't need to look at it.
		if Settings.Search.UseQSStandpat && staticEval > alpha {
			if staticEval >= beta {
				s.statistics.StandpatCuts++
				return staticEval
			}
			alpha = staticEval
		}
		bestNodeValue = staticEval
	}

	// TT Lookup
	var ttEntry *transpositiontable.TtEntry
	if Settings.Search.UseQSTT {
		ttEntry = s.tt.Probe(p.ZobristKey())
		if ttEntry != nil { // tt hit
			s.statistics.TTHit++
			ttMove = ttEntry.Move()
			ttValue := valueFromTT(ttEntry.Value(), ply)
			bound := ttEntry.Bound()
			cut := false
			switch {
			case !ttValue.IsValid():
				cut = false
			case bound == BoundExact:
				cut = true
			case bound == BoundUpper && ttValue <= alpha:
				cut = true
			case bound == BoundLower && ttValue >= beta:
				cut = true
			}
			if cut && Settings.Search.UseTTValue {
				s.statistics.TTCuts++
				return ttValue
			} else {
				s.statistics.TTNoCuts++
			}
		} else {
			s.statistics.TTMiss++
		}
	}

	// prepare node search
	bestNodeMove := MoveNone // used to store in the TT
	s.pv[ply].Clear()

	if Settings.Search.UseQSTT {
		if ttMove != MoveNone {
			s.statistics.TTMoveUsed++
		} else {
			s.statistics.NoTTMove++
		}
	}

	// prepare move loop
	var value Value
	movesSearched := 0

	if hasCheck {
		s.statistics.CheckInQS++
	}

	scoreCapture := func(m Move) Value {
		captured := p.GetPiece(m.To()).TypeOf()
		return Value(captured.Value())
	}
	scoreQuiet := func(m Move) Value {
		return Value(s.history.Count(p.NextPlayer(), m))
	}

	mp := NewQMovePicker(p, hasCheck, ttMove, scoreCapture, scoreQuiet)

	// ///////////////////////////////////////////////////////
	// MOVE LOOP
	for move := mp.Next(); move != MoveNone; move = mp.Next() {

		// reduce number of moves searched in quiescence
		// by looking at good captures only
		if !hasCheck && !s.goodCapture(p, move) {
			continue
		}

		// ///////////////////////////////////////////////////////
		// DO MOVE
		p.DoMove(move)

		// check if legal move or skip
		if !p.WasLegalMove() {
			p.UndoMove()
			continue
		}

		// we only count legal moves
		s.nodesVisited++
		s.statistics.CurrentVariation.PushBack(move)
		s.sendSearchUpdateToUci()

		// check repetition when in check - otherwise only capturing
		// moves are generated which break sennichite repetition anyway
		if hasCheck && s.checkDrawRep(p) {
			value = ValueDraw
		} else {
			value = -s.qsearch(p, ply+1, -beta, -alpha, isPV)
		}

		movesSearched++
		s.statistics.CurrentVariation.PopBack()
		p.UndoMove()
		// UNDO MOVE
		// ///////////////////////////////////////////////////////

		// check if we should stop the search
		if s.stopConditions() {
			return ValueNone
		}

		// see search function above for documentation
		if value > bestNodeValue {
			bestNodeValue = value
			bestNodeMove = move
			if value > alpha {
				savePV(move, s.pv[ply+1], s.pv[ply])
				if value >= beta {
					// Count beta cuts
					s.statistics.BetaCuts++
					// Count beta cuts on first move
					if movesSearched == 1 {
						s.statistics.BetaCuts1st++
					}
					ttBound = BoundLower
					break
				}
				alpha = value
				ttBound = BoundExact
			}
		}
	}
	// MOVE LOOP
	// ///////////////////////////////////////////////////////

	// if we did not have at least one legal move
	// then we might have a mate or in quiescence
	// only quite moves
	if movesSearched == 0 && !s.stopConditions() {
		// if we have a mate we had a check before and therefore
		// generated all move. We can be sure this is a mate.
		if p.HasCheck() {
			s.statistics.Checkmates++
			bestNodeValue = MatedIn(ply)
			ttBound = BoundExact
		}
		// if we do not have mate we had no check and
		// therefore might have only quiet moves which
		// we did not generate.
		// We return the standpat value in this case
		// which we have set to bestNodeValue in the
		// static eval earlier
	}

	// Store TT
	if Settings.Search.UseQSTT {
		s.storeTT(p, 0, ply, bestNodeMove, bestNodeValue, ttBound, bestNodeValue)
	}

	return bestNodeValue
}

// call evaluation on the position
func (s *Search) evaluate(position *position.Position, ply int) Value {
	s.statistics.LeafPositionsEvaluated++

	var value = ValueNone

	if Settings.Search.UseTT && Settings.Search.UseEvalTT {
		ttEntry := s.tt.Probe(position.ZobristKey())
		if ttEntry != nil { // tt hit
			s.statistics.TTHit++
			if ev := ttEntry.Eval(); ev.IsValid() {
				s.statistics.EvaluationsFromTT++
				value = ev
			}
		}
	}

	if value == ValueNone {
		s.statistics.Evaluations++
		value = s.eval.Evaluate(position)
	}

	if Settings.Search.UseTT && Settings.Search.UseEvalTT {
		s.storeTT(position, 0, ply, MoveNone, value, BoundExact, value)
	}

	return value
}

// reduce the number of moves searched in quiescence search by trying
// to only look at good captures, judged by SEE when UseSEE is set
func (s *Search) goodCapture(p *position.Position, move Move) bool {
	if Settings.Search.UseSEE {
		// Check SEE score of higher value pieces to low value pieces
		return see(p, move) > 0
	} else {
		// Lower value piece captures higher value piece
		// With a margin to also look at Bishop x Knight
		return p.GetPiece(move.From()).Value()+50 < p.GetPiece(move.To()).Value() ||
			// all recaptures should be looked at
			(p.LastMove() != MoveNone && p.LastMove().To() == move.To() && p.LastCapturedPiece() != PieceNone) ||
			// undefended pieces captures are good
			// If the defender is "behind" the attacker this will not be recognized
			// here This is not too bad as it only adds a move to qsearch which we
			// could otherwise ignore
			!p.IsAttacked(move.To(), p.NextPlayer().Flip())
	}
}

// savePV adds the given move as first move to a cleared dest and the appends
// all src moves to dest
func savePV(move Move, src *moveslice.MoveSlice, dest *moveslice.MoveSlice) {
	dest.Clear()
	dest.PushBack(move)
	*dest = append(*dest, *src...)
}

// storeTT stores a position into the TT
func (s *Search) storeTT(p *position.Position, depth int, ply int, move Move, value Value, bound Bound, eval Value) {
	s.tt.Put(p.ZobristKey(), move, int8(depth), valueToTT(value, ply), bound, eval)
}

// getPVLine fills the given pv move list with the pv move starting from the given
// depth as long as these position are in the TT
func (s *Search) getPVLine(p *position.Position, pv *moveslice.MoveSlice, depth int) {
	// Recursion-less reading of the chain of pv moves
	pv.Clear()
	counter := 0
	ttMatch := s.tt.GetEntry(p.ZobristKey())
	for ttMatch != nil && ttMatch.Move() != MoveNone && counter < depth {
		pv.PushBack(ttMatch.Move())
		p.DoMove(ttMatch.Move())
		counter++
		ttMatch = s.tt.GetEntry(p.ZobristKey())
	}
	for i := 0; i < counter; i++ {
		p.UndoMove()
	}
}

// correct the value for mate distance when storing to TT
func valueToTT(value Value, ply int) Value {
	if value.IsMate() {
		if value > 0 {
			value = value + Value(ply)
		} else {
			value = value - Value(ply)
		}
	}
	return value
}

// correct the value for mate distance when reading from TT
func valueFromTT(value Value, ply int) Value {
	if value.IsMate() {
		if value > 0 {
			value = value - Value(ply)
		} else {
			value = value + Value(ply)
		}
	}
	return value
}

// getSearchTraceLog returns an instance of a standard Logger preconfigured with a
// os.Stdout backend and a "normal" logging format (e.g. time - file - level)
// for usage in the search itself
func getSearchTraceLog() *logging.Logger {
	searchLog := logging.MustGetLogger("search")

	searchLogFormat := logging.MustStringFormatter(`%{time:15:04:05.000} %{level:-7.7s}:  %{message}`)

	backend1 := logging.NewLogBackend(os.Stdout, "", golog.Lmsgprefix)
	backend1Formatter := logging.NewBackendFormatter(backend1, searchLogFormat)
	searchBackEnd := logging.AddModuleLevel(backend1Formatter)
	searchBackEnd.SetLevel(logging.Level(SearchLogLevel), "")
	searchLog.SetBackend(searchBackEnd)

	// File backend
	programName, _ := os.Executable()
	exeName := strings.TrimSuffix(filepath.Base(programName), ".exe")

	// find log path
	logPath, err := util.ResolveFolder(Settings.Log.LogPath)
	if err != nil {
		golog.Println("Log folder could not be found:", err)
		return searchLog
	}
	searchLogFilePath := filepath.Join(logPath, exeName+"_search.log")

	// create file backend
	searchLogFile, err := os.OpenFile(searchLogFilePath, os.O_RDWR|os.O_CREATE|os.O_APPEND, 0666)
	if err != nil {
		golog.Println("Logfile could not be created:", err)
		return searchLog
	}
	backend2 := logging.NewLogBackend(searchLogFile, "", golog.Lmsgprefix)
	backend2Formatter := logging.NewBackendFormatter(backend2, searchLogFormat)
	searchBackEnd2 := logging.AddModuleLevel(backend2Formatter)
	searchBackEnd2.SetLevel(logging.DEBUG, "")
	searchLog.SetBackend(searchBackEnd2)
	searchLog.Infof("Log %s started at %s:", searchLogFile.Name(), time.Now().String())
	return searchLog
}
