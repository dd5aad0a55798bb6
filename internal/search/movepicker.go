// MIT License
//
// Copyright (c) 2020-2026 Yomigo contributors
//
// Permission is hereby granted, free of charge, to any person obtaining a copy
// of this software and associated documentation files (the "Software"), to deal
// in the Software without restriction, including without limitation the rights
// to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
// copies of the Software, and to permit persons to whom the Software is
// furnished to do so, subject to the following conditions:
//
// The above copyright notice and this permission notice shall be included in all
// copies or substantial portions of the Software.
//
// THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
// IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
// FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
// AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
// LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
// OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE
// SOFTWARE.

package search

import (
	"github.com/yomigo-shogi/yomigo/internal/movegen"
	"github.com/yomigo-shogi/yomigo/internal/moveslice"
	"github.com/yomigo-shogi/yomigo/internal/position"
	. "github.com/yomigo-shogi/yomigo/internal/types"
)

// pickStage tracks where a MovePicker is in its staged hand-out order.
type pickStage int

const (
	stageTT pickStage = iota
	stageGoodCapture
	stageRefutation
	stageQuietInit
	stageQuiet
	stageBadCapture
	stageEvasion
	stageDone
)

// MovePicker hands out the legal moves of a node in the staged order
// described for the main search: the TT move first, then captures that
// look profitable by SEE, the two killer slots plus a countermove,
// quiet moves ordered by history score, and finally captures that
// looked unprofitable. In check, everything collapses to a single
// scored evasion stage; in quiescence, the quiet/refutation stages are
// skipped (and bad captures are dropped, not deferred) unless the side
// to move is in check.
//
// Unlike a from-scratch staged generator, MovePicker builds its
// candidate list in one shot via movegen.GenerateLegalMoves and then
// partitions/sorts it - the do/undo legality filter that function
// already performs is the expensive part, and redoing it piecemeal per
// stage would not be cheaper.
type MovePicker struct {
	p       *position.Position
	ttMove  Move
	killers [2]Move
	counter Move

	scoreCapture func(Move) Value
	scoreQuiet   func(Move) Value

	inCheck bool
	qsearch bool

	good  moveslice.MoveSlice
	bad   moveslice.MoveSlice
	quiet moveslice.MoveSlice

	stage     pickStage
	idx       int
	ttYielded bool
}

// NewMovePicker builds a move picker for a normal search node. hasCheck
// collapses the staged order into the single scored evasion stage, since
// GenAll already restricts to legal replies to check.
func NewMovePicker(p *position.Position, hasCheck bool, ttMove Move, killers [2]Move, counter Move,
	scoreCapture, scoreQuiet func(Move) Value) *MovePicker {
	return build(p, movegen.GenAll, ttMove, killers, counter, scoreCapture, scoreQuiet, hasCheck, true)
}

// NewQMovePicker builds a move picker for quiescence search. Bad
// captures (SEE < 0) are dropped outright rather than deferred, since
// qsearch never exhausts a stage it can't afford.
func NewQMovePicker(p *position.Position, hasCheck bool, ttMove Move,
	scoreCapture, scoreQuiet func(Move) Value) *MovePicker {
	mode := movegen.GenNonQuiet
	if hasCheck {
		mode = movegen.GenAll
	}
	return build(p, mode, ttMove, [2]Move{MoveNone, MoveNone}, MoveNone, scoreCapture, scoreQuiet, hasCheck, false)
}

func build(p *position.Position, mode movegen.GenMode, ttMove Move, killers [2]Move, counter Move,
	scoreCapture, scoreQuiet func(Move) Value, inCheck, keepBadCaptures bool) *MovePicker {
	mp := &MovePicker{
		p:            p,
		ttMove:       ttMove,
		killers:      killers,
		counter:      counter,
		scoreCapture: scoreCapture,
		scoreQuiet:   scoreQuiet,
		inCheck:      inCheck,
		qsearch:      mode != movegen.GenAll || !keepBadCaptures,
	}

	all := movegen.GenerateLegalMoves(p, mode)

	if inCheck {
		mp.stage = stageEvasion
		scores := make([]Value, 0, all.Len())
		for i := 0; i < all.Len(); i++ {
			m := all.At(i)
			mp.quiet.PushBack(m)
			if p.IsCapturingMove(m) {
				scores = append(scores, 20000+mp.scoreCapture(m))
			} else {
				scores = append(scores, mp.scoreQuiet(m)-20000)
			}
		}
		mp.quiet.SortByValue(scores)
		return mp
	}

	mp.stage = stageTT

	captureScores := make([]Value, 0, 16)
	quietScores := make([]Value, 0, 64)
	for i := 0; i < all.Len(); i++ {
		m := all.At(i)
		if m == ttMove {
			continue
		}
		if p.IsCapturingMove(m) {
			if see(p, m) >= 0 {
				mp.good.PushBack(m)
				captureScores = append(captureScores, mp.scoreCapture(m))
			} else if keepBadCaptures {
				mp.bad.PushBack(m)
			}
			continue
		}
		if m == killers[0] || m == killers[1] || m == counter {
			continue
		}
		mp.quiet.PushBack(m)
		quietScores = append(quietScores, mp.scoreQuiet(m))
	}
	mp.good.SortByValue(captureScores)
	if keepBadCaptures {
		badScores := make([]Value, mp.bad.Len())
		for i := 0; i < mp.bad.Len(); i++ {
			badScores[i] = mp.scoreCapture(mp.bad.At(i))
		}
		mp.bad.SortByValue(badScores)
	}
	// quiet-init: partial insertion sort under a fixed threshold of -3000
	// that does not scale with depth - the common case (most quiets score
	// near zero) skips a full sort.
	partialInsertionSort(&mp.quiet, quietScores, Value(-3000))

	return mp
}

// partialInsertionSort insertion-sorts only the elements of ms whose
// score meets or exceeds limit, moving them to the front in descending
// order (the first element always counts as part of that sorted prefix);
// the relative order of the remaining elements is not preserved -
// the technique modern engines use to order the
// "interesting" quiet moves precisely while skipping full-sort cost on
// moves that won't be reached before a cutoff anyway.
func partialInsertionSort(ms *moveslice.MoveSlice, scores []Value, limit Value) {
	sortedEnd := 0
	for i := 1; i < ms.Len(); i++ {
		if scores[i] < limit {
			continue
		}
		sortedEnd++
		tmpMove, tmpScore := ms.At(i), scores[i]
		ms.Set(i, ms.At(sortedEnd))
		scores[i] = scores[sortedEnd]
		j := sortedEnd
		for j > 0 && scores[j-1] < tmpScore {
			ms.Set(j, ms.At(j-1))
			scores[j] = scores[j-1]
			j--
		}
		ms.Set(j, tmpMove)
		scores[j] = tmpScore
	}
}

// Next returns the next move in staged order, or MoveNone once
// exhausted.
func (mp *MovePicker) Next() Move {
	for {
		switch mp.stage {
		case stageTT:
			mp.stage = stageGoodCapture
			if mp.ttMove != MoveNone && !mp.ttYielded {
				mp.ttYielded = true
				return mp.ttMove
			}
		case stageGoodCapture:
			if mp.idx < mp.good.Len() {
				m := mp.good.At(mp.idx)
				mp.idx++
				return m
			}
			mp.idx = 0
			mp.stage = stageRefutation
		case stageRefutation:
			mp.stage = stageQuietInit
			for _, k := range [...]Move{mp.killers[0], mp.killers[1], mp.counter} {
				if k != MoveNone && k != mp.ttMove {
					return k
				}
			}
		case stageQuietInit:
			mp.stage = stageQuiet
		case stageQuiet:
			if mp.idx < mp.quiet.Len() {
				m := mp.quiet.At(mp.idx)
				mp.idx++
				if m == mp.killers[0] || m == mp.killers[1] || m == mp.counter {
					continue
				}
				return m
			}
			mp.idx = 0
			mp.stage = stageBadCapture
		case stageBadCapture:
			if mp.idx < mp.bad.Len() {
				m := mp.bad.At(mp.idx)
				mp.idx++
				return m
			}
			mp.stage = stageDone
		case stageEvasion:
			if mp.idx < mp.quiet.Len() {
				m := mp.quiet.At(mp.idx)
				mp.idx++
				return m
			}
			mp.stage = stageDone
		case stageDone:
			return MoveNone
		}
	}
}
