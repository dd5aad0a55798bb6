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
	"math"

	"github.com/yomigo-shogi/yomigo/internal/types"
)

// This file holds the closed-form and table-driven parameters the search
// prunes and reduces by. Unlike the rest of the package these are tuned
// constants rather than algorithms, so they live apart from the move
// loop that consumes them.

// lmr is a lookup table for late move reductions in the dimensions
// depth and moves searched, built once from a log(depth)*log(moveCount)
// curve scaled by 1024 the way modern engines derive their reduction
// tables, then divided back down to whole plies.
var lmr [32][64]int

// LmrReduction returns the ply reduction for a move searched at the
// given depth after movesSearched full-width moves already tried,
// biased a notch lower when the static eval is improving (a position
// climbing in value between plies deserves less pruning).
func LmrReduction(depth int, movesSearched int, improving bool) int {
	d, m := depth, movesSearched
	if d >= 32 {
		d = 31
	}
	if m >= 64 {
		m = 63
	}
	r := lmr[d][m]
	if !improving && r > 0 {
		r++
	}
	return r
}

func init() {
	for i := 1; i < 32; i++ {
		for j := 1; j < 64; j++ {
			// reduction(depth, moveCount) scaled by 1024, modeled on the
			// log(d)*log(m) shape common to modern LMR tables; divided
			// back to whole plies for use as a direct depth subtraction.
			scaled := int(1024.0 * 0.5 * math.Log(float64(i)) * math.Log(float64(j)))
			lmr[i][j] = scaled / 1024
		}
	}
}

// MoveCountPruningThreshold implements the move-count (late-move)
// pruning formula (5+d^2)*(1+improving)/2: once this many quiet moves
// have been searched without improving alpha, the rest of the quiet
// moves at this depth are skipped outright.
func MoveCountPruningThreshold(depth int, improving bool) int {
	imp := 0
	if improving {
		imp = 1
	}
	return (5 + depth*depth) * (1 + imp) / 2
}

// NmpReduction computes the null-move depth reduction r =
// (737+77*depth)/246 + min((eval-beta)/192, 3).
func NmpReduction(depth int, eval, beta types.Value) int {
	r := (737 + 77*depth) / 246
	bonus := int(eval-beta) / 192
	if bonus > 3 {
		bonus = 3
	}
	if bonus > 0 {
		r += bonus
	}
	return r
}

// razorMargin is the material gap that triggers razoring at depth 1:
// if the static eval plus this margin still can't reach alpha the
// position is hopeless enough to drop straight to quiescence.
const razorMargin types.Value = 600

// FutilityMargin returns the depth<8 futility bound eval must clear
// (eval - 75*depth >= beta) to short-circuit the node as an early
// fail-high.
func FutilityMargin(depth int) types.Value {
	return types.Value(75 * depth)
}

// aspirationStart is the initial half-width of the aspiration window
// around the previous iteration's score; aspirationGrow widens it by
// delta/4+5 on every fail-high/fail-low re-search.
const aspirationStart types.Value = 19

// aspirationGrow returns the next, wider half-width after a failed
// aspiration search at the current half-width delta.
func aspirationGrow(delta types.Value) types.Value {
	return delta + delta/4 + 5
}

// probCutMargin is the extra margin added to beta before raising it
// into a ProbCut test - only captures/promotions scoring well above
// this shifted beta are searched at the reduced probe depth.
const probCutMargin types.Value = 170

// probCutDepthReduction is how many plies shallower the ProbCut probe
// searches relative to the parent node.
const probCutDepthReduction = 4

// singularMarginPerDepth scales the singular-extension exclusion
// window: the excluded-move search runs at (ttValue - c*depth, ...+1).
const singularMarginPerDepth types.Value = 2

// singularDepthReduction is how much shallower the exclusion search
// runs relative to the TT entry's own recorded depth.
const singularDepthReduction = 3

// minSingularDepth is the shallowest depth singular extension is tried
// at; below it the exclusion search itself would be too noisy to trust.
const minSingularDepth = 6

// minProbCutDepth is the shallowest depth ProbCut is tried at.
const minProbCutDepth = 5
