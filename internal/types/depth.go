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

// Depth is a search-tree depth in plies, fractional in the sense that
// zero marks the quiescence-search boundary.
type Depth int16

const (
	DepthZero    Depth = 0
	DepthQS      Depth = 0
	DepthQSChecks   Depth = 0
	DepthQSNoChecks Depth = -1
	DepthNone    Depth = -127
	// MaxPly bounds recursion and the fixed-size search stack; chosen to
	// comfortably exceed any reachable search depth plus quiescence tail.
	MaxPly = 246

	// MaxDepth bounds iterative deepening's root depth loop and sizes
	// the per-ply movegen/pv arrays.
	MaxDepth = 128
)

// Bound classifies a stored transposition-table value relative to the
// alpha/beta window it was produced with.
type Bound uint8

const (
	BoundNone  Bound = 0
	BoundUpper Bound = 1 // fail-low: value <= alpha
	BoundLower Bound = 2 // fail-high: value >= beta
	BoundExact Bound = BoundUpper | BoundLower
)
