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

import "strconv"

// Value is a centipawn-like search/eval score.
type Value int32

const (
	ValueZero     Value = 0
	ValueDraw     Value = 0
	ValueInfinite Value = 32000
	ValueNone     Value = 32001
	ValueMate     Value = 31000
	// ValueMateInMaxPly is the threshold above which a value is
	// considered a forced mate, leaving headroom for MaxPly plies.
	ValueMateInMaxPly = ValueMate - Value(MaxPly)
	ValueMatedInMaxPly = -ValueMateInMaxPly
)

// IsValid reports whether v is a plausible score (excludes ValueNone and
// anything beyond the mate/infinite envelope).
func (v Value) IsValid() bool {
	return v >= -ValueInfinite && v <= ValueInfinite
}

// MateIn returns the score representing "mate in (ply+1)/2 moves" counted
// from search ply.
func MateIn(ply int) Value {
	return ValueMate - Value(ply)
}

// MatedIn returns the score representing "mated in (ply+1)/2 moves"
// counted from search ply.
func MatedIn(ply int) Value {
	return -ValueMate + Value(ply)
}

// IsMate reports whether v lies in the forced-mate envelope, whether
// the mate is for or against the side to move.
func (v Value) IsMate() bool {
	return v >= ValueMateInMaxPly || v <= ValueMatedInMaxPly
}

// String renders v as a mate score ("mate N") when it falls in the
// forced-mate envelope, otherwise as a plain centipawn-like integer.
func (v Value) String() string {
	switch {
	case v >= ValueMateInMaxPly:
		return "mate " + strconv.Itoa(int((ValueMate-v+1)/2))
	case v <= ValueMatedInMaxPly:
		return "mate " + strconv.Itoa(-int((ValueMate+v+1)/2))
	default:
		return strconv.Itoa(int(v))
	}
}
