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

// Color identifies a side to move. Black moves first in Shogi, unlike
// most western notations, and is the zero value here to match SFEN's
// own "b"/"w" ordering.
type Color uint8

const (
	Black Color = iota
	White
	ColorLength
)

var colorStrings = [ColorLength]string{"b", "w"}

// Flip returns the opposite color.
func (c Color) Flip() Color {
	return c ^ 1
}

// IsValid reports whether c is Black or White.
func (c Color) IsValid() bool {
	return c < ColorLength
}

// String returns the SFEN side-to-move letter.
func (c Color) String() string {
	if !c.IsValid() {
		panic("invalid color")
	}
	return colorStrings[c]
}

// dir holds the rank-delta a pawn of this color advances by. Rank 0 is
// SFEN rank "a" (nearest Black's promotion zone); Black advances toward
// rank 0, White toward rank 8.
var dir = [ColorLength]int{-1, 1}

// PawnDir returns -1 for Black (advancing towards rank "a") and +1 for
// White (advancing towards rank "i").
func (c Color) PawnDir() int {
	return dir[c]
}
