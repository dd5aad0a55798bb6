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

// Rank is one of the nine ranks of a Shogi board, numbered 0..8 for
// USI ranks "a".."i". Rank 0 is nearest Black's promotion zone.
type Rank uint8

const (
	RankA Rank = iota
	RankB
	RankC
	RankD
	RankE
	RankF
	RankG
	RankH
	RankI
	RankLength
	RankNone = RankLength
)

// IsValid reports whether r is a rank on the board.
func (r Rank) IsValid() bool {
	return r < RankLength
}

// String returns the USI letter for the rank ("a".."i").
func (r Rank) String() string {
	if !r.IsValid() {
		return "-"
	}
	return string(rune('a' + r))
}

// RankOf parses a single USI rank letter, returning RankNone on failure.
func RankOf(b byte) Rank {
	if b < 'a' || b > 'i' {
		return RankNone
	}
	return Rank(b - 'a')
}

// PromotionZone reports whether r lies in the promotion zone (the three
// ranks nearest the back rank) for color c.
func (r Rank) PromotionZone(c Color) bool {
	if c == Black {
		return r <= RankC
	}
	return r >= RankG
}
