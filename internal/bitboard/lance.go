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

package bitboard

import . "github.com/yomigo-shogi/yomigo/internal/types"

// Lance attacks are a strictly-vertical, single-direction ray, so
// unlike bishop/rook they don't need a magic multiply: the relevant
// occupancy is the handful of squares between the lance and the board
// edge in its direction of travel, and that set is always file-local
// (every file sits entirely inside one bitboard lane). Each square's
// mask is recorded as an ordered list of squares nearest-to-farthest;
// the runtime index is simply "which of those squares are occupied",
// gathered bit by bit instead of via a single shifted lane read.
var lanceMaskSquares [ColorLength][SqLength][]Square
var lanceAttacksTable [ColorLength][SqLength][]Bitboard

func init() {
	forward := [ColorLength]Direction{North, South}
	for c := Black; c < ColorLength; c++ {
		for sq := Square(0); sq < SqLength; sq++ {
			var ray []Square
			cur := sq
			for {
				next := cur.To(forward[c])
				if next == SqNone {
					break
				}
				ray = append(ray, next)
				cur = next
			}
			if len(ray) == 0 {
				lanceAttacksTable[c][sq] = []Bitboard{{}}
				continue
			}
			// the last ray square is the board edge: whether it is
			// occupied never changes the attack set (there is nothing
			// beyond it to stop short of), so it is excluded from the
			// index the same way magic masks exclude board edges.
			mask := ray[:len(ray)-1]
			lanceMaskSquares[c][sq] = mask
			table := make([]Bitboard, 1<<uint(len(mask)))
			for idx := range table {
				var attack Bitboard
				for _, s := range ray {
					attack = attack.PushSquare(s)
					blocked := false
					for bit, m := range mask {
						if m == s && idx&(1<<uint(bit)) != 0 {
							blocked = true
							break
						}
					}
					if blocked {
						break
					}
				}
				table[idx] = attack
			}
			lanceAttacksTable[c][sq] = table
		}
	}
}

// LanceAttacks returns the lance attack set for color c standing on sq
// given the full board occupancy.
func LanceAttacks(c Color, sq Square, occupied Bitboard) Bitboard {
	mask := lanceMaskSquares[c][sq]
	idx := 0
	for bit, s := range mask {
		if occupied.Has(s) {
			idx |= 1 << uint(bit)
		}
	}
	return lanceAttacksTable[c][sq][idx]
}
