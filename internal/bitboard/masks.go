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

// All is the bitboard of every valid square.
var All Bitboard

// FileBb[f] is the bitboard of every square on file f.
var FileBb [FileLength]Bitboard

// RankBb[r] is the bitboard of every square on rank r.
var RankBb [RankLength]Bitboard

// PromotionZoneBb[c] is the three-rank zone in which color c promotes.
var PromotionZoneBb [ColorLength]Bitboard

// BetweenBb[a][b] is the set of squares strictly between a and b when
// they are aligned (same file, rank, or diagonal); empty otherwise.
var BetweenBb [SqLength][SqLength]Bitboard

// LineBb[a][b] is the full line through a and b (both endpoints plus
// everything between and beyond, up to the board edge) when aligned;
// empty otherwise. Used for pin/discovered-check alignment tests.
var LineBb [SqLength][SqLength]Bitboard

func init() {
	for f := File1; f < FileLength; f++ {
		for r := RankA; r < RankLength; r++ {
			sq := SquareOf(f, r)
			All = All.PushSquare(sq)
			FileBb[f] = FileBb[f].PushSquare(sq)
			RankBb[r] = RankBb[r].PushSquare(sq)
		}
	}
	for r := RankA; r <= RankC; r++ {
		PromotionZoneBb[Black] = PromotionZoneBb[Black].Or(RankBb[r])
	}
	for r := RankG; r <= RankI; r++ {
		PromotionZoneBb[White] = PromotionZoneBb[White].Or(RankBb[r])
	}
	initLines()
}

// the eight ray directions used to build BetweenBb/LineBb by walking
// from one endpoint outward until hitting the other or the board edge.
var lineDirections = [8]Direction{North, South, East, West, Northeast, Southeast, Northwest, Southwest}

func initLines() {
	for a := Square(0); a < SqLength; a++ {
		for _, d := range lineDirections {
			// walk the whole ray from a, recording every square passed;
			// any square reached becomes aligned with a along this ray.
			ray := []Square{}
			cur := a
			for {
				next := cur.To(d)
				if next == SqNone {
					break
				}
				ray = append(ray, next)
				cur = next
			}
			for i, b := range ray {
				var line, between Bitboard
				line = line.PushSquare(a)
				for _, s := range ray {
					line = line.PushSquare(s)
				}
				for j := 0; j < i; j++ {
					between = between.PushSquare(ray[j])
				}
				// extend the line backwards from a too, along the
				// opposite direction, so LineBb covers the full ray.
				back := a
				opp := oppositeDirection(d)
				for {
					prev := back.To(opp)
					if prev == SqNone {
						break
					}
					line = line.PushSquare(prev)
					back = prev
				}
				LineBb[a][b] = line
				BetweenBb[a][b] = between
			}
		}
	}
}

func oppositeDirection(d Direction) Direction {
	switch d {
	case North:
		return South
	case South:
		return North
	case East:
		return West
	case West:
		return East
	case Northeast:
		return Southwest
	case Southwest:
		return Northeast
	case Northwest:
		return Southeast
	case Southeast:
		return Northwest
	default:
		panic("invalid direction")
	}
}
