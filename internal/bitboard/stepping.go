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

// Stepping attacks (pawn, knight, silver, gold-like, king) are
// precomputed per square and color by walking piece-specific delta
// vectors and filtering destinations whose file/rank differ from the
// source by more than the piece allows - Square.To already refuses any
// step that would wrap around a file edge, so only the knight's
// two-rank jump needs an explicit delta table instead of Direction.

// PawnAttacks[c][sq] is the single forward step for a pawn of color c.
var PawnAttacks [ColorLength][SqLength]Bitboard

// KnightAttacks[c][sq] is the pair of forward knight jumps.
var KnightAttacks [ColorLength][SqLength]Bitboard

// SilverAttacks[c][sq] covers the four diagonals plus one forward step.
var SilverAttacks [ColorLength][SqLength]Bitboard

// GoldAttacks[c][sq] covers the four orthogonal steps plus the two
// forward diagonals. Also the attack set for every promoted piece that
// "moves like gold" (tokin, promoted lance/knight/silver).
var GoldAttacks [ColorLength][SqLength]Bitboard

// KingAttacks[sq] covers all eight adjacent squares.
var KingAttacks [SqLength]Bitboard

// PseudoAttacks[pt][sq] is the attack set of pt from sq on an empty
// board with Black to move - used by non-sliding PieceType dispatch and
// by "does this piece type even reach here" existence checks that don't
// care about color (callers of sliders pass the real occupancy instead).
var PseudoAttacks [PtLength][SqLength]Bitboard

func init() {
	forward := [ColorLength]Direction{North, South}
	goldDirs := [ColorLength][6]Direction{
		{North, South, East, West, Northeast, Northwest},
		{North, South, East, West, Southeast, Southwest},
	}
	silverDirs := [ColorLength][5]Direction{
		{North, Northeast, Northwest, Southeast, Southwest},
		{South, Northeast, Northwest, Southeast, Southwest},
	}
	kingDirs := [8]Direction{North, South, East, West, Northeast, Northwest, Southeast, Southwest}

	for sq := Square(0); sq < SqLength; sq++ {
		for c := Black; c < ColorLength; c++ {
			if to := sq.To(forward[c]); to != SqNone {
				PawnAttacks[c][sq] = PawnAttacks[c][sq].PushSquare(to)
			}
			for _, d := range goldDirs[c] {
				if to := sq.To(d); to != SqNone {
					GoldAttacks[c][sq] = GoldAttacks[c][sq].PushSquare(to)
				}
			}
			for _, d := range silverDirs[c] {
				if to := sq.To(d); to != SqNone {
					SilverAttacks[c][sq] = SilverAttacks[c][sq].PushSquare(to)
				}
			}
			KnightAttacks[c][sq] = knightJumps(sq, c)
		}
		for _, d := range kingDirs {
			if to := sq.To(d); to != SqNone {
				KingAttacks[sq] = KingAttacks[sq].PushSquare(to)
			}
		}
	}

	for sq := Square(0); sq < SqLength; sq++ {
		PseudoAttacks[King][sq] = KingAttacks[sq]
		PseudoAttacks[Gold][sq] = GoldAttacks[Black][sq]
		PseudoAttacks[ProPawn][sq] = GoldAttacks[Black][sq]
		PseudoAttacks[ProLance][sq] = GoldAttacks[Black][sq]
		PseudoAttacks[ProKnight][sq] = GoldAttacks[Black][sq]
		PseudoAttacks[ProSilver][sq] = GoldAttacks[Black][sq]
		PseudoAttacks[Silver][sq] = SilverAttacks[Black][sq]
		PseudoAttacks[Knight][sq] = KnightAttacks[Black][sq]
		PseudoAttacks[Pawn][sq] = PawnAttacks[Black][sq]
	}
}

// knightJumps computes the (at most two) knight destinations: two
// ranks forward, one file either side. Unlike the other stepping
// pieces this can't be expressed with a single Direction step, so it
// walks file/rank directly and range-checks before calling SquareOf.
func knightJumps(sq Square, c Color) Bitboard {
	var b Bitboard
	r := int(sq.RankOf()) + 2*dirSign(c)
	if r < 0 || r >= int(RankLength) {
		return b
	}
	f := int(sq.FileOf())
	for _, df := range [2]int{-1, 1} {
		nf := f + df
		if nf < 0 || nf >= int(FileLength) {
			continue
		}
		b = b.PushSquare(SquareOf(File(nf), Rank(r)))
	}
	return b
}

func dirSign(c Color) int {
	if c == Black {
		return -1
	}
	return 1
}
