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

package position

import (
	. "github.com/yomigo-shogi/yomigo/internal/types"
)

// Zobrist keys are split into a board half and a hand half (see Key)
// so a drop - which changes a hand count but not the board - or a
// capture - which changes both - each touch only the tables they need.
// Every table entry has its low bit cleared so XOR-folding boardKey
// and handKey together never disturbs the side-to-move bit the
// combined key reserves for ZobristKey().

// maxHandCount is sized for the most a side can ever hold of a single
// piece type in hand (all eighteen pawns).
const maxHandCount = 19

var zobristPieceSquare [ColorLength][PtLength][SqLength]Key
var zobristHand [ColorLength][PtLength][maxHandCount]Key
var zobristSide Key

// zobristSeed is fixed so perft/search traces are reproducible across
// runs - there is no cryptographic requirement on these keys, only that
// they stay put for the lifetime of a transposition table.
const zobristSeed uint64 = 0x9E3779B97F4A7C15

func init() {
	r := NewRandom(zobristSeed)
	next := func() Key { return Key(r.Rand64()) &^ 1 }

	for c := Black; c < ColorLength; c++ {
		for pt := PtNone; pt < PtLength; pt++ {
			for sq := Square(0); sq < SqLength; sq++ {
				zobristPieceSquare[c][pt][sq] = next()
			}
			for n := 0; n < maxHandCount; n++ {
				zobristHand[c][pt][n] = next()
			}
		}
	}
	zobristSide = 1
}

func pieceKey(pc Piece, sq Square) Key {
	return zobristPieceSquare[pc.ColorOf()][pc.TypeOf()][sq]
}

func handKeyFor(c Color, pt PieceType, count uint32) Key {
	return zobristHand[c][pt][count]
}
