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

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	. "github.com/yomigo-shogi/yomigo/internal/types"
)

func TestPartSplitsOnFileBoundary(t *testing.T) {
	for sq := Square(0); sq < SqLength; sq++ {
		want := 0
		if sq > 62 {
			want = 1
		}
		assert.Equal(t, want, part(sq), "square %d", sq)
	}
	// squares 0..62 are files 1..7 in full; 63..80 are files 8..9 -
	// confirm the split falls between file 7 and file 8, never inside a
	// file.
	assert.Equal(t, 0, part(SquareOf(File7, RankA)))
	assert.Equal(t, 1, part(SquareOf(File8, RankA)))
}

func TestSquareBbRoundTrip(t *testing.T) {
	for sq := Square(0); sq < SqLength; sq++ {
		b := SquareBb(sq)
		assert.True(t, b.Has(sq))
		assert.Equal(t, 1, b.PopCount())
		assert.Equal(t, sq, b.Lsb())
	}
}

func TestPopLsbFileMajorOrder(t *testing.T) {
	b := SquareBb(SquareOf(File1, RankI)).Or(SquareBb(SquareOf(File9, RankA)))
	sq, rest := b.PopLsb()
	assert.Equal(t, SquareOf(File1, RankI), sq)
	sq2, rest2 := rest.PopLsb()
	assert.Equal(t, SquareOf(File9, RankA), sq2)
	assert.True(t, rest2.IsEmpty())
}

func TestNotIsRestrictedToValidSquares(t *testing.T) {
	assert.Equal(t, All, Zero.Not())
	assert.True(t, All.Not().IsEmpty())
}

func TestAllHas81Squares(t *testing.T) {
	assert.Equal(t, 81, All.PopCount())
}

func TestLanceAttacksStopAtBlocker(t *testing.T) {
	sq := SquareOf(File5, RankI)
	empty := LanceAttacks(Black, sq, Zero)
	require.Equal(t, 8, empty.PopCount())

	blocker := SquareOf(File5, RankE)
	occ := SquareBb(blocker)
	blocked := LanceAttacks(Black, sq, occ)
	assert.True(t, blocked.Has(blocker))
	assert.False(t, blocked.Has(SquareOf(File5, RankD)))
	assert.Equal(t, 4, blocked.PopCount())
}

func TestLanceAttacksColorsAreMirrored(t *testing.T) {
	sq := SquareOf(File5, RankA)
	assert.True(t, LanceAttacks(Black, sq, Zero).IsEmpty())
	assert.Equal(t, 8, LanceAttacks(White, sq, Zero).PopCount())
}

func TestBishopAttacksEmptyBoardFromCenter(t *testing.T) {
	sq := SquareOf(File5, RankE)
	attacks := AttacksBb(Bishop, sq, Zero)
	// from the center square every diagonal runs 4 squares to the edge.
	assert.Equal(t, 16, attacks.PopCount())
}

func TestRookAttacksBlockedByOccupancy(t *testing.T) {
	sq := SquareOf(File5, RankE)
	occ := SquareBb(SquareOf(File5, RankC)).Or(SquareBb(SquareOf(File7, RankE)))
	attacks := AttacksBb(Rook, sq, occ)
	assert.True(t, attacks.Has(SquareOf(File5, RankC)))
	assert.False(t, attacks.Has(SquareOf(File5, RankB)))
	assert.True(t, attacks.Has(SquareOf(File7, RankE)))
	assert.False(t, attacks.Has(SquareOf(File8, RankE)))
	assert.True(t, attacks.Has(SquareOf(File6, RankE)))
}

func TestHorseAddsKingStepToBishop(t *testing.T) {
	sq := SquareOf(File5, RankE)
	horse := AttacksBb(Horse, sq, Zero)
	bishop := AttacksBb(Bishop, sq, Zero)
	assert.True(t, horse.PopCount() > bishop.PopCount())
	assert.True(t, horse.Has(SquareOf(File5, RankD)))
}

func TestBetweenAndLineAlignment(t *testing.T) {
	a := SquareOf(File1, RankA)
	b := SquareOf(File1, RankI)
	between := BetweenBb[a][b]
	assert.Equal(t, 7, between.PopCount())
	assert.False(t, between.Has(a))
	assert.False(t, between.Has(b))

	line := LineBb[a][b]
	assert.True(t, line.Has(a))
	assert.True(t, line.Has(b))
	assert.Equal(t, 9, line.PopCount())

	assert.True(t, LineBb[SquareOf(File3, RankC)][SquareOf(File5, RankE)].IsEmpty() == false)
	assert.True(t, BetweenBb[SquareOf(File1, RankA)][SquareOf(File2, RankB)].IsEmpty())
}

func TestRelationIsSymmetricAlongAxis(t *testing.T) {
	a := SquareOf(File5, RankE)
	n := SquareOf(File5, RankA)
	s := SquareOf(File5, RankI)
	assert.Equal(t, RelationFileN, RelationOf[a][n])
	assert.Equal(t, RelationFileS, RelationOf[a][s])
	assert.Equal(t, RelationNone, RelationOf[a][SquareOf(File4, RankD)])
}

func TestProximityCheckMaskMatchesPawnGeometry(t *testing.T) {
	kingSq := SquareOf(File5, RankE)
	mask := ProximityCheckMask[Black][Pawn][kingSq]
	require.Equal(t, 1, mask.PopCount())
	// an enemy (White) pawn checks a Black king by stepping south onto
	// it, so it must originate one rank north of the king.
	assert.True(t, mask.Has(SquareOf(File5, RankD)))
}
