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

package hand

import (
	"testing"

	"github.com/stretchr/testify/assert"

	. "github.com/yomigo-shogi/yomigo/internal/types"
)

func TestShiftBits(t *testing.T) {
	assert.EqualValues(t, 0, pawnShift)
	assert.EqualValues(t, 18, bishopShift)
	assert.EqualValues(t, 21, rookShift)
}

func TestCount(t *testing.T) {
	var h Hand
	h.Set(Lance, 3)
	assert.EqualValues(t, 0, h.Count(Pawn))
	assert.EqualValues(t, 3, h.Count(Lance))
	assert.EqualValues(t, 0, h.Count(Knight))
}

func TestSetAddSub(t *testing.T) {
	var h Hand
	h.Set(Lance, 2)
	h.Set(Gold, 4)
	h.Set(Bishop, 1)
	h.Sub(Gold)
	h.Add(Bishop)
	assert.EqualValues(t, 2, h.Count(Lance))
	assert.EqualValues(t, 3, h.Count(Gold))
	assert.EqualValues(t, 2, h.Count(Bishop))

	h2 := h
	assert.Equal(t, h, h2)
	h2.Sub(Lance)
	assert.NotEqual(t, h, h2)
}

func TestPromotedPiecesShareTheirBucket(t *testing.T) {
	var h Hand
	h.Add(Horse)
	h.Add(Dragon)
	h.Add(ProPawn)
	assert.EqualValues(t, 1, h.Count(Bishop))
	assert.EqualValues(t, 1, h.Count(Rook))
	assert.EqualValues(t, 1, h.Count(Gold))
}

func TestExceptPawnExists(t *testing.T) {
	var h Hand
	assert.False(t, h.ExceptPawnExists())
	h.Set(Pawn, 3)
	assert.False(t, h.ExceptPawnExists())
	h.Add(Silver)
	assert.True(t, h.ExceptPawnExists())
}

func TestIsEqualOrSuperior(t *testing.T) {
	var h Hand
	h.Set(Pawn, 17)
	h.Set(Silver, 3)
	h.Set(Rook, 2)
	h2 := h

	assert.True(t, h.IsEqualOrSuperior(h2))
	assert.True(t, h2.IsEqualOrSuperior(h))

	h2.Sub(Pawn)
	assert.True(t, h.IsEqualOrSuperior(h2))
	assert.False(t, h2.IsEqualOrSuperior(h))

	h2.Add(Bishop)
	assert.False(t, h.IsEqualOrSuperior(h2))
	assert.False(t, h2.IsEqualOrSuperior(h))
}
