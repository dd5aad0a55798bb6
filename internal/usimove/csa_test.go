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

package usimove

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/yomigo-shogi/yomigo/internal/movegen"
	"github.com/yomigo-shogi/yomigo/internal/position"
	. "github.com/yomigo-shogi/yomigo/internal/types"
)

func TestMoveToCsaBoardMove(t *testing.T) {
	p := position.NewPosition()
	mg := movegen.NewMoveGen()
	m := mg.GetMoveFromUsi(p, "7g7f")
	assert.True(t, m.IsValid())
	assert.Equal(t, "+7776FU", MoveToCsa(m, Black))
}

func TestMoveToCsaWhiteBoardMove(t *testing.T) {
	p := position.NewPosition()
	mg := movegen.NewMoveGen()
	p.DoMove(mg.GetMoveFromUsi(p, "7g7f"))
	m := mg.GetMoveFromUsi(p, "3c3d")
	assert.True(t, m.IsValid())
	assert.Equal(t, "-3334FU", MoveToCsa(m, White))
}

func TestMoveToCsaDrop(t *testing.T) {
	p, err := position.NewPositionSfen("8k/9/8P/9/9/9/9/9/8K b G 1")
	assert.NoError(t, err)
	mg := movegen.NewMoveGen()
	m := mg.GetMoveFromUsi(p, "G*1b")
	assert.True(t, m.IsValid())
	assert.Equal(t, "+0012KI", MoveToCsa(m, Black))
}

func TestMoveToCsaPromotion(t *testing.T) {
	p, err := position.NewPositionSfen("8k/1P7/9/9/9/9/9/9/8K b - 1")
	assert.NoError(t, err)
	mg := movegen.NewMoveGen()
	m := mg.GetMoveFromUsi(p, "8b8a+")
	assert.True(t, m.IsValid())
	assert.Equal(t, "+8281TO", MoveToCsa(m, Black))
}

func TestParseCsaRoundTrip(t *testing.T) {
	p := position.NewPosition()
	mg := movegen.NewMoveGen()
	legal := mg.GenerateLegalMoves(p, movegen.GenAll)
	for i := 0; i < legal.Len(); i++ {
		want := legal.At(i)
		csa := MoveToCsa(want, p.NextPlayer())
		got := ParseCsa(p, csa)
		assert.Equal(t, want, got, "round trip through CSA notation for %s (%s)", want.StringUsi(), csa)
	}
}

func TestParseCsaDropWithoutSign(t *testing.T) {
	p, err := position.NewPositionSfen("8k/9/8P/9/9/9/9/9/8K b G 1")
	assert.NoError(t, err)
	m := ParseCsa(p, "0012KI")
	assert.Equal(t, "G*1b", m.StringUsi())
}

func TestParseCsaRejectsWrongSign(t *testing.T) {
	p := position.NewPosition()
	m := ParseCsa(p, "-7776FU")
	assert.Equal(t, MoveNone, m, "7776FU is a Black move, the position has Black to move")
}

func TestParseCsaUnknownMoveReturnsNone(t *testing.T) {
	p := position.NewPosition()
	m := ParseCsa(p, "+9999FU")
	assert.Equal(t, MoveNone, m)
}
