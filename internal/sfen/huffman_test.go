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

package sfen

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/yomigo-shogi/yomigo/internal/position"
	. "github.com/yomigo-shogi/yomigo/internal/types"
)

func assertRoundTrip(t *testing.T, sfenText string) {
	t.Helper()
	p, err := position.NewPositionSfen(sfenText)
	assert.NoError(t, err)

	code, err := EncodePosition(p)
	assert.NoError(t, err)

	decoded, err := DecodePosition(code)
	assert.NoError(t, err)

	assert.Equal(t, p.Sfen(), decoded.Sfen())
	assert.Equal(t, p.ZobristKey(), decoded.ZobristKey())
}

func TestHuffmanRoundTripStartPosition(t *testing.T) {
	assertRoundTrip(t, "lnsgkgsnl/1r5b1/ppppppppp/9/9/9/PPPPPPPPP/1B5R1/LNSGKGSNL b - 1")
}

func TestHuffmanRoundTripWithHandAndPromotions(t *testing.T) {
	assertRoundTrip(t, "lnsgkgsnl/1r5b1/pppp1pppp/9/9/9/PPPP1PPPP/1+B5R1/LNSGKGSNL b 2P 1")
}

func TestHuffmanRoundTripSparseBoardWithHand(t *testing.T) {
	assertRoundTrip(t, "8k/9/8P/9/9/9/9/9/8K b G 1")
}

func TestHuffmanRoundTripManyInHand(t *testing.T) {
	assertRoundTrip(t, "4k4/9/9/9/9/9/9/9/4K4 b 2r2b4g4s4n4l18p 123")
}

func TestHuffmanEncodePreservesMoveNumber(t *testing.T) {
	p, err := position.NewPositionSfen("lnsgkgsnl/1r5b1/ppppppppp/9/9/9/PPPPPPPPP/1B5R1/LNSGKGSNL b - 42")
	assert.NoError(t, err)

	code, err := EncodePosition(p)
	assert.NoError(t, err)
	assert.Equal(t, 42, code.Ply)

	decoded, err := DecodePosition(code)
	assert.NoError(t, err)
	assert.Equal(t, 42, decoded.MoveNumber())
}

func TestHuffmanDecodeRejectsGarbage(t *testing.T) {
	var code HuffmanCode
	for i := range code.Buf {
		code.Buf[i] = 0xFF
	}
	_, err := DecodePosition(code)
	assert.Error(t, err)
}

func TestHuffmanEncodeDecodeAgreeOnSideToMove(t *testing.T) {
	p, err := position.NewPositionSfen("lnsgkgsnl/1r5b1/ppppppppp/9/9/9/PPPPPPPPP/1B5R1/LNSGKGSNL w - 1")
	assert.NoError(t, err)
	code, err := EncodePosition(p)
	assert.NoError(t, err)
	decoded, err := DecodePosition(code)
	assert.NoError(t, err)
	assert.Equal(t, White, decoded.SideToMove())
}
