/*
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

package movegen

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/yomigo-shogi/yomigo/internal/position"
)

func TestMateMoveIn1PlyGoldDrop(t *testing.T) {
	p, err := position.NewPositionSfen("8k/9/8P/9/9/9/9/9/8K b G 1")
	assert.NoError(t, err)
	m := MateMoveIn1Ply(p)
	assert.Equal(t, "G*1b", m.StringUsi())
}

func TestMateMoveIn1PlyKnightDrop(t *testing.T) {
	p, err := position.NewPositionSfen("7pk/7bp/9/9/9/9/9/9/8K b N 1")
	assert.NoError(t, err)
	m := MateMoveIn1Ply(p)
	assert.Equal(t, "N*2c", m.StringUsi())
}

func TestMateMoveIn1PlyNone(t *testing.T) {
	p, err := position.NewPositionSfen("8k/9/9/9/9/9/9/9/8K b G 1")
	assert.NoError(t, err)
	m := MateMoveIn1Ply(p)
	assert.Equal(t, MoveNone, m)
}
