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

// //////////////////////////////////////////////////////////////////
// Perft node counts for the standard Shogi starting position, widely
// reproduced across Shogi engine test suites.
// //////////////////////////////////////////////////////////////////

//noinspection GoImportUsedAsName
func TestStandardPerft(t *testing.T) {

	maxDepth := 4
	var perft Perft
	assert := assert.New(t)

	var nodes = [10]uint64{
		// @formatter:off
		1,
		30,
		900,
		25_470,
		719_731,
		19_861_490,
		547_581_517,
		// @formatter:on
	}

	for i := 1; i <= maxDepth; i++ {
		perft.StartPerft(position.StartSfen, i, false)
		assert.Equal(nodes[i], perft.Nodes)
	}
}

//noinspection GoImportUsedAsName
func TestStandardPerftOd(t *testing.T) {

	maxDepth := 4
	var perft Perft
	assert := assert.New(t)

	var nodes = [10]uint64{
		// @formatter:off
		1,
		30,
		900,
		25_470,
		719_731,
		19_861_490,
		547_581_517,
		// @formatter:on
	}

	for i := 1; i <= maxDepth; i++ {
		perft.StartPerft(position.StartSfen, i, true)
		assert.Equal(nodes[i], perft.Nodes)
	}
}
