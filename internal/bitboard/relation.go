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

// Relation encodes which of the nine alignments holds between two
// distinct squares: none, the two file directions, the two rank
// directions, and the four diagonal directions. SEE's "reveal the
// slider behind the captured piece" step and pin detection both need
// this to pick the right ray to continue along.
type Relation uint8

const (
	RelationNone Relation = iota
	RelationFileN
	RelationFileS
	RelationRankE
	RelationRankW
	RelationDiagNE
	RelationDiagSW
	RelationDiagNW
	RelationDiagSE
)

// RelationOf[a][b] is the direction from a towards b, or RelationNone
// if a and b do not share a file, rank, or diagonal.
var RelationOf [SqLength][SqLength]Relation

var relationTable = [8]struct {
	dir Direction
	rel Relation
}{
	{North, RelationFileN}, {South, RelationFileS},
	{East, RelationRankE}, {West, RelationRankW},
	{Northeast, RelationDiagNE}, {Southwest, RelationDiagSW},
	{Northwest, RelationDiagNW}, {Southeast, RelationDiagSE},
}

func init() {
	for a := Square(0); a < SqLength; a++ {
		for _, rd := range relationTable {
			cur := a
			for {
				next := cur.To(rd.dir)
				if next == SqNone {
					break
				}
				RelationOf[a][next] = rd.rel
				cur = next
			}
		}
	}
}
