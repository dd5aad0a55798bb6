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

// Package usimove renders and parses Move values in wire notations other
// than the engine's native USI move strings. CSA notation is the one
// Japanese record-keeping format every Shogi client still needs to read
// or write, even an engine that only ever speaks USI over the board.
package usimove

import (
	"strconv"
	"strings"

	"github.com/yomigo-shogi/yomigo/internal/movegen"
	"github.com/yomigo-shogi/yomigo/internal/position"
	. "github.com/yomigo-shogi/yomigo/internal/types"
)

// csaPieceCode maps each piece type to its two-letter CSA code.
var csaPieceCode = [PtLength]string{
	PtNone:    "--",
	Pawn:      "FU",
	Lance:     "KY",
	Knight:    "KE",
	Silver:    "GI",
	Bishop:    "KA",
	Rook:      "HI",
	Gold:      "KI",
	King:      "OU",
	ProPawn:   "TO",
	ProLance:  "NY",
	ProKnight: "NK",
	ProSilver: "NG",
	Horse:     "UM",
	Dragon:    "RY",
}

// csaCodeToPieceType is the reverse of csaPieceCode.
var csaCodeToPieceType = func() map[string]PieceType {
	m := make(map[string]PieceType, PtLength)
	for pt, code := range csaPieceCode {
		if code != "" && code != "--" {
			m[code] = PieceType(pt)
		}
	}
	return m
}()

// csaSign returns CSA's side-to-move marker: "+" for Black, "-" for White.
func csaSign(c Color) string {
	if c == White {
		return "-"
	}
	return "+"
}

// csaSquare renders sq as CSA's two decimal digits, file then rank, both
// 1-indexed. The file digit is identical to USI's; only the rank differs,
// spelled as a digit ("1".."9") instead of USI's letter ("a".."i").
func csaSquare(sq Square) string {
	return sq.FileOf().String() + strconv.Itoa(int(sq.RankOf())+1)
}

// parseCsaSquare parses a two-digit CSA square, returning SqNone if s is
// not a pair of digits in range, or is "00" (the drop marker, handled by
// the caller).
func parseCsaSquare(s string) Square {
	if len(s) != 2 {
		return SqNone
	}
	f := FileOf(s[0])
	if f == FileNone {
		return SqNone
	}
	rankDigit := s[1]
	if rankDigit < '1' || rankDigit > '9' {
		return SqNone
	}
	return SquareOf(f, Rank(rankDigit-'1'))
}

// MoveToCsa renders m in CSA notation ("<sign><from><to><piece>", e.g.
// "+7776FU", drops spelling "00" for the origin square) as played by
// mover. The piece code always names the moved piece's post-move form -
// CSA has no separate promotion marker, unlike USI's trailing "+".
func MoveToCsa(m Move, mover Color) string {
	if !m.IsValid() {
		return ""
	}
	var b strings.Builder
	b.WriteString(csaSign(mover))
	if m.IsDrop() {
		b.WriteString("00")
		b.WriteString(csaSquare(m.To()))
		b.WriteString(csaPieceCode[m.DroppedPiece()])
		return b.String()
	}
	b.WriteString(csaSquare(m.From()))
	b.WriteString(csaSquare(m.To()))
	pt := m.MovedPiece()
	if m.IsPromotion() {
		pt = pt.Promote()
	}
	b.WriteString(csaPieceCode[pt])
	return b.String()
}

// ParseCsa resolves a CSA move string against the legal moves of p,
// returning MoveNone if s does not name one of them. The leading sign is
// optional on input - it is redundant with p's side to move - but is
// verified against it when present.
func ParseCsa(p *position.Position, s string) Move {
	s = strings.TrimSpace(s)
	sign := ""
	if strings.HasPrefix(s, "+") || strings.HasPrefix(s, "-") {
		sign = s[:1]
		s = s[1:]
	}
	if len(s) != 6 {
		return MoveNone
	}
	fromStr, toStr, code := s[0:2], s[2:4], s[4:6]
	to := parseCsaSquare(toStr)
	if to == SqNone {
		return MoveNone
	}
	pt, ok := csaCodeToPieceType[code]
	if !ok {
		return MoveNone
	}

	mover := p.NextPlayer()
	if sign != "" && sign != csaSign(mover) {
		return MoveNone
	}

	legal := movegen.GenerateLegalMoves(p, movegen.GenAll)
	for i := 0; i < legal.Len(); i++ {
		cand := legal.At(i)
		if cand.To() != to {
			continue
		}
		if fromStr == "00" {
			if cand.IsDrop() && cand.DroppedPiece() == pt {
				return cand
			}
			continue
		}
		if cand.IsDrop() {
			continue
		}
		from := parseCsaSquare(fromStr)
		if from == SqNone || cand.From() != from {
			continue
		}
		movedAs := cand.MovedPiece()
		if cand.IsPromotion() {
			movedAs = movedAs.Promote()
		}
		if movedAs == pt {
			return cand
		}
	}
	return MoveNone
}
