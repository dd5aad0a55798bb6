// MIT License
//
// Copyright (c) 2020-2026 Yomigo contributors
//
// Permission is hereby granted, free of charge, to any person obtaining a copy
// of this software and associated documentation files (the "Software"), to deal
// in the Software without restriction, including without limitation the rights
// to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
// copies of the Software, and to permit persons to whom the Software is
// furnished to do so, subject to the following conditions:
//
// The above copyright notice and this permission notice shall be included in all
// copies or substantial portions of the Software.
//
// THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
// IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
// FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
// AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
// LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
// OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE
// SOFTWARE.
package history

import (
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	. "github.com/yomigo-shogi/yomigo/internal/types"
)

var out = message.NewPrinter(language.German)

// lowPlyMaxPly bounds the low-ply table: only the first few plies from
// the root get their own dedicated quiet-move bonus.
const lowPlyMaxPly = 4

// PieceToHistory is a continuation-history unit table: given the piece
// type and destination square of a move played N plies ago, it scores
// how well a (piece, to) pair performed as a follow-up. Indexed by
// PieceType rather than the full color-qualified Piece to keep the
// four-deep Continuation table (one PieceToHistory per context piece,
// per context square) a few megabytes instead of tens.
type PieceToHistory [PtLength][SqLength]int32

// Continuation is the outer table for continuation history: indexed by
// the context move's (moved piece type, destination square), it yields
// the PieceToHistory scoring the move actually played at the current
// node.
type Continuation [PtLength][SqLength]PieceToHistory

// Get returns the inner table for the given context move.
func (c *Continuation) Get(contPiece PieceType, contTo Square) *PieceToHistory {
	return &c[contPiece][contTo]
}

// History is a data structure updated during search to provide the move
// picker with move-ordering information:
//   - Butterfly: [color][from][to] - the classic history heuristic.
//   - LowPly: [ply][from][to] for ply < lowPlyMaxPly - extra weight near
//     the root, where a quiet move's value is best attested.
//   - CounterMove: one recorded reply per [to][piece] of the move it
//     refutes.
//   - Capture: [moved][to][captured] - history for captures, parallel to
//     butterfly for quiets.
//   - Continuation: [contPiece][contTo] -> PieceToHistory - how a
//     (piece, to) pair performed as a follow-up to an earlier ply.
type History struct {
	Butterfly [2][SqLength][SqLength]int64
	LowPly    [lowPlyMaxPly][SqLength][SqLength]int64

	counterMove [SqLength][PtLength]Move

	Capture [PtLength][SqLength][PtLength]int64

	Continuation Continuation
}

// NewHistory creates a new History instance.
func NewHistory() *History {
	return &History{}
}

// Update records that move caused a beta cutoff at ply against a
// non-capture, bumping its butterfly (and, near the root, low-ply)
// score, and - if replyTo is a real move - recording move as the
// countermove for replyTo.
func (h *History) Update(us Color, move Move, ply int, depth int8, replyTo Move) {
	from, to := move.From(), move.To()
	bonus := int64(depth) * int64(depth)
	h.Butterfly[us][from][to] += bonus
	if ply < lowPlyMaxPly {
		h.LowPly[ply][from][to] += bonus
	}
	if replyTo != MoveNone {
		h.counterMove[replyTo.To()][replyTo.MovedPiece()] = move
	}
}

// Count returns the accumulated butterfly score for side us playing
// move.
func (h *History) Count(us Color, move Move) int64 {
	return h.Butterfly[us][move.From()][move.To()]
}

// LowPlyCount returns the low-ply bonus for move at the given ply, or 0
// once past lowPlyMaxPly.
func (h *History) LowPlyCount(ply int, move Move) int64 {
	if ply >= lowPlyMaxPly {
		return 0
	}
	return h.LowPly[ply][move.From()][move.To()]
}

// CounterMove returns the recorded reply to lastMove, or MoveNone if
// none has been recorded. Keyed by (to, moved-piece) rather than
// (from, to) of lastMove per spec, so the same reply is recalled
// regardless of where the countered piece started from.
func (h *History) CounterMove(lastMove Move) Move {
	if lastMove == MoveNone {
		return MoveNone
	}
	return h.counterMove[lastMove.To()][lastMove.MovedPiece()]
}

// UpdateCapture records that move, a capture of capturedType, caused a
// beta cutoff.
func (h *History) UpdateCapture(move Move, capturedType PieceType, depth int8) {
	h.Capture[move.MovedPiece()][move.To()][capturedType] += int64(depth) * int64(depth)
}

// CaptureCount returns the accumulated capture-history score for move
// capturing a piece of type capturedType.
func (h *History) CaptureCount(move Move, capturedType PieceType) int64 {
	return h.Capture[move.MovedPiece()][move.To()][capturedType]
}

// UpdateContinuation records that move, played as a follow-up to the
// context move (contPiece, contTo) some plies back, caused a beta
// cutoff.
func (h *History) UpdateContinuation(contPiece PieceType, contTo Square, move Move, depth int8) {
	if contPiece == PtNone {
		return
	}
	table := h.Continuation.Get(contPiece, contTo)
	table[move.MovedPiece()][move.To()] += int32(depth) * int32(depth)
}

// ContinuationCount returns the continuation-history score of move as a
// follow-up to the context move (contPiece, contTo).
func (h *History) ContinuationCount(contPiece PieceType, contTo Square, move Move) int64 {
	if contPiece == PtNone {
		return 0
	}
	table := h.Continuation.Get(contPiece, contTo)
	return int64(table[move.MovedPiece()][move.To()])
}

// Clear resets all history and countermove data, done once per new game.
func (h *History) Clear() {
	*h = History{}
}

func (h History) String() string {
	sb := strings.Builder{}
	for sf := Square(0); sf < SqNone; sf++ {
		for st := Square(0); st < SqNone; st++ {
			if h.Butterfly[Black][sf][st] == 0 && h.Butterfly[White][sf][st] == 0 {
				continue
			}
			sb.WriteString(out.Sprintf("Move=%s%s: ", sf.String(), st.String()))
			for c := Black; c <= White; c++ {
				count := h.Butterfly[c][sf][st]
				sb.WriteString(out.Sprintf("%s=%-7d ", c.String(), count))
			}
			sb.WriteString("\n")
		}
	}
	return sb.String()
}
