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

package position

import (
	"os"
	"path"
	"runtime"
	"testing"
	"time"

	"github.com/op/go-logging"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/yomigo-shogi/yomigo/internal/config"
	myLogging "github.com/yomigo-shogi/yomigo/internal/logging"
	. "github.com/yomigo-shogi/yomigo/internal/types"

	"github.com/stretchr/testify/assert"
)

var out = message.NewPrinter(language.German)
var logTest *logging.Logger

// make tests run in the projects root directory
func init() {
	_, filename, _, _ := runtime.Caller(0)
	dir := path.Join(path.Dir(filename), "../..")
	err := os.Chdir(dir)
	if err != nil {
		panic(err)
	}
}

// Setup the tests
func TestMain(m *testing.M) {
	config.Setup()
	logTest = myLogging.GetTestLog()
	code := m.Run()
	os.Exit(code)
}

func sq(s string) Square { return MakeSquare(s) }

func TestPositionCreation(t *testing.T) {
	p, err := NewPositionSfen(StartSfen)
	assert.NoError(t, err)
	assert.Equal(t, Black, p.SideToMove())
	assert.Equal(t, 0, p.GamePly())
	assert.Equal(t, Value(0), p.Material(Black)-p.Material(White))
	assert.Equal(t, StartSfen, p.Sfen())

	p2 := NewPosition()
	assert.Equal(t, p.Sfen(), p2.Sfen())
}

func TestPositionSfenRoundTrip(t *testing.T) {
	sfen := "lnsgkgsnl/1r5b1/ppppppppp/9/9/9/PPPPPPPPP/1B5R1/LNSGKGSNL w 2Pp 12"
	p, err := NewPositionSfen(sfen)
	assert.NoError(t, err)
	assert.Equal(t, sfen, p.Sfen())
	assert.Equal(t, White, p.SideToMove())
	assert.True(t, p.Hand(Black).Exists(Pawn))
	assert.True(t, p.Hand(White).Exists(Pawn))
}

func TestPosition_DoUndoMove(t *testing.T) {
	p := NewPosition()
	startKey := p.ZobristKey()
	startSfen := p.Sfen()

	p.DoMove(CreateMove(sq("7g"), sq("7f"), Pawn, false))
	p.DoMove(CreateMove(sq("3c"), sq("3d"), Pawn, false))
	p.DoMove(CreateMove(sq("2g"), sq("2f"), Pawn, false))
	p.UndoMove()
	p.UndoMove()
	p.UndoMove()

	assert.Equal(t, startSfen, p.Sfen())
	assert.Equal(t, startKey, p.ZobristKey())
}

func TestPosition_DoMoveNormal(t *testing.T) {
	p := NewPosition()
	move := CreateMove(sq("7g"), sq("7f"), Pawn, false)
	p.DoMove(move)
	assert.Equal(t, White, p.SideToMove())
	assert.Equal(t, PieceNone, p.GetPiece(sq("7g")))
	assert.Equal(t, MakePiece(Black, Pawn), p.GetPiece(sq("7f")))
}

func TestPosition_DoMoveDrop(t *testing.T) {
	p, err := NewPositionSfen("8k/9/8P/9/9/9/9/9/8K b G 1")
	assert.NoError(t, err)
	move := CreateDrop(Gold, sq("1b"))
	assert.True(t, p.IsLegalMove(move))
	p.DoMove(move)
	assert.Equal(t, MakePiece(Black, Gold), p.GetPiece(sq("1b")))
	assert.False(t, p.Hand(Black).Exists(Gold))
	p.UndoMove()
	assert.True(t, p.Hand(Black).Exists(Gold))
	assert.Equal(t, PieceNone, p.GetPiece(sq("1b")))
}

func TestPosition_DoMovePromotion(t *testing.T) {
	p, err := NewPositionSfen("8k/9/8P/9/9/9/9/9/8K b - 1")
	assert.NoError(t, err)
	move := CreateMove(sq("1c"), sq("1b"), Pawn, true)
	p.DoMove(move)
	assert.Equal(t, MakePiece(Black, ProPawn), p.GetPiece(sq("1b")))
}

func TestPosition_IsAttacked(t *testing.T) {
	p, err := NewPositionSfen(StartSfen)
	assert.NoError(t, err)

	// 2h holds Black's rook and is covered by Black's silver on 3i
	assert.True(t, p.IsAttacked(sq("2h"), Black))
	// no piece reaches the center of an empty board from the start position
	assert.False(t, p.IsAttacked(sq("5e"), Black))
	assert.False(t, p.IsAttacked(sq("5e"), White))
}

func TestPosition_IsLegalMoves(t *testing.T) {
	p, err := NewPositionSfen(StartSfen)
	assert.NoError(t, err)

	// a pawn push is legal
	assert.True(t, p.IsLegalMove(CreateMove(sq("7g"), sq("7f"), Pawn, false)))
	// moving a piece that isn't on the origin square is not
	assert.False(t, p.IsLegalMove(CreateMove(sq("7f"), sq("7e"), Pawn, false)))
}

func TestPosition_WasLegalMove(t *testing.T) {
	p, err := NewPositionSfen(StartSfen)
	assert.NoError(t, err)

	p.DoMove(CreateMove(sq("7g"), sq("7f"), Pawn, false))
	assert.True(t, p.WasLegalMove())
	p.UndoMove()
}

func TestPositionGivesCheck(t *testing.T) {
	// lone pawn delivering check against an undefended king in the corner
	p, err := NewPositionSfen("8k/9/8P/9/9/9/9/9/8K b - 1")
	assert.NoError(t, err)
	assert.True(t, p.GivesCheck(CreateMove(sq("1c"), sq("1b"), Pawn, false)))

	// the same push, far from the king, is not a check
	p2, err := NewPositionSfen(StartSfen)
	assert.NoError(t, err)
	assert.False(t, p2.GivesCheck(CreateMove(sq("7g"), sq("7f"), Pawn, false)))

	// a drop delivering check
	p3, err := NewPositionSfen("8k/9/8P/9/9/9/9/9/8K b G 1")
	assert.NoError(t, err)
	assert.True(t, p3.GivesCheck(CreateDrop(Gold, sq("1b"))))
}

func TestPosition_CheckRepetitions(t *testing.T) {
	p := NewPosition()
	move := func(from, to string) {
		p.DoMove(CreateMove(sq(from), sq(to), King, false))
	}
	for i := 0; i < 4; i++ {
		move("5i", "5h")
		move("5a", "5b")
		move("5h", "5i")
		move("5b", "5a")
	}
	assert.Equal(t, RepDraw, p.Repetition())
}

func TestPosition_DoNullMove(t *testing.T) {
	p, err := NewPositionSfen(StartSfen)
	assert.NoError(t, err)
	before := p.Sfen()
	beforeKey := p.ZobristKey()
	p.DoNullMove()
	p.UndoNullMove()
	assert.Equal(t, before, p.Sfen())
	assert.Equal(t, beforeKey, p.ZobristKey())
}

func TestPosition_GamePhase(t *testing.T) {
	start, err := NewPositionSfen(StartSfen)
	assert.NoError(t, err)
	assert.InDelta(t, 1.0, start.GamePhaseFactor(), 1e-9)

	bare, err := NewPositionSfen("8k/9/9/9/9/9/9/9/8K b - 1")
	assert.NoError(t, err)
	assert.Less(t, bare.GamePhaseFactor(), 0.1)
}

// DoMove/UndoMove timing, kept from the teacher's benchmark-as-test style.
func TestTimingDoUndo(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping test in short mode.")
	}

	const rounds = 5
	const iterations uint64 = 1_000_000

	p7g7f := CreateMove(sq("7g"), sq("7f"), Pawn, false)
	p3c3d := CreateMove(sq("3c"), sq("3d"), Pawn, false)
	p2g2f := CreateMove(sq("2g"), sq("2f"), Pawn, false)
	p8b3b := CreateMove(sq("8b"), sq("3b"), Rook, false)

	for r := 1; r <= rounds; r++ {
		out.Printf("Round %d\n", r)
		p := NewPosition()
		start := time.Now()
		for i := uint64(0); i < iterations; i++ {
			p.DoMove(p7g7f)
			p.DoMove(p3c3d)
			p.DoMove(p2g2f)
			p.DoMove(p8b3b)
			p.UndoMove()
			p.UndoMove()
			p.UndoMove()
			p.UndoMove()
		}
		elapsed := time.Since(start)
		out.Printf("DoMove/UndoMove took %d ns for %d iterations with 4 do/undo pairs\n", elapsed.Nanoseconds(), iterations)
		out.Printf("DoMove/UndoMove took %d ns per do/undo pair\n", elapsed.Nanoseconds()/int64(iterations*4))
	}
}

func TestTimingIsAttacked(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping test in short mode.")
	}

	const rounds = 5
	const iterations uint64 = 100_000

	p, err := NewPositionSfen(StartSfen)
	assert.NoError(t, err)

	var res bool
	for r := 1; r <= rounds; r++ {
		out.Printf("Round %d\n", r)
		start := time.Now()
		for i := uint64(0); i < iterations; i++ {
			for f := File(0); f < FileLength; f++ {
				for rk := Rank(0); rk < RankLength; rk++ {
					s := SquareOf(f, rk)
					res = p.IsAttacked(s, White) || p.IsAttacked(s, Black)
				}
			}
		}
		elapsed := time.Since(start)
		out.Printf("Test took %s for %d iterations\n", elapsed, iterations)
	}
	_ = res
}
