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

// Package position represents data structures and functions for a
// Shogi board: an 81-square piece array plus two bitboard sets (one
// per color, one per piece type) shadowing it, the pieces each side
// holds in hand, and the Zobrist keys that identify the position for
// the transposition table and repetition detection. Create a new
// instance with NewPosition() for the Shogi starting position, or
// NewPositionSfen(sfen) for an arbitrary one.
package position

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/yomigo-shogi/yomigo/internal/assert"
	. "github.com/yomigo-shogi/yomigo/internal/bitboard"
	"github.com/yomigo-shogi/yomigo/internal/hand"
	. "github.com/yomigo-shogi/yomigo/internal/types"
)

// StartSfen is the SFEN of the standard Shogi starting position.
const StartSfen = "lnsgkgsnl/1r5b1/ppppppppp/9/9/9/PPPPPPPPP/1B5R1/LNSGKGSNL b - 1"

// tri-state cached-flag values, mirroring the teacher's flagTBD /
// flagFalse / flagTrue idiom for lazily-computed, invalidate-on-move
// booleans.
const (
	flagTBD = iota
	flagFalse
	flagTrue
)

const maxHistory = 1024

// stateInfo is one frame of the position's undo stack. It snapshots
// exactly what DoMove can't cheaply recompute on UndoMove: the keys,
// the piece captured (if any) and the checkers bitboard/cached-check
// flag as they stood immediately before the move.
type stateInfo struct {
	move            Move
	capturedPiece   Piece
	boardKeyBefore  Key
	handKeyBefore   Key
	checkersBefore  Bitboard
	checkFlagBefore int
	keyAfter        Key // boardKey^handKey^sideKey once this move was made
	givesCheck      bool
}

// RepetitionOutcome classifies what a Position's move history implies
// about the current position recurring, from the point of view of the
// side now on move.
type RepetitionOutcome int

const (
	// RepNone means the position has not repeated (enough) to matter.
	RepNone RepetitionOutcome = iota
	// RepDraw is ordinary sennichite: the same position (board, both
	// hands and side to move) occurred four times.
	RepDraw
	// RepWin means the opponent repeated while perpetually checking -
	// that is illegal, and the opponent loses.
	RepWin
	// RepLose means the side to move is the one who has been giving
	// perpetual check through the repetition, and loses.
	RepLose
	// RepSuperior/RepInferior flag a same-board-and-side recurrence
	// with a strictly better/worse hand than last time - useful to
	// search as an early cutoff hint, never as a legal termination.
	RepSuperior
	RepInferior
)

// Position holds one Shogi board, the pieces in hand for both sides,
// and the linear move-history stack used to undo moves and to detect
// repetitions during search.
type Position struct {
	board      [SqLength]Piece
	piecesBb   [ColorLength][PtLength]Bitboard
	colorBb    [ColorLength]Bitboard
	occupiedBb Bitboard
	hand       [ColorLength]hand.Hand

	kingSquare [ColorLength]Square
	sideToMove Color
	gamePly    int
	moveNumber int

	boardKey Key
	handKey  Key

	material [ColorLength]Value

	checkersBb   Bitboard
	checkFlag    int
	lastCaptured Piece

	history        [maxHistory]stateInfo
	historyCounter int
}

// NewPosition returns the Shogi starting position.
func NewPosition() *Position {
	p, err := NewPositionSfen(StartSfen)
	if err != nil {
		panic(err)
	}
	return p
}

// NewPositionSfen parses a full SFEN string (board, side to move, hand,
// move number) into a new Position.
func NewPositionSfen(sfen string) (*Position, error) {
	p := &Position{}
	if err := p.setupSfen(sfen); err != nil {
		return nil, err
	}
	return p, nil
}

func (p *Position) setupSfen(sfen string) error {
	fields := strings.Fields(strings.TrimSpace(sfen))
	if len(fields) < 2 {
		return fmt.Errorf("position: sfen %q has fewer than 2 fields", sfen)
	}
	boardPart := fields[0]
	sidePart := fields[1]
	handPart := "-"
	if len(fields) >= 3 {
		handPart = fields[2]
	}
	moveNo := 1
	if len(fields) >= 4 {
		if n, err := strconv.Atoi(fields[3]); err == nil {
			moveNo = n
		}
	}

	*p = Position{}
	if err := p.setupBoard(boardPart); err != nil {
		return err
	}
	switch sidePart {
	case "b":
		p.sideToMove = Black
	case "w":
		p.sideToMove = White
	default:
		return fmt.Errorf("position: invalid side to move %q", sidePart)
	}
	if err := p.setupHand(handPart); err != nil {
		return err
	}
	p.moveNumber = moveNo
	p.gamePly = 0
	p.checkFlag = flagTBD
	p.checkersBb = p.computeCheckers(p.sideToMove)
	return nil
}

var sfenLetterToPieceType = map[byte]PieceType{
	'P': Pawn, 'L': Lance, 'N': Knight, 'S': Silver,
	'B': Bishop, 'R': Rook, 'G': Gold, 'K': King,
}

func (p *Position) setupBoard(board string) error {
	rows := strings.Split(board, "/")
	if len(rows) != int(RankLength) {
		return fmt.Errorf("position: board %q does not have 9 ranks", board)
	}
	for ri, row := range rows {
		r := Rank(ri)
		fileIdx := 0 // 0 = file9, counting down to file1 left-to-right
		i := 0
		for i < len(row) {
			c := row[i]
			switch {
			case c >= '1' && c <= '9':
				fileIdx += int(c - '0')
				i++
			case c == '+':
				if i+1 >= len(row) {
					return fmt.Errorf("position: dangling '+' in row %q", row)
				}
				pt, ok := sfenLetterToPieceType[upperAscii(row[i+1])]
				if !ok || !pt.CanPromote() {
					return fmt.Errorf("position: invalid promoted piece in row %q", row)
				}
				pt = pt.Promote()
				col := colorOfLetter(row[i+1])
				f := File(int(FileLength) - 1 - fileIdx)
				p.putPiece(MakePiece(col, pt), SquareOf(f, r))
				fileIdx++
				i += 2
			default:
				pt, ok := sfenLetterToPieceType[upperAscii(c)]
				if !ok {
					return fmt.Errorf("position: invalid piece letter %q", string(c))
				}
				col := colorOfLetter(c)
				f := File(int(FileLength) - 1 - fileIdx)
				p.putPiece(MakePiece(col, pt), SquareOf(f, r))
				fileIdx++
				i++
			}
		}
		if fileIdx != int(FileLength) {
			return fmt.Errorf("position: row %q does not cover 9 files", row)
		}
	}
	return nil
}

func upperAscii(b byte) byte {
	if b >= 'a' && b <= 'z' {
		return b - 'a' + 'A'
	}
	return b
}

func colorOfLetter(b byte) Color {
	if b >= 'a' && b <= 'z' {
		return White
	}
	return Black
}

func (p *Position) setupHand(part string) error {
	if part == "-" || part == "" {
		return nil
	}
	i := 0
	for i < len(part) {
		count := 1
		start := i
		for i < len(part) && part[i] >= '0' && part[i] <= '9' {
			i++
		}
		if i > start {
			n, err := strconv.Atoi(part[start:i])
			if err != nil {
				return fmt.Errorf("position: invalid hand count in %q", part)
			}
			count = n
		}
		if i >= len(part) {
			return fmt.Errorf("position: dangling hand count in %q", part)
		}
		pt, ok := sfenLetterToPieceType[upperAscii(part[i])]
		if !ok || pt == King {
			return fmt.Errorf("position: invalid hand piece in %q", part)
		}
		col := colorOfLetter(part[i])
		p.hand[col].Set(pt, uint32(count))
		p.handKey ^= handKeyFor(col, pt, uint32(count))
		i++
	}
	return nil
}

// Sfen renders the full position (board, side, hand, move number).
func (p *Position) Sfen() string {
	var b strings.Builder
	for r := RankA; r < RankLength; r++ {
		empty := 0
		for fi := int(FileLength) - 1; fi >= 0; fi-- {
			sq := SquareOf(File(fi), r)
			pc := p.board[sq]
			if pc == PieceNone {
				empty++
				continue
			}
			if empty > 0 {
				b.WriteString(strconv.Itoa(empty))
				empty = 0
			}
			b.WriteString(pc.String())
		}
		if empty > 0 {
			b.WriteString(strconv.Itoa(empty))
		}
		if r != RankLength-1 {
			b.WriteByte('/')
		}
	}
	b.WriteByte(' ')
	b.WriteString(p.sideToMove.String())
	b.WriteByte(' ')
	b.WriteString(p.handSfen())
	b.WriteByte(' ')
	b.WriteString(strconv.Itoa(p.moveNumber))
	return b.String()
}

var handOrder = []PieceType{Rook, Bishop, Gold, Silver, Knight, Lance, Pawn}

func (p *Position) handSfen() string {
	var b strings.Builder
	for _, c := range [ColorLength]Color{Black, White} {
		for _, pt := range handOrder {
			n := p.hand[c].Count(pt)
			if n == 0 {
				continue
			}
			if n > 1 {
				b.WriteString(strconv.Itoa(int(n)))
			}
			s := pt.String()
			if c == White {
				s = strings.ToLower(s)
			}
			b.WriteString(s)
		}
	}
	if b.Len() == 0 {
		return "-"
	}
	return b.String()
}

func (p *Position) String() string { return p.Sfen() }

// StringBoard renders a human-readable 9x9 board diagram.
func (p *Position) StringBoard() string {
	var b strings.Builder
	for r := RankA; r < RankLength; r++ {
		for fi := int(FileLength) - 1; fi >= 0; fi-- {
			sq := SquareOf(File(fi), r)
			fmt.Fprintf(&b, "%3s", p.board[sq].String())
		}
		b.WriteByte('\n')
	}
	return b.String()
}

// putPiece places pc on sq, updating the board array, both bitboard
// views and the incremental board key/material. sq must be empty.
func (p *Position) putPiece(pc Piece, sq Square) {
	if assert.DEBUG {
		assert.Assert(p.board[sq] == PieceNone, "putPiece onto occupied square %s", sq.String())
	}
	p.board[sq] = pc
	bb := SquareBb(sq)
	c := pc.ColorOf()
	pt := pc.TypeOf()
	p.piecesBb[c][pt] = p.piecesBb[c][pt].Or(bb)
	p.colorBb[c] = p.colorBb[c].Or(bb)
	p.occupiedBb = p.occupiedBb.Or(bb)
	p.boardKey ^= pieceKey(pc, sq)
	p.material[c] += Value(pt.Value())
	if pt == King {
		p.kingSquare[c] = sq
	}
}

// removePiece clears sq, which must hold pc.
func (p *Position) removePiece(pc Piece, sq Square) {
	if assert.DEBUG {
		assert.Assert(p.board[sq] == pc, "removePiece mismatch on %s", sq.String())
	}
	p.board[sq] = PieceNone
	bb := SquareBb(sq)
	c := pc.ColorOf()
	pt := pc.TypeOf()
	p.piecesBb[c][pt] = p.piecesBb[c][pt].AndNot(bb)
	p.colorBb[c] = p.colorBb[c].AndNot(bb)
	p.occupiedBb = p.occupiedBb.AndNot(bb)
	p.boardKey ^= pieceKey(pc, sq)
	p.material[c] -= Value(pt.Value())
}

func (p *Position) addToHand(c Color, pt PieceType) {
	before := p.hand[c].Count(pt)
	p.hand[c].Add(pt)
	p.handKey ^= handKeyFor(c, pt, before) ^ handKeyFor(c, pt, before+1)
}

func (p *Position) subFromHand(c Color, pt PieceType) {
	before := p.hand[c].Count(pt)
	p.hand[c].Sub(pt)
	p.handKey ^= handKeyFor(c, pt, before) ^ handKeyFor(c, pt, before-1)
}

// sideKey folds the side-to-move bit into the combined Zobrist key.
func sideKey(c Color) Key {
	if c == White {
		return zobristSide
	}
	return 0
}

// ZobristKey returns the combined board+hand+side key identifying the
// position, as used by the transposition table.
func (p *Position) ZobristKey() Key {
	return (p.boardKey ^ p.handKey) | sideKey(p.sideToMove)
}

// repetitionKey is the key used for sennichite comparison: identical to
// ZobristKey, spelled out separately since the two serve different
// purposes (hash bucketing vs. exact-position identity) even though
// they happen to compute the same value.
func (p *Position) repetitionKey() Key {
	return p.ZobristKey()
}

// PawnKey returns a key over pawn placement only (both colors), folded
// from the same piece/square table as ZobristKey. Used by the evaluator
// to cache pawn structure scores, which change far less often than the
// full position.
func (p *Position) PawnKey() Key {
	var key Key
	for c := Black; c < ColorLength; c++ {
		bb := p.piecesBb[c][Pawn]
		for bb != Zero {
			var sq Square
			sq, bb = bb.PopLsb()
			key ^= pieceKey(MakePiece(c, Pawn), sq)
		}
	}
	return key
}

// DoMove applies m (a board move or a drop) to the position, pushing a
// new stateInfo frame onto the undo stack.
func (p *Position) DoMove(m Move) {
	if assert.DEBUG {
		assert.Assert(p.historyCounter < maxHistory, "position: history stack exhausted")
	}
	st := &p.history[p.historyCounter]
	st.move = m
	st.boardKeyBefore = p.boardKey
	st.handKeyBefore = p.handKey
	st.checkersBefore = p.checkersBb
	st.checkFlagBefore = p.checkFlag
	st.capturedPiece = PieceNone

	us := p.sideToMove
	them := us.Flip()
	to := m.To()

	if m.IsDrop() {
		pt := m.DroppedPiece()
		p.putPiece(MakePiece(us, pt), to)
		p.subFromHand(us, pt)
	} else {
		from := m.From()
		moved := m.MovedPiece()
		pc := MakePiece(us, moved)
		captured := p.board[to]
		if captured != PieceNone {
			st.capturedPiece = captured
			p.removePiece(captured, to)
			p.addToHand(us, captured.TypeOf())
		}
		p.removePiece(pc, from)
		final := pc
		if m.IsPromotion() {
			final = pc.Promote()
		}
		p.putPiece(final, to)
	}

	p.lastCaptured = st.capturedPiece
	p.sideToMove = them
	p.gamePly++
	p.checkFlag = flagTBD
	p.checkersBb = p.computeCheckers(them)
	st.givesCheck = !p.checkersBb.IsEmpty()
	st.keyAfter = p.ZobristKey()
	p.historyCounter++
}

// UndoMove reverses the most recent DoMove.
func (p *Position) UndoMove() {
	if assert.DEBUG {
		assert.Assert(p.historyCounter > 0, "position: undo with empty history")
	}
	p.historyCounter--
	st := &p.history[p.historyCounter]
	m := st.move
	them := p.sideToMove
	us := them.Flip()
	to := m.To()

	if m.IsDrop() {
		pt := m.DroppedPiece()
		p.removePiece(MakePiece(us, pt), to)
		p.hand[us].Add(pt)
	} else {
		from := m.From()
		basePt := m.MovedPiece()
		pc := MakePiece(us, basePt)
		final := pc
		if m.IsPromotion() {
			final = pc.Promote()
		}
		p.removePiece(final, to)
		p.putPiece(pc, from)
		if st.capturedPiece != PieceNone {
			p.putPiece(st.capturedPiece, to)
			p.hand[us].Sub(st.capturedPiece.TypeOf())
		}
	}

	p.boardKey = st.boardKeyBefore
	p.handKey = st.handKeyBefore
	p.sideToMove = us
	p.gamePly--
	p.checkersBb = st.checkersBefore
	p.checkFlag = st.checkFlagBefore
	p.lastCaptured = PieceNone
	if p.historyCounter > 0 {
		p.lastCaptured = p.history[p.historyCounter-1].capturedPiece
	}
}

// DoNullMove passes the turn without moving, as null-move pruning's
// recursive search call needs.
func (p *Position) DoNullMove() {
	st := &p.history[p.historyCounter]
	st.move = MoveNull
	st.boardKeyBefore = p.boardKey
	st.handKeyBefore = p.handKey
	st.checkersBefore = p.checkersBb
	st.checkFlagBefore = p.checkFlag
	st.capturedPiece = PieceNone
	p.sideToMove = p.sideToMove.Flip()
	p.gamePly++
	p.checkFlag = flagTBD
	p.checkersBb = p.computeCheckers(p.sideToMove)
	st.givesCheck = !p.checkersBb.IsEmpty()
	st.keyAfter = p.ZobristKey()
	p.historyCounter++
}

// UndoNullMove reverses DoNullMove.
func (p *Position) UndoNullMove() {
	p.historyCounter--
	st := &p.history[p.historyCounter]
	p.sideToMove = p.sideToMove.Flip()
	p.gamePly--
	p.checkersBb = st.checkersBefore
	p.checkFlag = st.checkFlagBefore
}

// attackersTo returns every square occupied by a by-color piece that
// attacks sq given board occupancy occ. Stepping pieces use the
// standard reverse-color trick (the squares a same-color piece at sq
// would step to are exactly the squares an enemy piece stepping onto
// sq could have come from); sliders are symmetric so no such trick is
// needed for them.
func (p *Position) attackersTo(sq Square, occ Bitboard, by Color) Bitboard {
	enemy := by.Flip()
	var att Bitboard
	att = att.Or(PawnAttacks[enemy][sq].And(p.piecesBb[by][Pawn]))
	att = att.Or(KnightAttacks[enemy][sq].And(p.piecesBb[by][Knight]))
	att = att.Or(SilverAttacks[enemy][sq].And(p.piecesBb[by][Silver]))
	golds := p.piecesBb[by][Gold].
		Or(p.piecesBb[by][ProPawn]).
		Or(p.piecesBb[by][ProLance]).
		Or(p.piecesBb[by][ProKnight]).
		Or(p.piecesBb[by][ProSilver])
	att = att.Or(GoldAttacks[enemy][sq].And(golds))
	att = att.Or(KingAttacks[sq].And(p.piecesBb[by][King]))
	att = att.Or(LanceAttacks(enemy, sq, occ).And(p.piecesBb[by][Lance]))
	att = att.Or(AttacksBb(Bishop, sq, occ).And(p.piecesBb[by][Bishop]))
	att = att.Or(AttacksBb(Rook, sq, occ).And(p.piecesBb[by][Rook]))
	att = att.Or(AttacksBb(Horse, sq, occ).And(p.piecesBb[by][Horse]))
	att = att.Or(AttacksBb(Dragon, sq, occ).And(p.piecesBb[by][Dragon]))
	return att
}

// AttacksTo returns every piece of color by attacking sq on the
// current board.
func (p *Position) AttacksTo(sq Square, by Color) Bitboard {
	return p.attackersTo(sq, p.occupiedBb, by)
}

// IsAttacked reports whether sq is attacked by color by.
func (p *Position) IsAttacked(sq Square, by Color) bool {
	return !p.AttacksTo(sq, by).IsEmpty()
}

func (p *Position) computeCheckers(side Color) Bitboard {
	return p.AttacksTo(p.kingSquare[side], side.Flip())
}

// Checkers returns the attackers currently giving check to the side to
// move, empty if not in check.
func (p *Position) Checkers() Bitboard {
	return p.checkersBb
}

// HasCheck reports whether the side to move is in check. The result is
// cached per position via the flagTBD/flagFalse/flagTrue idiom, since
// move generation and search both ask repeatedly within the same node.
func (p *Position) HasCheck() bool {
	if p.checkFlag == flagTBD {
		if p.checkersBb.IsEmpty() {
			p.checkFlag = flagFalse
		} else {
			p.checkFlag = flagTrue
		}
	}
	return p.checkFlag == flagTrue
}

// GivesCheck reports whether making m would check the opponent. It is
// computed by playing and immediately unplaying the move - simple and
// always correct, at the cost of a full do/undo pair.
func (p *Position) GivesCheck(m Move) bool {
	p.DoMove(m)
	check := p.HasCheck()
	p.UndoMove()
	return check
}

// IsLegalMove reports whether the pseudo-legal move m leaves the
// mover's own king safe. It first rejects a board move whose origin does
// not hold the mover's piece of the encoded type or whose destination
// holds one of the mover's own pieces, and a drop whose piece is not in
// hand or whose target is occupied; it does not check that a slider's
// path is clear. Move generators that only produce legal moves
// (captures/quiets/evasions/drops that are already filtered) don't need
// this; it exists for callers validating a move from an external
// source (e.g. a USI "position moves" line or a TT move hint).
func (p *Position) IsLegalMove(m Move) bool {
	us := p.sideToMove
	if m.IsDrop() {
		if !p.hand[us].Exists(m.DroppedPiece()) || p.board[m.To()] != PieceNone {
			return false
		}
	} else if p.board[m.From()] != MakePiece(us, m.MovedPiece()) ||
		(p.board[m.To()] != PieceNone && p.board[m.To()].ColorOf() == us) {
		return false
	}
	p.DoMove(m)
	legal := !p.IsAttacked(p.kingSquare[us], us.Flip())
	p.UndoMove()
	return legal
}

// WasLegalMove reports whether the move that led to the current
// position left its mover's own king safe - used right after DoMove
// instead of IsLegalMove's do/undo pair, since the move has already
// been made.
func (p *Position) WasLegalMove() bool {
	if p.historyCounter == 0 {
		return true
	}
	mover := p.sideToMove.Flip()
	return !p.IsAttacked(p.kingSquare[mover], p.sideToMove)
}

// Repetition classifies the current position against its own move
// history (see RepetitionOutcome).
func (p *Position) Repetition() RepetitionOutcome {
	if p.historyCounter < 4 {
		return RepNone
	}
	cur := p.repetitionKey()
	count := 1
	mover := p.sideToMove.Flip()
	allChecksByMover := true
	for i := p.historyCounter - 1; i >= 0; i-- {
		st := &p.history[i]
		if st.move == MoveNull {
			continue
		}
		// plies at the same parity as the last move were made by the
		// same "mover" whose perpetual-check streak we are tracking.
		samePartyPly := (p.historyCounter-1-i)%2 == 0
		if samePartyPly && !st.givesCheck {
			allChecksByMover = false
		}
		if st.keyAfter == cur {
			count++
			if count >= 4 {
				if allChecksByMover {
					if mover == p.sideToMove {
						return RepLose
					}
					return RepWin
				}
				return RepDraw
			}
		}
	}
	return RepNone
}

// --- accessors -------------------------------------------------------

func (p *Position) NextPlayer() Color                       { return p.sideToMove }
func (p *Position) SideToMove() Color                       { return p.sideToMove }
func (p *Position) GetPiece(sq Square) Piece                { return p.board[sq] }
func (p *Position) PiecesBb(c Color, pt PieceType) Bitboard { return p.piecesBb[c][pt] }
func (p *Position) OccupiedAll() Bitboard                   { return p.occupiedBb }
func (p *Position) OccupiedBb(c Color) Bitboard             { return p.colorBb[c] }
func (p *Position) KingSquare(c Color) Square               { return p.kingSquare[c] }
func (p *Position) Hand(c Color) hand.Hand                  { return p.hand[c] }
func (p *Position) Material(c Color) Value                  { return p.material[c] }
func (p *Position) GamePly() int                            { return p.gamePly }
func (p *Position) MoveNumber() int                          { return p.moveNumber }
func (p *Position) LastMove() Move {
	if p.historyCounter == 0 {
		return MoveNone
	}
	return p.history[p.historyCounter-1].move
}
func (p *Position) LastCapturedPiece() Piece { return p.lastCaptured }
func (p *Position) WasCapturingMove() bool   { return p.lastCaptured != PieceNone }

// IsCapturingMove reports whether move, if played now, would capture an
// enemy piece. A drop never captures.
func (p *Position) IsCapturingMove(move Move) bool {
	return !move.IsDrop() && p.board[move.To()] != PieceNone
}

// MaterialNonPawn returns c's material value excluding pawns and the
// king - used by null-move pruning to recognize pawn-and-king-only
// endings where the null-move assumption (it is never worse to have an
// extra move) tends to fail due to zugzwang.
func (p *Position) MaterialNonPawn(c Color) Value {
	var v Value
	for pt := Lance; pt < PtLength; pt++ {
		if pt == King {
			continue
		}
		v += Value(p.piecesBb[c][pt].PopCount()) * Value(pt.Value())
	}
	return v
}

// GamePhase estimates how far the game has progressed from the opening,
// weighted by gamePhaseWeight. Used to taper evaluation and
// search-pruning margins between midgame and endgame.
func (p *Position) GamePhase() int {
	phase := 0
	for c := Black; c < ColorLength; c++ {
		for pt := Pawn; pt < PtLength; pt++ {
			n := p.piecesBb[c][pt].PopCount()
			phase += n * gamePhaseWeight(pt)
		}
	}
	return phase
}

func gamePhaseWeight(pt PieceType) int {
	switch pt {
	case Bishop, Rook, Horse, Dragon:
		return 5
	default:
		return 1
	}
}

// startingGamePhase is GamePhase() for the initial position (9 pawns,
// 2 each of lance/knight/silver/gold, 1 bishop, 1 rook and the king,
// weighted by gamePhaseWeight, for both sides).
const startingGamePhase = 56

// GamePhaseFactor normalizes GamePhase into 0 (bare endgame) .. 1
// (opening), for callers that taper a budget or margin rather than an
// evaluation score.
func (p *Position) GamePhaseFactor() float64 {
	f := float64(p.GamePhase()) / float64(startingGamePhase)
	if f > 1 {
		f = 1
	}
	if f < 0 {
		f = 0
	}
	return f
}

// Clone returns a deep copy of the position, independent of the
// original's undo stack.
func (p *Position) Clone() *Position {
	cp := *p
	return &cp
}
