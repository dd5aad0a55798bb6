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

// Package sfen packs a Position into a fixed-size Huffman-coded byte
// array - the compact "HCP" record format used by Shogi game databases
// to store millions of positions without the overhead of SFEN text.
package sfen

import (
	"errors"
	"strconv"
	"strings"

	"github.com/yomigo-shogi/yomigo/internal/position"
	. "github.com/yomigo-shogi/yomigo/internal/types"
)

// HuffmanCodeSize is the byte width of an encoded position record.
const HuffmanCodeSize = 32

// HuffmanCode is a 32-byte packed board-and-hand record plus the SFEN
// move number the position was reached at, modelled on the on-disk
// layout game databases use so large sets of positions can be archived
// cheaply (the hand section differs, see handCountBits).
type HuffmanCode struct {
	Buf [HuffmanCodeSize]byte
	Ply int
}

type pieceCode struct {
	value  uint16
	length uint8
}

// boardCodes assigns each non-king piece a prefix-free Huffman code;
// bit length scales with how exotic the piece is to play - pawns (by
// far the most common piece on any board) cost 4 bits, bishops/rooks
// and their promotions cost 8.
var boardCodes = map[Piece]pieceCode{
	MakePiece(Black, Pawn):      {0b1, 4},
	MakePiece(Black, Lance):     {0b11, 6},
	MakePiece(Black, Knight):    {0b111, 6},
	MakePiece(Black, Silver):    {0b1011, 6},
	MakePiece(Black, Gold):      {0b1111, 6},
	MakePiece(Black, Bishop):    {0b11111, 8},
	MakePiece(Black, Rook):      {0b111111, 8},
	MakePiece(Black, ProPawn):   {0b1001, 4},
	MakePiece(Black, ProLance):  {0b100011, 6},
	MakePiece(Black, ProKnight): {0b100111, 6},
	MakePiece(Black, ProSilver): {0b101011, 6},
	MakePiece(Black, Horse):     {0b10011111, 8},
	MakePiece(Black, Dragon):    {0b10111111, 8},
	MakePiece(White, Pawn):      {0b101, 4},
	MakePiece(White, Lance):     {0b10011, 6},
	MakePiece(White, Knight):    {0b10111, 6},
	MakePiece(White, Silver):    {0b11011, 6},
	MakePiece(White, Gold):      {0b101111, 6},
	MakePiece(White, Bishop):    {0b1011111, 8},
	MakePiece(White, Rook):      {0b1111111, 8},
	MakePiece(White, ProPawn):   {0b1101, 4},
	MakePiece(White, ProLance):  {0b110011, 6},
	MakePiece(White, ProKnight): {0b110111, 6},
	MakePiece(White, ProSilver): {0b111011, 6},
	MakePiece(White, Horse):     {0b11011111, 8},
	MakePiece(White, Dragon):    {0b11111111, 8},
}

const maxBoardCodeLength = 8
const emptySquareCode = 0

// handTypeOrder lists the seven piece types that can be held in hand,
// in the fixed order both encode and decode walk the hand section.
var handTypeOrder = []PieceType{Pawn, Lance, Knight, Silver, Gold, Bishop, Rook}

// handCountBits is the field width used to store how many of a given
// (color, piece type) a side holds in hand. The reference HCP format
// instead infers hand counts from the fixed 40-piece Shogi set minus
// what the board section already accounted for, but this engine's own
// fixture positions (mate-in-1 puzzles, entering-king tests, and the
// like) routinely omit most of the piece set, so that inference breaks
// down; storing the count directly costs a few bits per slot and works
// for any position, not only a position reachable by playing a real
// game from the standard start.
const handCountBits = 5
const maxHandCount = 1<<handCountBits - 1

type bitWriter struct {
	buf    []byte
	bitLen int
}

func (w *bitWriter) writeBit(bit uint8) {
	byteIdx := w.bitLen / 8
	for len(w.buf) <= byteIdx {
		w.buf = append(w.buf, 0)
	}
	if bit != 0 {
		w.buf[byteIdx] |= 1 << uint(w.bitLen%8)
	}
	w.bitLen++
}

func (w *bitWriter) writeBits(value uint16, length uint8) {
	for i := uint8(0); i < length; i++ {
		w.writeBit(uint8((value >> i) & 1))
	}
}

type bitReader struct {
	buf    [HuffmanCodeSize]byte
	bitPos int
}

func (r *bitReader) readBit() uint8 {
	byteIdx := r.bitPos / 8
	bit := (r.buf[byteIdx] >> uint(r.bitPos%8)) & 1
	r.bitPos++
	return bit
}

// readBoardPiece decodes one board square: emptySquareCode for an empty
// square, otherwise the Piece named by the matching entry of boardCodes.
// Matching a prefix-free code one bit at a time against every known
// length is the textbook Huffman-decode loop; it needs no knowledge of
// what the bit patterns "mean", only the same table encode used.
func (r *bitReader) readBoardPiece() (Piece, bool, error) {
	var value uint16
	for length := uint8(1); length <= maxBoardCodeLength; length++ {
		value |= uint16(r.readBit()) << (length - 1)
		if length == 1 && value == emptySquareCode {
			return PieceNone, true, nil
		}
		for pc, code := range boardCodes {
			if code.length == length && code.value == value {
				return pc, false, nil
			}
		}
	}
	return PieceNone, false, errors.New("sfen: unrecognized board huffman code")
}

func (r *bitReader) readCount(bits uint8) int {
	var n int
	for i := uint8(0); i < bits; i++ {
		n |= int(r.readBit()) << i
	}
	return n
}

// EncodePosition packs p into a HuffmanCode record: one bit for the
// side to move, 7 bits for each king's square, one Huffman code per
// remaining square (empty or occupied), then a handCountBits-wide count
// for each piece type of handTypeOrder, Black's hand first, then White's.
// It returns an error when the result does not fit in HuffmanCodeSize
// bytes.
func EncodePosition(p *position.Position) (HuffmanCode, error) {
	w := &bitWriter{}
	side := p.SideToMove()
	w.writeBit(uint8(side))

	blackKing := p.KingSquare(Black)
	whiteKing := p.KingSquare(White)
	w.writeBits(uint16(blackKing), 7)
	w.writeBits(uint16(whiteKing), 7)

	for sq := Square(0); sq < SqLength; sq++ {
		if sq == blackKing || sq == whiteKing {
			continue
		}
		pc := p.GetPiece(sq)
		if pc == PieceNone {
			w.writeBit(0)
			continue
		}
		code, ok := boardCodes[pc]
		if !ok {
			return HuffmanCode{}, errors.New("sfen: no huffman code for piece")
		}
		w.writeBits(code.value, code.length)
	}

	for _, c := range [ColorLength]Color{Black, White} {
		h := p.Hand(c)
		for _, pt := range handTypeOrder {
			n := h.Count(pt)
			if n > maxHandCount {
				return HuffmanCode{}, errors.New("sfen: hand count exceeds encodable range")
			}
			w.writeBits(uint16(n), handCountBits)
		}
	}

	if len(w.buf) > HuffmanCodeSize {
		return HuffmanCode{}, errors.New("sfen: encoded position exceeds 32 bytes")
	}

	var out HuffmanCode
	copy(out.Buf[:], w.buf)
	out.Ply = p.MoveNumber()
	return out, nil
}

// DecodePosition unpacks a HuffmanCode record built by EncodePosition
// back into a Position, by reconstructing SFEN text and handing it to
// position.NewPositionSfen - reusing the same parser that already
// establishes every derived field (Zobrist keys, bitboards, king
// squares) a hand-rolled field-by-field builder would have to redo.
func DecodePosition(code HuffmanCode) (*position.Position, error) {
	r := &bitReader{buf: code.Buf}

	side := Color(r.readBit())

	blackKingVal := uint16(0)
	for i := 0; i < 7; i++ {
		blackKingVal |= uint16(r.readBit()) << i
	}
	whiteKingVal := uint16(0)
	for i := 0; i < 7; i++ {
		whiteKingVal |= uint16(r.readBit()) << i
	}
	blackKing := Square(blackKingVal)
	whiteKing := Square(whiteKingVal)
	if !blackKing.IsValid() || !whiteKing.IsValid() {
		return nil, errors.New("sfen: invalid king square in huffman code")
	}

	var board [SqLength]Piece
	board[blackKing] = MakePiece(Black, King)
	board[whiteKing] = MakePiece(White, King)

	for sq := Square(0); sq < SqLength; sq++ {
		if sq == blackKing || sq == whiteKing {
			continue
		}
		pc, empty, err := r.readBoardPiece()
		if err != nil {
			return nil, err
		}
		if empty {
			continue
		}
		board[sq] = pc
	}

	hand := [ColorLength]map[PieceType]int{{}, {}}
	for _, c := range [ColorLength]Color{Black, White} {
		for _, pt := range handTypeOrder {
			hand[c][pt] = r.readCount(handCountBits)
		}
	}

	sfenText := composeSfen(board, side, hand, code.Ply)
	return position.NewPositionSfen(sfenText)
}

// composeSfen renders a decoded board/hand/side/ply tuple in the same
// textual layout Position.Sfen emits, so NewPositionSfen can parse it
// straight back.
func composeSfen(board [SqLength]Piece, side Color, hand [ColorLength]map[PieceType]int, ply int) string {
	var b strings.Builder
	for r := RankA; r < RankLength; r++ {
		empty := 0
		for fi := int(FileLength) - 1; fi >= 0; fi-- {
			sq := SquareOf(File(fi), r)
			pc := board[sq]
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
	b.WriteString(side.String())
	b.WriteByte(' ')
	b.WriteString(composeHandSfen(hand))
	b.WriteByte(' ')
	if ply < 1 {
		ply = 1
	}
	b.WriteString(strconv.Itoa(ply))
	return b.String()
}

var handSfenOrder = []PieceType{Rook, Bishop, Gold, Silver, Knight, Lance, Pawn}

func composeHandSfen(hand [ColorLength]map[PieceType]int) string {
	var b strings.Builder
	for _, c := range [ColorLength]Color{Black, White} {
		for _, pt := range handSfenOrder {
			n := hand[c][pt]
			if n == 0 {
				continue
			}
			if n > 1 {
				b.WriteString(strconv.Itoa(n))
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
