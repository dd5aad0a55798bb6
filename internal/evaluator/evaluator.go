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
package evaluator

import (
	"fmt"
	"strings"

	"github.com/op/go-logging"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	. "github.com/yomigo-shogi/yomigo/internal/bitboard"
	"github.com/yomigo-shogi/yomigo/internal/config"
	myLogging "github.com/yomigo-shogi/yomigo/internal/logging"
	"github.com/yomigo-shogi/yomigo/internal/position"
	. "github.com/yomigo-shogi/yomigo/internal/types"
)

var out = message.NewPrinter(language.German)

// Evaluator holds the data and heuristics used to turn a Position into
// a Value, from the view of the side to move. Create one with
// NewEvaluator() and call Evaluate() per position.
type Evaluator struct {
	log *logging.Logger

	position        *position.Position
	gamePhaseFactor float64
	us              Color
	them            Color
	ourKing         Square
	theirKing       Square
	kingRing        [ColorLength]Bitboard
	allPieces       Bitboard
	ourPieces       Bitboard

	// usAttacks/themAttacks are the union of every attack bitboard for
	// each side, computed once per evaluation when
	// config.Settings.Eval.UseAttacksInEval is set - everything that
	// reads them (mobility, king safety) shares the one computation.
	usAttacks   Bitboard
	themAttacks Bitboard

	score Score

	pawnCache *pawnCache
}

// to avoid object creation and memory allocation during evaluation we
// reuse this tmp Score.
var tmpScore = Score{}

// maxGamePhase mirrors Position.GamePhase()'s ceiling (the opening
// position's phase weight) - kept here rather than exported from
// position so the lazy-eval threshold table can be sized at init.
const maxGamePhase = 56

// centerSquares is the central 3x3 block bishops/horses get a bonus for
// seeing, roughly the board's most contested area.
var centerSquares = FileBb[File4].Or(FileBb[File5]).Or(FileBb[File6]).
	And(RankBb[RankD].Or(RankBb[RankE]).Or(RankBb[RankF]))

// behindDir[c] is the direction a piece of color c retreats in - the
// square a pawn must stand on to "shield" a piece of that color.
var behindDir = [ColorLength]Direction{South, North}

// pre-computed list.
var threshold [maxGamePhase + 1]int16

// initialize pre-computed values.
func init() {
	for i := 0; i <= maxGamePhase; i++ {
		gamePhaseFactor := float64(i) / maxGamePhase
		threshold[i] = config.Settings.Eval.LazyEvalThreshold + int16(float64(config.Settings.Eval.LazyEvalThreshold)*gamePhaseFactor)
	}
}

// NewEvaluator creates a new instance of an Evaluator.
func NewEvaluator() *Evaluator {
	e := &Evaluator{
		log:       myLogging.GetLog(),
		pawnCache: nil,
	}
	if config.Settings.Eval.UsePawnCache {
		e.pawnCache = newPawnCache()
	} else {
		e.log.Info("Pawn Cache is disabled in configuration")
	}
	return e
}

// InitEval initializes data structures and values which are used several times
// Is called at the beginning of Evaluate() but can be called separately to be able
// to run single evaluations in unit tests.
func (e *Evaluator) InitEval(p *position.Position) {
	// set some value which we need regularly
	e.position = p
	e.gamePhaseFactor = p.GamePhaseFactor()
	e.us = p.NextPlayer()
	e.them = e.us.Flip()
	e.ourKing = e.position.KingSquare(e.us)
	e.theirKing = e.position.KingSquare(e.them)
	e.kingRing[e.us] = KingAttacks[e.ourKing]
	e.kingRing[e.them] = KingAttacks[e.theirKing]
	e.allPieces = e.position.OccupiedAll()
	e.ourPieces = e.position.OccupiedBb(e.us)

	// reset all values
	e.score.MidGameValue = 0
	e.score.EndGameValue = 0

	// reset attacks
	if config.Settings.Eval.UseAttacksInEval {
		e.usAttacks = Zero
		e.themAttacks = Zero
	}
}

// Evaluate calculates a value for a Shogi position by using various
// evaluation heuristics like material, piece placement and king safety.
// It calls InitEval and then the internal evaluation function which
// calculates the value for the position for the current game phase and
// from the view of the next player.
func (e *Evaluator) Evaluate(p *position.Position) Value {
	e.InitEval(p)
	return e.evaluate()
}

// value adds up the mid and end games scores after multiplying
// them with the game phase factor.
func (e *Evaluator) value() Value {
	return e.score.ValueFromScore(e.gamePhaseFactor)
}

// internal evaluation to sum up all partial evaluations.
// This assumes that InitEval() has been called beforehand.
func (e *Evaluator) evaluate() Value {
	// Each position is evaluated from Black's view (Black is the zero
	// color, matching SFEN's "b" ordering). Before returning the value
	// this will be adjusted to the next player's color.
	// All heuristics should return a value in centipawn-like units or
	// have a dedicated configurable weight to adjust and test.

	// Material, including pieces in hand at a discount (a dropped piece
	// costs its owner the tempo of walking it up the board).
	if config.Settings.Eval.UseMaterialEval {
		e.score.MidGameValue = int16(e.position.Material(Black) - e.position.Material(White))
		e.score.EndGameValue = e.score.MidGameValue
		if config.Settings.Eval.UseHandEval {
			e.score.Add(e.evalHand())
		}
	}

	// Positional values - reward pieces advanced off their home rank.
	if config.Settings.Eval.UsePositionalEval {
		e.score.Add(e.evalAdvancement(Black))
		e.score.Sub(e.evalAdvancement(White))
	}

	// TEMPO Bonus for the side to move (helps with evaluation alternation -
	// less difference between side which makes aspiration search faster
	// (not empirically tested)
	e.score.MidGameValue += config.Settings.Eval.Tempo

	// early exit
	// arbitrary threshold - in early phases (game phase = maxGamePhase) this is doubled
	// in late phases it stands as it is
	if config.Settings.Eval.UseLazyEval {
		valueFromScore := e.value()
		th := threshold[e.position.GamePhase()]
		if valueFromScore > Value(th) {
			return e.finalEval(valueFromScore)
		}
	}

	// evaluate pawns
	if config.Settings.Eval.UsePawnEval {
		// both colors are handled in evaluatePawns()
		e.score.Add(e.evaluatePawns())
	}

	// Gather all attacks once and reuse it for mobility and king safety.
	// This is expensive and we should use this investment as often as
	// possible - see §4.9 and DESIGN.md for why this stays outside search.
	if config.Settings.Eval.UseAttacksInEval {
		e.usAttacks = e.totalAttacks(e.us)
		e.themAttacks = e.totalAttacks(e.them)
		if config.Settings.Eval.UseMobility {
			usMobility := int16(e.usAttacks.AndNot(e.position.OccupiedBb(e.us)).PopCount())
			themMobility := int16(e.themAttacks.AndNot(e.position.OccupiedBb(e.them)).PopCount())
			e.score.MidGameValue += (usMobility - themMobility) * config.Settings.Eval.MobilityBonus
			e.score.EndGameValue += e.score.MidGameValue
		}
	}

	// evaluate pieces - bishop/rook/knight/silver shape
	if config.Settings.Eval.UseAdvancedPieceEval {
		e.score.Add(e.evalPiece(Black, Knight))
		e.score.Sub(e.evalPiece(White, Knight))
		e.score.Add(e.evalPiece(Black, Silver))
		e.score.Sub(e.evalPiece(White, Silver))
		e.score.Add(e.evalPiece(Black, Bishop))
		e.score.Sub(e.evalPiece(White, Bishop))
		e.score.Add(e.evalPiece(Black, Rook))
		e.score.Sub(e.evalPiece(White, Rook))
	}

	// evaluate king
	if config.Settings.Eval.UseKingEval {
		e.score.Add(e.evalKing(Black))
		e.score.Sub(e.evalKing(White))
	}

	// value is always from the view of Black
	valueFromScore := e.value()

	return e.finalEval(valueFromScore)
}

// finalEval turns a value computed from Black's view into a value from
// the view of the side to move.
func (e *Evaluator) finalEval(value Value) Value {
	if e.position.NextPlayer() == White {
		return -value
	}
	return value
}

// evalHand values pieces sitting in a side's hand at a discount off
// their board value, since a drop costs the tempo of never having
// advanced that piece.
func (e *Evaluator) evalHand() *Score {
	tmpScore.MidGameValue = 0
	tmpScore.EndGameValue = 0
	discount := int(config.Settings.Eval.HandDiscount)
	for c := Black; c < ColorLength; c++ {
		hand := e.position.Hand(c)
		total := 0
		for pt := Pawn; pt <= Gold; pt++ {
			total += int(hand.Count(pt)) * pt.Value()
		}
		v := int16(total * discount / 100)
		if c == Black {
			tmpScore.MidGameValue += v
			tmpScore.EndGameValue += v
		} else {
			tmpScore.MidGameValue -= v
			tmpScore.EndGameValue -= v
		}
	}
	return &tmpScore
}

// evalAdvancement is a minimal stand-in for a full piece-square table:
// reward silvers, knights and lances for every rank they've advanced
// off their own back rank, since pushing them forward is almost always
// correct in Shogi regardless of exact square.
func (e *Evaluator) evalAdvancement(c Color) *Score {
	tmpScore.MidGameValue = 0
	tmpScore.EndGameValue = 0
	homeRank := RankI
	if c == White {
		homeRank = RankA
	}
	for _, pt := range [3]PieceType{Lance, Knight, Silver} {
		bb := e.position.PiecesBb(c, pt)
		for !bb.IsEmpty() {
			var sq Square
			sq, bb = bb.PopLsb()
			dist := int(homeRank) - int(sq.RankOf())
			if dist < 0 {
				dist = -dist
			}
			tmpScore.MidGameValue += int16(dist)
		}
	}
	return &tmpScore
}

// evalPiece is the evaluation function for all pieces except pawns and kings.
func (e *Evaluator) evalPiece(c Color, pieceType PieceType) *Score {
	tmpScore.MidGameValue = 0
	tmpScore.EndGameValue = 0

	// get bitboard with all pieces of this color and type
	pieceBb := e.position.PiecesBb(c, pieceType)
	if pieceBb.IsEmpty() {
		return &tmpScore
	}

	us := c

	// piece type specific evaluation which are done once
	// for all pieces of one type
	switch pieceType {
	case Knight, Silver:
		for !pieceBb.IsEmpty() {
			var sq Square
			sq, pieceBb = pieceBb.PopLsb()
			e.minorEval(us, sq)
		}
	case Bishop:
		for !pieceBb.IsEmpty() {
			var sq Square
			sq, pieceBb = pieceBb.PopLsb()
			e.bishopEval(us, sq)
		}
	case Rook:
		for !pieceBb.IsEmpty() {
			var sq Square
			sq, pieceBb = pieceBb.PopLsb()
			e.rookEval(us, sq)
		}
	}

	return &tmpScore
}

// minorEval rewards a knight or silver that is shielded by a pawn
// standing directly behind it.
func (e *Evaluator) minorEval(us Color, sq Square) {
	behind := sq.To(behindDir[us])
	if behind != SqNone && e.position.PiecesBb(us, Pawn).Has(behind) {
		tmpScore.MidGameValue += config.Settings.Eval.MinorBehindPawnBonus
	}
}

func (e *Evaluator) bishopEval(us Color, sq Square) {
	e.minorEval(us, sq)

	// diagonal reach into the center
	popCount := int16(AttacksBb(Bishop, sq, e.allPieces).And(centerSquares).PopCount())
	tmpScore.MidGameValue += config.Settings.Eval.BishopDiagonalBonus * popCount

	// no legal diagonal square to move to other than captures of own pieces
	if AttacksBb(Bishop, sq, e.allPieces).AndNot(e.position.OccupiedBb(us)).IsEmpty() {
		tmpScore.MidGameValue -= config.Settings.Eval.BishopDiagonalBonus
		tmpScore.EndGameValue -= config.Settings.Eval.BishopDiagonalBonus
	}
}

func (e *Evaluator) rookEval(us Color, sq Square) {
	// open file / semi open file (no own pawn on the file)
	if FileBb[sq.FileOf()].And(e.position.PiecesBb(us, Pawn)).IsEmpty() {
		tmpScore.MidGameValue += config.Settings.Eval.RookOnOpenFileBonus
	}
}

func (e *Evaluator) evalKing(c Color) *Score {
	tmpScore.MidGameValue = 0
	tmpScore.EndGameValue = 0
	us := c
	them := us.Flip()

	// shield - gold/silver generals standing next to the king, the
	// closest Shogi analogue to a chess pawn shield.
	shieldTypes := [6]PieceType{Gold, Silver, ProPawn, ProLance, ProKnight, ProSilver}
	var shield Bitboard
	for _, pt := range shieldTypes {
		shield = shield.Or(e.position.PiecesBb(us, pt))
	}
	count := int16(e.kingRing[us].And(shield).PopCount())
	tmpScore.MidGameValue += count * config.Settings.Eval.KingShieldBonus

	// king safety / attacks to the king and king ring
	if config.Settings.Eval.UseAttacksInEval {
		usAttacks, themAttacks := e.usAttacks, e.themAttacks
		if us == e.them {
			usAttacks, themAttacks = e.themAttacks, e.usAttacks
		}
		enemyAttacks := e.kingRing[us].And(themAttacks)
		ourDefence := e.kingRing[us].And(usAttacks)
		// malus for difference between attacker and defender
		if enemyAttacks.PopCount() > ourDefence.PopCount() {
			tmpScore.MidGameValue -= int16(enemyAttacks.PopCount()-ourDefence.PopCount()) * config.Settings.Eval.KingDangerMalus
			tmpScore.EndGameValue += tmpScore.MidGameValue
		} else {
			tmpScore.MidGameValue += int16(ourDefence.PopCount()-enemyAttacks.PopCount()) * config.Settings.Eval.KingDefenderBonus
			tmpScore.EndGameValue += tmpScore.MidGameValue
		}

		// king ring attacks
		if a := usAttacks.And(e.kingRing[them]); a != Zero {
			tmpScore.MidGameValue += config.Settings.Eval.KingRingAttacksBonus
			tmpScore.EndGameValue += config.Settings.Eval.KingRingAttacksBonus
		}
	}
	return &tmpScore
}

// totalAttacks unions the attack bitboard of every piece of color c,
// dispatching sliding pieces through the magic/lance tables and
// stepping pieces through their precomputed per-square tables.
func (e *Evaluator) totalAttacks(c Color) Bitboard {
	var att Bitboard
	for pt := Pawn; pt < PtLength; pt++ {
		bb := e.position.PiecesBb(c, pt)
		for !bb.IsEmpty() {
			var sq Square
			sq, bb = bb.PopLsb()
			att = att.Or(attacksFrom(c, pt, sq, e.allPieces))
		}
	}
	return att
}

// attacksFrom is the unified attack-bitboard dispatch every piece type
// needs: sliders go through the magic/lance tables, everything else
// through its precomputed per-color, per-square table.
func attacksFrom(c Color, pt PieceType, sq Square, occ Bitboard) Bitboard {
	switch pt {
	case Pawn:
		return PawnAttacks[c][sq]
	case Lance:
		return LanceAttacks(c, sq, occ)
	case Knight:
		return KnightAttacks[c][sq]
	case Silver:
		return SilverAttacks[c][sq]
	case Bishop, Rook, Horse, Dragon:
		return AttacksBb(pt, sq, occ)
	case Gold, ProPawn, ProLance, ProKnight, ProSilver:
		return GoldAttacks[c][sq]
	case King:
		return KingAttacks[sq]
	default:
		return Zero
	}
}

// Report prints a report about the evaluations done. Used in debugging.
func (e *Evaluator) Report() string {
	var report strings.Builder

	report.WriteString("Evaluation Report\n")
	report.WriteString("=============================================\n")
	report.WriteString(out.Sprintf("Position: %s\n", e.position.Sfen()))
	report.WriteString(out.Sprintf("%s\n", e.position.StringBoard()))
	report.WriteString(out.Sprintf("GamePhase Factor: %f\n", e.position.GamePhaseFactor()))
	report.WriteString("-------------------------\n")
	report.WriteString(out.Sprintf("Eval value  : %d \n(from the view of next player = %s)\n", e.Evaluate(e.position), e.position.NextPlayer().String()))

	return report.String()
}

// Score is a tapered mid/end-game evaluation component - every
// heuristic returns one, summed by the caller and finally collapsed to
// a single Value by ValueFromScore once the game phase is known.
type Score struct {
	MidGameValue int16
	EndGameValue int16
}

func (s *Score) Add(o *Score) {
	s.MidGameValue += o.MidGameValue
	s.EndGameValue += o.EndGameValue
}

func (s *Score) Sub(o *Score) {
	s.MidGameValue -= o.MidGameValue
	s.EndGameValue -= o.EndGameValue
}

// ValueFromScore tapers MidGameValue/EndGameValue by gamePhaseFactor (1
// at the opening, 0 at the bare endgame) into a single Value.
func (s Score) ValueFromScore(gamePhaseFactor float64) Value {
	return Value(float64(s.MidGameValue)*gamePhaseFactor + float64(s.EndGameValue)*(1-gamePhaseFactor))
}

func (s Score) String() string {
	return fmt.Sprintf("(mg: %d, eg: %d)", s.MidGameValue, s.EndGameValue)
}
