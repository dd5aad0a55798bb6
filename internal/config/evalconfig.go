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

package config

type evalConfiguration struct {

	// evaluation values
	UseLazyEval       bool
	LazyEvalThreshold int16

	UseMaterialEval   bool
	UsePositionalEval bool

	Tempo int16

	UseAttacksInEval bool

	UseMobility   bool
	MobilityBonus int16

	UseAdvancedPieceEval bool
	RookOnOpenFileBonus  int16
	BishopDiagonalBonus  int16
	MinorBehindPawnBonus int16

	UseKingEval            bool
	KingShieldBonus        int16
	KingDangerMalus        int16
	KingDefenderBonus      int16
	KingRingAttacksBonus   int16

	// pieces sitting in hand are worth slightly less than the same piece
	// on the board: a drop costs a tempo the owner doesn't get to spend
	// advancing it, so HandDiscount shaves a fraction off their value.
	UseHandEval   bool
	HandDiscount  int16 // percent, e.g. 90 means 90% of board value

	// PAWNS
	UsePawnEval   bool
	UsePawnCache  bool
	PawnCacheSize int

	PawnPromotionZoneBonus int16 // per pawn already in the opponent's camp
}

// sets defaults which might be overwritten by config file.
func init() {

	Settings.Eval.UseLazyEval = false
	Settings.Eval.LazyEvalThreshold = 700

	Settings.Eval.UseMaterialEval = true
	Settings.Eval.UsePositionalEval = false

	Settings.Eval.Tempo = 34

	Settings.Eval.UseAttacksInEval = false

	Settings.Eval.UseMobility = false
	Settings.Eval.MobilityBonus = 3 // per reachable square

	Settings.Eval.UseAdvancedPieceEval = false
	Settings.Eval.RookOnOpenFileBonus = 25  // rook with no own pawn on its file
	Settings.Eval.BishopDiagonalBonus = 15  // bishop/horse seeing the center
	Settings.Eval.MinorBehindPawnBonus = 10 // silver/knight shielded by a pawn

	Settings.Eval.UseKingEval = false
	Settings.Eval.KingShieldBonus = 12        // per gold/silver adjacent to own king
	Settings.Eval.KingDangerMalus = 50        // (attackers - defenders) * malus on the king ring
	Settings.Eval.KingDefenderBonus = 10      // (defenders - attackers) * bonus on the king ring
	Settings.Eval.KingRingAttacksBonus = 8    // per own piece attacking the enemy king ring

	Settings.Eval.UseHandEval = true
	Settings.Eval.HandDiscount = 90

	Settings.Eval.UsePawnEval = false
	Settings.Eval.UsePawnCache = false
	Settings.Eval.PawnCacheSize = 64
	Settings.Eval.PawnPromotionZoneBonus = 8
}

// set defaults for configurations here in case a configuration
// is not available from the config file.
func setupEval() {

}
