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

package config

import (
	"time"

	. "github.com/yomigo-shogi/yomigo/internal/types"
)

// searchConfiguration is a data structure to hold the configuration of an
// instance of a search.
type searchConfiguration struct {
	// Opening book
	UseBook    bool
	BookPath   string
	BookFile   string
	BookFormat string

	// Ponder
	UsePonder bool

	// Lazy-SMP worker count (USI option "Threads")
	Threads int

	// Number of PV lines reported (USI option "MultiPV")
	MultiPV int

	// Evaluation cache size in MiB (USI option "Eval_Hash")
	EvalHashSize int

	// Time management (internal/timeman), per the USI Slow_Mover /
	// Time_Margin / Byoyomi_Margin options.
	SlowMover      int           // percent, 10..1000
	MoveOverhead   time.Duration // subtracted from main-clock time (Time_Margin)
	ByoyomiMargin  time.Duration // subtracted from the byoyomi bank

	// Quiescence search
	UseQuiescence bool
	UseQSStandpat bool
	UseSEE        bool

	// Specialized 1-ply mate detector, tried before the move loop
	UseMate1 bool

	// Move ordering
	UsePVS          bool
	UseAspiration   bool
	UseMTDf         bool
	UseKiller       bool
	UseHistoryCounter bool
	UseCounterMoves bool
	UseIID          bool
	IIDDepth        int
	IIDReduction    int

	// Transposition Table
	UseTT      bool
	TTSize     int
	UseTTMove  bool
	UseTTValue bool
	UseQSTT    bool
	UseEvalTT  bool

	// Prunings pre move gen
	UseMDP       bool
	UseRFP       bool
	UseNullMove  bool
	NmpDepth     int
	NmpReduction int

	// extensions of search depth
	UseExt         bool
	UseCheckExt    bool
	UseThreatExt   bool
	UseExtAddDepth bool

	// prunings after move generation but before making move
	UseFP            bool
	UseQFP           bool
	UseLmp           bool
	UseLmr           bool
	LmrDepth         int
	LmrMovesSearched int
	UsePromNonQuiet  bool
	UseRazoring      bool
	RazorMargin      Value

	// ProbCut and singular extension
	UseProbCut bool
	UseSingular bool
}

// sets defaults which might be overwritten by config file
func init() {
	Settings.Search.UseBook = true
	Settings.Search.BookPath = "./assets/books"
	Settings.Search.BookPath = "book.txt"
	Settings.Search.BookFormat = "Simple"

	Settings.Search.UsePonder = true
	Settings.Search.Threads = 1
	Settings.Search.MultiPV = 1
	Settings.Search.EvalHashSize = 16

	Settings.Search.SlowMover = 100
	Settings.Search.MoveOverhead = 30 * time.Millisecond
	Settings.Search.ByoyomiMargin = 30 * time.Millisecond

	Settings.Search.UseQuiescence = true
	Settings.Search.UseQSStandpat = true
	Settings.Search.UseSEE = true

	Settings.Search.UseMate1 = true

	Settings.Search.UsePVS = true
	Settings.Search.UseAspiration = true
	Settings.Search.UseMTDf = false
	Settings.Search.UseKiller = true
	Settings.Search.UseHistoryCounter = true
	Settings.Search.UseCounterMoves = true
	Settings.Search.UseIID = true
	Settings.Search.IIDDepth = 6
	Settings.Search.IIDReduction = 2

	Settings.Search.UseTT = true
	Settings.Search.TTSize = 128
	Settings.Search.UseTTMove = true
	Settings.Search.UseTTValue = true
	Settings.Search.UseQSTT = true
	Settings.Search.UseEvalTT = false

	Settings.Search.UseMDP = true
	Settings.Search.UseRFP = false
	Settings.Search.UseNullMove = true
	Settings.Search.NmpDepth = 3
	Settings.Search.NmpReduction = 2

	Settings.Search.UseExt = true
	Settings.Search.UseCheckExt = true
	Settings.Search.UseThreatExt = false
	Settings.Search.UseExtAddDepth = true

	Settings.Search.UseFP = false
	Settings.Search.UseQFP = false
	Settings.Search.UseLmp = true
	Settings.Search.UseLmr = true
	Settings.Search.LmrDepth = 3
	Settings.Search.LmrMovesSearched = 3
	Settings.Search.UsePromNonQuiet = true
	Settings.Search.UseRazoring = true
	Settings.Search.RazorMargin = 600

	Settings.Search.UseProbCut = true
	Settings.Search.UseSingular = true
}

// set defaults for configurations here in case a configuration
// is not available from the config file
func setupSearch() {

}
