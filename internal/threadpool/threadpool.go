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

// Package threadpool implements Lazy-SMP (spec §4.9): N worker searches
// that share one transposition table and a breadcrumbs map, each running
// iterative deepening over its own copy of the position, coordinated
// only through the shared TT and a best-thread vote once every worker
// has stopped.
package threadpool

import (
	"sync"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/op/go-logging"

	"github.com/yomigo-shogi/yomigo/internal/config"
	myLogging "github.com/yomigo-shogi/yomigo/internal/logging"
	"github.com/yomigo-shogi/yomigo/internal/moveslice"
	"github.com/yomigo-shogi/yomigo/internal/position"
	"github.com/yomigo-shogi/yomigo/internal/search"
	"github.com/yomigo-shogi/yomigo/internal/transpositiontable"
	"github.com/yomigo-shogi/yomigo/internal/types"
	"github.com/yomigo-shogi/yomigo/internal/uciInterface"
)

// Pool is a Lazy-SMP thread pool: worker 0 is the "main" thread, owning
// UCI output; workers 1..N-1 run silently and only influence the search
// through the shared transposition table and breadcrumbs.
type Pool struct {
	mu sync.Mutex

	workers     []*search.Search
	tt          *transpositiontable.TtTable
	breadcrumbs *search.Breadcrumbs

	uciHandlerPtr uciInterface.UciDriver
	log           *logging.Logger
}

// NewPool creates a pool of n worker searches (minimum 1) sharing one
// transposition table sized per config.Settings.Search.TTSize.
func NewPool(n int) *Pool {
	if n < 1 {
		n = 1
	}
	tt := transpositiontable.NewTtTable(ttSizeOrDefault())
	bc := search.NewBreadcrumbs()
	p := &Pool{
		workers:     make([]*search.Search, n),
		tt:          tt,
		breadcrumbs: bc,
		log:         myLogging.GetLog(),
	}
	for i := range p.workers {
		w := search.NewSearch()
		w.SetThread(i, bc)
		w.SetSharedTT(tt)
		p.workers[i] = w
	}
	return p
}

func ttSizeOrDefault() int {
	if config.Settings.Search.TTSize <= 0 {
		return 64
	}
	return config.Settings.Search.TTSize
}

// IsSearching reports whether any worker in the pool is currently
// searching.
func (p *Pool) IsSearching() bool {
	p.mu.Lock()
	workers := append([]*search.Search(nil), p.workers...)
	p.mu.Unlock()
	for _, w := range workers {
		if w.IsSearching() {
			return true
		}
	}
	return false
}

// Resize replaces the pool with n freshly created workers sharing a new
// transposition table. Ignored with a log warning while a search is
// running.
func (p *Pool) Resize(n int) {
	if p.IsSearching() {
		p.log.Warning("Can't resize thread pool while searching.")
		return
	}
	p.mu.Lock()
	defer p.mu.Unlock()
	if n < 1 {
		n = 1
	}
	handler := p.uciHandlerPtr
	tt := transpositiontable.NewTtTable(ttSizeOrDefault())
	bc := search.NewBreadcrumbs()
	workers := make([]*search.Search, n)
	for i := range workers {
		w := search.NewSearch()
		w.SetThread(i, bc)
		w.SetSharedTT(tt)
		workers[i] = w
	}
	p.workers = workers
	p.tt = tt
	p.breadcrumbs = bc
	if handler != nil {
		p.setUciHandlerLocked(handler)
	}
}

// NumThreads returns the current worker count.
func (p *Pool) NumThreads() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return len(p.workers)
}

// SetUciHandler wires the pool to a USI front-end. Only worker 0 forwards
// live search progress (info depth/currmove/...); the final bestmove is
// always reported by the pool itself once the vote has run, never by an
// individual worker, since bypassing that would let every worker report
// its own (possibly differing) best move.
func (p *Pool) SetUciHandler(handler uciInterface.UciDriver) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.setUciHandlerLocked(handler)
}

func (p *Pool) setUciHandlerLocked(handler uciInterface.UciDriver) {
	p.uciHandlerPtr = handler
	if len(p.workers) == 0 {
		return
	}
	if handler == nil {
		for _, w := range p.workers {
			w.SetUciHandler(nil)
		}
		return
	}
	p.workers[0].SetUciHandler(&mainThreadAdapter{inner: handler})
	for _, w := range p.workers[1:] {
		w.SetUciHandler(nil)
	}
}

// IsReady initializes every worker (opening book, TT already shared) and
// reports readiness once to the handler.
func (p *Pool) IsReady() {
	p.mu.Lock()
	workers := append([]*search.Search(nil), p.workers...)
	handler := p.uciHandlerPtr
	p.mu.Unlock()
	for _, w := range workers {
		w.IsReady()
	}
	if handler != nil {
		handler.SendReadyOk()
	}
}

// NewGame stops any running search and resets every worker's state for a
// new game: each worker resets its own history heuristics and clears the
// shared TT, so the TT is cleared once per worker.
func (p *Pool) NewGame() {
	p.StopSearch()
	p.mu.Lock()
	workers := append([]*search.Search(nil), p.workers...)
	p.mu.Unlock()
	for _, w := range workers {
		w.NewGame()
	}
}

// ClearHash zero-clears the shared transposition table.
func (p *Pool) ClearHash() {
	p.mu.Lock()
	tt := p.tt
	handler := p.uciHandlerPtr
	p.mu.Unlock()
	if tt != nil {
		tt.Clear()
	}
	if handler != nil {
		handler.SendInfoString("Hash cleared")
	}
}

// ResizeCache reallocates the shared transposition table at the
// currently configured size and rewires every worker to it.
func (p *Pool) ResizeCache() {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.tt = transpositiontable.NewTtTable(ttSizeOrDefault())
	for _, w := range p.workers {
		w.SetSharedTT(p.tt)
	}
	if p.uciHandlerPtr != nil {
		p.uciHandlerPtr.SendInfoString("Hash resized: " + p.tt.String())
	}
}

// StartSearch hands a copy of pos to every worker and starts its own
// iterative deepening goroutine. Each worker owns its copy exclusively;
// only the shared TT and breadcrumbs are racy by design.
func (p *Pool) StartSearch(pos position.Position, limits search.Limits) {
	p.mu.Lock()
	workers := append([]*search.Search(nil), p.workers...)
	p.mu.Unlock()
	for _, w := range workers {
		w.StartSearch(pos, limits)
	}
}

// StopSearch stops every worker and blocks until all have returned, then
// the vote-selected PV has been reported to the UCI handler if one is
// set. Safe to call even if no search is running.
func (p *Pool) StopSearch() {
	p.mu.Lock()
	workers := append([]*search.Search(nil), p.workers...)
	handler := p.uciHandlerPtr
	p.mu.Unlock()

	var g errgroup.Group
	for _, w := range workers {
		w := w
		g.Go(func() error {
			w.StopSearch()
			return nil
		})
	}
	_ = g.Wait()

	if len(workers) == 0 {
		return
	}
	winner := vote(workers)
	if handler != nil {
		handler.SendResult(winner.BestMove, winner.PonderMove)
	}
}

// PonderHit forwards ponderhit to every worker; each activates its own
// time control independently.
func (p *Pool) PonderHit() {
	p.mu.Lock()
	workers := append([]*search.Search(nil), p.workers...)
	p.mu.Unlock()
	for _, w := range workers {
		w.PonderHit()
	}
}

// BestResult returns the vote-selected result across all workers' last
// completed searches (spec §4.9: tally (score-min+14)*depth per move,
// raw score breaks ties).
func (p *Pool) BestResult() search.Result {
	p.mu.Lock()
	workers := append([]*search.Search(nil), p.workers...)
	p.mu.Unlock()
	return vote(workers)
}

// vote implements the spec §4.9 best-thread selection: tally
// (score-min+14)*completed_depth per candidate move across all workers,
// pick the highest-voted move, breaking ties by raw score so mate scores
// dominate.
func vote(workers []*search.Search) search.Result {
	results := make([]search.Result, len(workers))
	for i, w := range workers {
		results[i] = w.LastSearchResult()
	}

	minScore := results[0].BestValue
	for _, r := range results {
		if r.BestValue < minScore {
			minScore = r.BestValue
		}
	}

	votes := make(map[types.Move]int64, len(results))
	for _, r := range results {
		if r.BestMove == types.MoveNone {
			continue
		}
		votes[r.BestMove] += int64(r.BestValue-minScore+14) * int64(r.SearchDepth)
	}

	var winner search.Result
	bestVotes := int64(-1) << 62
	first := true
	for _, r := range results {
		if r.BestMove == types.MoveNone {
			continue
		}
		v := votes[r.BestMove]
		if first || v > bestVotes || (v == bestVotes && r.BestValue > winner.BestValue) {
			winner = r
			bestVotes = v
			first = false
		}
	}
	return winner
}

// mainThreadAdapter forwards live search progress from worker 0 to the
// real USI handler, but swallows SendResult - the pool reports the
// vote-selected bestmove itself once every worker has stopped, so an
// individual worker's own idea of its best move never reaches the wire.
// It swallows SendReadyOk too: Pool.IsReady sends the one readyok once
// every worker is initialized.
type mainThreadAdapter struct {
	inner uciInterface.UciDriver
}

func (a *mainThreadAdapter) SendReadyOk() {}

func (a *mainThreadAdapter) SendInfoString(info string) { a.inner.SendInfoString(info) }

func (a *mainThreadAdapter) SendIterationEndInfo(depth int, seldepth int, value types.Value, nodes uint64, nps uint64, t time.Duration, pv moveslice.MoveSlice) {
	a.inner.SendIterationEndInfo(depth, seldepth, value, nodes, nps, t, pv)
}

func (a *mainThreadAdapter) SendAspirationResearchInfo(depth int, seldepth int, value types.Value, bound string, nodes uint64, nps uint64, t time.Duration, pv moveslice.MoveSlice) {
	a.inner.SendAspirationResearchInfo(depth, seldepth, value, bound, nodes, nps, t, pv)
}

func (a *mainThreadAdapter) SendCurrentRootMove(currMove types.Move, moveNumber int) {
	a.inner.SendCurrentRootMove(currMove, moveNumber)
}

func (a *mainThreadAdapter) SendSearchUpdate(depth int, seldepth int, nodes uint64, nps uint64, t time.Duration, hashfull int) {
	a.inner.SendSearchUpdate(depth, seldepth, nodes, nps, t, hashfull)
}

func (a *mainThreadAdapter) SendCurrentLine(moveList moveslice.MoveSlice) { a.inner.SendCurrentLine(moveList) }

// SendResult is intentionally a no-op: see the Pool doc comment on
// SetUciHandler.
func (a *mainThreadAdapter) SendResult(bestMove types.Move, ponderMove types.Move) {}
