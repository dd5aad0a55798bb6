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

// Package timeman turns a USI go command's time budget (remaining time,
// increment, byoyomi, moves-to-go) into an optimum/maximum search-time
// pair: optimum is the budget iterative deepening aims to finish within
// (and can be stretched by instability/falling-eval extensions at
// iteration end), maximum is the hard ceiling the main thread polls
// elapsed time against and force-stops on.
package timeman

import (
	"math"
	"time"
)

// Manager holds one search's computed time budget and the wall-clock
// start it is measured against.
type Manager struct {
	startTime time.Time
	optimum   time.Duration
	maximum   time.Duration
}

// Init computes Optimum and Maximum for the side to move, following:
//
//	timeLeft  = max(1, time + inc*(movesToGo-1) - overhead*(movesToGo+2)) * slowMoverPct/100
//	optScale  = min((0.8 + ply/128) / movesToGo, 0.8*time/timeLeft)
//	maxScale  = min(6.3, 1.5 + 0.11*movesToGo)
//	optimum   = optScale * timeLeft
//	maximum   = min(0.8*time - overhead, maxScale*optimum)
//
// byoyomi (a per-move bank that refills every turn) is folded into inc,
// since a guaranteed per-move allowance has the same effect on the
// budget as a guaranteed per-move increment. movesToGo should already
// reflect the engine's own estimate (spec leaves the count to the
// caller) when the USI side sends none.
func (m *Manager) Init(start time.Time, timeLeftForUs, incForUs, byoyomi time.Duration, movesToGo, ply, slowMoverPct int, overhead time.Duration) {
	m.startTime = start

	if movesToGo < 1 {
		movesToGo = 1
	}
	mtg := int64(movesToGo)
	inc := (incForUs + byoyomi).Nanoseconds()
	ovh := overhead.Nanoseconds()
	usTime := timeLeftForUs.Nanoseconds()

	timeLeft := usTime + inc*(mtg-1) - ovh*(mtg+2)
	if timeLeft < int64(time.Millisecond) {
		timeLeft = int64(time.Millisecond)
	}
	timeLeft = timeLeft * int64(slowMoverPct) / 100
	if timeLeft < 1 {
		timeLeft = 1
	}

	optScale := math.Min(
		(0.8+float64(ply)/128.0)/float64(mtg),
		0.8*float64(usTime)/float64(timeLeft),
	)
	if optScale < 0 {
		optScale = 0
	}
	maxScale := math.Min(6.3, 1.5+0.11*float64(mtg))

	optimumNs := optScale * float64(timeLeft)
	maximumNs := math.Min(0.8*float64(usTime)-float64(ovh), maxScale*optimumNs)
	if maximumNs < optimumNs {
		maximumNs = optimumNs
	}
	if optimumNs < 0 {
		optimumNs = 0
	}
	if maximumNs < 0 {
		maximumNs = 0
	}

	m.optimum = time.Duration(optimumNs)
	m.maximum = time.Duration(maximumNs)
}

// InitMoveTime sets a fixed per-move budget (USI movetime, or a
// byoyomi-only game with no main clock) - optimum and maximum coincide,
// less the move-overhead safety margin.
func (m *Manager) InitMoveTime(start time.Time, moveTime, overhead time.Duration) {
	m.startTime = start
	d := moveTime - overhead
	if d < 0 {
		d = 0
	}
	m.optimum = d
	m.maximum = d
}

// Optimum is the budget iterative deepening should normally finish
// within.
func (m *Manager) Optimum() time.Duration { return m.optimum }

// Maximum is the hard ceiling; exceeding it force-stops the search
// regardless of any instability/falling-eval extension to Optimum.
func (m *Manager) Maximum() time.Duration { return m.maximum }

// Elapsed reports wall time since Init/InitMoveTime.
func (m *Manager) Elapsed() time.Duration { return time.Since(m.startTime) }
