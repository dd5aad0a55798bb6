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

package timeman

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestInitOptimumLessThanMaximum(t *testing.T) {
	var m Manager
	m.Init(time.Now(), 60*time.Second, 2*time.Second, 0, 30, 20, 100, 30*time.Millisecond)
	assert.Greater(t, m.Optimum(), time.Duration(0))
	assert.GreaterOrEqual(t, m.Maximum(), m.Optimum())
}

func TestInitSlowMoverScalesOptimum(t *testing.T) {
	var fast, slow Manager
	fast.Init(time.Now(), 60*time.Second, 0, 0, 30, 0, 200, 30*time.Millisecond)
	slow.Init(time.Now(), 60*time.Second, 0, 0, 30, 0, 50, 30*time.Millisecond)
	assert.Greater(t, fast.Optimum(), slow.Optimum())
}

func TestInitByoyomiActsLikeIncrement(t *testing.T) {
	var withByoyomi, without Manager
	withByoyomi.Init(time.Now(), 10*time.Second, 0, 5*time.Second, 30, 0, 100, 30*time.Millisecond)
	without.Init(time.Now(), 10*time.Second, 0, 0, 30, 0, 100, 30*time.Millisecond)
	assert.Greater(t, withByoyomi.Optimum(), without.Optimum())
}

func TestInitNeverNegative(t *testing.T) {
	var m Manager
	m.Init(time.Now(), 0, 0, 0, 1, 200, 100, 30*time.Millisecond)
	assert.GreaterOrEqual(t, m.Optimum(), time.Duration(0))
	assert.GreaterOrEqual(t, m.Maximum(), time.Duration(0))
}

func TestInitMoveTimeSubtractsOverhead(t *testing.T) {
	var m Manager
	m.InitMoveTime(time.Now(), time.Second, 30*time.Millisecond)
	assert.Equal(t, time.Second-30*time.Millisecond, m.Optimum())
	assert.Equal(t, m.Optimum(), m.Maximum())
}

func TestElapsedAdvancesWithWallClock(t *testing.T) {
	var m Manager
	m.Init(time.Now(), time.Minute, 0, 0, 30, 0, 100, 30*time.Millisecond)
	time.Sleep(5 * time.Millisecond)
	assert.GreaterOrEqual(t, m.Elapsed(), 5*time.Millisecond)
}
