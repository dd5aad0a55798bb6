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

package transpositiontable

import (
	. "github.com/yomigo-shogi/yomigo/internal/types"
)

// TtEntry struct is the data structure for each entry in the transposition
// table. Each entry has 24 bytes.
type TtEntry struct {
	// struct is partially bit encoded to make it more compact
	key   Key    // 64-bit Zobrist Key
	move  uint32 // packed Move - a Shogi move needs more than 16 bits
	eval  int16  // 16-bit evaluation value by static evaluator
	value int16  // 16-bit value during search
	vmeta uint16 // depth 7-bit, bound 2-bit, age 3-bit
	// depth 7-bit 0-127
	// bound 2-bit None, Upper (alpha), Lower (beta), Exact
	// age 3-bit
}

const (
	// TtEntrySize is the size in bytes for each TtEntry
	TtEntrySize = 24

	ageMask    = uint16(0b0000_0000_0000_0111)
	boundMask  = uint16(0b0000_0000_0001_1000)
	boundShift = uint16(3)
	depthMask  = uint16(0b0000_1111_1110_0000)
	depthShift = uint16(5)
)

func (e *TtEntry) decreaseAge() {
	// age is stored in the last 3 bits --> we can just decrease
	if e.Age() > 0 {
		e.vmeta--
	}
}

func (e *TtEntry) increaseAge() {
	// age is stored in the last 3 bits --> we can just increase
	if e.Age() < 7 {
		e.vmeta++
	}
}

func (e *TtEntry) Key() Key {
	return e.key
}

func (e *TtEntry) Move() Move {
	return Move(e.move)
}

func (e *TtEntry) Value() Value {
	return Value(e.value)
}

func (e *TtEntry) Eval() Value {
	return Value(e.eval)
}

func (e *TtEntry) Depth() int8 {
	return int8((e.vmeta & depthMask) >> depthShift)
}

func (e *TtEntry) Age() int8 {
	return int8(e.vmeta & ageMask)
}

func (e *TtEntry) Bound() Bound {
	return Bound((e.vmeta & boundMask) >> boundShift)
}
