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

package types

// File is one of the nine files of a Shogi board, numbered 0..8 for
// USI files "1".."9".
type File uint8

const (
	File1 File = iota
	File2
	File3
	File4
	File5
	File6
	File7
	File8
	File9
	FileLength
	FileNone = FileLength
)

// IsValid reports whether f is a file on the board.
func (f File) IsValid() bool {
	return f < FileLength
}

// String returns the USI digit for the file ("1".."9").
func (f File) String() string {
	if !f.IsValid() {
		return "-"
	}
	return string(rune('1' + f))
}

// FileOf parses a single USI file digit, returning FileNone on failure.
func FileOf(b byte) File {
	if b < '1' || b > '9' {
		return FileNone
	}
	return File(b - '1')
}
