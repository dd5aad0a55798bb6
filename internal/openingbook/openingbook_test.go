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

package openingbook

import (
	"os"
	"path/filepath"
	"testing"

	logging2 "github.com/op/go-logging"
	"github.com/stretchr/testify/assert"

	"github.com/yomigo-shogi/yomigo/internal/config"
	"github.com/yomigo-shogi/yomigo/internal/logging"
	"github.com/yomigo-shogi/yomigo/internal/position"
	. "github.com/yomigo-shogi/yomigo/internal/types"
)

var logTest *logging2.Logger

func TestMain(m *testing.M) {
	config.Setup()
	logTest = logging.GetTestLog()
	os.Exit(m.Run())
}

func writeBookFile(t *testing.T, lines ...string) string {
	t.Helper()
	dir := t.TempDir()
	path := filepath.Join(dir, "test.book")
	content := ""
	for _, l := range lines {
		content += l + "\n"
	}
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("could not write fixture book file: %s", err)
	}
	return path
}

func TestReadingNonExistingFile(t *testing.T) {
	b := NewBook()
	_, err := readFile(filepath.Join(t.TempDir(), "does-not-exist.book"))
	assert.Error(t, err, "reading a missing file should return an error")
	assert.Equal(t, 0, b.NumberOfEntries())
}

func TestInitializeEmptyBook(t *testing.T) {
	path := writeBookFile(t, "")
	book := NewBook()
	err := book.Initialize(path, "", Simple, false, false)
	assert.NoError(t, err)
	assert.Equal(t, 1, book.NumberOfEntries(), "an empty book still has the root entry")

	start := position.NewPosition()
	entry, ok := book.GetEntry(start.ZobristKey())
	assert.True(t, ok)
	assert.EqualValues(t, entry.ZobristKey, uint64(start.ZobristKey()))
	assert.Empty(t, entry.Moves)

	_, ok = book.GetEntry(Key(0xDEADBEEF))
	assert.False(t, ok)
}

func TestProcessingSimpleLines(t *testing.T) {
	path := writeBookFile(t,
		"7g7f 3c3d 2g2f",
		"7g7f 8c8d",
		"2g2f 8c8d",
	)
	book := NewBook()
	err := book.Initialize(path, "", Simple, false, false)
	assert.NoError(t, err)

	start := position.NewPosition()
	rootEntry, ok := book.GetEntry(start.ZobristKey())
	assert.True(t, ok)
	assert.Equal(t, 3, rootEntry.Counter, "root position is reached once per line")
	assert.Equal(t, 2, len(rootEntry.Moves), "two distinct opening moves were played from the root (7g7f, 2g2f)")

	// follow the first recorded successor and confirm it resolves to a
	// real, reachable entry in the book
	successor := rootEntry.Moves[0]
	childEntry, ok := book.GetEntry(Key(successor.NextEntry))
	assert.True(t, ok)
	assert.EqualValues(t, childEntry.ZobristKey, successor.NextEntry)
}

func TestInitializeIsIdempotent(t *testing.T) {
	path := writeBookFile(t, "7g7f 3c3d")
	book := NewBook()
	assert.NoError(t, book.Initialize(path, "", Simple, false, false))
	entriesAfterFirst := book.NumberOfEntries()

	// a second Initialize call on an already-initialized book is a no-op
	assert.NoError(t, book.Initialize(path, "", Simple, false, false))
	assert.Equal(t, entriesAfterFirst, book.NumberOfEntries())
}

func TestReset(t *testing.T) {
	path := writeBookFile(t, "7g7f 3c3d")
	book := NewBook()
	assert.NoError(t, book.Initialize(path, "", Simple, false, false))
	assert.NotEqual(t, 0, book.NumberOfEntries())

	book.Reset()
	assert.Equal(t, 0, book.NumberOfEntries())
	assert.NoError(t, book.Initialize(path, "", Simple, false, false))
	assert.NotEqual(t, 0, book.NumberOfEntries())
}

func TestInitializeWithCache(t *testing.T) {
	path := writeBookFile(t, "7g7f 3c3d 2g2f 8c8d")

	book := NewBook()
	assert.NoError(t, book.Initialize(path, "", Simple, true, true))
	entries := book.NumberOfEntries()
	assert.DirExists(t, path+".badgerdb")

	book.Reset()
	assert.NoError(t, book.Initialize(path, "", Simple, true, false))
	assert.Equal(t, entries, book.NumberOfEntries(), "loading from cache reproduces the same entries")
}

func TestBookDirAndFileAreJoined(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "joined.book"), []byte("7g7f 3c3d\n"), 0o644); err != nil {
		t.Fatalf("could not write fixture: %s", err)
	}
	book := NewBook()
	assert.NoError(t, book.Initialize(dir, "joined.book", Simple, false, false))
	assert.NotEqual(t, 0, book.NumberOfEntries())
}
