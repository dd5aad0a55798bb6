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

// Package openingbook reads a text file of recorded games, one game per
// line as a sequence of USI moves, into an in-memory tree keyed by
// Zobrist key. A move-choosing search can probe it instead of running
// alpha-beta on well-known early positions.
//
// Shogi game databases don't carry chess's SAN/PGN baggage - a line is
// simply whitespace-separated USI moves ("7g7f 3c3d 2g2f ...") - so only
// that one format is supported, unlike the teacher's UCI/SAN/PGN trio.
package openingbook

import (
	"bufio"
	"bytes"
	"encoding/binary"
	"encoding/gob"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	badger "github.com/dgraph-io/badger/v4"
	"github.com/op/go-logging"

	myLogging "github.com/yomigo-shogi/yomigo/internal/logging"
	"github.com/yomigo-shogi/yomigo/internal/movegen"
	"github.com/yomigo-shogi/yomigo/internal/position"
	. "github.com/yomigo-shogi/yomigo/internal/types"
)

var out = message.NewPrinter(language.German)
var log *logging.Logger = myLogging.GetLog()

// parallel controls whether lines/games are processed concurrently -
// turned off for deterministic debugging.
const parallel = true

// BookFormat identifies the textual layout of a book file.
type BookFormat uint8

// Simple is the only supported format: one game per line, moves in USI
// notation separated by whitespace.
const (
	Simple BookFormat = iota
)

// FormatFromString maps the config file's human-readable format name to
// a BookFormat value.
var FormatFromString = map[string]BookFormat{
	"Simple": Simple,
}

// Successor pairs a move with the Zobrist key of the position it leads
// to.
type Successor struct {
	Move      uint32
	NextEntry uint64
}

// BookEntry describes one position: how often it was reached while
// reading the book, and which moves (and successor positions) were
// played from it.
type BookEntry struct {
	ZobristKey uint64
	Counter    int
	Moves      []Successor
}

// Book is an in-memory opening book keyed by Zobrist key.
type Book struct {
	bookMap     map[uint64]BookEntry
	rootEntry   uint64
	initialized bool
}

// NewBook returns an empty, uninitialized Book.
func NewBook() *Book {
	return &Book{bookMap: map[uint64]BookEntry{}}
}

var bookLock sync.Mutex

// Initialize reads bookFile (joined onto bookDir when non-empty) in the
// given format and populates the book. If useCache is set it tries a
// Badger database directory (the book path plus ".badgerdb") first,
// rebuilt when recreateCache is set.
func (b *Book) Initialize(bookDir string, bookFile string, format BookFormat, useCache bool, recreateCache bool) error {
	if b.initialized {
		return nil
	}

	bookPath := bookDir
	if bookFile != "" {
		bookPath = strings.TrimRight(bookDir, "/") + "/" + bookFile
	}

	log.Info("Initializing opening book")
	startTotal := time.Now()

	if _, err := os.Stat(bookPath); err != nil {
		log.Errorf("File %q does not exist", bookPath)
		return err
	}

	if useCache && !recreateCache {
		hasCache, err := b.loadFromCache(bookPath)
		if err != nil {
			log.Warningf("Cache could not be loaded, reading original data from %q", bookPath)
		}
		if hasCache {
			log.Infof("Book loaded from cache with %d entries", len(b.bookMap))
			b.initialized = true
			return nil
		}
	}

	lines, err := readFile(bookPath)
	if err != nil {
		log.Errorf("File %q could not be read: %s", bookPath, err)
		return err
	}

	startPosition := position.NewPosition()
	b.bookMap = make(map[uint64]BookEntry)
	b.rootEntry = uint64(startPosition.ZobristKey())
	b.bookMap[b.rootEntry] = BookEntry{ZobristKey: b.rootEntry}

	switch format {
	default: // Simple
		b.processSimple(lines)
	}

	log.Infof("Book contains %d entries, built in %d ms", len(b.bookMap), time.Since(startTotal).Milliseconds())

	if useCache {
		cacheFile, nBytes, err := b.saveToCache(bookPath)
		if err != nil {
			log.Errorf("Error while saving to cache: %s", err)
		} else {
			log.Infof("Saved %s kB to cache %s", out.Sprintf("%d", nBytes/int64(KB)), cacheFile)
		}
	}

	b.initialized = true
	return nil
}

// NumberOfEntries returns the number of positions currently in the book.
func (b *Book) NumberOfEntries() int {
	return len(b.bookMap)
}

// GetEntry returns a copy of the entry for key, if present.
func (b *Book) GetEntry(key Key) (BookEntry, bool) {
	e, ok := b.bookMap[uint64(key)]
	return e, ok
}

// Reset clears the book so it can be initialized again.
func (b *Book) Reset() {
	b.bookMap = map[uint64]BookEntry{}
	b.rootEntry = 0
	b.initialized = false
}

func readFile(bookPath string) (*[]string, error) {
	f, err := os.Open(bookPath)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var lines []string
	s := bufio.NewScanner(f)
	for s.Scan() {
		lines = append(lines, s.Text())
	}
	if err := s.Err(); err != nil {
		return nil, err
	}
	return &lines, nil
}

func (b *Book) processSimple(lines *[]string) {
	if !parallel {
		for _, line := range *lines {
			b.processSimpleLine(line)
		}
		return
	}
	var wg sync.WaitGroup
	wg.Add(len(*lines))
	for _, line := range *lines {
		go func(line string) {
			defer wg.Done()
			b.processSimpleLine(line)
		}(line)
	}
	wg.Wait()
}

// processSimpleLine walks one game (whitespace-separated USI moves)
// from the starting position, adding every position reached to the
// book.
func (b *Book) processSimpleLine(line string) {
	moveStrings := strings.Fields(strings.TrimSpace(line))
	if len(moveStrings) == 0 {
		return
	}

	pos := position.NewPosition()

	bookLock.Lock()
	e, found := b.bookMap[b.rootEntry]
	if !found {
		bookLock.Unlock()
		log.Error("root entry of book map not found")
		return
	}
	e.Counter++
	b.bookMap[b.rootEntry] = e
	bookLock.Unlock()

	mg := movegen.NewMoveGen()
	for _, moveString := range moveStrings {
		move := mg.GetMoveFromUsi(pos, moveString)
		if move == MoveNone {
			// rest of the line can't be trusted once a move fails to
			// parse against the current position
			break
		}
		curKey := uint64(pos.ZobristKey())
		pos.DoMove(move)
		nextKey := uint64(pos.ZobristKey())
		b.addToBook(curKey, nextKey, uint32(move))
	}
}

func (b *Book) addToBook(curPosKey uint64, nextPosKey uint64, move uint32) {
	bookLock.Lock()
	defer bookLock.Unlock()

	currentPosEntry, found := b.bookMap[curPosKey]
	if !found {
		log.Error("could not find current position in book")
		return
	}

	nextPosEntry, found := b.bookMap[nextPosKey]
	if found {
		nextPosEntry.Counter++
		b.bookMap[nextPosKey] = nextPosEntry
		return
	}

	b.bookMap[nextPosKey] = BookEntry{ZobristKey: nextPosKey, Counter: 1}
	currentPosEntry.Moves = append(currentPosEntry.Moves, Successor{Move: move, NextEntry: nextPosKey})
	b.bookMap[curPosKey] = currentPosEntry
}

// cacheDir returns the path of the embedded Badger database that backs
// bookPath's on-disk cache - a directory of SST/value-log files, not a
// single file, since that is Badger's native on-disk layout.
func cacheDir(bookPath string) string {
	return bookPath + ".badgerdb"
}

func zobristKeyBytes(key uint64) []byte {
	buf := make([]byte, 8)
	binary.BigEndian.PutUint64(buf, key)
	return buf
}

// loadFromCache populates the book from a Badger key-value store keyed
// by each position's Zobrist key, gob-encoding the BookEntry as the
// value. Returns false (not an error) if no cache directory exists yet.
func (b *Book) loadFromCache(bookPath string) (bool, error) {
	dir := cacheDir(bookPath)
	if _, err := os.Stat(dir); err != nil {
		return false, err
	}

	db, err := badger.Open(badger.DefaultOptions(dir).WithLogger(nil))
	if err != nil {
		return false, err
	}
	defer db.Close()

	bookLock.Lock()
	defer bookLock.Unlock()

	loaded := map[uint64]BookEntry{}
	err = db.View(func(txn *badger.Txn) error {
		it := txn.NewIterator(badger.DefaultIteratorOptions)
		defer it.Close()
		for it.Rewind(); it.Valid(); it.Next() {
			item := it.Item()
			key := binary.BigEndian.Uint64(item.Key())
			var entry BookEntry
			if err := item.Value(func(val []byte) error {
				return gob.NewDecoder(bytes.NewReader(val)).Decode(&entry)
			}); err != nil {
				return err
			}
			loaded[key] = entry
		}
		return nil
	})
	if err != nil {
		return false, err
	}

	b.bookMap = loaded
	b.rootEntry = uint64(position.NewPosition().ZobristKey())
	return true, nil
}

// saveToCache persists the in-memory book map to an embedded Badger
// database directory, one key-value pair per Zobrist-keyed position.
func (b *Book) saveToCache(bookPath string) (string, int64, error) {
	dir := cacheDir(bookPath)

	db, err := badger.Open(badger.DefaultOptions(dir).WithLogger(nil))
	if err != nil {
		return dir, 0, err
	}
	defer db.Close()

	bookLock.Lock()
	defer bookLock.Unlock()

	wb := db.NewWriteBatch()
	defer wb.Cancel()
	for key, entry := range b.bookMap {
		var buf bytes.Buffer
		if err := gob.NewEncoder(&buf).Encode(entry); err != nil {
			return dir, 0, err
		}
		if err := wb.Set(zobristKeyBytes(key), buf.Bytes()); err != nil {
			return dir, 0, err
		}
	}
	if err := wb.Flush(); err != nil {
		return dir, 0, err
	}

	var size int64
	_ = filepath.Walk(dir, func(_ string, info os.FileInfo, err error) error {
		if err == nil && !info.IsDir() {
			size += info.Size()
		}
		return nil
	})
	return dir, size, nil
}
