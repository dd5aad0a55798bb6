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

package testsuite

import (
	"os"
	"time"

	"gopkg.in/yaml.v3"

	myLogging "github.com/yomigo-shogi/yomigo/internal/logging"
	"github.com/yomigo-shogi/yomigo/internal/movegen"
	"github.com/yomigo-shogi/yomigo/internal/moveslice"
	"github.com/yomigo-shogi/yomigo/internal/position"
	. "github.com/yomigo-shogi/yomigo/internal/types"
)

// yamlPosition is one fixture entry: an SFEN plus the expected result,
// using the same "bm"/"am"/"dm" vocabulary as the EPD opcodes. At most
// one of BestMoves/AvoidMoves/MateIn should be set per entry.
type yamlPosition struct {
	ID         string   `yaml:"id"`
	Sfen       string   `yaml:"sfen"`
	BestMoves  []string `yaml:"bm,omitempty"`
	AvoidMoves []string `yaml:"am,omitempty"`
	MateIn     int      `yaml:"dm,omitempty"`
}

// yamlSuite is the top-level document read from a fixture file.
type yamlSuite struct {
	Positions []yamlPosition `yaml:"positions"`
}

// NewTestSuiteYAML reads a YAML fixture file (as opposed to the EPD text
// format read by NewTestSuite) and builds a runnable TestSuite from it.
// Entries carry the same bm/am/dm expectations as EPD lines; the
// package's own tests load EPD files through NewTestSuite.
func NewTestSuiteYAML(filePath string, searchTime time.Duration, depth int) (*TestSuite, error) {
	out.Println("Preparing YAML Test Suite", filePath)

	if log == nil {
		log = myLogging.GetLog()
	}

	raw, err := os.ReadFile(filePath)
	if err != nil {
		log.Errorf("File %q could not be read: %s", filePath, err)
		return nil, err
	}

	var doc yamlSuite
	if err := yaml.Unmarshal(raw, &doc); err != nil {
		log.Errorf("File %q is not valid YAML: %s", filePath, err)
		return nil, err
	}

	ts := &TestSuite{
		Tests:    make([]*Test, 0, len(doc.Positions)),
		Time:     searchTime,
		Depth:    depth,
		FilePath: filePath,
	}

	mg := movegen.NewMoveGen()
	for _, entry := range doc.Positions {
		test := yamlEntryToTest(mg, entry)
		if test == nil {
			continue
		}
		ts.Tests = append(ts.Tests, test)
	}

	return ts, nil
}

func yamlEntryToTest(mg *movegen.MoveGen, entry yamlPosition) *Test {
	p, err := position.NewPositionSfen(entry.Sfen)
	if err != nil {
		log.Warningf("sfen of YAML fixture %q is invalid: %s", entry.ID, entry.Sfen)
		return nil
	}

	switch {
	case entry.MateIn > 0:
		return &Test{
			id:        entry.ID,
			fen:       entry.Sfen,
			tType:     DM,
			mateDepth: entry.MateIn,
			line:      entry.ID,
		}
	case len(entry.BestMoves) > 0:
		moves := usiMovesToTargets(mg, p, entry.BestMoves)
		if moves.Len() == 0 {
			log.Warningf("none of the bm moves for %q are legal on %q", entry.ID, entry.Sfen)
			return nil
		}
		return &Test{id: entry.ID, fen: entry.Sfen, tType: BM, targetMoves: *moves, line: entry.ID}
	case len(entry.AvoidMoves) > 0:
		moves := usiMovesToTargets(mg, p, entry.AvoidMoves)
		if moves.Len() == 0 {
			log.Warningf("none of the am moves for %q are legal on %q", entry.ID, entry.Sfen)
			return nil
		}
		return &Test{id: entry.ID, fen: entry.Sfen, tType: AM, targetMoves: *moves, line: entry.ID}
	default:
		log.Warningf("YAML fixture %q names neither bm, am nor dm", entry.ID)
		return nil
	}
}

func usiMovesToTargets(mg *movegen.MoveGen, p *position.Position, usiMoves []string) *moveslice.MoveSlice {
	moves := moveslice.NewMoveSlice(len(usiMoves))
	for _, s := range usiMoves {
		if m := mg.GetMoveFromUsi(p, s); m != MoveNone {
			moves.PushBack(m)
		}
	}
	return moves
}
