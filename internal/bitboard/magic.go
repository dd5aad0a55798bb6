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

package bitboard

import (
	"math/bits"

	. "github.com/yomigo-shogi/yomigo/internal/types"
)

// Magic adapts the classic 64-square fancy-magic technique to 81
// squares, where a sliding ray's relevant occupancy can straddle both
// bitboard lanes. Rather than one 64-bit multiply over a merged 81-bit
// word, each lane is hashed independently with its own mask/magic/shift
// - exactly the teacher's single-lane Magic{Mask, Magic, Attacks, Shift}
// technique, run twice - and the two lane-local indices are combined by
// concatenation rather than addition, since they are independent
// dimensions of one occupancy space.
type Magic struct {
	MaskLo, MaskHi     uint64
	MagicLo, MagicHi   uint64
	ShiftLo, ShiftHi   uint
	SizeHi             int
	Attacks            []Bitboard
}

// index computes the flat offset into m.Attacks for the given full
// board occupancy.
func (m *Magic) index(occ Bitboard) int {
	idxLo := int((occ.lane(0) & m.MaskLo) * m.MagicLo >> m.ShiftLo)
	idxHi := int((occ.lane(1) & m.MaskHi) * m.MagicHi >> m.ShiftHi)
	return idxLo*m.SizeHi + idxHi
}

// lane exposes a lane for package-internal use by magic search/index code
// without making Bitboard's internal representation public API.
func (b Bitboard) lane(lane int) uint64 {
	if lane == 0 {
		return b.v[0]
	}
	return b.v[1]
}

var bishopMagics [SqLength]Magic
var rookMagics [SqLength]Magic

var bishopDirs = [4]Direction{Northeast, Northwest, Southeast, Southwest}
var rookDirs = [4]Direction{North, South, East, West}

// slidingAttack walks every direction from sq over the real occupied
// set, stopping at (and including) the first blocker - used only to
// populate tables at init time, never on the search hot path.
func slidingAttack(dirs [4]Direction, sq Square, occupied Bitboard) Bitboard {
	var attack Bitboard
	for _, d := range dirs {
		cur := sq
		for {
			next := cur.To(d)
			if next == SqNone {
				break
			}
			attack = attack.PushSquare(next)
			if occupied.Has(next) {
				break
			}
			cur = next
		}
	}
	return attack
}

// slidingMask is slidingAttack against an empty board with the final
// square of each ray excluded, the same "board edges don't affect the
// index" trick lance.go applies to a single ray, generalized to four.
func slidingMask(dirs [4]Direction, sq Square) Bitboard {
	var mask Bitboard
	for _, d := range dirs {
		cur := sq
		var ray []Square
		for {
			next := cur.To(d)
			if next == SqNone {
				break
			}
			ray = append(ray, next)
			cur = next
		}
		for i := 0; i < len(ray)-1; i++ {
			mask = mask.PushSquare(ray[i])
		}
	}
	return mask
}

func init() {
	initMagics(&bishopMagics, bishopDirs)
	initMagics(&rookMagics, rookDirs)
}

// prnG is the xorshift64star generator the teacher's magic search uses,
// carried over unchanged: deterministic, seeded per square so repeated
// runs reproduce the same tables.
type prnG struct{ s uint64 }

func newPrnG(seed uint64) *prnG { return &prnG{s: seed} }

func (p *prnG) rand64() uint64 {
	p.s ^= p.s >> 12
	p.s ^= p.s << 25
	p.s ^= p.s >> 27
	return p.s * 2685821657736338717
}

func (p *prnG) sparseRand() uint64 {
	return p.rand64() & p.rand64() & p.rand64()
}

// initMagics populates one lane-pair magic table per square for the
// given direction set (bishop's four diagonals or rook's four
// orthogonals), searching independently for each lane's multiplier the
// way the teacher's initMagics searches one 64-bit multiplier per
// square.
func initMagics(table *[SqLength]Magic, dirs [4]Direction) {
	seeds := [RankLength]uint64{728, 10316, 55013, 32803, 12281, 15100, 16645, 255, 4217}
	for sq := Square(0); sq < SqLength; sq++ {
		mask := slidingMask(dirs, sq)
		maskLo, maskHi := mask.lane(0), mask.lane(1)
		shiftLo := uint(64 - bits.OnesCount64(maskLo))
		shiftHi := uint(64 - bits.OnesCount64(maskHi))
		sizeLo := 1 << bits.OnesCount64(maskLo)
		sizeHi := 1 << bits.OnesCount64(maskHi)

		magicLo := findLaneMagic(maskLo, shiftLo, seeds[sq.RankOf()])
		magicHi := findLaneMagic(maskHi, shiftHi, seeds[sq.RankOf()]+1)

		attacks := make([]Bitboard, sizeLo*sizeHi)
		for subLo := uint64(0); ; {
			idxLo := int(subLo * magicLo >> shiftLo)
			for subHi := uint64(0); ; {
				idxHi := int(subHi * magicHi >> shiftHi)
				occ := Bitboard{}
				occ.v_set(0, subLo)
				occ.v_set(1, subHi)
				attacks[idxLo*sizeHi+idxHi] = slidingAttack(dirs, sq, occ)
				subHi = (subHi - maskHi) & maskHi
				if subHi == 0 {
					break
				}
			}
			subLo = (subLo - maskLo) & maskLo
			if subLo == 0 {
				break
			}
		}

		table[sq] = Magic{
			MaskLo: maskLo, MaskHi: maskHi,
			MagicLo: magicLo, MagicHi: magicHi,
			ShiftLo: shiftLo, ShiftHi: shiftHi,
			SizeHi: sizeHi, Attacks: attacks,
		}
	}
}

// v_set is the mutating counterpart of v(), used only while building
// magic attack tables from enumerated occupancy subsets.
func (b *Bitboard) v_set(lane int, val uint64) { b.v[lane] = val }

// findLaneMagic searches for a magic multiplier that hashes every
// subset of mask without collision, mirroring the teacher's
// epoch-array verification trick to avoid clearing the attempt buffer
// between failed candidates. A zero mask (e.g. a corner square with no
// interior ray on one lane) trivially succeeds with magic 0.
func findLaneMagic(mask uint64, shift uint, seed uint64) uint64 {
	if mask == 0 {
		return 0
	}
	size := 1 << bits.OnesCount64(mask)
	prn := newPrnG(seed)
	epoch := make([]int, size)
	used := make([]uint64, size)
	cnt := 0
search:
	for {
		magic := prn.sparseRand()
		if bits.OnesCount64((mask*magic)>>56) < 6 {
			continue
		}
		cnt++
		sub := uint64(0)
		for {
			idx := int(sub * magic >> shift)
			if epoch[idx] < cnt {
				epoch[idx] = cnt
				used[idx] = sub
			} else if used[idx] != sub {
				continue search
			}
			sub = (sub - mask) & mask
			if sub == 0 {
				break
			}
		}
		return magic
	}
}

// AttacksBb returns the sliding attack set for piece type pt (Bishop,
// Rook, Horse or Dragon) from sq given the full board occupancy. Horse
// and Dragon additionally add the king step their promotion grants.
func AttacksBb(pt PieceType, sq Square, occupied Bitboard) Bitboard {
	switch pt {
	case Bishop:
		return bishopAttacks(sq, occupied)
	case Rook:
		return rookAttacks(sq, occupied)
	case Horse:
		return bishopAttacks(sq, occupied).Or(KingAttacks[sq])
	case Dragon:
		return rookAttacks(sq, occupied).Or(KingAttacks[sq])
	default:
		panic("AttacksBb: not a sliding piece type")
	}
}

func bishopAttacks(sq Square, occupied Bitboard) Bitboard {
	m := &bishopMagics[sq]
	return m.Attacks[m.index(occupied)]
}

func rookAttacks(sq Square, occupied Bitboard) Bitboard {
	m := &rookMagics[sq]
	return m.Attacks[m.index(occupied)]
}
