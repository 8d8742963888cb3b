/*
 * FrankyGo - UCI chess engine in GO for learning purposes
 *
 * MIT License
 *
 * Copyright (c) 2018-2020 Frank Kopp
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

import (
	"golang.org/x/sync/errgroup"

	"github.com/fkopp/moveengine/internal/config"
)

// Magic holds the magic-bitboard lookup data for a single (square, slider)
// pair: the relevant-occupancy mask, the magic multiplier, the shift and a
// slice into the square's region of the shared attacks table.
// Taken from Stockfish; see https://www.chessprogramming.org/Magic_Bitboards.
type Magic struct {
	Mask    Bitboard
	Magic   Bitboard
	Attacks []Bitboard
	Shift   uint
}

// index computes the perfect-hash index for occupied under this magic:
// ((occupied & Mask) * Magic) >> Shift.
func (m *Magic) index(occupied Bitboard) uint {
	occ := occupied & m.Mask
	occ *= m.Magic
	occ >>= m.Shift
	return uint(occ)
}

// attacks returns the precomputed attack bitboard for this square's slider
// given the occupancy occupied.
func (m *Magic) attacks(occupied Bitboard) Bitboard {
	return m.Attacks[m.index(occupied)]
}

// rookDirections and bishopDirections are the four ray directions each
// slider moves along; used both by relevant-occupancy mask construction and
// by the classical ray walker used to build the reference attack sets.
var (
	rookDirections   = [4]Direction{North, East, South, West}
	bishopDirections = [4]Direction{Northeast, Southeast, Southwest, Northwest}
)

// initMagicBitboards allocates the shared attack tables and populates the
// per-square Magic entries for both sliders. It first tries to load a
// persisted, validated magics file from config.MagicsFile (DefaultMagicsPath
// if that is empty); if that is unavailable or fails validation it falls
// back to discovery and persists the result to the same path.
func initMagicBitboards() {
	rookTable = make([]Bitboard, 0x19000)
	bishopTable = make([]Bitboard, 0x1480)

	path := config.MagicsFile
	if path == "" {
		path = DefaultMagicsPath
	}
	loaded, err := LoadMagics(path)
	if err == nil && loaded != nil {
		if applyLoadedMagics(loaded) == nil {
			return
		}
	}

	discoverMagics(&rookTable, &rookMagics, &rookDirections)
	discoverMagics(&bishopTable, &bishopMagics, &bishopDirections)

	_ = PersistMagics(path)
}

// magicSeeds are the optimal PRNG seeds (by rank) to find magics quickly;
// from Stockfish.
var magicSeeds = [8]uint64{728, 10316, 55013, 32803, 12281, 15100, 16645, 255}

// discoverMagics computes, for every square, the relevant-occupancy mask and
// its attack-table sub-slice of table (a cheap, sequential pass, since each
// square's slice offset depends on the cumulative size of the squares before
// it), then searches for each square's magic multiplier in parallel: one
// goroutine per square, joined before any result is used. The per-square
// search only ever touches that square's own disjoint sub-slice of table, so
// the parallel phase needs no further synchronization.
func discoverMagics(table *[]Bitboard, magics *[64]Magic, directions *[4]Direction) {
	size := 0
	for sq := SqA1; sq <= SqH8; sq++ {
		edges := ((Rank1_Bb | Rank8_Bb) &^ sq.RankOf().Bb()) | ((FileA_Bb | FileH_Bb) &^ sq.FileOf().Bb())

		m := &(*magics)[sq]
		m.Mask = slidingAttack(directions, sq, BbZero) &^ edges
		m.Shift = uint(64 - m.Mask.PopCount())

		if sq == SqA1 {
			m.Attacks = *table
		} else {
			m.Attacks = magics[sq-1].Attacks[size:]
		}

		b := BbZero
		size = 0
		for {
			size++
			b = (b - m.Mask) & m.Mask
			if b == 0 {
				break
			}
		}
	}

	var group errgroup.Group
	for sq := SqA1; sq <= SqH8; sq++ {
		sq := sq
		group.Go(func() error {
			findMagicForSquare(&(*magics)[sq], sq, directions, magicSeeds[sq.RankOf()])
			return nil
		})
	}
	_ = group.Wait()
}

// findMagicForSquare searches for a magic multiplier that perfectly hashes
// every blocker subset of m.Mask to the attack bitboard the classical ray
// walker computes for it, filling m.Magic and m.Attacks in place.
func findMagicForSquare(m *Magic, sq Square, directions *[4]Direction, seed uint64) {
	var occupancy [4096]Bitboard
	var reference [4096]Bitboard
	var epoch [4096]int
	cnt := 0

	// Carry-Rippler: enumerate every subset of Mask.
	size := 0
	b := BbZero
	for {
		occupancy[size] = b
		reference[size] = slidingAttack(directions, sq, b)
		size++
		b = (b - m.Mask) & m.Mask
		if b == 0 {
			break
		}
	}

	rng := newPrnG(seed)
	for i := 0; i < size; {
		for m.Magic = 0; ; {
			m.Magic = Bitboard(rng.sparseRand())
			if ((m.Magic * m.Mask) >> 56).PopCount() < 6 {
				break
			}
		}
		cnt++
		for i = 0; i < size; i++ {
			idx := m.index(occupancy[i])
			if epoch[idx] < cnt {
				epoch[idx] = cnt
				m.Attacks[idx] = reference[i]
			} else if m.Attacks[idx] != reference[i] {
				break
			}
		}
	}
}

// slidingAttack walks rays outward from sq in each of the four directions,
// stopping at (and including) the first blocker in occupied. Only used by
// the cold discovery/validation path, never during move generation.
func slidingAttack(directions *[4]Direction, sq Square, occupied Bitboard) Bitboard {
	attack := BbZero
	for _, d := range directions {
		s := sq
		for {
			next := s.To(d)
			if !next.IsValid() || SquareDistance(s, next) != 1 {
				break
			}
			s = next
			attack.PushSquare(s)
			if occupied.Has(s) {
				break
			}
		}
	}
	return attack
}

// SquareDistance returns the Chebyshev distance between two squares (the
// number of king steps to get from one to the other).
func SquareDistance(s1, s2 Square) int {
	if s1 == s2 {
		return 0
	}
	return squareDistance[s1][s2]
}

// validateMagics re-derives the blocker subsets for every square and checks
// that the stored magic+shift still produces a collision-free hash into the
// stored attacks, per §4.1's load-time validation requirement.
func validateMagics(magics *[64]Magic, directions *[4]Direction) bool {
	for sq := SqA1; sq <= SqH8; sq++ {
		m := &magics[sq]
		edges := ((Rank1_Bb | Rank8_Bb) &^ sq.RankOf().Bb()) | ((FileA_Bb | FileH_Bb) &^ sq.FileOf().Bb())
		wantMask := slidingAttack(directions, sq, BbZero) &^ edges
		if wantMask != m.Mask {
			return false
		}
		b := BbZero
		for {
			want := slidingAttack(directions, sq, b)
			if m.attacks(b) != want {
				return false
			}
			b = (b - m.Mask) & m.Mask
			if b == 0 {
				break
			}
		}
	}
	return true
}

// PrnG is the xorshift64star pseudo-random generator used to search for
// magic multipliers. Based on public-domain code by Sebastiano Vigna (2014).
type PrnG struct {
	s uint64
}

func newPrnG(seed uint64) *PrnG {
	return &PrnG{s: seed}
}

func (r *PrnG) rand64() uint64 {
	r.s ^= r.s >> 12
	r.s ^= r.s << 25
	r.s ^= r.s >> 27
	return r.s * 2685821657736338717
}

// sparseRand ANDs three rand64 draws together, biasing toward low-popcount
// candidates, which empirically find magics faster.
func (r *PrnG) sparseRand() uint64 {
	return r.rand64() & r.rand64() & r.rand64()
}
