//
// FrankyGo - UCI chess engine in GO for learning purposes
//
// MIT License
//
// Copyright (c) 2018-2020 Frank Kopp
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
//

package types

// rayCompute walks from sq towards the board edge along d, stopping as soon
// as a step would leave the board or skip more than one square (file wrap).
// Unlike slidingAttack in magic.go this never looks at occupancy: rays are a
// pure board-geometry table, independent of the magic attack tables.
func rayCompute(sq Square, d Direction) Bitboard {
	ray := BbZero
	s := sq
	for {
		next := s.To(d)
		if !next.IsValid() || SquareDistance(s, next) != 1 {
			break
		}
		s = next
		ray.PushSquare(s)
	}
	return ray
}

// raysPreCompute builds rays[dirIndex][sq], the open ray from sq to the
// board edge along Directions[dirIndex], for all 8 directions and squares.
func raysPreCompute() {
	for dirIndex, d := range Directions {
		for sq := SqA1; sq <= SqH8; sq++ {
			rays[dirIndex][sq] = rayCompute(sq, d)
		}
	}
}

// lineDirectionIndex returns the index into Directions of the direction that
// steps from s1 towards s2, or -1 if s1 and s2 do not lie on a common
// file, rank or diagonal.
func lineDirectionIndex(s1, s2 Square) int {
	for dirIndex, d := range Directions {
		if rays[dirIndex][s1].Has(s2) {
			_ = d
			return dirIndex
		}
	}
	return -1
}

// intermediateAndLinePreCompute builds both the exclusive Intermediate table
// (squares strictly between s1 and s2) and the inclusive LineBetween table
// (the segment from s1 to s2 including both endpoints), for every pair of
// squares that share a file, rank or diagonal.
func intermediateAndLinePreCompute() {
	for s1 := SqA1; s1 <= SqH8; s1++ {
		for s2 := SqA1; s2 <= SqH8; s2++ {
			if s1 == s2 {
				continue
			}
			dirIndex := lineDirectionIndex(s1, s2)
			if dirIndex == -1 {
				continue
			}
			lineBetween[s1][s2] = s1.Bb() | s2.Bb()
			s := s1
			d := Directions[dirIndex]
			for {
				next := s.To(d)
				s = next
				if s == s2 {
					break
				}
				intermediate[s1][s2].PushSquare(s)
				lineBetween[s1][s2].PushSquare(s)
			}
		}
	}
}

// axisMaskPreCompute builds, for every square, the full file, rank,
// a1-h8-sense diagonal and a8-h1-sense diagonal line it lies on.
func axisMaskPreCompute() {
	// Directions index: North=0,South=1,West=2,East=3,Northwest=4,Northeast=5,Southwest=6,Southeast=7
	const (
		idxNorth = 0
		idxSouth = 1
		idxWest  = 2
		idxEast  = 3
		idxNW    = 4
		idxNE    = 5
		idxSW    = 6
		idxSE    = 7
	)
	for sq := SqA1; sq <= SqH8; sq++ {
		axisMask[AxisFile][sq] = sq.FileBb()
		axisMask[AxisRank][sq] = sq.RankBb()
		axisMask[AxisDiagonal][sq] = rays[idxNE][sq] | rays[idxSW][sq] | sq.Bb()
		axisMask[AxisAntiDiag][sq] = rays[idxNW][sq] | rays[idxSE][sq] | sq.Bb()
		_ = idxNorth
		_ = idxSouth
		_ = idxWest
		_ = idxEast
	}
}
