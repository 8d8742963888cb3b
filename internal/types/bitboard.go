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

// Package types holds the board-representation primitives shared by the
// whole engine: colors, squares, piece types, bitboards, the precomputed
// square-data tables and the magic-bitboard slider attack tables.
package types

import (
	"fmt"
	"math/bits"
	"sync"
)

// Bitboard is a 64-bit unsigned int with one bit per board square.
type Bitboard uint64

// Various constant bitboards.
const (
	BbZero = Bitboard(0)
	BbAll  = ^BbZero
	BbOne  = Bitboard(1)

	FileA_Bb Bitboard = 0x0101010101010101
	FileB_Bb          = FileA_Bb << 1
	FileC_Bb          = FileA_Bb << 2
	FileD_Bb          = FileA_Bb << 3
	FileE_Bb          = FileA_Bb << 4
	FileF_Bb          = FileA_Bb << 5
	FileG_Bb          = FileA_Bb << 6
	FileH_Bb          = FileA_Bb << 7

	Rank1_Bb Bitboard = 0xFF
	Rank2_Bb          = Rank1_Bb << (8 * 1)
	Rank3_Bb          = Rank1_Bb << (8 * 2)
	Rank4_Bb          = Rank1_Bb << (8 * 3)
	Rank5_Bb          = Rank1_Bb << (8 * 4)
	Rank6_Bb          = Rank1_Bb << (8 * 5)
	Rank7_Bb          = Rank1_Bb << (8 * 6)
	Rank8_Bb          = Rank1_Bb << (8 * 7)

	MsbMask   = ^(Bitboard(1) << 63)
	Rank8Mask = ^Rank8_Bb
	FileAMask = ^FileA_Bb
	FileHMask = ^FileH_Bb
)

// Bb returns a Bitboard with only this square's bit set.
func (sq Square) Bb() Bitboard {
	return sqBb[sq]
}

// FileBb returns a Bitboard of the file this square is on.
func (sq Square) FileBb() Bitboard {
	return sqToFileBb[sq]
}

// RankBb returns a Bitboard of the rank this square is on.
func (sq Square) RankBb() Bitboard {
	return sqToRankBb[sq]
}

// PushSquare sets the bit for sq in b.
func PushSquare(b Bitboard, sq Square) Bitboard {
	return b | sqBb[sq]
}

// PushSquare sets the bit for sq in the receiver.
func (b *Bitboard) PushSquare(sq Square) Bitboard {
	*b |= sqBb[sq]
	return *b
}

// PopSquare clears the bit for sq in b.
func PopSquare(b Bitboard, sq Square) Bitboard {
	return b &^ sqBb[sq]
}

// PopSquare clears the bit for sq in the receiver.
func (b *Bitboard) PopSquare(sq Square) Bitboard {
	*b = *b &^ sqBb[sq]
	return *b
}

// Has reports whether sq's bit is set.
func (b Bitboard) Has(sq Square) bool {
	return b&sqBb[sq] != 0
}

// ShiftBitboard shifts all bits of b by one square in direction d, clearing
// bits that would wrap around a file edge.
func ShiftBitboard(b Bitboard, d Direction) Bitboard {
	switch d {
	case North:
		return (Rank8Mask & b) << 8
	case South:
		return b >> 8
	case East:
		return (MsbMask & b) << 1 & FileAMask
	case West:
		return (b >> 1) & FileHMask
	case Northeast:
		return (Rank8Mask & b) << 9 & FileAMask
	case Northwest:
		return (Rank8Mask & b) << 7 & FileHMask
	case Southeast:
		return (b >> 7) & FileAMask
	case Southwest:
		return (b >> 9) & FileHMask
	}
	return b
}

// Lsb returns the least significant set bit as a Square (SqA1 if bit 0 set).
// Returns SqNone (64) if b is empty.
func (b Bitboard) Lsb() Square {
	return Square(bits.TrailingZeros64(uint64(b)))
}

// Msb returns the most significant set bit as a Square. Returns SqNone if b
// is empty.
func (b Bitboard) Msb() Square {
	if b == BbZero {
		return SqNone
	}
	return Square(63 - bits.LeadingZeros64(uint64(b)))
}

// PopLsb returns the Lsb square and clears it from the receiver.
func (b *Bitboard) PopLsb() Square {
	if *b == BbZero {
		return SqNone
	}
	lsb := b.Lsb()
	*b &= *b - 1
	return lsb
}

// PopCount returns the number of set bits in b.
func (b Bitboard) PopCount() int {
	return bits.OnesCount64(uint64(b))
}

// String returns the 64-bit binary representation of b.
func (b Bitboard) String() string {
	return fmt.Sprintf("%064b", uint64(b))
}

// StringBoard renders b as an 8x8 ascii board, rank 8 at the top.
func (b Bitboard) StringBoard() string {
	out := "+---+---+---+---+---+---+---+---+\n"
	for r := Rank8; ; r-- {
		for f := FileA; f <= FileH; f++ {
			if b.Has(SquareOf(f, r)) {
				out += "| X "
			} else {
				out += "|   "
			}
		}
		out += "|\n+---+---+---+---+---+---+---+---+\n"
		if r == Rank1 {
			break
		}
	}
	return out
}

// GetAttacksBb returns the attack bitboard of a piece of type pt standing on
// sq given the occupancy occupied. For sliders this hashes through the
// magic tables; for King/Knight the precomputed pseudo-attacks are used and
// occupied is ignored. Pawn attacks are not handled here, see GetPawnAttacks.
func GetAttacksBb(pt PieceType, sq Square, occupied Bitboard) Bitboard {
	switch pt {
	case Bishop:
		return bishopMagics[sq].attacks(occupied)
	case Rook:
		return rookMagics[sq].attacks(occupied)
	case Queen:
		return bishopMagics[sq].attacks(occupied) | rookMagics[sq].attacks(occupied)
	case Knight, King:
		return nonSliderAttacks[pt][sq]
	default:
		panic(fmt.Sprintf("GetAttacksBb called with unsupported piece type %d", pt))
	}
}

// GetPawnAttacks returns the squares a pawn of color c on sq attacks.
func GetPawnAttacks(c Color, sq Square) Bitboard {
	return pawnAttacks[c][sq]
}

// KingAttacks returns the king's empty-board attack set for sq.
func KingAttacks(sq Square) Bitboard {
	return nonSliderAttacks[King][sq]
}

// KnightAttacks returns the knight's attack set for sq.
func KnightAttacks(sq Square) Bitboard {
	return nonSliderAttacks[Knight][sq]
}

// LineBetween returns the inclusive bitboard of all squares from s1 to s2
// along their shared file, rank or diagonal, including both endpoints. It
// is zero if s1 and s2 do not lie on a common line (or are equal).
func LineBetween(s1, s2 Square) Bitboard {
	return lineBetween[s1][s2]
}

// Intermediate returns the (exclusive) bitboard of squares strictly between
// s1 and s2 along their shared line. Zero if they share no line.
func Intermediate(s1, s2 Square) Bitboard {
	return intermediate[s1][s2]
}

// AxisMask returns the full file/rank/diagonal/anti-diagonal line through sq
// for the given axis, used to prune sliding-piece moves for a pinned piece.
func AxisMask(axis Axis, sq Square) Bitboard {
	return axisMask[axis][sq]
}

// SquaresToEdge returns the number of squares from sq to the board edge
// along Directions[dirIndex] (dirIndex in 0..7, see Directions).
func SquaresToEdge(sq Square, dirIndex int) int {
	return squaresToEdge[sq][dirIndex]
}

// KingSideCastleMask returns the squares (excluding the king's own square)
// involved in king-side castling for color c: f- and g-file squares on the
// back rank, which must both be empty and (for the king's path) unattacked.
func KingSideCastleMask(c Color) Bitboard {
	return kingSideCastleMask[c]
}

// KingSideCastlePathMask returns the squares the king actually transits
// through (and must not be attacked on) for king-side castling; identical to
// KingSideCastleMask since the king crosses both squares it passes over.
func KingSideCastlePathMask(c Color) Bitboard {
	return kingSideCastleMask[c]
}

// QueenSideCastleMask returns the squares (excluding the king's own square)
// that must be empty for queen-side castling: b-, c- and d-file squares.
func QueenSideCastleMask(c Color) Bitboard {
	return queenSideCastleMask[c]
}

// QueenSideCastlePathMask returns the squares the king actually transits
// through for queen-side castling (c- and d-file), excluding the b-file
// square which must be empty but is not crossed by the king.
func QueenSideCastlePathMask(c Color) Bitboard {
	return queenSideCastlePathMask[c]
}

// GetCastlingRights returns which castling rights are voided by a piece
// arriving at or departing from sq (king or rook start squares); CastlingNone
// for every other square.
func GetCastlingRights(sq Square) CastlingRights {
	return castlingRightsBySquare[sq]
}

// ////////////////////
// Precomputed tables and one-shot initialization
// ////////////////////

var (
	sqBb       [SqLength]Bitboard
	rankBb     [8]Bitboard
	fileBb     [8]Bitboard
	sqToFileBb [SqLength]Bitboard
	sqToRankBb [SqLength]Bitboard

	squareDistance [SqLength][SqLength]int

	pawnAttacks      [2][SqLength]Bitboard
	nonSliderAttacks [PtLength][SqLength]Bitboard

	rookTable  []Bitboard
	rookMagics [SqLength]Magic

	bishopTable  []Bitboard
	bishopMagics [SqLength]Magic

	filesWestMask  [SqLength]Bitboard
	filesEastMask  [SqLength]Bitboard
	ranksNorthMask [SqLength]Bitboard
	ranksSouthMask [SqLength]Bitboard

	rays         [8][SqLength]Bitboard
	intermediate [SqLength][SqLength]Bitboard
	lineBetween  [SqLength][SqLength]Bitboard
	axisMask     [AxisLength][SqLength]Bitboard

	squaresToEdge [SqLength][8]int

	kingSideCastleMask      [2]Bitboard
	queenSideCastleMask     [2]Bitboard
	queenSideCastlePathMask [2]Bitboard
	castlingRightsBySquare  [SqLength]CastlingRights

	initOnce sync.Once
)

// Init builds every precomputed table (square bitboards, rays, line-between,
// axis masks, castling masks and the magic slider attack tables). It is
// idempotent and safe to call from multiple goroutines; only the first call
// does any work. The magic tables are loaded from the persisted magics file
// if present (see LoadMagics), falling back to discovery otherwise.
func Init() {
	initOnce.Do(func() {
		rankFileBbPreCompute()
		squareBitboardsPreCompute()
		squareDistancePreCompute()
		nonSlidingAttacksPreCompute()
		neighbourMasksPreCompute()
		squaresToEdgePreCompute()
		initMagicBitboards()
		raysPreCompute()
		intermediateAndLinePreCompute()
		axisMaskPreCompute()
		castleMasksPreCompute()
	})
}

func rankFileBbPreCompute() {
	for i := Rank1; i <= Rank8; i++ {
		rankBb[i] = Rank1_Bb << (8 * i)
	}
	for i := FileA; i <= FileH; i++ {
		fileBb[i] = FileA_Bb << i
	}
}

func squareBitboardsPreCompute() {
	for sq := SqA1; sq < SqNone; sq++ {
		sqBb[sq] = Bitboard(1) << sq
		sqToFileBb[sq] = FileA_Bb << sq.FileOf()
		sqToRankBb[sq] = Rank1_Bb << (8 * sq.RankOf())
	}
}

func squareDistancePreCompute() {
	for sq1 := SqA1; sq1 <= SqH8; sq1++ {
		for sq2 := SqA1; sq2 <= SqH8; sq2++ {
			if sq1 != sq2 {
				fd := absInt(int(sq2.FileOf()) - int(sq1.FileOf()))
				rd := absInt(int(sq2.RankOf()) - int(sq1.RankOf()))
				if fd > rd {
					squareDistance[sq1][sq2] = fd
				} else {
					squareDistance[sq1][sq2] = rd
				}
			}
		}
	}
}

func absInt(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

// nonSlidingAttacksPreCompute builds king, pawn and knight attack sets by
// stepping from every square in every piece-specific direction, discarding
// any step that would wrap a board edge (checked via squareDistance < 3).
func nonSlidingAttacksPreCompute() {
	var steps = [][]Direction{
		{},
		{Northwest, North, Northeast, East, Southeast, South, Southwest, West}, // king
		{Northwest, Northeast},                                                 // pawn (White; negate for Black)
		{West + Northwest, East + Northeast, North + Northwest, North + Northeast,
			South + Southwest, South + Southeast, West + Southwest, East + Southeast}, // knight
	}
	for c := White; c <= Black; c++ {
		for _, pt := range []PieceType{King, Pawn, Knight} {
			for s := SqA1; s <= SqH8; s++ {
				for _, step := range steps[pt] {
					to := Square(int(s) + c.Direction()*int(step))
					if to.IsValid() && squareDistance[s][to] < 3 {
						if pt == Pawn {
							pawnAttacks[c][s] |= sqBb[to]
						} else {
							nonSliderAttacks[pt][s] |= sqBb[to]
						}
					}
				}
			}
		}
	}
}

// Direction returns +1 for White, -1 for Black; used to mirror king/knight
// step tables (written for White) onto Black without a second table.
func (c Color) Direction() int {
	if c == White {
		return 1
	}
	return -1
}

func neighbourMasksPreCompute() {
	for square := SqA1; square <= SqH8; square++ {
		f := int(square.FileOf())
		r := int(square.RankOf())
		for j := 0; j <= 7; j++ {
			if j < f {
				filesWestMask[square] |= FileA_Bb << j
			}
			if 7-j > f {
				filesEastMask[square] |= FileA_Bb << (7 - j)
			}
			if 7-j > r {
				ranksNorthMask[square] |= Rank1_Bb << (8 * (7 - j))
			}
			if j < r {
				ranksSouthMask[square] |= Rank1_Bb << (8 * j)
			}
		}
	}
}

// squaresToEdgePreCompute fills squaresToEdge[sq][dirIndex] with the number
// of steps from sq to the board edge along Directions[dirIndex], per 4.2.
func squaresToEdgePreCompute() {
	for sq := SqA1; sq <= SqH8; sq++ {
		f := int(sq.FileOf())
		r := int(sq.RankOf())
		north := 7 - r
		south := r
		west := f
		east := 7 - f
		dist := [8]int{
			north,                      // N
			south,                      // S
			west,                       // W
			east,                       // E
			minInt(north, west),        // NW
			minInt(north, east),        // NE
			minInt(south, west),        // SW
			minInt(south, east),        // SE
		}
		squaresToEdge[sq] = dist
	}
}

func minInt(a, b int) int {
	if a < b {
		return a
	}
	return b
}

func castleMasksPreCompute() {
	kingSideCastleMask[White] = sqBb[SqF1] | sqBb[SqG1]
	kingSideCastleMask[Black] = sqBb[SqF8] | sqBb[SqG8]
	queenSideCastleMask[White] = sqBb[SqD1] | sqBb[SqC1] | sqBb[SqB1]
	queenSideCastleMask[Black] = sqBb[SqD8] | sqBb[SqC8] | sqBb[SqB8]
	queenSideCastlePathMask[White] = sqBb[SqD1] | sqBb[SqC1]
	queenSideCastlePathMask[Black] = sqBb[SqD8] | sqBb[SqC8]

	castlingRightsBySquare[SqE1] = CastlingWhite
	castlingRightsBySquare[SqA1] = CastlingWhiteOOO
	castlingRightsBySquare[SqH1] = CastlingWhiteOO
	castlingRightsBySquare[SqE8] = CastlingBlack
	castlingRightsBySquare[SqA8] = CastlingBlackOOO
	castlingRightsBySquare[SqH8] = CastlingBlackOO
}
