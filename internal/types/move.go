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

import (
	"fmt"
	"strings"
)

// Move is a 32-bit encoding of a chess move as a primitive value type:
//
//	BITMAP 32-bit
//	|-unused --------------|-kind--|-capSq-----|-from------|-to--------|
//	3 2 2 2 2 2 2 2 2 2 1 1 1 1 1 1 1 1 1 1 1 1 1 1 1
//	1 8 7 6 5 4 3 2 1 0 9 8 7 6 5 4 3 2 1 0 9 8 7 6 5 4 3 2 1 0 9 8 7 6 5 4 3 2 1 0
//	------------------------------------------------------------------------------
//	                                                              1 1 1 1 1 1  to
//	                                                  1 1 1 1 1 1              from
//	                                      1 1 1 1 1 1                          capture square
//	                              1 1 1 1                                      kind
//
// captureSq equals to for every move except en-passant, where it names the
// square of the captured pawn (one rank behind/ahead of to).
type Move uint32

// MoveKind distinguishes the eight move shapes make/undo must special-case.
type MoveKind uint8

// MoveKind constants.
const (
	Regular MoveKind = iota
	PawnDoubleMove
	PromotionQueen
	PromotionKnight
	PromotionRook
	PromotionBishop
	CastleKingSide
	CastleQueenSide
	moveKindLength
)

// String names a MoveKind.
func (k MoveKind) String() string {
	switch k {
	case Regular:
		return "regular"
	case PawnDoubleMove:
		return "double-pawn-move"
	case PromotionQueen:
		return "promotion-queen"
	case PromotionKnight:
		return "promotion-knight"
	case PromotionRook:
		return "promotion-rook"
	case PromotionBishop:
		return "promotion-bishop"
	case CastleKingSide:
		return "castle-kingside"
	case CastleQueenSide:
		return "castle-queenside"
	default:
		return "?"
	}
}

// IsPromotion reports whether k promotes the moving pawn.
func (k MoveKind) IsPromotion() bool {
	return k == PromotionQueen || k == PromotionKnight || k == PromotionRook || k == PromotionBishop
}

// PromotedPieceType returns the piece type a promotion kind produces.
// Must only be called when IsPromotion() is true.
func (k MoveKind) PromotedPieceType() PieceType {
	switch k {
	case PromotionQueen:
		return Queen
	case PromotionKnight:
		return Knight
	case PromotionRook:
		return Rook
	case PromotionBishop:
		return Bishop
	default:
		panic(fmt.Sprintf("%s is not a promotion kind", k))
	}
}

// MoveNone is the zero value; not a legal move (to==from==SqA1, Regular).
const MoveNone Move = 0

const (
	toShift     uint = 0
	fromShift   uint = 6
	capSqShift  uint = 12
	kindShift   uint = 18
	sq6Mask     Move = 0x3F
	kindMaskBit Move = 0xF
)

// NewMove packs a from/to/capture-square/kind quadruple into a Move.
func NewMove(from, to, captureSq Square, kind MoveKind) Move {
	return Move(to)<<toShift |
		Move(from)<<fromShift |
		Move(captureSq)<<capSqShift |
		Move(kind)<<kindShift
}

// NewRegularMove packs a non-special move (captureSq defaults to to).
func NewRegularMove(from, to Square) Move {
	return NewMove(from, to, to, Regular)
}

// To returns the destination square.
func (m Move) To() Square {
	return Square((m >> toShift) & sq6Mask)
}

// From returns the origin square.
func (m Move) From() Square {
	return Square((m >> fromShift) & sq6Mask)
}

// CaptureSquare returns the square of a captured piece: equal to To() except
// for en-passant captures, where it is the captured pawn's square.
func (m Move) CaptureSquare() Square {
	return Square((m >> capSqShift) & sq6Mask)
}

// Kind returns the move's MoveKind.
func (m Move) Kind() MoveKind {
	return MoveKind((m >> kindShift) & kindMaskBit)
}

// IsEnPassant reports whether m is an en-passant capture: its capture square
// differs from its destination square.
func (m Move) IsEnPassant() bool {
	return m.CaptureSquare() != m.To() && m != MoveNone
}

// IsCastle reports whether m is a castling move.
func (m Move) IsCastle() bool {
	k := m.Kind()
	return k == CastleKingSide || k == CastleQueenSide
}

// IsPromotion reports whether m promotes a pawn.
func (m Move) IsPromotion() bool {
	return m.Kind().IsPromotion()
}

// IsValid reports whether m has distinct, valid from/to squares. MoveNone
// (from==to==SqA1) is never valid.
func (m Move) IsValid() bool {
	return m != MoveNone && m.From().IsValid() && m.To().IsValid() && m.From() != m.To()
}

// StringUci renders m as the 4- or 5-character UCI move string.
func (m Move) StringUci() string {
	if m == MoveNone {
		return "0000"
	}
	s := m.From().String() + m.To().String()
	if m.IsPromotion() {
		s += strings.ToLower(m.Kind().PromotedPieceType().Char())
	}
	return s
}

// String is a human-readable debug representation of m.
func (m Move) String() string {
	if m == MoveNone {
		return "Move{none}"
	}
	return fmt.Sprintf("Move{%s kind:%s capSq:%s}", m.StringUci(), m.Kind(), m.CaptureSquare())
}
