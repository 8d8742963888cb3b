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

// Package attacks computes, from the perspective of the side to move, the
// squares the opponent attacks and the check/pin state those attacks impose -
// the single piece of shared analysis the legal move generator needs before
// it can emit a move for any piece type.
package attacks

import (
	"github.com/fkopp/moveengine/internal/position"
	. "github.com/fkopp/moveengine/internal/types"
)

// slidingPieceTypes are iterated least-significant-bit-first when scanning
// the opponent's rooks, bishops and queens.
var slidingPieceTypes = [3]PieceType{Bishop, Rook, Queen}

// Info is the result of one Compute call: everything the legal move
// generator needs to know about checks and pins in the current position,
// from the perspective of the side to move.
type Info struct {
	// AttackedSquares is the set of squares the opponent attacks, computed
	// with the friendly king removed from the board so that sliding attacks
	// pierce through it - these are exactly the squares the king may not
	// step onto.
	AttackedSquares Bitboard
	// CheckBlock is the set of squares a non-king piece may move to in order
	// to resolve the current check: zero if not in check, the checker's
	// square alone for a non-slider check, or the inclusive line from
	// checker to king for a slider check.
	CheckBlock Bitboard
	// Pins holds, per axis (AxisFile, AxisRank, AxisDiagonal, AxisAntiDiag),
	// the side-to-move pieces pinned along that axis.
	Pins [AxisLength]Bitboard
	// IsDoubleCheck is true when two distinct pieces check the king; in that
	// case only king moves are legal.
	IsDoubleCheck bool
	// ForbiddenEnPassantSquare is the square of a side-to-move pawn that is
	// geometrically barred from capturing en passant: doing so would empty
	// two squares on a rank a rook or queen rakes, exposing the king. SqNone
	// if no such pawn exists.
	ForbiddenEnPassantSquare Square

	checkerCount int
}

// InCheck reports whether the side to move is in check.
func (info *Info) InCheck() bool {
	return info.checkerCount > 0
}

// Compute runs the single-pass attack/check/pin analysis described by the
// package doc, from the perspective of b.NextPlayer().
func Compute(b *position.Board) Info {
	info := Info{ForbiddenEnPassantSquare: SqNone}

	us := b.NextPlayer()
	them := us.Flip()
	kingSq := b.KingSquare(us)
	// Sliding attacks must pierce the friendly king: it is not a blocker for
	// the purposes of "can the king step here", and removing it lets the
	// same magic lookup double as the check/pin detector.
	occupiedNoKing := b.OccupiedAll() &^ kingSq.Bb()

	// 1. king: kings cannot give check, so only attackedSquares is affected.
	info.AttackedSquares |= GetAttacksBb(King, b.KingSquare(them), occupiedNoKing)

	// 2. pawns
	pawnsThem := b.PiecesBb(them, Pawn)
	var d1, d2 Direction
	if them == White {
		d1, d2 = Northwest, Northeast
	} else {
		d1, d2 = Southwest, Southeast
	}
	info.AttackedSquares |= ShiftBitboard(pawnsThem, d1) | ShiftBitboard(pawnsThem, d2)
	if pawnCheckers := GetPawnAttacks(us, kingSq) & pawnsThem; pawnCheckers != BbZero {
		info.registerCheckers(pawnCheckers)
	}

	// 3. knights
	for knights := b.PiecesBb(them, Knight); knights != BbZero; {
		sq := knights.PopLsb()
		info.AttackedSquares |= GetAttacksBb(Knight, sq, occupiedNoKing)
	}
	if knightCheckers := GetAttacksBb(Knight, kingSq, occupiedNoKing) & b.PiecesBb(them, Knight); knightCheckers != BbZero {
		info.registerCheckers(knightCheckers)
	}

	// 4. sliders
	for _, pt := range slidingPieceTypes {
		for sliders := b.PiecesBb(them, pt); sliders != BbZero; {
			sq := sliders.PopLsb()
			sliderAttacks := GetAttacksBb(pt, sq, occupiedNoKing)
			info.AttackedSquares |= sliderAttacks

			line := LineBetween(sq, kingSq)
			if line == BbZero {
				continue
			}
			// LineBetween is purely geometric: it returns non-zero for any
			// shared file/rank/diagonal regardless of whether pt can actually
			// attack along it (e.g. a bishop sharing a file with the king).
			// sliderAttacks is the real, piece-aware attack set, so require
			// the line to actually be one sliderAttacks reaches.
			if sliderAttacks&line == BbZero {
				continue
			}
			between := line &^ sq.Bb() &^ kingSq.Bb() & b.OccupiedAll()
			switch between.PopCount() {
			case 0:
				// nothing stands between slider and king: direct check,
				// resolved anywhere on the inclusive line except the king's
				// own square.
				info.registerCheckers(sq.Bb())
				info.CheckBlock |= line &^ kingSq.Bb()
			case 1:
				blockerSq := between.Lsb()
				if b.GetPiece(blockerSq).ColorOf() == us {
					info.Pins[pinAxis(sq, kingSq)] |= blockerSq.Bb()
				}
			case 2:
				info.detectForbiddenEnPassant(b, pt, sq, kingSq, between)
			}
		}
	}

	return info
}

func (info *Info) registerCheckers(checkers Bitboard) {
	n := checkers.PopCount()
	info.checkerCount += n
	if info.checkerCount > 1 {
		info.IsDoubleCheck = true
	}
}

// pinAxis determines which of the four pin axes a rook/bishop/queen's ray to
// the king lies on. Rooks only ever produce AxisFile/AxisRank, bishops only
// AxisDiagonal/AxisAntiDiag; queens may produce any of the four.
func pinAxis(from, kingSq Square) Axis {
	if from.FileOf() == kingSq.FileOf() {
		return AxisFile
	}
	if from.RankOf() == kingSq.RankOf() {
		return AxisRank
	}
	// AxisDiagonal is the a1-h8 sense: file-rank is constant along it.
	if int(from.FileOf())-int(from.RankOf()) == int(kingSq.FileOf())-int(kingSq.RankOf()) {
		return AxisDiagonal
	}
	return AxisAntiDiag
}

// detectForbiddenEnPassant handles the horizontal-pin edge case: a rook or
// queen on the same rank as the king, with exactly a side-to-move pawn and
// an opponent pawn between them. Capturing en passant would remove both
// pawns from the rank in one move, exposing the king to the slider.
func (info *Info) detectForbiddenEnPassant(b *position.Board, pt PieceType, sliderSq, kingSq Square, between Bitboard) {
	if pt == Bishop {
		return
	}
	if sliderSq.RankOf() != kingSq.RankOf() {
		return
	}
	us := b.NextPlayer()
	them := us.Flip()

	first := between.Lsb()
	second := (between &^ first.Bb()).Lsb()

	p1, p2 := b.GetPiece(first), b.GetPiece(second)
	switch {
	case p1.TypeOf() == Pawn && p2.TypeOf() == Pawn && p1.ColorOf() == us && p2.ColorOf() == them:
		info.ForbiddenEnPassantSquare = first
	case p1.TypeOf() == Pawn && p2.TypeOf() == Pawn && p1.ColorOf() == them && p2.ColorOf() == us:
		info.ForbiddenEnPassantSquare = second
	}
}
