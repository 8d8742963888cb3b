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

package position

import (
	"github.com/fkopp/moveengine/internal/assert"
	. "github.com/fkopp/moveengine/internal/types"
)

// MoveRecord carries exactly what Undo needs to reverse a Make call: the
// move itself, the type of piece it captured (PtNone if none), and the
// castling/en-passant state that was in effect before the move was made.
type MoveRecord struct {
	Move                Move
	CapturedPieceType   PieceType
	PriorEnPassant      enPassantState
	PriorCastlingRights CastlingRights
}

// rookCastleSquares maps a king's castling destination to the rook's
// from/to squares for that side.
var rookCastleSquares = map[Square][2]Square{
	SqG1: {WhiteRookKingStart, SqF1},
	SqC1: {WhiteRookQueenSide, SqD1},
	SqG8: {BlackRookKingStart, SqF8},
	SqC8: {BlackRookQueenSide, SqD8},
}

// Make applies move to the board and returns the record Undo needs to
// reverse it. move must be a legal move generated for this exact position;
// Make does not itself validate legality (see InternalInvariantViolation).
func (b *Board) Make(move Move) MoveRecord {
	us := b.currentColor
	from := move.From()
	to := move.To()
	capSq := move.CaptureSquare()
	kind := move.Kind()

	record := MoveRecord{
		Move:                move,
		CapturedPieceType:   PtNone,
		PriorEnPassant:      b.enPassant,
		PriorCastlingRights: b.castlingRights,
	}

	if assert.DEBUG {
		assert.Assert(b.squares[from] != PieceNone, "make: no piece on from-square %s", from)
	}
	movingPiece := b.removePiece(from)

	if b.squares[capSq] != PieceNone {
		captured := b.removePiece(capSq)
		record.CapturedPieceType = captured.TypeOf()
	}

	b.enPassant = enPassantState{active: false, pawnSquare: SqNone, captureSquare: SqNone}

	if kind == PawnDoubleMove {
		mid := Square((int(from) + int(to)) / 2)
		b.enPassant = enPassantState{active: true, pawnSquare: to, captureSquare: mid}
	}

	pieceType := movingPiece.TypeOf()
	if kind.IsPromotion() {
		pieceType = kind.PromotedPieceType()
	}

	if kind == CastleKingSide || kind == CastleQueenSide {
		rookSquares := rookCastleSquares[to]
		rook := b.removePiece(rookSquares[0])
		b.putPiece(rook, rookSquares[1])
	}

	b.putPiece(MakePiece(us, pieceType), to)

	if movingPiece.TypeOf() == King {
		if us == White {
			b.castlingRights.Remove(CastlingWhite)
		} else {
			b.castlingRights.Remove(CastlingBlack)
		}
	}
	switch from {
	case WhiteRookKingStart:
		b.castlingRights.Remove(CastlingWhiteOO)
	case WhiteRookQueenSide:
		b.castlingRights.Remove(CastlingWhiteOOO)
	case BlackRookKingStart:
		b.castlingRights.Remove(CastlingBlackOO)
	case BlackRookQueenSide:
		b.castlingRights.Remove(CastlingBlackOOO)
	}
	switch to {
	case WhiteRookKingStart:
		b.castlingRights.Remove(CastlingWhiteOO)
	case WhiteRookQueenSide:
		b.castlingRights.Remove(CastlingWhiteOOO)
	case BlackRookKingStart:
		b.castlingRights.Remove(CastlingBlackOO)
	case BlackRookQueenSide:
		b.castlingRights.Remove(CastlingBlackOOO)
	}

	b.currentColor = us.Flip()
	return record
}

// Undo reverses a Make call using the record it returned. Caller must pass
// records in reverse application order; Undo does not itself check this.
func (b *Board) Undo(record MoveRecord) {
	b.castlingRights = record.PriorCastlingRights
	b.enPassant = record.PriorEnPassant

	us := b.currentColor.Flip()
	b.currentColor = us

	move := record.Move
	from := move.From()
	to := move.To()
	capSq := move.CaptureSquare()
	kind := move.Kind()

	moved := b.removePiece(to)
	pieceType := moved.TypeOf()
	if kind.IsPromotion() {
		pieceType = Pawn
	}

	if kind == CastleKingSide || kind == CastleQueenSide {
		rookSquares := rookCastleSquares[to]
		rook := b.removePiece(rookSquares[1])
		b.putPiece(rook, rookSquares[0])
	}

	b.putPiece(MakePiece(us, pieceType), from)

	if record.CapturedPieceType != PtNone {
		b.putPiece(MakePiece(us.Flip(), record.CapturedPieceType), capSq)
	}
}
