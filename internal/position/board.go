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

// Package position holds the single mutable chess Board: piece bitboards, the
// square cache, castling rights and en-passant state, FEN parsing/emission,
// and the make/undo pair that mutates a Board in place between legal moves.
//
// Create a Board with NewBoard() for the start position or NewBoardFromFen()
// for an arbitrary FEN. types.Init() must have been called first so the
// precomputed attack tables this package's callers rely on are populated.
package position

import (
	"fmt"
	"strings"

	"github.com/op/go-logging"

	"github.com/fkopp/moveengine/internal/assert"
	myLogging "github.com/fkopp/moveengine/internal/logging"
	. "github.com/fkopp/moveengine/internal/types"
)

var log *logging.Logger

func init() {
	log = myLogging.GetLog()
}

// StartFen is the standard chess starting position.
const StartFen = "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1"

// enPassantState is the flag-plus-two-squares representation described by the
// data model: active only in the half-move right after a pawn double move.
type enPassantState struct {
	active        bool
	pawnSquare    Square   // the square of the pawn that just double-moved
	captureSquare Square   // the square an opposing pawn lands on when capturing it
}

// Board is the single mutable chess position. It is owned by exactly one
// caller at a time; make/undo mutate it in place (see §"Board mutability").
type Board struct {
	pieces         [ColorLength][PtLength]Bitboard // [color][pieceType], slot 0 = union
	squares        [SqLength]Piece
	currentColor   Color
	castlingRights CastlingRights // both sides packed in one value, see types.CastlingRights
	enPassant      enPassantState
	halfMoveClock  int // for the fifty-move rule; tolerated, not enforced
	fullMoveNumber int
}

// NewBoard returns a Board set up at the standard starting position.
func NewBoard() *Board {
	b, err := NewBoardFromFen(StartFen)
	if err != nil {
		panic(fmt.Sprintf("invalid built-in start fen: %v", err))
	}
	return b
}

// NewBoardFromFen parses fen and returns the Board it describes, or an error
// wrapping ErrMalformedFen.
func NewBoardFromFen(fen string) (*Board, error) {
	b := &Board{currentColor: White, castlingRights: CastlingNone}
	for i := range b.squares {
		b.squares[i] = PieceNone
	}
	b.enPassant.pawnSquare = SqNone
	b.enPassant.captureSquare = SqNone
	if err := b.parseFen(fen); err != nil {
		return nil, err
	}
	return b, nil
}

// NextPlayer returns the side to move.
func (b *Board) NextPlayer() Color {
	return b.currentColor
}

// GetPiece returns the piece occupying sq, or PieceNone.
func (b *Board) GetPiece(sq Square) Piece {
	return b.squares[sq]
}

// PiecesBb returns the bitboard of pieces of type pt and color c. pt may be
// PtNone to get the union of all of c's pieces.
func (b *Board) PiecesBb(c Color, pt PieceType) Bitboard {
	return b.pieces[c][pt]
}

// OccupiedBb returns all squares occupied by color c.
func (b *Board) OccupiedBb(c Color) Bitboard {
	return b.pieces[c][PtNone]
}

// OccupiedAll returns all occupied squares, either color.
func (b *Board) OccupiedAll() Bitboard {
	return b.pieces[White][PtNone] | b.pieces[Black][PtNone]
}

// KingSquare returns the square of c's king.
func (b *Board) KingSquare(c Color) Square {
	return b.pieces[c][King].Lsb()
}

// CastlingRights returns the current castling-rights bitset.
func (b *Board) CastlingRights() CastlingRights {
	return b.castlingRights
}

// EnPassantTargetSquare returns the square a capturing pawn would land on, or
// SqNone if no en-passant capture is currently available.
func (b *Board) EnPassantTargetSquare() Square {
	if !b.enPassant.active {
		return SqNone
	}
	return b.enPassant.captureSquare
}

// EnPassantPawnSquare returns the square of the pawn that just double-moved,
// or SqNone if en passant is not active.
func (b *Board) EnPassantPawnSquare() Square {
	if !b.enPassant.active {
		return SqNone
	}
	return b.enPassant.pawnSquare
}

// putPiece places pc on sq, which must currently be empty. Updates both
// bitboards and the square cache.
func (b *Board) putPiece(pc Piece, sq Square) {
	if assert.DEBUG {
		assert.Assert(b.squares[sq] == PieceNone, "putPiece onto occupied square %s", sq)
	}
	c := pc.ColorOf()
	pt := pc.TypeOf()
	b.pieces[c][pt].PushSquare(sq)
	b.pieces[c][PtNone].PushSquare(sq)
	b.squares[sq] = pc
}

// removePiece clears sq, which must be occupied, and returns what was there.
func (b *Board) removePiece(sq Square) Piece {
	pc := b.squares[sq]
	if assert.DEBUG {
		assert.Assert(pc != PieceNone, "removePiece on empty square %s", sq)
	}
	c := pc.ColorOf()
	pt := pc.TypeOf()
	b.pieces[c][pt].PopSquare(sq)
	b.pieces[c][PtNone].PopSquare(sq)
	b.squares[sq] = PieceNone
	return pc
}

// movePiece relocates the piece on from to the (empty) square to.
func (b *Board) movePiece(from, to Square) {
	pc := b.removePiece(from)
	b.putPiece(pc, to)
}

// checkInvariants re-derives the piece-placement invariants (per-color union
// matches the per-type bitboards, exactly one king per side, no overlap
// between the colors, every occupied cache square set in its color's
// occupancy) and panics (in debug builds only) if one does not hold. The
// castling-rights and en-passant invariants are not checked. Intended for use
// in tests after make/undo sequences, not on the hot path.
func (b *Board) checkInvariants() {
	if !assert.DEBUG {
		return
	}
	for c := White; c <= Black; c++ {
		union := BbZero
		for pt := King; pt < PtLength; pt++ {
			union |= b.pieces[c][pt]
		}
		assert.Assert(union == b.pieces[c][PtNone], "union of piece types does not match occupancy for %s", c)
		assert.Assert(b.pieces[c][King].PopCount() == 1, "%s does not have exactly one king", c)
	}
	assert.Assert(b.pieces[White][PtNone]&b.pieces[Black][PtNone] == 0, "white and black occupancy overlap")
	for sq := SqA1; sq <= SqH8; sq++ {
		pc := b.squares[sq]
		if pc == PieceNone {
			continue
		}
		assert.Assert(b.pieces[pc.ColorOf()][PtNone].Has(sq), "square cache/bitboard mismatch at %s", sq)
	}
}

// String renders the board as a FEN line followed by an 8x8 ASCII diagram.
func (b *Board) String() string {
	var sb strings.Builder
	sb.WriteString(b.Fen())
	sb.WriteString("\n")
	sb.WriteString(b.StringBoard())
	return sb.String()
}

// StringBoard renders the board as an 8x8 ASCII diagram, rank 8 at the top.
func (b *Board) StringBoard() string {
	var sb strings.Builder
	sb.WriteString("+---+---+---+---+---+---+---+---+\n")
	for r := Rank8; ; r-- {
		for f := FileA; f <= FileH; f++ {
			sb.WriteString("| ")
			sb.WriteString(b.squares[SquareOf(f, r)].String())
			sb.WriteString(" ")
		}
		sb.WriteString("|\n+---+---+---+---+---+---+---+---+\n")
		if r == Rank1 {
			break
		}
	}
	return sb.String()
}
