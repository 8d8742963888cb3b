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
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	. "github.com/fkopp/moveengine/internal/types"
)

func TestFenRoundTrip(t *testing.T) {
	fens := []string{
		StartFen,
		"r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w KQkq - 0 1",
		"8/2p5/3p4/KP5r/1R3p1k/8/4P1P1/8 w - - 0 1",
		"rnbq1k1r/pp1Pbppp/2p5/8/2B5/8/PPP1NnPP/RNBQK2R w KQ - 1 8",
		"4k3/8/8/3pP3/8/8/8/4K3 w - d6 0 1",
	}
	for _, fen := range fens {
		b, err := NewBoardFromFen(fen)
		require.NoError(t, err, fen)
		assert.Equal(t, fen, b.Fen(), "fen round trip for %s", fen)
	}
}

func TestParseFenRejectsMalformedInput(t *testing.T) {
	bad := []string{
		"",
		"rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP w KQkq - 0 1",  // 7 ranks
		"rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBN w KQkq - 0 1", // rank sums to 7
		"8/8/8/8/8/8/8/8 w KQkq - 0 1",                     // no kings
		"rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR x KQkq - 0 1", // bad side to move
	}
	for _, fen := range bad {
		_, err := NewBoardFromFen(fen)
		assert.ErrorIs(t, err, ErrMalformedFen, "fen: %q", fen)
	}
}

func TestMakeUndoRestoresPosition(t *testing.T) {
	b, err := NewBoardFromFen(StartFen)
	require.NoError(t, err)
	before := b.Fen()

	move := NewMove(SqE2, SqE4, SqE4, PawnDoubleMove)
	record := b.Make(move)
	assert.NotEqual(t, before, b.Fen())
	b.Undo(record)
	assert.Equal(t, before, b.Fen())
	b.checkInvariants()
}

func TestMakeUndoCastlingRestoresRookAndRights(t *testing.T) {
	fen := "r3k2r/8/8/8/8/8/8/R3K2R w KQkq - 0 1"
	b, err := NewBoardFromFen(fen)
	require.NoError(t, err)
	before := b.Fen()

	move := NewMove(SqE1, SqG1, SqG1, CastleKingSide)
	record := b.Make(move)
	assert.Equal(t, PieceNone, b.GetPiece(SqE1))
	assert.Equal(t, WhiteRook, b.GetPiece(SqF1))
	assert.False(t, b.CastlingRights().Has(CastlingWhiteOO))

	b.Undo(record)
	assert.Equal(t, before, b.Fen())
	b.checkInvariants()
}

func TestMakeUndoEnPassantRestoresCapturedPawn(t *testing.T) {
	fen := "4k3/8/8/3pP3/8/8/8/4K3 w - d6 0 1"
	b, err := NewBoardFromFen(fen)
	require.NoError(t, err)
	before := b.Fen()

	move := NewMove(SqE5, SqD6, SqD5, Regular)
	record := b.Make(move)
	assert.Equal(t, PieceNone, b.GetPiece(SqD5))
	assert.Equal(t, WhitePawn, b.GetPiece(SqD6))

	b.Undo(record)
	assert.Equal(t, before, b.Fen())
	assert.Equal(t, BlackPawn, b.GetPiece(SqD5))
	b.checkInvariants()
}
