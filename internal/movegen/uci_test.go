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

package movegen

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/fkopp/moveengine/internal/position"
	. "github.com/fkopp/moveengine/internal/types"
)

func TestParseUciMoveRoundTripsEveryLegalMove(t *testing.T) {
	fens := []string{
		position.StartFen,
		"r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w KQkq - 0 1",
		"8/P1k5/K7/8/8/8/8/8 w - - 0 1",
	}
	for _, fen := range fens {
		b := mustBoard(t, fen)
		moves := legalMoves(t, fen)
		for i := 0; i < moves.Len(); i++ {
			want := moves.At(i)
			got, err := ParseUciMove(b, want.StringUci())
			assert.NoError(t, err, "fen %s move %s", fen, want.StringUci())
			assert.Equal(t, want, got, "fen %s move %s", fen, want.StringUci())
		}
	}
}

func TestParseUciMoveDisambiguatesCastling(t *testing.T) {
	b := mustBoard(t, "r3k2r/8/8/8/8/8/8/R3K2R w KQkq - 0 1")
	m, err := ParseUciMove(b, "e1g1")
	assert.NoError(t, err)
	assert.Equal(t, CastleKingSide, m.Kind())

	m, err = ParseUciMove(b, "e1c1")
	assert.NoError(t, err)
	assert.Equal(t, CastleQueenSide, m.Kind())
}

func TestParseUciMoveDisambiguatesPawnDoubleMove(t *testing.T) {
	b := mustBoard(t, position.StartFen)
	m, err := ParseUciMove(b, "e2e4")
	assert.NoError(t, err)
	assert.Equal(t, PawnDoubleMove, m.Kind())
}

func TestParseUciMoveDisambiguatesPromotion(t *testing.T) {
	b := mustBoard(t, "8/P1k5/K7/8/8/8/8/8 w - - 0 1")
	m, err := ParseUciMove(b, "a7a8q")
	assert.NoError(t, err)
	assert.Equal(t, PromotionQueen, m.Kind())

	m, err = ParseUciMove(b, "a7a8n")
	assert.NoError(t, err)
	assert.Equal(t, PromotionKnight, m.Kind())
}

func TestParseUciMoveRejectsMalformedOrIllegal(t *testing.T) {
	b := mustBoard(t, position.StartFen)

	_, err := ParseUciMove(b, "not-a-move")
	assert.ErrorIs(t, err, ErrUnknownUciMove)

	// e2e5 is syntactically fine but not a legal move from the start position.
	_, err = ParseUciMove(b, "e2e5")
	assert.ErrorIs(t, err, ErrUnknownUciMove)
}
