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

package attacks

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fkopp/moveengine/internal/position"
	. "github.com/fkopp/moveengine/internal/types"
)

func TestMain(m *testing.M) {
	Init()
	m.Run()
}

func mustBoard(t *testing.T, fen string) *position.Board {
	t.Helper()
	b, err := position.NewBoardFromFen(fen)
	require.NoError(t, err)
	return b
}

func TestComputeStartPositionHasNoChecksOrPins(t *testing.T) {
	b := mustBoard(t, position.StartFen)
	info := Compute(b)
	assert.False(t, info.InCheck())
	assert.False(t, info.IsDoubleCheck)
	assert.Equal(t, BbZero, info.CheckBlock)
	for axis := Axis(0); int(axis) < AxisLength; axis++ {
		assert.Equal(t, BbZero, info.Pins[axis], "axis %d", axis)
	}
	assert.Equal(t, SqNone, info.ForbiddenEnPassantSquare)
}

func TestComputeDetectsSliderCheck(t *testing.T) {
	// White king on e1, black rook on e8: direct check along the e-file.
	b := mustBoard(t, "4r2k/8/8/8/8/8/8/4K3 w - - 0 1")
	info := Compute(b)
	require.True(t, info.InCheck())
	assert.False(t, info.IsDoubleCheck)
	assert.True(t, info.CheckBlock.Has(SqE8))
	assert.True(t, info.CheckBlock.Has(SqE2))
}

func TestComputeDetectsDoubleCheck(t *testing.T) {
	// White king on e1 checked both by a rook on the open e-file and a
	// knight hopping in from d3.
	b := mustBoard(t, "4r2k/8/8/8/8/3n4/8/4K3 w - - 0 1")
	info := Compute(b)
	assert.True(t, info.IsDoubleCheck)
}

func TestComputePinsPieceAlongRank(t *testing.T) {
	// White king on e1, white rook on c1, black rook on a1: the white rook
	// is pinned along the rank.
	b := mustBoard(t, "k7/8/8/8/8/8/8/r1R1K3 w - - 0 1")
	info := Compute(b)
	assert.True(t, info.Pins[AxisRank].Has(SqC1))
}

func TestComputeHorizontalPinForbidsEnPassant(t *testing.T) {
	// A black rook and the white king share rank 5; a black pawn on d5
	// (just double-moved) and a white pawn on e5 sit between them, so
	// capturing en passant would expose the white king on the rank.
	b := mustBoard(t, "8/8/8/r2pPK2/8/8/8/k7 w - d6 0 1")
	info := Compute(b)
	assert.Equal(t, SqE5, info.ForbiddenEnPassantSquare)
}
