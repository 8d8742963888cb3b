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

// Reference node counts from https://www.chessprogramming.org/Perft_Results.

func TestPerftStartPosition(t *testing.T) {
	expected := []uint64{20, 400, 8902, 197281, 4865609}
	b := mustBoard(t, position.StartFen)
	p := NewPerft(len(expected))
	for depth, want := range expected {
		assert.Equal(t, want, p.Run(b, depth+1), "depth %d", depth+1)
	}
}

func TestPerftKiwipete(t *testing.T) {
	fen := "r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w KQkq - 0 1"
	expected := []uint64{48, 2039, 97862, 4085603}
	b := mustBoard(t, fen)
	p := NewPerft(len(expected))
	for depth, want := range expected {
		assert.Equal(t, want, p.Run(b, depth+1), "depth %d", depth+1)
	}
}

func TestPerftPosition3(t *testing.T) {
	fen := "8/2p5/3p4/KP5r/1R3p1k/8/4P1P1/8 w - - 0 1"
	expected := map[int]uint64{4: 43238, 5: 674624}
	b := mustBoard(t, fen)
	p := NewPerft(5)
	for depth, want := range expected {
		assert.Equal(t, want, p.Run(b, depth), "depth %d", depth)
	}
}

func TestPerftPosition4(t *testing.T) {
	fen := "r3k2r/Pppp1ppp/1b3nbN/nP6/BBP1P3/q4N2/Pp1P2pP/R2Q1RK1 w kq - 0 1"
	b := mustBoard(t, fen)
	p := NewPerft(4)
	assert.Equal(t, uint64(422333), p.Run(b, 4))
}

func TestPerftPosition5(t *testing.T) {
	fen := "rnbq1k1r/pp1Pbppp/2p5/8/2B5/8/PPP1NnPP/RNBQK2R w KQ - 1 8"
	b := mustBoard(t, fen)
	p := NewPerft(3)
	assert.Equal(t, uint64(62379), p.Run(b, 3))
}

func TestPerftFoolsMateHasNoMoves(t *testing.T) {
	// Position right after 1.f3 e5 2.g4 Qh4#: white to move, already mated,
	// so perft at any depth from here is 0.
	b := mustBoard(t, "rnb1kbnr/pppp1ppp/8/4p3/6Pq/5P2/PPPPP2P/RNBQKBNR w KQkq - 1 3")
	p := NewPerft(1)
	assert.Equal(t, uint64(0), p.Run(b, 1))
}

func TestDivideSumsToTotal(t *testing.T) {
	b := mustBoard(t, position.StartFen)
	p := NewPerft(3)
	breakdown, total := p.Divide(b, 3)
	var sum uint64
	for _, e := range breakdown {
		sum += e.Nodes
	}
	assert.Equal(t, total, sum)
	assert.Equal(t, uint64(8902), total)
	assert.Len(t, breakdown, 20)
}
