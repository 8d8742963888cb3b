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
	"time"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/fkopp/moveengine/internal/moveslice"
	"github.com/fkopp/moveengine/internal/position"
	. "github.com/fkopp/moveengine/internal/types"
	"github.com/fkopp/moveengine/internal/util"
)

var out = message.NewPrinter(language.German)

// Perft counts leaf nodes of the legal-move tree rooted at a position, to a
// fixed depth - the standard correctness benchmark for a move generator.
type Perft struct {
	Nodes    uint64
	buffers  []moveslice.MoveSlice
	stopFlag bool
}

// NewPerft creates a Perft with per-depth move buffers preallocated up to
// maxDepth, so the recursive walk never allocates on its hot path.
func NewPerft(maxDepth int) *Perft {
	buffers := make([]moveslice.MoveSlice, maxDepth+1)
	for i := range buffers {
		buffers[i] = *moveslice.NewMoveSlice(MaxMoves)
	}
	return &Perft{buffers: buffers}
}

// Stop requests an in-progress Run (typically called from another goroutine)
// to abandon its walk and return 0.
func (perft *Perft) Stop() {
	perft.stopFlag = true
}

// Run computes perft(depth) for b and returns the leaf count, also leaving
// it in perft.Nodes.
func (perft *Perft) Run(b *position.Board, depth int) uint64 {
	perft.stopFlag = false
	if depth < 1 {
		depth = 1
	}
	if depth >= len(perft.buffers) {
		extra := make([]moveslice.MoveSlice, depth+1-len(perft.buffers))
		for i := range extra {
			extra[i] = *moveslice.NewMoveSlice(MaxMoves)
		}
		perft.buffers = append(perft.buffers, extra...)
	}
	nodes := perft.search(b, depth)
	if perft.stopFlag {
		nodes = 0
	}
	perft.Nodes = nodes
	return nodes
}

// search implements perft(depth, board): depth 1 is just the size of the
// legal move list, depth 2 is unrolled one level to avoid a trailing
// recursive call that would only ever count to 1, and every other depth
// makes/recurses/undoes over each legal move.
func (perft *Perft) search(b *position.Board, depth int) uint64 {
	if perft.stopFlag {
		return 0
	}
	moves := &perft.buffers[depth]
	moves.Clear()
	GenerateLegalMoves(b, moves)

	if depth == 1 {
		return uint64(moves.Len())
	}

	if depth == 2 {
		var nodes uint64
		for i := 0; i < moves.Len(); i++ {
			record := b.Make(moves.At(i))
			child := &perft.buffers[1]
			child.Clear()
			GenerateLegalMoves(b, child)
			nodes += uint64(child.Len())
			b.Undo(record)
		}
		return nodes
	}

	var nodes uint64
	for i := 0; i < moves.Len(); i++ {
		m := moves.At(i)
		record := b.Make(m)
		nodes += perft.search(b, depth-1)
		b.Undo(record)
	}
	return nodes
}

// Divide runs perft(depth-1) separately under each root move and returns the
// per-move breakdown alongside the total, the standard way to localize a
// move generator bug against a known-good reference engine's numbers.
func (perft *Perft) Divide(b *position.Board, depth int) (breakdown []DivideEntry, total uint64) {
	if depth < 1 {
		depth = 1
	}
	root := &perft.buffers[depth]
	root.Clear()
	GenerateLegalMoves(b, root)

	for i := 0; i < root.Len(); i++ {
		m := root.At(i)
		record := b.Make(m)
		var nodes uint64
		if depth == 1 {
			nodes = 1
		} else {
			nodes = perft.search(b, depth-1)
		}
		b.Undo(record)
		breakdown = append(breakdown, DivideEntry{Move: m.StringUci(), Nodes: nodes})
		total += nodes
	}
	return breakdown, total
}

// DivideEntry is one line of a divide breakdown: a root move and the leaf
// count under it.
type DivideEntry struct {
	Move  string
	Nodes uint64
}

// PrintDivide renders a divide breakdown with locale-formatted node counts,
// matching the reference engine's perft report style.
func PrintDivide(breakdown []DivideEntry, total uint64, elapsed time.Duration) {
	for _, e := range breakdown {
		out.Printf("%s: %d\n", e.Move, e.Nodes)
	}
	out.Printf("-----------------------------------------\n")
	out.Printf("Nodes: %d\n", total)
	out.Printf("Time : %s\n", elapsed)
	out.Printf("NPS  : %d nps\n", util.Nps(total, elapsed))
}
