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

package moveslice

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"

	. "github.com/fkopp/moveengine/internal/types"
)

// MaxMoves mirrors movegen.MaxMoves, which this package cannot import
// (movegen imports moveslice).
const MaxMoves = 224

var (
	e2e4 = NewRegularMove(SqE2, SqE4)
	d7d5 = NewRegularMove(SqD7, SqD5)
	e4d5 = NewRegularMove(SqE4, SqD5)
	d8d5 = NewRegularMove(SqD8, SqD5)
	b1c3 = NewRegularMove(SqB1, SqC3)
)

func fiveMoves() *MoveSlice {
	ms := NewMoveSlice(MaxMoves)
	ms.PushBack(e2e4)
	ms.PushBack(d7d5)
	ms.PushBack(e4d5)
	ms.PushBack(d8d5)
	ms.PushBack(b1c3)
	return ms
}

func TestNew(t *testing.T) {
	ms := NewMoveSlice(MaxMoves)
	assert.Equal(t, 0, ms.Len())
	assert.Equal(t, MaxMoves, ms.Cap())
}

func TestPushBackAndPopBack(t *testing.T) {
	ms := NewMoveSlice(MaxMoves)
	assert.Panics(t, func() { ms.PopBack() })

	ms = fiveMoves()
	assert.Equal(t, 5, ms.Len())

	m1 := ms.PopBack()
	assert.Equal(t, b1c3, m1)
	m2 := ms.PopBack()
	assert.Equal(t, d8d5, m2)
	assert.Equal(t, 3, ms.Len())
}

func TestPushFrontAndPopFront(t *testing.T) {
	ms := NewMoveSlice(MaxMoves)
	assert.Panics(t, func() { ms.PopFront() })

	ms.PushFront(e2e4)
	ms.PushFront(d7d5)
	ms.PushFront(e4d5)
	ms.PushFront(d8d5)
	ms.PushFront(b1c3)
	assert.Equal(t, 5, ms.Len())

	m1 := ms.PopFront()
	assert.Equal(t, b1c3, m1)
	m2 := ms.PopFront()
	assert.Equal(t, d8d5, m2)
	assert.Equal(t, 3, ms.Len())
}

func TestFrontBackAndSet(t *testing.T) {
	ms := fiveMoves()

	assert.Equal(t, e2e4, ms.Front())
	assert.Equal(t, ms.At(0), ms.Front())
	assert.Equal(t, b1c3, ms.Back())
	assert.Equal(t, ms.At(ms.Len()-1), ms.Back())

	ms.Set(0, b1c3)
	assert.Equal(t, b1c3, ms.Front())
	assert.Equal(t, ms.At(0), ms.Front())
}

func TestClear(t *testing.T) {
	ms := fiveMoves()
	ms.Clear()
	assert.Equal(t, 0, ms.Len())
	assert.Equal(t, MaxMoves, ms.Cap())
}

func TestStringUci(t *testing.T) {
	ms := fiveMoves()
	assert.Equal(t, "e2e4 d7d5 e4d5 d8d5 b1c3", ms.StringUci())
}

func TestString(t *testing.T) {
	ms := fiveMoves()
	s := ms.String()
	assert.Contains(t, s, "MoveList: [5]")
	assert.Contains(t, s, e2e4.String())
}

func TestFilter(t *testing.T) {
	ms := fiveMoves()
	ms.Filter(func(i int) bool {
		return ms.At(i) != e4d5
	})
	assert.Equal(t, 4, ms.Len())
	assert.Equal(t, "e2e4 d7d5 d8d5 b1c3", ms.StringUci())
}

func TestFilterCopy(t *testing.T) {
	ms := fiveMoves()
	dest := NewMoveSlice(ms.Cap())
	ms.FilterCopy(dest, func(i int) bool {
		return ms.At(i) != e4d5
	})

	assert.Equal(t, 5, ms.Len())
	assert.Equal(t, "e2e4 d7d5 e4d5 d8d5 b1c3", ms.StringUci())
	assert.Equal(t, 4, dest.Len())
	assert.Equal(t, "e2e4 d7d5 d8d5 b1c3", dest.StringUci())
}

func TestClone(t *testing.T) {
	ms := fiveMoves()
	clone := ms.Clone()

	assert.True(t, ms.Equals(clone))
	clone.PushBack(e2e4)
	assert.False(t, ms.Equals(clone))
	assert.Equal(t, 5, ms.Len(), "Clone must not alias the original's backing array")
}

func TestEquals(t *testing.T) {
	a := fiveMoves()
	b := fiveMoves()
	assert.True(t, a.Equals(b))

	b.PopBack()
	assert.False(t, a.Equals(b))
}

func TestForEach(t *testing.T) {
	noOfItems := 1_000
	ms := NewMoveSlice(noOfItems)
	for i := 0; i < noOfItems; i++ {
		ms.PushBack(e2e4)
	}

	var counter int
	ms.ForEach(func(i int) {
		counter++
	})
	assert.Equal(t, noOfItems, counter)
}

func TestForEachParallel(t *testing.T) {
	noOfItems := 1_000
	ms := NewMoveSlice(noOfItems)
	for i := 0; i < noOfItems; i++ {
		ms.PushBack(e2e4)
	}

	var mux sync.Mutex
	var counter int
	ms.ForEachParallel(func(i int) {
		m := ms.At(i)
		replaced := NewMove(m.From(), m.To(), m.CaptureSquare(), CastleKingSide)
		ms.Set(i, replaced)
		mux.Lock()
		counter++
		mux.Unlock()
	})

	assert.Equal(t, noOfItems, counter)
	assert.Equal(t, CastleKingSide, ms.Front().Kind())
	assert.Equal(t, CastleKingSide, ms.At(500).Kind())
	assert.Equal(t, CastleKingSide, ms.Back().Kind())
}
