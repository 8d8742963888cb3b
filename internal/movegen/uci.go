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
	"errors"
	"regexp"
	"strings"

	"github.com/fkopp/moveengine/internal/moveslice"
	"github.com/fkopp/moveengine/internal/position"
	. "github.com/fkopp/moveengine/internal/types"
)

// ErrUnknownUciMove is returned by ParseUciMove when the string is not
// well-formed UCI notation or does not name a legal move in the position.
var ErrUnknownUciMove = errors.New("unknown uci move")

var regexUciMove = regexp.MustCompile(`^([a-h][1-8][a-h][1-8])([nbrqNBRQ])?$`)

// ParseUciMove generates every legal move for b and matches uciMove against
// their StringUci() form, which is the only reliable way to disambiguate a
// bare from/to pair into the right MoveKind: the same "e1g1" text names a
// CastleKingSide move only when the king actually starts on e1, and "e2e4"
// only carries PawnDoubleMove because the generator attached that kind to
// it - ParseUciMove never has to re-derive those rules itself.
func ParseUciMove(b *position.Board, uciMove string) (Move, error) {
	matches := regexUciMove.FindStringSubmatch(strings.TrimSpace(uciMove))
	if matches == nil {
		return MoveNone, ErrUnknownUciMove
	}
	movePart := matches[1]
	promotionPart := strings.ToLower(matches[2])

	moves := moveslice.NewMoveSlice(MaxMoves)
	GenerateLegalMoves(b, moves)
	for i := 0; i < moves.Len(); i++ {
		m := moves.At(i)
		if m.StringUci() == movePart+promotionPart {
			return m, nil
		}
	}
	return MoveNone, ErrUnknownUciMove
}
