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
	"fmt"
	"regexp"
	"strconv"
	"strings"

	. "github.com/fkopp/moveengine/internal/types"
)

var (
	regexWorB             = regexp.MustCompile(`^[wb]$`)
	regexCastlingRights   = regexp.MustCompile(`^(K?Q?k?q?|-)$`)
	regexEnPassantSquare  = regexp.MustCompile(`^([a-h][36]|-)$`)
)

// parseFen consumes the first four whitespace-separated FEN fields
// (placement, side to move, castling rights, en-passant target) and
// tolerates/ignores a trailing halfmove clock and fullmove number. Every
// failure is wrapped around ErrMalformedFen.
func (b *Board) parseFen(fen string) error {
	fields := strings.Fields(strings.TrimSpace(fen))
	if len(fields) == 0 {
		return fmt.Errorf("%w: empty fen", ErrMalformedFen)
	}

	ranks := strings.Split(fields[0], "/")
	if len(ranks) != 8 {
		return fmt.Errorf("%w: expected 8 ranks, got %d", ErrMalformedFen, len(ranks))
	}
	kings := [ColorLength]int{}
	for i, rankStr := range ranks {
		r := Rank8 - Rank(i)
		f := FileA
		for _, c := range rankStr {
			if n, err := strconv.Atoi(string(c)); err == nil {
				if n < 1 || n > 8 {
					return fmt.Errorf("%w: invalid empty-square run %d", ErrMalformedFen, n)
				}
				f += File(n)
				continue
			}
			pc := PieceFromChar(string(c))
			if pc == PieceNone {
				return fmt.Errorf("%w: invalid piece character %q", ErrMalformedFen, string(c))
			}
			sq := SquareOf(f, r)
			if !sq.IsValid() {
				return fmt.Errorf("%w: rank %d overflows the board", ErrMalformedFen, i+1)
			}
			b.putPiece(pc, sq)
			if pc.TypeOf() == King {
				kings[pc.ColorOf()]++
			}
			f++
		}
		if f != FileH+1 {
			return fmt.Errorf("%w: rank %d does not sum to 8 files", ErrMalformedFen, i+1)
		}
	}
	if kings[White] != 1 || kings[Black] != 1 {
		return fmt.Errorf("%w: expected exactly one king per side", ErrMalformedFen)
	}

	b.currentColor = White
	if len(fields) >= 2 {
		if !regexWorB.MatchString(fields[1]) {
			return fmt.Errorf("%w: invalid side to move %q", ErrMalformedFen, fields[1])
		}
		if fields[1] == "b" {
			b.currentColor = Black
		}
	}

	if len(fields) >= 3 {
		if !regexCastlingRights.MatchString(fields[2]) {
			return fmt.Errorf("%w: invalid castling rights %q", ErrMalformedFen, fields[2])
		}
		if fields[2] != "-" {
			for _, c := range fields[2] {
				switch c {
				case 'K':
					b.castlingRights.Add(CastlingWhiteOO)
				case 'Q':
					b.castlingRights.Add(CastlingWhiteOOO)
				case 'k':
					b.castlingRights.Add(CastlingBlackOO)
				case 'q':
					b.castlingRights.Add(CastlingBlackOOO)
				}
			}
		}
	}

	if len(fields) >= 4 && fields[3] != "-" {
		if !regexEnPassantSquare.MatchString(fields[3]) {
			return fmt.Errorf("%w: invalid en-passant target %q", ErrMalformedFen, fields[3])
		}
		target := MakeSquare(fields[3])
		moverColor := b.currentColor.Flip()
		pawnSq := target.To(moverColor.MoveDirection())
		b.enPassant = enPassantState{active: true, pawnSquare: pawnSq, captureSquare: target}
	}

	b.halfMoveClock = 0
	if len(fields) >= 5 {
		if n, err := strconv.Atoi(fields[4]); err == nil {
			b.halfMoveClock = n
		}
	}
	b.fullMoveNumber = 1
	if len(fields) >= 6 {
		if n, err := strconv.Atoi(fields[5]); err == nil && n > 0 {
			b.fullMoveNumber = n
		}
	}

	return nil
}

// Fen returns the board's position as a FEN string. Per this expansion's
// lenient-emission decision, the en-passant field is emitted whenever the
// enPassant flag is set (immediately after a pawn double move), without
// checking whether an opposing pawn could actually recapture.
func (b *Board) Fen() string {
	var sb strings.Builder
	for r := Rank8; ; r-- {
		empty := 0
		for f := FileA; f <= FileH; f++ {
			pc := b.squares[SquareOf(f, r)]
			if pc == PieceNone {
				empty++
				continue
			}
			if empty > 0 {
				sb.WriteString(strconv.Itoa(empty))
				empty = 0
			}
			sb.WriteString(pc.String())
		}
		if empty > 0 {
			sb.WriteString(strconv.Itoa(empty))
		}
		if r > Rank1 {
			sb.WriteString("/")
		}
		if r == Rank1 {
			break
		}
	}
	sb.WriteString(" ")
	sb.WriteString(b.currentColor.String())
	sb.WriteString(" ")
	sb.WriteString(b.castlingRights.String())
	sb.WriteString(" ")
	if b.enPassant.active {
		sb.WriteString(b.enPassant.captureSquare.String())
	} else {
		sb.WriteString("-")
	}
	sb.WriteString(" ")
	sb.WriteString(strconv.Itoa(b.halfMoveClock))
	sb.WriteString(" ")
	sb.WriteString(strconv.Itoa(b.fullMoveNumber))
	return sb.String()
}
