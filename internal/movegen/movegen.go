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

// Package movegen generates exactly the legal moves available to the side to
// move in a position, using the check/pin analysis from package attacks to
// avoid generating and then discarding illegal moves.
package movegen

import (
	"github.com/op/go-logging"

	"github.com/fkopp/moveengine/internal/attacks"
	myLogging "github.com/fkopp/moveengine/internal/logging"
	"github.com/fkopp/moveengine/internal/moveslice"
	"github.com/fkopp/moveengine/internal/position"
	. "github.com/fkopp/moveengine/internal/types"
)

var log *logging.Logger

func init() {
	log = myLogging.GetLog()
}

// MaxMoves is a pre-sized capacity large enough for any legal chess position
// (the practical maximum is 218).
const MaxMoves = 224

var promotionKinds = [4]MoveKind{PromotionQueen, PromotionKnight, PromotionRook, PromotionBishop}

// GenerateLegalMoves appends every legal move for b.NextPlayer() to moves, in
// the fixed traversal order: king, pawns (push/double-push/capture-west/
// capture-east), knights, bishops, rooks, queens - each bitboard consumed
// least-significant-bit-first. moves is not cleared first; callers that want
// a fresh list call moves.Clear() themselves.
func GenerateLegalMoves(b *position.Board, moves *moveslice.MoveSlice) {
	info := attacks.Compute(b)
	us := b.NextPlayer()
	them := us.Flip()
	ownOcc := b.OccupiedBb(us)
	occupied := b.OccupiedAll()

	generateKingMoves(b, &info, us, ownOcc, moves)
	if info.IsDoubleCheck {
		log.Debug(moves.String())
		return
	}
	generatePawnMoves(b, &info, us, them, occupied, moves)
	generateKnightMoves(b, &info, us, ownOcc, moves)
	generateSliderMoves(b, &info, us, ownOcc, occupied, Bishop, moves)
	generateSliderMoves(b, &info, us, ownOcc, occupied, Rook, moves)
	generateSliderMoves(b, &info, us, ownOcc, occupied, Queen, moves)
	log.Debug(moves.String())
}

// HasLegalMove reports whether the side to move has at least one legal move.
// It generates the full legal move list into a fresh buffer and checks that
// the list is non-empty. Used for mate/stalemate detection.
func HasLegalMove(b *position.Board) bool {
	var buf moveslice.MoveSlice = *moveslice.NewMoveSlice(MaxMoves)
	GenerateLegalMoves(b, &buf)
	return buf.Len() > 0
}

func generateKingMoves(b *position.Board, info *attacks.Info, us Color, ownOcc Bitboard, moves *moveslice.MoveSlice) {
	kingSq := b.KingSquare(us)
	targets := KingAttacks(kingSq) &^ info.AttackedSquares &^ ownOcc
	for t := targets; t != BbZero; {
		to := t.PopLsb()
		moves.PushBack(NewRegularMove(kingSq, to))
	}

	if info.InCheck() {
		return
	}
	occupied := b.OccupiedAll()
	rights := b.CastlingRights()

	kingSideRight, queenSideRight, kingSideTo, queenSideTo := kingSideAndQueenSideRights(us)
	if rights.Has(kingSideRight) &&
		occupied&KingSideCastleMask(us) == BbZero &&
		info.AttackedSquares&KingSideCastlePathMask(us) == BbZero {
		moves.PushBack(NewMove(kingSq, kingSideTo, kingSideTo, CastleKingSide))
	}
	if rights.Has(queenSideRight) &&
		occupied&QueenSideCastleMask(us) == BbZero &&
		info.AttackedSquares&QueenSideCastlePathMask(us) == BbZero {
		moves.PushBack(NewMove(kingSq, queenSideTo, queenSideTo, CastleQueenSide))
	}
}

func kingSideAndQueenSideRights(us Color) (kingSide, queenSide CastlingRights, kingSideTo, queenSideTo Square) {
	if us == White {
		return CastlingWhiteOO, CastlingWhiteOOO, SqG1, SqC1
	}
	return CastlingBlackOO, CastlingBlackOOO, SqG8, SqC8
}

// pinAdmissible reports whether a piece on sq may move at all given the pin
// state: unpinned, or pinned exactly along axis.
func pinAdmissible(info *attacks.Info, sq Square, axis Axis) bool {
	for a := Axis(0); int(a) < AxisLength; a++ {
		if info.Pins[a].Has(sq) {
			return a == axis
		}
	}
	return true
}

// isPinned reports whether sq is pinned on any axis.
func isPinned(info *attacks.Info, sq Square) bool {
	for a := Axis(0); int(a) < AxisLength; a++ {
		if info.Pins[a].Has(sq) {
			return true
		}
	}
	return false
}

func emitPawnMove(moves *moveslice.MoveSlice, from, to Square, promotionRank Bitboard) {
	if to.Bb()&promotionRank != BbZero {
		for _, k := range promotionKinds {
			moves.PushBack(NewMove(from, to, to, k))
		}
		return
	}
	moves.PushBack(NewRegularMove(from, to))
}

func generatePawnMoves(b *position.Board, info *attacks.Info, us, them Color, occupied Bitboard, moves *moveslice.MoveSlice) {
	pawns := b.PiecesBb(us, Pawn)
	empty := ^occupied
	promRank := us.PromotionRankBb()
	pushDir := us.MoveDirection()

	checkTargets := info.CheckBlock
	inCheck := info.InCheck()

	// 1. single push
	singlePush := ShiftBitboard(pawns, pushDir) & empty
	for t := singlePush; t != BbZero; {
		to := t.PopLsb()
		from := to.To(oppositeDirection(pushDir))
		if !pinAdmissible(info, from, AxisFile) {
			continue
		}
		if inCheck && !checkTargets.Has(to) {
			continue
		}
		emitPawnMove(moves, from, to, promRank)
	}

	// 2. double push, starting from pawns that could single-push to the
	// double-move rank.
	doublePushOrigin := singlePush & us.PawnDoubleRank()
	doublePush := ShiftBitboard(doublePushOrigin, pushDir) & empty
	for t := doublePush; t != BbZero; {
		to := t.PopLsb()
		mid := to.To(oppositeDirection(pushDir))
		from := mid.To(oppositeDirection(pushDir))
		if !pinAdmissible(info, from, AxisFile) {
			continue
		}
		if inCheck && !checkTargets.Has(to) {
			continue
		}
		moves.PushBack(NewMove(from, to, to, PawnDoubleMove))
	}

	// 3/4. captures, west then east.
	generatePawnCaptures(b, info, us, them, Northwest, Southwest, promRank, moves)
	generatePawnCaptures(b, info, us, them, Northeast, Southeast, promRank, moves)
}

// diagonalAxis returns the pin axis a single diagonal step in direction d
// lies on: northeast/southwest share the a1-h8 (file-rank constant) axis,
// northwest/southeast share the a8-h1 (file+rank constant) axis.
func diagonalAxis(d Direction) Axis {
	if d == Northeast || d == Southwest {
		return AxisDiagonal
	}
	return AxisAntiDiag
}

// oppositeDirection negates a pawn push direction to walk back to the
// origin square.
func oppositeDirection(d Direction) Direction {
	return -d
}

// generatePawnCaptures handles one file-relative diagonal capture stream
// (e.g. "toward the a-file"). whiteDir/blackDir select the shift used
// depending on color (a white pawn captures forward, north; black forward,
// south), and the pin axis is derived from whichever direction actually
// applies, since a given file-relative stream lies on different axes for
// the two colors.
func generatePawnCaptures(b *position.Board, info *attacks.Info, us, them Color, whiteDir, blackDir Direction, promRank Bitboard, moves *moveslice.MoveSlice) {
	pawns := b.PiecesBb(us, Pawn)
	var capDir Direction
	if us == White {
		capDir = whiteDir
	} else {
		capDir = blackDir
	}
	axis := diagonalAxis(capDir)

	epCaptureSq := b.EnPassantTargetSquare()
	epPawnSq := b.EnPassantPawnSquare()
	forbidden := info.ForbiddenEnPassantSquare

	targets := b.OccupiedBb(them)
	if epCaptureSq != SqNone {
		targets |= epCaptureSq.Bb()
	}

	captures := ShiftBitboard(pawns, capDir) & targets
	for t := captures; t != BbZero; {
		to := t.PopLsb()
		from := to.To(oppositeDirection(capDir))
		if !pinAdmissible(info, from, axis) {
			continue
		}
		isEp := to == epCaptureSq
		if isEp {
			if from == forbidden {
				continue
			}
			if info.InCheck() && !info.CheckBlock.Has(epPawnSq) {
				continue
			}
			moves.PushBack(NewMove(from, to, epPawnSq, Regular))
			continue
		}
		if info.InCheck() && !info.CheckBlock.Has(to) {
			continue
		}
		emitPawnMove(moves, from, to, promRank)
	}
}

func generateKnightMoves(b *position.Board, info *attacks.Info, us Color, ownOcc Bitboard, moves *moveslice.MoveSlice) {
	for knights := b.PiecesBb(us, Knight); knights != BbZero; {
		from := knights.PopLsb()
		if isPinned(info, from) {
			continue
		}
		targets := KnightAttacks(from) &^ ownOcc
		if info.InCheck() {
			targets &= info.CheckBlock
		}
		for t := targets; t != BbZero; {
			moves.PushBack(NewRegularMove(from, t.PopLsb()))
		}
	}
}

func generateSliderMoves(b *position.Board, info *attacks.Info, us Color, ownOcc, occupied Bitboard, pt PieceType, moves *moveslice.MoveSlice) {
	for sliders := b.PiecesBb(us, pt); sliders != BbZero; {
		from := sliders.PopLsb()
		targets := GetAttacksBb(pt, from, occupied) &^ ownOcc

		for a := Axis(0); int(a) < AxisLength; a++ {
			if info.Pins[a].Has(from) {
				if sliderCompatibleWithAxis(pt, a) {
					targets &= AxisMask(a, from)
				} else {
					targets = BbZero
				}
				break
			}
		}

		if info.InCheck() {
			targets &= info.CheckBlock
		}
		for t := targets; t != BbZero; {
			moves.PushBack(NewRegularMove(from, t.PopLsb()))
		}
	}
}

// sliderCompatibleWithAxis reports whether a piece of type pt can legally
// move along the given pin axis: rooks along file/rank, bishops along the
// diagonals, queens along any of the four.
func sliderCompatibleWithAxis(pt PieceType, axis Axis) bool {
	switch pt {
	case Rook:
		return axis == AxisFile || axis == AxisRank
	case Bishop:
		return axis == AxisDiagonal || axis == AxisAntiDiag
	case Queen:
		return true
	default:
		return false
	}
}
