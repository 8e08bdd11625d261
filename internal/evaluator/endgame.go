/*
 * chessgo - a UCI chess engine core written in Go
 *
 * MIT License
 *
 * Copyright (c) 2018-2020 Frank Kopp
 *
 * Permission is hereby granted, free of charge, to any person obtaining a copy
 * of this software and associated documentation files (the "Software"), to deal
 * in the Software without restriction, including without limitation the rights
 * to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
 * copies of the Software, and to permit persons to whom the Software is
 * furnished to do so, subject to the following conditions:
 *
 * The above copyright notice and this permission notice shall be included in all
 * copies or substantial portions of the Software.
 *
 * THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
 * IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
 * FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
 * AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
 * LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
 * OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE
 * SOFTWARE.
 */

package evaluator

import (
	"github.com/frankkopp/chessgo/internal/position"
	"github.com/frankkopp/chessgo/internal/util"
	. "github.com/frankkopp/chessgo/internal/types"
)

// knownWinScore anchors a recognized forced win far enough above ordinary
// material/positional scores to always dominate them, while staying well
// clear of ValueMate so it is never confused with an actual mate score.
const knownWinScore = 5000

// cornerDistanceBonus rewards the winning side for keeping its own king
// close to the board center while it drives the losing king toward a
// corner - standard technique in every king+major/minor mating net.
func cornerDistanceBonus(winnerKing Square, loserKing Square) int {
	return winnerKing.CenterDistance() - 2*loserKing.CenterDistance()
}

// nearestCornerDistance returns the Chebyshev-ish manhattan distance from sq
// to whichever of the two given corners is closer, used to push a king
// toward the one corner a bishop of a given color can actually control.
func nearestCornerDistance(sq Square, cornerA Square, cornerB Square) int {
	da := SquareDistance(sq, cornerA)
	db := SquareDistance(sq, cornerB)
	return util.Min(da, db)
}

// evaluateEndgame recognizes a handful of elementary endgames where material
// counting and piece-square tables alone do not reflect the true outcome:
// a lone king facing a rook, queen, or bishop+knight is a known forced win
// regardless of the exact square values involved, while some apparently
// winning material balances (wrong-colored rook pawn, opposite bishops) are
// actually drawn or heavily scaled down. The returned bool reports whether
// a hard override applies; when false the caller proceeds with normal
// evaluation.
func (e *Evaluator) evaluateEndgame() (Value, bool) {
	p := e.position

	wKing := p.KingSquare(White)
	bKing := p.KingSquare(Black)

	wPawns := p.PiecesBb(White, Pawn).PopCount()
	bPawns := p.PiecesBb(Black, Pawn).PopCount()
	wKnights := p.PiecesBb(White, Knight).PopCount()
	bKnights := p.PiecesBb(Black, Knight).PopCount()
	wBishops := p.PiecesBb(White, Bishop).PopCount()
	bBishops := p.PiecesBb(Black, Bishop).PopCount()
	wRooks := p.PiecesBb(White, Rook).PopCount()
	bRooks := p.PiecesBb(Black, Rook).PopCount()
	wQueens := p.PiecesBb(White, Queen).PopCount()
	bQueens := p.PiecesBb(Black, Queen).PopCount()

	wMinorMajor := wKnights + wBishops + wRooks + wQueens
	bMinorMajor := bKnights + bBishops + bRooks + bQueens

	// KR/KQ vs lone king: always a known forced win.
	if bMinorMajor == 0 && bPawns == 0 && (wRooks > 0 || wQueens > 0) && wKnights == 0 && wBishops == 0 {
		return Value(knownWinScore + cornerDistanceBonus(wKing, bKing)), true
	}
	if wMinorMajor == 0 && wPawns == 0 && (bRooks > 0 || bQueens > 0) && bKnights == 0 && bBishops == 0 {
		return Value(-knownWinScore - cornerDistanceBonus(bKing, wKing)), true
	}

	// KBN vs lone king: known forced win, but the losing king must be
	// driven into the corner that matches the bishop's square color.
	if bMinorMajor == 0 && bPawns == 0 && wKnights == 1 && wBishops == 1 && wRooks == 0 && wQueens == 0 {
		return Value(knownWinScore + cornerDistanceBonus(wKing, bKing) - 20*bishopCornerDistance(p, White, bKing)), true
	}
	if wMinorMajor == 0 && wPawns == 0 && bKnights == 1 && bBishops == 1 && bRooks == 0 && bQueens == 0 {
		return Value(-knownWinScore - cornerDistanceBonus(bKing, wKing) + 20*bishopCornerDistance(p, Black, wKing)), true
	}

	// KBP vs K with a rook pawn the bishop cannot control the queening
	// square of is a well known draw if the defending king reaches the
	// corner in time.
	if v, ok := e.wrongBishopPawnDraw(White, Black, wBishops, wPawns, bMinorMajor+bPawns+wKnights+wRooks+wQueens); ok {
		return v, true
	}
	if v, ok := e.wrongBishopPawnDraw(Black, White, bBishops, bPawns, wMinorMajor+wPawns+bKnights+bRooks+bQueens); ok {
		return v, true
	}

	return ValueZero, false
}

// bishopCornerDistance returns the distance from sq to whichever corner the
// given side's (single) bishop can actually deliver mate on.
func bishopCornerDistance(p *position.Position, bishopSide Color, sq Square) int {
	lightSquareBishop := p.PiecesBb(bishopSide, Bishop)&SquaresBb(White) != BbZero
	if lightSquareBishop {
		return nearestCornerDistance(sq, SqH1, SqA8)
	}
	return nearestCornerDistance(sq, SqA1, SqH8)
}

// endgameScale returns a 0..1 multiplier applied to an already-computed
// evaluation to account for material balances that look winning on paper
// but tend toward a draw. Only opposite colored bishops (one bishop each)
// are scaled: by 0.4 when neither side has a knight, rook or queen, by 0.7
// otherwise. Every other material balance returns 1.0.
func (e *Evaluator) endgameScale() float64 {
	p := e.position

	wBishops := p.PiecesBb(White, Bishop)
	bBishops := p.PiecesBb(Black, Bishop)
	if wBishops.PopCount() == 1 && bBishops.PopCount() == 1 {
		wLight := wBishops&SquaresBb(White) != BbZero
		bLight := bBishops&SquaresBb(White) != BbZero
		if wLight != bLight {
			wOther := p.PiecesBb(White, Knight).PopCount() + p.PiecesBb(White, Rook).PopCount() + p.PiecesBb(White, Queen).PopCount()
			bOther := p.PiecesBb(Black, Knight).PopCount() + p.PiecesBb(Black, Rook).PopCount() + p.PiecesBb(Black, Queen).PopCount()
			if wOther == 0 && bOther == 0 {
				return 0.4
			}
			return 0.7
		}
	}

	return 1.0
}

// wrongBishopPawnDraw checks for the classic KBP vs K draw: the lone pawn
// is an a- or h-file pawn, the bishop does not control the queening
// square's color, and the defending king can reach the corner before the
// attacker's king and pawn can dislodge it.
func (e *Evaluator) wrongBishopPawnDraw(us Color, them Color, bishops int, pawns int, otherPieces int) (Value, bool) {
	if bishops != 1 || pawns != 1 || otherPieces != 0 {
		return ValueZero, false
	}

	p := e.position
	pawnBb := p.PiecesBb(us, Pawn)
	pawnSq := pawnBb.PopLsb()
	file := pawnSq.FileOf()
	if file != FileA && file != FileH {
		return ValueZero, false
	}

	promoRank := Rank8
	if us == Black {
		promoRank = Rank1
	}
	promoSq := SquareOf(file, promoRank)

	bishopLight := p.PiecesBb(us, Bishop)&SquaresBb(White) != BbZero
	promoLight := promoSq.IsValid() && (SquaresBb(White)&promoSq.Bb() != BbZero)
	if bishopLight == promoLight {
		return ValueZero, false // bishop controls the queening square, not a draw
	}

	defenderKing := p.KingSquare(them)
	if SquareDistance(defenderKing, promoSq) <= 1 {
		return ValueZero, true
	}

	return ValueZero, false
}
