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
	"github.com/frankkopp/chessgo/internal/attacks"
	. "github.com/frankkopp/chessgo/internal/config"
	. "github.com/frankkopp/chessgo/internal/types"
)

// evalThreats scores material hanging to a cheaper attacker independently of
// whether the search will actually find the capture - useful as a tie
// breaker and to nudge quiescence-starved leaf nodes in the right direction.
func (e *Evaluator) evalThreats() *Score {
	tmpScore.MidGameValue = 0
	tmpScore.EndGameValue = 0

	white := e.threatsFor(White, Black)
	black := e.threatsFor(Black, White)

	tmpScore.MidGameValue = white - black
	tmpScore.EndGameValue = white - black

	return &tmpScore
}

// threatsFor scores threats us makes against them's pieces.
func (e *Evaluator) threatsFor(us Color, them Color) int {
	total := 0

	ourPawnAttacks := BbZero
	pawns := e.position.PiecesBb(us, Pawn)
	for pawns != BbZero {
		sq := pawns.PopLsb()
		ourPawnAttacks |= GetPawnAttacks(us, sq)
	}

	if minors := ourPawnAttacks & e.position.PiecesBb(them, Knight); minors != BbZero {
		total += minors.PopCount() * Settings.Eval.ThreatPawnAttacksMinor
	}
	if minors := ourPawnAttacks & e.position.PiecesBb(them, Bishop); minors != BbZero {
		total += minors.PopCount() * Settings.Eval.ThreatPawnAttacksMinor
	}
	if majors := ourPawnAttacks & e.position.PiecesBb(them, Rook); majors != BbZero {
		total += majors.PopCount() * Settings.Eval.ThreatPawnAttacksMajor
	}
	if majors := ourPawnAttacks & e.position.PiecesBb(them, Queen); majors != BbZero {
		total += majors.PopCount() * Settings.Eval.ThreatPawnAttacksMajor
	}

	ourMinorAttacks := BbZero
	knightBb := e.position.PiecesBb(us, Knight)
	for knightBb != BbZero {
		ourMinorAttacks |= GetAttacksBb(Knight, knightBb.PopLsb(), e.allPieces)
	}
	bishopBb := e.position.PiecesBb(us, Bishop)
	for bishopBb != BbZero {
		ourMinorAttacks |= GetAttacksBb(Bishop, bishopBb.PopLsb(), e.allPieces)
	}
	majorsHitByMinor := ourMinorAttacks & (e.position.PiecesBb(them, Rook) | e.position.PiecesBb(them, Queen))
	if majorsHitByMinor != BbZero {
		total += majorsHitByMinor.PopCount() * Settings.Eval.ThreatMinorAttacksMajor
	}

	ourRookAttacks := BbZero
	rookBb := e.position.PiecesBb(us, Rook)
	for rookBb != BbZero {
		sq := rookBb.PopLsb()
		ourRookAttacks |= GetAttacksBb(Rook, sq, e.allPieces)
	}
	if queensHitByRook := ourRookAttacks & e.position.PiecesBb(them, Queen); queensHitByRook != BbZero {
		total += queensHitByRook.PopCount() * Settings.Eval.ThreatRookAttacksQueen
	}

	// undefended minors and rooks of them that we attack at all.
	targets := (e.position.PiecesBb(them, Knight) | e.position.PiecesBb(them, Bishop) | e.position.PiecesBb(them, Rook)) & e.attack.All[us]
	for targets != BbZero {
		sq := targets.PopLsb()
		if attacks.AttacksTo(e.position, sq, them) != BbZero {
			continue // defended
		}
		pt := e.position.GetPiece(sq).TypeOf()
		if pt == Rook {
			total += Settings.Eval.ThreatUndefendedRookMalus
		} else {
			total += Settings.Eval.ThreatUndefendedMinorMalus
		}
	}

	return total
}
