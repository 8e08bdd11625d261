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
	. "github.com/frankkopp/chessgo/internal/config"
	. "github.com/frankkopp/chessgo/internal/types"
)

// evaluatePawns scores both sides' pawn structure in one pass (isolated,
// doubled, passed, backward, phalanx and defended pawns) and caches the
// result by pawn-only zobrist key, since pawn structure rarely changes
// between sibling nodes in the search tree.
func (e *Evaluator) evaluatePawns() *Score {
	if Settings.Eval.UsePawnCache {
		if entry := e.pawnCache.getEntry(e.position.PawnKey()); entry != nil {
			tmpScore.MidGameValue = entry.score.MidGameValue
			tmpScore.EndGameValue = entry.score.EndGameValue
			return &tmpScore
		}
	}

	tmpScore.MidGameValue = 0
	tmpScore.EndGameValue = 0

	e.evaluatePawnsOfColor(White)
	white := tmpScore
	tmpScore.MidGameValue = 0
	tmpScore.EndGameValue = 0
	e.evaluatePawnsOfColor(Black)

	tmpScore.MidGameValue = white.MidGameValue - tmpScore.MidGameValue
	tmpScore.EndGameValue = white.EndGameValue - tmpScore.EndGameValue

	if Settings.Eval.UsePawnCache {
		e.pawnCache.put(e.position.PawnKey(), &tmpScore)
	}

	return &tmpScore
}

// evaluatePawnsOfColor accumulates the one-sided pawn structure score for
// us into tmpScore. Called twice by evaluatePawns, once per color, so the
// caller is responsible for differencing the two results.
func (e *Evaluator) evaluatePawnsOfColor(us Color) {
	them := us.Flip()
	ourPawns := e.position.PiecesBb(us, Pawn)
	theirPawns := e.position.PiecesBb(them, Pawn)

	pawns := ourPawns
	for pawns != BbZero {
		sq := pawns.PopLsb()

		isolated := sq.NeighbourFilesMask()&ourPawns == BbZero
		if isolated {
			tmpScore.MidGameValue += Settings.Eval.PawnIsolatedMidMalus
			tmpScore.EndGameValue += Settings.Eval.PawnIsolatedEndMalus
		}

		if (sq.FileOf().Bb() & ourPawns).PopCount() > 1 {
			tmpScore.MidGameValue += Settings.Eval.PawnDoubledMidMalus
			tmpScore.EndGameValue += Settings.Eval.PawnDoubledEndMalus
		}

		supported := GetPawnAttacks(them, sq)&ourPawns != BbZero
		if supported {
			tmpScore.MidGameValue += Settings.Eval.PawnSupportedMidBonus
			tmpScore.EndGameValue += Settings.Eval.PawnSupportedEndBonus
		}

		phalanx := (ShiftBitboard(sq.Bb(), East)|ShiftBitboard(sq.Bb(), West))&ourPawns != BbZero
		if phalanx {
			tmpScore.MidGameValue += Settings.Eval.PawnPhalanxMidBonus
			tmpScore.EndGameValue += Settings.Eval.PawnPhalanxEndBonus
		}

		if sq.PassedPawnMask(us)&theirPawns == BbZero {
			progress := relativeRank(us, sq) // 1 (start rank) .. 6 (about to promote)
			tmpScore.MidGameValue += Settings.Eval.PawnPassedMidBonus * progress
			tmpScore.EndGameValue += Settings.Eval.PawnPassedEndBonus * progress
		}

		if !isolated && !supported && !phalanx {
			behindMask := sq.RanksSouthMask()
			if us == Black {
				behindMask = sq.RanksNorthMask()
			}
			hasBackup := sq.NeighbourFilesMask()&behindMask&ourPawns != BbZero
			if !hasBackup {
				pushSq := Square(int(sq) + int(us.MoveDirection()))
				if pushSq.IsValid() && GetPawnAttacks(us, pushSq)&theirPawns != BbZero {
					tmpScore.MidGameValue += Settings.Eval.PawnBlockedMidMalus
					tmpScore.EndGameValue += Settings.Eval.PawnBlockedEndMalus
				}
			}
		}
	}
}

// relativeRank returns how many ranks sq has advanced from us's own back
// rank, 1 for the second rank (a pawn's start) up to 6 just before
// promotion.
func relativeRank(us Color, sq Square) int {
	if us == White {
		return int(sq.RankOf())
	}
	return int(Rank8 - sq.RankOf())
}
