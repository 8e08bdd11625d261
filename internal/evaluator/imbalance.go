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

// ownOppImbalance[ownType][oppType] holds the mid/end-game bonus for
// having ownType while the opponent has oppType, on top of plain material.
// Values are only meaningful for the lower triangle (ownType >= oppType)
// of the Knight..Queen range; PtNone and King are never indexed. Small
// values favoring knights when the opponent also has many minors, and
// favoring bishops/rooks in open, minor-light positions.
var ownOppImbalance = [PtLength][PtLength]int{
	Knight: {
		Pawn:   1,
		Knight: 0,
	},
	Bishop: {
		Pawn:   1,
		Knight: 2,
		Bishop: 0,
	},
	Rook: {
		Pawn:   0,
		Knight: 3,
		Bishop: 2,
		Rook:   0,
	},
	Queen: {
		Pawn:   2,
		Knight: 4,
		Bishop: 3,
		Rook:   5,
		Queen:  0,
	},
}

// bishopPairImbalance is folded into evalImbalance instead of evalPiece's
// flat BishopPairBonus when imbalance scoring is enabled, since whether a
// pair is worth more or less depends on what the opponent is holding too.
const bishopPairImbalance = 8

// evalImbalance scores the asymmetry between the two sides' piece sets:
// a material difference of "knight for bishop" is not the same trade in
// every position, so every own/opponent piece-type pair contributes a
// small adjustment on top of plain material counting.
func (e *Evaluator) evalImbalance() *Score {
	tmpScore.MidGameValue = 0
	tmpScore.EndGameValue = 0

	white := e.imbalanceFor(White, Black)
	black := e.imbalanceFor(Black, White)

	tmpScore.MidGameValue = white - black
	tmpScore.EndGameValue = tmpScore.MidGameValue

	return &tmpScore
}

func (e *Evaluator) imbalanceFor(us Color, them Color) int {
	total := 0
	for ownType := Knight; ownType <= Queen; ownType++ {
		ownCount := e.position.PiecesBb(us, ownType).PopCount()
		if ownCount == 0 {
			continue
		}
		for oppType := Pawn; oppType <= ownType; oppType++ {
			oppCount := e.position.PiecesBb(them, oppType).PopCount()
			total += ownCount * oppCount * ownOppImbalance[ownType][oppType]
		}
	}

	if e.position.PiecesBb(us, Bishop).PopCount() > 1 {
		total += bishopPairImbalance
	}

	// knights gain value in closed positions: count own pawns that are
	// blocked by an opposing pawn directly in front of them.
	closedPawns := 0
	ourPawns := e.position.PiecesBb(us, Pawn)
	theirPawns := e.position.PiecesBb(them, Pawn)
	pawns := ourPawns
	for pawns != BbZero {
		sq := pawns.PopLsb()
		aheadSq := Square(int(sq) + int(us.MoveDirection()))
		if aheadSq.IsValid() && theirPawns.Has(aheadSq) {
			closedPawns++
		}
	}
	total += e.position.PiecesBb(us, Knight).PopCount() * closedPawns * Settings.Eval.KnightClosedBonus

	return total
}
