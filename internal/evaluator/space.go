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

// centerFiles marks the c, d, e and f files, where controlling space behind
// one's own pawns matters most because pieces maneuver there.
var centerFiles = FileC.Bb() | FileD.Bb() | FileE.Bb() | FileF.Bb()

// ownHalf[c] is the set of ranks on c's own side of the board.
var ownHalf = [ColorLength]Bitboard{
	White: Rank1.Bb() | Rank2.Bb() | Rank3.Bb() | Rank4.Bb(),
	Black: Rank5.Bb() | Rank6.Bb() | Rank7.Bb() | Rank8.Bb(),
}

// evalSpace rewards controlling squares behind one's own pawns on one's own
// side of the board: space is most valuable in closed middlegames where
// maneuvering room decides which side can regroup pieces first, so it is
// only ever added to the mid-game score.
func (e *Evaluator) evalSpace() *Score {
	tmpScore.MidGameValue = 0
	tmpScore.EndGameValue = 0

	tmpScore.MidGameValue = e.spaceFor(White, Black) - e.spaceFor(Black, White)

	return &tmpScore
}

func (e *Evaluator) spaceFor(us Color, them Color) int {
	safe := ownHalf[us] &^ e.position.PiecesBb(them, Pawn) &^ e.attack.All[them]

	behind := BbZero
	pawns := e.position.PiecesBb(us, Pawn)
	for pawns != BbZero {
		sq := pawns.PopLsb()
		if us == White {
			behind |= sq.RanksSouthMask()
		} else {
			behind |= sq.RanksNorthMask()
		}
	}

	controlled := safe & behind

	total := (controlled & centerFiles).PopCount() * Settings.Eval.SpaceBonusMid
	total += (controlled &^ centerFiles).PopCount() * Settings.Eval.SpaceBonusSide

	return total
}
