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
	"testing"

	"github.com/stretchr/testify/assert"

	. "github.com/frankkopp/chessgo/internal/config"
	"github.com/frankkopp/chessgo/internal/position"
)

func TestEvaluateEndgameKRvKIsKnownWin(t *testing.T) {
	Settings.Eval.UseEndgameEval = true

	e := NewEvaluator()
	p := position.NewPosition("8/8/8/4k3/8/8/4R3/4K3 w - - 0 1")
	e.InitEval(p)

	v, ok := e.evaluateEndgame()
	assert.True(t, ok)
	assert.Greater(t, v, Value(knownWinScore-1))
}

func TestEvaluateEndgameKBNvKIsKnownWin(t *testing.T) {
	Settings.Eval.UseEndgameEval = true

	e := NewEvaluator()
	p := position.NewPosition("8/8/8/4k3/8/3BN3/8/4K3 w - - 0 1")
	e.InitEval(p)

	v, ok := e.evaluateEndgame()
	assert.True(t, ok)
	assert.Greater(t, v, Value(0))
}

func TestEvaluateEndgameTwoKnightsIsNotAKnownWin(t *testing.T) {
	Settings.Eval.UseEndgameEval = true

	e := NewEvaluator()
	p := position.NewPosition("8/8/8/4k3/8/3NN3/8/4K3 w - - 0 1")
	e.InitEval(p)

	_, ok := e.evaluateEndgame()
	assert.False(t, ok)
}

func TestWrongBishopPawnDrawDetectsWrongCorner(t *testing.T) {
	Settings.Eval.UseEndgameEval = true

	e := NewEvaluator()
	// white h-pawn with a light-squared bishop: the promotion square h8 is
	// dark, so the bishop cannot control it, and the black king already
	// guards the corner.
	p := position.NewPosition("6k1/7P/6K1/8/8/8/6B1/8 w - - 0 1")
	e.InitEval(p)

	v, ok := e.wrongBishopPawnDraw(White, Black, 1, 1, 0)
	assert.True(t, ok)
	assert.EqualValues(t, 0, v)
}

func TestEndgameScaleOppositeBishopsNoOtherPieces(t *testing.T) {
	e := NewEvaluator()
	p := position.NewPosition("4k3/8/8/8/8/8/8/2B1Kb2 w - - 0 1")
	e.InitEval(p)

	assert.InDelta(t, 0.4, e.endgameScale(), 0.0001)
}

func TestEndgameScaleSameColorBishopsUnscaled(t *testing.T) {
	e := NewEvaluator()
	// same-colored bishops (both on light squares) do not get the
	// opposite-bishop scale down.
	p := position.NewPosition("4k3/8/8/8/8/8/8/3BK2b w - - 0 1")
	e.InitEval(p)

	assert.InDelta(t, 1.0, e.endgameScale(), 0.0001)
}
