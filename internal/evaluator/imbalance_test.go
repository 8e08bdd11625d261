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

func TestEvalImbalanceBishopPair(t *testing.T) {
	Settings.Eval.UseImbalance = true

	e := NewEvaluator()
	p := position.NewPosition("4k3/8/8/8/8/8/8/2B1KB2 w - - 0 1")
	e.InitEval(p)

	score := e.evalImbalance()
	assert.Greater(t, score.MidGameValue, 0)
	assert.Equal(t, score.MidGameValue, score.EndGameValue)
}

func TestEvalImbalanceSymmetricIsZero(t *testing.T) {
	Settings.Eval.UseImbalance = true

	e := NewEvaluator()
	p := position.NewPosition()
	e.InitEval(p)

	score := e.evalImbalance()
	assert.EqualValues(t, 0, score.MidGameValue)
	assert.EqualValues(t, 0, score.EndGameValue)
}

func TestEvalImbalanceKnightsFavorClosedPosition(t *testing.T) {
	Settings.Eval.UseImbalance = true

	e := NewEvaluator()
	// a white pawn blocked head-on by a black pawn, white holding the knight.
	p := position.NewPosition("4k3/8/8/3p4/3P4/2N5/8/4K3 w - - 0 1")
	e.InitEval(p)

	total := e.imbalanceFor(White, Black)
	assert.Greater(t, total, 0)
}
