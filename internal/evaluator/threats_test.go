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

func TestEvalThreatsStartPositionIsZero(t *testing.T) {
	Settings.Eval.UseThreats = true

	e := NewEvaluator()
	p := position.NewPosition()
	e.InitEval(p)
	e.attack.Compute(p)

	score := e.evalThreats()
	assert.EqualValues(t, 0, score.MidGameValue)
}

func TestEvalThreatsPawnForksMinor(t *testing.T) {
	Settings.Eval.UseThreats = true

	e := NewEvaluator()
	// white pawn on e5 attacks a black knight on d6.
	p := position.NewPosition("4k3/8/3n4/4P3/8/8/8/4K3 w - - 0 1")
	e.InitEval(p)
	e.attack.Compute(p)

	white := e.threatsFor(White, Black)
	assert.Greater(t, white, 0)
}

func TestEvalThreatsUndefendedMinorIsPenalized(t *testing.T) {
	Settings.Eval.UseThreats = true

	e := NewEvaluator()
	// white bishop on the long diagonal attacks an undefended black knight on h8.
	p := position.NewPosition("3k3n/8/8/8/8/8/8/B3K3 w - - 0 1")
	e.InitEval(p)
	e.attack.Compute(p)

	white := e.threatsFor(White, Black)
	assert.Greater(t, white, 0)
}
