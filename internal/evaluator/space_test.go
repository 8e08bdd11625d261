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

func TestEvalSpaceStartPositionIsSymmetric(t *testing.T) {
	Settings.Eval.UseSpace = true

	e := NewEvaluator()
	p := position.NewPosition()
	e.InitEval(p)
	e.attack.Compute(p)

	score := e.evalSpace()
	assert.EqualValues(t, 0, score.MidGameValue)
}

func TestEvalSpaceAdvancedPawnsGainSpace(t *testing.T) {
	Settings.Eval.UseSpace = true

	e := NewEvaluator()
	// white has pushed center pawns to the fourth rank, black is undeveloped.
	p := position.NewPosition("rnbqkbnr/pppppppp/8/8/2PPPP2/8/PP4PP/RNBQKBNR w KQkq - 0 1")
	e.InitEval(p)
	e.attack.Compute(p)

	white := e.spaceFor(White, Black)
	black := e.spaceFor(Black, White)
	assert.Greater(t, white, black)
}
