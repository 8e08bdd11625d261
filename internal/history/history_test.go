//
// chessgo - a UCI chess engine core written in Go
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

package history

import (
	"testing"

	"github.com/stretchr/testify/assert"

	. "github.com/frankkopp/chessgo/internal/types"
)

func TestDelta_IncreasesWithDepth(t *testing.T) {
	assert.Less(t, Delta(1), Delta(2))
	assert.Less(t, Delta(2), Delta(10))
	assert.Positive(t, Delta(1))
}

func TestHistory_UpdateQuiet_CutoffRaisesButterfly(t *testing.T) {
	h := NewHistory()
	before := h.Butterfly[WhitePawn][SqE4]
	h.UpdateQuiet(WhitePawn, SqE4, PieceNone, SqNone, PieceNone, SqNone, 4, true)
	assert.Greater(t, h.Butterfly[WhitePawn][SqE4], before)
}

func TestHistory_UpdateQuiet_NonCutoffLowersButterfly(t *testing.T) {
	h := NewHistory()
	before := h.Butterfly[WhitePawn][SqE4]
	h.UpdateQuiet(WhitePawn, SqE4, PieceNone, SqNone, PieceNone, SqNone, 4, false)
	assert.Less(t, h.Butterfly[WhitePawn][SqE4], before)
}

func TestHistory_UpdateQuiet_GravityBounds(t *testing.T) {
	h := NewHistory()
	for i := 0; i < 10000; i++ {
		h.UpdateQuiet(WhitePawn, SqE4, PieceNone, SqNone, PieceNone, SqNone, 20, true)
	}
	assert.Less(t, h.Butterfly[WhitePawn][SqE4], int32(resetFactor+Delta(20)))
}

func TestHistory_UpdateQuiet_UpdatesCounterMoveAndFollowUp(t *testing.T) {
	h := NewHistory()
	h.UpdateQuiet(WhiteKnight, SqF3, BlackPawn, SqE5, WhiteBishop, SqC4, 6, true)
	assert.Greater(t, h.CounterMove[BlackPawn][SqE5][WhiteKnight][SqF3], int32(0))
	assert.Greater(t, h.FollowUp[WhiteBishop][SqC4][WhiteKnight][SqF3], int32(0))
}

func TestHistory_UpdateQuiet_SkipsContinuationWithoutParent(t *testing.T) {
	h := NewHistory()
	h.UpdateQuiet(WhiteKnight, SqF3, PieceNone, SqNone, PieceNone, SqNone, 6, true)
	for _, row := range h.CounterMove {
		for _, col := range row {
			for _, inner := range col {
				for _, v := range inner {
					assert.Zero(t, v)
				}
			}
		}
	}
}

func TestHistory_UpdateCapture_CutoffRaisesScore(t *testing.T) {
	h := NewHistory()
	before := h.CaptureScore(WhiteKnight, Pawn, SqE5)
	h.UpdateCapture(WhiteKnight, Pawn, SqE5, 5, true)
	assert.Greater(t, h.CaptureScore(WhiteKnight, Pawn, SqE5), before)
}

func TestHistory_UpdateCapture_NonCutoffLowersScore(t *testing.T) {
	h := NewHistory()
	before := h.CaptureScore(WhiteKnight, Pawn, SqE5)
	h.UpdateCapture(WhiteKnight, Pawn, SqE5, 5, false)
	assert.Less(t, h.CaptureScore(WhiteKnight, Pawn, SqE5), before)
}

func TestHistory_QuietScore_CombinesAllApplicableTables(t *testing.T) {
	h := NewHistory()
	h.UpdateQuiet(WhiteKnight, SqF3, BlackPawn, SqE5, WhiteBishop, SqC4, 6, true)

	withContext := h.QuietScore(WhiteKnight, SqF3, BlackPawn, SqE5, WhiteBishop, SqC4)
	withoutContext := h.QuietScore(WhiteKnight, SqF3, PieceNone, SqNone, PieceNone, SqNone)

	assert.Greater(t, withContext, withoutContext)
	assert.Equal(t, h.Butterfly[WhiteKnight][SqF3], withoutContext)
}

func TestHistory_ContinuationNegative(t *testing.T) {
	h := NewHistory()

	// no parent/grandparent context: never flagged negative
	assert.False(t, h.ContinuationNegative(WhiteKnight, SqF3, PieceNone, SqNone, PieceNone, SqNone))

	// fresh table: countermove/followup entries are zero, not negative
	assert.False(t, h.ContinuationNegative(WhiteKnight, SqF3, BlackPawn, SqE5, WhiteBishop, SqC4))

	// repeated non-cutoff updates push both tables negative
	for i := 0; i < 20; i++ {
		h.UpdateQuiet(WhiteKnight, SqF3, BlackPawn, SqE5, WhiteBishop, SqC4, 6, false)
	}
	assert.True(t, h.ContinuationNegative(WhiteKnight, SqF3, BlackPawn, SqE5, WhiteBishop, SqC4))
}

func TestHistory_InstancesAreIndependent(t *testing.T) {
	a := NewHistory()
	b := NewHistory()
	a.UpdateQuiet(WhitePawn, SqE4, PieceNone, SqNone, PieceNone, SqNone, 4, true)
	assert.NotEqual(t, a.Butterfly[WhitePawn][SqE4], b.Butterfly[WhitePawn][SqE4])
	assert.Zero(t, b.Butterfly[WhitePawn][SqE4])
}
