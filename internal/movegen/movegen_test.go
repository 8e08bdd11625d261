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

package movegen

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/frankkopp/chessgo/internal/history"
	"github.com/frankkopp/chessgo/internal/position"
	. "github.com/frankkopp/chessgo/internal/types"
)

func TestGeneratePseudoLegalMoves_StartPosCounts(t *testing.T) {
	mg := NewMoveGen()
	p := position.NewPosition()

	moves := mg.GeneratePseudoLegalMoves(p, GenAll, false)
	assert.Equal(t, 20, moves.Len())

	moves = mg.GeneratePseudoLegalMoves(p, GenNonQuiet, false)
	assert.Equal(t, 0, moves.Len())

	moves = mg.GeneratePseudoLegalMoves(p, GenQuiet, false)
	assert.Equal(t, 20, moves.Len())
}

// single checker from a knight: blocking is impossible, every legal
// move must either capture the knight or step the king away.
func TestGeneratePseudoLegalMoves_EvasionSingleKnightCheck(t *testing.T) {
	mg := NewMoveGen()
	p, err := position.NewPositionFen("rnbqkb1r/pppppppp/8/8/8/3n4/PPPPPPPP/RNBQKBNR w KQkq - 0 1")
	assert.NoError(t, err)

	moves := mg.GeneratePseudoLegalMoves(p, GenAll, true)
	assert.Positive(t, moves.Len())
	for _, m := range *moves {
		assert.True(t, p.IsLegalMove(m))
	}
}

// king must step out of check, a slider checker can also be blocked or
// captured: verify evasion-only generation never produces a move that
// leaves the king in check.
func TestGeneratePseudoLegalMoves_EvasionNeverLeavesKingInCheck(t *testing.T) {
	mg := NewMoveGen()
	// black rook on h1 checks the white king on e1 along the first rank
	p, err := position.NewPositionFen("4k3/8/8/8/8/8/4P3/4K2r w - - 0 1")
	assert.NoError(t, err)

	moves := mg.GeneratePseudoLegalMoves(p, GenAll, true)
	assert.Positive(t, moves.Len())
	for _, m := range *moves {
		assert.True(t, p.IsLegalMove(m), "evasion move %s must be legal", m.String())
	}
}

// double check: only the king may move, nothing can capture or block
// two attackers at once.
func TestGeneratePseudoLegalMoves_DoubleCheckOnlyKingMoves(t *testing.T) {
	mg := NewMoveGen()
	p, err := position.NewPositionFen("4q3/8/8/8/8/3n4/8/4K3 w - - 0 1")
	assert.NoError(t, err)

	moves := mg.GeneratePseudoLegalMoves(p, GenAll, true)
	for _, m := range *moves {
		assert.Equal(t, SqE1, m.From())
	}
}

func TestGenerateLegalMoves_FiltersIllegalMoves(t *testing.T) {
	mg := NewMoveGen()
	// white king pinned rook on e-file: the rook cannot step off the file
	p, err := position.NewPositionFen("4r3/8/8/8/8/8/4R3/4K3 w - - 0 1")
	assert.NoError(t, err)

	pseudo := mg.GeneratePseudoLegalMoves(p, GenAll, false)
	legal := mg.GenerateLegalMoves(p, GenAll)
	assert.Less(t, legal.Len(), pseudo.Len())
}

func TestGetNextMove_ReturnsPvMoveFirst(t *testing.T) {
	mg := NewMoveGen()
	p := position.NewPosition()

	legal := mg.GenerateLegalMoves(p, GenAll)
	pv := legal.At(legal.Len() - 1).MoveOf()
	mg.SetPvMove(pv)

	first := mg.GetNextMove(p, GenAll, false)
	assert.Equal(t, pv, first)
}

func TestGetNextMove_ExhaustsAllLegalMoves(t *testing.T) {
	mg := NewMoveGen()
	p := position.NewPosition()

	legal := mg.GenerateLegalMoves(p, GenAll)
	expected := make(map[Move]bool)
	for _, m := range *legal {
		expected[m.MoveOf()] = true
	}

	mg.ResetOnDemand()
	seen := make(map[Move]bool)
	for {
		m := mg.GetNextMove(p, GenAll, false)
		if m == MoveNone {
			break
		}
		seen[m] = true
	}
	assert.Equal(t, expected, seen)
}

func TestGetNextMove_EvasionOnlyReturnsLegalEscapes(t *testing.T) {
	mg := NewMoveGen()
	p, err := position.NewPositionFen("4k3/8/8/8/8/8/4P3/4K2r w - - 0 1")
	assert.NoError(t, err)

	mg.ResetOnDemand()
	for {
		m := mg.GetNextMove(p, GenAll, true)
		if m == MoveNone {
			break
		}
		assert.True(t, p.IsLegalMove(m))
	}
}

func TestStoreKiller_ShiftsPreviousKillerToSecondSlot(t *testing.T) {
	mg := NewMoveGen()
	mg.SetHistoryData(history.NewHistory())
	p := position.NewPosition()

	legal := mg.GenerateLegalMoves(p, GenAll)
	killer := legal.At(0).MoveOf()
	mg.StoreKiller(killer)

	assert.Equal(t, killer, mg.KillerMoves()[0])

	second := legal.At(1).MoveOf()
	mg.StoreKiller(second)
	assert.Equal(t, second, mg.KillerMoves()[0])
	assert.Equal(t, killer, mg.KillerMoves()[1])
}

func TestStoreKiller_DuplicateIsNoOp(t *testing.T) {
	mg := NewMoveGen()
	p := position.NewPosition()
	legal := mg.GenerateLegalMoves(p, GenAll)
	killer := legal.At(0).MoveOf()

	mg.StoreKiller(killer)
	mg.StoreKiller(killer)
	assert.Equal(t, killer, mg.KillerMoves()[0])
	assert.Equal(t, MoveNone, mg.KillerMoves()[1])
}

func TestHasLegalMove_Checkmate(t *testing.T) {
	mg := NewMoveGen()
	// fool's mate final position, white to move, no legal moves
	p, err := position.NewPositionFen("rnb1kbnr/pppp1ppp/8/4p3/6Pq/5P2/PPPPP2P/RNBQKBNR w KQkq - 1 3")
	assert.NoError(t, err)
	assert.False(t, mg.HasLegalMove(p))
}

func TestHasLegalMove_Stalemate(t *testing.T) {
	mg := NewMoveGen()
	p, err := position.NewPositionFen("7k/5Q2/6K1/8/8/8/8/8 b - - 0 1")
	assert.NoError(t, err)
	assert.False(t, mg.HasLegalMove(p))
}

func TestHasLegalMove_StartPosition(t *testing.T) {
	mg := NewMoveGen()
	p := position.NewPosition()
	assert.True(t, mg.HasLegalMove(p))
}

func TestGetMoveFromUci(t *testing.T) {
	mg := NewMoveGen()
	p := position.NewPosition()
	m := mg.GetMoveFromUci(p, "e2e4")
	assert.True(t, m.IsValid())
	assert.Equal(t, SqE2, m.From())
	assert.Equal(t, SqE4, m.To())

	assert.Equal(t, MoveNone, mg.GetMoveFromUci(p, "e2e5"))
}

func TestGetMoveFromSan(t *testing.T) {
	mg := NewMoveGen()
	p := position.NewPosition()
	m := mg.GetMoveFromSan(p, "Nf3")
	assert.True(t, m.IsValid())
	assert.Equal(t, SqG1, m.From())
	assert.Equal(t, SqF3, m.To())
}

func TestValidateMove(t *testing.T) {
	mg := NewMoveGen()
	p := position.NewPosition()
	legal := mg.GenerateLegalMoves(p, GenAll)
	assert.True(t, mg.ValidateMove(p, legal.At(0)))
	assert.False(t, mg.ValidateMove(p, MoveNone))
}
