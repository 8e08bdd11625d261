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

// Package history provides the history-driven move ordering tables
// used by search: butterfly and capture history for a move on its
// own, plus countermove and follow-up continuation history which
// condition a quiet move's score on the move played one and two
// plies earlier.
package history

import (
	. "github.com/frankkopp/chessgo/internal/types"
)

// resetFactor is the "gravity" divisor from the update formula: a
// large bonus pulls an entry's magnitude down before adding, which
// bounds the table without ever needing a hard clamp or a periodic
// full reset between searches.
const resetFactor = 448

// History holds the per-thread move-ordering tables updated during
// search. Every lazy-SMP worker owns its own instance; it is not
// shared across threads, unlike the transposition table.
type History struct {
	// Butterfly is indexed by the moving piece (which already encodes
	// color) and destination square.
	Butterfly [PieceLength][SqLength]int32

	// Capture is indexed by the moving piece, the captured piece kind
	// and the destination square.
	Capture [PieceLength][PtLength][SqLength]int32

	// CounterMove is continuation history conditioned on the move
	// played one ply earlier: [parentPiece][parentTo][piece][to].
	CounterMove [PieceLength][SqLength][PieceLength][SqLength]int32

	// FollowUp is continuation history conditioned on the move played
	// two plies earlier: [grandparentPiece][grandparentTo][piece][to].
	FollowUp [PieceLength][SqLength][PieceLength][SqLength]int32
}

// NewHistory creates a new, zeroed History instance.
func NewHistory() *History {
	return &History{}
}

// Delta is the update magnitude for a beta cutoff found at depth.
func Delta(depth int) int32 {
	d := int32(depth)
	return d*d + 5*d - 2
}

// update applies gravity-bounded history update: e += bonus -
// e*|bonus|/resetFactor. A positive bonus pulls e up towards +resetFactor, a
// negative bonus pulls it down towards -resetFactor, and the pull is gentler
// the further e already is from zero in the same direction as bonus.
func update(e *int32, bonus int32) {
	abs := bonus
	if abs < 0 {
		abs = -abs
	}
	*e += bonus - (*e)*abs/resetFactor
}

// UpdateQuiet updates butterfly history and, where available, the
// countermove and follow-up continuation tables for a quiet move that
// either caused a beta cutoff (cutoff true, bonus applied as +delta)
// or was searched and rejected before the cutoff (cutoff false, bonus
// applied as -delta per the spec's decay-then-add malus).
func (h *History) UpdateQuiet(piece Piece, to Square, parentPiece Piece, parentTo Square, grandparentPiece Piece, grandparentTo Square, depth int, cutoff bool) {
	delta := Delta(depth)
	if !cutoff {
		delta = -delta
	}
	update(&h.Butterfly[piece][to], delta)
	if parentPiece != PieceNone {
		update(&h.CounterMove[parentPiece][parentTo][piece][to], delta)
	}
	if grandparentPiece != PieceNone {
		update(&h.FollowUp[grandparentPiece][grandparentTo][piece][to], delta)
	}
}

// UpdateCapture updates capture history for a capturing move the same
// way UpdateQuiet updates butterfly history.
func (h *History) UpdateCapture(piece Piece, captured PieceType, to Square, depth int, cutoff bool) {
	delta := Delta(depth)
	if !cutoff {
		delta = -delta
	}
	update(&h.Capture[piece][captured][to], delta)
}

// QuietScore returns the combined move-ordering score for a quiet
// move: butterfly history plus whichever continuation tables apply.
func (h *History) QuietScore(piece Piece, to Square, parentPiece Piece, parentTo Square, grandparentPiece Piece, grandparentTo Square) int32 {
	score := h.Butterfly[piece][to]
	if parentPiece != PieceNone {
		score += h.CounterMove[parentPiece][parentTo][piece][to]
	}
	if grandparentPiece != PieceNone {
		score += h.FollowUp[grandparentPiece][grandparentTo][piece][to]
	}
	return score
}

// CaptureScore returns the capture-history score used as an
// adjustment on top of MVV/LVA when ordering the capture stage.
func (h *History) CaptureScore(piece Piece, captured PieceType, to Square) int32 {
	return h.Capture[piece][captured][to]
}

// ContinuationNegative reports whether both the countermove and
// follow-up entries for (piece, to) are negative, the signal used by
// continuation-history pruning to skip a quiet move outright at low
// reduced depth.
func (h *History) ContinuationNegative(piece Piece, to Square, parentPiece Piece, parentTo Square, grandparentPiece Piece, grandparentTo Square) bool {
	if parentPiece == PieceNone || grandparentPiece == PieceNone {
		return false
	}
	return h.CounterMove[parentPiece][parentTo][piece][to] < 0 &&
		h.FollowUp[grandparentPiece][grandparentTo][piece][to] < 0
}
