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

package types

import "fmt"

// Value is a centipawn score from the perspective of the side it was
// computed for. All search and evaluation values use this type so a
// value can never accidentally be compared against a raw int.
type Value int16

// Value bounds and special sentinels.
const (
	ValueZero Value = 0
	ValueDraw Value = 0
	ValueNA   Value = 16382

	ValueInfinite Value = 16383
	ValueMax      Value = ValueInfinite - 1

	// ValueMate is the score assigned to a mate at ply 0. Mate scores
	// found deeper in the tree are ValueMate minus the ply at which the
	// mate occurs so that shorter mates always sort as better.
	ValueMate      Value = 10000
	ValueMateDepth Value = 1000
	// ValueMateBound marks the threshold beyond which a score is
	// considered a mate score and is subject to mate-distance
	// normalisation when stored in or read from the transposition table.
	ValueMateBound Value = ValueMate - ValueMateDepth
)

// Byte size constants used when sizing caches (pawn cache, tt) from a
// configured number of megabytes.
const (
	KB uint64 = 1024
	MB uint64 = KB * KB
	GB uint64 = KB * MB
)

// IsValid reports whether v is a usable score rather than the ValueNA
// sentinel returned when no value could be produced.
func (v Value) IsValid() bool {
	return v != ValueNA
}

// IsMateValue reports whether v represents a forced mate for either side.
func (v Value) IsMateValue() bool {
	return v >= ValueMateBound || v <= -ValueMateBound
}

// MatePly returns the number of plies to the mate represented by v.
// Only meaningful when IsMateValue() is true.
func (v Value) MatePly() int {
	if v > 0 {
		return int(ValueMate - v)
	}
	return int(ValueMate + v)
}

func (v Value) String() string {
	switch {
	case v == ValueNA:
		return "N/A"
	case v.IsMateValue():
		plies := v.MatePly()
		moves := (plies + 1) / 2
		if v < 0 {
			moves = -moves
		}
		return fmt.Sprintf("mate %d", moves)
	default:
		return fmt.Sprintf("cp %d", int(v))
	}
}
