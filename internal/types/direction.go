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

// Direction is a square offset used to step from one square to a
// neighbour. Values are chosen so that Square+Direction lands on the
// neighbouring square in board order (a1=0 .. h8=63).
type Direction int

// The eight compass directions plus the knight-style composites used
// to precompute pseudo attacks.
const (
	North     Direction = 8
	South     Direction = -8
	East      Direction = 1
	West      Direction = -1
	Northeast Direction = North + East
	Northwest Direction = North + West
	Southeast Direction = South + East
	Southwest Direction = South + West
)

// Orientation indexes the eight rays radiating from a square; used to
// index the precomputed Ray tables and for the pin-detection x-ray trick.
type Orientation int

// Ray orientations, in the same compass order as Direction above.
const (
	N Orientation = iota
	E
	S
	W
	NE
	NW
	SE
	SW
)

// Direction returns +1 for White and -1 for Black so that a single
// table of White-relative step offsets can be reused for Black by
// multiplying with this factor.
func (c Color) Direction() int {
	if c == White {
		return 1
	}
	return -1
}

// MoveDirection returns the direction a pawn of this color advances.
func (c Color) MoveDirection() Direction {
	if c == White {
		return North
	}
	return South
}
