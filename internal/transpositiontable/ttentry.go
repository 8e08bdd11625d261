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

package transpositiontable

import (
	"github.com/frankkopp/chessgo/internal/position"
	. "github.com/frankkopp/chessgo/internal/types"
)

// TtEntry is one slot of a TtNode. Each entry is 16 bytes: full
// 64-bit key, 16-bit score, 16-bit move, 16-bit static eval, 8-bit
// depth, and a packed age/type byte (6-bit age, 2-bit node type).
type TtEntry struct {
	key     position.Key
	score   int16
	move    uint16
	eval    int16
	depth   uint8
	ageType uint8
}

const (
	// TtEntrySize is the size in bytes of a single TtEntry
	TtEntrySize = 16

	// TtNodeSize is the size in bytes of a two-slot bucket.
	TtNodeSize = 2 * TtEntrySize

	ageBits   = uint8(0b1111_1100)
	ageShift  = uint8(2)
	typeBits  = uint8(0b0000_0011)
	ageModulo = uint8(64) // age occupies 6 bits
)

// Key returns the full zobrist key stored for this slot. A zero key
// marks an empty, never-written slot.
func (e *TtEntry) Key() position.Key {
	return e.key
}

// Move returns the best/hash move for this slot, or MoveNone if the
// slot is empty.
func (e *TtEntry) Move() Move {
	return Move(e.move)
}

// Score returns the stored search score (mate-distance adjusted by
// the caller, see valueToTT/valueFromTT).
func (e *TtEntry) Score() Value {
	return Value(e.score)
}

// Eval returns the cached static evaluation, or ValueNA if none was
// ever stored for this slot.
func (e *TtEntry) Eval() Value {
	return Value(e.eval)
}

// Depth returns the search depth the entry was stored at.
func (e *TtEntry) Depth() int8 {
	return int8(e.depth)
}

// Age returns the generation the entry was last written in, taken
// modulo ageModulo (it only occupies 6 bits).
func (e *TtEntry) Age() uint8 {
	return (e.ageType & ageBits) >> ageShift
}

// Type returns the node-type tag (EXACT/ALPHA/BETA/Vnone) for the
// stored score.
func (e *TtEntry) Type() ValueType {
	return ValueType(e.ageType & typeBits)
}

func (e *TtEntry) isEmpty() bool {
	return e.key == 0
}

// write overwrites this slot. When eval is ValueNA and the slot already
// holds the same key, any previously cached static eval is kept rather
// than clobbered, so a search-result Put doesn't erase an eval-only Put.
func (e *TtEntry) write(key position.Key, move Move, depth int8, score Value, eval Value, valueType ValueType, age uint8) {
	if eval == ValueNA && e.key == key {
		eval = Value(e.eval)
	}
	e.key = key
	e.move = uint16(move.MoveOf())
	e.depth = uint8(depth)
	e.score = int16(score)
	e.eval = int16(eval)
	e.ageType = (age << ageShift) | uint8(valueType)
}

// replacementScore implements the spec's two-slot replacement policy:
// 16 * (currentAge - slotAge mod ageModulo) + (newDepth - slotDepth).
// Lower is staler/shallower and therefore preferred for eviction.
func (e *TtEntry) replacementScore(currentAge uint8, newDepth int8) int {
	ageDelta := int((currentAge - e.Age()) % ageModulo)
	return 16*ageDelta + int(newDepth-e.Depth())
}

// TtNode is a two-slot bucket: the unit the table is actually indexed
// by. Two physically adjacent entries sharing one cache line.
type TtNode struct {
	slots [2]TtEntry
}
