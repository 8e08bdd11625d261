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

// Move packs a chess move into 32 bits: the low 16 bits hold the
// actual move (from, to, kind, promotion piece), the high 16 bits
// hold a transient sort value used while move lists are ordered. Two
// moves compare equal as moves (MoveOf()) regardless of the value
// bits, which lets move generation attach a throwaway ordering score
// without needing a parallel slice of scores.
type Move uint32

// MoveNone is the zero move, never a legal move on any position.
const MoveNone Move = 0

// MoveKind is the coarse shape of a move: most moves are Normal; the
// other three kinds need special handling in DoMove/UndoMove.
type MoveKind uint8

// The four move kinds.
const (
	Normal    MoveKind = 0
	Promotion MoveKind = 1
	EnPassant MoveKind = 2
	Castling  MoveKind = 3
)

func (mk MoveKind) String() string {
	switch mk {
	case Promotion:
		return "Promotion"
	case EnPassant:
		return "EnPassant"
	case Castling:
		return "Castling"
	default:
		return "Normal"
	}
}

const (
	moveFromShift  = 0
	moveToShift    = 6
	moveKindShift  = 12
	movePromoShift = 14
	moveValueShift = 16

	moveSquareMask = 0x3F
	moveKindMask   = 0x3
	movePromoMask  = 0x3
	moveDataMask   = 0xFFFF
)

// promoCode/promoFromCode map the four promotable piece types to/from
// the 2-bit field in a Move.
func promoCode(pt PieceType) Move {
	if pt < Knight || pt > Queen {
		return 0
	}
	return Move(pt - Knight)
}

func promoFromCode(code Move) PieceType {
	return Knight + PieceType(code)
}

// CreateMove builds a Move with no embedded sort value.
func CreateMove(from, to Square, kind MoveKind, promotionType PieceType) Move {
	return CreateMoveValue(from, to, kind, promotionType, ValueZero)
}

// CreateMoveValue builds a Move carrying an embedded sort value, as
// used by move generation to pre-sort candidate moves before search
// sees them.
func CreateMoveValue(from, to Square, kind MoveKind, promotionType PieceType, value Value) Move {
	m := Move(from)<<moveFromShift |
		Move(to)<<moveToShift |
		Move(kind)<<moveKindShift |
		promoCode(promotionType)<<movePromoShift
	m |= (Move(uint16(int16(value))) << moveValueShift)
	return m
}

// From returns the origin square.
func (m Move) From() Square {
	return Square((m >> moveFromShift) & moveSquareMask)
}

// To returns the destination square.
func (m Move) To() Square {
	return Square((m >> moveToShift) & moveSquareMask)
}

// MoveType returns the coarse move kind.
func (m Move) MoveType() MoveKind {
	return MoveKind((m >> moveKindShift) & moveKindMask)
}

// PromotionType returns the piece type promoted to. Only meaningful
// when MoveType() == Promotion.
func (m Move) PromotionType() PieceType {
	return promoFromCode((m >> movePromoShift) & movePromoMask)
}

// IsPromotion reports whether m is a promotion move.
func (m Move) IsPromotion() bool {
	return m.MoveType() == Promotion
}

// IsEnPassant reports whether m is an en passant capture.
func (m Move) IsEnPassant() bool {
	return m.MoveType() == EnPassant
}

// IsCastling reports whether m is a castling move.
func (m Move) IsCastling() bool {
	return m.MoveType() == Castling
}

// IsValid reports whether m encodes a from/to pair that could ever be
// a legal move, i.e. distinct valid squares. It does not check
// position-dependent legality.
func (m Move) IsValid() bool {
	return m != MoveNone && m.From().IsValid() && m.To().IsValid() && m.From() != m.To()
}

// MoveOf strips the embedded sort value, returning the canonical move
// used for equality comparisons (hash move lookups, killer matches).
func (m Move) MoveOf() Move {
	return m & moveDataMask
}

// ValueOf extracts the embedded sort value.
func (m Move) ValueOf() Value {
	return Value(int16(uint16(m >> moveValueShift)))
}

// SetValue overwrites the embedded sort value in place and returns the
// updated move, so callers can use it either as `m.SetValue(v)` on an
// addressable Move (mutates and yields the new value) or purely
// functionally via the returned value.
func (m *Move) SetValue(v Value) Move {
	*m = (*m & moveDataMask) | (Move(uint16(int16(v))) << moveValueShift)
	return *m
}

func (m Move) String() string {
	if m == MoveNone {
		return "no move"
	}
	s := m.From().String() + m.To().String()
	if m.IsPromotion() {
		s += m.PromotionType().String()
	}
	return s
}

// StringUci renders m in UCI's long algebraic notation (identical to
// String for this representation, but kept distinct so callers never
// need to know that the two happen to coincide).
func (m Move) StringUci() string {
	if m == MoveNone {
		return "(none)"
	}
	return m.String()
}

// DebugString renders m together with its kind and embedded value,
// useful in log output and panics.
func (m Move) DebugString() string {
	return fmt.Sprintf("%s (%s, value=%s)", m.String(), m.MoveType().String(), m.ValueOf().String())
}
