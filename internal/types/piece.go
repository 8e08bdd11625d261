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

import "strings"

// Color identifies the side to move / the owner of a piece.
type Color uint8

// The two colors. ColorLength is the number of colors and doubles as
// a sentinel for "no color" in contexts that need one.
const (
	White       Color = iota
	Black       Color = iota
	ColorLength       = Black + 1
	ColorNone   Color = ColorLength
)

// Flip returns the opposite color.
func (c Color) Flip() Color {
	return c ^ 1
}

// IsValid reports whether c is White or Black.
func (c Color) IsValid() bool {
	return c <= Black
}

func (c Color) String() string {
	if c == White {
		return "White"
	}
	return "Black"
}

// PromotionRankBb returns the rank a pawn of this color promotes on.
func (c Color) PromotionRankBb() Bitboard {
	if c == White {
		return Rank8_Bb
	}
	return Rank1_Bb
}

// PawnDoublePushRank returns the rank a pawn of this color stands on
// when eligible for a two-square advance.
func (c Color) PawnDoublePushRank() Rank {
	if c == White {
		return Rank2
	}
	return Rank7
}

// PieceType identifies the kind of a piece, independent of color.
// PtNone and Pawn through King match the ordering required by the
// spec's Piece Kind data model (0..5 = pawn..king), shifted by one to
// make PtNone a usable zero value.
type PieceType uint8

// Piece kinds. PtLength is the number of real piece kinds (6); arrays
// indexed by PieceType size themselves to PtLength to also hold the
// PtNone slot.
const (
	PtNone  PieceType = iota
	Pawn    PieceType = iota
	Knight  PieceType = iota
	Bishop  PieceType = iota
	Rook    PieceType = iota
	Queen   PieceType = iota
	King    PieceType = iota
	PtLength          = King + 1
)

var pieceTypeChars = [PtLength]byte{' ', 'p', 'n', 'b', 'r', 'q', 'k'}

// IsValid reports whether pt is one of the six real piece kinds.
func (pt PieceType) IsValid() bool {
	return pt >= Pawn && pt <= King
}

func (pt PieceType) String() string {
	if !pt.IsValid() {
		return "-"
	}
	return string(pieceTypeChars[pt])
}

// ValueOf returns the static material value of the piece kind.
func (pt PieceType) ValueOf() Value {
	return PieceTypeValue[pt]
}

// Char returns the lowercase FEN letter for the piece kind, used for
// promotion-suffix rendering ("q", "n", ...). Identical to String but
// named for call sites that specifically want the promotion letter.
func (pt PieceType) Char() string {
	return pt.String()
}

// Piece is a (Color, PieceType) pair packed into a single byte so it
// can be stored directly on the 64-square board array.
type Piece uint8

// MakePiece packs a color and piece type into a Piece.
func MakePiece(c Color, pt PieceType) Piece {
	return Piece(pt)<<1 | Piece(c)
}

// Piece values for every (color, kind) combination plus PieceNone.
const (
	PieceNone Piece = iota
	_
	WhitePawn
	BlackPawn
	WhiteKnight
	BlackKnight
	WhiteBishop
	BlackBishop
	WhiteRook
	BlackRook
	WhiteQueen
	BlackQueen
	WhiteKing
	BlackKing
	PieceLength = BlackKing + 1
)

// ColorOf returns the color of the piece. Undefined for PieceNone.
func (p Piece) ColorOf() Color {
	return Color(p & 1)
}

// TypeOf returns the piece kind, ignoring color.
func (p Piece) TypeOf() PieceType {
	return PieceType(p >> 1)
}

// IsValid reports whether p denotes an actual piece (not PieceNone).
func (p Piece) IsValid() bool {
	return p != PieceNone && p.TypeOf().IsValid()
}

// ValueOf returns the static material value of the piece, king
// included (the king is given a large but finite value so that
// material-difference arithmetic involving a captured-king bug fails
// loudly instead of silently overflowing).
func (p Piece) ValueOf() Value {
	return PieceTypeValue[p.TypeOf()]
}

// PieceTypeValue holds the static material value per piece kind, used
// both by Piece.ValueOf and directly by the evaluator and SEE.
var PieceTypeValue = [PtLength]Value{
	PtNone: 0,
	Pawn:   100,
	Knight: 320,
	Bishop: 330,
	Rook:   500,
	Queen:  900,
	King:   2000,
}

func (p Piece) String() string {
	if !p.IsValid() {
		return "-"
	}
	c := pieceTypeChars[p.TypeOf()]
	if p.ColorOf() == White {
		c = c - ('a' - 'A')
	}
	return string(c)
}

// Char is an alias for String, used at board-printing call sites that
// want the single FEN letter for the piece.
func (p Piece) Char() string {
	return p.String()
}

// PieceFromChar parses a single FEN piece letter ("P","n","Q", ...)
// into a Piece. Returns PieceNone for anything that does not match
// exactly one recognised letter.
func PieceFromChar(s string) Piece {
	if len(s) != 1 {
		return PieceNone
	}
	idx := strings.IndexByte("pnbrqk", lower(s[0]))
	if idx < 0 {
		return PieceNone
	}
	pt := PieceType(idx + 1)
	c := White
	if s[0] >= 'a' && s[0] <= 'z' {
		c = Black
	}
	return MakePiece(c, pt)
}

func lower(b byte) byte {
	if b >= 'A' && b <= 'Z' {
		return b + ('a' - 'A')
	}
	return b
}
