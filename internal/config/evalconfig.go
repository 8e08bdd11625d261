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

package config

type evalConfiguration struct {

	// evaluation values
	UseMaterialEval   bool
	UsePositionalEval bool
	UseLazyEval       bool
	LazyEvalThreshold int

	Tempo int

	UseAttacksInEval bool

	UseMobility   bool
	MobilityBonus int

	UseAdvancedPieceEval bool
	BishopPairBonus      int
	MinorBehindPawnBonus int
	BishopPawnMalus      int
	BishopCenterAimBonus int
	BishopBlockedMalus   int
	RookOnQueenFileBonus int
	RookOnOpenFileBonus  int
	RookTrappedMalus     int
	KingRingAttacksBonus int

	UseKingEval               bool
	KingCastlePawnShieldBonus int
	KingDangerMalus           int
	KingDefenderBonus         int

	// PAWNS
	UsePawnEval   bool
	UsePawnCache  bool
	PawnCacheSize int

	PawnIsolatedMidMalus  int
	PawnIsolatedEndMalus  int
	PawnDoubledMidMalus   int
	PawnDoubledEndMalus   int
	PawnPassedMidBonus    int
	PawnPassedEndBonus    int
	PawnBlockedMidMalus   int
	PawnBlockedEndMalus   int
	PawnPhalanxMidBonus   int
	PawnPhalanxEndBonus   int
	PawnSupportedMidBonus int
	PawnSupportedEndBonus int

	// Material imbalance and space, grounded on the asymmetric own/opponent
	// piece-pair tables and behind-pawn bonuses used by stronger evaluation
	// functions: an imbalanced material mix (e.g. knights favor closed
	// positions, bishop pairs favor open ones) is worth more or less than
	// the sum of the pieces taken in isolation.
	UseImbalance      bool
	KnightClosedBonus int // per own knight, per own pawn blocked by an enemy pawn

	UseSpace        bool
	SpaceBonusMid   int // per square controlled behind own pawns, in the center files
	SpaceBonusSide  int // per square controlled behind own pawns, outside the center files

	// Threats: material hanging to a cheaper attacker, scored independently
	// of whether the search will actually find the capture.
	UseThreats                bool
	ThreatMinorAttacksMajor   int
	ThreatRookAttacksQueen    int
	ThreatPawnAttacksMinor    int
	ThreatPawnAttacksMajor    int
	ThreatUndefendedMinorMalus int
	ThreatUndefendedRookMalus  int

	// King safety: attacker pressure on the king ring is accumulated per
	// piece type then converted through a quadratic curve (few attackers
	// barely matter, many compound quickly) and capped so a single
	// position can never be evaluated as worse than a won exchange.
	KingSafetyWeightKnight int
	KingSafetyWeightBishop int
	KingSafetyWeightRook   int
	KingSafetyWeightQueen  int
	KingSafetyScaleDivisor int
	KingSafetyMaxMalus     int

	// King-pawn tropism: a bonus for friendly pawns standing close to the
	// enemy king in the endgame, where mating nets are built from king and
	// pawn proximity rather than piece activity.
	UseTropism   bool
	TropismBonus int

	// Endgame knowledge: recognized elementary endgames (KR/KQ/KBN vs lone
	// king, wrong rook pawn, opposite colored bishops) override or scale
	// the generic heuristics above, which are not tuned for them.
	UseEndgameEval bool
}

// sets defaults which might be overwritten by config file.
func init() {

	Settings.Eval.UseMaterialEval = true
	Settings.Eval.UsePositionalEval = true

	Settings.Eval.UseLazyEval = false
	Settings.Eval.LazyEvalThreshold = 700

	Settings.Eval.Tempo = 34

	Settings.Eval.UseAttacksInEval = false

	Settings.Eval.UseMobility = false
	Settings.Eval.MobilityBonus = 5 // per piece and attacked square

	Settings.Eval.UseAdvancedPieceEval = false
	Settings.Eval.KingCastlePawnShieldBonus = 15
	Settings.Eval.KingRingAttacksBonus = 10 // per piece and attacked king ring square
	Settings.Eval.MinorBehindPawnBonus = 15 // per piece and times game phase
	Settings.Eval.BishopPairBonus = 20      // once
	Settings.Eval.BishopPawnMalus = 5       // per pawn and times ~game phase
	Settings.Eval.BishopCenterAimBonus = 20 // per bishop and times game phase
	Settings.Eval.BishopBlockedMalus = 40   // per bishop
	Settings.Eval.RookOnQueenFileBonus = 6  // per rook
	Settings.Eval.RookOnOpenFileBonus = 25  // per rook and time game phase
	Settings.Eval.RookTrappedMalus = 40     // per rook and time game phase

	Settings.Eval.UseKingEval = false
	Settings.Eval.KingDangerMalus = 50   // number of number of attacker - defender times malus if attacker > defender
	Settings.Eval.KingDefenderBonus = 10 // number of number of defender - attacker times bonus if attacker <= defender

	Settings.Eval.UsePawnEval = false
	Settings.Eval.UsePawnCache = false
	Settings.Eval.PawnCacheSize = 64

	Settings.Eval.PawnIsolatedMidMalus = -10
	Settings.Eval.PawnIsolatedEndMalus = -20
	Settings.Eval.PawnDoubledMidMalus = -10
	Settings.Eval.PawnDoubledEndMalus = -30
	Settings.Eval.PawnPassedMidBonus = 20
	Settings.Eval.PawnPassedEndBonus = 40
	Settings.Eval.PawnBlockedMidMalus = -2
	Settings.Eval.PawnBlockedEndMalus = -20
	Settings.Eval.PawnPhalanxMidBonus = 4
	Settings.Eval.PawnPhalanxEndBonus = 4
	Settings.Eval.PawnSupportedMidBonus = 10
	Settings.Eval.PawnSupportedEndBonus = 15

	Settings.Eval.UseImbalance = false
	Settings.Eval.KnightClosedBonus = 4 // per own knight, per own pawn blocked by an enemy pawn

	Settings.Eval.UseSpace = false
	Settings.Eval.SpaceBonusMid = 4
	Settings.Eval.SpaceBonusSide = 2

	Settings.Eval.UseThreats = false
	Settings.Eval.ThreatMinorAttacksMajor = 35
	Settings.Eval.ThreatRookAttacksQueen = 45
	Settings.Eval.ThreatPawnAttacksMinor = 40
	Settings.Eval.ThreatPawnAttacksMajor = 55
	Settings.Eval.ThreatUndefendedMinorMalus = 15
	Settings.Eval.ThreatUndefendedRookMalus = 20

	Settings.Eval.KingSafetyWeightKnight = 2
	Settings.Eval.KingSafetyWeightBishop = 2
	Settings.Eval.KingSafetyWeightRook = 3
	Settings.Eval.KingSafetyWeightQueen = 5
	Settings.Eval.KingSafetyScaleDivisor = 4
	Settings.Eval.KingSafetyMaxMalus = 400

	Settings.Eval.UseTropism = false
	Settings.Eval.TropismBonus = 2 // per file+rank step closer to the enemy king

	Settings.Eval.UseEndgameEval = false
}

// set defaults for configurations here in case a configuration
// is not available from the config file.
func setupEval() {

}
