// Package hyperbola computes sliding-piece attack sets with the
// hyperbola-quintessence o(o-2r) trick, so the generator never has to walk
// rays one square at a time.
//
// Grounded on the teacher's bitflip/chessdata.go linearAttack/diaAttack/
// hvAttack: that package additionally generated an AVX2 fast path through
// github.com/mmcloughlin/avo, but the generated assembly stub was not part
// of the retrieved sources, so only the verified pure-Go formula is kept
// here (see DESIGN.md).
package hyperbola

import "math/bits"

// Line computes the attack set of a slider along the single ray described by
// mask, given the current occupancy and posBit (the single-bit bitboard of
// the slider's own square). mask must contain posBit.
func Line(occupied, posBit, mask uint64) uint64 {
	o := occupied & mask
	forward := o - 2*posBit
	backward := bits.Reverse64(bits.Reverse64(o) - 2*bits.Reverse64(posBit))
	return (forward ^ backward) & mask
}

// RookAttacks returns the full rook attack set (rank | file rays).
func RookAttacks(occupied, posBit, rankMask, fileMask uint64) uint64 {
	return Line(occupied, posBit, rankMask) | Line(occupied, posBit, fileMask)
}

// BishopAttacks returns the full bishop attack set (both diagonal rays).
func BishopAttacks(occupied, posBit, diagMask, antiDiagMask uint64) uint64 {
	return Line(occupied, posBit, diagMask) | Line(occupied, posBit, antiDiagMask)
}

// QueenAttacks is the union of rook and bishop attacks from posBit.
func QueenAttacks(occupied, posBit, rankMask, fileMask, diagMask, antiDiagMask uint64) uint64 {
	return RookAttacks(occupied, posBit, rankMask, fileMask) | BishopAttacks(occupied, posBit, diagMask, antiDiagMask)
}
