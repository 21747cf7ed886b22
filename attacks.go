package chess

import "github.com/tandemchess/chesscore/internal/hyperbola"

// attacks.go implements the process-wide, immutable attack tables of
// spec.md §4.B. Knight and king tables are precomputed once at init time;
// sliding attacks are computed on demand with hyperbola quintessence
// (internal/hyperbola), grounded on the teacher's bitflip/chessdata.go.

var bbKnightMoves [64]bitboard
var bbKingMoves [64]bitboard
var bbDiagonals [64]bitboard
var bbAntiDiagonals [64]bitboard

// bbPawnAttacks[color][sq] is the set of squares a pawn of color on sq
// attacks (ignores whether those squares are occupied).
var bbPawnAttacks [2][64]bitboard

func init() {
	knightOffsets := [8][2]int{{1, 2}, {2, 1}, {2, -1}, {1, -2}, {-1, -2}, {-2, -1}, {-2, 1}, {-1, 2}}
	kingOffsets := [8][2]int{{1, 0}, {1, 1}, {0, 1}, {-1, 1}, {-1, 0}, {-1, -1}, {0, -1}, {1, -1}}

	for sq := 0; sq < 64; sq++ {
		f := int(Square(sq).File())
		r := int(Square(sq).Rank())

		var knight, king bitboard
		for _, d := range knightOffsets {
			nf, nr := f+d[0], r+d[1]
			if nf >= 0 && nf < 8 && nr >= 0 && nr < 8 {
				knight |= bbForSquare(NewSquare(File(nf), Rank(nr)))
			}
		}
		for _, d := range kingOffsets {
			nf, nr := f+d[0], r+d[1]
			if nf >= 0 && nf < 8 && nr >= 0 && nr < 8 {
				king |= bbForSquare(NewSquare(File(nf), Rank(nr)))
			}
		}
		bbKnightMoves[sq] = knight
		bbKingMoves[sq] = king

		var diag, antiDiag bitboard
		for df := -7; df <= 7; df++ {
			nf, nr := f+df, r+df
			if nf >= 0 && nf < 8 && nr >= 0 && nr < 8 {
				diag |= bbForSquare(NewSquare(File(nf), Rank(nr)))
			}
			nf, nr = f+df, r-df
			if nf >= 0 && nf < 8 && nr >= 0 && nr < 8 {
				antiDiag |= bbForSquare(NewSquare(File(nf), Rank(nr)))
			}
		}
		bbDiagonals[sq] = diag
		bbAntiDiagonals[sq] = antiDiag

		white := bitboard(0)
		if f > 0 && r < 7 {
			white |= bbForSquare(NewSquare(File(f-1), Rank(r+1)))
		}
		if f < 7 && r < 7 {
			white |= bbForSquare(NewSquare(File(f+1), Rank(r+1)))
		}
		bbPawnAttacks[White][sq] = white

		black := bitboard(0)
		if f > 0 && r > 0 {
			black |= bbForSquare(NewSquare(File(f-1), Rank(r-1)))
		}
		if f < 7 && r > 0 {
			black |= bbForSquare(NewSquare(File(f+1), Rank(r-1)))
		}
		bbPawnAttacks[Black][sq] = black
	}
}

// pawnAttacks returns the squares attacked by a pawn of c standing on sq.
func pawnAttacks(c Color, sq Square) bitboard {
	return bbPawnAttacks[c][sq]
}

// knightAttacks returns the (occupancy independent) knight attack set.
func knightAttacks(sq Square) bitboard {
	return bbKnightMoves[sq]
}

// kingAttacks returns the (occupancy independent) king attack set,
// excluding castling.
func kingAttacks(sq Square) bitboard {
	return bbKingMoves[sq]
}

// rookAttacks returns the rook attack set from sq given occupied, per
// spec.md §4.B: the ray squares reachable blocked by the first occupied
// square, inclusive of the blocker, exclusive of sq.
func rookAttacks(occupied bitboard, sq Square) bitboard {
	posBit := uint64(bbForSquare(sq))
	rankMask := uint64(bbRanks[sq.Rank()])
	fileMask := uint64(bbFiles[sq.File()])
	return bitboard(hyperbola.RookAttacks(uint64(occupied), posBit, rankMask, fileMask))
}

// bishopAttacks returns the bishop attack set from sq given occupied.
func bishopAttacks(occupied bitboard, sq Square) bitboard {
	posBit := uint64(bbForSquare(sq))
	diagMask := uint64(bbDiagonals[sq])
	antiDiagMask := uint64(bbAntiDiagonals[sq])
	return bitboard(hyperbola.BishopAttacks(uint64(occupied), posBit, diagMask, antiDiagMask))
}

// queenAttacks is the union of rookAttacks and bishopAttacks.
func queenAttacks(occupied bitboard, sq Square) bitboard {
	posBit := uint64(bbForSquare(sq))
	rankMask := uint64(bbRanks[sq.Rank()])
	fileMask := uint64(bbFiles[sq.File()])
	diagMask := uint64(bbDiagonals[sq])
	antiDiagMask := uint64(bbAntiDiagonals[sq])
	return bitboard(hyperbola.QueenAttacks(uint64(occupied), posBit, rankMask, fileMask, diagMask, antiDiagMask))
}

// lineBetween returns the squares strictly between a and b given that both
// lie on mask, by intersecting the ray from a stopped at b with the ray
// from b stopped at a.
func lineBetween(a, b Square, mask bitboard) bitboard {
	fromA := hyperbola.Line(uint64(bbForSquare(b)), uint64(bbForSquare(a)), uint64(mask))
	fromB := hyperbola.Line(uint64(bbForSquare(a)), uint64(bbForSquare(b)), uint64(mask))
	return bitboard(fromA) & bitboard(fromB)
}

// between returns the squares strictly between a and b along the rank,
// file or diagonal they share, or bbEmpty if they share none. Used to
// build the block mask of a single checking slider.
func between(a, b Square) bitboard {
	var mask bitboard
	switch {
	case a.Rank() == b.Rank():
		mask = bbRanks[a.Rank()]
	case a.File() == b.File():
		mask = bbFiles[a.File()]
	case bbDiagonals[a]&bbForSquare(b) != 0:
		mask = bbDiagonals[a]
	case bbAntiDiagonals[a]&bbForSquare(b) != 0:
		mask = bbAntiDiagonals[a]
	default:
		return bbEmpty
	}
	return lineBetween(a, b, mask)
}

// rankFileBetween is like between but only considers rank/file alignment,
// for rook/queen pin detection.
func rankFileBetween(a, b Square) bitboard {
	var mask bitboard
	switch {
	case a.Rank() == b.Rank():
		mask = bbRanks[a.Rank()]
	case a.File() == b.File():
		mask = bbFiles[a.File()]
	default:
		return bbEmpty
	}
	return lineBetween(a, b, mask)
}

// diagBetween is like between but only considers diagonal alignment, for
// bishop/queen pin detection.
func diagBetween(a, b Square) bitboard {
	var mask bitboard
	switch {
	case bbDiagonals[a]&bbForSquare(b) != 0:
		mask = bbDiagonals[a]
	case bbAntiDiagonals[a]&bbForSquare(b) != 0:
		mask = bbAntiDiagonals[a]
	default:
		return bbEmpty
	}
	return lineBetween(a, b, mask)
}

// attackersTo returns every square occupied by a piece of color by that
// attacks sq, given the current occupancy.
func attackersTo(board *Board, sq Square, occ bitboard, by Color) bitboard {
	var att bitboard
	att |= knightAttacks(sq) & board.bbForPiece(GetPiece(Knight, by))
	att |= kingAttacks(sq) & board.bbForPiece(GetPiece(King, by))
	att |= pawnAttacks(by.Other(), sq) & board.bbForPiece(GetPiece(Pawn, by))
	att |= bishopAttacks(occ, sq) & (board.bbForPiece(GetPiece(Bishop, by)) | board.bbForPiece(GetPiece(Queen, by)))
	att |= rookAttacks(occ, sq) & (board.bbForPiece(GetPiece(Rook, by)) | board.bbForPiece(GetPiece(Queen, by)))
	return att
}

// isAttacked reports whether sq is attacked by color by under occupancy occ.
func isAttacked(board *Board, sq Square, occ bitboard, by Color) bool {
	return attackersTo(board, sq, occ, by) != bbEmpty
}

// attacks returns the attack set for a piece of type pt standing on sq,
// given the current board occupancy. Pawn attacks additionally need a
// color, so pawns are handled by the caller via pawnAttacks.
func attacks(pt PieceType, sq Square, occupied bitboard) bitboard {
	switch pt {
	case Knight:
		return knightAttacks(sq)
	case King:
		return kingAttacks(sq)
	case Rook:
		return rookAttacks(occupied, sq)
	case Bishop:
		return bishopAttacks(occupied, sq)
	case Queen:
		return queenAttacks(occupied, sq)
	}
	return bbEmpty
}
