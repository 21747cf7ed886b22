package chess

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestRookAttacksFromCornerOnEmptyBoard(t *testing.T) {
	// A rook alone on a1 sweeps its entire rank and file: 14 squares.
	got := rookAttacks(bbForSquare(A1), A1)
	require.Equal(t, 14, got.PopCount())
}

func TestRookAttacksBlockedByOwnRank(t *testing.T) {
	occ := bbForSquare(A1) | bbForSquare(D1) | bbForSquare(A4)
	got := rookAttacks(occ, A1)
	// along the rank: b1,c1,d1 (stops at the blocker, inclusive); along the
	// file: a2,a3,a4 (stops at the blocker, inclusive).
	require.Equal(t, 6, got.PopCount())
	require.True(t, got.Occupied(D1))
	require.True(t, got.Occupied(A4))
	require.False(t, got.Occupied(E1))
}

func TestBishopAttacksFromCenterOnEmptyBoard(t *testing.T) {
	got := bishopAttacks(bbForSquare(D4), D4)
	require.Equal(t, 13, got.PopCount())
}

func TestKnightAttacksFromCorner(t *testing.T) {
	require.Equal(t, 2, knightAttacks(A1).PopCount())
	require.Equal(t, 8, knightAttacks(D4).PopCount())
}

func TestKingAttacksFromCorner(t *testing.T) {
	require.Equal(t, 3, kingAttacks(A1).PopCount())
	require.Equal(t, 8, kingAttacks(D4).PopCount())
}

func TestBetweenSharedRank(t *testing.T) {
	got := between(A1, D1)
	require.Equal(t, 2, got.PopCount())
	require.True(t, got.Occupied(B1))
	require.True(t, got.Occupied(C1))
}

func TestBetweenSharedDiagonal(t *testing.T) {
	got := between(A1, D4)
	require.Equal(t, 2, got.PopCount())
	require.True(t, got.Occupied(B2))
	require.True(t, got.Occupied(C3))
}

func TestBetweenUnrelatedSquares(t *testing.T) {
	require.Equal(t, bbEmpty, between(A1, B3))
}

func TestRankFileBetweenIgnoresDiagonal(t *testing.T) {
	require.Equal(t, bbEmpty, rankFileBetween(A1, D4))
}

func TestDiagBetweenIgnoresRankFile(t *testing.T) {
	require.Equal(t, bbEmpty, diagBetween(A1, D1))
}

func TestBoardFENRoundTrip(t *testing.T) {
	board, err := boardFromFEN("rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR")
	require.NoError(t, err)
	require.Equal(t, "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR", board.String())
}

func TestBoardEq(t *testing.T) {
	const startBoard = "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR"
	a, err := boardFromFEN(startBoard)
	require.NoError(t, err)
	b, err := boardFromFEN(startBoard)
	require.NoError(t, err)
	require.True(t, a.Eq(b))
}

func TestHasSufficientMaterial(t *testing.T) {
	kingsOnly, err := boardFromFEN("8/8/4k3/8/8/3K4/8/8")
	require.NoError(t, err)
	require.False(t, kingsOnly.hasSufficientMaterial())

	kingAndRook, err := boardFromFEN("8/8/4k3/8/8/3K4/4R3/8")
	require.NoError(t, err)
	require.True(t, kingAndRook.hasSufficientMaterial())

	kingAndBishop, err := boardFromFEN("8/8/4k3/8/8/3K4/4B3/8")
	require.NoError(t, err)
	require.False(t, kingAndBishop.hasSufficientMaterial())
}
