package chess

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"
)

func TestDoRoundTripIsBitExact(t *testing.T) {
	// Playing a move and then replaying the same sequence from a fresh
	// decode of the resulting FEN must reach the identical Position, since
	// Do never mutates its receiver (position.go's "immutable Do" design).
	start := StartingPosition()
	m, err := start.DecodeMove("e4")
	require.NoError(t, err)
	viaDo := start.Do(m)
	viaFEN := unsafeFEN(viaDo.String())

	if diff := cmp.Diff(viaFEN.board, viaDo.board, cmp.AllowUnexported(Board{})); diff != "" {
		t.Fatalf("board mismatch (-fen +do):\n%s", diff)
	}
	if diff := cmp.Diff(viaFEN.turn, viaDo.turn); diff != "" {
		t.Fatalf("turn mismatch: %s", diff)
	}
	if diff := cmp.Diff(viaFEN.castleRights, viaDo.castleRights); diff != "" {
		t.Fatalf("castle rights mismatch: %s", diff)
	}
	if diff := cmp.Diff(viaFEN.enPassantSquare, viaDo.enPassantSquare); diff != "" {
		t.Fatalf("en passant mismatch: %s", diff)
	}

	// The original position must be untouched.
	require.Equal(t, StartPositionFEN, start.String())
}

func TestDoNeverMutatesAncestors(t *testing.T) {
	start := StartingPosition()
	var chain []*Position
	pos := start
	for _, s := range []string{"e4", "e5", "Nf3", "Nc6"} {
		m, err := pos.DecodeMove(s)
		require.NoError(t, err)
		chain = append(chain, pos)
		pos = pos.Do(m)
	}
	require.Equal(t, StartPositionFEN, chain[0].String())
	require.NotEqual(t, chain[0].String(), chain[1].String())
}

func TestUCIRoundTrip(t *testing.T) {
	pos := StartingPosition()
	for _, m := range pos.ValidMoves() {
		uci := pos.Notate(m, UCI)
		decoded, err := pos.DecodeMove(uci)
		require.NoError(t, err)
		require.Equal(t, m, decoded, "UCI round trip mismatch for %s", uci)
	}
}

func TestMarshalBinaryRoundTrip(t *testing.T) {
	pos := unsafeFEN(kiwipeteFEN)
	data, err := pos.MarshalBinary()
	require.NoError(t, err)

	var out Position
	require.NoError(t, out.UnmarshalBinary(data))
	require.True(t, pos.board.Eq(out.board))
	require.Equal(t, pos.turn, out.turn)
	require.Equal(t, pos.castleRights, out.castleRights)
}

func TestHashDiffersAfterMove(t *testing.T) {
	pos := StartingPosition()
	m, err := pos.DecodeMove("e4")
	require.NoError(t, err)
	next := pos.Do(m)
	require.NotEqual(t, pos.Hash(), next.Hash())
}

func TestSamePositionIgnoresMoveCounters(t *testing.T) {
	a := unsafeFEN("rnbqkbnr/pppppppp/8/8/4P3/8/PPPP1PPP/RNBQKBNR b KQkq e3 0 1")
	b := unsafeFEN("rnbqkbnr/pppppppp/8/8/4P3/8/PPPP1PPP/RNBQKBNR b KQkq e3 5 12")
	require.True(t, a.samePosition(b))
}
