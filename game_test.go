package chess

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestGamePlayOutFoolsMate(t *testing.T) {
	g := NewGame()
	for _, s := range []string{"f3", "e5", "g4", "Qh4#"} {
		require.NoError(t, g.MoveStr(s))
	}
	require.Equal(t, BlackWon, g.Outcome())
	require.Equal(t, Checkmate, g.Method())
	require.Len(t, g.Moves(), 4)
}

func TestGameRejectsIllegalMove(t *testing.T) {
	g := NewGame()
	err := g.MoveStr("e5")
	require.Error(t, err)
	require.ErrorIs(t, err, ErrInvalidMoveNotation)
}

func TestGameFromFEN(t *testing.T) {
	g, err := NewGameFromFEN(kiwipeteFEN)
	require.NoError(t, err)
	require.Len(t, g.ValidMoves(), 48)
}

func TestGamePGNRoundTrip(t *testing.T) {
	g := NewGame()
	for _, s := range []string{"e4", "e5", "Nf3", "Nc6"} {
		require.NoError(t, g.MoveStr(s))
	}
	g.AddTagPair("Event", "Test Game")
	pgn := g.String()
	require.True(t, strings.Contains(pgn, "Event"))

	replayed, err := NewGameFromPGN(strings.NewReader(pgn))
	require.NoError(t, err)
	require.Equal(t, g.FEN(), replayed.FEN())
	require.Len(t, replayed.Moves(), 4)
}

func TestGameDrawByFiftyMoveRule(t *testing.T) {
	g, err := NewGameFromFEN("8/8/4k3/8/8/3K4/8/8 w - - 100 60")
	require.NoError(t, err)
	require.NoError(t, g.Draw(FiftyMoveRule))
	require.Equal(t, Draw, g.Outcome())
}

func TestGameResign(t *testing.T) {
	g := NewGame()
	g.Resign(White)
	require.Equal(t, BlackWon, g.Outcome())
	require.Equal(t, Resignation, g.Method())
}
