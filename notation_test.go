package chess

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func unsafeFEN(s string) *Position {
	pos, err := decodeFEN(s)
	if err != nil {
		panic(err)
	}
	return pos
}

type validNotationTest struct {
	Pos1        *Position
	AlgText     string
	LongAlgText string
	UCIText     string
	PostFEN     string
	Description string
}

var validNotationTests = []validNotationTest{
	{
		Description: "pawn double push",
		Pos1:        unsafeFEN(StartPositionFEN),
		AlgText:     "e4",
		LongAlgText: "e2-e4",
		UCIText:     "e2e4",
		PostFEN:     "rnbqkbnr/pppppppp/8/8/4P3/8/PPPP1PPP/RNBQKBNR b KQkq e3 0 1",
	},
	{
		Description: "knight development",
		Pos1:        unsafeFEN(StartPositionFEN),
		AlgText:     "Nf3",
		LongAlgText: "Ng1-f3",
		UCIText:     "g1f3",
		PostFEN:     "rnbqkbnr/pppppppp/8/8/8/5N2/PPPPPPPP/RNBQKB1R b KQkq - 1 1",
	},
	{
		Description: "white kingside castle",
		Pos1:        unsafeFEN("r3k2r/8/8/8/8/8/8/R3K2R w KQkq - 0 1"),
		AlgText:     "O-O",
		LongAlgText: "O-O",
		UCIText:     "e1g1",
		PostFEN:     "r3k2r/8/8/8/8/8/8/R4RK1 b kq - 1 1",
	},
	{
		Description: "black queenside castle",
		Pos1:        unsafeFEN("r3k2r/8/8/8/8/8/8/R4RK1 b kq - 1 1"),
		AlgText:     "O-O-O",
		LongAlgText: "O-O-O",
		UCIText:     "e8c8",
		PostFEN:     "2kr3r/8/8/8/8/8/8/R4RK1 w - - 2 2",
	},
}

func TestValidDecoding(t *testing.T) {
	for _, test := range validNotationTests {
		for _, pair := range []struct {
			style NotationStyle
			text  string
		}{
			{SAN, test.AlgText},
			{LAN, test.LongAlgText},
			{UCI, test.UCIText},
		} {
			m, err := test.Pos1.DecodeMove(pair.text)
			if err != nil {
				t.Fatalf("%s: decoding %q: %v", test.Description, pair.text, err)
			}
			post := test.Pos1.Do(m)
			if post.String() != test.PostFEN {
				t.Fatalf("%s: after %q expected %s, got %s", test.Description, pair.text, test.PostFEN, post.String())
			}
			rendered := test.Pos1.Notate(m, pair.style)
			if trimAnnotations(rendered) != trimAnnotations(pair.text) {
				t.Fatalf("%s: expected render %q got %q", test.Description, pair.text, rendered)
			}
		}
	}
}

type notationDecodeTest struct {
	Pos  *Position
	Text string
}

var invalidDecodeTests = []notationDecodeTest{
	{
		// opening for white, but this move belongs to black
		Pos:  unsafeFEN(StartPositionFEN),
		Text: "e5",
	},
	{
		// fischer-random style quad-castle doesn't exist
		Pos:  unsafeFEN("r2qk2r/pp1n1ppp/2pbpn2/3p4/2PP4/1PNQPN2/P4PPP/R1B1K2R w KQkq - 1 9"),
		Text: "O-O-O-O",
	},
	{
		// not a real square pairing
		Pos:  unsafeFEN("3r1rk1/pp1nqppp/2pbpn2/3p4/2PP4/1PNQPN2/PB3PPP/3RR1K1 b - - 5 12"),
		Text: "dx4",
	},
	{
		// should not assume pawn for unknown piece letter
		Pos:  unsafeFEN("rnbqkbnr/pppp1ppp/8/4p3/4P3/8/PPPP1PPP/RNBQKBNR w KQkq e6 0 2"),
		Text: "nf3",
	},
}

func TestInvalidDecoding(t *testing.T) {
	for _, test := range invalidDecodeTests {
		if _, err := test.Pos.DecodeMove(test.Text); err == nil {
			t.Fatalf("expected move notation %q to be invalid for %s", test.Text, test.Pos)
		}
	}
}

func TestRANNamesCapturedPiece(t *testing.T) {
	pos := unsafeFEN("4k3/8/8/8/8/2b5/8/1N2K3 w - - 0 1")
	m, err := pos.DecodeMove("Nxc3")
	require.NoError(t, err)
	require.Equal(t, "Nb1xc3", pos.Notate(m, LAN))
	require.Equal(t, "Nb1xBc3", pos.Notate(m, RAN))
}

func TestNullMoveNotation(t *testing.T) {
	pos := unsafeFEN(StartPositionFEN)
	for _, style := range []NotationStyle{SAN, FAN, LAN, RAN, UCI} {
		if style == UCI {
			require.Equal(t, "0000", notateUCI(NullMove))
			continue
		}
		require.Equal(t, "(none)", pos.Notate(NullMove, style))
	}
}

func BenchmarkValidDecoding(b *testing.B) {
	pos := unsafeFEN(StartPositionFEN)
	b.ResetTimer()
	for n := 0; n < b.N; n++ {
		if _, err := pos.DecodeMove("e4"); err != nil {
			b.Fatal(err)
		}
	}
}
