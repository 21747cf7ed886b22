package chess

import (
	"strings"
	"testing"
)

// embeddedPGNGames holds two small, complete games concatenated the way
// a PGN database file stores them, used in place of the large lichess
// database fixture the teacher's own tests depended on.
const embeddedPGNGames = `[Event "Test"]
[Site "https://lichess.org/aaaaaaaa"]
[Result "1-0"]

1. e4 e5 2. Qh5 Nc6 3. Bc4 Nf6 4. Qxf7# 1-0

[Event "Test"]
[Site "https://lichess.org/bbbbbbbb"]
[Result "0-1"]

1. f3 e5 2. g4 Qh4# 0-1
`

func TestScanner(t *testing.T) {
	scan := NewScanner(strings.NewReader(embeddedPGNGames))

	whiteWins := 0
	blackWins := 0
	total := 0
	for scan.Scan() {
		total++
		game := scan.Next()
		pair := game.GetTagPair("Site")
		if pair == nil {
			t.Fatal("No Site tag in PGN")
		}
		if !strings.HasPrefix(pair.Value, "https://lichess") {
			t.Fatal("Site tag not from lichess")
		}
		switch game.Outcome() {
		case WhiteWon:
			whiteWins++
		case BlackWon:
			blackWins++
		}
	}
	if err := scan.Err(); err != nil {
		t.Fatalf("unexpected scan error: %v", err)
	}
	if total != 2 {
		t.Fatalf("expected 2 games, got %d", total)
	}
	if whiteWins != 1 {
		t.Errorf("white wins: got %d, expected 1", whiteWins)
	}
	if blackWins != 1 {
		t.Errorf("black wins: got %d, expected 1", blackWins)
	}
}

func BenchmarkScanner(b *testing.B) {
	for n := 0; n < b.N; n++ {
		scan := NewScanner(strings.NewReader(embeddedPGNGames))
		for scan.Scan() {
			scan.Next()
		}
	}
}
