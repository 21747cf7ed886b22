package chess

import (
	"context"
	"strings"
	"testing"
)

// embeddedParallelPGNGames mirrors embeddedPGNGames (scanner_test.go) but
// keeps the trailing blank line after the last game: ParallelScanner.Begin
// only hands a game to its worker pool on a blank-line boundary, so the
// final game needs one to be scanned at all.
const embeddedParallelPGNGames = `[Event "Test"]
[Site "https://lichess.org/aaaaaaaa"]
[Result "1-0"]

1. e4 e5 2. Qh5 Nc6 3. Bc4 Nf6 4. Qxf7# 1-0

[Event "Test"]
[Site "https://lichess.org/bbbbbbbb"]
[Result "0-1"]

1. f3 e5 2. g4 Qh4# 0-1

`

func TestParallelScanner(t *testing.T) {
	scan := NewParallelScanner(strings.NewReader(embeddedParallelPGNGames))

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	gamesChan := make(chan *Game)
	go scan.Begin(ctx, gamesChan)

	whiteWins := 0
	blackWins := 0
	total := 0
	for game := range gamesChan {
		total++
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

func BenchmarkParallelScanner(b *testing.B) {
	for n := 0; n < b.N; n++ {
		scan := NewParallelScanner(strings.NewReader(embeddedParallelPGNGames))
		ctx, cancel := context.WithCancel(context.Background())
		gamesChan := make(chan *Game)
		go scan.Begin(ctx, gamesChan)
		for range gamesChan {
		}
		cancel()
	}
}
