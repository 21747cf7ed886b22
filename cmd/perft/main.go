// Command perft runs the correctness benchmark of the same name against a
// FEN position, logging a depth-by-depth node count table.
package main

import (
	"context"
	"flag"
	"os"
	"os/signal"
	"time"

	"go.uber.org/zap"

	chess "github.com/tandemchess/chesscore"
)

func main() {
	fen := flag.String("fen", chess.StartPositionFEN, "FEN of the position to run perft against")
	depth := flag.Int("depth", 5, "maximum depth to search")
	divide := flag.Bool("divide", false, "print a per-root-move node count at the final depth")
	parallel := flag.Bool("parallel", true, "fan root moves out across a worker pool")
	flag.Parse()

	logger, err := zap.NewProduction()
	if err != nil {
		panic(err)
	}
	defer logger.Sync()
	chess.SetLogger(logger)

	pos, err := chess.FEN(*fen)
	if err != nil {
		logger.Fatal("invalid FEN", zap.String("fen", *fen), zap.Error(err))
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	for d := 1; d <= *depth; d++ {
		start := time.Now()
		var nodes uint64
		if *parallel {
			nodes, err = chess.PerftParallel(ctx, pos, d)
			if err != nil {
				logger.Warn("perft cancelled", zap.Int("depth", d), zap.Error(err))
				break
			}
		} else {
			nodes = chess.Perft(pos, d)
		}
		logger.Info("perft",
			zap.Int("depth", d),
			zap.Uint64("nodes", nodes),
			zap.Duration("elapsed", time.Since(start)),
		)
	}

	if *divide {
		for uci, nodes := range chess.PerftDivide(pos, *depth) {
			logger.Info("divide", zap.String("move", uci), zap.Uint64("nodes", nodes))
		}
	}
}
