package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"runtime"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/plus3/garden/config"
	"github.com/plus3/garden/scoreboard"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("load config")
	}

	games := flag.Int("games", 100, "Number of rounds to play.")
	strategy := flag.String("strategy", "greedy", "Bot strategy: greedy or random.")
	seed := flag.Uint64("seed", max(cfg.Seed, 1), "Seed of the first round; later rounds count up from it.")
	queue := flag.Int("queue", cfg.QueueSize, "Tiles dealt per round.")
	dbPath := flag.String("db", "", "Record every round into this SQLite scoreboard.")
	flag.Parse()

	cfg.SetupLogging(os.Stderr)

	report := &Report{
		Games:     *games,
		Strategy:  *strategy,
		Seed:      *seed,
		QueueSize: *queue,
	}
	runtime.ReadMemStats(&report.MemStatsStart)

	log.Info().Int("games", *games).Str("strategy", *strategy).Msg("running simulation")
	start := time.Now()
	results, err := Simulate(Options{
		Games:     *games,
		Strategy:  *strategy,
		Seed:      *seed,
		QueueSize: *queue,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("simulation failed")
	}
	report.TotalTime = time.Since(start)
	runtime.ReadMemStats(&report.MemStatsEnd)
	report.Summarize(results)

	if *dbPath != "" {
		n, err := record(context.Background(), *dbPath, "bot:"+*strategy, results)
		if err != nil {
			log.Fatal().Err(err).Str("path", *dbPath).Msg("record results")
		}
		report.Recorded = n
	}

	fmt.Println("\n--- Simulation Report ---")
	if err := report.Generate(os.Stdout); err != nil {
		log.Fatal().Err(err).Msg("generate report")
	}
	fmt.Println("--- End of Report ---")
}

func record(ctx context.Context, path, player string, results []GameResult) (int, error) {
	board, err := scoreboard.Open(ctx, path, log.Logger)
	if err != nil {
		return 0, err
	}
	defer board.Close()

	for i, res := range results {
		_, err := board.Record(ctx, scoreboard.Result{
			Player:     player,
			Score:      res.Score,
			Tiles:      res.Tiles,
			BonusTiles: res.BonusTiles,
			Seed:       res.Seed,
		})
		if err != nil {
			return i, err
		}
	}
	return len(results), nil
}
