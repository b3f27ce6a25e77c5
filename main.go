package main

import (
	"bufio"
	"connect4/config"
	"connect4/experiments"
	"connect4/game"
	"connect4/gamemaster"
	"connect4/searcher"
	"connect4/searcher/agent"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"golang.org/x/exp/rand"
)

func main() {
	log.Logger = newLogger(os.Stderr)
	cfg := config.Load()
	zerolog.SetGlobalLevel(cfg.LogLevel)

	mode := flag.String("mode", cfg.Mode, "What to run: play, experiment or throughput")
	depth := flag.Int("depth", cfg.Depth, "Plies searched by the AI")
	first := flag.String("first", "random", "Who moves first when playing: player, ai or random")
	flag.Parse()
	cfg.Mode = *mode
	cfg.Depth = *depth

	var err error
	switch cfg.Mode {
	case "play":
		err = play(cfg, *first, os.Stdin, os.Stdout)
	case "experiment":
		err = experiments.RunDepthExperiment(experimentConfig(cfg))
	case "throughput":
		err = experiments.RunThroughputExperiment(experimentConfig(cfg))
	default:
		err = fmt.Errorf("unknown mode %q", cfg.Mode)
	}
	if err != nil {
		log.Fatal().Err(err).Msgf("%s failed", cfg.Mode)
	}
}

func newLogger(out io.Writer) zerolog.Logger {
	return log.Output(zerolog.ConsoleWriter{Out: out, TimeFormat: time.Kitchen})
}

func experimentConfig(cfg *config.Config) experiments.Config {
	return experiments.Config{
		NumGames:  cfg.NumGames,
		OutputDir: cfg.OutputDir,
		Depth:     cfg.Depth,
	}
}

func newAIAgent(cfg *config.Config) agent.Agent {
	options := []searcher.Option{searcher.WithPiece(game.AIPiece), searcher.WithGoroutines(cfg.Goroutines)}
	if cfg.Pruning {
		options = append(options, searcher.WithPruning())
	}
	if cfg.Deadline > 0 {
		options = append(options, searcher.WithDeadline(cfg.Deadline))
	}
	return agent.NewMinimaxAgent(searcher.NewMinimax(cfg.Depth, options...))
}

// play runs a text game between a human reading columns from in and the AI.
func play(cfg *config.Config, first string, in io.Reader, out io.Writer) error {
	starter := game.PlayerPiece
	switch first {
	case "ai":
		starter = game.AIPiece
	case "random":
		if rand.New(rand.NewSource(uint64(time.Now().UnixNano()))).Intn(2) == 1 {
			starter = game.AIPiece
		}
	}

	session := gamemaster.NewSession(newAIAgent(cfg), starter)
	scanner := bufio.NewScanner(in)

	fmt.Fprintln(out, session.State().Board)
	for !session.IsOver() {
		if session.State().Turn == game.AIPiece {
			col, err := session.AIMove()
			if err != nil {
				return err
			}
			fmt.Fprintf(out, "AI plays column %d\n%s\n", col, session.State().Board)
			continue
		}

		fmt.Fprintf(out, "Your move (0-%d): ", game.Columns-1)
		if !scanner.Scan() {
			return scanner.Err()
		}
		col, err := strconv.Atoi(strings.TrimSpace(scanner.Text()))
		if err != nil {
			fmt.Fprintln(out, "Enter a column number")
			continue
		}
		if err := session.Play(col); err != nil {
			if errors.Is(err, game.ErrInvalidMove) {
				fmt.Fprintln(out, err)
				continue
			}
			return err
		}
		fmt.Fprintln(out, session.State().Board)
	}

	switch session.Winner() {
	case game.PlayerPiece:
		fmt.Fprintln(out, "Player 1 Wins!")
	case game.AIPiece:
		fmt.Fprintln(out, "Player 2 Wins!")
	default:
		fmt.Fprintln(out, "Draw!")
	}
	return nil
}
