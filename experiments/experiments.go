package experiments

import (
	"connect4/engine"
	"connect4/experiments/metrics"
	"connect4/game"
	"connect4/searcher"
	"connect4/searcher/agent"
	"fmt"

	"github.com/rs/zerolog/log"
)

type Config struct {
	NumGames  int    // Per match up
	OutputDir string // Records are written below this directory
	Depth     int    // Depth of the strongest agent
}

// RunDepthExperiment pairs minimax agents of increasing depth against the
// deepest one, with greedy and random baselines.
func RunDepthExperiment(cfg Config) error {
	baseline := metrics.AgentConfig{ID: 0, Kind: metrics.MinimaxAgent, Depth: cfg.Depth, Pruning: true}
	configs := []metrics.AgentConfig{
		{ID: 1, Kind: metrics.RandomAgent, Seed: 1},
		{ID: 2, Kind: metrics.GreedyAgent},
	}
	for depth := 1; depth < cfg.Depth; depth++ {
		configs = append(configs, metrics.AgentConfig{ID: len(configs) + 1, Kind: metrics.MinimaxAgent, Depth: depth, Pruning: true})
	}

	// Each matchup pairs the baseline agent against a weaker agent
	matchUps := [][]metrics.AgentConfig{}
	for _, config := range configs {
		matchUps = append(matchUps, []metrics.AgentConfig{config, baseline})
	}

	_, err := runExperiment("depth", cfg, append(configs, baseline), matchUps)
	return err
}

type result struct {
	games []metrics.GameRecord
	moves []metrics.MoveRecord
}

func runExperiment(name string, cfg Config, configs []metrics.AgentConfig, matchUps [][]metrics.AgentConfig) (result, error) {
	var res result

	log.Info().Msgf("starting %s experiment...", name)

	for mi, matchup := range matchUps {
		config1 := matchup[0]
		config2 := matchup[1]

		log.Info().Msgf("starting matchup %d of %d between agent1=%+v and agent2=%+v...", mi+1, len(matchUps), config1, config2)

		for i := 0; i < cfg.NumGames; i++ {
			// Alternate the starting agent
			first := game.PlayerPiece
			if i%2 == 1 {
				first = game.AIPiece
			}

			// Random agents draw a new sequence every game
			seed1, seed2 := gameSeed(config1, i), gameSeed(config2, i)

			winner, gameMetric, moveMetrics, err := runGame(config1, config2, first, seed1, seed2)
			if err != nil {
				return res, fmt.Errorf("matchup %d game %d: %w", mi+1, i+1, err)
			}
			res.games = append(res.games, metrics.GameRecord{
				Agent1:     config1.ID,
				Agent2:     config2.ID,
				Seed1:      seed1,
				Seed2:      seed2,
				GameMetric: gameMetric,
			})
			for _, mm := range moveMetrics {
				res.moves = append(res.moves, metrics.MoveRecord{
					Game:       gameMetric.ID,
					MoveMetric: mm,
				})
			}

			log.Info().Msgf("completed matchup %d of %d game %d with winner: %s", mi+1, len(matchUps), i+1, winner)
		}
		log.Info().Msgf("completed matchup %d of %d", mi+1, len(matchUps))
	}

	log.Info().Msgf("completed %s experiment", name)

	writer, err := metrics.NewWriter(cfg.OutputDir, name)
	if err != nil {
		return res, fmt.Errorf("failed to create experiment writer: %w", err)
	}

	if err := writer.WriteAgentConfigs(configs); err != nil {
		return res, fmt.Errorf("failed to store agent configs: %w", err)
	}
	log.Info().Msg("stored agent configs")

	if err := writer.WriteGameRecords(res.games); err != nil {
		return res, fmt.Errorf("failed to write game records: %w", err)
	}
	log.Info().Msg("stored game records")

	if err := writer.WriteMoveRecords(res.moves); err != nil {
		return res, fmt.Errorf("failed to write move records: %w", err)
	}
	log.Info().Msgf("stored move records in %s", writer.Dir())

	return res, nil
}

// gameSeed is the seed of config's agent in game i of a matchup. Agents
// without randomness get 0.
func gameSeed(config metrics.AgentConfig, i int) uint64 {
	if config.Kind != metrics.RandomAgent {
		return 0
	}
	return config.Seed + uint64(i)
}

// runGame executes a single game between two agents and returns the winner
func runGame(config1, config2 metrics.AgentConfig, first game.Piece, seed1, seed2 uint64) (game.Piece, metrics.GameMetric, []metrics.MoveMetric, error) {
	agents := [2]agent.Agent{
		createAgent(config1, game.PlayerPiece, seed1),
		createAgent(config2, game.AIPiece, seed2),
	}
	e := engine.NewLocalEngine(agents, first)

	return e.Run()
}

func createAgent(config metrics.AgentConfig, piece game.Piece, seed uint64) agent.Agent {
	switch config.Kind {
	case metrics.RandomAgent:
		return agent.NewRandomAgent(seed)
	case metrics.GreedyAgent:
		return agent.NewGreedyAgent()
	}

	options := []searcher.Option{searcher.WithPiece(piece)}

	if config.Goroutines > 1 {
		options = append(options, searcher.WithGoroutines(config.Goroutines))
	}
	if config.Pruning {
		options = append(options, searcher.WithPruning())
	}
	if config.Deadline > 0 {
		options = append(options, searcher.WithDeadline(config.Deadline))
	}

	options = append(options, searcher.WithMetrics())
	return agent.NewMinimaxAgent(searcher.NewMinimax(config.Depth, options...))
}
