package experiments

import (
	"connect4/experiments/metrics"
	"time"
)

// RunThroughputExperiment plays agents of the same depth against themselves
// with and without pruning and root parallelism, to compare nodes visited
// and time per move.
func RunThroughputExperiment(cfg Config) error {
	configs := []metrics.AgentConfig{
		{ID: 1, Kind: metrics.MinimaxAgent, Depth: cfg.Depth, Goroutines: 1},
		{ID: 2, Kind: metrics.MinimaxAgent, Depth: cfg.Depth, Goroutines: 1, Pruning: true},
		{ID: 3, Kind: metrics.MinimaxAgent, Depth: cfg.Depth, Goroutines: 4},
		{ID: 4, Kind: metrics.MinimaxAgent, Depth: cfg.Depth, Goroutines: 7},
		{ID: 5, Kind: metrics.MinimaxAgent, Depth: cfg.Depth + 2, Goroutines: 1, Pruning: true, Deadline: 50 * time.Millisecond},
	}
	// Same config for both players in each game
	// for the same playing strength and similar game length
	matchUps := [][]metrics.AgentConfig{}
	for _, config := range configs {
		matchUps = append(matchUps, []metrics.AgentConfig{config, config})
	}

	_, err := runExperiment("throughput", cfg, configs, matchUps)
	return err
}
