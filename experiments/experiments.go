package experiments

import (
	"fmt"

	"infection/engine"
	"infection/experiments/metrics"
	"infection/game"
	"infection/meta"
	"infection/searcher"
	"infection/searcher/agent"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

const (
	Evaluators = "evaluators"
	Depth      = "depth"
)

type Options struct {
	Root     string // Directory holding the experiment folders
	Games    int    // Per matchup
	MaxTurns int
	Seed     uint64 // Zero leaves the agents unseeded
}

// Result tallies an experiment. Wins are keyed by AgentConfig.ID.
type Result struct {
	Dir        string
	Games      int
	Wins       map[int]int
	Draws      int
	Unfinished int
}

// Run starts the named experiment.
func Run(name string, opts Options) (*Result, error) {
	switch name {
	case Evaluators:
		return RunEvaluatorExperiment(opts)
	case Depth:
		return RunDepthExperiment(opts)
	}
	return nil, fmt.Errorf("unknown experiment %q", name)
}

// RunEvaluatorExperiment pits every evaluation against every other at the
// same depth.
func RunEvaluatorExperiment(opts Options) (*Result, error) {
	configs := []metrics.AgentConfig{
		{ID: 1, Depth: 2, Evaluator: game.EvalMaterial, Goroutines: 1},
		{ID: 2, Depth: 2, Evaluator: game.EvalSurround, Goroutines: 1},
		{ID: 3, Depth: 2, Evaluator: game.EvalRandom, Goroutines: 1},
	}
	matchUps := [][]metrics.AgentConfig{}
	for i := range configs {
		for j := i + 1; j < len(configs); j++ {
			matchUps = append(matchUps, []metrics.AgentConfig{configs[i], configs[j]})
		}
	}
	return runExperiment(Evaluators, opts, configs, matchUps)
}

// RunDepthExperiment pairs a depth one baseline against deeper searches.
func RunDepthExperiment(opts Options) (*Result, error) {
	baseline := metrics.AgentConfig{ID: 0, Depth: 1, Evaluator: game.EvalMaterial, Goroutines: 1}
	configs := []metrics.AgentConfig{
		{ID: 1, Depth: 2, Evaluator: game.EvalMaterial, Goroutines: 4},
		{ID: 2, Depth: 3, Evaluator: game.EvalMaterial, Goroutines: 4},
	}
	matchUps := [][]metrics.AgentConfig{}
	for _, config := range configs {
		matchUps = append(matchUps, []metrics.AgentConfig{baseline, config})
	}
	return runExperiment(Depth, opts, append(configs, baseline), matchUps)
}

func runExperiment(name string, opts Options, configs []metrics.AgentConfig, matchUps [][]metrics.AgentConfig) (*Result, error) {
	if opts.Games <= 0 {
		opts.Games = meta.NUM_GAMES
	}
	if opts.MaxTurns <= 0 {
		opts.MaxTurns = meta.MAX_TURNS
	}
	for i := range configs {
		configs[i].Seed = opts.Seed
	}

	count := 0
	result := &Result{Wins: map[int]int{}}
	gameRecords := []metrics.GameRecord{}
	moveRecords := []metrics.MoveRecord{}

	log.Info().Msgf("starting %s experiment...", name)

	for mi, matchup := range matchUps {
		log.Info().Msgf("starting matchup %d of %d between agent1=%+v and agent2=%+v...", mi+1, len(matchUps), matchup[0], matchup[1])

		for i := 0; i < opts.Games; i++ {
			// Seats alternate so neither agent always moves first
			first, second := matchup[0], matchup[1]
			if i%2 == 1 {
				first, second = second, first
			}

			count++
			session := uuid.NewString()
			var seed uint64
			if opts.Seed != 0 {
				seed = opts.Seed + uint64(count)*2
			}
			outcome, gameMetric, moveMetrics := runGame(first, second, opts.MaxTurns, seed)

			switch winner, ok := outcome.Winner(); {
			case ok && winner == game.PlayerOne:
				result.Wins[first.ID]++
			case ok:
				result.Wins[second.ID]++
			case outcome == game.Draw:
				result.Draws++
			default:
				result.Unfinished++
			}

			gameRecords = append(gameRecords, metrics.GameRecord{
				ID:         count,
				Session:    session,
				Agent1:     first.ID,
				Agent2:     second.ID,
				GameMetric: gameMetric,
			})
			for _, mm := range moveMetrics {
				moveRecords = append(moveRecords, metrics.MoveRecord{
					Game:       count,
					Session:    session,
					MoveMetric: mm,
				})
			}

			log.Info().Msgf("completed matchup %d of %d game %d (%s) with outcome: %s", mi+1, len(matchUps), i+1, session, outcome)
		}
	}
	result.Games = count

	log.Info().Msgf("completed %s experiment", name)

	writer, err := metrics.NewWriter(opts.Root, name)
	if err != nil {
		return nil, fmt.Errorf("failed to create experiment writer: %w", err)
	}
	result.Dir = writer.Dir()

	if err := writer.WriteAgentConfigs(configs); err != nil {
		return nil, fmt.Errorf("failed to store agent configs: %w", err)
	}
	if err := writer.WriteGameRecords(gameRecords); err != nil {
		return nil, fmt.Errorf("failed to write game records: %w", err)
	}
	if err := writer.WriteMoveRecords(moveRecords); err != nil {
		return nil, fmt.Errorf("failed to write move records: %w", err)
	}
	log.Info().Msgf("stored results in %s", writer.Dir())

	return result, nil
}

// runGame plays config1 as PlayerOne against config2.
// A zero seed leaves both agents unseeded.
func runGame(config1, config2 metrics.AgentConfig, maxTurns int, seed uint64) (game.Outcome, metrics.GameMetric, []metrics.MoveMetric) {
	seed2 := seed
	if seed != 0 {
		seed2++
	}
	agents := []agent.Agent{
		agent.NewEvaluationAgent(createMinimax(config1, seed)),
		agent.NewEvaluationAgent(createMinimax(config2, seed2)),
	}
	e := engine.LocalEngine(agents)
	e.MaxTurns = maxTurns

	return e.Run()
}

func createMinimax(config metrics.AgentConfig, seed uint64) *searcher.Minimax {
	options := []searcher.Option{
		searcher.WithGoroutines(config.Goroutines),
		searcher.WithMetrics(),
	}

	name, evaluate := game.LookupEvaluation(config.Evaluator)
	options = append(options, searcher.WithName(name))
	if seed != 0 {
		options = append(options, searcher.WithSeed(seed))
		if name == game.EvalRandom {
			evaluate = game.NewRandomEvaluation(seed)
		}
	}

	return searcher.NewMinimax(config.Depth, evaluate, options...)
}
