package main

import (
	"flag"
	"fmt"
	"os"

	"infection/config"
	"infection/experiments"
	"infection/game"
	"infection/player"
	"infection/searcher"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// Config keys set by each command line flag.
var flagKeys = map[string]string{
	"d":          "depth",
	"a":          "analyzer",
	"goroutines": "goroutines",
	"seed":       "seed",
	"delay":      "delay",
	"arena":      "experiment",
	"games":      "games",
	"out":        "output_dir",
	"log-level":  "log_level",
}

func main() {
	os.Exit(run())
}

func run() int {
	cfgPath := flag.String("config", "", "Path to a YAML config file")
	flag.Int("d", 0, "Search depth")
	flag.String("a", "", "Evaluation: basic, surrounder or random")
	human := flag.Bool("human", false, "Play against the bot on the console")
	flag.Int("goroutines", 0, "Number of goroutines searching root moves")
	flag.Uint64("seed", 0, "Seed for the search jitter, 0 picks one")
	flag.Duration("delay", 0, "Pause after each move in human mode")
	flag.String("arena", "", "Run a bot-vs-bot experiment: evaluators or depth")
	flag.Int("games", 0, "Games per arena matchup")
	flag.String("out", "", "Directory for arena results")
	flag.String("log-level", "", "Log level written to stderr")
	flag.Parse()

	overrides := map[string]any{}
	flag.Visit(func(f *flag.Flag) {
		if key, ok := flagKeys[f.Name]; ok {
			overrides[key] = f.Value.(flag.Getter).Get()
		}
	})
	if *human {
		overrides["mode"] = config.ModeHuman
	}

	// The seat is the last argument; anything else is a silent no-op.
	arena := overrides["experiment"] != nil
	if !arena {
		if flag.NArg() == 0 {
			return 0
		}
		switch flag.Arg(flag.NArg() - 1) {
		case "0":
			overrides["seat"] = 0
		case "1":
			overrides["seat"] = 1
		default:
			return 0
		}
	}

	cfg, err := config.Load(*cfgPath, overrides)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 1
	}

	zerolog.SetGlobalLevel(cfg.Level())
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})

	if cfg.Experiment != "" {
		result, err := experiments.Run(cfg.Experiment, experiments.Options{
			Root:  cfg.OutputDir,
			Games: cfg.Games,
			Seed:  cfg.Seed,
		})
		if err != nil {
			log.Error().Err(err).Msg("experiment failed")
			return 1
		}
		fmt.Printf("%d games, wins by agent %v, %d draws, %d unfinished\n", result.Games, result.Wins, result.Draws, result.Unfinished)
		fmt.Printf("results in %s\n", result.Dir)
		return 0
	}

	botPlayer := game.PlayerOne
	if cfg.Seat == 1 {
		botPlayer = game.PlayerTwo
	}
	bot := newBot(cfg)
	log.Info().Msgf("bot plays %s at depth %d with %s", botPlayer, cfg.Depth, cfg.Analyzer)

	controller := player.NewController(bot, botPlayer, os.Stdout, os.Stderr)
	if cfg.Mode == config.ModeHuman {
		controller.Delay = cfg.Delay
		if err := controller.HumanVsBot(os.Stdin); err != nil {
			log.Error().Err(err).Msg("failed to read input")
			return 1
		}
		return 0
	}

	code, err := controller.StdoutVsBot(os.Stdin)
	if err != nil {
		log.Error().Err(err).Msg("session ended with an error")
	}
	return code
}

func newBot(cfg *config.Config) *searcher.Minimax {
	name, evaluate := game.LookupEvaluation(cfg.Analyzer)
	options := []searcher.Option{
		searcher.WithGoroutines(cfg.Goroutines),
		searcher.WithName(name),
	}
	if cfg.Seed != 0 {
		options = append(options, searcher.WithSeed(cfg.Seed))
		if name == game.EvalRandom {
			evaluate = game.NewRandomEvaluation(cfg.Seed)
		}
	}
	return searcher.NewMinimax(cfg.Depth, evaluate, options...)
}
