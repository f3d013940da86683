package engine

import (
	"fmt"
	"time"

	"infection/experiments/metrics"
	"infection/game"
	"infection/meta"
	"infection/searcher/agent"

	"github.com/rs/zerolog/log"
)

type Local struct {
	Board    game.Board
	Agents   [2]agent.Agent // Indexed by player ID - 1
	MaxTurns int
}

// LocalEngine plays agents[0] as PlayerOne against agents[1] from the default layout.
func LocalEngine(agents []agent.Agent) *Local {
	if len(agents) != 2 {
		panic(fmt.Sprintf("need exactly two agents, got %d", len(agents)))
	}
	return &Local{
		Board:    game.DefaultBoard(),
		Agents:   [2]agent.Agent{agents[0], agents[1]},
		MaxTurns: meta.MAX_TURNS,
	}
}

// Run executes the game loop until the game is over or MaxTurns moves were
// played, in which case the outcome is still game.InProgress.
func (e *Local) Run() (game.Outcome, metrics.GameMetric, []metrics.MoveMetric) {
	gameMetric := metrics.GameMetric{
		StartingPlayer: int(e.Board.Player()),
		StartTime:      time.Now(),
		Winner:         -1,
	}
	var moveMetrics []metrics.MoveMetric

	log.Info().Msgf("player %d is starting", e.Board.Player())

	outcome := e.Board.Outcome()
	turn := 1
	for !outcome.Over() && turn <= e.MaxTurns {
		player := e.Board.Player()
		move, ok, searchMetric := e.Agents[player-1].FindMove(e.Board)
		if !ok {
			panic(fmt.Sprintf("%s has legal moves but its agent found none", player))
		}

		var err error
		outcome, err = e.Board.Play(move)
		if err != nil {
			panic(fmt.Sprintf("agent played an illegal move: %v", err))
		}
		log.Debug().Msgf("turn %d: %s played %s", turn, player, move)

		moveMetrics = append(moveMetrics, metrics.MoveMetric{
			Step:         turn,
			Player:       int(player),
			Move:         move.String(),
			SearchMetric: searchMetric,
		})
		turn++
	}

	if outcome.Over() {
		gameMetric.Winner = outcome.Code()
		log.Info().Msgf("game over after %d moves: %s", len(moveMetrics), outcome)
	} else {
		log.Warn().Msgf("stopped after %d moves without a winner", e.MaxTurns)
	}

	gameMetric.EndTime = time.Now()
	gameMetric.Duration = gameMetric.EndTime.Sub(gameMetric.StartTime)
	gameMetric.TotalMoves = len(moveMetrics)
	gameMetric.FinalCounts = [2]int{e.Board.Count(game.PlayerOne), e.Board.Count(game.PlayerTwo)}
	return outcome, gameMetric, moveMetrics
}
