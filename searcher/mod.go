package searcher

import (
	"math"

	"infection/experiments/metrics"
	"infection/game"
)

// Leaf scores are perturbed by up to this much to break ties between
// equally evaluated positions.
const DefaultJitter = 0.01

var (
	Win  = math.Inf(1)
	Loss = math.Inf(-1)
)

type Searcher interface {
	Decide(b game.Board) (game.Move, bool)
	FindMove(b game.Board) (game.Move, bool, metrics.SearchMetric)
}

// terminalValue scores a finished game for root. A draw is not a win, so
// it scores as a loss.
func terminalValue(outcome game.Outcome, root game.Player) float64 {
	if winner, ok := outcome.Winner(); ok && winner == root {
		return Win
	}
	return Loss
}
