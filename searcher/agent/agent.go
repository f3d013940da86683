package agent

import (
	"infection/experiments/metrics"
	"infection/game"
)

type Agent interface {
	// FindMove returns the chosen move, false if the player to move is stuck, and search metrics (if collected)
	FindMove(b game.Board) (game.Move, bool, metrics.SearchMetric)
}
