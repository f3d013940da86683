package engine

import (
	"infection/experiments/metrics"
	"infection/game"
)

type Engine interface {
	// Run plays a game till it is over or a max number of moves is reached
	Run() (outcome game.Outcome, gameMetric metrics.GameMetric, moveMetrics []metrics.MoveMetric)
}
