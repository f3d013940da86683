package agent

import (
	"infection/experiments/metrics"
	"infection/game"
	"infection/searcher"
)

type evaluationAgent struct {
	search searcher.Searcher
}

// NewEvaluationAgent returns a new agent for actual game play.
func NewEvaluationAgent(search searcher.Searcher) Agent {
	return evaluationAgent{search: search}
}

func (a evaluationAgent) FindMove(b game.Board) (game.Move, bool, metrics.SearchMetric) {
	return a.search.FindMove(b)
}
