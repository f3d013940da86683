package searcher

import (
	"fmt"
	"math"
	"sync"

	"infection/experiments/metrics"
	"infection/game"
	"infection/utils"

	"golang.org/x/exp/rand"
)

// Minimax is a fixed-depth minimax search. It keeps no state between
// decisions apart from the seed stream of the jitter.
type Minimax struct {
	depth      int
	evaluate   game.Evaluate
	name       string
	goroutines int
	jitter     float64
	collect    bool

	mu    sync.Mutex
	seeds *rand.Rand
}

func NewMinimax(depth int, evaluate game.Evaluate, options ...Option) *Minimax {
	if depth < 0 {
		panic(fmt.Sprintf("search depth must not be negative, got %d", depth))
	}
	m := &Minimax{ // Default values
		depth:      depth,
		evaluate:   evaluate,
		name:       game.EvalMaterial,
		goroutines: 1,
		jitter:     DefaultJitter,
	}
	if m.evaluate == nil {
		m.evaluate = game.EvaluateMaterial
	}
	for _, option := range options {
		option(m)
	}
	if m.seeds == nil {
		m.seeds = rand.New(rand.NewSource(utils.RandomSeed()))
	}
	return m
}

func (m *Minimax) Depth() int {
	return m.depth
}

// Decide returns the best move for the player to move, or false when that
// player has no legal move.
func (m *Minimax) Decide(b game.Board) (game.Move, bool) {
	move, ok, _ := m.FindMove(b)
	return move, ok
}

func (m *Minimax) FindMove(b game.Board) (game.Move, bool, metrics.SearchMetric) {
	collector := metrics.NewDummyCollector()
	if m.collect {
		collector = metrics.NewCollector()
	}
	collector.Start(m.goroutines, m.depth, m.name)

	moves := b.ValidMoves()
	if len(moves) == 0 {
		return game.Move{}, false, collector.Complete()
	}

	// Seeds are drawn up front so every root branch gets the same jitter
	// stream however the branches are scheduled.
	seeds := m.drawSeeds(len(moves))
	values := make([]float64, len(moves))
	explore := func(i int) {
		s := &search{
			Minimax: m,
			root:    b.Player(),
			rng:     rand.New(rand.NewSource(seeds[i])),
			metrics: collector,
		}
		values[i] = s.play(b, moves[i], 1)
	}

	if m.goroutines > 1 {
		m.parallel(len(moves), explore)
	} else {
		for i := range moves {
			explore(i)
		}
	}

	// Strictly greater keeps the first of equally scored moves.
	best := 0
	for i := 1; i < len(values); i++ {
		if values[i] > values[best] {
			best = i
		}
	}
	return moves[best], true, collector.Complete()
}

func (m *Minimax) drawSeeds(n int) []uint64 {
	m.mu.Lock()
	defer m.mu.Unlock()
	seeds := make([]uint64, n)
	for i := range seeds {
		seeds[i] = m.seeds.Uint64()
	}
	return seeds
}

func (m *Minimax) parallel(n int, explore func(int)) {
	task := make(chan int, n)
	for i := 0; i < n; i++ {
		task <- i
	}
	close(task)

	var wg sync.WaitGroup
	for i := 0; i < m.goroutines; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()

			for idx := range task {
				explore(idx)
			}
		}()
	}

	wg.Wait()
}

// search explores one root branch. It owns its jitter source.
type search struct {
	*Minimax
	root    game.Player
	rng     *rand.Rand
	metrics metrics.Collector
}

// play scores the position reached by playing move on a copy of b.
func (s *search) play(b game.Board, move game.Move, depth int) float64 {
	next := b
	outcome, err := next.Play(move)
	if err != nil {
		panic(fmt.Sprintf("enumerated move rejected: %v", err))
	}
	s.metrics.AddNode()

	// A finished game feeds the parent's max or min like any other child.
	if outcome.Over() {
		s.metrics.AddTerminal()
		return terminalValue(outcome, s.root)
	}
	return s.minimax(next, depth)
}

func (s *search) minimax(b game.Board, depth int) float64 {
	if depth >= s.depth {
		s.metrics.AddLeaf()
		return s.evaluate(s.root, b) + s.noise()
	}

	if b.Player() == s.root {
		value := math.Inf(-1)
		for _, move := range b.ValidMoves() {
			value = math.Max(value, s.play(b, move, depth+1))
		}
		return value
	}

	value := math.Inf(1)
	for _, move := range b.ValidMoves() {
		value = math.Min(value, s.play(b, move, depth+1))
	}
	return value
}

// noise is uniform in [-jitter, jitter).
func (s *search) noise() float64 {
	if s.jitter == 0 {
		return 0
	}
	return (s.rng.Float64()*2 - 1) * s.jitter
}
