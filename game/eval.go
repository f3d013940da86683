package game

import (
	"math"
	"sync"

	"infection/utils"

	"golang.org/x/exp/rand"
)

const (
	EvalMaterial = "basic"
	EvalSurround = "surrounder"
	EvalRandom   = "random"
)

// LookupEvaluation maps a name token to its evaluation function. Unknown
// names fall back to the material evaluation; the canonical name of the
// chosen evaluation is returned with it. Each "random" lookup is freshly
// seeded.
func LookupEvaluation(name string) (string, Evaluate) {
	switch name {
	case EvalSurround:
		return EvalSurround, EvaluateSurround
	case EvalRandom:
		return EvalRandom, NewRandomEvaluation(utils.RandomSeed())
	}
	return EvalMaterial, EvaluateMaterial
}

// cellWeights favours cells near the centre: 1 + (3.5 - d) / 3.5 where d is
// the Chebyshev distance to (2.5, 2.5).
var cellWeights = func() (w [Height][Width]float64) {
	const center = (Width - 1) / 2.0
	for y := 0; y < Height; y++ {
		for x := 0; x < Width; x++ {
			d := math.Max(math.Abs(float64(x)-center), math.Abs(float64(y)-center))
			w[y][x] = 1 + (3.5-d)/3.5
		}
	}
	return w
}()

// EvaluateMaterial sums the positional weight of player's stones minus
// the weight of the opponent's stones.
func EvaluateMaterial(player Player, b Board) float64 {
	score := 0.0
	for y := range b.cells {
		for x, owner := range b.cells[y] {
			switch owner {
			case Empty:
			case player:
				score += cellWeights[y][x]
			default:
				score -= cellWeights[y][x]
			}
		}
	}
	return score
}

// EvaluateSurround rescales the material score by 0.1*|base|, which keeps
// its sign, then adds 0.25 per clone move available to the side to move,
// counted for player if player is to move and against them otherwise.
func EvaluateSurround(player Player, b Board) float64 {
	base := EvaluateMaterial(player, b)
	mobility := 0.25 * float64(countClones(b))
	if b.Player() != player {
		mobility = -mobility
	}
	return base*base*0.1*sign(base) + mobility
}

func countClones(b Board) int {
	return utils.CountFunc(b.ValidMoves(), Move.IsClone)
}

func sign(v float64) float64 {
	if math.Signbit(v) {
		return -1
	}
	return 1
}

// NewRandomEvaluation returns a baseline evaluation that ignores the
// board and draws uniformly from [0, 1). It is safe for concurrent use.
func NewRandomEvaluation(seed uint64) Evaluate {
	var mu sync.Mutex
	r := rand.New(rand.NewSource(seed))
	return func(Player, Board) float64 {
		mu.Lock()
		defer mu.Unlock()
		return r.Float64()
	}
}
