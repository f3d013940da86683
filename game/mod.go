package game

import "fmt"

const (
	Width  = 6
	Height = 6
	Size   = Width * Height
)

// Player identifies the owner of a cell. Empty doubles as "no owner".
type Player uint8

const (
	Empty Player = iota
	PlayerOne
	PlayerTwo
)

// Opponent returns the other player. Empty has no opponent.
func (p Player) Opponent() Player {
	switch p {
	case PlayerOne:
		return PlayerTwo
	case PlayerTwo:
		return PlayerOne
	}
	return Empty
}

func (p Player) String() string {
	if p == Empty {
		return "Empty"
	}
	return fmt.Sprintf("Player%d", p)
}

// Outcome is the terminal status of a position.
type Outcome int

const (
	InProgress Outcome = iota
	Draw
	PlayerOneWins
	PlayerTwoWins
)

func (o Outcome) Over() bool {
	return o != InProgress
}

// Winner returns the winning player, or false for a draw or an unfinished game.
func (o Outcome) Winner() (Player, bool) {
	switch o {
	case PlayerOneWins:
		return PlayerOne, true
	case PlayerTwoWins:
		return PlayerTwo, true
	}
	return Empty, false
}

// Code returns the legacy winner id: 0 for a draw, else the winning player.
// It panics for a game still in progress.
func (o Outcome) Code() int {
	switch o {
	case Draw:
		return 0
	case PlayerOneWins:
		return 1
	case PlayerTwoWins:
		return 2
	}
	panic("game is still in progress")
}

func (o Outcome) String() string {
	switch o {
	case InProgress:
		return "in progress"
	case Draw:
		return "draw"
	case PlayerOneWins:
		return "Player1 wins"
	case PlayerTwoWins:
		return "Player2 wins"
	}
	return fmt.Sprintf("Outcome(%d)", int(o))
}

func winnerOutcome(p Player) Outcome {
	if p == PlayerOne {
		return PlayerOneWins
	}
	return PlayerTwoWins
}

// Evaluates the board from player's point of view. Higher is better for player.
type Evaluate func(player Player, b Board) float64
