package game

import (
	"errors"
	"fmt"
	"strings"
)

var ErrInvalidMove = errors.New("invalid move")

// Board is the full game state. It is a plain value: assigning a Board
// copies it, so search branches and history snapshots never alias.
type Board struct {
	cells   [Height][Width]Player
	current Player
}

// NewBoard returns an empty board with PlayerOne to move.
func NewBoard() Board {
	return Board{current: PlayerOne}
}

// DefaultBoard returns the starting layout: PlayerOne on a1 and f6,
// PlayerTwo on f1 and a6, PlayerOne to move.
func DefaultBoard() Board {
	b := NewBoard()
	b.set(Point{0, 0}, PlayerOne)
	b.set(Point{5, 0}, PlayerTwo)
	b.set(Point{0, 5}, PlayerTwo)
	b.set(Point{5, 5}, PlayerOne)
	return b
}

// ParseBoard builds a board from Height rows of Width cells, first row is
// row 1. Cells are '0' or '.' for empty, '1' and '2' for the players.
// Spaces are ignored so the output of String parses back.
func ParseBoard(rows []string, current Player) (Board, error) {
	if current != PlayerOne && current != PlayerTwo {
		return Board{}, fmt.Errorf("invalid current player %d", current)
	}
	if len(rows) != Height {
		return Board{}, fmt.Errorf("expected %d rows, got %d", Height, len(rows))
	}

	b := Board{current: current}
	for y, row := range rows {
		row = strings.ReplaceAll(row, " ", "")
		if len(row) != Width {
			return Board{}, fmt.Errorf("row %d: expected %d cells, got %d", y+1, Width, len(row))
		}
		for x := 0; x < Width; x++ {
			var owner Player
			switch row[x] {
			case '0', '.':
				owner = Empty
			case '1':
				owner = PlayerOne
			case '2':
				owner = PlayerTwo
			default:
				return Board{}, fmt.Errorf("row %d: invalid cell %q", y+1, row[x])
			}
			b.cells[y][x] = owner
		}
	}
	return b, nil
}

// Player returns the player to move.
func (b Board) Player() Player {
	return b.current
}

// Get returns the owner of p, or false if p is off the board.
func (b Board) Get(p Point) (Player, bool) {
	if !p.OnBoard() {
		return Empty, false
	}
	return b.cells[p.Y][p.X], true
}

func (b *Board) set(p Point, owner Player) {
	b.cells[p.Y][p.X] = owner
}

// Count returns the number of cells owned by p.
func (b Board) Count(p Player) int {
	n := 0
	for y := range b.cells {
		for x := range b.cells[y] {
			if b.cells[y][x] == p {
				n++
			}
		}
	}
	return n
}

// IsLegal reports whether the player to move may play m.
func (b Board) IsLegal(m Move) bool {
	if !m.IsValid() {
		return false
	}
	source, ok := b.Get(m.Source)
	if !ok || source != b.current {
		return false
	}
	destination, ok := b.Get(m.Destination)
	if !ok || destination != Empty {
		return false
	}
	return true
}

// ValidMoves returns all legal moves for the player to move. Cells are
// visited row by row, and for each cell the offsets dx then dy ascend
// over [-2, 2]. An empty result means the player cannot move.
func (b Board) ValidMoves() []Move {
	// TODO: each (source, destination) pair is produced once per source in
	// this order, so the clone set never rejects anything; drop it once no
	// other enumeration order depends on it.
	seen := make(map[Move]struct{})
	var moves []Move
	for i := 0; i < Size; i++ {
		p := Point{X: int8(i % Width), Y: int8(i / Width)}
		if b.cells[p.Y][p.X] != b.current {
			continue
		}
		for dx := int8(-2); dx <= 2; dx++ {
			for dy := int8(-2); dy <= 2; dy++ {
				if dx == 0 && dy == 0 {
					continue
				}
				m := Move{Source: p, Destination: Point{X: p.X + dx, Y: p.Y + dy}}
				if !b.IsLegal(m) {
					continue
				}
				if m.IsClone() {
					if _, ok := seen[m]; ok {
						continue
					}
					seen[m] = struct{}{}
				}
				moves = append(moves, m)
			}
		}
	}
	return moves
}

// Play applies m for the player to move: a jump vacates the source, the
// destination and every adjacent opponent stone become the mover's, and
// the turn passes. The board is left untouched when m is illegal.
func (b *Board) Play(m Move) (Outcome, error) {
	if !b.IsLegal(m) {
		return InProgress, fmt.Errorf("%w: %s for %s", ErrInvalidMove, m, b.current)
	}

	mover := b.current
	if m.IsJump() {
		b.set(m.Source, Empty)
	}
	b.set(m.Destination, mover)

	for dx := int8(-1); dx <= 1; dx++ {
		for dy := int8(-1); dy <= 1; dy++ {
			if dx == 0 && dy == 0 {
				continue
			}
			p := Point{X: m.Destination.X + dx, Y: m.Destination.Y + dy}
			owner, ok := b.Get(p)
			if !ok || owner == Empty || owner == mover {
				continue
			}
			b.set(p, mover)
		}
	}

	b.current = 1 + b.current%2
	return b.Outcome(), nil
}

// Outcome reports whether the game is over. It is over once the player to
// move has no legal move; the player owning more cells wins.
func (b Board) Outcome() Outcome {
	if len(b.ValidMoves()) > 0 {
		return InProgress
	}
	one, two := b.Count(PlayerOne), b.Count(PlayerTwo)
	switch {
	case one == two:
		return Draw
	case one > two:
		return winnerOutcome(PlayerOne)
	default:
		return winnerOutcome(PlayerTwo)
	}
}

// String renders the board one row per line, row 1 first.
func (b Board) String() string {
	var sb strings.Builder
	for y := 0; y < Height; y++ {
		for x := 0; x < Width; x++ {
			if x > 0 {
				sb.WriteByte(' ')
			}
			sb.WriteByte('0' + byte(b.cells[y][x]))
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}
