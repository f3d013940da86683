package game

import (
	"fmt"
	"strings"
)

// Point is a cell coordinate. X is the column (a..f), Y the row (1..6).
// Values may fall off the board until validated.
type Point struct {
	X, Y int8
}

func (p Point) OnBoard() bool {
	return p.X >= 0 && p.X < Width && p.Y >= 0 && p.Y < Height
}

// String renders an on-board point as "a1" and any other point as "(x,y)".
func (p Point) String() string {
	if !p.OnBoard() {
		return fmt.Sprintf("(%d,%d)", p.X, p.Y)
	}
	return string([]byte{'a' + byte(p.X), '1' + byte(p.Y)})
}

// Move carries a stone from Source to Destination. Distance 1 clones the
// stone, distance 2 jumps it.
type Move struct {
	Source      Point
	Destination Point
}

// Distance is the Chebyshev distance between source and destination.
func (m Move) Distance() int {
	dx := absDiff(m.Destination.X, m.Source.X)
	dy := absDiff(m.Destination.Y, m.Source.Y)
	return max(dx, dy)
}

func (m Move) IsValid() bool {
	d := m.Distance()
	return d > 0 && d <= 2
}

func (m Move) IsClone() bool {
	return m.Distance() == 1
}

func (m Move) IsJump() bool {
	return m.Distance() == 2
}

// String renders the move as "a1 b2". ParseMove is its inverse.
func (m Move) String() string {
	return m.Source.String() + " " + m.Destination.String()
}

// ParseMove reads a move in the "a1 b2" format. It rejects malformed text,
// off-board cells and moves that are neither clones nor jumps.
func ParseMove(s string) (Move, bool) {
	parts := strings.Split(s, " ")
	if len(parts) != 2 {
		return Move{}, false
	}
	source, ok := parsePoint(parts[0])
	if !ok {
		return Move{}, false
	}
	destination, ok := parsePoint(parts[1])
	if !ok {
		return Move{}, false
	}

	m := Move{Source: source, Destination: destination}
	if !m.IsValid() {
		return Move{}, false
	}
	return m, true
}

func parsePoint(s string) (Point, bool) {
	if len(s) != 2 {
		return Point{}, false
	}
	col, row := s[0], s[1]
	if col < 'a' || col >= 'a'+Width || row < '1' || row >= '1'+Height {
		return Point{}, false
	}
	return Point{X: int8(col - 'a'), Y: int8(row - '1')}, true
}

func absDiff(a, b int8) int {
	if a > b {
		return int(a) - int(b)
	}
	return int(b) - int(a)
}
