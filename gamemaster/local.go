package gamemaster

import (
	"errors"
	"fmt"

	"infection/game"
	"infection/utils"
)

var (
	ErrGameOver      = errors.New("game is over - no moves allowed")
	ErrNothingToUndo = errors.New("nothing to undo")
)

// Session is a single game with undo history. Snapshots are board copies
// taken before each move.
type Session struct {
	board   game.Board
	history []game.Board
	outcome game.Outcome
}

func NewSession() *Session {
	return NewSessionFrom(game.DefaultBoard())
}

func NewSessionFrom(b game.Board) *Session {
	return &Session{board: b, outcome: b.Outcome()}
}

// Board returns a copy of the current position.
func (s *Session) Board() game.Board {
	return s.board
}

func (s *Session) Outcome() game.Outcome {
	return s.outcome
}

func (s *Session) CanUndo() bool {
	return len(s.history) > 0
}

// Play applies move for the player to move and records the previous position.
func (s *Session) Play(move game.Move) error {
	if s.outcome.Over() {
		return ErrGameOver
	}

	legalMoves := s.board.ValidMoves()
	if len(legalMoves) == 0 {
		return fmt.Errorf("%w: no legal moves available", game.ErrInvalidMove)
	}
	if utils.FindIndex(legalMoves, move) < 0 {
		return fmt.Errorf("%w: %s is not legal for %s", game.ErrInvalidMove, move, s.board.Player())
	}

	previous := s.board
	outcome, err := s.board.Play(move)
	if err != nil {
		return err
	}
	s.history = append(s.history, previous)
	s.outcome = outcome
	return nil
}

// Undo restores the position before the last move, also after the game ended.
func (s *Session) Undo() error {
	if len(s.history) == 0 {
		return ErrNothingToUndo
	}
	last := len(s.history) - 1
	s.board = s.history[last]
	s.history = s.history[:last]
	s.outcome = s.board.Outcome()
	return nil
}
