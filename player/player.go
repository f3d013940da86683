package player

import (
	"bufio"
	"fmt"
	"io"
	"strings"
	"time"

	"infection/game"
	"infection/gamemaster"
)

// Exit codes of a stdout session, from the bot's point of view.
const (
	ExitWin   = 0
	ExitAbort = 0 // Opponent sent an unreadable or illegal move
	ExitLoss  = 3
	ExitDraw  = 4
)

// UndoCommand takes back the human's last move together with the bot's reply.
const UndoCommand = "u1"

type Bot interface {
	Decide(b game.Board) (game.Move, bool)
}

// Controller drives a game between a bot and a line-based opponent.
type Controller struct {
	Bot       Bot
	BotPlayer game.Player
	Board     game.Board // Starting position
	Delay     time.Duration
	Out       io.Writer // Boards and moves
	Moves     io.Writer // The bot's own moves, one per line
}

// NewController returns a controller starting from the default layout.
func NewController(bot Bot, botPlayer game.Player, out, moves io.Writer) *Controller {
	return &Controller{
		Bot:       bot,
		BotPlayer: botPlayer,
		Board:     game.DefaultBoard(),
		Out:       out,
		Moves:     moves,
	}
}

// StdoutVsBot plays the bot against moves read from in, one per line, and
// returns the exit code. Any unreadable or illegal opponent move ends the
// session with ExitAbort.
func (c *Controller) StdoutVsBot(in io.Reader) (int, error) {
	scanner := bufio.NewScanner(in)
	b := c.Board
	fmt.Fprint(c.Out, b)

	for {
		ourTurn := b.Player() == c.BotPlayer
		var move game.Move
		if ourTurn {
			m, ok := c.Bot.Decide(b)
			if !ok {
				panic(fmt.Sprintf("%s has legal moves but the bot found none", b.Player()))
			}
			move = m
		} else {
			if !scanner.Scan() {
				return ExitAbort, scanner.Err()
			}
			m, ok := game.ParseMove(strings.TrimSpace(scanner.Text()))
			if !ok || !b.IsLegal(m) {
				return ExitAbort, nil
			}
			move = m
		}

		outcome, err := b.Play(move)
		if err != nil {
			panic(fmt.Sprintf("bot played an illegal move: %v", err))
		}
		fmt.Fprintln(c.Out, move)
		fmt.Fprint(c.Out, b)

		if ourTurn {
			if _, err := fmt.Fprintln(c.Moves, move); err != nil {
				return ExitAbort, fmt.Errorf("failed to write move: %w", err)
			}
		}

		if outcome.Over() {
			return exitCode(outcome, c.BotPlayer), nil
		}
	}
}

func exitCode(outcome game.Outcome, bot game.Player) int {
	winner, ok := outcome.Winner()
	switch {
	case !ok:
		return ExitDraw
	case winner == bot:
		return ExitWin
	default:
		return ExitLoss
	}
}

// HumanVsBot lets a human play moves read from in against the bot. The
// human may undo their last move, and quits with an empty line once the
// game is over or at the end of input.
func (c *Controller) HumanVsBot(in io.Reader) error {
	scanner := bufio.NewScanner(in)
	session := gamemaster.NewSessionFrom(c.Board)
	humanMoves := 0
	fmt.Fprint(c.Out, session.Board())

	for {
		if !session.Outcome().Over() && session.Board().Player() == c.BotPlayer {
			move, ok := c.Bot.Decide(session.Board())
			if !ok {
				panic("valid moves are present, but the bot got stuck")
			}
			if err := session.Play(move); err != nil {
				panic(fmt.Sprintf("bot played an illegal move: %v", err))
			}
			c.show(session, move)
			continue
		}

		line, ok := c.readCommand(scanner, session, humanMoves > 0)
		if !ok {
			return scanner.Err()
		}
		if line == UndoCommand {
			undoHumanMove(session, c.BotPlayer)
			humanMoves--
			fmt.Fprintln(c.Out, "Undone.")
			fmt.Fprint(c.Out, session.Board())
			continue
		}

		move, _ := game.ParseMove(line)
		if err := session.Play(move); err != nil {
			panic(fmt.Sprintf("checked move rejected: %v", err))
		}
		humanMoves++
		c.show(session, move)
	}
}

// readCommand reads until it gets a legal move or an allowed undo. It
// reports false at the end of input, or on an empty line after the game
// ended.
func (c *Controller) readCommand(scanner *bufio.Scanner, session *gamemaster.Session, allowUndo bool) (string, bool) {
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			if session.Outcome().Over() {
				return "", false
			}
			continue
		}
		if allowUndo && line == UndoCommand {
			return line, true
		}
		move, ok := game.ParseMove(line)
		if !ok {
			continue
		}
		fmt.Fprintln(c.Out, move)
		if !session.Outcome().Over() && session.Board().IsLegal(move) {
			return line, true
		}
	}
	return "", false
}

func (c *Controller) show(session *gamemaster.Session, move game.Move) {
	fmt.Fprintln(c.Out, move)
	fmt.Fprint(c.Out, session.Board())
	time.Sleep(c.Delay)

	outcome := session.Outcome()
	if !outcome.Over() {
		return
	}
	if winner, ok := outcome.Winner(); ok {
		fmt.Fprintf(c.Out, "Player %d wins!\n", winner)
	} else {
		fmt.Fprintln(c.Out, "Draw!")
	}
}

// undoHumanMove rewinds to the position before the human's last move.
func undoHumanMove(session *gamemaster.Session, bot game.Player) {
	for session.CanUndo() {
		if err := session.Undo(); err != nil {
			return
		}
		if session.Board().Player() != bot {
			return
		}
	}
}
