// meta/meta.go
package meta

import "time"

// DEFAULT_DEPTH defines the minimax search depth.
const DEFAULT_DEPTH = 3

// DEFAULT_ANALYZER names the evaluation used when none is given.
const DEFAULT_ANALYZER = "basic"

// GO_ROUTINES defines the number of goroutines searching root moves.
const GO_ROUTINES = 1

// MAX_TURNS caps bot-vs-bot games, which can cycle forever on jumps.
const MAX_TURNS = 300

// MOVE_DELAY is the pause between moves when a human is watching.
const MOVE_DELAY = time.Second

// NUM_GAMES is the number of games per arena matchup.
const NUM_GAMES = 10
