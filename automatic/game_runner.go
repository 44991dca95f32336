// Package automatic plays computer-vs-computer Othello games, for comparing
// engines and depth limits against each other.
package automatic

import (
	"fmt"

	"github.com/rs/zerolog/log"
	"lukechampine.com/frand"

	"github.com/domino14/othello/board"
	"github.com/domino14/othello/othello"
	"github.com/domino14/othello/search"
)

// A Contestant is one side of a match. A Random contestant ignores Search
// and plays a uniformly random legal move.
type Contestant struct {
	Name   string
	Search search.Config
	Random bool
}

func (c Contestant) String() string {
	if c.Random {
		return c.Name + "(random)"
	}
	return fmt.Sprintf("%s(%v)", c.Name, c.Search)
}

// GameResult is the outcome of one game.
type GameResult struct {
	GameID    int
	DarkName  string
	LightName string
	Dark      int // disks at the end
	Light     int
	Turns     int
	Passes    int // including the two that end the game
	Final     board.Board
	FinalHash uint64
}

// Winner returns the winner's name, or "" for a draw.
func (g GameResult) Winner() string {
	switch {
	case g.Dark > g.Light:
		return g.DarkName
	case g.Light > g.Dark:
		return g.LightName
	}
	return ""
}

// GameRunner plays games between two contestants; the first one plays dark.
type GameRunner struct {
	size    int
	rules   othello.Rules
	players [2]Contestant
}

func NewGameRunner(size int, dark, light Contestant) *GameRunner {
	return &GameRunner{size: size, players: [2]Contestant{dark, light}}
}

func (r *GameRunner) contestant(p board.Player) Contestant {
	if p == board.Dark {
		return r.players[0]
	}
	return r.players[1]
}

func (r *GameRunner) chooseMove(c Contestant, b board.Board, p board.Player) (board.Move, error) {
	if c.Random {
		moves, err := r.rules.Moves(b, p)
		if err != nil || len(moves) == 0 {
			return board.NoMove, err
		}
		return moves[frand.Intn(len(moves))], nil
	}
	role, err := search.RoleOf(p)
	if err != nil {
		return board.NoMove, err
	}
	return search.SelectMove[board.Board](r.rules, b, role, c.Search)
}

// PlayGame plays a game to the end. A side with no legal move passes; the
// game ends when both sides pass in a row.
func (r *GameRunner) PlayGame(id int) (GameResult, error) {
	b, err := othello.NewBoard(r.size)
	if err != nil {
		return GameResult{}, err
	}
	res := GameResult{
		GameID:    id,
		DarkName:  r.players[0].Name,
		LightName: r.players[1].Name,
	}
	toMove := board.Dark
	passesInARow := 0
	for passesInARow < 2 {
		m, err := r.chooseMove(r.contestant(toMove), b, toMove)
		if err != nil {
			return GameResult{}, err
		}
		if m.IsNoMove() {
			res.Passes++
			passesInARow++
		} else {
			b, err = r.rules.Apply(b, toMove, m)
			if err != nil {
				return GameResult{}, err
			}
			res.Turns++
			passesInARow = 0
		}
		toMove = toMove.Opponent()
	}
	res.Dark, res.Light = othello.Score(b)
	res.Final = b
	res.FinalHash = b.Hash()
	log.Debug().Int("game", id).Int("dark", res.Dark).Int("light", res.Light).
		Int("turns", res.Turns).Msg("game-over")
	return res, nil
}
