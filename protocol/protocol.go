// Package protocol speaks the game manager's line protocol. The AI prints
// its name, reads its color, then answers every "SCORE dark light" line
// (followed by a board line) with a "col row" move until the manager sends
// "FINAL dark light".
package protocol

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/rs/zerolog/log"

	"github.com/domino14/othello/board"
	"github.com/domino14/othello/othello"
	"github.com/domino14/othello/search"
)

var ErrProtocol = errors.New("protocol error")

const (
	StatusScore = "SCORE"
	StatusFinal = "FINAL"
)

// Status is one "STATUS dark light" line.
type Status struct {
	Final bool
	Dark  int
	Light int
}

func ParseStatus(line string) (Status, error) {
	fields := strings.Fields(line)
	if len(fields) != 3 {
		return Status{}, fmt.Errorf("%w: bad status line %q", ErrProtocol, line)
	}
	var st Status
	switch fields[0] {
	case StatusScore:
	case StatusFinal:
		st.Final = true
	default:
		return Status{}, fmt.Errorf("%w: unknown status %q", ErrProtocol, fields[0])
	}
	var err error
	if st.Dark, err = strconv.Atoi(fields[1]); err != nil {
		return Status{}, fmt.Errorf("%w: bad dark score in %q", ErrProtocol, line)
	}
	if st.Light, err = strconv.Atoi(fields[2]); err != nil {
		return Status{}, fmt.Errorf("%w: bad light score in %q", ErrProtocol, line)
	}
	return st, nil
}

// Player answers the game manager for one game.
type Player struct {
	name string
	sel  *search.Selector[board.Board]
}

func NewPlayer(name string, cfg search.Config) *Player {
	return &Player{
		name: name,
		sel:  search.NewSelector[board.Board](othello.Rules{}, cfg),
	}
}

// Run plays one game over r and w. It returns nil when the manager sends
// FINAL or closes the stream.
func (p *Player) Run(r io.Reader, w io.Writer) error {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 64*1024), 1024*1024)
	readLine := func() (string, bool) {
		for scanner.Scan() {
			line := strings.TrimSpace(scanner.Text())
			if line != "" {
				return line, true
			}
		}
		return "", false
	}

	if _, err := fmt.Fprintln(w, p.name); err != nil {
		return err
	}
	line, ok := readLine()
	if !ok {
		return scanner.Err()
	}
	color, err := strconv.Atoi(line)
	if err != nil {
		return fmt.Errorf("%w: bad color %q", ErrProtocol, line)
	}
	player, err := board.PlayerFromInt(color)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrProtocol, err)
	}
	role, err := search.RoleOf(player)
	if err != nil {
		return err
	}
	log.Info().Str("player", player.String()).Str("role", role.String()).Msg("got-color")

	for {
		line, ok := readLine()
		if !ok {
			log.Info().Msg("manager-closed-stream")
			return scanner.Err()
		}
		st, err := ParseStatus(line)
		if err != nil {
			return err
		}
		if st.Final {
			log.Info().Int("dark", st.Dark).Int("light", st.Light).Msg("game-over")
			return nil
		}
		line, ok = readLine()
		if !ok {
			return fmt.Errorf("%w: missing board after %q", ErrProtocol, StatusScore)
		}
		b, err := board.Parse(line)
		if err != nil {
			return err
		}
		d, err := p.sel.Select(b, role)
		if err != nil {
			return err
		}
		log.Debug().Int("dark", st.Dark).Int("light", st.Light).
			Str("move", d.Move.String()).Int("value", int(d.Value)).
			Int("nodes", d.Stats.Nodes).Msg("move-chosen")
		if _, err := fmt.Fprintln(w, d.Move.String()); err != nil {
			return err
		}
	}
}
