package board

import (
	"fmt"
	"os"
)

var (
	ColorSupport = os.Getenv("OTHELLO_DISABLE_COLOR") != "on"
)

// A Cell is the contents of a single square: empty, or a disk of one of the
// two colors. The numeric values match the game manager's board literal.
type Cell uint8

const (
	Empty     Cell = 0
	DarkDisk  Cell = 1
	LightDisk Cell = 2
)

func (c Cell) valid() bool {
	return c <= LightDisk
}

// DisplayString is the character used in the shell's board display.
func (c Cell) DisplayString() string {
	switch c {
	case DarkDisk:
		if ColorSupport {
			return "\033[1;31mX\033[0m"
		}
		return "X"
	case LightDisk:
		if ColorSupport {
			return "\033[1;36mO\033[0m"
		}
		return "O"
	}
	return "."
}

// A Player is one of the two sides. Dark (1) moves first.
type Player uint8

const (
	Dark  Player = 1
	Light Player = 2
)

func (p Player) String() string {
	switch p {
	case Dark:
		return "dark"
	case Light:
		return "light"
	}
	return fmt.Sprintf("player(%d)", uint8(p))
}

// Opponent returns the other side.
func (p Player) Opponent() Player {
	if p == Dark {
		return Light
	}
	return Dark
}

// Disk is the cell value a player's disk occupies.
func (p Player) Disk() Cell {
	return Cell(p)
}

// PlayerFromInt converts the game manager's color number.
func PlayerFromInt(i int) (Player, error) {
	switch i {
	case 1:
		return Dark, nil
	case 2:
		return Light, nil
	}
	return 0, fmt.Errorf("invalid player color %d", i)
}
