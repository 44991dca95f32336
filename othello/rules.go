// Package othello implements the rules of Othello on a square board of any
// even size, as a search.Oracle.
package othello

import (
	"errors"
	"fmt"

	"github.com/domino14/othello/board"
	"github.com/domino14/othello/search"
)

var (
	ErrIllegalMove = errors.New("illegal move")
	ErrBoardSize   = errors.New("board size must be even and at least 4")
)

var directions = [8][2]int{
	{-1, -1}, {0, -1}, {1, -1},
	{-1, 0}, {1, 0},
	{-1, 1}, {0, 1}, {1, 1},
}

// Rules is the Othello position oracle. It has no state.
type Rules struct{}

var _ search.Oracle[board.Board] = Rules{}

// NewBoard returns the starting position: two light disks on the centre's
// main diagonal, two dark disks on the other.
func NewBoard(size int) (board.Board, error) {
	if size < 4 || size%2 != 0 {
		return board.Board{}, fmt.Errorf("%w: %d", ErrBoardSize, size)
	}
	i := size / 2
	bl := board.NewBuilder(board.New(size, size))
	bl.Set(i-1, i-1, board.LightDisk)
	bl.Set(i, i, board.LightDisk)
	bl.Set(i, i-1, board.DarkDisk)
	bl.Set(i-1, i, board.DarkDisk)
	return bl.Board(), nil
}

func checkBoard(b board.Board) error {
	if !b.IsSquare() {
		return fmt.Errorf("%w: %dx%d is not square", board.ErrMalformedBoard, b.Cols(), b.Rows())
	}
	return nil
}

// Moves lists every legal move for p, column by column and top to bottom
// within a column.
func (Rules) Moves(b board.Board, p board.Player) ([]board.Move, error) {
	if err := checkBoard(b); err != nil {
		return nil, err
	}
	var moves []board.Move
	for col := 0; col < b.Cols(); col++ {
		for row := 0; row < b.Rows(); row++ {
			if b.At(col, row) != board.Empty {
				continue
			}
			if flanks(b, p, col, row) {
				moves = append(moves, board.Move{Col: col, Row: row})
			}
		}
	}
	return moves, nil
}

// Apply places p's disk and flips every line it brackets. b is unchanged.
func (Rules) Apply(b board.Board, p board.Player, m board.Move) (board.Board, error) {
	if !b.InBounds(m.Col, m.Row) || b.At(m.Col, m.Row) != board.Empty {
		return board.Board{}, fmt.Errorf("%w: %v for %v", ErrIllegalMove, m, p)
	}
	bl := board.NewBuilder(b)
	flipped := 0
	for _, d := range directions {
		n := lineLength(b, p, m.Col, m.Row, d)
		for k := 1; k <= n; k++ {
			bl.Set(m.Col+k*d[0], m.Row+k*d[1], p.Disk())
		}
		flipped += n
	}
	if flipped == 0 {
		return board.Board{}, fmt.Errorf("%w: %v for %v flips nothing", ErrIllegalMove, m, p)
	}
	bl.Set(m.Col, m.Row, p.Disk())
	return bl.Board(), nil
}

// Evaluate is the disk differential, dark minus light.
func (Rules) Evaluate(b board.Board) search.Utility {
	dark, light := Score(b)
	return search.Utility(dark - light)
}

// Score returns the number of dark and light disks.
func Score(b board.Board) (dark, light int) {
	return b.Count(board.DarkDisk), b.Count(board.LightDisk)
}

// GameOver reports whether neither side has a legal move.
func GameOver(b board.Board) (bool, error) {
	var r Rules
	for _, p := range []board.Player{board.Dark, board.Light} {
		moves, err := r.Moves(b, p)
		if err != nil {
			return false, err
		}
		if len(moves) > 0 {
			return false, nil
		}
	}
	return true, nil
}

func flanks(b board.Board, p board.Player, col, row int) bool {
	for _, d := range directions {
		if lineLength(b, p, col, row, d) > 0 {
			return true
		}
	}
	return false
}

// lineLength returns how many opposing disks p would flip in direction d by
// playing at (col, row): a run of opponent disks closed by one of p's own.
func lineLength(b board.Board, p board.Player, col, row int, d [2]int) int {
	opp := p.Opponent().Disk()
	n := 0
	c, r := col+d[0], row+d[1]
	for b.InBounds(c, r) && b.At(c, r) == opp {
		n++
		c, r = c+d[0], r+d[1]
	}
	if n == 0 || !b.InBounds(c, r) || b.At(c, r) != p.Disk() {
		return 0
	}
	return n
}
