package board

import (
	"encoding/binary"
	"errors"

	"github.com/cespare/xxhash"
)

var ErrMalformedBoard = errors.New("malformed board")

// A Board is a rectangular grid of cells. It behaves as a value: nothing in
// this package changes a Board after it is built, and With returns a fresh
// copy, so a search can hand the same Board to every sibling move.
type Board struct {
	cols  int
	rows  int
	cells []Cell // row-major
}

// New returns an empty board.
func New(cols, rows int) Board {
	return Board{
		cols:  cols,
		rows:  rows,
		cells: make([]Cell, cols*rows),
	}
}

// FromRows builds a board from a list of rows, each a list of cells.
func FromRows(rows [][]Cell) (Board, error) {
	if len(rows) == 0 || len(rows[0]) == 0 {
		return Board{}, ErrMalformedBoard
	}
	b := New(len(rows[0]), len(rows))
	for r, row := range rows {
		if len(row) != b.cols {
			return Board{}, ErrMalformedBoard
		}
		for c, cell := range row {
			if !cell.valid() {
				return Board{}, ErrMalformedBoard
			}
			b.cells[r*b.cols+c] = cell
		}
	}
	return b, nil
}

func (b Board) Cols() int {
	return b.cols
}

func (b Board) Rows() int {
	return b.rows
}

// Dim is the side length of a square board.
func (b Board) Dim() int {
	return b.cols
}

// IsSquare reports whether the board has as many rows as columns and at
// least one cell.
func (b Board) IsSquare() bool {
	return b.cols > 0 && b.cols == b.rows
}

func (b Board) InBounds(col, row int) bool {
	return col >= 0 && row >= 0 && col < b.cols && row < b.rows
}

// At returns the cell at (col, row). It panics if out of bounds.
func (b Board) At(col, row int) Cell {
	return b.cells[row*b.cols+col]
}

// With returns a copy of the board with (col, row) set to c.
func (b Board) With(col, row int, c Cell) Board {
	nb := b.Copy()
	nb.cells[row*b.cols+col] = c
	return nb
}

// Copy returns a deep copy. To change several cells at once (e.g. flipping
// lines) use a Builder instead.
func (b Board) Copy() Board {
	nb := Board{cols: b.cols, rows: b.rows, cells: make([]Cell, len(b.cells))}
	copy(nb.cells, b.cells)
	return nb
}

// Builder allows batched edits on a private copy of a board.
type Builder struct {
	b Board
}

// NewBuilder starts an edit from a copy of b.
func NewBuilder(b Board) *Builder {
	return &Builder{b: b.Copy()}
}

func (bl *Builder) Set(col, row int, c Cell) {
	bl.b.cells[row*bl.b.cols+col] = c
}

func (bl *Builder) At(col, row int) Cell {
	return bl.b.At(col, row)
}

// Board returns the edited board. The builder must not be used afterwards.
func (bl *Builder) Board() Board {
	nb := bl.b
	bl.b = Board{}
	return nb
}

// Count returns how many squares hold c.
func (b Board) Count(c Cell) int {
	n := 0
	for _, cell := range b.cells {
		if cell == c {
			n++
		}
	}
	return n
}

func (b Board) Equal(o Board) bool {
	if b.cols != o.cols || b.rows != o.rows {
		return false
	}
	for i := range b.cells {
		if b.cells[i] != o.cells[i] {
			return false
		}
	}
	return true
}

// Hash returns a digest of the board's dimensions and contents.
func (b Board) Hash() uint64 {
	buf := make([]byte, 0, len(b.cells)+2*binary.MaxVarintLen64)
	buf = binary.AppendUvarint(buf, uint64(b.cols))
	buf = binary.AppendUvarint(buf, uint64(b.rows))
	for _, c := range b.cells {
		buf = append(buf, byte(c))
	}
	return xxhash.Sum64(buf)
}

// CellRows returns the board as a list of rows.
func (b Board) CellRows() [][]Cell {
	out := make([][]Cell, b.rows)
	for r := 0; r < b.rows; r++ {
		out[r] = make([]Cell, b.cols)
		copy(out[r], b.cells[r*b.cols:(r+1)*b.cols])
	}
	return out
}
