package board

import (
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"
)

// Parse reads a board in the game manager's literal format: a list of rows,
// each a list of cell numbers, e.g. "[[0, 1], [2, 0]]". The literal is a
// YAML flow sequence, so it is decoded as such.
func Parse(literal string) (Board, error) {
	var rows [][]int
	if err := yaml.Unmarshal([]byte(literal), &rows); err != nil {
		return Board{}, fmt.Errorf("%w: %v", ErrMalformedBoard, err)
	}
	cells := make([][]Cell, len(rows))
	for r, row := range rows {
		cells[r] = make([]Cell, len(row))
		for c, v := range row {
			if v < 0 || v > int(LightDisk) {
				return Board{}, fmt.Errorf("%w: bad cell value %d at row %d col %d",
					ErrMalformedBoard, v, r, c)
			}
			cells[r][c] = Cell(v)
		}
	}
	b, err := FromRows(cells)
	if err != nil {
		return Board{}, fmt.Errorf("%w: bad shape (%d rows)", err, len(rows))
	}
	return b, nil
}

// String renders the board in the same literal format Parse reads.
func (b Board) String() string {
	var sb strings.Builder
	sb.WriteString("[")
	for r := 0; r < b.rows; r++ {
		if r > 0 {
			sb.WriteString(", ")
		}
		sb.WriteString("[")
		for c := 0; c < b.cols; c++ {
			if c > 0 {
				sb.WriteString(", ")
			}
			fmt.Fprintf(&sb, "%d", b.At(c, r))
		}
		sb.WriteString("]")
	}
	sb.WriteString("]")
	return sb.String()
}

func (b Board) ToDisplayText() string {
	var str string
	row := "   "
	for i := 0; i < b.cols; i++ {
		row = row + fmt.Sprintf("%d", i%10) + " "
	}
	str = str + row + "\n"
	str = str + "   " + strings.Repeat("-", b.cols*2) + "\n"
	for r := 0; r < b.rows; r++ {
		row := fmt.Sprintf("%2d|", r)
		for c := 0; c < b.cols; c++ {
			row = row + b.At(c, r).DisplayString() + " "
		}
		row = row + "|"
		str = str + row + "\n"
	}
	str = str + "   " + strings.Repeat("-", b.cols*2) + "\n"
	return "\n" + str
}
