package board

import "fmt"

// A Move places a disk at (Col, Row). Columns index the inner lists of the
// board literal's rows, i.e. a move (i, j) touches board[j][i].
type Move struct {
	Col int
	Row int
}

// NoMove is returned when the side to move has nothing to play.
var NoMove = Move{Col: -1, Row: -1}

func (m Move) IsNoMove() bool {
	return m == NoMove
}

// String renders the move the way the game manager expects it: "col row".
func (m Move) String() string {
	return fmt.Sprintf("%d %d", m.Col, m.Row)
}
