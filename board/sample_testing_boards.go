package board

// This file contains some sample positions, used solely for testing.

// SampleBoard is a board literal, as the game manager sends it.
type SampleBoard string

const (
	// Opening8x8 is the standard 8x8 starting position.
	Opening8x8 SampleBoard = `[[0, 0, 0, 0, 0, 0, 0, 0],
 [0, 0, 0, 0, 0, 0, 0, 0],
 [0, 0, 0, 0, 0, 0, 0, 0],
 [0, 0, 0, 2, 1, 0, 0, 0],
 [0, 0, 0, 1, 2, 0, 0, 0],
 [0, 0, 0, 0, 0, 0, 0, 0],
 [0, 0, 0, 0, 0, 0, 0, 0],
 [0, 0, 0, 0, 0, 0, 0, 0]]`

	// Opening4x4 is the 4x4 starting position.
	Opening4x4 SampleBoard = `[[0, 0, 0, 0], [0, 2, 1, 0], [0, 1, 2, 0], [0, 0, 0, 0]]`

	// Late4x4 is a 4x4 midgame with six empty squares; small enough to
	// search exhaustively.
	Late4x4 SampleBoard = `[[0, 1, 1, 0], [2, 2, 1, 0], [0, 2, 1, 1], [0, 2, 2, 0]]`

	// Late6x6 is a 6x6 position with eight empty squares.
	Late6x6 SampleBoard = `[[1, 1, 1, 1, 2, 0],
 [1, 1, 2, 2, 2, 0],
 [1, 2, 1, 2, 2, 2],
 [1, 2, 2, 1, 2, 0],
 [0, 2, 1, 2, 1, 0],
 [0, 0, 1, 1, 1, 0]]`

	// DarkBlocked is a 4x4 board where dark has no legal move but light
	// does.
	DarkBlocked SampleBoard = `[[2, 2, 2, 0], [2, 2, 2, 0], [2, 2, 1, 0], [0, 0, 0, 0]]`
)

// MustParse parses a sample board, panicking on error.
func (s SampleBoard) MustParse() Board {
	b, err := Parse(string(s))
	if err != nil {
		panic(err)
	}
	return b
}
