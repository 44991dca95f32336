package protocol

import (
	"errors"
	"os"
	"strings"
	"testing"

	"github.com/matryer/is"
	"github.com/rs/zerolog"

	"github.com/domino14/othello/board"
	"github.com/domino14/othello/search"
)

func TestMain(m *testing.M) {
	zerolog.SetGlobalLevel(zerolog.InfoLevel)
	os.Exit(m.Run())
}

func TestParseStatus(t *testing.T) {
	is := is.New(t)
	st, err := ParseStatus("SCORE 2 2")
	is.NoErr(err)
	is.Equal(st, Status{Dark: 2, Light: 2})
	st, err = ParseStatus("FINAL 33 31")
	is.NoErr(err)
	is.Equal(st, Status{Final: true, Dark: 33, Light: 31})

	for _, line := range []string{"SCORE 2", "SCORES 2 2", "SCORE a 2", "FINAL 2 b"} {
		_, err = ParseStatus(line)
		is.True(errors.Is(err, ErrProtocol))
	}
}

func TestRunTranscript(t *testing.T) {
	is := is.New(t)
	in := strings.Join([]string{
		"1",
		"SCORE 2 2",
		string(board.Opening4x4),
		"SCORE 1 4",
		string(board.DarkBlocked),
		"FINAL 3 1",
		"SCORE 9 9", // never read
	}, "\n")
	var out strings.Builder
	p := NewPlayer("Minimax AI", search.DefaultConfig())
	is.NoErr(p.Run(strings.NewReader(in), &out))

	lines := strings.Split(strings.TrimSpace(out.String()), "\n")
	is.Equal(len(lines), 3)
	is.Equal(lines[0], "Minimax AI")
	// all four opening moves are symmetric, so the first one wins the tie
	is.Equal(lines[1], "0 1")
	is.Equal(lines[2], board.NoMove.String())
}

func TestRunLightPlayer(t *testing.T) {
	is := is.New(t)
	in := "2\nSCORE 2 2\n" + string(board.DarkBlocked) + "\n"
	var out strings.Builder
	p := NewPlayer("ab", search.Config{Engine: search.EngineMinimax})
	is.NoErr(p.Run(strings.NewReader(in), &out))
	lines := strings.Split(strings.TrimSpace(out.String()), "\n")
	is.Equal(len(lines), 2)
	// every reply wipes out dark's only disk, so the first one is kept
	is.Equal(lines[1], "2 3")
}

func TestRunErrors(t *testing.T) {
	is := is.New(t)
	for _, in := range []string{
		"3\n",
		"dark\n",
		"1\nHELLO 1 2\n",
		"1\nSCORE 2 2\n",
	} {
		var out strings.Builder
		err := NewPlayer("x", search.DefaultConfig()).Run(strings.NewReader(in), &out)
		is.True(errors.Is(err, ErrProtocol))
	}

	var out strings.Builder
	err := NewPlayer("x", search.DefaultConfig()).Run(
		strings.NewReader("1\nSCORE 2 2\n[[0, 1], [0]]\n"), &out)
	is.True(errors.Is(err, board.ErrMalformedBoard))
}
