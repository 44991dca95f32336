package automatic

import (
	"os"
	"testing"

	"github.com/matryer/is"
	"github.com/rs/zerolog"

	"github.com/domino14/othello/othello"
	"github.com/domino14/othello/search"
)

func TestMain(m *testing.M) {
	zerolog.SetGlobalLevel(zerolog.InfoLevel)
	os.Exit(m.Run())
}

var (
	deep    = Contestant{Name: "ab3", Search: search.Config{Engine: search.EngineAlphaBeta, DepthLimit: 3}}
	shallow = Contestant{Name: "ab1", Search: search.Config{Engine: search.EngineAlphaBeta, DepthLimit: 1}}
	random  = Contestant{Name: "rand", Random: true}
)

func TestPlayGame(t *testing.T) {
	is := is.New(t)
	r := NewGameRunner(6, deep, shallow)
	res, err := r.PlayGame(1)
	is.NoErr(err)
	is.Equal(res.DarkName, "ab3")
	is.True(res.Dark+res.Light <= 36)
	is.True(res.Turns <= 32)
	is.True(res.Passes >= 2)
	over, err := othello.GameOver(res.Final)
	is.NoErr(err)
	is.True(over)
	is.Equal(res.FinalHash, res.Final.Hash())

	// engines are deterministic, so the game is too
	again, err := r.PlayGame(2)
	is.NoErr(err)
	is.Equal(again.FinalHash, res.FinalHash)
	is.Equal(again.Turns, res.Turns)
}

func TestPlayGameRandom(t *testing.T) {
	is := is.New(t)
	for i := 0; i < 5; i++ {
		res, err := NewGameRunner(4, random, shallow).PlayGame(i)
		is.NoErr(err)
		is.True(res.Dark+res.Light <= 16)
		over, err := othello.GameOver(res.Final)
		is.NoErr(err)
		is.True(over)
	}
}

func TestPlayGameBadSize(t *testing.T) {
	is := is.New(t)
	_, err := NewGameRunner(5, deep, shallow).PlayGame(1)
	is.True(err != nil)
}

func TestWinner(t *testing.T) {
	is := is.New(t)
	is.Equal(GameResult{DarkName: "a", LightName: "b", Dark: 10, Light: 6}.Winner(), "a")
	is.Equal(GameResult{DarkName: "a", LightName: "b", Dark: 6, Light: 10}.Winner(), "b")
	is.Equal(GameResult{DarkName: "a", LightName: "b", Dark: 8, Light: 8}.Winner(), "")
}
