package board

import (
	"errors"
	"testing"

	"github.com/matryer/is"
)

func TestParse(t *testing.T) {
	is := is.New(t)
	b, err := Parse("[[0, 1, 2], [2, 1, 0]]")
	is.NoErr(err)
	is.Equal(b.Cols(), 3)
	is.Equal(b.Rows(), 2)
	is.Equal(b.At(1, 0), DarkDisk)
	is.Equal(b.At(2, 0), LightDisk)
	is.Equal(b.At(0, 1), LightDisk)
	is.Equal(b.At(2, 1), Empty)
	is.True(!b.IsSquare())
}

func TestParseMalformed(t *testing.T) {
	is := is.New(t)
	for _, lit := range []string{
		"[]",
		"[[0, 1], [0]]",
		"[[0, 3], [0, 0]]",
		"[[0, -1], [0, 0]]",
		"[[a, b]]",
		"not a board",
	} {
		_, err := Parse(lit)
		is.True(errors.Is(err, ErrMalformedBoard))
	}
}

func TestStringRoundTrip(t *testing.T) {
	is := is.New(t)
	b := Opening4x4.MustParse()
	is.Equal(b.String(), string(Opening4x4))
	b2, err := Parse(b.String())
	is.NoErr(err)
	is.True(b.Equal(b2))
}

func TestWithLeavesReceiverIntact(t *testing.T) {
	is := is.New(t)
	b := Opening4x4.MustParse()
	h := b.Hash()
	nb := b.With(0, 0, DarkDisk)
	is.Equal(b.At(0, 0), Empty)
	is.Equal(nb.At(0, 0), DarkDisk)
	is.Equal(b.Hash(), h)
	is.True(nb.Hash() != h)
}

func TestBuilder(t *testing.T) {
	is := is.New(t)
	b := New(2, 2)
	bl := NewBuilder(b)
	bl.Set(0, 0, DarkDisk)
	bl.Set(1, 1, LightDisk)
	nb := bl.Board()
	is.Equal(b.Count(Empty), 4)
	is.Equal(nb.Count(Empty), 2)
	is.Equal(nb.Count(DarkDisk), 1)
	is.Equal(nb.Count(LightDisk), 1)
}

func TestPlayers(t *testing.T) {
	is := is.New(t)
	is.Equal(Dark.Opponent(), Light)
	is.Equal(Light.Opponent(), Dark)
	is.Equal(Dark.Disk(), DarkDisk)
	p, err := PlayerFromInt(2)
	is.NoErr(err)
	is.Equal(p, Light)
	_, err = PlayerFromInt(3)
	is.True(err != nil)
	is.Equal(NoMove.String(), "-1 -1")
	is.True(NoMove.IsNoMove())
}

func TestHashIncludesLargeDimensions(t *testing.T) {
	is := is.New(t)
	// same cell count, and the low bytes of the dimensions match
	is.True(New(257, 1).Hash() != New(1, 257).Hash())
	is.True(New(256, 2).Hash() != New(2, 256).Hash())
	is.Equal(New(300, 2).Hash(), New(300, 2).Hash())
}
