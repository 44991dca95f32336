package search

import (
	"os"
	"testing"

	"github.com/rs/zerolog"
	"lukechampine.com/frand"

	"github.com/domino14/othello/board"
)

func TestMain(m *testing.M) {
	zerolog.SetGlobalLevel(zerolog.InfoLevel)
	os.Exit(m.Run())
}

// A node is a position in a synthetic game tree. Its static value is what
// the oracle's Evaluate returns; its children are reached by moves
// (i, 0) for child i.
type node struct {
	id        int
	static    Utility
	children  []*node
	malformed bool
}

// treeOracle serves a synthetic tree and records which nodes were asked
// for their moves, in order.
type treeOracle struct {
	expanded []int
	applies  int
	evals    int
}

func (o *treeOracle) Moves(n *node, p board.Player) ([]board.Move, error) {
	if n.malformed {
		return nil, board.ErrMalformedBoard
	}
	o.expanded = append(o.expanded, n.id)
	moves := make([]board.Move, len(n.children))
	for i := range n.children {
		moves[i] = board.Move{Col: i, Row: 0}
	}
	return moves, nil
}

func (o *treeOracle) Apply(n *node, p board.Player, m board.Move) (*node, error) {
	o.applies++
	return n.children[m.Col], nil
}

func (o *treeOracle) Evaluate(n *node) Utility {
	o.evals++
	return n.static
}

type treeBuilder struct {
	nextID int
}

func (tb *treeBuilder) node(static Utility, children ...*node) *node {
	tb.nextID++
	return &node{id: tb.nextID, static: static, children: children}
}

// leaves makes a node whose children are leaves with the given values.
func (tb *treeBuilder) leaves(static Utility, values ...Utility) *node {
	children := make([]*node, len(values))
	for i, v := range values {
		children[i] = tb.node(v)
	}
	return tb.node(static, children...)
}

func (tb *treeBuilder) random(rng *frand.RNG, depth, maxBranch int) *node {
	n := tb.node(Utility(rng.Intn(41) - 20))
	if depth == 0 {
		return n
	}
	nchildren := rng.Intn(maxBranch + 1)
	for i := 0; i < nchildren; i++ {
		n.children = append(n.children, tb.random(rng, depth-1, maxBranch))
	}
	return n
}

func seededRNG(seed byte) *frand.RNG {
	s := make([]byte, 32)
	s[0] = seed
	return frand.NewCustom(s, 1024, 12)
}
