package search

import (
	"sort"

	"github.com/domino14/othello/board"
)

// A child is a move with the position it leads to, and that position's
// static value. It only lives for the duration of one node's search.
type child[B any] struct {
	move   board.Move
	pos    B
	static Utility
}

// orderChildren applies every move and sorts the results so the one that
// looks best for role after a single ply is searched first. Equal static
// values keep the oracle's order.
func orderChildren[B any](oracle Oracle[B], b B, role Role, moves []board.Move,
	stats *Stats) ([]child[B], error) {

	p := role.Player()
	children := make([]child[B], 0, len(moves))
	for _, m := range moves {
		pos, err := oracle.Apply(b, p, m)
		if err != nil {
			return nil, err
		}
		stats.Evaluations++
		children = append(children, child[B]{move: m, pos: pos, static: oracle.Evaluate(pos)})
	}
	obj := role.objective()
	sort.SliceStable(children, func(i, j int) bool {
		return obj.improves(children[i].static, children[j].static)
	})
	return children, nil
}
