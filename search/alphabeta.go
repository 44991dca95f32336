package search

import "math"

// Unbounded is a depth limit that is never reached.
const Unbounded = math.MaxInt

// AlphaBeta is minimax with alpha-beta pruning, one-ply move ordering and
// an optional depth limit. Past the limit a position's static value is used
// as is; there is no quiescence search.
type AlphaBeta[B any] struct {
	oracle Oracle[B]
	stats  Stats
}

func NewAlphaBeta[B any](oracle Oracle[B]) *AlphaBeta[B] {
	return &AlphaBeta[B]{oracle: oracle}
}

func (s *AlphaBeta[B]) Stats() Stats {
	return s.stats
}

// Value searches b with role to move inside the (alpha, beta) window.
// depth is the depth of b itself; once it exceeds limit, b is evaluated
// statically.
//
// The result is exact when it lies strictly inside the window. A Max node
// that returns a value >= beta, or a Min node that returns a value <= alpha,
// stopped early: its true value is at least (respectively at most) the one
// returned.
func (s *AlphaBeta[B]) Value(b B, role Role, alpha, beta Utility, depth, limit int) (Utility, error) {
	s.stats.enter(depth)
	if depth > limit {
		s.stats.Evaluations++
		return s.oracle.Evaluate(b), nil
	}
	moves, err := s.oracle.Moves(b, role.Player())
	if err != nil {
		return 0, err
	}
	if len(moves) == 0 {
		s.stats.Evaluations++
		return s.oracle.Evaluate(b), nil
	}
	s.stats.Expanded++

	children, err := orderChildren(s.oracle, b, role, moves, &s.stats)
	if err != nil {
		return 0, err
	}
	obj := role.objective()
	v := obj.identity
	for _, c := range children {
		cv, err := s.Value(c.pos, role.Opponent(), alpha, beta, depth+1, limit)
		if err != nil {
			return 0, err
		}
		v = obj.fold(v, cv)
		if obj.cutoff(v, alpha, beta) {
			s.stats.Cutoffs++
			return v, nil
		}
		alpha, beta = obj.narrow(v, alpha, beta)
	}
	return v, nil
}
