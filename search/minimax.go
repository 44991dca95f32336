package search

// Minimax computes exact game-theoretic values by searching every line to
// the end of the game. There is no pruning and no depth limit, so it is
// only practical for small positions.
type Minimax[B any] struct {
	oracle Oracle[B]
	stats  Stats
}

func NewMinimax[B any](oracle Oracle[B]) *Minimax[B] {
	return &Minimax[B]{oracle: oracle}
}

// Value returns the value of b with role to move, assuming best play by
// both sides.
func (m *Minimax[B]) Value(b B, role Role) (Utility, error) {
	return m.value(b, role, 1)
}

func (m *Minimax[B]) Stats() Stats {
	return m.stats
}

func (m *Minimax[B]) value(b B, role Role, depth int) (Utility, error) {
	m.stats.enter(depth)
	p := role.Player()
	moves, err := m.oracle.Moves(b, p)
	if err != nil {
		return 0, err
	}
	// A side with no legal move ends the search here, whether or not the
	// game would allow a pass.
	if len(moves) == 0 {
		m.stats.Evaluations++
		return m.oracle.Evaluate(b), nil
	}
	m.stats.Expanded++

	obj := role.objective()
	v := obj.identity
	for _, mv := range moves {
		child, err := m.oracle.Apply(b, p, mv)
		if err != nil {
			return 0, err
		}
		cv, err := m.value(child, role.Opponent(), depth+1)
		if err != nil {
			return 0, err
		}
		v = obj.fold(v, cv)
	}
	return v, nil
}
