package search

import (
	"fmt"
	"math"

	"github.com/domino14/othello/board"
)

// Utility is the value of a position. Positive favors Max.
type Utility int

const (
	MinUtility Utility = math.MinInt
	MaxUtility Utility = math.MaxInt
)

// A Role is one of the two fixed search roles. Max always maximizes and
// Min always minimizes; the mapping to players is fixed too.
type Role int8

const (
	Max Role = iota
	Min
)

func (r Role) String() string {
	if r == Max {
		return "max"
	}
	return "min"
}

func (r Role) Opponent() Role {
	if r == Max {
		return Min
	}
	return Max
}

// Player is the side that plays in this role: Max is dark, Min is light.
func (r Role) Player() board.Player {
	if r == Max {
		return board.Dark
	}
	return board.Light
}

// RoleOf returns the role played by p.
func RoleOf(p board.Player) (Role, error) {
	switch p {
	case board.Dark:
		return Max, nil
	case board.Light:
		return Min, nil
	}
	return 0, fmt.Errorf("no role for %v", p)
}

// An objective is the fold a role applies to its children's values.
type objective struct {
	// identity is the value before any child is seen.
	identity Utility
	// improves reports whether a is strictly better than b for this role.
	improves func(a, b Utility) bool
	// cutoff reports whether v makes the remaining siblings irrelevant
	// inside the (alpha, beta) window.
	cutoff func(v, alpha, beta Utility) bool
	// narrow tightens this role's side of the window with v.
	narrow func(v, alpha, beta Utility) (Utility, Utility)
}

var objectives = [...]objective{
	Max: {
		identity: MinUtility,
		improves: func(a, b Utility) bool { return a > b },
		cutoff:   func(v, alpha, beta Utility) bool { return v >= beta },
		narrow: func(v, alpha, beta Utility) (Utility, Utility) {
			return max(alpha, v), beta
		},
	},
	Min: {
		identity: MaxUtility,
		improves: func(a, b Utility) bool { return a < b },
		cutoff:   func(v, alpha, beta Utility) bool { return v <= alpha },
		narrow: func(v, alpha, beta Utility) (Utility, Utility) {
			return alpha, min(beta, v)
		},
	},
}

func (r Role) objective() *objective {
	return &objectives[r]
}

// fold combines the running value v with a child's value.
func (o *objective) fold(v, child Utility) Utility {
	if o.improves(child, v) {
		return child
	}
	return v
}
