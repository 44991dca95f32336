package search

import "github.com/domino14/othello/board"

// An Oracle knows the rules of the game. The search never looks inside a
// position of type B; it only enumerates moves, applies them, and asks for a
// static value.
//
// Moves must return the same order for the same position and player, since
// the order decides ties. Apply must not modify b. Evaluate must be defined
// for every position, finished or not.
type Oracle[B any] interface {
	Moves(b B, p board.Player) ([]board.Move, error)
	Apply(b B, p board.Player, m board.Move) (B, error)
	Evaluate(b B) Utility
}
