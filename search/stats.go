package search

import "fmt"

// Stats counts the work done by one search.
type Stats struct {
	// Nodes is the number of calls to an engine's recursive function.
	Nodes int
	// Expanded is the number of nodes whose moves were searched.
	Expanded int
	// Evaluations is the number of static evaluations, including the ones
	// used only for move ordering.
	Evaluations int
	Cutoffs     int
	// DeepestPly is the largest depth at which a node was entered. The
	// position a move is selected for is depth 1, its children depth 2.
	DeepestPly int
}

func (s *Stats) enter(ply int) {
	s.Nodes++
	if ply > s.DeepestPly {
		s.DeepestPly = ply
	}
}

func (s *Stats) add(o Stats) {
	s.Nodes += o.Nodes
	s.Expanded += o.Expanded
	s.Evaluations += o.Evaluations
	s.Cutoffs += o.Cutoffs
	s.DeepestPly = max(s.DeepestPly, o.DeepestPly)
}

func (s Stats) String() string {
	return fmt.Sprintf("<nodes: %d expanded: %d evals: %d cutoffs: %d deepest: %d>",
		s.Nodes, s.Expanded, s.Evaluations, s.Cutoffs, s.DeepestPly)
}
