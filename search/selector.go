package search

import (
	"fmt"
	"strings"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/domino14/othello/board"
)

const (
	// RootDepth is the depth of the root's children. The root's own ply does
	// not count against the depth limit.
	RootDepth = 2
	// DefaultDepthLimit searches six plies past the root.
	DefaultDepthLimit = 6
)

type Engine int

const (
	EngineMinimax Engine = iota
	EngineAlphaBeta
)

func (e Engine) String() string {
	switch e {
	case EngineMinimax:
		return "minimax"
	case EngineAlphaBeta:
		return "alphabeta"
	}
	return fmt.Sprintf("engine(%d)", int(e))
}

func ParseEngine(s string) (Engine, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "minimax", "mm":
		return EngineMinimax, nil
	case "alphabeta", "ab":
		return EngineAlphaBeta, nil
	}
	return 0, fmt.Errorf("unknown engine %q", s)
}

// Config picks the engine used to value the root's moves. DepthLimit only
// applies to alpha-beta; zero or less means unbounded.
type Config struct {
	Engine     Engine
	DepthLimit int
}

func DefaultConfig() Config {
	return Config{Engine: EngineAlphaBeta, DepthLimit: DefaultDepthLimit}
}

func (c Config) limit() int {
	if c.DepthLimit <= 0 {
		return Unbounded
	}
	return c.DepthLimit
}

func (c Config) String() string {
	if c.Engine == EngineMinimax {
		return c.Engine.String()
	}
	if c.DepthLimit <= 0 {
		return c.Engine.String() + "/unbounded"
	}
	return fmt.Sprintf("%v/%d", c.Engine, c.DepthLimit)
}

// A Decision is the move chosen for the root and the value the engine gave
// it. Move is board.NoMove if the root had no legal moves.
type Decision struct {
	Move  board.Move
	Value Utility
	Stats Stats
}

// Selector chooses a move for a position.
type Selector[B any] struct {
	oracle Oracle[B]
	cfg    Config
}

func NewSelector[B any](oracle Oracle[B], cfg Config) *Selector[B] {
	return &Selector[B]{oracle: oracle, cfg: cfg}
}

// SelectMove returns the best move for role at b, or board.NoMove.
func SelectMove[B any](oracle Oracle[B], b B, role Role, cfg Config) (board.Move, error) {
	d, err := NewSelector(oracle, cfg).Select(b, role)
	if err != nil {
		return board.NoMove, err
	}
	return d.Move, nil
}

// Select values every legal move at b for role, in the oracle's order, and
// returns the first move that reaches the best value. A later move with the
// same value never replaces an earlier one.
func (s *Selector[B]) Select(b B, role Role) (Decision, error) {
	log.Debug().
		Str("engine", s.cfg.Engine.String()).
		Int("depth-limit", s.cfg.DepthLimit).
		Str("role", role.String()).
		Msg("select-move-config")
	tstart := time.Now()
	if s.cfg.Engine != EngineMinimax && s.cfg.Engine != EngineAlphaBeta {
		return Decision{Move: board.NoMove}, fmt.Errorf("unknown engine %v", s.cfg.Engine)
	}

	p := role.Player()
	moves, err := s.oracle.Moves(b, p)
	if err != nil {
		return Decision{Move: board.NoMove}, fmt.Errorf("enumerating root moves: %w", err)
	}
	if len(moves) == 0 {
		log.Debug().Str("role", role.String()).Msg("select-move-no-moves")
		return Decision{Move: board.NoMove, Value: s.oracle.Evaluate(b)}, nil
	}

	mm := NewMinimax(s.oracle)
	ab := NewAlphaBeta(s.oracle)
	valueOf := func(child B, r Role) (Utility, error) {
		if s.cfg.Engine == EngineMinimax {
			return mm.value(child, r, RootDepth)
		}
		// Every root move gets the full window so its value is exact.
		return ab.Value(child, r, MinUtility, MaxUtility, RootDepth, s.cfg.limit())
	}

	obj := role.objective()
	v := obj.identity
	prev := v
	d := Decision{Move: board.NoMove}
	for _, m := range moves {
		child, err := s.oracle.Apply(b, p, m)
		if err != nil {
			return Decision{Move: board.NoMove}, fmt.Errorf("applying %v: %w", m, err)
		}
		cv, err := valueOf(child, role.Opponent())
		if err != nil {
			return Decision{Move: board.NoMove}, err
		}
		v = obj.fold(v, cv)
		if v != prev {
			d.Move = m
			prev = v
		}
		log.Debug().Str("move", m.String()).Int("value", int(cv)).Msg("root-move-valued")
	}
	if d.Move.IsNoMove() {
		// Every move came back with the identity value itself; the first
		// one reaches it.
		d.Move = moves[0]
	}
	d.Value = v
	d.Stats = mm.Stats()
	d.Stats.add(ab.Stats())

	log.Debug().
		Str("move", d.Move.String()).
		Int("value", int(d.Value)).
		Int("nodes", d.Stats.Nodes).
		Int("cutoffs", d.Stats.Cutoffs).
		Float64("time-elapsed-sec", time.Since(tstart).Seconds()).
		Msg("select-move-returning")
	return d, nil
}
