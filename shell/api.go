package shell

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/rs/zerolog/log"
	"github.com/samber/lo"

	"github.com/domino14/othello/automatic"
	"github.com/domino14/othello/board"
	"github.com/domino14/othello/config"
	"github.com/domino14/othello/othello"
	"github.com/domino14/othello/search"
)

type Response struct {
	message string
}

type CmdOptions map[string]string

func (c CmdOptions) String(key string) string {
	return c[key]
}

func (c CmdOptions) Int(key string) (int, error) {
	v, ok := c[key]
	if !ok {
		return 0, errors.New(key + " not found in options")
	}
	return strconv.Atoi(v)
}

func (c CmdOptions) IntDefault(key string, defaultI int) (int, error) {
	if _, ok := c[key]; !ok {
		return defaultI, nil
	}
	return c.Int(key)
}

func msg(message string) *Response {
	return &Response{message: message}
}

// settable lists the config keys the set command may change.
var settable = []string{
	config.ConfigEngine, config.ConfigDepthLimit, config.ConfigBoardSize,
	config.ConfigAutoplayGames, config.ConfigAutoplayThreads, config.ConfigAutoplayFile,
}

func (sc *ShellController) needBoard() error {
	if !sc.loaded {
		return errors.New("please start a game first with the `new` or `load` command")
	}
	return nil
}

func (sc *ShellController) setBoard(b board.Board, toMove board.Player) {
	sc.curBoard = b
	sc.toMove = toMove
	sc.loaded = true
	log.Debug().Str("board", b.String()).Str("to-move", toMove.String()).Msg("set-board")
}

func (sc *ShellController) newGame(cmd *shellcmd) (*Response, error) {
	size := sc.config.GetInt(config.ConfigBoardSize)
	if len(cmd.args) > 0 {
		var err error
		size, err = strconv.Atoi(cmd.args[0])
		if err != nil {
			return nil, err
		}
	}
	b, err := othello.NewBoard(size)
	if err != nil {
		return nil, err
	}
	sc.setBoard(b, board.Dark)
	return sc.show(cmd)
}

// load takes a board literal. Its spaces may be left unquoted; the
// arguments are joined back together.
func (sc *ShellController) load(cmd *shellcmd) (*Response, error) {
	if len(cmd.args) == 0 {
		return nil, errors.New("need a board literal, e.g. load [[0, 1], [2, 0]]")
	}
	b, err := board.Parse(strings.Join(cmd.args, " "))
	if err != nil {
		return nil, err
	}
	if !b.IsSquare() {
		return nil, fmt.Errorf("%w: board is %dx%d", board.ErrMalformedBoard, b.Cols(), b.Rows())
	}
	toMove := board.Dark
	switch cmd.options.String("turn") {
	case "", "dark", "1":
	case "light", "2":
		toMove = board.Light
	default:
		return nil, fmt.Errorf("turn must be dark or light, got %v", cmd.options.String("turn"))
	}
	sc.setBoard(b, toMove)
	return sc.show(cmd)
}

func (sc *ShellController) statusLine() (string, error) {
	dark, light := othello.Score(sc.curBoard)
	over, err := othello.GameOver(sc.curBoard)
	if err != nil {
		return "", err
	}
	if over {
		return fmt.Sprintf("game over; dark %d light %d", dark, light), nil
	}
	return fmt.Sprintf("%v to move; dark %d light %d", sc.toMove, dark, light), nil
}

func (sc *ShellController) show(cmd *shellcmd) (*Response, error) {
	if err := sc.needBoard(); err != nil {
		return nil, err
	}
	status, err := sc.statusLine()
	if err != nil {
		return nil, err
	}
	return msg(sc.curBoard.ToDisplayText() + status + "\n" + sc.curBoard.String()), nil
}

func (sc *ShellController) moves(cmd *shellcmd) (*Response, error) {
	if err := sc.needBoard(); err != nil {
		return nil, err
	}
	moves, err := sc.rules.Moves(sc.curBoard, sc.toMove)
	if err != nil {
		return nil, err
	}
	if len(moves) == 0 {
		return msg(fmt.Sprintf("%v has no moves and must pass", sc.toMove)), nil
	}
	var rowErr error
	rows := lo.Map(moves, func(m board.Move, idx int) string {
		after, err := sc.rules.Apply(sc.curBoard, sc.toMove, m)
		if err != nil {
			rowErr = err
			return ""
		}
		return fmt.Sprintf("%3d: %-8s%d", idx+1, m.String(), sc.rules.Evaluate(after))
	})
	if rowErr != nil {
		return nil, rowErr
	}
	return msg("     Move    Eval\n" + strings.Join(rows, "\n")), nil
}

// advance applies a move or a pass for the side to move.
func (sc *ShellController) advance(m board.Move) (*Response, error) {
	if !m.IsNoMove() {
		b, err := sc.rules.Apply(sc.curBoard, sc.toMove, m)
		if err != nil {
			return nil, err
		}
		sc.curBoard = b
	}
	log.Debug().Str("player", sc.toMove.String()).Str("move", m.String()).Msg("played-move")
	sc.toMove = sc.toMove.Opponent()
	return sc.show(&shellcmd{cmd: "show"})
}

func (sc *ShellController) play(cmd *shellcmd) (*Response, error) {
	if err := sc.needBoard(); err != nil {
		return nil, err
	}
	if len(cmd.args) != 2 {
		return nil, errors.New("usage: play <col> <row>")
	}
	col, err := strconv.Atoi(cmd.args[0])
	if err != nil {
		return nil, err
	}
	row, err := strconv.Atoi(cmd.args[1])
	if err != nil {
		return nil, err
	}
	return sc.advance(board.Move{Col: col, Row: row})
}

func (sc *ShellController) pass(cmd *shellcmd) (*Response, error) {
	if err := sc.needBoard(); err != nil {
		return nil, err
	}
	moves, err := sc.rules.Moves(sc.curBoard, sc.toMove)
	if err != nil {
		return nil, err
	}
	if len(moves) > 0 {
		return nil, fmt.Errorf("%v has %d legal moves and cannot pass", sc.toMove, len(moves))
	}
	return sc.advance(board.NoMove)
}

// searchOptions applies -engine and -limit on top of the shell's settings.
func (sc *ShellController) searchOptions(opts CmdOptions) (search.Config, error) {
	cfg := sc.searchCfg
	if e := opts.String("engine"); e != "" {
		engine, err := search.ParseEngine(e)
		if err != nil {
			return cfg, err
		}
		cfg.Engine = engine
	}
	limit, err := opts.IntDefault("limit", cfg.DepthLimit)
	if err != nil {
		return cfg, err
	}
	if limit < 0 {
		return cfg, fmt.Errorf("limit must not be negative, got %d", limit)
	}
	cfg.DepthLimit = limit
	return cfg, nil
}

func (sc *ShellController) best(cmd *shellcmd) (*Response, error) {
	if err := sc.needBoard(); err != nil {
		return nil, err
	}
	cfg, err := sc.searchOptions(cmd.options)
	if err != nil {
		return nil, err
	}
	role, err := search.RoleOf(sc.toMove)
	if err != nil {
		return nil, err
	}
	d, err := search.NewSelector[board.Board](sc.rules, cfg).Select(sc.curBoard, role)
	if err != nil {
		return nil, err
	}
	if d.Move.IsNoMove() {
		return msg(fmt.Sprintf("%v has no moves and must pass", sc.toMove)), nil
	}
	return msg(fmt.Sprintf("best move for %v: %v (value %d, %v)\n%v",
		sc.toMove, d.Move, d.Value, cfg, d.Stats.String())), nil
}

func (sc *ShellController) eval(cmd *shellcmd) (*Response, error) {
	if err := sc.needBoard(); err != nil {
		return nil, err
	}
	dark, light := othello.Score(sc.curBoard)
	return msg(fmt.Sprintf("evaluation: %d (dark %d, light %d)",
		sc.rules.Evaluate(sc.curBoard), dark, light)), nil
}

func (sc *ShellController) set(cmd *shellcmd) (*Response, error) {
	if len(cmd.args) == 0 {
		lines := lo.Map(settable, func(k string, _ int) string {
			return fmt.Sprintf("%-18s%v", k, sc.config.Get(k))
		})
		return msg(strings.Join(lines, "\n")), nil
	}
	key := cmd.args[0]
	if !lo.Contains(settable, key) {
		return nil, fmt.Errorf("%v is not a setting; try one of %v", key, strings.Join(settable, ", "))
	}
	if len(cmd.args) == 1 {
		return msg(fmt.Sprintf("%v", sc.config.Get(key))), nil
	}
	value := cmd.args[1]
	old := sc.config.Get(key)
	sc.config.Set(key, value)
	searchCfg, err := sc.config.SearchConfig()
	if err == nil && key == config.ConfigBoardSize {
		_, err = othello.NewBoard(sc.config.GetInt(key))
	}
	if err != nil {
		sc.config.Set(key, old)
		return nil, err
	}
	sc.searchCfg = searchCfg
	return msg("set " + key + " to " + value), nil
}

// parseContestant reads "random", or an engine with an optional depth
// limit such as "alphabeta/3".
func parseContestant(name, spec string) (automatic.Contestant, error) {
	if spec == "random" {
		return automatic.Contestant{Name: name + "-random", Random: true}, nil
	}
	engineStr, limitStr, hasLimit := strings.Cut(spec, "/")
	engine, err := search.ParseEngine(engineStr)
	if err != nil {
		return automatic.Contestant{}, err
	}
	cfg := search.Config{Engine: engine}
	if hasLimit {
		cfg.DepthLimit, err = strconv.Atoi(limitStr)
		if err != nil {
			return automatic.Contestant{}, err
		}
	}
	return automatic.Contestant{Name: name + "-" + cfg.String(), Search: cfg}, nil
}

// autoplayRunning reports whether a match started by this shell has not
// finished yet.
func (sc *ShellController) autoplayRunning() bool {
	if sc.autoplayDone == nil {
		return false
	}
	select {
	case <-sc.autoplayDone:
		return false
	default:
		return true
	}
}

func (sc *ShellController) autoplay(cmd *shellcmd) (*Response, error) {
	logfile := cmd.options.String("file")
	if logfile == "" {
		logfile = sc.config.GetString(config.ConfigAutoplayFile)
	}
	if len(cmd.args) > 0 {
		switch cmd.args[0] {
		case "stop":
			if !sc.autoplayRunning() {
				return nil, errors.New("automatic game runner is not running")
			}
			sc.autoplayCancel()
			return msg("stopping automatic games"), nil
		case "analyze":
			analysis, err := automatic.AnalyzeLogFile(logfile)
			if err != nil {
				return nil, err
			}
			return msg(analysis), nil
		}
		return nil, fmt.Errorf("autoplay does not understand %v", cmd.args[0])
	}
	if sc.autoplayRunning() || automatic.IsPlaying.Value() > 0 {
		return nil, errors.New("automatic game runner is already running; autoplay stop first")
	}

	opts := automatic.Options{}
	var err error
	if opts.Size, err = cmd.options.IntDefault("size", sc.config.GetInt(config.ConfigBoardSize)); err != nil {
		return nil, err
	}
	if opts.Games, err = cmd.options.IntDefault("games", sc.config.GetInt(config.ConfigAutoplayGames)); err != nil {
		return nil, err
	}
	if opts.Threads, err = cmd.options.IntDefault("threads", sc.config.GetInt(config.ConfigAutoplayThreads)); err != nil {
		return nil, err
	}
	if _, err = othello.NewBoard(opts.Size); err != nil {
		return nil, err
	}
	cfg, err := sc.searchOptions(cmd.options)
	if err != nil {
		return nil, err
	}
	opts.Contestants[0] = automatic.Contestant{Name: "p1-" + cfg.String(), Search: cfg}
	vs := cmd.options.String("vs")
	if vs == "" {
		vs = "random"
	}
	if opts.Contestants[1], err = parseContestant("p2", vs); err != nil {
		return nil, err
	}

	f, err := os.Create(logfile)
	if err != nil {
		return nil, err
	}
	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	sc.autoplayCancel = cancel
	sc.autoplayDone = done
	go func() {
		defer close(done)
		defer f.Close()
		summary, err := automatic.PlayGames(ctx, opts, f)
		if err != nil && !errors.Is(err, context.Canceled) {
			log.Err(err).Msg("autoplay-error")
			return
		}
		log.Info().Str("summary", summary.String()).Str("file", logfile).Msg("autoplay-done")
	}()
	return msg(fmt.Sprintf("playing %d games of %v vs %v, logging to %v",
		opts.Games, opts.Contestants[0], opts.Contestants[1], logfile)), nil
}
