package automatic

// Data collection for automatic games.

import (
	"context"
	"errors"
	"expvar"
	"fmt"
	"io"

	"github.com/rs/zerolog/log"
	"golang.org/x/sync/errgroup"
)

var (
	CVCCounter *expvar.Int
	IsPlaying  *expvar.Int
)

func init() {
	CVCCounter = expvar.NewInt("cvcCounter")
	IsPlaying = expvar.NewInt("isPlaying")
}

const LogHeader = "gameID,dark,light,darkDisks,lightDisks,turns,passes,winner\n"

// Options configures a match. Contestants swap colors every game; the
// first contestant plays dark in odd-numbered games.
type Options struct {
	Size        int
	Games       int
	Threads     int
	Contestants [2]Contestant
}

// Summary tallies a match.
type Summary struct {
	Games          int
	Wins           map[string]int
	Draws          int
	DistinctFinals int
}

func (s *Summary) String() string {
	return fmt.Sprintf("games: %d wins: %v draws: %d distinct-finals: %d",
		s.Games, s.Wins, s.Draws, s.DistinctFinals)
}

func logLine(res GameResult) string {
	winner := res.Winner()
	if winner == "" {
		winner = "draw"
	}
	return fmt.Sprintf("%d,%s,%s,%d,%d,%d,%d,%s\n", res.GameID, res.DarkName,
		res.LightName, res.Dark, res.Light, res.Turns, res.Passes, winner)
}

// PlayGames plays a match on opts.Threads workers and writes one CSV line
// per finished game to logw. If ctx is cancelled, no new games are started;
// the games already running finish and are counted.
func PlayGames(ctx context.Context, opts Options, logw io.Writer) (*Summary, error) {
	if opts.Contestants[0].Name == opts.Contestants[1].Name {
		return nil, errors.New("contestants need different names")
	}
	if opts.Threads < 1 {
		opts.Threads = 1
	}
	if IsPlaying.Value() > 0 {
		return nil, errors.New("games are already being played, please wait till complete")
	}
	IsPlaying.Add(1)
	defer IsPlaying.Add(-1)
	log.Debug().Msgf("Starting %v games, %v threads", opts.Games, opts.Threads)

	summary := &Summary{Wins: map[string]int{
		opts.Contestants[0].Name: 0,
		opts.Contestants[1].Name: 0,
	}}
	results := make(chan GameResult, 100)
	writerDone := make(chan error, 1)
	go func() {
		finals := map[uint64]bool{}
		_, err := io.WriteString(logw, LogHeader)
		for res := range results {
			summary.Games++
			if w := res.Winner(); w == "" {
				summary.Draws++
			} else {
				summary.Wins[w]++
			}
			finals[res.FinalHash] = true
			if err == nil {
				_, err = io.WriteString(logw, logLine(res))
			}
		}
		summary.DistinctFinals = len(finals)
		writerDone <- err
		log.Debug().Msg("Exiting game logger goroutine!")
	}()

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(opts.Threads)
gameLoop:
	for i := 1; i <= opts.Games; i++ {
		select {
		case <-gctx.Done():
			log.Info().Msg("Got stop signal, exiting soon...")
			break gameLoop
		default:
		}
		id := i
		g.Go(func() error {
			dark, light := opts.Contestants[0], opts.Contestants[1]
			if id%2 == 0 {
				dark, light = light, dark
			}
			res, err := NewGameRunner(opts.Size, dark, light).PlayGame(id)
			if err != nil {
				return err
			}
			CVCCounter.Add(1)
			results <- res
			return nil
		})
	}
	err := g.Wait()
	close(results)
	if werr := <-writerDone; err == nil {
		err = werr
	}
	if err == nil {
		err = ctx.Err()
	}
	log.Info().Str("summary", summary.String()).Msg("All games finished.")
	return summary, err
}
