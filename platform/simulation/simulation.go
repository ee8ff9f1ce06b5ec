// Package simulation runs many independent matches and reduces their
// outcomes into per-strategy statistics.
package simulation

import (
	"errors"
	"math/rand"
	"runtime"
	"sync"
	"time"

	"github.com/DedS3t/monopoly-simulator/platform/game"
	"github.com/shopspring/decimal"
)

// ErrInvalidCount is returned for a non-positive number of simulations.
var ErrInvalidCount = errors.New("simulation count must be positive")

// Options tunes a batch run.
type Options struct {
	// Workers defaults to runtime.NumCPU().
	Workers int
	// Seed derives every match seed. Zero picks one from the clock; the seed
	// actually used is reported in Summary.Seed.
	Seed int64
	// OnResult, if set, is called once per finished match. Calls are
	// serialized but arrive in completion order.
	OnResult func(game.Result)
	// MatchOptions, if set, builds the extra options of each match from its
	// seed. It runs on worker goroutines, so anything it returns must be
	// owned by that match. The random source is always private to the match.
	MatchOptions func(seed int64) []game.Option
}

// Summary is the reduction of a batch. It is not mutated after Run returns.
type Summary struct {
	Seed          int64
	Total         int
	Wins          map[string]int
	TotalTurns    int
	TimeoutCount  int
	NoWinnerCount int
}

// WinPercentage is wins / total * 100 for behavior.
func (s Summary) WinPercentage(behavior string) decimal.Decimal {
	return Percentage(s.Wins[behavior], s.Total)
}

// WinPercentages maps every behavior to its win percentage.
func (s Summary) WinPercentages() map[string]decimal.Decimal {
	out := make(map[string]decimal.Decimal, len(s.Wins))
	for name := range s.Wins {
		out[name] = s.WinPercentage(name)
	}
	return out
}

// AverageTurns is the mean turn count over every match, timeouts included.
func (s Summary) AverageTurns() decimal.Decimal {
	if s.Total == 0 {
		return decimal.Zero
	}
	return decimal.NewFromInt(int64(s.TotalTurns)).Div(decimal.NewFromInt(int64(s.Total)))
}

// Percentage returns part / total * 100, or zero when total is zero.
func Percentage(part, total int) decimal.Decimal {
	if total == 0 {
		return decimal.Zero
	}
	return decimal.NewFromInt(int64(part) * 100).Div(decimal.NewFromInt(int64(total)))
}

// Run plays n independent matches across a worker pool. Each match owns its
// board, players and random source; workers keep private tallies that are
// merged once all matches are done.
func Run(n int, opts Options) (Summary, error) {
	if n <= 0 {
		return Summary{}, ErrInvalidCount
	}
	workers := opts.Workers
	if workers <= 0 {
		workers = runtime.NumCPU()
	}
	if workers > n {
		workers = n
	}
	seed := opts.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	jobs := make(chan int64, n)
	rng := rand.New(rand.NewSource(seed))
	for i := 0; i < n; i++ {
		jobs <- rng.Int63()
	}
	close(jobs)

	tallies := make([]tally, workers)
	var mu sync.Mutex
	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func(t *tally) {
			defer wg.Done()
			for matchSeed := range jobs {
				var extra []game.Option
				if opts.MatchOptions != nil {
					extra = opts.MatchOptions(matchSeed)
				}
				res := Play(matchSeed, extra...)
				t.add(res)
				if opts.OnResult != nil {
					mu.Lock()
					opts.OnResult(res)
					mu.Unlock()
				}
			}
		}(&tallies[w])
	}
	wg.Wait()

	var total tally
	for _, t := range tallies {
		total.merge(t)
	}
	return total.summary(seed), nil
}

// Play runs one match with a private source seeded by seed. The seed wins
// over any source in opts.
func Play(seed int64, opts ...game.Option) game.Result {
	all := make([]game.Option, 0, len(opts)+1)
	all = append(all, opts...)
	all = append(all, game.WithSeed(seed))
	return game.NewMatch(all...).Run()
}

type tally struct {
	games    int
	turns    int
	timeouts int
	noWinner int
	wins     map[string]int
}

func (t *tally) add(r game.Result) {
	if t.wins == nil {
		t.wins = map[string]int{}
	}
	t.games++
	t.turns += r.Turns
	if r.Timeout {
		t.timeouts++
	}
	if r.Winner == nil {
		t.noWinner++
		return
	}
	t.wins[r.Winner.Behavior]++
}

func (t *tally) merge(o tally) {
	if t.wins == nil {
		t.wins = map[string]int{}
	}
	t.games += o.games
	t.turns += o.turns
	t.timeouts += o.timeouts
	t.noWinner += o.noWinner
	for k, v := range o.wins {
		t.wins[k] += v
	}
}

func (t tally) summary(seed int64) Summary {
	wins := make(map[string]int, len(game.Behaviors))
	for _, b := range game.Behaviors {
		wins[b.String()] = 0
	}
	for k, v := range t.wins {
		wins[k] += v
	}
	return Summary{
		Seed:          seed,
		Total:         t.games,
		Wins:          wins,
		TotalTurns:    t.turns,
		TimeoutCount:  t.timeouts,
		NoWinnerCount: t.noWinner,
	}
}
