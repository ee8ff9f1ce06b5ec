package cache

import (
	"github.com/DedS3t/monopoly-simulator/app/models"
	"github.com/DedS3t/monopoly-simulator/platform/game"
	"github.com/DedS3t/monopoly-simulator/platform/simulation"
	"github.com/gomodule/redigo/redis"
)

const (
	StatsKey = "monopoly.stats"

	fieldGames    = "games"
	fieldTurns    = "turns"
	fieldTimeouts = "timeouts"
	fieldNoWinner = "no_winner"
	winsPrefix    = "wins."
)

// Tally keeps running strategy totals in a Redis hash so they survive
// across requests and instances.
type Tally struct {
	pool *redis.Pool
	key  string
}

func NewTally(pool *redis.Pool) *Tally {
	return &Tally{pool: pool, key: StatsKey}
}

// RecordMatch adds one finished match.
func (t *Tally) RecordMatch(r game.Result) error {
	s := simulation.Summary{Total: 1, TotalTurns: r.Turns, Wins: map[string]int{}}
	if r.Timeout {
		s.TimeoutCount = 1
	}
	if r.Winner == nil {
		s.NoWinnerCount = 1
	} else {
		s.Wins[r.Winner.Behavior] = 1
	}
	return t.RecordSummary(s)
}

// RecordSummary adds a whole batch.
func (t *Tally) RecordSummary(s simulation.Summary) error {
	conn := t.pool.Get()
	defer conn.Close()
	return HINCRBYALL(t.key, summaryFields(s), &conn)
}

// Totals reads the running totals.
func (t *Tally) Totals() (models.StatsResponse, error) {
	conn := t.pool.Get()
	defer conn.Close()
	fields, err := HGETALL(t.key, &conn)
	if err != nil {
		return models.StatsResponse{}, err
	}
	return StatsFromFields(fields), nil
}

// Reset clears the running totals.
func (t *Tally) Reset() error {
	conn := t.pool.Get()
	defer conn.Close()
	return Del(t.key, &conn)
}

func summaryFields(s simulation.Summary) map[string]int {
	fields := map[string]int{
		fieldGames:    s.Total,
		fieldTurns:    s.TotalTurns,
		fieldTimeouts: s.TimeoutCount,
		fieldNoWinner: s.NoWinnerCount,
	}
	for name, wins := range s.Wins {
		if wins != 0 {
			fields[winsPrefix+name] = wins
		}
	}
	return fields
}

// StatsFromFields turns the raw hash into a response, every strategy
// included.
func StatsFromFields(fields map[string]int) models.StatsResponse {
	s := simulation.Summary{
		Total:         fields[fieldGames],
		TotalTurns:    fields[fieldTurns],
		TimeoutCount:  fields[fieldTimeouts],
		NoWinnerCount: fields[fieldNoWinner],
		Wins:          map[string]int{},
	}
	for _, b := range game.Behaviors {
		s.Wins[b.String()] = fields[winsPrefix+b.String()]
	}
	pct := map[string]float64{}
	for name, p := range s.WinPercentages() {
		pct[name] = p.Round(2).InexactFloat64()
	}
	return models.StatsResponse{
		Games:          s.Total,
		WinsByBehavior: s.Wins,
		WinPercentages: pct,
		AverageTurns:   s.AverageTurns().Round(2).InexactFloat64(),
		TimeoutCount:   s.TimeoutCount,
		NoWinnerCount:  s.NoWinnerCount,
	}
}
