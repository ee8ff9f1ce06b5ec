package simulation

import (
	"errors"
	"sync"
	"testing"

	"github.com/DedS3t/monopoly-simulator/app/models"
	"github.com/DedS3t/monopoly-simulator/platform/game"
	"github.com/shopspring/decimal"
)

func TestRunRejectsNonPositiveCount(t *testing.T) {
	for _, n := range []int{0, -1, -100} {
		called := false
		_, err := Run(n, Options{OnResult: func(game.Result) { called = true }})
		if !errors.Is(err, ErrInvalidCount) {
			t.Fatalf("Run(%d) error = %v, want ErrInvalidCount", n, err)
		}
		if called {
			t.Fatalf("Run(%d) played a match", n)
		}
	}
}

func TestRunHundredMatches(t *testing.T) {
	var mu sync.Mutex
	var turns []int
	s, err := Run(100, Options{
		Seed:    42,
		Workers: 4,
		OnResult: func(r game.Result) {
			mu.Lock()
			turns = append(turns, r.Turns)
			mu.Unlock()
		},
	})
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if s.Total != 100 || len(turns) != 100 {
		t.Fatalf("expected 100 matches, got total=%d results=%d", s.Total, len(turns))
	}
	if s.Seed != 42 {
		t.Fatalf("expected seed to be reported back, got %d", s.Seed)
	}

	wins := 0
	for _, b := range game.Behaviors {
		if _, ok := s.Wins[b.String()]; !ok {
			t.Fatalf("missing tally for %s", b)
		}
		wins += s.Wins[b.String()]
	}
	if wins+s.NoWinnerCount != s.Total {
		t.Fatalf("wins %d + no winner %d != %d", wins, s.NoWinnerCount, s.Total)
	}
	if s.NoWinnerCount > s.TimeoutCount {
		t.Fatalf("every match without a winner must have timed out")
	}

	sum := decimal.Zero
	for _, p := range s.WinPercentages() {
		sum = sum.Add(p)
	}
	if sum.GreaterThan(decimal.NewFromInt(100)) {
		t.Fatalf("percentages sum to %s", sum)
	}
	if s.NoWinnerCount > 0 && !sum.LessThan(decimal.NewFromInt(100)) {
		t.Fatalf("with undecided matches percentages must sum below 100, got %s", sum)
	}

	total := 0
	for _, n := range turns {
		total += n
	}
	want := decimal.NewFromInt(int64(total)).Div(decimal.NewFromInt(100))
	if !s.AverageTurns().Equal(want) {
		t.Fatalf("average turns %s, want %s", s.AverageTurns(), want)
	}
}

func TestRunIsDeterministicForSeed(t *testing.T) {
	a, err := Run(50, Options{Seed: 7, Workers: 1})
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	b, err := Run(50, Options{Seed: 7, Workers: 8})
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if a.TotalTurns != b.TotalTurns || a.TimeoutCount != b.TimeoutCount || a.NoWinnerCount != b.NoWinnerCount {
		t.Fatalf("same seed diverged: %+v vs %+v", a, b)
	}
	for k, v := range a.Wins {
		if b.Wins[k] != v {
			t.Fatalf("wins for %s diverged: %d vs %d", k, v, b.Wins[k])
		}
	}
}

func TestTimeoutsWithoutWinnerAreCounted(t *testing.T) {
	s, err := Run(10, Options{Seed: 1, MatchOptions: func(int64) []game.Option {
		return []game.Option{game.WithMaxTurns(4)}
	}})
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if s.TimeoutCount != 10 || s.NoWinnerCount != 10 {
		t.Fatalf("expected every match to time out without winner, got %+v", s)
	}
	for name, w := range s.Wins {
		if w != 0 {
			t.Fatalf("%s should have no wins, got %d", name, w)
		}
	}
	if !s.AverageTurns().Equal(decimal.NewFromInt(4)) {
		t.Fatalf("average turns %s, want 4", s.AverageTurns())
	}
}

func TestRunKeepsMatchSourcesPrivate(t *testing.T) {
	shared := game.NewSource(7)
	got, err := Run(200, Options{
		Seed:    1,
		Workers: 8,
		MatchOptions: func(int64) []game.Option {
			return []game.Option{game.WithSource(shared)}
		},
	})
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	want, err := Run(200, Options{Seed: 1, Workers: 1})
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if got.TotalTurns != want.TotalTurns || got.TimeoutCount != want.TimeoutCount {
		t.Fatalf("a caller source leaked into the batch: %+v vs %+v", got, want)
	}
}

func TestRunBuildsOptionsPerMatch(t *testing.T) {
	var mu sync.Mutex
	seeds := map[int64]int{}
	events := 0
	_, err := Run(50, Options{
		Seed:    9,
		Workers: 4,
		MatchOptions: func(seed int64) []game.Option {
			mu.Lock()
			seeds[seed]++
			mu.Unlock()
			count := 0
			return []game.Option{game.WithListener(game.ListenerFunc(func(game.Event) {
				count++
				if count == 1 {
					mu.Lock()
					events++
					mu.Unlock()
				}
			}))}
		},
	})
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	total := 0
	for _, n := range seeds {
		total += n
	}
	if total != 50 || events != 50 {
		t.Fatalf("expected 50 option builds and 50 narrated matches, got %d and %d", total, events)
	}
}

func TestPlaySeedOverridesSource(t *testing.T) {
	a := Play(5, game.WithSource(game.NewSource(99)))
	b := Play(5)
	if a.Turns != b.Turns || a.WinnerName() != b.WinnerName() {
		t.Fatalf("Play(5) depends on the caller's source: %d/%q vs %d/%q", a.Turns, a.WinnerName(), b.Turns, b.WinnerName())
	}
}

func TestTallyReduction(t *testing.T) {
	var a, b tally
	a.add(game.Result{Turns: 10, Winner: dto("Impulsive")})
	a.add(game.Result{Turns: 1000, Timeout: true})
	b.add(game.Result{Turns: 20, Winner: dto("Cautious")})
	b.add(game.Result{Turns: 1000, Timeout: true, Winner: dto("Random")})

	var total tally
	total.merge(a)
	total.merge(b)
	s := total.summary(3)

	if s.Total != 4 || s.TotalTurns != 2030 || s.TimeoutCount != 2 || s.NoWinnerCount != 1 {
		t.Fatalf("unexpected summary %+v", s)
	}
	if s.Wins["Impulsive"] != 1 || s.Wins["Cautious"] != 1 || s.Wins["Random"] != 1 || s.Wins["Demanding"] != 0 {
		t.Fatalf("unexpected wins %v", s.Wins)
	}
	if got := s.WinPercentage("Impulsive"); !got.Equal(decimal.NewFromInt(25)) {
		t.Fatalf("Impulsive percentage %s, want 25", got)
	}
	if got := s.AverageTurns(); !got.Equal(decimal.RequireFromString("507.5")) {
		t.Fatalf("average %s, want 507.5", got)
	}
}

func TestPercentage(t *testing.T) {
	tests := []struct {
		part, total int
		want        string
	}{
		{0, 0, "0"},
		{1, 4, "25"},
		{1, 3, "33.33"},
		{3, 3, "100"},
	}
	for _, tt := range tests {
		got := Percentage(tt.part, tt.total).Round(2)
		if !got.Equal(decimal.RequireFromString(tt.want)) {
			t.Fatalf("Percentage(%d, %d) = %s, want %s", tt.part, tt.total, got, tt.want)
		}
	}
}

func dto(behavior string) *models.PlayerDto {
	return &models.PlayerDto{Name: behavior, Behavior: behavior, IsActive: true}
}
