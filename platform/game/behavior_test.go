package game

import "testing"

func TestBehaviorShouldBuy(t *testing.T) {
	cheap := &Property{Name: "cheap", Price: 100, Rent: 50}
	lucrative := &Property{Name: "lucrative", Price: 100, Rent: 51}

	tests := []struct {
		name     string
		behavior Behavior
		prop     *Property
		balance  int
		src      Source
		want     bool
	}{
		{"impulsive always buys", Impulsive, cheap, 100, nil, true},
		{"demanding rejects rent 50", Demanding, cheap, 1000, nil, false},
		{"demanding accepts rent 51", Demanding, lucrative, 1000, nil, true},
		{"cautious keeps exactly 80", Cautious, cheap, 180, nil, true},
		{"cautious rejects 79 left", Cautious, cheap, 179, nil, false},
		{"random heads", Random, cheap, 300, &scriptedSource{values: []int{0}}, true},
		{"random tails", Random, cheap, 300, &scriptedSource{values: []int{1}}, false},
		{"unknown behavior", Behavior(9), cheap, 300, nil, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.behavior.ShouldBuy(tt.prop, tt.balance, tt.src); got != tt.want {
				t.Fatalf("ShouldBuy = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestRandomBehaviorIsRoughlyFair(t *testing.T) {
	src := NewSource(7)
	prop := &Property{Price: 10, Rent: 1}
	buys := 0
	const n = 10000
	for i := 0; i < n; i++ {
		if Random.ShouldBuy(prop, 300, src) {
			buys++
		}
	}
	if buys < 4700 || buys > 5300 {
		t.Fatalf("expected about half of %d decisions to buy, got %d", n, buys)
	}
}

func TestBehaviorString(t *testing.T) {
	want := []string{"Impulsive", "Demanding", "Cautious", "Random"}
	for i, b := range Behaviors {
		if b.String() != want[i] {
			t.Fatalf("Behaviors[%d] = %q, want %q", i, b, want[i])
		}
	}
}
