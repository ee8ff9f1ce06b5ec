package game

import "fmt"

// Behavior is a player's purchase strategy.
type Behavior int

const (
	Impulsive Behavior = iota
	Demanding
	Cautious
	Random
)

// Behaviors lists every strategy in roster order.
var Behaviors = []Behavior{Impulsive, Demanding, Cautious, Random}

const (
	// DemandingMinRent is the rent a demanding player requires, exclusive.
	DemandingMinRent = 50
	// CautiousReserve is the balance a cautious player keeps after buying.
	CautiousReserve = 80
)

func (b Behavior) String() string {
	switch b {
	case Impulsive:
		return "Impulsive"
	case Demanding:
		return "Demanding"
	case Cautious:
		return "Cautious"
	case Random:
		return "Random"
	default:
		return fmt.Sprintf("Behavior(%d)", int(b))
	}
}

// ShouldBuy decides whether to buy prop holding balance. Only Random draws
// from src.
func (b Behavior) ShouldBuy(prop *Property, balance int, src Source) bool {
	switch b {
	case Impulsive:
		return true
	case Demanding:
		return prop.Rent > DemandingMinRent
	case Cautious:
		return balance-prop.Price >= CautiousReserve
	case Random:
		return src.Intn(2) == 0
	default:
		return false
	}
}
