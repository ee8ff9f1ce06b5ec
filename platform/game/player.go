package game

import (
	"fmt"

	"github.com/DedS3t/monopoly-simulator/app/models"
)

// Player is one automated participant. Holdings and each Property's owner
// field are only changed together through AddProperty and RemoveProperty.
type Player struct {
	Name     string
	Behavior Behavior

	balance  int
	position int
	active   bool
	holdings []*Property
	src      Source
}

// NewPlayer creates an active player at position 0.
func NewPlayer(name string, behavior Behavior, balance int, src Source) *Player {
	return &Player{
		Name:     name,
		Behavior: behavior,
		balance:  balance,
		active:   true,
		src:      src,
	}
}

func (p *Player) Balance() int  { return p.balance }
func (p *Player) Position() int { return p.position }
func (p *Player) Active() bool  { return p.active }

// Properties returns the holdings in acquisition order.
func (p *Player) Properties() []*Property {
	out := make([]*Property, len(p.holdings))
	copy(out, p.holdings)
	return out
}

// Roll throws a six-sided die.
func (p *Player) Roll() int {
	v := p.src.Intn(6) + 1
	if v < 1 || v > 6 {
		panic(fmt.Sprintf("game: die rolled %d", v))
	}
	return v
}

// CanAfford reports whether the balance covers prop's price.
func (p *Player) CanAfford(prop *Property) bool {
	return p.balance >= prop.Price
}

// Decide asks the bound strategy whether to buy prop.
func (p *Player) Decide(prop *Property) bool {
	return p.Behavior.ShouldBuy(prop, p.balance, p.src)
}

func (p *Player) Receive(amount int) { p.balance += amount }

// Pay debits amount. The balance may go negative; bankruptcy is the
// runner's call.
func (p *Player) Pay(amount int) { p.balance -= amount }

// AddProperty makes p the owner of prop. It fails if someone else owns it.
func (p *Player) AddProperty(prop *Property) bool {
	if prop.owner == p {
		return true
	}
	if prop.owner != nil {
		return false
	}
	prop.owner = p
	p.holdings = append(p.holdings, prop)
	return true
}

// RemoveProperty releases prop if p owns it.
func (p *Player) RemoveProperty(prop *Property) bool {
	if prop.owner != p {
		return false
	}
	for i, h := range p.holdings {
		if h == prop {
			p.holdings = append(p.holdings[:i], p.holdings[i+1:]...)
			break
		}
	}
	prop.owner = nil
	return true
}

// TotalAssets is the balance plus the price of every holding.
func (p *Player) TotalAssets() int {
	total := p.balance
	for _, h := range p.holdings {
		total += h.Price
	}
	return total
}

// bankrupt deactivates p and returns every holding to the bank.
func (p *Player) bankrupt() []*Property {
	released := p.Properties()
	for _, prop := range released {
		p.RemoveProperty(prop)
	}
	p.active = false
	return released
}

// Snapshot captures the current state for reporting.
func (p *Player) Snapshot() models.PlayerDto {
	names := make([]string, len(p.holdings))
	for i, h := range p.holdings {
		names[i] = h.Name
	}
	return models.PlayerDto{
		Name:            p.Name,
		Behavior:        p.Behavior.String(),
		Balance:         p.balance,
		Position:        p.position,
		PropertiesOwned: names,
		IsActive:        p.active,
		TotalAssets:     p.TotalAssets(),
	}
}
