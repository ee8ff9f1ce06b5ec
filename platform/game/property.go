package game

// Property is one square of the board. Its economics never change during a
// match; only the owner does.
type Property struct {
	Position int
	Name     string
	Price    int
	Rent     int

	owner *Player
}

// Owner returns the owning player or nil.
func (p *Property) Owner() *Player { return p.owner }

// IsAvailable reports whether nobody owns the property.
func (p *Property) IsAvailable() bool { return p.owner == nil }

// Purchase transfers the property to by, paying its price to the bank.
// It fails when the property is already owned or by cannot afford it.
func (p *Property) Purchase(by *Player) bool {
	if p.owner != nil || by.Balance() < p.Price {
		return false
	}
	by.Pay(p.Price)
	return by.AddProperty(p)
}

// CollectRent moves the rent from the lander to the owner and returns the
// amount moved. It is a no-op on an unowned square or when the owner lands
// on its own property. The payer may end up with a negative balance.
func (p *Property) CollectRent(from *Player) int {
	if p.owner == nil || p.owner == from {
		return 0
	}
	from.Pay(p.Rent)
	p.owner.Receive(p.Rent)
	return p.Rent
}
