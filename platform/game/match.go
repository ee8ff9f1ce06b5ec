package game

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/DedS3t/monopoly-simulator/app/models"
)

const (
	MaxTurns        = 1000
	StartingBalance = 300
	LapBonus        = 100
)

type matchConfig struct {
	src       Source
	listener  Listener
	maxTurns  int
	balance   int
	props     []models.Property
	behaviors []Behavior
	strict    bool
	status    int
}

// Option configures a Match.
type Option func(*matchConfig)

// WithSource sets the random source shared by dice and coin flips.
func WithSource(src Source) Option {
	return func(c *matchConfig) { c.src = src }
}

// WithSeed seeds a private source.
func WithSeed(seed int64) Option {
	return func(c *matchConfig) { c.src = NewSource(seed) }
}

func WithListener(l Listener) Option {
	return func(c *matchConfig) { c.listener = l }
}

func WithMaxTurns(n int) Option {
	return func(c *matchConfig) { c.maxTurns = n }
}

func WithStartingBalance(balance int) Option {
	return func(c *matchConfig) { c.balance = balance }
}

// withProperties replaces the standard board. Only tests use it; every
// real match plays on the 20-square board.
func withProperties(props []models.Property) Option {
	return func(c *matchConfig) { c.props = props }
}

// WithRoster replaces the four standard players, one per behavior given.
func WithRoster(behaviors ...Behavior) Option {
	return func(c *matchConfig) { c.behaviors = behaviors }
}

// WithStatusEvery emits a status event with every player's state each n
// turns. Zero disables it.
func WithStatusEvery(n int) Option {
	return func(c *matchConfig) { c.status = n }
}

// WithStrict checks every invariant after each turn and panics on violation.
func WithStrict() Option {
	return func(c *matchConfig) { c.strict = true }
}

// Match drives one game from the initial state to a Result.
type Match struct {
	board    *Board
	players  []*Player
	listener Listener
	maxTurns int
	strict   bool
	status   int

	turns    int
	cursor   int
	started  bool
	finished bool
	result   Result
}

// NewMatch builds a match with the standard board and the four standard
// players unless options say otherwise.
func NewMatch(opts ...Option) *Match {
	cfg := matchConfig{
		listener:  nopListener{},
		maxTurns:  MaxTurns,
		balance:   StartingBalance,
		behaviors: Behaviors,
	}
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.src == nil {
		cfg.src = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	if cfg.maxTurns <= 0 {
		cfg.maxTurns = MaxTurns
	}

	var b *Board
	if cfg.props != nil {
		b = newBoard(cfg.props)
	} else {
		b = NewStandardBoard()
	}

	players := make([]*Player, len(cfg.behaviors))
	for i, behavior := range cfg.behaviors {
		players[i] = NewPlayer(behavior.String(), behavior, cfg.balance, cfg.src)
	}

	return &Match{
		board:    b,
		players:  players,
		listener: cfg.listener,
		maxTurns: cfg.maxTurns,
		strict:   cfg.strict,
		status:   cfg.status,
	}
}

func (m *Match) Board() *Board { return m.board }

// Players returns the roster in turn order, bankrupt players included.
func (m *Match) Players() []*Player {
	out := make([]*Player, len(m.players))
	copy(out, m.players)
	return out
}

func (m *Match) Turns() int     { return m.turns }
func (m *Match) Finished() bool { return m.finished }

// Run plays turns until the match ends.
func (m *Match) Run() Result {
	for m.Step() {
	}
	return m.result
}

// Step plays one turn. It returns false once the match has finished, in
// which case Result is final.
func (m *Match) Step() bool {
	if m.finished {
		return false
	}
	if !m.started {
		m.started = true
		m.emit(Event{Kind: EventMatchStart})
	}
	if m.ActiveCount() <= 1 || m.turns >= m.maxTurns {
		m.finish()
		return false
	}

	p := m.next()
	m.playTurn(p)
	m.turns++
	if m.status > 0 && m.turns%m.status == 0 {
		m.emit(Event{Kind: EventStatus, Turn: m.turns, Players: m.snapshots()})
	}

	if m.strict {
		if err := m.CheckInvariants(); err != nil {
			panic(fmt.Sprintf("game: turn %d: %v", m.turns, err))
		}
	}
	return true
}

// Result returns the outcome. It is only meaningful once Finished is true.
func (m *Match) Result() Result { return m.result }

// ActiveCount is the number of players not yet bankrupt.
func (m *Match) ActiveCount() int {
	n := 0
	for _, p := range m.players {
		if p.active {
			n++
		}
	}
	return n
}

// next returns the next active player in seating order. Bankrupt players keep
// their seat and are skipped.
func (m *Match) next() *Player {
	for range m.players {
		p := m.players[m.cursor]
		m.cursor = (m.cursor + 1) % len(m.players)
		if p.active {
			return p
		}
	}
	return nil
}

func (m *Match) playTurn(p *Player) {
	turn := m.turns + 1
	m.emit(Event{Kind: EventTurnStart, Turn: turn, Player: p.Name, Position: p.position, Balance: p.balance})

	roll := p.Roll()
	pos, wrapped := m.board.Advance(p.position, roll)
	p.position = pos
	m.emit(Event{Kind: EventDiceRolled, Turn: turn, Player: p.Name, Dice: roll, Position: pos, Balance: p.balance})
	if wrapped {
		p.Receive(LapBonus)
		m.emit(Event{Kind: EventLapBonus, Turn: turn, Player: p.Name, Position: pos, Amount: LapBonus, Balance: p.balance})
	}

	prop := m.board.PropertyAt(pos)
	switch owner := prop.Owner(); {
	case owner == nil:
		if p.CanAfford(prop) && p.Decide(prop) && prop.Purchase(p) {
			m.emit(Event{Kind: EventPurchase, Turn: turn, Player: p.Name, Position: pos, Property: prop.Name, Amount: prop.Price, Balance: p.balance})
		}
	case owner != p && owner.active:
		amount := prop.CollectRent(p)
		m.emit(Event{Kind: EventRent, Turn: turn, Player: p.Name, Position: pos, Property: prop.Name, Owner: owner.Name, Amount: amount, Balance: p.balance})
	}

	if p.balance < 0 {
		released := p.bankrupt()
		names := make([]string, len(released))
		for i, r := range released {
			names[i] = r.Name
		}
		m.emit(Event{Kind: EventBankruptcy, Turn: turn, Player: p.Name, Position: pos, Balance: p.balance, Released: names})
	}
}

func (m *Match) finish() {
	m.finished = true

	var winner *Player
	if m.ActiveCount() == 1 {
		for _, p := range m.players {
			if p.active {
				winner = p
			}
		}
	}

	res := Result{
		Turns:   m.turns,
		Timeout: m.turns >= m.maxTurns,
		Players: m.snapshots(),
	}
	if res.Timeout {
		m.emit(Event{Kind: EventTimeout, Turn: m.turns})
	}
	if winner != nil {
		snap := winner.Snapshot()
		res.Winner = &snap
		m.emit(Event{Kind: EventWinner, Turn: m.turns, Player: winner.Name, Position: winner.position, Balance: winner.balance})
	}
	m.result = res
}

func (m *Match) snapshots() []models.PlayerDto {
	out := make([]models.PlayerDto, len(m.players))
	for i, p := range m.players {
		out[i] = p.Snapshot()
	}
	return out
}

func (m *Match) emit(e Event) {
	m.listener.OnEvent(e)
}

// CheckInvariants verifies ownership is exclusive, holdings agree with
// owner fields, and bankrupt players hold nothing.
func (m *Match) CheckInvariants() error {
	holder := map[*Property]*Player{}
	for _, p := range m.players {
		if !p.active && len(p.holdings) > 0 {
			return fmt.Errorf("bankrupt %s still holds %d properties", p.Name, len(p.holdings))
		}
		for _, prop := range p.holdings {
			if other, ok := holder[prop]; ok {
				return fmt.Errorf("%s held by both %s and %s", prop.Name, other.Name, p.Name)
			}
			holder[prop] = p
			if prop.owner != p {
				return fmt.Errorf("%s is in %s's holdings but owned by %v", prop.Name, p.Name, ownerName(prop))
			}
		}
	}
	for _, prop := range m.board.properties {
		if prop.owner == nil {
			continue
		}
		if holder[prop] != prop.owner {
			return fmt.Errorf("%s owned by %s but missing from its holdings", prop.Name, prop.owner.Name)
		}
		if !prop.owner.active {
			return fmt.Errorf("%s owned by bankrupt %s", prop.Name, prop.owner.Name)
		}
	}
	return nil
}

func ownerName(prop *Property) string {
	if prop.owner == nil {
		return "nobody"
	}
	return prop.owner.Name
}
