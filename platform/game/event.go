package game

import "github.com/DedS3t/monopoly-simulator/app/models"

// EventKind names a significant transition of a match.
type EventKind int

const (
	EventMatchStart EventKind = iota
	EventTurnStart
	EventDiceRolled
	EventLapBonus
	EventPurchase
	EventRent
	EventBankruptcy
	EventWinner
	EventTimeout
	EventStatus
)

var eventNames = [...]string{
	EventMatchStart: "match_start",
	EventTurnStart:  "turn_start",
	EventDiceRolled: "dice_rolled",
	EventLapBonus:   "lap_bonus",
	EventPurchase:   "purchase",
	EventRent:       "rent",
	EventBankruptcy: "bankruptcy",
	EventWinner:     "winner",
	EventTimeout:    "timeout",
	EventStatus:     "status",
}

func (k EventKind) String() string {
	if k < 0 || int(k) >= len(eventNames) {
		return "unknown"
	}
	return eventNames[k]
}

func (k EventKind) MarshalText() ([]byte, error) { return []byte(k.String()), nil }

// Event describes one transition. Fields that do not apply to Kind are zero.
type Event struct {
	Kind     EventKind `json:"kind"`
	Turn     int       `json:"turn"`
	Player   string    `json:"player,omitempty"`
	Dice     int       `json:"dice,omitempty"`
	Position int       `json:"position"`
	Property string    `json:"property,omitempty"`
	Owner    string    `json:"owner,omitempty"`
	Amount   int       `json:"amount,omitempty"`
	Balance  int       `json:"balance"`
	Released []string  `json:"released,omitempty"`
	// Players is set on status events, in seating order.
	Players []models.PlayerDto `json:"players,omitempty"`
}

// Listener receives match events synchronously on the match goroutine.
type Listener interface {
	OnEvent(Event)
}

// ListenerFunc adapts a function to Listener.
type ListenerFunc func(Event)

func (f ListenerFunc) OnEvent(e Event) { f(e) }

type nopListener struct{}

func (nopListener) OnEvent(Event) {}

// Listeners fans an event out to each listener in order.
type Listeners []Listener

func (ls Listeners) OnEvent(e Event) {
	for _, l := range ls {
		l.OnEvent(e)
	}
}
