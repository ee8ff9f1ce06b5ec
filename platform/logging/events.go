package logging

import (
	"github.com/DedS3t/monopoly-simulator/platform/game"
	"github.com/sirupsen/logrus"
)

// EventLogger writes the narrative of a match, one line per event.
type EventLogger struct {
	entry *logrus.Entry
}

// NewEventLogger logs through entry, typically carrying a match id field.
func NewEventLogger(entry *logrus.Entry) *EventLogger {
	return &EventLogger{entry: entry}
}

func (l *EventLogger) OnEvent(e game.Event) {
	log := l.entry.WithFields(logrus.Fields{
		"event": e.Kind.String(),
		"turn":  e.Turn,
	})
	if e.Player != "" {
		log = log.WithFields(logrus.Fields{"player": e.Player, "balance": e.Balance})
	}

	switch e.Kind {
	case game.EventMatchStart:
		log.Info("match started")
	case game.EventTurnStart:
		log.WithField("position", e.Position).Debug("turn started")
	case game.EventDiceRolled:
		log.WithFields(logrus.Fields{"dice": e.Dice, "position": e.Position}).Debug("rolled dice")
	case game.EventLapBonus:
		log.WithField("amount", e.Amount).Debug("completed a lap")
	case game.EventPurchase:
		log.WithFields(logrus.Fields{"property": e.Property, "amount": e.Amount}).Debug("bought property")
	case game.EventRent:
		log.WithFields(logrus.Fields{"property": e.Property, "owner": e.Owner, "amount": e.Amount}).Debug("paid rent")
	case game.EventBankruptcy:
		log.WithField("released", e.Released).Info("went bankrupt")
	case game.EventWinner:
		log.Info("won the match")
	case game.EventTimeout:
		log.Warn("turn limit reached")
	case game.EventStatus:
		for _, p := range e.Players {
			log.WithFields(logrus.Fields{
				"player":     p.Name,
				"balance":    p.Balance,
				"position":   p.Position,
				"properties": len(p.PropertiesOwned),
				"active":     p.IsActive,
			}).Debug("status")
		}
	}
}
