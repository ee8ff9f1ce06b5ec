package game

import (
	"sort"

	"github.com/DedS3t/monopoly-simulator/app/models"
)

// Result is the outcome of a finished match.
type Result struct {
	// Winner is nil when the match timed out with more than one survivor.
	Winner  *models.PlayerDto `json:"winner"`
	Turns   int               `json:"total_turns"`
	Timeout bool              `json:"timeout"`
	// Players holds every player's final state in seating order.
	Players []models.PlayerDto `json:"players"`
}

// WinnerName returns the winner's name or "".
func (r Result) WinnerName() string {
	if r.Winner == nil {
		return ""
	}
	return r.Winner.Name
}

// Standings ranks players by final balance, highest first. Ties keep seating
// order.
func (r Result) Standings() []models.Standing {
	ranked := make([]models.PlayerDto, len(r.Players))
	copy(ranked, r.Players)
	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].Balance > ranked[j].Balance
	})
	out := make([]models.Standing, len(ranked))
	for i, p := range ranked {
		out[i] = models.Standing{
			Position:        i + 1,
			Name:            p.Name,
			Balance:         p.Balance,
			PropertiesCount: len(p.PropertiesOwned),
		}
	}
	return out
}
