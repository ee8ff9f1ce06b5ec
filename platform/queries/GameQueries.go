package queries

import (
	"github.com/DedS3t/monopoly-simulator/app/models"
	"github.com/DedS3t/monopoly-simulator/platform/game"
	"github.com/DedS3t/monopoly-simulator/platform/simulation"
	"github.com/go-pg/pg/v10"
)

const MaxListLimit = 100

// History stores finished matches and batch summaries in PostgreSQL.
type History struct {
	db *pg.DB
}

func NewHistory(db *pg.DB) *History {
	return &History{db: db}
}

func (h *History) SaveMatch(id string, seed int64, r game.Result) error {
	_, err := h.db.Model(NewMatchRecord(id, seed, r)).Insert()
	return err
}

func (h *History) SaveBatch(id string, s simulation.Summary) error {
	_, err := h.db.Model(NewBatchRecord(id, s)).Insert()
	return err
}

// ListMatches returns the most recent matches first.
func (h *History) ListMatches(limit int) ([]models.MatchRecord, error) {
	var records []models.MatchRecord
	err := h.db.Model(&records).Order("created_at DESC").Limit(clampLimit(limit)).Select()
	return records, err
}

// ListBatches returns the most recent batches first.
func (h *History) ListBatches(limit int) ([]models.BatchRecord, error) {
	var records []models.BatchRecord
	err := h.db.Model(&records).Order("created_at DESC").Limit(clampLimit(limit)).Select()
	return records, err
}

func NewMatchRecord(id string, seed int64, r game.Result) *models.MatchRecord {
	return &models.MatchRecord{
		Id:         id,
		Seed:       seed,
		Winner:     r.WinnerName(),
		TotalTurns: r.Turns,
		Timeout:    r.Timeout,
		Standings:  r.Standings(),
	}
}

func NewBatchRecord(id string, s simulation.Summary) *models.BatchRecord {
	wins := make(map[string]int, len(s.Wins))
	for k, v := range s.Wins {
		wins[k] = v
	}
	return &models.BatchRecord{
		Id:               id,
		Seed:             s.Seed,
		TotalSimulations: s.Total,
		WinsByBehavior:   wins,
		AverageTurns:     s.AverageTurns().Round(2).InexactFloat64(),
		TimeoutCount:     s.TimeoutCount,
		NoWinnerCount:    s.NoWinnerCount,
	}
}

func clampLimit(limit int) int {
	if limit <= 0 || limit > MaxListLimit {
		return MaxListLimit
	}
	return limit
}
