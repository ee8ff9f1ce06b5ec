package models

import "time"

type MatchResponse struct {
	Id             string      `json:"id"`
	Seed           int64       `json:"seed"`
	Winner         *string     `json:"winner"`
	TotalTurns     int         `json:"total_turns"`
	Timeout        bool        `json:"timeout"`
	Players        []PlayerDto `json:"players"`
	FinalStandings []Standing  `json:"final_standings"`
}

type SimulationsResponse struct {
	Id               string             `json:"id"`
	Seed             int64              `json:"seed"`
	TotalSimulations int                `json:"total_simulations"`
	WinsByBehavior   map[string]int     `json:"wins_by_behavior"`
	WinPercentages   map[string]float64 `json:"win_percentages"`
	AverageTurns     float64            `json:"average_turns"`
	TimeoutCount     int                `json:"timeout_count"`
	NoWinnerCount    int                `json:"no_winner_count"`
}

// StatsResponse holds the running totals across every simulation this
// deployment has recorded.
type StatsResponse struct {
	Games          int                `json:"games"`
	WinsByBehavior map[string]int     `json:"wins_by_behavior"`
	WinPercentages map[string]float64 `json:"win_percentages"`
	AverageTurns   float64            `json:"average_turns"`
	TimeoutCount   int                `json:"timeout_count"`
	NoWinnerCount  int                `json:"no_winner_count"`
}

// MatchRecord is a single simulated match kept in the history table.
type MatchRecord struct {
	tableName struct{} `pg:"matches"`

	Id         string     `pg:",pk" json:"id"`
	Seed       int64      `json:"seed"`
	Winner     string     `json:"winner"`
	TotalTurns int        `pg:",use_zero" json:"total_turns"`
	Timeout    bool       `pg:",use_zero" json:"timeout"`
	Standings  []Standing `json:"final_standings"`
	CreatedAt  time.Time  `pg:"default:now()" json:"created_at"`
}

// BatchRecord is the summary of one batch run kept in the history table.
type BatchRecord struct {
	tableName struct{} `pg:"batches"`

	Id               string         `pg:",pk" json:"id"`
	Seed             int64          `json:"seed"`
	TotalSimulations int            `json:"total_simulations"`
	WinsByBehavior   map[string]int `json:"wins_by_behavior"`
	AverageTurns     float64        `pg:",use_zero" json:"average_turns"`
	TimeoutCount     int            `pg:",use_zero" json:"timeout_count"`
	NoWinnerCount    int            `pg:",use_zero" json:"no_winner_count"`
	CreatedAt        time.Time      `pg:"default:now()" json:"created_at"`
}
