package models

// PlayerDto is a player's state at the end of a match.
type PlayerDto struct {
	Name            string   `json:"name"`
	Behavior        string   `json:"behavior"`
	Balance         int      `json:"balance"`
	Position        int      `json:"position"`
	PropertiesOwned []string `json:"properties_owned"`
	IsActive        bool     `json:"is_active"`
	TotalAssets     int      `json:"total_assets"`
}

// Standing is one row of the final ranking, ordered by balance.
type Standing struct {
	Position        int    `json:"position"`
	Name            string `json:"name"`
	Balance         int    `json:"balance"`
	PropertiesCount int    `json:"properties_count"`
}
