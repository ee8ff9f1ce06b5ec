package models

// Property is the static economics of one board square.
type Property struct {
	Name     string `json:"name"`
	Position int    `json:"position"`
	Price    int    `json:"sale_cost"`
	Rent     int    `json:"rent_value"`
}
