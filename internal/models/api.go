package models

// CompareRequest is the payload for the upstream comparison endpoint.
type CompareRequest struct {
	Player1 string `json:"player1" validate:"required"`
	Player2 string `json:"player2" validate:"required"`
}

// ComparisonResult carries both players' recomputed stat mappings.
type ComparisonResult struct {
	Player1Stats StatMap `json:"player1_stats"`
	Player2Stats StatMap `json:"player2_stats"`
}
