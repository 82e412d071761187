package dto

import "time"

// RankedAnime is an anime plus its leaderboard position. Ranks are
// positional (1, 2, 3, ...), ties get distinct sequential ranks.
type RankedAnime struct {
	AnimeResponse
	Rank int `json:"rank"`
}

// LeaderboardResponse: envelope for GET /api/leaderboard/top
type LeaderboardResponse struct {
	Success bool          `json:"success"`
	Data    []RankedAnime `json:"data"`
	Message string        `json:"message"`
}

// LeaderboardDataResponse: envelope for the overlay data feed, adds a
// timestamp so the overlay can show freshness
type LeaderboardDataResponse struct {
	Success   bool          `json:"success"`
	Data      []RankedAnime `json:"data"`
	Message   string        `json:"message"`
	Timestamp time.Time     `json:"timestamp"`
	Total     int           `json:"total"`
}
