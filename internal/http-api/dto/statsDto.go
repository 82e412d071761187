package dto

// StatsResponse: site-wide counters for the public stats endpoint
type StatsResponse struct {
	TotalUsers  int64 `json:"totalUsers"`
	TotalAnimes int64 `json:"totalAnimes"`
	TotalVotes  int64 `json:"totalVotes"`
	ActiveUsers int64 `json:"activeUsers"` // distinct voters in the last 30 days
}
