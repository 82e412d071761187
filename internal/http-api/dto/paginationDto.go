package dto

// Pagination metadata returned with catalog listings.
type Pagination struct {
	Page       int   `json:"page"`
	Limit      int   `json:"limit"`
	Total      int64 `json:"total"`
	HasMore    bool  `json:"hasMore"`
	TotalPages int   `json:"totalPages"`
}

type PaginatedAnimeResponse struct {
	Animes     []AnimeResponse `json:"animes"`
	Pagination Pagination      `json:"pagination"`
}

func NewPaginatedAnimeResponse(animes []AnimeResponse, page, limit int, total int64) PaginatedAnimeResponse {
	totalPages := int(total) / limit
	if int(total)%limit != 0 {
		totalPages++
	}

	skip := (page - 1) * limit
	return PaginatedAnimeResponse{
		Animes: animes,
		Pagination: Pagination{
			Page:       page,
			Limit:      limit,
			Total:      total,
			HasMore:    int64(skip+len(animes)) < total,
			TotalPages: totalPages,
		},
	}
}
