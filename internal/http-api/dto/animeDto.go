package dto

import (
	"time"

	"animevote/internal/http-api/models"
)

// CreateAnimeDTO used for POST /api/animes
type CreateAnimeDTO struct {
	Title         string   `json:"title" binding:"required"`
	Description   string   `json:"description" binding:"required"`
	ImageURL      string   `json:"image_url"`
	TotalEpisodes *int     `json:"total_episodes,omitempty"`
	Genres        []string `json:"genres,omitempty"`
}

// UpdateAnimeDTO used for PUT /api/animes/:anime_id (partial updates allowed)
type UpdateAnimeDTO struct {
	Title          *string  `json:"title,omitempty"`
	Description    *string  `json:"description,omitempty"`
	ImageURL       *string  `json:"image_url,omitempty"`
	CurrentEpisode *int     `json:"current_episode,omitempty"`
	TotalEpisodes  *int     `json:"total_episodes,omitempty"`
	Status         *string  `json:"status,omitempty"`
	Genres         []string `json:"genres,omitempty"`
}

// AnimeResponse DTO for responses
type AnimeResponse struct {
	ID             int64     `json:"id"`
	Title          string    `json:"title"`
	Description    string    `json:"description"`
	ImageURL       string    `json:"image_url"`
	CurrentEpisode int       `json:"current_episode"`
	TotalEpisodes  *int      `json:"total_episodes,omitempty"`
	Status         string    `json:"status"`
	Votes          int64     `json:"votes"`
	Genres         []string  `json:"genres,omitempty"`
	AddedBy        string    `json:"added_by,omitempty"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}

// Converters
func (d CreateAnimeDTO) ToModel() models.Anime {
	return models.Anime{
		Title:         d.Title,
		Description:   d.Description,
		ImageURL:      d.ImageURL,
		TotalEpisodes: d.TotalEpisodes,
		Status:        models.StatusPlanning,
	}
}

func (d UpdateAnimeDTO) ApplyTo(a *models.Anime) {
	if d.Title != nil {
		a.Title = *d.Title
	}
	if d.Description != nil {
		a.Description = *d.Description
	}
	if d.ImageURL != nil {
		a.ImageURL = *d.ImageURL
	}
	if d.CurrentEpisode != nil {
		a.CurrentEpisode = *d.CurrentEpisode
	}
	if d.TotalEpisodes != nil {
		a.TotalEpisodes = d.TotalEpisodes
	}
	if d.Status != nil {
		a.Status = *d.Status
	}
}

func FromModelToResponse(a models.Anime) AnimeResponse {
	genres := make([]string, 0, len(a.Genres))
	for _, g := range a.Genres {
		genres = append(genres, g.Name)
	}
	return AnimeResponse{
		ID:             a.ID,
		Title:          a.Title,
		Description:    a.Description,
		ImageURL:       a.ImageURL,
		CurrentEpisode: a.CurrentEpisode,
		TotalEpisodes:  a.TotalEpisodes,
		Status:         a.Status,
		Votes:          a.VoteCount,
		Genres:         genres,
		AddedBy:        a.AddedBy,
		CreatedAt:      a.CreatedAt,
		UpdatedAt:      a.UpdatedAt,
	}
}
