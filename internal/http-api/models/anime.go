package models

import "time"

// Anime statuses mirror the curation lifecycle of a watch list.
const (
	StatusPlanning  = "planning"
	StatusWatching  = "watching"
	StatusPaused    = "paused"
	StatusCompleted = "completed"
)

type Anime struct {
	ID             int64     `json:"id" gorm:"primaryKey;autoIncrement"`
	Title          string    `json:"title" gorm:"not null"`
	Description    string    `json:"description" gorm:"not null"`
	ImageURL       string    `json:"image_url"`
	CurrentEpisode int       `json:"current_episode" gorm:"not null;default:0;check:current_episode >= 0"`
	TotalEpisodes  *int      `json:"total_episodes,omitempty"` // nil = unknown length
	Status         string    `json:"status" gorm:"not null;default:'planning'"`
	VoteCount      int64     `json:"votes" gorm:"not null;default:0"`
	AddedBy        string    `json:"added_by" gorm:"type:uuid"`
	CreatedAt      time.Time `json:"created_at" gorm:"autoCreateTime"`
	UpdatedAt      time.Time `json:"updated_at" gorm:"autoUpdateTime"`

	// association
	Genres []Genre `json:"genres,omitempty" gorm:"many2many:anime_genres;constraint:OnDelete:CASCADE;"`
}

func (Anime) TableName() string {
	return "animes"
}

// ValidStatus reports whether s is one of the known anime statuses.
func ValidStatus(s string) bool {
	switch s {
	case StatusPlanning, StatusWatching, StatusPaused, StatusCompleted:
		return true
	}
	return false
}
