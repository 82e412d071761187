package models

import "time"

// Vote is one row per (user, anime) pair. The composite unique index is
// what closes the duplicate-vote race between concurrent requests from
// the same user; the application-level existence check only exists to
// give a friendly error message.
type Vote struct {
	ID        int64     `json:"id" gorm:"primaryKey;autoIncrement"`
	UserID    string    `json:"user_id" gorm:"type:uuid;not null;uniqueIndex:idx_votes_user_anime"`
	AnimeID   int64     `json:"anime_id" gorm:"not null;uniqueIndex:idx_votes_user_anime;index"`
	CreatedAt time.Time `json:"created_at" gorm:"autoCreateTime"`

	// Associations
	User  User  `json:"user,omitempty" gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE;"`
	Anime Anime `json:"anime,omitempty" gorm:"foreignKey:AnimeID;constraint:OnDelete:CASCADE;"`
}

func (Vote) TableName() string {
	return "votes"
}
