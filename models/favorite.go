package models

import (
	"time"
)

// Favorite is a user's single collection of bookmarked posts. The unique
// index on user_id guarantees one collection per user even when two requests
// race through the first-or-create lookup; the composite primary key of the
// favorite_posts join table guards duplicate membership the same way.
type Favorite struct {
	ID        uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	UserID    uint      `gorm:"not null;uniqueIndex" json:"user_id"`
	Posts     []Post    `gorm:"many2many:favorite_posts" json:"posts"`
	CreatedAt time.Time `json:"created_at"`
}
