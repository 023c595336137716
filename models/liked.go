package models

import (
	"time"
)

// Liked is a per-user rating of a post. The composite unique index is the
// mechanism that keeps ratings at most once per (post, user) pair; concurrent
// writers that both observe "absent" are resolved by the database, not by
// application code.
type Liked struct {
	ID           uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	PostID       uint      `gorm:"column:post_id;not null;uniqueIndex:idx_liked_post_user" json:"post"`
	UserID       uint      `gorm:"column:user_id;not null;uniqueIndex:idx_liked_post_user" json:"-"`
	User         User      `gorm:"foreignKey:UserID" json:"user"`
	Grade        int       `gorm:"not null" json:"grade"`
	PeoplesGrade int       `gorm:"not null;default:1" json:"peoples_grade"`
	CreatedAt    time.Time `gorm:"autoCreateTime" json:"created_at"`
}

const (
	MinGrade = 0
	MaxGrade = 10
)
