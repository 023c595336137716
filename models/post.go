package models

import (
	"time"
)

type Post struct {
	ID          uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	Title       string    `gorm:"not null" json:"title"`
	Description string    `gorm:"not null" json:"description"`
	Content     string    `gorm:"type:text;not null" json:"content"`
	Image       string    `json:"image,omitempty"`
	UserID      uint      `gorm:"not null;index" json:"-"`
	User        User      `gorm:"foreignKey:UserID" json:"user"`
	Comments    []Comment `json:"-" gorm:"foreignKey:PostID"`
	Liked       []Liked   `json:"-" gorm:"foreignKey:PostID"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"-"`
}
