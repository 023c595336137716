package models

import (
	"time"
)

type User struct {
	ID            uint           `gorm:"primaryKey;autoIncrement" json:"id"`
	CreatedAt     time.Time      `json:"created_at"`
	UpdatedAt     time.Time      `json:"-"`
	Name          string         `gorm:"not null" json:"name"`
	PhoneNumber   string         `gorm:"unique;not null" json:"phone_number"`
	Password      string         `gorm:"not null" json:"-"` // Don't expose password hash in JSON
	Posts         []Post         `json:"-" gorm:"foreignKey:UserID"`
	Comments      []Comment      `json:"-" gorm:"foreignKey:UserID"`
	Liked         []Liked        `json:"-" gorm:"foreignKey:UserID"`
	RefreshTokens []RefreshToken `json:"-" gorm:"foreignKey:UserID"`
}

// UserBrief is the author summary embedded in post, comment and rating views.
type UserBrief struct {
	ID   uint   `json:"id"`
	Name string `json:"name"`
}

func (u *User) Brief() UserBrief {
	return UserBrief{ID: u.ID, Name: u.Name}
}
