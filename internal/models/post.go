package models

import (
	"time"
)

// TitleMaxLength is what the add-post form advertises. It is not enforced.
const TitleMaxLength = 64

type Post struct {
	ID          int64     `json:"id" gorm:"primaryKey"`
	UserID      int64     `json:"userId" gorm:"index;not null"` // owner
	User        User      `json:"-" gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`
	Title       string    `json:"title" gorm:"not null"`
	Description string    `json:"description" gorm:"type:text;not null"`
	IsPrivate   bool      `json:"isPrivate" gorm:"not null"`
	CreatedAt   time.Time `json:"createdAt" gorm:"index;not null"`
	ExpiresAt   time.Time `json:"expiresAt" gorm:"index;not null"`
	Views       int64     `json:"views" gorm:"not null"`
	Code        string    `json:"code" gorm:"size:32;uniqueIndex"` // set right after the insert that assigns ID
}

// IsOwnedBy reports whether userID created the post.
func (p *Post) IsOwnedBy(userID int64) bool {
	return p.UserID == userID
}

// IsExpired reports whether the post's validity window has closed at now.
func (p *Post) IsExpired(now time.Time) bool {
	return !now.Before(p.ExpiresAt)
}
