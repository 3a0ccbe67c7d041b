package models

import (
	"time"
)

// User is keyed by the numeric subject of the caller's token, so the id
// is never generated by the database.
type User struct {
	ID        int64     `json:"id" gorm:"primaryKey;autoIncrement:false"`
	Username  string    `json:"username" gorm:"not null;default:''"`
	CreatedAt time.Time `json:"createdAt" gorm:"autoCreateTime"`
	UpdatedAt time.Time `json:"updatedAt" gorm:"autoUpdateTime"`
}
