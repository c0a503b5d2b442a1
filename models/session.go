package models

import "time"

// UserSession maps an opaque bearer token to its owner. Rows are only
// removed on explicit logout; expiry is checked at lookup time.
type UserSession struct {
	ID           uint      `gorm:"primaryKey" json:"-"`
	UserID       string    `gorm:"type:varchar(64);index;not null" json:"user_id"`
	SessionToken string    `gorm:"index;not null" json:"session_token"`
	ExpiresAt    time.Time `gorm:"not null" json:"expires_at"`
	CreatedAt    time.Time `json:"created_at"`
}
