package models

import "time"

type User struct {
	ID        uint       `gorm:"primaryKey" json:"-"`
	UserID    string     `gorm:"type:varchar(64);uniqueIndex;not null" json:"user_id"`
	Email     string     `gorm:"uniqueIndex;not null" json:"email"`
	Name      string     `json:"name"`
	Picture   *string    `json:"picture"`
	Age       *int       `json:"age"`
	Weight    *float64   `json:"weight"` // kg
	Height    *float64   `json:"height"` // cm
	Waist     *float64   `json:"waist"`  // cm
	Hip       *float64   `json:"hip"`    // cm
	Chest     *float64   `json:"chest"`  // cm
	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt *time.Time `gorm:"autoUpdateTime:false" json:"updated_at"`
}
