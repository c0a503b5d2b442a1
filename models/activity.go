package models

import "time"

// Activity is a catalog entry with the MET value used for calorie math.
type Activity struct {
	ID         uint    `gorm:"primaryKey" json:"-"`
	ActivityID string  `gorm:"type:varchar(16);uniqueIndex;not null" json:"activity_id"`
	Name       string  `gorm:"not null" json:"name"`
	METValue   float64 `json:"met_value"`
	Category   string  `gorm:"index" json:"category"`
}

// ActivityEntry is one logged exercise event, append-only.
type ActivityEntry struct {
	ID             uint      `gorm:"primaryKey" json:"-"`
	UserID         string    `gorm:"type:varchar(64);index:idx_activity_entries_user_date;not null" json:"user_id"`
	Date           string    `gorm:"type:varchar(10);index:idx_activity_entries_user_date;not null" json:"date"`
	ActivityID     string    `json:"activity_id"`
	ActivityName   string    `json:"activity_name"`
	Duration       int       `json:"duration"`  // minutes
	Intensity      string    `json:"intensity"` // baixa, media, alta
	CaloriesBurned int       `json:"calories_burned"`
	CreatedAt      time.Time `json:"created_at"`
}
