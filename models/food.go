package models

import "time"

// Food is a catalog entry, seeded once and immutable afterwards.
type Food struct {
	ID              uint   `gorm:"primaryKey" json:"-"`
	FoodID          string `gorm:"type:varchar(16);uniqueIndex;not null" json:"food_id"`
	Name            string `gorm:"not null" json:"name"`
	Category        string `gorm:"index" json:"category"`
	CaloriesPer100g int    `json:"calories_per_100g"`
	DetoxFriendly   bool   `json:"detox_friendly"`
}

// FoodEntry is one logged consumption event. Entries are append-only and
// carry a snapshot of the food name plus the derived calorie value.
type FoodEntry struct {
	ID        uint      `gorm:"primaryKey" json:"-"`
	UserID    string    `gorm:"type:varchar(64);index:idx_food_entries_user_date;not null" json:"user_id"`
	Date      string    `gorm:"type:varchar(10);index:idx_food_entries_user_date;not null" json:"date"`
	MealType  string    `json:"meal_type"` // cafe_manha, almoco, jantar, lanche
	FoodID    string    `json:"food_id"`
	FoodName  string    `json:"food_name"`
	Portions  float64   `json:"portions"` // grams
	Calories  int       `json:"calories"`
	CreatedAt time.Time `json:"created_at"`
}
