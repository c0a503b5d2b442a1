package services

import (
	"errors"
	"strings"
	"time"

	"gorm.io/gorm"

	"github.com/dgf281219-blip/metodo/models"
	"github.com/dgf281219-blip/metodo/utils"
)

// catalogLimit bounds catalog and entry listings, mirroring the fixed
// fetch bound of the original surface.
const catalogLimit = 1000

// ErrFoodNotFound reports an unknown catalog id on add-meal.
var ErrFoodNotFound = errors.New("Food not found")

// MealTypes are the fixed buckets of the daily summary, in display order.
var MealTypes = []string{"cafe_manha", "almoco", "jantar", "lanche"}

type FoodService struct {
	db  *gorm.DB
	now func() time.Time
}

func NewFoodService(db *gorm.DB) *FoodService {
	return &FoodService{db: db, now: time.Now}
}

// ListFoods reads the catalog with an optional exact category filter and an
// optional case-insensitive substring name search.
func (s *FoodService) ListFoods(category, search string) ([]models.Food, error) {
	foods := []models.Food{}
	q := s.db.Limit(catalogLimit)
	if category != "" {
		q = q.Where("category = ?", category)
	}
	if search != "" {
		q = q.Where("LOWER(name) LIKE ?", "%"+strings.ToLower(search)+"%")
	}
	err := q.Find(&foods).Error
	return foods, err
}

type FoodEntryInput struct {
	MealType string  `json:"meal_type" binding:"required"`
	FoodID   string  `json:"food_id" binding:"required"`
	Portions float64 `json:"portions" binding:"required"`
}

// AddMeal appends an immutable entry for today and bumps the daily record's
// consumed counter. When no record exists yet for today the counter update
// is skipped; only the water path creates records implicitly.
func (s *FoodService) AddMeal(userID string, input FoodEntryInput) (*models.FoodEntry, error) {
	var food models.Food
	err := s.db.Where("food_id = ?", input.FoodID).First(&food).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrFoodNotFound
	}
	if err != nil {
		return nil, err
	}

	calories := utils.MealCalories(food.CaloriesPer100g, input.Portions)
	today := s.now().UTC().Format("2006-01-02")

	entry := models.FoodEntry{
		UserID:   userID,
		Date:     today,
		MealType: input.MealType,
		FoodID:   input.FoodID,
		FoodName: food.Name,
		Portions: input.Portions,
		Calories: calories,
	}
	if err := s.db.Create(&entry).Error; err != nil {
		return nil, err
	}

	var record models.DailyRecord
	err = s.db.Where("user_id = ? AND date = ?", userID, today).First(&record).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return &entry, nil
	}
	if err != nil {
		return nil, err
	}

	// Plain read-then-write; UpdateColumn leaves updated_at alone.
	err = s.db.Model(&record).
		UpdateColumn("calories_consumed", record.CaloriesConsumed+calories).Error
	if err != nil {
		return nil, err
	}
	return &entry, nil
}

// TodayFood groups today's entries into the four meal buckets plus a flat
// list and a running total.
type TodayFood struct {
	TotalCalories int                           `json:"total_calories"`
	ByMeal        map[string][]models.FoodEntry `json:"by_meal"`
	AllEntries    []models.FoodEntry            `json:"all_entries"`
}

func (s *FoodService) Today(userID string) (*TodayFood, error) {
	today := s.now().UTC().Format("2006-01-02")

	entries := []models.FoodEntry{}
	err := s.db.Where("user_id = ? AND date = ?", userID, today).
		Limit(catalogLimit).
		Find(&entries).Error
	if err != nil {
		return nil, err
	}

	byMeal := make(map[string][]models.FoodEntry, len(MealTypes))
	for _, mt := range MealTypes {
		byMeal[mt] = []models.FoodEntry{}
	}

	total := 0
	for _, entry := range entries {
		total += entry.Calories
		if _, ok := byMeal[entry.MealType]; ok {
			byMeal[entry.MealType] = append(byMeal[entry.MealType], entry)
		}
	}

	return &TodayFood{
		TotalCalories: total,
		ByMeal:        byMeal,
		AllEntries:    entries,
	}, nil
}
