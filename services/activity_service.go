package services

import (
	"errors"
	"time"

	"gorm.io/gorm"

	"github.com/dgf281219-blip/metodo/models"
	"github.com/dgf281219-blip/metodo/utils"
)

// ErrActivityNotFound reports an unknown catalog id on add.
var ErrActivityNotFound = errors.New("Activity not found")

type ActivityService struct {
	db  *gorm.DB
	now func() time.Time
}

func NewActivityService(db *gorm.DB) *ActivityService {
	return &ActivityService{db: db, now: time.Now}
}

// ListActivities reads the catalog with an optional exact category filter.
func (s *ActivityService) ListActivities(category string) ([]models.Activity, error) {
	activities := []models.Activity{}
	q := s.db.Limit(catalogLimit)
	if category != "" {
		q = q.Where("category = ?", category)
	}
	err := q.Find(&activities).Error
	return activities, err
}

type ActivityEntryInput struct {
	ActivityID string `json:"activity_id" binding:"required"`
	Duration   int    `json:"duration" binding:"required"` // minutes
	Intensity  string `json:"intensity" binding:"required"`
}

// Add appends an immutable entry for today and bumps the daily record's
// burned counter, with the same skip-when-absent rule as the food path.
func (s *ActivityService) Add(userID string, input ActivityEntryInput) (*models.ActivityEntry, error) {
	var activity models.Activity
	err := s.db.Where("activity_id = ?", input.ActivityID).First(&activity).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrActivityNotFound
	}
	if err != nil {
		return nil, err
	}

	caloriesBurned := utils.ActivityCalories(activity.METValue, input.Intensity, input.Duration)
	today := s.now().UTC().Format("2006-01-02")

	entry := models.ActivityEntry{
		UserID:         userID,
		Date:           today,
		ActivityID:     input.ActivityID,
		ActivityName:   activity.Name,
		Duration:       input.Duration,
		Intensity:      input.Intensity,
		CaloriesBurned: caloriesBurned,
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

	err = s.db.Model(&record).
		UpdateColumn("calories_burned", record.CaloriesBurned+caloriesBurned).Error
	if err != nil {
		return nil, err
	}
	return &entry, nil
}

type TodayActivity struct {
	TotalCaloriesBurned int                    `json:"total_calories_burned"`
	Entries             []models.ActivityEntry `json:"entries"`
}

func (s *ActivityService) Today(userID string) (*TodayActivity, error) {
	today := s.now().UTC().Format("2006-01-02")

	entries := []models.ActivityEntry{}
	err := s.db.Where("user_id = ? AND date = ?", userID, today).
		Limit(catalogLimit).
		Find(&entries).Error
	if err != nil {
		return nil, err
	}

	total := 0
	for _, entry := range entries {
		total += entry.CaloriesBurned
	}

	return &TodayActivity{
		TotalCaloriesBurned: total,
		Entries:             entries,
	}, nil
}
