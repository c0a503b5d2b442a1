package services

import (
	log "github.com/sirupsen/logrus"
	"gorm.io/gorm"

	"github.com/dgf281219-blip/metodo/models"
)

// SeedCatalogs populates the food and activity catalogs from the fixed
// tables. It runs once before serving traffic and is idempotent: a catalog
// that already has rows is left alone.
func SeedCatalogs(db *gorm.DB) error {
	var foodsCount, activitiesCount int64
	if err := db.Model(&models.Food{}).Count(&foodsCount).Error; err != nil {
		return err
	}
	if err := db.Model(&models.Activity{}).Count(&activitiesCount).Error; err != nil {
		return err
	}

	if foodsCount > 0 && activitiesCount > 0 {
		log.Info("catalogs already seeded")
		return nil
	}

	if foodsCount == 0 {
		foods := make([]models.Food, len(seedFoods))
		copy(foods, seedFoods)
		if err := db.Create(&foods).Error; err != nil {
			return err
		}
		log.WithField("count", len(foods)).Info("seeded foods")
	}

	if activitiesCount == 0 {
		activities := make([]models.Activity, len(seedActivities))
		copy(activities, seedActivities)
		if err := db.Create(&activities).Error; err != nil {
			return err
		}
		log.WithField("count", len(activities)).Info("seeded activities")
	}

	return nil
}
