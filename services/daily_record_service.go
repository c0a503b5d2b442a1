package services

import (
	"errors"
	"time"

	"gorm.io/gorm"

	"github.com/dgf281219-blip/metodo/models"
)

// maxProgramDays caps day numbering for the 21-day program.
const maxProgramDays = 21

// listLimit bounds record listings.
const listLimit = 100

type DailyRecordService struct {
	db    *gorm.DB
	goals *GoalService
	now   func() time.Time
}

func NewDailyRecordService(db *gorm.DB, goals *GoalService) *DailyRecordService {
	return &DailyRecordService{db: db, goals: goals, now: time.Now}
}

// DailyRecordInput carries one daily check-in. Optional fields left out of
// the request never overwrite stored values.
type DailyRecordInput struct {
	Date               string                     `json:"date" binding:"required"`
	DayNumber          int                        `json:"day_number" binding:"required"`
	ChecklistAlimentar *models.ChecklistAlimentar `json:"checklist_alimentar"`
	PraticasDiarias    *models.PraticasDiarias    `json:"praticas_diarias"`
	Sentimentos        *string                    `json:"sentimentos"`
	Desafios           *string                    `json:"desafios"`
	VitoriaDia         *string                    `json:"vitoria_dia"`
	Gratidoes          []string                   `json:"gratidoes"`
}

// Upsert creates the record for (user, date) or merges the supplied fields
// into the existing one. The calorie and water counters are never written
// by this path; they belong to the entry-log and water operations.
func (s *DailyRecordService) Upsert(userID string, input DailyRecordInput) (*models.DailyRecord, error) {
	var existing models.DailyRecord
	err := s.db.Where("user_id = ? AND date = ?", userID, input.Date).First(&existing).Error

	if errors.Is(err, gorm.ErrRecordNotFound) {
		record := models.DailyRecord{
			UserID:    userID,
			Date:      input.Date,
			DayNumber: input.DayNumber,
			Gratidoes: []string{},
		}
		applyDailyInput(&record, input)
		if err := s.db.Create(&record).Error; err != nil {
			return nil, err
		}
		return &record, nil
	}
	if err != nil {
		return nil, err
	}

	existing.DayNumber = input.DayNumber
	applyDailyInput(&existing, input)
	// Omit keeps the counters and created_at physically untouched; a
	// concurrent entry write must not be clobbered by a stale read here.
	err = s.db.Omit("calories_consumed", "calories_burned", "water_intake", "created_at").
		Save(&existing).Error
	if err != nil {
		return nil, err
	}

	var updated models.DailyRecord
	if err := s.db.Where("user_id = ? AND date = ?", userID, input.Date).First(&updated).Error; err != nil {
		return nil, err
	}
	return &updated, nil
}

func applyDailyInput(record *models.DailyRecord, input DailyRecordInput) {
	if input.ChecklistAlimentar != nil {
		record.ChecklistAlimentar = *input.ChecklistAlimentar
	}
	if input.PraticasDiarias != nil {
		record.PraticasDiarias = *input.PraticasDiarias
	}
	if input.Sentimentos != nil && *input.Sentimentos != "" {
		record.Sentimentos = input.Sentimentos
	}
	if input.Desafios != nil && *input.Desafios != "" {
		record.Desafios = input.Desafios
	}
	if input.VitoriaDia != nil && *input.VitoriaDia != "" {
		record.VitoriaDia = input.VitoriaDia
	}
	if len(input.Gratidoes) > 0 {
		record.Gratidoes = input.Gratidoes
	}
}

// Get returns the record for the given date, or nil when none exists.
func (s *DailyRecordService) Get(userID, date string) (*models.DailyRecord, error) {
	var record models.DailyRecord
	err := s.db.Where("user_id = ? AND date = ?", userID, date).First(&record).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &record, nil
}

// List returns up to 100 records ordered by date ascending.
func (s *DailyRecordService) List(userID string) ([]models.DailyRecord, error) {
	records := []models.DailyRecord{}
	err := s.db.Where("user_id = ?", userID).
		Order("date ASC").
		Limit(listLimit).
		Find(&records).Error
	return records, err
}

// Progress bundles the goals document (possibly nil) with every daily
// record ordered by day number. Gaps in day numbers are not flagged.
type Progress struct {
	Goals              *models.UserGoals    `json:"goals"`
	DailyRecords       []models.DailyRecord `json:"daily_records"`
	TotalDaysCompleted int                  `json:"total_days_completed"`
}

func (s *DailyRecordService) Progress(userID string) (*Progress, error) {
	records := []models.DailyRecord{}
	err := s.db.Where("user_id = ?", userID).
		Order("day_number ASC").
		Limit(listLimit).
		Find(&records).Error
	if err != nil {
		return nil, err
	}

	goals, err := s.goals.Get(userID)
	if err != nil {
		return nil, err
	}

	return &Progress{
		Goals:              goals,
		DailyRecords:       records,
		TotalDaysCompleted: len(records),
	}, nil
}

// SetWater sets today's water total. When no record exists yet one is
// synthesized, numbering the day from the goals' creation date (capped at
// 21, defaulting to day 1 when no goals were submitted).
func (s *DailyRecordService) SetWater(userID string, waterML int) error {
	today := s.today()

	var existing models.DailyRecord
	err := s.db.Where("user_id = ? AND date = ?", userID, today).First(&existing).Error

	if errors.Is(err, gorm.ErrRecordNotFound) {
		dayNumber, err := s.currentDayNumber(userID)
		if err != nil {
			return err
		}
		record := models.DailyRecord{
			UserID:      userID,
			Date:        today,
			DayNumber:   dayNumber,
			Gratidoes:   []string{},
			WaterIntake: waterML,
		}
		return s.db.Create(&record).Error
	}
	if err != nil {
		return err
	}

	return s.db.Model(&existing).
		Updates(map[string]interface{}{"water_intake": waterML}).Error
}

func (s *DailyRecordService) currentDayNumber(userID string) (int, error) {
	goals, err := s.goals.Get(userID)
	if err != nil {
		return 0, err
	}
	if goals == nil {
		return 1, nil
	}

	days := int(s.now().UTC().Sub(goals.CreatedAt).Hours()/24) + 1
	if days > maxProgramDays {
		days = maxProgramDays
	}
	if days < 1 {
		days = 1
	}
	return days, nil
}

func (s *DailyRecordService) today() string {
	return s.now().UTC().Format("2006-01-02")
}
