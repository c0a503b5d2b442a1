package services

import (
	"errors"
	"time"

	"gorm.io/gorm"

	"github.com/dgf281219-blip/metodo/models"
)

type ReflectionService struct {
	db  *gorm.DB
	now func() time.Time
}

func NewReflectionService(db *gorm.DB) *ReflectionService {
	return &ReflectionService{db: db, now: time.Now}
}

type ReflectionInput struct {
	Mudancas     string `json:"mudancas" binding:"required"`
	NovaIntencao string `json:"nova_intencao" binding:"required"`
}

// Upsert replaces the user's final reflection; same latest-wins contract
// as the goals document.
func (s *ReflectionService) Upsert(userID string, input ReflectionInput) (*models.FinalReflection, error) {
	now := s.now().UTC()
	reflection := models.FinalReflection{
		UserID:        userID,
		Mudancas:      input.Mudancas,
		NovaIntencao:  input.NovaIntencao,
		DataConclusao: now,
		CreatedAt:     now,
	}

	var existing models.FinalReflection
	err := s.db.Where("user_id = ?", userID).First(&existing).Error
	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		if err := s.db.Create(&reflection).Error; err != nil {
			return nil, err
		}
	case err != nil:
		return nil, err
	default:
		reflection.ID = existing.ID
		if err := s.db.Save(&reflection).Error; err != nil {
			return nil, err
		}
	}
	return &reflection, nil
}

func (s *ReflectionService) Get(userID string) (*models.FinalReflection, error) {
	var reflection models.FinalReflection
	err := s.db.Where("user_id = ?", userID).First(&reflection).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &reflection, nil
}
